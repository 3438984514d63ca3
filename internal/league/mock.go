package league

import "sync"

// MockStore is a mock implementation of the Store interface for testing.
type MockStore struct {
	mu sync.Mutex

	PlayersFunc            func() ([]Player, error)
	MatchesFunc            func() ([]Match, error)
	SubmitPlayerRequestFunc func(name string) (*PendingRequest, error)
	SubmitMatchRequestFunc  func(team1IDs, team2IDs []string, winningTeam int) (*PendingRequest, error)
	PendingRequestsFunc    func() ([]PendingRequest, error)
	ApproveRequestFunc     func(id string) error
	RejectRequestFunc      func(id string) error
	AddPointFunc           func(playerID string) error
	AddLossFunc            func(playerID string) error
	RemovePlayerFunc       func(playerID string) error
	ResetAllFunc           func() error
	ClearHistoryFunc       func() error

	SubmitPlayerRequestCalls []string
	ApproveRequestCalls      []string
	RejectRequestCalls       []string
	AddPointCalls            []string
	AddLossCalls             []string
	RemovePlayerCalls        []string
	ResetAllCalls            int
}

func NewMock() *MockStore {
	return &MockStore{}
}

func (m *MockStore) Players() ([]Player, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.PlayersFunc != nil {
		return m.PlayersFunc()
	}
	return nil, nil
}

func (m *MockStore) Matches() ([]Match, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.MatchesFunc != nil {
		return m.MatchesFunc()
	}
	return nil, nil
}

func (m *MockStore) SubmitPlayerRequest(name string) (*PendingRequest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SubmitPlayerRequestCalls = append(m.SubmitPlayerRequestCalls, name)
	if m.SubmitPlayerRequestFunc != nil {
		return m.SubmitPlayerRequestFunc(name)
	}
	return &PendingRequest{Type: RequestPlayer, Name: name}, nil
}

func (m *MockStore) SubmitMatchRequest(team1IDs, team2IDs []string, winningTeam int) (*PendingRequest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.SubmitMatchRequestFunc != nil {
		return m.SubmitMatchRequestFunc(team1IDs, team2IDs, winningTeam)
	}
	return &PendingRequest{Type: RequestMatch, Team1IDs: team1IDs, Team2IDs: team2IDs, WinningTeam: winningTeam}, nil
}

func (m *MockStore) PendingRequests() ([]PendingRequest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.PendingRequestsFunc != nil {
		return m.PendingRequestsFunc()
	}
	return nil, nil
}

func (m *MockStore) ApproveRequest(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ApproveRequestCalls = append(m.ApproveRequestCalls, id)
	if m.ApproveRequestFunc != nil {
		return m.ApproveRequestFunc(id)
	}
	return nil
}

func (m *MockStore) RejectRequest(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.RejectRequestCalls = append(m.RejectRequestCalls, id)
	if m.RejectRequestFunc != nil {
		return m.RejectRequestFunc(id)
	}
	return nil
}

func (m *MockStore) AddPoint(playerID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.AddPointCalls = append(m.AddPointCalls, playerID)
	if m.AddPointFunc != nil {
		return m.AddPointFunc(playerID)
	}
	return nil
}

func (m *MockStore) AddLoss(playerID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.AddLossCalls = append(m.AddLossCalls, playerID)
	if m.AddLossFunc != nil {
		return m.AddLossFunc(playerID)
	}
	return nil
}

func (m *MockStore) RemovePlayer(playerID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.RemovePlayerCalls = append(m.RemovePlayerCalls, playerID)
	if m.RemovePlayerFunc != nil {
		return m.RemovePlayerFunc(playerID)
	}
	return nil
}

func (m *MockStore) ResetAll() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ResetAllCalls++
	if m.ResetAllFunc != nil {
		return m.ResetAllFunc()
	}
	return nil
}

func (m *MockStore) ClearHistory() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ClearHistoryFunc != nil {
		return m.ClearHistoryFunc()
	}
	return nil
}
