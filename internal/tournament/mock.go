package tournament

import (
	"sync"
)

// MockStore is a mock implementation of the Store interface for testing.
// It is safe for concurrent use.
type MockStore struct {
	mu sync.Mutex

	// Spies for method calls
	TeamsFunc                  func() ([]Team, error)
	MatchesFunc                func() ([]Match, error)
	StandingsFunc              func() ([]Standing, error)
	ScheduleStateFunc          func() (ScheduleState, error)
	ReplaceTeamsFunc           func(drafts []TeamDraft) ([]Team, error)
	GenerateScheduleFunc       func(format Format, groupSize int) ([]Match, error)
	RecordResultFunc           func(matchID string, scoreA, scoreB int) (*Match, error)
	ProjectionFunc             func() (ProjectionState, error)
	SetProjectionModeFunc      func(mode ProjectionMode) error
	SetProjectionNameFunc      func(name string) error
	SetProvisionalScoreFunc    func(slot string, score int) error
	ClearProvisionalScoresFunc func() error
	LockProjectionFunc         func(secret string) error
	UnlockProjectionFunc       func(secret string) error
	ArchiveFunc                func(name string) (*Snapshot, error)
	EndStageFunc               func(name string) (*Snapshot, error)
	SnapshotsFunc              func() ([]Snapshot, error)
	DeleteSnapshotFunc         func(id string) error

	// Call records
	ReplaceTeamsCalls     [][]TeamDraft
	GenerateScheduleCalls []struct {
		Format    Format
		GroupSize int
	}
	RecordResultCalls []struct {
		MatchID string
		ScoreA  int
		ScoreB  int
	}
	SetProvisionalScoreCalls []struct {
		Slot  string
		Score int
	}
	LockProjectionCalls   []string
	UnlockProjectionCalls []string
	ArchiveCalls          []string
	EndStageCalls         []string
	DeleteSnapshotCalls   []string
}

// NewMock creates a new mock instance.
func NewMock() *MockStore {
	return &MockStore{}
}

// Reset clears all call records.
func (m *MockStore) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ReplaceTeamsCalls = nil
	m.GenerateScheduleCalls = nil
	m.RecordResultCalls = nil
	m.SetProvisionalScoreCalls = nil
	m.LockProjectionCalls = nil
	m.UnlockProjectionCalls = nil
	m.ArchiveCalls = nil
	m.EndStageCalls = nil
	m.DeleteSnapshotCalls = nil
}

// RecordResultCount reports recorded results without racing concurrent callers.
func (m *MockStore) RecordResultCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.RecordResultCalls)
}

func (m *MockStore) Teams() ([]Team, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.TeamsFunc != nil {
		return m.TeamsFunc()
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

func (m *MockStore) Standings() ([]Standing, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.StandingsFunc != nil {
		return m.StandingsFunc()
	}
	return nil, nil
}

func (m *MockStore) ScheduleState() (ScheduleState, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ScheduleStateFunc != nil {
		return m.ScheduleStateFunc()
	}
	return ScheduleState{}, nil
}

func (m *MockStore) ReplaceTeams(drafts []TeamDraft) ([]Team, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ReplaceTeamsCalls = append(m.ReplaceTeamsCalls, drafts)
	if m.ReplaceTeamsFunc != nil {
		return m.ReplaceTeamsFunc(drafts)
	}
	return nil, nil
}

func (m *MockStore) GenerateSchedule(format Format, groupSize int) ([]Match, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.GenerateScheduleCalls = append(m.GenerateScheduleCalls, struct {
		Format    Format
		GroupSize int
	}{format, groupSize})
	if m.GenerateScheduleFunc != nil {
		return m.GenerateScheduleFunc(format, groupSize)
	}
	return nil, nil
}

func (m *MockStore) RecordResult(matchID string, scoreA, scoreB int) (*Match, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.RecordResultCalls = append(m.RecordResultCalls, struct {
		MatchID string
		ScoreA  int
		ScoreB  int
	}{matchID, scoreA, scoreB})
	if m.RecordResultFunc != nil {
		return m.RecordResultFunc(matchID, scoreA, scoreB)
	}
	return nil, nil
}

func (m *MockStore) Projection() (ProjectionState, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ProjectionFunc != nil {
		return m.ProjectionFunc()
	}
	return ProjectionState{Mode: ModeAuto, Scores: map[string]int{}}, nil
}

func (m *MockStore) SetProjectionMode(mode ProjectionMode) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.SetProjectionModeFunc != nil {
		return m.SetProjectionModeFunc(mode)
	}
	return nil
}

func (m *MockStore) SetProjectionName(name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.SetProjectionNameFunc != nil {
		return m.SetProjectionNameFunc(name)
	}
	return nil
}

func (m *MockStore) SetProvisionalScore(slot string, score int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SetProvisionalScoreCalls = append(m.SetProvisionalScoreCalls, struct {
		Slot  string
		Score int
	}{slot, score})
	if m.SetProvisionalScoreFunc != nil {
		return m.SetProvisionalScoreFunc(slot, score)
	}
	return nil
}

func (m *MockStore) ClearProvisionalScores() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ClearProvisionalScoresFunc != nil {
		return m.ClearProvisionalScoresFunc()
	}
	return nil
}

func (m *MockStore) LockProjection(secret string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.LockProjectionCalls = append(m.LockProjectionCalls, secret)
	if m.LockProjectionFunc != nil {
		return m.LockProjectionFunc(secret)
	}
	return nil
}

func (m *MockStore) UnlockProjection(secret string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.UnlockProjectionCalls = append(m.UnlockProjectionCalls, secret)
	if m.UnlockProjectionFunc != nil {
		return m.UnlockProjectionFunc(secret)
	}
	return nil
}

func (m *MockStore) Archive(name string) (*Snapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ArchiveCalls = append(m.ArchiveCalls, name)
	if m.ArchiveFunc != nil {
		return m.ArchiveFunc(name)
	}
	return &Snapshot{Name: name}, nil
}

func (m *MockStore) EndStage(name string) (*Snapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.EndStageCalls = append(m.EndStageCalls, name)
	if m.EndStageFunc != nil {
		return m.EndStageFunc(name)
	}
	return &Snapshot{Name: name, Stage: StageRoundRobin}, nil
}

func (m *MockStore) Snapshots() ([]Snapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.SnapshotsFunc != nil {
		return m.SnapshotsFunc()
	}
	return nil, nil
}

func (m *MockStore) DeleteSnapshot(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.DeleteSnapshotCalls = append(m.DeleteSnapshotCalls, id)
	if m.DeleteSnapshotFunc != nil {
		return m.DeleteSnapshotFunc(id)
	}
	return nil
}

func (m *MockStore) Subscribe(collection Collection, fn Listener) {}
