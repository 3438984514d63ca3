package league

// Store manages the league roster, its match history and the approval queue.
// Request approval applies its full effect in a single transaction.
type Store interface {
	Players() ([]Player, error)
	Matches() ([]Match, error)

	// SubmitPlayerRequest queues a new player for approval.
	SubmitPlayerRequest(name string) (*PendingRequest, error)
	// SubmitMatchRequest queues a played doubles result for approval.
	// winningTeam must be 1 or 2.
	SubmitMatchRequest(team1IDs, team2IDs []string, winningTeam int) (*PendingRequest, error)
	PendingRequests() ([]PendingRequest, error)
	// ApproveRequest applies the request and removes it from the queue. For a
	// match request the winners' points, the losers' losses, the match insert
	// and the queue removal commit together.
	ApproveRequest(id string) error
	RejectRequest(id string) error

	AddPoint(playerID string) error
	AddLoss(playerID string) error
	RemovePlayer(playerID string) error

	// ResetAll zeroes every player's counters and clears the match history.
	ResetAll() error
	// ClearHistory deletes the match history but keeps player counters.
	ClearHistory() error
}
