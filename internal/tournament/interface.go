package tournament

// Store is the tournament engine's contract with the shared document store.
// Every multi-document mutation commits as a single transaction: readers
// never observe a half-applied schedule, a result whose team counters lag the
// match record, or an archive that cleared live state without writing its
// snapshot.
type Store interface {
	// Reads.
	Teams() ([]Team, error)
	Matches() ([]Match, error)
	// Standings recomputes the ranking from the live teams and matches.
	Standings() ([]Standing, error)
	ScheduleState() (ScheduleState, error)

	// ReplaceTeams deletes all current teams and matches, inserts the given
	// drafts with zeroed records, and resets projection state.
	ReplaceTeams(drafts []TeamDraft) ([]Team, error)

	// GenerateSchedule builds a fresh schedule for the format and atomically
	// swaps it in: the old matches are deleted, the new ones inserted, and
	// projection scores and lock reset. Fails with ErrInsufficientTeams
	// before any mutation when the team count is too small.
	GenerateSchedule(format Format, groupSize int) ([]Match, error)

	// RecordResult applies a score to a match, first undoing the statistical
	// effect of any previously committed result on the same match. Recording
	// identical scores twice therefore produces no extra delta. Fails with
	// ErrMatchNotFound if the match does not exist.
	RecordResult(matchID string, scoreA, scoreB int) (*Match, error)

	// Projection scratchpad.
	Projection() (ProjectionState, error)
	SetProjectionMode(mode ProjectionMode) error
	SetProjectionName(name string) error
	SetProvisionalScore(slot string, score int) error
	ClearProvisionalScores() error
	// LockProjection requires every scheduled match to be decided
	// (ErrStageIncomplete otherwise) and stores the secret that unlocks it.
	LockProjection(secret string) error
	UnlockProjection(secret string) error

	// Archive snapshots teams, matches and standings into history and clears
	// live state, all in one transaction. ErrNothingToArchive when empty.
	Archive(name string) (*Snapshot, error)
	// EndStage writes a stage-tagged snapshot without clearing live state.
	// Every match must be decided first (ErrStageIncomplete).
	EndStage(name string) (*Snapshot, error)
	Snapshots() ([]Snapshot, error)
	DeleteSnapshot(id string) error

	// Subscribe registers a listener for committed changes to a collection.
	Subscribe(collection Collection, fn Listener)
}
