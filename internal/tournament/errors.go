package tournament

import "errors"

// Validation failures are detected before any mutation is attempted, so every
// error below guarantees no partial write happened.
var (
	ErrInsufficientParticipants = errors.New("need at least 2 players to form teams")
	ErrInsufficientTeams        = errors.New("not enough teams for this format")
	ErrMatchNotFound            = errors.New("match not found")
	ErrNothingToArchive         = errors.New("no teams or matches to archive")
	ErrStageIncomplete          = errors.New("round-robin stage has unfinished matches")
	ErrSnapshotNotFound         = errors.New("history snapshot not found")
	ErrActionUnauthorized       = errors.New("wrong secret for this action")
	ErrProjectionLocked         = errors.New("projection is locked")

	// ErrStoreUnavailable is what callers see for any I/O failure talking to
	// the backing store; the original state is retained in that case.
	ErrStoreUnavailable = errors.New("store unavailable")
)
