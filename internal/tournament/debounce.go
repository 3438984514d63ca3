package tournament

import (
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

// ScoreDebouncer coalesces rapid score edits on the same match into a single
// committed write. Each edit restarts the match's timer with the latest
// scores; only the final pair reaches the store. Edits to different matches
// debounce independently.
type ScoreDebouncer struct {
	store Store
	delay time.Duration

	mu      sync.Mutex
	pending map[string]*pendingEdit
	closed  bool
}

type pendingEdit struct {
	timer  *time.Timer
	scoreA int
	scoreB int
}

// NewScoreDebouncer creates a debouncer committing through the given store
// after delay of inactivity per match.
func NewScoreDebouncer(store Store, delay time.Duration) *ScoreDebouncer {
	return &ScoreDebouncer{
		store:   store,
		delay:   delay,
		pending: make(map[string]*pendingEdit),
	}
}

// Edit stages a score for the match and restarts its debounce window. Edits
// are rejected while the projection is locked.
func (d *ScoreDebouncer) Edit(matchID string, scoreA, scoreB int) error {
	state, err := d.store.Projection()
	if err != nil {
		return err
	}
	if state.Locked {
		return ErrProjectionLocked
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return nil
	}
	if edit, ok := d.pending[matchID]; ok {
		edit.scoreA, edit.scoreB = scoreA, scoreB
		edit.timer.Reset(d.delay)
		return nil
	}
	edit := &pendingEdit{scoreA: scoreA, scoreB: scoreB}
	edit.timer = time.AfterFunc(d.delay, func() {
		d.commit(matchID)
	})
	d.pending[matchID] = edit
	return nil
}

// Pending reports whether the match has an uncommitted staged edit.
func (d *ScoreDebouncer) Pending(matchID string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	_, ok := d.pending[matchID]
	return ok
}

func (d *ScoreDebouncer) commit(matchID string) {
	d.mu.Lock()
	edit, ok := d.pending[matchID]
	if !ok {
		d.mu.Unlock()
		return
	}
	delete(d.pending, matchID)
	scoreA, scoreB := edit.scoreA, edit.scoreB
	d.mu.Unlock()

	if _, err := d.store.RecordResult(matchID, scoreA, scoreB); err != nil {
		log.Error("Failed to commit debounced score", "matchID", matchID, "error", err)
	}
}

// Flush commits every staged edit immediately. Used on shutdown so edits
// inside an open debounce window are not lost.
func (d *ScoreDebouncer) Flush() {
	d.mu.Lock()
	ids := make([]string, 0, len(d.pending))
	for id, edit := range d.pending {
		edit.timer.Stop()
		ids = append(ids, id)
	}
	d.mu.Unlock()

	for _, id := range ids {
		d.commit(id)
	}
}

// Close flushes staged edits and rejects further ones.
func (d *ScoreDebouncer) Close() {
	d.mu.Lock()
	d.closed = true
	d.mu.Unlock()
	d.Flush()
}
