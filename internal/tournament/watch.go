package tournament

import "sync"

// Collection names the document sets the store manages. Subscribers receive
// the full current set for a collection every time it changes.
type Collection string

const (
	CollectionTeams      Collection = "teams"
	CollectionMatches    Collection = "matches"
	CollectionProjection Collection = "projection"
	CollectionHistory    Collection = "history"
)

// Listener receives the full current contents of a collection after a
// committed change: []Team, []Match, ProjectionState or []Snapshot depending
// on the collection subscribed to.
type Listener func(collection Collection, payload any)

// Watcher is a push-based observer registry. Each committed store mutation
// notifies every listener of the affected collection exactly once.
type Watcher struct {
	mu        sync.RWMutex
	listeners map[Collection][]Listener
}

// NewWatcher creates an empty registry.
func NewWatcher() *Watcher {
	return &Watcher{listeners: make(map[Collection][]Listener)}
}

// Subscribe registers fn for changes to the given collection.
func (w *Watcher) Subscribe(collection Collection, fn Listener) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.listeners[collection] = append(w.listeners[collection], fn)
}

// Notify delivers the current payload to every listener of the collection.
func (w *Watcher) Notify(collection Collection, payload any) {
	w.mu.RLock()
	subs := w.listeners[collection]
	w.mu.RUnlock()
	for _, fn := range subs {
		fn(collection, payload)
	}
}
