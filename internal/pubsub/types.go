package pubsub

import "cloud.google.com/go/pubsub"

type client struct {
	client   *pubsub.Client
	teardown func()
}

// EventType represents the type of event/message sent via pubsub.
type EventType string

const (
	EventTeamsChanged      EventType = "teams-changed"
	EventMatchesChanged    EventType = "matches-changed"
	EventProjectionChanged EventType = "projection-changed"
	EventHistoryChanged    EventType = "history-changed"
	EventLeagueChanged     EventType = "league-changed"
)
