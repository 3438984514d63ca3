package notifier

import (
	"github.com/nrrc/shuttleboard/internal/tournament"
)

// Notifier defines a high-level interface for sending notifications about business events.
// This decouples the rest of the application from the specific notification provider (e.g., Slack).
type Notifier interface {
	// When a new schedule is generated.
	SendScheduleNotification(format tournament.Format, matchCount int, dryRun bool) error
	// When a match result is recorded. teamA and teamB are display names.
	SendResultNotification(match *tournament.Match, teamA, teamB string, dryRun bool) error
	// Current standings table on demand.
	SendStandings(standings []tournament.Standing, dryRun bool) error
	// When a tournament is archived.
	SendChampionNotification(snap *tournament.Snapshot, dryRun bool) error
}
