package notifier

import (
	"sync"

	"github.com/nrrc/shuttleboard/internal/tournament"
)

// Mock is a mock implementation of the Notifier interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu sync.Mutex

	// Spies for method calls
	SendScheduleNotificationFunc func(format tournament.Format, matchCount int, dryRun bool) error
	SendResultNotificationFunc   func(match *tournament.Match, teamA, teamB string, dryRun bool) error
	SendStandingsFunc            func(standings []tournament.Standing, dryRun bool) error
	SendChampionNotificationFunc func(snap *tournament.Snapshot, dryRun bool) error

	// Call records
	SendScheduleNotificationCalls []struct {
		Format     tournament.Format
		MatchCount int
		DryRun     bool
	}
	SendResultNotificationCalls []struct {
		Match *tournament.Match
		TeamA string
		TeamB string
	}
	SendStandingsCalls            [][]tournament.Standing
	SendChampionNotificationCalls []*tournament.Snapshot
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{}
}

func (m *Mock) SendScheduleNotification(format tournament.Format, matchCount int, dryRun bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendScheduleNotificationCalls = append(m.SendScheduleNotificationCalls, struct {
		Format     tournament.Format
		MatchCount int
		DryRun     bool
	}{format, matchCount, dryRun})
	if m.SendScheduleNotificationFunc != nil {
		return m.SendScheduleNotificationFunc(format, matchCount, dryRun)
	}
	return nil
}

func (m *Mock) SendResultNotification(match *tournament.Match, teamA, teamB string, dryRun bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendResultNotificationCalls = append(m.SendResultNotificationCalls, struct {
		Match *tournament.Match
		TeamA string
		TeamB string
	}{match, teamA, teamB})
	if m.SendResultNotificationFunc != nil {
		return m.SendResultNotificationFunc(match, teamA, teamB, dryRun)
	}
	return nil
}

func (m *Mock) SendStandings(standings []tournament.Standing, dryRun bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendStandingsCalls = append(m.SendStandingsCalls, standings)
	if m.SendStandingsFunc != nil {
		return m.SendStandingsFunc(standings, dryRun)
	}
	return nil
}

func (m *Mock) SendChampionNotification(snap *tournament.Snapshot, dryRun bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendChampionNotificationCalls = append(m.SendChampionNotificationCalls, snap)
	if m.SendChampionNotificationFunc != nil {
		return m.SendChampionNotificationFunc(snap, dryRun)
	}
	return nil
}
