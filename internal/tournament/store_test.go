package tournament_test

import (
	"database/sql"
	"testing"

	"github.com/nrrc/shuttleboard/internal/database"
	"github.com/nrrc/shuttleboard/internal/tournament"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestDB creates a temporary in-memory SQLite database for testing.
func setupTestDB(t *testing.T) (tournament.Store, *sql.DB, func()) {
	t.Helper()

	db, dbTeardown, err := database.InitDB(":memory:", "", "", "../../migrations")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)

	store := tournament.NewSeeded(db, tournament.NewWatcher(), 1)
	teardown := func() {
		dbTeardown()
		db.Close()
	}
	return store, db, teardown
}

func seedTeams(t *testing.T, store tournament.Store, n int) []tournament.Team {
	t.Helper()
	drafts := make([]tournament.TeamDraft, 0, n)
	for _, team := range makeTeams(n) {
		drafts = append(drafts, tournament.TeamDraft{
			Name:      team.Name,
			PlayerIDs: []string{team.ID + "a", team.ID + "b"},
		})
	}
	teams, err := store.ReplaceTeams(drafts)
	require.NoError(t, err)
	return teams
}

func teamByID(t *testing.T, store tournament.Store, id string) tournament.Team {
	t.Helper()
	teams, err := store.Teams()
	require.NoError(t, err)
	for _, team := range teams {
		if team.ID == id {
			return team
		}
	}
	t.Fatalf("team %s not found", id)
	return tournament.Team{}
}

func TestReplaceTeams(t *testing.T) {
	store, _, teardown := setupTestDB(t)
	defer teardown()

	teams := seedTeams(t, store, 3)
	require.Len(t, teams, 3)
	for _, team := range teams {
		assert.NotEmpty(t, team.ID)
		assert.Zero(t, team.Wins)
		assert.Len(t, team.PlayerIDs, 2)
	}

	// Replacing wipes the old roster and any schedule built on it.
	_, err := store.GenerateSchedule(tournament.FormatRoundRobin, 0)
	require.NoError(t, err)

	teams = seedTeams(t, store, 2)
	assert.Len(t, teams, 2)

	matches, err := store.Matches()
	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestGenerateScheduleRoundRobin(t *testing.T) {
	store, _, teardown := setupTestDB(t)
	defer teardown()
	seedTeams(t, store, 4)

	matches, err := store.GenerateSchedule(tournament.FormatRoundRobin, 0)
	require.NoError(t, err)
	assert.Len(t, matches, 6)

	persisted, err := store.Matches()
	require.NoError(t, err)
	require.Len(t, persisted, 6)
	for i, m := range persisted {
		assert.NotEmpty(t, m.ID)
		assert.Equal(t, i+1, m.SortOrder)
	}

	state, err := store.ScheduleState()
	require.NoError(t, err)
	assert.Equal(t, tournament.FormatRoundRobin, state.Format)
	assert.False(t, state.GeneratedAt.IsZero())
}

func TestGenerateScheduleReplacesExisting(t *testing.T) {
	store, _, teardown := setupTestDB(t)
	defer teardown()
	seedTeams(t, store, 4)

	_, err := store.GenerateSchedule(tournament.FormatRoundRobin, 0)
	require.NoError(t, err)
	_, err = store.GenerateSchedule(tournament.FormatKnockout, 0)
	require.NoError(t, err)

	matches, err := store.Matches()
	require.NoError(t, err)
	assert.Len(t, matches, 3)

	state, err := store.ScheduleState()
	require.NoError(t, err)
	assert.Equal(t, tournament.FormatKnockout, state.Format)
}

func TestGenerateScheduleFailureLeavesStateIntact(t *testing.T) {
	store, _, teardown := setupTestDB(t)
	defer teardown()
	seedTeams(t, store, 4)

	_, err := store.GenerateSchedule(tournament.FormatRoundRobin, 0)
	require.NoError(t, err)

	// An invalid hybrid group size fails validation before any write.
	_, err = store.GenerateSchedule(tournament.FormatHybrid, 2)
	require.Error(t, err)

	matches, err := store.Matches()
	require.NoError(t, err)
	assert.Len(t, matches, 6)

	state, err := store.ScheduleState()
	require.NoError(t, err)
	assert.Equal(t, tournament.FormatRoundRobin, state.Format)
}

func TestGenerateScheduleInsufficientTeams(t *testing.T) {
	store, _, teardown := setupTestDB(t)
	defer teardown()

	_, err := store.GenerateSchedule(tournament.FormatRoundRobin, 0)
	assert.ErrorIs(t, err, tournament.ErrInsufficientTeams)
}

func TestRecordResult(t *testing.T) {
	store, _, teardown := setupTestDB(t)
	defer teardown()
	seedTeams(t, store, 4)
	matches, err := store.GenerateSchedule(tournament.FormatRoundRobin, 0)
	require.NoError(t, err)

	m := matches[0]
	updated, err := store.RecordResult(m.ID, 21, 15)
	require.NoError(t, err)

	assert.Equal(t, tournament.StatusFinished, updated.Status)
	assert.Equal(t, m.A.TeamID, updated.WinnerTeamID)
	assert.Equal(t, 21, updated.ScoreA)
	assert.Equal(t, 15, updated.ScoreB)

	winner := teamByID(t, store, m.A.TeamID)
	assert.Equal(t, 1, winner.Wins)
	assert.Equal(t, 2, winner.Points)
	assert.Zero(t, winner.Losses)

	loser := teamByID(t, store, m.B.TeamID)
	assert.Equal(t, 1, loser.Losses)
	assert.Zero(t, loser.Wins)
	assert.Zero(t, loser.Points)
}

func TestRecordResultIdempotent(t *testing.T) {
	store, _, teardown := setupTestDB(t)
	defer teardown()
	seedTeams(t, store, 4)
	matches, err := store.GenerateSchedule(tournament.FormatRoundRobin, 0)
	require.NoError(t, err)

	m := matches[0]
	_, err = store.RecordResult(m.ID, 21, 15)
	require.NoError(t, err)
	_, err = store.RecordResult(m.ID, 21, 15)
	require.NoError(t, err)

	winner := teamByID(t, store, m.A.TeamID)
	assert.Equal(t, 1, winner.Wins)
	assert.Equal(t, 2, winner.Points)

	loser := teamByID(t, store, m.B.TeamID)
	assert.Equal(t, 1, loser.Losses)
}

func TestRecordResultCorrectionFlipsWinner(t *testing.T) {
	store, _, teardown := setupTestDB(t)
	defer teardown()
	seedTeams(t, store, 4)
	matches, err := store.GenerateSchedule(tournament.FormatRoundRobin, 0)
	require.NoError(t, err)

	m := matches[0]
	_, err = store.RecordResult(m.ID, 21, 15)
	require.NoError(t, err)
	updated, err := store.RecordResult(m.ID, 15, 21)
	require.NoError(t, err)

	assert.Equal(t, m.B.TeamID, updated.WinnerTeamID)

	formerWinner := teamByID(t, store, m.A.TeamID)
	assert.Zero(t, formerWinner.Wins)
	assert.Zero(t, formerWinner.Points)
	assert.Equal(t, 1, formerWinner.Losses)

	newWinner := teamByID(t, store, m.B.TeamID)
	assert.Equal(t, 1, newWinner.Wins)
	assert.Equal(t, 2, newWinner.Points)
	assert.Zero(t, newWinner.Losses)
}

func TestRecordResultDrawLeavesMatchUndecided(t *testing.T) {
	store, _, teardown := setupTestDB(t)
	defer teardown()
	seedTeams(t, store, 4)
	matches, err := store.GenerateSchedule(tournament.FormatRoundRobin, 0)
	require.NoError(t, err)

	m := matches[0]
	_, err = store.RecordResult(m.ID, 21, 15)
	require.NoError(t, err)

	// Correcting to a draw reverses the earlier result entirely.
	updated, err := store.RecordResult(m.ID, 10, 10)
	require.NoError(t, err)
	assert.Equal(t, tournament.StatusScheduled, updated.Status)
	assert.Empty(t, updated.WinnerTeamID)

	teamA := teamByID(t, store, m.A.TeamID)
	assert.Zero(t, teamA.Wins)
	assert.Zero(t, teamA.Points)
}

func TestRecordResultNotFound(t *testing.T) {
	store, _, teardown := setupTestDB(t)
	defer teardown()

	_, err := store.RecordResult("missing", 21, 15)
	assert.ErrorIs(t, err, tournament.ErrMatchNotFound)
}

func TestStandingsFromStore(t *testing.T) {
	store, _, teardown := setupTestDB(t)
	defer teardown()
	seedTeams(t, store, 4)
	matches, err := store.GenerateSchedule(tournament.FormatRoundRobin, 0)
	require.NoError(t, err)

	_, err = store.RecordResult(matches[0].ID, 21, 10)
	require.NoError(t, err)

	standings, err := store.Standings()
	require.NoError(t, err)
	require.Len(t, standings, 4)
	assert.Equal(t, matches[0].A.TeamID, standings[0].TeamID)
	assert.Equal(t, 2, standings[0].Points)
	assert.Equal(t, 1, standings[0].Rank)
}

func TestProjectionStateRoundtrip(t *testing.T) {
	store, _, teardown := setupTestDB(t)
	defer teardown()

	require.NoError(t, store.SetProjectionMode(tournament.ModeSemi))
	require.NoError(t, store.SetProjectionName("Friday Night Cup"))
	require.NoError(t, store.SetProvisionalScore(tournament.SlotSemi1A, 21))
	require.NoError(t, store.SetProvisionalScore(tournament.SlotSemi1B, 18))

	state, err := store.Projection()
	require.NoError(t, err)
	assert.Equal(t, tournament.ModeSemi, state.Mode)
	assert.Equal(t, "Friday Night Cup", state.Name)
	assert.Equal(t, 21, state.Scores[tournament.SlotSemi1A])
	assert.Equal(t, 18, state.Scores[tournament.SlotSemi1B])

	require.NoError(t, store.ClearProvisionalScores())
	state, err = store.Projection()
	require.NoError(t, err)
	assert.Empty(t, state.Scores)
}

func TestLockProjectionRequiresFinishedMatches(t *testing.T) {
	store, _, teardown := setupTestDB(t)
	defer teardown()
	seedTeams(t, store, 4)
	matches, err := store.GenerateSchedule(tournament.FormatRoundRobin, 0)
	require.NoError(t, err)

	err = store.LockProjection("secret-1")
	assert.ErrorIs(t, err, tournament.ErrStageIncomplete)

	for _, m := range matches {
		_, err := store.RecordResult(m.ID, 21, 15)
		require.NoError(t, err)
	}
	require.NoError(t, store.LockProjection("secret-1"))
}

func TestLockedProjectionRejectsScoreEdits(t *testing.T) {
	store, _, teardown := setupTestDB(t)
	defer teardown()

	// No matches scheduled, so the stage is trivially complete.
	require.NoError(t, store.LockProjection("secret-1"))

	err := store.SetProvisionalScore(tournament.SlotFinalA, 21)
	assert.ErrorIs(t, err, tournament.ErrProjectionLocked)
	assert.ErrorIs(t, store.ClearProvisionalScores(), tournament.ErrProjectionLocked)

	assert.ErrorIs(t, store.UnlockProjection("wrong"), tournament.ErrActionUnauthorized)
	require.NoError(t, store.UnlockProjection("secret-1"))
	require.NoError(t, store.SetProvisionalScore(tournament.SlotFinalA, 21))
}

func TestArchive(t *testing.T) {
	store, _, teardown := setupTestDB(t)
	defer teardown()
	seedTeams(t, store, 4)
	matches, err := store.GenerateSchedule(tournament.FormatRoundRobin, 0)
	require.NoError(t, err)
	for _, m := range matches {
		_, err := store.RecordResult(m.ID, 21, 15)
		require.NoError(t, err)
	}

	snap, err := store.Archive("Spring Open")
	require.NoError(t, err)
	assert.Equal(t, "Spring Open", snap.Name)
	assert.Equal(t, 4, snap.TeamCount)
	assert.Equal(t, 6, snap.MatchCount)
	assert.Equal(t, 6, snap.CompletedCount)
	assert.Equal(t, tournament.FormatRoundRobin, snap.Format)
	assert.NotEmpty(t, snap.WinnerName)
	assert.NotEmpty(t, snap.RunnerUpName)
	assert.Empty(t, snap.Stage)

	teams, err := store.Teams()
	require.NoError(t, err)
	assert.Empty(t, teams)
	remaining, err := store.Matches()
	require.NoError(t, err)
	assert.Empty(t, remaining)

	snaps, err := store.Snapshots()
	require.NoError(t, err)
	require.Len(t, snaps, 1)
	assert.Equal(t, snap.ID, snaps[0].ID)
	assert.Len(t, snaps[0].Standings, 4)
}

func TestArchiveNothingToArchive(t *testing.T) {
	store, _, teardown := setupTestDB(t)
	defer teardown()

	_, err := store.Archive("Empty")
	assert.ErrorIs(t, err, tournament.ErrNothingToArchive)
}

func TestEndStageKeepsLiveState(t *testing.T) {
	store, _, teardown := setupTestDB(t)
	defer teardown()
	seedTeams(t, store, 4)
	matches, err := store.GenerateSchedule(tournament.FormatRoundRobin, 0)
	require.NoError(t, err)

	_, err = store.EndStage("Group Stage")
	assert.ErrorIs(t, err, tournament.ErrStageIncomplete)

	for _, m := range matches {
		_, err := store.RecordResult(m.ID, 21, 15)
		require.NoError(t, err)
	}

	snap, err := store.EndStage("Group Stage")
	require.NoError(t, err)
	assert.Equal(t, tournament.StageRoundRobin, snap.Stage)

	// Live state survives so the knockout phase can be generated from it.
	teams, err := store.Teams()
	require.NoError(t, err)
	assert.Len(t, teams, 4)
	live, err := store.Matches()
	require.NoError(t, err)
	assert.Len(t, live, 6)
}

func TestDeleteSnapshot(t *testing.T) {
	store, _, teardown := setupTestDB(t)
	defer teardown()

	assert.ErrorIs(t, store.DeleteSnapshot("missing"), tournament.ErrSnapshotNotFound)

	seedTeams(t, store, 2)
	snap, err := store.Archive("Short Night")
	require.NoError(t, err)

	require.NoError(t, store.DeleteSnapshot(snap.ID))
	snaps, err := store.Snapshots()
	require.NoError(t, err)
	assert.Empty(t, snaps)
}

func TestSubscribeReceivesFullCollections(t *testing.T) {
	store, _, teardown := setupTestDB(t)
	defer teardown()

	var got []tournament.Match
	store.Subscribe(tournament.CollectionMatches, func(_ tournament.Collection, payload any) {
		if matches, ok := payload.([]tournament.Match); ok {
			got = matches
		}
	})

	seedTeams(t, store, 4)
	_, err := store.GenerateSchedule(tournament.FormatRoundRobin, 0)
	require.NoError(t, err)

	assert.Len(t, got, 6)
}
