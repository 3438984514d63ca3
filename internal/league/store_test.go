package league_test

import (
	"database/sql"
	"testing"

	"github.com/nrrc/shuttleboard/internal/database"
	"github.com/nrrc/shuttleboard/internal/league"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestDB creates a temporary in-memory SQLite database for testing.
func setupTestDB(t *testing.T) (league.Store, *sql.DB, func()) {
	t.Helper()

	db, dbTeardown, err := database.InitDB(":memory:", "", "", "../../migrations")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)

	store := league.New(db)
	teardown := func() {
		dbTeardown()
		db.Close()
	}
	return store, db, teardown
}

func approvePlayer(t *testing.T, store league.Store, name string) league.Player {
	t.Helper()
	req, err := store.SubmitPlayerRequest(name)
	require.NoError(t, err)
	require.NoError(t, store.ApproveRequest(req.ID))

	players, err := store.Players()
	require.NoError(t, err)
	for _, p := range players {
		if p.Name == name {
			return p
		}
	}
	t.Fatalf("player %s not found after approval", name)
	return league.Player{}
}

func TestSubmitAndApprovePlayerRequest(t *testing.T) {
	store, _, teardown := setupTestDB(t)
	defer teardown()

	req, err := store.SubmitPlayerRequest("Maya")
	require.NoError(t, err)
	assert.Equal(t, league.RequestPlayer, req.Type)

	pending, err := store.PendingRequests()
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "Maya", pending[0].Name)

	require.NoError(t, store.ApproveRequest(req.ID))

	players, err := store.Players()
	require.NoError(t, err)
	require.Len(t, players, 1)
	assert.Equal(t, "Maya", players[0].Name)
	assert.Zero(t, players[0].Points)

	pending, err = store.PendingRequests()
	require.NoError(t, err)
	assert.Empty(t, pending)
}

func TestSubmitPlayerRequestValidation(t *testing.T) {
	store, _, teardown := setupTestDB(t)
	defer teardown()

	_, err := store.SubmitPlayerRequest("   ")
	assert.ErrorIs(t, err, league.ErrInvalidRequest)
}

func TestApproveMatchRequestAppliesEverythingAtOnce(t *testing.T) {
	store, _, teardown := setupTestDB(t)
	defer teardown()

	p1 := approvePlayer(t, store, "Anna")
	p2 := approvePlayer(t, store, "Ben")
	p3 := approvePlayer(t, store, "Cleo")
	p4 := approvePlayer(t, store, "Dev")

	req, err := store.SubmitMatchRequest(
		[]string{p1.ID, p2.ID}, []string{p3.ID, p4.ID}, 2,
	)
	require.NoError(t, err)
	require.NoError(t, store.ApproveRequest(req.ID))

	players, err := store.Players()
	require.NoError(t, err)
	byID := map[string]league.Player{}
	for _, p := range players {
		byID[p.ID] = p
	}
	assert.Equal(t, 1, byID[p3.ID].Points)
	assert.Equal(t, 1, byID[p4.ID].Points)
	assert.Equal(t, 1, byID[p1.ID].Losses)
	assert.Equal(t, 1, byID[p2.ID].Losses)
	assert.Zero(t, byID[p1.ID].Points)

	matches, err := store.Matches()
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, 2, matches[0].WinningTeam)
	assert.Equal(t, []string{p1.ID, p2.ID}, matches[0].Team1IDs)

	pending, err := store.PendingRequests()
	require.NoError(t, err)
	assert.Empty(t, pending)
}

func TestSubmitMatchRequestValidation(t *testing.T) {
	store, _, teardown := setupTestDB(t)
	defer teardown()

	_, err := store.SubmitMatchRequest(nil, []string{"p1"}, 1)
	assert.ErrorIs(t, err, league.ErrInvalidRequest)

	_, err = store.SubmitMatchRequest([]string{"p1"}, []string{"p2"}, 3)
	assert.ErrorIs(t, err, league.ErrInvalidRequest)
}

func TestRejectRequest(t *testing.T) {
	store, _, teardown := setupTestDB(t)
	defer teardown()

	req, err := store.SubmitPlayerRequest("Maya")
	require.NoError(t, err)
	require.NoError(t, store.RejectRequest(req.ID))

	pending, err := store.PendingRequests()
	require.NoError(t, err)
	assert.Empty(t, pending)

	players, err := store.Players()
	require.NoError(t, err)
	assert.Empty(t, players)

	assert.ErrorIs(t, store.RejectRequest("missing"), league.ErrRequestNotFound)
}

func TestApproveRequestNotFound(t *testing.T) {
	store, _, teardown := setupTestDB(t)
	defer teardown()

	assert.ErrorIs(t, store.ApproveRequest("missing"), league.ErrRequestNotFound)
}

func TestAddPointAndLoss(t *testing.T) {
	store, _, teardown := setupTestDB(t)
	defer teardown()

	p := approvePlayer(t, store, "Anna")
	require.NoError(t, store.AddPoint(p.ID))
	require.NoError(t, store.AddPoint(p.ID))
	require.NoError(t, store.AddLoss(p.ID))

	players, err := store.Players()
	require.NoError(t, err)
	assert.Equal(t, 2, players[0].Points)
	assert.Equal(t, 1, players[0].Losses)

	assert.ErrorIs(t, store.AddPoint("missing"), league.ErrPlayerNotFound)
	assert.ErrorIs(t, store.AddLoss("missing"), league.ErrPlayerNotFound)
}

func TestRemovePlayer(t *testing.T) {
	store, _, teardown := setupTestDB(t)
	defer teardown()

	p := approvePlayer(t, store, "Anna")
	require.NoError(t, store.RemovePlayer(p.ID))

	players, err := store.Players()
	require.NoError(t, err)
	assert.Empty(t, players)

	assert.ErrorIs(t, store.RemovePlayer(p.ID), league.ErrPlayerNotFound)
}

func TestResetAll(t *testing.T) {
	store, _, teardown := setupTestDB(t)
	defer teardown()

	p1 := approvePlayer(t, store, "Anna")
	p2 := approvePlayer(t, store, "Ben")
	req, err := store.SubmitMatchRequest([]string{p1.ID}, []string{p2.ID}, 1)
	require.NoError(t, err)
	require.NoError(t, store.ApproveRequest(req.ID))

	require.NoError(t, store.ResetAll())

	players, err := store.Players()
	require.NoError(t, err)
	require.Len(t, players, 2)
	for _, p := range players {
		assert.Zero(t, p.Points)
		assert.Zero(t, p.Losses)
	}
	matches, err := store.Matches()
	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestClearHistoryKeepsCounters(t *testing.T) {
	store, _, teardown := setupTestDB(t)
	defer teardown()

	p1 := approvePlayer(t, store, "Anna")
	p2 := approvePlayer(t, store, "Ben")
	req, err := store.SubmitMatchRequest([]string{p1.ID}, []string{p2.ID}, 1)
	require.NoError(t, err)
	require.NoError(t, store.ApproveRequest(req.ID))

	require.NoError(t, store.ClearHistory())

	matches, err := store.Matches()
	require.NoError(t, err)
	assert.Empty(t, matches)

	players, err := store.Players()
	require.NoError(t, err)
	byName := map[string]league.Player{}
	for _, p := range players {
		byName[p.Name] = p
	}
	assert.Equal(t, 1, byName["Anna"].Points)
	assert.Equal(t, 1, byName["Ben"].Losses)
}
