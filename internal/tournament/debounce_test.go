package tournament_test

import (
	"testing"
	"time"

	"github.com/nrrc/shuttleboard/internal/tournament"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func awaitCommits(t *testing.T, committed <-chan struct{}, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		select {
		case <-committed:
		case <-time.After(time.Second):
			t.Fatalf("timed out waiting for commit %d of %d", i+1, n)
		}
	}
}

func TestDebouncerCoalescesRapidEdits(t *testing.T) {
	mock := tournament.NewMock()
	committed := make(chan struct{}, 4)
	mock.RecordResultFunc = func(string, int, int) (*tournament.Match, error) {
		committed <- struct{}{}
		return nil, nil
	}
	d := tournament.NewScoreDebouncer(mock, 20*time.Millisecond)
	defer d.Close()

	require.NoError(t, d.Edit("m1", 5, 3))
	require.NoError(t, d.Edit("m1", 6, 3))
	require.NoError(t, d.Edit("m1", 7, 3))
	assert.True(t, d.Pending("m1"))

	awaitCommits(t, committed, 1)

	require.Len(t, mock.RecordResultCalls, 1)
	call := mock.RecordResultCalls[0]
	assert.Equal(t, "m1", call.MatchID)
	assert.Equal(t, 7, call.ScoreA)
	assert.Equal(t, 3, call.ScoreB)
	assert.False(t, d.Pending("m1"))

	// A quiet period commits nothing further.
	select {
	case <-committed:
		t.Fatal("unexpected extra commit")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestDebouncerSeparateMatchesCommitIndependently(t *testing.T) {
	mock := tournament.NewMock()
	committed := make(chan struct{}, 4)
	mock.RecordResultFunc = func(string, int, int) (*tournament.Match, error) {
		committed <- struct{}{}
		return nil, nil
	}
	d := tournament.NewScoreDebouncer(mock, 10*time.Millisecond)
	defer d.Close()

	require.NoError(t, d.Edit("m1", 11, 9))
	require.NoError(t, d.Edit("m2", 2, 4))

	awaitCommits(t, committed, 2)

	ids := map[string]bool{}
	for _, call := range mock.RecordResultCalls {
		ids[call.MatchID] = true
	}
	assert.True(t, ids["m1"])
	assert.True(t, ids["m2"])
}

func TestDebouncerFlushCommitsImmediately(t *testing.T) {
	mock := tournament.NewMock()
	d := tournament.NewScoreDebouncer(mock, time.Hour)
	defer d.Close()

	require.NoError(t, d.Edit("m1", 21, 18))
	d.Flush()

	require.Len(t, mock.RecordResultCalls, 1)
	assert.Equal(t, 21, mock.RecordResultCalls[0].ScoreA)
	assert.False(t, d.Pending("m1"))
}

func TestDebouncerClosedRejectsEdits(t *testing.T) {
	mock := tournament.NewMock()
	d := tournament.NewScoreDebouncer(mock, time.Millisecond)
	d.Close()

	require.NoError(t, d.Edit("m1", 1, 0))
	time.Sleep(10 * time.Millisecond)
	assert.Empty(t, mock.RecordResultCalls)
}

func TestDebouncerRejectsEditsWhileLocked(t *testing.T) {
	mock := tournament.NewMock()
	mock.ProjectionFunc = func() (tournament.ProjectionState, error) {
		return tournament.ProjectionState{Locked: true}, nil
	}
	d := tournament.NewScoreDebouncer(mock, time.Millisecond)
	defer d.Close()

	err := d.Edit("m1", 21, 15)
	assert.ErrorIs(t, err, tournament.ErrProjectionLocked)
	assert.False(t, d.Pending("m1"))
}
