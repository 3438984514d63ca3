package tournament_test

import (
	"testing"

	"github.com/nrrc/shuttleboard/internal/tournament"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func finished(aID, bID string, scoreA, scoreB int) tournament.Match {
	m := tournament.Match{
		A:      tournament.TeamSlot(aID),
		B:      tournament.TeamSlot(bID),
		ScoreA: scoreA,
		ScoreB: scoreB,
		Status: tournament.StatusFinished,
	}
	if scoreA > scoreB {
		m.WinnerTeamID = aID
	} else if scoreB > scoreA {
		m.WinnerTeamID = bID
	}
	return m
}

func TestComputeStandingsOrdering(t *testing.T) {
	teams := makeTeams(3)
	matches := []tournament.Match{
		finished("t1", "t2", 21, 10),
		finished("t1", "t3", 21, 15),
		finished("t2", "t3", 21, 18),
	}

	standings := tournament.ComputeStandings(teams, matches)
	require.Len(t, standings, 3)

	assert.Equal(t, "t1", standings[0].TeamID)
	assert.Equal(t, 1, standings[0].Rank)
	assert.Equal(t, 2, standings[0].Wins)
	assert.Equal(t, 4, standings[0].Points)
	assert.Equal(t, 2, standings[0].Played)

	assert.Equal(t, "t2", standings[1].TeamID)
	assert.Equal(t, 2, standings[1].Points)
	assert.Equal(t, 1, standings[1].Losses)

	assert.Equal(t, "t3", standings[2].TeamID)
	assert.Equal(t, 0, standings[2].Points)
	assert.Equal(t, 2, standings[2].Losses)
}

func TestComputeStandingsDrawCountsNoResult(t *testing.T) {
	teams := makeTeams(2)
	matches := []tournament.Match{finished("t1", "t2", 15, 15)}

	standings := tournament.ComputeStandings(teams, matches)
	for _, s := range standings {
		assert.Zero(t, s.Wins)
		assert.Zero(t, s.Losses)
		assert.Zero(t, s.Points)
		assert.Zero(t, s.Played)
		assert.Equal(t, 15, s.ScoreFor)
		assert.Equal(t, 15, s.ScoreAgainst)
	}
}

func TestComputeStandingsLiveScoresIntoDifferentialOnly(t *testing.T) {
	teams := makeTeams(2)
	matches := []tournament.Match{{
		A:      tournament.TeamSlot("t1"),
		B:      tournament.TeamSlot("t2"),
		ScoreA: 11,
		ScoreB: 7,
		Status: tournament.StatusLive,
	}}

	standings := tournament.ComputeStandings(teams, matches)
	require.Equal(t, "t1", standings[0].TeamID)
	assert.Equal(t, 4, standings[0].Diff())
	assert.Zero(t, standings[0].Wins)
	assert.Zero(t, standings[0].Points)
}

func TestComputeStandingsDiffBreaksTies(t *testing.T) {
	teams := makeTeams(4)
	// t1 and t2 both win once; t2's margin is bigger.
	matches := []tournament.Match{
		finished("t1", "t3", 21, 18),
		finished("t2", "t4", 21, 5),
	}

	standings := tournament.ComputeStandings(teams, matches)
	assert.Equal(t, "t2", standings[0].TeamID)
	assert.Equal(t, "t1", standings[1].TeamID)
}

func TestComputeStandingsSkipsPlaceholderMatches(t *testing.T) {
	teams := makeTeams(2)
	matches := []tournament.Match{{
		A:      tournament.TeamSlot("t1"),
		B:      tournament.PendingSlot("Winner R1M2"),
		ScoreA: 21,
		ScoreB: 0,
		Status: tournament.StatusFinished,
	}}

	standings := tournament.ComputeStandings(teams, matches)
	for _, s := range standings {
		assert.Zero(t, s.Wins)
		assert.Zero(t, s.ScoreFor)
	}
}

func TestComputeStandingsIsPure(t *testing.T) {
	teams := makeTeams(3)
	matches := []tournament.Match{
		finished("t1", "t2", 21, 10),
		finished("t2", "t3", 21, 19),
	}

	first := tournament.ComputeStandings(teams, matches)
	second := tournament.ComputeStandings(teams, matches)
	assert.Equal(t, first, second)

	// Team counters on the input are never touched.
	for _, team := range teams {
		assert.Zero(t, team.Wins)
		assert.Zero(t, team.Points)
	}
}

func TestComputeStandingsEqualRecordsKeepInputOrder(t *testing.T) {
	teams := makeTeams(3)
	standings := tournament.ComputeStandings(teams, nil)

	assert.Equal(t, "t1", standings[0].TeamID)
	assert.Equal(t, "t2", standings[1].TeamID)
	assert.Equal(t, "t3", standings[2].TeamID)
}
