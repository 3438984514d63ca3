package tournament_test

import (
	"testing"

	"github.com/nrrc/shuttleboard/internal/tournament"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeStandings(names ...string) []tournament.Standing {
	standings := make([]tournament.Standing, 0, len(names))
	for i, name := range names {
		standings = append(standings, tournament.Standing{
			TeamID: name,
			Name:   name,
			Rank:   i + 1,
		})
	}
	return standings
}

func autoState(scores map[string]int) tournament.ProjectionState {
	return tournament.ProjectionState{Mode: tournament.ModeAuto, Scores: scores}
}

func TestProjectTooFewStandings(t *testing.T) {
	proj := tournament.Project(makeStandings("A"), autoState(nil))
	assert.False(t, proj.Rendered)
	assert.Nil(t, proj.Final)
}

func TestProjectUnderFourGoesStraightToFinal(t *testing.T) {
	proj := tournament.Project(makeStandings("A", "B", "C"), autoState(nil))
	require.True(t, proj.Rendered)
	assert.Empty(t, proj.SemiFinal)
	require.NotNil(t, proj.Final)
	assert.Equal(t, "A", proj.Final.A)
	assert.Equal(t, "B", proj.Final.B)
	assert.Empty(t, proj.Champion)
}

func TestProjectCrossSeedsSemis(t *testing.T) {
	proj := tournament.Project(makeStandings("A", "B", "C", "D"), autoState(nil))
	require.True(t, proj.Rendered)
	require.Len(t, proj.SemiFinal, 2)

	assert.Equal(t, "A", proj.SemiFinal[0].A)
	assert.Equal(t, "D", proj.SemiFinal[0].B)
	assert.Equal(t, "B", proj.SemiFinal[1].A)
	assert.Equal(t, "C", proj.SemiFinal[1].B)

	require.NotNil(t, proj.Final)
	assert.Equal(t, "Winner SF1", proj.Final.A)
	assert.Equal(t, "Winner SF2", proj.Final.B)
}

func TestProjectProvisionalScoresAdvanceWinners(t *testing.T) {
	scores := map[string]int{
		tournament.SlotSemi1A: 21, tournament.SlotSemi1B: 15,
		tournament.SlotSemi2A: 18, tournament.SlotSemi2B: 21,
		tournament.SlotFinalA: 21, tournament.SlotFinalB: 12,
	}
	proj := tournament.Project(makeStandings("A", "B", "C", "D"), autoState(scores))

	require.NotNil(t, proj.Final)
	assert.Equal(t, "A", proj.Final.A)
	assert.Equal(t, "C", proj.Final.B)
	assert.Equal(t, "A", proj.Champion)
}

func TestProjectTiedProvisionalScoreKeepsPlaceholder(t *testing.T) {
	scores := map[string]int{
		tournament.SlotSemi1A: 19, tournament.SlotSemi1B: 19,
	}
	proj := tournament.Project(makeStandings("A", "B", "C", "D"), autoState(scores))
	require.NotNil(t, proj.Final)
	assert.Equal(t, "Winner SF1", proj.Final.A)
}

func TestProjectFinalModeSkipsSemis(t *testing.T) {
	state := tournament.ProjectionState{Mode: tournament.ModeFinal}
	proj := tournament.Project(makeStandings("A", "B", "C", "D", "E"), state)

	assert.Empty(t, proj.SemiFinal)
	require.NotNil(t, proj.Final)
	assert.Equal(t, "A", proj.Final.A)
	assert.Equal(t, "B", proj.Final.B)
}

func TestProjectChampionRequiresDecisiveFinal(t *testing.T) {
	scores := map[string]int{
		tournament.SlotFinalA: 15, tournament.SlotFinalB: 15,
	}
	proj := tournament.Project(makeStandings("A", "B"), autoState(scores))
	assert.Empty(t, proj.Champion)
}
