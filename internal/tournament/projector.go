package tournament

// Projection slot keys for manually entered provisional scores.
const (
	SlotSemi1A = "sf1a"
	SlotSemi1B = "sf1b"
	SlotSemi2A = "sf2a"
	SlotSemi2B = "sf2b"
	SlotFinalA = "fina"
	SlotFinalB = "finb"
)

// Project previews a knockout phase from the current standings without
// committing any matches. Provisional scores come from the projection state;
// an unequal pair of scores advances the higher scorer's label, an equal or
// missing pair leaves a "Winner SF1" style placeholder. With fewer than two
// standings there is nothing to project.
func Project(standings []Standing, state ProjectionState) Projection {
	if len(standings) < 2 {
		return Projection{}
	}

	scores := state.Scores
	if scores == nil {
		scores = map[string]int{}
	}

	proj := Projection{Rendered: true}

	if state.Mode == ModeFinal || len(standings) < 4 {
		final := projectedMatch(standings[0].Name, standings[1].Name, scores, SlotFinalA, SlotFinalB)
		proj.Final = &final
		proj.Champion = winnerLabel(final, "")
		return proj
	}

	// Cross-seed so the top two can only meet in the final.
	sf1 := projectedMatch(standings[0].Name, standings[3].Name, scores, SlotSemi1A, SlotSemi1B)
	sf2 := projectedMatch(standings[1].Name, standings[2].Name, scores, SlotSemi2A, SlotSemi2B)
	proj.SemiFinal = []ProjectedMatch{sf1, sf2}

	final := projectedMatch(
		winnerLabel(sf1, "Winner SF1"),
		winnerLabel(sf2, "Winner SF2"),
		scores, SlotFinalA, SlotFinalB,
	)
	proj.Final = &final
	proj.Champion = winnerLabel(final, "")
	return proj
}

func projectedMatch(a, b string, scores map[string]int, keyA, keyB string) ProjectedMatch {
	m := ProjectedMatch{A: a, B: b}
	if v, ok := scores[keyA]; ok {
		m.ScoreA = &v
	}
	if v, ok := scores[keyB]; ok {
		m.ScoreB = &v
	}
	return m
}

// winnerLabel resolves a projected match to its winner's label, or to the
// fallback when the provisional scores are absent or tied.
func winnerLabel(m ProjectedMatch, fallback string) string {
	if m.ScoreA == nil || m.ScoreB == nil || *m.ScoreA == *m.ScoreB {
		return fallback
	}
	if *m.ScoreA > *m.ScoreB {
		return m.A
	}
	return m.B
}
