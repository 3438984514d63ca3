package tournament

import "sort"

// ComputeStandings derives the ranking table from the current teams and
// matches. It is a pure function: nothing is cached or written back, so
// calling it twice on the same data yields identical results.
//
// Wins, losses and points (2 per win) come only from decided matches with two
// real sides and unequal scores; a drawn score leaves both teams untouched.
// Score totals accumulate over every match with two real sides regardless of
// status, so in-progress scores already show up in the differential.
//
// Order: points desc, then wins desc, then score differential desc. Teams
// identical on all three keys keep their input order.
func ComputeStandings(teams []Team, matches []Match) []Standing {
	byTeam := make(map[string]*Standing, len(teams))
	standings := make([]Standing, len(teams))
	for i, t := range teams {
		standings[i] = Standing{TeamID: t.ID, Name: t.Name}
		byTeam[t.ID] = &standings[i]
	}

	for _, m := range matches {
		if !m.A.Real() || !m.B.Real() {
			continue
		}
		a, okA := byTeam[m.A.TeamID]
		b, okB := byTeam[m.B.TeamID]
		if !okA || !okB {
			continue
		}

		a.ScoreFor += m.ScoreA
		a.ScoreAgainst += m.ScoreB
		b.ScoreFor += m.ScoreB
		b.ScoreAgainst += m.ScoreA

		if !m.Status.Decided() || m.ScoreA == m.ScoreB {
			continue
		}
		if m.ScoreA > m.ScoreB {
			a.Wins++
			a.Points += 2
			b.Losses++
		} else {
			b.Wins++
			b.Points += 2
			a.Losses++
		}
	}

	for i := range standings {
		standings[i].Played = standings[i].Wins + standings[i].Losses
	}

	sort.SliceStable(standings, func(i, j int) bool {
		si, sj := standings[i], standings[j]
		if si.Points != sj.Points {
			return si.Points > sj.Points
		}
		if si.Wins != sj.Wins {
			return si.Wins > sj.Wins
		}
		return si.Diff() > sj.Diff()
	})
	for i := range standings {
		standings[i].Rank = i + 1
	}
	return standings
}
