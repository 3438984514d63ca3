package tournament

import (
	"fmt"
	"math/rand"
	"sort"
)

// DefaultGroupSize is the hybrid group size used when the caller passes 0.
const DefaultGroupSize = 3

// BuildSchedule dispatches to the builder for the given format. The returned
// matches carry no ids or timestamps; the store assigns those when the
// schedule is persisted.
func BuildSchedule(format Format, teams []Team, groupSize int, rng *rand.Rand) ([]Match, error) {
	switch format {
	case FormatKnockout:
		return BuildKnockout(teams)
	case FormatHybrid:
		return BuildHybrid(teams, groupSize, rng)
	default:
		return BuildRoundRobin(teams)
	}
}

// BuildRoundRobin generates a full single round robin using the circle
// method: one slot stays fixed while the rest rotate by one position each
// round. An odd team count gets a synthetic bye slot whose pairings are
// skipped. For an even count of n teams this yields n*(n-1)/2 matches across
// n-1 rounds.
func BuildRoundRobin(teams []Team) ([]Match, error) {
	if len(teams) < 2 {
		return nil, ErrInsufficientTeams
	}

	slots := make([]string, 0, len(teams)+1)
	for _, t := range teams {
		slots = append(slots, t.ID)
	}
	if len(slots)%2 != 0 {
		slots = append(slots, "") // bye
	}

	count := len(slots)
	rounds := count - 1
	matches := make([]Match, 0, count*(count-1)/2)
	order := 1

	for r := 1; r <= rounds; r++ {
		for i := 0; i < count/2; i++ {
			a, b := slots[i], slots[count-1-i]
			if a == "" || b == "" {
				continue
			}
			matches = append(matches, Match{
				A:          TeamSlot(a),
				B:          TeamSlot(b),
				Status:     StatusScheduled,
				Round:      r,
				RoundLabel: fmt.Sprintf("Round %d", r),
				SortOrder:  order,
			})
			order++
		}
		// Rotate everything but the first slot by one position.
		last := slots[count-1]
		copy(slots[2:], slots[1:count-1])
		slots[1] = last
	}
	return matches, nil
}

// BuildKnockout generates a single-elimination bracket. Teams are seeded by
// descending points (input order breaks ties), paired 1v2, 3v4 and so on. An
// unpaired trailing seed plays a placeholder referencing a pairing that does
// not exist, which is an automatic advance. Later rounds pair winner
// placeholders until a single final remains.
func BuildKnockout(teams []Team) ([]Match, error) {
	if len(teams) < 2 {
		return nil, ErrInsufficientTeams
	}

	seeded := make([]Team, len(teams))
	copy(seeded, teams)
	sort.SliceStable(seeded, func(i, j int) bool {
		return seeded[i].Points > seeded[j].Points
	})

	entries := make([]Slot, 0, len(seeded))
	for _, t := range seeded {
		entries = append(entries, TeamSlot(t.ID))
	}

	var matches []Match
	order := 1
	for r := 1; len(entries) > 1; r++ {
		label := knockoutRoundLabel(len(entries))
		inRound := 0
		next := make([]Slot, 0, (len(entries)+1)/2)

		for i := 0; i < len(entries); i += 2 {
			inRound++
			m := Match{
				A:          entries[i],
				Status:     StatusScheduled,
				Round:      r,
				RoundLabel: label,
				SortOrder:  order,
			}
			if i+1 < len(entries) {
				m.B = entries[i+1]
			} else {
				// Bye: the referenced pairing does not exist this round.
				m.B = PendingSlot(fmt.Sprintf("Winner R%dM%d", r, inRound+1))
			}
			matches = append(matches, m)
			next = append(next, PendingSlot(fmt.Sprintf("Winner R%dM%d", r, inRound)))
			order++
		}
		entries = next
	}
	return matches, nil
}

func knockoutRoundLabel(size int) string {
	switch {
	case size <= 2:
		return "Final"
	case size <= 4:
		return "Semi-finals"
	case size <= 8:
		return "Quarter-finals"
	default:
		return fmt.Sprintf("Round of %d", size)
	}
}

// BuildHybrid partitions shuffled teams into groups and generates a single
// round robin within each group, then appends a placeholder knockout phase:
// one semifinal for 2-3 groups, two for 4 or more, and a final. Group winner
// wiring beyond the fourth group is deliberately not generated; that mirrors
// the product's current bracket layout.
func BuildHybrid(teams []Team, groupSize int, rng *rand.Rand) ([]Match, error) {
	if len(teams) < 3 {
		return nil, ErrInsufficientTeams
	}
	if groupSize == 0 {
		groupSize = DefaultGroupSize
	}
	if groupSize < 3 {
		return nil, fmt.Errorf("group size must be at least 3, got %d", groupSize)
	}

	shuffled := make([]Team, len(teams))
	copy(shuffled, teams)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	var matches []Match
	order := 1
	groups := 0
	for start := 0; start < len(shuffled); start += groupSize {
		end := start + groupSize
		if end > len(shuffled) {
			end = len(shuffled)
		}
		groups++
		group := shuffled[start:end]
		// Every pair within the group plays once.
		for i := 0; i < len(group); i++ {
			for j := i + 1; j < len(group); j++ {
				matches = append(matches, Match{
					A:          TeamSlot(group[i].ID),
					B:          TeamSlot(group[j].ID),
					Status:     StatusScheduled,
					Round:      1,
					RoundLabel: fmt.Sprintf("Group %d", groups),
					Group:      groups,
					SortOrder:  order,
				})
				order++
			}
		}
	}

	if groups >= 2 {
		matches = append(matches, Match{
			A:          PendingSlot("Winner Group 1"),
			B:          PendingSlot("Winner Group 2"),
			Status:     StatusUpcoming,
			Round:      2,
			RoundLabel: "Semi-finals",
			SortOrder:  order,
		})
		order++
		if groups >= 4 {
			matches = append(matches, Match{
				A:          PendingSlot("Winner Group 3"),
				B:          PendingSlot("Winner Group 4"),
				Status:     StatusUpcoming,
				Round:      2,
				RoundLabel: "Semi-finals",
				SortOrder:  order,
			})
			order++
		}
	}

	matches = append(matches, Match{
		A:          PendingSlot("Winner SF 1"),
		B:          PendingSlot("Winner SF 2"),
		Status:     StatusUpcoming,
		Round:      3,
		RoundLabel: "Final",
		SortOrder:  order,
	})
	return matches, nil
}
