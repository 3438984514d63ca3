package tournament

import (
	"fmt"
	"math/rand"
)

// PlayerRef is the slice of a league player the pairing generator needs.
type PlayerRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// TeamDraft is a generated pairing before it is persisted as a Team.
type TeamDraft struct {
	Name      string   `json:"name"`
	PlayerIDs []string `json:"player_ids"`
}

// Pairing is the result of partitioning players into doubles teams.
// Leftover is set when an odd player could not be paired.
type Pairing struct {
	Teams    []TeamDraft `json:"teams"`
	Leftover *PlayerRef  `json:"leftover,omitempty"`
}

// GeneratePairs shuffles the given players uniformly and groups consecutive
// pairs into doubles teams named "A & B". Every input player appears in
// exactly one team, except a trailing unpaired player which is reported as
// Leftover. rng may be seeded by tests for deterministic output.
func GeneratePairs(players []PlayerRef, rng *rand.Rand) (Pairing, error) {
	if len(players) < 2 {
		return Pairing{}, ErrInsufficientParticipants
	}

	shuffled := make([]PlayerRef, len(players))
	copy(shuffled, players)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	pairing := Pairing{Teams: make([]TeamDraft, 0, len(shuffled)/2)}
	for i := 0; i+1 < len(shuffled); i += 2 {
		p1, p2 := shuffled[i], shuffled[i+1]
		pairing.Teams = append(pairing.Teams, TeamDraft{
			Name:      fmt.Sprintf("%s & %s", p1.Name, p2.Name),
			PlayerIDs: []string{p1.ID, p2.ID},
		})
	}
	if len(shuffled)%2 != 0 {
		leftover := shuffled[len(shuffled)-1]
		pairing.Leftover = &leftover
	}
	return pairing, nil
}
