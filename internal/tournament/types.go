package tournament

import "time"

// Format selects the scheduling algorithm.
type Format string

const (
	FormatRoundRobin Format = "round-robin"
	FormatKnockout   Format = "knockout"
	FormatHybrid     Format = "hybrid"
)

// MatchStatus tracks a match through its lifecycle.
type MatchStatus string

const (
	StatusUpcoming  MatchStatus = "upcoming"
	StatusScheduled MatchStatus = "scheduled"
	StatusLive      MatchStatus = "live"
	StatusFinished  MatchStatus = "finished"
	StatusCompleted MatchStatus = "completed"
)

// Decided reports whether a match in this status contributes wins and losses.
func (s MatchStatus) Decided() bool {
	return s == StatusFinished || s == StatusCompleted
}

/// Slot is one side of a match: either a concrete team or a pending
// placeholder such as "Winner R1M2" for a round whose feeder is undecided.
type Slot struct {
	TeamID      string `json:"team_id,omitempty"`
	Placeholder string `json:"placeholder,omitempty"`
}

// Real reports whether the slot holds a concrete team.
func (s Slot) Real() bool {
	return s.TeamID != ""
}

// TeamSlot returns a slot holding a concrete team.
func TeamSlot(teamID string) Slot {
	return Slot{TeamID: teamID}
}

// PendingSlot returns a placeholder slot for a yet-undecided feeder.
func PendingSlot(label string) Slot {
	return Slot{Placeholder: label}
}

// Team is a tournament-scoped pairing of league players.
type Team struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	PlayerIDs []string  `json:"player_ids"`
	Wins      int       `json:"wins"`
	Losses    int       `json:"losses"`
	Points    int       `json:"points"`
	CreatedAt time.Time `json:"created_at"`
}

// Match is a single scheduled fixture.
type Match struct {
	ID           string      `json:"id"`
	A            Slot        `json:"a"`
	B            Slot        `json:"b"`
	ScoreA       int         `json:"score_a"`
	ScoreB       int         `json:"score_b"`
	Status       MatchStatus `json:"status"`
	Round        int         `json:"round"`
	RoundLabel   string      `json:"round_label"`
	Group        int         `json:"group,omitempty"` // hybrid format only, 1-based
	SortOrder    int         `json:"sort_order"`
	WinnerTeamID string      `json:"winner_team_id,omitempty"`
	CreatedAt    time.Time   `json:"created_at"`
}

// Standing is a team's derived rank. It is never stored; it is recomputed
// from the full match set on every read.
type Standing struct {
	TeamID       string `json:"team_id"`
	Name         string `json:"name"`
	Rank         int    `json:"rank"`
	Wins         int    `json:"wins"`
	Losses       int    `json:"losses"`
	Points       int    `json:"points"`
	Played       int    `json:"played"`
	ScoreFor     int    `json:"score_for"`
	ScoreAgainst int    `json:"score_against"`
}

// Diff is the team's score differential across all matches with two real sides.
func (s Standing) Diff() int {
	return s.ScoreFor - s.ScoreAgainst
}

// ScheduleState records how the current schedule was generated.
type ScheduleState struct {
	Format      Format    `json:"format"`
	GroupSize   int       `json:"group_size,omitempty"`
	GeneratedAt time.Time `json:"generated_at"`
}

// ProjectionMode selects how the knockout projector seeds its bracket.
type ProjectionMode string

const (
	ModeAuto  ProjectionMode = "auto"
	ModeSemi  ProjectionMode = "semi"
	ModeFinal ProjectionMode = "final"
)

// ProjectionState is the persisted, cross-session projection scratchpad:
// manually entered provisional scores keyed by slot ("sf1a", "fina", ...),
// the advancement mode, and the lock. It never touches committed match data.
type ProjectionState struct {
	Mode       ProjectionMode `json:"mode"`
	Scores     map[string]int `json:"scores"`
	Locked     bool           `json:"locked"`
	LockSecret string         `json:"-"`
	Name       string         `json:"name"`
	UpdatedAt  time.Time      `json:"updated_at"`
}

// ProjectedMatch is one preview fixture in a projection. Sides are display
// labels: either a seeded team name or a "Winner SF1" style placeholder.
type ProjectedMatch struct {
	A      string `json:"a"`
	B      string `json:"b"`
	ScoreA *int   `json:"score_a,omitempty"`
	ScoreB *int   `json:"score_b,omitempty"`
}

// Projection is the computed knockout preview.
type Projection struct {
	Rendered  bool             `json:"rendered"`
	SemiFinal []ProjectedMatch `json:"semi_finals,omitempty"`
	Final     *ProjectedMatch  `json:"final,omitempty"`
	Champion  string           `json:"champion,omitempty"`
}

// Snapshot is an immutable archived record of a finished tournament (or of a
// completed round-robin stage when Stage is set).
type Snapshot struct {
	ID             string     `json:"id"`
	Name           string     `json:"name"`
	Format         Format     `json:"format"`
	Stage          string     `json:"stage,omitempty"`
	TeamCount      int        `json:"team_count"`
	MatchCount     int        `json:"match_count"`
	CompletedCount int        `json:"completed_count"`
	Teams          []Team     `json:"teams"`
	Matches        []Match    `json:"matches"`
	Standings      []Standing `json:"standings"`
	WinnerName     string     `json:"winner_name,omitempty"`
	RunnerUpName   string     `json:"runner_up_name,omitempty"`
	EndedAt        time.Time  `json:"ended_at"`
}

// StageRoundRobin tags snapshots produced by EndStage.
const StageRoundRobin = "round-robin"
