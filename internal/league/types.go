package league

import (
	"errors"
	"time"
)

// RequestType distinguishes what a pending request wants approved.
type RequestType string

const (
	RequestPlayer RequestType = "player"
	RequestMatch  RequestType = "match"
)

// Player is a league member with lifetime counters.
type Player struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Points    int       `json:"points"`
	Losses    int       `json:"losses"`
	CreatedAt time.Time `json:"created_at"`
}

// Match is an approved league doubles result. WinningTeam is 1 or 2.
type Match struct {
	ID          string    `json:"id"`
	Team1IDs    []string  `json:"team1_ids"`
	Team2IDs    []string  `json:"team2_ids"`
	WinningTeam int       `json:"winning_team"`
	PlayedAt    time.Time `json:"played_at"`
}

// PendingRequest is a submitted player or match awaiting admin approval.
// Player requests carry Name; match requests carry the team fields.
type PendingRequest struct {
	ID          string      `json:"id"`
	Type        RequestType `json:"type"`
	Name        string      `json:"name,omitempty"`
	Team1IDs    []string    `json:"team1_ids,omitempty"`
	Team2IDs    []string    `json:"team2_ids,omitempty"`
	WinningTeam int         `json:"winning_team,omitempty"`
	CreatedAt   time.Time   `json:"created_at"`
}

var (
	ErrRequestNotFound = errors.New("pending request not found")
	ErrPlayerNotFound  = errors.New("player not found")
	ErrInvalidRequest  = errors.New("invalid request payload")
)
