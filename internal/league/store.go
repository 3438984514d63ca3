package league

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

type store struct {
	db  *sql.DB
	mu  sync.RWMutex
	now func() time.Time
}

// New creates a league Store on the shared database.
func New(db *sql.DB) Store {
	return &store{db: db, now: time.Now}
}

func (s *store) Players() ([]Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(`
		SELECT id, name, points, losses, created_at
		FROM players
		ORDER BY points DESC, name
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query players: %w", err)
	}
	defer rows.Close()

	players := []Player{}
	for rows.Next() {
		var p Player
		var createdAt int64
		if err := rows.Scan(&p.ID, &p.Name, &p.Points, &p.Losses, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan player row: %w", err)
		}
		p.CreatedAt = time.Unix(createdAt, 0)
		players = append(players, p)
	}
	return players, rows.Err()
}

func (s *store) Matches() ([]Match, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(`
		SELECT id, team1_ids, team2_ids, winning_team, played_at
		FROM league_matches
		ORDER BY played_at DESC, id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query league matches: %w", err)
	}
	defer rows.Close()

	matches := []Match{}
	for rows.Next() {
		var m Match
		var team1, team2 string
		var playedAt int64
		if err := rows.Scan(&m.ID, &team1, &team2, &m.WinningTeam, &playedAt); err != nil {
			return nil, fmt.Errorf("failed to scan league match row: %w", err)
		}
		if err := json.Unmarshal([]byte(team1), &m.Team1IDs); err != nil {
			log.Error("Failed to unmarshal team1_ids", "error", err, "matchID", m.ID)
		}
		if err := json.Unmarshal([]byte(team2), &m.Team2IDs); err != nil {
			log.Error("Failed to unmarshal team2_ids", "error", err, "matchID", m.ID)
		}
		m.PlayedAt = time.Unix(playedAt, 0)
		matches = append(matches, m)
	}
	return matches, rows.Err()
}

func (s *store) SubmitPlayerRequest(name string) (*PendingRequest, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: player name is empty", ErrInvalidRequest)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	req := &PendingRequest{
		ID:        uuid.New().String(),
		Type:      RequestPlayer,
		Name:      name,
		CreatedAt: s.now(),
	}
	if _, err := s.db.Exec(`
		INSERT INTO pending_requests (id, type, name, created_at)
		VALUES (?, ?, ?, ?)
	`, req.ID, string(req.Type), req.Name, req.CreatedAt.Unix()); err != nil {
		return nil, fmt.Errorf("failed to insert player request: %w", err)
	}
	return req, nil
}

func (s *store) SubmitMatchRequest(team1IDs, team2IDs []string, winningTeam int) (*PendingRequest, error) {
	if len(team1IDs) == 0 || len(team2IDs) == 0 {
		return nil, fmt.Errorf("%w: both teams need players", ErrInvalidRequest)
	}
	if winningTeam != 1 && winningTeam != 2 {
		return nil, fmt.Errorf("%w: winning team must be 1 or 2, got %d", ErrInvalidRequest, winningTeam)
	}

	team1, err := json.Marshal(team1IDs)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal team1 ids: %w", err)
	}
	team2, err := json.Marshal(team2IDs)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal team2 ids: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	req := &PendingRequest{
		ID:          uuid.New().String(),
		Type:        RequestMatch,
		Team1IDs:    team1IDs,
		Team2IDs:    team2IDs,
		WinningTeam: winningTeam,
		CreatedAt:   s.now(),
	}
	if _, err := s.db.Exec(`
		INSERT INTO pending_requests (id, type, team1_ids, team2_ids, winning_team, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, req.ID, string(req.Type), string(team1), string(team2), winningTeam, req.CreatedAt.Unix()); err != nil {
		return nil, fmt.Errorf("failed to insert match request: %w", err)
	}
	return req, nil
}

func (s *store) PendingRequests() ([]PendingRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(`
		SELECT id, type, name, team1_ids, team2_ids, winning_team, created_at
		FROM pending_requests
		ORDER BY created_at, id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query pending requests: %w", err)
	}
	defer rows.Close()

	requests := []PendingRequest{}
	for rows.Next() {
		req, err := scanRequest(rows)
		if err != nil {
			return nil, err
		}
		requests = append(requests, *req)
	}
	return requests, rows.Err()
}

func scanRequest(scanner interface{ Scan(...any) error }) (*PendingRequest, error) {
	var req PendingRequest
	var reqType string
	var name, team1, team2 sql.NullString
	var winning sql.NullInt64
	var createdAt int64
	if err := scanner.Scan(&req.ID, &reqType, &name, &team1, &team2, &winning, &createdAt); err != nil {
		return nil, fmt.Errorf("failed to scan pending request: %w", err)
	}
	req.Type = RequestType(reqType)
	req.Name = name.String
	req.WinningTeam = int(winning.Int64)
	req.CreatedAt = time.Unix(createdAt, 0)
	if team1.Valid {
		if err := json.Unmarshal([]byte(team1.String), &req.Team1IDs); err != nil {
			log.Error("Failed to unmarshal team1_ids", "error", err, "requestID", req.ID)
		}
	}
	if team2.Valid {
		if err := json.Unmarshal([]byte(team2.String), &req.Team2IDs); err != nil {
			log.Error("Failed to unmarshal team2_ids", "error", err, "requestID", req.ID)
		}
	}
	return &req, nil
}

func (s *store) ApproveRequest(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	row := tx.QueryRow(`
		SELECT id, type, name, team1_ids, team2_ids, winning_team, created_at
		FROM pending_requests WHERE id = ?
	`, id)
	req, err := scanRequest(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrRequestNotFound
		}
		return err
	}

	switch req.Type {
	case RequestPlayer:
		if err := insertPlayerTx(tx, req.Name, s.now().Unix()); err != nil {
			return err
		}
	case RequestMatch:
		if err := applyMatchTx(tx, req, s.now().Unix()); err != nil {
			return err
		}
	default:
		return fmt.Errorf("%w: unknown request type %q", ErrInvalidRequest, req.Type)
	}

	if _, err := tx.Exec(`DELETE FROM pending_requests WHERE id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete approved request: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit approval: %w", err)
	}
	log.Info("Approved pending request", "requestID", id, "type", req.Type)
	return nil
}

func insertPlayerTx(tx *sql.Tx, name string, now int64) error {
	if _, err := tx.Exec(`
		INSERT INTO players (id, name, points, losses, created_at)
		VALUES (?, ?, 0, 0, ?)
	`, uuid.New().String(), name, now); err != nil {
		return fmt.Errorf("failed to insert player: %w", err)
	}
	return nil
}

func applyMatchTx(tx *sql.Tx, req *PendingRequest, now int64) error {
	winners, losers := req.Team1IDs, req.Team2IDs
	if req.WinningTeam == 2 {
		winners, losers = losers, winners
	}
	for _, playerID := range winners {
		if _, err := tx.Exec(`UPDATE players SET points = points + 1 WHERE id = ?`, playerID); err != nil {
			return fmt.Errorf("failed to add point to player %s: %w", playerID, err)
		}
	}
	for _, playerID := range losers {
		if _, err := tx.Exec(`UPDATE players SET losses = losses + 1 WHERE id = ?`, playerID); err != nil {
			return fmt.Errorf("failed to add loss to player %s: %w", playerID, err)
		}
	}

	team1, err := json.Marshal(req.Team1IDs)
	if err != nil {
		return fmt.Errorf("failed to marshal team1 ids: %w", err)
	}
	team2, err := json.Marshal(req.Team2IDs)
	if err != nil {
		return fmt.Errorf("failed to marshal team2 ids: %w", err)
	}
	if _, err := tx.Exec(`
		INSERT INTO league_matches (id, team1_ids, team2_ids, winning_team, played_at)
		VALUES (?, ?, ?, ?, ?)
	`, uuid.New().String(), string(team1), string(team2), req.WinningTeam, now); err != nil {
		return fmt.Errorf("failed to insert league match: %w", err)
	}
	return nil
}

func (s *store) RejectRequest(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.Exec(`DELETE FROM pending_requests WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete request: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return ErrRequestNotFound
	}
	return nil
}

func (s *store) AddPoint(playerID string) error {
	return s.incrementPlayer(playerID, `UPDATE players SET points = points + 1 WHERE id = ?`)
}

func (s *store) AddLoss(playerID string) error {
	return s.incrementPlayer(playerID, `UPDATE players SET losses = losses + 1 WHERE id = ?`)
}

func (s *store) incrementPlayer(playerID, query string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.Exec(query, playerID)
	if err != nil {
		return fmt.Errorf("failed to update player %s: %w", playerID, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return ErrPlayerNotFound
	}
	return nil
}

func (s *store) RemovePlayer(playerID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.Exec(`DELETE FROM players WHERE id = ?`, playerID)
	if err != nil {
		return fmt.Errorf("failed to delete player: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return ErrPlayerNotFound
	}
	return nil
}

func (s *store) ResetAll() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`UPDATE players SET points = 0, losses = 0`); err != nil {
		return fmt.Errorf("failed to zero player counters: %w", err)
	}
	if _, err := tx.Exec(`DELETE FROM league_matches`); err != nil {
		return fmt.Errorf("failed to clear match history: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit season reset: %w", err)
	}
	log.Info("Reset league season")
	return nil
}

func (s *store) ClearHistory() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.db.Exec(`DELETE FROM league_matches`); err != nil {
		return fmt.Errorf("failed to clear match history: %w", err)
	}
	return nil
}
