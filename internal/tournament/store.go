package tournament

import (
	"crypto/subtle"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// store backs the tournament engine with the shared SQL document store.
type store struct {
	db    *sql.DB
	mu    sync.RWMutex
	watch *Watcher
	rng   *rand.Rand
	now   func() time.Time
}

// New creates a tournament Store. The watcher receives the full current
// collection after every committed mutation.
func New(db *sql.DB, watch *Watcher) Store {
	return &store{
		db:    db,
		watch: watch,
		rng:   rand.New(rand.NewSource(time.Now().UnixNano())),
		now:   time.Now,
	}
}

// NewSeeded is New with a deterministic random source, for tests.
func NewSeeded(db *sql.DB, watch *Watcher, seed int64) Store {
	s := New(db, watch).(*store)
	s.rng = rand.New(rand.NewSource(seed))
	return s
}

func (s *store) Teams() ([]Team, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.readTeams(s.db)
}

type querier interface {
	Query(query string, args ...any) (*sql.Rows, error)
}

func (s *store) readTeams(q querier) ([]Team, error) {
	rows, err := q.Query(`
		SELECT id, name, player_ids, wins, losses, points, created_at
		FROM tournament_teams
		ORDER BY created_at, id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query teams: %w", err)
	}
	defer rows.Close()

	teams := []Team{}
	for rows.Next() {
		var t Team
		var playerIDs string
		var createdAt int64
		if err := rows.Scan(&t.ID, &t.Name, &playerIDs, &t.Wins, &t.Losses, &t.Points, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan team row: %w", err)
		}
		if err := json.Unmarshal([]byte(playerIDs), &t.PlayerIDs); err != nil {
			log.Error("Failed to unmarshal player_ids", "error", err, "teamID", t.ID)
		}
		t.CreatedAt = time.Unix(createdAt, 0)
		teams = append(teams, t)
	}
	return teams, rows.Err()
}

func (s *store) Matches() ([]Match, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.readMatches(s.db)
}

func (s *store) readMatches(q querier) ([]Match, error) {
	rows, err := q.Query(`
		SELECT id, team_a_id, team_a_label, team_b_id, team_b_label,
		       score_a, score_b, status, round, round_label, group_num,
		       sort_order, winner_team_id, created_at
		FROM tournament_matches
		ORDER BY sort_order
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query matches: %w", err)
	}
	defer rows.Close()

	matches := []Match{}
	for rows.Next() {
		m, err := scanMatch(rows)
		if err != nil {
			return nil, err
		}
		matches = append(matches, *m)
	}
	return matches, rows.Err()
}

func scanMatch(scanner interface{ Scan(...any) error }) (*Match, error) {
	var m Match
	var aID, aLabel, bID, bLabel, winner sql.NullString
	var group sql.NullInt64
	var status string
	var createdAt int64

	err := scanner.Scan(
		&m.ID, &aID, &aLabel, &bID, &bLabel,
		&m.ScoreA, &m.ScoreB, &status, &m.Round, &m.RoundLabel, &group,
		&m.SortOrder, &winner, &createdAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to scan match row: %w", err)
	}
	m.A = Slot{TeamID: aID.String, Placeholder: aLabel.String}
	m.B = Slot{TeamID: bID.String, Placeholder: bLabel.String}
	m.Status = MatchStatus(status)
	m.Group = int(group.Int64)
	m.WinnerTeamID = winner.String
	m.CreatedAt = time.Unix(createdAt, 0)
	return &m, nil
}

func (s *store) Standings() ([]Standing, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	teams, err := s.readTeams(s.db)
	if err != nil {
		return nil, err
	}
	matches, err := s.readMatches(s.db)
	if err != nil {
		return nil, err
	}
	return ComputeStandings(teams, matches), nil
}

func (s *store) ScheduleState() (ScheduleState, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return readScheduleState(s.db)
}

func (s *store) ReplaceTeams(drafts []TeamDraft) ([]Team, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM tournament_matches`); err != nil {
		return nil, fmt.Errorf("failed to delete matches: %w", err)
	}
	if _, err := tx.Exec(`DELETE FROM tournament_teams`); err != nil {
		return nil, fmt.Errorf("failed to delete teams: %w", err)
	}

	now := s.now().Unix()
	teams := make([]Team, 0, len(drafts))
	for _, d := range drafts {
		playerIDs, err := json.Marshal(d.PlayerIDs)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal player ids: %w", err)
		}
		id := uuid.New().String()
		if _, err := tx.Exec(`
			INSERT INTO tournament_teams (id, name, player_ids, wins, losses, points, created_at)
			VALUES (?, ?, ?, 0, 0, 0, ?)
		`, id, d.Name, string(playerIDs), now); err != nil {
			return nil, fmt.Errorf("failed to insert team: %w", err)
		}
		teams = append(teams, Team{ID: id, Name: d.Name, PlayerIDs: d.PlayerIDs, CreatedAt: time.Unix(now, 0)})
	}

	if err := resetProjectionTx(tx); err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit team replacement: %w", err)
	}

	log.Info("Replaced tournament teams", "count", len(teams))
	s.notifyLocked(CollectionTeams, CollectionMatches, CollectionProjection)
	return teams, nil
}

func (s *store) GenerateSchedule(format Format, groupSize int) ([]Match, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	teams, err := s.readTeams(s.db)
	if err != nil {
		return nil, err
	}
	// Builders validate before anything is written, so a failure here is a
	// guaranteed no-op.
	built, err := BuildSchedule(format, teams, groupSize, s.rng)
	if err != nil {
		return nil, err
	}

	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM tournament_matches`); err != nil {
		return nil, fmt.Errorf("failed to delete old schedule: %w", err)
	}

	now := s.now().Unix()
	matches := make([]Match, 0, len(built))
	for _, m := range built {
		m.ID = uuid.New().String()
		m.CreatedAt = time.Unix(now, 0)
		if err := insertMatchTx(tx, m, now); err != nil {
			return nil, err
		}
		matches = append(matches, m)
	}

	if err := resetProjectionTx(tx); err != nil {
		return nil, err
	}
	if _, err := tx.Exec(`
		UPDATE schedule_state SET format = ?, group_size = ?, generated_at = ? WHERE id = 1
	`, string(format), groupSize, now); err != nil {
		return nil, fmt.Errorf("failed to update schedule state: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit schedule: %w", err)
	}

	log.Info("Generated schedule", "format", format, "matches", len(matches))
	s.notifyLocked(CollectionMatches, CollectionProjection)
	return matches, nil
}

func insertMatchTx(tx *sql.Tx, m Match, now int64) error {
	var group any
	if m.Group > 0 {
		group = m.Group
	}
	_, err := tx.Exec(`
		INSERT INTO tournament_matches (
			id, team_a_id, team_a_label, team_b_id, team_b_label,
			score_a, score_b, status, round, round_label, group_num,
			sort_order, winner_team_id, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		m.ID, nullable(m.A.TeamID), nullable(m.A.Placeholder),
		nullable(m.B.TeamID), nullable(m.B.Placeholder),
		m.ScoreA, m.ScoreB, string(m.Status), m.Round, m.RoundLabel, group,
		m.SortOrder, nullable(m.WinnerTeamID), now,
	)
	if err != nil {
		return fmt.Errorf("failed to insert match: %w", err)
	}
	return nil
}

func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}

// resetProjectionTx wipes provisional scores and the lock. The tournament
// display name survives a regeneration.
func resetProjectionTx(tx *sql.Tx) error {
	if _, err := tx.Exec(`
		UPDATE projection_state SET scores = '{}', locked = 0, lock_secret = '' WHERE id = 1
	`); err != nil {
		return fmt.Errorf("failed to reset projection state: %w", err)
	}
	return nil
}

func (s *store) RecordResult(matchID string, scoreA, scoreB int) (*Match, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	row := tx.QueryRow(`
		SELECT id, team_a_id, team_a_label, team_b_id, team_b_label,
		       score_a, score_b, status, round, round_label, group_num,
		       sort_order, winner_team_id, created_at
		FROM tournament_matches WHERE id = ?
	`, matchID)
	m, err := scanMatch(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMatchNotFound
		}
		return nil, err
	}

	// Undo the statistical effect of a previously committed result before
	// applying the new one, so corrections never double-count.
	if m.Status.Decided() && m.WinnerTeamID != "" && m.A.Real() && m.B.Real() {
		loserID := m.A.TeamID
		if m.WinnerTeamID == m.A.TeamID {
			loserID = m.B.TeamID
		}
		if err := applyRecordTx(tx, m.WinnerTeamID, loserID, -1); err != nil {
			return nil, err
		}
	}

	winnerID := ""
	if m.A.Real() && m.B.Real() && scoreA != scoreB {
		if scoreA > scoreB {
			winnerID = m.A.TeamID
		} else {
			winnerID = m.B.TeamID
		}
	}

	status := StatusScheduled
	if winnerID != "" {
		status = StatusFinished
		loserID := m.A.TeamID
		if winnerID == m.A.TeamID {
			loserID = m.B.TeamID
		}
		if err := applyRecordTx(tx, winnerID, loserID, 1); err != nil {
			return nil, err
		}
	}

	if _, err := tx.Exec(`
		UPDATE tournament_matches
		SET score_a = ?, score_b = ?, status = ?, winner_team_id = ?
		WHERE id = ?
	`, scoreA, scoreB, string(status), nullable(winnerID), matchID); err != nil {
		return nil, fmt.Errorf("failed to update match: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit result: %w", err)
	}

	m.ScoreA, m.ScoreB, m.Status, m.WinnerTeamID = scoreA, scoreB, status, winnerID
	log.Info("Recorded match result", "matchID", matchID, "scoreA", scoreA, "scoreB", scoreB, "winner", winnerID)
	s.notifyLocked(CollectionMatches, CollectionTeams)
	return m, nil
}

// applyRecordTx shifts the winner's and loser's counters by one result in
// either direction: sign +1 applies a result, -1 reverses one.
func applyRecordTx(tx *sql.Tx, winnerID, loserID string, sign int) error {
	if _, err := tx.Exec(`
		UPDATE tournament_teams SET wins = wins + ?, points = points + ? WHERE id = ?
	`, sign, 2*sign, winnerID); err != nil {
		return fmt.Errorf("failed to update winner counters: %w", err)
	}
	if _, err := tx.Exec(`
		UPDATE tournament_teams SET losses = losses + ? WHERE id = ?
	`, sign, loserID); err != nil {
		return fmt.Errorf("failed to update loser counters: %w", err)
	}
	return nil
}

func (s *store) Projection() (ProjectionState, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return readProjection(s.db)
}

type rowQuerier interface {
	QueryRow(query string, args ...any) *sql.Row
}

func readProjection(q rowQuerier) (ProjectionState, error) {
	var st ProjectionState
	var mode, scores string
	var locked int
	var updatedAt int64
	err := q.QueryRow(`
		SELECT mode, scores, locked, lock_secret, name, updated_at
		FROM projection_state WHERE id = 1
	`).Scan(&mode, &scores, &locked, &st.LockSecret, &st.Name, &updatedAt)
	if err != nil {
		return st, fmt.Errorf("failed to read projection state: %w", err)
	}
	st.Mode = ProjectionMode(mode)
	st.Locked = locked != 0
	st.UpdatedAt = time.Unix(updatedAt, 0)
	if err := json.Unmarshal([]byte(scores), &st.Scores); err != nil {
		log.Error("Failed to unmarshal projection scores", "error", err)
		st.Scores = map[string]int{}
	}
	return st, nil
}

func (s *store) SetProjectionMode(mode ProjectionMode) error {
	return s.updateProjection(func(st *ProjectionState) error {
		st.Mode = mode
		return nil
	})
}

func (s *store) SetProjectionName(name string) error {
	return s.updateProjection(func(st *ProjectionState) error {
		st.Name = name
		return nil
	})
}

func (s *store) SetProvisionalScore(slot string, score int) error {
	return s.updateProjection(func(st *ProjectionState) error {
		if st.Locked {
			return ErrProjectionLocked
		}
		if st.Scores == nil {
			st.Scores = map[string]int{}
		}
		st.Scores[slot] = score
		return nil
	})
}

func (s *store) ClearProvisionalScores() error {
	return s.updateProjection(func(st *ProjectionState) error {
		if st.Locked {
			return ErrProjectionLocked
		}
		st.Scores = map[string]int{}
		return nil
	})
}

func (s *store) LockProjection(secret string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var unfinished int
	err := s.db.QueryRow(`
		SELECT COUNT(*) FROM tournament_matches WHERE status NOT IN (?, ?)
	`, string(StatusFinished), string(StatusCompleted)).Scan(&unfinished)
	if err != nil {
		return fmt.Errorf("failed to count unfinished matches: %w", err)
	}
	if unfinished > 0 {
		return ErrStageIncomplete
	}

	return s.writeProjectionLocked(func(st *ProjectionState) error {
		st.Locked = true
		st.LockSecret = secret
		return nil
	})
}

func (s *store) UnlockProjection(secret string) error {
	return s.updateProjection(func(st *ProjectionState) error {
		if subtle.ConstantTimeCompare([]byte(st.LockSecret), []byte(secret)) != 1 {
			return ErrActionUnauthorized
		}
		st.Locked = false
		st.LockSecret = ""
		return nil
	})
}

func (s *store) updateProjection(mutate func(*ProjectionState) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writeProjectionLocked(mutate)
}

func (s *store) writeProjectionLocked(mutate func(*ProjectionState) error) error {
	st, err := readProjection(s.db)
	if err != nil {
		return err
	}
	if err := mutate(&st); err != nil {
		return err
	}

	scores, err := json.Marshal(st.Scores)
	if err != nil {
		return fmt.Errorf("failed to marshal projection scores: %w", err)
	}
	locked := 0
	if st.Locked {
		locked = 1
	}
	if _, err := s.db.Exec(`
		UPDATE projection_state
		SET mode = ?, scores = ?, locked = ?, lock_secret = ?, name = ?, updated_at = ?
		WHERE id = 1
	`, string(st.Mode), string(scores), locked, st.LockSecret, st.Name, s.now().Unix()); err != nil {
		return fmt.Errorf("failed to write projection state: %w", err)
	}
	s.notifyLocked(CollectionProjection)
	return nil
}

func (s *store) Archive(name string) (*Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap, err := s.buildSnapshotLocked(name, "")
	if err != nil {
		return nil, err
	}

	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := insertSnapshotTx(tx, snap); err != nil {
		return nil, err
	}
	// Clearing live state commits together with the snapshot: a partial
	// archive is never observable.
	if _, err := tx.Exec(`DELETE FROM tournament_matches`); err != nil {
		return nil, fmt.Errorf("failed to clear matches: %w", err)
	}
	if _, err := tx.Exec(`DELETE FROM tournament_teams`); err != nil {
		return nil, fmt.Errorf("failed to clear teams: %w", err)
	}
	if err := resetProjectionTx(tx); err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit archive: %w", err)
	}

	log.Info("Archived tournament", "name", snap.Name, "teams", snap.TeamCount, "matches", snap.MatchCount)
	s.notifyLocked(CollectionTeams, CollectionMatches, CollectionProjection, CollectionHistory)
	return snap, nil
}

func (s *store) EndStage(name string) (*Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap, err := s.buildSnapshotLocked(name, StageRoundRobin)
	if err != nil {
		return nil, err
	}
	if snap.CompletedCount != snap.MatchCount {
		return nil, ErrStageIncomplete
	}

	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()
	if err := insertSnapshotTx(tx, snap); err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit stage snapshot: %w", err)
	}

	log.Info("Archived round-robin stage", "name", snap.Name, "matches", snap.MatchCount)
	s.notifyLocked(CollectionHistory)
	return snap, nil
}

func (s *store) buildSnapshotLocked(name, stage string) (*Snapshot, error) {
	teams, err := s.readTeams(s.db)
	if err != nil {
		return nil, err
	}
	matches, err := s.readMatches(s.db)
	if err != nil {
		return nil, err
	}
	if len(teams) == 0 && len(matches) == 0 {
		return nil, ErrNothingToArchive
	}

	state, err := readProjection(s.db)
	if err != nil {
		return nil, err
	}
	sched, err := readScheduleState(s.db)
	if err != nil {
		return nil, err
	}

	if name == "" {
		name = state.Name
	}
	if name == "" {
		name = "Tournament"
	}

	standings := ComputeStandings(teams, matches)
	completed := 0
	for _, m := range matches {
		if m.Status.Decided() {
			completed++
		}
	}

	snap := &Snapshot{
		ID:             uuid.New().String(),
		Name:           name,
		Format:         sched.Format,
		Stage:          stage,
		TeamCount:      len(teams),
		MatchCount:     len(matches),
		CompletedCount: completed,
		Teams:          teams,
		Matches:        matches,
		Standings:      standings,
		EndedAt:        s.now(),
	}
	if len(standings) > 0 {
		snap.WinnerName = standings[0].Name
	}
	if len(standings) > 1 {
		snap.RunnerUpName = standings[1].Name
	}
	return snap, nil
}

func readScheduleState(q rowQuerier) (ScheduleState, error) {
	var st ScheduleState
	var format string
	var generatedAt int64
	err := q.QueryRow(`SELECT format, group_size, generated_at FROM schedule_state WHERE id = 1`).
		Scan(&format, &st.GroupSize, &generatedAt)
	if err != nil {
		return st, fmt.Errorf("failed to read schedule state: %w", err)
	}
	st.Format = Format(format)
	st.GeneratedAt = time.Unix(generatedAt, 0)
	return st, nil
}

func insertSnapshotTx(tx *sql.Tx, snap *Snapshot) error {
	teamsJSON, err := json.Marshal(snap.Teams)
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot teams: %w", err)
	}
	matchesJSON, err := json.Marshal(snap.Matches)
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot matches: %w", err)
	}
	standingsJSON, err := json.Marshal(snap.Standings)
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot standings: %w", err)
	}
	if _, err := tx.Exec(`
		INSERT INTO history (
			id, name, format, stage, team_count, match_count, completed_count,
			teams_json, matches_json, standings_json, winner_name, runner_up_name, ended_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		snap.ID, snap.Name, string(snap.Format), nullable(snap.Stage),
		snap.TeamCount, snap.MatchCount, snap.CompletedCount,
		string(teamsJSON), string(matchesJSON), string(standingsJSON),
		nullable(snap.WinnerName), nullable(snap.RunnerUpName), snap.EndedAt.Unix(),
	); err != nil {
		return fmt.Errorf("failed to insert history snapshot: %w", err)
	}
	return nil
}

func (s *store) Snapshots() ([]Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.readSnapshots()
}

func (s *store) readSnapshots() ([]Snapshot, error) {
	rows, err := s.db.Query(`
		SELECT id, name, format, stage, team_count, match_count, completed_count,
		       teams_json, matches_json, standings_json, winner_name, runner_up_name, ended_at
		FROM history
		ORDER BY ended_at DESC, id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	defer rows.Close()

	snaps := []Snapshot{}
	for rows.Next() {
		var snap Snapshot
		var format string
		var stage, winner, runnerUp sql.NullString
		var teamsJSON, matchesJSON, standingsJSON string
		var endedAt int64
		if err := rows.Scan(
			&snap.ID, &snap.Name, &format, &stage, &snap.TeamCount, &snap.MatchCount,
			&snap.CompletedCount, &teamsJSON, &matchesJSON, &standingsJSON,
			&winner, &runnerUp, &endedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan history row: %w", err)
		}
		snap.Format = Format(format)
		snap.Stage = stage.String
		snap.WinnerName = winner.String
		snap.RunnerUpName = runnerUp.String
		snap.EndedAt = time.Unix(endedAt, 0)
		if err := json.Unmarshal([]byte(teamsJSON), &snap.Teams); err != nil {
			log.Error("Failed to unmarshal snapshot teams", "error", err, "snapshotID", snap.ID)
		}
		if err := json.Unmarshal([]byte(matchesJSON), &snap.Matches); err != nil {
			log.Error("Failed to unmarshal snapshot matches", "error", err, "snapshotID", snap.ID)
		}
		if err := json.Unmarshal([]byte(standingsJSON), &snap.Standings); err != nil {
			log.Error("Failed to unmarshal snapshot standings", "error", err, "snapshotID", snap.ID)
		}
		snaps = append(snaps, snap)
	}
	return snaps, rows.Err()
}

func (s *store) DeleteSnapshot(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.Exec(`DELETE FROM history WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete snapshot: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return ErrSnapshotNotFound
	}
	s.notifyLocked(CollectionHistory)
	return nil
}

func (s *store) Subscribe(collection Collection, fn Listener) {
	s.watch.Subscribe(collection, fn)
}

// notifyLocked pushes the full current set of each changed collection to the
// watcher. Callers hold the store mutex.
func (s *store) notifyLocked(collections ...Collection) {
	for _, c := range collections {
		var payload any
		var err error
		switch c {
		case CollectionTeams:
			payload, err = s.readTeams(s.db)
		case CollectionMatches:
			payload, err = s.readMatches(s.db)
		case CollectionProjection:
			payload, err = readProjection(s.db)
		case CollectionHistory:
			payload, err = s.readSnapshots()
		}
		if err != nil {
			log.Error("Failed to load collection for change notification", "collection", c, "error", err)
			continue
		}
		s.watch.Notify(c, payload)
	}
}
