package http

import (
	"math/rand"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/nrrc/shuttleboard/internal/metrics"
	"github.com/nrrc/shuttleboard/internal/tournament"
)

func (s *Server) ListTeamsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		teams, err := s.Tournament.Teams()
		if err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, teams)
	}
}

func (s *Server) ListMatchesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		matches, err := s.Tournament.Matches()
		if err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, matches)
	}
}

func (s *Server) StandingsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		standings, err := s.Tournament.Standings()
		if err != nil {
			respondError(w, err)
			return
		}
		s.Metrics.ObserveStandingsDuration(time.Since(start).Seconds())
		respondJSON(w, http.StatusOK, standings)
	}
}

func (s *Server) ScheduleStateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		state, err := s.Tournament.ScheduleState()
		if err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, state)
	}
}

func (s *Server) PairHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			PlayerIDs []string `json:"player_ids"`
		}
		// Body is optional. An empty body pairs every league player.
		_ = decodeBody(r, &body)

		players, err := s.League.Players()
		if err != nil {
			respondError(w, err)
			return
		}
		refs := make([]tournament.PlayerRef, 0, len(players))
		if len(body.PlayerIDs) > 0 {
			wanted := make(map[string]bool, len(body.PlayerIDs))
			for _, id := range body.PlayerIDs {
				wanted[id] = true
			}
			for _, p := range players {
				if wanted[p.ID] {
					refs = append(refs, tournament.PlayerRef{ID: p.ID, Name: p.Name})
				}
			}
		} else {
			for _, p := range players {
				refs = append(refs, tournament.PlayerRef{ID: p.ID, Name: p.Name})
			}
		}

		rng := rand.New(rand.NewSource(time.Now().UnixNano()))
		pairing, err := tournament.GeneratePairs(refs, rng)
		if err != nil {
			respondError(w, err)
			return
		}
		teams, err := s.Tournament.ReplaceTeams(pairing.Teams)
		if err != nil {
			respondError(w, err)
			return
		}
		log.Info("Paired players into teams", "players", len(refs), "teams", len(teams))
		respondJSON(w, http.StatusOK, map[string]any{
			"teams":    teams,
			"leftover": pairing.Leftover,
		})
	}
}

func (s *Server) GenerateScheduleHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Format    tournament.Format `json:"format"`
			GroupSize int               `json:"group_size"`
		}
		if err := decodeBody(r, &body); err != nil {
			respondError(w, err)
			return
		}
		switch body.Format {
		case tournament.FormatRoundRobin, tournament.FormatKnockout, tournament.FormatHybrid:
		default:
			respondJSON(w, http.StatusBadRequest, map[string]string{"error": "unknown format"})
			return
		}

		matches, err := s.Tournament.GenerateSchedule(body.Format, body.GroupSize)
		if err != nil {
			respondError(w, err)
			return
		}
		s.Metrics.IncSchedulesGenerated()
		s.Stats.Increment(metrics.KeySchedulesGenerated)
		log.Info("Generated schedule", "format", body.Format, "matches", len(matches))

		if err := s.Notifier.SendScheduleNotification(body.Format, len(matches), isDryRunFromContext(r)); err != nil {
			log.Error("Failed to send schedule notification", "error", err)
		}
		respondJSON(w, http.StatusOK, matches)
	}
}

func (s *Server) RecordResultHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		matchID := r.PathValue("id")
		var body struct {
			ScoreA int `json:"score_a"`
			ScoreB int `json:"score_b"`
		}
		if err := decodeBody(r, &body); err != nil {
			respondError(w, err)
			return
		}

		correction := s.wasDecided(matchID)
		match, err := s.Tournament.RecordResult(matchID, body.ScoreA, body.ScoreB)
		if err != nil {
			respondError(w, err)
			return
		}
		s.Metrics.IncResultsRecorded()
		s.Stats.Increment(metrics.KeyResultsRecorded)
		if correction {
			s.Metrics.IncResultCorrections()
		}

		teamA, teamB := s.teamNames(match)
		log.Info("Recorded result", "match", matchID, "scoreA", body.ScoreA, "scoreB", body.ScoreB, "correction", correction)
		if err := s.Notifier.SendResultNotification(match, teamA, teamB, isDryRunFromContext(r)); err != nil {
			log.Error("Failed to send result notification", "error", err)
		}
		respondJSON(w, http.StatusOK, match)
	}
}

func (s *Server) wasDecided(matchID string) bool {
	matches, err := s.Tournament.Matches()
	if err != nil {
		return false
	}
	for _, m := range matches {
		if m.ID == matchID {
			return m.Status.Decided()
		}
	}
	return false
}

func (s *Server) teamNames(m *tournament.Match) (string, string) {
	teams, err := s.Tournament.Teams()
	if err != nil {
		return m.A.Placeholder, m.B.Placeholder
	}
	byID := make(map[string]string, len(teams))
	for _, t := range teams {
		byID[t.ID] = t.Name
	}
	nameOf := func(slot tournament.Slot) string {
		if slot.Real() {
			if name, ok := byID[slot.TeamID]; ok {
				return name
			}
		}
		return slot.Placeholder
	}
	return nameOf(m.A), nameOf(m.B)
}

func (s *Server) LiveScoreHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		matchID := r.PathValue("id")
		var body struct {
			ScoreA int `json:"score_a"`
			ScoreB int `json:"score_b"`
		}
		if err := decodeBody(r, &body); err != nil {
			respondError(w, err)
			return
		}
		if err := s.Debouncer.Edit(matchID, body.ScoreA, body.ScoreB); err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusAccepted, map[string]string{"status": "pending"})
	}
}

func (s *Server) ProjectionHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		state, err := s.Tournament.Projection()
		if err != nil {
			respondError(w, err)
			return
		}
		standings, err := s.Tournament.Standings()
		if err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, map[string]any{
			"state":      state,
			"projection": tournament.Project(standings, state),
		})
	}
}

func (s *Server) SetProjectionModeHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Mode tournament.ProjectionMode `json:"mode"`
		}
		if err := decodeBody(r, &body); err != nil {
			respondError(w, err)
			return
		}
		switch body.Mode {
		case tournament.ModeAuto, tournament.ModeSemi, tournament.ModeFinal:
		default:
			respondJSON(w, http.StatusBadRequest, map[string]string{"error": "unknown projection mode"})
			return
		}
		if err := s.Tournament.SetProjectionMode(body.Mode); err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}

func (s *Server) SetProjectionNameHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Name string `json:"name"`
		}
		if err := decodeBody(r, &body); err != nil {
			respondError(w, err)
			return
		}
		if err := s.Tournament.SetProjectionName(body.Name); err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}

func (s *Server) SetProvisionalScoreHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Slot  string `json:"slot"`
			Score int    `json:"score"`
		}
		if err := decodeBody(r, &body); err != nil {
			respondError(w, err)
			return
		}
		if err := s.Tournament.SetProvisionalScore(body.Slot, body.Score); err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}

func (s *Server) ClearProvisionalScoresHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := s.Tournament.ClearProvisionalScores(); err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, map[string]string{"status": "cleared"})
	}
}

func (s *Server) LockProjectionHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Secret string `json:"secret"`
		}
		if err := decodeBody(r, &body); err != nil {
			respondError(w, err)
			return
		}
		if err := s.Tournament.LockProjection(body.Secret); err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, map[string]string{"status": "locked"})
	}
}

func (s *Server) UnlockProjectionHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Secret string `json:"secret"`
		}
		if err := decodeBody(r, &body); err != nil {
			respondError(w, err)
			return
		}
		if err := s.Tournament.UnlockProjection(body.Secret); err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, map[string]string{"status": "unlocked"})
	}
}

func (s *Server) ArchiveHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Name string `json:"name"`
		}
		_ = decodeBody(r, &body)

		snap, err := s.Tournament.Archive(body.Name)
		if err != nil {
			respondError(w, err)
			return
		}
		s.Metrics.IncArchives()
		s.Stats.Increment(metrics.KeyArchives)
		log.Info("Archived tournament", "name", snap.Name, "matches", snap.MatchCount)

		if err := s.Notifier.SendChampionNotification(snap, isDryRunFromContext(r)); err != nil {
			log.Error("Failed to send champion notification", "error", err)
		}
		respondJSON(w, http.StatusOK, snap)
	}
}

func (s *Server) EndStageHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Name string `json:"name"`
		}
		_ = decodeBody(r, &body)

		snap, err := s.Tournament.EndStage(body.Name)
		if err != nil {
			respondError(w, err)
			return
		}
		log.Info("Ended stage", "name", snap.Name, "stage", snap.Stage)
		respondJSON(w, http.StatusOK, snap)
	}
}

func (s *Server) HistoryHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snaps, err := s.Tournament.Snapshots()
		if err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, snaps)
	}
}

func (s *Server) DeleteSnapshotHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := s.Tournament.DeleteSnapshot(r.PathValue("id")); err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
	}
}
