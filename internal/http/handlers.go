package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/nrrc/shuttleboard/internal/league"
	"github.com/nrrc/shuttleboard/internal/tournament"
)

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error("Failed to encode response", "error", err)
	}
}

// respondError maps domain sentinel errors onto HTTP statuses. Anything
// unrecognized is treated as a store failure.
func respondError(w http.ResponseWriter, err error) {
	var status int
	switch {
	case errors.Is(err, tournament.ErrMatchNotFound),
		errors.Is(err, tournament.ErrSnapshotNotFound),
		errors.Is(err, league.ErrRequestNotFound),
		errors.Is(err, league.ErrPlayerNotFound):
		status = http.StatusNotFound
	case errors.Is(err, tournament.ErrInsufficientTeams),
		errors.Is(err, tournament.ErrInsufficientParticipants),
		errors.Is(err, league.ErrInvalidRequest):
		status = http.StatusBadRequest
	case errors.Is(err, tournament.ErrNothingToArchive),
		errors.Is(err, tournament.ErrStageIncomplete),
		errors.Is(err, tournament.ErrProjectionLocked):
		status = http.StatusConflict
	case errors.Is(err, tournament.ErrActionUnauthorized):
		status = http.StatusForbidden
	default:
		log.Error("Store operation failed", "error", err)
		status = http.StatusServiceUnavailable
		err = tournament.ErrStoreUnavailable
	}
	respondJSON(w, status, map[string]string{"error": err.Error()})
}

func decodeBody(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("%w: %v", league.ErrInvalidRequest, err)
	}
	return nil
}

func (s *Server) HealthCheckHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.Debug("Received health check request")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "OK!")
	}
}

func (s *Server) StatsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stats, err := s.Stats.GetAll()
		if err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, stats)
	}
}

func (s *Server) ListPlayersHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		players, err := s.League.Players()
		if err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, players)
	}
}

func (s *Server) ListLeagueMatchesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		matches, err := s.League.Matches()
		if err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, matches)
	}
}

func (s *Server) ListRequestsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		requests, err := s.League.PendingRequests()
		if err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, requests)
	}
}

func (s *Server) SubmitPlayerRequestHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Name string `json:"name"`
		}
		if err := decodeBody(r, &body); err != nil {
			respondError(w, err)
			return
		}
		req, err := s.League.SubmitPlayerRequest(body.Name)
		if err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusCreated, req)
	}
}

func (s *Server) SubmitMatchRequestHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Team1IDs    []string `json:"team1_ids"`
			Team2IDs    []string `json:"team2_ids"`
			WinningTeam int      `json:"winning_team"`
		}
		if err := decodeBody(r, &body); err != nil {
			respondError(w, err)
			return
		}
		req, err := s.League.SubmitMatchRequest(body.Team1IDs, body.Team2IDs, body.WinningTeam)
		if err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusCreated, req)
	}
}

func (s *Server) ApproveRequestHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := s.League.ApproveRequest(r.PathValue("id")); err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, map[string]string{"status": "approved"})
	}
}

func (s *Server) RejectRequestHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := s.League.RejectRequest(r.PathValue("id")); err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, map[string]string{"status": "rejected"})
	}
}

func (s *Server) AddPointHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := s.League.AddPoint(r.PathValue("id")); err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}

func (s *Server) AddLossHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := s.League.AddLoss(r.PathValue("id")); err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}

func (s *Server) RemovePlayerHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := s.League.RemovePlayer(r.PathValue("id")); err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, map[string]string{"status": "removed"})
	}
}

func (s *Server) ResetLeagueHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := s.League.ResetAll(); err != nil {
			respondError(w, err)
			return
		}
		log.Info("League season reset via API")
		respondJSON(w, http.StatusOK, map[string]string{"status": "reset"})
	}
}

func (s *Server) ClearLeagueHistoryHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := s.League.ClearHistory(); err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, map[string]string{"status": "cleared"})
	}
}
