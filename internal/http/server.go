package http

import (
	"net/http"

	"github.com/nrrc/shuttleboard/internal/admin"
	"github.com/nrrc/shuttleboard/internal/config"
	"github.com/nrrc/shuttleboard/internal/league"
	"github.com/nrrc/shuttleboard/internal/metrics"
	"github.com/nrrc/shuttleboard/internal/notifier"
	"github.com/nrrc/shuttleboard/internal/realtime"
	"github.com/nrrc/shuttleboard/internal/tournament"
)

func NewServer(
	leagueStore league.Store,
	tournamentStore tournament.Store,
	debouncer *tournament.ScoreDebouncer,
	verifier admin.Verifier,
	metricsSvc metrics.Metrics,
	statsStore metrics.MetricsStore,
	metricsHandler http.Handler,
	notif notifier.Notifier,
	hub *realtime.Hub,
	cfg config.Config,
) *Server {
	server := &Server{
		League:         leagueStore,
		Tournament:     tournamentStore,
		Debouncer:      debouncer,
		Admin:          verifier,
		Metrics:        metricsSvc,
		Stats:          statsStore,
		MetricsHandler: metricsHandler,
		Notifier:       notif,
		Hub:            hub,
		Cfg:            cfg,
		Router:         http.NewServeMux(),
	}

	server.routes()
	return server
}

func (s *Server) routes() {
	// All handlers are wrapped with middleware using the Chain helper.
	// Privileged routes add adminMiddleware on top of paramsMiddleware.
	privileged := func(h http.Handler) http.Handler {
		return Chain(h, paramsMiddleware, s.adminMiddleware)
	}
	open := func(h http.Handler) http.Handler {
		return Chain(h, paramsMiddleware)
	}

	s.Router.Handle("/metrics", s.MetricsHandler)
	s.Router.Handle("GET /health", open(s.HealthCheckHandler()))
	s.Router.Handle("GET /stats", open(s.StatsHandler()))
	s.Router.Handle("GET /ws", http.HandlerFunc(s.Hub.ServeWS))

	// League roster and approval queue.
	s.Router.Handle("GET /league/players", open(s.ListPlayersHandler()))
	s.Router.Handle("GET /league/matches", open(s.ListLeagueMatchesHandler()))
	s.Router.Handle("GET /league/requests", open(s.ListRequestsHandler()))
	s.Router.Handle("POST /league/requests/player", open(s.SubmitPlayerRequestHandler()))
	s.Router.Handle("POST /league/requests/match", open(s.SubmitMatchRequestHandler()))
	s.Router.Handle("POST /league/requests/{id}/approve", privileged(s.ApproveRequestHandler()))
	s.Router.Handle("POST /league/requests/{id}/reject", privileged(s.RejectRequestHandler()))
	s.Router.Handle("POST /league/players/{id}/point", privileged(s.AddPointHandler()))
	s.Router.Handle("POST /league/players/{id}/loss", privileged(s.AddLossHandler()))
	s.Router.Handle("DELETE /league/players/{id}", privileged(s.RemovePlayerHandler()))
	s.Router.Handle("POST /league/reset", privileged(s.ResetLeagueHandler()))
	s.Router.Handle("POST /league/history/clear", privileged(s.ClearLeagueHistoryHandler()))

	// Tournament engine.
	s.Router.Handle("GET /tournament/teams", open(s.ListTeamsHandler()))
	s.Router.Handle("GET /tournament/matches", open(s.ListMatchesHandler()))
	s.Router.Handle("GET /tournament/standings", open(s.StandingsHandler()))
	s.Router.Handle("GET /tournament/schedule", open(s.ScheduleStateHandler()))
	s.Router.Handle("POST /tournament/pair", privileged(s.PairHandler()))
	s.Router.Handle("POST /tournament/schedule", privileged(s.GenerateScheduleHandler()))
	s.Router.Handle("POST /tournament/matches/{id}/result", privileged(s.RecordResultHandler()))
	s.Router.Handle("POST /tournament/matches/{id}/score", open(s.LiveScoreHandler()))

	// Knockout projection scratchpad.
	s.Router.Handle("GET /tournament/projection", open(s.ProjectionHandler()))
	s.Router.Handle("POST /tournament/projection/mode", privileged(s.SetProjectionModeHandler()))
	s.Router.Handle("POST /tournament/projection/name", privileged(s.SetProjectionNameHandler()))
	s.Router.Handle("POST /tournament/projection/score", open(s.SetProvisionalScoreHandler()))
	s.Router.Handle("POST /tournament/projection/clear", open(s.ClearProvisionalScoresHandler()))
	s.Router.Handle("POST /tournament/projection/lock", open(s.LockProjectionHandler()))
	s.Router.Handle("POST /tournament/projection/unlock", open(s.UnlockProjectionHandler()))

	// Archival.
	s.Router.Handle("POST /tournament/archive", privileged(s.ArchiveHandler()))
	s.Router.Handle("POST /tournament/end-stage", privileged(s.EndStageHandler()))
	s.Router.Handle("GET /history", open(s.HistoryHandler()))
	s.Router.Handle("DELETE /history/{id}", privileged(s.DeleteSnapshotHandler()))
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Router.ServeHTTP(w, r)
}
