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

type Server struct {
	League         league.Store
	Tournament     tournament.Store
	Debouncer      *tournament.ScoreDebouncer
	Admin          admin.Verifier
	Metrics        metrics.Metrics
	Stats          metrics.MetricsStore
	MetricsHandler http.Handler
	Notifier       notifier.Notifier
	Hub            *realtime.Hub
	Cfg            config.Config
	Router         *http.ServeMux
}
