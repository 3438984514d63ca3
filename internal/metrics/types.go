package metrics

import "github.com/prometheus/client_golang/prometheus"

// Service holds all the Prometheus metrics for the application.
// By defining them all in one place, we ensure consistency in naming and labeling.
type Service struct {
	SchedulesGenerated prometheus.Counter
	ResultsRecorded    prometheus.Counter
	ResultCorrections  prometheus.Counter
	Archives           prometheus.Counter
	NotifSent          prometheus.Counter
	NotifFailed        prometheus.Counter
	StandingsDuration  prometheus.Histogram
	StartupTimeSeconds prometheus.Gauge
}

// Keys for the database-backed lifetime counters.
const (
	KeySchedulesGenerated = "schedules_generated"
	KeyResultsRecorded    = "results_recorded"
	KeyArchives           = "archives"
)
