package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/nrrc/shuttleboard/internal/admin"
	"github.com/nrrc/shuttleboard/internal/config"
	"github.com/nrrc/shuttleboard/internal/database"
	server "github.com/nrrc/shuttleboard/internal/http"
	"github.com/nrrc/shuttleboard/internal/league"
	"github.com/nrrc/shuttleboard/internal/metrics"
	"github.com/nrrc/shuttleboard/internal/notifier/slack"
	"github.com/nrrc/shuttleboard/internal/pubsub"
	"github.com/nrrc/shuttleboard/internal/realtime"
	"github.com/nrrc/shuttleboard/internal/tournament"
)

func main() {
	startTime := time.Now()
	log.SetFormatter(log.JSONFormatter)
	cfg := config.Load()

	db, dbTeardown, err := database.InitDB(cfg.DBName, cfg.Turso.PrimaryURL, cfg.Turso.AuthToken, cfg.MigrationsDir)
	dbInitDuration := time.Since(startTime)
	log.Info("Database initialization time recorded", "duration_ms", dbInitDuration.Milliseconds())
	if err != nil {
		log.Fatalf("Failed to initialize database: %s", err)
	}
	defer func() {
		log.Info("Closing database connection")
		dbTeardown()
	}()

	watcher := tournament.NewWatcher()
	tournamentStore := tournament.New(db, watcher)
	leagueStore := league.New(db)
	metricsSvc := metrics.NewService()
	metricsHandler := metrics.NewMetricsHandler()
	statsStore := metrics.New(db)
	notifier := slack.NewNotifier(cfg.Slack.Token, cfg.Slack.ChannelID, metricsSvc)
	broker := pubsub.New(cfg.ProjectID)
	defer broker.Close()

	// Committed store changes fan out to downstream consumers over pubsub.
	events := map[tournament.Collection]pubsub.EventType{
		tournament.CollectionTeams:      pubsub.EventTeamsChanged,
		tournament.CollectionMatches:    pubsub.EventMatchesChanged,
		tournament.CollectionProjection: pubsub.EventProjectionChanged,
		tournament.CollectionHistory:    pubsub.EventHistoryChanged,
	}
	for collection, event := range events {
		event := event
		watcher.Subscribe(collection, func(_ tournament.Collection, payload any) {
			if err := broker.SendMessage(event, payload); err != nil {
				log.Error("Failed to publish change event", "event", event, "error", err)
			}
		})
	}

	hub := realtime.NewHub()
	go hub.Run()
	defer hub.Stop()
	hub.BindStore(tournamentStore)

	debouncer := tournament.NewScoreDebouncer(tournamentStore, cfg.ScoreDebounce)
	defer debouncer.Close()

	s := server.NewServer(
		leagueStore,
		tournamentStore,
		debouncer,
		admin.New(cfg.AdminPIN),
		metricsSvc,
		statsStore,
		metricsHandler,
		notifier,
		hub,
		cfg,
	)

	startupDuration := time.Since(startTime)
	metricsSvc.SetStartupTime(startupDuration.Seconds())
	log.Info("Startup time recorded", "duration_ms", startupDuration.Milliseconds())

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: s,
	}

	serverErrors := make(chan error, 1)
	go func() {
		log.Info("Server started", "port", cfg.Port)
		serverErrors <- srv.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	case sig := <-shutdown:
		log.Info("Shutdown signal received", "signal", sig)

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			log.Error("Server shutdown failed", "error", err)
		} else {
			log.Info("Server gracefully stopped")
		}

		// Pending live-score edits commit before the store goes away.
		debouncer.Flush()
	}

	log.Info("Server process shutting down")
}
