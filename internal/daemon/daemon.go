package daemon

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"flightstrip/internal/config"
	"flightstrip/internal/database"
	"flightstrip/internal/flightdata"
	"flightstrip/internal/pixoo"
	"flightstrip/internal/scheduler"
	"flightstrip/internal/strip"
	"flightstrip/internal/tasks"
)

// Daemon wires the flight fetcher, compositor, device client and sighting
// log together behind one scheduled update task.
type Daemon struct {
	ctx       context.Context
	cancel    context.CancelFunc
	scheduler *scheduler.Scheduler
	database  *database.DB // nil when the sighting log is disabled
}

// New creates a new daemon instance
func New(cfg *config.Config) (*Daemon, error) {
	palette, err := cfg.Palette()
	if err != nil {
		return nil, fmt.Errorf("failed to parse palette: %w", err)
	}

	var db *database.DB
	var sightingLog tasks.SightingLog
	if cfg.DBPath != "" {
		db, err = database.New(cfg.DBPath)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		sightingLog = db.SightingRepository()
	} else {
		slog.Info("Sighting log disabled")
	}

	logos, err := flightdata.NewLogoCache(
		cfg.LogoDir,
		flightdata.DefaultLogoBaseURL,
		palette.Background,
		&http.Client{Timeout: 15 * time.Second},
	)
	if err != nil {
		if db != nil {
			db.Close()
		}
		return nil, fmt.Errorf("failed to initialize logo cache: %w", err)
	}

	fetcher := flightdata.NewFetcher(cfg.SearchRadiusKm, logos)
	builder := strip.NewBuilder(
		strip.DefaultLayout(),
		palette,
		time.Duration(cfg.FrameSpeedMs)*time.Millisecond,
	)
	device := pixoo.NewClient(cfg.PixooAddr)

	updater := tasks.NewStripUpdater(
		fetcher,
		builder,
		device,
		sightingLog,
		cfg.Latitude,
		cfg.Longitude,
		time.Duration(cfg.RefreshSeconds)*time.Second,
	)

	ctx, cancel := context.WithCancel(context.Background())
	sched := scheduler.New(ctx)
	sched.AddTask(updater)

	return &Daemon{
		ctx:       ctx,
		cancel:    cancel,
		scheduler: sched,
		database:  db,
	}, nil
}

// Start begins the update loop.
func (d *Daemon) Start() {
	slog.Info("Starting daemon")
	d.scheduler.Start()
}

// Stop gracefully stops the daemon
func (d *Daemon) Stop() {
	slog.Info("Stopping daemon")
	d.cancel()
	d.scheduler.Stop()

	if d.database != nil {
		if err := d.database.Close(); err != nil {
			slog.Error("Error closing database", "error", err)
		}
	}

	slog.Info("Daemon stopped")
}
