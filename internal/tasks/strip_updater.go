package tasks

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"flightstrip/internal/models"
	"flightstrip/internal/strip"
)

// FlightSource resolves the aircraft closest to a point. A nil record with a
// nil error means an empty sky, not a failure.
type FlightSource interface {
	ClosestFlight(ctx context.Context, lat, lon float64) (*models.FlightRecord, error)
}

// AnimationBuilder renders one flight record into a complete frame loop.
type AnimationBuilder interface {
	Build(rec *models.FlightRecord) (*strip.Animation, error)
}

// FrameSink plays a frame loop on the display hardware.
type FrameSink interface {
	PushAnimation(ctx context.Context, anim *strip.Animation) error
}

// SightingLog records which flights the display has shown. Optional.
type SightingLog interface {
	Insert(s *models.Sighting) error
}

// StripUpdater polls for the closest flight and refreshes the display only
// when the tracked aircraft changes. The device loops the current animation
// on its own, so an unchanged aircraft means no traffic to the device at all.
type StripUpdater struct {
	source   FlightSource
	builder  AnimationBuilder
	sink     FrameSink
	log      SightingLog // may be nil
	lat, lon float64
	interval time.Duration

	// ICAO24 of the aircraft currently on the display. Only touched from
	// Run, which the scheduler never calls concurrently.
	current string

	now func() time.Time
}

func NewStripUpdater(source FlightSource, builder AnimationBuilder, sink FrameSink, log SightingLog, lat, lon float64, interval time.Duration) *StripUpdater {
	return &StripUpdater{
		source:   source,
		builder:  builder,
		sink:     sink,
		log:      log,
		lat:      lat,
		lon:      lon,
		interval: interval,
		now:      time.Now,
	}
}

func (u *StripUpdater) Name() string {
	return "strip_updater"
}

func (u *StripUpdater) Interval() time.Duration {
	return u.interval
}

// Run performs one poll cycle. Build or push failures leave both the
// on-device loop and the tracked aircraft untouched, so the next tick
// retries the same flight instead of swallowing it.
func (u *StripUpdater) Run(ctx context.Context) error {
	rec, err := u.source.ClosestFlight(ctx, u.lat, u.lon)
	if err != nil {
		return fmt.Errorf("failed to fetch closest flight: %w", err)
	}
	if rec == nil {
		slog.Info("No flight data available")
		return nil
	}

	if rec.ICAO24 == u.current {
		slog.Debug("Still tracking same aircraft, animation unchanged",
			"icao24", rec.ICAO24, "flight", rec.FlightNumber)
		return nil
	}

	slog.Info("New flight detected",
		"icao24", rec.ICAO24,
		"flight", rec.FlightNumber,
		"origin", rec.Origin,
		"destination", rec.Destination,
	)

	anim, err := u.builder.Build(rec)
	if err != nil {
		return fmt.Errorf("failed to build animation for %s: %w", rec.ICAO24, err)
	}

	if err := u.sink.PushAnimation(ctx, anim); err != nil {
		return fmt.Errorf("failed to push animation for %s: %w", rec.ICAO24, err)
	}

	u.current = rec.ICAO24
	slog.Info("Animation playing on device",
		"frames", len(anim.Frames),
		"frame_duration", anim.FrameDuration,
	)

	if u.log != nil {
		if err := u.log.Insert(models.SightingFromRecord(rec, u.now())); err != nil {
			// The display already switched; only the log row is lost.
			slog.Warn("Failed to record sighting", "icao24", rec.ICAO24, "error", err)
		}
	}

	return nil
}
