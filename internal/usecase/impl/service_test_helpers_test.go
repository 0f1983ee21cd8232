package impl

import (
	"io"
	"log/slog"
	"time"

	"foodlink/config"

	"github.com/jonboulle/clockwork"
)

// fakeClock is the part of the clockwork fake clock the tests drive.
type fakeClock interface {
	clockwork.Clock
	Advance(d time.Duration)
}

var baseTime = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Matching: &config.MatchingConfig{
			RadiusKm:       config.DefaultRadiusKm,
			MaxCandidates:  config.DefaultMaxCandidates,
			DailyPickupCap: config.DefaultDailyPickupCap,
			TimeZone:       "UTC",
		},
		Reassignment: &config.ReassignmentConfig{
			Interval:    config.DefaultReassignInterval,
			StaleWindow: config.DefaultStaleWindow,
			Penalty:     config.DefaultReassignPenalty,
			MaxAttempts: config.DefaultMaxReassignAttempts,
			PassTimeout: config.DefaultSweepPassTimeout,
			BatchSize:   config.DefaultSweepBatchSize,
		},
		Reliability: &config.ReliabilityConfig{
			Workers:   2,
			BatchSize: 2,
		},
		Handoff: &config.HandoffConfig{
			TTL: config.DefaultHandoffTTL,
		},
	}
}
