package config

import "time"

// Reference values used when a section or field is absent.
const (
	DefaultRadiusKm       = 10.0
	DefaultMaxCandidates  = 30
	DefaultDailyPickupCap = 10
	DefaultTimeZone       = "UTC"

	DefaultReassignInterval    = 5 * time.Minute
	DefaultStaleWindow         = 20 * time.Minute
	DefaultReassignPenalty     = 5
	DefaultMaxReassignAttempts = 3
	DefaultSweepPassTimeout    = 4 * time.Minute
	DefaultSweepBatchSize      = 200

	DefaultReliabilityInterval  = 24 * time.Hour
	DefaultReliabilityTimeout   = 30 * time.Minute
	DefaultReliabilityWorkers   = 4
	DefaultReliabilityBatchSize = 100

	DefaultDispatchQueueSize      = 1024
	DefaultDispatchWorkers        = 4
	DefaultDispatchPublishTimeout = 5 * time.Second

	DefaultHandoffTTL     = 2 * time.Hour
	DefaultQRSize         = 256
	DefaultQRCorrection   = "M"
	DefaultPubSubProvider = "noop"
)

func applyDefaults(cfg *Config) {
	if cfg.Redis == nil {
		cfg.Redis = &RedisConfig{}
	}

	if cfg.Matching == nil {
		cfg.Matching = &MatchingConfig{}
	}
	m := cfg.Matching
	m.RadiusKm = orDefault(m.RadiusKm, DefaultRadiusKm)
	m.MaxCandidates = orDefault(m.MaxCandidates, DefaultMaxCandidates)
	m.DailyPickupCap = orDefault(m.DailyPickupCap, DefaultDailyPickupCap)
	m.TimeZone = orDefault(m.TimeZone, DefaultTimeZone)

	if cfg.Reassignment == nil {
		cfg.Reassignment = &ReassignmentConfig{}
	}
	r := cfg.Reassignment
	r.Interval = orDefault(r.Interval, DefaultReassignInterval)
	r.StaleWindow = orDefault(r.StaleWindow, DefaultStaleWindow)
	r.Penalty = orDefault(r.Penalty, DefaultReassignPenalty)
	r.MaxAttempts = orDefault(r.MaxAttempts, DefaultMaxReassignAttempts)
	r.PassTimeout = orDefault(r.PassTimeout, DefaultSweepPassTimeout)
	r.BatchSize = orDefault(r.BatchSize, DefaultSweepBatchSize)

	if cfg.Reliability == nil {
		cfg.Reliability = &ReliabilityConfig{}
	}
	rel := cfg.Reliability
	rel.Interval = orDefault(rel.Interval, DefaultReliabilityInterval)
	rel.Timeout = orDefault(rel.Timeout, DefaultReliabilityTimeout)
	rel.Workers = orDefault(rel.Workers, DefaultReliabilityWorkers)
	rel.BatchSize = orDefault(rel.BatchSize, DefaultReliabilityBatchSize)

	if cfg.Dispatch == nil {
		cfg.Dispatch = &DispatchConfig{}
	}
	d := cfg.Dispatch
	d.QueueSize = orDefault(d.QueueSize, DefaultDispatchQueueSize)
	d.Workers = orDefault(d.Workers, DefaultDispatchWorkers)
	d.PublishTimeout = orDefault(d.PublishTimeout, DefaultDispatchPublishTimeout)

	if cfg.Handoff == nil {
		cfg.Handoff = &HandoffConfig{}
	}
	h := cfg.Handoff
	h.TTL = orDefault(h.TTL, DefaultHandoffTTL)
	h.QRSize = orDefault(h.QRSize, DefaultQRSize)
	h.ErrorCorrectionLevel = orDefault(h.ErrorCorrectionLevel, DefaultQRCorrection)

	if cfg.Auth == nil {
		cfg.Auth = &AuthConfig{}
	}

	if cfg.PubSub == nil {
		cfg.PubSub = &PubSubConfig{}
	}
	cfg.PubSub.Provider = orDefault(cfg.PubSub.Provider, DefaultPubSubProvider)

	if cfg.Firebase == nil {
		cfg.Firebase = &FirebaseConfig{}
	}
}

func orDefault[T comparable](value, fallback T) T {
	var zero T
	if value == zero {
		return fallback
	}

	return value
}
