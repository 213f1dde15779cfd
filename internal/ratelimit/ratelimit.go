package ratelimit

import (
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/frahmantamala/employee-directory/internal"
	rlDatamodel "github.com/frahmantamala/employee-directory/internal/core/datamodel/ratelimit"
)

const retentionWindow = 24 * time.Hour

// StoreAPI is the persisted counting ledger behind the limiter.
type StoreAPI interface {
	// DeleteOlderThan prunes every ledger row for ip whose last_request is
	// before cutoff, regardless of organization.
	DeleteOlderThan(ip string, cutoff time.Time) error
	// GetOrCreate returns the (ip, org) row, creating it with a zero count
	// and window_start=now when absent.
	GetOrCreate(ip string, orgID *uuid.UUID, now time.Time) (*rlDatamodel.RateLimitRecord, error)
	// SumSince totals request_count over (ip, org) rows with
	// last_request >= since.
	SumSince(ip string, orgID *uuid.UUID, since time.Time) (int64, error)
	// Increment bumps the row's count and last_request.
	Increment(record *rlDatamodel.RateLimitRecord, now time.Time) error
}

// Limiter implements sliding-window request accounting over a persisted
// ledger: counts accumulate per creation event and are summed across rows
// inside each lookback window, rather than kept in one mutable bucket.
//
// The check-then-record sequence is not atomic; two concurrent requests from
// one IP can both pass the check before either records. Sustained load still
// throttles, so the race is tolerated rather than serialized.
type Limiter struct {
	store  StoreAPI
	config internal.RateLimitConfig
	logger *slog.Logger
	now    func() time.Time
}

func NewLimiter(store StoreAPI, config internal.RateLimitConfig, logger *slog.Logger) *Limiter {
	return NewLimiterWithClock(store, config, logger, time.Now)
}

// NewLimiterWithClock injects the clock so window boundaries can be exercised
// deterministically.
func NewLimiterWithClock(store StoreAPI, config internal.RateLimitConfig, logger *slog.Logger, now func() time.Time) *Limiter {
	return &Limiter{
		store:  store,
		config: config.WithDefaults(),
		logger: logger,
		now:    now,
	}
}

func (l *Limiter) Config() internal.RateLimitConfig {
	return l.config
}

// CheckAndRecord decides whether a request from ip (optionally scoped to a
// tenant) may proceed, and counts it when it may. Storage errors fail open:
// the request is allowed and the error only logged.
func (l *Limiter) CheckAndRecord(ip string, orgID *uuid.UUID) bool {
	now := l.now()

	if err := l.store.DeleteOlderThan(ip, now.Add(-retentionWindow)); err != nil {
		l.logger.Error("rate limit: failed to prune old records", "error", err, "ip", ip)
	}

	if _, err := l.store.GetOrCreate(ip, orgID, now); err != nil {
		l.logger.Error("rate limit: failed to load ledger row", "error", err, "ip", ip)
		return true
	}

	minuteCount, err := l.store.SumSince(ip, orgID, now.Add(-time.Minute))
	if err != nil {
		l.logger.Error("rate limit: failed to count minute window", "error", err, "ip", ip)
		return true
	}
	if minuteCount >= int64(l.config.RequestsPerMinute) {
		l.logger.Warn("rate limit exceeded",
			"ip", ip,
			"window", "minute",
			"count", minuteCount,
			"limit", l.config.RequestsPerMinute)
		return false
	}

	hourCount, err := l.store.SumSince(ip, orgID, now.Add(-time.Hour))
	if err != nil {
		l.logger.Error("rate limit: failed to count hour window", "error", err, "ip", ip)
		return true
	}
	if hourCount >= int64(l.config.RequestsPerHour) {
		l.logger.Warn("rate limit exceeded",
			"ip", ip,
			"window", "hour",
			"count", hourCount,
			"limit", l.config.RequestsPerHour)
		return false
	}

	record, err := l.store.GetOrCreate(ip, orgID, now)
	if err != nil {
		l.logger.Error("rate limit: failed to load ledger row for recording", "error", err, "ip", ip)
		return true
	}
	if err := l.store.Increment(record, now); err != nil {
		l.logger.Error("rate limit: failed to record request", "error", err, "ip", ip)
	}

	return true
}
