package usecase

import (
	"context"
	"fmt"
	"time"

	"RateWatch/internal/domain/models"
	drepo "RateWatch/internal/domain/repository"
	"RateWatch/internal/service/ratelimit"
	"RateWatch/pkg/cache"
	xlogger "RateWatch/pkg/logger"
	"RateWatch/pkg/util"
)

const treasuryCacheKey = "rates:treasury:latest"

// RateFetcher produces the live treasury-yield / mortgage-rate snapshot.
// Both values are best-effort: a failed source degrades to an absent value
// plus a warning, never an error. The treasury quote is cached in the
// injected cache for a fixed TTL; the mortgage rate is re-fetched on every
// call.
type RateFetcher struct {
	treasury drepo.RateSource
	mortgage drepo.RateSource
	cache    cache.Service
	ttl      time.Duration
	limiter  *ratelimit.Limiter
	capacity float64
	refill   float64
	metrics  drepo.Metrics
	logger   *xlogger.Logger
}

func NewRateFetcher(
	treasury, mortgage drepo.RateSource,
	c cache.Service,
	ttl time.Duration,
	limiter *ratelimit.Limiter,
	capacity, refillPerSec float64,
	metrics drepo.Metrics,
	logger *xlogger.Logger,
) *RateFetcher {
	if ttl <= 0 {
		ttl = time.Hour
	}
	if capacity <= 0 {
		capacity = 5
	}
	if refillPerSec <= 0 {
		refillPerSec = 1
	}
	return &RateFetcher{
		treasury: treasury,
		mortgage: mortgage,
		cache:    c,
		ttl:      ttl,
		limiter:  limiter,
		capacity: capacity,
		refill:   refillPerSec,
		metrics:  metrics,
		logger:   logger,
	}
}

// Snapshot fetches both live values and derives the spread when both are
// present. Spread is rounded to two decimal places.
func (f *RateFetcher) Snapshot(ctx context.Context) models.RateSnapshot {
	snap := models.RateSnapshot{FetchedAt: time.Now()}

	if y, err := f.treasuryYield(ctx); err != nil {
		f.warn(&snap, "treasury", err)
	} else {
		snap.TreasuryYield = &y
	}

	if m, err := f.mortgageRate(ctx); err != nil {
		f.warn(&snap, "mortgage", err)
	} else {
		snap.MortgageRate = &m
	}

	if snap.Complete() {
		spread := util.Round2(*snap.MortgageRate - *snap.TreasuryYield)
		snap.Spread = &spread
	}

	return snap
}

func (f *RateFetcher) treasuryYield(ctx context.Context) (float64, error) {
	if f.cache != nil {
		var cached float64
		if err := f.cache.Get(ctx, treasuryCacheKey, &cached); err == nil {
			return cached, nil
		}
	}

	v, err := f.fetch(ctx, f.treasury)
	if err != nil {
		return 0, err
	}

	if f.cache != nil {
		if err := f.cache.Set(ctx, treasuryCacheKey, v, f.ttl); err != nil {
			f.logger.Warn("treasury cache set failed", xlogger.Error(err))
		}
	}
	return v, nil
}

func (f *RateFetcher) mortgageRate(ctx context.Context) (float64, error) {
	return f.fetch(ctx, f.mortgage)
}

func (f *RateFetcher) fetch(ctx context.Context, src drepo.RateSource) (float64, error) {
	if f.limiter != nil && !f.limiter.Allow(src.Name(), f.capacity, f.refill) {
		return 0, fmt.Errorf("%s: fetch rate limit exceeded", src.Name())
	}

	f.metrics.RecordFetch(src.Name())
	start := time.Now()
	v, err := src.Fetch(ctx)
	f.metrics.RecordLatency("fetch_"+src.Name(), time.Since(start).Seconds())
	if err != nil {
		return 0, err
	}

	f.metrics.RecordLastRate(src.Name(), v)
	return v, nil
}

func (f *RateFetcher) warn(snap *models.RateSnapshot, source string, err error) {
	f.metrics.RecordError("fetch_" + source)
	f.logger.Warn("live rate fetch failed",
		xlogger.String("source", source),
		xlogger.Error(err),
	)
	snap.Warnings = append(snap.Warnings, fmt.Sprintf("%s: %v", source, err))
}
