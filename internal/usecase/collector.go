package usecase

import (
	"context"
	"time"

	drepo "RateWatch/internal/domain/repository"
	"RateWatch/internal/service/stream"
	xlogger "RateWatch/pkg/logger"
)

// RateCollector periodically refreshes the live snapshot and pushes it to
// WebSocket subscribers. Disabled when the interval is not positive.
type RateCollector struct {
	fetcher  *RateFetcher
	hub      *stream.Hub
	interval time.Duration
	metrics  drepo.Metrics
	logger   *xlogger.Logger
	cancel   context.CancelFunc
}

func NewRateCollector(fetcher *RateFetcher, hub *stream.Hub, interval time.Duration, metrics drepo.Metrics, logger *xlogger.Logger) *RateCollector {
	return &RateCollector{
		fetcher:  fetcher,
		hub:      hub,
		interval: interval,
		metrics:  metrics,
		logger:   logger,
	}
}

// Start launches the poll loop. It returns immediately.
func (c *RateCollector) Start(ctx context.Context) error {
	if c.interval <= 0 {
		c.logger.Info("rate poller disabled")
		return nil
	}

	ctx, c.cancel = context.WithCancel(ctx)
	go c.loop(ctx)
	c.logger.Info("rate poller started", xlogger.Duration("interval", c.interval))
	return nil
}

func (c *RateCollector) loop(ctx context.Context) {
	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			snap := c.fetcher.Snapshot(ctx)
			if c.hub != nil {
				c.hub.Broadcast(snap)
			}
			if len(snap.Warnings) > 0 {
				c.metrics.RecordError("poll_incomplete")
			}
		}
	}
}

// Shutdown stops the poll loop and closes the hub.
func (c *RateCollector) Shutdown(ctx context.Context) error {
	if c.cancel != nil {
		c.cancel()
	}
	if c.hub != nil {
		return c.hub.Close()
	}
	return nil
}
