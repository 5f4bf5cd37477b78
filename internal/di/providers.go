package di

import (
	"fmt"

	drepo "RateWatch/internal/domain/repository"
	"RateWatch/internal/handler/api"
	internalrepo "RateWatch/internal/repository"
	"RateWatch/internal/service/mortgage"
	"RateWatch/internal/service/ratelimit"
	"RateWatch/internal/service/stream"
	"RateWatch/internal/service/treasury"
	"RateWatch/internal/usecase"
	"RateWatch/pkg/cache"
	"RateWatch/pkg/config"
	xhttp "RateWatch/pkg/http"
	applogger "RateWatch/pkg/logger"
	"RateWatch/pkg/metrics"
	"RateWatch/pkg/server"
)

// ProvideRecorder creates the transient warning buffer backing /api/v1/warnings.
func ProvideRecorder() *applogger.Recorder {
	return applogger.NewRecorder(200)
}

// ProvideLogger creates the application logger with the recorder attached.
func ProvideLogger(cfg *config.Config, rec *applogger.Recorder) (*applogger.Logger, error) {
	l, err := applogger.New(&applogger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: cfg.Logging.Output,
	})
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	return l.WithRecorder(rec), nil
}

// ProvideMetrics creates a Prometheus metrics recorder.
func ProvideMetrics() drepo.Metrics {
	return metrics.New()
}

// ProvideCache creates the quote cache: memory only, or layered over Redis
// when Redis is configured.
func ProvideCache(cfg *config.Config) (cache.Service, error) {
	if !cfg.Redis.Enabled {
		return cache.NewMemoryCache(), nil
	}

	rc, err := cache.NewRedisCache(
		cache.WithRedisHost(cfg.Redis.Host),
		cache.WithRedisPort(cfg.Redis.Port),
		cache.WithRedisPassword(cfg.Redis.Password),
		cache.WithRedisDB(cfg.Redis.DB),
		cache.WithRedisPrefix("ratewatch"),
	)
	if err != nil {
		return nil, fmt.Errorf("redis cache: %w", err)
	}
	return cache.NewLayeredCache(rc), nil
}

// ProvideForecastStore loads the forecast dataset. Load failure is fatal.
func ProvideForecastStore(cfg *config.Config) (drepo.ForecastStore, error) {
	store, err := internalrepo.NewCSVForecastStore(cfg.Dataset.Path, cfg.Dataset.DateColumn)
	if err != nil {
		return nil, fmt.Errorf("forecast store: %w", err)
	}
	return store, nil
}

// ProvideTreasurySource creates the benchmark yield source.
func ProvideTreasurySource(cfg *config.Config) *treasury.Client {
	return treasury.New(
		cfg.Treasury.BaseURL,
		cfg.Treasury.Symbol,
		cfg.Treasury.Scale,
		cfg.Treasury.Timeout,
	)
}

// ProvideMortgageSource creates the mortgage rate source, with the legacy
// page scrape attached as a fallback when a page URL is configured.
func ProvideMortgageSource(cfg *config.Config) *mortgage.Client {
	var opts []mortgage.Option
	if cfg.Mortgage.PageURL != "" {
		opts = append(opts, mortgage.WithScraper(mortgage.NewScraper(
			cfg.Mortgage.PageURL,
			cfg.Mortgage.PageLabel,
			cfg.Mortgage.UserAgent,
			cfg.Mortgage.Timeout,
		)))
	}
	return mortgage.New(cfg.Mortgage.APIURL, cfg.Mortgage.Product, cfg.Mortgage.Timeout, opts...)
}

// ProvideLimiter creates the outbound fetch limiter.
func ProvideLimiter() *ratelimit.Limiter {
	return ratelimit.New()
}

// ProvideRateFetcher creates the live-rate fetcher use case.
func ProvideRateFetcher(
	treasurySrc *treasury.Client,
	mortgageSrc *mortgage.Client,
	c cache.Service,
	limiter *ratelimit.Limiter,
	m drepo.Metrics,
	l *applogger.Logger,
	cfg *config.Config,
) *usecase.RateFetcher {
	return usecase.NewRateFetcher(
		treasurySrc, mortgageSrc,
		c, cfg.Treasury.CacheTTL,
		limiter, cfg.RateLimit.Capacity, cfg.RateLimit.RefillPerSec,
		m, l,
	)
}

// ProvideGuidanceEngine creates the guidance classifier.
func ProvideGuidanceEngine(m drepo.Metrics) *usecase.GuidanceEngine {
	return usecase.NewGuidanceEngine(m)
}

// ProvideDashboard creates the dashboard use case.
func ProvideDashboard(
	store drepo.ForecastStore,
	fetcher *usecase.RateFetcher,
	engine *usecase.GuidanceEngine,
	l *applogger.Logger,
	cfg *config.Config,
) *usecase.Dashboard {
	return usecase.NewDashboard(store, fetcher, engine, cfg.Dataset.YieldColumn, l)
}

// ProvideHub creates the WebSocket fan-out hub.
func ProvideHub() *stream.Hub {
	return stream.NewHub()
}

// ProvideRateCollector creates the background rate poller.
func ProvideRateCollector(
	fetcher *usecase.RateFetcher,
	hub *stream.Hub,
	m drepo.Metrics,
	l *applogger.Logger,
	cfg *config.Config,
) *usecase.RateCollector {
	return usecase.NewRateCollector(fetcher, hub, cfg.Poller.Interval, m, l)
}

// ProvideHandler creates the Echo route handler.
func ProvideHandler(
	l *applogger.Logger,
	dash *usecase.Dashboard,
	hub *stream.Hub,
	rec *applogger.Recorder,
) xhttp.Handler {
	return api.NewDashboardHandler(l, dash, hub, rec)
}

// ProvideApp creates the application server.
func ProvideApp(
	cfg *config.Config,
	l *applogger.Logger,
	collector *usecase.RateCollector,
	handler xhttp.Handler,
	c cache.Service,
) *server.App {
	return server.New(cfg, l, collector, handler, c)
}
