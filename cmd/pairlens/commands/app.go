package commands

import (
	"context"
	"fmt"

	"github.com/wonny/pairlens/backend/internal/cache"
	"github.com/wonny/pairlens/backend/internal/correlation"
	"github.com/wonny/pairlens/backend/internal/external/yahoo"
	"github.com/wonny/pairlens/backend/internal/metrics"
	"github.com/wonny/pairlens/backend/internal/pairs"
	"github.com/wonny/pairlens/backend/internal/prices"
	"github.com/wonny/pairlens/backend/internal/reference"
	"github.com/wonny/pairlens/backend/internal/screening"
	"github.com/wonny/pairlens/backend/internal/strategyconfig"
	"github.com/wonny/pairlens/backend/pkg/config"
	"github.com/wonny/pairlens/backend/pkg/database"
	"github.com/wonny/pairlens/backend/pkg/httputil"
	"github.com/wonny/pairlens/backend/pkg/logger"
	"github.com/wonny/pairlens/backend/pkg/redis"
)

// app holds the wired components shared by every command
// ⭐ SSOT: 의존성 조립은 newApp 에서만
type app struct {
	cfg      *config.Config
	log      *logger.Logger
	metrics  *metrics.Metrics
	caches   *cache.Service
	universe *reference.Universe
	strategy *strategyconfig.Config
	snapshot *strategyconfig.Snapshot

	screener   *screening.Engine
	correlator *correlation.Service

	closers []func()
}

// newApp wires config → logger → metrics → caches → upstream → reference → engines
func newApp(ctx context.Context) (*app, error) {
	// 1. Load config
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if verbose {
		cfg.LogLevel = "debug"
	}
	if strategyFile != "" {
		cfg.StrategyFile = strategyFile
	}

	// 2. Initialize logger
	log := logger.New(cfg)
	a := &app{cfg: cfg, log: log}

	// 3. Metrics (nil when disabled; every method is a no-op then)
	var cacheOpts []cache.Option
	if cfg.MetricsEnabled {
		a.metrics = metrics.New()
		cacheOpts = append(cacheOpts, cache.WithObserver(a.metrics))
	}

	// 4. Caches
	a.caches = cache.NewService(cfg.Cache, log, cacheOpts...)

	// 5. Strategy thresholds
	a.strategy, a.snapshot, err = strategyconfig.LoadOrDefault(cfg.StrategyFile)
	if err != nil {
		return nil, fmt.Errorf("load strategy: %w", err)
	}
	log.WithFields(map[string]interface{}{
		"strategy_id": a.snapshot.StrategyID,
		"config_hash": a.snapshot.ConfigHash,
		"source":      a.snapshot.Source,
	}).Info("Strategy loaded")

	// 6. HTTP client (+ optional shared throttle)
	httpClient := httputil.New(cfg, log)
	if cfg.Redis.Enabled {
		rdb, err := redis.New(cfg)
		if err != nil {
			a.close()
			return nil, fmt.Errorf("connect to redis: %w", err)
		}
		a.closers = append(a.closers, func() { _ = rdb.Close() })
		httpClient.WithRateLimiter(redis.NewRateLimiter(rdb, "pairlens"), redis.UpstreamRateLimit(cfg.Upstream.RequestsPerSecond))
		log.Info("Shared upstream throttle enabled")
	}

	// 7. Upstream + price source
	chart := yahoo.NewClient(httpClient, cfg.Upstream.BaseURL, log)
	source := prices.NewSource(chart, a.caches.Prices, cfg.Upstream, log, prices.WithMetrics(a.metrics))

	// 8. Reference data
	a.universe, err = a.loadUniverse(ctx)
	if err != nil {
		a.close()
		return nil, err
	}

	// 9. Engines
	analyzer := pairs.NewAnalyzer(a.strategy, log)
	a.screener = screening.NewEngine(a.universe, source, analyzer, a.caches.Pairs, a.strategy, log, screening.WithMetrics(a.metrics))
	a.correlator = correlation.NewService(a.universe, source, a.caches.Correlations, a.strategy, log)

	return a, nil
}

// loadUniverse uses the reference database when configured, else the built-in set
func (a *app) loadUniverse(ctx context.Context) (*reference.Universe, error) {
	if !a.cfg.Database.Enabled() {
		return reference.Builtin(), nil
	}

	db, err := database.New(ctx, a.cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	defer db.Close()

	universe, err := reference.NewRepository(db.Pool).Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load reference universe: %w", err)
	}

	a.log.WithFields(map[string]interface{}{
		"constituents": universe.Size(),
		"sectors":      len(universe.Sectors()),
	}).Info("Reference universe loaded from database")

	return universe, nil
}

func (a *app) close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
	a.closers = nil
}
