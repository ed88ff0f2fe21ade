package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/wonny/pairlens/backend/internal/api"
	"github.com/wonny/pairlens/backend/internal/api/handlers"
	"github.com/wonny/pairlens/backend/internal/scheduler"
	"github.com/wonny/pairlens/backend/internal/scheduler/jobs"
)

// apiCmd represents the api command
var apiCmd = &cobra.Command{
	Use:   "api",
	Short: "API 서버 시작",
	Long: `REST API 서버를 시작합니다.

Endpoints:
  GET      /health            - Health check + cache stats
  GET      /api/pairs         - 섹터 내 페어 스크리닝
  GET|POST /api/correlation   - 단일 페어 분석
  GET      /api/sectors       - 섹터 목록
  GET      /api/validate      - 티커 검증
  GET      /metrics           - Prometheus metrics (METRICS_ENABLED)

Example:
  go run ./cmd/pairlens api
  go run ./cmd/pairlens api --port 8080`,
	RunE: runAPIServer,
}

var (
	apiPort string
)

func init() {
	rootCmd.AddCommand(apiCmd)

	// Flags
	apiCmd.Flags().StringVar(&apiPort, "port", "", "API 서버 포트 (default: PORT)")
}

func runAPIServer(cmd *cobra.Command, args []string) error {
	fmt.Println("=== PairLens API Server ===")

	a, err := newApp(cmd.Context())
	if err != nil {
		return err
	}
	defer a.close()

	if apiPort != "" {
		a.cfg.Port = apiPort
	}
	log := a.log

	// Handlers
	h := api.Handlers{
		Pairs:       handlers.NewPairsHandler(a.screener, log.Module("api")),
		Correlation: handlers.NewCorrelationHandler(a.correlator, log.Module("api")),
		Reference:   handlers.NewReferenceHandler(a.universe, a.universe),
		Health:      handlers.NewHealthHandler(Version, a.caches.Stats),
	}
	if a.metrics != nil {
		h.Metrics = a.metrics.Handler()
		h.MetricsPath = a.cfg.MetricsPath
	}

	server := api.New(a.cfg, log, api.NewRouter(h, log))

	// Scheduler
	sched := scheduler.New(log)
	if err := sched.AddJob(jobs.NewCacheReportJob(a.caches.Stats, a.cfg.CacheReportSchedule, log.Module("cache_report"))); err != nil {
		return fmt.Errorf("schedule cache report: %w", err)
	}
	sched.Start()
	defer sched.Stop()

	// Start server with graceful shutdown
	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	fmt.Printf("\n✅ Server running on http://localhost:%s\n", a.cfg.Port)
	fmt.Println("\nPress Ctrl+C to stop")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case <-quit:
	}

	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	log.Info("Server stopped")
	return nil
}
