package commands

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/spf13/cobra"

	"github.com/wonny/pairlens/backend/internal/reference"
	"github.com/wonny/pairlens/backend/pkg/config"
	"github.com/wonny/pairlens/backend/pkg/database"
)

// dbCheckCmd represents the db-check command
var dbCheckCmd = &cobra.Command{
	Use:   "db-check",
	Short: "참조 데이터베이스 연결/구성종목 테스트",
	Long: `DATABASE_URL 의 PostgreSQL 연결을 확인하고 reference.constituents 를 로드합니다.

이 명령어는:
- 데이터베이스 연결 생성 + Health Check
- Connection Pool 통계 표시
- 구성종목/섹터 수 표시 (내장 데이터와 비교)

Example:
  DATABASE_URL=postgres://... go run ./cmd/pairlens db-check`,
	RunE: runDBCheck,
}

func init() {
	rootCmd.AddCommand(dbCheckCmd)
}

func runDBCheck(cmd *cobra.Command, args []string) error {
	fmt.Println("=== PairLens Reference Database Check ===")

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if !cfg.Database.Enabled() {
		printWarning("DATABASE_URL is not set; the built-in universe is used")
		return nil
	}
	fmt.Printf("   Database URL: %s\n\n", redactURL(cfg.Database.URL))

	ctx, cancel := context.WithTimeout(cmd.Context(), 15*time.Second)
	defer cancel()

	db, err := database.New(ctx, cfg.Database)
	if err != nil {
		printFailure("Failed to connect to database")
		return err
	}
	defer db.Close()
	printSuccess("Database connection established")

	status, err := db.HealthCheck(ctx)
	if err != nil {
		printFailure("Health check failed")
		return err
	}
	printSuccess(fmt.Sprintf("Ping %v", status.ResponseTime))
	fmt.Printf("   Pool: max %d, total %d, idle %d\n\n", status.Stats.MaxConns, status.Stats.TotalConns, status.Stats.IdleConns)

	universe, err := reference.NewRepository(db.Pool).Load(ctx)
	if err != nil {
		printFailure("Failed to load reference.constituents")
		return err
	}

	builtin := reference.Builtin()
	printSuccess(fmt.Sprintf("Constituents: %d (built-in %d)", universe.Size(), builtin.Size()))
	printSuccess(fmt.Sprintf("Sectors: %d (built-in %d)", len(universe.Sectors()), len(builtin.Sectors())))

	return nil
}

// redactURL hides the password in a connection URL
func redactURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return "***"
	}
	return u.Redacted()
}
