package commands

import (
	"github.com/spf13/cobra"
)

// Version is reported by /health
var Version = "1.0.0"

var (
	// Global flags
	strategyFile string
	verbose      bool
	jsonOutput   bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "pairlens",
	Short: "PairLens - 통계적 차익거래 페어 스크리닝 엔진",
	Long: `PairLens Unified CLI

S&P 500 섹터 내 페어를 스크리닝하고 단일 페어 상관/스프레드 통계를 계산합니다.

Usage:
  go run ./cmd/pairlens [command]

Examples:
  go run ./cmd/pairlens api
  go run ./cmd/pairlens screen --sector Energy
  go run ./cmd/pairlens correlate KO PEP --lookback 90
  go run ./cmd/pairlens validate AAPL ^GSPC`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&strategyFile, "strategy", "", "strategy thresholds YAML (default: STRATEGY_FILE or built-in)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "print results as JSON")
}
