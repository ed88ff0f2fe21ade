package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wonny/pairlens/backend/internal/contracts"
	"github.com/wonny/pairlens/backend/internal/reference"
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate TICKER...",
	Short: "티커 검증 (S&P 500 구성종목 / 지원 지수)",
	Long: `내장 참조 데이터로 티커를 검증합니다. 네트워크를 사용하지 않습니다.

Example:
  go run ./cmd/pairlens validate AAPL ^GSPC BRK.B`,
	Args: cobra.MinimumNArgs(1),
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	universe := reference.Builtin()

	results := make([]contracts.TickerValidation, 0, len(args))
	invalid := 0
	for _, raw := range args {
		var v contracts.TickerValidation
		if !reference.ValidFormat(raw) {
			v = contracts.TickerValidation{Ticker: raw, Error: "Invalid ticker format: " + raw}
		} else {
			v = universe.ValidateTicker(raw)
		}
		if !v.Valid {
			invalid++
		}
		results = append(results, v)
	}

	if jsonOutput {
		if err := printJSON(results); err != nil {
			return err
		}
	} else {
		for _, v := range results {
			switch {
			case v.Valid && v.IsIndex:
				printSuccess(fmt.Sprintf("%-6s index", v.Ticker))
			case v.Valid:
				printSuccess(fmt.Sprintf("%-6s %s", v.Ticker, v.Sector))
			default:
				printFailure(v.Error)
			}
		}
	}

	if invalid > 0 {
		return fmt.Errorf("%d of %d tickers invalid", invalid, len(args))
	}
	return nil
}
