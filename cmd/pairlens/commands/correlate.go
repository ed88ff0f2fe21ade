package commands

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/wonny/pairlens/backend/internal/contracts"
)

// correlateCmd represents the correlate command
var correlateCmd = &cobra.Command{
	Use:   "correlate TICKER_A TICKER_B",
	Short: "단일 페어 상관/스프레드 분석",
	Long: `두 티커의 상관계수, R², 스프레드 z-score, 안정성과 종합 판정을 출력합니다.

Example:
  go run ./cmd/pairlens correlate KO PEP
  go run ./cmd/pairlens correlate XOM CVX --lookback 90 --period 500`,
	Args: cobra.ExactArgs(2),
	RunE: runCorrelate,
}

var (
	correlateLookback int
	correlatePeriod   int
)

func init() {
	rootCmd.AddCommand(correlateCmd)

	correlateCmd.Flags().IntVar(&correlateLookback, "lookback", contracts.DefaultLookbackWindow, "lookback window (trading days)")
	correlateCmd.Flags().IntVar(&correlatePeriod, "period", contracts.DefaultTimePeriod, "history length (trading days)")
}

func runCorrelate(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.close()

	report, err := a.correlator.Correlate(ctx, contracts.CorrelationRequest{
		TickerA:        args[0],
		TickerB:        args[1],
		LookbackWindow: correlateLookback,
		TimePeriod:     correlatePeriod,
	})
	if err != nil {
		printFailure(contracts.PublicMessage(err))
		return err
	}

	if jsonOutput {
		return printJSON(contracts.CorrelationResponse{Success: true, Data: report})
	}

	printHeader(fmt.Sprintf("%s / %s", report.TickerA, report.TickerB), [][2]string{
		{"Corr", fmt.Sprintf("%.4f", report.Correlation)},
		{"R²", fmt.Sprintf("%.4f", report.RSquared)},
		{"Z-score", fmt.Sprintf("%+.2f (range %+.2f ~ %+.2f)", report.CurrentZScore, report.ZScoreRange.Min, report.ZScoreRange.Max)},
		{"Spread", fmt.Sprintf("%.4f (mean %.4f, std %.4f)", report.Spread.Current, report.Spread.Mean, report.Spread.Std)},
		{"Stability", fmt.Sprintf("%.2f (%s)", report.ConsistencyScore, report.Confidence)},
		{"Points", fmt.Sprintf("%d", report.DataPoints)},
	})
	fmt.Printf("  %s\n", report.AssessmentDetails.Label)
	fmt.Printf("  %s\n", report.AssessmentDetails.Description)
	fmt.Println(doubleLine)

	return nil
}
