package commands

import (
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/wonny/pairlens/backend/internal/contracts"
)

// screenCmd represents the screen command
var screenCmd = &cobra.Command{
	Use:   "screen",
	Short: "섹터 내 페어 스크리닝 (1회 실행)",
	Long: `대표 종목 표본으로 섹터 내 페어를 분석하고 |z| 기준 상위 페어를 출력합니다.

Example:
  go run ./cmd/pairlens screen
  go run ./cmd/pairlens screen --sector Energy --lookback 90 --zwindow 15
  go run ./cmd/pairlens screen --json`,
	RunE: runScreen,
}

var screenReq contracts.ScreenRequest

func init() {
	rootCmd.AddCommand(screenCmd)

	screenCmd.Flags().IntVar(&screenReq.LookbackWindow, "lookback", contracts.DefaultLookbackWindow, "lookback window (trading days)")
	screenCmd.Flags().IntVar(&screenReq.ZScoreWindow, "zwindow", contracts.DefaultZScoreWindow, "z-score window (trading days)")
	screenCmd.Flags().IntVar(&screenReq.TimePeriod, "period", contracts.DefaultTimePeriod, "history length (trading days)")
	screenCmd.Flags().StringVar(&screenReq.Sector, "sector", "", "restrict to one sector")
}

func runScreen(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.close()

	start := time.Now()
	resp, err := a.screener.Screen(ctx, screenReq)
	if err != nil {
		printFailure(contracts.PublicMessage(err))
		return err
	}

	if jsonOutput {
		return printJSON(resp)
	}

	sector := resp.Params.Sector
	if sector == "" {
		sector = "all"
	}
	printHeader("Pair Screening", [][2]string{
		{"Sector", sector},
		{"Lookback", fmt.Sprintf("%d days (z-window %d)", resp.Params.LookbackWindow, resp.Params.ZScoreWindow)},
		{"Period", fmt.Sprintf("%s ~ %s", resp.Metadata.DataRange.Start, resp.Metadata.DataRange.End)},
		{"Analyzed", fmt.Sprintf("%d pairs, %d valid", resp.Metadata.TotalPairsAnalyzed, resp.Metadata.ValidPairs)},
	})

	if len(resp.Pairs) == 0 {
		printWarning("No pairs passed the correlation filters")
		return nil
	}

	fmt.Printf("  %-4s %-13s %-24s %7s %6s %7s  %-8s %s\n", "#", "Pair", "Sector", "Corr", "R²", "Z", "Conf", "Direction")
	fmt.Println(singleLine)
	for _, p := range resp.Pairs {
		fmt.Printf("  %-4d %-13s %s %7.3f %6.3f %+7.2f  %-8s %s\n",
			p.Rank,
			p.TickerA+"/"+p.TickerB,
			padRight(p.Sector, 24),
			p.Correlation,
			p.RSquared,
			p.ZScore,
			p.Confidence,
			p.Direction,
		)
	}
	fmt.Println()
	printSuccess(fmt.Sprintf("%d pairs ranked in %.2fs", len(resp.Pairs), time.Since(start).Seconds()))

	return nil
}
