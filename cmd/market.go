// This file implements the market command: analyze the app market.
package cmd

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/str8zero/str8zero/core/market"
	"github.com/str8zero/str8zero/core/storage"
)

var (
	marketCategory string
	marketKeywords []string
	marketJSON     bool
)

var marketCmd = &cobra.Command{
	Use:   "market",
	Short: "Analyze the app market for opportunities",
	Long: `Market mines the local market snapshot for opportunities, trends, and
competition. The snapshot is refreshed automatically when older than a week.

Examples:
  str8zero market
  str8zero market --category finance
  str8zero market --keywords bills,tracker --json`,
	RunE: runMarket,
}

func init() {
	marketCmd.Flags().StringVar(&marketCategory, "category", "", "Restrict analysis to one category")
	marketCmd.Flags().StringSliceVar(&marketKeywords, "keywords", nil, "Restrict analysis to apps matching keywords")
	marketCmd.Flags().BoolVar(&marketJSON, "json", false, "Emit the full report as JSON")
	rootCmd.AddCommand(marketCmd)
}

func runMarket(*cobra.Command, []string) error {
	logger := newLogger()
	defer logger.Sync()

	store, err := market.OpenStore(storage.MarketDBPath())
	if err != nil {
		return fmt.Errorf("open market store: %w", err)
	}
	defer store.Close()

	analyzer := market.NewAnalyzer(market.AnalyzerConfig{Store: store, Logger: logger})
	report, err := analyzer.Analyze(marketCategory, marketKeywords)
	if err != nil {
		return err
	}

	if marketJSON {
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	}

	fmt.Printf("\n📊 Market Analysis (%d apps)\n", report.AppsAnalyzed)
	if report.Category != "" {
		fmt.Printf("  Category: %s\n", report.Category)
	}
	if len(report.Keywords) > 0 {
		fmt.Printf("  Keywords: %s\n", strings.Join(report.Keywords, ", "))
	}

	fmt.Printf("\n🔥 Competition: %s (%d apps)\n", report.Competition.Level, report.Competition.AppCount)
	for _, competitor := range report.Competition.TopCompetitors {
		fmt.Printf("  • %s - %d downloads, %.1f★, %s\n",
			competitor.Name, competitor.Downloads, competitor.Rating, competitor.PriceModel)
	}

	if len(report.Opportunities) > 0 {
		fmt.Println("\n💡 Opportunities:")
		for _, op := range report.Opportunities {
			fmt.Printf("  • [%s potential] %s\n", op.Potential, op.Description)
		}
	}

	for _, trend := range report.Trends {
		fmt.Printf("\n📈 %s:\n", trend.Name)
		keys := make([]string, 0, len(trend.Data))
		for key := range trend.Data {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			fmt.Printf("  • %s: %.2f\n", key, trend.Data[key])
		}
	}
	return nil
}
