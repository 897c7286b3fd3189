package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"socialagent/internal/config"
	"socialagent/internal/rates"
)

var ratesCmd = &cobra.Command{
	Use:   "rates",
	Short: "Display current mortgage rates with market analysis",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()

		fmt.Println("Fetching current mortgage rate data...")
		fetcher := rates.NewFetcher(cfg.RateCacheFile)
		snapshot := fetcher.Fetch(cmd.Context())

		fmt.Println("\n" + divider)
		fmt.Println("CURRENT MORTGAGE MARKET ANALYSIS")
		fmt.Println(divider)

		fmt.Printf("30-Year Fixed Rate: %.2f%%\n", snapshot.CurrentRate)
		fmt.Printf("Previous Rate: %.2f%%\n", snapshot.PreviousRate)

		switch {
		case snapshot.Increased():
			fmt.Printf("Weekly Change: +%.2f%% (INCREASED)\n", snapshot.RateChange)
		case snapshot.Decreased():
			fmt.Printf("Weekly Change: %.2f%% (DECREASED)\n", snapshot.RateChange)
		default:
			fmt.Println("Weekly Change: No change (STABLE)")
		}

		fmt.Printf("Data Source: %s\n", snapshot.Source)
		fmt.Printf("Confidence Level: %s\n", snapshot.Confidence)
		fmt.Printf("Last Updated: %s\n", snapshot.Date)

		fmt.Println("\nMARKET ANALYSIS:")
		fmt.Println(rates.MarketContext(snapshot))
		fmt.Println(rates.YearOverYear(snapshot))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(ratesCmd)
}
