package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"socialagent/internal/config"
	"socialagent/internal/generator"
	"socialagent/internal/rates"
)

var variationsFlags struct {
	platform    string
	audience    string
	count       int
	loanOfficer string
	company     string
	apiKey      string
}

var variationsCmd = &cobra.Command{
	Use:   "variations",
	Short: "Generate multiple content variations for A/B testing",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()
		if variationsFlags.apiKey != "" {
			cfg.APIKey = variationsFlags.apiKey
		}

		gen, err := generator.New(cfg)
		if err != nil {
			return err
		}

		fmt.Printf("Generating %d variations...\n", variationsFlags.count)
		fetcher := rates.NewFetcher(cfg.RateCacheFile)
		snapshot := fetcher.Fetch(cmd.Context())

		variations := gen.Variations(cmd.Context(), snapshot, generator.Request{
			Platform:    variationsFlags.platform,
			Audience:    variationsFlags.audience,
			LoanOfficer: variationsFlags.loanOfficer,
			Company:     variationsFlags.company,
		}, variationsFlags.count)

		for _, v := range variations {
			fmt.Println("\n" + divider)
			fmt.Printf("VARIATION #%d - %s\n", v.VariationID, strings.ToUpper(v.VariationType))
			fmt.Println(divider)
			displayContent(v, false)
		}

		fmt.Printf("\nGenerated %d variations\n", len(variations))
		return nil
	},
}

func init() {
	variationsCmd.Flags().StringVarP(&variationsFlags.platform, "platform", "p", "", "target platform (facebook, instagram, linkedin)")
	variationsCmd.Flags().StringVarP(&variationsFlags.audience, "audience", "a", "", "target audience (gen_z, millennials, gen_x, baby_boomers)")
	variationsCmd.Flags().IntVarP(&variationsFlags.count, "count", "n", 3, "number of variations")
	variationsCmd.Flags().StringVar(&variationsFlags.loanOfficer, "loan-officer", "", "loan officer name")
	variationsCmd.Flags().StringVar(&variationsFlags.company, "company", "", "company name")
	variationsCmd.Flags().StringVar(&variationsFlags.apiKey, "api-key", "", "LLM API key (falls back to ANTHROPIC_API_KEY)")
	variationsCmd.MarkFlagRequired("platform")
	variationsCmd.MarkFlagRequired("audience")

	rootCmd.AddCommand(variationsCmd)
}
