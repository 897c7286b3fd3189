package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"socialagent/internal/config"
	"socialagent/internal/generator"
	"socialagent/internal/rates"
	"socialagent/internal/store"
)

var generateFlags struct {
	platform    string
	audience    string
	contentType string
	loanOfficer string
	company     string
	focus       string
	apiKey      string
	save        bool
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate AI-powered social media content",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()
		if generateFlags.apiKey != "" {
			cfg.APIKey = generateFlags.apiKey
		}

		gen, err := generator.New(cfg)
		if err != nil {
			return err
		}

		fmt.Println("Fetching current market data and generating content...")
		fetcher := rates.NewFetcher(cfg.RateCacheFile)
		snapshot := fetcher.Fetch(cmd.Context())

		content := gen.Generate(cmd.Context(), snapshot, generator.Request{
			Platform:    generateFlags.platform,
			Audience:    generateFlags.audience,
			ContentType: generateFlags.contentType,
			LoanOfficer: generateFlags.loanOfficer,
			Company:     generateFlags.company,
			CustomFocus: generateFlags.focus,
		})

		if generateFlags.save || cfg.SaveGeneratedContent {
			path, err := store.New(cfg.ContentDir).Save(content)
			if err != nil {
				return fmt.Errorf("saving content: %w", err)
			}
			fmt.Printf("Saved to %s\n", path)
		}

		displayContent(content, true)

		if content.AIGenerated {
			fmt.Println("\nContent generated using AI")
		} else {
			fmt.Println("\nFallback content used (AI generation failed)")
		}
		return nil
	},
}

func init() {
	generateCmd.Flags().StringVarP(&generateFlags.platform, "platform", "p", "", "target platform (facebook, instagram, linkedin)")
	generateCmd.Flags().StringVarP(&generateFlags.audience, "audience", "a", "", "target audience (gen_z, millennials, gen_x, baby_boomers)")
	generateCmd.Flags().StringVarP(&generateFlags.contentType, "type", "t", "market_update", "content type (educational, market_update, promotional)")
	generateCmd.Flags().StringVar(&generateFlags.loanOfficer, "loan-officer", "", "loan officer name")
	generateCmd.Flags().StringVar(&generateFlags.company, "company", "", "company name")
	generateCmd.Flags().StringVar(&generateFlags.focus, "focus", "", "custom content focus or theme")
	generateCmd.Flags().StringVar(&generateFlags.apiKey, "api-key", "", "LLM API key (falls back to ANTHROPIC_API_KEY)")
	generateCmd.Flags().BoolVar(&generateFlags.save, "save", false, "save generated content to the content directory")
	generateCmd.MarkFlagRequired("platform")
	generateCmd.MarkFlagRequired("audience")

	rootCmd.AddCommand(generateCmd)
}
