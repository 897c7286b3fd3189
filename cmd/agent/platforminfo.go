package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"socialagent/internal/models"
	"socialagent/internal/platforms"
)

// contentStrategies supplements the shared best-practice tables with
// CLI-only editorial strategy guidance.
var contentStrategies = map[string][]string{
	models.PlatformFacebook: {
		"Focus on community building and relationship development",
		"Share client success stories and testimonials",
		"Provide educational content about homebuying process",
		"Use local market insights and neighborhood information",
		"Create discussion posts about market trends",
	},
	models.PlatformInstagram: {
		"Share visually appealing home and market content",
		"Use infographics to explain complex mortgage concepts",
		"Post client testimonials with permission",
		"Create educational carousel posts",
		"Show personality with behind-the-scenes content",
	},
	models.PlatformLinkedIn: {
		"Share professional market analysis and trends",
		"Discuss industry news and regulatory changes",
		"Provide expert commentary on economic factors",
		"Network with real estate professionals and referral partners",
		"Establish credibility through educational content",
	},
}

var platformInfoCmd = &cobra.Command{
	Use:   "platform-info <platform>",
	Short: "Display platform specifications and best practices",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		platform := models.NormalizePlatform(args[0])
		if !models.ValidPlatform(platform) {
			return fmt.Errorf("unknown platform %q (expected facebook, instagram, or linkedin)", args[0])
		}

		limits := platforms.GetLimits(platform)
		practices := platforms.GetBestPractices(platform)

		fmt.Printf("%s COMPREHENSIVE GUIDE\n\n", strings.ToUpper(platform))

		fmt.Println("PLATFORM SPECIFICATIONS:")
		fmt.Printf("  - Max Chars: %d\n", limits.CharacterLimit)
		fmt.Printf("  - Optimal Chars: %d\n", limits.OptimalLength)
		fmt.Printf("  - Max Hashtags: %d\n", limits.HashtagLimit)
		fmt.Printf("  - Recommended Hashtags: %d\n", limits.OptimalHashtags)

		fmt.Println("\nBEST PRACTICES:")
		for _, group := range [][]string{practices.Content, practices.Timing, practices.Engagement} {
			for _, practice := range group {
				fmt.Printf("  - %s\n", practice)
			}
		}

		fmt.Println("\nCONTENT STRATEGY:")
		for _, strategy := range contentStrategies[platform] {
			fmt.Printf("  - %s\n", strategy)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(platformInfoCmd)
}
