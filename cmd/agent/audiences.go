package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"socialagent/internal/audiences"
	"socialagent/internal/models"
)

var audiencesCmd = &cobra.Command{
	Use:   "audiences",
	Short: "Display detailed audience profiles and targeting information",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println("COMPREHENSIVE AUDIENCE TARGETING GUIDE")

		for _, key := range models.Audiences {
			profile := audiences.GetProfile(key)

			fmt.Println("\n" + divider)
			fmt.Printf("%s (%s)\n", strings.ToUpper(profile.Name), profile.AgeRange)
			fmt.Println(divider)

			fmt.Println("DEMOGRAPHICS:")
			fmt.Printf("  Income Range: %s\n", profile.Demographics.IncomeRange)
			fmt.Printf("  Life Stage: %s\n", profile.Demographics.LifeStage)
			fmt.Printf("  Priorities: %s\n", strings.Join(profile.Demographics.Priorities, ", "))

			fmt.Println("\nPSYCHOGRAPHICS:")
			fmt.Printf("  Values: %s\n", strings.Join(profile.Psychographics.Values, ", "))
			fmt.Printf("  Communication: %s\n", profile.Psychographics.CommunicationStyle)
			fmt.Printf("  Decision Factors: %s\n", strings.Join(profile.Psychographics.DecisionFactors, ", "))

			fmt.Println("\nDIGITAL BEHAVIOR:")
			fmt.Printf("  Preferred Platforms: %s\n", strings.Join(profile.DigitalBehavior.Platforms, ", "))
			fmt.Printf("  Content Types: %s\n", strings.Join(profile.DigitalBehavior.ContentPreferences, ", "))
			fmt.Printf("  Best Posting Times: %s\n", strings.Join(profile.DigitalBehavior.PostingTimes, ", "))

			fmt.Println("\nMORTGAGE FOCUS:")
			fmt.Printf("  Primary Needs: %s\n", strings.Join(profile.MortgageFocus.PrimaryNeeds, ", "))
			fmt.Printf("  Main Objections: %s\n", strings.Join(profile.MortgageFocus.Objections, ", "))
			fmt.Printf("  Key Motivators: %s\n", strings.Join(profile.MortgageFocus.Motivators, ", "))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(audiencesCmd)
}
