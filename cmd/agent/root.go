package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "socialagent",
	Short:         "AI-powered mortgage rate social media content generator",
	Long:          "Generate platform-optimized social media content for loan officers from live mortgage rate data.",
	SilenceUsage:  true,
	SilenceErrors: false,
}
