package main

import (
	"fmt"
	"strings"

	"socialagent/internal/models"
)

const divider = "============================================================"

// displayContent prints a generated post with its analysis block.
func displayContent(content models.GeneratedContent, showDetails bool) {
	fmt.Println("\nGENERATED CONTENT:")
	fmt.Println(strings.Repeat("-", 50))
	fmt.Println(content.Content)

	if !showDetails {
		return
	}

	fmt.Println("\nCONTENT ANALYSIS:")
	fmt.Printf("  - Character Count: %d\n", content.CharacterCount)
	fmt.Printf("  - Hashtags: %d\n", len(content.Hashtags))
	fmt.Printf("  - Platform: %s\n", titleCase(content.Platform))
	fmt.Printf("  - Audience: %s\n", titleCase(content.Audience))
	fmt.Printf("  - Content Type: %s\n", titleCase(content.ContentType))

	if content.VisualConcept != "" {
		fmt.Println("\nVISUAL CONCEPT:")
		fmt.Printf("  %s\n", content.VisualConcept)
	}
	if content.EngagementStrategy != "" {
		fmt.Println("\nENGAGEMENT STRATEGY:")
		fmt.Printf("  %s\n", content.EngagementStrategy)
	}
}

// titleCase turns a snake_case key into a display label.
func titleCase(s string) string {
	words := strings.Fields(strings.ReplaceAll(s, "_", " "))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
