package platforms

import (
	"fmt"

	"socialagent/internal/models"
)

// Validation reports how content measures against platform limits.
type Validation struct {
	IsValid        bool     `json:"is_valid"`
	Warnings       []string `json:"warnings"`
	Errors         []string `json:"errors"`
	CharacterCount int      `json:"character_count"`
	HashtagCount   int      `json:"hashtag_count"`
}

// Validate checks content against the platform's hard limits (errors) and
// optimal values (warnings).
func Validate(content models.GeneratedContent, platform string) Validation {
	platform = models.NormalizePlatform(platform)
	limits := GetLimits(platform)

	result := Validation{
		IsValid:        true,
		CharacterCount: len(content.MainContent),
		HashtagCount:   len(content.Hashtags),
	}

	switch {
	case result.CharacterCount > limits.CharacterLimit:
		result.Errors = append(result.Errors, fmt.Sprintf(
			"content exceeds %s character limit (%d > %d)", platform, result.CharacterCount, limits.CharacterLimit))
		result.IsValid = false
	case result.CharacterCount > limits.OptimalLength:
		result.Warnings = append(result.Warnings, fmt.Sprintf(
			"content longer than optimal for %s (%d > %d)", platform, result.CharacterCount, limits.OptimalLength))
	}

	switch {
	case result.HashtagCount > limits.HashtagLimit:
		result.Errors = append(result.Errors, fmt.Sprintf(
			"too many hashtags for %s (%d > %d)", platform, result.HashtagCount, limits.HashtagLimit))
		result.IsValid = false
	case result.HashtagCount > limits.OptimalHashtags:
		result.Warnings = append(result.Warnings, fmt.Sprintf(
			"more hashtags than optimal for %s (%d > %d)", platform, result.HashtagCount, limits.OptimalHashtags))
	}

	return result
}

// BestPractices holds static editorial guidance for a platform.
type BestPractices struct {
	Content    []string `json:"content"`
	Timing     []string `json:"timing"`
	Engagement []string `json:"engagement"`
}

var bestPractices = map[string]BestPractices{
	models.PlatformFacebook: {
		Content: []string{
			"Use conversational tone",
			"Ask questions to encourage engagement",
			"Share valuable insights, not just promotions",
			"Include local market information when relevant",
		},
		Timing: []string{
			"Post 1-2 times per day maximum",
			"Best times are typically 1-3 PM on weekdays",
			"Avoid posting late at night or very early morning",
		},
		Engagement: []string{
			"Respond to comments within 2-4 hours",
			"Like and reply to engage the algorithm",
			"Share user-generated content when appropriate",
			"Go live occasionally for real-time interaction",
		},
	},
	models.PlatformInstagram: {
		Content: []string{
			"Focus on high-quality visuals",
			"Use Stories for behind-the-scenes content",
			"Create branded, consistent visual style",
			"Mix educational and personal content",
		},
		Timing: []string{
			"Post once daily consistently",
			"Use Stories multiple times per day",
			"Best engagement typically 11 AM - 1 PM",
			"Post Reels in the evening for maximum reach",
		},
		Engagement: []string{
			"Use relevant hashtags in first comment",
			"Engage with similar accounts in your niche",
			"Respond to DMs quickly",
			"Use Instagram's newest features early",
		},
	},
	models.PlatformLinkedIn: {
		Content: []string{
			"Share industry expertise and insights",
			"Write longer-form educational content",
			"Comment thoughtfully on industry discussions",
			"Share company news and achievements",
		},
		Timing: []string{
			"Post during business hours",
			"Tuesday-Thursday typically get best engagement",
			"Avoid weekends unless sharing personal insights",
			"Consistency over frequency",
		},
		Engagement: []string{
			"Connect with industry peers and clients",
			"Participate in relevant group discussions",
			"Share others' content with thoughtful commentary",
			"Send personalized connection requests",
		},
	},
}

// GetBestPractices returns the platform's guidance; unknown platforms fall
// back to facebook.
func GetBestPractices(platform string) BestPractices {
	if p, ok := bestPractices[models.NormalizePlatform(platform)]; ok {
		return p
	}
	return bestPractices[models.DefaultPlatform]
}
