package generator

import (
	"fmt"
	"math"
	"strings"

	"socialagent/internal/audiences"
	"socialagent/internal/models"
	"socialagent/internal/platforms"
)

// BuildPrompt assembles the instruction block sent to the LLM for one
// generation request. The RESPONSE FORMAT headers here must stay in sync with
// the prefixes ParseResponse recognizes.
func BuildPrompt(rate models.RateSnapshot, platform, audience, contentType string,
	insights audiences.Insights, loanOfficer, company, customFocus string) string {

	profile := audiences.GetProfile(audience)
	limits := platforms.GetLimits(platform)

	direction := "remained stable"
	switch {
	case rate.Increased():
		direction = "increased"
	case rate.Decreased():
		direction = "decreased"
	}
	magnitude := ""
	switch {
	case math.Abs(rate.RateChange) >= 0.1:
		magnitude = "significantly"
	case math.Abs(rate.RateChange) >= 0.05:
		magnitude = "slightly"
	}

	var branding strings.Builder
	if loanOfficer != "" || company != "" {
		branding.WriteString("\nPERSONAL BRANDING:\n")
		if loanOfficer != "" {
			fmt.Fprintf(&branding, "- Loan Officer: %s\n", loanOfficer)
		}
		if company != "" {
			fmt.Fprintf(&branding, "- Company: %s\n", company)
		}
	}

	if customFocus == "" {
		customFocus = "Standard mortgage rate content focusing on current opportunities"
	}

	return fmt.Sprintf(`You are an expert mortgage industry social media content creator. Create compelling, professional social media content that converts prospects into leads.

CURRENT MARKET DATA:
- 30-year fixed mortgage rate: %.2f%%
- Rate change: %+.2f%% (%s)
- Market confidence: %s
- Data source: %s
- Date: %s

TARGET SPECIFICATIONS:
- Platform: %s
- Audience: %s (%s)
- Content Type: %s
- Communication Tone: %s

AUDIENCE PROFILE:
- Demographics: %s
- Income Range: %s
- Key Priorities: %s
- Main Challenges: %s
- Decision Factors: %s
- Primary Mortgage Needs: %s

TARGETING INSIGHTS:
- Key Messages: %s
- Emotional Triggers: %s
- Value Propositions: %s
- Optimal CTA: %s

PLATFORM REQUIREMENTS (%s):
- Optimal character length: %d
- Recommended hashtags: %d
- Content style: %s
- Engagement approach: %s
%s
CUSTOM FOCUS: %s

CONTENT REQUIREMENTS:
1. Start with a compelling hook that addresses %s's main concerns
2. Include current rate information (%.2f%%) with relevant context
3. Address their key challenge: %s
4. Highlight a relevant value proposition from: %s
5. Include emotional trigger: %s
6. End with the optimal call-to-action for %s
7. Maintain %s tone throughout
8. Ensure content is %s-optimized and encourages %s engagement

RESPONSE FORMAT:
MAIN_CONTENT:
[Write the social media post content here - compelling, professional, conversion-focused]

HASHTAGS:
[List relevant hashtags separated by spaces]

VISUAL_CONCEPT:
[Describe recommended visual content/graphics]

ENGAGEMENT_STRATEGY:
[Brief strategy for maximizing engagement]

Generate content that feels authentic, provides genuine value, and naturally leads to mortgage consultations while maintaining the highest professional standards.`,
		rate.CurrentRate,
		rate.RateChange, strings.TrimSpace(direction+" "+magnitude),
		rate.Confidence,
		rate.Source,
		rate.Date,

		strings.ToUpper(platform),
		profile.Name, profile.AgeRange,
		titleWords(contentType),
		insights.Tone,

		profile.Demographics.LifeStage,
		profile.Demographics.IncomeRange,
		strings.Join(profile.Demographics.Priorities, ", "),
		strings.Join(profile.Demographics.Challenges, ", "),
		strings.Join(profile.Psychographics.DecisionFactors, ", "),
		strings.Join(profile.MortgageFocus.PrimaryNeeds, ", "),

		strings.Join(insights.KeyMessages, ", "),
		strings.Join(insights.EmotionalTriggers, ", "),
		strings.Join(firstN(insights.ValuePropositions, 3), ", "),
		insights.CallToAction,

		strings.ToUpper(platform),
		limits.OptimalLength,
		limits.OptimalHashtags,
		platforms.Style(platform),
		profile.DigitalBehavior.EngagementStyle,
		branding.String(),
		customFocus,

		profile.Name,
		rate.CurrentRate,
		first(profile.Demographics.Challenges, "affordability"),
		strings.Join(firstN(insights.ValuePropositions, 2), ", "),
		first(insights.EmotionalTriggers, "confidence"),
		platform,
		insights.Tone,
		platform, profile.DigitalBehavior.EngagementStyle,
	)
}

func titleWords(s string) string {
	words := strings.Fields(strings.ReplaceAll(s, "_", " "))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

func firstN(list []string, n int) []string {
	if len(list) > n {
		return list[:n]
	}
	return list
}

func first(list []string, fallback string) string {
	if len(list) > 0 {
		return list[0]
	}
	return fallback
}
