package generator

import (
	"fmt"
	"strings"

	"socialagent/internal/models"
	"socialagent/internal/platforms"
)

// fallbackTemplates are the per-audience posts used when the LLM is
// unavailable. Each takes the current rate as its single format argument.
var fallbackTemplates = map[string]string{
	models.AudienceGenZ:        "Mortgage rates at %.2f%% right now! Tired of paying rent with no equity? Let's chat about getting you into your first home 🏠",
	models.AudienceMillennials: "Current 30-year mortgage rates: %.2f%%. Ready to explore homeownership? Let's discuss your options and find the right path forward.",
	models.AudienceGenX:        "Mortgage rates at %.2f%% this week. Great time to review your current loan and explore refinancing opportunities.",
	models.AudienceBabyBoomers: "30-year fixed rates: %.2f%%. I'm here to provide expert guidance on all your mortgage needs.",
}

var baseHashtags = []string{"#MortgageRates", "#HomeLoans", "#MortgageExpert"}

var audienceHashtags = map[string][]string{
	models.AudienceGenZ:        {"#FirstHome", "#StopRenting", "#FinancialFreedom", "#GenZHomebuyer"},
	models.AudienceMillennials: {"#FirstTimeBuyer", "#Homeownership", "#RealEstate"},
	models.AudienceGenX:        {"#Refinancing", "#HomeEquity", "#SmartMoney"},
	models.AudienceBabyBoomers: {"#RefinanceOptions", "#RetirementPlanning", "#MortgageProfessional"},
}

// DefaultHashtags returns the stock hashtag set for an audience, truncated to
// the platform's optimal count.
func DefaultHashtags(audience, platform string) []string {
	tags := append([]string(nil), baseHashtags...)
	tags = append(tags, audienceHashtags[models.NormalizeAudience(audience)]...)

	limit := platforms.GetLimits(platform).OptimalHashtags
	if len(tags) > limit {
		tags = tags[:limit]
	}
	return tags
}

// Fallback builds template-based content when AI generation is unavailable.
// The result is marked FallbackUsed so callers and analytics can tell it from
// AI output.
func Fallback(rate models.RateSnapshot, platform, audience, contentType, loanOfficer, company string) models.GeneratedContent {
	template, ok := fallbackTemplates[models.NormalizeAudience(audience)]
	if !ok {
		template = fallbackTemplates[models.DefaultAudience]
	}
	main := fmt.Sprintf(template, rate.CurrentRate)

	var signature []string
	if loanOfficer != "" {
		signature = append(signature, loanOfficer)
	}
	if company != "" {
		signature = append(signature, company)
	}
	if len(signature) > 0 {
		main += "\n\n- " + strings.Join(signature, ", ")
	}

	hashtags := DefaultHashtags(audience, platform)
	full := main + "\n\n" + strings.Join(hashtags, " ")

	return models.GeneratedContent{
		Content:            full,
		MainContent:        main,
		Hashtags:           hashtags,
		CharacterCount:     len(full),
		VisualConcept:      "Professional rate chart with current market data",
		EngagementStrategy: "Encourage questions and schedule consultations",
		Platform:           models.NormalizePlatform(platform),
		Audience:           models.NormalizeAudience(audience),
		ContentType:        contentType,
		AIGenerated:        false,
		FallbackUsed:       true,
	}
}
