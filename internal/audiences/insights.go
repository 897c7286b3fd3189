package audiences

import "socialagent/internal/models"

// Insights bundles the editorial guidance used to steer a single generation
// request for one audience, content type, and platform.
type Insights struct {
	Tone              string            `json:"tone"`
	KeyMessages       []string          `json:"key_messages"`
	EmotionalTriggers []string          `json:"emotional_triggers"`
	CallToAction      string            `json:"call_to_action"`
	ContentHooks      []string          `json:"content_hooks"`
	ObjectionHandling map[string]string `json:"objection_handling"`
	ValuePropositions []string          `json:"value_propositions"`
}

var toneMatrix = map[string]map[string]string{
	models.AudienceGenZ: {
		models.ContentEducational:  "Direct and visual with bite-sized, mobile-friendly explanations",
		models.ContentPromotional:  "Authentic and relatable, emphasizing social impact and transparency",
		models.ContentMarketUpdate: "Informal but informative, with trending language and instant value",
	},
	models.AudienceMillennials: {
		models.ContentEducational:  "Friendly and approachable with clear, jargon-free explanations",
		models.ContentPromotional:  "Authentic and transparent, focusing on benefits and social proof",
		models.ContentMarketUpdate: "Casual but informative, with actionable takeaways",
	},
	models.AudienceGenX: {
		models.ContentEducational:  "Professional and direct, with practical examples and ROI focus",
		models.ContentPromotional:  "Results-oriented and efficient, emphasizing track record",
		models.ContentMarketUpdate: "Strategic and analytical, with clear implications",
	},
	models.AudienceBabyBoomers: {
		models.ContentEducational:  "Respectful and thorough, with detailed explanations and context",
		models.ContentPromotional:  "Trust-building and relationship-focused, emphasizing experience",
		models.ContentMarketUpdate: "Conservative and measured, with historical perspective",
	},
}

var ctaMatrix = map[string]map[string]string{
	models.AudienceGenZ: {
		models.PlatformInstagram: "Ready to stop throwing money at rent? DM me and let's make homeownership happen! 🏠",
		models.PlatformFacebook:  "Thinking about buying your first home? Drop a comment or slide into my DMs!",
		models.PlatformLinkedIn:  "Want to learn about first-time buyer programs? Let's connect and chat!",
	},
	models.AudienceMillennials: {
		models.PlatformInstagram: "Ready to explore homeownership? Comment below or DM me to get started.",
		models.PlatformFacebook:  "Ready to take the next step? Comment below or send me a message - I'm here to help!",
		models.PlatformLinkedIn:  "Interested in learning more? Connect with me to discuss your homeownership goals.",
	},
	models.AudienceGenX: {
		models.PlatformInstagram: "Questions about refinancing or home equity? Send me a DM - let's talk strategy.",
		models.PlatformFacebook:  "Ready to optimize your mortgage? Comment below or message me to discuss your options.",
		models.PlatformLinkedIn:  "Let's discuss how current market conditions affect your mortgage strategy. Message me.",
	},
	models.AudienceBabyBoomers: {
		models.PlatformInstagram: "I'm here to provide personalized guidance. Please reach out through DM for a consultation.",
		models.PlatformFacebook:  "I'd be happy to discuss your mortgage needs. Please feel free to contact me directly.",
		models.PlatformLinkedIn:  "For a comprehensive consultation, please don't hesitate to reach out. I'm here to help.",
	},
}

var contentHooks = map[string][]string{
	models.AudienceGenZ: {
		"Tired of making your landlord rich? Here's how to buy your first home",
		"This mortgage hack will change your whole financial future",
		"Why renting is keeping you broke (and what to do instead)",
	},
	models.AudienceMillennials: {
		"Your dream home is more affordable than you think",
		"Stop paying someone else's mortgage - here's how to buy",
		"The homebuying hack your parents never told you about",
	},
	models.AudienceGenX: {
		"Smart families are doing this with their mortgages right now",
		"The refinancing strategy that's saving families $500+ monthly",
		"How to turn your home equity into wealth-building power",
	},
	models.AudienceBabyBoomers: {
		"After 30 years in mortgages, here's what I tell my own family",
		"The mortgage strategy for secure retirement planning",
		"Why experience matters more than ever in today's market",
	},
}

var objectionResponses = map[string]string{
	"rates too high":            "Even with today's rates, homeownership builds wealth over time vs. renting",
	"can't afford":              "Let's explore all available programs - you might qualify for more than you think",
	"process too complex":       "I'll guide you through every step and make it as simple as possible",
	"process too complicated":   "I'll simplify everything and handle all the complex stuff for you",
	"too young to buy":          "Age isn't the factor - stable income and good credit are what matter most",
	"closing costs vs. savings": "Let's run the numbers to see your real break-even point",
	"timing concerns":           "I'll help you determine the optimal timing based on your specific situation",
	"qualification changes":     "Lending requirements are stable - let's review your current position",
}

var valueProps = map[string][]string{
	models.AudienceGenZ: {
		"Mobile-first application process and digital tools",
		"Credit building guidance and first-time buyer programs",
		"Transparent, jargon-free explanations of all options",
	},
	models.AudienceMillennials: {
		"First-time buyer programs and down payment assistance",
		"Technology-driven process for faster approvals",
		"Credit improvement strategies and guidance",
	},
	models.AudienceGenX: {
		"Refinancing analysis and debt consolidation options",
		"Investment property and wealth-building strategies",
		"Efficient processes that respect your time",
	},
	models.AudienceBabyBoomers: {
		"Decades of experience and market knowledge",
		"White-glove service with personal attention",
		"Conservative, security-focused mortgage solutions",
	},
}

// TargetingInsights derives the guidance block for one generation request.
// Unknown keys resolve through the same default chain as GetProfile.
func TargetingInsights(audience, contentType, platform string) Insights {
	profile := GetProfile(audience)
	key := profile.Key
	contentType = models.NormalizeContentType(contentType)
	platform = models.NormalizePlatform(platform)

	return Insights{
		Tone:              optimalTone(key, contentType, profile),
		KeyMessages:       keyMessages(profile, contentType),
		EmotionalTriggers: emotionalTriggers(profile, contentType),
		CallToAction:      optimalCTA(key, platform),
		ContentHooks:      contentHooks[key],
		ObjectionHandling: objectionHandling(profile),
		ValuePropositions: valuePropositions(key),
	}
}

func optimalTone(key, contentType string, profile Profile) string {
	if tone, ok := toneMatrix[key][contentType]; ok {
		return tone
	}
	return profile.Psychographics.CommunicationStyle
}

func keyMessages(profile Profile, contentType string) []string {
	messages := append([]string(nil), profile.MortgageFocus.Motivators...)
	switch contentType {
	case models.ContentEducational:
		messages = append(messages, "Expert guidance", "Simplified process", "Informed decisions")
	case models.ContentPromotional:
		messages = append(messages, "Proven results", "Personalized service", "Trusted expertise")
	default:
		messages = append(messages, "Timely insights", "Market opportunities", "Strategic timing")
	}
	if len(messages) > 4 {
		messages = messages[:4]
	}
	return messages
}

func emotionalTriggers(profile Profile, contentType string) []string {
	triggers := append([]string(nil), profile.Psychographics.Values...)
	switch contentType {
	case models.ContentEducational:
		triggers = append(triggers, "confidence", "empowerment", "clarity")
	case models.ContentPromotional:
		triggers = append(triggers, "trust", "success", "partnership")
	case models.ContentMarketUpdate:
		triggers = append(triggers, "opportunity", "timeliness", "advantage")
	}
	return triggers
}

func optimalCTA(key, platform string) string {
	if cta, ok := ctaMatrix[key][platform]; ok {
		return cta
	}
	return "Contact me to learn more about your options."
}

func objectionHandling(profile Profile) map[string]string {
	out := make(map[string]string, len(profile.MortgageFocus.Objections))
	for _, objection := range profile.MortgageFocus.Objections {
		if response, ok := objectionResponses[objection]; ok {
			out[objection] = response
		} else {
			out[objection] = "Let me address that concern with you personally"
		}
	}
	return out
}

func valuePropositions(key string) []string {
	base := []string{
		"Personalized guidance throughout the process",
		"Access to multiple loan programs and options",
		"Expert market knowledge and timing insights",
	}
	return append(base, valueProps[key]...)
}
