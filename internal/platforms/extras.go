package platforms

import "socialagent/internal/models"

var engagementTips = map[string][]string{
	models.PlatformFacebook: {
		"Post when your audience is most active (typically 1-3 PM weekdays)",
		"Ask questions to encourage comments",
		"Respond quickly to comments to boost engagement",
		"Use Facebook Live for real-time Q&A sessions",
		"Share behind-the-scenes content to build trust",
	},
	models.PlatformInstagram: {
		"Use Instagram Stories for daily updates",
		"Post consistently at optimal times (11 AM - 1 PM)",
		"Use relevant hashtags in comments for cleaner look",
		"Engage with your audience's content too",
		"Save important content as Story Highlights",
	},
	models.PlatformLinkedIn: {
		"Post during business hours for maximum reach",
		"Share industry insights and thought leadership",
		"Engage with comments professionally and promptly",
		"Use LinkedIn's publishing platform for longer content",
		"Connect with local real estate professionals",
	},
}

var visualSuggestions = map[string]map[string]string{
	models.PlatformFacebook: {
		"primary":   "Clean, professional chart showing rate trends",
		"secondary": "Carousel post with rate breakdown and tips",
		"video":     "Short explainer video about current market conditions",
	},
	models.PlatformInstagram: {
		"primary":   "Bright, eye-catching infographic with rate highlights",
		"secondary": "Story series breaking down rate information",
		"video":     "Reel explaining what current rates mean for buyers",
	},
	models.PlatformLinkedIn: {
		"primary":   "Professional data visualization with market analysis",
		"secondary": "Document carousel with detailed market insights",
		"video":     "Professional presentation about rate trends",
	},
}

var postingTimes = map[string]map[string][]string{
	models.PlatformFacebook: {
		models.AudienceMillennials: {"9-10 AM", "3-4 PM", "7-8 PM"},
		models.AudienceGenX:        {"6-9 AM", "12-2 PM", "7-9 PM"},
		models.AudienceBabyBoomers: {"10-11 AM", "2-4 PM", "6-8 PM"},
	},
	models.PlatformInstagram: {
		models.AudienceMillennials: {"11 AM-1 PM", "5-7 PM", "7-9 PM"},
		models.AudienceGenX:        {"8-10 AM", "12-2 PM", "5-7 PM"},
		models.AudienceBabyBoomers: {"10 AM-12 PM", "2-4 PM", "6-7 PM"},
	},
	models.PlatformLinkedIn: {
		models.AudienceMillennials: {"8-9 AM", "12-1 PM", "5-6 PM"},
		models.AudienceGenX:        {"7-9 AM", "12-2 PM", "5-6 PM"},
		models.AudienceBabyBoomers: {"8-10 AM", "11 AM-12 PM", "1-3 PM"},
	},
}

// EngagementTips returns the platform's engagement checklist.
func EngagementTips(platform string) []string {
	return engagementTips[models.NormalizePlatform(platform)]
}

// VisualSuggestions returns the platform's visual content recommendations;
// unknown platforms fall back to the facebook set.
func VisualSuggestions(platform string) map[string]string {
	if s, ok := visualSuggestions[models.NormalizePlatform(platform)]; ok {
		return s
	}
	return visualSuggestions[models.DefaultPlatform]
}

// PostingTimes returns weekday windows for the platform and audience plus a
// fixed weekend set.
func PostingTimes(platform, audience string) map[string][]string {
	byAudience, ok := postingTimes[models.NormalizePlatform(platform)]
	if !ok {
		byAudience = postingTimes[models.DefaultPlatform]
	}
	weekdays, ok := byAudience[models.NormalizeAudience(audience)]
	if !ok {
		weekdays = byAudience[models.DefaultAudience]
	}
	return map[string][]string{
		"weekdays": weekdays,
		"weekends": {"10 AM-12 PM", "2-4 PM"},
	}
}
