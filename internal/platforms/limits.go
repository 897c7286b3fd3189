package platforms

import "socialagent/internal/models"

// Limits are the per-destination ceilings on text length and hashtag count.
type Limits struct {
	CharacterLimit  int `json:"character_limit"`
	OptimalLength   int `json:"optimal_length"`
	HashtagLimit    int `json:"hashtag_limit"`
	OptimalHashtags int `json:"optimal_hashtags"`
}

var limitsTable = map[string]Limits{
	models.PlatformFacebook:  {CharacterLimit: 63206, OptimalLength: 500, HashtagLimit: 30, OptimalHashtags: 5},
	models.PlatformInstagram: {CharacterLimit: 2200, OptimalLength: 350, HashtagLimit: 30, OptimalHashtags: 15},
	models.PlatformLinkedIn:  {CharacterLimit: 3000, OptimalLength: 700, HashtagLimit: 20, OptimalHashtags: 5},
}

// GetLimits returns the limits for a platform; unknown platforms fall back to
// the facebook baseline.
func GetLimits(platform string) Limits {
	if l, ok := limitsTable[models.NormalizePlatform(platform)]; ok {
		return l
	}
	return limitsTable[models.DefaultPlatform]
}

// Style returns the platform's overall content style description.
func Style(platform string) string {
	styles := map[string]string{
		models.PlatformFacebook:  "Conversational and community-focused",
		models.PlatformInstagram: "Visual-first and trend-aware",
		models.PlatformLinkedIn:  "Professional and thought-leadership oriented",
	}
	if s, ok := styles[models.NormalizePlatform(platform)]; ok {
		return s
	}
	return "Professional and engaging"
}
