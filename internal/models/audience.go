package models

import "strings"

// Audience identifies a demographic segment in the static catalog.
const (
	AudienceGenZ        = "gen_z"
	AudienceMillennials = "millennials"
	AudienceGenX        = "gen_x"
	AudienceBabyBoomers = "baby_boomers"
)

// DefaultAudience is used when an unknown audience key is supplied.
const DefaultAudience = AudienceMillennials

// Audiences lists all supported audience keys.
var Audiences = []string{AudienceGenZ, AudienceMillennials, AudienceGenX, AudienceBabyBoomers}

// Content types steer the tone and structure of generated posts.
const (
	ContentEducational  = "educational"
	ContentPromotional  = "promotional"
	ContentMarketUpdate = "market_update"
	ContentCallToAction = "call_to_action"
)

// DefaultContentType is used when no content type is supplied.
const DefaultContentType = ContentMarketUpdate

// ContentTypes lists all supported content type keys.
var ContentTypes = []string{ContentEducational, ContentPromotional, ContentMarketUpdate, ContentCallToAction}

// normalizeKey lowercases and underscores a catalog key.
func normalizeKey(key string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(key)), " ", "_")
}

// NormalizeAudience lowercases and underscores an audience key.
func NormalizeAudience(audience string) string {
	return normalizeKey(audience)
}

// NormalizeContentType lowercases and underscores a content type key.
func NormalizeContentType(contentType string) string {
	return normalizeKey(contentType)
}

// ValidAudience reports whether the key names a catalog audience.
func ValidAudience(audience string) bool {
	switch NormalizeAudience(audience) {
	case AudienceGenZ, AudienceMillennials, AudienceGenX, AudienceBabyBoomers:
		return true
	}
	return false
}

// ValidContentType reports whether the key names a supported content type.
func ValidContentType(contentType string) bool {
	switch NormalizeContentType(contentType) {
	case ContentEducational, ContentPromotional, ContentMarketUpdate, ContentCallToAction:
		return true
	}
	return false
}
