package models

// Platform identifies a social media destination.
const (
	PlatformFacebook  = "facebook"
	PlatformInstagram = "instagram"
	PlatformLinkedIn  = "linkedin"
)

// DefaultPlatform is used when an unknown platform key is supplied.
const DefaultPlatform = PlatformFacebook

// Platforms lists all supported platform keys.
var Platforms = []string{PlatformFacebook, PlatformInstagram, PlatformLinkedIn}

// NormalizePlatform lowercases and underscores a platform key.
func NormalizePlatform(platform string) string {
	return normalizeKey(platform)
}

// ValidPlatform reports whether the key names a supported platform.
func ValidPlatform(platform string) bool {
	switch NormalizePlatform(platform) {
	case PlatformFacebook, PlatformInstagram, PlatformLinkedIn:
		return true
	}
	return false
}
