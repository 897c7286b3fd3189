package platforms

import (
	"reflect"
	"strings"
	"testing"
	"unicode/utf8"

	"socialagent/internal/models"
)

func TestGetLimits_UnknownFallsBackToFacebook(t *testing.T) {
	tests := []string{"twitter", "", "tiktok"}
	want := limitsTable[models.PlatformFacebook]

	for _, platform := range tests {
		t.Run("platform="+platform, func(t *testing.T) {
			if got := GetLimits(platform); got != want {
				t.Errorf("GetLimits(%q) = %+v, want facebook baseline %+v", platform, got, want)
			}
		})
	}
}

func TestGetLimits_Known(t *testing.T) {
	got := GetLimits("Instagram")
	if got.CharacterLimit != 2200 || got.OptimalHashtags != 15 {
		t.Errorf("GetLimits(instagram) = %+v", got)
	}
}

func TestOptimizeText_WithinOptimalUnchanged(t *testing.T) {
	limits := Limits{CharacterLimit: 1000, OptimalLength: 100}
	text := "Short post."
	if got := OptimizeText(text, limits); got != text {
		t.Errorf("OptimizeText() = %q, want unchanged", got)
	}
}

func TestOptimizeText_HardTruncation(t *testing.T) {
	limits := Limits{CharacterLimit: 50, OptimalLength: 20}
	text := strings.Repeat("a", 200)

	got := OptimizeText(text, limits)
	if len(got) != 50 {
		t.Errorf("hard-truncated length = %d, want 50", len(got))
	}
	if !strings.HasSuffix(got, "...") {
		t.Errorf("hard-truncated text should end with ellipsis: %q", got)
	}
}

func TestOptimizeText_HardTruncationKeepsValidUTF8(t *testing.T) {
	limits := GetLimits(models.PlatformInstagram)
	// The last rune straddles the truncation point.
	text := strings.Repeat("a", limits.CharacterLimit-4) + "🏠🏠"

	got := OptimizeText(text, limits)
	if !utf8.ValidString(got) {
		t.Errorf("truncated text is not valid UTF-8: %q", got[len(got)-8:])
	}
	if len(got) > limits.CharacterLimit {
		t.Errorf("length = %d, want <= %d", len(got), limits.CharacterLimit)
	}
	if !strings.HasSuffix(got, "...") {
		t.Errorf("truncated text should end with ellipsis: %q", got)
	}
}

func TestOptimizeText_NeverExceedsCeiling(t *testing.T) {
	limits := GetLimits(models.PlatformInstagram)
	inputs := []string{
		strings.Repeat("x", 5000),
		strings.Repeat("A sentence here. ", 400),
		strings.Repeat("y", limits.CharacterLimit),
	}

	for _, text := range inputs {
		if got := OptimizeText(text, limits); len(got) > limits.CharacterLimit {
			t.Errorf("output length %d exceeds ceiling %d", len(got), limits.CharacterLimit)
		}
	}
}

func TestOptimizeText_SoftSentenceReassembly(t *testing.T) {
	limits := Limits{CharacterLimit: 10000, OptimalLength: 100}
	// Four 40-char sentences: 160 chars, over the 120% trigger.
	sentence := strings.Repeat("w", 38) // plus ". " = 40
	text := strings.Join([]string{sentence, sentence, sentence, sentence}, ". ") + ". "

	got := OptimizeText(text, limits)
	if len(got) > 110 {
		t.Errorf("soft-optimized length = %d, want <= 110%% of optimal", len(got))
	}
	if len(got) == 0 {
		t.Error("soft optimization produced empty output")
	}
	if !strings.HasSuffix(got, ".") {
		t.Errorf("soft-optimized text should end at a sentence boundary: %q", got)
	}
}

func TestOptimizeText_SlightlyOverOptimalUnchanged(t *testing.T) {
	limits := Limits{CharacterLimit: 10000, OptimalLength: 100}
	text := strings.Repeat("z", 110) // over optimal, under 120% trigger
	if got := OptimizeText(text, limits); got != text {
		t.Errorf("text within soft trigger should be unchanged, got %q", got)
	}
}

func TestOptimizeHashtags_DedupeCaseInsensitive(t *testing.T) {
	limits := Limits{HashtagLimit: 30, OptimalHashtags: 10}
	got := OptimizeHashtags([]string{"#Rates", "#rates", "#RATES"}, limits)
	want := []string{"#Rates"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("OptimizeHashtags() = %v, want %v", got, want)
	}
}

func TestOptimizeHashtags_PriorityOrdering(t *testing.T) {
	limits := Limits{HashtagLimit: 30, OptimalHashtags: 10}
	got := OptimizeHashtags([]string{"#LocalMarket", "#HomeLoans", "#Custom", "#MortgageRates"}, limits)
	want := []string{"#MortgageRates", "#HomeLoans", "#LocalMarket", "#Custom"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("OptimizeHashtags() = %v, want %v", got, want)
	}
}

func TestOptimizeHashtags_TruncatesToOptimal(t *testing.T) {
	limits := Limits{HashtagLimit: 30, OptimalHashtags: 2}
	got := OptimizeHashtags([]string{"#a", "#b", "#c", "#d"}, limits)
	if len(got) != 2 {
		t.Errorf("len = %d, want 2", len(got))
	}
}

func TestOptimizeHashtags_Idempotent(t *testing.T) {
	limits := GetLimits(models.PlatformLinkedIn)
	input := []string{"#Custom", "#MortgageRates", "#custom", "#RealEstate", "#Extra", "#More", "#Tags", "#Here"}

	once := OptimizeHashtags(input, limits)
	twice := OptimizeHashtags(once, limits)
	if !reflect.DeepEqual(once, twice) {
		t.Errorf("not idempotent: once=%v twice=%v", once, twice)
	}
}

func TestOptimizeHashtags_Empty(t *testing.T) {
	if got := OptimizeHashtags(nil, GetLimits("facebook")); got != nil {
		t.Errorf("OptimizeHashtags(nil) = %v, want nil", got)
	}
}

func TestOptimize_AttachesLookups(t *testing.T) {
	content := models.GeneratedContent{
		MainContent: "Rates are great this week.",
		Hashtags:    []string{"#MortgageRates"},
		Platform:    models.PlatformInstagram,
		Audience:    models.AudienceMillennials,
		ContentType: models.ContentMarketUpdate,
	}

	got := Optimize(content, models.PlatformInstagram)

	if got.CallToAction == "" {
		t.Error("CallToAction not attached")
	}
	if len(got.EngagementTips) == 0 {
		t.Error("EngagementTips not attached")
	}
	if len(got.VisualSuggestions) == 0 {
		t.Error("VisualSuggestions not attached")
	}
	if len(got.PostingTimes["weekdays"]) == 0 {
		t.Error("PostingTimes missing weekday windows")
	}
	if !strings.Contains(got.Content, "#MortgageRates") {
		t.Errorf("rendered content missing hashtag block: %q", got.Content)
	}
	if got.CharacterCount != len(got.Content) {
		t.Errorf("CharacterCount = %d, want %d", got.CharacterCount, len(got.Content))
	}
}

func TestValidate(t *testing.T) {
	over := models.GeneratedContent{
		MainContent: strings.Repeat("x", 2500),
		Hashtags:    make([]string, 35),
	}
	result := Validate(over, models.PlatformInstagram)
	if result.IsValid {
		t.Error("content over hard limits should be invalid")
	}
	if len(result.Errors) != 2 {
		t.Errorf("errors = %v, want character and hashtag errors", result.Errors)
	}

	warn := models.GeneratedContent{
		MainContent: strings.Repeat("x", 400),
		Hashtags:    make([]string, 20),
	}
	result = Validate(warn, models.PlatformInstagram)
	if !result.IsValid {
		t.Error("content within hard limits should be valid")
	}
	if len(result.Warnings) != 2 {
		t.Errorf("warnings = %v, want length and hashtag warnings", result.Warnings)
	}
}
