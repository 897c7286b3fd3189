package platforms

import (
	"strings"
	"unicode/utf8"

	"socialagent/internal/audiences"
	"socialagent/internal/models"
)

// Soft-truncation thresholds. Kept as named constants; the ratios themselves
// are inherited product tuning with no deeper rationale.
const (
	softTriggerRatio = 1.2
	softBudgetRatio  = 1.1
)

// priorityHashtags are kept ahead of all others, in this order.
var priorityHashtags = []string{
	"#MortgageRates", "#HomeLoans", "#RealEstate", "#Refinancing",
	"#FirstTimeBuyer", "#Homeownership", "#MortgageExpert", "#HomeBuying",
}

// Optimize applies the platform's length and hashtag policies to the content
// and attaches the platform/audience lookups (CTA, tips, visuals, posting
// times). The input is not mutated.
func Optimize(content models.GeneratedContent, platform string) models.GeneratedContent {
	platform = models.NormalizePlatform(platform)
	limits := GetLimits(platform)

	content.MainContent = OptimizeText(content.MainContent, limits)
	content.Hashtags = OptimizeHashtags(content.Hashtags, limits)
	content.Content = render(content.MainContent, content.Hashtags)
	content.CharacterCount = len(content.Content)

	content.CallToAction = audiences.TargetingInsights(content.Audience, content.ContentType, platform).CallToAction
	content.EngagementTips = EngagementTips(platform)
	content.VisualSuggestions = VisualSuggestions(platform)
	content.PostingTimes = PostingTimes(platform, content.Audience)

	return content
}

// OptimizeText applies the two length policies: a hard truncation at the
// character ceiling, and a soft sentence re-assembly when the text runs more
// than 20% past the optimal target.
func OptimizeText(text string, limits Limits) string {
	if len(text) <= limits.OptimalLength {
		return text
	}

	if len(text) > limits.CharacterLimit {
		cut := limits.CharacterLimit - 3
		for cut > 0 && !utf8.RuneStart(text[cut]) {
			cut--
		}
		return text[:cut] + "..."
	}

	if float64(len(text)) > float64(limits.OptimalLength)*softTriggerRatio {
		budget := int(float64(limits.OptimalLength) * softBudgetRatio)
		var b strings.Builder
		for _, sentence := range strings.Split(text, ". ") {
			if b.Len()+len(sentence)+2 > budget {
				break
			}
			b.WriteString(sentence)
			b.WriteString(". ")
		}
		return strings.TrimSpace(b.String())
	}

	return text
}

// OptimizeHashtags de-duplicates case-insensitively preserving first-seen
// order, moves priority hashtags to the front in priority order, and
// truncates to min(optimal, limit). Idempotent.
func OptimizeHashtags(hashtags []string, limits Limits) []string {
	if len(hashtags) == 0 {
		return nil
	}

	seen := make(map[string]bool, len(hashtags))
	unique := make([]string, 0, len(hashtags))
	for _, tag := range hashtags {
		key := strings.ToLower(tag)
		if seen[key] {
			continue
		}
		seen[key] = true
		unique = append(unique, tag)
	}

	rank := make(map[string]int, len(priorityHashtags))
	for i, tag := range priorityHashtags {
		rank[tag] = i
	}

	prioritized := make([]string, 0, len(unique))
	remaining := make([]string, 0, len(unique))
	for _, tag := range unique {
		if _, ok := rank[tag]; ok {
			prioritized = append(prioritized, tag)
		} else {
			remaining = append(remaining, tag)
		}
	}

	// Insertion sort keeps the priority subset ordered by the priority list;
	// the non-priority tail keeps its original relative order.
	for i := 1; i < len(prioritized); i++ {
		for j := i; j > 0 && rank[prioritized[j]] < rank[prioritized[j-1]]; j-- {
			prioritized[j], prioritized[j-1] = prioritized[j-1], prioritized[j]
		}
	}

	final := append(prioritized, remaining...)
	max := limits.OptimalHashtags
	if limits.HashtagLimit < max {
		max = limits.HashtagLimit
	}
	if len(final) > max {
		final = final[:max]
	}
	return final
}

// render formats the post body with the hashtag block appended.
func render(mainContent string, hashtags []string) string {
	if len(hashtags) == 0 {
		return mainContent
	}
	return mainContent + "\n\n" + strings.Join(hashtags, " ")
}
