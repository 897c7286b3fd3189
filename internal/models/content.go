package models

import (
	"time"

	"github.com/google/uuid"
)

// GeneratedContent is one platform-optimized social media post with its
// generation metadata. Created per request; persisted only when the caller
// opts in.
type GeneratedContent struct {
	ID          uuid.UUID `json:"id"`
	Content     string    `json:"content"`
	MainContent string    `json:"main_content"`
	Hashtags    []string  `json:"hashtags"`

	VisualConcept      string              `json:"visual_concept,omitempty"`
	EngagementStrategy string              `json:"engagement_strategy,omitempty"`
	CallToAction       string              `json:"cta,omitempty"`
	EngagementTips     []string            `json:"engagement_tips,omitempty"`
	VisualSuggestions  map[string]string   `json:"visual_suggestions,omitempty"`
	PostingTimes       map[string][]string `json:"best_posting_times,omitempty"`

	Platform       string       `json:"platform"`
	Audience       string       `json:"audience"`
	ContentType    string       `json:"content_type"`
	CharacterCount int          `json:"character_count"`
	RateData       RateSnapshot `json:"rate_data"`

	AIGenerated  bool      `json:"ai_generated"`
	FallbackUsed bool      `json:"fallback_used,omitempty"`
	GeneratedAt  time.Time `json:"generated_at"`

	VariationID   int    `json:"variation_id,omitempty"`
	VariationType string `json:"variation_type,omitempty"`
}
