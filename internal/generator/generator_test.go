package generator

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"socialagent/internal/config"
	"socialagent/internal/models"
)

func testConfig() *config.Config {
	return &config.Config{
		DefaultPlatform: models.PlatformFacebook,
		DefaultAudience: models.AudienceMillennials,
		Model:           "test-model",
	}
}

func testRate() models.RateSnapshot {
	return models.RateSnapshot{
		CurrentRate:  6.88,
		PreviousRate: 6.93,
		RateChange:   -0.05,
		Date:         "2025-06-02",
		Source:       "Freddie Mac PMMS",
		Confidence:   models.ConfidenceHigh,
	}
}

func newTestGenerator(llm LLMClient) *Generator {
	g := NewWithClient(llm, testConfig())
	g.now = func() time.Time { return time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC) }
	return g
}

func TestGenerate_AIPath(t *testing.T) {
	mock := &MockLLM{Response: `MAIN_CONTENT:
Rates dipped to 6.88% this week, a window worth watching for first-time buyers.

HASHTAGS:
#MortgageRates #FirstTimeBuyer

VISUAL_CONCEPT:
Rate trend chart.

ENGAGEMENT_STRATEGY:
Prompt questions in comments.`}

	g := newTestGenerator(mock)
	got := g.Generate(context.Background(), testRate(), Request{
		Platform: "instagram", Audience: "millennials", ContentType: "market_update",
	})

	if !got.AIGenerated || got.FallbackUsed {
		t.Errorf("flags = ai:%v fallback:%v, want ai-generated", got.AIGenerated, got.FallbackUsed)
	}
	if !strings.Contains(got.MainContent, "6.88%") {
		t.Errorf("MainContent missing rate: %q", got.MainContent)
	}
	if len(got.Hashtags) == 0 {
		t.Error("no hashtags attached")
	}
	if got.CharacterCount != len(got.Content) {
		t.Errorf("CharacterCount = %d, want %d", got.CharacterCount, len(got.Content))
	}
	if got.RateData.CurrentRate != 6.88 {
		t.Errorf("RateData not carried: %+v", got.RateData)
	}
	if got.CallToAction == "" {
		t.Error("CallToAction not attached by optimizer")
	}
	if got.ID == uuid.Nil {
		t.Error("ID not assigned")
	}
	if len(mock.Prompts) != 1 {
		t.Fatalf("llm called %d times, want 1", len(mock.Prompts))
	}
}

func TestGenerate_FallbackOnLLMError(t *testing.T) {
	mock := &MockLLM{Err: errors.New("boom")}

	g := newTestGenerator(mock)
	got := g.Generate(context.Background(), testRate(), Request{
		Platform: "facebook", Audience: "gen_x", ContentType: "educational",
	})

	if got.AIGenerated || !got.FallbackUsed {
		t.Errorf("flags = ai:%v fallback:%v, want fallback", got.AIGenerated, got.FallbackUsed)
	}
	if !strings.Contains(got.Content, "6.88%") {
		t.Errorf("fallback content missing rate: %q", got.Content)
	}
	if !strings.Contains(got.Content, "#MortgageRates") {
		t.Errorf("fallback content missing default hashtags: %q", got.Content)
	}
	if got.Audience != models.AudienceGenX {
		t.Errorf("Audience = %q", got.Audience)
	}
}

func TestGenerate_FallbackOnEmptyReply(t *testing.T) {
	tests := []struct {
		name     string
		response string
	}{
		{"empty", ""},
		{"whitespace only", "  \n\t\n  "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGenerator(&MockLLM{Response: tt.response})
			got := g.Generate(context.Background(), testRate(), Request{
				Platform: "facebook", Audience: "millennials", ContentType: "market_update",
			})

			if got.AIGenerated || !got.FallbackUsed {
				t.Errorf("flags = ai:%v fallback:%v, want fallback", got.AIGenerated, got.FallbackUsed)
			}
			if strings.TrimSpace(got.MainContent) == "" {
				t.Error("fallback produced empty main content")
			}
			if !strings.Contains(got.Content, "6.88%") {
				t.Errorf("fallback content missing rate: %q", got.Content)
			}
		})
	}
}

func TestGenerate_NoHashtagsGetsDefaults(t *testing.T) {
	mock := &MockLLM{Response: "MAIN_CONTENT:\nShort post about rates at 6.88%."}

	g := newTestGenerator(mock)
	got := g.Generate(context.Background(), testRate(), Request{
		Platform: "linkedin", Audience: "baby_boomers",
	})

	if len(got.Hashtags) == 0 {
		t.Fatal("expected default hashtags when the reply has none")
	}
	if got.Hashtags[0] != "#MortgageRates" {
		t.Errorf("Hashtags = %v, want defaults first", got.Hashtags)
	}
}

func TestGenerate_NormalizesUnknownKeys(t *testing.T) {
	mock := &MockLLM{Response: "MAIN_CONTENT:\nBody."}

	g := newTestGenerator(mock)
	got := g.Generate(context.Background(), testRate(), Request{
		Platform: "TikTok", Audience: "teens", ContentType: "poetry",
	})

	if got.Platform != models.PlatformFacebook {
		t.Errorf("Platform = %q, want configured default", got.Platform)
	}
	if got.Audience != models.AudienceMillennials {
		t.Errorf("Audience = %q, want configured default", got.Audience)
	}
	if got.ContentType != models.DefaultContentType {
		t.Errorf("ContentType = %q, want default", got.ContentType)
	}
}

func TestVariations_RoundRobinTypes(t *testing.T) {
	mock := &MockLLM{Response: "MAIN_CONTENT:\nBody."}

	g := newTestGenerator(mock)
	got := g.Variations(context.Background(), testRate(), Request{
		Platform: "instagram", Audience: "millennials",
	}, 4)

	if len(got) != 4 {
		t.Fatalf("len = %d, want 4", len(got))
	}
	wantTypes := []string{
		models.ContentEducational,
		models.ContentMarketUpdate,
		models.ContentPromotional,
		models.ContentEducational,
	}
	for i, v := range got {
		if v.VariationID != i+1 {
			t.Errorf("variation %d: VariationID = %d", i, v.VariationID)
		}
		if v.VariationType != wantTypes[i] {
			t.Errorf("variation %d: VariationType = %q, want %q", i, v.VariationType, wantTypes[i])
		}
		if v.ContentType != wantTypes[i] {
			t.Errorf("variation %d: ContentType = %q, want %q", i, v.ContentType, wantTypes[i])
		}
	}
}

func TestBuildPrompt_Structure(t *testing.T) {
	mock := &MockLLM{Response: "MAIN_CONTENT:\nBody."}
	g := newTestGenerator(mock)

	g.Generate(context.Background(), testRate(), Request{
		Platform: "instagram", Audience: "millennials", ContentType: "market_update",
		LoanOfficer: "Sam Doe", Company: "Acme Lending", CustomFocus: "spring buying season",
	})

	prompt := mock.Prompts[0]
	for _, want := range []string{
		"MAIN_CONTENT:", "HASHTAGS:", "VISUAL_CONCEPT:", "ENGAGEMENT_STRATEGY:",
		"6.88%", "-0.05%", "INSTAGRAM",
		"Loan Officer: Sam Doe", "Company: Acme Lending",
		"CUSTOM FOCUS: spring buying season",
		"Content Type: Market Update",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestBuildPrompt_StableChangeAndNoBranding(t *testing.T) {
	rate := testRate()
	rate.RateChange = 0

	mock := &MockLLM{Response: "MAIN_CONTENT:\nBody."}
	g := newTestGenerator(mock)
	g.Generate(context.Background(), rate, Request{Platform: "facebook", Audience: "gen_z"})

	prompt := mock.Prompts[0]
	if !strings.Contains(prompt, "(remained stable)") {
		t.Error("prompt missing stable change description")
	}
	if strings.Contains(prompt, "PERSONAL BRANDING") {
		t.Error("prompt has branding block without loan officer or company")
	}
	if !strings.Contains(prompt, "Standard mortgage rate content") {
		t.Error("prompt missing default custom focus")
	}
}

func TestFallback_SignatureAndAudienceTemplates(t *testing.T) {
	got := Fallback(testRate(), "facebook", "baby_boomers", "educational", "Sam Doe", "Acme Lending")

	if !strings.Contains(got.MainContent, "- Sam Doe, Acme Lending") {
		t.Errorf("signature missing: %q", got.MainContent)
	}
	if !strings.Contains(got.MainContent, "6.88%") {
		t.Errorf("rate missing: %q", got.MainContent)
	}
	if got.CharacterCount != len(got.Content) {
		t.Errorf("CharacterCount = %d, want %d", got.CharacterCount, len(got.Content))
	}

	unknown := Fallback(testRate(), "facebook", "martians", "educational", "", "")
	if unknown.MainContent == "" || !strings.Contains(unknown.MainContent, "6.88%") {
		t.Errorf("unknown audience should use default template: %q", unknown.MainContent)
	}
}

func TestDefaultHashtags_TruncatedToPlatformOptimal(t *testing.T) {
	got := DefaultHashtags("gen_z", "facebook")
	if len(got) != 5 {
		t.Errorf("len = %d, want facebook optimal 5", len(got))
	}
	if got[0] != "#MortgageRates" {
		t.Errorf("first tag = %q", got[0])
	}
}
