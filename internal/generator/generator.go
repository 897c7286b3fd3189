package generator

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"socialagent/internal/audiences"
	"socialagent/internal/config"
	"socialagent/internal/metrics"
	"socialagent/internal/models"
	"socialagent/internal/platforms"
)

// Request describes one content generation call. Empty fields fall back to the
// configured defaults.
type Request struct {
	Platform    string
	Audience    string
	ContentType string
	LoanOfficer string
	Company     string
	CustomFocus string
}

// Generator turns a rate snapshot plus a request into platform-optimized
// content. LLM failures degrade to template content rather than erroring.
type Generator struct {
	llm LLMClient
	cfg *config.Config
	now func() time.Time
}

// New builds a Generator backed by the configured LLM endpoint. Returns
// ErrMissingAPIKey when no credential is set.
func New(cfg *config.Config) (*Generator, error) {
	client, err := NewOpenAIClient(cfg)
	if err != nil {
		return nil, err
	}
	return NewWithClient(client, cfg), nil
}

// NewWithClient builds a Generator around an existing LLM client.
func NewWithClient(llm LLMClient, cfg *config.Config) *Generator {
	return &Generator{llm: llm, cfg: cfg, now: time.Now}
}

// Generate produces one post: targeting insights feed the prompt, the LLM
// reply is parsed and platform-optimized, and any LLM error falls back to a
// template post carrying the same rate data.
func (g *Generator) Generate(ctx context.Context, rate models.RateSnapshot, req Request) models.GeneratedContent {
	req = g.normalize(req)

	insights := audiences.TargetingInsights(req.Audience, req.ContentType, req.Platform)
	prompt := BuildPrompt(rate, req.Platform, req.Audience, req.ContentType,
		insights, req.LoanOfficer, req.Company, req.CustomFocus)

	raw, err := g.llm.Complete(ctx, prompt)
	if err == nil && strings.TrimSpace(raw) == "" {
		err = errors.New("generator: empty llm reply")
	}
	if err != nil {
		slog.Warn("llm generation failed, using fallback template",
			"error", err, "platform", req.Platform, "audience", req.Audience)
		metrics.RecordGeneration(req.Platform, req.Audience, "fallback")
		return g.finish(Fallback(rate, req.Platform, req.Audience, req.ContentType, req.LoanOfficer, req.Company), rate)
	}

	parsed := ParseResponse(raw)
	content := models.GeneratedContent{
		MainContent:        parsed.MainContent,
		Hashtags:           parsed.Hashtags,
		VisualConcept:      parsed.VisualConcept,
		EngagementStrategy: parsed.EngagementStrategy,
		Platform:           req.Platform,
		Audience:           req.Audience,
		ContentType:        req.ContentType,
		AIGenerated:        true,
	}
	if len(content.Hashtags) == 0 {
		content.Hashtags = DefaultHashtags(req.Audience, req.Platform)
	}

	content = platforms.Optimize(content, req.Platform)
	metrics.RecordGeneration(req.Platform, req.Audience, "ai")
	return g.finish(content, rate)
}

// variationTypes is the round-robin order used for A/B variations.
var variationTypes = []string{
	models.ContentEducational,
	models.ContentMarketUpdate,
	models.ContentPromotional,
}

// Variations generates count posts cycling through the variation content
// types, numbering them from 1.
func (g *Generator) Variations(ctx context.Context, rate models.RateSnapshot, req Request, count int) []models.GeneratedContent {
	out := make([]models.GeneratedContent, 0, count)
	for i := 0; i < count; i++ {
		r := req
		r.ContentType = variationTypes[i%len(variationTypes)]

		v := g.Generate(ctx, rate, r)
		v.VariationID = i + 1
		v.VariationType = r.ContentType
		out = append(out, v)
	}
	return out
}

func (g *Generator) normalize(req Request) Request {
	req.Platform = models.NormalizePlatform(req.Platform)
	if !models.ValidPlatform(req.Platform) {
		req.Platform = models.NormalizePlatform(g.cfg.DefaultPlatform)
	}
	req.Audience = models.NormalizeAudience(req.Audience)
	if !models.ValidAudience(req.Audience) {
		req.Audience = models.NormalizeAudience(g.cfg.DefaultAudience)
	}
	req.ContentType = models.NormalizeContentType(req.ContentType)
	if !models.ValidContentType(req.ContentType) {
		req.ContentType = models.DefaultContentType
	}
	if req.LoanOfficer == "" {
		req.LoanOfficer = g.cfg.DefaultLoanOfficer
	}
	if req.Company == "" {
		req.Company = g.cfg.DefaultCompany
	}
	return req
}

func (g *Generator) finish(content models.GeneratedContent, rate models.RateSnapshot) models.GeneratedContent {
	content.ID = uuid.New()
	content.RateData = rate
	content.GeneratedAt = g.now()
	return content
}
