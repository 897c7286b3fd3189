package api

import (
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v3"

	"socialagent/internal/config"
	"socialagent/internal/generator"
	"socialagent/internal/rates"
	"socialagent/internal/store"
)

// GenerateHandler handles content generation via JSON API.
type GenerateHandler struct {
	fetcher *rates.Fetcher
	cfg     *config.Config
	store   *store.Store
}

// NewGenerateHandler creates a new API generation handler.
func NewGenerateHandler(fetcher *rates.Fetcher, cfg *config.Config, contentStore *store.Store) *GenerateHandler {
	return &GenerateHandler{fetcher: fetcher, cfg: cfg, store: contentStore}
}

type generateBody struct {
	Platform    string `json:"platform"`
	Audience    string `json:"audience"`
	ContentType string `json:"content_type"`
	LoanOfficer string `json:"loan_officer"`
	Company     string `json:"company"`
	CustomFocus string `json:"custom_focus"`
	APIKey      string `json:"api_key"`
	SaveOutput  bool   `json:"save_output"`
	Count       int    `json:"count"`
}

// Generate produces one post for the requested platform, audience, and
// content type.
func (h *GenerateHandler) Generate(c fiber.Ctx) error {
	var body generateBody
	if err := json.Unmarshal(c.Body(), &body); err != nil {
		return jsonFail(c, fiber.StatusBadRequest, "invalid request body")
	}

	for _, field := range []struct{ name, value string }{
		{"platform", body.Platform},
		{"audience", body.Audience},
		{"content_type", body.ContentType},
	} {
		if field.value == "" {
			return jsonFail(c, fiber.StatusBadRequest, "missing required field: "+field.name)
		}
	}

	gen, err := h.newGenerator(body.APIKey)
	if err != nil {
		if errors.Is(err, generator.ErrMissingAPIKey) {
			return jsonFail(c, fiber.StatusBadRequest, "failed to initialize AI generator, check your API key")
		}
		return jsonFail(c, fiber.StatusInternalServerError, "failed to initialize AI generator")
	}

	snapshot := h.fetcher.Fetch(c.Context())
	content := gen.Generate(c.Context(), snapshot, generator.Request{
		Platform:    body.Platform,
		Audience:    body.Audience,
		ContentType: body.ContentType,
		LoanOfficer: body.LoanOfficer,
		Company:     body.Company,
		CustomFocus: body.CustomFocus,
	})

	if body.SaveOutput || h.cfg.SaveGeneratedContent {
		if _, err := h.store.Save(content); err != nil {
			slog.Warn("failed to save generated content", "error", err)
		}
	}

	return jsonOK(c, fiber.Map{"content": content})
}

// Variations produces multiple posts cycling through content types for A/B
// testing.
func (h *GenerateHandler) Variations(c fiber.Ctx) error {
	var body generateBody
	if err := json.Unmarshal(c.Body(), &body); err != nil {
		return jsonFail(c, fiber.StatusBadRequest, "invalid request body")
	}

	for _, field := range []struct{ name, value string }{
		{"platform", body.Platform},
		{"audience", body.Audience},
	} {
		if field.value == "" {
			return jsonFail(c, fiber.StatusBadRequest, "missing required field: "+field.name)
		}
	}

	count := body.Count
	if count < 1 {
		count = 3
	}
	if count > 10 {
		count = 10
	}

	gen, err := h.newGenerator(body.APIKey)
	if err != nil {
		if errors.Is(err, generator.ErrMissingAPIKey) {
			return jsonFail(c, fiber.StatusBadRequest, "failed to initialize AI generator, check your API key")
		}
		return jsonFail(c, fiber.StatusInternalServerError, "failed to initialize AI generator")
	}

	snapshot := h.fetcher.Fetch(c.Context())
	variations := gen.Variations(c.Context(), snapshot, generator.Request{
		Platform:    body.Platform,
		Audience:    body.Audience,
		LoanOfficer: body.LoanOfficer,
		Company:     body.Company,
		CustomFocus: body.CustomFocus,
	}, count)

	return jsonOK(c, fiber.Map{"variations": variations})
}

// newGenerator builds a generator using the request's API key when provided,
// falling back to the configured one.
func (h *GenerateHandler) newGenerator(apiKey string) (*generator.Generator, error) {
	cfg := *h.cfg
	if apiKey != "" {
		cfg.APIKey = apiKey
	}
	return generator.New(&cfg)
}
