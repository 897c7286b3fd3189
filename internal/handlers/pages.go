package handlers

import (
	"github.com/gofiber/fiber/v3"

	"socialagent/internal/audiences"
	"socialagent/internal/config"
	"socialagent/internal/rates"
	"socialagent/internal/store"
)

// PageHandler renders the HTML pages.
type PageHandler struct {
	fetcher *rates.Fetcher
	cfg     *config.Config
	store   *store.Store
}

// NewPageHandler creates a new page handler.
func NewPageHandler(fetcher *rates.Fetcher, cfg *config.Config, contentStore *store.Store) *PageHandler {
	return &PageHandler{fetcher: fetcher, cfg: cfg, store: contentStore}
}

// Index renders the dashboard with the current rate snapshot and analysis.
func (h *PageHandler) Index(c fiber.Ctx) error {
	snapshot := h.fetcher.Fetch(c.Context())

	return c.Render("index", fiber.Map{
		"Title":        "Dashboard",
		"Rates":        snapshot,
		"Analysis":     rates.MarketContext(snapshot),
		"YearOverYear": rates.YearOverYear(snapshot),
	})
}

// Generate renders the content generation form.
func (h *PageHandler) Generate(c fiber.Ctx) error {
	return c.Render("generate", fiber.Map{
		"Title":       "Generate Content",
		"Audiences":   audiences.List(),
		"LoanOfficer": h.cfg.DefaultLoanOfficer,
		"Company":     h.cfg.DefaultCompany,
		"APIKeySet":   h.cfg.APIKeySet(),
	})
}

// Audiences renders the audience targeting guide.
func (h *PageHandler) Audiences(c fiber.Ctx) error {
	return c.Render("audiences", fiber.Map{
		"Title":     "Audiences",
		"Audiences": audiences.List(),
		"Profiles":  audiences.All(),
	})
}

// Analytics renders recently saved content.
func (h *PageHandler) Analytics(c fiber.Ctx) error {
	recent, err := h.store.Recent(20)
	if err != nil {
		recent = nil
	}

	return c.Render("analytics", fiber.Map{
		"Title":         "Analytics",
		"RecentContent": recent,
	})
}

// Settings renders the settings form.
func (h *PageHandler) Settings(c fiber.Ctx) error {
	return c.Render("settings", fiber.Map{
		"Title":       "Settings",
		"LoanOfficer": h.cfg.DefaultLoanOfficer,
		"Company":     h.cfg.DefaultCompany,
		"APIKeySet":   h.cfg.APIKeySet(),
	})
}

// Help renders the help and documentation page.
func (h *PageHandler) Help(c fiber.Ctx) error {
	return c.Render("help", fiber.Map{
		"Title": "Help",
	})
}
