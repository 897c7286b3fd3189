package api

import (
	"github.com/gofiber/fiber/v3"

	"socialagent/internal/rates"
)

// RatesHandler serves the current rate snapshot via JSON API.
type RatesHandler struct {
	fetcher *rates.Fetcher
}

// NewRatesHandler creates a new API rates handler.
func NewRatesHandler(fetcher *rates.Fetcher) *RatesHandler {
	return &RatesHandler{fetcher: fetcher}
}

// Get returns the current rate snapshot with a prose market analysis.
func (h *RatesHandler) Get(c fiber.Ctx) error {
	snapshot := h.fetcher.Fetch(c.Context())

	return jsonOK(c, fiber.Map{
		"rates":    snapshot,
		"analysis": rates.MarketContext(snapshot),
	})
}
