package api

import (
	"encoding/json"

	"github.com/gofiber/fiber/v3"

	"socialagent/internal/config"
)

// SettingsHandler updates the settings file via JSON API.
type SettingsHandler struct {
	cfg *config.Config
}

// NewSettingsHandler creates a new API settings handler.
func NewSettingsHandler(cfg *config.Config) *SettingsHandler {
	return &SettingsHandler{cfg: cfg}
}

// Update rewrites the settings file with the submitted values and refreshes
// the in-memory config.
func (h *SettingsHandler) Update(c fiber.Ctx) error {
	var body config.Settings
	if err := json.Unmarshal(c.Body(), &body); err != nil {
		return jsonFail(c, fiber.StatusBadRequest, "invalid request body")
	}

	if err := h.cfg.WriteSettings(body); err != nil {
		return jsonFail(c, fiber.StatusInternalServerError, "failed to update settings")
	}

	return jsonOK(c, nil)
}
