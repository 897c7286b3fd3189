package api

import (
	"github.com/gofiber/fiber/v3"

	"socialagent/internal/audiences"
)

// AudiencesHandler serves the audience catalog via JSON API.
type AudiencesHandler struct{}

// NewAudiencesHandler creates a new API audiences handler.
func NewAudiencesHandler() *AudiencesHandler {
	return &AudiencesHandler{}
}

// List returns the full audience catalog keyed by audience.
func (h *AudiencesHandler) List(c fiber.Ctx) error {
	return jsonOK(c, fiber.Map{"audiences": audiences.All()})
}
