package api

import (
	"github.com/gofiber/fiber/v3"
)

// jsonOK returns a 200 response with the fields merged into the standard
// success envelope.
func jsonOK(c fiber.Ctx, fields fiber.Map) error {
	payload := fiber.Map{"success": true}
	for k, v := range fields {
		payload[k] = v
	}
	return c.JSON(payload)
}

// jsonFail returns an error response with the given HTTP status code.
func jsonFail(c fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"success": false,
		"error":   message,
	})
}
