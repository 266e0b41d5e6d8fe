package httpapi

import (
	"github.com/gofiber/fiber/v2"

	"github.com/pwstools/pws-forward/internal/station"
)

// RegisterRoutes wires the HTTP handlers into the Fiber app.
func RegisterRoutes(app *fiber.App, tracker *station.Tracker) {
	app.Get("/metrics", func(c *fiber.Ctx) error {
		c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
		return c.SendString(tracker.Current().Snapshot())
	})
}
