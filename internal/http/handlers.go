package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/MikuMikuMe/smart-energy-monitor/internal/advisor"
	"github.com/MikuMikuMe/smart-energy-monitor/internal/history"
)

// Register mounts the status endpoints over the shared reading history.
func Register(app *fiber.App, hist *history.History) {
	app.Get("/health", func(c *fiber.Ctx) error { return c.SendString("ok") })

	app.Get("/readings", func(c *fiber.Ctx) error {
		return c.JSON(hist.Snapshot())
	})

	app.Get("/suggestions", func(c *fiber.Ctx) error {
		suggestions := advisor.Advise(hist.Snapshot())
		if suggestions == nil {
			suggestions = []string{}
		}
		return c.JSON(suggestions)
	})
}
