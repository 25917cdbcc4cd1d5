package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/theleywin/talentnest/src/controllers"
)

func HealthRoutes(app *fiber.App, ctl *controllers.HealthController) {
	app.Get("/healthz", ctl.Healthz)
}
