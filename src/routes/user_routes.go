package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/theleywin/talentnest/src/controllers"
)

// UserRoutes sets up suggestion, public profile and profile update routes
func UserRoutes(app *fiber.App, ctl *controllers.UserController, protect fiber.Handler) {
	user := app.Group("/api/v1/users", protect)

	user.Get("/suggestions", ctl.GetSuggestedConnections)
	user.Get("/:username", ctl.GetPublicProfile)
	user.Put("/profile", ctl.UpdateProfile)
}
