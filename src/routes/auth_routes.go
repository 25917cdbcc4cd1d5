package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/theleywin/talentnest/src/controllers"
)

// AuthRoutes sets up signup, login, logout and current-user routes
func AuthRoutes(app *fiber.App, ctl *controllers.AuthController, protect fiber.Handler) {
	auth := app.Group("/api/v1/auth")

	auth.Post("/signup", ctl.Signup)
	auth.Post("/login", ctl.Login)
	auth.Post("/logout", ctl.Logout)
	auth.Get("/me", protect, ctl.GetCurrentUser)
}
