package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/theleywin/talentnest/src/controllers"
)

// ConnectionRoutes sets up connection-related routes for sending, accepting, rejecting requests, listing requests, getting connections, removing connections, and checking connection status
func ConnectionRoutes(app *fiber.App, ctl *controllers.ConnectionController, protect fiber.Handler) {
	connection := app.Group("/api/v1/connections", protect)

	connection.Post("/request/:userId", ctl.SendConnectionRequest)
	connection.Put("/accept/:requestId", ctl.AcceptConnectionRequest)
	connection.Put("/reject/:requestId", ctl.RejectConnectionRequest)
	connection.Get("/requests", ctl.GetConnectionRequests)
	connection.Get("/", ctl.GetUserConnections)
	connection.Delete("/:userId", ctl.RemoveConnection)
	connection.Get("/status/:userId", ctl.GetConnectionStatus)
}
