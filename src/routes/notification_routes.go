package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/theleywin/talentnest/src/controllers"
)

// NotificationRoutes sets up notification listing, read and delete routes
func NotificationRoutes(app *fiber.App, ctl *controllers.NotificationController, protect fiber.Handler) {
	notification := app.Group("/api/v1/notifications", protect)

	notification.Get("/", ctl.GetUserNotifications)
	notification.Put("/:id/read", ctl.MarkNotificationAsRead)
	notification.Delete("/:id", ctl.DeleteNotification)
}
