package controllers

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/theleywin/talentnest/src/lib"
	"github.com/theleywin/talentnest/src/middleware"
	"github.com/theleywin/talentnest/src/models"
)

type notificationService interface {
	List(ctx context.Context, userID primitive.ObjectID) ([]models.NotificationDto, error)
	MarkRead(ctx context.Context, id, userID primitive.ObjectID) (*models.Notification, error)
	Delete(ctx context.Context, id, userID primitive.ObjectID) error
}

type NotificationController struct {
	notifications notificationService
}

func NewNotificationController(svc notificationService) *NotificationController {
	return &NotificationController{notifications: svc}
}

// GetUserNotifications returns the authenticated user's notifications, newest first
func (ctl *NotificationController) GetUserNotifications(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	list, err := ctl.notifications.List(c.UserContext(), user.Id)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(list)
}

// MarkNotificationAsRead marks one of the authenticated user's notifications as read
func (ctl *NotificationController) MarkNotificationAsRead(c *fiber.Ctx) error {
	id, err := objectIDParam(c, "id", "Invalid notification ID format")
	if err != nil {
		return err
	}
	user := middleware.CurrentUser(c)

	n, err := ctl.notifications.MarkRead(c.UserContext(), id, user.Id)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(n)
}

// DeleteNotification deletes one of the authenticated user's notifications
func (ctl *NotificationController) DeleteNotification(c *fiber.Ctx) error {
	id, err := objectIDParam(c, "id", "Invalid notification ID format")
	if err != nil {
		return err
	}
	user := middleware.CurrentUser(c)

	if err := ctl.notifications.Delete(c.UserContext(), id, user.Id); err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(lib.MessageResponse("Notification deleted successfully"))
}
