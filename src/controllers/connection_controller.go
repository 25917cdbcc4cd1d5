package controllers

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/theleywin/talentnest/src/apperr"
	"github.com/theleywin/talentnest/src/lib"
	"github.com/theleywin/talentnest/src/middleware"
	"github.com/theleywin/talentnest/src/models"
	"github.com/theleywin/talentnest/src/services/connections"
)

type connectionService interface {
	Create(ctx context.Context, senderID, recipientID primitive.ObjectID) (primitive.ObjectID, error)
	Accept(ctx context.Context, requestID, actingUserID primitive.ObjectID) error
	Reject(ctx context.Context, requestID, actingUserID primitive.ObjectID) error
	Remove(ctx context.Context, userA, userB primitive.ObjectID) error
	Status(ctx context.Context, userA, userB primitive.ObjectID) (connections.Result, error)
	ListRequests(ctx context.Context, userID primitive.ObjectID) ([]models.ConnectionRequestDto, error)
	ListConnections(ctx context.Context, userID primitive.ObjectID) ([]models.ConnectedUserDto, error)
}

type ConnectionController struct {
	connections connectionService
}

func NewConnectionController(svc connectionService) *ConnectionController {
	return &ConnectionController{connections: svc}
}

// SendConnectionRequest sends a connection request from the authenticated user to another user
func (ctl *ConnectionController) SendConnectionRequest(c *fiber.Ctx) error {
	targetUserID, err := objectIDParam(c, "userId", "Invalid user ID format")
	if err != nil {
		return err
	}
	user := middleware.CurrentUser(c)

	requestID, err := ctl.connections.Create(c.UserContext(), user.Id, targetUserID)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":   "Connection request sent successfully",
		"requestId": requestID,
	})
}

// AcceptConnectionRequest accepts a pending connection request and connects both users
func (ctl *ConnectionController) AcceptConnectionRequest(c *fiber.Ctx) error {
	requestID, err := objectIDParam(c, "requestId", "Invalid request ID format")
	if err != nil {
		return err
	}
	user := middleware.CurrentUser(c)

	if err := ctl.connections.Accept(c.UserContext(), requestID, user.Id); err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(lib.MessageResponse("Connection accepted successfully"))
}

// RejectConnectionRequest rejects a pending connection request
func (ctl *ConnectionController) RejectConnectionRequest(c *fiber.Ctx) error {
	requestID, err := objectIDParam(c, "requestId", "Invalid request ID format")
	if err != nil {
		return err
	}
	user := middleware.CurrentUser(c)

	if err := ctl.connections.Reject(c.UserContext(), requestID, user.Id); err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(lib.MessageResponse("Connection request rejected"))
}

// GetConnectionRequests returns all pending connection requests for the authenticated user
func (ctl *ConnectionController) GetConnectionRequests(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	requests, err := ctl.connections.ListRequests(c.UserContext(), user.Id)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(requests)
}

// GetUserConnections returns all users connected to the authenticated user
func (ctl *ConnectionController) GetUserConnections(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	conns, err := ctl.connections.ListConnections(c.UserContext(), user.Id)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(conns)
}

// RemoveConnection removes a connection between the authenticated user and another user.
// Removing a connection that does not exist, including one to yourself, succeeds.
func (ctl *ConnectionController) RemoveConnection(c *fiber.Ctx) error {
	targetUserID, err := objectIDParam(c, "userId", "Invalid user ID format")
	if err != nil {
		return err
	}
	user := middleware.CurrentUser(c)

	if err := ctl.connections.Remove(c.UserContext(), user.Id, targetUserID); err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(lib.MessageResponse("Connection removed successfully"))
}

// GetConnectionStatus returns the connection status between the authenticated user and another user
func (ctl *ConnectionController) GetConnectionStatus(c *fiber.Ctx) error {
	targetUserID, err := objectIDParam(c, "userId", "Invalid user ID format")
	if err != nil {
		return err
	}
	user := middleware.CurrentUser(c)

	if user.Id == targetUserID {
		return apperr.InvalidArg("Cannot check connection status with yourself")
	}

	result, err := ctl.connections.Status(c.UserContext(), user.Id, targetUserID)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(result)
}
