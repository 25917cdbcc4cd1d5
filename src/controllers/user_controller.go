package controllers

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/theleywin/talentnest/src/middleware"
	"github.com/theleywin/talentnest/src/models"
	"github.com/theleywin/talentnest/src/services/accounts"
)

type profileService interface {
	Suggestions(ctx context.Context, user *models.User) ([]models.UserDto, error)
	PublicProfile(ctx context.Context, username string) (*models.User, error)
	UpdateProfile(ctx context.Context, userID primitive.ObjectID, in accounts.ProfileUpdate) (*models.User, error)
}

type UserController struct {
	accounts profileService
}

func NewUserController(svc profileService) *UserController {
	return &UserController{accounts: svc}
}

// GetSuggestedConnections returns a few users the authenticated user is not connected to
func (ctl *UserController) GetSuggestedConnections(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	suggested, err := ctl.accounts.Suggestions(c.UserContext(), &user)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(suggested)
}

// GetPublicProfile returns the profile of the user with the given username
func (ctl *UserController) GetPublicProfile(c *fiber.Ctx) error {
	user, err := ctl.accounts.PublicProfile(c.UserContext(), c.Params("username"))
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(user)
}

// UpdateProfile updates the allowed profile fields of the authenticated user
func (ctl *UserController) UpdateProfile(c *fiber.Ctx) error {
	var in accounts.ProfileUpdate
	if err := parseBody(c, &in); err != nil {
		return err
	}
	user := middleware.CurrentUser(c)

	updated, err := ctl.accounts.UpdateProfile(c.UserContext(), user.Id, in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(updated)
}
