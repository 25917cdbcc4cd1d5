package controllers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/theleywin/talentnest/src/lib"
	"github.com/theleywin/talentnest/src/middleware"
	"github.com/theleywin/talentnest/src/services/accounts"
)

type authService interface {
	Signup(ctx context.Context, in accounts.SignupInput) (*accounts.Session, error)
	Login(ctx context.Context, in accounts.LoginInput) (*accounts.Session, error)
}

// CookieConfig describes the session cookie.
type CookieConfig struct {
	Name   string
	TTL    time.Duration
	Secure bool
}

type AuthController struct {
	accounts authService
	cookie   CookieConfig
}

func NewAuthController(svc authService, cookie CookieConfig) *AuthController {
	return &AuthController{accounts: svc, cookie: cookie}
}

// Signup registers a user, sets the session cookie and returns the token
func (ctl *AuthController) Signup(c *fiber.Ctx) error {
	var in accounts.SignupInput
	if err := parseBody(c, &in); err != nil {
		return err
	}

	session, err := ctl.accounts.Signup(c.UserContext(), in)
	if err != nil {
		return err
	}

	ctl.setCookie(c, session.Token, time.Now().Add(ctl.cookie.TTL))
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "User registered successfully",
		"token":   session.Token,
	})
}

// Login authenticates a user by username and password and sets the session cookie
func (ctl *AuthController) Login(c *fiber.Ctx) error {
	var in accounts.LoginInput
	if err := parseBody(c, &in); err != nil {
		return err
	}

	session, err := ctl.accounts.Login(c.UserContext(), in)
	if err != nil {
		return err
	}

	ctl.setCookie(c, session.Token, time.Now().Add(ctl.cookie.TTL))
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "User logged in successfully",
		"token":   session.Token,
	})
}

// Logout clears the authentication cookie
func (ctl *AuthController) Logout(c *fiber.Ctx) error {
	ctl.setCookie(c, "", time.Now().Add(-1*time.Hour))
	return c.Status(fiber.StatusOK).JSON(lib.MessageResponse("Logged out successfully"))
}

// GetCurrentUser returns the currently authenticated user's data
func (ctl *AuthController) GetCurrentUser(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(middleware.CurrentUser(c))
}

func (ctl *AuthController) setCookie(c *fiber.Ctx, value string, expires time.Time) {
	c.Cookie(&fiber.Cookie{
		Name:     ctl.cookie.Name,
		Value:    value,
		Expires:  expires,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteStrictMode,
		Secure:   ctl.cookie.Secure,
		Path:     "/",
	})
}
