package controllers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
)

// PingFunc checks that the database answers.
type PingFunc func(ctx context.Context) error

type HealthController struct {
	ping PingFunc
}

func NewHealthController(ping PingFunc) *HealthController {
	return &HealthController{ping: ping}
}

// Healthz reports liveness and whether the database answers a ping
func (ctl *HealthController) Healthz(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
	defer cancel()

	if err := ctl.ping(ctx); err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"status":   "unavailable",
			"database": "unreachable",
		})
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "ok", "database": "ok"})
}
