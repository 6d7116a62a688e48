package std

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

type Health struct {
	started time.Time
}

func NewHealth() *Health {
	return &Health{started: time.Now()}
}

func (my *Health) Base() string {
	return "/health"
}

func (my *Health) Init(r fiber.Router) {
	r.Get("/", my.Check)
}

// Check 通用健康检查
func (my *Health) Check(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "ok",
		"version": Version,
		"uptime":  time.Since(my.started).Seconds(),
	})
}
