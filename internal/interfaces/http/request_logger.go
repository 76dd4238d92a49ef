package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/viewlist/viewlist-api/pkg/logger"
)

// RequestLogger logs every request with method, path, status and latency.
func RequestLogger(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		log.Info().
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", c.Response().StatusCode()).
			Dur("latency", time.Since(start)).
			Msg("request")
		return err
	}
}
