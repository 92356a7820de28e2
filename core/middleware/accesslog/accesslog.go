package accesslog

import (
	"errors"
	"time"

	"moodbank/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// New logs every request with its ray id, status and duration.
// It must be registered after rayid.
func New(log *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		l := logger.WithRayID(log, c)

		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			status = fiber.StatusInternalServerError
			var fe *fiber.Error
			if errors.As(err, &fe) {
				status = fe.Code
			}
		}

		fields := []zap.Field{
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Int("status", status),
			zap.Duration("elapsed", time.Since(start)),
			zap.String("ip", c.IP()),
		}
		if err != nil {
			l.Error("Request error", append(fields, zap.Error(err))...)
		} else {
			l.Info("Request completed", fields...)
		}
		return err
	}
}
