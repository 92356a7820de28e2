package proxy

import (
	"errors"
	"time"

	"moodbank/core/logger"

	"github.com/gofiber/fiber/v2"
	fiberproxy "github.com/gofiber/fiber/v2/middleware/proxy"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"
)

// Config holds the middleware settings.
type Config struct {
	// Timeout bounds a single round trip to the target. Zero means 30s.
	Timeout time.Duration
	// Logger receives one entry per forwarded request.
	Logger *zap.Logger
}

// New returns a fiber handler that forwards requests matching table and
// passes every other request to the next handler.
func New(table *Table, cfg Config) fiber.Handler {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}

	return func(c *fiber.Ctx) error {
		rule, ok := table.Match(c.Path())
		if !ok {
			return c.Next()
		}

		target := rule.TargetURL(c.OriginalURL())
		l := logger.WithRayID(log, c).With(
			zap.String("prefix", rule.Prefix),
			zap.String("target", target),
		)

		start := time.Now()
		if err := fiberproxy.DoTimeout(c, target, timeout); err != nil {
			status := fiber.StatusBadGateway
			if errors.Is(err, fasthttp.ErrTimeout) {
				status = fiber.StatusGatewayTimeout
			}
			l.Warn("Proxy request failed", zap.Int("status", status), zap.Error(err))
			return c.Status(status).JSON(fiber.Map{
				"error":  gatewayError(status),
				"target": rule.Target.String(),
			})
		}

		l.Debug("Proxied request",
			zap.Int("status", c.Response().StatusCode()),
			zap.Duration("elapsed", time.Since(start)),
		)
		return nil
	}
}

func gatewayError(status int) string {
	switch status {
	case fiber.StatusGatewayTimeout:
		return "gateway timeout"
	default:
		return "bad gateway"
	}
}
