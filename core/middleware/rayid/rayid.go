package rayid

import (
	"moodbank/core/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// HeaderName is the response header carrying the ray id.
const HeaderName = "X-Ray-ID"

// New returns a middleware that assigns every request a ray id.
// An incoming X-Ray-ID is kept so that proxied requests share the id of the
// development server request that forwarded them.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		rid := c.Get(HeaderName)
		if rid == "" || len(rid) > 64 {
			rid = uuid.NewString()
			c.Request().Header.Set(HeaderName, rid)
		}
		c.Locals(logger.RayIDKey, rid)
		c.Set(HeaderName, rid)
		return c.Next()
	}
}

// FromCtx returns the ray id assigned to the request, if any.
func FromCtx(c *fiber.Ctx) string {
	if rid, ok := c.Locals(logger.RayIDKey).(string); ok {
		return rid
	}
	return ""
}
