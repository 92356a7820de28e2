// Package identity gives every backend visitor a stable anonymous id.
//
// The id is a UUID kept in a server-side session (fiber's session middleware,
// in-memory storage) and created on the visitor's first request.
package identity

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/google/uuid"
)

const (
	sessionKey = "user_id"
	localsKey  = "identity.user_id"
)

// Config holds the session settings.
type Config struct {
	CookieName string
	Expiration time.Duration
}

// NewStore creates the session store.
func NewStore(cfg Config) *session.Store {
	name := cfg.CookieName
	if name == "" {
		name = "moodbank_session"
	}
	expiration := cfg.Expiration
	if expiration <= 0 {
		expiration = 30 * 24 * time.Hour
	}
	return session.New(session.Config{
		Expiration:     expiration,
		KeyLookup:      "cookie:" + name,
		CookieHTTPOnly: true,
		CookieSameSite: "Lax",
	})
}

// New returns a middleware that resolves the visitor id, creating one on the
// first request, and exposes it through UserID.
func New(store *session.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess, err := store.Get(c)
		if err != nil {
			return fmt.Errorf("load session: %w", err)
		}

		id, _ := sess.Get(sessionKey).(string)
		if id == "" {
			id = uuid.NewString()
			sess.Set(sessionKey, id)
			if err := sess.Save(); err != nil {
				return fmt.Errorf("save session: %w", err)
			}
		}

		c.Locals(localsKey, id)
		return c.Next()
	}
}

// UserID returns the visitor id resolved by the middleware.
func UserID(c *fiber.Ctx) string {
	id, _ := c.Locals(localsKey).(string)
	return id
}
