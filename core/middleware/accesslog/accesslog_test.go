package accesslog_test

import (
	"net/http/httptest"
	"testing"

	"moodbank/core/middleware/accesslog"
	"moodbank/core/middleware/rayid"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNew(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)

	app := fiber.New()
	app.Use(rayid.New())
	app.Use(accesslog.New(zap.New(core)))
	app.Get("/ok", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusNoContent) })
	app.Get("/missing", func(c *fiber.Ctx) error { return fiber.ErrNotFound })

	_, err := app.Test(httptest.NewRequest("GET", "/ok", nil))
	require.NoError(t, err)
	_, err = app.Test(httptest.NewRequest("GET", "/missing", nil))
	require.NoError(t, err)

	entries := logs.AllUntimed()
	require.Len(t, entries, 2)

	ok := entries[0].ContextMap()
	assert.Equal(t, "Request completed", entries[0].Message)
	assert.Equal(t, int64(fiber.StatusNoContent), ok["status"])
	assert.Equal(t, "/ok", ok["path"])
	assert.NotEmpty(t, ok["ray_id"])

	missing := entries[1].ContextMap()
	assert.Equal(t, zapcore.ErrorLevel, entries[1].Level)
	assert.Equal(t, int64(fiber.StatusNotFound), missing["status"])
}
