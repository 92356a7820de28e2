package mood

import (
	"errors"

	"moodbank/core/identity"
	"moodbank/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for mood entries.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the mood routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/api")
	group.Post("/mood", h.HandleRecord)
	group.Get("/moods", h.HandleList)
	group.Get("/insights", h.HandleInsights)
}

// HandleRecord stores a new mood entry for the visitor.
// @Summary Record Mood
// @Description Stores a mood entry for the current visitor session.
// @Tags mood
// @Accept json
// @Produce json
// @Param entry body mood.Input true "Mood entry"
// @Success 200 {object} map[string]interface{} "Created entry id"
// @Failure 400 {object} map[string]string "Invalid entry"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /api/mood [post]
func (h *Handler) HandleRecord(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var in Input
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	entry, err := h.service.Record(c.Context(), identity.UserID(c), in)
	if err != nil {
		if errors.Is(err, ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		l.Error("Failed to record mood", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"success": true, "id": entry.ID})
}

// HandleList returns the visitor's entries.
// @Summary List Moods
// @Description Returns every mood entry of the current visitor, newest first.
// @Tags mood
// @Produce json
// @Success 200 {array} mood.Entry "Entries"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /api/moods [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	entries, err := h.service.List(c.Context(), identity.UserID(c))
	if err != nil {
		logger.WithRayID(h.service.logger, c).Error("Failed to list moods", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(entries)
}

// HandleInsights returns the visitor's recent mood pattern, or null.
// @Summary Mood Insights
// @Description Summarizes the visitor's latest seven entries.
// @Tags mood
// @Produce json
// @Success 200 {object} mood.Pattern "Pattern (null without entries)"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /api/insights [get]
func (h *Handler) HandleInsights(c *fiber.Ctx) error {
	pattern, err := h.service.Insights(c.Context(), identity.UserID(c))
	if err != nil {
		logger.WithRayID(h.service.logger, c).Error("Failed to compute insights", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(pattern)
}
