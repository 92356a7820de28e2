package integrity

import (
	"errors"

	"moodbank/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for integrity checks.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the integrity routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/integrity")
	group.Get("/", h.HandleIntegrityCheck)
	group.Get("/project", h.HandleProjectCheck)
	group.Get("/schema", h.HandleSchemaCheck)
	group.Get("/published", h.HandlePublishedCheck)
}

// HandleIntegrityCheck runs every check.
// @Summary Run All Integrity Checks
// @Description Checks the project root, the mood entries schema and, when storage is configured, the published build.
// @Tags integrity
// @Produce json
// @Success 200 {object} integrity.Report "Combined Report"
// @Router /integrity [get]
func (h *Handler) HandleIntegrityCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Triggering all integrity checks")
	return c.JSON(h.service.Run(c.UserContext()))
}

// HandleProjectCheck checks the project root.
// @Summary Check Project
// @Description Verifies the project root exists and holds the required files.
// @Tags integrity
// @Produce json
// @Success 200 {object} checks.ProjectReport "Project Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity/project [get]
func (h *Handler) HandleProjectCheck(c *fiber.Ctx) error {
	report, err := h.service.CheckProject()
	if err != nil {
		logger.WithRayID(h.service.logger, c).Error("Project check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(report)
}

// HandleSchemaCheck checks the mood entries schema.
// @Summary Check Schema
// @Description Checks that the mood entries table has every expected column.
// @Tags integrity
// @Produce json
// @Success 200 {object} checks.SchemaReport "Schema Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity/schema [get]
func (h *Handler) HandleSchemaCheck(c *fiber.Ctx) error {
	report, err := h.service.CheckSchema()
	if err != nil {
		logger.WithRayID(h.service.logger, c).Error("Schema check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(report)
}

// HandlePublishedCheck compares the local build with the bucket.
// @Summary Check Published Build
// @Description Lists local build artifacts that are missing from the storage bucket.
// @Tags integrity
// @Produce json
// @Success 200 {object} map[string]interface{} "Published Report"
// @Failure 404 {object} map[string]string "Storage Disabled"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity/published [get]
func (h *Handler) HandlePublishedCheck(c *fiber.Ctx) error {
	missing, err := h.service.CheckPublished(c.UserContext())
	if errors.Is(err, ErrStorageDisabled) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	}
	if err != nil {
		logger.WithRayID(h.service.logger, c).Error("Published check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{
		"status":  "checked",
		"missing": missing,
	})
}
