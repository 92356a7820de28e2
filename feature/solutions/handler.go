package solutions

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// Handler handles HTTP requests for coping strategies.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the solutions routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/api/solutions")
	group.Get("/", h.HandleEmotions)
	group.Get("/:emotions", h.HandlePersonalized)
}

// HandlePersonalized returns strategies for a comma separated emotion list.
// @Summary Personalized Solutions
// @Description Returns techniques, affirmations and activities for the given emotions.
// @Tags solutions
// @Produce json
// @Param emotions path string true "Comma separated emotions (e.g. 'anxiety,stress')"
// @Success 200 {object} solutions.Strategies "Strategies"
// @Router /api/solutions/{emotions} [get]
func (h *Handler) HandlePersonalized(c *fiber.Ctx) error {
	emotions := strings.Split(c.Params("emotions"), ",")
	return c.JSON(h.service.Personalized(emotions))
}

// HandleEmotions lists the emotions strategies exist for.
// @Summary Supported Emotions
// @Tags solutions
// @Produce json
// @Success 200 {array} string "Emotions"
// @Router /api/solutions [get]
func (h *Handler) HandleEmotions(c *fiber.Ctx) error {
	return c.JSON(h.service.Emotions())
}
