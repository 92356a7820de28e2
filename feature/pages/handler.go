package pages

import (
	"strings"

	"moodbank/core/identity"
	"moodbank/core/logger"
	"moodbank/feature/mood"
	"moodbank/feature/solutions"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler renders the HTML pages.
type Handler struct {
	renderer  *Renderer
	moods     *mood.Service
	solutions *solutions.Service
	logger    *zap.Logger
}

// NewHandler creates a new page handler.
func NewHandler(renderer *Renderer, moods *mood.Service, sol *solutions.Service, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{renderer: renderer, moods: moods, solutions: sol, logger: logger}
}

// RegisterRoutes registers the page routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/", h.HandleIndex)
	app.Get("/track", h.HandleTrack)
	app.Get("/insights", h.HandleInsights)
	app.Get("/solutions", h.HandleSolutions)
}

type page struct {
	Title      string
	Emotions   []string
	Pattern    *mood.Pattern
	Selected   []string
	Strategies solutions.Strategies
}

// HandleIndex renders the landing page.
func (h *Handler) HandleIndex(c *fiber.Ctx) error {
	return h.render(c, "index", page{Title: "Home"})
}

// HandleTrack renders the mood entry form.
func (h *Handler) HandleTrack(c *fiber.Ctx) error {
	return h.render(c, "track", page{Title: "Track", Emotions: h.solutions.Emotions()})
}

// HandleInsights renders the visitor's recent pattern.
func (h *Handler) HandleInsights(c *fiber.Ctx) error {
	pattern, err := h.moods.Insights(c.UserContext(), identity.UserID(c))
	if err != nil {
		logger.WithRayID(h.logger, c).Error("Failed to load insights", zap.Error(err))
		return fiber.ErrInternalServerError
	}
	return h.render(c, "insights", page{Title: "Insights", Pattern: pattern})
}

// HandleSolutions renders strategies for the emotions in the query string.
// Both ?emotions=a,b and repeated ?emotions=a&emotions=b are accepted.
func (h *Handler) HandleSolutions(c *fiber.Ctx) error {
	var selected []string
	for _, raw := range c.Context().QueryArgs().PeekMulti("emotions") {
		for _, e := range strings.Split(string(raw), ",") {
			if e = strings.TrimSpace(e); e != "" {
				selected = append(selected, e)
			}
		}
	}
	return h.render(c, "solutions", page{
		Title:      "Solutions",
		Emotions:   h.solutions.Emotions(),
		Selected:   selected,
		Strategies: h.solutions.Personalized(selected),
	})
}

func (h *Handler) render(c *fiber.Ctx, name string, data page) error {
	body, err := h.renderer.Render(name, data)
	if err != nil {
		logger.WithRayID(h.logger, c).Error("Failed to render page", zap.String("page", name), zap.Error(err))
		return fiber.ErrInternalServerError
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Send(body)
}
