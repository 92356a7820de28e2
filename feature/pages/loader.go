package pages

import (
	"moodbank/feature/mood"
	"moodbank/feature/solutions"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	moods     *mood.Service
	solutions *solutions.Service
	logger    *zap.Logger
}

// NewFeature creates the pages feature on top of the mood and solutions services.
func NewFeature(moods *mood.Service, sol *solutions.Service, logger *zap.Logger) *Feature {
	return &Feature{moods: moods, solutions: sol, logger: logger}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "pages"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load parses the templates and registers the page routes.
func (f *Feature) Load(app fiber.Router) error {
	renderer, err := NewRenderer()
	if err != nil {
		return err
	}
	NewHandler(renderer, f.moods, f.solutions, f.logger).RegisterRoutes(app)
	return nil
}
