package solutions

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPersonalized(t *testing.T) {
	svc := NewService(DefaultCatalog())

	t.Run("SingleEmotion", func(t *testing.T) {
		got := svc.Personalized([]string{"anxiety"})
		assert.Equal(t, []string{
			"Deep breathing exercises (4-7-8 technique)",
			"Progressive muscle relaxation",
		}, got.Techniques)
		assert.Len(t, got.Affirmations, 2)
		assert.Len(t, got.Activities, 2)
	})

	t.Run("MergesInRequestOrder", func(t *testing.T) {
		got := svc.Personalized([]string{"stress", "anger"})
		assert.Equal(t, []string{
			"Time management and prioritization",
			"Stress inoculation training",
			"Anger management breathing techniques",
			"Cognitive restructuring",
		}, got.Techniques)
	})

	t.Run("DropsDuplicates", func(t *testing.T) {
		got := svc.Personalized([]string{"sadness", "sadness"})
		assert.Len(t, got.Techniques, 2)
	})

	t.Run("UnknownIgnored", func(t *testing.T) {
		got := svc.Personalized([]string{"joy", ""})
		assert.Equal(t, Strategies{Techniques: []string{}, Affirmations: []string{}, Activities: []string{}}, got)
	})
}

func TestPersonalized_SharedStrategies(t *testing.T) {
	svc := NewService(Catalog{
		"a": {Techniques: []string{"breathe", "walk"}},
		"b": {Techniques: []string{"walk", "rest", "read"}},
	})

	got := svc.Personalized([]string{"a", "b"})
	assert.Equal(t, []string{"breathe", "walk", "rest"}, got.Techniques)
}

func TestEmotions(t *testing.T) {
	svc := NewService(DefaultCatalog())
	assert.Equal(t, []string{"anger", "anxiety", "depression", "sadness", "stress"}, svc.Emotions())
}

func TestHandler(t *testing.T) {
	app := fiber.New()
	feature := NewFeature()
	require.NoError(t, feature.Load(app))
	assert.Equal(t, "solutions", feature.Name())
	assert.True(t, feature.IsEnabled())

	resp, err := app.Test(httptest.NewRequest("GET", "/api/solutions/anxiety,depression", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var got Strategies
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Len(t, got.Techniques, 4)
	assert.Equal(t, "Cognitive behavioral therapy techniques", got.Techniques[2])

	resp, err = app.Test(httptest.NewRequest("GET", "/api/solutions/unknown", nil))
	require.NoError(t, err)
	var empty map[string][]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&empty))
	assert.Equal(t, []string{}, empty["techniques"])

	resp, err = app.Test(httptest.NewRequest("GET", "/api/solutions", nil))
	require.NoError(t, err)
	var emotions []string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&emotions))
	assert.Len(t, emotions, 5)
}
