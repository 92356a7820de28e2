package integrity

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"moodbank/core/database"
	"moodbank/core/storage/mocks"
	"moodbank/feature/mood"

	"github.com/gofiber/fiber/v2"
	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupSQLite(t *testing.T, migrate bool) *gorm.DB {
	t.Helper()
	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })
	if migrate {
		require.NoError(t, mood.NewGormRepository(db).Migrate())
	}
	return db
}

func setupRoot(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "index.html"), []byte("<html></html>"), 0o644))
	return root
}

func TestService_Run(t *testing.T) {
	t.Run("Healthy", func(t *testing.T) {
		root := setupRoot(t)
		svc := NewService(Options{Root: root, OutDir: filepath.Join(root, "dist"), DB: setupSQLite(t, true)})

		report := svc.Run(context.Background())
		assert.True(t, report.Healthy)
		assert.Contains(t, report.Checks, "project")
		assert.Contains(t, report.Checks, "schema")
		assert.NotContains(t, report.Checks, "published")
	})

	t.Run("MissingTable", func(t *testing.T) {
		root := setupRoot(t)
		svc := NewService(Options{Root: root, OutDir: filepath.Join(root, "dist"), DB: setupSQLite(t, false)})

		report := svc.Run(context.Background())
		assert.False(t, report.Healthy)
	})

	t.Run("NoDatabase", func(t *testing.T) {
		root := setupRoot(t)
		svc := NewService(Options{Root: root, OutDir: filepath.Join(root, "dist")})

		report := svc.Run(context.Background())
		assert.False(t, report.Healthy)
		assert.Equal(t, "error", report.Checks["schema"].(map[string]any)["status"])
	})

	t.Run("PublishedWithoutBuild", func(t *testing.T) {
		root := setupRoot(t)
		client := new(mocks.Client)
		svc := NewService(Options{Root: root, OutDir: filepath.Join(root, "dist"), DB: setupSQLite(t, true), Client: client, Bucket: "site"})

		report := svc.Run(context.Background())
		assert.False(t, report.Healthy)
		assert.Equal(t, "error", report.Checks["published"].(map[string]any)["status"])
		client.AssertNotCalled(t, "BucketExists", mock.Anything, mock.Anything)
	})
}

func TestService_CheckPublished_Disabled(t *testing.T) {
	svc := NewService(Options{})
	_, err := svc.CheckPublished(context.Background())
	assert.ErrorIs(t, err, ErrStorageDisabled)
}

func TestHandler(t *testing.T) {
	root := setupRoot(t)
	client := new(mocks.Client)
	feature := NewFeature(Options{Root: root, OutDir: filepath.Join(root, "dist"), DB: setupSQLite(t, true)})
	assert.Equal(t, "integrity", feature.Name())
	assert.True(t, feature.IsEnabled())

	app := fiber.New()
	require.NoError(t, feature.Load(app))

	resp, err := app.Test(httptest.NewRequest("GET", "/integrity", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	var report map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&report))
	assert.Equal(t, true, report["healthy"])

	resp, err = app.Test(httptest.NewRequest("GET", "/integrity/project", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/integrity/schema", nil))
	require.NoError(t, err)
	var schema map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&schema))
	assert.Equal(t, true, schema["matched"])

	resp, err = app.Test(httptest.NewRequest("GET", "/integrity/published", nil))
	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)
	client.AssertNotCalled(t, "ListObjects", mock.Anything, mock.Anything, mock.Anything)
}

func TestHandler_SchemaWithoutDatabase(t *testing.T) {
	app := fiber.New()
	NewHandler(NewService(Options{})).RegisterRoutes(app)

	resp, err := app.Test(httptest.NewRequest("GET", "/integrity/schema", nil))
	require.NoError(t, err)
	assert.Equal(t, 500, resp.StatusCode)
}

func TestHandler_Published(t *testing.T) {
	root := setupRoot(t)
	dist := filepath.Join(root, "dist")
	require.NoError(t, os.MkdirAll(dist, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dist, "moodbank-manifest.json"), []byte(`{"files":[{"path":"index.html"}]}`), 0o644))

	client := new(mocks.Client)
	client.On("BucketExists", mock.Anything, "site").Return(true, nil)
	ch := make(chan minio.ObjectInfo)
	close(ch)
	client.On("ListObjects", mock.Anything, "site", mock.Anything).Return((<-chan minio.ObjectInfo)(ch))

	app := fiber.New()
	NewHandler(NewService(Options{Root: root, OutDir: dist, Client: client, Bucket: "site"})).RegisterRoutes(app)

	resp, err := app.Test(httptest.NewRequest("GET", "/integrity/published", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.ElementsMatch(t, []any{"index.html", "moodbank-manifest.json"}, body["missing"])
}
