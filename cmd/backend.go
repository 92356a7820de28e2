package cmd

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"moodbank/core/config"
	"moodbank/core/database"
	"moodbank/core/identity"
	"moodbank/core/loader"
	"moodbank/core/middleware/accesslog"
	"moodbank/core/middleware/rayid"
	"moodbank/feature/integrity"
	"moodbank/feature/mood"
	"moodbank/feature/pages"
	"moodbank/feature/solutions"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"

	_ "moodbank/docs/swagger"
)

// @title Moodbank API
// @version 1.0
// @description Mood tracking, insights and coping strategies.
// @host localhost:5000
// @BasePath /

// shutdownTimeout bounds graceful shutdown of the HTTP servers.
const shutdownTimeout = 10 * time.Second

// backendCmd represents the backend command
var backendCmd = &cobra.Command{
	Use:   "backend",
	Short: "Start the backend API",
	Long:  `Connects to the database, migrates the mood entries table and serves the API and pages.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logg, err := loadRuntime()
		if err != nil {
			return err
		}
		defer logg.Sync()

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		app, db, err := newBackend(cfg, logg)
		if err != nil {
			return err
		}
		defer database.Close(db)

		ln, err := listenBackend(cfg, logg)
		if err != nil {
			return err
		}

		errCh := make(chan error, 1)
		go func() { errCh <- app.Listener(ln) }()

		select {
		case err := <-errCh:
			return err
		case <-ctx.Done():
		}

		logg.Info("Shutting down backend...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return app.ShutdownWithContext(shutdownCtx)
	},
}

func init() {
	RootCmd.AddCommand(backendCmd)
}

// newBackend connects the database and assembles the backend app.
func newBackend(cfg *config.Config, logg *zap.Logger) (*fiber.App, *gorm.DB, error) {
	db, err := database.Connect(cfg.Database)
	if err != nil {
		return nil, nil, fmt.Errorf("database connection required: %w", err)
	}
	logg.Info("Connected to database", zap.String("driver", cfg.Database.Driver))

	app, err := newBackendApp(cfg, logg, db)
	if err != nil {
		_ = database.Close(db)
		return nil, nil, err
	}
	return app, db, nil
}

// newBackendApp wires middleware and features onto a fresh fiber app.
func newBackendApp(cfg *config.Config, logg *zap.Logger, db *gorm.DB) (*fiber.App, error) {
	repo := mood.NewGormRepository(db)
	if err := repo.Migrate(); err != nil {
		return nil, err
	}

	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
	})

	// RayID first so every later log line carries it.
	app.Use(rayid.New())
	app.Use(accesslog.New(logg))

	if cfg.Backend.Swagger {
		app.Get("/swagger/*", swagger.HandlerDefault)
	}

	app.Use(identity.New(identity.NewStore(identity.Config{
		CookieName: cfg.Backend.SessionCookie,
		Expiration: time.Duration(cfg.Backend.SessionHours) * time.Hour,
	})))

	moodFeature := mood.NewFeature(repo, logg)
	solutionsFeature := solutions.NewFeature()

	mgr := loader.NewManager(logg)
	mgr.Register(moodFeature)
	mgr.Register(solutionsFeature)
	mgr.Register(pages.NewFeature(moodFeature.Service(), solutionsFeature.Service(), logg))
	mgr.Register(integrity.NewFeature(integrity.Options{
		Root:   cfg.Root,
		OutDir: outDir(cfg),
		DB:     db,
		Logger: logg,
	}))

	if err := mgr.LoadAll(app); err != nil {
		return nil, fmt.Errorf("failed to load features: %w", err)
	}
	return app, nil
}

// listenBackend binds the backend port before serving so callers know it is
// reachable once this returns.
func listenBackend(cfg *config.Config, logg *zap.Logger) (net.Listener, error) {
	ln, err := net.Listen("tcp", ":"+strconv.Itoa(cfg.Backend.Port))
	if err != nil {
		return nil, fmt.Errorf("bind backend port %d: %w", cfg.Backend.Port, err)
	}
	logg.Info("Starting backend", zap.String("addr", ln.Addr().String()))
	return ln, nil
}
