package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"moodbank/core/config"
	"moodbank/core/devserver"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var servePort int

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the development server",
	Long:  `Serves the project root and forwards the configured path prefixes to the backend.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logg, err := loadRuntime()
		if err != nil {
			return err
		}
		defer logg.Sync()

		if cmd.Flags().Changed("port") {
			cfg.Server.Port = servePort
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		srv, err := newDevServer(cfg, logg)
		if err != nil {
			return err
		}
		if err := srv.Start(); err != nil {
			return err
		}

		return waitDevServer(ctx, srv, logg)
	},
}

func init() {
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 0, "override the dev server port")
	RootCmd.AddCommand(serveCmd)
}

func newDevServer(cfg *config.Config, logg *zap.Logger) (*devserver.Server, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return devserver.New(cfg.Descriptor(), devserver.Options{
		ProxyTimeout: time.Duration(cfg.Server.ProxyTimeoutSeconds) * time.Second,
		Logger:       logg,
		Exclude:      cfg.Build.Exclude,
	})
}

// waitDevServer blocks until the server fails or ctx is cancelled, then
// shuts it down.
func waitDevServer(ctx context.Context, srv *devserver.Server, logg *zap.Logger) error {
	errCh := make(chan error, 1)
	go func() { errCh <- srv.Wait() }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logg.Error("Dev server shutdown failed", zap.Error(err))
		return err
	}
	return nil
}
