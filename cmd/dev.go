package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"moodbank/core/database"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// devCmd represents the dev command
var devCmd = &cobra.Command{
	Use:   "dev",
	Short: "Run the backend and the development server together",
	Long:  `Starts the backend API, then the development server proxying to it. Either failing stops both.`,
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

		srv, err := newDevServer(cfg, logg)
		if err != nil {
			_ = ln.Close()
			return err
		}
		if err := srv.Start(); err != nil {
			_ = ln.Close()
			return err
		}

		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error { return app.Listener(ln) })
		g.Go(func() error { return srv.Wait() })
		g.Go(func() error {
			<-gctx.Done()
			logg.Info("Shutting down...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			err := srv.Shutdown(shutdownCtx)
			if berr := app.ShutdownWithContext(shutdownCtx); err == nil {
				err = berr
			}
			return err
		})
		return g.Wait()
	},
}

func init() {
	RootCmd.AddCommand(devCmd)
}
