package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"moodbank/core/build"
	"moodbank/core/config"
	"moodbank/core/storage"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	buildWatch   bool
	buildPublish bool
)

// buildCmd represents the build command
var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Write the front-end artifacts to the output directory",
	Long: `Copies the project root into the build output directory and writes a manifest.
With --watch it rebuilds on every change; with --publish each build is uploaded to the storage bucket.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logg, err := loadRuntime()
		if err != nil {
			return err
		}
		defer logg.Sync()

		builder, err := build.NewBuilder(cfg.Root, cfg.Build, logg)
		if err != nil {
			return err
		}

		var client storage.Client
		if buildPublish {
			if client, err = storage.NewClient(cfg.Storage); err != nil {
				return fmt.Errorf("failed to create storage client: %w", err)
			}
		}

		if !buildWatch {
			m, err := builder.Build(cmd.Context())
			if err != nil {
				return err
			}
			return publish(cmd.Context(), cfg, builder, client, m)
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		logg.Info("Watching for changes", zap.String("root", builder.Root()))
		return builder.Watch(ctx, func(m *build.Manifest, err error) {
			if err != nil {
				logg.Error("Build failed", zap.Error(err))
				return
			}
			if err := publish(ctx, cfg, builder, client, m); err != nil {
				logg.Error("Publish failed", zap.Error(err))
			}
		})
	},
}

func init() {
	buildCmd.Flags().BoolVarP(&buildWatch, "watch", "w", false, "rebuild when sources change")
	buildCmd.Flags().BoolVar(&buildPublish, "publish", false, "upload the build to the storage bucket")
	RootCmd.AddCommand(buildCmd)
}

// publish uploads m when a storage client is configured.
func publish(ctx context.Context, cfg *config.Config, builder *build.Builder, client storage.Client, m *build.Manifest) error {
	if client == nil {
		return nil
	}
	_, err := builder.Publish(ctx, client, cfg.Storage.Bucket, cfg.Storage.Prefix, m)
	return err
}
