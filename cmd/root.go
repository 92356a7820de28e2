package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"moodbank/core/config"
	"moodbank/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// configDir is where .env and the moodbank config file are looked up.
var configDir string

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "moodbank",
	Short: "Moodbank mood tracker",
	Long: `Moodbank records moods, summarizes recent patterns and suggests coping strategies.
It ships the backend API, a development server that proxies API prefixes to it,
and a build step that emits the front-end and can publish it to S3 storage.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Console format with the debug config gives ISO8601 timestamps.
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			fmt.Println(err)
		}
		os.Exit(1)
	}
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&configDir, "config", "c", ".", "directory holding .env and moodbank.yaml")
}

// loadRuntime loads the configuration and the logger every command needs.
func loadRuntime() (*config.Config, *zap.Logger, error) {
	cfg, err := config.LoadConfig(configDir)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create logger: %w", err)
	}
	zap.ReplaceGlobals(logg)
	return cfg, logg, nil
}

// outDir resolves the build output directory against the project root.
func outDir(cfg *config.Config) string {
	if filepath.IsAbs(cfg.Build.OutDir) {
		return cfg.Build.OutDir
	}
	return filepath.Join(cfg.Root, cfg.Build.OutDir)
}
