package cmd

import (
	"encoding/json"
	"errors"
	"fmt"

	"moodbank/core/database"
	"moodbank/core/storage"
	"moodbank/feature/integrity"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var checkPublished bool

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Run integrity checks",
	Long:  `Checks the project root and the mood entries schema, and with --published compares the local build with the storage bucket. Prints a JSON report.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logg, err := loadRuntime()
		if err != nil {
			return err
		}
		defer logg.Sync()

		// A missing database is reported by the schema check.
		var db *gorm.DB
		if conn, err := database.Connect(cfg.Database); err != nil {
			logg.Warn("Database connection failed", zap.Error(err))
		} else {
			db = conn
			defer database.Close(db)
		}

		opts := integrity.Options{
			Root:   cfg.Root,
			OutDir: outDir(cfg),
			DB:     db,
			Bucket: cfg.Storage.Bucket,
			Prefix: cfg.Storage.Prefix,
			Logger: logg,
		}
		if checkPublished {
			client, err := storage.NewClient(cfg.Storage)
			if err != nil {
				return fmt.Errorf("failed to create storage client: %w", err)
			}
			opts.Client = client
		}

		report := integrity.NewService(opts).Run(cmd.Context())
		out, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))

		if !report.Healthy {
			return errors.New("integrity checks failed")
		}
		return nil
	},
}

func init() {
	checkCmd.Flags().BoolVar(&checkPublished, "published", false, "also compare the local build with the storage bucket")
	RootCmd.AddCommand(checkCmd)
}
