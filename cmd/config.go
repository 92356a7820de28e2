package cmd

import (
	"fmt"

	"moodbank/core/config"
	"moodbank/core/server"

	"github.com/spf13/cobra"
)

var (
	configFormat  string
	configDefault bool
)

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect the project configuration",
}

// configShowCmd prints the effective descriptor.
var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective project descriptor",
	Long:  `Prints root, dev server port, proxy rules and build output directory after .env, config file and environment are applied.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		desc := server.Default()
		if !configDefault {
			cfg, err := config.LoadConfig(configDir)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			desc = cfg.Descriptor()
		}

		out, err := server.Encode(desc, configFormat)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(out)
		return err
	},
}

func init() {
	configShowCmd.Flags().StringVarP(&configFormat, "format", "f", server.FormatYAML, "output format (yaml|json)")
	configShowCmd.Flags().BoolVar(&configDefault, "default", false, "print the built-in defaults instead")
	configCmd.AddCommand(configShowCmd)
	RootCmd.AddCommand(configCmd)
}
