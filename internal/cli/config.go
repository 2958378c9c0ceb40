package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"attribute-analyzer/internal/config"
)

func newConfigCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as YAML",
		Long: `Print the configuration after defaults, the config file and environment
overrides are applied. The output is a valid config file.

Examples:
  attribute-analyzer config > analyzer.yaml
  attribute-analyzer --config analyzer.yaml config`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := config.Marshal(&a.cfg)
			if err != nil {
				return fmt.Errorf("marshal config: %w", err)
			}

			_, err = cmd.OutOrStdout().Write(data)

			return err
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "attribute-analyzer %s\n", Version)
		},
	}
}
