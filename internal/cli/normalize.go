package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"attribute-analyzer/internal/match"
)

func newNormalizeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "normalize <text>...",
		Short: "Print the normalized form of each label",
		Long: `Print the form each label is compared in: lowercased, trimmed, periods
outside numbers removed, parenthesis spacing standardized and whitespace
collapsed. One line per argument.

Examples:
  attribute-analyzer normalize "Weight(kg)" "  Net  Wt. "`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			for _, text := range args {
				fmt.Fprintln(out, match.Normalize(text))
			}

			a.logger.Debug("normalized labels", "count", len(args))

			return nil
		},
	}
}
