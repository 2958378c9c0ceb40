package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"attribute-analyzer/internal/match"
)

func newDiffCmd(a *app) *cobra.Command {
	var (
		scorer     string
		normalized bool
	)

	cmd := &cobra.Command{
		Use:   "diff <a> <b>",
		Short: "Compare two labels",
		Long: `Show how two labels compare: their normalized forms, whether they are case
variants, their similarity score and the differing parts.

Examples:
  attribute-analyzer diff "Net Wt." "Net Weight"
  attribute-analyzer diff Colour color --scorer sequence`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := a.cfg.Scorer
			if cmd.Flags().Changed("scorer") {
				name = scorer
			}

			s, err := match.ScorerByName(name)
			if err != nil {
				return err
			}

			left, right := args[0], args[1]
			normA, normB := match.Normalize(left), match.Normalize(right)

			score := s.Score(normA, normB)

			variant := match.IsCaseVariant(left, right)
			if variant {
				score = 100
			}

			diffA, diffB := left, right
			if normalized {
				diffA, diffB = normA, normB
			}

			differences := match.FindDifferences(diffA, diffB).Render()
			if differences == "" {
				differences = "(none)"
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "A:            %q\n", left)
			fmt.Fprintf(out, "B:            %q\n", right)
			fmt.Fprintf(out, "Normalized:   %q / %q\n", normA, normB)
			fmt.Fprintf(out, "Case variant: %t\n", variant)
			fmt.Fprintf(out, "Similarity:   %d%%\n", score)
			fmt.Fprintf(out, "Differences:  %s\n", differences)

			return nil
		},
	}

	cmd.Flags().StringVar(&scorer, "scorer", "", "similarity scorer: indel or sequence")
	cmd.Flags().BoolVar(&normalized, "normalized", false, "compute differences on the normalized labels")

	return cmd
}
