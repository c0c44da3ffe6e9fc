package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/quadra/newcotes"
)

// rulesCmd represents the rules command
var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "List the supported quadrature rules",
	Long: `List every supported rule with its catalog metadata: the highest
polynomial degree it integrates exactly, whether it samples the interval
endpoints, and the subdivision stride its weight pattern prefers.

Rules accept any n ≥ 1; a count outside the stride only costs accuracy.`,
	RunE: runRules,
}

func init() {
	rootCmd.AddCommand(rulesCmd)
}

func runRules(cmd *cobra.Command, args []string) error {
	cfg, err := loadValidatedConfig()
	if err != nil {
		return err
	}

	// The configured rule may be spelled as an alias; normalize it so the
	// default marker matches the canonical row.
	defRule, err := newcotes.ParseRule(cfg.Quadrature.Rule)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tDEGREE\tKIND\tSTRIDE\tDEFAULT")
	for _, r := range newcotes.Rules() {
		info := r.Info()

		kind := "closed"
		if !info.Closed {
			kind = "open"
		}
		mark := ""
		if r == defRule {
			mark = "*"
		}

		fmt.Fprintf(tw, "%s\t%d\t%s\t%d\t%s\n", info.Name, info.Degree, kind, info.Stride, mark)
	}

	return tw.Flush()
}
