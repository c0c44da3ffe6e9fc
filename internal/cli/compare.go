package cli

import (
	"fmt"
	"math"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/quadra/newcotes"
)

// compareCmd represents the compare command
var compareCmd = &cobra.Command{
	Use:   "compare [a b]",
	Short: "Run every rule side by side",
	Long: `Estimate the same integral with every quadrature rule, at the base
subdivision count and at twice that count, and report how much each
estimate moves under refinement.

Bounds come from the two positional arguments; without them the command
asks for both on the terminal.

Examples:
  quadra compare 1 3
  quadra compare --fn "exp(x)" 0 1
  quadra compare -n 50 --integrand cube 0 2`,
	Args: cobra.RangeArgs(0, 2),
	RunE: runCompare,
}

func init() {
	rootCmd.AddCommand(compareCmd)

	compareCmd.Flags().IntP("subdivisions", "n", 0, "base subdivision count (default from config)")
	compareCmd.Flags().String("fn", "", `integrand expression in x, e.g. "x*x"`)
	compareCmd.Flags().String("integrand", "square", "catalog integrand: identity, square, cube")
}

func runCompare(cmd *cobra.Command, args []string) error {
	cfg, err := loadValidatedConfig()
	if err != nil {
		return err
	}

	a, b, err := compareBounds(cmd, args)
	if err != nil {
		return err
	}

	nFlag, _ := cmd.Flags().GetInt("subdivisions")
	n := pickInt(nFlag, cfg.Quadrature.Subdivisions)

	expr, _ := cmd.Flags().GetString("fn")
	name, _ := cmd.Flags().GetString("integrand")
	f, label, err := resolveIntegrand(expr, name, cmd.Flags().Changed("integrand"))
	if err != nil {
		return err
	}

	logger.Info("comparing rules",
		zap.String("integrand", label),
		zap.Int("n", n),
		zap.Float64("from", a),
		zap.Float64("to", b),
	)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "∫ %s dx over [%g,%g]\n\n", label, a, b)

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "RULE\tN=%d\tN=%d\tREFINEMENT\n", n, 2*n)
	for _, r := range newcotes.Rules() {
		coarse, err := newcotes.Integrate(f, r, n, a, b)
		if err != nil {
			return err
		}
		fine, err := newcotes.Integrate(f, r, 2*n, a, b)
		if err != nil {
			return err
		}

		fmt.Fprintf(tw, "%s\t%.8f\t%.8f\t%.2e\n", r, coarse, fine, math.Abs(fine-coarse))
	}

	return tw.Flush()
}

// compareBounds resolves the integration interval: positional args when
// given, interactive prompts otherwise (one prompt covers a missing b).
func compareBounds(cmd *cobra.Command, args []string) (float64, float64, error) {
	var a, b float64

	switch len(args) {
	case 2:
		var err error
		if a, err = strconv.ParseFloat(args[0], 64); err != nil {
			return 0, 0, fmt.Errorf("invalid lower bound %q: %w", args[0], err)
		}
		if b, err = strconv.ParseFloat(args[1], 64); err != nil {
			return 0, 0, fmt.Errorf("invalid upper bound %q: %w", args[1], err)
		}

		return a, b, nil

	case 1:
		var err error
		if a, err = strconv.ParseFloat(args[0], 64); err != nil {
			return 0, 0, fmt.Errorf("invalid lower bound %q: %w", args[0], err)
		}
		if b, err = promptFloat(cmd, "Enter upper bound: "); err != nil {
			return 0, 0, err
		}

		return a, b, nil

	default:
		var err error
		if a, err = promptFloat(cmd, "Enter lower bound: "); err != nil {
			return 0, 0, err
		}
		if b, err = promptFloat(cmd, "Enter upper bound: "); err != nil {
			return 0, 0, err
		}

		return a, b, nil
	}
}

// promptFloat writes one prompt and scans one float from the command's
// input stream.
func promptFloat(cmd *cobra.Command, prompt string) (float64, error) {
	fmt.Fprint(cmd.OutOrStdout(), prompt)

	var v float64
	if _, err := fmt.Fscan(cmd.InOrStdin(), &v); err != nil {
		return 0, fmt.Errorf("reading bound: %w", err)
	}

	return v, nil
}
