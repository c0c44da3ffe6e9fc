package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/quadra/newcotes"
)

// integrateCmd represents the integrate command
var integrateCmd = &cobra.Command{
	Use:   "integrate",
	Short: "Estimate one definite integral",
	Long: `Estimate a definite integral with a single quadrature rule.

The integrand comes from --fn (an expression in x) or --integrand (a
catalog fixture). Rule and subdivision count fall back to the
configuration when their flags are absent. The estimate is printed on
stdout as a bare number.

Examples:
  quadra integrate --rule simpson13 --fn "x*x" --from 0 --to 1 -n 1000
  quadra integrate --rule boole --integrand cube --from 1 --to 3
  quadra integrate --fn "sin(x)/x" --from 1e-9 --to 1`,
	RunE: runIntegrate,
}

func init() {
	rootCmd.AddCommand(integrateCmd)

	// Rule and subdivisions default to the config values when the flags
	// stay unset.
	integrateCmd.Flags().String("rule", "", "quadrature rule (default from config)")
	integrateCmd.Flags().IntP("subdivisions", "n", 0, "number of subdivisions (default from config)")
	integrateCmd.Flags().String("fn", "", `integrand expression in x, e.g. "x*x"`)
	integrateCmd.Flags().String("integrand", "square", "catalog integrand: identity, square, cube")
	integrateCmd.Flags().Float64("from", 0, "lower bound a")
	integrateCmd.Flags().Float64("to", 1, "upper bound b")
}

func runIntegrate(cmd *cobra.Command, args []string) error {
	cfg, err := loadValidatedConfig()
	if err != nil {
		return err
	}

	ruleFlag, _ := cmd.Flags().GetString("rule")
	rule, err := newcotes.ParseRule(pickString(ruleFlag, cfg.Quadrature.Rule))
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

	a, _ := cmd.Flags().GetFloat64("from")
	b, _ := cmd.Flags().GetFloat64("to")

	logger.Info("integrating",
		zap.String("rule", rule.String()),
		zap.String("integrand", label),
		zap.Int("n", n),
		zap.Float64("from", a),
		zap.Float64("to", b),
	)

	area, err := newcotes.Integrate(f, rule, n, a, b)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%.12g\n", area)

	return nil
}
