package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/quadra/selftest"
)

// selftestCmd represents the selftest command
var selftestCmd = &cobra.Command{
	Use:   "selftest",
	Short: "Run the built-in acceptance suite",
	Long: `Run the fixed acceptance suite: every rule against the polynomial
catalog on [1,3], checked against closed-form values.

One case is an expected miss — Simpson 3/8 on f(x)=x at n=100, where the
subdivision count does not fit the rule's weight pattern. The suite
passes when every ordinary case hits and the expected miss misses; the
command exits non-zero otherwise.`,
	RunE: runSelftest,
}

func init() {
	rootCmd.AddCommand(selftestCmd)

	selftestCmd.Flags().Float64("tolerance", 0, "absolute tolerance (default from config)")
}

func runSelftest(cmd *cobra.Command, args []string) error {
	cfg, err := loadValidatedConfig()
	if err != nil {
		return err
	}

	tolFlag, _ := cmd.Flags().GetFloat64("tolerance")
	tol := pickFloat(tolFlag, cfg.Quadrature.Tolerance)

	results, err := selftest.Run(selftest.DefaultSuite(), tol)
	if err != nil {
		return err
	}

	failed := renderResults(cmd.OutOrStdout(), results)
	if failed > 0 {
		return fmt.Errorf("self-test failed: %d of %d cases", failed, len(results))
	}

	logger.Info("self-test passed",
		zap.Int("cases", len(results)),
		zap.Float64("tolerance", tol),
	)

	return nil
}
