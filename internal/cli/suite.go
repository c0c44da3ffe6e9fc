package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/quadra/newcotes"
	"github.com/katalvlaran/quadra/selftest"
)

// suiteFile is the on-disk shape of a user-defined acceptance suite.
type suiteFile struct {
	// Tolerance overrides the config tolerance when positive.
	Tolerance float64     `yaml:"tolerance"`
	Cases     []suiteCase `yaml:"cases"`
}

// suiteCase mirrors selftest.Case with the rule spelled by name.
type suiteCase struct {
	Integrand string  `yaml:"integrand"`
	Rule      string  `yaml:"rule"`
	N         int     `yaml:"n"`
	A         float64 `yaml:"a"`
	B         float64 `yaml:"b"`
	Want      float64 `yaml:"want"`
	WantMiss  bool    `yaml:"want_miss"`
}

// suiteCmd represents the suite command
var suiteCmd = &cobra.Command{
	Use:   "suite FILE",
	Short: "Run an acceptance suite from a YAML file",
	Long: `Run a user-defined acceptance suite.

The file lists cases with a catalog integrand, a rule name, the
Integrate arguments and the expected closed-form value:

  tolerance: 1e-6
  cases:
    - integrand: square
      rule: boole
      n: 400
      a: 0
      b: 1
      want: 0.3333333333333333
    - integrand: identity
      rule: simpson 3/8
      n: 100
      a: 1
      b: 3
      want: 4
      want_miss: true

Tolerance precedence: --tolerance flag, then the file's tolerance key,
then the configuration. The command exits non-zero when any case fails.`,
	Args: cobra.ExactArgs(1),
	RunE: runSuite,
}

func init() {
	rootCmd.AddCommand(suiteCmd)

	suiteCmd.Flags().Float64("tolerance", 0, "absolute tolerance (overrides file and config)")
}

func runSuite(cmd *cobra.Command, args []string) error {
	cfg, err := loadValidatedConfig()
	if err != nil {
		return err
	}

	cases, fileTol, err := loadSuiteFile(args[0])
	if err != nil {
		return err
	}

	tolFlag, _ := cmd.Flags().GetFloat64("tolerance")
	tol := pickFloat(tolFlag, pickFloat(fileTol, cfg.Quadrature.Tolerance))

	logger.Info("running suite",
		zap.String("file", args[0]),
		zap.Int("cases", len(cases)),
		zap.Float64("tolerance", tol),
	)

	results, err := selftest.Run(cases, tol)
	if err != nil {
		return err
	}

	failed := renderResults(cmd.OutOrStdout(), results)
	if failed > 0 {
		return fmt.Errorf("suite %s failed: %d of %d cases", args[0], failed, len(results))
	}

	return nil
}

// loadSuiteFile parses and validates a YAML suite definition.
func loadSuiteFile(path string) ([]selftest.Case, float64, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, 0, fmt.Errorf("reading suite file: %w", err)
	}

	var sf suiteFile
	if err := yaml.Unmarshal(raw, &sf); err != nil {
		return nil, 0, fmt.Errorf("parsing suite file %s: %w", path, err)
	}
	if len(sf.Cases) == 0 {
		return nil, 0, fmt.Errorf("suite file %s defines no cases", path)
	}

	cases := make([]selftest.Case, 0, len(sf.Cases))
	for i, sc := range sf.Cases {
		rule, err := newcotes.ParseRule(sc.Rule)
		if err != nil {
			return nil, 0, fmt.Errorf("case %d: %w", i, err)
		}

		cases = append(cases, selftest.Case{
			Integrand: sc.Integrand,
			Rule:      rule,
			N:         sc.N,
			A:         sc.A,
			B:         sc.B,
			Want:      sc.Want,
			WantMiss:  sc.WantMiss,
		})
	}

	return cases, sf.Tolerance, nil
}
