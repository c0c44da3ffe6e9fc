package cli

import (
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/katalvlaran/quadra/integrands"
	"github.com/katalvlaran/quadra/internal/config"
	"github.com/katalvlaran/quadra/newcotes"
	"github.com/katalvlaran/quadra/selftest"
)

// loadValidatedConfig loads the merged configuration and rejects invalid
// values before any command logic runs.
func loadValidatedConfig() (*config.Config, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// resolveIntegrand picks the integrand a command operates on: a compiled
// --fn expression when given, otherwise the named catalog fixture.
// nameChanged distinguishes an explicit --integrand from its default, so
// the two flags can be rejected as mutually exclusive without banning
// the default.
func resolveIntegrand(expr, name string, nameChanged bool) (newcotes.Integrand, string, error) {
	if expr != "" && nameChanged {
		return nil, "", errors.New("--fn and --integrand are mutually exclusive")
	}

	if expr != "" {
		f, err := integrands.Compile(expr)
		if err != nil {
			return nil, "", err
		}

		return f, expr, nil
	}

	fx, err := integrands.Lookup(name)
	if err != nil {
		return nil, "", err
	}

	return fx.F, fx.Name, nil
}

// pickInt returns the flag value when set, the config fallback otherwise.
func pickInt(flagVal, cfgVal int) int {
	if flagVal > 0 {
		return flagVal
	}

	return cfgVal
}

// pickFloat returns the flag value when positive, the config fallback
// otherwise.
func pickFloat(flagVal, cfgVal float64) float64 {
	if flagVal > 0 {
		return flagVal
	}

	return cfgVal
}

// pickString returns the flag value when non-empty, the config fallback
// otherwise.
func pickString(flagVal, cfgVal string) string {
	if flagVal != "" {
		return flagVal
	}

	return cfgVal
}

// renderResults prints one acceptance table row per result and returns
// the number of failed cases.
func renderResults(w io.Writer, results []selftest.Result) int {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "INTEGRAND\tRULE\tN\tINTERVAL\tWANT\tGOT\tDELTA\tSTATUS")

	failed := 0
	for _, res := range results {
		status := "ok"
		switch {
		case !res.Pass:
			status = "FAIL"
			failed++
		case !res.Hit:
			status = "miss (expected)"
		}

		fmt.Fprintf(tw, "%s\t%s\t%d\t[%g,%g]\t%g\t%.8f\t%+.2e\t%s\n",
			res.Integrand, res.Rule, res.N, res.A, res.B, res.Want, res.Got, res.Delta, status)
	}
	_ = tw.Flush()

	return failed
}
