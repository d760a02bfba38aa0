package app

import (
	"fmt"

	"github.com/dcruz/pltscheck/internal/config"
	"github.com/dcruz/pltscheck/internal/eval"
	"github.com/dcruz/pltscheck/internal/formula"
)

// report records the outcome of a single check and writes it to the app's
// output writer.
func (a *App) report(name string, node formula.Node, result *eval.Result) {
	a.logger.Debug("Check evaluated.", "check", name, "run_id", result.RunID, "valid", result.Valid)
	a.results = append(a.results, checkResult(name, result))

	if result.Valid {
		fmt.Fprintf(a.outW, "check %q: VALID   %s\n", name, node)
		return
	}

	fmt.Fprintf(a.outW, "check %q: INVALID %s\n", name, node)
	for _, ce := range result.CounterExamples {
		fmt.Fprintf(a.outW, "  world %q evaluates to %s\n", ce.World, ce.Value)
	}
}

// checkResult converts an evaluation result into the exchange shape used at
// the workspace boundary.
func checkResult(name string, result *eval.Result) *config.CheckResult {
	out := &config.CheckResult{
		Check: name,
		Valid: result.Valid,
	}
	for _, ce := range result.CounterExamples {
		out.CounterExamples = append(out.CounterExamples, config.CounterExampleResult{
			World: ce.World,
			Value: config.Pair{ce.Value.T, ce.Value.F},
		})
	}
	return out
}
