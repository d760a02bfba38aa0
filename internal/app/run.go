package app

import (
	"context"
	"fmt"

	"github.com/dcruz/pltscheck/internal/ctxlog"
	"github.com/dcruz/pltscheck/internal/eval"
	"github.com/dcruz/pltscheck/internal/formula"
)

// Run executes every check in the workspace and writes a report for each one.
// A check that fails to run (parse error, undefined atom, undefined action)
// is reported and does not stop the remaining checks; Run returns a summary
// error if any check could not be evaluated.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	checks := a.workspace.Checks()
	if len(checks) == 0 {
		a.logger.Warn("No checks found in workspace, nothing to evaluate.")
		return nil
	}

	a.logger.Info("Starting validity checks.", "count", len(checks))

	failed := 0
	for _, check := range checks {
		if err := a.runCheck(ctx, check.Name, check.Model, check.Formula); err != nil {
			a.logger.Error("Check could not be evaluated.", "check", check.Name, "error", err)
			fmt.Fprintf(a.outW, "check %q: error: %v\n", check.Name, err)
			failed++
		}
	}

	a.logger.Debug("App.Run method finished.", "failed", failed)
	if failed > 0 {
		return fmt.Errorf("%d of %d checks could not be evaluated", failed, len(checks))
	}
	return nil
}

func (a *App) runCheck(ctx context.Context, name, modelName, formulaText string) error {
	model, ok := a.workspace.Model(modelName)
	if !ok {
		return fmt.Errorf("unknown model %q", modelName)
	}

	node, err := formula.Parse(formulaText)
	if err != nil {
		return fmt.Errorf("parsing formula: %w", err)
	}

	result, err := eval.CheckValidity(ctx, node, model)
	if err != nil {
		return err
	}

	a.report(name, node, result)
	return nil
}
