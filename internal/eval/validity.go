package eval

import (
	"context"

	"github.com/google/uuid"

	"github.com/dcruz/pltscheck/internal/ctxlog"
	"github.com/dcruz/pltscheck/internal/formula"
	"github.com/dcruz/pltscheck/internal/plts"
	"github.com/dcruz/pltscheck/internal/twist"
)

// CounterExample is a world whose value for the checked formula is not
// absolute true.
type CounterExample struct {
	World string
	Value twist.Pair
}

// Result is the outcome of a validity check. RunID identifies the check run
// in logs and reports. CounterExamples is empty exactly when Valid is true,
// and otherwise lists the offending worlds in the model's world insertion
// order.
type Result struct {
	RunID           string
	Valid           bool
	CounterExamples []CounterExample
}

// CheckValidity evaluates the formula at every world of the model. The
// formula is valid iff it evaluates to absolute true everywhere; otherwise
// the result carries the counter-example worlds with their actual values. An
// evaluation error at any world aborts the whole check.
func CheckValidity(ctx context.Context, node formula.Node, model *plts.Model) (*Result, error) {
	logger := ctxlog.FromContext(ctx)

	result := &Result{
		RunID: uuid.NewString(),
		Valid: true,
	}
	truth := model.Structure().AbsoluteTrue()

	for _, world := range model.Worlds() {
		value, err := evaluate(node, model, world)
		if err != nil {
			return nil, err
		}
		if value != truth {
			result.Valid = false
			result.CounterExamples = append(result.CounterExamples, CounterExample{
				World: world.ID(),
				Value: value,
			})
		}
		logger.Debug("world evaluated", "run_id", result.RunID, "world", world.ID(), "value", value.String())
	}

	logger.Debug("validity check finished",
		"run_id", result.RunID,
		"valid", result.Valid,
		"counter_examples", len(result.CounterExamples),
	)
	return result, nil
}
