package eval

import (
	"fmt"

	"github.com/dcruz/pltscheck/internal/formula"
	"github.com/dcruz/pltscheck/internal/plts"
	"github.com/dcruz/pltscheck/internal/twist"
)

// Evaluate computes the twist-element value of a formula at one world of the
// model. Errors are *plts.UnknownWorldError, *UndefinedAtomError or
// *UndefinedActionError; any of them aborts just this call.
func Evaluate(node formula.Node, model *plts.Model, worldID string) (twist.Pair, error) {
	world, ok := model.World(worldID)
	if !ok {
		return twist.Pair{}, &plts.UnknownWorldError{ID: worldID}
	}
	return evaluate(node, model, world)
}

func evaluate(node formula.Node, model *plts.Model, world *plts.World) (twist.Pair, error) {
	ts := model.Structure()

	switch n := node.(type) {
	case formula.Atom:
		value, ok := world.Value(n.Name)
		if !ok {
			return twist.Pair{}, &UndefinedAtomError{Atom: n.Name, World: world.ID()}
		}
		return value, nil

	case formula.Top:
		return ts.AbsoluteTrue(), nil

	case formula.Bottom:
		return ts.AbsoluteFalse(), nil

	case formula.Not:
		value, err := evaluate(n.Operand, model, world)
		if err != nil {
			return twist.Pair{}, err
		}
		return ts.Negation(value)

	case formula.And:
		left, right, err := evaluatePair(n.Left, n.Right, model, world)
		if err != nil {
			return twist.Pair{}, err
		}
		return ts.Meet(left, right)

	case formula.Or:
		left, right, err := evaluatePair(n.Left, n.Right, model, world)
		if err != nil {
			return twist.Pair{}, err
		}
		return ts.Join(left, right)

	case formula.Strong:
		left, right, err := evaluatePair(n.Left, n.Right, model, world)
		if err != nil {
			return twist.Pair{}, err
		}
		return ts.Implies(left, right)

	case formula.Implies:
		// Material implication: ~φ | ψ.
		left, right, err := evaluatePair(n.Left, n.Right, model, world)
		if err != nil {
			return twist.Pair{}, err
		}
		return material(ts, left, right)

	case formula.Iff:
		// Material equivalence: (φ -> ψ) & (ψ -> φ).
		left, right, err := evaluatePair(n.Left, n.Right, model, world)
		if err != nil {
			return twist.Pair{}, err
		}
		forward, err := material(ts, left, right)
		if err != nil {
			return twist.Pair{}, err
		}
		backward, err := material(ts, right, left)
		if err != nil {
			return twist.Pair{}, err
		}
		return ts.Meet(forward, backward)

	case formula.Diamond:
		return modal(n.Operand, n.Action, model, world, false)

	case formula.Box:
		return modal(n.Operand, n.Action, model, world, true)
	}

	return twist.Pair{}, fmt.Errorf("unsupported formula node %T", node)
}

func evaluatePair(left, right formula.Node, model *plts.Model, world *plts.World) (twist.Pair, twist.Pair, error) {
	l, err := evaluate(left, model, world)
	if err != nil {
		return twist.Pair{}, twist.Pair{}, err
	}
	r, err := evaluate(right, model, world)
	if err != nil {
		return twist.Pair{}, twist.Pair{}, err
	}
	return l, r, nil
}

func material(ts *twist.Structure, left, right twist.Pair) (twist.Pair, error) {
	negated, err := ts.Negation(left)
	if err != nil {
		return twist.Pair{}, err
	}
	return ts.Join(negated, right)
}

// modal aggregates the operand's value over the world's outgoing transitions
// for the action, in insertion order. With no outgoing transitions the
// modality is vacuous: absolute false for diamond, absolute true for box. An
// action label no relation of the model ever uses is an error instead.
func modal(operand formula.Node, action string, model *plts.Model, world *plts.World, box bool) (twist.Pair, error) {
	if !model.HasAction(action) {
		return twist.Pair{}, &UndefinedActionError{Action: action}
	}

	ts := model.Structure()
	targets := model.Targets(world.ID(), action)
	if len(targets) == 0 {
		if box {
			return ts.AbsoluteTrue(), nil
		}
		return ts.AbsoluteFalse(), nil
	}

	var acc twist.Pair
	for i, target := range targets {
		successor, ok := model.World(target.World)
		if !ok {
			// Relations are validated on insertion, so this is unreachable
			// on a consistent model.
			return twist.Pair{}, &plts.UnknownWorldError{ID: target.World}
		}
		value, err := evaluate(operand, model, successor)
		if err != nil {
			return twist.Pair{}, err
		}

		var step twist.Pair
		if box {
			step, err = ts.Implies(target.Weight, value)
		} else {
			step, err = ts.Meet(target.Weight, value)
		}
		if err != nil {
			return twist.Pair{}, err
		}

		if i == 0 {
			acc = step
			continue
		}
		if box {
			acc, err = ts.Meet(acc, step)
		} else {
			acc, err = ts.Join(acc, step)
		}
		if err != nil {
			return twist.Pair{}, err
		}
	}
	return acc, nil
}
