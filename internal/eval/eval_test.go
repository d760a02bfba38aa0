package eval

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dcruz/pltscheck/internal/formula"
	"github.com/dcruz/pltscheck/internal/lattice"
	"github.com/dcruz/pltscheck/internal/plts"
	"github.com/dcruz/pltscheck/internal/twist"
)

// booleanTwist builds the twist structure over the two-element lattice with
// the meet tensor.
func booleanTwist(t *testing.T) *twist.Structure {
	t.Helper()
	l, err := lattice.New([]string{"0", "1"}, [][2]string{{"0", "1"}})
	require.NoError(t, err)
	r, err := lattice.Extend(l, [][3]string{
		{"0", "0", "0"}, {"0", "1", "0"}, {"1", "1", "1"},
	})
	require.NoError(t, err)
	s, err := twist.New(r)
	require.NoError(t, err)
	return s
}

func pair(tc, fc string) twist.Pair {
	return twist.Pair{T: tc, F: fc}
}

// twoWorldModel is w1 --go(weight)--> w2 with p valued at w2 only.
func twoWorldModel(t *testing.T, ts *twist.Structure, weight, p twist.Pair) *plts.Model {
	t.Helper()
	m, err := plts.NewModel(ts)
	require.NoError(t, err)
	require.NoError(t, m.AddWorld("w1", nil))
	require.NoError(t, m.AddWorld("w2", map[string]twist.Pair{"p": p}))
	require.NoError(t, m.AddRelation("w1", "w2", "go", weight))
	return m
}

func eval(t *testing.T, m *plts.Model, text, world string) twist.Pair {
	t.Helper()
	node, err := formula.Parse(text)
	require.NoError(t, err)
	value, err := Evaluate(node, m, world)
	require.NoError(t, err)
	return value
}

func TestEvaluate_Propositional(t *testing.T) {
	ts := booleanTwist(t)
	m, err := plts.NewModel(ts)
	require.NoError(t, err)
	require.NoError(t, m.AddWorld("w", map[string]twist.Pair{
		"p": pair("1", "0"),
		"q": pair("0", "1"),
		"b": pair("1", "1"),
		"n": pair("0", "0"),
	}))

	tests := []struct {
		formula string
		want    twist.Pair
	}{
		{"p", pair("1", "0")},
		{"1", pair("1", "0")},
		{"0", pair("0", "1")},
		{"~p", pair("0", "1")},
		{"~b", pair("1", "1")}, // inconsistent evidence is a negation fixpoint
		{"p & q", pair("0", "1")},
		{"p | q", pair("1", "0")},
		{"b & n", pair("0", "1")},
		{"b | n", pair("1", "0")},
		{"p => q", pair("0", "1")},
		{"q => p", pair("1", "0")},
		{"p -> q", pair("0", "1")},
		{"q -> p", pair("1", "0")},
		{"p <-> p", pair("1", "0")},
		{"p <-> q", pair("0", "1")},
		{"p & 1", pair("1", "0")}, // absolute true is the meet identity
		{"q | 0", pair("0", "1")}, // absolute false is the join identity
	}

	for _, tc := range tests {
		t.Run(tc.formula, func(t *testing.T) {
			assert.Equal(t, tc.want, eval(t, m, tc.formula, "w"))
		})
	}
}

func TestEvaluate_Modal(t *testing.T) {
	ts := booleanTwist(t)

	t.Run("true successor through a true edge", func(t *testing.T) {
		m := twoWorldModel(t, ts, pair("1", "0"), pair("1", "0"))

		assert.Equal(t, ts.AbsoluteTrue(), eval(t, m, "<>_go p", "w1"))
		assert.Equal(t, ts.AbsoluteTrue(), eval(t, m, "[]_go p", "w1"))
	})

	t.Run("false successor through a true edge", func(t *testing.T) {
		m := twoWorldModel(t, ts, pair("1", "0"), pair("0", "1"))

		assert.Equal(t, pair("0", "1"), eval(t, m, "<>_go p", "w1"))
		assert.Equal(t, pair("0", "1"), eval(t, m, "[]_go p", "w1"))
	})

	t.Run("vacuous modalities at a world without outgoing edges", func(t *testing.T) {
		m := twoWorldModel(t, ts, pair("1", "0"), pair("1", "0"))

		// w2 has no outgoing go edges, yet the action exists in the model.
		assert.Equal(t, ts.AbsoluteFalse(), eval(t, m, "<>_go p", "w2"))
		assert.Equal(t, ts.AbsoluteTrue(), eval(t, m, "[]_go p", "w2"))
	})

	t.Run("diamond joins over multiple successors", func(t *testing.T) {
		m, err := plts.NewModel(ts)
		require.NoError(t, err)
		require.NoError(t, m.AddWorld("w1", nil))
		require.NoError(t, m.AddWorld("w2", map[string]twist.Pair{"p": pair("0", "1")}))
		require.NoError(t, m.AddWorld("w3", map[string]twist.Pair{"p": pair("1", "0")}))
		require.NoError(t, m.AddRelation("w1", "w2", "go", pair("1", "0")))
		require.NoError(t, m.AddRelation("w1", "w3", "go", pair("1", "0")))

		// One reachable world satisfies p, so the diamond does too.
		assert.Equal(t, ts.AbsoluteTrue(), eval(t, m, "<>_go p", "w1"))
		// The box needs p at every successor and w2 fails it.
		assert.Equal(t, pair("0", "1"), eval(t, m, "[]_go p", "w1"))
	})

	t.Run("box discounts by the edge weight", func(t *testing.T) {
		// An edge with no evidence either way: [] p becomes the residuated
		// implication (0,0) => value of p.
		m := twoWorldModel(t, ts, pair("0", "0"), pair("0", "1"))

		assert.Equal(t, pair("1", "0"), eval(t, m, "[]_go p", "w1"))
		assert.Equal(t, pair("0", "1"), eval(t, m, "<>_go p", "w1"))
	})

	t.Run("nested modalities walk two steps", func(t *testing.T) {
		m, err := plts.NewModel(ts)
		require.NoError(t, err)
		require.NoError(t, m.AddWorld("w1", nil))
		require.NoError(t, m.AddWorld("w2", nil))
		require.NoError(t, m.AddWorld("w3", map[string]twist.Pair{"p": pair("1", "0")}))
		require.NoError(t, m.AddRelation("w1", "w2", "go", pair("1", "0")))
		require.NoError(t, m.AddRelation("w2", "w3", "go", pair("1", "0")))

		assert.Equal(t, ts.AbsoluteTrue(), eval(t, m, "<>_go <>_go p", "w1"))
	})
}

func TestEvaluate_Errors(t *testing.T) {
	ts := booleanTwist(t)
	m := twoWorldModel(t, ts, pair("1", "0"), pair("1", "0"))

	t.Run("unknown world", func(t *testing.T) {
		node, err := formula.Parse("p")
		require.NoError(t, err)

		_, err = Evaluate(node, m, "w9")
		var unknownErr *plts.UnknownWorldError
		require.ErrorAs(t, err, &unknownErr)
		assert.Equal(t, "w9", unknownErr.ID)
	})

	t.Run("proposition not valued at the world", func(t *testing.T) {
		node, err := formula.Parse("q")
		require.NoError(t, err)

		_, err = Evaluate(node, m, "w2")
		var atomErr *UndefinedAtomError
		require.ErrorAs(t, err, &atomErr)
		assert.Equal(t, "q", atomErr.Atom)
		assert.Equal(t, "w2", atomErr.World)
	})

	t.Run("undefined atom behind a modality names the successor", func(t *testing.T) {
		node, err := formula.Parse("<>_go q")
		require.NoError(t, err)

		_, err = Evaluate(node, m, "w1")
		var atomErr *UndefinedAtomError
		require.ErrorAs(t, err, &atomErr)
		assert.Equal(t, "q", atomErr.Atom)
		assert.Equal(t, "w2", atomErr.World)
	})

	t.Run("action no relation defines", func(t *testing.T) {
		node, err := formula.Parse("<>_fly p")
		require.NoError(t, err)

		_, err = Evaluate(node, m, "w1")
		var actionErr *UndefinedActionError
		require.ErrorAs(t, err, &actionErr)
		assert.Equal(t, "fly", actionErr.Action)
	})
}
