package workspace

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dcruz/pltscheck/internal/config"
	"github.com/dcruz/pltscheck/internal/lattice"
	"github.com/dcruz/pltscheck/internal/twist"
)

// booleanDocument declares the full dependency chain over the two-element
// lattice: lattice, residuated lattice, twist structure, model and check.
func booleanDocument() *config.Document {
	return &config.Document{
		Lattices: []*config.LatticeDefinition{{
			Name:     "two",
			Elements: []string{"0", "1"},
			Order:    [][2]string{{"0", "1"}},
		}},
		ResiduatedLattices: []*config.ResiduatedLatticeDefinition{{
			Name:    "godel",
			Lattice: "two",
			Tensor: [][3]string{
				{"0", "0", "0"}, {"0", "1", "0"}, {"1", "1", "1"},
			},
		}},
		TwistStructures: []*config.TwistStructureDefinition{{
			Name:              "twist",
			ResiduatedLattice: "godel",
		}},
		Models: []*config.ModelDefinition{{
			Name:           "m",
			TwistStructure: "twist",
			Worlds: []*config.WorldDefinition{
				{ID: "w1", Valuation: map[string]config.Pair{"p": {"1", "0"}}},
				{ID: "w2", Valuation: map[string]config.Pair{"p": {"0", "1"}}},
			},
			Relations: []*config.RelationDefinition{
				{From: "w1", To: "w2", Action: "go", Weight: config.Pair{"1", "0"}},
			},
		}},
		Checks: []*config.CheckDefinition{{
			Name:    "diamond-p",
			Model:   "m",
			Formula: "<>_go p",
		}},
	}
}

func TestBuild(t *testing.T) {
	ctx := context.Background()

	t.Run("builds the whole dependency chain", func(t *testing.T) {
		ws, err := Build(ctx, booleanDocument())
		require.NoError(t, err)

		l, ok := ws.Lattice("two")
		require.True(t, ok)
		assert.Equal(t, "1", l.Top())

		r, ok := ws.ResiduatedLattice("godel")
		require.True(t, ok)
		got, err := r.Tensor("1", "0")
		require.NoError(t, err)
		assert.Equal(t, "0", got)

		ts, ok := ws.TwistStructure("twist")
		require.True(t, ok)
		assert.Len(t, ts.Elements(), 4)

		m, ok := ws.Model("m")
		require.True(t, ok)
		assert.Len(t, m.Worlds(), 2)
		assert.True(t, m.HasAction("go"))

		w, ok := m.World("w1")
		require.True(t, ok)
		value, ok := w.Value("p")
		require.True(t, ok)
		assert.Equal(t, twist.Pair{T: "1", F: "0"}, value)

		checks := ws.Checks()
		require.Len(t, checks, 1)
		assert.Equal(t, "diamond-p", checks[0].Name)
	})

	t.Run("empty document builds an empty workspace", func(t *testing.T) {
		ws, err := Build(ctx, &config.Document{})
		require.NoError(t, err)
		assert.Empty(t, ws.Checks())
	})

	t.Run("duplicate lattice name", func(t *testing.T) {
		doc := booleanDocument()
		doc.Lattices = append(doc.Lattices, doc.Lattices[0])

		_, err := Build(ctx, doc)
		assert.ErrorContains(t, err, `duplicate lattice definition "two"`)
	})

	t.Run("invalid lattice definition carries its typed error", func(t *testing.T) {
		doc := booleanDocument()
		doc.Lattices[0].Elements = nil

		_, err := Build(ctx, doc)
		var invalidErr *lattice.InvalidLatticeError
		require.ErrorAs(t, err, &invalidErr)
		assert.ErrorContains(t, err, `lattice "two"`)
	})

	t.Run("residuated lattice over unknown base", func(t *testing.T) {
		doc := booleanDocument()
		doc.ResiduatedLattices[0].Lattice = "missing"

		_, err := Build(ctx, doc)
		assert.ErrorContains(t, err, `references unknown lattice "missing"`)
	})

	t.Run("tensor that is not residuated carries its typed error", func(t *testing.T) {
		doc := booleanDocument()
		doc.ResiduatedLattices[0].Tensor = [][3]string{
			{"0", "0", "0"}, {"0", "1", "0"}, {"1", "1", "0"},
		}

		_, err := Build(ctx, doc)
		var notResErr *lattice.NotResiduatedError
		require.ErrorAs(t, err, &notResErr)
	})

	t.Run("twist structure over unknown residuated lattice", func(t *testing.T) {
		doc := booleanDocument()
		doc.TwistStructures[0].ResiduatedLattice = "missing"

		_, err := Build(ctx, doc)
		assert.ErrorContains(t, err, `references unknown residuated_lattice "missing"`)
	})

	t.Run("model over unknown twist structure", func(t *testing.T) {
		doc := booleanDocument()
		doc.Models[0].TwistStructure = "missing"

		_, err := Build(ctx, doc)
		assert.ErrorContains(t, err, `references unknown twist_structure "missing"`)
	})

	t.Run("model with a valuation outside the structure", func(t *testing.T) {
		doc := booleanDocument()
		doc.Models[0].Worlds[0].Valuation["p"] = config.Pair{"7", "0"}

		_, err := Build(ctx, doc)
		assert.ErrorContains(t, err, `model "m"`)
		assert.ErrorContains(t, err, "not an element")
	})

	t.Run("relation between unknown worlds", func(t *testing.T) {
		doc := booleanDocument()
		doc.Models[0].Relations[0].To = "missing"

		_, err := Build(ctx, doc)
		assert.ErrorContains(t, err, `unknown world "missing"`)
	})

	t.Run("check against unknown model", func(t *testing.T) {
		doc := booleanDocument()
		doc.Checks[0].Model = "missing"

		_, err := Build(ctx, doc)
		assert.ErrorContains(t, err, `references unknown model "missing"`)
	})

	t.Run("duplicate check name", func(t *testing.T) {
		doc := booleanDocument()
		doc.Checks = append(doc.Checks, doc.Checks[0])

		_, err := Build(ctx, doc)
		assert.ErrorContains(t, err, `duplicate check definition "diamond-p"`)
	})
}
