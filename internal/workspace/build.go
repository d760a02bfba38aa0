package workspace

import (
	"context"
	"fmt"

	"github.com/dcruz/pltscheck/internal/config"
	"github.com/dcruz/pltscheck/internal/ctxlog"
	"github.com/dcruz/pltscheck/internal/lattice"
	"github.com/dcruz/pltscheck/internal/plts"
	"github.com/dcruz/pltscheck/internal/twist"
)

// Build constructs every object in the document. Duplicate definition names,
// dangling references and construction failures abort the build; no partial
// workspace is returned.
func Build(ctx context.Context, doc *config.Document) (*Workspace, error) {
	logger := ctxlog.FromContext(ctx)

	w := &Workspace{
		lattices:   make(map[string]*lattice.Lattice),
		residuated: make(map[string]*lattice.Residuated),
		twists:     make(map[string]*twist.Structure),
		models:     make(map[string]*plts.Model),
	}

	for _, def := range doc.Lattices {
		if _, ok := w.lattices[def.Name]; ok {
			return nil, fmt.Errorf("duplicate lattice definition %q", def.Name)
		}
		l, err := lattice.New(def.Elements, def.Order)
		if err != nil {
			return nil, fmt.Errorf("lattice %q: %w", def.Name, err)
		}
		w.lattices[def.Name] = l
		logger.Debug("lattice built", "name", def.Name, "elements", len(def.Elements))
	}

	for _, def := range doc.ResiduatedLattices {
		if _, ok := w.residuated[def.Name]; ok {
			return nil, fmt.Errorf("duplicate residuated_lattice definition %q", def.Name)
		}
		base, ok := w.lattices[def.Lattice]
		if !ok {
			return nil, fmt.Errorf("residuated_lattice %q references unknown lattice %q", def.Name, def.Lattice)
		}
		r, err := lattice.Extend(base, def.Tensor)
		if err != nil {
			return nil, fmt.Errorf("residuated_lattice %q: %w", def.Name, err)
		}
		w.residuated[def.Name] = r
		logger.Debug("residuated lattice built", "name", def.Name)
	}

	for _, def := range doc.TwistStructures {
		if _, ok := w.twists[def.Name]; ok {
			return nil, fmt.Errorf("duplicate twist_structure definition %q", def.Name)
		}
		rl, ok := w.residuated[def.ResiduatedLattice]
		if !ok {
			return nil, fmt.Errorf("twist_structure %q references unknown residuated_lattice %q", def.Name, def.ResiduatedLattice)
		}
		ts, err := twist.New(rl)
		if err != nil {
			return nil, fmt.Errorf("twist_structure %q: %w", def.Name, err)
		}
		w.twists[def.Name] = ts
		logger.Debug("twist structure generated", "name", def.Name, "pairs", len(ts.Elements()))
	}

	for _, def := range doc.Models {
		if _, ok := w.models[def.Name]; ok {
			return nil, fmt.Errorf("duplicate model definition %q", def.Name)
		}
		m, err := buildModel(def, w.twists)
		if err != nil {
			return nil, err
		}
		w.models[def.Name] = m
		logger.Debug("model built", "name", def.Name, "worlds", len(def.Worlds), "relations", len(def.Relations))
	}

	seen := make(map[string]struct{}, len(doc.Checks))
	for _, def := range doc.Checks {
		if _, ok := seen[def.Name]; ok {
			return nil, fmt.Errorf("duplicate check definition %q", def.Name)
		}
		if _, ok := w.models[def.Model]; !ok {
			return nil, fmt.Errorf("check %q references unknown model %q", def.Name, def.Model)
		}
		seen[def.Name] = struct{}{}
		w.checks = append(w.checks, def)
	}

	return w, nil
}

func buildModel(def *config.ModelDefinition, twists map[string]*twist.Structure) (*plts.Model, error) {
	ts, ok := twists[def.TwistStructure]
	if !ok {
		return nil, fmt.Errorf("model %q references unknown twist_structure %q", def.Name, def.TwistStructure)
	}
	m, err := plts.NewModel(ts)
	if err != nil {
		return nil, fmt.Errorf("model %q: %w", def.Name, err)
	}
	for _, world := range def.Worlds {
		valuation := make(map[string]twist.Pair, len(world.Valuation))
		for prop, pair := range world.Valuation {
			valuation[prop] = twist.Pair{T: pair[0], F: pair[1]}
		}
		if err := m.AddWorld(world.ID, valuation); err != nil {
			return nil, fmt.Errorf("model %q: %w", def.Name, err)
		}
	}
	for _, rel := range def.Relations {
		weight := twist.Pair{T: rel.Weight[0], F: rel.Weight[1]}
		if err := m.AddRelation(rel.From, rel.To, rel.Action, weight); err != nil {
			return nil, fmt.Errorf("model %q: %w", def.Name, err)
		}
	}
	return m, nil
}
