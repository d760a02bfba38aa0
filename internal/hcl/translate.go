package hcl

import (
	"fmt"

	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"

	"github.com/dcruz/pltscheck/internal/config"
	"github.com/dcruz/pltscheck/internal/schema"
)

// translate appends every block of a decoded file to the workspace document,
// converting raw HCL shapes into the agnostic model.
func (l *Loader) translate(root *schema.Document, doc *config.Document) error {
	for _, lat := range root.Lattices {
		def, err := l.translateLattice(lat)
		if err != nil {
			return err
		}
		doc.Lattices = append(doc.Lattices, def)
	}
	for _, rl := range root.ResiduatedLattices {
		def, err := l.translateResiduatedLattice(rl)
		if err != nil {
			return err
		}
		doc.ResiduatedLattices = append(doc.ResiduatedLattices, def)
	}
	for _, ts := range root.TwistStructures {
		doc.TwistStructures = append(doc.TwistStructures, &config.TwistStructureDefinition{
			Name:              ts.Name,
			ResiduatedLattice: ts.ResiduatedLattice,
		})
	}
	for _, m := range root.Models {
		def, err := l.translateModel(m)
		if err != nil {
			return err
		}
		doc.Models = append(doc.Models, def)
	}
	for _, c := range root.Checks {
		doc.Checks = append(doc.Checks, &config.CheckDefinition{
			Name:    c.Name,
			Model:   c.Model,
			Formula: c.Formula,
		})
	}
	return nil
}

func (l *Loader) translateLattice(s *schema.Lattice) (*config.LatticeDefinition, error) {
	def := &config.LatticeDefinition{
		Name:     s.Name,
		Elements: s.Elements,
	}
	for i, row := range s.Order {
		if len(row) != 2 {
			return nil, fmt.Errorf("lattice %q: order row %d must be a [a, b] pair, got %d entries", s.Name, i, len(row))
		}
		def.Order = append(def.Order, [2]string{row[0], row[1]})
	}
	return def, nil
}

func (l *Loader) translateResiduatedLattice(s *schema.ResiduatedLattice) (*config.ResiduatedLatticeDefinition, error) {
	def := &config.ResiduatedLatticeDefinition{
		Name:    s.Name,
		Lattice: s.Lattice,
	}
	for i, row := range s.Tensor {
		if len(row) != 3 {
			return nil, fmt.Errorf("residuated_lattice %q: tensor row %d must be a [a, b, result] triple, got %d entries", s.Name, i, len(row))
		}
		def.Tensor = append(def.Tensor, [3]string{row[0], row[1], row[2]})
	}
	return def, nil
}

func (l *Loader) translateModel(s *schema.Model) (*config.ModelDefinition, error) {
	def := &config.ModelDefinition{
		Name:           s.Name,
		TwistStructure: s.TwistStructure,
	}
	for _, w := range s.Worlds {
		valuation, err := l.translateValuation(w.Valuation)
		if err != nil {
			return nil, fmt.Errorf("model %q, world %q: %w", s.Name, w.ID, err)
		}
		def.Worlds = append(def.Worlds, &config.WorldDefinition{ID: w.ID, Valuation: valuation})
	}
	for i, r := range s.Relations {
		weight, err := pairFromCty(r.Weight)
		if err != nil {
			return nil, fmt.Errorf("model %q, relation %d: weight: %w", s.Name, i, err)
		}
		def.Relations = append(def.Relations, &config.RelationDefinition{
			From:   r.From,
			To:     r.To,
			Action: r.Action,
			Weight: weight,
		})
	}
	return def, nil
}

// translateValuation turns the raw `valuation` object into proposition →
// pair assignments. A missing valuation is a legal empty one.
func (l *Loader) translateValuation(v cty.Value) (map[string]config.Pair, error) {
	valuation := make(map[string]config.Pair)
	if v == cty.NilVal || v.IsNull() {
		return valuation, nil
	}
	if !v.Type().IsObjectType() && !v.Type().IsMapType() {
		return nil, fmt.Errorf("valuation must be an object of [t, f] tuples, got %s", v.Type().FriendlyName())
	}
	for prop, raw := range v.AsValueMap() {
		pair, err := pairFromCty(raw)
		if err != nil {
			return nil, fmt.Errorf("valuation of %q: %w", prop, err)
		}
		valuation[prop] = pair
	}
	return valuation, nil
}

// pairFromCty extracts a [t, f] tuple. Elements are converted to string so
// bare numeric element names like 0 and 1 also work unquoted.
func pairFromCty(v cty.Value) (config.Pair, error) {
	if v == cty.NilVal || v.IsNull() {
		return config.Pair{}, fmt.Errorf("expected a [t, f] tuple, got nothing")
	}
	if !v.CanIterateElements() {
		return config.Pair{}, fmt.Errorf("expected a [t, f] tuple, got %s", v.Type().FriendlyName())
	}
	elems := v.AsValueSlice()
	if len(elems) != 2 {
		return config.Pair{}, fmt.Errorf("expected exactly 2 tuple entries, got %d", len(elems))
	}
	var pair config.Pair
	for i, elem := range elems {
		s, err := convert.Convert(elem, cty.String)
		if err != nil {
			return config.Pair{}, fmt.Errorf("tuple entry %d: %w", i, err)
		}
		pair[i] = s.AsString()
	}
	return pair, nil
}
