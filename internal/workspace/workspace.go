package workspace

import (
	"github.com/dcruz/pltscheck/internal/config"
	"github.com/dcruz/pltscheck/internal/lattice"
	"github.com/dcruz/pltscheck/internal/plts"
	"github.com/dcruz/pltscheck/internal/twist"
)

// Workspace holds every object built from a definition document, addressable
// by definition name.
type Workspace struct {
	lattices   map[string]*lattice.Lattice
	residuated map[string]*lattice.Residuated
	twists     map[string]*twist.Structure
	models     map[string]*plts.Model
	checks     []*config.CheckDefinition
}

// Lattice looks up a built lattice by name.
func (w *Workspace) Lattice(name string) (*lattice.Lattice, bool) {
	l, ok := w.lattices[name]
	return l, ok
}

// ResiduatedLattice looks up a built residuated lattice by name.
func (w *Workspace) ResiduatedLattice(name string) (*lattice.Residuated, bool) {
	r, ok := w.residuated[name]
	return r, ok
}

// TwistStructure looks up a generated twist structure by name.
func (w *Workspace) TwistStructure(name string) (*twist.Structure, bool) {
	t, ok := w.twists[name]
	return t, ok
}

// Model looks up a built model by name.
func (w *Workspace) Model(name string) (*plts.Model, bool) {
	m, ok := w.models[name]
	return m, ok
}

// Checks returns the check definitions in document order.
func (w *Workspace) Checks() []*config.CheckDefinition {
	return append([]*config.CheckDefinition(nil), w.checks...)
}
