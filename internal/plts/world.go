package plts

import "github.com/dcruz/pltscheck/internal/twist"

// World is a single state of the model: an identifier plus a valuation
// mapping atomic propositions to twist elements. A valuation need not cover
// every proposition a formula may mention; absence is reported at evaluation
// time, not here.
type World struct {
	id        string
	valuation map[string]twist.Pair
}

// ID returns the world identifier.
func (w *World) ID() string { return w.id }

// Value returns the twist element assigned to prop, and whether the world
// values prop at all.
func (w *World) Value(prop string) (twist.Pair, bool) {
	v, ok := w.valuation[prop]
	return v, ok
}

// Propositions returns the propositions this world values, in no particular
// order.
func (w *World) Propositions() []string {
	props := make([]string, 0, len(w.valuation))
	for p := range w.valuation {
		props = append(props, p)
	}
	return props
}
