package lattice

import "fmt"

// InvalidLatticeError reports that an element/order definition does not form a
// valid lattice: a malformed partial order, a pair without a unique greatest
// lower or least upper bound, or a missing top or bottom element.
type InvalidLatticeError struct {
	Reason string
}

func (e *InvalidLatticeError) Error() string {
	return "invalid lattice: " + e.Reason
}

func invalidLattice(format string, args ...any) *InvalidLatticeError {
	return &InvalidLatticeError{Reason: fmt.Sprintf(format, args...)}
}

// NotResiduatedError reports that a tensor table cannot extend a lattice into
// a residuated lattice: the table is malformed, violates the monoid laws, or
// the adjunction law a⊗b ≤ c ⟺ a ≤ (b→c) is unsatisfiable.
type NotResiduatedError struct {
	Reason string
}

func (e *NotResiduatedError) Error() string {
	return "not a residuated lattice: " + e.Reason
}

func notResiduated(format string, args ...any) *NotResiduatedError {
	return &NotResiduatedError{Reason: fmt.Sprintf(format, args...)}
}
