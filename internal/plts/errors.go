package plts

import (
	"fmt"

	"github.com/dcruz/pltscheck/internal/twist"
)

// DuplicateWorldError reports an attempt to add a world whose identifier is
// already present in the model.
type DuplicateWorldError struct {
	ID string
}

func (e *DuplicateWorldError) Error() string {
	return fmt.Sprintf("world %q already exists in the model", e.ID)
}

// UnknownWorldError reports a reference to a world identifier the model does
// not contain.
type UnknownWorldError struct {
	ID string
}

func (e *UnknownWorldError) Error() string {
	return fmt.Sprintf("unknown world %q", e.ID)
}

// TypeMismatchError reports a valuation value or relation weight that is not
// an element of the model's twist structure.
type TypeMismatchError struct {
	Value twist.Pair
	Where string
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("value %s is not an element of the model's twist structure (%s)", e.Value, e.Where)
}
