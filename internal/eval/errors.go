package eval

import "fmt"

// UndefinedAtomError reports a formula referencing a proposition the world
// being evaluated does not value.
type UndefinedAtomError struct {
	Atom  string
	World string
}

func (e *UndefinedAtomError) Error() string {
	return fmt.Sprintf("proposition %q has no value in world %q", e.Atom, e.World)
}

// UndefinedActionError reports a modal operator whose action label is not
// used by any relation of the model. A world merely having no outgoing edges
// for a known action is not an error; it makes the modality vacuous.
type UndefinedActionError struct {
	Action string
}

func (e *UndefinedActionError) Error() string {
	return fmt.Sprintf("action %q is not defined by any relation of the model", e.Action)
}
