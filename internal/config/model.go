package config

// Pair is a twist element on the boundary: a [t, f] tuple of base-lattice
// element names.
type Pair [2]string

// Document is the unified, format-agnostic representation of a whole
// workspace: every definition the core can build, in file order.
type Document struct {
	Lattices           []*LatticeDefinition           `json:"lattices"`
	ResiduatedLattices []*ResiduatedLatticeDefinition `json:"residuatedLattices"`
	TwistStructures    []*TwistStructureDefinition    `json:"twistStructures"`
	Models             []*ModelDefinition             `json:"models"`
	Checks             []*CheckDefinition             `json:"checks"`
}

// LatticeDefinition declares a finite lattice by its elements and order
// pairs (a, b) meaning a ≤ b.
type LatticeDefinition struct {
	Name     string      `json:"name"`
	Elements []string    `json:"elements"`
	Order    [][2]string `json:"order"`
}

// ResiduatedLatticeDefinition extends a named lattice with a tensor table
// given as (a, b, result) triples.
type ResiduatedLatticeDefinition struct {
	Name    string      `json:"name"`
	Lattice string      `json:"lattice"`
	Tensor  [][3]string `json:"tensor"`
}

// TwistStructureDefinition derives the pair algebra of a named residuated
// lattice. The derived tables are recomputable, so the definition is just
// the reference.
type TwistStructureDefinition struct {
	Name              string `json:"name"`
	ResiduatedLattice string `json:"residuatedLattice"`
}

// WorldDefinition declares one world with its valuation.
type WorldDefinition struct {
	ID        string          `json:"id"`
	Valuation map[string]Pair `json:"valuation"`
}

// RelationDefinition declares one weighted, action-labelled transition.
type RelationDefinition struct {
	From   string `json:"from"`
	To     string `json:"to"`
	Action string `json:"action"`
	Weight Pair   `json:"weight"`
}

// ModelDefinition declares a PLTS model over a named twist structure.
type ModelDefinition struct {
	Name           string                `json:"name"`
	TwistStructure string                `json:"twistStructureRef"`
	Worlds         []*WorldDefinition    `json:"worlds"`
	Relations      []*RelationDefinition `json:"relations"`
}

// CheckDefinition is a formula evaluation request: parse the formula and
// check its validity over the named model.
type CheckDefinition struct {
	Name    string `json:"name"`
	Model   string `json:"modelRef"`
	Formula string `json:"formulaText"`
}

// CounterExampleResult is the boundary shape of one counter-example world.
type CounterExampleResult struct {
	World string `json:"world"`
	Value Pair   `json:"value"`
}

// CheckResult is the boundary shape of a validity-check outcome.
type CheckResult struct {
	Check           string                 `json:"check"`
	Valid           bool                   `json:"valid"`
	CounterExamples []CounterExampleResult `json:"counterExamples,omitempty"`
}
