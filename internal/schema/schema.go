// Package schema declares the HCL shapes of workspace files. The structs
// here mirror the raw block syntax; translation into the format-agnostic
// config model lives in the hcl loader package.
package schema

import (
	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
)

// Lattice represents a `lattice "name" { ... }` block.
type Lattice struct {
	Name     string     `hcl:"name,label"`
	Elements []string   `hcl:"elements"`
	Order    [][]string `hcl:"order"`
}

// ResiduatedLattice represents a `residuated_lattice "name" { ... }` block.
// Tensor rows are (a, b, result) triples.
type ResiduatedLattice struct {
	Name    string     `hcl:"name,label"`
	Lattice string     `hcl:"lattice"`
	Tensor  [][]string `hcl:"tensor"`
}

// TwistStructure represents a `twist_structure "name" { ... }` block.
type TwistStructure struct {
	Name              string `hcl:"name,label"`
	ResiduatedLattice string `hcl:"residuated_lattice"`
}

// World represents a `world "id" { ... }` block nested in a model. The
// valuation is an object of [t, f] tuples, kept as a raw cty value until the
// loader validates its shape.
type World struct {
	ID        string    `hcl:"id,label"`
	Valuation cty.Value `hcl:"valuation,optional"`
}

// Relation represents a `relation { ... }` block nested in a model.
type Relation struct {
	From   string    `hcl:"from"`
	To     string    `hcl:"to"`
	Action string    `hcl:"action"`
	Weight cty.Value `hcl:"weight"`
}

// Model represents a `model "name" { ... }` block.
type Model struct {
	Name           string      `hcl:"name,label"`
	TwistStructure string      `hcl:"twist_structure"`
	Worlds         []*World    `hcl:"world,block"`
	Relations      []*Relation `hcl:"relation,block"`
}

// Check represents a `check "name" { ... }` block: a formula to verify over
// a named model.
type Check struct {
	Name    string `hcl:"name,label"`
	Model   string `hcl:"model"`
	Formula string `hcl:"formula"`
}

// Document represents the top-level structure of a workspace file. Any block
// type may appear in any file; the loader merges all files of a workspace.
type Document struct {
	Lattices           []*Lattice           `hcl:"lattice,block"`
	ResiduatedLattices []*ResiduatedLattice `hcl:"residuated_lattice,block"`
	TwistStructures    []*TwistStructure    `hcl:"twist_structure,block"`
	Models             []*Model             `hcl:"model,block"`
	Checks             []*Check             `hcl:"check,block"`
	Body               hcl.Body             `hcl:",remain"`
}
