// Package lattice implements finite lattices and residuated lattices over
// named elements.
//
// A Lattice is built from an element list and a set of order pairs. The
// constructor takes the reflexive-transitive closure of the pairs, verifies
// the result is a valid partial order, and derives the meet and join tables
// by exhaustive bound scanning. A Residuated lattice extends a Lattice with a
// commutative monoidal tensor whose identity is the lattice top, and derives
// the residuum table from it.
//
// All structures are validated at construction and immutable afterwards, so
// they are safe to share across models and concurrent evaluations without
// locking.
package lattice
