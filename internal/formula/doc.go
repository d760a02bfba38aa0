// Package formula tokenizes and parses modal formulas into an immutable
// abstract syntax tree.
//
// The grammar, from highest to lowest precedence:
//
//	atoms, the constants 1 and 0, parenthesized formulas
//	~φ, []_a φ, <>_a φ        (unary; modal operators require an action label)
//	φ & ψ                     (weak meet)
//	φ | ψ                     (weak join)
//	φ => ψ                    (residuated implication)
//	φ -> ψ                    (material implication)
//	φ <-> ψ                   (material equivalence)
//
// Binary operators associate to the left. Parsing is a pure function from
// text to AST: no model or algebra is consulted, so one parsed formula can be
// evaluated against any number of models.
package formula
