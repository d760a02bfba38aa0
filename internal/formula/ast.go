package formula

import "fmt"

// Node is a formula AST node. Nodes are immutable after parsing; String
// pretty-prints the subtree with only the parentheses the grammar requires,
// so parsing the result yields a structurally identical tree.
type Node interface {
	fmt.Stringer
	// precedence is the binding strength of the node's top operator; higher
	// binds tighter. Used by String to decide parenthesization.
	precedence() int
}

// Atom is an atomic proposition reference.
type Atom struct {
	Name string
}

// Top is the constant 1, evaluating to absolute true.
type Top struct{}

// Bottom is the constant 0, evaluating to absolute false.
type Bottom struct{}

// Not is the paraconsistent negation ~φ.
type Not struct {
	Operand Node
}

// Box is the action-indexed necessity operator []_a φ.
type Box struct {
	Action  string
	Operand Node
}

// Diamond is the action-indexed possibility operator <>_a φ.
type Diamond struct {
	Action  string
	Operand Node
}

// And is the weak meet φ & ψ.
type And struct {
	Left, Right Node
}

// Or is the weak join φ | ψ.
type Or struct {
	Left, Right Node
}

// Strong is the residuated implication φ => ψ.
type Strong struct {
	Left, Right Node
}

// Implies is the material implication φ -> ψ, shorthand for ~φ | ψ.
type Implies struct {
	Left, Right Node
}

// Iff is the material equivalence φ <-> ψ.
type Iff struct {
	Left, Right Node
}

const (
	precIff = iota + 1
	precImplies
	precStrong
	precOr
	precAnd
	precUnary
	precAtom
)

func (Atom) precedence() int    { return precAtom }
func (Top) precedence() int     { return precAtom }
func (Bottom) precedence() int  { return precAtom }
func (Not) precedence() int     { return precUnary }
func (Box) precedence() int     { return precUnary }
func (Diamond) precedence() int { return precUnary }
func (And) precedence() int     { return precAnd }
func (Or) precedence() int      { return precOr }
func (Strong) precedence() int  { return precStrong }
func (Implies) precedence() int { return precImplies }
func (Iff) precedence() int     { return precIff }

func (n Atom) String() string    { return n.Name }
func (Top) String() string       { return "1" }
func (Bottom) String() string    { return "0" }
func (n Not) String() string     { return "~" + wrapUnary(n.Operand) }
func (n Box) String() string     { return "[]_" + n.Action + " " + wrapUnary(n.Operand) }
func (n Diamond) String() string { return "<>_" + n.Action + " " + wrapUnary(n.Operand) }
func (n And) String() string     { return binary(n.Left, "&", n.Right, precAnd) }
func (n Or) String() string      { return binary(n.Left, "|", n.Right, precOr) }
func (n Strong) String() string  { return binary(n.Left, "=>", n.Right, precStrong) }
func (n Implies) String() string { return binary(n.Left, "->", n.Right, precImplies) }
func (n Iff) String() string     { return binary(n.Left, "<->", n.Right, precIff) }

// wrapUnary parenthesizes operands that bind looser than a unary operator.
func wrapUnary(child Node) string {
	if child.precedence() < precUnary {
		return "(" + child.String() + ")"
	}
	return child.String()
}

// binary renders a left-associative binary node: the right child needs
// parentheses at equal precedence, the left child only below it.
func binary(left Node, op string, right Node, prec int) string {
	ls := left.String()
	if left.precedence() < prec {
		ls = "(" + ls + ")"
	}
	rs := right.String()
	if right.precedence() <= prec {
		rs = "(" + rs + ")"
	}
	return ls + " " + op + " " + rs
}

// Atoms returns the atomic propositions referenced by the formula in first
// appearance order, without duplicates. Constants contribute nothing.
func Atoms(n Node) []string {
	var out []string
	seen := make(map[string]struct{})
	var walk func(Node)
	walk = func(n Node) {
		switch v := n.(type) {
		case Atom:
			if _, ok := seen[v.Name]; !ok {
				seen[v.Name] = struct{}{}
				out = append(out, v.Name)
			}
		case Not:
			walk(v.Operand)
		case Box:
			walk(v.Operand)
		case Diamond:
			walk(v.Operand)
		case And:
			walk(v.Left)
			walk(v.Right)
		case Or:
			walk(v.Left)
			walk(v.Right)
		case Strong:
			walk(v.Left)
			walk(v.Right)
		case Implies:
			walk(v.Left)
			walk(v.Right)
		case Iff:
			walk(v.Left)
			walk(v.Right)
		}
	}
	walk(n)
	return out
}
