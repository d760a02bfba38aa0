// Package twist implements twist structures: the pair algebra A² derived
// from a finite residuated lattice. A pair (t, f) carries independent
// evidence for and evidence against, which is what makes the resulting
// semantics paraconsistent.
package twist

import (
	"fmt"

	"github.com/dcruz/pltscheck/internal/lattice"
)

// Pair is a single twist element: evidence for (T) and against (F), both
// elements of the generating residuated lattice.
type Pair struct {
	T string
	F string
}

// String renders the pair in the conventional (t,f) notation.
func (p Pair) String() string {
	return "(" + p.T + "," + p.F + ")"
}

// Structure is the twist structure A² over a residuated lattice. It holds a
// reference to its generating lattice and derives every pair operation from
// the lattice's tables; it is immutable and safe for concurrent use.
type Structure struct {
	rl       *lattice.Residuated
	elements []Pair
	member   map[Pair]struct{}
	truth    Pair
	falsity  Pair
}

// New generates the twist structure of rl. The element enumeration is
// deterministic: pairs are listed in base-element order, the evidence-for
// component varying slowest.
func New(rl *lattice.Residuated) (*Structure, error) {
	if rl == nil {
		return nil, fmt.Errorf("residuated lattice is nil")
	}

	base := rl.Elements()
	s := &Structure{
		rl:       rl,
		elements: make([]Pair, 0, len(base)*len(base)),
		member:   make(map[Pair]struct{}, len(base)*len(base)),
		truth:    Pair{T: rl.Top(), F: rl.Bottom()},
		falsity:  Pair{T: rl.Bottom(), F: rl.Top()},
	}
	for _, t := range base {
		for _, f := range base {
			p := Pair{T: t, F: f}
			s.elements = append(s.elements, p)
			s.member[p] = struct{}{}
		}
	}
	return s, nil
}

// Residuated returns the generating residuated lattice.
func (s *Structure) Residuated() *lattice.Residuated { return s.rl }

// Elements returns all |E|² pairs in enumeration order.
func (s *Structure) Elements() []Pair {
	return append([]Pair(nil), s.elements...)
}

// Contains reports whether p is an element of the structure.
func (s *Structure) Contains(p Pair) bool {
	_, ok := s.member[p]
	return ok
}

// AbsoluteTrue returns (top, bottom).
func (s *Structure) AbsoluteTrue() Pair { return s.truth }

// AbsoluteFalse returns (bottom, top).
func (s *Structure) AbsoluteFalse() Pair { return s.falsity }

// Leq reports whether p ≤ q in the twist (truth) order:
// (t1,f1) ≤ (t2,f2) ⟺ t1 ≤ t2 and f2 ≤ f1.
func (s *Structure) Leq(p, q Pair) (bool, error) {
	if err := s.check(p, q); err != nil {
		return false, err
	}
	t, err := s.rl.Leq(p.T, q.T)
	if err != nil {
		return false, err
	}
	f, err := s.rl.Leq(q.F, p.F)
	if err != nil {
		return false, err
	}
	return t && f, nil
}

// Meet returns (t1∧t2, f1∨f2), the weak meet of p and q.
func (s *Structure) Meet(p, q Pair) (Pair, error) {
	if err := s.check(p, q); err != nil {
		return Pair{}, err
	}
	t, err := s.rl.Meet(p.T, q.T)
	if err != nil {
		return Pair{}, err
	}
	f, err := s.rl.Join(p.F, q.F)
	if err != nil {
		return Pair{}, err
	}
	return Pair{T: t, F: f}, nil
}

// Join returns (t1∨t2, f1∧f2), the weak join of p and q.
func (s *Structure) Join(p, q Pair) (Pair, error) {
	if err := s.check(p, q); err != nil {
		return Pair{}, err
	}
	t, err := s.rl.Join(p.T, q.T)
	if err != nil {
		return Pair{}, err
	}
	f, err := s.rl.Meet(p.F, q.F)
	if err != nil {
		return Pair{}, err
	}
	return Pair{T: t, F: f}, nil
}

// Negation swaps the evidence components: ¬(t,f) = (f,t). It is an
// involution.
func (s *Structure) Negation(p Pair) (Pair, error) {
	if !s.Contains(p) {
		return Pair{}, s.notMember(p)
	}
	return Pair{T: p.F, F: p.T}, nil
}

// Implies returns the residuated implication (t1→t2, t1⊗f2).
func (s *Structure) Implies(p, q Pair) (Pair, error) {
	if err := s.check(p, q); err != nil {
		return Pair{}, err
	}
	t, err := s.rl.Residuum(p.T, q.T)
	if err != nil {
		return Pair{}, err
	}
	f, err := s.rl.Tensor(p.T, q.F)
	if err != nil {
		return Pair{}, err
	}
	return Pair{T: t, F: f}, nil
}

func (s *Structure) check(p, q Pair) error {
	if !s.Contains(p) {
		return s.notMember(p)
	}
	if !s.Contains(q) {
		return s.notMember(q)
	}
	return nil
}

func (s *Structure) notMember(p Pair) error {
	return fmt.Errorf("pair %s is not an element of the twist structure", p)
}
