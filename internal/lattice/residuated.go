package lattice

// Residuated is a finite residuated lattice: a Lattice plus a commutative,
// associative tensor with the lattice top as identity, and the residuum
// derived from it. The adjunction law a⊗b ≤ c ⟺ a ≤ (b→c) holds for all
// triples; it is re-checked exhaustively at construction.
type Residuated struct {
	*Lattice
	tensor   [][]int
	residuum [][]int
}

// Extend builds a Residuated lattice from l and a tensor table given as
// (a, b, result) triples. The table must define every ordered element pair
// exactly once (triples for both (a,b) and (b,a) may be given as long as
// they agree). A non-nil error is always a *NotResiduatedError.
func Extend(l *Lattice, tensorTriples [][3]string) (*Residuated, error) {
	if l == nil {
		return nil, notResiduated("base lattice is nil")
	}

	n := len(l.elements)
	r := &Residuated{Lattice: l}
	r.tensor = make([][]int, n)
	for i := range r.tensor {
		r.tensor[i] = make([]int, n)
		for j := range r.tensor[i] {
			r.tensor[i][j] = -1
		}
	}

	for _, t := range tensorTriples {
		a, ok := l.index[t[0]]
		if !ok {
			return nil, notResiduated("tensor triple references unknown element %q", t[0])
		}
		b, ok := l.index[t[1]]
		if !ok {
			return nil, notResiduated("tensor triple references unknown element %q", t[1])
		}
		c, ok := l.index[t[2]]
		if !ok {
			return nil, notResiduated("tensor triple references unknown element %q", t[2])
		}
		if prev := r.tensor[a][b]; prev != -1 && prev != c {
			return nil, notResiduated("conflicting tensor entries for (%q, %q)", t[0], t[1])
		}
		r.tensor[a][b] = c
		// The tensor is commutative; accept a one-sided table.
		if prev := r.tensor[b][a]; prev != -1 && prev != c {
			return nil, notResiduated("tensor is not commutative on (%q, %q)", t[0], t[1])
		}
		r.tensor[b][a] = c
	}

	for a := 0; a < n; a++ {
		for b := 0; b < n; b++ {
			if r.tensor[a][b] == -1 {
				return nil, notResiduated("tensor is undefined for (%q, %q)", l.elements[a], l.elements[b])
			}
		}
	}

	if err := r.checkMonoid(); err != nil {
		return nil, err
	}
	if err := r.deriveResiduum(); err != nil {
		return nil, err
	}
	if err := r.checkAdjunction(); err != nil {
		return nil, err
	}
	return r, nil
}

// checkMonoid verifies associativity and that the lattice top is the tensor
// identity. Commutativity is enforced while the table is filled.
func (r *Residuated) checkMonoid() error {
	n := len(r.elements)
	for a := 0; a < n; a++ {
		if r.tensor[r.top][a] != a {
			return notResiduated("top is not a tensor identity: top ⊗ %q = %q", r.elements[a], r.elements[r.tensor[r.top][a]])
		}
		for b := 0; b < n; b++ {
			for c := 0; c < n; c++ {
				if r.tensor[r.tensor[a][b]][c] != r.tensor[a][r.tensor[b][c]] {
					return notResiduated("tensor is not associative on (%q, %q, %q)", r.elements[a], r.elements[b], r.elements[c])
				}
			}
		}
	}
	return nil
}

// deriveResiduum computes b→c as the maximum a with a⊗b ≤ c, brute force
// over all candidates. The maximum must exist for the adjunction law to be
// satisfiable.
func (r *Residuated) deriveResiduum() error {
	n := len(r.elements)
	r.residuum = make([][]int, n)
	for b := 0; b < n; b++ {
		r.residuum[b] = make([]int, n)
		for c := 0; c < n; c++ {
			var candidates []int
			for a := 0; a < n; a++ {
				if r.leq[r.tensor[a][b]][c] {
					candidates = append(candidates, a)
				}
			}
			max := -1
			for _, a := range candidates {
				greatest := true
				for _, other := range candidates {
					if !r.leq[other][a] {
						greatest = false
						break
					}
				}
				if greatest {
					max = a
					break
				}
			}
			if max == -1 {
				return notResiduated("no residuum exists for (%q, %q): the set {a : a ⊗ %q ≤ %q} has no maximum", r.elements[b], r.elements[c], r.elements[b], r.elements[c])
			}
			r.residuum[b][c] = max
		}
	}
	return nil
}

// checkAdjunction re-verifies a⊗b ≤ c ⟺ a ≤ (b→c) over all triples as a
// consistency guarantee on the derived table.
func (r *Residuated) checkAdjunction() error {
	n := len(r.elements)
	for a := 0; a < n; a++ {
		for b := 0; b < n; b++ {
			for c := 0; c < n; c++ {
				if r.leq[r.tensor[a][b]][c] != r.leq[a][r.residuum[b][c]] {
					return notResiduated("adjunction law fails on (%q, %q, %q)", r.elements[a], r.elements[b], r.elements[c])
				}
			}
		}
	}
	return nil
}

// Tensor returns a ⊗ b.
func (r *Residuated) Tensor(a, b string) (string, error) {
	i, j, err := r.pair(a, b)
	if err != nil {
		return "", err
	}
	return r.elements[r.tensor[i][j]], nil
}

// Residuum returns a → b, the residuum of the tensor.
func (r *Residuated) Residuum(a, b string) (string, error) {
	i, j, err := r.pair(a, b)
	if err != nil {
		return "", err
	}
	return r.elements[r.residuum[i][j]], nil
}
