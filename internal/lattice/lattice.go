package lattice

import "fmt"

// Lattice is a finite lattice over named elements. It is immutable once
// constructed; all operations are table lookups.
type Lattice struct {
	elements []string
	index    map[string]int
	leq      [][]bool
	meet     [][]int
	join     [][]int
	top      int
	bottom   int
}

// New builds a Lattice from a list of elements and a set of order pairs
// (a, b) meaning a ≤ b. The reflexive-transitive closure of the pairs is
// taken first; the closure must be antisymmetric and every element pair must
// have a unique greatest lower bound and least upper bound. A non-nil error
// is always an *InvalidLatticeError.
func New(elements []string, order [][2]string) (*Lattice, error) {
	if len(elements) == 0 {
		return nil, invalidLattice("element set is empty")
	}

	l := &Lattice{
		elements: append([]string(nil), elements...),
		index:    make(map[string]int, len(elements)),
	}
	for i, name := range l.elements {
		if name == "" {
			return nil, invalidLattice("element name at position %d is empty", i)
		}
		if _, ok := l.index[name]; ok {
			return nil, invalidLattice("duplicate element %q", name)
		}
		l.index[name] = i
	}

	n := len(l.elements)
	l.leq = make([][]bool, n)
	for i := range l.leq {
		l.leq[i] = make([]bool, n)
		l.leq[i][i] = true
	}
	for _, pair := range order {
		a, ok := l.index[pair[0]]
		if !ok {
			return nil, invalidLattice("order pair references unknown element %q", pair[0])
		}
		b, ok := l.index[pair[1]]
		if !ok {
			return nil, invalidLattice("order pair references unknown element %q", pair[1])
		}
		l.leq[a][b] = true
	}

	l.close()
	if err := l.checkAntisymmetry(); err != nil {
		return nil, err
	}
	if err := l.deriveBounds(); err != nil {
		return nil, err
	}
	if err := l.deriveTables(); err != nil {
		return nil, err
	}
	return l, nil
}

// close computes the transitive closure of the order relation in place.
func (l *Lattice) close() {
	n := len(l.elements)
	for k := 0; k < n; k++ {
		for i := 0; i < n; i++ {
			if !l.leq[i][k] {
				continue
			}
			for j := 0; j < n; j++ {
				if l.leq[k][j] {
					l.leq[i][j] = true
				}
			}
		}
	}
}

// checkAntisymmetry rejects orders where two distinct elements are mutually
// comparable. Such a pair is a cycle in the strict order.
func (l *Lattice) checkAntisymmetry() error {
	for i := range l.elements {
		for j := i + 1; j < len(l.elements); j++ {
			if l.leq[i][j] && l.leq[j][i] {
				return invalidLattice("order is not antisymmetric: %q and %q are mutually comparable", l.elements[i], l.elements[j])
			}
		}
	}
	return nil
}

// deriveBounds locates the unique top and bottom elements.
func (l *Lattice) deriveBounds() error {
	l.top = -1
	l.bottom = -1
	for i := range l.elements {
		greatest, least := true, true
		for j := range l.elements {
			if !l.leq[j][i] {
				greatest = false
			}
			if !l.leq[i][j] {
				least = false
			}
		}
		if greatest {
			l.top = i
		}
		if least {
			l.bottom = i
		}
	}
	if l.top == -1 {
		return invalidLattice("no unique top element")
	}
	if l.bottom == -1 {
		return invalidLattice("no unique bottom element")
	}
	return nil
}

// deriveTables computes the meet and join table for every element pair by
// scanning all elements for the best common bound.
func (l *Lattice) deriveTables() error {
	n := len(l.elements)
	l.meet = make([][]int, n)
	l.join = make([][]int, n)
	for i := 0; i < n; i++ {
		l.meet[i] = make([]int, n)
		l.join[i] = make([]int, n)
		for j := 0; j < n; j++ {
			glb, err := l.boundOf(i, j, true)
			if err != nil {
				return err
			}
			lub, err := l.boundOf(i, j, false)
			if err != nil {
				return err
			}
			l.meet[i][j] = glb
			l.join[i][j] = lub
		}
	}
	return nil
}

// boundOf returns the greatest lower bound (lower=true) or least upper bound
// (lower=false) of elements i and j, or an error when no such unique bound
// exists.
func (l *Lattice) boundOf(i, j int, lower bool) (int, error) {
	var bounds []int
	for x := range l.elements {
		if lower && l.leq[x][i] && l.leq[x][j] {
			bounds = append(bounds, x)
		}
		if !lower && l.leq[i][x] && l.leq[j][x] {
			bounds = append(bounds, x)
		}
	}
	for _, x := range bounds {
		best := true
		for _, y := range bounds {
			if lower && !l.leq[y][x] {
				best = false
				break
			}
			if !lower && !l.leq[x][y] {
				best = false
				break
			}
		}
		if best {
			return x, nil
		}
	}
	kind := "greatest lower"
	if !lower {
		kind = "least upper"
	}
	return 0, invalidLattice("elements %q and %q have no unique %s bound", l.elements[i], l.elements[j], kind)
}

// Elements returns the elements in their original definition order.
func (l *Lattice) Elements() []string {
	return append([]string(nil), l.elements...)
}

// Contains reports whether name is an element of the lattice.
func (l *Lattice) Contains(name string) bool {
	_, ok := l.index[name]
	return ok
}

// Top returns the greatest element.
func (l *Lattice) Top() string { return l.elements[l.top] }

// Bottom returns the least element.
func (l *Lattice) Bottom() string { return l.elements[l.bottom] }

// Leq reports whether a ≤ b in the lattice order.
func (l *Lattice) Leq(a, b string) (bool, error) {
	i, j, err := l.pair(a, b)
	if err != nil {
		return false, err
	}
	return l.leq[i][j], nil
}

// Meet returns the greatest lower bound of a and b.
func (l *Lattice) Meet(a, b string) (string, error) {
	i, j, err := l.pair(a, b)
	if err != nil {
		return "", err
	}
	return l.elements[l.meet[i][j]], nil
}

// Join returns the least upper bound of a and b.
func (l *Lattice) Join(a, b string) (string, error) {
	i, j, err := l.pair(a, b)
	if err != nil {
		return "", err
	}
	return l.elements[l.join[i][j]], nil
}

func (l *Lattice) pair(a, b string) (int, int, error) {
	i, ok := l.index[a]
	if !ok {
		return 0, 0, fmt.Errorf("unknown lattice element %q", a)
	}
	j, ok := l.index[b]
	if !ok {
		return 0, 0, fmt.Errorf("unknown lattice element %q", b)
	}
	return i, j, nil
}
