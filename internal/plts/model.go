package plts

import (
	"fmt"

	"github.com/dcruz/pltscheck/internal/twist"
)

// Target is one endpoint of a weighted transition: the destination world and
// the twist element expressing the evidence for the transition holding.
type Target struct {
	World  string
	Weight twist.Pair
}

type relationKey struct {
	from   string
	action string
}

// Model is a paraconsistent labelled transition system over a single twist
// structure.
type Model struct {
	ts        *twist.Structure
	worlds    []*World
	byID      map[string]*World
	relations map[relationKey][]Target
	actions   map[string]struct{}
}

// NewModel creates an empty model bound to ts.
func NewModel(ts *twist.Structure) (*Model, error) {
	if ts == nil {
		return nil, fmt.Errorf("twist structure is nil")
	}
	return &Model{
		ts:        ts,
		byID:      make(map[string]*World),
		relations: make(map[relationKey][]Target),
		actions:   make(map[string]struct{}),
	}, nil
}

// Structure returns the twist structure all valuations and weights belong to.
func (m *Model) Structure() *twist.Structure { return m.ts }

// AddWorld adds a world with the given identifier and valuation. The
// valuation map is copied. Fails with *DuplicateWorldError when the
// identifier exists and *TypeMismatchError when a valuation value is not an
// element of the model's twist structure.
func (m *Model) AddWorld(id string, valuation map[string]twist.Pair) error {
	w, err := m.makeWorld(id, valuation)
	if err != nil {
		return err
	}
	m.commit(w)
	return nil
}

// AddWorldsBatch creates count worlds from a template function mapping the
// batch index to an identifier and valuation. The batch is atomic: every
// world is validated first and any failure leaves the model unmodified.
func (m *Model) AddWorldsBatch(count int, template func(i int) (string, map[string]twist.Pair)) error {
	batch := make([]*World, 0, count)
	seen := make(map[string]struct{}, count)
	for i := 0; i < count; i++ {
		id, valuation := template(i)
		if _, dup := seen[id]; dup {
			return &DuplicateWorldError{ID: id}
		}
		w, err := m.makeWorld(id, valuation)
		if err != nil {
			return err
		}
		seen[id] = struct{}{}
		batch = append(batch, w)
	}
	for _, w := range batch {
		m.commit(w)
	}
	return nil
}

// AddRelation appends a weighted, action-labelled transition from one world
// to another. Multiple transitions for the same (from, action) pair are kept
// in insertion order and are not deduplicated.
func (m *Model) AddRelation(from, to, action string, weight twist.Pair) error {
	if _, ok := m.byID[from]; !ok {
		return &UnknownWorldError{ID: from}
	}
	if _, ok := m.byID[to]; !ok {
		return &UnknownWorldError{ID: to}
	}
	if !m.ts.Contains(weight) {
		return &TypeMismatchError{
			Value: weight,
			Where: fmt.Sprintf("weight on (%s, %s) -> %s", from, action, to),
		}
	}
	key := relationKey{from: from, action: action}
	m.relations[key] = append(m.relations[key], Target{World: to, Weight: weight})
	m.actions[action] = struct{}{}
	return nil
}

// Worlds returns the model's worlds in insertion order.
func (m *Model) Worlds() []*World {
	return append([]*World(nil), m.worlds...)
}

// World looks up a world by identifier.
func (m *Model) World(id string) (*World, bool) {
	w, ok := m.byID[id]
	return w, ok
}

// Targets returns the transitions leaving from under action, in insertion
// order. An empty result is legal and distinct from the action being unknown
// to the model; see HasAction.
func (m *Model) Targets(from, action string) []Target {
	return m.relations[relationKey{from: from, action: action}]
}

// HasAction reports whether any relation in the model uses the action label.
func (m *Model) HasAction(action string) bool {
	_, ok := m.actions[action]
	return ok
}

func (m *Model) makeWorld(id string, valuation map[string]twist.Pair) (*World, error) {
	if _, ok := m.byID[id]; ok {
		return nil, &DuplicateWorldError{ID: id}
	}
	copied := make(map[string]twist.Pair, len(valuation))
	for prop, value := range valuation {
		if !m.ts.Contains(value) {
			return nil, &TypeMismatchError{
				Value: value,
				Where: fmt.Sprintf("valuation of %q in world %q", prop, id),
			}
		}
		copied[prop] = value
	}
	return &World{id: id, valuation: copied}, nil
}

func (m *Model) commit(w *World) {
	m.worlds = append(m.worlds, w)
	m.byID[w.id] = w
}
