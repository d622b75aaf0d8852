package entity

import "fmt"

// Registry holds the ordered set of entities for the current battle.
//
// The registry is NOT safe for concurrent use on its own: the match
// controller owns it exclusively during a tick and serializes all access, so
// external readers only ever observe complete-tick state. Entities are added
// in bulk at battle start and removed only by Clear; mid-battle an entity can
// change state (including being marked destroyed) but never leave the set.
type Registry struct {
	entities []*Entity
	byID     map[string]*Entity
}

// NewRegistry creates an empty Registry.
//
// Postcondition: Returns a non-nil Registry with zero entities.
func NewRegistry() *Registry {
	return &Registry{byID: make(map[string]*Entity)}
}

// Populate installs the battle roster in order, replacing nothing: the
// registry must be empty (freshly created or cleared).
//
// Precondition: the registry must be empty; all entity IDs must be unique.
// Postcondition: Len() == len(entities) and iteration order matches input order.
func (r *Registry) Populate(entities []*Entity) error {
	if len(r.entities) > 0 {
		return fmt.Errorf("registry already holds %d entities; Clear first", len(r.entities))
	}
	for _, e := range entities {
		if _, dup := r.byID[e.ID]; dup {
			return fmt.Errorf("duplicate entity id %q", e.ID)
		}
		r.byID[e.ID] = e
		r.entities = append(r.entities, e)
	}
	return nil
}

// Clear discards all entities. This is the only way entities leave the
// registry; it runs when a battle is stopped or reset.
//
// Postcondition: Len() == 0.
func (r *Registry) Clear() {
	r.entities = nil
	r.byID = make(map[string]*Entity)
}

// Len returns the total number of entities, destroyed included.
func (r *Registry) Len() int { return len(r.entities) }

// ActiveCount returns the number of non-destroyed entities.
//
// Postcondition: Returns a value in [0, Len()].
func (r *Registry) ActiveCount() int {
	n := 0
	for _, e := range r.entities {
		if e.Active() {
			n++
		}
	}
	return n
}

// All returns the entities in creation order. The returned slice is a copy;
// the pointed-to entities are the live battle state.
func (r *Registry) All() []*Entity {
	out := make([]*Entity, len(r.entities))
	copy(out, r.entities)
	return out
}

// ActiveIndices returns the indices of non-destroyed entities in creation
// order. The collision resolver iterates ordered index pairs over this list
// so that in-place mutations stay visible to later pairs within a tick.
func (r *Registry) ActiveIndices() []int {
	var idx []int
	for i, e := range r.entities {
		if e.Active() {
			idx = append(idx, i)
		}
	}
	return idx
}

// At returns the entity at index i in creation order.
//
// Precondition: 0 <= i < Len().
func (r *Registry) At(i int) *Entity { return r.entities[i] }

// Get returns the entity with the given ID.
//
// Postcondition: Returns (entity, true) if found, or (nil, false) otherwise.
func (r *Registry) Get(id string) (*Entity, bool) {
	e, ok := r.byID[id]
	return e, ok
}

// Survivor returns the single remaining active entity, if exactly one exists.
//
// Postcondition: Returns (entity, true) iff ActiveCount() == 1.
func (r *Registry) Survivor() (*Entity, bool) {
	var found *Entity
	for _, e := range r.entities {
		if !e.Active() {
			continue
		}
		if found != nil {
			return nil, false
		}
		found = e
	}
	return found, found != nil
}
