package inventory

import (
	"fmt"
	"sort"
)

// Registry holds every item template loaded for a game. It is the items
// state of the game: built once at load time and read-only afterwards.
type Registry struct {
	items map[string]*Item
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{items: make(map[string]*Item)}
}

// Register adds it to the registry.
//
// Precondition: it passes Validate.
// Postcondition: Item(it.ID) returns (it, true); returns error if it.ID is already registered.
func (r *Registry) Register(it *Item) error {
	if err := it.Validate(); err != nil {
		return err
	}
	if _, exists := r.items[it.ID]; exists {
		return fmt.Errorf("inventory: Registry.Register: item ID %q already registered", it.ID)
	}
	r.items[it.ID] = it
	return nil
}

// Item returns the template for id and whether it was found.
func (r *Registry) Item(id string) (*Item, bool) {
	it, ok := r.items[id]
	return it, ok
}

// All returns every registered item sorted by ID.
func (r *Registry) All() []*Item {
	out := make([]*Item, 0, len(r.items))
	for _, it := range r.items {
		out = append(out, it)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Len returns the number of registered items.
func (r *Registry) Len() int { return len(r.items) }
