package inventory

import (
	"fmt"
	"sort"
	"strings"

	"github.com/cory-johannsen/advgame/internal/game/ruleset"
)

// Entry is one (quantity, item) pair in a Collection.
type Entry struct {
	Item     *Item
	Quantity int
}

// Match is the result of resolving a player-supplied name against a Collection.
type Match struct {
	Entry
	// Plural is true when the name matched the item's plural title.
	Plural bool
}

// Collection maps item IDs to quantities. It backs inventories, room floors
// and container contents.
//
// Invariant: every stored quantity is > 0; an entry reaching zero is deleted.
type Collection struct {
	entries map[string]*Entry
}

// NewCollection creates an empty Collection.
func NewCollection() *Collection {
	return &Collection{entries: make(map[string]*Entry)}
}

// Add increases the quantity of it by n.
//
// Precondition: n > 0 and it is non-nil.
// Postcondition: Quantity(it.ID) grows by exactly n; returns an ErrInvariant
// error with no mutation otherwise.
func (c *Collection) Add(it *Item, n int) error {
	if it == nil || n <= 0 {
		return fmt.Errorf("inventory: Collection.Add quantity %d: %w", n, ruleset.ErrInvariant)
	}
	if e, ok := c.entries[it.ID]; ok {
		e.Quantity += n
		return nil
	}
	c.entries[it.ID] = &Entry{Item: it, Quantity: n}
	return nil
}

// Remove decreases the quantity of item id by n, deleting the entry at zero.
//
// Precondition: 0 < n <= Quantity(id).
// Postcondition: Quantity(id) shrinks by exactly n; returns an ErrInvariant
// error with no mutation otherwise.
func (c *Collection) Remove(id string, n int) error {
	e, ok := c.entries[id]
	if !ok || n <= 0 || n > e.Quantity {
		return fmt.Errorf("inventory: Collection.Remove %d of %q (have %d): %w", n, id, c.Quantity(id), ruleset.ErrInvariant)
	}
	e.Quantity -= n
	if e.Quantity == 0 {
		delete(c.entries, id)
	}
	return nil
}

// Transfer moves n units of item id from c to dst. The move is all or nothing.
//
// Precondition: 0 < n <= c.Quantity(id).
// Postcondition: c loses exactly n, dst gains exactly n.
func (c *Collection) Transfer(dst *Collection, id string, n int) error {
	e, ok := c.entries[id]
	if !ok || n <= 0 || n > e.Quantity {
		return fmt.Errorf("inventory: Collection.Transfer %d of %q (have %d): %w", n, id, c.Quantity(id), ruleset.ErrInvariant)
	}
	it := e.Item
	if err := c.Remove(id, n); err != nil {
		return err
	}
	return dst.Add(it, n)
}

// Quantity returns the quantity held of item id (0 when absent).
func (c *Collection) Quantity(id string) int {
	if e, ok := c.entries[id]; ok {
		return e.Quantity
	}
	return 0
}

// Get returns the entry for item id.
func (c *Collection) Get(id string) (Entry, bool) {
	e, ok := c.entries[id]
	if !ok {
		return Entry{}, false
	}
	return *e, true
}

// Lookup resolves a name against item titles and plural titles,
// case-insensitively.
//
// Postcondition: ok is false when no held item has that title.
func (c *Collection) Lookup(name string) (Match, bool) {
	name = strings.TrimSpace(name)
	for _, e := range c.Entries() {
		if strings.EqualFold(e.Item.Title, name) {
			return Match{Entry: e}, true
		}
		if strings.EqualFold(e.Item.PluralTitle(), name) {
			return Match{Entry: e, Plural: true}, true
		}
	}
	return Match{}, false
}

// FindKey returns the first key held that opens locks of type kt.
func (c *Collection) FindKey(kt KeyType) (*Item, bool) {
	for _, e := range c.Entries() {
		if e.Item.Kind == KindKey && e.Item.Opens == kt {
			return e.Item, true
		}
	}
	return nil, false
}

// Entries returns every entry sorted by title then ID.
func (c *Collection) Entries() []Entry {
	out := make([]Entry, 0, len(c.entries))
	for _, e := range c.entries {
		out = append(out, *e)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Item.Title != out[j].Item.Title {
			return out[i].Item.Title < out[j].Item.Title
		}
		return out[i].Item.ID < out[j].Item.ID
	})
	return out
}

// Len returns the number of distinct items held.
func (c *Collection) Len() int { return len(c.entries) }

// IsEmpty reports whether nothing is held.
func (c *Collection) IsEmpty() bool { return len(c.entries) == 0 }

// TotalWeight returns the summed weight of every unit held.
func (c *Collection) TotalWeight() float64 {
	var w float64
	for _, e := range c.entries {
		w += e.Item.Weight * float64(e.Quantity)
	}
	return w
}

// Clone returns an independent copy sharing the same item templates.
func (c *Collection) Clone() *Collection {
	out := NewCollection()
	for id, e := range c.entries {
		out.entries[id] = &Entry{Item: e.Item, Quantity: e.Quantity}
	}
	return out
}

// Check verifies the positive-quantity invariant.
func (c *Collection) Check() error {
	for id, e := range c.entries {
		if e.Quantity <= 0 {
			return fmt.Errorf("inventory: %q stored with quantity %d: %w", id, e.Quantity, ruleset.ErrInvariant)
		}
	}
	return nil
}
