package inventory

import (
	"fmt"

	"github.com/cory-johannsen/advgame/internal/game/ruleset"
)

// Equipment holds at most one item per Slot. Equipped items remain in their
// owner's inventory; Equipment records which of them are worn.
type Equipment struct {
	slots map[Slot]*Item
}

// NewEquipment creates Equipment with every slot empty.
func NewEquipment() *Equipment {
	return &Equipment{slots: make(map[Slot]*Item)}
}

// In returns the item worn in slot s, or nil.
func (e *Equipment) In(s Slot) *Item { return e.slots[s] }

// Equip places it in its kind's slot and returns the item it displaced.
//
// Precondition: it.Kind is equippable.
// Postcondition: In(it.Kind.Slot()) == it.
func (e *Equipment) Equip(it *Item) (*Item, error) {
	s := it.Kind.Slot()
	if s == NoSlot {
		return nil, fmt.Errorf("inventory: %s %q is not equippable: %w", it.Kind, it.ID, ruleset.ErrMisuse)
	}
	prev := e.slots[s]
	e.slots[s] = it
	return prev, nil
}

// Unequip empties slot s and returns what it held, or nil.
func (e *Equipment) Unequip(s Slot) *Item {
	prev := e.slots[s]
	delete(e.slots, s)
	return prev
}

// IsEquipped reports whether the item with id is worn in any slot.
func (e *Equipment) IsEquipped(id string) bool {
	for _, it := range e.slots {
		if it.ID == id {
			return true
		}
	}
	return false
}

// ArmorBonus returns the summed armor bonus of worn armor and shield.
func (e *Equipment) ArmorBonus() int {
	total := 0
	for _, s := range []Slot{SlotArmor, SlotShield} {
		if it := e.slots[s]; it != nil {
			total += it.ArmorBonus
		}
	}
	return total
}

// Worn returns the equipped items in AllSlots order.
func (e *Equipment) Worn() []*Item {
	var out []*Item
	for _, s := range AllSlots() {
		if it := e.slots[s]; it != nil {
			out = append(out, it)
		}
	}
	return out
}

// Check verifies every worn item is usable by class c.
func (e *Equipment) Check(c ruleset.Class) error {
	for s, it := range e.slots {
		if it.Kind.Slot() != s {
			return fmt.Errorf("inventory: %q worn in %s slot: %w", it.ID, s, ruleset.ErrInvariant)
		}
		if !it.UsableByClass(c) {
			return fmt.Errorf("inventory: %q equipped by %s who cannot use it: %w", it.ID, c, ruleset.ErrInvariant)
		}
	}
	return nil
}
