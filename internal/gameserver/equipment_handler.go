package gameserver

import (
	"github.com/cory-johannsen/advgame/internal/game/command"
	"github.com/cory-johannsen/advgame/internal/game/inventory"
	"github.com/cory-johannsen/advgame/internal/game/outcome"
	"github.com/cory-johannsen/advgame/internal/game/ruleset"
	"github.com/cory-johannsen/advgame/internal/game/state"
)

// EquipmentHandler handles EQUIP and UNEQUIP.
type EquipmentHandler struct{}

// NewEquipmentHandler creates an EquipmentHandler.
func NewEquipmentHandler() *EquipmentHandler {
	return &EquipmentHandler{}
}

// Equip wears or readies a carried item, displacing whatever filled its slot.
//
// Postcondition: on success the item fills its slot and any displaced item is
// reported as unequipped before the equip.
func (h *EquipmentHandler) Equip(g *state.GameState, a command.Args) ([]outcome.Outcome, error) {
	pc, err := requireCharacter(g)
	if err != nil {
		return nil, err
	}
	m, ok := pc.Inventory.Lookup(a.Item)
	if !ok {
		return one(outcome.NotFound{Category: outcome.CategoryItem, Name: a.Item, Location: locInventory}), nil
	}
	it := m.Item
	switch {
	case !it.Kind.Equippable():
		return one(outcome.NotEquippable{Item: outcome.Ref(it)}), nil
	case !it.UsableByClass(pc.Class):
		return one(outcome.ClassCannotUse{Item: outcome.Ref(it), Class: pc.Class, Classes: usableBy(it)}), nil
	case pc.Equipment.IsEquipped(it.ID):
		return one(outcome.AlreadyEquipped{Item: outcome.Ref(it)}), nil
	}

	prev, err := pc.Equipment.Equip(it)
	if err != nil {
		return nil, err
	}
	slot := it.Kind.Slot()
	var outs []outcome.Outcome
	if prev != nil {
		outs = append(outs, outcome.Unequipped{Item: outcome.Ref(prev), Slot: slot})
	}
	return append(outs, outcome.Equipped{Item: outcome.Ref(it), Slot: slot}), nil
}

// Unequip takes off or puts away a worn item. When the attack item changes
// as a result, the new one (or none) is reported.
func (h *EquipmentHandler) Unequip(g *state.GameState, a command.Args) ([]outcome.Outcome, error) {
	pc, err := requireCharacter(g)
	if err != nil {
		return nil, err
	}
	m, ok := pc.Inventory.Lookup(a.Item)
	if !ok {
		return one(outcome.NotFound{Category: outcome.CategoryItem, Name: a.Item, Location: locInventory}), nil
	}
	it := m.Item
	if !it.Kind.Equippable() {
		return one(outcome.NotEquippable{Item: outcome.Ref(it)}), nil
	}
	if !pc.Equipment.IsEquipped(it.ID) {
		return one(outcome.NotEquipped{Item: outcome.Ref(it), Worn: refOrNil(pc.Equipment.In(it.Kind.Slot()))}), nil
	}
	return unequip(pc, it), nil
}

// usableBy lists the classes that may equip it.
func usableBy(it *inventory.Item) []ruleset.Class {
	var out []ruleset.Class
	for _, c := range ruleset.AllClasses() {
		if it.UsableByClass(c) {
			out = append(out, c)
		}
	}
	return out
}
