package gameserver

import (
	"github.com/cory-johannsen/advgame/internal/game/command"
	"github.com/cory-johannsen/advgame/internal/game/dice"
	"github.com/cory-johannsen/advgame/internal/game/inventory"
	"github.com/cory-johannsen/advgame/internal/game/outcome"
	"github.com/cory-johannsen/advgame/internal/game/state"
	"github.com/cory-johannsen/advgame/internal/game/world"
)

// ItemHandler moves items between the inventory, the floor and containers,
// and handles drinking potions.
//
// Every transfer checks the item, the quantity and the destination before it
// mutates anything, so a rejected command changes nothing.
type ItemHandler struct {
	roller *dice.Roller
}

// NewItemHandler creates an ItemHandler.
//
// Precondition: roller must be non-nil.
func NewItemHandler(roller *dice.Roller) *ItemHandler {
	return &ItemHandler{roller: roller}
}

// Drop moves items from the inventory to the floor.
//
// Postcondition: inventory quantity falls by exactly the amount the floor gains.
func (h *ItemHandler) Drop(g *state.GameState, a command.Args) ([]outcome.Outcome, error) {
	pc, err := requireCharacter(g)
	if err != nil {
		return nil, err
	}
	room, err := g.CurrentRoom()
	if err != nil {
		return nil, err
	}
	m, ok := pc.Inventory.Lookup(a.Item)
	if !ok {
		return one(outcome.NotFound{Category: outcome.CategoryItem, Name: a.Item, Location: locInventory}), nil
	}
	n, rejection := quantityFor(command.Drop, a.Quantity, m, locInventory)
	if rejection != nil {
		return one(rejection), nil
	}

	outs := releaseEquipped(pc, m.Item, n)
	if err := pc.Inventory.Transfer(room.Floor, m.Item.ID, n); err != nil {
		return nil, err
	}
	return append(outs, outcome.Dropped{
		Item:    outcome.Ref(m.Item),
		Amount:  n,
		OnFloor: room.Floor.Quantity(m.Item.ID),
		Left:    pc.Inventory.Quantity(m.Item.ID),
	}), nil
}

// PickUp moves items from the floor to the inventory.
func (h *ItemHandler) PickUp(g *state.GameState, a command.Args) ([]outcome.Outcome, error) {
	pc, err := requireCharacter(g)
	if err != nil {
		return nil, err
	}
	room, err := g.CurrentRoom()
	if err != nil {
		return nil, err
	}
	m, ok := room.Floor.Lookup(a.Item)
	if !ok {
		return one(outcome.NotFound{Category: outcome.CategoryItem, Name: a.Item, Location: locFloor}), nil
	}
	n, rejection := quantityFor(command.PickUp, a.Quantity, m, locFloor)
	if rejection != nil {
		return one(rejection), nil
	}

	if err := room.Floor.Transfer(pc.Inventory, m.Item.ID, n); err != nil {
		return nil, err
	}
	return one(outcome.PickedUp{
		Item:        outcome.Ref(m.Item),
		Amount:      n,
		InInventory: pc.Inventory.Quantity(m.Item.ID),
		LeftOnFloor: room.Floor.Quantity(m.Item.ID),
	}), nil
}

// Put moves items from the inventory into a chest or onto a corpse.
func (h *ItemHandler) Put(g *state.GameState, a command.Args) ([]outcome.Outcome, error) {
	pc, err := requireCharacter(g)
	if err != nil {
		return nil, err
	}
	c, rejection, err := h.openContainer(g, command.Put, a)
	if err != nil {
		return nil, err
	}
	if rejection != nil {
		return one(rejection), nil
	}
	m, ok := pc.Inventory.Lookup(a.Item)
	if !ok {
		return one(outcome.NotFound{Category: outcome.CategoryItem, Name: a.Item, Location: locInventory}), nil
	}
	n, rejection := quantityFor(command.Put, a.Quantity, m, locInventory)
	if rejection != nil {
		return one(rejection), nil
	}

	outs := releaseEquipped(pc, m.Item, n)
	if err := pc.Inventory.Transfer(c.Contents, m.Item.ID, n); err != nil {
		return nil, err
	}
	return append(outs, outcome.PutIn{
		Item:        outcome.Ref(m.Item),
		Amount:      n,
		Container:   outcome.ContainerTarget(c),
		InContainer: c.Contents.Quantity(m.Item.ID),
		Left:        pc.Inventory.Quantity(m.Item.ID),
	}), nil
}

// Take moves items from a chest or corpse into the inventory.
func (h *ItemHandler) Take(g *state.GameState, a command.Args) ([]outcome.Outcome, error) {
	pc, err := requireCharacter(g)
	if err != nil {
		return nil, err
	}
	c, rejection, err := h.openContainer(g, command.Take, a)
	if err != nil {
		return nil, err
	}
	if rejection != nil {
		return one(rejection), nil
	}
	m, ok := c.Contents.Lookup(a.Item)
	if !ok {
		return one(outcome.NotFound{Category: outcome.CategoryItem, Name: a.Item, Location: c.Title}), nil
	}
	n, rejection := quantityFor(command.Take, a.Quantity, m, c.Title)
	if rejection != nil {
		return one(rejection), nil
	}

	if err := c.Contents.Transfer(pc.Inventory, m.Item.ID, n); err != nil {
		return nil, err
	}
	return one(outcome.TookFrom{
		Item:            outcome.Ref(m.Item),
		Amount:          n,
		Container:       outcome.ContainerTarget(c),
		InInventory:     pc.Inventory.Quantity(m.Item.ID),
		LeftInContainer: c.Contents.Quantity(m.Item.ID),
	}), nil
}

// openContainer resolves the container named in a and requires it to be open.
// Either preposition is accepted for either kind of container.
func (h *ItemHandler) openContainer(g *state.GameState, verb string, a command.Args) (*world.Container, outcome.Outcome, error) {
	sc, err := currentScene(g)
	if err != nil {
		return nil, nil, err
	}
	c, ok := sc.containerNamed(a.Object)
	if !ok {
		if cr, ok := sc.creatureNamed(a.Object); ok {
			return nil, outcome.WrongCategory{Verb: verb, Target: outcome.Target{Category: outcome.CategoryCreature, Title: cr.Title}}, nil
		}
		return nil, outcome.NotFound{Category: placeholderCategory(a.ObjectPlaceholder), Name: a.Object, Location: locRoom}, nil
	}
	if !c.Accessible() {
		return nil, outcome.ContainerClosed{Container: outcome.ContainerTarget(c)}, nil
	}
	return c, nil, nil
}

// Drink consumes potions from the inventory. An absent quantity drinks one.
//
// Postcondition: hit or mana points never exceed their maximum.
func (h *ItemHandler) Drink(g *state.GameState, a command.Args) ([]outcome.Outcome, error) {
	pc, err := requireCharacter(g)
	if err != nil {
		return nil, err
	}
	m, ok := pc.Inventory.Lookup(a.Item)
	if !ok {
		return one(outcome.NotFound{Category: outcome.CategoryItem, Name: a.Item, Location: locInventory}), nil
	}
	it := m.Item
	if !it.Kind.Drinkable() {
		return one(outcome.NotDrinkable{Item: outcome.Ref(it)}), nil
	}
	n := 1
	if a.Quantity.IsAbsent() && m.Plural {
		return one(outcome.QuantityAmbiguous{Verb: command.Drink, Item: outcome.Ref(it), Available: m.Quantity}), nil
	}
	if want, ok := a.Quantity.Value(); ok {
		if want > m.Quantity {
			return one(outcome.MoreThanPresent{Verb: command.Drink, Item: outcome.Ref(it), Requested: want, Present: m.Quantity, Location: locInventory}), nil
		}
		n = want
	}
	if it.Restores == inventory.RestoresManaPoints && !pc.Class.IsSpellcaster() {
		return one(outcome.CannotUseManaItem{Item: outcome.Ref(it)}), nil
	}

	if err := pc.Inventory.Remove(it.ID, n); err != nil {
		return nil, err
	}
	total := 0
	for range n {
		total += max(1, h.roller.Roll(it.Amount).Total())
	}
	drank := outcome.Drank{Item: outcome.Ref(it), Amount: n, Restores: it.Restores, Left: pc.Inventory.Quantity(it.ID)}
	switch it.Restores {
	case inventory.RestoresManaPoints:
		drank.Restored = pc.RestoreMana(total)
		drank.Now, drank.Max = pc.ManaPoints, pc.MaxManaPoints
	default:
		drank.Restored = pc.Heal(total)
		drank.Now, drank.Max = pc.HitPoints, pc.MaxHitPoints
	}
	return one(drank), nil
}
