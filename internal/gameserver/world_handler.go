package gameserver

import (
	"github.com/cory-johannsen/advgame/internal/game/command"
	"github.com/cory-johannsen/advgame/internal/game/inventory"
	"github.com/cory-johannsen/advgame/internal/game/outcome"
	"github.com/cory-johannsen/advgame/internal/game/state"
)

// WorldHandler handles movement and look commands.
type WorldHandler struct{}

// NewWorldHandler creates a WorldHandler.
func NewWorldHandler() *WorldHandler {
	return &WorldHandler{}
}

// Leave moves the player through the named door. Leaving through the exit
// door wins the game.
//
// Precondition: g is in play.
// Postcondition: on success the cursor is the neighbouring room, or g has ended.
func (h *WorldHandler) Leave(g *state.GameState, a command.Args) ([]outcome.Outcome, error) {
	room, err := g.CurrentRoom()
	if err != nil {
		return nil, err
	}
	ref, rejection, err := resolveDoor(g, room, a.Door)
	if err != nil {
		return nil, err
	}
	if rejection != nil {
		return one(rejection), nil
	}
	door := ref.Door
	switch {
	case door.Locked:
		return one(outcome.DoorLocked{Target: outcome.DoorTarget(ref)}), nil
	case door.Closed:
		return one(outcome.DoorClosed{Target: outcome.DoorTarget(ref)}), nil
	}

	left := outcome.LeftRoom{Direction: ref.Direction, Door: door.Title}
	if door.IsExit() {
		g.End()
		return []outcome.Outcome{left, outcome.WonTheGame{}}, nil
	}
	if _, err := g.Rooms.Navigate(ref.Direction); err != nil {
		return nil, err
	}
	view, err := roomView(g)
	if err != nil {
		return nil, err
	}
	return []outcome.Outcome{left, view}, nil
}

// LookAt describes an item, door, container or creature.
func (h *WorldHandler) LookAt(g *state.GameState, a command.Args) ([]outcome.Outcome, error) {
	pc, err := requireCharacter(g)
	if err != nil {
		return nil, err
	}
	sc, err := currentScene(g)
	if err != nil {
		return nil, err
	}

	switch {
	case a.Has("INVENTORY"):
		return one(lookItem(pc.Inventory, a.Item, locInventory)), nil
	case a.Has("FLOOR"):
		return one(lookItem(sc.room.Floor, a.Item, locFloor)), nil
	case a.Item != "":
		c, ok := sc.containerNamed(a.Object)
		if !ok {
			return one(outcome.NotFound{Category: placeholderCategory(a.ObjectPlaceholder), Name: a.Object, Location: locRoom}), nil
		}
		if !c.Accessible() {
			return one(outcome.ContainerClosed{Container: outcome.ContainerTarget(c)}), nil
		}
		return one(lookItem(c.Contents, a.Item, c.Title)), nil
	case a.HasDoor:
		ref, rejection, err := resolveDoor(g, sc.room, a.Door)
		if err != nil {
			return nil, err
		}
		if rejection != nil {
			return one(rejection), nil
		}
		return one(outcome.LookDoor{
			Target:      outcome.DoorTarget(ref),
			Description: ref.Door.Description,
			Closed:      ref.Door.Closed,
			Locked:      ref.Door.Locked,
			Exit:        ref.Door.IsExit(),
		}), nil
	}

	if c, ok := sc.containerNamed(a.Object); ok {
		look := outcome.LookContainer{
			Target:      outcome.ContainerTarget(c),
			Description: c.Description,
			Closed:      c.Closed,
			Locked:      c.Locked,
		}
		if c.Accessible() {
			look.Contents = outcome.Counts(c.Contents.Entries(), nil)
		}
		return one(look), nil
	}
	if cr, ok := sc.creatureNamed(a.Object); ok {
		return one(outcome.LookCreature{
			Title:       cr.Title,
			Description: cr.Description,
			Health:      cr.HealthDescription(),
			Wielding:    refOrNil(cr.AttackItem()),
		}), nil
	}
	// A bare item name is looked for on the player, then on the floor.
	for _, src := range []struct {
		c   *inventory.Collection
		loc string
	}{{pc.Inventory, locInventory}, {sc.room.Floor, locFloor}} {
		if _, ok := src.c.Lookup(a.Object); ok {
			return one(lookItem(src.c, a.Object, src.loc)), nil
		}
	}
	return one(outcome.NotFound{Category: outcome.CategoryAny, Name: a.Object, Location: locRoom}), nil
}

func lookItem(c *inventory.Collection, name, location string) outcome.Outcome {
	m, ok := c.Lookup(name)
	if !ok {
		return outcome.NotFound{Category: outcome.CategoryItem, Name: name, Location: location}
	}
	return outcome.LookItem{
		Item:        outcome.Ref(m.Item),
		Description: m.Item.Description,
		Quantity:    m.Quantity,
		Location:    location,
		Weight:      m.Item.Weight,
		Value:       m.Item.Value,
	}
}

// placeholderCategory maps an object placeholder to the category it names.
func placeholderCategory(p command.Placeholder) outcome.Category {
	switch p {
	case command.ChestName:
		return outcome.CategoryChest
	case command.CorpseName:
		return outcome.CategoryCorpse
	case command.CreatureName:
		return outcome.CategoryCreature
	}
	return outcome.CategoryAny
}
