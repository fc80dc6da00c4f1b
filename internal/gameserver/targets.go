package gameserver

import (
	"fmt"
	"strings"

	"github.com/cory-johannsen/advgame/internal/game/character"
	"github.com/cory-johannsen/advgame/internal/game/command"
	"github.com/cory-johannsen/advgame/internal/game/inventory"
	"github.com/cory-johannsen/advgame/internal/game/npc"
	"github.com/cory-johannsen/advgame/internal/game/outcome"
	"github.com/cory-johannsen/advgame/internal/game/state"
	"github.com/cory-johannsen/advgame/internal/game/world"
)

// Locations named in NotFound and MoreThanPresent outcomes.
const (
	locInventory = "inventory"
	locFloor     = "floor"
	locRoom      = "room"
)

// scene is the current room with its occupants resolved.
type scene struct {
	room      *world.Room
	creature  *npc.Creature
	container *world.Container
}

func currentScene(g *state.GameState) (scene, error) {
	room, err := g.CurrentRoom()
	if err != nil {
		return scene{}, err
	}
	sc := scene{room: room}
	if sc.creature, _, err = g.CreatureIn(room); err != nil {
		return scene{}, err
	}
	if sc.container, _, err = g.ContainerIn(room); err != nil {
		return scene{}, err
	}
	return sc, nil
}

// creatureNamed returns the live creature whose title is name.
func (sc scene) creatureNamed(name string) (*npc.Creature, bool) {
	if sc.creature == nil || !strings.EqualFold(sc.creature.Title, name) {
		return nil, false
	}
	return sc.creature, true
}

// containerNamed returns the container matching name. A corpse also answers
// to the title of the creature it was.
func (sc scene) containerNamed(name string) (*world.Container, bool) {
	c := sc.container
	if c == nil {
		return nil, false
	}
	if c.Matches(name) {
		return c, true
	}
	if c.Kind == world.Corpse && strings.EqualFold(c.Title, name+" corpse") {
		return c, true
	}
	return nil, false
}

// doorName renders a parsed door name for NotFound outcomes.
func doorName(spec command.DoorSpec) string {
	return strings.TrimSpace(string(spec.Direction) + " " + spec.Title)
}

// resolveDoor finds the single door spec names in room.
//
// Postcondition: exactly one of ref and rejection is meaningful when err is nil.
func resolveDoor(g *state.GameState, room *world.Room, spec command.DoorSpec) (world.DoorRef, outcome.Outcome, error) {
	refs, err := g.Doors.InRoom(room)
	if err != nil {
		return world.DoorRef{}, nil, err
	}
	matches := world.Resolve(refs, spec.Direction, spec.Title)
	switch len(matches) {
	case 0:
		return world.DoorRef{}, outcome.NotFound{Category: outcome.CategoryDoor, Name: doorName(spec), Location: locRoom}, nil
	case 1:
		return matches[0], nil, nil
	}
	dirs := make([]world.Direction, len(matches))
	for i, m := range matches {
		dirs[i] = m.Direction
	}
	return world.DoorRef{}, outcome.AmbiguousDoor{Title: spec.Title, Directions: dirs}, nil
}

// quantityFor applies the quantity rules for moving items out of a source.
// An absent quantity means everything held, unless the name was a plural.
//
// Postcondition: n is in [1, m.Quantity] when rejection is nil.
func quantityFor(verb string, q command.Quantity, m inventory.Match, location string) (n int, rejection outcome.Outcome) {
	if want, ok := q.Value(); ok {
		if want > m.Quantity {
			return 0, outcome.MoreThanPresent{Verb: verb, Item: outcome.Ref(m.Item), Requested: want, Present: m.Quantity, Location: location}
		}
		return want, nil
	}
	if m.Plural {
		return 0, outcome.QuantityAmbiguous{Verb: verb, Item: outcome.Ref(m.Item), Available: m.Quantity}
	}
	return m.Quantity, nil
}

// releaseEquipped unequips it when taking n units out of pc's inventory would
// leave none to wear.
func releaseEquipped(pc *character.Character, it *inventory.Item, n int) []outcome.Outcome {
	if pc.Inventory.Quantity(it.ID) > n || !pc.Equipment.IsEquipped(it.ID) {
		return nil
	}
	return unequip(pc, it)
}

// unequip empties it's slot and reports the change of attack item, if any.
func unequip(pc *character.Character, it *inventory.Item) []outcome.Outcome {
	before := pc.AttackItem()
	slot := it.Kind.Slot()
	pc.Equipment.Unequip(slot)
	outs := []outcome.Outcome{outcome.Unequipped{Item: outcome.Ref(it), Slot: slot}}
	if after := pc.AttackItem(); after != before {
		outs = append(outs, outcome.AttackingWith{Item: refOrNil(after)})
	}
	return outs
}

func refOrNil(it *inventory.Item) *outcome.ItemRef {
	if it == nil {
		return nil
	}
	r := outcome.Ref(it)
	return &r
}

// roomView describes room as the player sees it on entering.
func roomView(g *state.GameState) (outcome.EnteredRoom, error) {
	sc, err := currentScene(g)
	if err != nil {
		return outcome.EnteredRoom{}, err
	}
	refs, err := g.Doors.InRoom(sc.room)
	if err != nil {
		return outcome.EnteredRoom{}, err
	}
	view := outcome.EnteredRoom{
		Title:       sc.room.Title,
		Description: sc.room.Description,
		Floor:       outcome.Counts(sc.room.Floor.Entries(), nil),
	}
	for _, ref := range refs {
		view.Doors = append(view.Doors, outcome.DoorView{
			Direction: ref.Direction,
			Title:     ref.Door.Title,
			Doorway:   !ref.Door.Kind.Closeable(),
			Closed:    ref.Door.Closed,
		})
	}
	if sc.creature != nil {
		view.Creature = sc.creature.Title
	}
	if sc.container != nil {
		view.Container = sc.container.Title
	}
	return view, nil
}

func requireCharacter(g *state.GameState) (*character.Character, error) {
	if g.Character == nil {
		return nil, fmt.Errorf("gameserver: no character in mode %s: %w", g.Mode(), state.ErrMisuse)
	}
	return g.Character, nil
}
