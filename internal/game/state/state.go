// Package state holds the aggregate GameState threaded through every command.
package state

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/cory-johannsen/advgame/internal/game/character"
	"github.com/cory-johannsen/advgame/internal/game/inventory"
	"github.com/cory-johannsen/advgame/internal/game/npc"
	"github.com/cory-johannsen/advgame/internal/game/ruleset"
	"github.com/cory-johannsen/advgame/internal/game/world"
)

// Fatal error classes. See ruleset.ErrInvariant and ruleset.ErrMisuse.
var (
	ErrInvariant = ruleset.ErrInvariant
	ErrMisuse    = ruleset.ErrMisuse
)

// Mode is the phase of a game.
type Mode int

const (
	// Pregame is character creation.
	Pregame Mode = iota
	// Ingame is exploration and combat.
	Ingame
	// Ended is terminal: quit, death or victory.
	Ended
)

func (m Mode) String() string {
	switch m {
	case Pregame:
		return "pregame"
	case Ingame:
		return "ingame"
	}
	return "ended"
}

// GameState owns every collection state, the player character and the mode
// flags. It is built once by the content loader and owned by exactly one
// command call at a time.
type GameState struct {
	ID         uuid.UUID
	Items      *inventory.Registry
	Rooms      *world.RoomsState
	Doors      *world.DoorsState
	Containers *world.ContainersState
	Creatures  *npc.Manager

	// StartRoom is where the cursor is placed at BEGIN GAME.
	StartRoom string
	// StartingGear lists item IDs granted and equipped per class at BEGIN GAME.
	StartingGear map[ruleset.Class][]string

	// Character is nil until both PendingName and PendingClass are set.
	Character    *character.Character
	PendingName  string
	PendingClass ruleset.Class

	begun bool
	ended bool
}

// New creates a GameState with empty collection states and a fresh ID.
func New() *GameState {
	return &GameState{
		ID:           uuid.New(),
		Items:        inventory.NewRegistry(),
		Rooms:        world.NewRoomsState(),
		Doors:        world.NewDoorsState(),
		Containers:   world.NewContainersState(),
		Creatures:    npc.NewManager(),
		StartingGear: make(map[ruleset.Class][]string),
	}
}

// Mode returns the current phase.
func (g *GameState) Mode() Mode {
	switch {
	case g.ended:
		return Ended
	case g.begun:
		return Ingame
	}
	return Pregame
}

// HasBegun reports whether BEGIN GAME has succeeded.
func (g *GameState) HasBegun() bool { return g.begun }

// HasEnded reports whether the game is over. It never reverts.
func (g *GameState) HasEnded() bool { return g.ended }

// Begin moves the game into Ingame and places the cursor at the start room.
//
// Precondition: Mode() == Pregame and Character != nil.
func (g *GameState) Begin() error {
	if g.Mode() != Pregame || g.Character == nil {
		return fmt.Errorf("state: Begin in mode %s (character=%t): %w", g.Mode(), g.Character != nil, ErrMisuse)
	}
	if err := g.Rooms.SetCursor(g.StartRoom); err != nil {
		return err
	}
	g.begun = true
	return nil
}

// End marks the game as over.
func (g *GameState) End() { g.ended = true }

// CurrentRoom returns the room under the cursor.
func (g *GameState) CurrentRoom() (*world.Room, error) {
	return g.Rooms.Current()
}

// CreatureIn returns the live creature occupying r, if any.
func (g *GameState) CreatureIn(r *world.Room) (*npc.Creature, bool, error) {
	if r.CreatureID == "" {
		return nil, false, nil
	}
	c, ok := g.Creatures.Get(r.CreatureID)
	if !ok {
		return nil, false, fmt.Errorf("state: room %q holds unknown creature %q: %w", r.ID, r.CreatureID, ErrInvariant)
	}
	return c, true, nil
}

// ContainerIn returns the chest or corpse in r, if any.
func (g *GameState) ContainerIn(r *world.Room) (*world.Container, bool, error) {
	if r.ContainerID == "" {
		return nil, false, nil
	}
	c, ok := g.Containers.Get(r.ContainerID)
	if !ok {
		return nil, false, fmt.Errorf("state: room %q holds unknown container %q: %w", r.ID, r.ContainerID, ErrInvariant)
	}
	return c, true, nil
}

// ConvertToCorpse replaces the dead creature in r with a corpse inheriting
// its inventory.
//
// Precondition: r.CreatureID names a dead, unconverted creature.
// Postcondition: r.CreatureID is empty and r.ContainerID names the new corpse.
func (g *GameState) ConvertToCorpse(r *world.Room) (*world.Container, error) {
	if r.ContainerID != "" {
		return nil, fmt.Errorf("state: room %q already holds container %q: %w", r.ID, r.ContainerID, ErrInvariant)
	}
	remains, err := g.Creatures.Convert(r.CreatureID)
	if err != nil {
		return nil, fmt.Errorf("state: converting creature in room %q: %w", r.ID, err)
	}
	corpse := world.NewCorpse(uuid.NewString(), remains.Title, remains.Contents)
	if err := g.Containers.Add(corpse); err != nil {
		return nil, fmt.Errorf("state: registering corpse: %w", err)
	}
	r.CreatureID = ""
	r.ContainerID = corpse.ID
	return corpse, nil
}

// Check verifies every cross-collection invariant. The service runs it after
// each mutating command.
func (g *GameState) Check() error {
	if err := g.Doors.Check(); err != nil {
		return err
	}
	if err := g.Containers.Check(); err != nil {
		return err
	}
	for _, r := range g.Rooms.All() {
		if r.CreatureID != "" && r.ContainerID != "" {
			return fmt.Errorf("state: room %q holds both a creature and a container: %w", r.ID, ErrInvariant)
		}
		if err := r.Floor.Check(); err != nil {
			return err
		}
	}
	if g.Character != nil {
		if err := g.Character.Check(); err != nil {
			return err
		}
	}
	return nil
}
