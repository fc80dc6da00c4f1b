// Package world provides the dungeon model: directions, rooms on a grid,
// the doors between them and the containers inside them.
package world

import (
	"strings"

	"github.com/cory-johannsen/advgame/internal/game/inventory"
)

// Direction is a compass direction.
type Direction string

// Compass directions.
const (
	North Direction = "north"
	East  Direction = "east"
	South Direction = "south"
	West  Direction = "west"
)

// CompassOrder is the canonical ordering used whenever directions are listed.
var CompassOrder = []Direction{North, East, South, West}

// ParseDirection resolves a direction name case-insensitively.
func ParseDirection(s string) (Direction, bool) {
	d := Direction(strings.ToLower(strings.TrimSpace(s)))
	for _, c := range CompassOrder {
		if d == c {
			return d, true
		}
	}
	return "", false
}

// Opposite returns the opposite direction, or "" for unknown values.
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	case West:
		return East
	default:
		return ""
	}
}

// Offset returns the grid delta for d. North decreases Y; east increases X.
func (d Direction) Offset() (dx, dy int) {
	switch d {
	case North:
		return 0, -1
	case South:
		return 0, 1
	case East:
		return 1, 0
	case West:
		return -1, 0
	}
	return 0, 0
}

// compassIndex orders directions for sorting.
func (d Direction) compassIndex() int {
	for i, c := range CompassOrder {
		if c == d {
			return i
		}
	}
	return len(CompassOrder)
}

// ExitRoomID is the pseudo-room on the far side of the dungeon's exit door.
const ExitRoomID = "exit"

// Room is a location on the dungeon grid. Its shape (position and exits) is
// fixed after load; only its occupants change.
//
// Invariant: at most one of CreatureID and ContainerID is set.
type Room struct {
	ID          string
	Title       string
	Description string
	X, Y        int
	// Exits maps a direction to the neighbouring room ID, or ExitRoomID.
	Exits map[Direction]string
	// CreatureID is the live creature occupying the room, if any.
	CreatureID string
	// ContainerID is the chest or corpse in the room, if any.
	ContainerID string
	// Floor holds loose items.
	Floor *inventory.Collection
}

// NewRoom creates a Room with no exits, occupants or items.
func NewRoom(id, title, description string, x, y int) *Room {
	return &Room{
		ID:          id,
		Title:       title,
		Description: description,
		X:           x,
		Y:           y,
		Exits:       make(map[Direction]string),
		Floor:       inventory.NewCollection(),
	}
}

// ExitDirections returns the room's exit directions in compass order.
func (r *Room) ExitDirections() []Direction {
	out := make([]Direction, 0, len(r.Exits))
	for _, d := range CompassOrder {
		if _, ok := r.Exits[d]; ok {
			out = append(out, d)
		}
	}
	return out
}
