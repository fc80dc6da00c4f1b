package world

import (
	"fmt"
	"sort"

	"github.com/cory-johannsen/advgame/internal/game/ruleset"
)

// RoomsState owns every room and the cursor naming the room the player is in.
// Navigation only moves the cursor.
type RoomsState struct {
	rooms  map[string]*Room
	cursor string
}

// NewRoomsState creates an empty RoomsState.
func NewRoomsState() *RoomsState {
	return &RoomsState{rooms: make(map[string]*Room)}
}

// Add registers r.
func (s *RoomsState) Add(r *Room) error {
	if r.ID == "" || r.ID == ExitRoomID {
		return fmt.Errorf("world: invalid room ID %q", r.ID)
	}
	if _, exists := s.rooms[r.ID]; exists {
		return fmt.Errorf("world: room ID %q already registered", r.ID)
	}
	s.rooms[r.ID] = r
	return nil
}

// Get returns the room with id.
func (s *RoomsState) Get(id string) (*Room, bool) {
	r, ok := s.rooms[id]
	return r, ok
}

// All returns every room sorted by ID.
func (s *RoomsState) All() []*Room {
	out := make([]*Room, 0, len(s.rooms))
	for _, r := range s.rooms {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Len returns the number of rooms.
func (s *RoomsState) Len() int { return len(s.rooms) }

// SetCursor places the player in room id.
//
// Precondition: id is a registered room.
func (s *RoomsState) SetCursor(id string) error {
	if _, ok := s.rooms[id]; !ok {
		return fmt.Errorf("world: cursor set to unknown room %q: %w", id, ruleset.ErrMisuse)
	}
	s.cursor = id
	return nil
}

// Current returns the room the player is in.
//
// Postcondition: returns an ErrMisuse error before the cursor is placed.
func (s *RoomsState) Current() (*Room, error) {
	r, ok := s.rooms[s.cursor]
	if !ok {
		return nil, fmt.Errorf("world: cursor not placed: %w", ruleset.ErrMisuse)
	}
	return r, nil
}

// Navigate moves the cursor through the current room's exit in dir.
//
// Precondition: the current room has an exit in dir leading to a room (not
// the dungeon exit).
// Postcondition: Current() is the neighbour; on error the cursor is unchanged.
func (s *RoomsState) Navigate(dir Direction) (*Room, error) {
	cur, err := s.Current()
	if err != nil {
		return nil, err
	}
	target, ok := cur.Exits[dir]
	if !ok {
		return nil, fmt.Errorf("world: no exit %s from room %q: %w", dir, cur.ID, ruleset.ErrMisuse)
	}
	next, ok := s.rooms[target]
	if !ok {
		return nil, fmt.Errorf("world: exit %s from room %q leads to %q, not a room: %w", dir, cur.ID, target, ruleset.ErrMisuse)
	}
	s.cursor = next.ID
	return next, nil
}
