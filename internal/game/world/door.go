package world

import (
	"fmt"
	"sort"
	"strings"

	"github.com/cory-johannsen/advgame/internal/game/inventory"
	"github.com/cory-johannsen/advgame/internal/game/ruleset"
)

// DoorKind is the category of a door.
type DoorKind int

const (
	Doorway DoorKind = iota + 1
	WoodenDoor
	IronDoor
)

type doorCaps struct {
	title     string
	closeable bool
	lockable  bool
}

var doorKinds = map[DoorKind]doorCaps{
	Doorway:    {title: "doorway"},
	WoodenDoor: {title: "wooden door", closeable: true, lockable: true},
	IronDoor:   {title: "iron door", closeable: true, lockable: true},
}

// String returns the default title for the kind.
func (k DoorKind) String() string { return doorKinds[k].title }

// Closeable reports whether doors of kind k can be opened and closed.
func (k DoorKind) Closeable() bool { return doorKinds[k].closeable }

// Lockable reports whether doors of kind k can be locked.
func (k DoorKind) Lockable() bool { return doorKinds[k].lockable }

// ParseDoorKind resolves a kind from its default title or a snake_case name.
func ParseDoorKind(s string) (DoorKind, bool) {
	s = strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "_", " ")
	for k, c := range doorKinds {
		if c.title == s {
			return k, true
		}
	}
	return 0, false
}

// Door connects two rooms. It is identified by the unordered pair of room IDs.
//
// Invariant: a Doorway is never closed or locked; Locked implies Closed.
type Door struct {
	Latch
	Kind        DoorKind
	Title       string
	Description string
	RoomA       string
	RoomB       string
	// Key is the key type that toggles the lock.
	Key inventory.KeyType
}

// NewDoor creates a door between rooms a and b with the kind's default title.
func NewDoor(kind DoorKind, a, b string) *Door {
	return &Door{Kind: kind, Title: kind.String(), RoomA: a, RoomB: b, Key: inventory.DoorKey}
}

// ID returns the identity of the door: its sorted room pair.
func (d *Door) ID() string { return PairKey(d.RoomA, d.RoomB) }

// Other returns the room on the far side of the door from roomID.
func (d *Door) Other(roomID string) string {
	if d.RoomA == roomID {
		return d.RoomB
	}
	return d.RoomA
}

// IsExit reports whether the door leads out of the dungeon.
func (d *Door) IsExit() bool { return d.RoomA == ExitRoomID || d.RoomB == ExitRoomID }

// Check verifies the door invariants.
func (d *Door) Check() error {
	if !d.Kind.Closeable() && (d.Closed || d.Locked) {
		return fmt.Errorf("world: %s %s is closed or locked: %w", d.Kind, d.ID(), ruleset.ErrInvariant)
	}
	return d.Latch.Check("door " + d.ID())
}

// Matches reports whether title refers to this door: its own title, the
// generic "door" for closeable doors, or the generic "doorway" for doorways.
func (d *Door) Matches(title string) bool {
	title = strings.Join(strings.Fields(strings.ToLower(title)), " ")
	switch {
	case title == "":
		return true
	case strings.EqualFold(title, d.Title):
		return true
	case d.Kind.Closeable():
		return title == "door"
	default:
		return title == "doorway"
	}
}

// IsDoorTitle reports whether title can name a door in a command: its last
// word must be "door" or "doorway".
func IsDoorTitle(title string) bool {
	words := strings.Fields(strings.ToLower(title))
	if len(words) == 0 {
		return false
	}
	last := words[len(words)-1]
	return last == "door" || last == "doorway"
}

// PairKey returns the canonical key for the unordered pair (a, b).
func PairKey(a, b string) string {
	if b < a {
		a, b = b, a
	}
	return a + "|" + b
}

// DoorsState holds every door keyed by its room pair.
type DoorsState struct {
	doors map[string]*Door
}

// NewDoorsState creates an empty DoorsState.
func NewDoorsState() *DoorsState {
	return &DoorsState{doors: make(map[string]*Door)}
}

// Add registers d.
//
// Postcondition: Between(d.RoomA, d.RoomB) returns d; returns error on a duplicate pair.
func (s *DoorsState) Add(d *Door) error {
	if d.RoomA == d.RoomB {
		return fmt.Errorf("world: door connects room %q to itself", d.RoomA)
	}
	if _, exists := s.doors[d.ID()]; exists {
		return fmt.Errorf("world: door between %q and %q already registered", d.RoomA, d.RoomB)
	}
	if err := d.Check(); err != nil {
		return err
	}
	s.doors[d.ID()] = d
	return nil
}

// Between returns the door connecting a and b, in either order.
func (s *DoorsState) Between(a, b string) (*Door, bool) {
	d, ok := s.doors[PairKey(a, b)]
	return d, ok
}

// All returns every door sorted by ID.
func (s *DoorsState) All() []*Door {
	out := make([]*Door, 0, len(s.doors))
	for _, d := range s.doors {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID() < out[j].ID() })
	return out
}

// Check verifies every door.
func (s *DoorsState) Check() error {
	for _, d := range s.All() {
		if err := d.Check(); err != nil {
			return err
		}
	}
	return nil
}

// DoorRef is a door as seen from a particular room.
type DoorRef struct {
	Direction Direction
	Door      *Door
}

// InRoom returns the doors leading out of r in compass order.
//
// Postcondition: returns an ErrInvariant error if an exit has no door.
func (s *DoorsState) InRoom(r *Room) ([]DoorRef, error) {
	var out []DoorRef
	for _, dir := range r.ExitDirections() {
		d, ok := s.Between(r.ID, r.Exits[dir])
		if !ok {
			return nil, fmt.Errorf("world: room %q exit %s has no door: %w", r.ID, dir, ruleset.ErrInvariant)
		}
		out = append(out, DoorRef{Direction: dir, Door: d})
	}
	return out, nil
}

// Resolve filters refs by an optional direction and a title. The result keeps
// compass order, so callers reporting ambiguity list directions canonically.
func Resolve(refs []DoorRef, dir Direction, title string) []DoorRef {
	var out []DoorRef
	for _, ref := range refs {
		if dir != "" && ref.Direction != dir {
			continue
		}
		if !ref.Door.Matches(title) {
			continue
		}
		out = append(out, ref)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Direction.compassIndex() < out[j].Direction.compassIndex()
	})
	return out
}
