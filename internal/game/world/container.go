package world

import (
	"fmt"
	"sort"
	"strings"

	"github.com/cory-johannsen/advgame/internal/game/inventory"
	"github.com/cory-johannsen/advgame/internal/game/ruleset"
)

// ContainerKind is the category of a container.
type ContainerKind int

const (
	Chest ContainerKind = iota + 1
	Corpse
)

type containerCaps struct {
	name      string
	closeable bool
	lockable  bool
}

var containerKinds = map[ContainerKind]containerCaps{
	Chest:  {name: "chest", closeable: true, lockable: true},
	Corpse: {name: "corpse"},
}

// String returns the generic noun for the kind.
func (k ContainerKind) String() string { return containerKinds[k].name }

// Closeable reports whether containers of kind k can be opened and closed.
func (k ContainerKind) Closeable() bool { return containerKinds[k].closeable }

// Lockable reports whether containers of kind k can be locked.
func (k ContainerKind) Lockable() bool { return containerKinds[k].lockable }

// Container is a chest or corpse holding items.
//
// Invariant: a Corpse is never closed or locked; Locked implies Closed.
type Container struct {
	Latch
	ID          string
	Kind        ContainerKind
	Title       string
	Description string
	Contents    *inventory.Collection
	Key         inventory.KeyType
}

// NewChest creates an empty, open, unlocked chest.
func NewChest(id, title string) *Container {
	return &Container{ID: id, Kind: Chest, Title: title, Contents: inventory.NewCollection(), Key: inventory.ChestKey}
}

// NewCorpse creates a corpse holding contents.
func NewCorpse(id, title string, contents *inventory.Collection) *Container {
	if contents == nil {
		contents = inventory.NewCollection()
	}
	return &Container{ID: id, Kind: Corpse, Title: title, Contents: contents}
}

// Matches reports whether name refers to the container: its title or the
// generic noun for its kind.
func (c *Container) Matches(name string) bool {
	name = strings.Join(strings.Fields(strings.ToLower(name)), " ")
	return strings.EqualFold(name, c.Title) || name == c.Kind.String()
}

// Accessible reports whether its contents can be reached.
func (c *Container) Accessible() bool { return !c.Closed }

// Check verifies the container invariants.
func (c *Container) Check() error {
	if !c.Kind.Closeable() && (c.Closed || c.Locked) {
		return fmt.Errorf("world: corpse %q is closed or locked: %w", c.ID, ruleset.ErrInvariant)
	}
	if err := c.Latch.Check(c.Kind.String() + " " + c.ID); err != nil {
		return err
	}
	return c.Contents.Check()
}

// ContainersState holds every chest and corpse keyed by ID.
type ContainersState struct {
	containers map[string]*Container
}

// NewContainersState creates an empty ContainersState.
func NewContainersState() *ContainersState {
	return &ContainersState{containers: make(map[string]*Container)}
}

// Add registers c.
func (s *ContainersState) Add(c *Container) error {
	if c.ID == "" {
		return fmt.Errorf("world: container must have an ID")
	}
	if _, exists := s.containers[c.ID]; exists {
		return fmt.Errorf("world: container ID %q already registered", c.ID)
	}
	if err := c.Check(); err != nil {
		return err
	}
	s.containers[c.ID] = c
	return nil
}

// Get returns the container with id.
func (s *ContainersState) Get(id string) (*Container, bool) {
	c, ok := s.containers[id]
	return c, ok
}

// All returns every container sorted by ID.
func (s *ContainersState) All() []*Container {
	out := make([]*Container, 0, len(s.containers))
	for _, c := range s.containers {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Check verifies every container.
func (s *ContainersState) Check() error {
	for _, c := range s.All() {
		if err := c.Check(); err != nil {
			return err
		}
	}
	return nil
}
