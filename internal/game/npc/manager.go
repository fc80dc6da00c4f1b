package npc

import (
	"fmt"
	"sort"

	"github.com/cory-johannsen/advgame/internal/game/inventory"
	"github.com/cory-johannsen/advgame/internal/game/ruleset"
)

// Remains is what a defeated creature leaves behind: the corpse title and the
// creature's inventory, transferred unchanged.
type Remains struct {
	CreatureID string
	Title      string
	Contents   *inventory.Collection
}

// Manager is the creatures state: every creature in the game keyed by ID.
type Manager struct {
	creatures map[string]*Creature
}

// NewManager creates an empty Manager.
func NewManager() *Manager {
	return &Manager{creatures: make(map[string]*Creature)}
}

// Add registers c.
//
// Precondition: c.ID is non-empty and unique.
func (m *Manager) Add(c *Creature) error {
	if c == nil || c.ID == "" {
		return fmt.Errorf("npc.Manager.Add: creature must have an ID")
	}
	if _, exists := m.creatures[c.ID]; exists {
		return fmt.Errorf("npc.Manager.Add: creature ID %q already registered", c.ID)
	}
	m.creatures[c.ID] = c
	return nil
}

// Get returns the creature with id.
func (m *Manager) Get(id string) (*Creature, bool) {
	c, ok := m.creatures[id]
	return c, ok
}

// All returns every creature sorted by ID.
func (m *Manager) All() []*Creature {
	out := make([]*Creature, 0, len(m.creatures))
	for _, c := range m.creatures {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Convert turns a dead creature into Remains. The creature's inventory moves
// into the remains; the creature keeps an empty inventory and no equipment.
//
// Precondition: the creature exists, has zero hit points and was not converted before.
// Postcondition: Remains.Contents holds exactly what the creature carried.
func (m *Manager) Convert(id string) (Remains, error) {
	c, ok := m.creatures[id]
	if !ok {
		return Remains{}, fmt.Errorf("npc.Manager.Convert: unknown creature %q: %w", id, ruleset.ErrMisuse)
	}
	if c.converted {
		return Remains{}, fmt.Errorf("npc.Manager.Convert: creature %q already converted: %w", id, ruleset.ErrMisuse)
	}
	if c.IsAlive() {
		return Remains{}, fmt.Errorf("npc.Manager.Convert: creature %q is alive: %w", id, ruleset.ErrMisuse)
	}
	r := Remains{CreatureID: id, Title: c.Title + " corpse", Contents: c.Inventory}
	c.Inventory = inventory.NewCollection()
	c.Equipment = inventory.NewEquipment()
	c.converted = true
	return r, nil
}
