// Package outcome defines the closed set of records a command produces.
// Every consumer switches on the concrete type; AllKinds lists every kind so
// consumers can prove they handle them all.
package outcome

import (
	"github.com/cory-johannsen/advgame/internal/game/inventory"
	"github.com/cory-johannsen/advgame/internal/game/world"
)

// Kind discriminates outcome records. Values are "<family>.<name>".
type Kind string

// Outcome is implemented only by the types in this package.
type Outcome interface {
	Kind() Kind
	sealed()
}

type sealedOutcome struct{}

func (sealedOutcome) sealed() {}

// ItemRef carries what a renderer needs to name an item without state lookups.
type ItemRef struct {
	ID     string
	Title  string
	Plural string
	Kind   inventory.Kind
}

// Ref builds an ItemRef from an item template.
func Ref(it *inventory.Item) ItemRef {
	return ItemRef{ID: it.ID, Title: it.Title, Plural: it.PluralTitle(), Kind: it.Kind}
}

// ItemCount is an item with a quantity, for listings.
type ItemCount struct {
	Item     ItemRef
	Quantity int
	Equipped bool
}

// Counts converts collection entries into ItemCounts, flagging equipped items.
func Counts(entries []inventory.Entry, equipped func(id string) bool) []ItemCount {
	out := make([]ItemCount, 0, len(entries))
	for _, e := range entries {
		c := ItemCount{Item: Ref(e.Item), Quantity: e.Quantity}
		if equipped != nil {
			c.Equipped = equipped(e.Item.ID)
		}
		out = append(out, c)
	}
	return out
}

// Category names the kind of thing a command targeted.
type Category string

const (
	CategoryItem     Category = "item"
	CategoryDoor     Category = "door"
	CategoryDoorway  Category = "doorway"
	CategoryChest    Category = "chest"
	CategoryCorpse   Category = "corpse"
	CategoryCreature Category = "creature"
	// CategoryAny marks a search that could have matched anything in the
	// room.
	CategoryAny Category = "thing"
)

// Target identifies a door, container or creature in an outcome.
type Target struct {
	Category  Category
	Title     string
	Direction world.Direction
}

// DoorTarget builds a Target for a door seen from a direction.
func DoorTarget(ref world.DoorRef) Target {
	cat := CategoryDoor
	if !ref.Door.Kind.Closeable() {
		cat = CategoryDoorway
	}
	return Target{Category: cat, Title: ref.Door.Title, Direction: ref.Direction}
}

// ContainerTarget builds a Target for a chest or corpse.
func ContainerTarget(c *world.Container) Target {
	cat := CategoryChest
	if c.Kind == world.Corpse {
		cat = CategoryCorpse
	}
	return Target{Category: cat, Title: c.Title}
}

// IsTerminal reports whether o ends the game.
func IsTerminal(o Outcome) bool {
	switch o.(type) {
	case Quit, WonTheGame, CharacterDied:
		return true
	}
	return false
}

// Kinds returns the kinds of os in order.
func Kinds(os []Outcome) []string {
	out := make([]string, len(os))
	for i, o := range os {
		out[i] = string(o.Kind())
	}
	return out
}
