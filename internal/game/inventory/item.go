package inventory

import (
	"fmt"
	"strings"

	"github.com/cory-johannsen/advgame/internal/game/dice"
	"github.com/cory-johannsen/advgame/internal/game/ruleset"
)

// Kind is the category of an Item.
type Kind int

const (
	KindWeapon Kind = iota + 1
	KindArmor
	KindShield
	KindWand
	KindPotion
	KindCoin
	KindKey
)

// Slot is an exclusive equipment slot.
type Slot int

const (
	NoSlot Slot = iota
	SlotWeapon
	SlotArmor
	SlotShield
	SlotWand
)

// AllSlots lists the equipment slots in display order.
func AllSlots() []Slot {
	return []Slot{SlotArmor, SlotShield, SlotWand, SlotWeapon}
}

func (s Slot) String() string {
	switch s {
	case SlotWeapon:
		return "weapon"
	case SlotArmor:
		return "armor"
	case SlotShield:
		return "shield"
	case SlotWand:
		return "wand"
	}
	return "none"
}

// kindCaps is the capability table for item kinds.
type kindCaps struct {
	name      string
	slot      Slot
	drinkable bool
}

var kinds = map[Kind]kindCaps{
	KindWeapon: {name: "weapon", slot: SlotWeapon},
	KindArmor:  {name: "armor", slot: SlotArmor},
	KindShield: {name: "shield", slot: SlotShield},
	KindWand:   {name: "wand", slot: SlotWand},
	KindPotion: {name: "potion", drinkable: true},
	KindCoin:   {name: "coin"},
	KindKey:    {name: "key"},
}

// String returns the lower-case kind name.
func (k Kind) String() string {
	if c, ok := kinds[k]; ok {
		return c.name
	}
	return "unknown"
}

// Slot returns the equipment slot for k, or NoSlot if k is not equippable.
func (k Kind) Slot() Slot { return kinds[k].slot }

// Equippable reports whether items of kind k occupy an equipment slot.
func (k Kind) Equippable() bool { return kinds[k].slot != NoSlot }

// Drinkable reports whether items of kind k can be drunk.
func (k Kind) Drinkable() bool { return kinds[k].drinkable }

// ParseKind resolves a lower-case kind name.
func ParseKind(s string) (Kind, bool) {
	for k, c := range kinds {
		if c.name == strings.ToLower(s) {
			return k, true
		}
	}
	return 0, false
}

// Restores names the pool a potion refills.
type Restores int

const (
	RestoresHitPoints Restores = iota + 1
	RestoresManaPoints
)

func (r Restores) String() string {
	if r == RestoresManaPoints {
		return "mana points"
	}
	return "hit points"
}

// KeyType names the class of lock a key opens.
type KeyType string

const (
	DoorKey  KeyType = "door key"
	ChestKey KeyType = "chest key"
)

// Item is an immutable item template. Items are shared by pointer between
// every collection that holds them; only the quantity per location varies.
//
// Invariant: ID and Title are non-empty; Kind is a declared Kind.
type Item struct {
	ID          string
	Title       string
	Plural      string
	Description string
	Weight      float64
	Value       int
	Kind        Kind

	// Weapon and wand payload.
	Damage      dice.Expression
	AttackBonus int
	// Armor and shield payload.
	ArmorBonus int
	// UsableBy restricts equippable items; empty means every class.
	UsableBy ruleset.ClassSet
	// Potion payload.
	Restores Restores
	Amount   dice.Expression
	// Key payload.
	Opens KeyType
}

// PluralTitle returns the plural title, defaulting to Title+"s".
func (it *Item) PluralTitle() string {
	if it.Plural != "" {
		return it.Plural
	}
	return it.Title + "s"
}

// UsableByClass reports whether a character of class c may equip it.
// Wands are always restricted to classes that can use wands.
func (it *Item) UsableByClass(c ruleset.Class) bool {
	if it.Kind == KindWand {
		caps, ok := c.Caps()
		if !ok || !caps.CanUseWand {
			return false
		}
	}
	return it.UsableBy.Allows(c)
}

// Validate checks the Item's invariants.
//
// Postcondition: returns nil iff the payload fields agree with Kind.
func (it *Item) Validate() error {
	if it.ID == "" || it.Title == "" {
		return fmt.Errorf("inventory: item must have id and title (id=%q)", it.ID)
	}
	if _, ok := kinds[it.Kind]; !ok {
		return fmt.Errorf("inventory: item %q has unknown kind %d", it.ID, it.Kind)
	}
	if it.Weight < 0 {
		return fmt.Errorf("inventory: item %q weight must be >= 0", it.ID)
	}
	switch it.Kind {
	case KindWeapon, KindWand:
		if it.Damage.Count == 0 {
			return fmt.Errorf("inventory: %s %q requires damage dice", it.Kind, it.ID)
		}
	case KindPotion:
		if it.Restores == 0 || it.Amount.Count == 0 {
			return fmt.Errorf("inventory: potion %q requires restores and amount", it.ID)
		}
	case KindKey:
		if it.Opens != DoorKey && it.Opens != ChestKey {
			return fmt.Errorf("inventory: key %q must open %q or %q", it.ID, DoorKey, ChestKey)
		}
	}
	return nil
}
