// Package character defines the combatant sheet shared by the player and
// creatures, the player Character, and pure creation logic.
package character

import (
	"fmt"

	"github.com/cory-johannsen/advgame/internal/game/inventory"
	"github.com/cory-johannsen/advgame/internal/game/ruleset"
)

// AbilityScores holds the six ability score values indexed by ruleset.Ability.
type AbilityScores [6]int

// Get returns the score for a.
func (s AbilityScores) Get(a ruleset.Ability) int { return s[a] }

// Modifier returns the modifier for a.
func (s AbilityScores) Modifier(a ruleset.Ability) int { return ruleset.Modifier(s[a]) }

// Sheet is the combat-relevant state shared by the player and creatures.
//
// Invariant: 0 <= HitPoints <= MaxHitPoints; every worn item is held in
// Inventory and usable by Class.
type Sheet struct {
	Class        ruleset.Class
	Abilities    AbilityScores
	MaxHitPoints int
	HitPoints    int
	Inventory    *inventory.Collection
	Equipment    *inventory.Equipment
}

// NewSheet returns a Sheet at full hit points with an empty inventory.
func NewSheet(class ruleset.Class, scores AbilityScores, maxHP int) Sheet {
	return Sheet{
		Class:        class,
		Abilities:    scores,
		MaxHitPoints: maxHP,
		HitPoints:    maxHP,
		Inventory:    inventory.NewCollection(),
		Equipment:    inventory.NewEquipment(),
	}
}

// IsAlive reports whether hit points remain.
func (s *Sheet) IsAlive() bool { return s.HitPoints > 0 }

// ArmorClass returns 10 + DEX modifier + worn armor and shield bonuses.
func (s *Sheet) ArmorClass() int {
	return 10 + s.Abilities.Modifier(ruleset.Dexterity) + s.Equipment.ArmorBonus()
}

// AttackItem returns the item used to attack: a usable wand wins over a
// weapon. It returns nil when neither is worn.
func (s *Sheet) AttackItem() *inventory.Item {
	if caps, ok := s.Class.Caps(); ok && caps.CanUseWand {
		if w := s.Equipment.In(inventory.SlotWand); w != nil {
			return w
		}
	}
	return s.Equipment.In(inventory.SlotWeapon)
}

// AttackModifier returns the ability modifier applied when attacking with it.
func (s *Sheet) AttackModifier(it *inventory.Item) int {
	caps, ok := s.Class.Caps()
	if !ok {
		return 0
	}
	if it != nil && it.Kind == inventory.KindWand {
		return s.Abilities.Modifier(caps.WandAbility)
	}
	return s.Abilities.Modifier(caps.WeaponAbility)
}

// TakeDamage reduces hit points by n, flooring at zero, and returns the
// damage actually applied.
func (s *Sheet) TakeDamage(n int) int {
	if n > s.HitPoints {
		n = s.HitPoints
	}
	s.HitPoints -= n
	return n
}

// Heal restores up to n hit points, capped at the maximum, and returns the
// amount restored.
func (s *Sheet) Heal(n int) int {
	if room := s.MaxHitPoints - s.HitPoints; n > room {
		n = room
	}
	s.HitPoints += n
	return n
}

// Check verifies the Sheet invariants.
func (s *Sheet) Check() error {
	if s.HitPoints < 0 || s.HitPoints > s.MaxHitPoints {
		return fmt.Errorf("character: hit points %d outside [0,%d]: %w", s.HitPoints, s.MaxHitPoints, ruleset.ErrInvariant)
	}
	if err := s.Inventory.Check(); err != nil {
		return err
	}
	for _, it := range s.Equipment.Worn() {
		if s.Inventory.Quantity(it.ID) == 0 {
			return fmt.Errorf("character: %q worn but not carried: %w", it.ID, ruleset.ErrInvariant)
		}
	}
	return s.Equipment.Check(s.Class)
}

// Character is the player.
//
// Invariant: ManaPoints and MaxManaPoints are zero unless Class is a spellcaster.
type Character struct {
	Sheet
	Name          string
	MaxManaPoints int
	ManaPoints    int
}

// RestoreMana restores up to n mana points, capped at the maximum, and
// returns the amount restored.
func (c *Character) RestoreMana(n int) int {
	if room := c.MaxManaPoints - c.ManaPoints; n > room {
		n = room
	}
	c.ManaPoints += n
	return n
}

// Burden returns the character's current burden classification.
func (c *Character) Burden() Burden {
	return BurdenFor(c.Inventory.TotalWeight(), c.Abilities.Get(ruleset.Strength))
}

// Burden classifies carried weight against strength.
type Burden int

const (
	Unburdened Burden = iota
	Burdened
	Encumbered
	Overloaded
)

func (b Burden) String() string {
	switch b {
	case Unburdened:
		return "unburdened"
	case Burdened:
		return "burdened"
	case Encumbered:
		return "encumbered"
	}
	return "overloaded"
}

// BurdenFor classifies weight w for strength s: w <= 5s unburdened,
// w <= 10s burdened, w <= 15s encumbered, otherwise overloaded.
func BurdenFor(w float64, s int) Burden {
	limit := float64(s)
	switch {
	case w <= 5*limit:
		return Unburdened
	case w <= 10*limit:
		return Burdened
	case w <= 15*limit:
		return Encumbered
	}
	return Overloaded
}
