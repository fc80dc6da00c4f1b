package ruleset

import (
	"strings"
)

// Class is a playable character class. The zero value is NoClass.
type Class int

const (
	NoClass Class = iota
	Warrior
	Thief
	Mage
	Priest
)

// Capabilities is the static per-class rules row. All class-dependent rules
// read from this table rather than switching on the class.
type Capabilities struct {
	Title string
	// HitDie is the die size used for maximum hit points.
	HitDie int
	// WeaponAbility modifies weapon attack and damage rolls.
	WeaponAbility Ability
	// WandAbility modifies wand attack and damage rolls; only meaningful
	// when CanUseWand is set.
	WandAbility Ability
	CanUseWand  bool
	// Spellcaster classes have mana points and may CAST SPELL.
	Spellcaster    bool
	CastingAbility Ability
	// SpellTargetsFoe is true for offensive casters, false for healers.
	SpellTargetsFoe bool
	CanPickLock     bool
}

var capabilities = map[Class]Capabilities{
	Warrior: {Title: "Warrior", HitDie: 10, WeaponAbility: Strength},
	Thief:   {Title: "Thief", HitDie: 6, WeaponAbility: Dexterity, CanPickLock: true},
	Mage: {
		Title: "Mage", HitDie: 4, WeaponAbility: Strength,
		WandAbility: Intelligence, CanUseWand: true,
		Spellcaster: true, CastingAbility: Intelligence, SpellTargetsFoe: true,
	},
	Priest: {
		Title: "Priest", HitDie: 8, WeaponAbility: Strength,
		Spellcaster: true, CastingAbility: Wisdom,
	},
}

// AllClasses returns the playable classes in canonical order.
func AllClasses() []Class {
	return []Class{Warrior, Thief, Mage, Priest}
}

// Caps returns the capability row for c.
//
// Postcondition: ok is false for NoClass and out-of-range values.
func (c Class) Caps() (Capabilities, bool) {
	caps, ok := capabilities[c]
	return caps, ok
}

// String returns the class title ("Warrior"), or "" for NoClass.
func (c Class) String() string {
	caps, ok := capabilities[c]
	if !ok {
		return ""
	}
	return caps.Title
}

// IsSpellcaster reports whether c has mana points.
func (c Class) IsSpellcaster() bool {
	caps, ok := capabilities[c]
	return ok && caps.Spellcaster
}

// ParseClass resolves a class title case-insensitively.
//
// Postcondition: ok is false and the result is NoClass for unknown titles.
func ParseClass(s string) (Class, bool) {
	s = strings.TrimSpace(s)
	for _, c := range AllClasses() {
		if strings.EqualFold(c.String(), s) {
			return c, true
		}
	}
	return NoClass, false
}

// ClassSet is a set of classes permitted to do something, such as use an item.
// A nil or empty ClassSet permits every class.
type ClassSet map[Class]bool

// NewClassSet builds a ClassSet from the given classes.
func NewClassSet(classes ...Class) ClassSet {
	s := make(ClassSet, len(classes))
	for _, c := range classes {
		s[c] = true
	}
	return s
}

// Allows reports whether c is a member, treating an empty set as universal.
func (s ClassSet) Allows(c Class) bool {
	if len(s) == 0 {
		return true
	}
	return s[c]
}

// Sorted returns the members in canonical class order. An empty set returns
// every class.
func (s ClassSet) Sorted() []Class {
	out := make([]Class, 0, len(s))
	for _, c := range AllClasses() {
		if s.Allows(c) {
			out = append(out, c)
		}
	}
	return out
}
