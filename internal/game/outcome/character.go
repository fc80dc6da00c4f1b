package outcome

import (
	"github.com/cory-johannsen/advgame/internal/game/ruleset"
)

const (
	KindNameSet          Kind = "character.name_set"
	KindInvalidNamePart  Kind = "character.invalid_name_part"
	KindClassSet         Kind = "character.class_set"
	KindInvalidClass     Kind = "character.invalid_class"
	KindAbilitiesRolled  Kind = "character.abilities_rolled"
	KindRerollNeedsBoth  Kind = "character.reroll_needs_name_and_class"
	KindCannotBeginYet   Kind = "character.cannot_begin_yet"
	KindGameBegun        Kind = "character.game_begun"
	KindStatus           Kind = "character.status"
	KindInventoryListing Kind = "character.inventory"
)

// NameSet confirms the character's name.
type NameSet struct {
	sealedOutcome
	Name string
}

func (NameSet) Kind() Kind { return KindNameSet }

// InvalidNamePart rejects one word of a name.
type InvalidNamePart struct {
	sealedOutcome
	Part string
}

func (InvalidNamePart) Kind() Kind { return KindInvalidNamePart }

// ClassSet confirms the character's class.
type ClassSet struct {
	sealedOutcome
	Class ruleset.Class
}

func (ClassSet) Kind() Kind { return KindClassSet }

// InvalidClass rejects an unknown class name.
type InvalidClass struct {
	sealedOutcome
	Value string
}

func (InvalidClass) Kind() Kind { return KindInvalidClass }

// AbilitiesRolled reports freshly rolled scores and derived maxima.
type AbilitiesRolled struct {
	sealedOutcome
	Name          string
	Class         ruleset.Class
	Scores        [6]int
	MaxHitPoints  int
	MaxManaPoints int
}

func (AbilitiesRolled) Kind() Kind { return KindAbilitiesRolled }

// RerollNeedsBoth rejects REROLL before a character exists.
type RerollNeedsBoth struct {
	sealedOutcome
	MissingName  bool
	MissingClass bool
}

func (RerollNeedsBoth) Kind() Kind { return KindRerollNeedsBoth }

// CannotBeginYet names what BEGIN GAME is missing.
type CannotBeginYet struct {
	sealedOutcome
	MissingName  bool
	MissingClass bool
}

func (CannotBeginYet) Kind() Kind { return KindCannotBeginYet }

// GameBegun confirms the move into play.
type GameBegun struct {
	sealedOutcome
	Name  string
	Class ruleset.Class
}

func (GameBegun) Kind() Kind { return KindGameBegun }

// Status is the STATUS report.
type Status struct {
	sealedOutcome
	Name          string
	Class         ruleset.Class
	HitPoints     int
	MaxHitPoints  int
	ManaPoints    int
	MaxManaPoints int
	ArmorClass    int
	Scores        [6]int
	Burden        string
	Weight        float64
	// Attacking is nil when the character cannot attack.
	Attacking *ItemRef
	Equipped  []ItemRef
}

func (Status) Kind() Kind { return KindStatus }

// InventoryListing is the INVENTORY report.
type InventoryListing struct {
	sealedOutcome
	Items  []ItemCount
	Weight float64
	Burden string
}

func (InventoryListing) Kind() Kind { return KindInventoryListing }
