package outcome

import (
	"github.com/cory-johannsen/advgame/internal/game/inventory"
	"github.com/cory-johannsen/advgame/internal/game/ruleset"
)

const (
	KindEquipped        Kind = "equip.equipped"
	KindUnequipped      Kind = "equip.unequipped"
	KindAlreadyEquipped Kind = "equip.already_equipped"
	KindNotEquipped     Kind = "equip.not_equipped"
	KindNotEquippable   Kind = "equip.not_equippable"
	KindClassCannotUse  Kind = "equip.class_cannot_use"
	KindAttackingWith   Kind = "equip.attacking_with"
)

// Equipped confirms an item now fills its slot.
type Equipped struct {
	sealedOutcome
	Item ItemRef
	Slot inventory.Slot
}

func (Equipped) Kind() Kind { return KindEquipped }

// Unequipped confirms an item left its slot.
type Unequipped struct {
	sealedOutcome
	Item ItemRef
	Slot inventory.Slot
}

func (Unequipped) Kind() Kind { return KindUnequipped }

// AlreadyEquipped is the no-op of equipping the worn item.
type AlreadyEquipped struct {
	sealedOutcome
	Item ItemRef
}

func (AlreadyEquipped) Kind() Kind { return KindAlreadyEquipped }

// NotEquipped rejects unequipping an item that is not worn. Worn names the
// different item in that slot, if any.
type NotEquipped struct {
	sealedOutcome
	Item ItemRef
	Worn *ItemRef
}

func (NotEquipped) Kind() Kind { return KindNotEquipped }

// NotEquippable rejects equipping coins, keys and potions.
type NotEquippable struct {
	sealedOutcome
	Item ItemRef
}

func (NotEquippable) Kind() Kind { return KindNotEquippable }

// ClassCannotUse rejects an item the class may not equip.
type ClassCannotUse struct {
	sealedOutcome
	Item    ItemRef
	Class   ruleset.Class
	Classes []ruleset.Class
}

func (ClassCannotUse) Kind() Kind { return KindClassCannotUse }

// AttackingWith reports the item now used to attack after a slot change.
// A nil Item means the character can no longer attack.
type AttackingWith struct {
	sealedOutcome
	Item *ItemRef
}

func (AttackingWith) Kind() Kind { return KindAttackingWith }
