package outcome

import "github.com/cory-johannsen/advgame/internal/game/ruleset"

const (
	KindNoAttackItem    Kind = "combat.no_attack_item"
	KindAttackHit       Kind = "combat.attack_hit"
	KindAttackMissed    Kind = "combat.attack_missed"
	KindCreatureDied    Kind = "combat.creature_died"
	KindAttackedBy      Kind = "combat.attacked_by"
	KindCreatureMissed  Kind = "combat.creature_missed"
	KindCharacterDied   Kind = "combat.character_died"
	KindCreatureAlready Kind = "combat.creature_already_dead"
)

// NoAttackItem rejects ATTACK with nothing equipped to attack with.
type NoAttackItem struct {
	sealedOutcome
	Class ruleset.Class
}

func (NoAttackItem) Kind() Kind { return KindNoAttackItem }

// AttackHit reports the player's hit.
type AttackHit struct {
	sealedOutcome
	Creature   string
	Item       ItemRef
	Roll       int
	ArmorClass int
	Damage     int
	CreatureHP int
}

func (AttackHit) Kind() Kind { return KindAttackHit }

// AttackMissed reports the player's miss.
type AttackMissed struct {
	sealedOutcome
	Creature   string
	Item       ItemRef
	Roll       int
	ArmorClass int
}

func (AttackMissed) Kind() Kind { return KindAttackMissed }

// CreatureDied reports a kill and the corpse left behind.
type CreatureDied struct {
	sealedOutcome
	Creature string
	Corpse   string
}

func (CreatureDied) Kind() Kind { return KindCreatureDied }

// AttackedBy reports a counterattack hit.
type AttackedBy struct {
	sealedOutcome
	Creature  string
	Item      ItemRef
	Roll      int
	Damage    int
	HitPoints int
	Max       int
}

func (AttackedBy) Kind() Kind { return KindAttackedBy }

// CreatureMissed reports a counterattack miss.
type CreatureMissed struct {
	sealedOutcome
	Creature string
	Item     ItemRef
	Roll     int
}

func (CreatureMissed) Kind() Kind { return KindCreatureMissed }

// CharacterDied ends the game.
type CharacterDied struct {
	sealedOutcome
	Creature string
}

func (CharacterDied) Kind() Kind { return KindCharacterDied }

// CreatureAlreadyDead rejects attacking a corpse.
type CreatureAlreadyDead struct {
	sealedOutcome
	Corpse string
}

func (CreatureAlreadyDead) Kind() Kind { return KindCreatureAlready }
