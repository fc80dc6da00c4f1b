package outcome

const (
	KindInsufficientMana Kind = "spell.insufficient_mana"
	KindSpellDamaged     Kind = "spell.damaged"
	KindSpellHealed      Kind = "spell.healed"
)

// InsufficientMana rejects a spell the character cannot afford.
type InsufficientMana struct {
	sealedOutcome
	Have int
	Need int
}

func (InsufficientMana) Kind() Kind { return KindInsufficientMana }

// SpellDamaged reports an offensive spell striking a creature.
type SpellDamaged struct {
	sealedOutcome
	Creature   string
	Damage     int
	CreatureHP int
	ManaPoints int
}

func (SpellDamaged) Kind() Kind { return KindSpellDamaged }

// SpellHealed reports a healing spell on the caster.
type SpellHealed struct {
	sealedOutcome
	Healed       int
	HitPoints    int
	MaxHitPoints int
	ManaPoints   int
}

func (SpellHealed) Kind() Kind { return KindSpellHealed }
