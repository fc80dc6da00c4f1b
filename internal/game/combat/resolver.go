// Package combat resolves the attack and counterattack round between the
// player and a creature.
package combat

import (
	"github.com/cory-johannsen/advgame/internal/game/character"
	"github.com/cory-johannsen/advgame/internal/game/dice"
	"github.com/cory-johannsen/advgame/internal/game/inventory"
)

// AttackResult holds the outcome of a single attack.
type AttackResult struct {
	Item *inventory.Item
	// AttackTotal is d20 + item attack bonus + ability modifier.
	AttackTotal int
	// ArmorClass is the defender's armor class at the time of the roll.
	ArmorClass int
	Hit        bool
	// Damage is the damage applied; zero on a miss.
	Damage int
}

// Resolver rolls attacks with a logged dice roller.
type Resolver struct {
	roller *dice.Roller
}

// NewResolver creates a Resolver.
//
// Precondition: roller is non-nil.
func NewResolver(roller *dice.Roller) *Resolver {
	return &Resolver{roller: roller}
}

// Roller exposes the underlying dice roller.
func (r *Resolver) Roller() *dice.Roller { return r.roller }

// ResolveAttack rolls attacker's equipped attack item against defender and
// applies damage on a hit.
//
// Precondition: attacker.AttackItem() is non-nil.
// Postcondition: on a hit, defender lost result.Damage >= 1 hit points (capped at
// what it had); on a miss, defender is unchanged.
func (r *Resolver) ResolveAttack(attacker, defender *character.Sheet) AttackResult {
	it := attacker.AttackItem()
	mod := attacker.AttackModifier(it)
	res := AttackResult{
		Item:        it,
		AttackTotal: r.roller.D20() + it.AttackBonus + mod,
		ArmorClass:  defender.ArmorClass(),
	}
	res.Hit = res.AttackTotal >= res.ArmorClass
	if !res.Hit {
		return res
	}
	dmg := max(1, r.roller.Roll(it.Damage).Total()+mod)
	res.Damage = defender.TakeDamage(dmg)
	return res
}

// RollAtLeastOne rolls expr plus bonus with a floor of 1.
func (r *Resolver) RollAtLeastOne(expr dice.Expression, bonus int) int {
	return max(1, r.roller.Roll(expr).Total()+bonus)
}
