package combat

import (
	"fmt"

	"github.com/cory-johannsen/advgame/internal/game/character"
	"github.com/cory-johannsen/advgame/internal/game/dice"
	"github.com/cory-johannsen/advgame/internal/game/npc"
	"github.com/cory-johannsen/advgame/internal/game/outcome"
	"github.com/cory-johannsen/advgame/internal/game/ruleset"
	"github.com/cory-johannsen/advgame/internal/game/state"
	"github.com/cory-johannsen/advgame/internal/game/world"
)

// Phase is a state of the combat round state machine.
type Phase int

const (
	Idle Phase = iota
	PlayerAttacking
	FoeDead
	FoeCounterattacks
	RoundEnd
)

// End is how a round finished.
type End int

const (
	// FoeSurvived means both combatants are still standing.
	FoeSurvived End = iota
	// FoeDied means the creature died and became a corpse.
	FoeDied
	// CharacterDied means the counterattack killed the player.
	CharacterDied
)

// Round is the result of one round of combat.
type Round struct {
	Outcomes []outcome.Outcome
	End      End
	// Phases records each state the round passed through, for auditing.
	Phases []Phase
}

// Fight runs one ATTACK round: the player attacks and, if the creature
// survives, it counterattacks. Rounds never repeat on their own.
//
// Precondition: g is in play, room is the current room, foe is alive and
// occupies room, and the player has an attack item.
func (r *Resolver) Fight(g *state.GameState, room *world.Room, foe *npc.Creature) (Round, error) {
	if err := checkCombatants(g, room, foe); err != nil {
		return Round{}, err
	}
	pc := g.Character
	if pc.AttackItem() == nil {
		return Round{}, fmt.Errorf("combat: player has nothing to attack with: %w", ruleset.ErrMisuse)
	}
	round := Round{Phases: []Phase{Idle, PlayerAttacking}}
	res := r.ResolveAttack(&pc.Sheet, &foe.Sheet)
	if res.Hit {
		round.Outcomes = append(round.Outcomes, outcome.AttackHit{
			Creature: foe.Title, Item: outcome.Ref(res.Item), Roll: res.AttackTotal,
			ArmorClass: res.ArmorClass, Damage: res.Damage, CreatureHP: foe.HitPoints,
		})
	} else {
		round.Outcomes = append(round.Outcomes, outcome.AttackMissed{
			Creature: foe.Title, Item: outcome.Ref(res.Item), Roll: res.AttackTotal, ArmorClass: res.ArmorClass,
		})
	}
	return r.afterPlayerTurn(g, room, foe, round)
}

// Smite applies spell damage that always hits, then continues the round as
// Fight does.
//
// Precondition: as for Fight, without the attack item requirement.
func (r *Resolver) Smite(g *state.GameState, room *world.Room, foe *npc.Creature, spell dice.Expression, bonus int) (Round, error) {
	if err := checkCombatants(g, room, foe); err != nil {
		return Round{}, err
	}
	round := Round{Phases: []Phase{Idle, PlayerAttacking}}
	dmg := foe.TakeDamage(r.RollAtLeastOne(spell, bonus))
	round.Outcomes = append(round.Outcomes, outcome.SpellDamaged{
		Creature: foe.Title, Damage: dmg, CreatureHP: foe.HitPoints, ManaPoints: g.Character.ManaPoints,
	})
	return r.afterPlayerTurn(g, room, foe, round)
}

func (r *Resolver) afterPlayerTurn(g *state.GameState, room *world.Room, foe *npc.Creature, round Round) (Round, error) {
	if !foe.IsAlive() {
		corpse, err := g.ConvertToCorpse(room)
		if err != nil {
			return Round{}, err
		}
		round.Phases = append(round.Phases, FoeDead, RoundEnd)
		round.Outcomes = append(round.Outcomes, outcome.CreatureDied{Creature: foe.Title, Corpse: corpse.Title})
		round.End = FoeDied
		return round, nil
	}

	round.Phases = append(round.Phases, FoeCounterattacks)
	round.Outcomes = append(round.Outcomes, r.counterattack(g.Character, foe)...)
	round.Phases = append(round.Phases, RoundEnd)
	if !g.Character.IsAlive() {
		round.Outcomes = append(round.Outcomes, outcome.CharacterDied{Creature: foe.Title})
		round.End = CharacterDied
		g.End()
	}
	return round, nil
}

// counterattack resolves the creature's reply. A creature with nothing to
// attack with does nothing.
func (r *Resolver) counterattack(pc *character.Character, foe *npc.Creature) []outcome.Outcome {
	if foe.AttackItem() == nil {
		return nil
	}
	res := r.ResolveAttack(&foe.Sheet, &pc.Sheet)
	if !res.Hit {
		return []outcome.Outcome{outcome.CreatureMissed{Creature: foe.Title, Item: outcome.Ref(res.Item), Roll: res.AttackTotal}}
	}
	return []outcome.Outcome{outcome.AttackedBy{
		Creature: foe.Title, Item: outcome.Ref(res.Item), Roll: res.AttackTotal,
		Damage: res.Damage, HitPoints: pc.HitPoints, Max: pc.MaxHitPoints,
	}}
}

func checkCombatants(g *state.GameState, room *world.Room, foe *npc.Creature) error {
	switch {
	case g.Mode() != state.Ingame || g.Character == nil:
		return fmt.Errorf("combat: fight outside play (mode %s): %w", g.Mode(), ruleset.ErrMisuse)
	case room.CreatureID != foe.ID:
		return fmt.Errorf("combat: creature %q is not in room %q: %w", foe.ID, room.ID, ruleset.ErrMisuse)
	case !foe.IsAlive() || !g.Character.IsAlive():
		return fmt.Errorf("combat: fight with a dead combatant: %w", ruleset.ErrMisuse)
	}
	return nil
}
