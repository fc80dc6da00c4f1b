package gameserver

import (
	"github.com/cory-johannsen/advgame/internal/game/character"
	"github.com/cory-johannsen/advgame/internal/game/combat"
	"github.com/cory-johannsen/advgame/internal/game/command"
	"github.com/cory-johannsen/advgame/internal/game/dice"
	"github.com/cory-johannsen/advgame/internal/game/npc"
	"github.com/cory-johannsen/advgame/internal/game/outcome"
	"github.com/cory-johannsen/advgame/internal/game/state"
	"github.com/cory-johannsen/advgame/internal/observability"
)

var (
	smiteDice = dice.MustParse("3d8")
	healDice  = dice.MustParse("2d8")
)

// CombatHandler handles ATTACK and CAST SPELL.
type CombatHandler struct {
	resolver *combat.Resolver
	metrics  *observability.Metrics
}

// NewCombatHandler creates a CombatHandler.
//
// Precondition: resolver must be non-nil; metrics may be nil.
func NewCombatHandler(resolver *combat.Resolver, metrics *observability.Metrics) *CombatHandler {
	return &CombatHandler{resolver: resolver, metrics: metrics}
}

// foe resolves the creature named name in the current room.
func (h *CombatHandler) foe(g *state.GameState, verb, name string) (scene, *npc.Creature, outcome.Outcome, error) {
	sc, err := currentScene(g)
	if err != nil {
		return scene{}, nil, nil, err
	}
	if cr, ok := sc.creatureNamed(name); ok {
		return sc, cr, nil, nil
	}
	if c, ok := sc.containerNamed(name); ok {
		if c.Kind.Closeable() {
			return sc, nil, outcome.WrongCategory{Verb: verb, Target: outcome.ContainerTarget(c)}, nil
		}
		return sc, nil, outcome.CreatureAlreadyDead{Corpse: c.Title}, nil
	}
	return sc, nil, outcome.NotFound{Category: outcome.CategoryCreature, Name: name, Location: locRoom}, nil
}

// Attack runs one round of combat against the named creature.
//
// Precondition: g is in play.
// Postcondition: the round ends in the creature's death, the character's
// death, or both surviving; never more than one death.
func (h *CombatHandler) Attack(g *state.GameState, a command.Args) ([]outcome.Outcome, error) {
	pc, err := requireCharacter(g)
	if err != nil {
		return nil, err
	}
	sc, cr, rejection, err := h.foe(g, command.Attack, a.Object)
	if err != nil {
		return nil, err
	}
	if rejection != nil {
		return one(rejection), nil
	}
	if pc.AttackItem() == nil {
		return one(outcome.NoAttackItem{Class: pc.Class}), nil
	}
	round, err := h.resolver.Fight(g, sc.room, cr)
	if err != nil {
		return nil, err
	}
	h.metrics.RecordCombatRound()
	return round.Outcomes, nil
}

// CastSpell casts the class spell. Offensive casters strike the named
// creature, which then counterattacks if it survives; healers heal themselves.
//
// Precondition: the player's class is a spellcaster.
func (h *CombatHandler) CastSpell(g *state.GameState, a command.Args) ([]outcome.Outcome, error) {
	pc, err := requireCharacter(g)
	if err != nil {
		return nil, err
	}
	caps, _ := pc.Class.Caps()
	bonus := pc.Abilities.Modifier(caps.CastingAbility)

	if !caps.SpellTargetsFoe {
		if pc.ManaPoints < character.SpellCost {
			return one(outcome.InsufficientMana{Have: pc.ManaPoints, Need: character.SpellCost}), nil
		}
		pc.ManaPoints -= character.SpellCost
		healed := pc.Heal(h.resolver.RollAtLeastOne(healDice, bonus))
		return one(outcome.SpellHealed{Healed: healed, HitPoints: pc.HitPoints, MaxHitPoints: pc.MaxHitPoints, ManaPoints: pc.ManaPoints}), nil
	}

	sc, cr, rejection, err := h.foe(g, command.CastSpell, a.Object)
	if err != nil {
		return nil, err
	}
	if rejection != nil {
		return one(rejection), nil
	}
	if pc.ManaPoints < character.SpellCost {
		return one(outcome.InsufficientMana{Have: pc.ManaPoints, Need: character.SpellCost}), nil
	}
	pc.ManaPoints -= character.SpellCost
	round, err := h.resolver.Smite(g, sc.room, cr, smiteDice, bonus)
	if err != nil {
		return nil, err
	}
	h.metrics.RecordCombatRound()
	return round.Outcomes, nil
}
