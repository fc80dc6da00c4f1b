package gameserver

import (
	"fmt"
	"strings"

	"github.com/cory-johannsen/advgame/internal/game/character"
	"github.com/cory-johannsen/advgame/internal/game/command"
	"github.com/cory-johannsen/advgame/internal/game/dice"
	"github.com/cory-johannsen/advgame/internal/game/inventory"
	"github.com/cory-johannsen/advgame/internal/game/outcome"
	"github.com/cory-johannsen/advgame/internal/game/ruleset"
	"github.com/cory-johannsen/advgame/internal/game/state"
)

// CharacterHandler handles character creation, BEGIN GAME, STATUS and INVENTORY.
type CharacterHandler struct {
	roller *dice.Roller
}

// NewCharacterHandler creates a CharacterHandler.
//
// Precondition: roller must be non-nil.
func NewCharacterHandler(roller *dice.Roller) *CharacterHandler {
	return &CharacterHandler{roller: roller}
}

// SetName validates and records the character's name. Once a class is also
// set the character is created and its abilities rolled.
//
// Postcondition: on any invalid part, one InvalidNamePart per bad part and no change.
func (h *CharacterHandler) SetName(g *state.GameState, a command.Args) ([]outcome.Outcome, error) {
	if bad := character.InvalidNameParts(a.Text); len(bad) > 0 {
		outs := make([]outcome.Outcome, len(bad))
		for i, p := range bad {
			outs[i] = outcome.InvalidNamePart{Part: p}
		}
		return outs, nil
	}
	name := strings.Join(strings.Fields(a.Text), " ")
	g.PendingName = name
	outs := one(outcome.NameSet{Name: name})
	switch {
	case g.Character != nil:
		g.Character.Name = name
	case g.PendingClass != ruleset.NoClass:
		outs = append(outs, h.create(g))
	}
	return outs, nil
}

// SetClass records the character's class. With a name already set the
// character is (re)created with fresh abilities.
func (h *CharacterHandler) SetClass(g *state.GameState, a command.Args) ([]outcome.Outcome, error) {
	class, ok := ruleset.ParseClass(a.Text)
	if !ok {
		return one(outcome.InvalidClass{Value: a.Text}), nil
	}
	g.PendingClass = class
	outs := one(outcome.ClassSet{Class: class})
	if g.PendingName != "" {
		outs = append(outs, h.create(g))
	}
	return outs, nil
}

// Reroll rolls new ability scores for the pending character.
func (h *CharacterHandler) Reroll(g *state.GameState, _ command.Args) ([]outcome.Outcome, error) {
	if g.Character == nil {
		return one(outcome.RerollNeedsBoth{MissingName: g.PendingName == "", MissingClass: g.PendingClass == ruleset.NoClass}), nil
	}
	character.Reroll(g.Character, character.RollAbilities(h.roller))
	return one(abilitiesRolled(g.Character)), nil
}

func (h *CharacterHandler) create(g *state.GameState) outcome.Outcome {
	g.Character = character.Build(g.PendingName, g.PendingClass, character.RollAbilities(h.roller))
	return abilitiesRolled(g.Character)
}

func abilitiesRolled(c *character.Character) outcome.AbilitiesRolled {
	return outcome.AbilitiesRolled{
		Name:          c.Name,
		Class:         c.Class,
		Scores:        [6]int(c.Abilities),
		MaxHitPoints:  c.MaxHitPoints,
		MaxManaPoints: c.MaxManaPoints,
	}
}

// BeginGame grants the class's starting gear, equips what fits, and places
// the player in the start room.
//
// Precondition: every starting gear ID is registered.
// Postcondition: on success g.Mode() == state.Ingame.
func (h *CharacterHandler) BeginGame(g *state.GameState, _ command.Args) ([]outcome.Outcome, error) {
	pc := g.Character
	if pc == nil {
		return one(outcome.CannotBeginYet{MissingName: g.PendingName == "", MissingClass: g.PendingClass == ruleset.NoClass}), nil
	}
	var gear []*inventory.Item
	for _, id := range g.StartingGear[pc.Class] {
		it, ok := g.Items.Item(id)
		if !ok {
			return nil, fmt.Errorf("gameserver: starting gear %q for %s is not registered: %w", id, pc.Class, state.ErrInvariant)
		}
		gear = append(gear, it)
	}
	if err := g.Begin(); err != nil {
		return nil, err
	}

	outs := one(outcome.GameBegun{Name: pc.Name, Class: pc.Class})
	for _, it := range gear {
		if err := pc.Inventory.Add(it, 1); err != nil {
			return nil, err
		}
		slot := it.Kind.Slot()
		if slot == inventory.NoSlot || !it.UsableByClass(pc.Class) || pc.Equipment.In(slot) != nil {
			continue
		}
		if _, err := pc.Equipment.Equip(it); err != nil {
			return nil, err
		}
		outs = append(outs, outcome.Equipped{Item: outcome.Ref(it), Slot: slot})
	}
	view, err := roomView(g)
	if err != nil {
		return nil, err
	}
	return append(outs, view), nil
}

// Status reports the character's vital statistics.
func (h *CharacterHandler) Status(g *state.GameState, _ command.Args) ([]outcome.Outcome, error) {
	pc, err := requireCharacter(g)
	if err != nil {
		return nil, err
	}
	st := outcome.Status{
		Name:          pc.Name,
		Class:         pc.Class,
		HitPoints:     pc.HitPoints,
		MaxHitPoints:  pc.MaxHitPoints,
		ManaPoints:    pc.ManaPoints,
		MaxManaPoints: pc.MaxManaPoints,
		ArmorClass:    pc.ArmorClass(),
		Scores:        [6]int(pc.Abilities),
		Burden:        pc.Burden().String(),
		Weight:        pc.Inventory.TotalWeight(),
		Attacking:     refOrNil(pc.AttackItem()),
	}
	for _, it := range pc.Equipment.Worn() {
		st.Equipped = append(st.Equipped, outcome.Ref(it))
	}
	return one(st), nil
}

// Inventory lists what the character carries.
func (h *CharacterHandler) Inventory(g *state.GameState, _ command.Args) ([]outcome.Outcome, error) {
	pc, err := requireCharacter(g)
	if err != nil {
		return nil, err
	}
	return one(outcome.InventoryListing{
		Items:  outcome.Counts(pc.Inventory.Entries(), pc.Equipment.IsEquipped),
		Weight: pc.Inventory.TotalWeight(),
		Burden: pc.Burden().String(),
	}), nil
}
