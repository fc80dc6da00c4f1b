package character

import (
	"regexp"
	"strings"

	"github.com/cory-johannsen/advgame/internal/game/dice"
	"github.com/cory-johannsen/advgame/internal/game/ruleset"
)

var abilityRoll = dice.MustParse("4d6kh3")

// SpellCost is the mana cost of casting a spell.
const SpellCost = 5

// RollAbilities rolls every ability with 4d6 keep highest 3.
//
// Postcondition: every score is in [3,18].
func RollAbilities(r *dice.Roller) AbilityScores {
	var s AbilityScores
	for _, a := range ruleset.AllAbilities() {
		s[a] = r.Roll(abilityRoll).Total()
	}
	return s
}

// MaxHitPoints returns 3 x hit die + 3 x CON modifier, minimum 1.
func MaxHitPoints(class ruleset.Class, s AbilityScores) int {
	caps, ok := class.Caps()
	if !ok {
		return 1
	}
	return max(1, 3*caps.HitDie+3*s.Modifier(ruleset.Constitution))
}

// MaxManaPoints returns 10 + 5 x casting modifier, minimum 5, for
// spellcasters and 0 for everyone else.
func MaxManaPoints(class ruleset.Class, s AbilityScores) int {
	caps, ok := class.Caps()
	if !ok || !caps.Spellcaster {
		return 0
	}
	return max(5, 10+5*s.Modifier(caps.CastingAbility))
}

// Build creates a Character at full hit and mana points.
//
// Precondition: class is not NoClass.
func Build(name string, class ruleset.Class, s AbilityScores) *Character {
	mp := MaxManaPoints(class, s)
	return &Character{
		Sheet:         NewSheet(class, s, MaxHitPoints(class, s)),
		Name:          name,
		MaxManaPoints: mp,
		ManaPoints:    mp,
	}
}

// Reroll replaces c's ability scores and recomputes its derived maxima.
// Pools are reset to full.
func Reroll(c *Character, s AbilityScores) {
	c.Abilities = s
	c.MaxHitPoints = MaxHitPoints(c.Class, s)
	c.HitPoints = c.MaxHitPoints
	c.MaxManaPoints = MaxManaPoints(c.Class, s)
	c.ManaPoints = c.MaxManaPoints
}

var namePart = regexp.MustCompile(`^[A-Z][a-z]+$`)

// InvalidNameParts splits name on whitespace and returns every part that is
// not a capitalized alphabetic word, in input order.
//
// Postcondition: an empty result with a non-empty name means the name is valid.
func InvalidNameParts(name string) []string {
	var bad []string
	for _, p := range strings.Fields(name) {
		if !namePart.MatchString(p) {
			bad = append(bad, p)
		}
	}
	return bad
}
