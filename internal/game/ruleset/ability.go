package ruleset

// Ability identifies one of the six ability scores.
type Ability int

const (
	Strength Ability = iota
	Dexterity
	Constitution
	Intelligence
	Wisdom
	Charisma
)

// AllAbilities lists every ability in the order they are rolled and shown.
func AllAbilities() []Ability {
	return []Ability{Strength, Dexterity, Constitution, Intelligence, Wisdom, Charisma}
}

var abilityNames = [...]string{"strength", "dexterity", "constitution", "intelligence", "wisdom", "charisma"}

// String returns the lower-case ability name.
func (a Ability) String() string {
	if a < 0 || int(a) >= len(abilityNames) {
		return "unknown"
	}
	return abilityNames[a]
}

// Modifier returns the ability modifier for a raw score: floor((score-10)/2).
//
// Postcondition: Modifier(10) == 0, Modifier(11) == 0, Modifier(9) == -1.
func Modifier(score int) int {
	d := score - 10
	if d < 0 {
		return (d - 1) / 2
	}
	return d / 2
}
