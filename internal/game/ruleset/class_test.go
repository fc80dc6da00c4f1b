package ruleset_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/advgame/internal/game/ruleset"
)

func TestParseClass_CaseInsensitive(t *testing.T) {
	c, ok := ruleset.ParseClass("mAgE")
	require.True(t, ok)
	assert.Equal(t, ruleset.Mage, c)
	assert.Equal(t, "Mage", c.String())
}

func TestParseClass_Unknown(t *testing.T) {
	c, ok := ruleset.ParseClass("Ranger")
	assert.False(t, ok)
	assert.Equal(t, ruleset.NoClass, c)
}

func TestCapabilities_Table(t *testing.T) {
	w, ok := ruleset.Warrior.Caps()
	require.True(t, ok)
	assert.Equal(t, 10, w.HitDie)
	assert.Equal(t, ruleset.Strength, w.WeaponAbility)
	assert.False(t, w.Spellcaster)

	th, _ := ruleset.Thief.Caps()
	assert.True(t, th.CanPickLock)
	assert.Equal(t, ruleset.Dexterity, th.WeaponAbility)

	m, _ := ruleset.Mage.Caps()
	assert.True(t, m.CanUseWand)
	assert.Equal(t, ruleset.Intelligence, m.CastingAbility)
	assert.True(t, m.SpellTargetsFoe)

	p, _ := ruleset.Priest.Caps()
	assert.Equal(t, ruleset.Wisdom, p.CastingAbility)
	assert.False(t, p.SpellTargetsFoe)

	_, ok = ruleset.NoClass.Caps()
	assert.False(t, ok)
}

func TestClassSet_EmptyAllowsAll(t *testing.T) {
	var s ruleset.ClassSet
	for _, c := range ruleset.AllClasses() {
		assert.True(t, s.Allows(c))
	}
	assert.Equal(t, ruleset.AllClasses(), s.Sorted())
}

func TestClassSet_SortedCanonical(t *testing.T) {
	s := ruleset.NewClassSet(ruleset.Priest, ruleset.Mage)
	assert.Equal(t, []ruleset.Class{ruleset.Mage, ruleset.Priest}, s.Sorted())
	assert.False(t, s.Allows(ruleset.Thief))
}

func TestModifier_Examples(t *testing.T) {
	assert.Equal(t, 0, ruleset.Modifier(10))
	assert.Equal(t, 0, ruleset.Modifier(11))
	assert.Equal(t, -1, ruleset.Modifier(9))
	assert.Equal(t, -1, ruleset.Modifier(8))
	assert.Equal(t, -2, ruleset.Modifier(7))
	assert.Equal(t, 4, ruleset.Modifier(18))
	assert.Equal(t, -4, ruleset.Modifier(3))
}

func TestPropertyModifier_IsFloorHalf(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := rapid.IntRange(1, 30).Draw(t, "score")
		m := ruleset.Modifier(s)
		if 2*m > s-10 || 2*(m+1) <= s-10 {
			t.Fatalf("Modifier(%d)=%d is not floor((s-10)/2)", s, m)
		}
	})
}
