package character_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/advgame/internal/game/character"
	"github.com/cory-johannsen/advgame/internal/game/dice"
	"github.com/cory-johannsen/advgame/internal/game/inventory"
	"github.com/cory-johannsen/advgame/internal/game/ruleset"
)

func scores(str, dex, con, intl, wis, cha int) character.AbilityScores {
	return character.AbilityScores{str, dex, con, intl, wis, cha}
}

func TestMaxHitPoints_ByClass(t *testing.T) {
	s := scores(10, 10, 14, 10, 10, 10)
	assert.Equal(t, 36, character.MaxHitPoints(ruleset.Warrior, s))
	assert.Equal(t, 24, character.MaxHitPoints(ruleset.Thief, s))
	assert.Equal(t, 18, character.MaxHitPoints(ruleset.Mage, s))
	assert.Equal(t, 30, character.MaxHitPoints(ruleset.Priest, s))
}

func TestMaxHitPoints_MinimumOne(t *testing.T) {
	assert.Equal(t, 1, character.MaxHitPoints(ruleset.Mage, scores(10, 10, 3, 10, 10, 10)))
	assert.Equal(t, 1, character.MaxHitPoints(ruleset.NoClass, scores(10, 10, 3, 10, 10, 10)))
}

func TestMaxManaPoints(t *testing.T) {
	assert.Equal(t, 20, character.MaxManaPoints(ruleset.Mage, scores(10, 10, 10, 14, 10, 10)))
	assert.Equal(t, 5, character.MaxManaPoints(ruleset.Priest, scores(10, 10, 10, 10, 3, 10)))
	assert.Equal(t, 0, character.MaxManaPoints(ruleset.Warrior, scores(10, 10, 10, 18, 18, 10)))
}

func TestRollAbilities_Reproducible(t *testing.T) {
	a := character.RollAbilities(dice.NewLoggedRoller(dice.NewSeededSource(7), nil))
	b := character.RollAbilities(dice.NewLoggedRoller(dice.NewSeededSource(7), nil))
	assert.Equal(t, a, b)
	for _, v := range a {
		assert.GreaterOrEqual(t, v, 3)
		assert.LessOrEqual(t, v, 18)
	}
}

func TestInvalidNameParts(t *testing.T) {
	assert.Empty(t, character.InvalidNameParts("Conan Of Cimmeria"))
	assert.Equal(t, []string{"of", "C1mmeria"}, character.InvalidNameParts("Conan of C1mmeria"))
	assert.Equal(t, []string{"X"}, character.InvalidNameParts("X"))
}

func TestSheet_AttackItem_WandBeatsWeaponForMage(t *testing.T) {
	c := character.Build("Merlin", ruleset.Mage, scores(12, 10, 10, 16, 10, 10))
	sword := &inventory.Item{ID: "dagger", Title: "dagger", Kind: inventory.KindWeapon, Damage: dice.MustParse("1d4")}
	wand := &inventory.Item{ID: "wand", Title: "wand", Kind: inventory.KindWand, Damage: dice.MustParse("2d4")}
	_, _ = c.Equipment.Equip(sword)
	assert.Equal(t, sword, c.AttackItem())
	assert.Equal(t, 1, c.AttackModifier(sword))
	_, _ = c.Equipment.Equip(wand)
	assert.Equal(t, wand, c.AttackItem())
	assert.Equal(t, 3, c.AttackModifier(wand))
	c.Equipment.Unequip(inventory.SlotWand)
	assert.Equal(t, sword, c.AttackItem())
	c.Equipment.Unequip(inventory.SlotWeapon)
	assert.Nil(t, c.AttackItem())
}

func TestSheet_ArmorClass(t *testing.T) {
	c := character.Build("Bob", ruleset.Warrior, scores(10, 14, 10, 10, 10, 10))
	assert.Equal(t, 12, c.ArmorClass())
	_, _ = c.Equipment.Equip(&inventory.Item{ID: "mail", Title: "chain mail", Kind: inventory.KindArmor, ArmorBonus: 5})
	_, _ = c.Equipment.Equip(&inventory.Item{ID: "shield", Title: "shield", Kind: inventory.KindShield, ArmorBonus: 1})
	assert.Equal(t, 18, c.ArmorClass())
}

func TestSheet_CheckDetectsWornButNotCarried(t *testing.T) {
	c := character.Build("Bob", ruleset.Warrior, scores(10, 10, 10, 10, 10, 10))
	mail := &inventory.Item{ID: "mail", Title: "chain mail", Kind: inventory.KindArmor, ArmorBonus: 5}
	_, _ = c.Equipment.Equip(mail)
	assert.ErrorIs(t, c.Check(), ruleset.ErrInvariant)
	require.NoError(t, c.Inventory.Add(mail, 1))
	assert.NoError(t, c.Check())
}

func TestBurdenFor_Thresholds(t *testing.T) {
	assert.Equal(t, character.Unburdened, character.BurdenFor(50, 10))
	assert.Equal(t, character.Burdened, character.BurdenFor(50.5, 10))
	assert.Equal(t, character.Encumbered, character.BurdenFor(150, 10))
	assert.Equal(t, character.Overloaded, character.BurdenFor(151, 10))
}

func TestPropertySheet_DamageAndHealStayInRange(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		maxHP := rapid.IntRange(1, 60).Draw(t, "max")
		s := character.NewSheet(ruleset.Warrior, character.AbilityScores{}, maxHP)
		for _, op := range rapid.SliceOf(rapid.IntRange(-30, 30)).Draw(t, "ops") {
			if op < 0 {
				s.TakeDamage(-op)
			} else {
				s.Heal(op)
			}
			if s.HitPoints < 0 || s.HitPoints > maxHP {
				t.Fatalf("hit points %d outside [0,%d]", s.HitPoints, maxHP)
			}
		}
	})
}
