package npc_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/advgame/internal/game/character"
	"github.com/cory-johannsen/advgame/internal/game/inventory"
	"github.com/cory-johannsen/advgame/internal/game/npc"
	"github.com/cory-johannsen/advgame/internal/game/ruleset"
)

func kobold() *npc.Creature {
	return &npc.Creature{
		Sheet: character.NewSheet(ruleset.Warrior, character.AbilityScores{10, 10, 10, 10, 10, 10}, 8),
		ID:    "kobold", Title: "kobold",
	}
}

func TestManager_AddGet(t *testing.T) {
	m := npc.NewManager()
	require.NoError(t, m.Add(kobold()))
	assert.Error(t, m.Add(kobold()))
	c, ok := m.Get("kobold")
	require.True(t, ok)
	assert.Equal(t, "kobold", c.Title)
	assert.Len(t, m.All(), 1)
}

func TestManager_ConvertRequiresDeath(t *testing.T) {
	m := npc.NewManager()
	require.NoError(t, m.Add(kobold()))
	_, err := m.Convert("kobold")
	assert.ErrorIs(t, err, ruleset.ErrMisuse)
}

func TestManager_ConvertOnlyOnce(t *testing.T) {
	m := npc.NewManager()
	k := kobold()
	require.NoError(t, m.Add(k))
	k.TakeDamage(100)
	r, err := m.Convert("kobold")
	require.NoError(t, err)
	assert.Equal(t, "kobold corpse", r.Title)
	assert.True(t, k.Converted())
	_, err = m.Convert("kobold")
	assert.ErrorIs(t, err, ruleset.ErrMisuse)
	_, err = m.Convert("nobody")
	assert.ErrorIs(t, err, ruleset.ErrMisuse)
}

func TestCreature_HealthDescription(t *testing.T) {
	k := kobold()
	assert.Equal(t, "unharmed", k.HealthDescription())
	k.TakeDamage(1)
	assert.Equal(t, "barely scratched", k.HealthDescription())
	k.TakeDamage(7)
	assert.Equal(t, "dead", k.HealthDescription())
}

func TestPropertyConvert_PreservesInventory(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		k := kobold()
		n := rapid.IntRange(0, 6).Draw(t, "items")
		want := map[string]int{}
		for i := 0; i < n; i++ {
			id := rapid.SampledFrom([]string{"a", "b", "c", "d"}).Draw(t, "id")
			q := rapid.IntRange(1, 40).Draw(t, "qty")
			it := &inventory.Item{ID: id, Title: id, Kind: inventory.KindCoin}
			if err := k.Inventory.Add(it, q); err != nil {
				t.Fatal(err)
			}
			want[id] += q
		}
		m := npc.NewManager()
		_ = m.Add(k)
		k.TakeDamage(k.HitPoints)
		r, err := m.Convert(k.ID)
		if err != nil {
			t.Fatal(err)
		}
		if r.Contents.Len() != len(want) {
			t.Fatalf("corpse holds %d items, want %d", r.Contents.Len(), len(want))
		}
		for id, q := range want {
			if got := r.Contents.Quantity(id); got != q {
				t.Fatalf("corpse has %d of %s, want %d", got, id, q)
			}
		}
	})
}
