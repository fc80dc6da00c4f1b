package state_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cory-johannsen/advgame/internal/game/character"
	"github.com/cory-johannsen/advgame/internal/game/inventory"
	"github.com/cory-johannsen/advgame/internal/game/npc"
	"github.com/cory-johannsen/advgame/internal/game/ruleset"
	"github.com/cory-johannsen/advgame/internal/game/state"
	"github.com/cory-johannsen/advgame/internal/game/world"
)

func newGame(t *testing.T) (*state.GameState, *world.Room) {
	t.Helper()
	g := state.New()
	r := world.NewRoom("hall", "Hall", "A long hall.", 0, 0)
	require.NoError(t, g.Rooms.Add(r))
	g.StartRoom = "hall"
	return g, r
}

func TestGameState_ModeTransitions(t *testing.T) {
	g, _ := newGame(t)
	assert.Equal(t, state.Pregame, g.Mode())
	assert.ErrorIs(t, g.Begin(), state.ErrMisuse)

	g.Character = character.Build("Bob", ruleset.Warrior, character.AbilityScores{10, 10, 10, 10, 10, 10})
	require.NoError(t, g.Begin())
	assert.Equal(t, state.Ingame, g.Mode())
	cur, err := g.CurrentRoom()
	require.NoError(t, err)
	assert.Equal(t, "hall", cur.ID)

	assert.ErrorIs(t, g.Begin(), state.ErrMisuse)
	g.End()
	assert.Equal(t, state.Ended, g.Mode())
	assert.True(t, g.HasEnded())
}

func TestGameState_ConvertToCorpse(t *testing.T) {
	g, r := newGame(t)
	k := &npc.Creature{Sheet: character.NewSheet(ruleset.Warrior, character.AbilityScores{}, 5), ID: "kobold", Title: "kobold"}
	gold := &inventory.Item{ID: "gold", Title: "gold coin", Kind: inventory.KindCoin}
	require.NoError(t, k.Inventory.Add(gold, 12))
	require.NoError(t, g.Creatures.Add(k))
	r.CreatureID = "kobold"

	_, err := g.ConvertToCorpse(r)
	assert.ErrorIs(t, err, state.ErrMisuse)

	k.TakeDamage(5)
	corpse, err := g.ConvertToCorpse(r)
	require.NoError(t, err)
	assert.Equal(t, "kobold corpse", corpse.Title)
	assert.Equal(t, 12, corpse.Contents.Quantity("gold"))
	assert.Empty(t, r.CreatureID)
	assert.Equal(t, corpse.ID, r.ContainerID)
	got, ok, err := g.ContainerIn(r)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Same(t, corpse, got)
	assert.NoError(t, g.Check())
}

func TestGameState_CheckFlagsCreatureAndContainer(t *testing.T) {
	g, r := newGame(t)
	r.CreatureID = "x"
	r.ContainerID = "y"
	assert.ErrorIs(t, g.Check(), state.ErrInvariant)
	_, _, err := g.CreatureIn(r)
	assert.ErrorIs(t, err, state.ErrInvariant)
}
