package gameserver_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"

	"github.com/cory-johannsen/advgame/internal/game/character"
	"github.com/cory-johannsen/advgame/internal/game/dice"
	"github.com/cory-johannsen/advgame/internal/game/inventory"
	"github.com/cory-johannsen/advgame/internal/game/npc"
	"github.com/cory-johannsen/advgame/internal/game/outcome"
	"github.com/cory-johannsen/advgame/internal/game/ruleset"
	"github.com/cory-johannsen/advgame/internal/game/state"
	"github.com/cory-johannsen/advgame/internal/game/world"
	"github.com/cory-johannsen/advgame/internal/gameserver"
	"github.com/cory-johannsen/advgame/internal/observability"
)

var average = character.AbilityScores{10, 10, 10, 10, 10, 10}

// newDungeon builds a four-room dungeon:
//
//	        [exit]
//	          | wooden door (open)
//	        hall (chest, closed)
//	          | iron door (locked)
//	closet -- entry -- armory (kobold)
//	   wooden door  doorway
func newDungeon(t testing.TB) *state.GameState {
	t.Helper()
	g := state.New()
	for _, it := range []*inventory.Item{
		{ID: "gold_coin", Title: "gold coin", Kind: inventory.KindCoin, Weight: 0.02, Value: 1},
		{ID: "long_sword", Title: "long sword", Kind: inventory.KindWeapon, Damage: dice.MustParse("1d8"), Weight: 3, Value: 15},
		{ID: "hand_axe", Title: "hand axe", Kind: inventory.KindWeapon, Damage: dice.MustParse("1d6"), Weight: 2, Value: 5},
		{ID: "dagger", Title: "dagger", Kind: inventory.KindWeapon, Damage: dice.MustParse("1d4"), Weight: 1, Value: 2},
		{ID: "leather_armor", Title: "leather armor", Plural: "suits of leather armor", Kind: inventory.KindArmor, ArmorBonus: 2, Weight: 10,
			UsableBy: ruleset.NewClassSet(ruleset.Warrior, ruleset.Thief, ruleset.Priest)},
		{ID: "buckler", Title: "buckler", Kind: inventory.KindShield, ArmorBonus: 1, Weight: 5},
		{ID: "oak_wand", Title: "oak wand", Kind: inventory.KindWand, Damage: dice.MustParse("1d6"), Weight: 0.5},
		{ID: "healing_potion", Title: "healing potion", Kind: inventory.KindPotion, Restores: inventory.RestoresHitPoints, Amount: dice.MustParse("2d4")},
		{ID: "mana_potion", Title: "mana potion", Kind: inventory.KindPotion, Restores: inventory.RestoresManaPoints, Amount: dice.MustParse("2d4")},
		{ID: "iron_key", Title: "iron key", Kind: inventory.KindKey, Opens: inventory.DoorKey},
		{ID: "brass_key", Title: "brass key", Kind: inventory.KindKey, Opens: inventory.ChestKey},
	} {
		require.NoError(t, g.Items.Register(it))
	}

	entry := world.NewRoom("entry", "Entry Hall", "A draughty hall.", 0, 0)
	hall := world.NewRoom("hall", "Long Hall", "A long hall.", 0, -1)
	armory := world.NewRoom("armory", "Armory", "Racks of broken spears.", 1, 0)
	closet := world.NewRoom("closet", "Closet", "A cramped closet.", -1, 0)
	entry.Exits[world.North] = hall.ID
	entry.Exits[world.East] = armory.ID
	entry.Exits[world.West] = closet.ID
	hall.Exits[world.South] = entry.ID
	hall.Exits[world.North] = world.ExitRoomID
	armory.Exits[world.West] = entry.ID
	closet.Exits[world.East] = entry.ID
	for _, r := range []*world.Room{entry, hall, armory, closet} {
		require.NoError(t, g.Rooms.Add(r))
	}

	iron := world.NewDoor(world.IronDoor, entry.ID, hall.ID)
	iron.Closed, iron.Locked = true, true
	exit := world.NewDoor(world.WoodenDoor, hall.ID, world.ExitRoomID)
	exit.Title = "oak door"
	for _, d := range []*world.Door{
		iron,
		world.NewDoor(world.Doorway, entry.ID, armory.ID),
		world.NewDoor(world.WoodenDoor, entry.ID, closet.ID),
		exit,
	} {
		require.NoError(t, g.Doors.Add(d))
	}

	chest := world.NewChest("hall_chest", "chest")
	chest.Closed = true
	require.NoError(t, chest.Contents.Add(item(t, g, "mana_potion"), 2))
	require.NoError(t, chest.Contents.Add(item(t, g, "gold_coin"), 5))
	require.NoError(t, g.Containers.Add(chest))
	hall.ContainerID = chest.ID

	kobold := &npc.Creature{Sheet: character.NewSheet(ruleset.Warrior, average, 5), ID: "kobold", Title: "kobold", Description: "A small, yappy reptile."}
	require.NoError(t, kobold.Inventory.Add(item(t, g, "dagger"), 1))
	_, err := kobold.Equipment.Equip(item(t, g, "dagger"))
	require.NoError(t, err)
	require.NoError(t, kobold.Inventory.Add(item(t, g, "gold_coin"), 3))
	require.NoError(t, g.Creatures.Add(kobold))
	armory.CreatureID = kobold.ID

	require.NoError(t, entry.Floor.Add(item(t, g, "hand_axe"), 1))

	g.StartRoom = entry.ID
	g.StartingGear[ruleset.Warrior] = []string{"long_sword", "leather_armor"}
	g.StartingGear[ruleset.Mage] = []string{"oak_wand", "dagger"}
	g.StartingGear[ruleset.Thief] = []string{"dagger"}
	g.StartingGear[ruleset.Priest] = []string{"buckler"}
	require.NoError(t, g.Check())
	return g
}

func item(t testing.TB, g *state.GameState, id string) *inventory.Item {
	t.Helper()
	it, ok := g.Items.Item(id)
	require.True(t, ok, "item %q", id)
	return it
}

type fixture struct {
	t   testing.TB
	svc *gameserver.GameService
	g   *state.GameState
	// src is non-nil when the fixture was built with scripted dice.
	src *dice.FixedSource
}

// newFixture builds a service over a fresh dungeon. With faces the dice are
// scripted; without, they are seeded.
func newFixture(t testing.TB, faces ...int) *fixture {
	return newFixtureWith(t, zaptest.NewLogger(t), nil, faces...)
}

func newFixtureWith(t testing.TB, logger *zap.Logger, metrics *observability.Metrics, faces ...int) *fixture {
	f := &fixture{t: t, g: newDungeon(t)}
	var src dice.Source = dice.NewSeededSource(42)
	if len(faces) > 0 {
		f.src = dice.NewFixedSource(faces...)
		src = f.src
	}
	f.svc = gameserver.NewGameService(dice.NewLoggedRoller(src, logger), logger, metrics)
	return f
}

// play creates a character of class with average abilities and begins the
// game without starting gear.
func (f *fixture) play(class ruleset.Class) *character.Character {
	f.t.Helper()
	f.g.Character = character.Build("Alice", class, average)
	require.NoError(f.t, f.g.Begin())
	return f.g.Character
}

func (f *fixture) give(id string, n int) {
	f.t.Helper()
	require.NoError(f.t, f.g.Character.Inventory.Add(item(f.t, f.g, id), n))
}

func (f *fixture) wear(id string) {
	f.t.Helper()
	f.give(id, 1)
	_, err := f.g.Character.Equipment.Equip(item(f.t, f.g, id))
	require.NoError(f.t, err)
}

func (f *fixture) moveTo(room string) {
	f.t.Helper()
	require.NoError(f.t, f.g.Rooms.SetCursor(room))
}

func (f *fixture) run(line string) []outcome.Outcome {
	f.t.Helper()
	outs, err := f.svc.Process(f.g, line)
	require.NoError(f.t, err, "processing %q", line)
	require.NotEmpty(f.t, outs, "processing %q", line)
	return outs
}

func (f *fixture) door(a, b string) *world.Door {
	f.t.Helper()
	d, ok := f.g.Doors.Between(a, b)
	require.True(f.t, ok)
	return d
}

func (f *fixture) room(id string) *world.Room {
	f.t.Helper()
	r, ok := f.g.Rooms.Get(id)
	require.True(f.t, ok)
	return r
}

func ref(t testing.TB, g *state.GameState, id string) outcome.ItemRef {
	return outcome.Ref(item(t, g, id))
}

func refPtr(t testing.TB, g *state.GameState, id string) *outcome.ItemRef {
	r := ref(t, g, id)
	return &r
}
