package importer_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/advgame/internal/game/inventory"
	"github.com/cory-johannsen/advgame/internal/game/ruleset"
	"github.com/cory-johannsen/advgame/internal/game/state"
	"github.com/cory-johannsen/advgame/internal/game/world"
	"github.com/cory-johannsen/advgame/internal/importer"
)

// minimal returns the smallest valid dungeon: two rooms side by side, the
// eastern one leading out.
func minimal() *importer.Content {
	return &importer.Content{
		Items: []importer.ItemSpec{
			{Title: "gold coin", Kind: "coin", Weight: 0.02},
			{ID: "sword", Title: "sword", Kind: "weapon", Damage: "1d6"},
		},
		Rooms: []importer.RoomSpec{
			{ID: "a", Title: "Room A"},
			{ID: "b", Title: "Room B", X: 1},
		},
		Doors: []importer.DoorSpec{
			{From: "a", Direction: "east", To: "b", Kind: "doorway"},
			{From: "b", Direction: "north", To: "exit", Kind: "wooden door", Closed: true},
		},
		Game: importer.GameSpec{StartRoom: "a"},
	}
}

func build(t *testing.T, c *importer.Content) (*state.GameState, error) {
	t.Helper()
	return importer.New(zaptest.NewLogger(t)).Build(c)
}

func TestBuild_Minimal(t *testing.T) {
	g, err := build(t, minimal())
	require.NoError(t, err)

	coin, ok := g.Items.Item("gold_coin")
	require.True(t, ok, "id defaults from the title")
	assert.Equal(t, inventory.KindCoin, coin.Kind)

	a, ok := g.Rooms.Get("a")
	require.True(t, ok)
	b, ok := g.Rooms.Get("b")
	require.True(t, ok)
	assert.Equal(t, map[world.Direction]string{world.East: "b"}, a.Exits)
	assert.Equal(t, map[world.Direction]string{world.West: "a", world.North: world.ExitRoomID}, b.Exits)

	exit, ok := g.Doors.Between("b", world.ExitRoomID)
	require.True(t, ok)
	assert.True(t, exit.IsExit())
	assert.True(t, exit.Closed)
	assert.Equal(t, "wooden door", exit.Title)

	assert.Equal(t, "a", g.StartRoom)
	assert.Equal(t, state.Pregame, g.Mode())
}

func TestBuild_FieldValidation(t *testing.T) {
	c := minimal()
	c.Items[0].Kind = "gem"
	c.Items[1].Damage = "banana"
	c.Rooms[0].ID = "Room A"
	c.Doors[0].Direction = "up"
	c.Doors[1].Title = "iron gate"
	c.Creatures = []importer.CreatureSpec{{Title: "bard", Room: "a", Class: "Bard", HitPoints: 0}}

	_, err := build(t, c)
	require.Error(t, err)
	assert.ErrorIs(t, err, importer.ErrInvalidContent)
	for _, want := range []string{
		`items[0].kind must be one of [weapon armor shield wand potion coin key], got "gem"`,
		`items[1].damage "banana" is not a dice expression`,
		`rooms[0].id "Room A" must be lower-case letters, digits and underscores`,
		`doors[0].direction "up" is not a direction`,
		`doors[1].title "iron gate" must end in "door" or "doorway"`,
		`creatures[0].class "Bard" is not a class`,
		`creatures[0].hit_points must be at least 1`,
	} {
		assert.Contains(t, err.Error(), want)
	}
}

func TestBuild_RequiredSections(t *testing.T) {
	_, err := build(t, &importer.Content{})
	require.Error(t, err)
	for _, want := range []string{"items is required", "rooms is required", "doors is required", "game.start_room is required"} {
		assert.Contains(t, err.Error(), want)
	}
}

func TestBuild_CrossReferences(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(c *importer.Content)
		want   string
	}{
		{"unknown door room", func(c *importer.Content) { c.Doors[0].To = "c" }, `unknown room "c"`},
		{"direction disagrees with grid", func(c *importer.Content) { c.Rooms[1].X = 2 }, `room "b" at (2,0) is not east of "a" at (0,0)`},
		{"no exit", func(c *importer.Content) { c.Doors = c.Doors[:1] }, "exactly one exit door, found 0"},
		{"two exits", func(c *importer.Content) {
			c.Doors = append(c.Doors, importer.DoorSpec{From: "a", Direction: "west", To: "exit", Kind: "doorway"})
		}, "exactly one exit door, found 2"},
		{"unknown start room", func(c *importer.Content) { c.Game.StartRoom = "z" }, `game start_room: unknown room "z"`},
		{"unknown floor item", func(c *importer.Content) {
			c.Rooms[0].Floor = []importer.Stack{{Item: "gem", Quantity: 1}}
		}, `room a floor: unknown item "gem"`},
		{"duplicate exit direction", func(c *importer.Content) {
			c.Doors = append(c.Doors, importer.DoorSpec{From: "b", Direction: "west", To: "a", Kind: "doorway"})
		}, `room "b" already has an exit west`},
		{"shared position", func(c *importer.Content) {
			c.Rooms = append(c.Rooms, importer.RoomSpec{ID: "c", Title: "Room C", X: 1})
		}, `position (1,0) already holds room "b"`},
		{"closed doorway", func(c *importer.Content) { c.Doors[0].Closed = true }, "is closed or locked"},
		{"locked but open", func(c *importer.Content) { c.Doors[1].Closed = false; c.Doors[1].Locked = true }, "locked but open"},
		{"creature beside container", func(c *importer.Content) {
			c.Containers = []importer.ContainerSpec{{ID: "box", Title: "chest", Room: "a"}}
			c.Creatures = []importer.CreatureSpec{{ID: "rat", Title: "rat", Room: "a", Class: "Thief", HitPoints: 2}}
		}, `room "a" holds both a creature and container "box"`},
		{"equipped but not carried", func(c *importer.Content) {
			c.Creatures = []importer.CreatureSpec{{ID: "rat", Title: "rat", Room: "b", Class: "Thief", HitPoints: 2, Equipped: []string{"sword"}}}
		}, `equips "sword" without carrying it`},
		{"unknown starting gear", func(c *importer.Content) {
			c.Game.StartingGear = map[string][]string{"Warrior": {"axe"}}
		}, `game starting_gear Warrior: unknown item "axe"`},
		{"potion without payload", func(c *importer.Content) {
			c.Items = append(c.Items, importer.ItemSpec{Title: "murky potion", Kind: "potion"})
		}, "requires restores and amount"},
		{"duplicate item", func(c *importer.Content) {
			c.Items = append(c.Items, importer.ItemSpec{ID: "sword", Title: "other sword", Kind: "weapon", Damage: "1d4"})
		}, `item ID "sword" already registered`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := minimal()
			tc.mutate(c)
			_, err := build(t, c)
			require.Error(t, err)
			assert.ErrorIs(t, err, importer.ErrInvalidContent)
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}

func TestBuild_CreatureAndChest(t *testing.T) {
	c := minimal()
	c.Items = append(c.Items, importer.ItemSpec{Title: "brass key", Kind: "key", Opens: "chest"})
	c.Containers = []importer.ContainerSpec{{Title: "old chest", Room: "b", Closed: true, Locked: true,
		Contents: []importer.Stack{{Item: "gold_coin", Quantity: 7}}}}
	c.Creatures = []importer.CreatureSpec{{Title: "cave rat", Room: "a", Class: "Warrior", HitPoints: 3,
		Abilities: importer.AbilitySpec{Strength: 6},
		Inventory: []importer.Stack{{Item: "sword", Quantity: 1}, {Item: "brass_key", Quantity: 1}},
		Equipped:  []string{"sword"}}}
	c.Game.StartingGear = map[string][]string{"mage": {"sword"}}

	g, err := build(t, c)
	require.NoError(t, err)

	chest, ok := g.Containers.Get("old_chest")
	require.True(t, ok)
	assert.Equal(t, world.Chest, chest.Kind)
	assert.True(t, chest.Locked)
	assert.Equal(t, 7, chest.Contents.Quantity("gold_coin"))
	b, _ := g.Rooms.Get("b")
	assert.Equal(t, "old_chest", b.ContainerID)

	rat, ok := g.Creatures.Get("cave_rat")
	require.True(t, ok)
	assert.Equal(t, 3, rat.HitPoints)
	assert.Equal(t, 6, rat.Abilities.Get(ruleset.Strength))
	assert.Equal(t, 10, rat.Abilities.Get(ruleset.Dexterity))
	require.NotNil(t, rat.AttackItem())
	assert.Equal(t, "sword", rat.AttackItem().ID)

	assert.Equal(t, []string{"sword"}, g.StartingGear[ruleset.Mage])
}

func TestLoad_DefaultDungeon(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	g, err := importer.New(zap.New(core)).Load(filepath.Join("..", "..", "content", "dungeon.yaml"))
	require.NoError(t, err)
	require.NoError(t, g.Check())

	assert.Equal(t, "gatehouse", g.StartRoom)
	assert.Equal(t, 6, g.Rooms.Len())
	exits := 0
	for _, d := range g.Doors.All() {
		assert.True(t, world.IsDoorTitle(d.Title), d.Title)
		if d.IsExit() {
			exits++
			assert.Equal(t, "barred door", d.Title)
		}
	}
	assert.Equal(t, 1, exits)
	for _, class := range ruleset.AllClasses() {
		assert.NotEmpty(t, g.StartingGear[class], class.String())
	}

	entries := logs.FilterMessage("content loaded").All()
	require.Len(t, entries, 1)
	assert.EqualValues(t, 6, entries[0].ContextMap()["rooms"])
}

const tomlDungeon = `
[[items]]
title = "gold coin"
kind = "coin"

[[items]]
id = "sword"
title = "sword"
kind = "weapon"
damage = "1d6"

[[rooms]]
id = "a"
title = "Room A"

  [[rooms.floor]]
  item = "gold_coin"
  quantity = 2

[[rooms]]
id = "b"
title = "Room B"
x = 1

[[doors]]
from = "a"
direction = "east"
to = "b"
kind = "doorway"

[[doors]]
from = "b"
direction = "north"
to = "exit"
kind = "wooden door"
closed = true

[game]
start_room = "a"

[game.starting_gear]
Warrior = ["sword"]
`

func TestLoad_TOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dungeon.toml")
	require.NoError(t, os.WriteFile(path, []byte(tomlDungeon), 0o644))

	g, err := importer.New(nil).Load(path)
	require.NoError(t, err)
	a, _ := g.Rooms.Get("a")
	assert.Equal(t, 2, a.Floor.Quantity("gold_coin"))
	assert.Equal(t, []string{"sword"}, g.StartingGear[ruleset.Warrior])
	_, ok := g.Doors.Between("b", world.ExitRoomID)
	assert.True(t, ok)
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()
	imp := importer.New(nil)

	_, err := imp.Load(filepath.Join(dir, "dungeon.json"))
	assert.ErrorContains(t, err, "unsupported content file extension")

	_, err = imp.Load(filepath.Join(dir, "missing.yaml"))
	assert.ErrorContains(t, err, "reading content file")

	unknown := filepath.Join(dir, "unknown.yaml")
	require.NoError(t, os.WriteFile(unknown, []byte("items: []\nmonsters: []\n"), 0o644))
	_, err = imp.Load(unknown)
	assert.ErrorContains(t, err, "parsing YAML content")

	unknownTOML := filepath.Join(dir, "unknown.toml")
	require.NoError(t, os.WriteFile(unknownTOML, []byte(tomlDungeon+"\n[extra]\nfoo = 1\n"), 0o644))
	_, err = imp.Load(unknownTOML)
	assert.ErrorContains(t, err, "unknown key")
}

func TestPropertyBuild_DoorMustFollowGrid(t *testing.T) {
	dirs := []string{"north", "east", "south", "west"}
	rapid.Check(t, func(rt *rapid.T) {
		dir := rapid.SampledFrom(dirs).Draw(rt, "direction")
		x := rapid.IntRange(-2, 2).Draw(rt, "x")
		y := rapid.IntRange(-2, 2).Draw(rt, "y")
		if x == 0 && y == 0 {
			return
		}
		c := minimal()
		c.Rooms[1].X, c.Rooms[1].Y = x, y
		c.Doors[0].Direction = dir
		c.Doors[1].Direction = dir

		_, err := importer.New(nil).Build(c)
		d, _ := world.ParseDirection(dir)
		dx, dy := d.Offset()
		if (x == dx && y == dy) != (err == nil) {
			rt.Fatalf("door %s to (%d,%d): err = %v", dir, x, y, err)
		}
	})
}
