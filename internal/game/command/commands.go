// Package command provides the verb catalogue, the tokenizer and the grammar
// matcher that turns a line of input into a verb and structured arguments.
package command

import (
	"strings"

	"github.com/cory-johannsen/advgame/internal/game/ruleset"
)

// Categories for organizing commands in help output.
const (
	CategoryCharacter = "character"
	CategoryMovement  = "movement"
	CategoryWorld     = "world"
	CategoryItems     = "items"
	CategoryCombat    = "combat"
	CategorySystem    = "system"
)

// Verb identifiers, spelled as the player types them.
const (
	Attack    = "ATTACK"
	BeginGame = "BEGIN GAME"
	CastSpell = "CAST SPELL"
	Close     = "CLOSE"
	Drink     = "DRINK"
	Drop      = "DROP"
	Equip     = "EQUIP"
	Help      = "HELP"
	Inventory = "INVENTORY"
	Leave     = "LEAVE"
	Lock      = "LOCK"
	LookAt    = "LOOK AT"
	Open      = "OPEN"
	PickLock  = "PICK LOCK"
	PickUp    = "PICK UP"
	Put       = "PUT"
	Quit      = "QUIT"
	Reroll    = "REROLL"
	SetClass  = "SET CLASS"
	SetName   = "SET NAME"
	Status    = "STATUS"
	Take      = "TAKE"
	Unequip   = "UNEQUIP"
	Unlock    = "UNLOCK"
)

// Modes says in which game phases a command is legal.
type Modes struct {
	Pregame bool
	Ingame  bool
}

var (
	pregameOnly = Modes{Pregame: true}
	ingameOnly  = Modes{Ingame: true}
	anyMode     = Modes{Pregame: true, Ingame: true}
)

// Command defines a player-invocable verb.
type Command struct {
	// Name is the canonical verb phrase, e.g. "PICK UP".
	Name string
	// Help is the one-line description shown by HELP <command>.
	Help     string
	Category string
	Modes    Modes
	// Classes restricts the verb to these classes; empty means every class.
	Classes ruleset.ClassSet
	// Grammars are tried in order.
	Grammars []Grammar
	// ClassGrammars replaces Grammars for the listed classes.
	ClassGrammars map[ruleset.Class][]Grammar
}

// GrammarsFor returns the grammars that apply to class c.
func (c *Command) GrammarsFor(class ruleset.Class) []Grammar {
	if gs, ok := c.ClassGrammars[class]; ok {
		return gs
	}
	return c.Grammars
}

// Syntaxes renders GrammarsFor(class) as tuples for bad-syntax outcomes.
func (c *Command) Syntaxes(class ruleset.Class) [][]string {
	gs := c.GrammarsFor(class)
	out := make([][]string, len(gs))
	for i, g := range gs {
		out[i] = g.Tuple(c.Name)
	}
	return out
}

// AllSyntaxes renders every grammar, including class-specific ones, for help.
func (c *Command) AllSyntaxes() [][]string {
	if len(c.ClassGrammars) == 0 {
		return c.Syntaxes(ruleset.NoClass)
	}
	var out [][]string
	seen := map[string]bool{}
	for _, class := range ruleset.AllClasses() {
		for _, t := range c.Syntaxes(class) {
			key := strings.Join(t, " ")
			if !seen[key] {
				seen[key] = true
				out = append(out, t)
			}
		}
	}
	return out
}

// String joins the grammar elements with spaces.
func (g Grammar) String() string {
	parts := make([]string, len(g))
	for i, e := range g {
		parts[i] = e.String()
	}
	return strings.Join(parts, " ")
}

var none = Grammar{}

// BuiltinCommands returns the full verb catalogue.
func BuiltinCommands() []Command {
	doorOrChest := []Grammar{G("<door name>"), G("<chest name>")}
	return []Command{
		{Name: Attack, Help: "Attack the creature in the room.", Category: CategoryCombat, Modes: ingameOnly,
			Grammars: []Grammar{G("<creature name>")}},
		{Name: BeginGame, Help: "Start the game once your character has a name and a class.", Category: CategoryCharacter, Modes: pregameOnly,
			Grammars: []Grammar{none}},
		{Name: CastSpell, Help: "Cast your class spell: mages strike a creature, priests heal themselves.", Category: CategoryCombat, Modes: ingameOnly,
			Classes: ruleset.NewClassSet(ruleset.Mage, ruleset.Priest),
			Grammars: []Grammar{none, G("AT", "<creature name>")},
			ClassGrammars: map[ruleset.Class][]Grammar{
				ruleset.Mage:   {G("AT", "<creature name>")},
				ruleset.Priest: {none},
			}},
		{Name: Close, Help: "Close a door or chest.", Category: CategoryWorld, Modes: ingameOnly,
			Grammars: doorOrChest},
		{Name: Drink, Help: "Drink one or more potions.", Category: CategoryItems, Modes: ingameOnly,
			Grammars: []Grammar{G("<potion name>"), G("<number>", "<potion name>")}},
		{Name: Drop, Help: "Drop items from your inventory onto the floor.", Category: CategoryItems, Modes: ingameOnly,
			Grammars: []Grammar{G("<item name>"), G("<number>", "<item name>")}},
		{Name: Equip, Help: "Wear armor or a shield, or ready a weapon or wand.", Category: CategoryItems, Modes: ingameOnly,
			Grammars: []Grammar{G("<armor name>"), G("<shield name>"), G("<wand name>"), G("<weapon name>")}},
		{Name: Help, Help: "List commands, or describe one command.", Category: CategorySystem, Modes: anyMode,
			Grammars: []Grammar{none, G("<command name>")}},
		{Name: Inventory, Help: "List what you are carrying.", Category: CategoryItems, Modes: ingameOnly,
			Grammars: []Grammar{none}},
		{Name: Leave, Help: "Leave the room through a door.", Category: CategoryMovement, Modes: ingameOnly,
			Grammars: []Grammar{G("USING", "<door name>"), G("VIA", "<door name>"), G("THROUGH", "<door name>"), G("<door name>")}},
		{Name: Lock, Help: "Lock a door or chest with a key.", Category: CategoryWorld, Modes: ingameOnly,
			Grammars: doorOrChest},
		{Name: LookAt, Help: "Examine an item, door, chest, creature or corpse.", Category: CategoryWorld, Modes: ingameOnly,
			Grammars: []Grammar{
				G("<item name>", "IN", "INVENTORY"),
				G("<item name>", "ON", "FLOOR"),
				G("<item name>", "IN", "<chest name>"),
				G("<item name>", "ON", "<corpse name>"),
				G("<door name>"),
				G("<chest name>"),
				G("<creature name>"),
				G("<corpse name>"),
			}},
		{Name: Open, Help: "Open a door or chest.", Category: CategoryWorld, Modes: ingameOnly,
			Grammars: doorOrChest},
		{Name: PickLock, Help: "Pick the lock of a door or chest without a key.", Category: CategoryWorld, Modes: ingameOnly,
			Classes:  ruleset.NewClassSet(ruleset.Thief),
			Grammars: []Grammar{G("ON", "<door name>"), G("ON", "<chest name>")}},
		{Name: PickUp, Help: "Pick items up from the floor.", Category: CategoryItems, Modes: ingameOnly,
			Grammars: []Grammar{G("<item name>"), G("<number>", "<item name>")}},
		{Name: Put, Help: "Put items into a chest or onto a corpse.", Category: CategoryItems, Modes: ingameOnly,
			Grammars: []Grammar{
				G("<item name>", "IN", "<chest name>"),
				G("<number>", "<item name>", "IN", "<chest name>"),
				G("<item name>", "ON", "<corpse name>"),
				G("<number>", "<item name>", "ON", "<corpse name>"),
			}},
		{Name: Quit, Help: "End the game.", Category: CategorySystem, Modes: anyMode,
			Grammars: []Grammar{none}},
		{Name: Reroll, Help: "Roll new ability scores.", Category: CategoryCharacter, Modes: pregameOnly,
			Grammars: []Grammar{none}},
		{Name: SetClass, Help: "Choose your class.", Category: CategoryCharacter, Modes: pregameOnly,
			Grammars: []Grammar{G("TO", "<Warrior, Thief, Mage or Priest>")}},
		{Name: SetName, Help: "Choose your name.", Category: CategoryCharacter, Modes: pregameOnly,
			Grammars: []Grammar{G("TO", "<character name>")}},
		{Name: Status, Help: "Show your hit points, mana, armor class and equipment.", Category: CategoryCharacter, Modes: ingameOnly,
			Grammars: []Grammar{none}},
		{Name: Take, Help: "Take items from a chest or corpse.", Category: CategoryItems, Modes: ingameOnly,
			Grammars: []Grammar{G("<item name>", "FROM", "<container name>"), G("<number>", "<item name>", "FROM", "<container name>")}},
		{Name: Unequip, Help: "Take off armor or a shield, or put away a weapon or wand.", Category: CategoryItems, Modes: ingameOnly,
			Grammars: []Grammar{G("<armor name>"), G("<shield name>"), G("<wand name>"), G("<weapon name>")}},
		{Name: Unlock, Help: "Unlock a door or chest with a key.", Category: CategoryWorld, Modes: ingameOnly,
			Grammars: doorOrChest},
	}
}
