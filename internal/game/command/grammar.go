package command

import "strings"

// Placeholder is a slot in a grammar, rendered verbatim in syntax listings.
type Placeholder string

const (
	ItemName      Placeholder = "<item name>"
	Number        Placeholder = "<number>"
	DoorName      Placeholder = "<door name>"
	ChestName     Placeholder = "<chest name>"
	CreatureName  Placeholder = "<creature name>"
	CorpseName    Placeholder = "<corpse name>"
	PotionName    Placeholder = "<potion name>"
	ArmorName     Placeholder = "<armor name>"
	ShieldName    Placeholder = "<shield name>"
	WandName      Placeholder = "<wand name>"
	WeaponName    Placeholder = "<weapon name>"
	ContainerName Placeholder = "<container name>"
	CommandName   Placeholder = "<command name>"
	CharacterName Placeholder = "<character name>"
	ClassName     Placeholder = "<Warrior, Thief, Mage or Priest>"
)

// slotRole groups placeholders by how they are parsed and where their value
// lands in Args.
type slotRole int

const (
	roleItem slotRole = iota + 1
	roleNumber
	roleDoor
	roleObject
	roleText
)

var placeholderRoles = map[Placeholder]slotRole{
	ItemName:      roleItem,
	PotionName:    roleItem,
	ArmorName:     roleItem,
	ShieldName:    roleItem,
	WandName:      roleItem,
	WeaponName:    roleItem,
	Number:        roleNumber,
	DoorName:      roleDoor,
	ChestName:     roleObject,
	CreatureName:  roleObject,
	CorpseName:    roleObject,
	ContainerName: roleObject,
	CommandName:   roleText,
	CharacterName: roleText,
	ClassName:     roleText,
}

// Element is one position in a grammar: either a literal word (upper case)
// or a placeholder.
type Element struct {
	Literal     string
	Placeholder Placeholder
}

// Lit returns a literal element.
func Lit(word string) Element { return Element{Literal: strings.ToUpper(word)} }

// Slot returns a placeholder element.
func Slot(p Placeholder) Element { return Element{Placeholder: p} }

func (e Element) String() string {
	if e.Literal != "" {
		return e.Literal
	}
	return string(e.Placeholder)
}

// Grammar is one accepted argument shape for a verb. An empty Grammar accepts
// no arguments.
type Grammar []Element

// G builds a Grammar from words: a word starting with '<' is a placeholder,
// anything else a literal.
func G(words ...string) Grammar {
	g := make(Grammar, len(words))
	for i, w := range words {
		if strings.HasPrefix(w, "<") {
			g[i] = Slot(Placeholder(w))
		} else {
			g[i] = Lit(w)
		}
	}
	return g
}

// Tuple renders the grammar, prefixed by the verb, as a fixed-order tuple of
// strings.
func (g Grammar) Tuple(verb string) []string {
	out := make([]string, 0, len(g)+1)
	out = append(out, verb)
	for _, e := range g {
		out = append(out, e.String())
	}
	return out
}
