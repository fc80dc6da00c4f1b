package command

import (
	"strings"

	"github.com/cory-johannsen/advgame/internal/game/ruleset"
	"github.com/cory-johannsen/advgame/internal/game/world"
)

// DoorSpec is a parsed door name: an optional direction and an optional title.
type DoorSpec struct {
	Direction world.Direction
	Title     string
}

// Args are the structured arguments of a matched command.
type Args struct {
	// Grammar is the grammar that matched.
	Grammar  Grammar
	Quantity Quantity
	// Item is the item name, with any article removed.
	Item            string
	ItemPlaceholder Placeholder
	Door            DoorSpec
	HasDoor         bool
	// Object is a chest, corpse, creature or container name.
	Object            string
	ObjectPlaceholder Placeholder
	// Text is free text with the player's spelling: a name, class or command.
	Text     string
	literals []string
}

// Has reports whether the matched grammar used the literal word lit.
func (a Args) Has(lit string) bool {
	lit = strings.ToUpper(lit)
	for _, l := range a.literals {
		if l == lit {
			return true
		}
	}
	return false
}

// Match tries each grammar for class in order and returns the arguments of
// the first that consumes every token.
//
// Postcondition: ok is false when no grammar matches; the caller reports the
// command's syntaxes.
func Match(cmd *Command, tokens []Token, class ruleset.Class) (Args, bool) {
	for _, g := range cmd.GrammarsFor(class) {
		if a, ok := matchElements(g, tokens, Args{Grammar: g}); ok {
			return a, true
		}
	}
	return Args{}, false
}

func matchElements(elems Grammar, toks []Token, a Args) (Args, bool) {
	if len(elems) == 0 {
		return a, len(toks) == 0
	}
	if len(toks) == 0 {
		return a, false
	}
	e := elems[0]
	if e.Literal != "" {
		if strings.ToUpper(toks[0].Folded) != e.Literal {
			return a, false
		}
		a.literals = append(append([]string(nil), a.literals...), e.Literal)
		return matchElements(elems[1:], toks[1:], a)
	}

	role := placeholderRoles[e.Placeholder]
	if role == roleNumber {
		n, ok := ParseNumeral(toks[0].Folded)
		if !ok {
			return a, false
		}
		a.Quantity = Explicit(n)
		return matchElements(elems[1:], toks[1:], a)
	}

	// A final slot takes every remaining token; otherwise try the shortest
	// span first so the following literal is found at its earliest position.
	lo := 1
	if len(elems) == 1 {
		lo = len(toks)
	}
	for k := lo; k <= len(toks); k++ {
		next, ok := fillSlot(e.Placeholder, role, toks[:k], a)
		if !ok {
			continue
		}
		if out, ok := matchElements(elems[1:], toks[k:], next); ok {
			return out, true
		}
	}
	return a, false
}

func fillSlot(p Placeholder, role slotRole, span []Token, a Args) (Args, bool) {
	switch role {
	case roleItem:
		span = stripThe(span)
		if len(span) > 0 && a.Quantity.IsAbsent() && isIndefinite(span[0]) {
			a.Quantity = Article()
			span = span[1:]
		}
		if len(span) == 0 {
			return a, false
		}
		if _, numeral := ParseNumeral(span[0].Folded); numeral {
			return a, false
		}
		a.Item = joinFolded(span)
		a.ItemPlaceholder = p
		return a, true

	case roleDoor:
		span = stripArticle(span)
		if len(span) == 0 {
			return a, false
		}
		var spec DoorSpec
		if d, ok := world.ParseDirection(span[0].Folded); ok {
			spec.Direction = d
			span = span[1:]
		}
		if len(span) > 0 {
			last := span[len(span)-1].Folded
			if last != "door" && last != "doorway" {
				return a, false
			}
			spec.Title = joinFolded(span)
		}
		a.Door = spec
		a.HasDoor = true
		return a, true

	case roleObject:
		span = stripArticle(span)
		if len(span) == 0 {
			return a, false
		}
		a.Object = joinFolded(span)
		a.ObjectPlaceholder = p
		return a, true

	case roleText:
		raw := make([]string, len(span))
		for i, t := range span {
			raw[i] = t.Raw
		}
		a.Text = strings.Join(raw, " ")
		return a, true
	}
	return a, false
}

func stripThe(span []Token) []Token {
	if len(span) > 0 && span[0].Folded == "the" {
		return span[1:]
	}
	return span
}

// stripArticle drops any leading article. Doors and objects carry no
// quantity, so "a" and "an" mean nothing more than "the".
func stripArticle(span []Token) []Token {
	span = stripThe(span)
	if len(span) > 0 && isIndefinite(span[0]) {
		return span[1:]
	}
	return span
}

func isIndefinite(t Token) bool { return t.Folded == "a" || t.Folded == "an" }

func joinFolded(span []Token) string {
	words := make([]string, len(span))
	for i, t := range span {
		words[i] = t.Folded
	}
	return strings.Join(words, " ")
}
