// Package handlers turns game outcomes into the text shown to the player.
package handlers

import (
	"fmt"
	"strings"

	"github.com/dekarrin/rosed"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/cory-johannsen/advgame/internal/frontend/console"
	"github.com/cory-johannsen/advgame/internal/game/inventory"
	"github.com/cory-johannsen/advgame/internal/game/outcome"
	"github.com/cory-johannsen/advgame/internal/game/ruleset"
)

const tableWidth = 80

var tableOpts = rosed.Options{
	TableHeaders:             true,
	NoTrailingLineSeparators: true,
}

// TextRenderer renders outcomes as English text, optionally colored.
// A TextRenderer is not safe for concurrent use.
type TextRenderer struct {
	pal   console.Palette
	title cases.Caser
}

// NewTextRenderer creates a renderer.
//
// Postcondition: Returns a non-nil TextRenderer.
func NewTextRenderer(color bool) *TextRenderer {
	return &TextRenderer{
		pal:   console.Palette{Enabled: color},
		title: cases.Title(language.English),
	}
}

// RenderAll renders each outcome in order, one per line.
func (r *TextRenderer) RenderAll(os []outcome.Outcome) string {
	parts := make([]string, 0, len(os))
	for _, o := range os {
		parts = append(parts, r.Render(o))
	}
	return strings.Join(parts, "\n")
}

// Render renders a single outcome.
//
// Postcondition: Returns non-empty text for every kind in outcome.AllKinds.
func (r *TextRenderer) Render(o outcome.Outcome) string {
	switch o := o.(type) {
	case outcome.BadSyntax, outcome.NotRecognized, outcome.NotAllowedNow,
		outcome.ClassRestricted, outcome.GameHasEnded, outcome.QuantityAmbiguous,
		outcome.AmbiguousDoor, outcome.NotFound, outcome.WrongCategory:
		return r.renderCommand(o)
	case outcome.NameSet, outcome.InvalidNamePart, outcome.ClassSet,
		outcome.InvalidClass, outcome.AbilitiesRolled, outcome.RerollNeedsBoth,
		outcome.CannotBeginYet, outcome.GameBegun, outcome.Status, outcome.InventoryListing:
		return r.renderCharacter(o)
	case outcome.Help, outcome.HelpCommand, outcome.Quit:
		return r.renderSystem(o)
	}
	if s, ok := r.renderPlay(o); ok {
		return s
	}
	return r.pal.Colorf(console.BrightRed, "(unhandled outcome %s)", o.Kind())
}

func (r *TextRenderer) renderCommand(o outcome.Outcome) string {
	warn := func(format string, args ...any) string {
		return r.pal.Colorf(console.Yellow, format, args...)
	}
	switch o := o.(type) {
	case outcome.BadSyntax:
		return warn("That is not how %s is used. Try:", o.Verb) + "\n" + syntaxList(o.Syntaxes)
	case outcome.NotRecognized:
		return warn("I don't understand %q.", o.Input) + " You can use: " + strings.Join(o.Allowed, ", ") + "."
	case outcome.NotAllowedNow:
		return warn("You can't use %s right now.", o.Verb) + " You can use: " + strings.Join(o.Allowed, ", ") + "."
	case outcome.ClassRestricted:
		return warn("A %s cannot %s; only %s can.", o.Class, strings.ToLower(o.Verb), classList(o.Classes))
	case outcome.GameHasEnded:
		return warn("The game has ended.")
	case outcome.QuantityAmbiguous:
		return warn("You have %d %s. How many do you want to %s?", o.Available, o.Item.Plural, strings.ToLower(o.Verb))
	case outcome.AmbiguousDoor:
		dirs := make([]string, len(o.Directions))
		for i, d := range o.Directions {
			dirs[i] = string(d)
		}
		return warn("Which %s do you mean: the one to the %s?", o.Title, orList(dirs))
	case outcome.NotFound:
		what := string(o.Category)
		if o.Name != "" {
			what = o.Name
		}
		return warn("You don't see any %s %s.", what, locationPhrase(o.Location))
	case outcome.WrongCategory:
		return warn("You can't %s %s.", strings.ToLower(o.Verb), r.targetPhrase(o.Target))
	}
	return ""
}

func (r *TextRenderer) renderCharacter(o outcome.Outcome) string {
	switch o := o.(type) {
	case outcome.NameSet:
		return fmt.Sprintf("Your name is now %s.", r.pal.Colorize(console.BrightWhite, o.Name))
	case outcome.InvalidNamePart:
		return r.pal.Colorf(console.Yellow, "%q can't be part of a name; names use letters only.", o.Part)
	case outcome.ClassSet:
		return fmt.Sprintf("You are now a %s.", r.pal.Colorize(console.BrightWhite, o.Class.String()))
	case outcome.InvalidClass:
		return r.pal.Colorf(console.Yellow, "%q is not a class. Choose %s.", o.Value, orList(classTitles(ruleset.AllClasses())))
	case outcome.AbilitiesRolled:
		head := fmt.Sprintf("%s the %s rolls:", o.Name, o.Class)
		rows := [][]string{{"Ability", "Score", "Modifier"}}
		for i, a := range ruleset.AllAbilities() {
			rows = append(rows, []string{r.title.String(a.String()), fmt.Sprint(o.Scores[i]), signed(ruleset.Modifier(o.Scores[i]))})
		}
		out := r.pal.Colorize(console.BrightYellow, head) + "\n" + table(rows) + fmt.Sprintf("\nHit points: %d", o.MaxHitPoints)
		if o.MaxManaPoints > 0 {
			out += fmt.Sprintf("  Mana points: %d", o.MaxManaPoints)
		}
		return out
	case outcome.RerollNeedsBoth:
		return r.pal.Colorf(console.Yellow, "Before rolling you must %s.", missingPhrase(o.MissingName, o.MissingClass))
	case outcome.CannotBeginYet:
		return r.pal.Colorf(console.Yellow, "Before the game can begin you must %s.", missingPhrase(o.MissingName, o.MissingClass))
	case outcome.GameBegun:
		return r.pal.Colorf(console.BrightGreen, "%s the %s steps into the dungeon.", o.Name, o.Class)
	case outcome.Status:
		return r.renderStatus(o)
	case outcome.InventoryListing:
		if len(o.Items) == 0 {
			return "You are carrying nothing."
		}
		rows := [][]string{{"Item", "Qty", "Kind", "Worn"}}
		for _, c := range o.Items {
			worn := ""
			if c.Equipped {
				worn = "equipped"
			}
			rows = append(rows, []string{c.Item.Title, fmt.Sprint(c.Quantity), c.Item.Kind.String(), worn})
		}
		return table(rows) + fmt.Sprintf("\nTotal weight %s, %s.", weight(o.Weight), o.Burden)
	}
	return ""
}

func (r *TextRenderer) renderStatus(o outcome.Status) string {
	var b strings.Builder
	b.WriteString(r.pal.Colorize(console.BrightYellow, fmt.Sprintf("%s the %s", o.Name, o.Class)))
	b.WriteString("\n")
	hp := fmt.Sprintf("Hit points %d/%d", o.HitPoints, o.MaxHitPoints)
	if o.HitPoints*4 <= o.MaxHitPoints {
		hp = r.pal.Colorize(console.Red, hp)
	}
	b.WriteString(hp)
	if o.MaxManaPoints > 0 {
		fmt.Fprintf(&b, "  Mana points %d/%d", o.ManaPoints, o.MaxManaPoints)
	}
	fmt.Fprintf(&b, "  Armor class %d\n", o.ArmorClass)

	rows := [][]string{make([]string, 0, 6), make([]string, 0, 6)}
	for i, a := range ruleset.AllAbilities() {
		rows[0] = append(rows[0], r.title.String(a.String()[:3]))
		rows[1] = append(rows[1], fmt.Sprint(o.Scores[i]))
	}
	b.WriteString(table(rows))
	b.WriteString("\n")

	fmt.Fprintf(&b, "Carrying %s, %s.\n", weight(o.Weight), o.Burden)
	if len(o.Equipped) > 0 {
		names := make([]string, len(o.Equipped))
		for i, it := range o.Equipped {
			names[i] = it.Title
		}
		fmt.Fprintf(&b, "Equipped: %s.\n", strings.Join(names, ", "))
	}
	if o.Attacking != nil {
		fmt.Fprintf(&b, "Attacking with %s.", itemPhrase(*o.Attacking, 1))
	} else {
		b.WriteString("You have nothing to attack with.")
	}
	return b.String()
}

func (r *TextRenderer) renderSystem(o outcome.Outcome) string {
	switch o := o.(type) {
	case outcome.Help:
		return r.pal.Colorize(console.BrightCyan, "Commands:") + "\n" +
			rosed.Edit(strings.Join(o.Commands, ", ")).Wrap(tableWidth).String()
	case outcome.HelpCommand:
		return r.pal.Colorize(console.BrightCyan, o.Verb) + ": " + o.Description + "\n" + syntaxList(o.Syntaxes)
	case outcome.Quit:
		return "Farewell."
	}
	return ""
}

func (r *TextRenderer) targetPhrase(t outcome.Target) string {
	if t.Direction != "" {
		return fmt.Sprintf("the %s to the %s", t.Title, t.Direction)
	}
	return "the " + t.Title
}

func table(rows [][]string) string {
	return rosed.Edit("").InsertTableOpts(0, rows, tableWidth, tableOpts).String()
}

func syntaxList(syntaxes [][]string) string {
	lines := make([]string, len(syntaxes))
	for i, s := range syntaxes {
		lines[i] = "  " + strings.Join(s, " ")
	}
	return strings.Join(lines, "\n")
}

// itemPhrase names n of an item: "a dagger", "a suit of chain mail",
// "3 gold coins".
func itemPhrase(it outcome.ItemRef, n int) string {
	if n != 1 {
		return fmt.Sprintf("%d %s", n, it.Plural)
	}
	if it.Kind == inventory.KindArmor {
		return "a suit of " + it.Title
	}
	return article(it.Title) + " " + it.Title
}

func article(word string) string {
	if word != "" && strings.ContainsRune("aeiouAEIOU", rune(word[0])) {
		return "an"
	}
	return "a"
}

func locationPhrase(loc string) string {
	switch loc {
	case "inventory":
		return "in your inventory"
	case "floor":
		return "on the floor"
	case "room", "":
		return "here"
	}
	return "in the " + loc
}

func missingPhrase(name, class bool) string {
	switch {
	case name && class:
		return "set a name and a class"
	case name:
		return "set a name"
	}
	return "set a class"
}

func classTitles(cs []ruleset.Class) []string {
	out := make([]string, len(cs))
	for i, c := range cs {
		out[i] = c.String()
	}
	return out
}

func classList(cs []ruleset.Class) string {
	titles := classTitles(cs)
	for i, t := range titles {
		if strings.HasSuffix(t, "f") {
			titles[i] = strings.TrimSuffix(t, "f") + "ves"
		} else {
			titles[i] = t + "s"
		}
	}
	return andList(titles)
}

func andList(words []string) string { return joinList(words, "and") }

func orList(words []string) string { return joinList(words, "or") }

func joinList(words []string, conj string) string {
	switch len(words) {
	case 0:
		return ""
	case 1:
		return words[0]
	}
	return strings.Join(words[:len(words)-1], ", ") + " " + conj + " " + words[len(words)-1]
}

func signed(n int) string { return fmt.Sprintf("%+d", n) }

func weight(w float64) string { return fmt.Sprintf("%g lb", w) }
