package outcome

import (
	"github.com/cory-johannsen/advgame/internal/game/ruleset"
	"github.com/cory-johannsen/advgame/internal/game/world"
)

const (
	KindBadSyntax         Kind = "command.bad_syntax"
	KindNotRecognized     Kind = "command.not_recognized"
	KindNotAllowedNow     Kind = "command.not_allowed_now"
	KindClassRestricted   Kind = "command.class_restricted"
	KindGameHasEnded      Kind = "command.game_has_ended"
	KindQuantityAmbiguous Kind = "command.quantity_ambiguous"
	KindAmbiguousDoor     Kind = "command.ambiguous_door"
	KindNotFound          Kind = "command.not_found"
	KindWrongCategory     Kind = "command.wrong_category"
)

// BadSyntax names a recognized verb and every syntax it accepts. Each syntax
// is a fixed-order tuple of literal words and placeholders.
type BadSyntax struct {
	sealedOutcome
	Verb     string
	Syntaxes [][]string
}

func (BadSyntax) Kind() Kind { return KindBadSyntax }

// NotRecognized lists the commands legal in the current mode.
type NotRecognized struct {
	sealedOutcome
	Input   string
	Allowed []string
}

func (NotRecognized) Kind() Kind { return KindNotRecognized }

// NotAllowedNow rejects a verb from the other mode.
type NotAllowedNow struct {
	sealedOutcome
	Verb    string
	Allowed []string
}

func (NotAllowedNow) Kind() Kind { return KindNotAllowedNow }

// ClassRestricted rejects a verb the player's class may not use.
type ClassRestricted struct {
	sealedOutcome
	Verb    string
	Class   ruleset.Class
	Classes []ruleset.Class
}

func (ClassRestricted) Kind() Kind { return KindClassRestricted }

// GameHasEnded rejects every command after the game is over.
type GameHasEnded struct{ sealedOutcome }

func (GameHasEnded) Kind() Kind { return KindGameHasEnded }

// QuantityAmbiguous asks how many of a plural item were meant.
type QuantityAmbiguous struct {
	sealedOutcome
	Verb      string
	Item      ItemRef
	Available int
}

func (QuantityAmbiguous) Kind() Kind { return KindQuantityAmbiguous }

// AmbiguousDoor lists the directions of every door matching a title.
type AmbiguousDoor struct {
	sealedOutcome
	Title      string
	Directions []world.Direction
}

func (AmbiguousDoor) Kind() Kind { return KindAmbiguousDoor }

// NotFound reports a named target absent from where it was sought.
type NotFound struct {
	sealedOutcome
	Category Category
	Name     string
	// Location is "inventory", "floor", "room" or a container title.
	Location string
}

func (NotFound) Kind() Kind { return KindNotFound }

// WrongCategory rejects a verb applied to a target that does not support it,
// such as closing a doorway or attacking a corpse.
type WrongCategory struct {
	sealedOutcome
	Verb   string
	Target Target
}

func (WrongCategory) Kind() Kind { return KindWrongCategory }
