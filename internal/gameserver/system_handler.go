package gameserver

import (
	"github.com/cory-johannsen/advgame/internal/game/command"
	"github.com/cory-johannsen/advgame/internal/game/outcome"
	"github.com/cory-johannsen/advgame/internal/game/state"
)

// SystemHandler handles HELP and QUIT, which are legal in every mode.
type SystemHandler struct {
	commands *command.Registry
}

// NewSystemHandler creates a SystemHandler.
//
// Precondition: commands must be non-nil.
func NewSystemHandler(commands *command.Registry) *SystemHandler {
	return &SystemHandler{commands: commands}
}

// Help lists the commands legal now, or describes the named command.
func (h *SystemHandler) Help(g *state.GameState, a command.Args) ([]outcome.Outcome, error) {
	ingame := g.Mode() == state.Ingame
	if a.Text == "" {
		return one(outcome.Help{Commands: h.commands.Allowed(ingame)}), nil
	}
	cmd, ok := h.commands.Lookup(a.Text)
	if !ok {
		return one(outcome.NotRecognized{Input: a.Text, Allowed: h.commands.Allowed(ingame)}), nil
	}
	return one(outcome.HelpCommand{Verb: cmd.Name, Description: cmd.Help, Syntaxes: cmd.AllSyntaxes()}), nil
}

// Quit ends the game.
//
// Postcondition: g.HasEnded() is true.
func (h *SystemHandler) Quit(g *state.GameState, _ command.Args) ([]outcome.Outcome, error) {
	g.End()
	return one(outcome.Quit{}), nil
}
