// Package gameserver turns lines of player input into game-state transitions
// and outcome records. GameService is the dispatch gate; the per-family
// handlers carry out each verb.
package gameserver

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/cory-johannsen/advgame/internal/game/combat"
	"github.com/cory-johannsen/advgame/internal/game/command"
	"github.com/cory-johannsen/advgame/internal/game/dice"
	"github.com/cory-johannsen/advgame/internal/game/outcome"
	"github.com/cory-johannsen/advgame/internal/game/ruleset"
	"github.com/cory-johannsen/advgame/internal/game/state"
	"github.com/cory-johannsen/advgame/internal/observability"
)

// handlerFunc carries out one verb against matched arguments.
//
// Precondition: the dispatch gate has accepted the verb for g's mode and class.
// Postcondition: a user-input rejection is returned as the only outcome and
// leaves g unchanged; a non-nil error is fatal.
type handlerFunc func(g *state.GameState, a command.Args) ([]outcome.Outcome, error)

// GameService is the single entry point for player input.
type GameService struct {
	commands *command.Registry
	logger   *zap.Logger
	metrics  *observability.Metrics

	system    *SystemHandler
	character *CharacterHandler
	world     *WorldHandler
	items     *ItemHandler
	equipment *EquipmentHandler
	locks     *LockHandler
	combat    *CombatHandler

	dispatch map[string]handlerFunc
}

// NewGameService creates a GameService over the built-in verb catalogue.
//
// Precondition: roller must be non-nil. A nil logger discards logs; nil
// metrics record nothing.
// Postcondition: every catalogue verb has a handler.
func NewGameService(roller *dice.Roller, logger *zap.Logger, metrics *observability.Metrics) *GameService {
	if logger == nil {
		logger = zap.NewNop()
	}
	commands := command.DefaultRegistry()
	s := &GameService{
		commands:  commands,
		logger:    logger,
		metrics:   metrics,
		system:    NewSystemHandler(commands),
		character: NewCharacterHandler(roller),
		world:     NewWorldHandler(),
		items:     NewItemHandler(roller),
		equipment: NewEquipmentHandler(),
		locks:     NewLockHandler(),
		combat:    NewCombatHandler(combat.NewResolver(roller), metrics),
	}
	s.dispatch = map[string]handlerFunc{
		command.Attack:    s.combat.Attack,
		command.BeginGame: s.character.BeginGame,
		command.CastSpell: s.combat.CastSpell,
		command.Close:     s.locks.Close,
		command.Drink:     s.items.Drink,
		command.Drop:      s.items.Drop,
		command.Equip:     s.equipment.Equip,
		command.Help:      s.system.Help,
		command.Inventory: s.character.Inventory,
		command.Leave:     s.world.Leave,
		command.Lock:      s.locks.Lock,
		command.LookAt:    s.world.LookAt,
		command.Open:      s.locks.Open,
		command.PickLock:  s.locks.PickLock,
		command.PickUp:    s.items.PickUp,
		command.Put:       s.items.Put,
		command.Quit:      s.system.Quit,
		command.Reroll:    s.character.Reroll,
		command.SetClass:  s.character.SetClass,
		command.SetName:   s.character.SetName,
		command.Status:    s.character.Status,
		command.Take:      s.items.Take,
		command.Unequip:   s.equipment.Unequip,
		command.Unlock:    s.locks.Unlock,
	}
	return s
}

// Commands returns the verb catalogue the service dispatches.
func (s *GameService) Commands() *command.Registry { return s.commands }

// Process handles one line of input.
//
// Precondition: g must be non-nil and owned by the caller for the duration of the call.
// Postcondition: Returns a non-empty outcome sequence, or a non-nil error
// wrapping state.ErrInvariant or state.ErrMisuse after which g must be discarded.
func (s *GameService) Process(g *state.GameState, line string) ([]outcome.Outcome, error) {
	verb := "unknown"
	outs, err := s.process(g, line, &verb)
	if err != nil {
		s.metrics.RecordCommand(verb, observability.ResultFatal)
		s.logger.Error("command failed",
			zap.String("game_id", g.ID.String()),
			zap.String("verb", verb),
			zap.String("input", line),
			zap.Error(err),
		)
		return nil, err
	}
	s.metrics.RecordOutcomes(outcome.Kinds(outs))
	s.logger.Debug("command processed",
		zap.String("game_id", g.ID.String()),
		zap.String("verb", verb),
		zap.String("mode", g.Mode().String()),
		zap.Strings("outcomes", outcome.Kinds(outs)),
	)
	return outs, nil
}

func (s *GameService) process(g *state.GameState, line string, verb *string) ([]outcome.Outcome, error) {
	if g.HasEnded() {
		s.metrics.RecordCommand(*verb, observability.ResultRejected)
		return []outcome.Outcome{outcome.GameHasEnded{}}, nil
	}
	ingame := g.Mode() == state.Ingame

	parsed := s.commands.Parse(line)
	if parsed.Command == nil {
		s.metrics.RecordCommand(*verb, observability.ResultRejected)
		return []outcome.Outcome{outcome.NotRecognized{Input: parsed.Input, Allowed: s.commands.Allowed(ingame)}}, nil
	}
	cmd := parsed.Command
	*verb = cmd.Name

	if rejection := s.gate(g, cmd); rejection != nil {
		s.metrics.RecordCommand(cmd.Name, observability.ResultRejected)
		return []outcome.Outcome{rejection}, nil
	}

	class := playerClass(g)
	args, ok := command.Match(cmd, parsed.Args, class)
	if !ok {
		s.metrics.RecordCommand(cmd.Name, observability.ResultRejected)
		return []outcome.Outcome{outcome.BadSyntax{Verb: cmd.Name, Syntaxes: cmd.Syntaxes(class)}}, nil
	}

	outs, err := s.Execute(g, cmd.Name, args)
	if err != nil {
		return nil, err
	}
	if err := g.Check(); err != nil {
		return nil, fmt.Errorf("after %s: %w", cmd.Name, err)
	}
	s.metrics.RecordCommand(cmd.Name, observability.ResultAccepted)
	return outs, nil
}

// gate applies mode then class restrictions. It returns nil when cmd may run.
func (s *GameService) gate(g *state.GameState, cmd *command.Command) outcome.Outcome {
	ingame := g.Mode() == state.Ingame
	if !allowedIn(cmd, g.Mode()) {
		return outcome.NotAllowedNow{Verb: cmd.Name, Allowed: s.commands.Allowed(ingame)}
	}
	if class := playerClass(g); !cmd.Classes.Allows(class) {
		return outcome.ClassRestricted{Verb: cmd.Name, Class: class, Classes: cmd.Classes.Sorted()}
	}
	return nil
}

// Execute runs the handler for verb with already-matched arguments.
//
// Precondition: verb is legal in g's current mode and for the player's class.
// Postcondition: Returns an error wrapping state.ErrMisuse when the
// precondition is violated; no state is changed in that case.
func (s *GameService) Execute(g *state.GameState, verb string, args command.Args) ([]outcome.Outcome, error) {
	cmd, ok := s.commands.Lookup(verb)
	if !ok {
		return nil, fmt.Errorf("gameserver: unknown verb %q: %w", verb, state.ErrMisuse)
	}
	if !allowedIn(cmd, g.Mode()) {
		return nil, fmt.Errorf("gameserver: %s invoked in mode %s: %w", verb, g.Mode(), state.ErrMisuse)
	}
	if class := playerClass(g); !cmd.Classes.Allows(class) {
		return nil, fmt.Errorf("gameserver: %s invoked by %s: %w", verb, class, state.ErrMisuse)
	}
	h, ok := s.dispatch[cmd.Name]
	if !ok {
		return nil, fmt.Errorf("gameserver: no handler for %q: %w", verb, state.ErrMisuse)
	}
	outs, err := h(g, args)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", cmd.Name, err)
	}
	if len(outs) == 0 {
		return nil, fmt.Errorf("gameserver: %s produced no outcome: %w", cmd.Name, state.ErrInvariant)
	}
	return outs, nil
}

// IsFatal reports whether err is one of the game's fatal error classes.
func IsFatal(err error) bool {
	return errors.Is(err, state.ErrInvariant) || errors.Is(err, state.ErrMisuse)
}

func allowedIn(cmd *command.Command, m state.Mode) bool {
	switch m {
	case state.Pregame:
		return cmd.Modes.Pregame
	case state.Ingame:
		return cmd.Modes.Ingame
	}
	return false
}

func playerClass(g *state.GameState) ruleset.Class {
	if g.Character != nil {
		return g.Character.Class
	}
	return g.PendingClass
}

func one(o outcome.Outcome) []outcome.Outcome { return []outcome.Outcome{o} }
