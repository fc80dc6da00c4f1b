package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/cory-johannsen/advgame/internal/game/outcome"
	"github.com/cory-johannsen/advgame/internal/game/state"
)

// Processor applies one command line to a game.
type Processor interface {
	Process(g *state.GameState, line string) ([]outcome.Outcome, error)
}

// Renderer turns outcomes into display text.
type Renderer interface {
	RenderAll(os []outcome.Outcome) string
}

// Session drives a single game from a Reader to an output stream.
type Session struct {
	in     Reader
	out    *bufio.Writer
	width  int
	svc    Processor
	render Renderer
	logger *zap.Logger
	// prompt is written before each read when the reader does not draw its own.
	prompt string
}

// NewSession wires a session. Pass echoPrompt when in does not show a prompt
// itself, as with a DirectReader.
//
// Precondition: in, out, svc and render must be non-nil.
// Postcondition: Returns a Session ready to Run.
func NewSession(in Reader, out io.Writer, svc Processor, render Renderer, width int, echoPrompt bool, logger *zap.Logger) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Session{
		in:     in,
		out:    bufio.NewWriter(out),
		width:  width,
		svc:    svc,
		render: render,
		logger: logger,
	}
	if echoPrompt {
		s.prompt = Prompt
	}
	return s
}

// Run reads commands until the game ends or input runs out.
//
// Postcondition: Returns nil after a terminal outcome or end of input, and a
// non-nil error on an I/O failure or a fatal game error. After a fatal error
// g must be discarded.
func (s *Session) Run(g *state.GameState) error {
	if err := s.write(Welcome); err != nil {
		return err
	}
	for {
		if s.prompt != "" {
			if err := s.writeRaw(s.prompt); err != nil {
				return err
			}
		}
		line, err := s.in.ReadCommand()
		if errors.Is(err, io.EOF) {
			s.logger.Info("input closed", zap.String("game_id", g.ID.String()))
			return nil
		}
		if err != nil {
			return fmt.Errorf("reading command: %w", err)
		}

		outs, err := s.svc.Process(g, line)
		if err != nil {
			return fmt.Errorf("processing %q: %w", line, err)
		}
		if err := s.write(s.render.RenderAll(outs)); err != nil {
			return err
		}
		for _, o := range outs {
			if outcome.IsTerminal(o) {
				s.logger.Info("game over",
					zap.String("game_id", g.ID.String()),
					zap.String("outcome", string(o.Kind())),
				)
				return nil
			}
		}
	}
}

// Welcome is written when a session starts.
const Welcome = "Welcome, adventurer. SET NAME, SET CLASS and BEGIN GAME when ready; HELP lists what you can do."

func (s *Session) write(text string) error {
	return s.writeRaw(Wrap(text, s.width) + "\n")
}

func (s *Session) writeRaw(text string) error {
	if _, err := s.out.WriteString(text); err != nil {
		return fmt.Errorf("could not write output: %w", err)
	}
	if err := s.out.Flush(); err != nil {
		return fmt.Errorf("could not flush output: %w", err)
	}
	return nil
}
