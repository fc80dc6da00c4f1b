package console_test

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"

	"github.com/cory-johannsen/advgame/internal/frontend/console"
	"github.com/cory-johannsen/advgame/internal/frontend/handlers"
	"github.com/cory-johannsen/advgame/internal/game/dice"
	"github.com/cory-johannsen/advgame/internal/game/outcome"
	"github.com/cory-johannsen/advgame/internal/game/state"
	"github.com/cory-johannsen/advgame/internal/gameserver"
	"github.com/cory-johannsen/advgame/internal/importer"
)

func TestDirectReader_SkipsBlankLines(t *testing.T) {
	r := console.NewDirectReader(strings.NewReader("\n   \n  look at door \nquit"))
	line, err := r.ReadCommand()
	require.NoError(t, err)
	assert.Equal(t, "look at door", line)

	line, err = r.ReadCommand()
	require.NoError(t, err)
	assert.Equal(t, "quit", line)

	_, err = r.ReadCommand()
	assert.ErrorIs(t, err, io.EOF)
	assert.NoError(t, r.Close())
}

func TestDirectReader_TrailingBlankIsEOF(t *testing.T) {
	r := console.NewDirectReader(strings.NewReader("  \n \t"))
	_, err := r.ReadCommand()
	assert.ErrorIs(t, err, io.EOF)
}

func TestWrap(t *testing.T) {
	assert.Equal(t, "short\nlines", console.Wrap("short\nlines", 10))
	assert.Equal(t, "one two three", console.Wrap("one two three", 0))
	wrapped := console.Wrap("one two three four", 9)
	for _, line := range strings.Split(wrapped, "\n") {
		assert.LessOrEqual(t, len(line), 9)
	}
	assert.Equal(t, "one two three four", strings.Join(strings.Fields(wrapped), " "))
}

func TestWrap_ColorCodesTakeNoWidth(t *testing.T) {
	pal := console.Palette{Enabled: true}
	plain := "The kobold hits you with a dagger for three points of damage."
	colored := pal.Colorize(console.BrightRed, "The kobold hits you") + " with a dagger for " + pal.Colorize(console.Yellow, "three") + " points of damage."
	require.Equal(t, plain, console.StripANSI(colored))

	want := console.Wrap(plain, 20)
	got := console.Wrap(colored, 20)
	assert.Equal(t, want, console.StripANSI(got))
	assert.Equal(t, strings.Count(want, "\n"), strings.Count(got, "\n"))
	assert.Contains(t, got, console.BrightRed)
	assert.Contains(t, got, console.Yellow)
	assert.Equal(t, 2, strings.Count(got, console.Reset))
}

type scripted struct {
	outs [][]outcome.Outcome
	err  error
	seen []string
}

func (s *scripted) Process(_ *state.GameState, line string) ([]outcome.Outcome, error) {
	s.seen = append(s.seen, line)
	if len(s.outs) == 0 {
		return nil, s.err
	}
	next := s.outs[0]
	s.outs = s.outs[1:]
	return next, nil
}

func TestSession_StopsAtTerminalOutcome(t *testing.T) {
	svc := &scripted{outs: [][]outcome.Outcome{
		{outcome.GameHasEnded{}},
		{outcome.Quit{}},
	}}
	var out bytes.Buffer
	s := console.NewSession(console.NewDirectReader(strings.NewReader("status\nquit\nhelp\n")), &out, svc, handlers.NewTextRenderer(false), 0, true, zaptest.NewLogger(t))

	require.NoError(t, s.Run(state.New()))
	assert.Equal(t, []string{"status", "quit"}, svc.seen)
	text := out.String()
	assert.True(t, strings.HasPrefix(text, console.Welcome+"\n> "))
	assert.Contains(t, text, "The game has ended.\n> Farewell.\n")
}

func TestSession_EndOfInputIsNotAnError(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	svc := &scripted{}
	var out bytes.Buffer
	s := console.NewSession(console.NewDirectReader(strings.NewReader("")), &out, svc, handlers.NewTextRenderer(false), 80, false, zap.New(core))

	require.NoError(t, s.Run(state.New()))
	assert.Empty(t, svc.seen)
	assert.Equal(t, 1, logs.FilterMessage("input closed").Len())
}

func TestSession_FatalErrorIsReturned(t *testing.T) {
	svc := &scripted{err: state.ErrInvariant}
	s := console.NewSession(console.NewDirectReader(strings.NewReader("look at door\n")), io.Discard, svc, handlers.NewTextRenderer(false), 80, false, nil)

	err := s.Run(state.New())
	require.Error(t, err)
	assert.True(t, errors.Is(err, state.ErrInvariant))
	assert.Contains(t, err.Error(), `processing "look at door"`)
}

func TestSession_PlaysDefaultDungeon(t *testing.T) {
	logger := zaptest.NewLogger(t)
	g, err := importer.New(logger).Load("../../../content/dungeon.yaml")
	require.NoError(t, err)
	svc := gameserver.NewGameService(dice.NewLoggedRoller(dice.NewSeededSource(7), logger), logger, nil)

	input := strings.Join([]string{
		"set name to Mira",
		"set class to warrior",
		"begin game",
		"status",
		"quit",
		"status",
	}, "\n")
	var out bytes.Buffer
	s := console.NewSession(console.NewDirectReader(strings.NewReader(input)), &out, svc, handlers.NewTextRenderer(true), 80, false, logger)

	require.NoError(t, s.Run(g))
	text := console.StripANSI(out.String())
	assert.Contains(t, text, "Your name is now Mira.")
	assert.Contains(t, text, "Mira the Warrior steps into the dungeon.")
	assert.Contains(t, text, "Gatehouse")
	assert.Contains(t, text, "Attacking with a long sword.")
	assert.True(t, strings.HasSuffix(text, "Farewell.\n"))
	assert.True(t, g.HasEnded())
}
