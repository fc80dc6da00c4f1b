package gameserver_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/cory-johannsen/advgame/internal/game/command"
	"github.com/cory-johannsen/advgame/internal/game/outcome"
	"github.com/cory-johannsen/advgame/internal/game/ruleset"
	"github.com/cory-johannsen/advgame/internal/game/state"
	"github.com/cory-johannsen/advgame/internal/gameserver"
	"github.com/cory-johannsen/advgame/internal/observability"
)

var pregameVerbs = []string{"BEGIN GAME", "HELP", "QUIT", "REROLL", "SET CLASS", "SET NAME"}

func TestProcess_NotRecognizedListsCurrentMode(t *testing.T) {
	f := newFixture(t)
	outs := f.run("  dance   wildly ")
	assert.Equal(t, []outcome.Outcome{outcome.NotRecognized{Input: "dance wildly", Allowed: pregameVerbs}}, outs)

	outs = f.run("")
	assert.IsType(t, outcome.NotRecognized{}, outs[0])
}

func TestProcess_NotAllowedNow(t *testing.T) {
	f := newFixture(t)
	outs := f.run("drop long sword")
	assert.Equal(t, []outcome.Outcome{outcome.NotAllowedNow{Verb: command.Drop, Allowed: pregameVerbs}}, outs)

	f.play(ruleset.Warrior)
	outs = f.run("set name to Bob")
	require.Len(t, outs, 1)
	nan, ok := outs[0].(outcome.NotAllowedNow)
	require.True(t, ok)
	assert.Equal(t, command.SetName, nan.Verb)
	assert.Contains(t, nan.Allowed, command.Drop)
	assert.NotContains(t, nan.Allowed, command.SetName)
	assert.Equal(t, "Alice", f.g.Character.Name)
}

func TestProcess_ClassRestrictedBeforeSyntax(t *testing.T) {
	f := newFixture(t)
	f.play(ruleset.Warrior)
	outs := f.run("pick lock on north door")
	assert.Equal(t, []outcome.Outcome{outcome.ClassRestricted{
		Verb: command.PickLock, Class: ruleset.Warrior, Classes: []ruleset.Class{ruleset.Thief},
	}}, outs)

	outs = f.run("pick lock")
	assert.IsType(t, outcome.ClassRestricted{}, outs[0])

	outs = f.run("cast spell")
	assert.Equal(t, []outcome.Outcome{outcome.ClassRestricted{
		Verb: command.CastSpell, Class: ruleset.Warrior, Classes: []ruleset.Class{ruleset.Mage, ruleset.Priest},
	}}, outs)
}

func TestProcess_BadSyntaxNamesEveryAlternative(t *testing.T) {
	f := newFixture(t)
	f.play(ruleset.Warrior)
	outs := f.run("drop")
	assert.Equal(t, []outcome.Outcome{outcome.BadSyntax{Verb: command.Drop, Syntaxes: [][]string{
		{"DROP", "<item name>"},
		{"DROP", "<number>", "<item name>"},
	}}}, outs)

	outs = f.run("status please")
	assert.Equal(t, []outcome.Outcome{outcome.BadSyntax{Verb: command.Status, Syntaxes: [][]string{{"STATUS"}}}}, outs)
}

func TestProcess_CastSpellSyntaxDependsOnClass(t *testing.T) {
	mage := newFixture(t)
	mage.play(ruleset.Mage)
	assert.Equal(t, []outcome.Outcome{outcome.BadSyntax{Verb: command.CastSpell, Syntaxes: [][]string{
		{"CAST SPELL", "AT", "<creature name>"},
	}}}, mage.run("cast spell"))

	priest := newFixture(t)
	priest.play(ruleset.Priest)
	assert.Equal(t, []outcome.Outcome{outcome.BadSyntax{Verb: command.CastSpell, Syntaxes: [][]string{
		{"CAST SPELL"},
	}}}, priest.run("cast spell at kobold"))
}

func TestProcess_GameHasEndedRejectsEverything(t *testing.T) {
	f := newFixture(t)
	f.play(ruleset.Warrior)
	assert.Equal(t, []outcome.Outcome{outcome.Quit{}}, f.run("quit"))
	assert.True(t, f.g.HasEnded())
	assert.Equal(t, state.Ended, f.g.Mode())
	for _, line := range []string{"status", "help", "quit", "nonsense"} {
		assert.Equal(t, []outcome.Outcome{outcome.GameHasEnded{}}, f.run(line), line)
	}
}

func TestProcess_QuitInPregame(t *testing.T) {
	f := newFixture(t)
	assert.Equal(t, []outcome.Outcome{outcome.Quit{}}, f.run("QUIT"))
	assert.True(t, f.g.HasEnded())
}

func TestExecute_BypassingTheGateIsMisuse(t *testing.T) {
	f := newFixture(t)
	_, err := f.svc.Execute(f.g, command.Drop, command.Args{Item: "gold coin"})
	require.Error(t, err)
	assert.ErrorIs(t, err, state.ErrMisuse)
	assert.True(t, gameserver.IsFatal(err))

	_, err = f.svc.Execute(f.g, "DANCE", command.Args{})
	assert.ErrorIs(t, err, state.ErrMisuse)

	f.play(ruleset.Warrior)
	_, err = f.svc.Execute(f.g, command.PickLock, command.Args{})
	assert.ErrorIs(t, err, state.ErrMisuse)
}

func TestProcess_BrokenInvariantIsFatal(t *testing.T) {
	f := newFixture(t)
	f.play(ruleset.Warrior)
	iron := f.door("entry", "hall")
	iron.Closed = false // locked but open

	_, err := f.svc.Process(f.g, "status")
	require.Error(t, err)
	assert.ErrorIs(t, err, state.ErrInvariant)
}

func TestProcess_LogsAndMetrics(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	metrics := observability.NewMetrics("test")
	f := newFixtureWith(t, zap.New(core), metrics)
	f.play(ruleset.Warrior)
	f.give("gold_coin", 10)

	f.run("drop 3 gold coins")
	f.run("drop gold coins")
	f.run("fly")

	entries := logs.FilterMessage("command processed").All()
	require.Len(t, entries, 3)
	fields := entries[0].ContextMap()
	assert.Equal(t, command.Drop, fields["verb"])
	assert.Equal(t, "ingame", fields["mode"])
	assert.Equal(t, f.g.ID.String(), fields["game_id"])

	// Handler-level rejections still pass the gate.
	assert.Equal(t, 2.0, testutil.ToFloat64(metrics.CommandsTotal.WithLabelValues(command.Drop, observability.ResultAccepted)))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.CommandsTotal.WithLabelValues("unknown", observability.ResultRejected)))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.OutcomesTotal.WithLabelValues(string(outcome.KindDropped))))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.OutcomesTotal.WithLabelValues(string(outcome.KindQuantityAmbiguous))))
}

func TestProcess_FatalErrorIsLogged(t *testing.T) {
	core, logs := observer.New(zapcore.ErrorLevel)
	f := newFixtureWith(t, zap.New(core), nil)
	f.play(ruleset.Warrior)
	f.door("entry", "hall").Closed = false

	_, err := f.svc.Process(f.g, "inventory")
	require.Error(t, err)
	assert.Equal(t, 1, logs.FilterMessage("command failed").Len())
}

func TestHelp(t *testing.T) {
	f := newFixture(t)
	assert.Equal(t, []outcome.Outcome{outcome.Help{Commands: pregameVerbs}}, f.run("help"))

	outs := f.run("help pick up")
	require.Len(t, outs, 1)
	hc, ok := outs[0].(outcome.HelpCommand)
	require.True(t, ok)
	assert.Equal(t, command.PickUp, hc.Verb)
	assert.NotEmpty(t, hc.Description)
	assert.Equal(t, [][]string{{"PICK UP", "<item name>"}, {"PICK UP", "<number>", "<item name>"}}, hc.Syntaxes)

	outs = f.run("help juggle")
	assert.Equal(t, []outcome.Outcome{outcome.NotRecognized{Input: "juggle", Allowed: pregameVerbs}}, outs)
}
