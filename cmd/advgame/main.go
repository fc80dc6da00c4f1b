/*
Advgame plays a single-player dungeon adventure on the terminal.

It loads a dungeon content file, lets the player create a character, and
reads commands until the player wins, dies or quits.

Usage:

	advgame [flags]

The flags are:

	-c/--config FILE
		Read configuration from the given YAML file. Without it defaults and
		ADVGAME_ environment variables are used.

	--content FILE
		Use the given YAML or TOML dungeon file instead of game.content.

	--seed N
		Seed the dice. Zero derives a seed from the clock.

	--direct
		Read commands directly from stdin instead of through readline, even
		when attached to a terminal.

	-v/--version
		Print the version and exit.
*/
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/cory-johannsen/advgame/internal/config"
	"github.com/cory-johannsen/advgame/internal/frontend/console"
	"github.com/cory-johannsen/advgame/internal/frontend/handlers"
	"github.com/cory-johannsen/advgame/internal/game/dice"
	"github.com/cory-johannsen/advgame/internal/gameserver"
	"github.com/cory-johannsen/advgame/internal/importer"
	"github.com/cory-johannsen/advgame/internal/observability"
	"github.com/cory-johannsen/advgame/internal/server"
)

const version = "0.1.0"

const (
	// ExitSuccess indicates the game ended normally.
	ExitSuccess = iota
	// ExitGameError indicates a fatal error while playing.
	ExitGameError
	// ExitInitError indicates a problem before the game started.
	ExitInitError
)

var (
	flagConfig  = pflag.StringP("config", "c", "", "path to a YAML configuration file")
	flagContent = pflag.String("content", "", "path to a YAML or TOML dungeon file")
	flagSeed    = pflag.Uint64("seed", 0, "dice seed; 0 derives one from the clock")
	flagDirect  = pflag.Bool("direct", false, "read commands directly from stdin instead of through readline")
	flagVersion = pflag.BoolP("version", "v", false, "print the version and exit")
)

func main() {
	pflag.Parse()
	if *flagVersion {
		fmt.Println(version)
		return
	}
	os.Exit(run())
}

func run() int {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err)
		return ExitInitError
	}

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: initializing logger: %s\n", err)
		return ExitInitError
	}
	defer func() { _ = logger.Sync() }()

	var metrics *observability.Metrics
	if cfg.Metrics.Enabled {
		metrics = observability.NewMetrics(cfg.Metrics.Namespace)
	}

	g, err := importer.New(logger).Load(cfg.Game.Content)
	if err != nil {
		logger.Error("loading content", zap.String("path", cfg.Game.Content), zap.Error(err))
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err)
		return ExitInitError
	}

	seed := cfg.Game.Seed
	var src dice.Source
	if seed != 0 {
		src = dice.NewSeededSource(seed)
	} else {
		src, seed = dice.NewTimeSource()
	}
	logger.Info("starting game",
		zap.String("game_id", g.ID.String()),
		zap.String("content", cfg.Game.Content),
		zap.Uint64("seed", seed),
	)
	svc := gameserver.NewGameService(dice.NewLoggedRoller(src, logger), logger, metrics)

	in, interactive, err := newReader()
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err)
		return ExitInitError
	}

	render := handlers.NewTextRenderer(cfg.Game.Color && interactive)
	session := console.NewSession(in, os.Stdout, svc, render, cfg.Game.OutputWidth, !interactive, logger)

	var metricsServer *observability.MetricsServer
	if metrics != nil {
		if metricsServer, err = observability.NewMetricsServer(cfg.Metrics.Listen, metrics, logger); err != nil {
			_ = in.Close()
			logger.Error("starting metrics server", zap.Error(err))
			fmt.Fprintf(os.Stderr, "ERROR: %s\n", err)
			return ExitInitError
		}
	}

	// Closing the reader unblocks a pending read so the session returns.
	lc := server.NewLifecycle(logger)
	lc.Add("console", &server.FuncService{
		StartFn: func() error { return session.Run(g) },
		StopFn:  func() { _ = in.Close() },
	})
	if metricsServer != nil {
		lc.Add("metrics", metricsServer)
	}
	if err := lc.Run(context.Background()); err != nil {
		logger.Error("game aborted", zap.String("game_id", g.ID.String()), zap.Error(err))
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err)
		return ExitGameError
	}
	return ExitSuccess
}

// loadConfig reads the config file, if any, and applies flags that were set.
func loadConfig() (config.Config, error) {
	var cfg config.Config
	var err error
	if *flagConfig != "" {
		cfg, err = config.Load(*flagConfig)
	} else {
		cfg, err = config.Default()
	}
	if err != nil {
		return config.Config{}, err
	}
	if pflag.Lookup("content").Changed {
		cfg.Game.Content = *flagContent
	}
	if pflag.Lookup("seed").Changed {
		cfg.Game.Seed = *flagSeed
	}
	return cfg, cfg.Validate()
}

// newReader uses readline only when stdin and stdout are both terminals and
// --direct was not given.
func newReader() (console.Reader, bool, error) {
	if !*flagDirect && isTerminal(os.Stdin) && isTerminal(os.Stdout) {
		r, err := console.NewInteractiveReader()
		if err != nil {
			return nil, false, fmt.Errorf("initializing interactive-mode input reader: %w", err)
		}
		return r, true, nil
	}
	return console.NewDirectReader(os.Stdin), false, nil
}

func isTerminal(f *os.File) bool {
	fi, err := f.Stat()
	return err == nil && fi.Mode()&os.ModeCharDevice != 0
}
