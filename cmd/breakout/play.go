package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
	"github.com/vovakirdan/tui-breakout/internal/platform/term"
	"github.com/vovakirdan/tui-breakout/internal/platform/tui"
)

const (
	rendererTUI   = "tui"
	rendererTcell = "tcell"
)

// errAbandoned reports that the player quit before the game ended.
var errAbandoned = errors.New("game abandoned")

func runPlay(cmd *cobra.Command, _ []string) error {
	run, err := selectRenderer(flagRenderer)
	if err != nil {
		return err
	}

	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(flagLogFile, flagDebug)
	if err != nil {
		return err
	}
	defer closeLog()

	logger.Info("config loaded", "source", source)
	logger.Info("starting", "renderer", flagRenderer,
		"arena", fmt.Sprintf("%dx%d", cfg.Arena.Width, cfg.Arena.Height),
		"blocks", cfg.Blocks.Rows*cfg.Blocks.Cols)

	game := breakout.New(cfg)
	outcome, err := run(game, logger)
	if err != nil {
		logger.Error("renderer failed", "error", err)
		return err
	}

	snap := game.Snapshot()
	logger.Info("finished", "outcome", outcome, "frames", game.Frames(), "hash", snap.Hash())

	if !outcome.Done() {
		return errAbandoned
	}
	return breakout.WriteBanner(cmd.OutOrStdout(), outcome)
}

type runFunc func(*breakout.Game, *log.Logger) (breakout.Outcome, error)

func selectRenderer(name string) (runFunc, error) {
	switch name {
	case rendererTUI:
		return tui.Run, nil
	case rendererTcell:
		return term.Run, nil
	default:
		return nil, fmt.Errorf("unknown renderer %q (want %s or %s)", name, rendererTUI, rendererTcell)
	}
}

// newLogger returns a logger writing to path, or discarding everything
// when path is empty. The returned func closes the log file.
func newLogger(path string, debug bool) (*log.Logger, func(), error) {
	var w io.Writer = io.Discard
	closeFn := func() {}

	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w = f
		//nolint:errcheck // Best-effort close on exit
		closeFn = func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "breakout",
	})
	if debug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, closeFn, nil
}
