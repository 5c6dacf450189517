package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/blockarcade/internal/config"
	"github.com/vovakirdan/blockarcade/internal/core"
	"github.com/vovakirdan/blockarcade/internal/logging"
	"github.com/vovakirdan/blockarcade/internal/platform/tui"
)

// session is everything a command needs to start games.
type session struct {
	bundle  config.Bundle
	runtime core.RuntimeConfig
	logger  *log.Logger
	closer  io.Closer
}

// setup loads configuration, applies flag overrides and opens the log.
// Configuration errors are fatal; a log file that cannot be opened only
// disables logging.
func setup() (*session, error) {
	bundle, err := config.Load(flagConfigDir)
	if err != nil {
		return nil, err
	}
	bundle = applyFlags(bundle)
	if err := bundle.Validate(); err != nil {
		return nil, err
	}

	logger, closer, err := logging.Open(flagLogFile, flagLogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
		logger, closer = logging.Discard(), io.NopCloser(nil)
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	logger.Info("starting",
		"fps", bundle.Loop.FPS,
		"tick_ms", bundle.Loop.TickMillis,
		"seed", flagSeed,
		"terminal", fmt.Sprintf("%dx%d", width, height),
	)

	return &session{
		bundle: bundle,
		runtime: core.RuntimeConfig{
			ScreenW: width,
			ScreenH: height,
			Seed:    flagSeed,
		},
		logger: logger,
		closer: closer,
	}, nil
}

// applyFlags overrides configuration with explicitly set flags.
func applyFlags(b config.Bundle) config.Bundle {
	if flagFPS != 0 {
		b.Loop.FPS = flagFPS
	}
	if flagTick != 0 {
		b.Loop.TickMillis = flagTick
	}
	if flagAssetsDir != "" {
		b.Sudoku.AssetsDir = flagAssetsDir
	}
	return b
}

// options builds the TUI options for one game session.
func (s *session) options(fromMenu bool) tui.Options {
	return tui.Options{
		Loop:     s.bundle.Loop,
		Runtime:  s.runtime,
		Logger:   s.logger,
		FromMenu: fromMenu,
	}
}

func (s *session) close() {
	//nolint:errcheck // Best-effort close on exit
	s.closer.Close()
}

// fatal prints err and exits with status 1.
func fatal(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}
