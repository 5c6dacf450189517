package main

import (
	"path/filepath"
	"testing"

	"github.com/vovakirdan/blockarcade/internal/config"
	"github.com/vovakirdan/blockarcade/internal/registry"
)

func TestApplyFlags(t *testing.T) {
	defer func() { flagFPS, flagTick, flagAssetsDir = 0, 0, "" }()

	b := applyFlags(config.Defaults())
	if b.Loop != config.DefaultLoopConfig() {
		t.Errorf("Unset flags changed loop config: %+v", b.Loop)
	}

	flagFPS, flagTick, flagAssetsDir = 30, 10, "/tmp/assets"
	b = applyFlags(config.Defaults())
	if b.Loop.FPS != 30 || b.Loop.TickMillis != 10 {
		t.Errorf("Loop = %+v, expected fps 30 and tick 10", b.Loop)
	}
	if b.Sudoku.AssetsDir != "/tmp/assets" {
		t.Errorf("AssetsDir = %q, expected /tmp/assets", b.Sudoku.AssetsDir)
	}
}

func TestSetupFallsBackWhenLogFails(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	defer func() { flagLogFile, flagLogLevel = "", "" }()

	flagLogFile = filepath.Join(t.TempDir(), "arcade.log")
	flagLogLevel = "nonsense"

	s, err := setup()
	if err != nil {
		t.Fatalf("setup() failed: %v", err)
	}
	defer s.close()

	if s.runtime.ScreenW <= 0 || s.runtime.ScreenH <= 0 {
		t.Errorf("Runtime size = %dx%d", s.runtime.ScreenW, s.runtime.ScreenH)
	}
}

func TestGamesRegistered(t *testing.T) {
	for _, id := range []string{"snake", "sudoku", "template"} {
		if !registry.Exists(id) {
			t.Errorf("Game %q not registered", id)
		}
	}
}
