package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-racer/internal/core"
	"github.com/vovakirdan/tui-racer/internal/games/racer"
	"github.com/vovakirdan/tui-racer/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start the racer in this terminal.

Controls:
  ←/→ or A/D   - Steer (pick difficulty on the start screen)
  ↑/↓ or W/S   - Move up/down (when player.vertical is on)
  Enter/Space  - Start, restart or resume
  P            - Pause
  Esc          - End the current run
  Tab          - High scores
  Ctrl+S       - Save a screenshot
  Q/Ctrl+C     - Quit

The terminal is the display, so logs are discarded unless --log-file is set.

Examples:
  racer play
  racer play --difficulty hard
  racer play --config ./my-racer.yaml --log-file racer.log --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	logger, cleanup, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer cleanup()

	racerCfg, err := loadConfig()
	if err != nil {
		return err
	}

	cfg := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		cfg.ScreenW, cfg.ScreenH = w, h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = resolveSeed()

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	opts := []racer.Option{
		racer.WithSeed(cfg.Seed),
		racer.WithLogger(logger),
	}
	if store != nil {
		opts = append(opts, racer.WithStore(store.ForGame(racer.GameID)))
	}
	game := racer.New(racerCfg, opts...)

	logger.Debug("starting game",
		"difficulty", racerCfg.Difficulty,
		"policy", racerCfg.Input.Policy,
		"seed", cfg.Seed,
		"fps", cfg.TickRate,
	)

	if err := tui.Run(game, store, cfg, logger); err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	return nil
}
