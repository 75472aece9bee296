package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
	"github.com/vovakirdan/tui-flappy/internal/registry"
	"github.com/vovakirdan/tui-flappy/internal/skins"
)

var flagSkin string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start playing right away.

Controls:
  Space/Up/W/Enter  - Start, flap, continue
  Q/Esc/Ctrl+C      - Quit

Examples:
  flappy play
  flappy play --skin mono
  flappy play --seed 42 --fps 60
  flappy play --config ./my-flappy.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagSkin, "skin", skins.Default, "Skin to draw the game with")
}

func runPlay(_ *cobra.Command, _ []string) error {
	if !registry.Exists(flagSkin) {
		return fmt.Errorf("unknown skin %q (run 'flappy skins' to see available skins)", flagSkin)
	}
	return playSkin(flagSkin)
}

// playSkin runs one local game in the terminal.
func playSkin(skin string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// Bubble Tea owns the terminal, so logs are dropped unless --log-file is set
	logger, err := newLogger(io.Discard, "flappy")
	if err != nil {
		return err
	}

	res, err := tui.Run(tui.Options{
		Config:  cfg,
		Skin:    skin,
		Runtime: runtimeConfig(),
		Logger:  logger,
	})
	if err != nil {
		return fmt.Errorf("run game: %w", err)
	}

	logger.Info("session finished", "skin", skin, "score", res.Score)
	return nil
}

// runtimeConfig collects the terminal size and the global flags.
func runtimeConfig() core.RuntimeConfig {
	rt := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		rt.ScreenW = w
		rt.ScreenH = h
	}
	rt.TickRate = flagFPS
	rt.Seed = flagSeed
	return rt
}
