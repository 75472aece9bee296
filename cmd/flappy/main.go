// flappy is a terminal side-scroller: flap through gaps in an endless
// stream of obstacles.
//
// Usage:
//
//	flappy play              - Play with the default skin
//	flappy menu              - Pick a skin interactively, then play
//	flappy skins             - List available skins
//	flappy sim               - Run a headless scripted game
//	flappy config            - Print the effective game configuration
//	flappy serve             - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>        - Override the frame rate cap (default: from config, 90)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--config <path>     - Custom game config YAML
//	--log-level <lvl>   - debug, info, warn or error
//	--log-file <path>   - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/config"

	// Import skins to register them
	_ "github.com/vovakirdan/tui-flappy/internal/skins"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagLogLevel string
	flagLogFile  string
)

// logFile is the open --log-file, closed after the command finishes.
var logFile *os.File

func main() {
	err := rootCmd.Execute()
	if logFile != nil {
		logFile.Close()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flappy",
	Short: "Flappy - flap through the pipes in your terminal",
	Long: `Flappy is a terminal side-scroller. Press space to flap, keep clear of
the pipes, the ceiling and the floor, and score a point for every pair you pass.

Available commands:
  play     - Play directly
  menu     - Interactive skin picker
  skins    - Show all available skins
  sim      - Headless scripted run
  config   - Print the effective configuration
  serve    - Start SSH server for remote play

Examples:
  flappy play
  flappy play --skin mono --seed 42
  flappy menu
  flappy sim --ticks 2000 --flap-every 40
  flappy serve --ssh :2222`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		if flagLogFile == "" {
			return nil
		}
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		logFile = f
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Frame rate cap (0 = from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(skinsCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(serveCmd)
}

// newLogger builds the command logger. Logs go to --log-file when set and to
// fallback otherwise.
func newLogger(fallback io.Writer, prefix string) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	out := fallback
	if logFile != nil {
		out = logFile
	}

	return log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	}), nil
}

// loadConfig loads the game configuration honoring --config.
func loadConfig() (config.FlappyConfig, error) {
	return config.LoadFlappy(flagConfig)
}
