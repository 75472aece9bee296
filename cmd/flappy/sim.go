package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/clock"
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/flappy"
	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
)

var (
	flagTicks     int
	flagFlapEvery int
	flagRealtime  bool
	flagSimSkin   string
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless scripted game",
	Long: `Runs the game without a player. The script presses the flap key on the
first frame and then every --flap-every frames; a press after a crash starts
a new run. The loop stops after --ticks frames and prints a summary.

Without --realtime the run uses a simulated clock and finishes instantly;
the same seed and flags always give the same result.

Examples:
  flappy sim --seed 7
  flappy sim --ticks 5000 --flap-every 45
  flappy sim --realtime --skin classic`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagTicks, "ticks", 3000, "Frames to run")
	simCmd.Flags().IntVar(&flagFlapEvery, "flap-every", 40, "Frames between flaps (0 = never flap)")
	simCmd.Flags().BoolVar(&flagRealtime, "realtime", false, "Run on the wall clock and draw to the terminal")
	simCmd.Flags().StringVar(&flagSimSkin, "skin", "mono", "Skin to draw with")
}

// flapScript is an input source that presses on a fixed schedule and quits
// after a number of frames.
type flapScript struct {
	every int
	limit int
	frame int
}

func (s *flapScript) PollInputs() []core.Event {
	f := s.frame
	s.frame++

	switch {
	case f >= s.limit:
		return []core.Event{core.EventQuit}
	case f == 0, s.every > 0 && f%s.every == 0:
		return []core.Event{core.EventPrimaryAction}
	}
	return nil
}

// simOptions configure a headless run.
type simOptions struct {
	Config    config.FlappyConfig
	Skin      string
	Seed      int64
	Ticks     int
	FlapEvery int
	Clock     clock.Clock
	Cols      int
	Rows      int
	Output    io.Writer // Frames are written here when set
	Logger    *log.Logger
}

// simSummary describes a finished headless run.
type simSummary struct {
	Frames    int
	Runs      int // Play entries
	Crashes   int
	BestScore int
	Spawned   int
	Final     flappy.Snapshot
}

// simulate drives a session through the runner with a scripted input.
func simulate(ctx context.Context, opts simOptions) (simSummary, error) {
	atlas, err := tui.LoadSkin(opts.Skin)
	if err != nil {
		return simSummary{}, err
	}
	session, err := flappy.NewSession(opts.Config, opts.Seed)
	if err != nil {
		return simSummary{}, err
	}
	sprites, err := flappy.ResolveSprites(atlas, opts.Config.Avatar.AnimationFrames)
	if err != nil {
		return simSummary{}, err
	}
	driver, err := clock.NewDriver(opts.Clock, opts.Config.Frame.Rate)
	if err != nil {
		return simSummary{}, err
	}

	w := opts.Config.Window
	raster := tui.NewRaster(atlas, w.Width, w.Height, opts.Cols, opts.Rows)
	if opts.Output != nil {
		raster.SetOutput(opts.Output)
	}

	input := &flapScript{every: opts.FlapEvery, limit: opts.Ticks}
	runner := flappy.NewRunner(session, sprites, input, raster, driver)

	var sum simSummary
	err = runner.Run(ctx, func(res flappy.StepResult) {
		sum.Frames++
		sum.Spawned += res.Spawned
		sum.BestScore = max(sum.BestScore, res.Score)

		for _, t := range res.Transitions {
			opts.Logger.Debug("mode changed", "from", t.From, "to", t.To, "event", t.Event, "frame", sum.Frames)
			switch t.To {
			case flappy.ModePlay:
				sum.Runs++
			case flappy.ModeGameOver:
				sum.Crashes++
				opts.Logger.Info("run over", "run", sum.Runs, "score", res.Score)
			}
		}
	})
	sum.Final = session.Snapshot()
	return sum, err
}

func runSim(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if flagFPS > 0 {
		cfg.Frame.Rate = flagFPS
	}
	if flagTicks <= 0 {
		return fmt.Errorf("--ticks must be positive, got %d", flagTicks)
	}

	logger, err := newLogger(os.Stderr, "flappy-sim")
	if err != nil {
		return err
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	rt := core.DefaultConfig()
	opts := simOptions{
		Config:    cfg,
		Skin:      flagSimSkin,
		Seed:      seed,
		Ticks:     flagTicks,
		FlapEvery: flagFlapEvery,
		Clock:     clock.NewManual(time.Unix(0, 0)),
		Cols:      rt.ScreenW,
		Rows:      rt.ScreenH,
		Logger:    logger,
	}
	if flagRealtime {
		live := runtimeConfig()
		opts.Clock = clock.System{}
		opts.Cols, opts.Rows = live.ScreenW, live.ScreenH
		opts.Output = cmd.OutOrStdout()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	sum, err := simulate(ctx, opts)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if flagRealtime {
		fmt.Fprintln(out)
	}
	fmt.Fprintf(out, "seed:       %d\n", seed)
	fmt.Fprintf(out, "frames:     %d\n", sum.Frames)
	fmt.Fprintf(out, "runs:       %d\n", sum.Runs)
	fmt.Fprintf(out, "crashes:    %d\n", sum.Crashes)
	fmt.Fprintf(out, "spawned:    %d\n", sum.Spawned)
	fmt.Fprintf(out, "best score: %d\n", sum.BestScore)
	fmt.Fprintf(out, "final mode: %s (score %d)\n", sum.Final.Mode, sum.Final.Score)
	return nil
}
