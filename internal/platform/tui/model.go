package tui

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/clock"
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/flappy"
)

// Options configure a game host.
type Options struct {
	Config  config.FlappyConfig
	Skin    string
	Runtime core.RuntimeConfig // Terminal size, frame rate override and seed
	Logger  *log.Logger
	Clock   clock.Clock
	Painter *Painter
}

// Model is the Bubble Tea model that runs one game session.
type Model struct {
	id         int64
	runner     *flappy.Runner
	raster     *Raster
	queue      *core.EventQueue
	driver     *clock.Driver
	keys       GameKeyMap
	help       help.Model
	logger     *log.Logger
	standalone bool // Quit the program when the game ends
	last       flappy.StepResult
	err        error
	done       bool
}

// NewModel builds a game host: skin, session, rasterizer and frame driver.
// Any asset or configuration problem is reported here, before the loop runs.
func NewModel(opts Options) (Model, error) {
	rt := opts.Runtime
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}
	if rt.ScreenW <= 0 || rt.ScreenH <= 0 {
		def := core.DefaultConfig()
		rt.ScreenW, rt.ScreenH = def.ScreenW, def.ScreenH
	}
	if rt.TickRate > 0 {
		opts.Config.Frame.Rate = rt.TickRate
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Clock == nil {
		opts.Clock = clock.System{}
	}

	atlas, err := LoadSkin(opts.Skin)
	if err != nil {
		return Model{}, err
	}
	session, err := flappy.NewSession(opts.Config, rt.Seed)
	if err != nil {
		return Model{}, err
	}
	sprites, err := flappy.ResolveSprites(atlas, opts.Config.Avatar.AnimationFrames)
	if err != nil {
		return Model{}, fmt.Errorf("skin %q: %w", opts.Skin, err)
	}
	driver, err := clock.NewDriver(opts.Clock, opts.Config.Frame.Rate)
	if err != nil {
		return Model{}, err
	}

	w := opts.Config.Window
	raster := NewRaster(atlas, w.Width, w.Height, rt.ScreenW, rt.ScreenH-1)
	if opts.Painter != nil {
		raster.SetPainter(opts.Painter)
	}
	queue := &core.EventQueue{}

	h := help.New()
	h.Width = rt.ScreenW

	opts.Logger.Debug("game created",
		"skin", opts.Skin,
		"seed", rt.Seed,
		"fps", opts.Config.Frame.Rate,
		"spawn_interval", opts.Config.Obstacles.SpawnInterval(),
	)

	return Model{
		id:         gameIDs.Add(1),
		runner:     flappy.NewRunner(session, sprites, queue, raster, driver),
		raster:     raster,
		queue:      queue,
		driver:     driver,
		keys:       DefaultGameKeyMap(),
		help:       h,
		logger:     opts.Logger,
		standalone: true,
	}, nil
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.id, 0)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.done {
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		ev := m.keys.MapKey(msg)
		m.queue.Push(ev)
		if ev == core.EventQuit {
			// Quit right away instead of waiting for the next tick
			return m.frame()
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.raster.Resize(msg.Width, msg.Height-1)
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		if msg.Game != m.id {
			return m, nil
		}
		return m.frame()
	}

	return m, nil
}

// frame runs one loop iteration and schedules the next one so the loop
// stays at or below the configured frame rate.
func (m Model) frame() (tea.Model, tea.Cmd) {
	m.driver.Mark()

	res, err := m.runner.Frame()
	m.last = res
	m.logStep(res)

	if err != nil {
		m.logger.Error("frame failed", "error", err)
		m.err = err
		m.done = true
		return m, m.exit()
	}
	if res.Quit {
		m.logger.Info("game ended", "mode", res.Mode, "score", res.Score)
		m.done = true
		return m, m.exit()
	}

	return m, tickCmd(m.id, m.driver.Delay())
}

func (m Model) exit() tea.Cmd {
	if m.standalone {
		return tea.Quit
	}
	return nil
}

func (m Model) logStep(res flappy.StepResult) {
	for _, t := range res.Transitions {
		m.logger.Debug("mode changed", "from", t.From, "to", t.To, "event", t.Event)
		if t.To == flappy.ModeGameOver {
			m.logger.Info("run over", "score", res.Score)
		}
	}
	if res.Spawned > 0 {
		m.logger.Debug("obstacles spawned", "count", res.Spawned)
	}
}

// View renders the last presented frame with a help line.
func (m Model) View() string {
	if m.done {
		return ""
	}
	return m.raster.Frame() + "\n" + m.help.View(m.keys)
}

// Done reports whether the game has ended.
func (m Model) Done() bool {
	return m.done
}

// Err returns the error that stopped the game, if any.
func (m Model) Err() error {
	return m.err
}

// Last returns the result of the most recent step.
func (m Model) Last() flappy.StepResult {
	return m.last
}

// Run starts a Bubble Tea program for one game and returns the final step.
func Run(opts Options) (flappy.StepResult, error) {
	model, err := NewModel(opts)
	if err != nil {
		return flappy.StepResult{}, err
	}

	p := tea.NewProgram(model, tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return flappy.StepResult{}, err
	}

	m, ok := final.(Model)
	if !ok {
		return flappy.StepResult{}, errors.New("tui: unexpected final model")
	}
	return m.Last(), m.Err()
}
