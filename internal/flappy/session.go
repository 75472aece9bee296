// Package flappy implements the game core: a side-scroller where the player
// flaps an avatar through gaps in an endless stream of obstacle pairs.
//
// All game state lives in a Session that is advanced one step at a time with
// the pending input events and the current time. The package performs no I/O;
// hosts poll input, call Step, hand the draw list from Render to a Renderer,
// and pace the loop.
package flappy

import (
	"fmt"

	"github.com/vovakirdan/tui-flappy/internal/clock"
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Mode is the screen the game is on.
type Mode int

const (
	ModeStart Mode = iota
	ModePlay
	ModeGameOver
)

// String returns a human-readable name for the mode.
func (m Mode) String() string {
	switch m {
	case ModeStart:
		return "Start"
	case ModePlay:
		return "Play"
	case ModeGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// Transition records a mode change caused by an event.
type Transition struct {
	From  Mode
	To    Mode
	Event core.Event
}

// StepResult is returned by Session.Step.
type StepResult struct {
	Mode        Mode
	Score       int
	Transitions []Transition // Mode changes during this step, in order
	Spawned     int          // Pairs spawned during this step
	Quit        bool         // The host should exit
}

// Snapshot is a copy of every field of a session.
type Snapshot struct {
	Mode          Mode
	Avatar        AvatarState
	Obstacles     []Obstacle
	Score         int
	Ticks         int
	SpawnBaseline int64
	Quit          bool
}

// Session owns all state of one game: mode, avatar, obstacles, score and
// timers. It is not safe for concurrent use; one loop drives it.
type Session struct {
	cfg       config.FlappyConfig
	physics   Physics
	bounds    Bounds
	mode      Mode
	avatar    AvatarState
	obstacles *ObstacleManager
	score     Score
	spawn     clock.IntervalTimer
	ticks     int // Update ticks of the current run
	quit      bool
}

// NewSession creates a session on the Start screen. The configuration is
// validated here so a malformed one never reaches the loop.
func NewSession(cfg config.FlappyConfig, seed int64) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("flappy: %w", err)
	}

	physics := NewPhysics(cfg)
	return &Session{
		cfg:     cfg,
		physics: physics,
		bounds: Bounds{
			Ceiling: cfg.Avatar.Ceiling,
			Floor:   cfg.Window.Height,
		},
		mode:      ModeStart,
		avatar:    physics.Spawn(startY(cfg)),
		obstacles: NewObstacleManager(cfg, seed),
		spawn:     clock.NewIntervalTimer(int64(cfg.Obstacles.SpawnIntervalMs)),
	}, nil
}

// startY is the avatar's vertical center at the start of a run.
func startY(cfg config.FlappyConfig) float64 {
	return float64(cfg.Window.Height) / 2
}

// Step runs one loop iteration at time now (milliseconds on the host's
// clock). Events are dispatched in order through the transition table; the
// world is updated only if the step both began and remains in Play.
func (s *Session) Step(events []core.Event, now int64) StepResult {
	startMode := s.mode
	spawnedBefore := s.obstacles.Spawned()
	var res StepResult

	if s.mode == ModePlay && s.spawn.Fire(now) {
		events = append(events[:len(events):len(events)], core.EventSpawnTimerFired)
	}

	for _, e := range events {
		if s.quit {
			break
		}
		s.dispatch(e, now, &res)
	}

	if !s.quit && startMode == ModePlay && s.mode == ModePlay {
		s.update(now, &res)
	}

	res.Mode = s.mode
	res.Score = s.score.Value()
	res.Spawned = s.obstacles.Spawned() - spawnedBefore
	res.Quit = s.quit
	return res
}

// update advances the world by one tick: avatar physics, obstacle scroll,
// collision test and scoring.
func (s *Session) update(now int64, res *StepResult) {
	s.ticks++
	s.avatar = s.physics.Step(s.avatar)
	s.obstacles.Advance(s.cfg.Physics.ScrollSpeed)

	hit := Collides(s.avatar.Box, s.obstacles.Obstacles(), s.bounds)
	s.score.Add(s.obstacles.MarkPassed(s.avatar.Box.X))

	if hit {
		s.dispatch(core.EventCollision, now, res)
	}
}

// dispatch applies the transition for the current mode and event.
func (s *Session) dispatch(e core.Event, now int64, res *StepResult) {
	t, ok := lookupTransition(s.mode, e)
	if !ok {
		return
	}

	from := s.mode
	if t.enter != nil {
		t.enter(s, now)
	}
	s.mode = t.next

	if from != t.next {
		res.Transitions = append(res.Transitions, Transition{From: from, To: t.next, Event: e})
	}
}

// resetRun prepares a fresh run on entry into Play.
func (s *Session) resetRun(now int64) {
	s.obstacles.Reset()
	s.score.Reset()
	s.avatar = s.physics.Spawn(startY(s.cfg))
	s.spawn.Reset(now)
	s.ticks = 0
}

// Mode returns the current mode.
func (s *Session) Mode() Mode {
	return s.mode
}

// Score returns the displayed score.
func (s *Session) Score() int {
	return s.score.Value()
}

// Quit reports whether a quit event has been received.
func (s *Session) Quit() bool {
	return s.quit
}

// Config returns the configuration the session was created with.
func (s *Session) Config() config.FlappyConfig {
	return s.cfg
}

// Snapshot returns a copy of the session state.
func (s *Session) Snapshot() Snapshot {
	obstacles := make([]Obstacle, len(s.obstacles.Obstacles()))
	copy(obstacles, s.obstacles.Obstacles())

	return Snapshot{
		Mode:          s.mode,
		Avatar:        s.avatar,
		Obstacles:     obstacles,
		Score:         s.score.Value(),
		Ticks:         s.ticks,
		SpawnBaseline: s.spawn.Baseline(),
		Quit:          s.quit,
	}
}
