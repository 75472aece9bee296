package flappy

import "github.com/vovakirdan/tui-flappy/internal/core"

// transition is one entry of the mode table: the next mode and the action
// run before switching to it.
type transition struct {
	next  Mode
	enter func(s *Session, now int64)
}

// transitions maps mode x event to what happens. Every mode lists every
// event the session can receive; a missing entry is a bug caught by tests.
var transitions = map[Mode]map[core.Event]transition{
	ModeStart: {
		core.EventPrimaryAction:   {next: ModePlay, enter: (*Session).resetRun},
		core.EventSpawnTimerFired: {next: ModeStart},
		core.EventCollision:       {next: ModeStart},
		core.EventQuit:            {next: ModeStart, enter: requestQuit},
	},
	ModePlay: {
		core.EventPrimaryAction:   {next: ModePlay, enter: flap},
		core.EventSpawnTimerFired: {next: ModePlay, enter: spawnPair},
		core.EventCollision:       {next: ModeGameOver},
		core.EventQuit:            {next: ModePlay, enter: requestQuit},
	},
	ModeGameOver: {
		// Stale run state stays visible until the next Play entry resets it
		core.EventPrimaryAction:   {next: ModeStart},
		core.EventSpawnTimerFired: {next: ModeGameOver},
		core.EventCollision:       {next: ModeGameOver},
		core.EventQuit:            {next: ModeGameOver, enter: requestQuit},
	},
}

// handledEvents lists the events every mode must cover.
var handledEvents = []core.Event{
	core.EventPrimaryAction,
	core.EventSpawnTimerFired,
	core.EventCollision,
	core.EventQuit,
}

func lookupTransition(m Mode, e core.Event) (transition, bool) {
	t, ok := transitions[m][e]
	return t, ok
}

func flap(s *Session, _ int64) {
	s.avatar = s.physics.Flap(s.avatar)
}

func spawnPair(s *Session, _ int64) {
	s.obstacles.Spawn()
}

func requestQuit(s *Session, _ int64) {
	s.quit = true
}
