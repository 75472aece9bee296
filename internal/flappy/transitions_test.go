package flappy

import (
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

func TestTransitionTableIsExhaustive(t *testing.T) {
	for _, m := range []Mode{ModeStart, ModePlay, ModeGameOver} {
		for _, e := range handledEvents {
			tr, ok := lookupTransition(m, e)
			if !ok {
				t.Errorf("no transition for %v x %v", m, e)
				continue
			}
			if tr.next.String() == "Unknown" {
				t.Errorf("%v x %v leads to an unknown mode", m, e)
			}
		}
	}
}

func TestTransitionTargets(t *testing.T) {
	tests := []struct {
		from Mode
		e    core.Event
		to   Mode
	}{
		{ModeStart, core.EventPrimaryAction, ModePlay},
		{ModeStart, core.EventSpawnTimerFired, ModeStart},
		{ModeStart, core.EventCollision, ModeStart},
		{ModePlay, core.EventPrimaryAction, ModePlay},
		{ModePlay, core.EventSpawnTimerFired, ModePlay},
		{ModePlay, core.EventCollision, ModeGameOver},
		{ModeGameOver, core.EventPrimaryAction, ModeStart},
		{ModeGameOver, core.EventSpawnTimerFired, ModeGameOver},
		{ModeGameOver, core.EventCollision, ModeGameOver},
	}

	for _, tt := range tests {
		tr, _ := lookupTransition(tt.from, tt.e)
		if tr.next != tt.to {
			t.Errorf("%v x %v -> %v, expected %v", tt.from, tt.e, tr.next, tt.to)
		}
	}
}

func TestNoneIsNotHandled(t *testing.T) {
	for _, m := range []Mode{ModeStart, ModePlay, ModeGameOver} {
		if _, ok := lookupTransition(m, core.EventNone); ok {
			t.Errorf("EventNone should have no transition in %v", m)
		}
	}
}

func TestModeString(t *testing.T) {
	if ModeGameOver.String() != "GameOver" || Mode(42).String() != "Unknown" {
		t.Errorf("unexpected mode names: %q %q", ModeGameOver, Mode(42))
	}
}
