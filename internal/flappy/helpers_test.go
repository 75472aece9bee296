package flappy

import (
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// fakeAtlas hands out sequential handles for every known name.
type fakeAtlas struct {
	handles map[string]Handle
	sizes   map[Handle][2]int
}

func newFakeAtlas(skip ...string) *fakeAtlas {
	a := &fakeAtlas{
		handles: make(map[string]Handle),
		sizes:   make(map[Handle][2]int),
	}
	skipped := make(map[string]bool)
	for _, s := range skip {
		skipped[s] = true
	}

	add := func(name string, w, h int) {
		if skipped[name] {
			return
		}
		hd := Handle(len(a.handles) + 1)
		a.handles[name] = hd
		a.sizes[hd] = [2]int{w, h}
	}

	add(SpriteStartBackground, 600, 600)
	add(SpriteGameOverBackground, 600, 600)
	for i := 0; i < ThemeVariants; i++ {
		add(SpriteBackground(i), 600, 600)
	}
	add(SpriteFloor, 600, 40)
	add(SpritePipe, 70, 320)
	add(SpriteStartMessage, 180, 260)
	add(SpriteGameOverMessage, 190, 40)
	for i := 0; i < 3; i++ {
		add(SpriteAvatar(i), 34, 24)
	}
	for d := 0; d < 10; d++ {
		add(SpriteDigit(d), 24, 36)
	}
	return a
}

func (a *fakeAtlas) Lookup(name string) (Handle, bool) {
	h, ok := a.handles[name]
	return h, ok
}

func (a *fakeAtlas) Size(h Handle) (int, int) {
	s := a.sizes[h]
	return s[0], s[1]
}

func newTestSession(t *testing.T, mutate func(*config.FlappyConfig)) *Session {
	t.Helper()

	cfg := config.DefaultFlappyConfig()
	if mutate != nil {
		mutate(&cfg)
	}
	s, err := NewSession(cfg, 42)
	if err != nil {
		t.Fatalf("NewSession() error: %v", err)
	}
	return s
}

// press returns a single primary action event.
func press() []core.Event {
	return []core.Event{core.EventPrimaryAction}
}

// enterPlay moves a fresh session from Start to Play at time now.
func enterPlay(t *testing.T, s *Session, now int64) {
	t.Helper()

	res := s.Step(press(), now)
	if res.Mode != ModePlay {
		t.Fatalf("press on Start should enter Play, got %v", res.Mode)
	}
}
