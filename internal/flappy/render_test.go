package flappy

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

func resolveTestSprites(t *testing.T) Sprites {
	t.Helper()

	sp, err := ResolveSprites(newFakeAtlas(), 3)
	if err != nil {
		t.Fatalf("ResolveSprites() error: %v", err)
	}
	return sp
}

func TestResolveSpritesReportsMissing(t *testing.T) {
	_, err := ResolveSprites(newFakeAtlas(SpritePipe, SpriteDigit(3)), 3)
	if err == nil {
		t.Fatal("expected an error for missing sprites")
	}
	for _, name := range []string{"pipe", "digit-3"} {
		if !strings.Contains(err.Error(), name) {
			t.Errorf("error %q does not name %q", err, name)
		}
	}
}

func TestResolveSpritesNeedsEveryAvatarFrame(t *testing.T) {
	if _, err := ResolveSprites(newFakeAtlas(), 4); err == nil {
		t.Error("expected an error for a missing avatar frame")
	}
}

func TestRenderStart(t *testing.T) {
	s := newTestSession(t, nil)
	sp := resolveTestSprites(t)

	layers := s.Render(sp)
	want := []Layer{
		{Image: sp.StartBackground, Dst: core.NewRect(0, 0, 600, 600)},
		{Image: sp.StartMessage, Dst: core.NewRect(210, 170, 180, 260)},
		{Image: sp.Floor, Dst: core.NewRect(0, 560, 600, 40)},
	}
	if len(layers) != len(want) {
		t.Fatalf("got %d layers, expected %d: %+v", len(layers), len(want), layers)
	}
	for i := range want {
		if layers[i] != want[i] {
			t.Errorf("layer %d = %+v, expected %+v", i, layers[i], want[i])
		}
	}
}

func TestRenderPlay(t *testing.T) {
	s := newTestSession(t, nil)
	sp := resolveTestSprites(t)
	enterPlay(t, s, 0)

	pair := s.obstacles.PairAt(300, 400)
	s.obstacles.obstacles = append(s.obstacles.obstacles, pair)
	s.score.Add(12)

	layers := s.Render(sp)
	if len(layers) != 7 {
		t.Fatalf("got %d layers, expected 7: %+v", len(layers), layers)
	}

	if layers[0].Image != sp.Backgrounds[1] {
		t.Errorf("background = %v, expected theme 1", layers[0].Image)
	}
	if layers[1].Image != sp.Avatar[0] || layers[1].Dst != s.avatar.Box {
		t.Errorf("avatar layer = %+v", layers[1])
	}
	if layers[2] != (Layer{Image: sp.Pipe, Dst: pair.Bottom}) {
		t.Errorf("bottom barrier layer = %+v", layers[2])
	}
	if layers[3] != (Layer{Image: sp.Pipe, Dst: pair.Top, FlipV: true}) {
		t.Errorf("top barrier layer = %+v", layers[3])
	}

	// "12" is 48 units wide, centered on x=300
	if layers[4] != (Layer{Image: sp.Digits[1], Dst: core.NewRect(276, 50, 24, 36)}) {
		t.Errorf("first digit = %+v", layers[4])
	}
	if layers[5] != (Layer{Image: sp.Digits[2], Dst: core.NewRect(300, 50, 24, 36)}) {
		t.Errorf("second digit = %+v", layers[5])
	}
	if layers[6].Image != sp.Floor {
		t.Errorf("last layer should be the floor, got %+v", layers[6])
	}
}

func TestRenderGameOver(t *testing.T) {
	s := newTestSession(t, nil)
	sp := resolveTestSprites(t)
	enterPlay(t, s, 0)
	s.obstacles.Spawn()
	crash(t, s)

	layers := s.Render(sp)
	if layers[0].Image != sp.GameOverBackground {
		t.Errorf("background = %v", layers[0].Image)
	}
	if layers[1].Image != sp.GameOverMessage || layers[1].Dst != core.NewRect(205, 280, 190, 40) {
		t.Errorf("message layer = %+v", layers[1])
	}
	if layers[2].Image != sp.Digits[0] {
		t.Errorf("score layer = %+v", layers[2])
	}
	for _, l := range layers {
		if l.Image == sp.Pipe {
			t.Error("game over screen should not draw barriers")
		}
	}
	if last := layers[len(layers)-1]; last.Image != sp.Floor {
		t.Errorf("last layer = %+v, expected floor", last)
	}
}
