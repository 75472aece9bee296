package tui

import (
	"bytes"
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/flappy"
)

const rasterSkin = `
sprites:
  block:
    width: 100
    height: 100
    art: "#"
  arrow:
    width: 100
    height: 200
    art: |
      ^
      v
  ring:
    width: 30
    height: 10
    art: " o "
  bg:
    width: 600
    height: 600
    tile: true
    art: ".x"
  text:
    width: 600
    height: 600
    label: hi
`

// newTestRaster maps a 600x600 world onto 60x30 cells.
func newTestRaster(t *testing.T) (*Raster, *Atlas) {
	t.Helper()

	a, err := ParseAtlas([]byte(rasterSkin))
	if err != nil {
		t.Fatalf("ParseAtlas() error: %v", err)
	}
	return NewRaster(a, 600, 600, 60, 30), a
}

func layer(t *testing.T, a *Atlas, name string, dst core.Rect, flip bool) flappy.Layer {
	t.Helper()

	h, ok := a.Lookup(name)
	if !ok {
		t.Fatalf("sprite %q missing", name)
	}
	return flappy.Layer{Image: h, Dst: dst, FlipV: flip}
}

func count(s *core.Screen, r rune) int {
	n := 0
	for y := range s.Height() {
		for x := range s.Width() {
			if s.Get(x, y) == r {
				n++
			}
		}
	}
	return n
}

func TestRasterScalesToCells(t *testing.T) {
	r, a := newTestRaster(t)

	r.DrawFrame([]flappy.Layer{layer(t, a, "block", core.NewRect(0, 0, 100, 100), false)})
	if n := count(r.Screen(), '#'); n != 50 {
		t.Errorf("block covers %d cells, expected 10x5", n)
	}
	if r.Screen().Get(9, 4) != '#' || r.Screen().Get(10, 4) != ' ' || r.Screen().Get(9, 5) != ' ' {
		t.Error("block edges are off")
	}
}

func TestRasterClipsNegativeCoordinates(t *testing.T) {
	r, a := newTestRaster(t)

	r.DrawFrame([]flappy.Layer{layer(t, a, "block", core.NewRect(-50, -100, 100, 200), false)})
	if n := count(r.Screen(), '#'); n != 25 {
		t.Errorf("visible part covers %d cells, expected 5x5", n)
	}
}

func TestRasterTinyRectCoversOneCell(t *testing.T) {
	r, a := newTestRaster(t)

	r.DrawFrame([]flappy.Layer{layer(t, a, "block", core.NewRect(0, 0, 1, 1), false)})
	if n := count(r.Screen(), '#'); n != 1 {
		t.Errorf("covers %d cells, expected 1", n)
	}
}

func TestRasterFlipV(t *testing.T) {
	tests := []struct {
		flip        bool
		top, bottom rune
	}{
		{false, '^', 'v'},
		{true, 'v', '^'},
	}

	for _, tt := range tests {
		r, a := newTestRaster(t)
		r.DrawFrame([]flappy.Layer{layer(t, a, "arrow", core.NewRect(0, 0, 100, 200), tt.flip)})

		if got := r.Screen().Get(0, 0); got != tt.top {
			t.Errorf("flip=%v: top row %q, expected %q", tt.flip, got, tt.top)
		}
		if got := r.Screen().Get(0, 9); got != tt.bottom {
			t.Errorf("flip=%v: bottom row %q, expected %q", tt.flip, got, tt.bottom)
		}
	}
}

func TestRasterSpacesAreTransparent(t *testing.T) {
	r, a := newTestRaster(t)

	r.DrawFrame([]flappy.Layer{
		layer(t, a, "block", core.NewRect(0, 0, 100, 100), false),
		layer(t, a, "ring", core.NewRect(0, 0, 30, 10), false),
	})
	row := r.Screen().Row(0)
	if row[:3] != "#o#" {
		t.Errorf("row 0 starts with %q, expected %q", row[:3], "#o#")
	}
}

func TestRasterTiles(t *testing.T) {
	r, a := newTestRaster(t)

	r.DrawFrame([]flappy.Layer{layer(t, a, "bg", core.NewRect(0, 0, 600, 600), false)})
	if got := r.Screen().Row(29)[:4]; got != ".x.x" {
		t.Errorf("tiled row = %q, expected %q", got, ".x.x")
	}
}

func TestRasterCentersLabel(t *testing.T) {
	r, a := newTestRaster(t)

	r.DrawFrame([]flappy.Layer{layer(t, a, "text", core.NewRect(0, 0, 600, 600), false)})
	if r.Screen().Get(29, 14) != 'h' || r.Screen().Get(30, 14) != 'i' {
		t.Errorf("label not centered: row 14 = %q", r.Screen().Row(14))
	}
}

func TestRasterClearsBetweenFrames(t *testing.T) {
	r, a := newTestRaster(t)

	r.DrawFrame([]flappy.Layer{layer(t, a, "block", core.NewRect(0, 0, 100, 100), false)})
	r.DrawFrame(nil)
	if n := count(r.Screen(), '#'); n != 0 {
		t.Errorf("%d cells left over from the previous frame", n)
	}
}

func TestRasterPresentWritesFrame(t *testing.T) {
	r, a := newTestRaster(t)
	var buf bytes.Buffer
	r.SetOutput(&buf)

	r.DrawFrame([]flappy.Layer{layer(t, a, "block", core.NewRect(0, 0, 100, 100), false)})
	if err := r.Present(); err != nil {
		t.Fatalf("Present() error: %v", err)
	}

	if r.Frame() == "" {
		t.Fatal("Frame() is empty after Present")
	}
	if buf.String() != homeCursor+r.Frame() {
		t.Error("output should be the frame after a cursor-home sequence")
	}
}

func TestRasterResize(t *testing.T) {
	r, a := newTestRaster(t)
	r.Resize(120, 0)

	if r.Screen().Width() != 120 || r.Screen().Height() != 1 {
		t.Fatalf("screen is %dx%d", r.Screen().Width(), r.Screen().Height())
	}

	r.DrawFrame([]flappy.Layer{layer(t, a, "block", core.NewRect(0, 0, 100, 100), false)})
	if n := count(r.Screen(), '#'); n != 20 {
		t.Errorf("block covers %d cells, expected 20x1", n)
	}
}

func TestFloorDiv(t *testing.T) {
	tests := []struct{ a, b, want int }{
		{7, 2, 3},
		{-7, 2, -4},
		{-6, 2, -3},
		{0, 5, 0},
		{-1, 600, -1},
	}
	for _, tt := range tests {
		if got := floorDiv(tt.a, tt.b); got != tt.want {
			t.Errorf("floorDiv(%d, %d) = %d, expected %d", tt.a, tt.b, got, tt.want)
		}
	}
}
