package tui

import (
	"io"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/flappy"
)

// homeCursor moves the cursor to the top-left corner before a frame.
const homeCursor = "\x1b[H"

// Raster implements flappy.Renderer on a terminal cell grid. World
// coordinates are scaled so the whole window fits the grid.
type Raster struct {
	atlas   *Atlas
	screen  *core.Screen
	painter *Painter
	worldW  int
	worldH  int
	frame   string
	out     io.Writer
}

// NewRaster creates a rasterizer for a world of worldW x worldH units drawn
// into cols x rows cells.
func NewRaster(atlas *Atlas, worldW, worldH, cols, rows int) *Raster {
	return &Raster{
		atlas:   atlas,
		screen:  core.NewScreen(max(cols, 1), max(rows, 1)),
		painter: defaultPainter,
		worldW:  worldW,
		worldH:  worldH,
	}
}

// SetPainter replaces the painter used by Present.
func (r *Raster) SetPainter(p *Painter) {
	r.painter = p
}

// SetOutput makes Present also write every frame to w.
func (r *Raster) SetOutput(w io.Writer) {
	r.out = w
}

// Resize changes the cell grid.
func (r *Raster) Resize(cols, rows int) {
	r.screen.Resize(max(cols, 1), max(rows, 1))
}

// Screen returns the cell buffer of the last drawn frame.
func (r *Raster) Screen() *core.Screen {
	return r.screen
}

// Frame returns the last presented frame.
func (r *Raster) Frame() string {
	return r.frame
}

// DrawFrame rasterizes layers back to front into a cleared grid.
func (r *Raster) DrawFrame(layers []flappy.Layer) {
	r.screen.Clear()
	for _, l := range layers {
		r.draw(l)
	}
}

// Present paints the grid and writes it to the output, if any.
func (r *Raster) Present() error {
	r.frame = r.painter.Paint(r.screen)
	if r.out == nil {
		return nil
	}
	_, err := io.WriteString(r.out, homeCursor+r.frame)
	return err
}

func (r *Raster) draw(l flappy.Layer) {
	sp, ok := r.atlas.Sprite(l.Image)
	if !ok {
		return
	}
	x0, y0, x1, y1 := r.cellRect(l.Dst)

	if len(sp.Art) > 0 {
		r.drawArt(sp, l.FlipV, x0, y0, x1, y1)
	}
	if len(sp.Label) > 0 {
		r.drawLabel(sp, x0, y0, x1, y1)
	}
}

// drawArt samples the art nearest-neighbour, or repeats it when tiled.
func (r *Raster) drawArt(sp Sprite, flip bool, x0, y0, x1, y1 int) {
	artH, artW := len(sp.Art), len(sp.Art[0])
	w, h := x1-x0, y1-y0

	for cy := max(y0, 0); cy < min(y1, r.screen.Height()); cy++ {
		var row int
		if sp.Tile {
			row = (cy - y0) % artH
		} else {
			row = (cy - y0) * artH / h
		}
		if flip {
			row = artH - 1 - row
		}

		for cx := max(x0, 0); cx < min(x1, r.screen.Width()); cx++ {
			var col int
			if sp.Tile {
				col = (cx - x0) % artW
			} else {
				col = (cx - x0) * artW / w
			}

			ch := sp.Art[row][col]
			if ch == ' ' {
				continue
			}
			r.screen.SetColored(cx, cy, ch, sp.Color)
		}
	}
}

// drawLabel centers the label lines in the destination cells.
func (r *Raster) drawLabel(sp Sprite, x0, y0, x1, y1 int) {
	top := y0 + (y1-y0-len(sp.Label))/2
	for i, line := range sp.Label {
		n := len([]rune(line))
		left := x0 + (x1-x0-n)/2
		r.screen.DrawText(left, top+i, line, sp.Color)
	}
}

// cellRect maps a world rectangle to the half-open cell range it covers.
// Anything with a positive size covers at least one cell.
func (r *Raster) cellRect(rect core.Rect) (x0, y0, x1, y1 int) {
	cols, rows := r.screen.Width(), r.screen.Height()

	x0 = floorDiv(rect.X*cols, r.worldW)
	y0 = floorDiv(rect.Y*rows, r.worldH)
	x1 = floorDiv(rect.Right()*cols, r.worldW)
	y1 = floorDiv(rect.Bottom()*rows, r.worldH)

	if rect.W > 0 && x1 <= x0 {
		x1 = x0 + 1
	}
	if rect.H > 0 && y1 <= y0 {
		y1 = y0 + 1
	}
	return x0, y0, x1, y1
}

// floorDiv divides rounding toward negative infinity.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
