package flappy

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Sprite names every atlas must provide.
const (
	SpriteStartBackground    = "background-start"
	SpriteGameOverBackground = "background-gameover"
	SpriteFloor              = "floor"
	SpritePipe               = "pipe"
	SpriteStartMessage       = "message-start"
	SpriteGameOverMessage    = "message-gameover"
)

// SpriteBackground returns the name of theme background i.
func SpriteBackground(i int) string { return fmt.Sprintf("background-%d", i) }

// SpriteAvatar returns the name of avatar animation frame i.
func SpriteAvatar(i int) string { return fmt.Sprintf("avatar-%d", i) }

// SpriteDigit returns the name of the score digit d.
func SpriteDigit(d int) string { return fmt.Sprintf("digit-%d", d) }

// scoreY is the top of the score digits in world units.
const scoreY = 50

type spriteSize struct{ w, h int }

// Sprites holds every handle the game draws with, resolved once at startup.
type Sprites struct {
	StartBackground    Handle
	GameOverBackground Handle
	Backgrounds        [ThemeVariants]Handle
	Floor              Handle
	Pipe               Handle
	StartMessage       Handle
	GameOverMessage    Handle
	Avatar             []Handle
	Digits             [10]Handle

	sizes map[Handle]spriteSize
}

// ResolveSprites looks up every sprite the game needs. A missing sprite is
// an error: the game cannot run without its drawables.
func ResolveSprites(a Atlas, avatarFrames int) (Sprites, error) {
	sp := Sprites{
		Avatar: make([]Handle, avatarFrames),
		sizes:  make(map[Handle]spriteSize),
	}

	var missing []string
	resolve := func(name string, dst *Handle) {
		h, ok := a.Lookup(name)
		if !ok {
			missing = append(missing, name)
			return
		}
		w, hh := a.Size(h)
		*dst = h
		sp.sizes[h] = spriteSize{w: w, h: hh}
	}

	resolve(SpriteStartBackground, &sp.StartBackground)
	resolve(SpriteGameOverBackground, &sp.GameOverBackground)
	for i := range sp.Backgrounds {
		resolve(SpriteBackground(i), &sp.Backgrounds[i])
	}
	resolve(SpriteFloor, &sp.Floor)
	resolve(SpritePipe, &sp.Pipe)
	resolve(SpriteStartMessage, &sp.StartMessage)
	resolve(SpriteGameOverMessage, &sp.GameOverMessage)
	for i := range sp.Avatar {
		resolve(SpriteAvatar(i), &sp.Avatar[i])
	}
	for d := range sp.Digits {
		resolve(SpriteDigit(d), &sp.Digits[d])
	}

	if len(missing) > 0 {
		return Sprites{}, fmt.Errorf("flappy: missing sprites: %v", missing)
	}
	return sp, nil
}

// size returns the natural size of a resolved sprite.
func (sp Sprites) size(h Handle) (int, int) {
	s := sp.sizes[h]
	return s.w, s.h
}

// Render returns the draw list for the current mode, back to front.
func (s *Session) Render(sp Sprites) []Layer {
	w, h := s.cfg.Window.Width, s.cfg.Window.Height
	full := core.NewRect(0, 0, w, h)
	layers := make([]Layer, 0, 8+2*s.obstacles.Len())

	switch s.mode {
	case ModeStart:
		layers = append(layers, Layer{Image: sp.StartBackground, Dst: full})
		layers = append(layers, sp.centered(sp.StartMessage, w/2, h/2))

	case ModePlay:
		layers = append(layers, Layer{Image: sp.Backgrounds[s.score.Theme()], Dst: full})
		layers = append(layers, Layer{Image: sp.avatarFrame(s.avatar.Frame()), Dst: s.avatar.Box})
		for _, o := range s.obstacles.Obstacles() {
			layers = append(layers,
				Layer{Image: sp.Pipe, Dst: o.Bottom},
				Layer{Image: sp.Pipe, Dst: o.Top, FlipV: true},
			)
		}
		layers = append(layers, sp.digits(s.score.Value(), w/2, scoreY)...)

	case ModeGameOver:
		layers = append(layers, Layer{Image: sp.GameOverBackground, Dst: full})
		layers = append(layers, sp.centered(sp.GameOverMessage, w/2, h/2))
		layers = append(layers, sp.digits(s.score.Value(), w/2, scoreY)...)
	}

	// The floor spans the full width on every screen
	_, fh := sp.size(sp.Floor)
	layers = append(layers, Layer{Image: sp.Floor, Dst: core.NewRect(0, h-fh, w, fh)})
	return layers
}

// centered places a sprite at its natural size centered on (cx, cy).
func (sp Sprites) centered(img Handle, cx, cy int) Layer {
	sw, sh := sp.size(img)
	return Layer{Image: img, Dst: core.CenteredRect(cx, cy, sw, sh)}
}

func (sp Sprites) avatarFrame(i int) Handle {
	if i < 0 || i >= len(sp.Avatar) {
		i = 0
	}
	return sp.Avatar[i]
}

// digits lays out a number horizontally centered on cx with its top at y.
func (sp Sprites) digits(value, cx, y int) []Layer {
	text := strconv.Itoa(value)

	total := 0
	for _, r := range text {
		w, _ := sp.size(sp.Digits[r-'0'])
		total += w
	}

	layers := make([]Layer, 0, len(text))
	x := cx - total/2
	for _, r := range text {
		img := sp.Digits[r-'0']
		dw, dh := sp.size(img)
		layers = append(layers, Layer{Image: img, Dst: core.NewRect(x, y, dw, dh)})
		x += dw
	}
	return layers
}
