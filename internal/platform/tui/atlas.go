package tui

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/flappy"
	"github.com/vovakirdan/tui-flappy/internal/registry"
)

// spriteDef is one sprite as written in a skin file.
type spriteDef struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Color  string `yaml:"color"`
	Art    string `yaml:"art"`
	Tile   bool   `yaml:"tile"`
	Label  string `yaml:"label"`
}

type skinDef struct {
	Title   string               `yaml:"title"`
	Sprites map[string]spriteDef `yaml:"sprites"`
}

// Sprite is a loaded drawable. Art is scaled into its destination unless
// Tile is set, in which case it repeats cell for cell. Label lines are drawn
// centered on top of the art. Spaces are transparent.
type Sprite struct {
	Name   string
	Width  int // World units
	Height int
	Color  core.Color
	Art    [][]rune // Rectangular, padded with spaces
	Tile   bool
	Label  []string
}

// Atlas holds the sprites of one skin and implements flappy.Atlas.
type Atlas struct {
	title   string
	sprites []Sprite
	byName  map[string]flappy.Handle
}

// LoadSkin loads a registered skin by ID.
func LoadSkin(id string) (*Atlas, error) {
	src, err := registry.Source(id)
	if err != nil {
		return nil, err
	}

	a, err := ParseAtlas(src)
	if err != nil {
		return nil, fmt.Errorf("skin %q: %w", id, err)
	}
	return a, nil
}

// ParseAtlas parses and validates a skin definition.
func ParseAtlas(data []byte) (*Atlas, error) {
	var def skinDef
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("parse skin: %w", err)
	}
	if len(def.Sprites) == 0 {
		return nil, errors.New("skin defines no sprites")
	}

	// Stable handle order
	names := make([]string, 0, len(def.Sprites))
	for name := range def.Sprites {
		names = append(names, name)
	}
	sort.Strings(names)

	a := &Atlas{
		title:   def.Title,
		sprites: make([]Sprite, 0, len(names)),
		byName:  make(map[string]flappy.Handle, len(names)),
	}

	var errs []error
	for _, name := range names {
		sp, err := buildSprite(name, def.Sprites[name])
		if err != nil {
			errs = append(errs, err)
			continue
		}
		a.sprites = append(a.sprites, sp)
		a.byName[name] = flappy.Handle(len(a.sprites))
	}
	if err := errors.Join(errs...); err != nil {
		return nil, fmt.Errorf("invalid skin: %w", err)
	}

	return a, nil
}

func buildSprite(name string, d spriteDef) (Sprite, error) {
	if d.Width <= 0 || d.Height <= 0 {
		return Sprite{}, fmt.Errorf("sprite %q: size must be positive, got %dx%d", name, d.Width, d.Height)
	}
	color, err := core.ParseColor(d.Color)
	if err != nil {
		return Sprite{}, fmt.Errorf("sprite %q: %w", name, err)
	}

	sp := Sprite{
		Name:   name,
		Width:  d.Width,
		Height: d.Height,
		Color:  color,
		Art:    parseArt(d.Art),
		Tile:   d.Tile,
		Label:  splitLines(d.Label),
	}
	if len(sp.Art) == 0 && len(sp.Label) == 0 {
		return Sprite{}, fmt.Errorf("sprite %q: needs art or a label", name)
	}
	return sp, nil
}

// parseArt splits art into rows padded to the widest one.
func parseArt(s string) [][]rune {
	lines := splitLines(s)
	if len(lines) == 0 {
		return nil
	}

	width := 0
	for _, l := range lines {
		width = max(width, len([]rune(l)))
	}

	rows := make([][]rune, len(lines))
	for i, l := range lines {
		row := []rune(l)
		for len(row) < width {
			row = append(row, ' ')
		}
		rows[i] = row
	}
	return rows
}

// splitLines splits on newlines, dropping trailing empty lines.
func splitLines(s string) []string {
	lines := strings.Split(s, "\n")
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// Title returns the skin's display name.
func (a *Atlas) Title() string {
	return a.title
}

// Lookup resolves a sprite name to its handle.
func (a *Atlas) Lookup(name string) (flappy.Handle, bool) {
	h, ok := a.byName[name]
	return h, ok
}

// Size returns a sprite's natural size in world units.
func (a *Atlas) Size(h flappy.Handle) (int, int) {
	sp, ok := a.Sprite(h)
	if !ok {
		return 0, 0
	}
	return sp.Width, sp.Height
}

// Sprite returns the sprite behind a handle.
func (a *Atlas) Sprite(h flappy.Handle) (Sprite, bool) {
	i := int(h) - 1
	if i < 0 || i >= len(a.sprites) {
		return Sprite{}, false
	}
	return a.sprites[i], true
}

// Len returns the number of sprites.
func (a *Atlas) Len() int {
	return len(a.sprites)
}
