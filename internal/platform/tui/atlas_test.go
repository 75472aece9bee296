package tui

import (
	"errors"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/flappy"
	"github.com/vovakirdan/tui-flappy/internal/registry"
	_ "github.com/vovakirdan/tui-flappy/internal/skins"
)

func TestBuiltinSkinsResolve(t *testing.T) {
	skins := registry.List()
	if len(skins) < 2 {
		t.Fatalf("expected the built-in skins to be registered, got %v", skins)
	}

	for _, s := range skins {
		t.Run(s.ID, func(t *testing.T) {
			atlas, err := LoadSkin(s.ID)
			if err != nil {
				t.Fatalf("LoadSkin() error: %v", err)
			}
			if atlas.Title() != s.Title {
				t.Errorf("Title() = %q, registered as %q", atlas.Title(), s.Title)
			}
			if _, err := flappy.ResolveSprites(atlas, 3); err != nil {
				t.Errorf("ResolveSprites() error: %v", err)
			}
		})
	}
}

func TestLoadSkinUnknown(t *testing.T) {
	_, err := LoadSkin("no-such-skin")
	if !errors.Is(err, registry.ErrUnknownSkin) {
		t.Errorf("LoadSkin() error = %v, expected ErrUnknownSkin", err)
	}
}

func TestParseAtlasErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"broken yaml", "sprites: [", "parse skin"},
		{"no sprites", "title: Empty", "no sprites"},
		{"zero size", "sprites:\n  a:\n    width: 0\n    height: 5\n    art: x", "size must be positive"},
		{"unknown color", "sprites:\n  a:\n    width: 5\n    height: 5\n    color: plaid\n    art: x", "unknown color"},
		{"nothing to draw", "sprites:\n  a:\n    width: 5\n    height: 5", "art or a label"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseAtlas([]byte(tt.src))
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestParseAtlasReportsEveryBadSprite(t *testing.T) {
	src := `
sprites:
  a:
    width: -1
    height: 5
    art: x
  b:
    width: 5
    height: 5
    color: plaid
    art: x
`
	_, err := ParseAtlas([]byte(src))
	if err == nil {
		t.Fatal("expected an error")
	}
	for _, name := range []string{`"a"`, `"b"`} {
		if !strings.Contains(err.Error(), name) {
			t.Errorf("error %q does not name sprite %s", err, name)
		}
	}
}

func TestParseAtlasSprites(t *testing.T) {
	src := `
title: Test
sprites:
  box:
    width: 40
    height: 20
    color: bright-green
    art: |
      ab
      c
  text:
    width: 10
    height: 10
    label: |
      hi

`
	a, err := ParseAtlas([]byte(src))
	if err != nil {
		t.Fatalf("ParseAtlas() error: %v", err)
	}

	h, ok := a.Lookup("box")
	if !ok {
		t.Fatal("box not found")
	}
	if w, hh := a.Size(h); w != 40 || hh != 20 {
		t.Errorf("Size() = %dx%d, expected 40x20", w, hh)
	}

	sp, _ := a.Sprite(h)
	if sp.Color != core.ColorBrightGreen {
		t.Errorf("Color = %v", sp.Color)
	}
	if len(sp.Art) != 2 || string(sp.Art[1]) != "c " {
		t.Errorf("art rows should be padded: %q", sp.Art)
	}

	th, _ := a.Lookup("text")
	label, _ := a.Sprite(th)
	if len(label.Label) != 1 || label.Label[0] != "hi" {
		t.Errorf("Label = %q, expected one line", label.Label)
	}

	if _, ok := a.Lookup("missing"); ok {
		t.Error("unknown sprite should not resolve")
	}
	if w, hh := a.Size(flappy.Handle(0)); w != 0 || hh != 0 {
		t.Errorf("Size() of an invalid handle = %dx%d", w, hh)
	}
	if a.Len() != 2 {
		t.Errorf("Len() = %d, expected 2", a.Len())
	}
}
