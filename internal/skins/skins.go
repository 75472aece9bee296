// Package skins embeds the built-in sprite packs and registers them.
// Import it for its side effect.
package skins

import (
	_ "embed"

	"github.com/vovakirdan/tui-flappy/internal/registry"
)

// Default is the skin used when none is chosen.
const Default = "classic"

//go:embed classic.yaml
var classic []byte

//go:embed mono.yaml
var mono []byte

func init() {
	registry.Register("classic", "Classic", classic)
	registry.Register("mono", "Monochrome", mono)
}
