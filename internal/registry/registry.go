// Package registry provides a global registry of skins: named sprite packs
// the terminal presentation draws the game with. Skin packages register
// themselves in init() functions, so hosts discover them without hardcoded
// dependencies.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// ErrUnknownSkin is returned when no skin is registered under an ID.
var ErrUnknownSkin = errors.New("registry: unknown skin")

// SkinInfo contains metadata about a registered skin.
type SkinInfo struct {
	ID    string
	Title string
}

type entry struct {
	title string
	src   []byte
}

var (
	skins = make(map[string]entry)
	mu    sync.RWMutex
)

// Register adds a skin definition (YAML source) to the registry.
// Typically called from a skin package's init() function.
// Panics if a skin with the same ID is already registered or the ID is empty.
func Register(id, title string, src []byte) {
	mu.Lock()
	defer mu.Unlock()

	if id == "" {
		panic("registry: empty skin id")
	}
	if _, exists := skins[id]; exists {
		panic(fmt.Sprintf("registry: skin %q already registered", id))
	}

	skins[id] = entry{title: title, src: src}
}

// List returns information about all registered skins, sorted by ID.
func List() []SkinInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]SkinInfo, 0, len(skins))
	for id, e := range skins {
		result = append(result, SkinInfo{
			ID:    id,
			Title: e.title,
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Source returns the definition of a skin by its ID.
// The returned slice must not be modified.
func Source(id string) ([]byte, error) {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := skins[id]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownSkin, id)
	}

	return e.src, nil
}

// Exists checks if a skin with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := skins[id]
	return ok
}

// unregister removes a skin. Only tests use it.
func unregister(id string) {
	mu.Lock()
	defer mu.Unlock()

	delete(skins, id)
}
