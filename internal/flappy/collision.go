package flappy

import "github.com/vovakirdan/tui-flappy/internal/core"

// Bounds are the vertical limits the avatar may not reach.
type Bounds struct {
	Ceiling int // Box top at or above this line crashes (may be negative)
	Floor   int // Box bottom at or below this line crashes
}

// Collides reports whether box hits any barrier or either bound.
// It depends on its arguments only.
func Collides(box core.Rect, obstacles []Obstacle, bounds Bounds) bool {
	for _, o := range obstacles {
		if box.Intersects(o.Top) || box.Intersects(o.Bottom) {
			return true
		}
	}

	// Overshooting the top or touching the floor
	return box.Y <= bounds.Ceiling || box.Bottom() >= bounds.Floor
}
