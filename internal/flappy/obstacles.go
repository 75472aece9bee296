package flappy

import (
	"math/rand"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Obstacle is a pair of barriers sharing one gap, scrolling together.
type Obstacle struct {
	GapCenter int       // Vertical midpoint of the opening
	Top       core.Rect // Barrier above the gap
	Bottom    core.Rect // Barrier below the gap
	Passed    bool      // Whether the avatar has cleared this pair (for scoring)
}

// Left returns the x-coordinate of the pair's leading edge.
func (o Obstacle) Left() int {
	return o.Top.X
}

// Right returns the x-coordinate of the pair's trailing edge.
func (o Obstacle) Right() int {
	return o.Top.Right()
}

// ObstacleManager handles spawning, movement, and removal of obstacle pairs.
type ObstacleManager struct {
	obstacles  []Obstacle
	rng        *rand.Rand
	candidates []int
	pipeWidth  int
	pipeHeight int
	gap        int
	spawnX     int // Horizontal center of new pairs
	spawned    int // Pairs spawned since creation
}

// NewObstacleManager creates a manager whose gap choices are driven by seed.
func NewObstacleManager(cfg config.FlappyConfig, seed int64) *ObstacleManager {
	o := cfg.Obstacles
	return &ObstacleManager{
		obstacles:  make([]Obstacle, 0, 8),
		rng:        rand.New(rand.NewSource(seed)),
		candidates: o.Band.Candidates(),
		pipeWidth:  o.PipeWidth,
		pipeHeight: o.PipeHeight,
		gap:        o.Gap,
		spawnX:     cfg.Window.Width + o.PipeWidth, // Just past the right edge
	}
}

// Reset removes every obstacle. The random stream carries on so successive
// runs of one session see different layouts.
func (m *ObstacleManager) Reset() {
	m.obstacles = m.obstacles[:0]
}

// Spawn appends a new pair just past the right edge with a gap center drawn
// uniformly from the candidate band.
func (m *ObstacleManager) Spawn() Obstacle {
	gapCenter := m.candidates[m.rng.Intn(len(m.candidates))]
	o := m.PairAt(gapCenter, m.spawnX)
	m.obstacles = append(m.obstacles, o)
	m.spawned++
	return o
}

// PairAt builds the geometry of a pair centered horizontally on centerX.
func (m *ObstacleManager) PairAt(gapCenter, centerX int) Obstacle {
	left := centerX - m.pipeWidth/2
	topEnd := gapCenter - m.gap/2
	bottomStart := topEnd + m.gap

	return Obstacle{
		GapCenter: gapCenter,
		Top:       core.NewRect(left, topEnd-m.pipeHeight, m.pipeWidth, m.pipeHeight),
		Bottom:    core.NewRect(left, bottomStart, m.pipeWidth, m.pipeHeight),
	}
}

// Advance moves every pair left by dx and drops pairs that are fully off the
// left edge. Returns the number of pairs removed.
func (m *ObstacleManager) Advance(dx int) int {
	for i := range m.obstacles {
		m.obstacles[i].Top = m.obstacles[i].Top.Offset(-dx, 0)
		m.obstacles[i].Bottom = m.obstacles[i].Bottom.Offset(-dx, 0)
	}

	// Remove pairs that have moved off the left side
	kept := m.obstacles[:0]
	for _, o := range m.obstacles {
		if o.Right() > 0 {
			kept = append(kept, o)
		}
	}
	removed := len(m.obstacles) - len(kept)
	m.obstacles = kept
	return removed
}

// MarkPassed flags every pair whose trailing edge is strictly left of
// avatarLeft. Each pair is counted once; returns how many were newly passed.
func (m *ObstacleManager) MarkPassed(avatarLeft int) int {
	passed := 0
	for i := range m.obstacles {
		if !m.obstacles[i].Passed && avatarLeft > m.obstacles[i].Right() {
			m.obstacles[i].Passed = true
			passed++
		}
	}
	return passed
}

// Obstacles returns the live pairs in left-to-right order.
// The slice is owned by the manager.
func (m *ObstacleManager) Obstacles() []Obstacle {
	return m.obstacles
}

// Len returns the number of live pairs.
func (m *ObstacleManager) Len() int {
	return len(m.obstacles)
}

// Spawned returns how many pairs were created since the manager was built.
func (m *ObstacleManager) Spawned() int {
	return m.spawned
}

// Candidates returns the gap centers Spawn picks from.
func (m *ObstacleManager) Candidates() []int {
	return m.candidates
}
