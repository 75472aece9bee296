package flappy

import (
	"math"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// AvatarState is the player's motion and animation state.
type AvatarState struct {
	Y        float64   // Vertical center in world units
	Velocity float64   // Vertical speed per tick (negative = up)
	Box      core.Rect // Collision box, centered on (X, Y)
	Phase    float64   // Wing animation phase in [0, frames)
}

// Frame returns the animation frame index for the current phase.
func (a AvatarState) Frame() int {
	return int(a.Phase)
}

// Physics integrates avatar motion with per-tick constants.
// All methods are pure: they return a new state and never mutate the input.
type Physics struct {
	Gravity       float64
	FlapImpulse   float64
	X             int
	Width         int
	Height        int
	AnimationStep float64
	Frames        int
}

// NewPhysics extracts avatar physics from the game configuration.
func NewPhysics(cfg config.FlappyConfig) Physics {
	return Physics{
		Gravity:       cfg.Physics.Gravity,
		FlapImpulse:   cfg.Physics.FlapImpulse,
		X:             cfg.Avatar.X,
		Width:         cfg.Avatar.Width,
		Height:        cfg.Avatar.Height,
		AnimationStep: cfg.Avatar.AnimationStep,
		Frames:        cfg.Avatar.AnimationFrames,
	}
}

// Spawn returns an avatar at rest centered at height y.
func (p Physics) Spawn(y float64) AvatarState {
	return AvatarState{
		Y:   y,
		Box: p.Box(y),
	}
}

// Box returns the collision box for a vertical center y.
func (p Physics) Box(y float64) core.Rect {
	return core.CenteredRect(p.X, int(math.Floor(y)), p.Width, p.Height)
}

// Step advances one update tick: wing animation, then gravity, then position.
func (p Physics) Step(a AvatarState) AvatarState {
	a.Phase += p.AnimationStep
	if a.Phase > float64(p.Frames-1) {
		a.Phase = 0
	}

	a.Velocity += p.Gravity
	a.Y += a.Velocity
	a.Box = p.Box(a.Y)
	return a
}

// Flap overrides the vertical velocity with the upward impulse. Previous
// velocity is discarded, so repeated flaps never stack.
func (p Physics) Flap(a AvatarState) AvatarState {
	a.Velocity = -p.FlapImpulse
	a.Phase = 0
	return a
}
