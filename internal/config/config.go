// Package config provides YAML-based game configuration loading and
// validation. Values are expressed in world units and update ticks; the
// presentation layer scales the world to whatever surface it draws on.
package config

import "time"

// FlappyConfig contains all tunables of the game.
type FlappyConfig struct {
	Window    Window    `yaml:"window"`
	Physics   Physics   `yaml:"physics"`
	Obstacles Obstacles `yaml:"obstacles"`
	Avatar    Avatar    `yaml:"avatar"`
	Frame     Frame     `yaml:"frame"`
}

// Window defines the size of the game world.
type Window struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"` // Also the floor line
}

// Physics defines per-tick motion parameters. Both gravity and scroll speed
// are applied once per update tick, so the effective speed follows the
// frame rate.
type Physics struct {
	Gravity     float64 `yaml:"gravity"`      // Downward acceleration per tick
	FlapImpulse float64 `yaml:"flap_impulse"` // Upward speed set by a flap (positive magnitude)
	ScrollSpeed int     `yaml:"scroll_speed"` // Obstacle shift per tick
}

// Obstacles defines the obstacle pair geometry and spawn cadence.
type Obstacles struct {
	PipeWidth       int     `yaml:"pipe_width"`
	PipeHeight      int     `yaml:"pipe_height"` // Length of each barrier
	Gap             int     `yaml:"gap"`         // Height of the opening
	Band            GapBand `yaml:"band"`
	SpawnIntervalMs int     `yaml:"spawn_interval_ms"`
}

// GapBand is the set of candidate gap centers: Min, Min+Step, ... below Max.
type GapBand struct {
	Min  int `yaml:"min"`
	Max  int `yaml:"max"` // Exclusive
	Step int `yaml:"step"`
}

// Avatar defines the player's hitbox and animation.
type Avatar struct {
	X               int     `yaml:"x"` // Fixed horizontal center
	Width           int     `yaml:"width"`
	Height          int     `yaml:"height"`
	Ceiling         int     `yaml:"ceiling"`          // Top overshoot limit (negative = above the screen)
	AnimationStep   float64 `yaml:"animation_step"`   // Phase advance per tick
	AnimationFrames int     `yaml:"animation_frames"` // Number of wing frames
}

// Frame defines loop pacing.
type Frame struct {
	Rate int `yaml:"rate"` // Frame cap in Hz
}

// Candidates returns every gap center of the band in ascending order.
func (b GapBand) Candidates() []int {
	if b.Step <= 0 || b.Min >= b.Max {
		return nil
	}
	out := make([]int, 0, (b.Max-b.Min+b.Step-1)/b.Step)
	for v := b.Min; v < b.Max; v += b.Step {
		out = append(out, v)
	}
	return out
}

// SpawnInterval returns the obstacle spawn period.
func (o Obstacles) SpawnInterval() time.Duration {
	return time.Duration(o.SpawnIntervalMs) * time.Millisecond
}
