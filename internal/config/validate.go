package config

import (
	"errors"
	"fmt"
)

// Validate reports every malformed value at once. A config that passes can be
// simulated without per-frame surprises.
func (c FlappyConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.Window.Width > 0, "window.width must be positive, got %d", c.Window.Width)
	check(c.Window.Height > 0, "window.height must be positive, got %d", c.Window.Height)

	check(c.Frame.Rate > 0, "frame.rate must be positive, got %d", c.Frame.Rate)

	check(c.Physics.Gravity > 0, "physics.gravity must be positive, got %g", c.Physics.Gravity)
	check(c.Physics.FlapImpulse > 0, "physics.flap_impulse must be positive, got %g", c.Physics.FlapImpulse)
	check(c.Physics.ScrollSpeed > 0, "physics.scroll_speed must be positive, got %d", c.Physics.ScrollSpeed)

	o := c.Obstacles
	check(o.PipeWidth > 0, "obstacles.pipe_width must be positive, got %d", o.PipeWidth)
	check(o.PipeHeight > 0, "obstacles.pipe_height must be positive, got %d", o.PipeHeight)
	check(o.Gap > 0, "obstacles.gap must be positive, got %d", o.Gap)
	check(o.Band.Step > 0, "obstacles.band.step must be positive, got %d", o.Band.Step)
	check(o.Band.Min < o.Band.Max, "obstacles.band is empty: min %d, max %d", o.Band.Min, o.Band.Max)
	check(o.SpawnIntervalMs > 0, "obstacles.spawn_interval_ms must be positive, got %d", o.SpawnIntervalMs)

	a := c.Avatar
	check(a.Width > 0 && a.Height > 0, "avatar size must be positive, got %dx%d", a.Width, a.Height)
	check(a.X >= 0 && a.X < c.Window.Width, "avatar.x must lie inside the window, got %d", a.X)
	check(a.Ceiling <= 0, "avatar.ceiling must be at or above the top edge, got %d", a.Ceiling)
	check(a.AnimationStep >= 0, "avatar.animation_step must not be negative, got %g", a.AnimationStep)
	check(a.AnimationFrames > 0, "avatar.animation_frames must be positive, got %d", a.AnimationFrames)

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("invalid configuration: %w", errors.Join(errs...))
}
