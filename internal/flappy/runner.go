package flappy

import (
	"context"
	"fmt"

	"github.com/vovakirdan/tui-flappy/internal/clock"
)

// Runner drives a session: poll input, step, draw, present, pace.
type Runner struct {
	session *Session
	sprites Sprites
	input   InputSource
	out     Renderer
	driver  *clock.Driver
}

// NewRunner wires a session to its presentation collaborators.
func NewRunner(session *Session, sprites Sprites, input InputSource, out Renderer, driver *clock.Driver) *Runner {
	return &Runner{
		session: session,
		sprites: sprites,
		input:   input,
		out:     out,
		driver:  driver,
	}
}

// Session returns the driven session.
func (r *Runner) Session() *Session {
	return r.session
}

// Frame runs one iteration without pacing. After a quit nothing is drawn.
func (r *Runner) Frame() (StepResult, error) {
	res := r.session.Step(r.input.PollInputs(), r.driver.Millis())
	if res.Quit {
		return res, nil
	}

	r.out.DrawFrame(r.session.Render(r.sprites))
	if err := r.out.Present(); err != nil {
		return res, fmt.Errorf("flappy: present frame: %w", err)
	}
	return res, nil
}

// Run loops Frame and the driver's pacing until the player quits, ctx is
// canceled or presenting fails. observe, if not nil, sees every step result.
func (r *Runner) Run(ctx context.Context, observe func(StepResult)) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		res, err := r.Frame()
		if err != nil {
			return err
		}
		if observe != nil {
			observe(res)
		}
		if res.Quit {
			return nil
		}

		r.driver.Tick()
	}
}
