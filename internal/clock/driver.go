package clock

import (
	"fmt"
	"time"
)

// Driver caps the loop at a fixed frame rate and reports elapsed time.
type Driver struct {
	clk      Clock
	interval time.Duration
	start    time.Time
	last     time.Time
}

// NewDriver creates a frame driver running at most rate iterations per second.
func NewDriver(clk Clock, rate int) (*Driver, error) {
	if rate <= 0 {
		return nil, fmt.Errorf("clock: frame rate must be positive, got %d", rate)
	}
	now := clk.Now()
	return &Driver{
		clk:      clk,
		interval: time.Second / time.Duration(rate),
		start:    now,
		last:     now,
	}, nil
}

// Interval returns the target duration of one frame.
func (d *Driver) Interval() time.Duration {
	return d.interval
}

// Tick sleeps until a full frame interval has passed since the previous tick,
// then returns the milliseconds elapsed since that tick. A frame that already
// overran its budget returns immediately.
func (d *Driver) Tick() int64 {
	if wait := d.Delay(); wait > 0 {
		d.clk.Sleep(wait)
	}
	return d.Mark()
}

// Mark records a frame boundary without sleeping and returns the milliseconds
// elapsed since the previous one. Hosts that schedule frames themselves use
// Mark together with Delay.
func (d *Driver) Mark() int64 {
	now := d.clk.Now()
	elapsed := now.Sub(d.last)
	d.last = now
	return elapsed.Milliseconds()
}

// Delay returns how long to wait before the next frame is due.
func (d *Driver) Delay() time.Duration {
	wait := d.last.Add(d.interval).Sub(d.clk.Now())
	if wait < 0 {
		return 0
	}
	return wait
}

// Millis returns the free-running milliseconds since the driver was created.
func (d *Driver) Millis() int64 {
	return d.clk.Now().Sub(d.start).Milliseconds()
}
