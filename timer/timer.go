// Package timer wraps the timer subsystem: the millisecond clock, blocking
// delays and a frame-rate limiter built on both.
package timer

import (
	"math"
	"time"

	"github.com/elliotmr/sdl"
)

// Subsystem is the timer subsystem guard.
type Subsystem struct {
	*sdl.Subsystem
}

// Init initializes the timer subsystem on ctx.
func Init(ctx *sdl.Context) (*Subsystem, error) {
	s, err := ctx.Subsystem(sdl.Timer)
	if err != nil {
		return nil, err
	}
	return &Subsystem{Subsystem: s}, nil
}

// Ticks returns the milliseconds since the library was initialized. The
// value wraps after about 49 days.
func (ts *Subsystem) Ticks() (uint32, error) {
	if err := ts.Check(); err != nil {
		return 0, err
	}
	return ts.Context().Library().GetTicks(), nil
}

// Elapsed is Ticks as a Duration.
func (ts *Subsystem) Elapsed() (time.Duration, error) {
	ms, err := ts.Ticks()
	return time.Duration(ms) * time.Millisecond, err
}

// Delay blocks for at least d, rounded down to whole milliseconds. It
// cannot be interrupted. Durations below a millisecond return at once and
// ones beyond the native range are capped at math.MaxUint32 ms.
func (ts *Subsystem) Delay(d time.Duration) error {
	if err := ts.Check(); err != nil {
		return err
	}
	ms := d / time.Millisecond
	if ms <= 0 {
		return nil
	}
	if ms > math.MaxUint32 {
		ms = math.MaxUint32
	}
	ts.Context().Library().Delay(uint32(ms))
	return nil
}
