package event

import (
	"github.com/elliotmr/sdl"
	"github.com/elliotmr/sdl/sys"
	"github.com/pkg/errors"
)

// Subsystem is the guard for SDL's event thread. Events are delivered
// without it once video is initialized; the thread only moves event
// gathering off the main loop on platforms that support it.
type Subsystem struct {
	*sdl.Subsystem
}

// Init starts the event thread on ctx.
func Init(ctx *sdl.Context) (*Subsystem, error) {
	s, err := ctx.Subsystem(sdl.EventThread)
	if err != nil {
		return nil, err
	}
	return &Subsystem{Subsystem: s}, nil
}

// Poll takes the next pending event off the native queue without blocking.
// It returns false when the queue is empty or ctx is shut down.
func Poll(ctx *sdl.Context) (Event, bool) {
	if ctx.Closed() {
		return nil, false
	}
	var raw sys.Event
	if ctx.Library().PollEvent(&raw) == 0 {
		return nil, false
	}
	return Decode(Data(raw)), true
}

// Wait blocks until an event is available. There is no way to cancel the
// wait other than pushing an event from elsewhere.
func Wait(ctx *sdl.Context) (Event, error) {
	if ctx.Closed() {
		return nil, sdl.ErrContextClosed
	}
	var raw sys.Event
	lib := ctx.Library()
	if lib.WaitEvent(&raw) == 0 {
		return nil, errors.Wrap(sdl.GetError(lib), "wait for event")
	}
	return Decode(Data(raw)), nil
}

// Push appends ev to the native queue.
func Push(ctx *sdl.Context, ev Event) error {
	if ctx.Closed() {
		return sdl.ErrContextClosed
	}
	d, err := Encode(ev)
	if err != nil {
		return err
	}
	raw := sys.Event(d)
	lib := ctx.Library()
	if lib.PushEvent(&raw) != 0 {
		return errors.Wrap(sdl.GetError(lib), "push event")
	}
	return nil
}
