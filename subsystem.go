package sdl

import (
	"go.uber.org/zap"
)

// Subsystem is the guard for one initialized subsystem. Quit undoes the
// initialization exactly once. Guards are only handed out by pointer and
// must not be copied.
//
// The typed guards in the video, audio, timer, joystick, cdrom and event
// packages wrap a Subsystem of the matching Kind.
type Subsystem struct {
	_ noCopy

	ctx  *Context
	kind Kind
	done bool
}

// Kind returns the guarded subsystem.
func (s *Subsystem) Kind() Kind {
	return s.kind
}

// Context returns the Context the guard was issued by.
func (s *Subsystem) Context() *Context {
	return s.ctx
}

// Closed reports whether the guard has been released, either by Quit or by
// the owning Context shutting down.
func (s *Subsystem) Closed() bool {
	return s == nil || s.done
}

// Check returns ErrSubsystemClosed once the guard is released. Wrappers
// call it before every native call that needs the subsystem.
func (s *Subsystem) Check() error {
	if s.Closed() {
		return ErrSubsystemClosed
	}
	return nil
}

// Quit shuts the subsystem down. Only the first call reaches the native
// library.
func (s *Subsystem) Quit() {
	if s.Closed() {
		return
	}
	s.done = true
	s.ctx.lib.QuitSubSystem(s.kind.Mask())
	s.ctx.release(s)
	s.ctx.log.Debug("subsystem shut down", zap.Stringer("subsystem", s.kind))
}
