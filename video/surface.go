package video

import (
	"github.com/elliotmr/sdl"
	"github.com/elliotmr/sdl/sys"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// ErrSurfaceFreed is returned when a freed Surface is used.
var ErrSurfaceFreed = errors.New("video: surface has been freed")

// Surface exclusively owns one native surface handle. Free releases it
// exactly once. Surfaces must not be copied; pass the pointer around and
// let one owner call Free.
//
// There is no finalizer: the native library must only be called from the
// thread that initialized it.
type Surface struct {
	vs     *Subsystem
	raw    sys.Surface
	width  uint32
	height uint32
	flags  uint32
	freed  bool
}

// Raw returns the native handle for pass-through calls, or zero once the
// surface is freed. The handle stays owned by s.
func (s *Surface) Raw() sys.Surface {
	if s.freed {
		return 0
	}
	return s.raw
}

// Size returns the dimensions the surface was created with.
func (s *Surface) Size() (width, height uint32) {
	return s.width, s.height
}

// Flags returns the flags the surface was created with.
func (s *Surface) Flags() uint32 {
	return s.flags
}

func (s *Surface) check() error {
	if s.freed {
		return ErrSurfaceFreed
	}
	return s.vs.Check()
}

// Flip presents the back buffer. On single-buffered surfaces it updates the
// whole screen.
func (s *Surface) Flip() error {
	if err := s.check(); err != nil {
		return err
	}
	lib := s.vs.Context().Library()
	if lib.Flip(s.raw) != 0 {
		return errors.Wrap(sdl.GetError(lib), "flip failed")
	}
	return nil
}

// Free releases the handle. Later calls are no-ops. If the video subsystem
// is already shut down the native library has reclaimed the surface itself
// and no native call is made.
func (s *Surface) Free() {
	if s.freed {
		return
	}
	s.freed = true
	if s.vs.Closed() {
		s.vs.Context().Logger().Warn("surface freed after video shutdown",
			zap.Uintptr("surface", uintptr(s.raw)))
		return
	}
	s.vs.Context().Library().FreeSurface(s.raw)
}

// Freed reports whether Free has been called.
func (s *Surface) Freed() bool {
	return s.freed
}
