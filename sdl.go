// Package sdl is a safe layer over the SDL 1.2 C library.
//
// The native library keeps one process-wide init flag, one error slot and
// one video mode. This package turns the first into a Context value that
// exists at most once, issues a guard per initialized subsystem, and
// translates the error slot into typed errors at the point of failure.
//
//	ctx, err := sdl.Init()
//	if err != nil {
//		return err
//	}
//	defer ctx.Quit()
//
//	vs, err := video.Init(ctx)
//	...
//
// Nothing here is safe for concurrent use. The library itself is
// single-threaded and every call must come from the goroutine that called
// Init.
package sdl

import (
	"fmt"
	"sync/atomic"

	"github.com/elliotmr/sdl/sys"
	"go.uber.org/zap"
)

// Kind names one independently initializable subsystem. Its value is the
// native SDL_INIT_* bit.
type Kind uint32

const (
	Timer       Kind = sys.InitTimer
	Audio       Kind = sys.InitAudio
	Video       Kind = sys.InitVideo
	CDROM       Kind = sys.InitCDROM
	Joystick    Kind = sys.InitJoystick
	EventThread Kind = sys.InitEventThread
)

// Kinds lists every subsystem in initialization-mask order.
var Kinds = []Kind{Timer, Audio, Video, CDROM, Joystick, EventThread}

func (k Kind) String() string {
	switch k {
	case Timer:
		return "timer"
	case Audio:
		return "audio"
	case Video:
		return "video"
	case CDROM:
		return "cdrom"
	case Joystick:
		return "joystick"
	case EventThread:
		return "eventthread"
	}
	return fmt.Sprintf("Kind(%#x)", uint32(k))
}

// Mask returns the native init bit.
func (k Kind) Mask() uint32 {
	return uint32(k)
}

// live is set while a Context exists.
var live int32

// noCopy lets go vet's copylocks check flag values that must not be copied.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Context owns the fact that the library is initialized. At most one exists
// per process. Every subsystem guard is issued by a Context and released no
// later than the Context's own Quit.
type Context struct {
	_ noCopy

	lib    sys.Library
	log    *zap.Logger
	guards []*Subsystem
	closed bool
}

type options struct {
	lib   sys.Library
	log   *zap.Logger
	flags uint32
}

// Option configures Init.
type Option func(*options)

// WithLibrary replaces the native library, mostly for tests.
func WithLibrary(lib sys.Library) Option {
	return func(o *options) {
		o.lib = lib
	}
}

// WithLogger sets the logger used for lifecycle tracing and best-effort
// failures that are not returned to the caller.
func WithLogger(log *zap.Logger) Option {
	return func(o *options) {
		o.log = log
	}
}

// WithNoParachute disables SDL's signal handlers that restore the video
// mode on a crash.
func WithNoParachute() Option {
	return func(o *options) {
		o.flags |= sys.InitNoParachute
	}
}

// Init initializes the library with no subsystems and returns the root
// Context. A second Init while a Context is live fails with
// ErrAlreadyInitialized and makes no native call.
func Init(opts ...Option) (*Context, error) {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.lib == nil {
		o.lib = sys.Default()
	}
	if o.log == nil {
		o.log = zap.NewNop()
	}

	if !atomic.CompareAndSwapInt32(&live, 0, 1) {
		return nil, ErrAlreadyInitialized
	}
	if o.lib.Init(o.flags) != 0 {
		err := GetError(o.lib)
		atomic.StoreInt32(&live, 0)
		return nil, err
	}
	o.log.Debug("sdl initialized", zap.Uint32("flags", o.flags))
	return &Context{lib: o.lib, log: o.log}, nil
}

// Library exposes the native function table for packages layered on the
// Context. Calls made through it bypass every guarantee of this package.
func (c *Context) Library() sys.Library {
	return c.lib
}

// Logger returns the Context's logger.
func (c *Context) Logger() *zap.Logger {
	return c.log
}

// Closed reports whether Quit has run.
func (c *Context) Closed() bool {
	return c == nil || c.closed
}

// Subsystem initializes kind and returns its guard. Requesting a kind that
// already has a live guard fails with ErrSubsystemActive before any native
// call, so teardown stays balanced.
func (c *Context) Subsystem(kind Kind) (*Subsystem, error) {
	if c.Closed() {
		return nil, ErrContextClosed
	}
	if c.active(kind) != nil {
		return nil, ErrSubsystemActive
	}
	if c.lib.InitSubSystem(kind.Mask()) != 0 {
		return nil, GetError(c.lib)
	}
	s := &Subsystem{ctx: c, kind: kind}
	c.guards = append(c.guards, s)
	c.log.Debug("subsystem initialized", zap.Stringer("subsystem", kind))
	return s, nil
}

func (c *Context) active(kind Kind) *Subsystem {
	for _, s := range c.guards {
		if s.kind == kind {
			return s
		}
	}
	return nil
}

// Active returns the kinds with a live guard, oldest first.
func (c *Context) Active() []Kind {
	kinds := make([]Kind, 0, len(c.guards))
	for _, s := range c.guards {
		kinds = append(kinds, s.kind)
	}
	return kinds
}

// WasInit asks the native library which of the given kinds it considers
// initialized. It may disagree with Active if the library was driven
// directly through Library.
func (c *Context) WasInit(kinds ...Kind) []Kind {
	if c.Closed() {
		return nil
	}
	var mask uint32
	for _, k := range kinds {
		mask |= k.Mask()
	}
	got := c.lib.WasInit(mask)
	var out []Kind
	for _, k := range Kinds {
		if got&k.Mask() != 0 && (mask == 0 || mask&k.Mask() != 0) {
			out = append(out, k)
		}
	}
	return out
}

func (c *Context) release(s *Subsystem) {
	for i, g := range c.guards {
		if g == s {
			c.guards = append(c.guards[:i], c.guards[i+1:]...)
			return
		}
	}
}

// Quit releases every outstanding guard, newest first, and then shuts the
// library down. It is safe to call more than once; only the first call
// reaches the native library.
func (c *Context) Quit() {
	if c.Closed() {
		return
	}
	for len(c.guards) > 0 {
		c.guards[len(c.guards)-1].Quit()
	}
	c.lib.Quit()
	c.closed = true
	atomic.StoreInt32(&live, 0)
	c.log.Debug("sdl shut down")
}
