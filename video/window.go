package video

import (
	"fmt"
	"strings"

	"github.com/elliotmr/sdl"
	"github.com/elliotmr/sdl/sys"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Window flags understood by the mode-set call.
const (
	WindowSWSurface  = sys.SWSurface  // surface in system memory
	WindowHWSurface  = sys.HWSurface  // surface in video memory
	WindowDoubleBuf  = sys.DoubleBuf  // hardware double buffering, only with HWSurface
	WindowFullscreen = sys.Fullscreen // fullscreen display
	WindowOpenGL     = sys.OpenGL     // OpenGL rendering context
	WindowResizable  = sys.Resizable  // window may be resized, delivers Resize events
	WindowNoFrame    = sys.NoFrame    // no title bar or decoration
)

// Depth is the bits-per-pixel every window is created with.
const Depth = 32

// maxDimension is the first size the native int parameters cannot carry.
const maxDimension = 1 << 31

// BuildErrorKind tells why WindowBuilder.Build failed.
type BuildErrorKind int

const (
	InvalidTitle BuildErrorKind = iota
	WidthOverflows
	HeightOverflows
	SDLError
)

func (k BuildErrorKind) String() string {
	switch k {
	case InvalidTitle:
		return "invalid window title"
	case WidthOverflows:
		return "window width overflow"
	case HeightOverflows:
		return "window height overflow"
	case SDLError:
		return "SDL error"
	}
	return fmt.Sprintf("BuildErrorKind(%d)", int(k))
}

// BuildError is returned by WindowBuilder.Build. Value carries the rejected
// dimension or the offset of the NUL in the title; Err carries the library
// error for SDLError.
type BuildError struct {
	Kind  BuildErrorKind
	Value uint32
	Err   error
}

func (e *BuildError) Error() string {
	switch e.Kind {
	case InvalidTitle:
		return fmt.Sprintf("%s: nul byte at offset %d", e.Kind, e.Value)
	case WidthOverflows, HeightOverflows:
		return fmt.Sprintf("%s: %d", e.Kind, e.Value)
	}
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

func (e *BuildError) Unwrap() error {
	return e.Err
}

// WindowBuilder collects window parameters. The flag methods only record
// bits; Build validates and performs the single mode-set call.
//
// Every Build replaces the library's video mode. Surfaces from earlier
// builds keep their handle but the native library may have released what
// it points to; only the newest Surface should be drawn to or flipped.
type WindowBuilder struct {
	vs     *Subsystem
	title  string
	width  uint32
	height uint32
	flags  uint32
}

// NewWindowBuilder starts a builder on an initialized video subsystem.
func NewWindowBuilder(vs *Subsystem, title string, width, height uint32) *WindowBuilder {
	return &WindowBuilder{
		vs:     vs,
		title:  title,
		width:  width,
		height: height,
	}
}

func (wb *WindowBuilder) Fullscreen() *WindowBuilder {
	wb.flags |= WindowFullscreen
	return wb
}

func (wb *WindowBuilder) OpenGL() *WindowBuilder {
	wb.flags |= WindowOpenGL
	return wb
}

func (wb *WindowBuilder) Borderless() *WindowBuilder {
	wb.flags |= WindowNoFrame
	return wb
}

// Resizable lets the user resize the window.
func (wb *WindowBuilder) Resizable() *WindowBuilder {
	wb.flags |= WindowResizable
	return wb
}

func (wb *WindowBuilder) HWSurface() *WindowBuilder {
	wb.flags |= WindowHWSurface
	return wb
}

// DoubleBuf requests hardware double buffering. It implies HWSurface.
func (wb *WindowBuilder) DoubleBuf() *WindowBuilder {
	wb.flags |= WindowDoubleBuf | WindowHWSurface
	return wb
}

// Flags returns the accumulated flag mask.
func (wb *WindowBuilder) Flags() uint32 {
	return wb.flags
}

func (wb *WindowBuilder) validate() error {
	if i := strings.IndexByte(wb.title, 0); i >= 0 {
		return &BuildError{Kind: InvalidTitle, Value: uint32(i)}
	}
	if wb.width >= maxDimension {
		return &BuildError{Kind: WidthOverflows, Value: wb.width}
	}
	if wb.height >= maxDimension {
		return &BuildError{Kind: HeightOverflows, Value: wb.height}
	}
	return nil
}

// Build validates the parameters, sets the video mode and sets the window
// caption. Invalid parameters never reach the native library.
//
// The caption call has no failure signal in SDL 1.2, so it is best-effort.
func (wb *WindowBuilder) Build() (*Surface, error) {
	if err := wb.validate(); err != nil {
		return nil, err
	}
	if err := wb.vs.Check(); err != nil {
		return nil, errors.Wrap(err, "could not build window")
	}

	lib := wb.vs.Context().Library()
	raw := lib.SetVideoMode(int(wb.width), int(wb.height), Depth, wb.flags)
	if raw == 0 {
		return nil, &BuildError{Kind: SDLError, Err: sdl.GetError(lib)}
	}
	lib.WMSetCaption(wb.title, "")

	wb.vs.Context().Logger().Debug("video mode set",
		zap.Uint32("width", wb.width),
		zap.Uint32("height", wb.height),
		zap.Uint32("flags", wb.flags),
	)
	return &Surface{
		vs:     wb.vs,
		raw:    raw,
		width:  wb.width,
		height: wb.height,
		flags:  wb.flags,
	}, nil
}
