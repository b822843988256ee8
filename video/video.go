// Package video owns the video subsystem: mode-setting through a validating
// WindowBuilder and the exclusively owned display Surface.
package video

import (
	"github.com/elliotmr/sdl"
)

// Subsystem is the video subsystem guard.
type Subsystem struct {
	*sdl.Subsystem
}

// Init initializes the video subsystem on ctx.
func Init(ctx *sdl.Context) (*Subsystem, error) {
	s, err := ctx.Subsystem(sdl.Video)
	if err != nil {
		return nil, err
	}
	return &Subsystem{Subsystem: s}, nil
}

// Window starts building a window. Nothing reaches the native library until
// WindowBuilder.Build.
func (vs *Subsystem) Window(title string, width, height uint32) *WindowBuilder {
	return NewWindowBuilder(vs, title, width, height)
}
