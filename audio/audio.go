// Package audio wraps the audio subsystem's playback switch. Opening a
// device and feeding it samples belong to the mixer extension and are not
// covered here.
package audio

import (
	"fmt"

	"github.com/elliotmr/sdl"
	"github.com/elliotmr/sdl/sys"
)

// Status is the playback state of the audio device.
type Status int

const (
	Stopped Status = sys.AudioStopped
	Playing Status = sys.AudioPlaying
	Paused  Status = sys.AudioPaused
)

func (s Status) String() string {
	switch s {
	case Stopped:
		return "stopped"
	case Playing:
		return "playing"
	case Paused:
		return "paused"
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// Subsystem is the audio subsystem guard.
type Subsystem struct {
	*sdl.Subsystem
}

// Init initializes the audio subsystem on ctx.
func Init(ctx *sdl.Context) (*Subsystem, error) {
	s, err := ctx.Subsystem(sdl.Audio)
	if err != nil {
		return nil, err
	}
	return &Subsystem{Subsystem: s}, nil
}

// Pause pauses or resumes the callback. A newly opened device starts
// paused.
func (as *Subsystem) Pause(on bool) error {
	if err := as.Check(); err != nil {
		return err
	}
	v := 0
	if on {
		v = 1
	}
	as.Context().Library().PauseAudio(v)
	return nil
}

func (as *Subsystem) Status() (Status, error) {
	if err := as.Check(); err != nil {
		return Stopped, err
	}
	return Status(as.Context().Library().GetAudioStatus()), nil
}
