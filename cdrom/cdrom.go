// Package cdrom wraps CD-ROM drive enumeration.
package cdrom

import (
	"github.com/elliotmr/sdl"
	"github.com/pkg/errors"
)

// Subsystem is the CD-ROM subsystem guard.
type Subsystem struct {
	*sdl.Subsystem
}

// Init initializes the CD-ROM subsystem on ctx.
func Init(ctx *sdl.Context) (*Subsystem, error) {
	s, err := ctx.Subsystem(sdl.CDROM)
	if err != nil {
		return nil, err
	}
	return &Subsystem{Subsystem: s}, nil
}

// NumDrives returns the number of CD-ROM drives on the system.
func (cs *Subsystem) NumDrives() (int, error) {
	if err := cs.Check(); err != nil {
		return 0, err
	}
	lib := cs.Context().Library()
	n := lib.CDNumDrives()
	if n < 0 {
		return 0, errors.Wrap(sdl.GetError(lib), "count cdrom drives")
	}
	return n, nil
}

// Name returns the system-dependent name of drive, such as "/dev/cdrom".
func (cs *Subsystem) Name(drive int) (string, error) {
	if err := cs.Check(); err != nil {
		return "", err
	}
	lib := cs.Context().Library()
	name := lib.CDName(drive)
	if name == "" {
		return "", errors.Wrapf(sdl.GetError(lib), "cdrom drive %d", drive)
	}
	return name, nil
}
