// Package joystick wraps the joystick subsystem's device enumeration and
// event-polling switch. Joystick events themselves arrive through package
// event.
package joystick

import (
	"github.com/elliotmr/sdl"
	"github.com/pkg/errors"
)

const (
	query  = -1
	ignore = 0
	enable = 1
)

// Subsystem is the joystick subsystem guard.
type Subsystem struct {
	*sdl.Subsystem
}

// Init initializes the joystick subsystem on ctx.
func Init(ctx *sdl.Context) (*Subsystem, error) {
	s, err := ctx.Subsystem(sdl.Joystick)
	if err != nil {
		return nil, err
	}
	return &Subsystem{Subsystem: s}, nil
}

// Count returns the number of attached joysticks.
func (js *Subsystem) Count() (int, error) {
	if err := js.Check(); err != nil {
		return 0, err
	}
	return js.Context().Library().NumJoysticks(), nil
}

// Name returns the implementation-dependent name of joystick index.
func (js *Subsystem) Name(index int) (string, error) {
	n, err := js.Count()
	if err != nil {
		return "", err
	}
	if index < 0 || index >= n {
		return "", errors.Errorf("joystick: index %d out of range [0,%d)", index, n)
	}
	return js.Context().Library().JoystickName(index), nil
}

// Names lists every attached joystick.
func (js *Subsystem) Names() ([]string, error) {
	n, err := js.Count()
	if err != nil {
		return nil, err
	}
	lib := js.Context().Library()
	names := make([]string, n)
	for i := range names {
		names[i] = lib.JoystickName(i)
	}
	return names, nil
}

// SetEventPolling turns joystick events on or off. With polling off the
// application must read device state itself.
func (js *Subsystem) SetEventPolling(on bool) error {
	if err := js.Check(); err != nil {
		return err
	}
	state := ignore
	if on {
		state = enable
	}
	lib := js.Context().Library()
	if lib.JoystickEventState(state) < 0 {
		return errors.Wrap(sdl.GetError(lib), "set joystick event state")
	}
	return nil
}

// EventPolling reports whether joystick events are delivered.
func (js *Subsystem) EventPolling() (bool, error) {
	if err := js.Check(); err != nil {
		return false, err
	}
	lib := js.Context().Library()
	state := lib.JoystickEventState(query)
	if state < 0 {
		return false, errors.Wrap(sdl.GetError(lib), "query joystick event state")
	}
	return state == enable, nil
}
