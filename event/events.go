// Package event decodes raw SDL 1.2 event records into a closed set of Go
// types and moves them between the native queue and application code.
//
// Decode is total: every possible record, including ones from library
// versions newer than this package, produces exactly one Event. Records
// it does not understand come back as Unknown.
package event

import (
	"encoding/binary"
	"fmt"

	"github.com/elliotmr/sdl/sys"
)

// Type is the event discriminant, byte 0 of every raw record.
type Type uint8

const (
	NoEvent          Type = sys.NoEvent
	ActiveEvent      Type = sys.ActiveEvent
	KeyDown          Type = sys.KeyDown
	KeyUp            Type = sys.KeyUp
	MouseMotionEvent Type = sys.MouseMotion
	MouseButtonDown  Type = sys.MouseButtonDown
	MouseButtonUp    Type = sys.MouseButtonUp
	JoyAxisMotion    Type = sys.JoyAxisMotion
	JoyBallMotion    Type = sys.JoyBallMotion
	JoyHatMotion     Type = sys.JoyHatMotion
	JoyButtonDown    Type = sys.JoyButtonDown
	JoyButtonUp      Type = sys.JoyButtonUp
	QuitEvent        Type = sys.QuitEvent
	SysWMEvent       Type = sys.SysWMEvent
	VideoResize      Type = sys.VideoResize
	VideoExpose      Type = sys.VideoExpose
	UserEvent        Type = sys.UserEvent
	NumEvents        Type = sys.NumEvents
)

var typeNames = map[Type]string{
	NoEvent:          "NoEvent",
	ActiveEvent:      "ActiveEvent",
	KeyDown:          "KeyDown",
	KeyUp:            "KeyUp",
	MouseMotionEvent: "MouseMotion",
	MouseButtonDown:  "MouseButtonDown",
	MouseButtonUp:    "MouseButtonUp",
	JoyAxisMotion:    "JoyAxisMotion",
	JoyBallMotion:    "JoyBallMotion",
	JoyHatMotion:     "JoyHatMotion",
	JoyButtonDown:    "JoyButtonDown",
	JoyButtonUp:      "JoyButtonUp",
	QuitEvent:        "Quit",
	SysWMEvent:       "SysWMEvent",
	VideoResize:      "VideoResize",
	VideoExpose:      "VideoExpose",
}

func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	if t.IsUser() {
		return fmt.Sprintf("UserEvent+%d", t-UserEvent)
	}
	return fmt.Sprintf("Type(%d)", uint8(t))
}

// IsUser reports whether t is in the range reserved for application events.
func (t Type) IsUser() bool {
	return t >= UserEvent && t < NumEvents
}

// Data is one raw event record. The typed views below (ActiveData,
// KeyboardData, ...) read individual fields at their C offsets.
type Data sys.Event

// ne is the byte order of multi-byte record fields.
var ne = binary.NativeEndian

func (d Data) Type() Type {
	return Type(d[0])
}

func (d Data) Raw() sys.Event {
	return sys.Event(d)
}

// Event is a decoded event. The set of implementations is closed: Active,
// Keyboard, MouseMotion, MouseButton, JoyAxis, JoyButton, JoyHat, JoyBall,
// Resize, Expose, Quit, User, Custom and Unknown.
type Event interface {
	event()
}

// State is the decoded form of a pressed/released field.
type State uint8

const (
	StateUnknown State = iota
	Up
	Down
)

func (s State) String() string {
	switch s {
	case Up:
		return "up"
	case Down:
		return "down"
	}
	return "unknown"
}

func decodeState(raw uint8) State {
	switch raw {
	case sys.Released:
		return Up
	case sys.Pressed:
		return Down
	}
	return StateUnknown
}

func encodeState(s State) uint8 {
	if s == Down {
		return sys.Pressed
	}
	return sys.Released
}

// Quit is sent when the user asks to close the application.
type Quit struct{}

// Expose is sent when the screen must be redrawn.
type Expose struct{}

// User is an application-defined event pushed with a type in
// [UserEvent, NumEvents). Data1 and Data2 are opaque pointer-sized values
// that are passed through untouched.
type User struct {
	Type         Type
	Code         int32
	Data1, Data2 uintptr
}

// Custom carries a user event converted by DecodeUser.
type Custom[T any] struct {
	Value T
}

// Unknown is any record this package has no decoding for.
type Unknown struct {
	Type Type
}

func (Quit) event()      {}
func (Expose) event()    {}
func (User) event()      {}
func (Custom[T]) event() {}
func (Unknown) event()   {}

// UserData is the raw view of an SDL_UserEvent.
type UserData Data

func (ud UserData) Code() int32 {
	return int32(ne.Uint32(ud[4:8]))
}

func (ud UserData) Data1() uintptr {
	return uintptr(ne.Uint64(ud[8:16]))
}

func (ud UserData) Data2() uintptr {
	return uintptr(ne.Uint64(ud[16:24]))
}
