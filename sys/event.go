package sys

// EventSize is the size of SDL_Event on 64-bit targets, the largest member
// being SDL_UserEvent (type, padding, code, two pointers).
const EventSize = 24

// Event is one raw SDL_Event union as copied out of the native queue. Byte 0
// is the type discriminant; the rest is interpreted per type using the C
// struct layout with native byte order.
type Event [EventSize]byte

// Event type discriminants (SDL_EventType).
const (
	NoEvent         = 0
	ActiveEvent     = 1
	KeyDown         = 2
	KeyUp           = 3
	MouseMotion     = 4
	MouseButtonDown = 5
	MouseButtonUp   = 6
	JoyAxisMotion   = 7
	JoyBallMotion   = 8
	JoyHatMotion    = 9
	JoyButtonDown   = 10
	JoyButtonUp     = 11
	QuitEvent       = 12
	SysWMEvent      = 13
	VideoResize     = 16
	VideoExpose     = 17
	UserEvent       = 24
	NumEvents       = 32
)

// Focus flags carried by SDL_ActiveEvent.state.
const (
	AppMouseFocus = 0x01
	AppInputFocus = 0x02
	AppActive     = 0x04
)

// Button and key states.
const (
	Released = 0
	Pressed  = 1
)

// Mouse button indices.
const (
	ButtonLeft      = 1
	ButtonMiddle    = 2
	ButtonRight     = 3
	ButtonWheelUp   = 4
	ButtonWheelDown = 5
	ButtonX1        = 6
	ButtonX2        = 7
)
