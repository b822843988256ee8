package event

import (
	"fmt"

	"github.com/elliotmr/sdl/sys"
)

// Button is a mouse button index. Values outside the named set are kept as
// reported by the library.
type Button uint8

const (
	ButtonLeft      Button = sys.ButtonLeft
	ButtonMiddle    Button = sys.ButtonMiddle
	ButtonRight     Button = sys.ButtonRight
	ButtonWheelUp   Button = sys.ButtonWheelUp
	ButtonWheelDown Button = sys.ButtonWheelDown
	ButtonX1        Button = sys.ButtonX1
	ButtonX2        Button = sys.ButtonX2
)

func (b Button) String() string {
	switch b {
	case ButtonLeft:
		return "left"
	case ButtonMiddle:
		return "middle"
	case ButtonRight:
		return "right"
	case ButtonWheelUp:
		return "wheelup"
	case ButtonWheelDown:
		return "wheeldown"
	case ButtonX1:
		return "x1"
	case ButtonX2:
		return "x2"
	}
	return fmt.Sprintf("Button(%d)", uint8(b))
}

// MouseMotion is a pointer move. The native button-state mask is not
// decoded: it only covers eight buttons, use MouseButton events instead.
type MouseMotion struct {
	Which      uint8
	X, Y       uint16
	XRel, YRel int16
}

// MouseButton is a button press or release.
type MouseButton struct {
	Which  uint8
	Button Button
	State  State
	X, Y   uint16
}

func (MouseMotion) event() {}
func (MouseButton) event() {}

// Pressed reports whether the button went down.
func (mb MouseButton) Pressed() bool {
	return mb.State == Down
}

// MouseMotionData is the raw view of an SDL_MouseMotionEvent.
type MouseMotionData Data

func (md MouseMotionData) Which() uint8 {
	return md[1]
}

func (md MouseMotionData) State() uint8 {
	return md[2]
}

func (md MouseMotionData) X() uint16 {
	return ne.Uint16(md[4:6])
}

func (md MouseMotionData) Y() uint16 {
	return ne.Uint16(md[6:8])
}

func (md MouseMotionData) XRel() int16 {
	return int16(ne.Uint16(md[8:10]))
}

func (md MouseMotionData) YRel() int16 {
	return int16(ne.Uint16(md[10:12]))
}

// MouseButtonData is the raw view of an SDL_MouseButtonEvent.
type MouseButtonData Data

func (mbd MouseButtonData) Which() uint8 {
	return mbd[1]
}

func (mbd MouseButtonData) Button() uint8 {
	return mbd[2]
}

func (mbd MouseButtonData) State() uint8 {
	return mbd[3]
}

func (mbd MouseButtonData) X() uint16 {
	return ne.Uint16(mbd[4:6])
}

func (mbd MouseButtonData) Y() uint16 {
	return ne.Uint16(mbd[6:8])
}

func decodeMouseMotion(md MouseMotionData) MouseMotion {
	return MouseMotion{
		Which: md.Which(),
		X:     md.X(),
		Y:     md.Y(),
		XRel:  md.XRel(),
		YRel:  md.YRel(),
	}
}

func decodeMouseButton(mbd MouseButtonData) MouseButton {
	return MouseButton{
		Which:  mbd.Which(),
		Button: Button(mbd.Button()),
		State:  decodeState(mbd.State()),
		X:      mbd.X(),
		Y:      mbd.Y(),
	}
}
