package event

// Hat positions reported in JoyHat.Value.
const (
	HatCentered  = 0x00
	HatUp        = 0x01
	HatRight     = 0x02
	HatDown      = 0x04
	HatLeft      = 0x08
	HatRightUp   = HatRight | HatUp
	HatRightDown = HatRight | HatDown
	HatLeftUp    = HatLeft | HatUp
	HatLeftDown  = HatLeft | HatDown
)

// JoyAxis is an axis moving; Value spans the full int16 range.
type JoyAxis struct {
	Device uint8
	Axis   uint8
	Value  int16
}

// JoyButton is sent for both presses and releases.
type JoyButton struct {
	Device uint8
	Button uint8
	State  State
}

// JoyHat is a hat changing position, one of the Hat constants.
type JoyHat struct {
	Device uint8
	Hat    uint8
	Value  uint8
}

// JoyBall is relative trackball motion since the last event.
type JoyBall struct {
	Device     uint8
	Ball       uint8
	XRel, YRel int16
}

func (JoyAxis) event()   {}
func (JoyButton) event() {}
func (JoyHat) event()    {}
func (JoyBall) event()   {}

// Pressed reports whether the button went down.
func (jb JoyButton) Pressed() bool {
	return jb.State == Down
}

// JoyData is the raw view shared by the four joystick records: which
// device at byte 1 and the axis, ball, hat or button index at byte 2.
type JoyData Data

func (jd JoyData) Which() uint8 {
	return jd[1]
}

func (jd JoyData) Index() uint8 {
	return jd[2]
}

// AxisValue reads SDL_JoyAxisEvent.value.
func (jd JoyData) AxisValue() int16 {
	return int16(ne.Uint16(jd[4:6]))
}

// HatValue reads SDL_JoyHatEvent.value.
func (jd JoyData) HatValue() uint8 {
	return jd[3]
}

// ButtonState reads SDL_JoyButtonEvent.state.
func (jd JoyData) ButtonState() uint8 {
	return jd[3]
}

// BallRel reads SDL_JoyBallEvent.xrel and yrel.
func (jd JoyData) BallRel() (int16, int16) {
	return int16(ne.Uint16(jd[4:6])), int16(ne.Uint16(jd[6:8]))
}
