package event

// Decode maps one raw record to its Event. It never fails: discriminants
// without a handler, SysWMEvent included, decode to Unknown, and
// unrecognized field values decode to the Unknown member of their
// enumeration. Scalar fields are copied without range checks.
func Decode(d Data) Event {
	t := d.Type()
	switch t {
	case ActiveEvent:
		return decodeActive(ActiveData(d))
	case KeyDown, KeyUp:
		return decodeKeyboard(KeyboardData(d))
	case MouseMotionEvent:
		return decodeMouseMotion(MouseMotionData(d))
	case MouseButtonDown, MouseButtonUp:
		return decodeMouseButton(MouseButtonData(d))
	case JoyAxisMotion:
		jd := JoyData(d)
		return JoyAxis{Device: jd.Which(), Axis: jd.Index(), Value: jd.AxisValue()}
	case JoyBallMotion:
		jd := JoyData(d)
		xrel, yrel := jd.BallRel()
		return JoyBall{Device: jd.Which(), Ball: jd.Index(), XRel: xrel, YRel: yrel}
	case JoyHatMotion:
		jd := JoyData(d)
		return JoyHat{Device: jd.Which(), Hat: jd.Index(), Value: jd.HatValue()}
	case JoyButtonDown, JoyButtonUp:
		jd := JoyData(d)
		return JoyButton{Device: jd.Which(), Button: jd.Index(), State: decodeState(jd.ButtonState())}
	case VideoResize:
		rd := ResizeData(d)
		return Resize{W: rd.W(), H: rd.H()}
	case VideoExpose:
		return Expose{}
	case QuitEvent:
		return Quit{}
	}
	if t.IsUser() {
		ud := UserData(d)
		return User{Type: t, Code: ud.Code(), Data1: ud.Data1(), Data2: ud.Data2()}
	}
	return Unknown{Type: t}
}

// DecodeUser is Decode with user events converted by conv. When conv
// reports false the plain User event is returned instead.
func DecodeUser[T any](d Data, conv func(User) (T, bool)) Event {
	ev := Decode(d)
	u, ok := ev.(User)
	if !ok {
		return ev
	}
	if v, ok := conv(u); ok {
		return Custom[T]{Value: v}
	}
	return u
}
