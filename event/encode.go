package event

import (
	"github.com/pkg/errors"
)

// ErrNotEncodable is returned by Encode for events that have no native
// representation, such as Unknown, Custom or an ActiveUnknown Active.
var ErrNotEncodable = errors.New("event: no raw encoding for event")

// Encode builds the raw record for ev, the inverse of Decode for every
// event that has one. It is used to push events into the native queue.
func Encode(ev Event) (Data, error) {
	var d Data
	switch e := ev.(type) {
	case Active:
		for pair, kind := range activeTable {
			if kind == e.Kind {
				d[0] = byte(ActiveEvent)
				d[1] = pair.gain
				d[2] = pair.state
				return d, nil
			}
		}
		return d, errors.Wrapf(ErrNotEncodable, "active kind %s", e.Kind)
	case Keyboard:
		d[0] = byte(KeyUp)
		if e.State == Down {
			d[0] = byte(KeyDown)
		}
		d[1] = e.Which
		d[2] = encodeState(e.State)
		d[4] = e.Keysym.Scancode
		ne.PutUint32(d[8:12], uint32(e.Keysym.Sym))
		ne.PutUint32(d[12:16], uint32(e.Keysym.Mod))
		ne.PutUint16(d[16:18], e.Keysym.Unicode)
	case MouseMotion:
		d[0] = byte(MouseMotionEvent)
		d[1] = e.Which
		ne.PutUint16(d[4:6], e.X)
		ne.PutUint16(d[6:8], e.Y)
		ne.PutUint16(d[8:10], uint16(e.XRel))
		ne.PutUint16(d[10:12], uint16(e.YRel))
	case MouseButton:
		d[0] = byte(MouseButtonUp)
		if e.State == Down {
			d[0] = byte(MouseButtonDown)
		}
		d[1] = e.Which
		d[2] = uint8(e.Button)
		d[3] = encodeState(e.State)
		ne.PutUint16(d[4:6], e.X)
		ne.PutUint16(d[6:8], e.Y)
	case JoyAxis:
		d[0] = byte(JoyAxisMotion)
		d[1] = e.Device
		d[2] = e.Axis
		ne.PutUint16(d[4:6], uint16(e.Value))
	case JoyBall:
		d[0] = byte(JoyBallMotion)
		d[1] = e.Device
		d[2] = e.Ball
		ne.PutUint16(d[4:6], uint16(e.XRel))
		ne.PutUint16(d[6:8], uint16(e.YRel))
	case JoyHat:
		d[0] = byte(JoyHatMotion)
		d[1] = e.Device
		d[2] = e.Hat
		d[3] = e.Value
	case JoyButton:
		d[0] = byte(JoyButtonUp)
		if e.State == Down {
			d[0] = byte(JoyButtonDown)
		}
		d[1] = e.Device
		d[2] = e.Button
		d[3] = encodeState(e.State)
	case Resize:
		d[0] = byte(VideoResize)
		ne.PutUint32(d[4:8], uint32(e.W))
		ne.PutUint32(d[8:12], uint32(e.H))
	case Expose:
		d[0] = byte(VideoExpose)
	case Quit:
		d[0] = byte(QuitEvent)
	case User:
		t := e.Type
		if t == 0 {
			t = UserEvent
		}
		if !t.IsUser() {
			return d, errors.Wrapf(ErrNotEncodable, "user event type %s", t)
		}
		d[0] = byte(t)
		ne.PutUint32(d[4:8], uint32(e.Code))
		ne.PutUint64(d[8:16], uint64(e.Data1))
		ne.PutUint64(d[16:24], uint64(e.Data2))
	default:
		return d, errors.Wrapf(ErrNotEncodable, "%T", ev)
	}
	return d, nil
}
