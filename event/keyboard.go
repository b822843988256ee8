package event

// Key is an SDLKey virtual key code.
type Key uint32

// A subset of key codes; the rest are passed through numerically.
const (
	KeyUnknown    Key = 0
	KeyBackspace  Key = 8
	KeyTab        Key = 9
	KeyReturn     Key = 13
	KeyPause      Key = 19
	KeyEscape     Key = 27
	KeySpace      Key = 32
	Key0          Key = 48
	Key9          Key = 57
	KeyA          Key = 97
	KeyZ          Key = 122
	KeyDelete     Key = 127
	KeyArrowUp    Key = 273
	KeyArrowDown  Key = 274
	KeyArrowRight Key = 275
	KeyArrowLeft  Key = 276
	KeyF1         Key = 282
	KeyF12        Key = 293
	KeyRShift     Key = 303
	KeyLShift     Key = 304
	KeyRCtrl      Key = 305
	KeyLCtrl      Key = 306
	KeyRAlt       Key = 307
	KeyLAlt       Key = 308
)

// Mod is an SDLMod modifier mask.
type Mod uint32

const (
	ModNone   Mod = 0x0000
	ModLShift Mod = 0x0001
	ModRShift Mod = 0x0002
	ModLCtrl  Mod = 0x0040
	ModRCtrl  Mod = 0x0080
	ModLAlt   Mod = 0x0100
	ModRAlt   Mod = 0x0200
	ModLMeta  Mod = 0x0400
	ModRMeta  Mod = 0x0800
	ModNum    Mod = 0x1000
	ModCaps   Mod = 0x2000
	ModMode   Mod = 0x4000

	ModShift = ModLShift | ModRShift
	ModCtrl  = ModLCtrl | ModRCtrl
	ModAlt   = ModLAlt | ModRAlt
	ModMeta  = ModLMeta | ModRMeta
)

// Keysym describes one key. Unicode is only filled in when unicode
// translation has been enabled on the native side.
type Keysym struct {
	Scancode uint8
	Sym      Key
	Mod      Mod
	Unicode  uint16
}

// Keyboard is a key press or release.
type Keyboard struct {
	Which  uint8
	State  State
	Keysym Keysym
}

func (Keyboard) event() {}

// Pressed reports whether the key went down.
func (k Keyboard) Pressed() bool {
	return k.State == Down
}

// KeyboardData is the raw view of an SDL_KeyboardEvent.
type KeyboardData Data

func (kd KeyboardData) Which() uint8 {
	return kd[1]
}

func (kd KeyboardData) State() uint8 {
	return kd[2]
}

func (kd KeyboardData) Scancode() uint8 {
	return kd[4]
}

func (kd KeyboardData) Sym() uint32 {
	return ne.Uint32(kd[8:12])
}

func (kd KeyboardData) Mod() uint32 {
	return ne.Uint32(kd[12:16])
}

func (kd KeyboardData) Unicode() uint16 {
	return ne.Uint16(kd[16:18])
}

func decodeKeyboard(kd KeyboardData) Keyboard {
	return Keyboard{
		Which: kd.Which(),
		State: decodeState(kd.State()),
		Keysym: Keysym{
			Scancode: kd.Scancode(),
			Sym:      Key(kd.Sym()),
			Mod:      Mod(kd.Mod()),
			Unicode:  kd.Unicode(),
		},
	}
}
