// Package sys describes the native SDL 1.2 function table the safe layer is
// built on. Everything here is a thin, unchecked view of the C ABI: status
// codes are returned as-is and nothing is validated.
//
// The real binding is compiled with the "sdl" build tag and links against
// the system SDL 1.2 through cgo. Without the tag Default returns a library
// whose every call fails with a descriptive error, which keeps the rest of
// the module buildable and testable on machines without SDL installed.
package sys

// Subsystem init flags (SDL_INIT_*).
const (
	InitTimer       = 0x00000001
	InitAudio       = 0x00000010
	InitVideo       = 0x00000020
	InitCDROM       = 0x00000100
	InitJoystick    = 0x00000200
	InitNoParachute = 0x00100000
	InitEventThread = 0x01000000
	InitEverything  = 0x0000FFFF
)

// Video mode flags accepted by SetVideoMode.
const (
	SWSurface  = 0x00000000
	HWSurface  = 0x00000001
	AsyncBlit  = 0x00000004
	AnyFormat  = 0x10000000
	HWPalette  = 0x20000000
	DoubleBuf  = 0x40000000
	Fullscreen = 0x80000000
	OpenGL     = 0x00000002
	OpenGLBlit = 0x0000000A
	Resizable  = 0x00000010
	NoFrame    = 0x00000020
)

// Error codes passed to SDL_Error. NoErrorCode is reported when the error
// slot holds free text that did not originate from one of them.
const (
	ENoMem      = 0
	EFRead      = 1
	EFWrite     = 2
	EFSeek      = 3
	Unsupported = 4
	LastError   = 5

	NoErrorCode = -1
)

// Audio status values (SDL_audiostatus).
const (
	AudioStopped = 0
	AudioPlaying = 1
	AudioPaused  = 2
)

// Surface is an opaque native SDL_Surface pointer. Zero is the null surface.
type Surface uintptr

// Color mirrors SDL_Color field for field.
type Color struct {
	R, G, B, Unused uint8
}

// Library is the C function table of the wrapped library. Integer results
// follow the C convention: zero (or a non-null handle) is success, anything
// else is failure and leaves a description in the global error slot.
//
// Implementations are not safe for concurrent use.
type Library interface {
	Init(flags uint32) int
	Quit()
	InitSubSystem(flags uint32) int
	QuitSubSystem(flags uint32)
	WasInit(flags uint32) uint32

	// GetError reads the global error slot. The slot is overwritten by the
	// next library call, so it is only meaningful directly after a failure.
	GetError() (code int, text string)
	ClearError()

	SetVideoMode(width, height, bpp int, flags uint32) Surface
	WMSetCaption(title, icon string)
	Flip(s Surface) int
	FreeSurface(s Surface)

	PollEvent(ev *Event) int
	WaitEvent(ev *Event) int
	PushEvent(ev *Event) int

	GetTicks() uint32
	Delay(ms uint32)

	NumJoysticks() int
	JoystickName(index int) string
	JoystickEventState(state int) int

	CDNumDrives() int
	CDName(drive int) string

	PauseAudio(pauseOn int)
	GetAudioStatus() int
}
