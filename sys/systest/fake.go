// Package systest provides an in-memory sys.Library for tests.
//
// The fake records every call, can be told to fail any function by name, and
// rewrites its error slot on every call the way the native library may: a
// failure stores its message, a success clears it. Code that reads the error
// slot too late sees the wrong value, exactly as it would against SDL.
package systest

import (
	"fmt"

	"github.com/elliotmr/sdl/sys"
)

// Call is one recorded invocation.
type Call struct {
	Name string
	Args []interface{}
}

func (c Call) String() string {
	return fmt.Sprintf("%s%v", c.Name, c.Args)
}

type failure struct {
	code int
	text string
}

// Fake is a scriptable sys.Library. The zero value is not usable; call New.
type Fake struct {
	Calls []Call

	// Events is the pending native event queue consumed by PollEvent and
	// WaitEvent and appended to by PushEvent.
	Events []sys.Event

	// Joysticks and Drives name the devices the fake reports.
	Joysticks []string
	Drives    []string

	// Caption holds the last title passed to WMSetCaption.
	Caption string

	failures    map[string]failure
	errCode     int
	errText     string
	initialized uint32
	surfaces    map[sys.Surface]bool
	next        sys.Surface
	ticks       uint32
	audio       int
	joyEvents   int
}

// New returns a fake whose calls all succeed.
func New() *Fake {
	return &Fake{
		failures: make(map[string]failure),
		surfaces: make(map[sys.Surface]bool),
		errCode:  sys.NoErrorCode,
		next:     0x1000,
		audio:    sys.AudioStopped,
	}
}

// Fail makes every later call of the named function fail, leaving code and
// text in the error slot.
func (f *Fake) Fail(name string, code int, text string) {
	f.failures[name] = failure{code: code, text: text}
}

// Succeed undoes Fail for the named function.
func (f *Fake) Succeed(name string) {
	delete(f.failures, name)
}

// Count reports how many times the named function was called.
func (f *Fake) Count(name string) int {
	n := 0
	for _, c := range f.Calls {
		if c.Name == name {
			n++
		}
	}
	return n
}

// Names lists recorded call names in order.
func (f *Fake) Names() []string {
	names := make([]string, len(f.Calls))
	for i, c := range f.Calls {
		names[i] = c.Name
	}
	return names
}

// Reset forgets recorded calls; scripted failures and state are kept.
func (f *Fake) Reset() {
	f.Calls = nil
}

// Live reports whether s was returned by SetVideoMode and not yet freed.
func (f *Fake) Live(s sys.Surface) bool {
	return f.surfaces[s]
}

// Advance moves the fake clock forward without a Delay call.
func (f *Fake) Advance(ms uint32) {
	f.ticks += ms
}

// Initialized returns the currently initialized subsystem mask.
func (f *Fake) Initialized() uint32 {
	return f.initialized
}

// record logs the call and reports whether it should fail, updating the
// error slot either way.
func (f *Fake) record(name string, args ...interface{}) bool {
	f.Calls = append(f.Calls, Call{Name: name, Args: args})
	if fl, ok := f.failures[name]; ok {
		f.errCode = fl.code
		f.errText = fl.text
		return true
	}
	f.errCode = sys.NoErrorCode
	f.errText = ""
	return false
}

func (f *Fake) Init(flags uint32) int {
	if f.record("Init", flags) {
		return -1
	}
	f.initialized |= flags
	return 0
}

func (f *Fake) Quit() {
	f.record("Quit")
	f.initialized = 0
}

func (f *Fake) InitSubSystem(flags uint32) int {
	if f.record("InitSubSystem", flags) {
		return -1
	}
	f.initialized |= flags
	return 0
}

func (f *Fake) QuitSubSystem(flags uint32) {
	f.record("QuitSubSystem", flags)
	f.initialized &^= flags
}

func (f *Fake) WasInit(flags uint32) uint32 {
	f.record("WasInit", flags)
	if flags == 0 {
		return f.initialized
	}
	return f.initialized & flags
}

// GetError does not touch the slot it reports.
func (f *Fake) GetError() (int, string) {
	f.Calls = append(f.Calls, Call{Name: "GetError"})
	return f.errCode, f.errText
}

func (f *Fake) ClearError() {
	f.record("ClearError")
}

func (f *Fake) SetVideoMode(width, height, bpp int, flags uint32) sys.Surface {
	if f.record("SetVideoMode", width, height, bpp, flags) {
		return 0
	}
	s := f.next
	f.next += 0x100
	f.surfaces[s] = true
	return s
}

func (f *Fake) WMSetCaption(title, icon string) {
	if f.record("WMSetCaption", title, icon) {
		return
	}
	f.Caption = title
}

func (f *Fake) Flip(s sys.Surface) int {
	if f.record("Flip", s) {
		return -1
	}
	if !f.surfaces[s] {
		f.errCode = sys.NoErrorCode
		f.errText = "Invalid surface"
		return -1
	}
	return 0
}

func (f *Fake) FreeSurface(s sys.Surface) {
	f.record("FreeSurface", s)
	delete(f.surfaces, s)
}

func (f *Fake) PollEvent(ev *sys.Event) int {
	if f.record("PollEvent") || len(f.Events) == 0 {
		return 0
	}
	*ev = f.Events[0]
	f.Events = f.Events[1:]
	return 1
}

// WaitEvent fails instead of blocking when the queue is empty.
func (f *Fake) WaitEvent(ev *sys.Event) int {
	if f.record("WaitEvent") {
		return 0
	}
	if len(f.Events) == 0 {
		f.errText = "fake: no events pending"
		return 0
	}
	*ev = f.Events[0]
	f.Events = f.Events[1:]
	return 1
}

func (f *Fake) PushEvent(ev *sys.Event) int {
	if f.record("PushEvent", ev[0]) {
		return -1
	}
	f.Events = append(f.Events, *ev)
	return 0
}

func (f *Fake) GetTicks() uint32 {
	f.record("GetTicks")
	return f.ticks
}

func (f *Fake) Delay(ms uint32) {
	f.record("Delay", ms)
	f.ticks += ms
}

func (f *Fake) NumJoysticks() int {
	f.record("NumJoysticks")
	return len(f.Joysticks)
}

func (f *Fake) JoystickName(index int) string {
	f.record("JoystickName", index)
	if index < 0 || index >= len(f.Joysticks) {
		return ""
	}
	return f.Joysticks[index]
}

// JoystickEventState follows SDL: -1 (SDL_QUERY) reports, 0/1 set.
func (f *Fake) JoystickEventState(state int) int {
	if f.record("JoystickEventState", state) {
		return -1
	}
	if state >= 0 {
		f.joyEvents = state
	}
	return f.joyEvents
}

func (f *Fake) CDNumDrives() int {
	if f.record("CDNumDrives") {
		return -1
	}
	return len(f.Drives)
}

func (f *Fake) CDName(drive int) string {
	f.record("CDName", drive)
	if drive < 0 || drive >= len(f.Drives) {
		f.errText = "Invalid CD-ROM drive index"
		return ""
	}
	return f.Drives[drive]
}

func (f *Fake) PauseAudio(pauseOn int) {
	f.record("PauseAudio", pauseOn)
	if pauseOn != 0 {
		f.audio = sys.AudioPaused
	} else {
		f.audio = sys.AudioPlaying
	}
}

func (f *Fake) GetAudioStatus() int {
	f.record("GetAudioStatus")
	return f.audio
}

var _ sys.Library = (*Fake)(nil)
