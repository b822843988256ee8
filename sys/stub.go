//go:build !sdl

package sys

// unavailableText is left in the error slot by every failing stub call.
const unavailableText = "SDL support not compiled in; build with -tags sdl and install the SDL 1.2 development libraries"

type stub struct{}

// Default returns a library that reports SDL as unavailable. Rebuild with
// the "sdl" tag to link the real one.
func Default() Library {
	return stub{}
}

func (stub) Init(uint32) int { return -1 }
func (stub) Quit() {}
func (stub) InitSubSystem(uint32) int { return -1 }
func (stub) QuitSubSystem(uint32) {}
func (stub) WasInit(uint32) uint32 { return 0 }
func (stub) GetError() (int, string) { return NoErrorCode, unavailableText }
func (stub) ClearError() {}
func (stub) SetVideoMode(int, int, int, uint32) Surface { return 0 }
func (stub) WMSetCaption(string, string) {}
func (stub) Flip(Surface) int { return -1 }
func (stub) FreeSurface(Surface) {}
func (stub) PollEvent(*Event) int { return 0 }
func (stub) WaitEvent(*Event) int { return 0 }
func (stub) PushEvent(*Event) int { return -1 }
func (stub) GetTicks() uint32 { return 0 }
func (stub) Delay(uint32) {}
func (stub) NumJoysticks() int { return 0 }
func (stub) JoystickName(int) string { return "" }
func (stub) JoystickEventState(int) int { return -1 }
func (stub) CDNumDrives() int { return -1 }
func (stub) CDName(int) string { return "" }
func (stub) PauseAudio(int) {}
func (stub) GetAudioStatus() int { return AudioStopped }
