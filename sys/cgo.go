//go:build sdl

package sys

/*
#cgo pkg-config: sdl
#include <stdlib.h>
#include <SDL.h>
*/
import "C"

import "unsafe"

// eventBytes views a native SDL_Event as raw bytes.
type eventBytes = [unsafe.Sizeof(C.SDL_Event{})]byte

type native struct{}

// Default returns the cgo binding to the system SDL 1.2 library.
func Default() Library {
	return native{}
}

func (native) Init(flags uint32) int {
	return initLocked(func() int {
		return int(C.SDL_Init(C.Uint32(flags)))
	})
}

func (native) Quit() {
	C.SDL_Quit()
	unlockThread()
}

func (native) InitSubSystem(flags uint32) int {
	return int(C.SDL_InitSubSystem(C.Uint32(flags)))
}

func (native) QuitSubSystem(flags uint32) {
	C.SDL_QuitSubSystem(C.Uint32(flags))
}

func (native) WasInit(flags uint32) uint32 {
	return uint32(C.SDL_WasInit(C.Uint32(flags)))
}

func (native) GetError() (int, string) {
	text := C.GoString(C.SDL_GetError())
	return CodeForText(text), text
}

func (native) ClearError() {
	C.SDL_ClearError()
}

func (native) SetVideoMode(width, height, bpp int, flags uint32) Surface {
	s := C.SDL_SetVideoMode(C.int(width), C.int(height), C.int(bpp), C.Uint32(flags))
	return Surface(uintptr(unsafe.Pointer(s)))
}

func (native) WMSetCaption(title, icon string) {
	ctitle := C.CString(title)
	defer C.free(unsafe.Pointer(ctitle))
	var cicon *C.char
	if icon != "" {
		cicon = C.CString(icon)
		defer C.free(unsafe.Pointer(cicon))
	}
	C.SDL_WM_SetCaption(ctitle, cicon)
}

func surface(s Surface) *C.SDL_Surface {
	return (*C.SDL_Surface)(unsafe.Pointer(uintptr(s)))
}

func (native) Flip(s Surface) int {
	return int(C.SDL_Flip(surface(s)))
}

func (native) FreeSurface(s Surface) {
	C.SDL_FreeSurface(surface(s))
}

func (native) PollEvent(ev *Event) int {
	var raw C.SDL_Event
	n := int(C.SDL_PollEvent(&raw))
	if n != 0 {
		copy(ev[:], (*eventBytes)(unsafe.Pointer(&raw))[:])
	}
	return n
}

func (native) WaitEvent(ev *Event) int {
	var raw C.SDL_Event
	n := int(C.SDL_WaitEvent(&raw))
	if n != 0 {
		copy(ev[:], (*eventBytes)(unsafe.Pointer(&raw))[:])
	}
	return n
}

func (native) PushEvent(ev *Event) int {
	var raw C.SDL_Event
	copy((*eventBytes)(unsafe.Pointer(&raw))[:], ev[:])
	return int(C.SDL_PushEvent(&raw))
}

func (native) GetTicks() uint32 {
	return uint32(C.SDL_GetTicks())
}

func (native) Delay(ms uint32) {
	C.SDL_Delay(C.Uint32(ms))
}

func (native) NumJoysticks() int {
	return int(C.SDL_NumJoysticks())
}

func (native) JoystickName(index int) string {
	name := C.SDL_JoystickName(C.int(index))
	if name == nil {
		return ""
	}
	return C.GoString(name)
}

func (native) JoystickEventState(state int) int {
	return int(C.SDL_JoystickEventState(C.int(state)))
}

func (native) CDNumDrives() int {
	return int(C.SDL_CDNumDrives())
}

func (native) CDName(drive int) string {
	name := C.SDL_CDName(C.int(drive))
	if name == nil {
		return ""
	}
	return C.GoString(name)
}

func (native) PauseAudio(pauseOn int) {
	C.SDL_PauseAudio(C.int(pauseOn))
}

func (native) GetAudioStatus() int {
	return int(C.SDL_GetAudioStatus())
}
