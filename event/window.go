package event

import "github.com/elliotmr/sdl/sys"

// ActiveKind is the decoded (state, gain) pair of an application
// visibility event.
type ActiveKind uint8

const (
	ActiveUnknown ActiveKind = iota
	MouseEnter
	MouseLeave
	AppFocused
	AppUnfocused
	Minimized
	Restored
)

var activeNames = [...]string{
	ActiveUnknown: "Unknown",
	MouseEnter:    "MouseEnter",
	MouseLeave:    "MouseLeave",
	AppFocused:    "AppFocused",
	AppUnfocused:  "AppUnfocused",
	Minimized:     "Minimized",
	Restored:      "Restored",
}

func (k ActiveKind) String() string {
	if int(k) < len(activeNames) {
		return activeNames[k]
	}
	return activeNames[ActiveUnknown]
}

type activePair struct {
	state, gain uint8
}

// activeTable is the complete mapping. Pairs not listed, including
// combined state bits, decode to ActiveUnknown.
var activeTable = map[activePair]ActiveKind{
	{sys.AppMouseFocus, 0}: MouseLeave,
	{sys.AppMouseFocus, 1}: MouseEnter,
	{sys.AppInputFocus, 0}: AppUnfocused,
	{sys.AppInputFocus, 1}: AppFocused,
	{sys.AppActive, 0}:     Minimized,
	{sys.AppActive, 1}:     Restored,
}

// Active reports the application gaining or losing mouse focus, input focus
// or visibility.
type Active struct {
	Kind ActiveKind
}

// Resize is sent for resizable windows when the user changes the size. The
// application must set a new video mode itself.
type Resize struct {
	W, H int32
}

func (Active) event() {}
func (Resize) event() {}

// ActiveData is the raw view of an SDL_ActiveEvent.
type ActiveData Data

func (ad ActiveData) Gain() uint8 {
	return ad[1]
}

func (ad ActiveData) State() uint8 {
	return ad[2]
}

func decodeActive(ad ActiveData) Active {
	return Active{Kind: activeTable[activePair{ad.State(), ad.Gain()}]}
}

// ResizeData is the raw view of an SDL_ResizeEvent.
type ResizeData Data

func (rd ResizeData) W() int32 {
	return int32(ne.Uint32(rd[4:8]))
}

func (rd ResizeData) H() int32 {
	return int32(ne.Uint32(rd[8:12]))
}
