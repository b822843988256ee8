package video

import (
	"encoding/binary"
	"fmt"

	"github.com/elliotmr/sdl/sys"
)

// Color is an 8-bit-per-channel RGBA color.
type Color struct {
	R, G, B, A uint8
}

// Named colors. All are opaque.
var (
	White   = RGB(255, 255, 255)
	Black   = RGB(0, 0, 0)
	Gray    = RGB(128, 128, 128)
	Grey    = Gray
	Red     = RGB(255, 0, 0)
	Green   = RGB(0, 255, 0)
	Blue    = RGB(0, 0, 255)
	Magenta = RGB(255, 0, 255)
	Yellow  = RGB(255, 255, 0)
	Cyan    = RGB(0, 255, 255)
)

// RGB returns an opaque color.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 0xff}
}

// RGBA returns a color with explicit alpha.
func RGBA(r, g, b, a uint8) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// Invert flips every channel, alpha included.
func (c Color) Invert() Color {
	return Color{R: 255 - c.R, G: 255 - c.G, B: 255 - c.B, A: 255 - c.A}
}

// Packed returns the color as big-endian 0xRRGGBBAA, the form the gfx
// primitives take.
func (c Color) Packed() uint32 {
	return binary.BigEndian.Uint32([]byte{c.R, c.G, c.B, c.A})
}

// Unpack is the inverse of Color.Packed.
func Unpack(v uint32) Color {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], v)
	return Color{R: b[0], G: b[1], B: b[2], A: b[3]}
}

// Raw converts to the native SDL_Color; alpha travels in the unused byte.
func (c Color) Raw() sys.Color {
	return sys.Color{R: c.R, G: c.G, B: c.B, Unused: c.A}
}

// FromRaw is the inverse of Color.Raw.
func FromRaw(raw sys.Color) Color {
	return Color{R: raw.R, G: raw.G, B: raw.B, A: raw.Unused}
}

func (c Color) String() string {
	return fmt.Sprintf("#%08x", c.Packed())
}

// Palette is an ordered set of colors for 8-bit surfaces.
type Palette struct {
	Colors []Color
}

// Raw converts every entry to its native form.
func (p *Palette) Raw() []sys.Color {
	raw := make([]sys.Color, len(p.Colors))
	for i, c := range p.Colors {
		raw[i] = c.Raw()
	}
	return raw
}
