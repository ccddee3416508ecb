package pdfgen

// Color is a 32-bit packed ARGB value: (A<<24)|(R<<16)|(G<<8)|B. An alpha
// byte of 0xFF is the transparent sentinel used to mean "no fill".
type Color uint32

const (
	Black  Color = 0x000000
	White  Color = 0xFFFFFF
	Red    Color = 0xFF0000
	Green  Color = 0x00FF00
	Blue   Color = 0x0000FF
	Yellow Color = 0xFFFF00

	Transparent Color = 0xFF << 24
)

// RGB packs an opaque color from 8-bit components.
func RGB(r, g, b uint8) Color {
	return Color(uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// ARGB packs a color with an explicit alpha byte.
func ARGB(a, r, g, b uint8) Color {
	return Color(uint32(a))<<24 | RGB(r, g, b)
}

// IsTransparent reports whether the color is the no-fill sentinel.
func (c Color) IsTransparent() bool { return c>>24&0xFF == 0xFF }

func (c Color) alpha() uint8 { return uint8(c >> 24) }

// components returns the R, G, B channels scaled to the [0, 1] range PDF
// color operators expect.
func (c Color) components() (r, g, b float64) {
	r = float64(c>>16&0xFF) / 255.0
	g = float64(c>>8&0xFF) / 255.0
	b = float64(c&0xFF) / 255.0
	return r, g, b
}
