package field

// RGB is an 8-bit per channel colour.
type RGB struct {
	R, G, B uint8
}

// F returns the colour as 0..1 float components for GL uniforms.
func (c RGB) F() (r, g, b float32) {
	return float32(c.R) / 255.0, float32(c.G) / 255.0, float32(c.B) / 255.0
}

var Palette = struct {
	Background RGB
	Line       RGB
}{
	Background: RGB{R: 13, G: 15, B: 24},
	Line:       RGB{R: 148, G: 196, B: 255},
}
