// Package video models the fixed 266x240 RGB565 framebuffer the demo draws
// into, and converts it to RGBA for presentation.
package video

// Display geometry. The pixel format and dimensions are fixed.
const (
	Width  = 266
	Height = 240
	Pixels = Width * Height
)

const (
	bits5 = (1 << 5) - 1
	bits6 = (1 << 6) - 1
)

// RGB packs three channel values in 0..64 into RGB565. The lowest bit of
// red and blue is discarded.
func RGB(r, g, b int) uint16 {
	return uint16((((r >> 1) & bits5) << 11) | ((g & bits6) << 5) | ((b >> 1) & bits5))
}

// Index is the row-major cell index of (x, y).
func Index(x, y int) int { return y*Width + x }

// Framebuffer is a row-major array of packed RGB565 cells. It is sized once
// and never grows.
type Framebuffer struct {
	Pix [Pixels]uint16
}

func NewFramebuffer() *Framebuffer { return &Framebuffer{} }

// At returns the cell at linear index i.
func (f *Framebuffer) At(i int) uint16 { return f.Pix[i] }

// Set writes one cell.
func (f *Framebuffer) Set(i int, c uint16) { f.Pix[i] = c }

// Clear fills the whole buffer with black.
func (f *Framebuffer) Clear() {
	for i := range f.Pix {
		f.Pix[i] = 0
	}
}

// Fill sets every cell to c.
func (f *Framebuffer) Fill(c uint16) {
	for i := range f.Pix {
		f.Pix[i] = c
	}
}

// RGBA expands the buffer into dst as 8-bit RGBA (len(dst) >= Pixels*4).
func (f *Framebuffer) RGBA(dst []byte) {
	_ = dst[Pixels*4-1]
	for i, c := range f.Pix {
		r, g, b := decodeRGB565(c)
		o := i * 4
		dst[o] = r
		dst[o+1] = g
		dst[o+2] = b
		dst[o+3] = 0xFF
	}
}

// decodeRGB565 scales each channel to 8 bits, replicating the high bits
// into the low ones so full intensity maps to 0xFF.
func decodeRGB565(c uint16) (r, g, b byte) {
	r5 := byte(c>>11) & bits5
	g6 := byte(c>>5) & bits6
	b5 := byte(c) & bits5
	r = (r5 << 3) | (r5 >> 2)
	g = (g6 << 2) | (g6 >> 4)
	b = (b5 << 3) | (b5 >> 2)
	return
}
