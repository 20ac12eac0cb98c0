package core

// Bitmap is an immutable-by-convention grid of palette pixels.
// Pixels equal to ColorTransparent are skipped when blitting.
type Bitmap struct {
	W, H int
	Pix  []Color // Row-major, len W*H
}

// NewBitmap allocates a fully transparent w×h bitmap.
func NewBitmap(w, h int) *Bitmap {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &Bitmap{W: w, H: h, Pix: make([]Color, w*h)}
}

// At returns the pixel at (x, y), or ColorTransparent outside the bitmap.
func (b *Bitmap) At(x, y int) Color {
	if x < 0 || x >= b.W || y < 0 || y >= b.H {
		return ColorTransparent
	}
	return b.Pix[y*b.W+x]
}

// Set writes a pixel. Out-of-bounds coordinates are silently ignored.
func (b *Bitmap) Set(x, y int, c Color) {
	if x < 0 || x >= b.W || y < 0 || y >= b.H {
		return
	}
	b.Pix[y*b.W+x] = c
}

// Fill sets every pixel to c.
func (b *Bitmap) Fill(c Color) {
	for i := range b.Pix {
		b.Pix[i] = c
	}
}

// Rect returns the bitmap bounds at the origin, like pygame's get_rect().
func (b *Bitmap) Rect() Rect {
	return NewRect(0, 0, b.W, b.H)
}

// Clone returns a deep copy.
func (b *Bitmap) Clone() *Bitmap {
	c := &Bitmap{W: b.W, H: b.H, Pix: make([]Color, len(b.Pix))}
	copy(c.Pix, b.Pix)
	return c
}
