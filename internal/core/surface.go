package core

// Surface is the drawing target a game renders into.
// Frontends (terminal canvas, Ebitengine window, test recorders) implement it.
type Surface interface {
	// Blit draws img with its top-left corner at r.X, r.Y.
	Blit(img *Bitmap, r Rect)

	// DrawText draws text with its top-left corner at (x, y).
	// size is a point-size hint; frontends may ignore it.
	DrawText(text string, x, y, size int, c Color)

	// Present shows everything drawn so far.
	Present()
}

// NopSurface discards all drawing. Used by headless simulation.
type NopSurface struct {
	Presents int
}

// Blit implements Surface.
func (*NopSurface) Blit(*Bitmap, Rect) {}

// DrawText implements Surface.
func (*NopSurface) DrawText(string, int, int, int, Color) {}

// Present implements Surface.
func (s *NopSurface) Present() {
	s.Presents++
}
