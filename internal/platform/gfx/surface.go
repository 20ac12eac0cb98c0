package gfx

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/vovakirdan/kokaton/internal/core"
)

// surface is a core.Surface drawing into an offscreen frame. Present copies
// the frame to the image shown by Draw.
type surface struct {
	frame  *ebiten.Image
	shown  *ebiten.Image
	images map[*core.Bitmap]*ebiten.Image
	source *text.GoTextFaceSource
	faces  map[int]*text.GoTextFace
}

func newSurface(area core.Size) (*surface, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("gfx: load font: %w", err)
	}
	return &surface{
		frame:  ebiten.NewImage(area.W, area.H),
		shown:  ebiten.NewImage(area.W, area.H),
		images: make(map[*core.Bitmap]*ebiten.Image),
		source: src,
		faces:  make(map[int]*text.GoTextFace),
	}, nil
}

// image returns the GPU image for b. Bitmaps are immutable once drawn, so
// each one is uploaded once.
func (s *surface) image(b *core.Bitmap) *ebiten.Image {
	if img, ok := s.images[b]; ok {
		return img
	}
	img := ebiten.NewImage(b.W, b.H)
	img.WritePixels(pixels(b))
	s.images[b] = img
	return img
}

// Blit implements core.Surface.
func (s *surface) Blit(b *core.Bitmap, r core.Rect) {
	if b == nil || b.W == 0 || b.H == 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(r.X), float64(r.Y))
	s.frame.DrawImage(s.image(b), op)
}

// DrawText implements core.Surface. size is the font size in pixels.
func (s *surface) DrawText(str string, x, y, size int, c core.Color) {
	face, ok := s.faces[size]
	if !ok {
		face = &text.GoTextFace{Source: s.source, Size: float64(size)}
		s.faces[size] = face
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(rgba(c))
	text.Draw(s.frame, str, face, op)
}

// Present implements core.Surface.
func (s *surface) Present() {
	s.shown.Clear()
	s.shown.DrawImage(s.frame, nil)
}

// rgba converts a palette entry. ColorTransparent is fully transparent.
func rgba(c core.Color) color.RGBA {
	if c == core.ColorTransparent {
		return color.RGBA{}
	}
	v := c.RGB()
	return color.RGBA{R: v.R, G: v.G, B: v.B, A: 0xff}
}

// pixels encodes b as RGBA bytes for WritePixels.
func pixels(b *core.Bitmap) []byte {
	out := make([]byte, 0, len(b.Pix)*4)
	for _, c := range b.Pix {
		v := rgba(c)
		out = append(out, v.R, v.G, v.B, v.A)
	}
	return out
}
