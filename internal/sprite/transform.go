package sprite

import (
	"math"

	"github.com/vovakirdan/kokaton/internal/core"
)

// Rotozoom rotates img counter-clockwise by deg degrees and scales it by
// scale, sampling nearest neighbours. The result is sized to the rotated
// bounding box; uncovered pixels are transparent.
func Rotozoom(img *core.Bitmap, deg, scale float64) *core.Bitmap {
	if scale <= 0 {
		return core.NewBitmap(0, 0)
	}
	theta := deg * math.Pi / 180
	sin, cos := math.Sincos(theta)
	sin, cos = snap(sin), snap(cos)

	w, h := float64(img.W), float64(img.H)
	dw := dimension((math.Abs(w*cos) + math.Abs(h*sin)) * scale)
	dh := dimension((math.Abs(w*sin) + math.Abs(h*cos)) * scale)
	dst := core.NewBitmap(dw, dh)

	for j := 0; j < dh; j++ {
		y := float64(j) + 0.5 - float64(dh)/2
		for i := 0; i < dw; i++ {
			x := float64(i) + 0.5 - float64(dw)/2
			// Inverse rotation maps the destination pixel back into the source
			sx := (x*cos-y*sin)/scale + w/2
			sy := (x*sin+y*cos)/scale + h/2
			if sx < 0 || sy < 0 {
				continue
			}
			dst.Set(i, j, img.At(int(sx), int(sy)))
		}
	}
	return dst
}

// Flip mirrors img horizontally, vertically, or both.
func Flip(img *core.Bitmap, horizontal, vertical bool) *core.Bitmap {
	dst := core.NewBitmap(img.W, img.H)
	for y := 0; y < img.H; y++ {
		sy := y
		if vertical {
			sy = img.H - 1 - y
		}
		for x := 0; x < img.W; x++ {
			sx := x
			if horizontal {
				sx = img.W - 1 - x
			}
			dst.Set(x, y, img.At(sx, sy))
		}
	}
	return dst
}

// Scale enlarges img by an integer factor, repeating each pixel.
func Scale(img *core.Bitmap, factor int) *core.Bitmap {
	if factor <= 1 {
		return img.Clone()
	}
	dst := core.NewBitmap(img.W*factor, img.H*factor)
	for y := 0; y < dst.H; y++ {
		for x := 0; x < dst.W; x++ {
			dst.Set(x, y, img.At(x/factor, y/factor))
		}
	}
	return dst
}

// Circle returns a 2r×2r bitmap holding a filled circle of radius r centred
// in it. Corners stay transparent.
func Circle(c core.Color, r int) *core.Bitmap {
	if r < 1 {
		return core.NewBitmap(0, 0)
	}
	dst := core.NewBitmap(2*r, 2*r)
	rr := float64(r) * float64(r)
	for y := 0; y < dst.H; y++ {
		dy := float64(y) + 0.5 - float64(r)
		for x := 0; x < dst.W; x++ {
			dx := float64(x) + 0.5 - float64(r)
			if dx*dx+dy*dy <= rr {
				dst.Set(x, y, c)
			}
		}
	}
	return dst
}

// snap removes floating point noise so quarter turns keep exact sizes.
func snap(v float64) float64 {
	const eps = 1e-9
	switch {
	case math.Abs(v) < eps:
		return 0
	case math.Abs(v-1) < eps:
		return 1
	case math.Abs(v+1) < eps:
		return -1
	}
	return v
}

func dimension(v float64) int {
	n := int(math.Round(v))
	if n < 1 {
		return 1
	}
	return n
}
