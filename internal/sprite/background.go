package sprite

import "github.com/vovakirdan/kokaton/internal/core"

// cloud is an ellipse placed relative to the play area.
type cloud struct {
	fx, fy float64 // Center as a fraction of the area
	rx, ry int     // Radii in pixels
}

var clouds = []cloud{
	{0.15, 0.18, 70, 22},
	{0.22, 0.15, 50, 18},
	{0.55, 0.10, 90, 25},
	{0.80, 0.22, 60, 20},
	{0.88, 0.19, 40, 15},
}

// Background renders the play-area backdrop: a two-tone sky with clouds
// above a strip of grass.
func Background(area core.Size) *core.Bitmap {
	bg := core.NewBitmap(area.W, area.H)
	horizon := area.H * 7 / 8

	for y := 0; y < area.H; y++ {
		c := core.ColorLightSky
		switch {
		case y >= horizon+area.H/32:
			c = core.ColorDarkGreen
		case y >= horizon:
			c = core.ColorGreen
		case y < horizon/2:
			c = core.ColorSky
		}
		for x := 0; x < area.W; x++ {
			bg.Set(x, y, c)
		}
	}

	for _, cl := range clouds {
		cx := int(cl.fx * float64(area.W))
		cy := int(cl.fy * float64(area.H))
		for y := cy - cl.ry; y <= cy+cl.ry; y++ {
			for x := cx - cl.rx; x <= cx+cl.rx; x++ {
				dx := float64(x-cx) / float64(cl.rx)
				dy := float64(y-cy) / float64(cl.ry)
				if dx*dx+dy*dy <= 1 && y < horizon {
					bg.Set(x, y, core.ColorWhite)
				}
			}
		}
	}

	return bg
}
