package tui

import (
	"github.com/vovakirdan/kokaton/internal/core"
)

// halfBlock is drawn in every pixel cell: the upper pixel is the
// foreground, the lower pixel is the background.
const halfBlock = '▀'

// glyph is a character drawn over the pixel layer.
type glyph struct {
	r  rune
	fg core.Color
}

// Canvas is a core.Surface that scales the play area down to a terminal.
// Each cell holds two vertically stacked pixels. World coordinates map
// linearly onto the pixel grid, so the whole play area is always visible.
type Canvas struct {
	area       core.Size
	cols, rows int
	pix        []core.Color // cols × rows*2
	text       []glyph      // cols × rows, r == 0 means none
	screen     *core.Screen
	frame      string
	presents   int
}

// NewCanvas creates a canvas showing area in cols×rows cells.
func NewCanvas(area core.Size, cols, rows int) *Canvas {
	c := &Canvas{area: area}
	c.Resize(cols, rows)
	return c
}

// Resize changes the terminal size. The back buffer is cleared and the
// next Present shows whatever is drawn after the resize.
func (c *Canvas) Resize(cols, rows int) {
	cols = max(cols, 1)
	rows = max(rows, 1)
	c.cols, c.rows = cols, rows
	c.pix = make([]core.Color, cols*rows*2)
	c.text = make([]glyph, cols*rows)
	c.screen = core.NewScreen(cols, rows)
}

// Cols returns the canvas width in cells.
func (c *Canvas) Cols() int { return c.cols }

// Rows returns the canvas height in cells.
func (c *Canvas) Rows() int { return c.rows }

// pixelW and pixelH are the back buffer dimensions.
func (c *Canvas) pixelW() int { return c.cols }
func (c *Canvas) pixelH() int { return c.rows * 2 }

// toPixel maps a world coordinate onto the pixel grid along one axis.
func toPixel(v, world, pixels int) int {
	if world <= 0 {
		return 0
	}
	return floorDiv(v*pixels, world)
}

// toWorld returns the world coordinate sampled by the centre of pixel p.
func toWorld(p, world, pixels int) int {
	return floorDiv((2*p+1)*world, 2*pixels)
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// Blit implements core.Surface. Every pixel whose centre falls inside the
// image takes the image colour there, unless it is transparent. Text under
// a drawn pixel is erased.
func (c *Canvas) Blit(img *core.Bitmap, r core.Rect) {
	if img == nil || img.W == 0 || img.H == 0 {
		return
	}
	pw, ph := c.pixelW(), c.pixelH()
	x0 := max(toPixel(r.X, c.area.W, pw), 0)
	x1 := min(toPixel(r.X+img.W, c.area.W, pw)+1, pw)
	y0 := max(toPixel(r.Y, c.area.H, ph), 0)
	y1 := min(toPixel(r.Y+img.H, c.area.H, ph)+1, ph)

	for py := y0; py < y1; py++ {
		sy := toWorld(py, c.area.H, ph) - r.Y
		if sy < 0 || sy >= img.H {
			continue
		}
		for px := x0; px < x1; px++ {
			sx := toWorld(px, c.area.W, pw) - r.X
			if sx < 0 || sx >= img.W {
				continue
			}
			col := img.At(sx, sy)
			if col == core.ColorTransparent {
				continue
			}
			c.pix[py*pw+px] = col
			c.text[(py/2)*c.cols+px] = glyph{}
		}
	}
}

// DrawText implements core.Surface. Text is placed on the cell
// containing (x, y) and clipped at the right edge. size is ignored since
// a terminal has one font size.
func (c *Canvas) DrawText(text string, x, y, _ int, col core.Color) {
	cx := toPixel(x, c.area.W, c.cols)
	cy := toPixel(y, c.area.H, c.rows)
	if cy < 0 || cy >= c.rows {
		return
	}
	for _, r := range text {
		if cx >= c.cols {
			break
		}
		if cx >= 0 {
			c.text[cy*c.cols+cx] = glyph{r: r, fg: col}
		}
		cx++
	}
}

// Present implements core.Surface by converting the back buffer into
// screen cells and rendering them.
func (c *Canvas) Present() {
	pw := c.pixelW()
	for cy := range c.rows {
		for cx := range c.cols {
			top := c.pix[(2*cy)*pw+cx]
			bottom := c.pix[(2*cy+1)*pw+cx]
			cell := core.Cell{Rune: halfBlock, Fg: top, Bg: bottom}
			if g := c.text[cy*c.cols+cx]; g.r != 0 {
				cell = core.Cell{Rune: g.r, Fg: g.fg, Bg: top}
			}
			c.screen.SetCell(cx, cy, cell)
		}
	}
	c.frame = RenderScreen(c.screen)
	c.presents++
}

// Frame returns the styled string of the last presented frame.
func (c *Canvas) Frame() string { return c.frame }

// Presents counts Present calls.
func (c *Canvas) Presents() int { return c.presents }

// Screen returns the cell buffer of the last presented frame.
func (c *Canvas) Screen() *core.Screen { return c.screen }

// PixelAt returns a back buffer pixel, for tests.
func (c *Canvas) PixelAt(px, py int) core.Color {
	if px < 0 || px >= c.pixelW() || py < 0 || py >= c.pixelH() {
		return core.ColorTransparent
	}
	return c.pix[py*c.pixelW()+px]
}
