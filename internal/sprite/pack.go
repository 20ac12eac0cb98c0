// Package sprite is the image provider: it loads the embedded pixel-art pack,
// applies the rotate/scale/mirror transforms, and builds the immutable Atlas
// of pre-rendered images the game draws from.
package sprite

import (
	_ "embed"
	"fmt"
	"sort"
	"unicode/utf8"

	"github.com/vovakirdan/kokaton/internal/core"
	"gopkg.in/yaml.v3"
)

//go:embed assets/kokaton.yaml
var defaultPackYAML []byte

// Image names every pack must define.
const (
	ImageBird      = "bird"
	ImageBeam      = "beam"
	ImageExplosion = "explosion"
)

// PoseCount is the number of numbered bird poses (1..PoseCount).
const PoseCount = 9

// yamlPack mirrors the asset file layout.
type yamlPack struct {
	Palette map[string]string       `yaml:"palette"`
	Images  map[string]yamlImage    `yaml:"images"`
	Poses   map[int][]yamlPosePixel `yaml:"poses"`
}

type yamlImage struct {
	Scale int      `yaml:"scale"`
	Art   []string `yaml:"art"`
}

type yamlPosePixel struct {
	X int    `yaml:"x"`
	Y int    `yaml:"y"`
	C string `yaml:"c"` // Color name
}

// Pack holds the decoded base images, already upscaled.
type Pack struct {
	images map[string]*core.Bitmap
	poses  [PoseCount + 1]*core.Bitmap // index 0 unused
}

// DefaultPack decodes the embedded asset pack.
func DefaultPack() (*Pack, error) {
	return ParsePack(defaultPackYAML)
}

// ParsePack decodes an asset pack.
func ParsePack(data []byte) (*Pack, error) {
	var yp yamlPack
	if err := yaml.Unmarshal(data, &yp); err != nil {
		return nil, fmt.Errorf("sprite: yaml unmarshal: %w", err)
	}

	palette, err := parsePalette(yp.Palette)
	if err != nil {
		return nil, err
	}

	p := &Pack{images: make(map[string]*core.Bitmap, len(yp.Images))}
	for _, name := range []string{ImageBird, ImageBeam, ImageExplosion} {
		if _, ok := yp.Images[name]; !ok {
			return nil, fmt.Errorf("sprite: missing image %q", name)
		}
	}

	var birdArt *core.Bitmap
	for name, img := range yp.Images {
		art, err := parseArt(name, img.Art, palette)
		if err != nil {
			return nil, err
		}
		if name == ImageBird {
			birdArt = art
		}
		p.images[name] = Scale(art, scaleOrOne(img.Scale))
	}

	scale := scaleOrOne(yp.Images[ImageBird].Scale)
	for n := 1; n <= PoseCount; n++ {
		patch, ok := yp.Poses[n]
		if !ok {
			return nil, fmt.Errorf("sprite: missing pose %d", n)
		}
		pose := birdArt.Clone()
		for _, px := range patch {
			c, ok := core.ParseColor(px.C)
			if !ok {
				return nil, fmt.Errorf("sprite: pose %d: unknown color %q", n, px.C)
			}
			if px.X < 0 || px.X >= pose.W || px.Y < 0 || px.Y >= pose.H {
				return nil, fmt.Errorf("sprite: pose %d: pixel (%d,%d) outside art", n, px.X, px.Y)
			}
			pose.Set(px.X, px.Y, c)
		}
		p.poses[n] = Scale(pose, scale)
	}

	return p, nil
}

// Image returns a named base image.
func (p *Pack) Image(name string) (*core.Bitmap, bool) {
	img, ok := p.images[name]
	return img, ok
}

// Names returns the image names in sorted order.
func (p *Pack) Names() []string {
	names := make([]string, 0, len(p.images))
	for name := range p.images {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Pose returns numbered pose n (1..PoseCount) at pack scale.
func (p *Pack) Pose(n int) (*core.Bitmap, bool) {
	if n < 1 || n > PoseCount {
		return nil, false
	}
	return p.poses[n], true
}

func parsePalette(raw map[string]string) (map[rune]core.Color, error) {
	palette := make(map[rune]core.Color, len(raw))
	for key, name := range raw {
		if utf8.RuneCountInString(key) != 1 {
			return nil, fmt.Errorf("sprite: palette key %q must be one character", key)
		}
		c, ok := core.ParseColor(name)
		if !ok {
			return nil, fmt.Errorf("sprite: palette %q: unknown color %q", key, name)
		}
		r, _ := utf8.DecodeRuneInString(key)
		palette[r] = c
	}
	return palette, nil
}

func parseArt(name string, rows []string, palette map[rune]core.Color) (*core.Bitmap, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("sprite: image %q has no art", name)
	}
	w := utf8.RuneCountInString(rows[0])
	bmp := core.NewBitmap(w, len(rows))
	for y, row := range rows {
		if n := utf8.RuneCountInString(row); n != w {
			return nil, fmt.Errorf("sprite: image %q row %d is %d wide, expected %d", name, y, n, w)
		}
		x := 0
		for _, r := range row {
			c, ok := palette[r]
			if !ok {
				return nil, fmt.Errorf("sprite: image %q row %d: %q not in palette", name, y, r)
			}
			bmp.Set(x, y, c)
			x++
		}
	}
	return bmp, nil
}

func scaleOrOne(s int) int {
	if s < 1 {
		return 1
	}
	return s
}
