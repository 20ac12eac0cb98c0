package sprite

import (
	"testing"

	"github.com/vovakirdan/kokaton/internal/core"
)

func TestDefaultPackLoads(t *testing.T) {
	p, err := DefaultPack()
	if err != nil {
		t.Fatalf("DefaultPack() failed: %v", err)
	}

	bird, ok := p.Image(ImageBird)
	if !ok {
		t.Fatal("pack has no bird")
	}
	if bird.W != 80 || bird.H != 70 {
		t.Errorf("bird = %dx%d, expected 80x70", bird.W, bird.H)
	}

	for n := 1; n <= PoseCount; n++ {
		pose, ok := p.Pose(n)
		if !ok {
			t.Fatalf("pose %d missing", n)
		}
		if pose.W != bird.W || pose.H != bird.H {
			t.Errorf("pose %d = %dx%d, expected bird size", n, pose.W, pose.H)
		}
	}

	// Pose 3 is the plain art; the hit and defeat poses differ from it
	plain, _ := p.Pose(PoseDefault)
	if !equalBitmaps(plain, bird) {
		t.Error("default pose should equal the base art")
	}
	for _, n := range []int{PoseHit, PoseDefeat} {
		pose, _ := p.Pose(n)
		if equalBitmaps(pose, plain) {
			t.Errorf("pose %d should differ from the default pose", n)
		}
	}
}

func TestParsePackErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"bad yaml", "palette: ["},
		{"missing images", "palette: {\".\": transparent}\n"},
		{"ragged art", `palette: {".": transparent, "k": black}
images:
  bird: {scale: 1, art: ["..", "..."]}
  beam: {scale: 1, art: [".."]}
  explosion: {scale: 1, art: [".."]}
`},
		{"unknown palette char", `palette: {".": transparent}
images:
  bird: {scale: 1, art: [".x"]}
  beam: {scale: 1, art: [".."]}
  explosion: {scale: 1, art: [".."]}
`},
		{"missing poses", `palette: {".": transparent}
images:
  bird: {scale: 1, art: [".."]}
  beam: {scale: 1, art: [".."]}
  explosion: {scale: 1, art: [".."]}
`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := ParsePack([]byte(tc.yaml)); err == nil {
				t.Error("ParsePack() should fail")
			}
		})
	}
}

func TestRotozoomQuarterTurns(t *testing.T) {
	// 3x1 bar with distinct ends: red . blue
	img := core.NewBitmap(3, 1)
	img.Set(0, 0, core.ColorRed)
	img.Set(1, 0, core.ColorWhite)
	img.Set(2, 0, core.ColorBlue)

	same := Rotozoom(img, 0, 1)
	if !equalBitmaps(same, img) {
		t.Error("Rotozoom(0, 1) should be the identity")
	}

	// Counter-clockwise quarter turn: the right end ends up on top
	up := Rotozoom(img, 90, 1)
	if up.W != 1 || up.H != 3 {
		t.Fatalf("rotated size = %dx%d, expected 1x3", up.W, up.H)
	}
	if up.At(0, 0) != core.ColorBlue || up.At(0, 2) != core.ColorRed {
		t.Errorf("90° rotation should put the right end on top, got %v..%v", up.At(0, 0), up.At(0, 2))
	}

	down := Rotozoom(img, -90, 1)
	if down.At(0, 0) != core.ColorRed || down.At(0, 2) != core.ColorBlue {
		t.Error("-90° rotation should put the right end at the bottom")
	}

	half := Rotozoom(img, 180, 1)
	if !equalBitmaps(half, Flip(img, true, true)) {
		t.Error("180° rotation should equal a flip on both axes")
	}
}

func TestRotozoomScale(t *testing.T) {
	img := core.NewBitmap(80, 70)
	img.Fill(core.ColorYellow)
	z := Rotozoom(img, 0, 0.9)
	if z.W != 72 || z.H != 63 {
		t.Errorf("scaled size = %dx%d, expected 72x63", z.W, z.H)
	}

	diag := Rotozoom(img, 45, 1)
	if diag.W <= img.W || diag.H <= img.H {
		t.Errorf("45° bounding box %dx%d should exceed the source", diag.W, diag.H)
	}
	if diag.At(0, 0) != core.ColorTransparent {
		t.Error("corners of a rotated image should be transparent")
	}
}

func TestFlip(t *testing.T) {
	img := core.NewBitmap(2, 2)
	img.Set(0, 0, core.ColorRed)

	h := Flip(img, true, false)
	if h.At(1, 0) != core.ColorRed {
		t.Error("horizontal flip should move the pixel right")
	}
	v := Flip(img, false, true)
	if v.At(0, 1) != core.ColorRed {
		t.Error("vertical flip should move the pixel down")
	}
	hv := Flip(img, true, true)
	if hv.At(1, 1) != core.ColorRed {
		t.Error("double flip should move the pixel to the opposite corner")
	}
	if img.At(0, 0) != core.ColorRed {
		t.Error("Flip must not modify its input")
	}
}

func TestCircle(t *testing.T) {
	c := Circle(core.ColorRed, 10)
	if c.W != 20 || c.H != 20 {
		t.Fatalf("circle = %dx%d, expected 20x20", c.W, c.H)
	}
	if c.At(10, 10) != core.ColorRed {
		t.Error("circle center should be filled")
	}
	if c.At(0, 0) != core.ColorTransparent || c.At(19, 19) != core.ColorTransparent {
		t.Error("circle corners should be transparent")
	}
}

func TestAtlasDerivation(t *testing.T) {
	a, err := Default(core.Size{W: 1100, H: 650})
	if err != nil {
		t.Fatalf("Default() failed: %v", err)
	}

	if a.Background.W != 1100 || a.Background.H != 650 {
		t.Errorf("background = %dx%d", a.Background.W, a.Background.H)
	}

	east, west := a.Bird(core.East), a.Bird(core.West)
	if !equalBitmaps(east, Flip(west, true, false)) {
		t.Error("east-facing bird should mirror the west-facing one")
	}
	if west.W != 72 || west.H != 63 {
		t.Errorf("west bird = %dx%d, expected 72x63", west.W, west.H)
	}
	// Vertical poses are rotated a second time at 0.9
	north := a.Bird(core.North)
	if north.W != 57 || north.H != 65 {
		t.Errorf("north bird = %dx%d, expected 57x65", north.W, north.H)
	}

	for _, d := range core.Directions {
		if a.Bird(d) == nil || a.Beam(d) == nil {
			t.Errorf("direction %v has no image", d)
		}
	}

	beamEast := a.Beam(core.East)
	if beamEast.W != 56 || beamEast.H != 20 {
		t.Errorf("east beam = %dx%d, expected 56x20", beamEast.W, beamEast.H)
	}
	beamNorth := a.Beam(core.North)
	if beamNorth.W != 20 || beamNorth.H != 56 {
		t.Errorf("north beam = %dx%d, expected 20x56", beamNorth.W, beamNorth.H)
	}

	if equalBitmaps(a.Explosion(0), a.Explosion(1)) {
		t.Error("explosion frames should differ")
	}
	if !equalBitmaps(a.Explosion(1), Flip(a.Explosion(0), true, true)) {
		t.Error("second explosion frame should be the first mirrored on both axes")
	}

	again, _ := Default(core.Size{W: 1100, H: 650})
	if again != a {
		t.Error("Default should reuse the atlas for the same area")
	}
}

func TestAtlasPosePanics(t *testing.T) {
	a, err := Default(core.Size{W: 10, H: 10})
	if err != nil {
		t.Fatal(err)
	}
	defer func() {
		if recover() == nil {
			t.Error("Pose(0) should panic")
		}
	}()
	a.Pose(0)
}

func equalBitmaps(a, b *core.Bitmap) bool {
	if a.W != b.W || a.H != b.H {
		return false
	}
	for i := range a.Pix {
		if a.Pix[i] != b.Pix[i] {
			return false
		}
	}
	return true
}
