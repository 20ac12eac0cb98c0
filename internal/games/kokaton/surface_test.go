package kokaton

import "github.com/vovakirdan/kokaton/internal/core"

// op is one recorded drawing call.
type op struct {
	kind string // "blit", "text" or "present"
	img  *core.Bitmap
	rect core.Rect
	text string
}

// recorder is a core.Surface that remembers every call in order.
type recorder struct {
	ops []op
}

func (r *recorder) Blit(img *core.Bitmap, rect core.Rect) {
	r.ops = append(r.ops, op{kind: "blit", img: img, rect: rect})
}

func (r *recorder) DrawText(text string, x, y, _ int, _ core.Color) {
	r.ops = append(r.ops, op{kind: "text", text: text, rect: core.NewRect(x, y, 0, 0)})
}

func (r *recorder) Present() {
	r.ops = append(r.ops, op{kind: "present"})
}

func (r *recorder) reset() {
	r.ops = r.ops[:0]
}

func (r *recorder) count(kind string) int {
	n := 0
	for _, o := range r.ops {
		if o.kind == kind {
			n++
		}
	}
	return n
}

// index returns the position of the first op matching pred, or -1.
func (r *recorder) index(pred func(op) bool) int {
	for i, o := range r.ops {
		if pred(o) {
			return i
		}
	}
	return -1
}

func (r *recorder) texts() []string {
	var out []string
	for _, o := range r.ops {
		if o.kind == "text" {
			out = append(out, o.text)
		}
	}
	return out
}
