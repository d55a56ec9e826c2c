package text

import (
	"image"
	"image/color"
	"testing"

	"golang.org/x/image/font/gofont/gomono"
)

// inked returns the number of pixels of img with non-zero alpha inside r.
func inked(img *image.RGBA, r image.Rectangle) int {
	n := 0
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if img.RGBAAt(x, y).A != 0 {
				n++
			}
		}
	}
	return n
}

func TestRunRasterizer(t *testing.T) {
	face := testSource(t, gomono.TTF).Face(10)
	run := ShapeRunWith(&BuiltinShaper{}, []rune("HH"), face, DirectionLTR)
	img := image.NewRGBA(image.Rect(0, 0, 40, 20))

	rr := NewRunRasterizer()
	if err := rr.DrawRun(img, &run, 2, 14, color.Black); err != nil {
		t.Fatalf("DrawRun() error = %v", err)
	}
	box := image.Rect(2, 14-int(run.Ascent)-1, 2+int(run.Advance)+1, 15)
	if n := inked(img, box); n == 0 {
		t.Error("no pixels drawn inside the run box")
	}
	if n := inked(img, image.Rect(box.Max.X+1, 0, 40, 20)); n != 0 {
		t.Errorf("%d pixels drawn right of the run", n)
	}
	if got := rr.CachedOutlines(); got != 1 {
		t.Errorf("CachedOutlines() = %d, want 1", got)
	}

	// Off-image runs are clipped.
	if err := rr.DrawRun(img, &run, -500, 14, color.Black); err != nil {
		t.Errorf("off-image DrawRun() error = %v", err)
	}
	if err := rr.DrawRun(img, nil, 0, 0, color.Black); err != nil {
		t.Errorf("DrawRun(nil) error = %v", err)
	}
}

func TestRunRasterizerPartialClip(t *testing.T) {
	face := testSource(t, gomono.TTF).Face(10)
	run := ShapeRunWith(&BuiltinShaper{}, []rune("H"), face, DirectionLTR)
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))

	if err := NewRunRasterizer().DrawRun(img, &run, -2, 6, color.White); err != nil {
		t.Fatalf("DrawRun() error = %v", err)
	}
	if inked(img, img.Bounds()) == 0 {
		t.Error("partially visible glyph left no pixels")
	}
}
