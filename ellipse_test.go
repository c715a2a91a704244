package scan

import (
	"image"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestEllipseSmall(t *testing.T) {
	got := DrawEllipse(image.Pt(-2, -2), image.Pt(2, 2))
	for _, p := range pts(0, 2, 0, -2, 2, 0, -2, 0) {
		if !contains(got, p) {
			t.Errorf("axis extreme %v missing", p)
		}
	}

	want := pts(
		0, 2, 0, -2, 2, 0, -2, 0,
		1, 2, -1, 2, 1, -2, -1, -2,
		2, 1, -2, 1, 2, -1, -2, -1,
		2, 0, -2, 0, 2, 0, -2, 0,
	)
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("unexpected pixels (-want +got):\n%s", d)
	}
}

func TestEllipseWide(t *testing.T) {
	got := DrawEllipse(image.Pt(0, 0), image.Pt(8, 4))
	want := pts(
		4, 4, 4, 0, 8, 2, 0, 2,
		5, 4, 3, 4, 5, 0, 3, 0,
		6, 4, 2, 4, 6, 0, 2, 0,
		7, 3, 1, 3, 7, 1, 1, 1,
		8, 2, 0, 2, 8, 2, 0, 2,
	)
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("unexpected pixels (-want +got):\n%s", d)
	}
}

// TestEllipseSymmetry checks that the outline is symmetric about both
// axes through the centre, and that it stays close to the exact ellipse.
func TestEllipseSymmetry(t *testing.T) {
	boxes := [][2]image.Point{
		{image.Pt(10, 20), image.Pt(50, 40)},
		{image.Pt(50, 40), image.Pt(10, 20)},
		{image.Pt(-30, -30), image.Pt(30, 30)},
		{image.Pt(0, 0), image.Pt(6, 60)},
	}
	for _, box := range boxes {
		got := DrawEllipse(box[0], box[1])
		if len(got)%4 != 0 {
			t.Fatalf("%v: %d pixels, not a multiple of 4", box, len(got))
		}

		cx := (box[0].X + box[1].X) / 2
		cy := (box[0].Y + box[1].Y) / 2
		a := float64(abs(box[0].X-box[1].X) / 2)
		b := float64(abs(box[0].Y-box[1].Y) / 2)
		for _, p := range got {
			mirror := image.Pt(2*cx-p.X, 2*cy-p.Y)
			if !contains(got, mirror) {
				t.Errorf("%v: %v has no mirror image %v", box, p, mirror)
			}
			x := float64(p.X - cx)
			y := float64(p.Y - cy)
			v := x*x/(a*a) + y*y/(b*b)
			if v < 0.6 || v > 1.4 {
				t.Errorf("%v: %v is far from the ellipse (%.3f)", box, p, v)
			}
		}
	}
}
