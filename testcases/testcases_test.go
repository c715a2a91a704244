package testcases

import (
	"image"
	"maps"
	"regexp"
	"slices"
	"testing"

	"seehuhn.de/go/scan"
)

var validName = regexp.MustCompile(`^[a-z0-9_]+$`)

func TestNames(t *testing.T) {
	for category, cases := range All {
		if !validName.MatchString(category) {
			t.Errorf("invalid category name %q", category)
		}
		seen := make(map[string]bool)
		for _, tc := range cases {
			if !validName.MatchString(tc.Name) {
				t.Errorf("%s: invalid name %q", category, tc.Name)
			}
			if seen[tc.Name] {
				t.Errorf("%s: duplicate name %q", category, tc.Name)
			}
			seen[tc.Name] = true
		}
	}
}

func TestPixels(t *testing.T) {
	for _, category := range slices.Sorted(maps.Keys(All)) {
		for _, tc := range All[category] {
			t.Run(category+"_"+tc.Name, func(t *testing.T) {
				pixels := tc.Prim.Pixels()
				if len(pixels) == 0 {
					t.Fatal("no pixels")
				}

				canvas := image.Rect(0, 0, tc.Width, tc.Height)
				inside := 0
				for _, p := range pixels {
					if p.In(canvas) {
						inside++
					}
				}
				if inside == 0 {
					t.Error("no pixels inside the canvas")
				}

				switch p := tc.Prim.(type) {
				case *scan.Line:
					if p.Algorithm != scan.Naive {
						checkConnected(t, pixels)
					}
				case *scan.Ellipse:
					checkSymmetric(t, p, pixels)
				case *scan.Curve:
					if p.Algorithm == scan.Bezier {
						first, last := pixels[0], pixels[len(pixels)-1]
						if first != p.Controls[0] || last != p.Controls[len(p.Controls)-1] {
							t.Errorf("curve runs from %v to %v", first, last)
						}
					}
				}
			})
		}
	}
}

func TestClipInsideWindow(t *testing.T) {
	for _, tc := range clipCases {
		for _, p := range tc.Prim.Points() {
			if float64(p.X) < window.LLx || float64(p.X) > window.URx ||
				float64(p.Y) < window.LLy || float64(p.Y) > window.URy {
				t.Errorf("%s: endpoint %v outside the window", tc.Name, p)
			}
		}
	}
}

func checkConnected(t *testing.T, seq []image.Point) {
	t.Helper()
	for i := 1; i < len(seq); i++ {
		d := seq[i].Sub(seq[i-1])
		if d.X < -1 || d.X > 1 || d.Y < -1 || d.Y > 1 || d == (image.Point{}) {
			t.Errorf("pixels %v and %v are not neighbours", seq[i-1], seq[i])
			return
		}
	}
}

func checkSymmetric(t *testing.T, e *scan.Ellipse, pixels []image.Point) {
	t.Helper()
	// twice the centre, so that reflections stay integer
	c2 := image.Pt((e.C0.X+e.C1.X)/2*2, (e.C0.Y+e.C1.Y)/2*2)
	set := make(map[image.Point]bool, len(pixels))
	for _, p := range pixels {
		set[p] = true
	}
	for _, p := range pixels {
		q := image.Pt(c2.X-p.X, c2.Y-p.Y)
		if !set[q] {
			t.Errorf("%v has no mirror image %v", p, q)
			return
		}
	}
}
