// Command export writes the test cases, together with the pixels produced
// for them, to JSON for use by external reference tools.
// Run from the module root directory.
package main

import (
	"encoding/json"
	"image"
	"maps"
	"os"
	"slices"

	"seehuhn.de/go/scan"
	"seehuhn.de/go/scan/testcases"
)

func main() {
	var out struct {
		TestCases []jsonTestCase `json:"testcases"`
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			out.TestCases = append(out.TestCases, toJSON(category, tc))
		}
	}

	if err := os.MkdirAll("testdata", 0755); err != nil {
		panic(err)
	}
	f, err := os.Create("testdata/testcases.json")
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}

type jsonTestCase struct {
	Name      string  `json:"name"`
	Width     int     `json:"width"`
	Height    int     `json:"height"`
	Kind      string  `json:"kind"`
	Algorithm string  `json:"algorithm,omitempty"`
	Points    [][]int `json:"points"`
	Pixels    [][]int `json:"pixels"`
}

func toJSON(category string, tc testcases.TestCase) jsonTestCase {
	jtc := jsonTestCase{
		Name:   category + "_" + tc.Name,
		Width:  tc.Width,
		Height: tc.Height,
		Kind:   tc.Prim.Kind().String(),
		Points: pointsToJSON(tc.Prim.Points()),
		Pixels: pointsToJSON(tc.Prim.Pixels()),
	}

	switch p := tc.Prim.(type) {
	case *scan.Line:
		jtc.Algorithm = p.Algorithm.String()
	case *scan.Polygon:
		jtc.Algorithm = p.Algorithm.String()
	case *scan.Curve:
		jtc.Algorithm = p.Algorithm.String()
	}
	return jtc
}

func pointsToJSON(pts []image.Point) [][]int {
	res := make([][]int, len(pts))
	for i, p := range pts {
		res[i] = []int{p.X, p.Y}
	}
	return res
}
