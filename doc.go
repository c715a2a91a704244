// Package scan converts 2D primitives into sequences of integer pixel
// coordinates.
//
// Line segments can be rasterised with a naive slope evaluation, a digital
// differential analyser (DDA) or Bresenham's midpoint algorithm.  Polygon
// outlines are assembled from their edges.  Axis-aligned ellipses use the
// midpoint ellipse algorithm.  Curves are sampled either as Bézier curves
// (de Casteljau) or as uniform cubic B-splines (Cox-de Boor).
//
// In addition, the package implements translation, rotation and scaling of
// point lists, and clipping of line segments against a rectangular window
// with the Cohen-Sutherland or the Liang-Barsky algorithm.
//
// All functions are pure: they never modify their arguments and can be
// called concurrently.  Pixel sequences are returned in traversal order and
// may contain duplicates, for example at polygon vertices.
package scan

//go:generate go run ./testcases/export
