/*
Copyright (c) 2017 Lauris Bukšis-Haberkorns <lauris@nix.lv>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in all
copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
SOFTWARE.
*/

package render

import (
	"image"
	"math"

	"github.com/gogpu/gg"
)

// Rect returns the screen rectangle with the given origin and size.
func Rect(x, y, w, h float64) gg.Rect {
	return gg.Rect{Min: gg.Pt(x, y), Max: gg.Pt(x+w, y+h)}
}

func rectEmpty(r gg.Rect) bool {
	return !(r.Width() > 0 && r.Height() > 0)
}

func rectIntersects(a, b gg.Rect) bool {
	if rectEmpty(a) || rectEmpty(b) {
		return false
	}
	return a.Min.X < b.Max.X && b.Min.X < a.Max.X &&
		a.Min.Y < b.Max.Y && b.Min.Y < a.Max.Y
}

func rectIntersect(a, b gg.Rect) gg.Rect {
	r := gg.Rect{
		Min: gg.Pt(math.Max(a.Min.X, b.Min.X), math.Max(a.Min.Y, b.Min.Y)),
		Max: gg.Pt(math.Min(a.Max.X, b.Max.X), math.Min(a.Max.Y, b.Max.Y)),
	}
	if rectEmpty(r) {
		return gg.Rect{}
	}
	return r
}

// rectAdjust moves the edges of r by the given deltas.
func rectAdjust(r gg.Rect, dx1, dy1, dx2, dy2 float64) gg.Rect {
	return gg.Rect{
		Min: gg.Pt(r.Min.X+dx1, r.Min.Y+dy1),
		Max: gg.Pt(r.Max.X+dx2, r.Max.Y+dy2),
	}
}

// alignedRect returns the smallest integer rectangle containing r.
func alignedRect(r gg.Rect) image.Rectangle {
	if rectEmpty(r) {
		return image.Rectangle{}
	}
	return image.Rect(
		int(math.Floor(r.Min.X)), int(math.Floor(r.Min.Y)),
		int(math.Ceil(r.Max.X)), int(math.Ceil(r.Max.Y)),
	)
}

func toRect(r image.Rectangle) gg.Rect {
	return gg.Rect{
		Min: gg.Pt(float64(r.Min.X), float64(r.Min.Y)),
		Max: gg.Pt(float64(r.Max.X), float64(r.Max.Y)),
	}
}

func toPoint(p image.Point) gg.Point {
	return gg.Pt(float64(p.X), float64(p.Y))
}

// floorPoint truncates p towards negative infinity.
func floorPoint(p gg.Point) image.Point {
	return image.Pt(int(math.Floor(p.X)), int(math.Floor(p.Y)))
}

// roundPoint rounds p to the nearest integer point.
func roundPoint(p gg.Point) image.Point {
	return image.Pt(int(math.Round(p.X)), int(math.Round(p.Y)))
}

// polygonBounds returns the bounding rectangle of points.
func polygonBounds(points []gg.Point) gg.Rect {
	if len(points) == 0 {
		return gg.Rect{}
	}
	r := gg.Rect{Min: points[0], Max: points[0]}
	for _, p := range points[1:] {
		r = r.Union(gg.Rect{Min: p, Max: p})
	}
	return r
}

func translatePolygon(points []gg.Point, d gg.Point) []gg.Point {
	res := make([]gg.Point, len(points))
	for i, p := range points {
		res[i] = p.Add(d)
	}
	return res
}

func transformPolygon(points []gg.Point, m gg.Matrix) []gg.Point {
	if m.IsIdentity() {
		return points
	}
	res := make([]gg.Point, len(points))
	for i, p := range points {
		res[i] = m.TransformPoint(p)
	}
	return res
}

func polygonPath(points []gg.Point, closed bool) *gg.Path {
	path := gg.NewPath()
	if len(points) == 0 {
		return path
	}
	path.MoveTo(points[0].X, points[0].Y)
	for _, p := range points[1:] {
		path.LineTo(p.X, p.Y)
	}
	if closed {
		path.Close()
	}
	return path
}

// lineToPolygon returns a thin quad around the segment a-b, used to hit-test
// polylines.
func lineToPolygon(a, b gg.Point) []gg.Point {
	const thickness = 2.0

	dir := b.Sub(a)
	if dir.LengthSquared() == 0 {
		dir = gg.Pt(1, 0)
	}
	dir = dir.Normalize()
	normal := gg.Pt(-dir.Y, dir.X).Mul(thickness)
	along := dir.Mul(thickness)

	return []gg.Point{
		a.Sub(along).Add(normal),
		b.Add(along).Add(normal),
		b.Add(along).Sub(normal),
		a.Sub(along).Sub(normal),
	}
}

// unitEllipse is the ellipse inscribed in the unit square.
func unitEllipse() *gg.Path {
	path := gg.NewPath()
	path.Ellipse(0.5, 0.5, 0.5, 0.5)
	return path
}

// quadEllipseTransform returns the affine map taking the unit square onto the
// parallelogram spanned by quad[0], quad[1] and quad[3].
func quadEllipseTransform(quad []gg.Point) gg.Matrix {
	l1 := quad[1].Sub(quad[0])
	l2 := quad[3].Sub(quad[0])
	return gg.Matrix{
		A: l1.X, B: l2.X, C: quad[0].X,
		D: l1.Y, E: l2.Y, F: quad[0].Y,
	}
}
