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
	"image/color"

	tiled "github.com/Tsukumogami-Software/go-tiled-editor"
	"github.com/gogpu/gg"
)

// pointObjectRadius is the half size of the marker drawn for objects
// without a size, so that they stay visible and clickable.
const pointObjectRadius = 10

// objectProjector is the part of a renderer the object code needs.
type objectProjector interface {
	PixelToScreenCoords(x, y float64) gg.Point
	PixelToScreenPolygon(points []gg.Point) []gg.Point
	PixelRectToScreenPolygon(r gg.Rect) []gg.Point
	// ellipsePath returns the screen image of the ellipse inscribed in the
	// projected pixel rectangle quad.
	ellipsePath(quad []gg.Point) *gg.Path
}

func rectPolygon(r gg.Rect) []gg.Point {
	return []gg.Point{
		r.Min,
		gg.Pt(r.Max.X, r.Min.Y),
		r.Max,
		gg.Pt(r.Min.X, r.Max.Y),
	}
}

func isNullObject(o *tiled.Object) bool {
	return o.Width == 0 && o.Height == 0
}

// objectScreenQuad returns the projected bounds of a rectangle or ellipse
// object.
func objectScreenQuad(r objectProjector, o *tiled.Object) []gg.Point {
	if isNullObject(o) {
		c := r.PixelToScreenCoords(o.X, o.Y)
		return rectPolygon(Rect(c.X-pointObjectRadius, c.Y-pointObjectRadius,
			2*pointObjectRadius, 2*pointObjectRadius))
	}
	return r.PixelRectToScreenPolygon(Rect(o.X, o.Y, o.Width, o.Height))
}

// objectScreenPolygon returns the projected points of a polygon or polyline.
func objectScreenPolygon(r objectProjector, o *tiled.Object) []gg.Point {
	pts := make([]gg.Point, len(o.Points))
	for i, pt := range o.Points {
		pts[i] = gg.Pt(o.X+pt.X, o.Y+pt.Y)
	}
	return r.PixelToScreenPolygon(pts)
}

func objectEllipse(r objectProjector, o *tiled.Object) *gg.Path {
	if isNullObject(o) {
		c := r.PixelToScreenCoords(o.X, o.Y)
		path := gg.NewPath()
		path.Circle(c.X, c.Y, pointObjectRadius)
		return path
	}
	return r.ellipsePath(objectScreenQuad(r, o))
}

func tileObjectRect(r objectProjector, o *tiled.Object, origin Origin) gg.Rect {
	pos := r.PixelToScreenCoords(o.X, o.Y)
	return cellFootprint(o.Cell, pos, gg.Pt(o.Width, o.Height), origin)
}

func objectBoundingRect(r objectProjector, o *tiled.Object, lineWidth float64, origin Origin) gg.Rect {
	if o.IsTileObject() {
		return rectAdjust(tileObjectRect(r, o, origin), -1, -1, 1, 1)
	}

	extra := max(lineWidth, 1)

	switch o.Shape {
	case tiled.ShapePolygon, tiled.ShapePolyline:
		pts := objectScreenPolygon(r, o)
		if len(pts) == 0 {
			pts = []gg.Point{r.PixelToScreenCoords(o.X, o.Y)}
		}
		// Room for the start point marker.
		extra += 4 * max(lineWidth, 1)
		return rectAdjust(polygonBounds(pts), -extra, -extra, extra, extra)
	}

	return rectAdjust(polygonBounds(objectScreenQuad(r, o)), -extra, -extra, extra, extra)
}

func objectShape(r objectProjector, o *tiled.Object, lineWidth float64, origin Origin) *gg.Path {
	if o.IsTileObject() {
		return polygonPath(rectPolygon(objectBoundingRect(r, o, lineWidth, origin)), true)
	}

	switch o.Shape {
	case tiled.ShapeRectangle, tiled.ShapeEllipse:
		if isNullObject(o) {
			c := r.PixelToScreenCoords(o.X, o.Y)
			path := gg.NewPath()
			path.Circle(c.X, c.Y, 2*pointObjectRadius)
			return path
		}
		if o.Shape == tiled.ShapeEllipse {
			return r.ellipsePath(objectScreenQuad(r, o))
		}
		return polygonPath(objectScreenQuad(r, o), true)

	case tiled.ShapePolygon:
		return polygonPath(objectScreenPolygon(r, o), true)

	case tiled.ShapePolyline:
		pts := objectScreenPolygon(r, o)
		path := gg.NewPath()
		for i := 1; i < len(pts); i++ {
			quad := lineToPolygon(pts[i-1], pts[i])
			path.MoveTo(quad[0].X, quad[0].Y)
			for _, q := range quad[1:] {
				path.LineTo(q.X, q.Y)
			}
			path.Close()
		}
		return path
	}
	return gg.NewPath()
}

func drawMapObject(r objectProjector, p Painter, o *tiled.Object, c color.Color, lineWidth float64, flags Flag, origin Origin) {
	if o.IsTileObject() {
		pos := r.PixelToScreenCoords(o.X, o.Y)
		NewCellRenderer(p).Render(o.Cell, pos, gg.Pt(o.Width, o.Height), origin)

		if flags&ShowTileObjectOutlines != 0 {
			outline := rectPolygon(cellFootprint(o.Cell, pos, gg.Point{}, origin))
			p.SetBrush(nil)
			p.SetPen(Pen{Color: color.Black, Cosmetic: true})
			p.DrawPolygon(outline)
			p.SetPen(Pen{Color: c, Dashes: []float64{1, 2}, Cosmetic: true})
			p.DrawPolygon(outline)
		}
		return
	}

	scale := p.Scale()
	if scale <= 0 {
		scale = 1
	}
	dist := max(lineWidth, 1) / scale
	shadow := gg.Pt(dist*0.5, dist*0.5)

	pen := Pen{Color: color.Black, Width: lineWidth, Cosmetic: true}
	colorPen := pen
	colorPen.Color = c
	brush := withAlpha(c, 50)

	var draw func(d gg.Point, pen Pen, brush color.Color)

	switch o.Shape {
	case tiled.ShapeRectangle:
		quad := objectScreenQuad(r, o)
		draw = func(d gg.Point, pen Pen, brush color.Color) {
			p.SetPen(pen)
			p.SetBrush(brush)
			p.DrawPolygon(translatePolygon(quad, d))
		}

	case tiled.ShapeEllipse:
		path := objectEllipse(r, o)
		draw = func(d gg.Point, pen Pen, brush color.Color) {
			p.SetPen(pen)
			p.SetBrush(brush)
			p.DrawPath(path.Transform(gg.Translate(d.X, d.Y)))
		}

	case tiled.ShapePolygon, tiled.ShapePolyline:
		pts := objectScreenPolygon(r, o)
		if len(pts) == 0 {
			return
		}
		closed := o.Shape == tiled.ShapePolygon
		draw = func(d gg.Point, pen Pen, brush color.Color) {
			p.SetPen(pen)
			moved := translatePolygon(pts, d)
			if closed {
				p.SetBrush(brush)
				p.DrawPolygon(moved)
			} else {
				p.SetBrush(nil)
				p.DrawPolyline(moved)
			}
			thick := pen
			thick.Width = 4 * max(pen.Width, 1)
			p.SetPen(thick)
			p.DrawPoint(moved[0])
		}

	default:
		return
	}

	draw(shadow, pen, nil)
	draw(gg.Point{}, colorPen, brush)
}
