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
	"image/color"
	"math"

	tiled "github.com/Tsukumogami-Software/go-tiled-editor"
	"github.com/gogpu/gg"
)

// OrthogonalRenderer renders maps of rectangular tiles on a regular grid.
// Pixel space and screen space are the same.
type OrthogonalRenderer struct {
	mapRenderer
}

// NewOrthogonalRenderer returns an orthogonal renderer for m.
func NewOrthogonalRenderer(m *tiled.Map) *OrthogonalRenderer {
	return &OrthogonalRenderer{mapRenderer{m: m}}
}

// MapSize returns the map size in pixels.
func (r *OrthogonalRenderer) MapSize() image.Point {
	return image.Pt(r.m.Width*r.m.TileWidth, r.m.Height*r.m.TileHeight)
}

// BoundingRect returns the pixel rectangle covered by the tile region rect.
func (r *OrthogonalRenderer) BoundingRect(rect image.Rectangle) image.Rectangle {
	tw, th := r.m.TileWidth, r.m.TileHeight
	return image.Rect(rect.Min.X*tw, rect.Min.Y*th, rect.Max.X*tw, rect.Max.Y*th)
}

func (r *OrthogonalRenderer) ObjectBoundingRect(o *tiled.Object) gg.Rect {
	return objectBoundingRect(r, o, r.objectLineWidth, OriginBottomLeft)
}

func (r *OrthogonalRenderer) Shape(o *tiled.Object) *gg.Path {
	return objectShape(r, o, r.objectLineWidth, OriginBottomLeft)
}

// DrawGrid draws the grid lines crossing exposed.
func (r *OrthogonalRenderer) DrawGrid(p Painter, exposed gg.Rect, c color.Color) {
	tw, th := r.m.TileWidth, r.m.TileHeight
	if tw <= 0 || th <= 0 {
		Logger().Debug("render: grid skipped", "tileWidth", tw, "tileHeight", th)
		return
	}
	if rectEmpty(exposed) {
		return
	}

	startX := max(0, int(math.Floor(exposed.Min.X/float64(tw)))*tw)
	startY := max(0, int(math.Floor(exposed.Min.Y/float64(th)))*th)
	endX := min(int(math.Ceil(exposed.Max.X)), r.m.Width*tw+1)
	endY := min(int(math.Ceil(exposed.Max.Y)), r.m.Height*th+1)

	pen := gridPen(c)

	if startY < endY {
		pen.DashOffset = float64(startY)
		p.SetPen(pen)
		var lines []gg.Line
		for x := startX; x < endX; x += tw {
			lines = append(lines, gg.Line{
				P0: gg.Pt(float64(x), float64(startY)),
				P1: gg.Pt(float64(x), float64(endY-1)),
			})
		}
		p.DrawLines(lines)
	}

	if startX < endX {
		pen.DashOffset = float64(startX)
		p.SetPen(pen)
		var lines []gg.Line
		for y := startY; y < endY; y += th {
			lines = append(lines, gg.Line{
				P0: gg.Pt(float64(startX), float64(y)),
				P1: gg.Pt(float64(endX-1), float64(y)),
			})
		}
		p.DrawLines(lines)
	}
}

// DrawTileLayer draws the cells of layer that may be visible in exposed, in
// the render order of the map.
func (r *OrthogonalRenderer) DrawTileLayer(p Painter, layer *tiled.TileLayer, exposed gg.Rect) {
	tw, th := r.m.TileWidth, r.m.TileHeight
	if tw <= 0 || th <= 0 {
		Logger().Debug("render: tile layer skipped", "layer", layer.Name, "tileWidth", tw, "tileHeight", th)
		return
	}

	layerPos := gg.Pt(float64(layer.X*tw), float64(layer.Y*th))

	startX, startY := 0, 0
	endX, endY := layer.Width-1, layer.Height-1

	if !rectEmpty(exposed) {
		m := layer.DrawMargins(tw, th)

		// The margins include the grid cell the tiles are anchored in.
		m.Top = max(0, m.Top-th)
		m.Right = max(0, m.Right-tw)

		rect := rectAdjust(exposed,
			-float64(m.Right), -float64(m.Bottom),
			float64(m.Left), float64(m.Top))
		rect = rectAdjust(rect, -layerPos.X, -layerPos.Y, -layerPos.X, -layerPos.Y)

		startX = max(int(math.Floor(rect.Min.X/float64(tw))), 0)
		startY = max(int(math.Floor(rect.Min.Y/float64(th))), 0)
		endX = min(floorDiv(int(math.Ceil(rect.Max.X)), tw), layer.Width-1)
		endY = min(floorDiv(int(math.Ceil(rect.Max.Y)), th), layer.Height-1)
	}

	if startX > endX || startY > endY {
		return
	}

	incX, incY := 1, 1
	switch r.m.RenderOrder {
	case tiled.RightUp:
		startY, endY = endY, startY
		incY = -1
	case tiled.LeftDown:
		startX, endX = endX, startX
		incX = -1
	case tiled.LeftUp:
		startX, endX = endX, startX
		startY, endY = endY, startY
		incX, incY = -1, -1
	}
	endX += incX
	endY += incY

	cr := NewCellRenderer(p)
	for y := startY; y != endY; y += incY {
		for x := startX; x != endX; x += incX {
			cell := layer.CellAt(x, y)
			if cell.IsEmpty() {
				continue
			}
			pos := gg.Pt(layerPos.X+float64(x*tw), layerPos.Y+float64((y+1)*th))
			cr.Render(cell, pos, gg.Point{}, OriginBottomLeft)
		}
	}
}

// DrawTileSelection fills the union of region, clipped to exposed.
func (r *OrthogonalRenderer) DrawTileSelection(p Painter, region []image.Rectangle, c color.Color, exposed gg.Rect) {
	for _, rect := range unionRects(region) {
		b := toRect(r.BoundingRect(rect))
		if !rectEmpty(exposed) {
			b = rectIntersect(b, exposed)
		}
		if rectEmpty(b) {
			continue
		}
		p.FillRect(b, c)
	}
}

func (r *OrthogonalRenderer) DrawMapObject(p Painter, o *tiled.Object, c color.Color) {
	drawMapObject(r, p, o, c, r.objectLineWidth, r.flags, OriginBottomLeft)
}

func (r *OrthogonalRenderer) PixelToTileCoords(x, y float64) gg.Point {
	return r.ScreenToTileCoords(x, y)
}

func (r *OrthogonalRenderer) TileToPixelCoords(x, y float64) gg.Point {
	return r.TileToScreenCoords(x, y)
}

func (r *OrthogonalRenderer) ScreenToTileCoords(x, y float64) gg.Point {
	tw, th := r.m.TileWidth, r.m.TileHeight
	if tw <= 0 || th <= 0 {
		return gg.Point{}
	}
	return gg.Pt(x/float64(tw), y/float64(th))
}

func (r *OrthogonalRenderer) TileToScreenCoords(x, y float64) gg.Point {
	return gg.Pt(x*float64(r.m.TileWidth), y*float64(r.m.TileHeight))
}

func (r *OrthogonalRenderer) ScreenToPixelCoords(x, y float64) gg.Point {
	return gg.Pt(x, y)
}

func (r *OrthogonalRenderer) PixelToScreenCoords(x, y float64) gg.Point {
	return gg.Pt(x, y)
}

func (r *OrthogonalRenderer) PixelToScreenPolygon(points []gg.Point) []gg.Point {
	return append([]gg.Point(nil), points...)
}

func (r *OrthogonalRenderer) PixelRectToScreenPolygon(rect gg.Rect) []gg.Point {
	return rectPolygon(rect)
}

func (r *OrthogonalRenderer) TileToScreenPolygon(x, y int) []gg.Point {
	tw, th := float64(r.m.TileWidth), float64(r.m.TileHeight)
	return rectPolygon(Rect(float64(x)*tw, float64(y)*th, tw, th))
}

func (r *OrthogonalRenderer) TileRectToScreenPolygon(rect image.Rectangle) []gg.Point {
	return rectPolygon(toRect(r.BoundingRect(rect)))
}

func (r *OrthogonalRenderer) ellipsePath(quad []gg.Point) *gg.Path {
	return unitEllipse().Transform(quadEllipseTransform(quad))
}

// floorDiv divides rounding towards negative infinity.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
