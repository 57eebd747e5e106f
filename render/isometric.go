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

// IsometricRenderer renders maps in diamond projection. The map origin is
// the top corner of the diamond, centered horizontally.
//
// Pixel space is measured in tile height units on both axes, so pixel
// positions are independent of the tile aspect ratio.
type IsometricRenderer struct {
	mapRenderer
}

// NewIsometricRenderer returns an isometric renderer for m.
func NewIsometricRenderer(m *tiled.Map) *IsometricRenderer {
	return &IsometricRenderer{mapRenderer{m: m}}
}

func (r *IsometricRenderer) originX() int {
	return r.m.Height * r.m.TileWidth / 2
}

func (r *IsometricRenderer) MapSize() image.Point {
	// The map size is the same regardless of which indexes are shifted.
	side := r.m.Width + r.m.Height
	return image.Pt(side*r.m.TileWidth/2, side*r.m.TileHeight/2)
}

func (r *IsometricRenderer) BoundingRect(rect image.Rectangle) image.Rectangle {
	tw, th := r.m.TileWidth, r.m.TileHeight

	pos := image.Pt(
		(rect.Min.X-(rect.Min.Y+rect.Dy()))*tw/2+r.originX(),
		(rect.Min.X+rect.Min.Y)*th/2,
	)
	side := rect.Dx() + rect.Dy()
	return image.Rectangle{Min: pos, Max: pos.Add(image.Pt(side*tw/2, side*th/2))}
}

func (r *IsometricRenderer) ObjectBoundingRect(o *tiled.Object) gg.Rect {
	return objectBoundingRect(r, o, r.objectLineWidth, OriginBottomCenter)
}

func (r *IsometricRenderer) Shape(o *tiled.Object) *gg.Path {
	return objectShape(r, o, r.objectLineWidth, OriginBottomCenter)
}

// DrawGrid draws the two families of diagonal grid lines crossing exposed.
func (r *IsometricRenderer) DrawGrid(p Painter, exposed gg.Rect, c color.Color) {
	tw, th := r.m.TileWidth, r.m.TileHeight
	if tw <= 0 || th <= 0 {
		Logger().Debug("render: grid skipped", "tileWidth", tw, "tileHeight", th)
		return
	}
	if rectEmpty(exposed) {
		return
	}

	rect := toRect(alignedRect(exposed))
	rect = rectAdjust(rect,
		-float64(tw/2), -float64(th/2),
		float64(tw/2), float64(th/2))

	topLeft := r.ScreenToTileCoords(rect.Min.X, rect.Min.Y)
	topRight := r.ScreenToTileCoords(rect.Max.X, rect.Min.Y)
	bottomLeft := r.ScreenToTileCoords(rect.Min.X, rect.Max.Y)
	bottomRight := r.ScreenToTileCoords(rect.Max.X, rect.Max.Y)

	startX := max(0, int(topLeft.X))
	startY := max(0, int(topRight.Y))
	endX := min(r.m.Width, int(bottomRight.X))
	endY := min(r.m.Height, int(bottomLeft.Y))

	if startX > endX || startY > endY {
		return
	}

	p.SetPen(gridPen(c))

	var lines []gg.Line
	for y := startY; y <= endY; y++ {
		lines = append(lines, gg.Line{
			P0: r.TileToScreenCoords(float64(startX), float64(y)),
			P1: r.TileToScreenCoords(float64(endX), float64(y)),
		})
	}
	for x := startX; x <= endX; x++ {
		lines = append(lines, gg.Line{
			P0: r.TileToScreenCoords(float64(x), float64(startY)),
			P1: r.TileToScreenCoords(float64(x), float64(endY)),
		})
	}
	p.DrawLines(lines)
}

// DrawTileLayer draws layer in rows of constant screen y. Each row holds the
// tiles along one anti-diagonal; consecutive rows alternate between
// stepping right and stepping down in tile space.
func (r *IsometricRenderer) DrawTileLayer(p Painter, layer *tiled.TileLayer, exposed gg.Rect) {
	tw, th := r.m.TileWidth, r.m.TileHeight
	if tw <= 0 || th <= 1 {
		Logger().Debug("render: tile layer skipped", "layer", layer.Name, "tileWidth", tw, "tileHeight", th)
		return
	}

	rect := exposed
	if rectEmpty(rect) {
		rect = toRect(r.BoundingRect(layer.Bounds()))
	}

	m := layer.DrawMargins(tw, th)
	m.Top = max(0, m.Top-th)
	m.Right = max(0, m.Right-tw)

	rect = rectAdjust(rect,
		-float64(m.Right), -float64(m.Bottom),
		float64(m.Left), float64(m.Top))

	halfW, halfH := float64(tw/2), float64(th/2)

	// Tile at the top-left corner of the exposed area.
	rowItr := floorPoint(r.ScreenToTileCoords(rect.Min.X, rect.Min.Y))
	startPos := r.TileToScreenCoords(float64(rowItr.X), float64(rowItr.Y))
	startPos.X -= halfW
	startPos.Y += float64(th)

	// Layer offset moves the tiles, the iteration is in layer coordinates.
	rowItr = rowItr.Sub(layer.Position())

	// The top-left corner may be above the bottom edge of the first row.
	inUpperHalf := startPos.Y-rect.Min.Y > halfH
	inLeftHalf := rect.Min.X-startPos.X < halfW

	if inUpperHalf {
		if inLeftHalf {
			rowItr.X--
			startPos.X -= halfW
		} else {
			rowItr.Y--
			startPos.X += halfW
		}
		startPos.Y -= halfH
	}

	// Whether the current row is shifted half a tile to the right.
	shifted := inUpperHalf != inLeftHalf

	cr := NewCellRenderer(p)

	for y := startPos.Y * 2; y-float64(th)*2 < rect.Max.Y*2; y += float64(th) {
		columnItr := rowItr

		for x := startPos.X; x < rect.Max.X; x += float64(tw) {
			if cell := layer.CellAt(columnItr.X, columnItr.Y); !cell.IsEmpty() {
				cr.Render(cell, gg.Pt(x, y/2), gg.Point{}, OriginBottomLeft)
			}
			columnItr.X++
			columnItr.Y--
		}

		if !shifted {
			rowItr.X++
			startPos.X += halfW
		} else {
			rowItr.Y++
			startPos.X -= halfW
		}
		shifted = !shifted
	}
}

// DrawTileSelection fills the projected parallelogram of every rectangle
// of the union of region.
func (r *IsometricRenderer) DrawTileSelection(p Painter, region []image.Rectangle, c color.Color, exposed gg.Rect) {
	p.SetPen(NoPen)
	p.SetBrush(c)
	for _, rect := range unionRects(region) {
		poly := r.TileRectToScreenPolygon(rect)
		if !rectEmpty(exposed) && !rectIntersects(polygonBounds(poly), exposed) {
			continue
		}
		p.DrawPolygon(poly)
	}
}

func (r *IsometricRenderer) DrawMapObject(p Painter, o *tiled.Object, c color.Color) {
	drawMapObject(r, p, o, c, r.objectLineWidth, r.flags, OriginBottomCenter)
}

func (r *IsometricRenderer) PixelToTileCoords(x, y float64) gg.Point {
	th := float64(r.m.TileHeight)
	if th <= 0 {
		return gg.Point{}
	}
	return gg.Pt(x/th, y/th)
}

func (r *IsometricRenderer) TileToPixelCoords(x, y float64) gg.Point {
	th := float64(r.m.TileHeight)
	return gg.Pt(x*th, y*th)
}

func (r *IsometricRenderer) ScreenToTileCoords(x, y float64) gg.Point {
	tw, th := float64(r.m.TileWidth), float64(r.m.TileHeight)
	if tw <= 0 || th <= 0 {
		return gg.Point{}
	}

	x -= float64(r.originX())
	tileY := y / th
	tileX := x / tw

	return gg.Pt(tileY+tileX, tileY-tileX)
}

func (r *IsometricRenderer) TileToScreenCoords(x, y float64) gg.Point {
	tw, th := float64(r.m.TileWidth), float64(r.m.TileHeight)
	return gg.Pt(
		(x-y)*tw/2+float64(r.originX()),
		(x+y)*th/2,
	)
}

func (r *IsometricRenderer) ScreenToPixelCoords(x, y float64) gg.Point {
	tw, th := float64(r.m.TileWidth), float64(r.m.TileHeight)
	if tw <= 0 || th <= 0 {
		return gg.Point{}
	}

	x -= float64(r.originX())
	tileY := y / th
	tileX := x / tw

	return gg.Pt((tileY+tileX)*th, (tileY-tileX)*th)
}

func (r *IsometricRenderer) PixelToScreenCoords(x, y float64) gg.Point {
	tw, th := float64(r.m.TileWidth), float64(r.m.TileHeight)
	if th <= 0 {
		return gg.Point{}
	}

	tileY := y / th
	tileX := x / th

	return gg.Pt(
		(tileX-tileY)*tw/2+float64(r.originX()),
		(tileX+tileY)*th/2,
	)
}

func (r *IsometricRenderer) PixelToScreenPolygon(points []gg.Point) []gg.Point {
	res := make([]gg.Point, len(points))
	for i, pt := range points {
		res[i] = r.PixelToScreenCoords(pt.X, pt.Y)
	}
	return res
}

func (r *IsometricRenderer) PixelRectToScreenPolygon(rect gg.Rect) []gg.Point {
	return []gg.Point{
		r.PixelToScreenCoords(rect.Min.X, rect.Min.Y),
		r.PixelToScreenCoords(rect.Max.X, rect.Min.Y),
		r.PixelToScreenCoords(rect.Max.X, rect.Max.Y),
		r.PixelToScreenCoords(rect.Min.X, rect.Max.Y),
	}
}

func (r *IsometricRenderer) TileToScreenPolygon(x, y int) []gg.Point {
	return r.TileRectToScreenPolygon(image.Rect(x, y, x+1, y+1))
}

func (r *IsometricRenderer) TileRectToScreenPolygon(rect image.Rectangle) []gg.Point {
	return []gg.Point{
		r.TileToScreenCoords(float64(rect.Min.X), float64(rect.Min.Y)),
		r.TileToScreenCoords(float64(rect.Max.X), float64(rect.Min.Y)),
		r.TileToScreenCoords(float64(rect.Max.X), float64(rect.Max.Y)),
		r.TileToScreenCoords(float64(rect.Min.X), float64(rect.Max.Y)),
	}
}

// ellipsePath returns the isometric image of the ellipse inscribed in a
// pixel rectangle. The projection is a 45 degree rotation followed by an
// aspect scale, so the ellipse is drawn axis aligned in the rotated frame
// and mapped to the screen.
func (r *IsometricRenderer) ellipsePath(quad []gg.Point) *gg.Path {
	tw, th := float64(r.m.TileWidth), float64(r.m.TileHeight)
	if tw <= 0 || th <= 0 {
		return unitEllipse().Transform(quadEllipseTransform(quad))
	}

	scale := gg.Scale(tw/th, 1)
	if tw > th {
		scale = gg.Scale(1, th/tw)
	}
	trans := scale.Multiply(gg.Rotate(math.Pi / 4))
	inv := trans.Invert()

	l1 := inv.TransformVector(quad[1].Sub(quad[0]))
	l2 := inv.TransformVector(quad[3].Sub(quad[0]))
	w := math.Abs(l1.X) + math.Abs(l1.Y)
	h := math.Abs(l2.X) + math.Abs(l2.Y)

	path := gg.NewPath()
	path.Ellipse(w/2, h/2, w/2, h/2)
	return path.Transform(gg.Translate(quad[0].X, quad[0].Y).Multiply(trans))
}
