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

// HexagonalRenderer renders hexagonal maps. Every other row (stagger axis Y)
// or column (stagger axis X) is shifted by half a tile. Pixel space and
// screen space are the same.
type HexagonalRenderer struct {
	OrthogonalRenderer

	// diamond selects the staggered isometric reverse mapping.
	diamond bool
}

// NewHexagonalRenderer returns a hexagonal renderer for m.
func NewHexagonalRenderer(m *tiled.Map) *HexagonalRenderer {
	return &HexagonalRenderer{OrthogonalRenderer: OrthogonalRenderer{mapRenderer{m: m}}}
}

func (r *HexagonalRenderer) params() RenderParams {
	return NewRenderParams(r.m)
}

func (r *HexagonalRenderer) MapSize() image.Point {
	p := r.params()

	if p.StaggerX {
		size := image.Pt(
			r.m.Width*p.ColumnWidth+p.SideOffsetX,
			r.m.Height*(p.TileHeight+p.SideLengthY),
		)
		if r.m.Width > 1 {
			size.Y += p.RowHeight
		}
		return size
	}

	size := image.Pt(
		r.m.Width*(p.TileWidth+p.SideLengthX),
		r.m.Height*p.RowHeight+p.SideOffsetY,
	)
	if r.m.Height > 1 {
		size.X += p.ColumnWidth
	}
	return size
}

func (r *HexagonalRenderer) BoundingRect(rect image.Rectangle) image.Rectangle {
	p := r.params()
	topLeft := hexTileToScreen(p, rect.Min.X, rect.Min.Y)

	var size image.Point
	if p.StaggerX {
		size = image.Pt(
			rect.Dx()*p.ColumnWidth+p.SideOffsetX,
			rect.Dy()*(p.TileHeight+p.SideLengthY),
		)
		if rect.Dx() > 1 {
			size.Y += p.RowHeight
			if p.DoStaggerX(rect.Min.X) {
				topLeft.Y -= p.RowHeight
			}
		}
	} else {
		size = image.Pt(
			rect.Dx()*(p.TileWidth+p.SideLengthX),
			rect.Dy()*p.RowHeight+p.SideOffsetY,
		)
		if rect.Dy() > 1 {
			size.X += p.ColumnWidth
			if p.DoStaggerY(rect.Min.Y) {
				topLeft.X -= p.ColumnWidth
			}
		}
	}
	return image.Rectangle{Min: topLeft, Max: topLeft.Add(size)}
}

// hexOctagon returns the corners of a tile relative to its top-left
// position, clockwise from the lower end of the left side.
func hexOctagon(p RenderParams) [8]image.Point {
	return [8]image.Point{
		{0, p.TileHeight - p.SideOffsetY},
		{0, p.SideOffsetY},
		{p.SideOffsetX, 0},
		{p.TileWidth - p.SideOffsetX, 0},
		{p.TileWidth, p.SideOffsetY},
		{p.TileWidth, p.TileHeight - p.SideOffsetY},
		{p.TileWidth - p.SideOffsetX, p.TileHeight},
		{p.SideOffsetX, p.TileHeight},
	}
}

// DrawGrid draws the hexagon outlines crossing exposed. Each tile draws its
// upper edges; lower edges are only drawn where no neighbor will draw them.
func (r *HexagonalRenderer) DrawGrid(p Painter, exposed gg.Rect, c color.Color) {
	rp := r.params()
	if !rp.valid() {
		Logger().Debug("render: grid skipped", "tileWidth", rp.TileWidth, "tileHeight", rp.TileHeight)
		return
	}
	if rectEmpty(exposed) {
		return
	}

	rect := alignedRect(exposed)

	startTile := floorPoint(r.ScreenToTileCoords(float64(rect.Min.X), float64(rect.Min.Y)))
	startPos := hexTileToScreen(rp, startTile.X, startTile.Y)

	// The tile origin is the top-left corner of its bounding box, so a point
	// in the upper or left half may belong to the previous row or column.
	if rect.Min.Y-startPos.Y < rp.SideOffsetY {
		startTile.Y--
	}
	if rect.Min.X-startPos.X < rp.SideOffsetX {
		startTile.X--
	}
	startTile.X = max(0, startTile.X)
	startTile.Y = max(0, startTile.Y)

	startPos = hexTileToScreen(rp, startTile.X, startTile.Y)

	oct := hexOctagon(rp)
	var lines []gg.Line
	edge := func(pos image.Point, a, b int) {
		lines = append(lines, gg.Line{
			P0: toPoint(pos.Add(oct[a])),
			P1: toPoint(pos.Add(oct[b])),
		})
	}

	width, height := r.m.Width, r.m.Height

	if rp.StaggerX {
		// Column shifting is applied in the loop.
		if rp.DoStaggerX(startTile.X) {
			startPos.Y -= rp.RowHeight
		}

		for ; startPos.Y <= rect.Max.Y && startTile.Y < height; startTile.Y++ {
			rowTile, rowPos := startTile, startPos

			for ; rowPos.X <= rect.Max.X && rowTile.X < width; rowTile.X++ {
				staggered := rp.DoStaggerX(rowTile.X)
				pos := rowPos
				if staggered {
					pos.Y += rp.RowHeight
				}

				edge(pos, 1, 2)
				edge(pos, 2, 3)
				edge(pos, 3, 4)

				lastRow := rowTile.Y == height-1
				lastColumn := rowTile.X == width-1
				bottomLeft := rowTile.X == 0 || (lastRow && staggered)
				bottomRight := lastColumn || (lastRow && staggered)

				if bottomRight {
					edge(pos, 5, 6)
				}
				if lastRow {
					edge(pos, 6, 7)
				}
				if bottomLeft {
					edge(pos, 7, 0)
				}

				rowPos.X += rp.ColumnWidth
			}

			startPos.Y += rp.TileHeight + rp.SideLengthY
		}
	} else {
		// Row shifting is applied in the loop.
		if rp.DoStaggerY(startTile.Y) {
			startPos.X -= rp.ColumnWidth
		}

		for ; startPos.Y <= rect.Max.Y && startTile.Y < height; startTile.Y++ {
			rowTile, rowPos := startTile, startPos
			staggered := rp.DoStaggerY(startTile.Y)
			if staggered {
				rowPos.X += rp.ColumnWidth
			}

			for ; rowPos.X <= rect.Max.X && rowTile.X < width; rowTile.X++ {
				edge(rowPos, 0, 1)
				edge(rowPos, 1, 2)
				edge(rowPos, 3, 4)

				lastRow := rowTile.Y == height-1
				lastColumn := rowTile.X == width-1
				bottomLeft := lastRow || (rowTile.X == 0 && !staggered)
				bottomRight := lastRow || (lastColumn && staggered)

				if lastColumn {
					edge(rowPos, 4, 5)
				}
				if bottomRight {
					edge(rowPos, 5, 6)
				}
				if bottomLeft {
					edge(rowPos, 7, 0)
				}

				rowPos.X += rp.TileWidth + rp.SideLengthX
			}

			startPos.Y += rp.RowHeight
		}
	}

	p.SetPen(gridPen(c))
	p.DrawLines(lines)
}

// DrawTileLayer draws the cells of layer that may be visible in exposed.
// With stagger axis X the tiles are drawn in screen rows: the unshifted
// columns of a row first, then the shifted ones half a row lower.
func (r *HexagonalRenderer) DrawTileLayer(p Painter, layer *tiled.TileLayer, exposed gg.Rect) {
	rp := r.params()
	if !rp.valid() {
		Logger().Debug("render: tile layer skipped", "layer", layer.Name, "tileWidth", rp.TileWidth, "tileHeight", rp.TileHeight)
		return
	}

	layerPos := layer.Position()

	rect := alignedRect(exposed)
	if rect.Empty() {
		rect = r.BoundingRect(layer.Bounds())
	}

	m := layer.DrawMargins(r.m.TileWidth, r.m.TileHeight)

	// Tiles are drawn from the bottom-left of their hexagon.
	m.Bottom += rp.TileHeight
	m.Right -= rp.TileWidth

	rect = image.Rect(
		rect.Min.X-m.Right, rect.Min.Y-m.Bottom,
		rect.Max.X+m.Left, rect.Max.Y+m.Top,
	)

	startTile := floorPoint(r.ScreenToTileCoords(float64(rect.Min.X), float64(rect.Min.Y))).Sub(layerPos)
	startPos := hexTileToScreen(rp, startTile.X+layerPos.X, startTile.Y+layerPos.Y)

	if rect.Min.Y-startPos.Y < rp.SideOffsetY {
		startTile.Y--
	}
	if rect.Min.X-startPos.X < rp.SideOffsetX {
		startTile.X--
	}

	cr := NewCellRenderer(p)
	render := func(x, y int, pos image.Point) {
		if cell := layer.CellAt(x, y); !cell.IsEmpty() {
			cr.Render(cell, toPoint(pos), gg.Point{}, OriginBottomLeft)
		}
	}

	if rp.StaggerX {
		startTile.X = max(-1, startTile.X)
		startTile.Y = max(-1, startTile.Y)

		startPos = hexTileToScreen(rp, startTile.X+layerPos.X, startTile.Y+layerPos.Y).
			Add(image.Pt(0, rp.TileHeight))

		staggeredRow := rp.DoStaggerX(startTile.X + layerPos.X)

		for startPos.Y < rect.Max.Y && startTile.Y < layer.Height {
			rowTile, rowPos := startTile, startPos

			for ; rowPos.X < rect.Max.X && rowTile.X < layer.Width; rowTile.X += 2 {
				render(rowTile.X, rowTile.Y, rowPos)
				rowPos.X += rp.TileWidth + rp.SideLengthX
			}

			if staggeredRow {
				startTile.X--
				startTile.Y++
				startPos.X -= rp.ColumnWidth
			} else {
				startTile.X++
				startPos.X += rp.ColumnWidth
			}
			staggeredRow = !staggeredRow
			startPos.Y += rp.RowHeight
		}
		return
	}

	startTile.X = max(0, startTile.X)
	startTile.Y = max(0, startTile.Y)

	startPos = hexTileToScreen(rp, startTile.X+layerPos.X, startTile.Y+layerPos.Y).
		Add(image.Pt(0, rp.TileHeight))

	// Row shifting is applied in the loop.
	if rp.DoStaggerY(startTile.Y + layerPos.Y) {
		startPos.X -= rp.ColumnWidth
	}

	for ; startPos.Y < rect.Max.Y && startTile.Y < layer.Height; startTile.Y++ {
		rowTile, rowPos := startTile, startPos
		if rp.DoStaggerY(startTile.Y + layerPos.Y) {
			rowPos.X += rp.ColumnWidth
		}

		for ; rowPos.X < rect.Max.X && rowTile.X < layer.Width; rowTile.X++ {
			render(rowTile.X, rowTile.Y, rowPos)
			rowPos.X += rp.TileWidth + rp.SideLengthX
		}

		startPos.Y += rp.RowHeight
	}
}

// DrawTileSelection fills the outline of every selected tile that touches
// exposed.
func (r *HexagonalRenderer) DrawTileSelection(p Painter, region []image.Rectangle, c color.Color, exposed gg.Rect) {
	p.SetPen(NoPen)
	p.SetBrush(c)
	for _, rect := range unionRects(region) {
		for y := rect.Min.Y; y < rect.Max.Y; y++ {
			for x := rect.Min.X; x < rect.Max.X; x++ {
				poly := r.TileToScreenPolygon(x, y)
				if !rectEmpty(exposed) && !rectIntersects(polygonBounds(poly), exposed) {
					continue
				}
				p.DrawPolygon(poly)
			}
		}
	}
}

func (r *HexagonalRenderer) PixelToTileCoords(x, y float64) gg.Point {
	return r.ScreenToTileCoords(x, y)
}

func (r *HexagonalRenderer) TileToPixelCoords(x, y float64) gg.Point {
	return r.TileToScreenCoords(x, y)
}

// TileToScreenCoords returns the top-left corner of the bounding box of the
// tile containing (x, y).
func (r *HexagonalRenderer) TileToScreenCoords(x, y float64) gg.Point {
	return toPoint(hexTileToScreen(r.params(), int(math.Floor(x)), int(math.Floor(y))))
}

func hexTileToScreen(p RenderParams, x, y int) image.Point {
	if p.StaggerX {
		pixelY := y * (p.TileHeight + p.SideLengthY)
		if p.DoStaggerX(x) {
			pixelY += p.RowHeight
		}
		return image.Pt(x*p.ColumnWidth, pixelY)
	}

	pixelX := x * (p.TileWidth + p.SideLengthX)
	if p.DoStaggerY(y) {
		pixelX += p.ColumnWidth
	}
	return image.Pt(pixelX, y*p.RowHeight)
}

// ScreenToTileCoords returns the tile containing the screen position.
func (r *HexagonalRenderer) ScreenToTileCoords(x, y float64) gg.Point {
	p := r.params()
	if !p.valid() {
		return gg.Point{}
	}
	if r.diamond {
		return toPoint(staggeredScreenToTile(p, x, y))
	}
	return toPoint(hexScreenToTile(p, x, y))
}

// hexScreenToTile locates the base rectangle of two interleaved rows or
// columns containing the position and picks the nearest of the four hexagon
// centers that may overlap it.
func hexScreenToTile(p RenderParams, x, y float64) image.Point {
	if p.StaggerX {
		if p.StaggerEven {
			x -= float64(p.TileWidth)
		} else {
			x -= float64(p.SideOffsetX)
		}
	} else {
		if p.StaggerEven {
			y -= float64(p.TileHeight)
		} else {
			y -= float64(p.SideOffsetY)
		}
	}

	lenX := float64(p.TileWidth + p.SideLengthX)
	lenY := float64(p.TileHeight + p.SideLengthY)

	ref := floorPoint(gg.Pt(x/lenX, y/lenY))
	rel := gg.Pt(x-float64(ref.X)*lenX, y-float64(ref.Y)*lenY)

	// Two rows or columns per base rectangle.
	if p.StaggerX {
		ref.X *= 2
		if p.StaggerEven {
			ref.X++
		}
	} else {
		ref.Y *= 2
		if p.StaggerEven {
			ref.Y++
		}
	}

	var centers [4]gg.Point
	var offsets [4]image.Point

	if p.StaggerX {
		left := float64(p.SideLengthX / 2)
		centerX := left + float64(p.ColumnWidth)
		centerY := float64(p.TileHeight / 2)
		rh := float64(p.RowHeight)

		centers = [4]gg.Point{
			gg.Pt(left, centerY),
			gg.Pt(centerX, centerY-rh),
			gg.Pt(centerX, centerY+rh),
			gg.Pt(centerX+float64(p.ColumnWidth), centerY),
		}
		offsets = [4]image.Point{{0, 0}, {1, -1}, {1, 0}, {2, 0}}
	} else {
		top := float64(p.SideLengthY / 2)
		centerX := float64(p.TileWidth / 2)
		centerY := top + float64(p.RowHeight)
		cw := float64(p.ColumnWidth)

		centers = [4]gg.Point{
			gg.Pt(centerX, top),
			gg.Pt(centerX-cw, centerY),
			gg.Pt(centerX+cw, centerY),
			gg.Pt(centerX, centerY+float64(p.RowHeight)),
		}
		offsets = [4]image.Point{{0, 0}, {-1, 1}, {0, 1}, {0, 2}}
	}

	nearest := 0
	minDist := math.MaxFloat64
	for i, c := range centers {
		if d := c.Sub(rel).LengthSquared(); d < minDist {
			minDist = d
			nearest = i
		}
	}

	return ref.Add(offsets[nearest])
}

// TileToScreenPolygon returns the outline of the tile as an octagon. Two of
// its sides have zero length unless the map has a hex side length on both
// axes.
func (r *HexagonalRenderer) TileToScreenPolygon(x, y int) []gg.Point {
	p := r.params()
	topLeft := hexTileToScreen(p, x, y)
	oct := hexOctagon(p)

	poly := make([]gg.Point, len(oct))
	for i, o := range oct {
		poly[i] = toPoint(topLeft.Add(o))
	}
	return poly
}

// TileRectToScreenPolygon returns the bounding box of the tile region.
func (r *HexagonalRenderer) TileRectToScreenPolygon(rect image.Rectangle) []gg.Point {
	if rect.Dx() == 1 && rect.Dy() == 1 {
		return r.TileToScreenPolygon(rect.Min.X, rect.Min.Y)
	}
	return rectPolygon(toRect(r.BoundingRect(rect)))
}

// TopLeft returns the neighbor touching the upper left edge of tile (x, y).
func (r *HexagonalRenderer) TopLeft(x, y int) image.Point {
	return topLeft(r.params(), x, y)
}

// TopRight returns the neighbor touching the upper right edge of tile (x, y).
func (r *HexagonalRenderer) TopRight(x, y int) image.Point {
	return topRight(r.params(), x, y)
}

// BottomLeft returns the neighbor touching the lower left edge of tile (x, y).
func (r *HexagonalRenderer) BottomLeft(x, y int) image.Point {
	return bottomLeft(r.params(), x, y)
}

// BottomRight returns the neighbor touching the lower right edge of tile (x, y).
func (r *HexagonalRenderer) BottomRight(x, y int) image.Point {
	return bottomRight(r.params(), x, y)
}

func topLeft(p RenderParams, x, y int) image.Point {
	if !p.StaggerX {
		if p.DoStaggerY(y) {
			return image.Pt(x, y-1)
		}
		return image.Pt(x-1, y-1)
	}
	if p.DoStaggerX(x) {
		return image.Pt(x-1, y)
	}
	return image.Pt(x-1, y-1)
}

func topRight(p RenderParams, x, y int) image.Point {
	if !p.StaggerX {
		if p.DoStaggerY(y) {
			return image.Pt(x+1, y-1)
		}
		return image.Pt(x, y-1)
	}
	if p.DoStaggerX(x) {
		return image.Pt(x+1, y)
	}
	return image.Pt(x+1, y-1)
}

func bottomLeft(p RenderParams, x, y int) image.Point {
	if !p.StaggerX {
		if p.DoStaggerY(y) {
			return image.Pt(x, y+1)
		}
		return image.Pt(x-1, y+1)
	}
	if p.DoStaggerX(x) {
		return image.Pt(x-1, y+1)
	}
	return image.Pt(x-1, y)
}

func bottomRight(p RenderParams, x, y int) image.Point {
	if !p.StaggerX {
		if p.DoStaggerY(y) {
			return image.Pt(x+1, y+1)
		}
		return image.Pt(x, y+1)
	}
	if p.DoStaggerX(x) {
		return image.Pt(x+1, y+1)
	}
	return image.Pt(x+1, y)
}
