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
	tiled "github.com/Tsukumogami-Software/go-tiled-editor"
	"github.com/gogpu/gg"
)

// Origin is the point of a tile image placed at the render position.
type Origin int

const (
	OriginBottomLeft Origin = iota
	OriginBottomCenter
)

// CellRenderer draws cells onto a painter.
type CellRenderer struct {
	p Painter
}

// NewCellRenderer returns a cell renderer drawing onto p.
func NewCellRenderer(p Painter) *CellRenderer {
	return &CellRenderer{p: p}
}

// Render draws cell at pos. A zero size draws the tile at its own size,
// otherwise the image is scaled to size.
func (r *CellRenderer) Render(cell tiled.Cell, pos, size gg.Point, origin Origin) {
	if cell.IsEmpty() {
		return
	}
	dst := cellFootprint(cell, pos, size, origin)
	if rectEmpty(dst) {
		return
	}
	r.p.DrawTile(cell.Tile, dst, FlipOf(cell))
}

// cellFootprint returns the screen rectangle covered by the (flipped) tile
// image of cell when anchored at pos.
func cellFootprint(cell tiled.Cell, pos, size gg.Point, origin Origin) gg.Rect {
	img := cell.Tile.Size()
	if img.X <= 0 || img.Y <= 0 {
		return gg.Rect{}
	}

	w, h := float64(img.X), float64(img.Y)
	if cell.DiagonalFlip {
		w, h = h, w
	}
	if size.X == 0 && size.Y == 0 {
		size = gg.Pt(w, h)
	}

	scaleX, scaleY := size.X/w, size.Y/h
	off := cell.Tile.Offset()

	x := pos.X + float64(off.X)*scaleX
	y := pos.Y + float64(off.Y)*scaleY - size.Y
	if origin == OriginBottomCenter {
		x -= size.X / 2
	}
	return Rect(x, y, size.X, size.Y)
}
