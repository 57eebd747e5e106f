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

package tiled

import "image"

// Layer is one of *TileLayer, *ObjectGroup, *ImageLayer or *Group.
type Layer interface {
	LayerName() string
	IsVisible() bool
	isLayer()
}

// Margins are extra pixels around a rectangle.
type Margins struct {
	Left, Top, Right, Bottom int
}

func maxMargins(a, b Margins) Margins {
	return Margins{
		Left:   max(a.Left, b.Left),
		Top:    max(a.Top, b.Top),
		Right:  max(a.Right, b.Right),
		Bottom: max(a.Bottom, b.Bottom),
	}
}

// TileLayer is a grid of cells positioned at a tile offset.
type TileLayer struct {
	Name    string
	X, Y    int
	Width   int
	Height  int
	Opacity float32
	Visible bool

	cells []Cell
}

// NewTileLayer returns an empty, visible, opaque tile layer.
func NewTileLayer(name string, width, height int) *TileLayer {
	return &TileLayer{
		Name:    name,
		Width:   width,
		Height:  height,
		Opacity: 1,
		Visible: true,
		cells:   make([]Cell, max(0, width*height)),
	}
}

func (l *TileLayer) LayerName() string { return l.Name }
func (l *TileLayer) IsVisible() bool   { return l.Visible }
func (*TileLayer) isLayer()            {}

// Contains reports whether the layer-local coordinate is inside the layer.
func (l *TileLayer) Contains(x, y int) bool {
	return x >= 0 && y >= 0 && x < l.Width && y < l.Height
}

// CellAt returns the cell at the layer-local coordinate. Coordinates outside
// the layer yield an empty cell.
func (l *TileLayer) CellAt(x, y int) Cell {
	if !l.Contains(x, y) {
		return Cell{}
	}
	return l.cells[y*l.Width+x]
}

// SetCell stores a cell at the layer-local coordinate.
func (l *TileLayer) SetCell(x, y int, c Cell) {
	if !l.Contains(x, y) {
		return
	}
	l.cells[y*l.Width+x] = c
}

// Bounds returns the layer rectangle in map tile coordinates.
func (l *TileLayer) Bounds() image.Rectangle {
	return image.Rect(l.X, l.Y, l.X+l.Width, l.Y+l.Height)
}

// Position returns the layer offset in tiles.
func (l *TileLayer) Position() image.Point {
	return image.Pt(l.X, l.Y)
}

// IsEmpty reports whether no cell references a tile.
func (l *TileLayer) IsEmpty() bool {
	for _, c := range l.cells {
		if !c.IsEmpty() {
			return false
		}
	}
	return true
}

// DrawMargins returns how far tile images of this layer may reach beyond the
// grid cell they are anchored in, given the map tile size. Tiles are anchored
// at their bottom-left corner, so the largest tile height goes to the top
// margin and the largest tile width to the right margin. Tile draw offsets
// extend the opposite sides.
func (l *TileLayer) DrawMargins(tileWidth, tileHeight int) Margins {
	maxWidth, maxHeight := tileWidth, tileHeight
	var offsets Margins

	for _, c := range l.cells {
		if c.Tile == nil {
			continue
		}
		size := c.Tile.Size()
		if c.DiagonalFlip {
			size.X, size.Y = size.Y, size.X
		}
		maxWidth = max(maxWidth, size.X)
		maxHeight = max(maxHeight, size.Y)

		off := c.Tile.Offset()
		offsets = maxMargins(offsets, Margins{
			Left:   -off.X,
			Top:    -off.Y,
			Right:  off.X,
			Bottom: off.Y,
		})
	}

	return Margins{
		Left:   offsets.Left,
		Top:    offsets.Top + maxHeight,
		Right:  offsets.Right + maxWidth,
		Bottom: offsets.Bottom,
	}
}

// ImageLayer is a single image placed at a pixel offset.
type ImageLayer struct {
	Name    string
	X, Y    float64
	Image   *Image
	Opacity float32
	Visible bool
}

func (l *ImageLayer) LayerName() string { return l.Name }
func (l *ImageLayer) IsVisible() bool   { return l.Visible }
func (*ImageLayer) isLayer()            {}

// Group is a named list of layers.
type Group struct {
	Name    string
	Layers  []Layer
	Visible bool
}

func (g *Group) LayerName() string { return g.Name }
func (g *Group) IsVisible() bool   { return g.Visible }
func (*Group) isLayer()            {}
