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

import tiled "github.com/Tsukumogami-Software/go-tiled-editor"

// RenderParams are the staggered grid constants derived from a map. They are
// cheap to compute and are rebuilt on every call so that edits to the map
// orientation, tile size or stagger settings are always picked up.
type RenderParams struct {
	TileWidth   int
	TileHeight  int
	SideLengthX int
	SideLengthY int
	SideOffsetX int
	SideOffsetY int
	ColumnWidth int
	RowHeight   int
	StaggerX    bool
	StaggerEven bool
}

// NewRenderParams derives the render parameters of m. Tile sizes are rounded
// down to even so that half tile steps stay on whole pixels.
func NewRenderParams(m *tiled.Map) RenderParams {
	p := RenderParams{
		TileWidth:   m.TileWidth &^ 1,
		TileHeight:  m.TileHeight &^ 1,
		StaggerX:    m.StaggerAxis == tiled.StaggerX,
		StaggerEven: m.StaggerIndex == tiled.StaggerEven,
	}

	if m.Orientation == tiled.Hexagonal {
		if p.StaggerX {
			p.SideLengthX = m.HexSideLength
		} else {
			p.SideLengthY = m.HexSideLength
		}
	}

	p.SideOffsetX = (p.TileWidth - p.SideLengthX) / 2
	p.SideOffsetY = (p.TileHeight - p.SideLengthY) / 2
	p.ColumnWidth = p.SideOffsetX + p.SideLengthX
	p.RowHeight = p.SideOffsetY + p.SideLengthY
	return p
}

// DoStaggerX reports whether column x is shifted down. Always false when
// the stagger axis is Y.
func (p RenderParams) DoStaggerX(x int) bool {
	return p.StaggerX && ((x&1) != 0) != p.StaggerEven
}

// DoStaggerY reports whether row y is shifted right. Always false when the
// stagger axis is X.
func (p RenderParams) DoStaggerY(y int) bool {
	return !p.StaggerX && ((y&1) != 0) != p.StaggerEven
}

// valid reports whether the geometry can produce output.
func (p RenderParams) valid() bool {
	return p.TileWidth > 0 && p.TileHeight > 0
}
