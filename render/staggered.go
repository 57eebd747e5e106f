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

	tiled "github.com/Tsukumogami-Software/go-tiled-editor"
)

// StaggeredRenderer renders staggered isometric maps: diamond tiles where
// every other row or column is shifted by half a tile. It is a hexagonal
// renderer with zero side length whose tiles are diamonds instead of
// hexagons.
type StaggeredRenderer struct {
	HexagonalRenderer
}

// NewStaggeredRenderer returns a staggered renderer for m.
func NewStaggeredRenderer(m *tiled.Map) *StaggeredRenderer {
	return &StaggeredRenderer{HexagonalRenderer{
		OrthogonalRenderer: OrthogonalRenderer{mapRenderer{m: m}},
		diamond:            true,
	}}
}

// staggeredScreenToTile locates the tile rectangle containing the position
// and moves to a neighbor when the position is in one of its corners
// outside the diamond.
func staggeredScreenToTile(p RenderParams, x, y float64) image.Point {
	if p.StaggerX {
		if p.StaggerEven {
			x -= float64(p.SideOffsetX)
		}
	} else {
		if p.StaggerEven {
			y -= float64(p.SideOffsetY)
		}
	}

	tw, th := float64(p.TileWidth), float64(p.TileHeight)

	ref := image.Pt(int(math.Floor(x/tw)), int(math.Floor(y/th)))
	relX := x - float64(ref.X)*tw
	relY := y - float64(ref.Y)*th

	// Two rows or columns per tile rectangle.
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

	yPos := relX * (th / tw)
	sideOffsetY := float64(p.SideOffsetY)

	switch {
	case sideOffsetY-yPos > relY:
		return topLeft(p, ref.X, ref.Y)
	case -sideOffsetY+yPos > relY:
		return topRight(p, ref.X, ref.Y)
	case sideOffsetY+yPos < relY:
		return bottomLeft(p, ref.X, ref.Y)
	case sideOffsetY*3-yPos < relY:
		return bottomRight(p, ref.X, ref.Y)
	}
	return ref
}
