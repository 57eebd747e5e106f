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

// Map is a tile map. Renderers hold a pointer to it and recompute their
// derived geometry on every call, so the fields may be edited between calls.
type Map struct {
	Orientation Orientation
	RenderOrder RenderOrder
	// Width and Height are in tiles.
	Width  int
	Height int
	// TileWidth and TileHeight are in pixels.
	TileWidth  int
	TileHeight int
	// HexSideLength is the length of the flat side of a hexagon. Only
	// hexagonal maps use it.
	HexSideLength int
	StaggerAxis   StaggerAxis
	StaggerIndex  StaggerIndex

	Layers   []Layer
	Tilesets []*Tileset
}

// NewMap returns an empty map with the given geometry.
func NewMap(orientation Orientation, width, height, tileWidth, tileHeight int) *Map {
	return &Map{
		Orientation: orientation,
		Width:       width,
		Height:      height,
		TileWidth:   tileWidth,
		TileHeight:  tileHeight,
	}
}

// Bounds returns the map rectangle in tile coordinates.
func (m *Map) Bounds() image.Rectangle {
	return image.Rect(0, 0, m.Width, m.Height)
}

// AddLayer appends a layer at the top of the layer stack.
func (m *Map) AddLayer(l Layer) {
	m.Layers = append(m.Layers, l)
}

// AddTileset appends a tileset and assigns its first GID when unset.
func (m *Map) AddTileset(ts *Tileset) {
	if ts.FirstGID == 0 {
		next := uint32(1)
		for _, other := range m.Tilesets {
			if end := other.FirstGID + uint32(other.TileCount); end > next {
				next = end
			}
		}
		ts.FirstGID = next
	}
	m.Tilesets = append(m.Tilesets, ts)
}

// TileLayers returns every tile layer in draw order, descending into groups.
func (m *Map) TileLayers() []*TileLayer {
	var res []*TileLayer
	walkLayers(m.Layers, func(l Layer) {
		if tl, ok := l.(*TileLayer); ok {
			res = append(res, tl)
		}
	})
	return res
}

// ObjectGroups returns every object group in draw order, descending into groups.
func (m *Map) ObjectGroups() []*ObjectGroup {
	var res []*ObjectGroup
	walkLayers(m.Layers, func(l Layer) {
		if og, ok := l.(*ObjectGroup); ok {
			res = append(res, og)
		}
	})
	return res
}

// Groups returns the top level groups.
func (m *Map) Groups() []*Group {
	var res []*Group
	for _, l := range m.Layers {
		if g, ok := l.(*Group); ok {
			res = append(res, g)
		}
	}
	return res
}

// MaxTileSize returns the largest tile size used by any tileset, or the map
// tile size when it is larger.
func (m *Map) MaxTileSize() image.Point {
	size := image.Pt(m.TileWidth, m.TileHeight)
	for _, ts := range m.Tilesets {
		size.X = max(size.X, ts.TileWidth)
		size.Y = max(size.Y, ts.TileHeight)
		for _, t := range ts.Tiles {
			s := t.Size()
			size.X = max(size.X, s.X)
			size.Y = max(size.Y, s.Y)
		}
	}
	return size
}

func walkLayers(layers []Layer, fn func(Layer)) {
	for _, l := range layers {
		if g, ok := l.(*Group); ok {
			walkLayers(g.Layers, fn)
			continue
		}
		fn(l)
	}
}
