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

import (
	"image"
	"path/filepath"
)

// Image is a reference to an image file.
type Image struct {
	Source string
	Width  int
	Height int
}

// Tileset is a set of tiles sharing an image or a collection of tile images.
type Tileset struct {
	Name       string
	FirstGID   uint32
	TileWidth  int
	TileHeight int
	Spacing    int
	Margin     int
	TileCount  int
	Columns    int
	// TileOffset is added to the draw position of every tile of the set.
	TileOffset image.Point
	// Image is the tileset image. Nil for image collection tilesets.
	Image *Image
	Tiles []*Tile
	// SourceDir is the directory image sources are relative to.
	SourceDir string
}

// NewTileset returns a tileset of count tiles sized tileWidth x tileHeight.
func NewTileset(name string, tileWidth, tileHeight, count int) *Tileset {
	ts := &Tileset{
		Name:       name,
		TileWidth:  tileWidth,
		TileHeight: tileHeight,
		TileCount:  count,
	}
	ts.Tiles = make([]*Tile, count)
	for i := range ts.Tiles {
		ts.Tiles[i] = &Tile{ID: uint32(i), Tileset: ts}
	}
	return ts
}

// Tile returns the tile with the given local ID, or nil.
func (ts *Tileset) Tile(id uint32) *Tile {
	if int(id) >= len(ts.Tiles) {
		return nil
	}
	return ts.Tiles[id]
}

// GetTileRect returns the rectangle of the tile inside the tileset image.
func (ts *Tileset) GetTileRect(id uint32) image.Rectangle {
	columns := ts.Columns
	if columns <= 0 {
		columns = 1
		if ts.Image != nil && ts.TileWidth+ts.Spacing > 0 {
			columns = max(1, (ts.Image.Width-2*ts.Margin+ts.Spacing)/(ts.TileWidth+ts.Spacing))
		}
	}

	x := int(id) % columns
	y := int(id) / columns

	x0 := ts.Margin + x*(ts.TileWidth+ts.Spacing)
	y0 := ts.Margin + y*(ts.TileHeight+ts.Spacing)
	return image.Rect(x0, y0, x0+ts.TileWidth, y0+ts.TileHeight)
}

// GetFileFullPath returns the path of an image source relative to the tileset.
func (ts *Tileset) GetFileFullPath(source string) string {
	if ts.SourceDir == "" || filepath.IsAbs(source) {
		return source
	}
	return filepath.Join(ts.SourceDir, source)
}

// Tile is a single tile of a tileset.
type Tile struct {
	ID      uint32
	Tileset *Tileset
	// Image is set for tiles of an image collection tileset.
	Image *Image
}

// Size returns the size of the tile image.
func (t *Tile) Size() image.Point {
	if t.Image != nil && t.Image.Width > 0 && t.Image.Height > 0 {
		return image.Pt(t.Image.Width, t.Image.Height)
	}
	if t.Tileset == nil {
		return image.Point{}
	}
	return image.Pt(t.Tileset.TileWidth, t.Tileset.TileHeight)
}

// Offset returns the draw offset of the tile.
func (t *Tile) Offset() image.Point {
	if t.Tileset == nil {
		return image.Point{}
	}
	return t.Tileset.TileOffset
}

// GID returns the global ID of the tile.
func (t *Tile) GID() uint32 {
	if t.Tileset == nil {
		return t.ID
	}
	return t.Tileset.FirstGID + t.ID
}
