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

import "fmt"

const (
	tileHorizontalFlipMask = 0x80000000
	tileVerticalFlipMask   = 0x40000000
	tileDiagonalFlipMask   = 0x20000000
	tileFlip               = tileHorizontalFlipMask | tileVerticalFlipMask | tileDiagonalFlipMask
	tileGIDMask            = 0x0fffffff
)

// Cell is a reference to a tile with flip flags. The zero value is empty.
type Cell struct {
	Tile           *Tile
	HorizontalFlip bool
	VerticalFlip   bool
	// DiagonalFlip flips the tile over its anti-diagonal.
	DiagonalFlip bool
}

// IsEmpty reports whether the cell references no tile.
func (c Cell) IsEmpty() bool {
	return c.Tile == nil
}

// GID encodes the cell as a Tiled global ID with the flip flags set in the
// high bits.
func (c Cell) GID() uint32 {
	if c.Tile == nil {
		return 0
	}
	gid := c.Tile.GID()
	if c.HorizontalFlip {
		gid |= tileHorizontalFlipMask
	}
	if c.VerticalFlip {
		gid |= tileVerticalFlipMask
	}
	if c.DiagonalFlip {
		gid |= tileDiagonalFlipMask
	}
	return gid
}

// DecodeGID returns the cell for a Tiled global ID.
func (m *Map) DecodeGID(gid uint32) (Cell, error) {
	if gid == 0 {
		return Cell{}, nil
	}

	cell := Cell{
		HorizontalFlip: gid&tileHorizontalFlipMask != 0,
		VerticalFlip:   gid&tileVerticalFlipMask != 0,
		DiagonalFlip:   gid&tileDiagonalFlipMask != 0,
	}
	id := gid &^ tileFlip & tileGIDMask

	for i := len(m.Tilesets) - 1; i >= 0; i-- {
		ts := m.Tilesets[i]
		if ts.FirstGID > id {
			continue
		}
		cell.Tile = ts.Tile(id - ts.FirstGID)
		if cell.Tile == nil {
			break
		}
		return cell, nil
	}
	return Cell{}, fmt.Errorf("%w: %d", ErrInvalidTileGID, id)
}
