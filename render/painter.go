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
	"image/color"

	tiled "github.com/Tsukumogami-Software/go-tiled-editor"
	"github.com/gogpu/gg"
)

// Painter is the drawing surface renderers emit commands to. Renderers never
// read back from it.
type Painter interface {
	// SetPen sets the stroke used by line, polygon, path and point commands.
	// A pen with a nil color disables stroking.
	SetPen(pen Pen)
	// SetBrush sets the fill used by polygon and path commands. Nil disables
	// filling.
	SetBrush(c color.Color)
	// SetOpacity multiplies the alpha of every following command.
	SetOpacity(opacity float64)

	DrawLines(lines []gg.Line)
	DrawPolygon(points []gg.Point)
	DrawPolyline(points []gg.Point)
	// DrawPath fills the path with the non-zero winding rule and strokes it.
	DrawPath(path *gg.Path)
	DrawPoint(p gg.Point)
	FillRect(r gg.Rect, c color.Color)
	// DrawTile draws the image of tile into dst after applying flip.
	DrawTile(tile *tiled.Tile, dst gg.Rect, flip Flip)
	// DrawImage draws a layer image into dst.
	DrawImage(img *tiled.Image, dst gg.Rect)

	// Scale returns the device pixels per screen unit of the surface.
	Scale() float64
}

// Pen describes how lines are stroked.
type Pen struct {
	Color color.Color
	// Width of zero draws one device pixel wide lines.
	Width      float64
	Dashes     []float64
	DashOffset float64
	// Cosmetic pens keep their width and dash lengths in device pixels.
	Cosmetic bool
}

// NoPen disables stroking.
var NoPen = Pen{}

// Flip is a set of tile flip flags.
type Flip uint8

const (
	FlipHorizontal Flip = 1 << iota
	FlipVertical
	FlipDiagonal
)

// FlipOf returns the flip flags of a cell.
func FlipOf(c tiled.Cell) Flip {
	var f Flip
	if c.HorizontalFlip {
		f |= FlipHorizontal
	}
	if c.VerticalFlip {
		f |= FlipVertical
	}
	if c.DiagonalFlip {
		f |= FlipDiagonal
	}
	return f
}

// Has reports whether all flags of o are set.
func (f Flip) Has(o Flip) bool {
	return f&o == o
}

func withAlpha(c color.Color, a uint8) color.NRGBA {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	n.A = a
	return n
}

func gridPen(c color.Color) Pen {
	return Pen{
		Color:    withAlpha(c, 128),
		Dashes:   []float64{2, 2},
		Cosmetic: true,
	}
}
