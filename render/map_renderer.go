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
	"slices"

	tiled "github.com/Tsukumogami-Software/go-tiled-editor"
	"github.com/gogpu/gg"
)

// MapRenderer converts between tile, pixel and screen coordinates and draws
// map content for one map projection.
//
// Tile regions are image.Rectangle values in tile coordinates with Max
// exclusive. Screen values use gg geometry. An empty exposed rectangle means
// "everything" for DrawTileLayer, DrawTileSelection and DrawImageLayer, and
// nothing for DrawGrid.
type MapRenderer interface {
	Map() *tiled.Map

	// MapSize returns the size of the whole map in screen pixels.
	MapSize() image.Point
	// BoundingRect returns the screen rectangle exactly covering a tile region.
	BoundingRect(r image.Rectangle) image.Rectangle
	// ObjectBoundingRect returns the screen rectangle of an object, with at
	// least one pixel of margin.
	ObjectBoundingRect(o *tiled.Object) gg.Rect
	// Shape returns the screen outline of an object for hit-testing with
	// the non-zero winding rule.
	Shape(o *tiled.Object) *gg.Path

	DrawGrid(p Painter, exposed gg.Rect, c color.Color)
	DrawTileLayer(p Painter, layer *tiled.TileLayer, exposed gg.Rect)
	DrawTileSelection(p Painter, region []image.Rectangle, c color.Color, exposed gg.Rect)
	DrawMapObject(p Painter, o *tiled.Object, c color.Color)
	DrawImageLayer(p Painter, layer *tiled.ImageLayer, exposed gg.Rect)

	PixelToTileCoords(x, y float64) gg.Point
	TileToPixelCoords(x, y float64) gg.Point
	ScreenToTileCoords(x, y float64) gg.Point
	TileToScreenCoords(x, y float64) gg.Point
	ScreenToPixelCoords(x, y float64) gg.Point
	PixelToScreenCoords(x, y float64) gg.Point

	PixelToScreenPolygon(points []gg.Point) []gg.Point
	PixelRectToScreenPolygon(r gg.Rect) []gg.Point
	TileToScreenPolygon(x, y int) []gg.Point
	TileRectToScreenPolygon(r image.Rectangle) []gg.Point

	ObjectLineWidth() float64
	SetObjectLineWidth(w float64)
	Flags() Flag
	SetFlag(f Flag, enabled bool)
	TestFlag(f Flag) bool
}

// Flag toggles optional renderer output.
type Flag uint

const (
	// ShowTileObjectOutlines outlines the image rectangle of tile objects.
	ShowTileObjectOutlines Flag = 1 << iota
)

// NewMapRenderer returns the renderer for the orientation of m.
func NewMapRenderer(m *tiled.Map) (MapRenderer, error) {
	switch m.Orientation {
	case tiled.Orthogonal:
		return NewOrthogonalRenderer(m), nil
	case tiled.Isometric:
		return NewIsometricRenderer(m), nil
	case tiled.Staggered:
		return NewStaggeredRenderer(m), nil
	case tiled.Hexagonal:
		return NewHexagonalRenderer(m), nil
	}
	return nil, ErrUnsupportedOrientation
}

// mapRenderer holds the state shared by every projection.
type mapRenderer struct {
	m               *tiled.Map
	objectLineWidth float64
	flags           Flag
}

// Map returns the rendered map.
func (r *mapRenderer) Map() *tiled.Map {
	return r.m
}

// ObjectLineWidth returns the line width used for map objects. Zero draws
// one device pixel wide lines.
func (r *mapRenderer) ObjectLineWidth() float64 {
	return r.objectLineWidth
}

func (r *mapRenderer) SetObjectLineWidth(w float64) {
	r.objectLineWidth = max(w, 0)
}

// Flags returns the enabled flags.
func (r *mapRenderer) Flags() Flag {
	return r.flags
}

func (r *mapRenderer) SetFlag(f Flag, enabled bool) {
	if enabled {
		r.flags |= f
	} else {
		r.flags &^= f
	}
}

func (r *mapRenderer) TestFlag(f Flag) bool {
	return r.flags&f != 0
}

// DrawImageLayer draws an image layer. Image layer offsets are screen
// offsets in every projection.
func (r *mapRenderer) DrawImageLayer(p Painter, layer *tiled.ImageLayer, exposed gg.Rect) {
	img := layer.Image
	if img == nil || img.Width <= 0 || img.Height <= 0 {
		return
	}
	dst := Rect(layer.X, layer.Y, float64(img.Width), float64(img.Height))
	if !rectEmpty(exposed) && !rectIntersects(dst, exposed) {
		return
	}
	p.DrawImage(img, dst)
}

// unionRects splits the union of region into non-overlapping rectangles, so
// that translucent fills never blend twice.
func unionRects(region []image.Rectangle) []image.Rectangle {
	var bounds image.Rectangle
	for _, r := range region {
		bounds = bounds.Union(r.Canon())
	}
	if bounds.Empty() {
		return nil
	}

	var res, open []image.Rectangle
	var current [][2]int

	for y := bounds.Min.Y; y <= bounds.Max.Y; y++ {
		var spans [][2]int
		if y < bounds.Max.Y {
			spans = rowSpans(region, y)
		}

		if slices.Equal(spans, current) {
			for i := range open {
				open[i].Max.Y = y + 1
			}
			continue
		}

		res = append(res, open...)
		open = nil
		for _, s := range spans {
			open = append(open, image.Rect(s[0], y, s[1], y+1))
		}
		current = spans
	}
	return res
}

// rowSpans returns the merged [x0, x1) spans of region covering row y.
func rowSpans(region []image.Rectangle, y int) [][2]int {
	var spans [][2]int
	for _, r := range region {
		r = r.Canon()
		if r.Empty() || y < r.Min.Y || y >= r.Max.Y {
			continue
		}
		spans = append(spans, [2]int{r.Min.X, r.Max.X})
	}
	slices.SortFunc(spans, func(a, b [2]int) int { return a[0] - b[0] })

	merged := spans[:0]
	for _, s := range spans {
		if n := len(merged); n > 0 && s[0] <= merged[n-1][1] {
			merged[n-1][1] = max(merged[n-1][1], s[1])
			continue
		}
		merged = append(merged, s)
	}
	return merged
}
