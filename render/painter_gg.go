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
	"github.com/disintegration/imaging"
	"github.com/gogpu/gg"
)

// ContextPainter paints onto a gg drawing context.
type ContextPainter struct {
	dc     *gg.Context
	images TileImageSource

	pen     Pen
	brush   color.Color
	opacity float64

	tiles  map[flippedTile]*gg.ImageBuf
	layers map[*tiled.Image]*gg.ImageBuf
}

type flippedTile struct {
	tile *tiled.Tile
	flip Flip
}

// NewContextPainter returns a painter drawing onto dc. Tile and layer images
// are resolved through images; a nil source skips them.
func NewContextPainter(dc *gg.Context, images TileImageSource) *ContextPainter {
	dc.SetFillRule(gg.FillRuleNonZero)
	return &ContextPainter{
		dc:      dc,
		images:  images,
		opacity: 1,
		tiles:   map[flippedTile]*gg.ImageBuf{},
		layers:  map[*tiled.Image]*gg.ImageBuf{},
	}
}

func (p *ContextPainter) SetPen(pen Pen)          { p.pen = pen }
func (p *ContextPainter) SetBrush(c color.Color)  { p.brush = c }
func (p *ContextPainter) SetOpacity(o float64)    { p.opacity = min(max(o, 0), 1) }
func (p *ContextPainter) Context() *gg.Context    { return p.dc }
func (p *ContextPainter) Images() TileImageSource { return p.images }

// Scale returns the horizontal scale of the context transform.
func (p *ContextPainter) Scale() float64 {
	m := p.dc.GetTransform()
	if s := math.Hypot(m.A, m.D); s > 0 {
		return s
	}
	return 1
}

func (p *ContextPainter) fade(c color.Color) color.Color {
	if p.opacity >= 1 {
		return c
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	n.A = uint8(math.Round(float64(n.A) * p.opacity))
	return n
}

// applyPen configures the context for stroking. It reports false for a pen
// without color.
func (p *ContextPainter) applyPen() bool {
	if p.pen.Color == nil {
		return false
	}

	// Zero width and cosmetic pens are sized in device pixels.
	unit := 1.0
	if p.pen.Cosmetic {
		unit = 1 / p.Scale()
	}
	width := p.pen.Width
	if width <= 0 {
		width = 1
		unit = 1 / p.Scale()
	}

	p.dc.SetColor(p.fade(p.pen.Color))
	p.dc.SetLineWidth(width * unit)

	if len(p.pen.Dashes) == 0 {
		p.dc.ClearDash()
		return true
	}

	// Dash lengths are in units of the pen width.
	dashes := make([]float64, len(p.pen.Dashes))
	for i, d := range p.pen.Dashes {
		dashes[i] = d * width * unit
	}
	p.dc.SetDash(dashes...)
	p.dc.SetDashOffset(p.pen.DashOffset * width * unit)
	return true
}

func (p *ContextPainter) check(op string, err error) {
	if err != nil {
		Logger().Debug("render: paint failed", "op", op, "err", err)
	}
}

// finish fills the current path with the brush when fill is set, strokes it
// with the pen and clears it.
func (p *ContextPainter) finish(fill bool) {
	if fill && p.brush != nil {
		p.dc.SetColor(p.fade(p.brush))
		p.check("fill", p.dc.FillPreserve())
	}
	if p.applyPen() {
		p.check("stroke", p.dc.StrokePreserve())
	}
	p.dc.ClearPath()
}

func (p *ContextPainter) DrawLines(lines []gg.Line) {
	if len(lines) == 0 {
		return
	}
	for _, l := range lines {
		p.dc.MoveTo(l.P0.X, l.P0.Y)
		p.dc.LineTo(l.P1.X, l.P1.Y)
	}
	p.finish(false)
}

func (p *ContextPainter) polyline(points []gg.Point) {
	p.dc.MoveTo(points[0].X, points[0].Y)
	for _, pt := range points[1:] {
		p.dc.LineTo(pt.X, pt.Y)
	}
}

func (p *ContextPainter) DrawPolygon(points []gg.Point) {
	if len(points) < 2 {
		return
	}
	p.polyline(points)
	p.dc.ClosePath()
	p.finish(true)
}

func (p *ContextPainter) DrawPolyline(points []gg.Point) {
	if len(points) < 2 {
		return
	}
	p.polyline(points)
	p.finish(false)
}

func (p *ContextPainter) DrawPath(path *gg.Path) {
	if path == nil {
		return
	}
	for _, e := range path.Elements() {
		switch e := e.(type) {
		case gg.MoveTo:
			p.dc.MoveTo(e.Point.X, e.Point.Y)
		case gg.LineTo:
			p.dc.LineTo(e.Point.X, e.Point.Y)
		case gg.QuadTo:
			p.dc.QuadraticTo(e.Control.X, e.Control.Y, e.Point.X, e.Point.Y)
		case gg.CubicTo:
			p.dc.CubicTo(e.Control1.X, e.Control1.Y, e.Control2.X, e.Control2.Y, e.Point.X, e.Point.Y)
		case gg.Close:
			p.dc.ClosePath()
		}
	}
	p.finish(true)
}

// DrawPoint draws a round dot as wide as the pen.
func (p *ContextPainter) DrawPoint(pt gg.Point) {
	if p.pen.Color == nil {
		return
	}
	r := max(p.pen.Width, 1) / 2
	if p.pen.Cosmetic || p.pen.Width <= 0 {
		r /= p.Scale()
	}
	p.dc.DrawPoint(pt.X, pt.Y, r)
	p.dc.SetColor(p.fade(p.pen.Color))
	p.check("point", p.dc.Fill())
}

func (p *ContextPainter) FillRect(r gg.Rect, c color.Color) {
	if rectEmpty(r) || c == nil {
		return
	}
	p.dc.DrawRectangle(r.Min.X, r.Min.Y, r.Width(), r.Height())
	p.dc.SetColor(p.fade(c))
	p.check("fill rect", p.dc.Fill())
}

func (p *ContextPainter) DrawTile(tile *tiled.Tile, dst gg.Rect, flip Flip) {
	if p.images == nil || tile == nil {
		return
	}

	key := flippedTile{tile, flip}
	buf, ok := p.tiles[key]
	if !ok {
		img, err := p.images.TileImage(tile)
		if err != nil {
			Logger().Warn("render: tile image unavailable", "tile", tile.GID(), "err", err)
		} else {
			buf = gg.ImageBufFromImage(flipImage(img, flip))
		}
		p.tiles[key] = buf
	}
	p.blit(buf, dst)
}

func (p *ContextPainter) DrawImage(img *tiled.Image, dst gg.Rect) {
	if p.images == nil || img == nil {
		return
	}

	buf, ok := p.layers[img]
	if !ok {
		src, err := p.images.LayerImage(img)
		if err != nil {
			Logger().Warn("render: layer image unavailable", "source", img.Source, "err", err)
		} else {
			buf = gg.ImageBufFromImage(src)
		}
		p.layers[img] = buf
	}
	p.blit(buf, dst)
}

func (p *ContextPainter) blit(buf *gg.ImageBuf, dst gg.Rect) {
	// A zero opacity means opaque to gg.
	if buf == nil || p.opacity <= 0 || rectEmpty(dst) {
		return
	}
	p.dc.DrawImageEx(buf, gg.DrawImageOptions{
		X:         dst.Min.X,
		Y:         dst.Min.Y,
		DstWidth:  dst.Width(),
		DstHeight: dst.Height(),
		Opacity:   p.opacity,
	})
}

// flipImage applies the flip flags of a cell to a tile image. The diagonal
// flip is applied first, as Tiled does.
func flipImage(img image.Image, f Flip) image.Image {
	if f.Has(FlipDiagonal) {
		img = imaging.FlipH(imaging.Rotate270(img))
	}
	if f.Has(FlipHorizontal) {
		img = imaging.FlipH(img)
	}
	if f.Has(FlipVertical) {
		img = imaging.FlipV(img)
	}
	return img
}
