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
	"sync"

	tiled "github.com/Tsukumogami-Software/go-tiled-editor"
	"github.com/gogpu/gg"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	whiteOnce     sync.Once
	whiteSubImage *ebiten.Image
)

// white returns a one pixel white source image for triangle fills.
func white() *ebiten.Image {
	whiteOnce.Do(func() {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		whiteSubImage = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	})
	return whiteSubImage
}

// ImagePainter paints onto an ebiten image, typically the screen of a game.
// The view transform maps screen coordinates to device pixels.
type ImagePainter struct {
	dst    *ebiten.Image
	images TileImageSource
	view   ebiten.GeoM

	pen     Pen
	brush   color.Color
	opacity float64

	tiles  map[*tiled.Tile]*ebiten.Image
	layers map[*tiled.Image]*ebiten.Image
}

// NewImagePainter returns a painter drawing onto dst.
func NewImagePainter(dst *ebiten.Image, images TileImageSource) *ImagePainter {
	return &ImagePainter{
		dst:     dst,
		images:  images,
		opacity: 1,
		tiles:   map[*tiled.Tile]*ebiten.Image{},
		layers:  map[*tiled.Image]*ebiten.Image{},
	}
}

// SetTarget changes the destination image, keeping the image caches.
func (p *ImagePainter) SetTarget(dst *ebiten.Image) {
	p.dst = dst
}

// SetView sets the screen to device transform.
func (p *ImagePainter) SetView(view ebiten.GeoM) {
	p.view = view
}

func (p *ImagePainter) SetPen(pen Pen)         { p.pen = pen }
func (p *ImagePainter) SetBrush(c color.Color) { p.brush = c }
func (p *ImagePainter) SetOpacity(o float64)   { p.opacity = min(max(o, 0), 1) }

func (p *ImagePainter) Scale() float64 {
	if s := math.Hypot(p.view.Element(0, 0), p.view.Element(1, 0)); s > 0 {
		return s
	}
	return 1
}

func (p *ImagePainter) device(pt gg.Point) gg.Point {
	x, y := p.view.Apply(pt.X, pt.Y)
	return gg.Pt(x, y)
}

func (p *ImagePainter) fade(c color.Color) color.NRGBA {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	n.A = uint8(math.Round(float64(n.A) * p.opacity))
	return n
}

// penWidth returns the pen width in device pixels.
func (p *ImagePainter) penWidth() float64 {
	switch {
	case p.pen.Width <= 0:
		return 1
	case p.pen.Cosmetic:
		return p.pen.Width
	}
	return p.pen.Width * p.Scale()
}

// strokeLines strokes device space lines with the current pen, splitting
// them into dashes.
func (p *ImagePainter) strokeLines(lines []gg.Line) {
	if p.pen.Color == nil {
		return
	}
	c := p.fade(p.pen.Color)
	width := p.penWidth()

	var pattern []float64
	for _, d := range p.pen.Dashes {
		pattern = append(pattern, d*width)
	}
	offset := p.pen.DashOffset * width

	for _, l := range lines {
		for _, d := range dashLine(l, pattern, offset) {
			vector.StrokeLine(p.dst,
				float32(d.P0.X), float32(d.P0.Y), float32(d.P1.X), float32(d.P1.Y),
				float32(width), c, true)
		}
	}
}

func (p *ImagePainter) outline(points []gg.Point, closed bool) []gg.Line {
	var lines []gg.Line
	for i := 1; i < len(points); i++ {
		lines = append(lines, gg.Line{P0: p.device(points[i-1]), P1: p.device(points[i])})
	}
	if closed && len(points) > 2 {
		lines = append(lines, gg.Line{P0: p.device(points[len(points)-1]), P1: p.device(points[0])})
	}
	return lines
}

func (p *ImagePainter) DrawLines(lines []gg.Line) {
	dev := make([]gg.Line, len(lines))
	for i, l := range lines {
		dev[i] = gg.Line{P0: p.device(l.P0), P1: p.device(l.P1)}
	}
	p.strokeLines(dev)
}

func (p *ImagePainter) DrawPolygon(points []gg.Point) {
	if len(points) < 2 {
		return
	}
	if p.brush != nil && len(points) > 2 {
		var path vector.Path
		dp := p.device(points[0])
		path.MoveTo(float32(dp.X), float32(dp.Y))
		for _, pt := range points[1:] {
			dp = p.device(pt)
			path.LineTo(float32(dp.X), float32(dp.Y))
		}
		path.Close()
		p.fillPath(&path, p.fade(p.brush))
	}
	p.strokeLines(p.outline(points, true))
}

func (p *ImagePainter) DrawPolyline(points []gg.Point) {
	p.strokeLines(p.outline(points, false))
}

func (p *ImagePainter) DrawPath(path *gg.Path) {
	if path == nil {
		return
	}

	var vp vector.Path
	for _, e := range path.Elements() {
		switch e := e.(type) {
		case gg.MoveTo:
			d := p.device(e.Point)
			vp.MoveTo(float32(d.X), float32(d.Y))
		case gg.LineTo:
			d := p.device(e.Point)
			vp.LineTo(float32(d.X), float32(d.Y))
		case gg.QuadTo:
			c, d := p.device(e.Control), p.device(e.Point)
			vp.QuadTo(float32(c.X), float32(c.Y), float32(d.X), float32(d.Y))
		case gg.CubicTo:
			c1, c2, d := p.device(e.Control1), p.device(e.Control2), p.device(e.Point)
			vp.CubicTo(float32(c1.X), float32(c1.Y), float32(c2.X), float32(c2.Y), float32(d.X), float32(d.Y))
		case gg.Close:
			vp.Close()
		}
	}

	if p.brush != nil {
		p.fillPath(&vp, p.fade(p.brush))
	}
	if p.pen.Color != nil {
		vs, is := vp.AppendVerticesAndIndicesForStroke(nil, nil, &vector.StrokeOptions{
			Width:    float32(p.penWidth()),
			LineJoin: vector.LineJoinRound,
		})
		p.drawTriangles(vs, is, p.fade(p.pen.Color))
	}
}

func (p *ImagePainter) fillPath(path *vector.Path, c color.NRGBA) {
	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	p.drawTriangles(vs, is, c)
}

func (p *ImagePainter) drawTriangles(vs []ebiten.Vertex, is []uint16, c color.NRGBA) {
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = float32(c.R) / 0xff
		vs[i].ColorG = float32(c.G) / 0xff
		vs[i].ColorB = float32(c.B) / 0xff
		vs[i].ColorA = float32(c.A) / 0xff
	}
	p.dst.DrawTriangles(vs, is, white(), &ebiten.DrawTrianglesOptions{
		FillRule:  ebiten.FillRuleNonZero,
		AntiAlias: true,
	})
}

func (p *ImagePainter) DrawPoint(pt gg.Point) {
	if p.pen.Color == nil {
		return
	}
	d := p.device(pt)
	vector.DrawFilledCircle(p.dst, float32(d.X), float32(d.Y), float32(p.penWidth()/2), p.fade(p.pen.Color), true)
}

func (p *ImagePainter) FillRect(r gg.Rect, c color.Color) {
	if rectEmpty(r) || c == nil {
		return
	}
	var path vector.Path
	for i, pt := range rectPolygon(r) {
		d := p.device(pt)
		if i == 0 {
			path.MoveTo(float32(d.X), float32(d.Y))
		} else {
			path.LineTo(float32(d.X), float32(d.Y))
		}
	}
	path.Close()
	p.fillPath(&path, p.fade(c))
}

func (p *ImagePainter) DrawTile(tile *tiled.Tile, dst gg.Rect, flip Flip) {
	if p.images == nil || tile == nil {
		return
	}

	img, ok := p.tiles[tile]
	if !ok {
		src, err := p.images.TileImage(tile)
		if err != nil {
			Logger().Warn("render: tile image unavailable", "tile", tile.GID(), "err", err)
		} else {
			img = ebiten.NewImageFromImage(src)
		}
		p.tiles[tile] = img
	}
	p.blit(img, dst, flip)
}

func (p *ImagePainter) DrawImage(img *tiled.Image, dst gg.Rect) {
	if p.images == nil || img == nil {
		return
	}

	eimg, ok := p.layers[img]
	if !ok {
		src, err := p.images.LayerImage(img)
		if err != nil {
			Logger().Warn("render: layer image unavailable", "source", img.Source, "err", err)
		} else {
			eimg = ebiten.NewImageFromImage(src)
		}
		p.layers[img] = eimg
	}
	p.blit(eimg, dst, 0)
}

func (p *ImagePainter) blit(img *ebiten.Image, dst gg.Rect, flip Flip) {
	if img == nil || rectEmpty(dst) {
		return
	}

	size := img.Bounds().Size()
	w, h := float64(size.X), float64(size.Y)
	if flip.Has(FlipDiagonal) {
		w, h = h, w
	}

	geoM := flipGeoM(float64(size.X), float64(size.Y), flip)
	geoM.Scale(dst.Width()/w, dst.Height()/h)
	geoM.Translate(dst.Min.X, dst.Min.Y)
	geoM.Concat(p.view)

	op := &ebiten.DrawImageOptions{GeoM: geoM}
	op.ColorScale.ScaleAlpha(float32(p.opacity))
	p.dst.DrawImage(img, op)
}

// flipGeoM returns the transform flipping a w x h image in place. The
// diagonal flip is applied first and swaps the image dimensions.
func flipGeoM(w, h float64, f Flip) ebiten.GeoM {
	var g ebiten.GeoM
	if f.Has(FlipDiagonal) {
		g.SetElement(0, 0, 0)
		g.SetElement(0, 1, 1)
		g.SetElement(1, 0, 1)
		g.SetElement(1, 1, 0)
		w, h = h, w
	}
	if f.Has(FlipHorizontal) {
		g.Scale(-1, 1)
		g.Translate(w, 0)
	}
	if f.Has(FlipVertical) {
		g.Scale(1, -1)
		g.Translate(0, h)
	}
	return g
}

// dashLine splits l into the "on" segments of a dash pattern of alternating
// dash and gap lengths, starting offset into the pattern.
func dashLine(l gg.Line, pattern []float64, offset float64) []gg.Line {
	var total float64
	for _, d := range pattern {
		total += max(d, 0)
	}
	if total <= 0 {
		return []gg.Line{l}
	}

	length := math.Hypot(l.P1.X-l.P0.X, l.P1.Y-l.P0.Y)
	if length == 0 {
		return nil
	}
	dir := l.P1.Sub(l.P0).Mul(1 / length)

	phase := math.Mod(offset, total)
	if phase < 0 {
		phase += total
	}
	i := 0
	for phase >= max(pattern[i], 0) {
		phase -= max(pattern[i], 0)
		i = (i + 1) % len(pattern)
	}

	var res []gg.Line
	for pos := 0.0; pos < length; {
		seg := min(max(pattern[i], 0)-phase, length-pos)
		if i%2 == 0 && seg > 0 {
			res = append(res, gg.Line{P0: l.P0.Add(dir.Mul(pos)), P1: l.P0.Add(dir.Mul(pos + seg))})
		}
		pos += seg
		phase = 0
		i = (i + 1) % len(pattern)
	}
	return res
}
