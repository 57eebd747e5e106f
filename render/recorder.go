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

// Op identifies a recorded painter call.
type Op int

const (
	OpLines Op = iota
	OpPolygon
	OpPolyline
	OpPath
	OpPoint
	OpFillRect
	OpTile
	OpImage
)

func (o Op) String() string {
	switch o {
	case OpLines:
		return "lines"
	case OpPolygon:
		return "polygon"
	case OpPolyline:
		return "polyline"
	case OpPath:
		return "path"
	case OpPoint:
		return "point"
	case OpFillRect:
		return "fill-rect"
	case OpTile:
		return "tile"
	case OpImage:
		return "image"
	}
	return "unknown"
}

// Command is a recorded painter call together with the pen, brush and
// opacity in effect.
type Command struct {
	Op      Op
	Pen     Pen
	Brush   color.Color
	Opacity float64

	Lines  []gg.Line
	Points []gg.Point
	Path   *gg.Path
	Rect   gg.Rect
	Color  color.Color
	Tile   *tiled.Tile
	Image  *tiled.Image
	Flip   Flip
}

// Recorder is a Painter that keeps every call instead of drawing.
type Recorder struct {
	Commands []Command

	pen     Pen
	brush   color.Color
	opacity float64
	scale   float64
}

// NewRecorder returns an empty recorder with a scale of 1.
func NewRecorder() *Recorder {
	return &Recorder{opacity: 1, scale: 1}
}

func (r *Recorder) SetPen(pen Pen)         { r.pen = pen }
func (r *Recorder) SetBrush(c color.Color) { r.brush = c }
func (r *Recorder) SetOpacity(o float64)   { r.opacity = o }
func (r *Recorder) Scale() float64         { return r.scale }

// SetScale sets the value returned by Scale.
func (r *Recorder) SetScale(s float64) {
	r.scale = s
}

// Reset drops the recorded commands.
func (r *Recorder) Reset() {
	r.Commands = r.Commands[:0]
}

func (r *Recorder) record(c Command) {
	c.Pen = r.pen
	c.Brush = r.brush
	c.Opacity = r.opacity
	r.Commands = append(r.Commands, c)
}

func (r *Recorder) DrawLines(lines []gg.Line) {
	r.record(Command{Op: OpLines, Lines: append([]gg.Line(nil), lines...)})
}

func (r *Recorder) DrawPolygon(points []gg.Point) {
	r.record(Command{Op: OpPolygon, Points: append([]gg.Point(nil), points...)})
}

func (r *Recorder) DrawPolyline(points []gg.Point) {
	r.record(Command{Op: OpPolyline, Points: append([]gg.Point(nil), points...)})
}

func (r *Recorder) DrawPath(path *gg.Path) {
	r.record(Command{Op: OpPath, Path: path})
}

func (r *Recorder) DrawPoint(p gg.Point) {
	r.record(Command{Op: OpPoint, Points: []gg.Point{p}})
}

func (r *Recorder) FillRect(rect gg.Rect, c color.Color) {
	r.record(Command{Op: OpFillRect, Rect: rect, Color: c})
}

func (r *Recorder) DrawTile(tile *tiled.Tile, dst gg.Rect, flip Flip) {
	r.record(Command{Op: OpTile, Tile: tile, Rect: dst, Flip: flip})
}

func (r *Recorder) DrawImage(img *tiled.Image, dst gg.Rect) {
	r.record(Command{Op: OpImage, Image: img, Rect: dst})
}

// Filter returns the recorded commands of the given op.
func (r *Recorder) Filter(op Op) []Command {
	var res []Command
	for _, c := range r.Commands {
		if c.Op == op {
			res = append(res, c)
		}
	}
	return res
}

// Lines returns every line of the recorded line commands.
func (r *Recorder) Lines() []gg.Line {
	var res []gg.Line
	for _, c := range r.Filter(OpLines) {
		res = append(res, c.Lines...)
	}
	return res
}
