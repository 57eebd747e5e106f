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

// Point is a position in pixel space.
type Point struct {
	X float64
	Y float64
}

// ObjectShape is the geometric shape of a map object.
type ObjectShape int

const (
	ShapeRectangle ObjectShape = iota
	ShapeEllipse
	ShapePolygon
	ShapePolyline
)

func (s ObjectShape) String() string {
	switch s {
	case ShapeEllipse:
		return "ellipse"
	case ShapePolygon:
		return "polygon"
	case ShapePolyline:
		return "polyline"
	}
	return "rectangle"
}

// Object is a map object in pixel space. For tile objects (non-empty Cell)
// X,Y is the bottom-left corner of the tile image; otherwise it is the
// top-left corner of the shape.
type Object struct {
	ID       uint32
	Name     string
	Type     string
	X, Y     float64
	Width    float64
	Height   float64
	Rotation float64
	Visible  bool
	Shape    ObjectShape
	// Points of polygons and polylines, relative to X,Y.
	Points []Point
	Cell   Cell
}

// Position returns the object position.
func (o *Object) Position() Point {
	return Point{X: o.X, Y: o.Y}
}

// IsTileObject reports whether the object stamps a tile.
func (o *Object) IsTileObject() bool {
	return !o.Cell.IsEmpty()
}

// Bounds returns x, y, width and height of the object in pixel space.
func (o *Object) Bounds() (x, y, w, h float64) {
	return o.X, o.Y, o.Width, o.Height
}

// AbsolutePoints returns the polygon points translated by the object position.
func (o *Object) AbsolutePoints() []Point {
	res := make([]Point, len(o.Points))
	for i, p := range o.Points {
		res[i] = Point{X: p.X + o.X, Y: p.Y + o.Y}
	}
	return res
}

// ObjectGroup is a layer of map objects.
type ObjectGroup struct {
	Name    string
	Objects []*Object
	Visible bool
	Opacity float32
	// DrawOrder is "topdown" (sorted by Y) or "index".
	DrawOrder string
}

func (g *ObjectGroup) LayerName() string { return g.Name }
func (g *ObjectGroup) IsVisible() bool   { return g.Visible }
func (*ObjectGroup) isLayer()            {}
