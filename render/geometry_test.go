package render

import (
	"image"
	"testing"

	"github.com/gogpu/gg"
	"github.com/stretchr/testify/assert"
)

func TestRectHelpers(t *testing.T) {
	assert.True(t, rectEmpty(gg.Rect{}))
	assert.True(t, rectEmpty(Rect(0, 0, 10, 0)))
	assert.False(t, rectEmpty(Rect(0, 0, 1, 1)))

	a := Rect(0, 0, 10, 10)
	assert.True(t, rectIntersects(a, Rect(5, 5, 10, 10)))
	assert.False(t, rectIntersects(a, Rect(10, 0, 5, 5)), "touching edges")
	assert.False(t, rectIntersects(a, gg.Rect{}))

	assert.Equal(t, Rect(5, 5, 5, 5), rectIntersect(a, Rect(5, 5, 10, 10)))
	assert.Equal(t, gg.Rect{}, rectIntersect(a, Rect(20, 20, 1, 1)))

	assert.Equal(t, Rect(-1, -2, 14, 17), rectAdjust(a, -1, -2, 3, 5))
	assert.Equal(t, image.Rect(0, 1, 3, 4), alignedRect(Rect(0.5, 1.2, 2, 2)))
	assert.Equal(t, image.Rectangle{}, alignedRect(gg.Rect{}))
}

func TestPointHelpers(t *testing.T) {
	assert.Equal(t, image.Pt(-1, 2), floorPoint(gg.Pt(-0.5, 2.9)))
	assert.Equal(t, image.Pt(0, 3), roundPoint(gg.Pt(-0.4, 2.5)))
	assert.Equal(t, gg.Pt(3, -4), toPoint(image.Pt(3, -4)))
}

func TestPolygonBounds(t *testing.T) {
	assert.Equal(t, gg.Rect{}, polygonBounds(nil))
	got := polygonBounds([]gg.Point{{X: 3, Y: 1}, {X: -2, Y: 5}, {X: 4, Y: -1}})
	assert.Equal(t, gg.Rect{Min: gg.Pt(-2, -1), Max: gg.Pt(4, 5)}, got)

	moved := translatePolygon([]gg.Point{{X: 1, Y: 1}}, gg.Pt(2, 3))
	assert.Equal(t, []gg.Point{{X: 3, Y: 4}}, moved)
}

func TestLineToPolygon(t *testing.T) {
	poly := lineToPolygon(gg.Pt(0, 0), gg.Pt(10, 0))
	assert.Len(t, poly, 4)
	assert.Equal(t, Rect(-2, -2, 14, 4), polygonBounds(poly))

	path := polygonPath(poly, true)
	assert.True(t, path.Contains(gg.Pt(5, 1)))
	assert.False(t, path.Contains(gg.Pt(5, 3)))

	// A zero length segment still has an area to hit.
	dot := polygonPath(lineToPolygon(gg.Pt(5, 5), gg.Pt(5, 5)), true)
	assert.True(t, dot.Contains(gg.Pt(5, 5)))
}

func TestQuadEllipseTransform(t *testing.T) {
	quad := []gg.Point{{X: 10, Y: 5}, {X: 30, Y: 5}, {X: 30, Y: 45}, {X: 10, Y: 45}}
	m := quadEllipseTransform(quad)

	ptEqual(t, gg.Pt(10, 5), m.TransformPoint(gg.Pt(0, 0)))
	ptEqual(t, gg.Pt(30, 45), m.TransformPoint(gg.Pt(1, 1)))
	ptEqual(t, gg.Pt(20, 25), m.TransformPoint(gg.Pt(0.5, 0.5)))

	path := unitEllipse().Transform(m)
	assert.True(t, path.Contains(gg.Pt(20, 25)))
	assert.False(t, path.Contains(gg.Pt(11, 6)))
}
