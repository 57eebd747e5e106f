package render

import (
	"image"
	"image/color"
	"testing"

	tiled "github.com/Tsukumogami-Software/go-tiled-editor"
	"github.com/gogpu/gg"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStaggered(axis tiled.StaggerAxis, index tiled.StaggerIndex, w, h int) *StaggeredRenderer {
	m := tiled.NewMap(tiled.Staggered, w, h, 64, 32)
	m.StaggerAxis = axis
	m.StaggerIndex = index
	return NewStaggeredRenderer(m)
}

func TestStaggeredCoordinates(t *testing.T) {
	r := newStaggered(tiled.StaggerY, tiled.StaggerOdd, 3, 3)

	assert.Equal(t, gg.Pt(0, 0), r.TileToScreenCoords(0, 0))
	assert.Equal(t, gg.Pt(64, 0), r.TileToScreenCoords(1, 0))
	assert.Equal(t, gg.Pt(96, 16), r.TileToScreenCoords(1, 1))
	assert.Equal(t, gg.Pt(0, 32), r.TileToScreenCoords(0, 2))

	// Pixel space is screen space.
	assert.Equal(t, r.TileToScreenCoords(2, 1), r.TileToPixelCoords(2, 1))
	assert.Equal(t, r.ScreenToTileCoords(100, 20), r.PixelToTileCoords(100, 20))
}

func TestStaggeredScreenToTileCorners(t *testing.T) {
	r := newStaggered(tiled.StaggerY, tiled.StaggerOdd, 3, 3)

	// The corners of a tile rectangle belong to the shifted rows around it.
	assert.Equal(t, gg.Pt(-1, -1), r.ScreenToTileCoords(2, 2))
	assert.Equal(t, gg.Pt(0, -1), r.ScreenToTileCoords(62, 2))
	assert.Equal(t, gg.Pt(-1, 1), r.ScreenToTileCoords(2, 30))
	assert.Equal(t, gg.Pt(0, 1), r.ScreenToTileCoords(62, 30))
	assert.Equal(t, gg.Pt(0, 0), r.ScreenToTileCoords(32, 16))
}

func TestStaggeredMapSize(t *testing.T) {
	assert.Equal(t, image.Pt(224, 64), newStaggered(tiled.StaggerY, tiled.StaggerOdd, 3, 3).MapSize())
	assert.Equal(t, image.Pt(128, 112), newStaggered(tiled.StaggerX, tiled.StaggerOdd, 3, 3).MapSize())

	for _, c := range staggerConfigs {
		r := newStaggered(c.axis, c.index, 4, 5)
		assert.Equal(t, image.Rectangle{Max: r.MapSize()}, r.BoundingRect(r.Map().Bounds()), configName(c.axis, c.index))
	}
}

func TestStaggeredRoundTrip(t *testing.T) {
	for _, c := range staggerConfigs {
		t.Run(configName(c.axis, c.index), func(t *testing.T) {
			r := newStaggered(c.axis, c.index, 5, 5)
			for y := 0; y < 5; y++ {
				for x := 0; x < 5; x++ {
					center := r.TileToScreenCoords(float64(x), float64(y)).Add(gg.Pt(32, 16))
					assert.Equal(t, gg.Pt(float64(x), float64(y)), r.ScreenToTileCoords(center.X, center.Y), "tile %d,%d", x, y)
					assert.True(t, polygonPath(r.TileToScreenPolygon(x, y), true).Contains(center), "tile %d,%d", x, y)
				}
			}
		})
	}
}

func TestStaggeredTilePolygon(t *testing.T) {
	r := newStaggered(tiled.StaggerY, tiled.StaggerOdd, 3, 3)

	poly := r.TileToScreenPolygon(1, 1)
	require.Len(t, poly, 8)
	assert.Equal(t, Rect(96, 16, 64, 32), polygonBounds(poly))
	assert.Contains(t, poly, gg.Pt(128, 16))
	assert.Contains(t, poly, gg.Pt(96, 32))
	assert.Contains(t, poly, gg.Pt(160, 32))
	assert.Contains(t, poly, gg.Pt(128, 48))
}

func TestStaggeredDrawTileLayer(t *testing.T) {
	r := newStaggered(tiled.StaggerY, tiled.StaggerOdd, 3, 3)
	ts := tiled.NewTileset("ts", 64, 32, 1)
	r.Map().AddTileset(ts)
	l := filledLayer(r.Map(), ts.Tiles[0])

	rec := NewRecorder()
	r.DrawTileLayer(rec, l, gg.Rect{})

	var want []gg.Rect
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			pos := r.TileToScreenCoords(float64(x), float64(y))
			want = append(want, Rect(pos.X, pos.Y, 64, 32))
		}
	}
	if diff := cmp.Diff(want, tileRects(rec), sortRects); diff != "" {
		t.Errorf("tiles mismatch (-want+got):\n%v", diff)
	}
}

func TestStaggeredDrawGrid(t *testing.T) {
	r := newStaggered(tiled.StaggerY, tiled.StaggerOdd, 3, 3)
	rec := NewRecorder()
	r.DrawGrid(rec, Rect(-100, -100, 500, 500), color.Black)

	lines := rec.Lines()
	assert.NotEmpty(t, lines)
	assertLinesWithin(t, lines, r.MapSize())
}
