package render

import (
	"fmt"
	"image"
	"image/color"
	"testing"

	tiled "github.com/Tsukumogami-Software/go-tiled-editor"
	"github.com/gogpu/gg"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var staggerConfigs = []struct {
	axis  tiled.StaggerAxis
	index tiled.StaggerIndex
}{
	{tiled.StaggerX, tiled.StaggerOdd},
	{tiled.StaggerX, tiled.StaggerEven},
	{tiled.StaggerY, tiled.StaggerOdd},
	{tiled.StaggerY, tiled.StaggerEven},
}

func configName(axis tiled.StaggerAxis, index tiled.StaggerIndex) string {
	return fmt.Sprintf("%s-%s", axis, index)
}

func TestHexagonalStaggeredColumn(t *testing.T) {
	r := NewHexagonalRenderer(hexMap(tiled.StaggerX, tiled.StaggerOdd, 4, 3, 32, 32, 8))

	p0 := r.TileToScreenCoords(0, 0)
	p1 := r.TileToScreenCoords(1, 0)
	assert.Equal(t, gg.Pt(0, 0), p0)
	assert.Equal(t, gg.Pt(20, 16), p1.Sub(p0))
	assert.Equal(t, gg.Pt(40, 0), r.TileToScreenCoords(2, 0))
	assert.Equal(t, gg.Pt(20, 48), r.TileToScreenCoords(1, 1))
}

func TestHexagonalMapSize(t *testing.T) {
	r := NewHexagonalRenderer(hexMap(tiled.StaggerX, tiled.StaggerOdd, 4, 3, 32, 32, 8))
	assert.Equal(t, image.Pt(92, 112), r.MapSize())

	r = NewHexagonalRenderer(hexMap(tiled.StaggerY, tiled.StaggerOdd, 3, 3, 32, 32, 8))
	assert.Equal(t, image.Pt(112, 72), r.MapSize())

	// A single row has no staggered overhang.
	r = NewHexagonalRenderer(hexMap(tiled.StaggerY, tiled.StaggerOdd, 3, 1, 32, 32, 8))
	assert.Equal(t, image.Pt(96, 32), r.MapSize())

	for _, c := range staggerConfigs {
		r := NewHexagonalRenderer(hexMap(c.axis, c.index, 5, 4, 32, 32, 8))
		assert.Equal(t, r.MapSize(), r.BoundingRect(r.Map().Bounds()).Size(), configName(c.axis, c.index))
		assert.Equal(t, image.Point{}, r.BoundingRect(r.Map().Bounds()).Min, configName(c.axis, c.index))
	}
}

func TestHexagonalBoundingRectStaggeredStart(t *testing.T) {
	r := NewHexagonalRenderer(hexMap(tiled.StaggerY, tiled.StaggerOdd, 5, 5, 32, 32, 8))

	// Row 1 is shifted right, so the region starting there grows to the left.
	got := r.BoundingRect(image.Rect(0, 1, 2, 3))
	assert.Equal(t, image.Rect(0, 20, 80, 72), got)

	got = r.BoundingRect(image.Rect(0, 1, 2, 2))
	assert.Equal(t, image.Rect(16, 20, 80, 52), got)
}

func TestHexagonalRoundTrip(t *testing.T) {
	for _, c := range staggerConfigs {
		for _, side := range []int{0, 8} {
			t.Run(fmt.Sprintf("%s-side%d", configName(c.axis, c.index), side), func(t *testing.T) {
				r := NewHexagonalRenderer(hexMap(c.axis, c.index, 5, 5, 32, 32, side))
				for y := 0; y < 5; y++ {
					for x := 0; x < 5; x++ {
						center := r.TileToScreenCoords(float64(x), float64(y)).Add(gg.Pt(16, 16))
						assert.Equal(t, gg.Pt(float64(x), float64(y)), r.ScreenToTileCoords(center.X, center.Y), "tile %d,%d", x, y)
						assert.True(t, polygonPath(r.TileToScreenPolygon(x, y), true).Contains(center), "tile %d,%d", x, y)
						assert.Equal(t, r.TileToScreenPolygon(x, y), r.TileRectToScreenPolygon(image.Rect(x, y, x+1, y+1)))
					}
				}
			})
		}
	}
}

func TestHexagonalNeighbors(t *testing.T) {
	for _, c := range staggerConfigs {
		t.Run(configName(c.axis, c.index), func(t *testing.T) {
			r := NewHexagonalRenderer(hexMap(c.axis, c.index, 6, 6, 32, 32, 8))
			p := r.params()
			cw, rh := float64(p.ColumnWidth), float64(p.RowHeight)

			neighbors := []struct {
				name   string
				fn     func(x, y int) image.Point
				offset gg.Point
			}{
				{"top-left", r.TopLeft, gg.Pt(-cw, -rh)},
				{"top-right", r.TopRight, gg.Pt(cw, -rh)},
				{"bottom-left", r.BottomLeft, gg.Pt(-cw, rh)},
				{"bottom-right", r.BottomRight, gg.Pt(cw, rh)},
			}

			for y := 1; y < 5; y++ {
				for x := 1; x < 5; x++ {
					pos := r.TileToScreenCoords(float64(x), float64(y))
					for _, n := range neighbors {
						nb := n.fn(x, y)
						got := r.TileToScreenCoords(float64(nb.X), float64(nb.Y)).Sub(pos)
						assert.Equal(t, n.offset, got, "%s of %d,%d", n.name, x, y)
					}
				}
			}
		})
	}
}

func TestHexagonalDrawGrid(t *testing.T) {
	r := NewHexagonalRenderer(hexMap(tiled.StaggerY, tiled.StaggerOdd, 1, 1, 32, 32, 8))
	rec := NewRecorder()
	r.DrawGrid(rec, Rect(0, 0, 100, 100), color.Black)

	// The top and bottom corners of a pointy hexagon are zero length sides.
	lines := rec.Lines()
	assert.Len(t, lines, 6)
	assertLinesWithin(t, lines, r.MapSize())

	cmds := rec.Filter(OpLines)
	require.Len(t, cmds, 1)
	assert.Equal(t, gridPen(color.Black), cmds[0].Pen)
}

func TestHexagonalDrawGridClampsToMap(t *testing.T) {
	for _, c := range staggerConfigs {
		t.Run(configName(c.axis, c.index), func(t *testing.T) {
			r := NewHexagonalRenderer(hexMap(c.axis, c.index, 3, 3, 32, 32, 8))
			rec := NewRecorder()
			r.DrawGrid(rec, Rect(-100, -100, 400, 400), color.Black)

			lines := rec.Lines()
			assert.NotEmpty(t, lines)
			assertLinesWithin(t, lines, r.MapSize())

			// Every tile edge is drawn exactly once.
			seen := map[gg.Line]bool{}
			for _, l := range lines {
				rev := gg.Line{P0: l.P1, P1: l.P0}
				assert.False(t, seen[l] || seen[rev], "duplicate edge %v", l)
				seen[l] = true
			}
		})
	}
}

func expectedHexTiles(r *HexagonalRenderer, l *tiled.TileLayer) []gg.Rect {
	p := r.params()
	var want []gg.Rect
	for y := 0; y < l.Height; y++ {
		for x := 0; x < l.Width; x++ {
			pos := hexTileToScreen(p, x+l.X, y+l.Y)
			want = append(want, Rect(float64(pos.X), float64(pos.Y), float64(p.TileWidth), float64(p.TileHeight)))
		}
	}
	return want
}

func TestHexagonalDrawTileLayer(t *testing.T) {
	for _, c := range staggerConfigs {
		t.Run(configName(c.axis, c.index), func(t *testing.T) {
			m := hexMap(c.axis, c.index, 3, 3, 32, 32, 8)
			ts := tiled.NewTileset("ts", 32, 32, 1)
			m.AddTileset(ts)
			r := NewHexagonalRenderer(m)
			l := filledLayer(m, ts.Tiles[0])

			rec := NewRecorder()
			r.DrawTileLayer(rec, l, gg.Rect{})

			if diff := cmp.Diff(expectedHexTiles(r, l), tileRects(rec), sortRects); diff != "" {
				t.Errorf("tiles mismatch (-want+got):\n%v", diff)
			}
		})
	}
}

func TestHexagonalDrawTileLayerOrder(t *testing.T) {
	m := hexMap(tiled.StaggerX, tiled.StaggerOdd, 3, 2, 32, 32, 8)
	ts := tiled.NewTileset("ts", 32, 32, 1)
	m.AddTileset(ts)
	r := NewHexagonalRenderer(m)

	rec := NewRecorder()
	r.DrawTileLayer(rec, filledLayer(m, ts.Tiles[0]), gg.Rect{})

	// Lower tiles overlap upper ones, so screen rows are drawn top down.
	got := tileRects(rec)
	require.Len(t, got, 6)
	for i := 1; i < len(got); i++ {
		assert.LessOrEqual(t, got[i-1].Min.Y, got[i].Min.Y)
	}
}

func TestHexagonalDrawTileSelection(t *testing.T) {
	r := NewHexagonalRenderer(hexMap(tiled.StaggerY, tiled.StaggerOdd, 4, 4, 32, 32, 8))
	c := color.NRGBA{255, 255, 0, 80}

	rec := NewRecorder()
	r.DrawTileSelection(rec, []image.Rectangle{image.Rect(0, 0, 2, 2), image.Rect(1, 1, 3, 2)}, c, gg.Rect{})

	polys := rec.Filter(OpPolygon)
	require.Len(t, polys, 5)
	for _, p := range polys {
		assert.Len(t, p.Points, 8)
		assert.Equal(t, c, p.Brush)
	}
	assert.Equal(t, r.TileToScreenPolygon(0, 0), polys[0].Points)

	rec.Reset()
	r.DrawTileSelection(rec, []image.Rectangle{image.Rect(0, 0, 2, 2)}, c, Rect(0, 0, 10, 10))
	assert.Len(t, rec.Filter(OpPolygon), 1)
}

func TestHexagonalDegenerate(t *testing.T) {
	r := NewHexagonalRenderer(hexMap(tiled.StaggerY, tiled.StaggerOdd, 3, 3, 0, 32, 8))
	ts := tiled.NewTileset("ts", 32, 32, 1)

	rec := NewRecorder()
	r.DrawGrid(rec, Rect(0, 0, 100, 100), color.Black)
	r.DrawTileLayer(rec, filledLayer(r.Map(), ts.Tiles[0]), gg.Rect{})
	assert.Empty(t, rec.Commands)
	assert.Equal(t, gg.Point{}, r.ScreenToTileCoords(50, 50))
}
