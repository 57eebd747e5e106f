package render

import (
	"image"
	"testing"

	tiled "github.com/Tsukumogami-Software/go-tiled-editor"
	"github.com/gogpu/gg"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
)

// filledLayer returns a layer of the map size with every cell set to tile.
func filledLayer(m *tiled.Map, tile *tiled.Tile) *tiled.TileLayer {
	l := tiled.NewTileLayer("layer", m.Width, m.Height)
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			l.SetCell(x, y, tiled.Cell{Tile: tile})
		}
	}
	return l
}

// tileRects returns the destination rectangles of the recorded tiles.
func tileRects(rec *Recorder) []gg.Rect {
	var res []gg.Rect
	for _, c := range rec.Filter(OpTile) {
		res = append(res, c.Rect)
	}
	return res
}

// assertLinesWithin fails when a line endpoint is outside bounds.
func assertLinesWithin(t *testing.T, lines []gg.Line, bounds image.Point) {
	t.Helper()
	for _, l := range lines {
		for _, p := range []gg.Point{l.P0, l.P1} {
			assert.GreaterOrEqual(t, p.X, 0.0, "line %v", l)
			assert.GreaterOrEqual(t, p.Y, 0.0, "line %v", l)
			assert.LessOrEqual(t, p.X, float64(bounds.X), "line %v", l)
			assert.LessOrEqual(t, p.Y, float64(bounds.Y), "line %v", l)
		}
	}
}

func ptEqual(t *testing.T, want, got gg.Point, msgAndArgs ...any) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, 1e-9, msgAndArgs...)
	assert.InDelta(t, want.Y, got.Y, 1e-9, msgAndArgs...)
}

// sortRects orders rectangles top to bottom, then left to right.
var sortRects = cmpopts.SortSlices(func(a, b gg.Rect) bool {
	if a.Min.Y != b.Min.Y {
		return a.Min.Y < b.Min.Y
	}
	return a.Min.X < b.Min.X
})
