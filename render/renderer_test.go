package render

import (
	"bytes"
	"image"
	"image/color"
	"image/gif"
	"image/jpeg"
	"image/png"
	"testing"

	tiled "github.com/Tsukumogami-Software/go-tiled-editor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var paper = color.NRGBA{255, 255, 255, 255}

// stripMap returns a 2x1 orthogonal map whose tile layer shows a red and a
// blue tile, together with the image cache holding the tiles.
func stripMap() (*tiled.Map, *TilesetCache) {
	m := tiled.NewMap(tiled.Orthogonal, 2, 1, 16, 16)
	ts := tiled.NewTileset("strip", 16, 16, 2)
	ts.Columns = 2
	m.AddTileset(ts)

	cache := NewTilesetCache(nil)
	cache.AddTilesetImage(ts, stripImage(red, blue))

	l := tiled.NewTileLayer("ground", 2, 1)
	l.SetCell(0, 0, tiled.Cell{Tile: ts.Tiles[0]})
	l.SetCell(1, 0, tiled.Cell{Tile: ts.Tiles[1]})
	m.AddLayer(l)
	return m, cache
}

func newStripRenderer(t *testing.T, m *tiled.Map, cache *TilesetCache) *Renderer {
	t.Helper()
	r, err := NewRenderer(m, WithTilesetCache(cache), WithBackground(paper))
	require.NoError(t, err)
	t.Cleanup(func() { _ = r.Close() })
	return r
}

// assertMostly checks that the pixel is close to the expected color,
// allowing for filtering at tile edges.
func assertMostly(t *testing.T, want color.NRGBA, img image.Image, x, y int) {
	t.Helper()
	got := nrgbaAt(img, x, y)
	assert.InDelta(t, float64(want.R), float64(got.R), 40, "pixel %d,%d: %v", x, y, got)
	assert.InDelta(t, float64(want.G), float64(got.G), 40, "pixel %d,%d: %v", x, y, got)
	assert.InDelta(t, float64(want.B), float64(got.B), 40, "pixel %d,%d: %v", x, y, got)
}

func TestNewRendererErrors(t *testing.T) {
	_, err := NewRenderer(tiled.NewMap(tiled.Orientation(9), 2, 2, 16, 16))
	assert.ErrorIs(t, err, ErrUnsupportedOrientation)

	_, err = NewRenderer(tiled.NewMap(tiled.Orthogonal, 0, 2, 16, 16))
	assert.ErrorIs(t, err, ErrEmptyMap)

	_, err = NewRenderer(tiled.NewMap(tiled.Isometric, 2, 2, 0, 16))
	assert.ErrorIs(t, err, ErrEmptyMap)
}

func TestRendererOptions(t *testing.T) {
	m, cache := stripMap()
	r, err := NewRenderer(m,
		WithTilesetCache(cache),
		WithObjectColor(color.Black),
		WithObjectLineWidth(2),
		WithFlags(ShowTileObjectOutlines),
	)
	require.NoError(t, err)
	defer r.Close()

	assert.Same(t, cache, r.TilesetCache())
	assert.Equal(t, color.Black, r.objectColor)
	assert.Equal(t, 2.0, r.MapRenderer().ObjectLineWidth())
	assert.True(t, r.MapRenderer().TestFlag(ShowTileObjectOutlines))
	assert.Equal(t, image.Pt(32, 16), r.Image().Bounds().Size())
}

func TestRendererOutOfBounds(t *testing.T) {
	m, cache := stripMap()
	r := newStripRenderer(t, m, cache)

	assert.ErrorIs(t, r.RenderLayer(1), ErrOutOfBounds)
	assert.ErrorIs(t, r.RenderLayer(-1), ErrOutOfBounds)
	assert.ErrorIs(t, r.RenderGroup(0), ErrOutOfBounds)
	assert.ErrorIs(t, r.RenderGroupLayer(0, 0), ErrOutOfBounds)
	assert.ErrorIs(t, r.RenderObjectGroup(0), ErrOutOfBounds)

	m.AddLayer(&tiled.Group{Name: "empty", Visible: true})
	assert.ErrorIs(t, r.RenderGroupLayer(0, 0), ErrOutOfBounds)
	assert.NoError(t, r.RenderGroup(0))
}

func TestRendererTiles(t *testing.T) {
	m, cache := stripMap()
	r := newStripRenderer(t, m, cache)

	assertMostly(t, paper, r.Image(), 8, 8)

	require.NoError(t, r.RenderVisibleLayers())
	img := r.Image()
	assertMostly(t, red, img, 8, 8)
	assertMostly(t, blue, img, 24, 8)

	require.NoError(t, r.Clear())
	assertMostly(t, paper, r.Image(), 8, 8)

	// Hidden layers are skipped.
	m.Layers[0].(*tiled.TileLayer).Visible = false
	require.NoError(t, r.RenderVisibleLayers())
	assertMostly(t, paper, r.Image(), 8, 8)
}

func TestRendererLayerOpacity(t *testing.T) {
	m, cache := stripMap()
	m.Layers[0].(*tiled.TileLayer).Opacity = 0.5
	r := newStripRenderer(t, m, cache)

	require.NoError(t, r.RenderLayer(0))
	got := nrgbaAt(r.Image(), 8, 8)
	assert.Greater(t, got.R, uint8(200))
	assert.InDelta(t, 128, float64(got.G), 40)
}

func TestRendererGroups(t *testing.T) {
	m, cache := stripMap()
	ground := m.Layers[0]
	m.Layers = []tiled.Layer{&tiled.Group{
		Name:    "world",
		Visible: true,
		Layers: []tiled.Layer{ground, &tiled.ObjectGroup{
			Name:    "things",
			Visible: true,
			Opacity: 1,
			Objects: []*tiled.Object{
				{ID: 1, X: 2, Y: 2, Width: 4, Height: 4, Visible: true, Rotation: 45},
			},
		}},
	}}
	r := newStripRenderer(t, m, cache)

	require.NoError(t, r.RenderVisibleGroups())
	assertMostly(t, blue, r.Image(), 24, 8)

	require.NoError(t, r.Clear())
	require.NoError(t, r.RenderGroupLayer(0, 0))
	assertMostly(t, red, r.Image(), 8, 8)

	require.NoError(t, r.RenderVisibleObjectGroups())
	require.NoError(t, r.RenderObjectGroup(0))
}

func TestRendererObjectOrderUnchanged(t *testing.T) {
	m, cache := stripMap()
	low := &tiled.Object{ID: 1, X: 2, Y: 12, Width: 2, Height: 2, Visible: true}
	high := &tiled.Object{ID: 2, X: 20, Y: 2, Width: 2, Height: 2, Visible: true}
	group := &tiled.ObjectGroup{Name: "objects", Visible: true, Opacity: 1, Objects: []*tiled.Object{low, high}}
	m.AddLayer(group)
	r := newStripRenderer(t, m, cache)

	require.NoError(t, r.RenderObjectGroup(0))
	assert.Equal(t, []*tiled.Object{low, high}, group.Objects)
}

func TestRendererSelectionAndGrid(t *testing.T) {
	m, cache := stripMap()
	r := newStripRenderer(t, m, cache)

	r.RenderSelection([]image.Rectangle{image.Rect(1, 0, 2, 1)}, color.NRGBA{0, 255, 0, 255})
	assertMostly(t, paper, r.Image(), 8, 8)
	assertMostly(t, color.NRGBA{0, 255, 0, 255}, r.Image(), 24, 8)

	r.RenderGrid(color.Black)
	assertMostly(t, paper, r.Image(), 8, 8)
}

func TestRendererSave(t *testing.T) {
	m, cache := stripMap()
	r := newStripRenderer(t, m, cache)
	require.NoError(t, r.RenderVisibleLayers())

	var buf bytes.Buffer
	require.NoError(t, r.SaveAsPng(&buf))
	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, image.Pt(32, 16), img.Bounds().Size())
	assertMostly(t, red, img, 8, 8)

	buf.Reset()
	require.NoError(t, r.SaveAsJpeg(&buf, &jpeg.Options{Quality: 90}))
	img, err = jpeg.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, image.Pt(32, 16), img.Bounds().Size())

	buf.Reset()
	require.NoError(t, r.SaveAsGif(&buf, nil))
	img, err = gif.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, image.Pt(32, 16), img.Bounds().Size())
}
