package tiled

import (
	"image"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOrientation(t *testing.T) {
	for _, o := range []Orientation{Orthogonal, Isometric, Staggered, Hexagonal} {
		got, err := ParseOrientation(o.String())
		require.NoError(t, err)
		assert.Equal(t, o, got)
	}

	got, err := ParseOrientation("Isometric")
	require.NoError(t, err)
	assert.Equal(t, Isometric, got)

	_, err = ParseOrientation("hexagon")
	assert.ErrorIs(t, err, ErrInvalidOrientation)
	assert.Equal(t, "Orientation(9)", Orientation(9).String())
}

func TestParseRenderOrder(t *testing.T) {
	tests := []struct {
		in   string
		want RenderOrder
	}{
		{"", RightDown},
		{"right-down", RightDown},
		{"right-up", RightUp},
		{"left-down", LeftDown},
		{"LEFT-UP", LeftUp},
	}
	for _, tt := range tests {
		got, err := ParseRenderOrder(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := ParseRenderOrder("down-right")
	assert.ErrorIs(t, err, ErrInvalidRenderOrder)
}

func TestParseStagger(t *testing.T) {
	axis, err := ParseStaggerAxis("x")
	require.NoError(t, err)
	assert.Equal(t, StaggerX, axis)

	axis, err = ParseStaggerAxis("")
	require.NoError(t, err)
	assert.Equal(t, StaggerY, axis)

	_, err = ParseStaggerAxis("z")
	assert.ErrorIs(t, err, ErrInvalidStaggerAxis)

	index, err := ParseStaggerIndex("even")
	require.NoError(t, err)
	assert.Equal(t, StaggerEven, index)
	assert.Equal(t, "odd", StaggerOdd.String())

	_, err = ParseStaggerIndex("both")
	assert.ErrorIs(t, err, ErrInvalidStaggerIndex)
}

func newTestMap() (*Map, *Tileset, *Tileset) {
	m := NewMap(Orthogonal, 4, 3, 32, 32)
	a := NewTileset("a", 32, 32, 4)
	b := NewTileset("b", 64, 48, 2)
	m.AddTileset(a)
	m.AddTileset(b)
	return m, a, b
}

func TestAddTilesetAssignsFirstGID(t *testing.T) {
	_, a, b := newTestMap()
	assert.Equal(t, uint32(1), a.FirstGID)
	assert.Equal(t, uint32(5), b.FirstGID)
}

func TestDecodeGID(t *testing.T) {
	m, a, b := newTestMap()

	cell, err := m.DecodeGID(0)
	require.NoError(t, err)
	assert.True(t, cell.IsEmpty())

	cell, err = m.DecodeGID(3)
	require.NoError(t, err)
	assert.Same(t, a.Tiles[2], cell.Tile)
	assert.False(t, cell.HorizontalFlip)

	cell, err = m.DecodeGID(6 | tileHorizontalFlipMask | tileDiagonalFlipMask)
	require.NoError(t, err)
	assert.Same(t, b.Tiles[1], cell.Tile)
	assert.True(t, cell.HorizontalFlip)
	assert.False(t, cell.VerticalFlip)
	assert.True(t, cell.DiagonalFlip)

	_, err = m.DecodeGID(7)
	assert.ErrorIs(t, err, ErrInvalidTileGID)
}

func TestCellGIDRoundTrip(t *testing.T) {
	m, _, b := newTestMap()

	want := Cell{Tile: b.Tiles[0], VerticalFlip: true, DiagonalFlip: true}
	got, err := m.DecodeGID(want.GID())
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.Zero(t, Cell{}.GID())
}

func TestTilesetGetTileRect(t *testing.T) {
	ts := NewTileset("ts", 16, 16, 6)
	ts.Margin = 1
	ts.Spacing = 2
	ts.Image = &Image{Source: "ts.png", Width: 1 + 3*16 + 2*2 + 1, Height: 36}

	assert.Equal(t, image.Rect(1, 1, 17, 17), ts.GetTileRect(0))
	assert.Equal(t, image.Rect(37, 1, 53, 17), ts.GetTileRect(2))
	assert.Equal(t, image.Rect(1, 19, 17, 35), ts.GetTileRect(3))
}

func TestTileSizeAndOffset(t *testing.T) {
	ts := NewTileset("ts", 32, 48, 2)
	ts.TileOffset = image.Pt(2, -4)
	ts.Tiles[1].Image = &Image{Source: "big.png", Width: 64, Height: 96}

	assert.Equal(t, image.Pt(32, 48), ts.Tiles[0].Size())
	assert.Equal(t, image.Pt(64, 96), ts.Tiles[1].Size())
	assert.Equal(t, image.Pt(2, -4), ts.Tiles[0].Offset())
	assert.Nil(t, ts.Tile(2))
}

func TestTileLayerCells(t *testing.T) {
	_, a, _ := newTestMap()
	l := NewTileLayer("ground", 3, 2)
	assert.True(t, l.IsEmpty())

	l.SetCell(2, 1, Cell{Tile: a.Tiles[1]})
	l.SetCell(3, 1, Cell{Tile: a.Tiles[1]})

	assert.False(t, l.IsEmpty())
	assert.Same(t, a.Tiles[1], l.CellAt(2, 1).Tile)
	assert.True(t, l.CellAt(3, 1).IsEmpty())
	assert.True(t, l.CellAt(-1, 0).IsEmpty())

	l.X, l.Y = 1, 2
	assert.Equal(t, image.Rect(1, 2, 4, 4), l.Bounds())
}

func TestDrawMargins(t *testing.T) {
	ts := NewTileset("tall", 32, 64, 1)
	l := NewTileLayer("l", 2, 2)

	assert.Equal(t, Margins{Top: 32, Right: 32}, l.DrawMargins(32, 32))

	l.SetCell(0, 0, Cell{Tile: ts.Tiles[0]})
	assert.Equal(t, Margins{Top: 64, Right: 32}, l.DrawMargins(32, 32))

	ts.TileOffset = image.Pt(4, -8)
	assert.Equal(t, Margins{Top: 72, Right: 36}, l.DrawMargins(32, 32))

	l.SetCell(0, 0, Cell{Tile: ts.Tiles[0], DiagonalFlip: true})
	assert.Equal(t, Margins{Top: 40, Right: 68}, l.DrawMargins(32, 32))
}

func TestMapLayerWalk(t *testing.T) {
	m := NewMap(Isometric, 2, 2, 64, 32)
	ground := NewTileLayer("ground", 2, 2)
	detail := NewTileLayer("detail", 2, 2)
	objects := &ObjectGroup{Name: "objects"}
	nested := &Group{Name: "inner", Layers: []Layer{detail}}
	outer := &Group{Name: "outer", Layers: []Layer{nested, objects}}

	m.AddLayer(ground)
	m.AddLayer(outer)

	assert.Equal(t, []*TileLayer{ground, detail}, m.TileLayers())
	assert.Equal(t, []*ObjectGroup{objects}, m.ObjectGroups())
	assert.Equal(t, []*Group{outer}, m.Groups())
}

func TestMaxTileSize(t *testing.T) {
	m, _, b := newTestMap()
	assert.Equal(t, image.Pt(64, 48), m.MaxTileSize())

	b.Tiles[0].Image = &Image{Width: 16, Height: 128}
	assert.Equal(t, image.Pt(64, 128), m.MaxTileSize())
}

func TestObjectPoints(t *testing.T) {
	o := &Object{X: 10, Y: 20, Shape: ShapePolygon, Points: []Point{{X: 0, Y: 0}, {X: 5, Y: -5}}}

	want := []Point{{X: 10, Y: 20}, {X: 15, Y: 15}}
	if diff := cmp.Diff(want, o.AbsolutePoints()); diff != "" {
		t.Errorf("AbsolutePoints() mismatch (-want+got):\n%v", diff)
	}
	assert.False(t, o.IsTileObject())
	assert.Equal(t, "polygon", o.Shape.String())
}
