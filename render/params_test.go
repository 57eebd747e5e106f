package render

import (
	"testing"

	tiled "github.com/Tsukumogami-Software/go-tiled-editor"
	"github.com/stretchr/testify/assert"
)

func hexMap(axis tiled.StaggerAxis, index tiled.StaggerIndex, w, h, tw, th, side int) *tiled.Map {
	m := tiled.NewMap(tiled.Hexagonal, w, h, tw, th)
	m.StaggerAxis = axis
	m.StaggerIndex = index
	m.HexSideLength = side
	return m
}

func TestRenderParamsStaggerX(t *testing.T) {
	p := NewRenderParams(hexMap(tiled.StaggerX, tiled.StaggerOdd, 4, 3, 32, 32, 8))

	assert.Equal(t, RenderParams{
		TileWidth:   32,
		TileHeight:  32,
		SideLengthX: 8,
		SideOffsetX: 12,
		SideOffsetY: 16,
		ColumnWidth: 20,
		RowHeight:   16,
		StaggerX:    true,
	}, p)

	assert.True(t, p.DoStaggerX(1))
	assert.False(t, p.DoStaggerX(0))
	assert.True(t, p.DoStaggerX(-1))
	for i := -3; i < 4; i++ {
		assert.False(t, p.DoStaggerY(i), "row %d", i)
	}
}

func TestRenderParamsStaggerEven(t *testing.T) {
	p := NewRenderParams(hexMap(tiled.StaggerY, tiled.StaggerEven, 4, 3, 32, 32, 8))

	assert.Equal(t, 8, p.SideLengthY)
	assert.Zero(t, p.SideLengthX)
	assert.Equal(t, 20, p.RowHeight)
	assert.Equal(t, 16, p.ColumnWidth)

	for i := -4; i < 4; i++ {
		assert.Equal(t, i%2 == 0, p.DoStaggerY(i), "row %d", i)
		assert.False(t, p.DoStaggerX(i), "column %d", i)
	}
}

func TestRenderParamsIgnoresSideLengthOfStaggered(t *testing.T) {
	m := tiled.NewMap(tiled.Staggered, 4, 4, 64, 32)
	m.HexSideLength = 10

	p := NewRenderParams(m)
	assert.Zero(t, p.SideLengthX)
	assert.Zero(t, p.SideLengthY)
	assert.Equal(t, 32, p.SideOffsetX)
	assert.Equal(t, 16, p.SideOffsetY)
}

func TestRenderParamsRoundsTileSizeToEven(t *testing.T) {
	p := NewRenderParams(hexMap(tiled.StaggerY, tiled.StaggerOdd, 2, 2, 33, 17, 0))
	assert.Equal(t, 32, p.TileWidth)
	assert.Equal(t, 16, p.TileHeight)
	assert.True(t, p.valid())

	p = NewRenderParams(hexMap(tiled.StaggerY, tiled.StaggerOdd, 2, 2, 1, 16, 0))
	assert.False(t, p.valid())
}

func TestRenderParamsAreRederived(t *testing.T) {
	m := hexMap(tiled.StaggerX, tiled.StaggerOdd, 4, 3, 32, 32, 8)
	r := NewHexagonalRenderer(m)
	before := r.TileToScreenCoords(1, 0)

	m.StaggerIndex = tiled.StaggerEven
	after := r.TileToScreenCoords(1, 0)

	assert.NotEqual(t, before, after)
	assert.Equal(t, NewRenderParams(m), NewRenderParams(m))
}
