package demo

import (
	"image/color"
	"testing"

	tiled "github.com/Tsukumogami-Software/go-tiled-editor"
	"github.com/Tsukumogami-Software/go-tiled-editor/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPopulate(t *testing.T) {
	tests := []struct {
		orientation tiled.Orientation
		tw, th      int
	}{
		{tiled.Orthogonal, 32, 32},
		{tiled.Isometric, 64, 32},
		{tiled.Staggered, 64, 32},
		{tiled.Hexagonal, 32, 32},
	}
	for _, tt := range tests {
		t.Run(tt.orientation.String(), func(t *testing.T) {
			m := tiled.NewMap(tt.orientation, 12, 8, tt.tw, tt.th)
			m.HexSideLength = 8
			cache := render.NewTilesetCache(nil)

			require.NoError(t, Populate(m, cache))

			require.Len(t, m.Tilesets, 1)
			assert.Len(t, m.Layers, 2)
			assert.Len(t, m.TileLayers(), 2)
			require.Len(t, m.ObjectGroups(), 1)
			assert.Len(t, m.ObjectGroups()[0].Objects, 6)

			ts := m.Tilesets[0]
			img, err := cache.TileImage(ts.Tiles[0])
			require.NoError(t, err)
			b := img.Bounds()
			assert.Equal(t, tt.tw, b.Dx())
			assert.Equal(t, tt.th, b.Dy())

			center := color.NRGBAModel.Convert(img.At(b.Min.X+tt.tw/2, b.Min.Y+tt.th/2)).(color.NRGBA)
			assert.InDelta(t, float64(Palette[0].G), float64(center.G), 8)
			assert.Equal(t, uint8(0xff), center.A)

			// Every generated cell decodes back to its tile.
			cell := m.TileLayers()[0].CellAt(4, 3)
			decoded, err := m.DecodeGID(cell.GID())
			require.NoError(t, err)
			assert.Equal(t, cell, decoded)
		})
	}
}

func TestPopulateUnknownOrientation(t *testing.T) {
	m := tiled.NewMap(tiled.Orientation(9), 4, 4, 32, 32)
	assert.ErrorIs(t, Populate(m, render.NewTilesetCache(nil)), render.ErrUnsupportedOrientation)
}
