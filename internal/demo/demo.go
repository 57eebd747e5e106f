// Package demo generates small maps with generated tileset images, so that
// the commands can render every orientation without map files.
package demo

import (
	"image"
	"image/color"

	tiled "github.com/Tsukumogami-Software/go-tiled-editor"
	"github.com/Tsukumogami-Software/go-tiled-editor/render"
	"github.com/gogpu/gg"
)

// Palette holds the colors of the generated tiles.
var Palette = []color.NRGBA{
	{0x5b, 0x8c, 0x3a, 0xff},
	{0x3a, 0x6e, 0xa5, 0xff},
	{0xc2, 0xa6, 0x5a, 0xff},
	{0x7a, 0x7a, 0x7a, 0xff},
	{0x2f, 0x5d, 0x2a, 0xff},
	{0xa5, 0x5a, 0x3a, 0xff},
}

// tileShape returns the outline of a single tile of m, relative to the
// top-left corner of its bounding box.
func tileShape(m *tiled.Map) ([]gg.Point, error) {
	one := *m
	one.Width, one.Height = 1, 1
	one.StaggerIndex = tiled.StaggerOdd
	one.Layers = nil

	r, err := render.NewMapRenderer(&one)
	if err != nil {
		return nil, err
	}
	poly := r.TileToScreenPolygon(0, 0)
	if len(poly) == 0 {
		return nil, nil
	}
	minX, minY := poly[0].X, poly[0].Y
	for _, p := range poly[1:] {
		minX, minY = min(minX, p.X), min(minY, p.Y)
	}
	for i := range poly {
		poly[i] = poly[i].Sub(gg.Pt(minX, minY))
	}
	return poly, nil
}

// tilesetImage draws one tile of the tile shape per Palette color.
func tilesetImage(m *tiled.Map, shape []gg.Point) image.Image {
	dc := gg.NewContext(m.TileWidth*len(Palette), m.TileHeight)

	for i, c := range Palette {
		x := float64(i * m.TileWidth)
		for j, p := range shape {
			if j == 0 {
				dc.MoveTo(x+p.X, p.Y)
			} else {
				dc.LineTo(x+p.X, p.Y)
			}
		}
		dc.ClosePath()
		dc.SetColor(c)
		_ = dc.FillPreserve()
		dc.SetColor(color.NRGBA{0, 0, 0, 0x60})
		dc.SetLineWidth(1)
		_ = dc.Stroke()
	}
	_ = dc.FlushGPU()
	img := dc.Image()
	_ = dc.Close()
	return img
}

// Populate adds a terrain tileset, a ground layer, a detail layer and an
// object group to m, and registers the tileset image with images.
func Populate(m *tiled.Map, images *render.TilesetCache) error {
	shape, err := tileShape(m)
	if err != nil {
		return err
	}

	ts := tiled.NewTileset("terrain", m.TileWidth, m.TileHeight, len(Palette))
	ts.Columns = len(Palette)
	ts.Image = &tiled.Image{Source: "terrain.png", Width: m.TileWidth * len(Palette), Height: m.TileHeight}
	m.AddTileset(ts)
	images.AddTilesetImage(ts, tilesetImage(m, shape))

	ground := tiled.NewTileLayer("ground", m.Width, m.Height)
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			ground.SetCell(x, y, tiled.Cell{Tile: ts.Tile(uint32((x/3 + y/2) % 3))})
		}
	}
	m.AddLayer(ground)

	detail := tiled.NewTileLayer("detail", m.Width, m.Height)
	detail.Opacity = 0.8
	for y := 1; y < m.Height; y += 4 {
		for x := 1; x < m.Width; x += 5 {
			detail.SetCell(x, y, tiled.Cell{
				Tile:           ts.Tile(uint32(3 + (x+y)%3)),
				HorizontalFlip: x%2 == 0,
			})
		}
	}

	tw, th := float64(m.TileWidth), float64(m.TileHeight)
	objects := &tiled.ObjectGroup{
		Name:    "objects",
		Visible: true,
		Opacity: 1,
		Objects: []*tiled.Object{
			{ID: 1, Name: "area", X: tw, Y: th, Width: 3 * tw, Height: 2 * th, Visible: true},
			{ID: 2, Name: "pond", Shape: tiled.ShapeEllipse, X: 5 * tw, Y: th, Width: 2 * tw, Height: 2 * th, Visible: true},
			{ID: 3, Name: "fence", Shape: tiled.ShapePolyline, X: tw, Y: 4 * th, Visible: true,
				Points: []tiled.Point{{X: 0, Y: 0}, {X: 2 * tw, Y: 0}, {X: 2 * tw, Y: th}, {X: 4 * tw, Y: th}}},
			{ID: 4, Name: "field", Shape: tiled.ShapePolygon, X: 8 * tw, Y: 2 * th, Visible: true,
				Points: []tiled.Point{{X: 0, Y: 0}, {X: 2 * tw, Y: 0}, {X: tw, Y: 2 * th}}},
			{ID: 5, Name: "spawn", X: 2 * tw, Y: 7 * th, Visible: true},
			{ID: 6, Name: "rock", X: 6 * tw, Y: 6 * th, Width: tw, Height: th, Rotation: 30, Visible: true,
				Cell: tiled.Cell{Tile: ts.Tile(3)}},
		},
	}

	m.AddLayer(&tiled.Group{Name: "decor", Visible: true, Layers: []tiled.Layer{detail, objects}})
	return nil
}
