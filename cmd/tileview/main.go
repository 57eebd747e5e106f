// Command tileview shows a generated map in a window. The map can be panned
// with the middle mouse button, zoomed with the wheel and painted with the
// left mouse button.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"log"
	"log/slog"
	"math"

	tiled "github.com/Tsukumogami-Software/go-tiled-editor"
	"github.com/Tsukumogami-Software/go-tiled-editor/internal/demo"
	"github.com/Tsukumogami-Software/go-tiled-editor/render"
	"github.com/gogpu/gg"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const (
	screenWidth  = 960
	screenHeight = 720
)

var brushKeys = []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4, ebiten.Key5, ebiten.Key6, ebiten.Key7, ebiten.Key8, ebiten.Key9}

var (
	gridColor      = color.NRGBA{0, 0, 0, 0x80}
	hoverColor     = color.NRGBA{0xff, 0xff, 0xff, 0x50}
	objectColor    = color.NRGBA{0xff, 0xc0, 0x40, 0xff}
	backgroundGray = color.NRGBA{0x20, 0x20, 0x28, 0xff}
)

type viewer struct {
	m       *tiled.Map
	r       render.MapRenderer
	painter *render.ImagePainter
	ground  *tiled.TileLayer

	zoom       float64
	panX, panY float64
	panning    bool
	lastX      int
	lastY      int

	showGrid bool
	brush    uint32
	hover    image.Point
}

func newViewer(m *tiled.Map, images *render.TilesetCache) (*viewer, error) {
	r, err := render.NewMapRenderer(m)
	if err != nil {
		return nil, err
	}
	r.SetObjectLineWidth(2)

	v := &viewer{
		m:        m,
		r:        r,
		painter:  render.NewImagePainter(nil, images),
		zoom:     1,
		showGrid: true,
	}
	if layers := m.TileLayers(); len(layers) > 0 {
		v.ground = layers[0]
	}

	size := r.MapSize()
	v.panX = math.Round(float64(screenWidth-size.X) / 2)
	v.panY = math.Round(float64(screenHeight-size.Y) / 2)
	return v, nil
}

func (v *viewer) view() ebiten.GeoM {
	var g ebiten.GeoM
	g.Scale(v.zoom, v.zoom)
	g.Translate(v.panX, v.panY)
	return g
}

// mapPos converts a window position into map screen coordinates.
func (v *viewer) mapPos(x, y int) gg.Point {
	return gg.Pt((float64(x)-v.panX)/v.zoom, (float64(y)-v.panY)/v.zoom)
}

func (v *viewer) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		v.showGrid = !v.showGrid
	}
	for i, k := range brushKeys[:min(len(brushKeys), len(demo.Palette))] {
		if inpututil.IsKeyJustPressed(k) {
			v.brush = uint32(i)
		}
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonMiddle) {
		v.panning = true
		v.lastX, v.lastY = ebiten.CursorPosition()
	}
	if v.panning && ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle) {
		cx, cy := ebiten.CursorPosition()
		v.panX += float64(cx - v.lastX)
		v.panY += float64(cy - v.lastY)
		v.lastX, v.lastY = cx, cy
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonMiddle) {
		v.panning = false
	}

	if _, wy := ebiten.Wheel(); wy != 0 {
		cx, cy := ebiten.CursorPosition()
		anchor := v.mapPos(cx, cy)
		if wy > 0 {
			v.zoom = min(v.zoom*1.25, 8)
		} else {
			v.zoom = max(v.zoom/1.25, 0.125)
		}
		v.panX = float64(cx) - anchor.X*v.zoom
		v.panY = float64(cy) - anchor.Y*v.zoom
	}

	cx, cy := ebiten.CursorPosition()
	pos := v.mapPos(cx, cy)
	tile := v.r.ScreenToTileCoords(pos.X, pos.Y)
	v.hover = image.Pt(int(math.Floor(tile.X)), int(math.Floor(tile.Y)))

	if v.ground != nil && ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		x, y := v.hover.X-v.ground.X, v.hover.Y-v.ground.Y
		if v.ground.Contains(x, y) && len(v.m.Tilesets) > 0 {
			v.ground.SetCell(x, y, tiled.Cell{Tile: v.m.Tilesets[0].Tile(v.brush)})
		}
	}
	return nil
}

// exposed returns the part of the map visible in the window.
func (v *viewer) exposed() gg.Rect {
	return gg.Rect{
		Min: v.mapPos(0, 0),
		Max: v.mapPos(screenWidth, screenHeight),
	}
}

func (v *viewer) drawLayers(layers []tiled.Layer, exposed gg.Rect) {
	for _, l := range layers {
		if !l.IsVisible() {
			continue
		}
		switch l := l.(type) {
		case *tiled.TileLayer:
			v.painter.SetOpacity(float64(l.Opacity))
			v.r.DrawTileLayer(v.painter, l, exposed)
		case *tiled.ImageLayer:
			v.painter.SetOpacity(float64(l.Opacity))
			v.r.DrawImageLayer(v.painter, l, exposed)
		case *tiled.ObjectGroup:
			v.painter.SetOpacity(float64(l.Opacity))
			for _, o := range l.Objects {
				if o.Visible && o.Rotation == 0 {
					v.r.DrawMapObject(v.painter, o, objectColor)
				}
			}
		case *tiled.Group:
			v.drawLayers(l.Layers, exposed)
		}
		v.painter.SetOpacity(1)
	}
}

func (v *viewer) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundGray)

	v.painter.SetTarget(screen)
	v.painter.SetView(v.view())

	exposed := v.exposed()
	v.drawLayers(v.m.Layers, exposed)

	if v.showGrid {
		v.r.DrawGrid(v.painter, exposed, gridColor)
	}
	if v.hover.In(v.m.Bounds()) {
		hover := image.Rectangle{Min: v.hover, Max: v.hover.Add(image.Pt(1, 1))}
		v.r.DrawTileSelection(v.painter, []image.Rectangle{hover}, hoverColor, exposed)
	}

	ebitenutil.DebugPrint(screen, fmt.Sprintf("%s  tile %d,%d  brush %d  zoom %.2f\nG: grid  1-%d: brush  wheel: zoom  middle drag: pan",
		v.m.Orientation, v.hover.X, v.hover.Y, v.brush+1, v.zoom, len(demo.Palette)))
}

func (v *viewer) Layout(int, int) (int, int) {
	return screenWidth, screenHeight
}

func main() {
	orientation := flag.String("orientation", "isometric", "map orientation (orthogonal, isometric, staggered, hexagonal)")
	width := flag.Int("w", 20, "map width in tiles")
	height := flag.Int("h", 20, "map height in tiles")
	tileWidth := flag.Int("tw", 64, "tile width in pixels")
	tileHeight := flag.Int("th", 32, "tile height in pixels")
	hexSide := flag.Int("hex-side", 0, "hexagon side length")
	staggerX := flag.Bool("stagger-x", false, "stagger columns instead of rows")
	staggerEven := flag.Bool("stagger-even", false, "shift even rows or columns")
	verbose := flag.Bool("v", false, "log debug output")
	flag.Parse()

	if *verbose {
		slog.SetLogLoggerLevel(slog.LevelDebug)
		render.SetLogger(slog.Default())
	}

	o, err := tiled.ParseOrientation(*orientation)
	if err != nil {
		log.Fatal(err)
	}
	m := tiled.NewMap(o, *width, *height, *tileWidth, *tileHeight)
	m.HexSideLength = *hexSide
	if *staggerX {
		m.StaggerAxis = tiled.StaggerX
	}
	if *staggerEven {
		m.StaggerIndex = tiled.StaggerEven
	}

	images := render.NewTilesetCache(nil)
	if err := demo.Populate(m, images); err != nil {
		log.Fatal(err)
	}

	v, err := newViewer(m, images)
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("tileview - " + m.Orientation.String())
	if err := ebiten.RunGame(v); err != nil {
		log.Fatal(err)
	}
}
