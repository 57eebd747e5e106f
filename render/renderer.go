/*
Copyright (c) 2017 Lauris Bukšis-Haberkorns <lauris@nix.lv>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in all
copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
SOFTWARE.
*/


package render

import (
	"errors"
	"image"
	"image/color"
	"image/gif"
	"image/jpeg"
	"io"
	"io/fs"

	tiled "github.com/Tsukumogami-Software/go-tiled-editor"
	"github.com/gogpu/gg"
)

var (
	// ErrUnsupportedOrientation represents an error in the unsupported orientation for rendering.
	ErrUnsupportedOrientation = errors.New("tiled/render: unsupported orientation")

	// ErrOutOfBounds represents an error that the index is out of bounds
	ErrOutOfBounds = errors.New("tiled/render: index out of bounds")
	// ErrEmptyMap represents an error that the map has no area to render into.
	ErrEmptyMap = errors.New("tiled/render: empty map")
	// ErrTileImageNotFound represents an error that a tile has no image.
	ErrTileImageNotFound = errors.New("tiled/render: tile image not found")
)

// DefaultObjectColor is used for objects when no color is configured.
var DefaultObjectColor = color.NRGBA{R: 0xa0, G: 0xa0, B: 0xa4, A: 0xff}

// Renderer renders whole maps into an image.
type Renderer struct {
	m       *tiled.Map
	engine  MapRenderer
	images  *TilesetCache
	dc      *gg.Context
	painter *ContextPainter

	background  color.Color
	objectColor color.Color
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithBackground fills the result with c on every Clear.
func WithBackground(c color.Color) Option {
	return func(r *Renderer) { r.background = c }
}

// WithObjectColor sets the accent color of map objects.
func WithObjectColor(c color.Color) Option {
	return func(r *Renderer) { r.objectColor = c }
}

// WithObjectLineWidth sets the line width of map objects.
func WithObjectLineWidth(w float64) Option {
	return func(r *Renderer) { r.engine.SetObjectLineWidth(w) }
}

// WithFlags enables renderer flags.
func WithFlags(f Flag) Option {
	return func(r *Renderer) { r.engine.SetFlag(f, true) }
}

// WithTilesetCache shares an image cache between renderers.
func WithTilesetCache(c *TilesetCache) Option {
	return func(r *Renderer) { r.images = c }
}

// NewRenderer creates new rendering engine instance.
func NewRenderer(m *tiled.Map, opts ...Option) (*Renderer, error) {
	return NewRendererWithFileSystem(m, nil, opts...)
}

// NewRendererWithFileSystem creates new rendering engine instance with a custom file system.
func NewRendererWithFileSystem(m *tiled.Map, fs fs.FS, opts ...Option) (*Renderer, error) {
	engine, err := NewMapRenderer(m)
	if err != nil {
		return nil, err
	}

	r := &Renderer{
		m:           m,
		engine:      engine,
		images:      NewTilesetCache(fs),
		objectColor: DefaultObjectColor,
	}
	for _, opt := range opts {
		opt(r)
	}

	if err := r.Clear(); err != nil {
		return nil, err
	}
	return r, nil
}

// MapRenderer returns the projection used by the renderer.
func (r *Renderer) MapRenderer() MapRenderer {
	return r.engine
}

// TilesetCache returns the image cache of the renderer.
func (r *Renderer) TilesetCache() *TilesetCache {
	return r.images
}

// Image returns the render result.
func (r *Renderer) Image() image.Image {
	_ = r.dc.FlushGPU()
	return r.dc.Image()
}

// Close releases the drawing context.
func (r *Renderer) Close() error {
	return r.dc.Close()
}

func (r *Renderer) renderLayer(layer tiled.Layer) error {
	switch l := layer.(type) {
	case *tiled.TileLayer:
		r.painter.SetOpacity(float64(l.Opacity))
		r.engine.DrawTileLayer(r.painter, l, gg.Rect{})
	case *tiled.ImageLayer:
		r.painter.SetOpacity(float64(l.Opacity))
		r.engine.DrawImageLayer(r.painter, l, gg.Rect{})
	case *tiled.ObjectGroup:
		return r.renderObjectGroup(l)
	case *tiled.Group:
		return r.renderGroup(l)
	}
	r.painter.SetOpacity(1)
	return nil
}

// RenderGroupLayer renders single map layer in a certain group.
func (r *Renderer) RenderGroupLayer(groupID, layerID int) error {
	groups := r.m.Groups()
	if groupID < 0 || groupID >= len(groups) {
		return ErrOutOfBounds
	}
	group := groups[groupID]

	if layerID < 0 || layerID >= len(group.Layers) {
		return ErrOutOfBounds
	}
	return r.renderLayer(group.Layers[layerID])
}

// RenderLayer renders single map layer.
func (r *Renderer) RenderLayer(id int) error {
	if id < 0 || id >= len(r.m.Layers) {
		return ErrOutOfBounds
	}
	return r.renderLayer(r.m.Layers[id])
}

// RenderVisibleLayers renders all visible map layers, including object
// groups and groups, bottom to top.
func (r *Renderer) RenderVisibleLayers() error {
	for i := range r.m.Layers {
		if !r.m.Layers[i].IsVisible() {
			continue
		}

		if err := r.RenderLayer(i); err != nil {
			return err
		}
	}

	return nil
}

// RenderGrid draws the map grid over the whole result.
func (r *Renderer) RenderGrid(c color.Color) {
	b := image.Rect(0, 0, r.dc.Width(), r.dc.Height())
	r.engine.DrawGrid(r.painter, toRect(b), c)
}

// RenderSelection fills the tile region with c.
func (r *Renderer) RenderSelection(region []image.Rectangle, c color.Color) {
	r.engine.DrawTileSelection(r.painter, region, c, gg.Rect{})
}

// Clear clears the render result to allow for separation of layers. For example, you can
// render a layer, make a copy of the render, clear the renderer, and repeat for each
// layer in the Map.
func (r *Renderer) Clear() error {
	size := r.engine.MapSize()
	if size.X <= 0 || size.Y <= 0 {
		return ErrEmptyMap
	}

	if r.dc != nil {
		_ = r.dc.Close()
	}
	r.dc = gg.NewContext(size.X, size.Y)
	if r.background != nil {
		r.dc.ClearWithColor(gg.FromColor(r.background))
	}
	r.painter = NewContextPainter(r.dc, r.images)
	return nil
}

// SaveAsPng writes rendered layers as PNG image to provided writer.
func (r *Renderer) SaveAsPng(w io.Writer) error {
	_ = r.dc.FlushGPU()
	return r.dc.EncodePNG(w)
}

// SaveAsJpeg writes rendered layers as JPEG image to provided writer.
func (r *Renderer) SaveAsJpeg(w io.Writer, options *jpeg.Options) error {
	return jpeg.Encode(w, r.Image(), options)
}

// SaveAsGif writes rendered layers as GIF image to provided writer.
func (r *Renderer) SaveAsGif(w io.Writer, options *gif.Options) error {
	return gif.Encode(w, r.Image(), options)
}
