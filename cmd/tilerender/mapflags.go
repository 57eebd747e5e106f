package main

import (
	"flag"
	"fmt"
	"strconv"
	"strings"

	tiled "github.com/Tsukumogami-Software/go-tiled-editor"
)

// mapFlags describe the geometry of the generated map.
type mapFlags struct {
	orientation  string
	renderOrder  string
	size         string
	tileSize     string
	hexSide      int
	staggerAxis  string
	staggerIndex string
}

func (c *mapFlags) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.orientation, "orientation", "orthogonal", "Map orientation (orthogonal, isometric, staggered, hexagonal)")
	f.StringVar(&c.renderOrder, "render-order", "right-down", "Tile render order")
	f.StringVar(&c.size, "size", "16x12", "Map size in tiles as WxH")
	f.StringVar(&c.tileSize, "tile", "32x32", "Tile size in pixels as WxH")
	f.IntVar(&c.hexSide, "hex-side", 0, "Hexagon side length")
	f.StringVar(&c.staggerAxis, "stagger-axis", "y", "Stagger axis (x, y)")
	f.StringVar(&c.staggerIndex, "stagger-index", "odd", "Stagger index (odd, even)")
}

func parseSize(s string) (int, int, error) {
	ws, hs, ok := strings.Cut(strings.ToLower(s), "x")
	if !ok {
		return 0, 0, fmt.Errorf("invalid size %q, expected WxH", s)
	}
	w, err := strconv.Atoi(ws)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid width in %q: %w", s, err)
	}
	h, err := strconv.Atoi(hs)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid height in %q: %w", s, err)
	}
	if w <= 0 || h <= 0 {
		return 0, 0, fmt.Errorf("size %q must be positive", s)
	}
	return w, h, nil
}

// newMap returns an empty map with the configured geometry.
func (c *mapFlags) newMap() (*tiled.Map, error) {
	orientation, err := tiled.ParseOrientation(c.orientation)
	if err != nil {
		return nil, err
	}
	order, err := tiled.ParseRenderOrder(c.renderOrder)
	if err != nil {
		return nil, err
	}
	axis, err := tiled.ParseStaggerAxis(c.staggerAxis)
	if err != nil {
		return nil, err
	}
	index, err := tiled.ParseStaggerIndex(c.staggerIndex)
	if err != nil {
		return nil, err
	}
	w, h, err := parseSize(c.size)
	if err != nil {
		return nil, err
	}
	tw, th, err := parseSize(c.tileSize)
	if err != nil {
		return nil, err
	}

	m := tiled.NewMap(orientation, w, h, tw, th)
	m.RenderOrder = order
	m.HexSideLength = c.hexSide
	m.StaggerAxis = axis
	m.StaggerIndex = index
	return m, nil
}
