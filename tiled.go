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

// Package tiled holds the map model shared by the renderers: map geometry
// settings, layers, cells, tilesets and map objects.
//
// The model is plain data. Renderers read it and never mutate it.
package tiled

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidOrientation is returned when parsing an unknown orientation name.
	ErrInvalidOrientation = errors.New("tiled: invalid orientation")
	// ErrInvalidRenderOrder is returned when parsing an unknown render order name.
	ErrInvalidRenderOrder = errors.New("tiled: invalid render order")
	// ErrInvalidStaggerAxis is returned when parsing an unknown stagger axis.
	ErrInvalidStaggerAxis = errors.New("tiled: invalid stagger axis")
	// ErrInvalidStaggerIndex is returned when parsing an unknown stagger index.
	ErrInvalidStaggerIndex = errors.New("tiled: invalid stagger index")
	// ErrInvalidTileGID is returned when a GID does not belong to any tileset.
	ErrInvalidTileGID = errors.New("tiled: invalid tile GID")
)

// Orientation is the map projection.
type Orientation int

const (
	Orthogonal Orientation = iota
	Isometric
	Staggered
	Hexagonal
)

var orientationNames = [...]string{
	Orthogonal: "orthogonal",
	Isometric:  "isometric",
	Staggered:  "staggered",
	Hexagonal:  "hexagonal",
}

func (o Orientation) String() string {
	if o < 0 || int(o) >= len(orientationNames) {
		return fmt.Sprintf("Orientation(%d)", int(o))
	}
	return orientationNames[o]
}

// ParseOrientation returns the orientation with the given Tiled name.
func ParseOrientation(s string) (Orientation, error) {
	for i, name := range orientationNames {
		if strings.EqualFold(s, name) {
			return Orientation(i), nil
		}
	}
	return Orthogonal, fmt.Errorf("%w: %q", ErrInvalidOrientation, s)
}

// RenderOrder is the order in which tiles of a tile layer are drawn.
type RenderOrder int

const (
	RightDown RenderOrder = iota
	RightUp
	LeftDown
	LeftUp
)

var renderOrderNames = [...]string{
	RightDown: "right-down",
	RightUp:   "right-up",
	LeftDown:  "left-down",
	LeftUp:    "left-up",
}

func (o RenderOrder) String() string {
	if o < 0 || int(o) >= len(renderOrderNames) {
		return fmt.Sprintf("RenderOrder(%d)", int(o))
	}
	return renderOrderNames[o]
}

// ParseRenderOrder returns the render order with the given Tiled name. An
// empty string is RightDown.
func ParseRenderOrder(s string) (RenderOrder, error) {
	if s == "" {
		return RightDown, nil
	}
	for i, name := range renderOrderNames {
		if strings.EqualFold(s, name) {
			return RenderOrder(i), nil
		}
	}
	return RightDown, fmt.Errorf("%w: %q", ErrInvalidRenderOrder, s)
}

// StaggerAxis selects which axis is staggered on staggered and hexagonal maps.
type StaggerAxis int

const (
	StaggerY StaggerAxis = iota
	StaggerX
)

func (a StaggerAxis) String() string {
	if a == StaggerX {
		return "x"
	}
	return "y"
}

// ParseStaggerAxis parses "x" or "y".
func ParseStaggerAxis(s string) (StaggerAxis, error) {
	switch strings.ToLower(s) {
	case "", "y":
		return StaggerY, nil
	case "x":
		return StaggerX, nil
	}
	return StaggerY, fmt.Errorf("%w: %q", ErrInvalidStaggerAxis, s)
}

// StaggerIndex selects whether odd or even rows (columns) are shifted.
type StaggerIndex int

const (
	StaggerOdd StaggerIndex = iota
	StaggerEven
)

func (i StaggerIndex) String() string {
	if i == StaggerEven {
		return "even"
	}
	return "odd"
}

// ParseStaggerIndex parses "odd" or "even".
func ParseStaggerIndex(s string) (StaggerIndex, error) {
	switch strings.ToLower(s) {
	case "", "odd":
		return StaggerOdd, nil
	case "even":
		return StaggerEven, nil
	}
	return StaggerOdd, fmt.Errorf("%w: %q", ErrInvalidStaggerIndex, s)
}
