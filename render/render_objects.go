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
	"math"

	tiled "github.com/Tsukumogami-Software/go-tiled-editor"
	"github.com/Tsukumogami-Software/go-tiled-editor/internal/utils"
)

// RenderVisibleGroups renders all visible top level groups
func (r *Renderer) RenderVisibleGroups() error {
	for _, group := range r.m.Groups() {
		if !group.Visible {
			continue
		}
		if err := r.renderGroup(group); err != nil {
			return err
		}
	}
	return nil
}

// RenderGroup renders single top level group.
func (r *Renderer) RenderGroup(groupID int) error {
	groups := r.m.Groups()
	if groupID < 0 || groupID >= len(groups) {
		return ErrOutOfBounds
	}
	return r.renderGroup(groups[groupID])
}

func (r *Renderer) renderGroup(group *tiled.Group) error {
	for _, layer := range group.Layers {
		if !layer.IsVisible() {
			continue
		}
		if err := r.renderLayer(layer); err != nil {
			return err
		}
	}
	return nil
}

// RenderVisibleObjectGroups renders all visible object groups, including
// the ones nested in groups.
func (r *Renderer) RenderVisibleObjectGroups() error {
	for i, layer := range r.m.ObjectGroups() {
		if !layer.Visible {
			continue
		}
		if err := r.RenderObjectGroup(i); err != nil {
			return err
		}
	}
	return nil
}

// RenderObjectGroup renders a single object group
func (r *Renderer) RenderObjectGroup(i int) error {
	groups := r.m.ObjectGroups()
	if i < 0 || i >= len(groups) {
		return ErrOutOfBounds
	}
	return r.renderObjectGroup(groups[i])
}

func (r *Renderer) renderObjectGroup(objectGroup *tiled.ObjectGroup) error {
	objs := objectGroup.Objects

	// sort objects from left top to right down
	if objectGroup.DrawOrder != "index" {
		objs = utils.SortAnySlice(objs, func(a, b *tiled.Object) bool {
			if a.Y != b.Y {
				return a.Y < b.Y
			}

			return a.X < b.X
		})
	}

	r.painter.SetOpacity(float64(objectGroup.Opacity))
	defer r.painter.SetOpacity(1)

	for _, obj := range objs {
		r.renderOneObject(obj)
	}
	return nil
}

// renderOneObject draws an object, rotated clockwise around its position.
func (r *Renderer) renderOneObject(o *tiled.Object) {
	if !o.Visible {
		return
	}

	if o.Rotation == 0 {
		r.engine.DrawMapObject(r.painter, o, r.objectColor)
		return
	}

	pos := r.engine.PixelToScreenCoords(o.X, o.Y)
	r.dc.Push()
	r.dc.RotateAbout(o.Rotation*math.Pi/180.0, pos.X, pos.Y)
	r.engine.DrawMapObject(r.painter, o, r.objectColor)
	r.dc.Pop()
}
