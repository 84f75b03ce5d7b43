// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package view

import (
	"github.com/slukits/panels"
	"github.com/slukits/panels/pkg/flex"
)

// Rect is a rectangle of screen cells.
type Rect struct{ X, Y, Width, Height int }

func (r Rect) contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

func (r Rect) intersect(o Rect) Rect {
	x, y := max(r.X, o.X), max(r.Y, o.Y)
	w := min(r.X+r.Width, o.X+o.Width) - x
	h := min(r.Y+r.Height, o.Y+o.Height) - y
	return Rect{X: x, Y: y, Width: max(w, 0), Height: max(h, 0)}
}

// Node is a panel group of a view along with what its panels display:
// a panel with a nested node displays the nested group otherwise its
// content.
type Node struct {
	Group    *panels.Group
	Contents []string
	Children []*Node

	r       *renderer
	release func()
}

func (n *Node) child(idx int) *Node {
	if idx < 0 || idx >= len(n.Children) {
		return nil
	}
	return n.Children[idx]
}

func (n *Node) content(idx int) string {
	if idx < 0 || idx >= len(n.Contents) {
		return ""
	}
	return n.Contents[idx]
}

// boundaryAt returns the boundary whose handle's hit-area contains
// given cell; -1 if there is none.  The hit-area of a handle is
// widened along the group's axis by the handle padding.
func (n *Node) boundaryAt(x, y int) int {
	if n.r == nil || n.r.line == nil || !n.r.rect.contains(x, y) {
		return -1
	}
	pos := x
	if n.Group.Direction() == panels.Vertical {
		pos = y
	}
	best, dist := -1, n.Group.HandleStyle().Padding+1
	for b := 0; b < len(n.r.line.Offsets)-1; b++ {
		d := pos - n.r.line.Offsets[b+1]
		if d < 0 {
			d = -d
		}
		if d < dist {
			best, dist = b, d
		}
	}
	return best
}

// renderer lays out a group's panels inside a rectangle of cells.
type renderer struct {
	rect Rect
	dir  panels.Direction
	ss   []panels.Style
	line *flex.Line
}

func (r *renderer) Render(d panels.Direction, ss []panels.Style) {
	r.dir, r.ss = d, ss
	r.layout()
}

func (r *renderer) layout() {
	ii := make([]flex.Item, len(r.ss))
	for i, s := range r.ss {
		ii[i] = item(s)
	}
	if r.dir == panels.Vertical {
		r.line = flex.Layout(r.rect.Y, r.rect.Height, ii...)
		return
	}
	r.line = flex.Layout(r.rect.X, r.rect.Width, ii...)
}

func item(s panels.Style) flex.Item {
	i := flex.Item{}
	if s.Min != nil {
		i.Min = *s.Min
	}
	if s.Max != nil {
		i.Max = *s.Max
	}
	if ratio, ok := s.Size.Ratio(); ok {
		i.Grow = ratio
		return i
	}
	i.Extent, _ = s.Size.Pixels()
	return i
}

func (r *renderer) Extent(idx int) float64 {
	if r.line == nil || idx < 0 || idx >= len(r.line.Extents) {
		return 0
	}
	return float64(r.line.Extents[idx])
}

func (r *renderer) Offset(idx int) float64 {
	if r.line == nil || idx < 0 || idx >= len(r.line.Offsets) {
		return 0
	}
	return float64(r.line.Offsets[idx])
}

// panelRect returns the rectangle of the panel with given index
// without the cell of the handle in front of it.
func (r *renderer) panelRect(idx int) Rect {
	if r.line == nil || idx < 0 || idx >= len(r.line.Extents) {
		return Rect{}
	}
	at, ext := r.line.Offsets[idx], r.line.Extents[idx]
	if idx > 0 {
		at, ext = at+1, ext-1
	}
	ext = max(ext, 0)
	if r.dir == panels.Vertical {
		return Rect{X: r.rect.X, Y: at, Width: r.rect.Width, Height: ext}
	}
	return Rect{X: at, Y: r.rect.Y, Width: ext, Height: r.rect.Height}
}

// handleRect returns the rectangle of the handle of given boundary.
func (r *renderer) handleRect(boundary int) Rect {
	if r.line == nil || boundary < 0 ||
		boundary+1 >= len(r.line.Offsets) {
		return Rect{}
	}
	at := r.line.Offsets[boundary+1]
	if r.dir == panels.Vertical {
		return Rect{X: r.rect.X, Y: at, Width: r.rect.Width, Height: 1}
	}
	return Rect{X: at, Y: r.rect.Y, Width: 1, Height: r.rect.Height}
}
