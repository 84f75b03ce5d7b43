// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package panels

import (
	"github.com/google/go-cmp/cmp"
	"github.com/slukits/ints"
	"golang.org/x/exp/slices"
)

// Group is a linear sequence of adjacent panels whose boundaries may be
// dragged to resize the panels next to a dragged boundary.  A Group is
// not safe for concurrent use; it is meant to be driven by a single
// event loop.
type Group struct {
	decl     Declaration
	pp       []Panel
	r        Renderer
	ptrs     Pointers
	drag     *drag
	onChange func([]float64)
	padding  int
	color    string
}

// Option configures a Group at its creation.
type Option func(*Group)

// OnChange registers given listener which is informed about a group's
// panel sizes after their initial resolution and after each move of a
// dragged boundary.
func OnChange(l func(sizes []float64)) Option {
	return func(g *Group) { g.onChange = l }
}

// WithHandlePadding sets the padding of the hit-area around a
// boundary.  Negative values are ignored.
func WithHandlePadding(p int) Option {
	return func(g *Group) {
		if p < 0 {
			return
		}
		g.padding = p
	}
}

// WithHandleColor sets the color of boundary handles.
func WithHandleColor(c string) Option {
	return func(g *Group) {
		if c == "" {
			return
		}
		g.color = c
	}
}

// New creates a group of n panels configured by given declaration.
// Its panel sizes are resolved once it is mounted.
func New(n int, d Declaration, oo ...Option) *Group {
	g := &Group{
		decl:    d,
		pp:      Resolve(n, d),
		padding: DefaultHandlePadding,
		color:   DefaultHandleColor,
	}
	for _, o := range oo {
		o(g)
	}
	return g
}

// Len returns the number of panels of receiving group.
func (g *Group) Len() int { return len(g.pp) }

// Direction returns the axis along which receiving group's panels are
// laid out.
func (g *Group) Direction() Direction { return g.decl.Direction }

// Panel returns a copy of the panel with given index; the zero panel is
// returned for an invalid index.
func (g *Group) Panel(idx int) Panel {
	if idx < 0 || idx >= len(g.pp) {
		return Panel{}
	}
	return g.pp[idx]
}

// Panels returns a copy of receiving group's panels.
func (g *Group) Panels() []Panel { return slices.Clone(g.pp) }

// Boundaries returns the indices of the boundaries which may be
// dragged.
func (g *Group) Boundaries() *ints.Set { return Boundaries(g.pp) }

// Styles returns the current rendering directives for the group's
// panels.
func (g *Group) Styles() []Style { return styles(g.pp) }

// HandleStyle returns the rendering directive for the group's boundary
// handles.
func (g *Group) HandleStyle() HandleStyle {
	hs := HandleStyle{
		Direction: g.decl.Direction,
		Padding:   g.padding,
		Color:     g.color,
		Cursor:    ColResize,
	}
	if g.decl.Direction == Vertical {
		hs.Cursor = RowResize
	}
	return hs
}

// GroupStyle returns the rendering directive for the group's
// container.
func (g *Group) GroupStyle() GroupStyle {
	return GroupStyle{
		Direction:      g.decl.Direction,
		Row:            g.decl.Direction == Horizontal,
		OverflowHidden: true,
	}
}

// Mount renders the group's declared styles with given renderer and
// resolves the group's panel sizes from the rendered extents.  Given
// pointers are listened to during a drag session.
func (g *Group) Mount(r Renderer, pp Pointers) {
	g.end()
	g.r, g.ptrs = r, pp
	g.render()
	g.Resolve()
}

// Unmount ends a potentially active drag session and detaches the
// group from its renderer and pointer events.
func (g *Group) Unmount() {
	g.end()
	g.r, g.ptrs = nil, nil
}

// IsMounted returns true iff receiving group has a renderer.
func (g *Group) IsMounted() bool { return g.r != nil }

// Configure replaces the group's declaration for n panels.  An equal
// declaration is a no-op and false is returned.  Otherwise the panels
// are rebuilt, an active drag session is ended and a mounted group is
// rendered and resolved again.
func (g *Group) Configure(n int, d Declaration) bool {
	if n == len(g.pp) && cmp.Equal(g.decl, d) {
		return false
	}
	g.end()
	g.decl, g.pp = d, Resolve(n, d)
	if g.r != nil {
		g.render()
		g.Resolve()
	}
	return true
}

// Resolve assigns each panel its size from its declaration and the
// currently rendered extents as if the adjacent pairs of panels were
// resolved from left to right while the last assignment to a panel
// wins: a fixed panel gets its clamped initial size (its clamped
// rendered extent if it has none); a flexible panel followed by a
// flexible panel gets its ratio of the pair's rendered extents; the
// last panel preceded by a flexible panel gets its ratio of that pair;
// any other flexible panel gets a single share.  The resolved sizes
// are rendered and reported.  Resolve is a no-op for an unmounted
// group.
func (g *Group) Resolve() {
	if g.r == nil {
		return
	}
	ee := make([]float64, len(g.pp))
	for i := range ee {
		ee[i] = g.r.Extent(i)
	}
	for i := range g.pp {
		g.pp[i].Size = g.resolved(i, ee)
	}
	g.render()
	g.notify()
}

// resolved returns the size of the panel with given index for given
// rendered extents.
func (g *Group) resolved(i int, ee []float64) Size {
	p := g.pp[i]
	if !p.Flex {
		if p.InitialSize != nil {
			return Pixels(p.Clamp(*p.InitialSize))
		}
		return Pixels(p.Clamp(ee[i]))
	}
	last := i+1 == len(g.pp)
	switch {
	case !last && g.pp[i+1].Flex:
		return Ratio(Ratios(ee[i], ee[i+1])[0])
	case last && i > 0 && g.pp[i-1].Flex:
		return Ratio(Ratios(ee[i-1], ee[i])[1])
	}
	return Ratio(1)
}

// Refresh renders the resolved sizes anew and reports them, e.g. after
// the container of a mounted group changed.  Refresh is a no-op for an
// unmounted group.
func (g *Group) Refresh() {
	if g.r == nil {
		return
	}
	g.render()
	g.notify()
}

// Sizes returns for each panel its extent: the resolved extent of
// fixed panels and the rendered extent of flexible panels.
func (g *Group) Sizes() []float64 {
	ss := make([]float64, len(g.pp))
	for i, p := range g.pp {
		if px, ok := p.Size.Pixels(); ok {
			ss[i] = px
			continue
		}
		if g.r != nil {
			ss[i] = g.r.Extent(i)
		}
	}
	return ss
}

func (g *Group) render() {
	if g.r == nil {
		return
	}
	g.r.Render(g.decl.Direction, g.Styles())
}

func (g *Group) notify() {
	if g.onChange == nil {
		return
	}
	g.onChange(g.Sizes())
}
