// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package panels

// drag is an active drag session of the boundary between the panels
// boundary and boundary+1.  It owns the release functions of the
// pointer listeners registered for its duration.
type drag struct {
	boundary     int
	axis         float64
	initA, initB float64
	release      []func()
}

// Dragging returns the index of the currently dragged boundary and
// true; or -1 and false if no boundary is dragged.
func (g *Group) Dragging() (int, bool) {
	if g.drag == nil {
		return -1, false
	}
	return g.drag.boundary, true
}

// Down starts a drag session for given boundary at given pointer
// position.  Down returns false and ignores the pointer event if the
// group isn't mounted or given boundary doesn't exist or isn't
// resizable.  Otherwise the pointer event is consumed, i.e. the
// rendering layer must not report it to other (ancestor) handlers.
// The session listens to the group's pointer events until the pointer
// is released.
func (g *Group) Down(boundary int, p Pointer) bool {
	if g.r == nil || boundary < 0 || boundary >= len(g.pp)-1 {
		return false
	}
	if !g.pp[boundary].Resizable {
		return false
	}
	g.end()
	d := &drag{
		boundary: boundary,
		axis:     g.decl.Direction.Axis(p),
		initA:    g.r.Extent(boundary),
		initB:    g.r.Extent(boundary + 1),
	}
	if g.ptrs != nil {
		d.release = append(d.release,
			g.ptrs.OnMove(g.Move), g.ptrs.OnUp(g.Up))
	}
	g.drag = d
	return true
}

// Move updates the sizes of the panels next to a dragged boundary
// according to given pointer position and reports the group's new
// sizes.  Move is a no-op if no boundary is dragged.  Is the primary
// button not pressed the drag session ends as if the pointer was
// released.
func (g *Group) Move(p Pointer) {
	if g.drag == nil {
		return
	}
	if !p.Primary {
		g.end()
		return
	}
	defer func() {
		if r := recover(); r != nil {
			g.end()
			panic(r)
		}
	}()

	d, axis := g.drag, g.decl.Direction.Axis(p)
	delta := axis - d.axis
	a, b := &g.pp[d.boundary], &g.pp[d.boundary+1]

	switch {
	case a.Flex && b.Flex:
		total := g.r.Extent(d.boundary) + g.r.Extent(d.boundary+1)
		left := split(a, b, axis-g.r.Offset(d.boundary), total)
		ra, _ := a.Size.Ratio()
		rb, _ := b.Size.Ratio()
		rr := scaledRatios(ra+rb, left, total-left)
		a.Size, b.Size = Ratio(rr[0]), Ratio(rr[1])
	case a.Flex:
		b.Size = Pixels(b.Clamp(d.initB - delta))
	case b.Flex:
		a.Size = Pixels(a.Clamp(d.initA + delta))
	default:
		total := g.r.Extent(d.boundary) + g.r.Extent(d.boundary+1)
		left := split(a, b, axis-g.r.Offset(d.boundary), total)
		a.Size, b.Size = Pixels(left), Pixels(total-left)
	}

	g.render()
	g.notify()
}

// Up ends an active drag session.  Up is a no-op if no boundary is
// dragged.
func (g *Group) Up(Pointer) { g.end() }

// end clears the drag session and releases its pointer listeners.  It
// is the only way a drag session is terminated.
func (g *Group) end() {
	if g.drag == nil {
		return
	}
	d := g.drag
	g.drag = nil
	for _, release := range d.release {
		release()
	}
}

// split returns the extent of the first of given adjacent panels if
// their boundary is requested at given extent v of the first panel
// while both panels together occupy given total.  The requested extent
// is bounded by both panels' declared bounds and always by the shared
// pool [0, total].
func split(a, b *Panel, v, total float64) float64 {
	lo := max(a.Min(), total-b.Max())
	hi := min(a.Max(), total-b.Min())
	return clamp(clamp(v, lo, hi), 0, total)
}
