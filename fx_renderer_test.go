// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package panels

import (
	"github.com/slukits/panels/pkg/flex"
)

// fxRenderer lays out rendered styles in a container of given extent
// starting at given origin like a browser's flex layout does.
type fxRenderer struct {
	origin, extent float64
	ee, oo         []float64
	renders        int
	panics         bool
}

func newFxRenderer(extent float64) *fxRenderer {
	return &fxRenderer{extent: extent}
}

func (r *fxRenderer) Render(_ Direction, ss []Style) {
	r.renders++
	if r.panics {
		panic("fx: render failed")
	}
	ii := make([]flex.Item, len(ss))
	for i, s := range ss {
		if s.Min != nil {
			ii[i].Min = *s.Min
		}
		if s.Max != nil {
			ii[i].Max = *s.Max
		}
		if ratio, ok := s.Size.Ratio(); ok {
			ii[i].Grow = ratio
			continue
		}
		ii[i].Extent, _ = s.Size.Pixels()
	}
	r.ee = flex.Distribute(r.extent, ii...)
	r.oo = make([]float64, len(r.ee))
	at := r.origin
	for i, e := range r.ee {
		r.oo[i] = at
		at += e
	}
}

func (r *fxRenderer) Extent(idx int) float64 {
	if idx < 0 || idx >= len(r.ee) {
		return 0
	}
	return r.ee[idx]
}

func (r *fxRenderer) Offset(idx int) float64 {
	if idx < 0 || idx >= len(r.oo) {
		return 0
	}
	return r.oo[idx]
}

// fxPointers is a process wide pointer event source which counts the
// currently registered listeners.
type fxPointers struct {
	id        int
	move, up  map[int]PointerListener
	registers int
}

func newFxPointers() *fxPointers {
	return &fxPointers{
		move: map[int]PointerListener{},
		up:   map[int]PointerListener{},
	}
}

func (pp *fxPointers) OnMove(l PointerListener) func() {
	return pp.add(pp.move, l)
}

func (pp *fxPointers) OnUp(l PointerListener) func() {
	return pp.add(pp.up, l)
}

func (pp *fxPointers) add(ll map[int]PointerListener, l PointerListener) func() {
	pp.id++
	pp.registers++
	id := pp.id
	ll[id] = l
	return func() { delete(ll, id) }
}

// Registered returns the number of currently registered listeners.
func (pp *fxPointers) Registered() int { return len(pp.move) + len(pp.up) }

// Move reports a pointer move with pressed primary button at given
// coordinates to all move listeners.
func (pp *fxPointers) Move(x, y float64) {
	pp.report(pp.move, Pointer{X: x, Y: y, Primary: true})
}

// Hover reports a pointer move without pressed primary button.
func (pp *fxPointers) Hover(x, y float64) {
	pp.report(pp.move, Pointer{X: x, Y: y})
}

// Up reports a pointer release at given coordinates.
func (pp *fxPointers) Up(x, y float64) {
	pp.report(pp.up, Pointer{X: x, Y: y})
}

func (pp *fxPointers) report(ll map[int]PointerListener, p Pointer) {
	snapshot := make([]PointerListener, 0, len(ll))
	for _, l := range ll {
		snapshot = append(snapshot, l)
	}
	for _, l := range snapshot {
		l(p)
	}
}

// fxSizes records the sizes reported to an OnChange listener.
type fxSizes struct {
	reports [][]float64
}

func (s *fxSizes) listener(ss []float64) {
	s.reports = append(s.reports, ss)
}

// Last returns the last reported sizes.
func (s *fxSizes) Last() []float64 {
	if len(s.reports) == 0 {
		return nil
	}
	return s.reports[len(s.reports)-1]
}

// fxGroup creates a group of n panels with given declaration which is
// mounted on a renderer with given container extent.
func fxGroup(
	n int, d Declaration, extent float64,
) (*Group, *fxRenderer, *fxPointers, *fxSizes) {
	ss := &fxSizes{}
	g := New(n, d, OnChange(ss.listener))
	r, pp := newFxRenderer(extent), newFxPointers()
	g.Mount(r, pp)
	return g, r, pp, ss
}
