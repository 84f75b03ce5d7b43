// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package panels

import (
	"math"

	"github.com/slukits/ints"
)

// Direction selects the axis along which the panels of a group are
// laid out.
type Direction uint8

const (
	// Horizontal groups lay out panels from left to right; extents are
	// widths and offsets are left-coordinates.
	Horizontal Direction = iota
	// Vertical groups lay out panels from top to bottom; extents are
	// heights and offsets are top-coordinates.
	Vertical
)

func (d Direction) String() string {
	if d == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// Axis returns the coordinate of given pointer along the axis of
// receiving direction.
func (d Direction) Axis(p Pointer) float64 {
	if d == Vertical {
		return p.Y
	}
	return p.X
}

// Declaration holds the per panel declarations of a group.  Each slice
// may be shorter than the number of panels; missing entries default.
// A nil size entry is absent, i.e. an absent initial size lets a
// flexible panel take a single flex share and absent bounds are
// unbounded.  Missing Flex and Resizable entries default to true.
type Declaration struct {
	Direction   Direction
	InitialSize []*float64
	MinSize     []*float64
	MaxSize     []*float64
	Flex        []bool
	Resizable   []bool
}

// Px returns a pointer to given size for the size slices of a
// Declaration, e.g.
//
//	panels.Declaration{
//	    InitialSize: []*float64{panels.Px(200), nil, panels.Px(200)},
//	    Flex:        []bool{false, true, false},
//	}
func Px(v float64) *float64 { return &v }

// Panel is the normalized configuration of a group's panel along with
// its resolved size.
type Panel struct {
	// Flex is true if the panel shares the space which is left by
	// fixed panels with the other flexible panels.
	Flex bool
	// Resizable is true if the boundary after the panel may be
	// dragged.
	Resizable bool
	// InitialSize is the declared starting extent.
	InitialSize *float64
	// MinSize and MaxSize are the declared extent bounds.
	MinSize, MaxSize *float64
	// Size is the panel's resolved size which is a flex-grow share
	// iff Flex is true and an extent otherwise.
	Size Size
}

// Min returns a panel's lower extent bound which is 0 if unbounded.
func (p *Panel) Min() float64 {
	if p.MinSize == nil || *p.MinSize < 0 {
		return 0
	}
	return *p.MinSize
}

// Max returns a panel's upper extent bound which is +Inf if unbounded.
func (p *Panel) Max() float64 {
	if p.MaxSize == nil {
		return math.Inf(1)
	}
	return *p.MaxSize
}

// Clamp bounds given extent to the panel's declared bounds.  Are the
// bounds contradicting the lower bound wins.
func (p *Panel) Clamp(extent float64) float64 {
	extent = min(extent, p.Max())
	return max(extent, p.Min())
}

// Resolve normalizes given declaration for n panels.  Resolve has no
// side effects and never fails: absent values silently default.
func Resolve(n int, d Declaration) []Panel {
	if n <= 0 {
		return nil
	}
	pp := make([]Panel, n)
	for i := range pp {
		pp[i] = Panel{
			Flex:        boolAt(d.Flex, i),
			Resizable:   boolAt(d.Resizable, i),
			InitialSize: sizeAt(d.InitialSize, i),
			MinSize:     sizeAt(d.MinSize, i),
			MaxSize:     sizeAt(d.MaxSize, i),
		}
	}
	return pp
}

func boolAt(bb []bool, i int) bool {
	if i >= len(bb) {
		return true
	}
	return bb[i]
}

func sizeAt(ss []*float64, i int) *float64 {
	if i >= len(ss) || ss[i] == nil {
		return nil
	}
	v := *ss[i]
	return &v
}

// Boundaries returns the indices of the draggable boundaries of given
// panels.  Boundary i lies between panel i and i+1.
func Boundaries(pp []Panel) *ints.Set {
	bb := &ints.Set{}
	for i := 0; i < len(pp)-1; i++ {
		if !pp[i].Resizable {
			continue
		}
		bb.Add(i)
	}
	return bb
}
