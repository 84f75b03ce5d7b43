// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package panels lays out a linear sequence of adjacent panels whose
// boundaries can be dragged to resize them.  Some panels have a fixed
// extent; others are flexible and share the remaining space by their
// flex-grow ratio.  E.g.
//
//	+---------+-----------------------+---------+
//	|         |                       |         |
//	|  fixed  |         flex          |  fixed  |
//	|   200   |                       |   200   |
//	|         |                       |         |
//	+---------+-----------------------+---------+
//
// is declared by
//
//	g := panels.New(3, panels.Declaration{
//	    InitialSize: []*float64{panels.Px(200), nil, panels.Px(200)},
//	    MinSize:     []*float64{panels.Px(100), panels.Px(100), panels.Px(100)},
//	    MaxSize:     []*float64{panels.Px(300), nil, panels.Px(300)},
//	    Flex:        []bool{false, true, false},
//	}, panels.OnChange(func(sizes []float64) {
//	    fmt.Println(sizes)
//	}))
//
// A group doesn't draw anything.  It is mounted to a Renderer which
// applies the group's panel styles and reports back the rendered
// extents and offsets of the panels:
//
//	g.Mount(myRenderer, myPointerEvents)
//
// Mounting renders the declared styles and resolves every panel's size
// from the rendered extents.  A fixed panel resolves to its declared
// initial size while a flexible panel resolves to a flex-grow ratio:
// adjacent flexible panels keep the proportions they were rendered
// with, a flexible panel next to fixed panels only gets a single share.
// Resolved sizes are reported to a registered OnChange listener.
//
// The rendering layer reports a pointer-down on a boundary to the
// group:
//
//	if g.Down(boundary, panels.Pointer{X: x, Y: y, Primary: true}) {
//	    // consumed; don't bubble the event to enclosing groups
//	}
//
// which starts a drag session.  The session registers a pointer-move
// and a pointer-up listener at the group's Pointers which are released
// as soon as the pointer is released or a move reports that the
// primary button isn't pressed anymore.  Each move updates the two
// panels next to the dragged boundary depending on their kinds:
//
//   - flex/flex and fixed/fixed: the boundary follows the pointer while
//     the extent of both panels together is conserved.
//   - flex/fixed: the fixed right panel grows by the amount the pointer
//     moves towards the group's start.
//   - fixed/flex: the fixed left panel grows by the amount the pointer
//     moves towards the group's end.
//
// In all cases the declared minimum and maximum sizes are respected.
// After each move the new sizes are rendered and reported.
package panels
