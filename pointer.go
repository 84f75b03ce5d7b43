// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package panels

// Pointer is a pointer event as it is consumed by a group: its
// coordinates and whether the primary button is pressed.
type Pointer struct {
	X, Y    float64
	Primary bool
}

// PointerListener is informed about pointer events.
type PointerListener = func(Pointer)

// Pointers is the process-wide pointer event source a group's drag
// session listens to while a boundary is dragged.  A listener receives
// every pointer move respectively every pointer release until the
// returned release function is called.  Release functions must be
// idempotent and calling them for a listener which is not registered
// (anymore) must be a no-op.
type Pointers interface {
	OnMove(PointerListener) (release func())
	OnUp(PointerListener) (release func())
}

// Renderer is the rendering layer a group lays out its panels through.
// Render applies given panel styles along the axis of given direction;
// Extent and Offset must reflect the last rendered styles once Render
// returned.  Extent returns the rendered extent of the panel with
// given index along the group's axis while Offset returns its
// position along this axis in pointer coordinates.
type Renderer interface {
	Render(Direction, []Style)
	Extent(idx int) float64
	Offset(idx int) float64
}
