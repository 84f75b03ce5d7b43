// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package panels

// Style is the rendering directive of a single panel along its group's
// axis.  Size is either a flex-grow share on a zero basis or an
// explicit extent.  Min and Max are the declared extent bounds; nil is
// unbounded.
type Style struct {
	Size     Size
	Min, Max *float64
}

// Cursor names the pointer shape of a boundary handle.
type Cursor string

const (
	ColResize Cursor = "col-resize"
	RowResize Cursor = "row-resize"
)

// DefaultHandlePadding is the default padding of a boundary's
// hit-area.
const DefaultHandlePadding = 4

// DefaultHandleColor is the default color of a boundary handle.
const DefaultHandleColor = "grey"

// HandleStyle is the rendering directive of a group's boundary handles.
type HandleStyle struct {
	Direction Direction
	Padding   int
	Color     string
	Cursor    Cursor
}

// GroupStyle is the rendering directive of a group's container.
type GroupStyle struct {
	Direction Direction
	// Row is true for horizontal groups, i.e. the flex-direction.
	Row bool
	// OverflowHidden clips panels which exceed the container.
	OverflowHidden bool
}

// styles returns the rendering directives of given panels.  Unresolved
// panels are styled by their declaration, i.e. a flexible panel
// without initial size gets a single flex share while any other panel
// gets its initial size as extent.
func styles(pp []Panel) []Style {
	ss := make([]Style, len(pp))
	for i, p := range pp {
		s := Style{Min: p.MinSize, Max: p.MaxSize}
		switch {
		case p.Size.IsResolved():
			s.Size = p.Size
		case p.Flex && p.InitialSize == nil:
			s.Size = Ratio(1)
		case p.InitialSize != nil:
			s.Size = Pixels(*p.InitialSize)
		default:
			s.Size = Pixels(p.Min())
		}
		ss[i] = s
	}
	return ss
}
