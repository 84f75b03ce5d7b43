// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package view draws a tree of panel groups to a terminal screen and
// lets the user resize the panels by dragging the handles between
// them.  The screen is divided into a message bar, the main area with
// the root group and a status bar:
//
//	panels: default layout                              col-resize
//	Lorem ipsum dolor │Lorem ipsum dolor sit amet,  │Lorem ipsum
//	sit amet,         │consectetur adipisicing elit,│dolor sit amet
//	──────────────────│sed do eiusmod tempor        │─────────────
//	Lorem ipsum dolor │incididunt ut labore et      │Lorem ipsum
//	sizes: 20 30 20
//
// A cell is a group's unit of extent.  Each group is laid out inside
// the rectangle of the panel it is nested in.
package view

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"github.com/slukits/panels"
	"github.com/slukits/panels/pkg/lines"
	"github.com/slukits/panels/pkg/logger"
)

// An Initer implementation provides the content of a new view.
type Initer interface {

	// Message returns the message bar's content.
	Message() string

	// Status returns the status bar's initial content and is provided
	// by a View with a function to update the status bar's content.
	// The update function must be called from within the event loop,
	// e.g. from a group's OnChange listener.
	Status(update func(string)) string

	// Main returns the root node of the view's panel groups.  Its
	// groups are mounted once the screen size is known.
	Main() *Node
}

// View draws a panel group tree.  A View is driven by the lines
// Events instance it was created with.
type View struct {
	msg, status string
	root        *Node
	pp          *pointers
}

// BarStyle is the style of the message and status bar.
var BarStyle = tcell.StyleDefault.Reverse(true)

// New creates a view with the content of given Initer whose root group
// is mounted and drawn at the initial resize event of given Events.
func New(i Initer, ee *lines.Events) *View {
	v := &View{msg: i.Message(), root: i.Main()}
	v.status = i.Status(func(s string) { v.status = s })
	v.pp = &pointers{ee: ee, update: v.update}
	ee.Resize(v.resize)
	return v
}

// Main returns the rectangle of given screen size which is available
// to the root group.
func Main(width, height int) Rect {
	return Rect{X: 0, Y: 1, Width: width, Height: max(height-2, 0)}
}

func (v *View) resize(e *lines.Env) {
	if v.root != nil && v.root.r == nil {
		v.mount(e.EE, v.root, Main(e.Size()))
	}
	v.update(e)
}

// update lays out the mounted groups in the current screen before the
// view is drawn.
func (v *View) update(e *lines.Env) {
	if v.root != nil && v.root.r != nil {
		v.relayout(v.root, Main(e.Size()))
	}
	v.draw(e)
}

// mount mounts given node's group in given rectangle followed by its
// nested groups.  Down listeners of nested groups are registered
// after their parent's, i.e. they are informed first about a pressed
// button.
func (v *View) mount(ee *lines.Events, n *Node, rect Rect) {
	n.r = &renderer{rect: rect}
	n.Group.Mount(n.r, v.pp)
	n.release = ee.MouseDown(v.downListener(n))
	for i, c := range n.Children {
		if c == nil {
			continue
		}
		v.mount(ee, c, n.r.panelRect(i))
	}
}

// unmount detaches given node's group and its nested groups from the
// view.
func (v *View) unmount(n *Node) {
	if n == nil || n.r == nil {
		return
	}
	for _, c := range n.Children {
		v.unmount(c)
	}
	n.release()
	n.Group.Unmount()
	n.r, n.release = nil, nil
}

// Reload shows given message and root node.  The groups of a replaced
// root node are unmounted and the groups of given root node are
// mounted.  Reload must be called from within the event loop, e.g. by
// a rune listener.
func (v *View) Reload(e *lines.Env, msg string, root *Node) {
	v.msg = msg
	if root != v.root {
		v.unmount(v.root)
		v.root = root
		if root != nil {
			v.mount(e.EE, root, Main(e.Size()))
		}
	}
	v.update(e)
}

// relayout lays out given node's group anew if its rectangle changed
// and continues with its nested groups whose rectangles may have
// changed by a drag of an ancestor.
func (v *View) relayout(n *Node, rect Rect) {
	if n.r.rect != rect {
		n.r.rect = rect
		n.Group.Refresh()
	}
	for i, c := range n.Children {
		if c == nil || c.r == nil {
			continue
		}
		v.relayout(c, n.r.panelRect(i))
	}
}

// downListener starts a drag session of given node's group if the
// button is pressed on one of its handles.  A started session consumes
// the event.
func (v *View) downListener(n *Node) lines.MouseListener {
	return func(e *lines.Env, m lines.Mouse) {
		b := n.boundaryAt(m.X, m.Y)
		if b < 0 || !n.Group.Down(b, pointer(m)) {
			return
		}
		e.StopBubbling()
		logger.Debug("drag started", "boundary", b,
			"direction", n.Group.Direction().String(), "x", m.X, "y", m.Y)
		v.draw(e)
	}
}

// cursor returns the cursor of a dragged handle's group.
func (v *View) cursor(n *Node) panels.Cursor {
	if n == nil {
		return ""
	}
	if _, ok := n.Group.Dragging(); ok {
		return n.Group.HandleStyle().Cursor
	}
	for _, c := range n.Children {
		if cursor := v.cursor(c); cursor != "" {
			return cursor
		}
	}
	return ""
}

func (v *View) draw(e *lines.Env) {
	e.Clear()
	w, h := e.Size()
	e.Fill(0, 0, w, 1, ' ', BarStyle)
	e.Print(0, 0, v.msg, BarStyle)
	if c := string(v.cursor(v.root)); c != "" {
		e.Print(w-runewidth.StringWidth(c), 0, c, BarStyle)
	}
	if v.root != nil && v.root.r != nil {
		v.drawNode(e, v.root)
	}
	if h > 1 {
		e.Fill(0, h-1, w, 1, ' ', BarStyle)
		e.Print(0, h-1, v.status, BarStyle)
	}
}

func (v *View) drawNode(e *lines.Env, n *Node) {
	clip := Rect{X: -1 << 16, Y: -1 << 16, Width: 1 << 17, Height: 1 << 17}
	if n.Group.GroupStyle().OverflowHidden {
		clip = n.r.rect
	}
	for i := 0; i < n.Group.Len(); i++ {
		rect := n.r.panelRect(i).intersect(clip)
		if c := n.child(i); c != nil && c.r != nil {
			v.drawNode(e, c)
			continue
		}
		drawText(e, rect, n.content(i))
	}
	hs := n.Group.HandleStyle()
	sty := tcell.StyleDefault.Foreground(tcell.GetColor(hs.Color))
	r := '│'
	if hs.Direction == panels.Vertical {
		r = '─'
	}
	for b := 0; b < n.Group.Len()-1; b++ {
		rect := n.r.handleRect(b).intersect(clip)
		if rect.Width == 0 || rect.Height == 0 {
			continue
		}
		if !n.Group.Panel(b).Resizable {
			e.Fill(rect.X, rect.Y, rect.Width, rect.Height, r,
				tcell.StyleDefault)
			continue
		}
		e.Fill(rect.X, rect.Y, rect.Width, rect.Height, r, sty)
	}
}

// drawText prints given text word wrapped into given rectangle.
func drawText(e *lines.Env, r Rect, s string) {
	for i, l := range wrap(s, r.Width) {
		if i >= r.Height {
			return
		}
		e.Print(r.X, r.Y+i, l, tcell.StyleDefault)
	}
}

// wrap breaks given text into lines of given width.  Words exceeding
// the width are truncated.
func wrap(s string, width int) []string {
	if width <= 0 {
		return nil
	}
	ll, line := []string{}, ""
	for _, w := range strings.Fields(s) {
		w = runewidth.Truncate(w, width, "")
		switch {
		case line == "":
			line = w
		case runewidth.StringWidth(line)+1+runewidth.StringWidth(w) <=
			width:
			line += " " + w
		default:
			ll = append(ll, line)
			line = w
		}
	}
	if line != "" {
		ll = append(ll, line)
	}
	return ll
}
