// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lines

import "github.com/gdamore/tcell/v2"

// Env is an environment provided to event listeners when they are
// called back.  It provides an encapsulated Screen's public API,
// information about the event which triggered the callback and features
// to communicate with the reporting operation.
//
// NOTE it is not save to provide an Env instance or one of its method's
// return values to an other go routine.  The former will likely result
// in a nil pointer panic the later in a race-condition.  It is save
// though to pass an environment's property values on to a goroutine.
type Env struct {
	scr          *Screen
	stopBubbling bool

	// EE is the Events instance providing given environment
	// instance.
	EE *Events

	// Evn is the tcell-event triggering the creation of a receiving
	// environment to report it back to a registered listener.
	Evn tcell.Event
}

// Size returns the width and height of the terminal screen.  Note the
// fixture-screen defaults to 80x25.
func (e *Env) Size() (width, height int) { return e.scr.Size() }

// Fill sets each cell of given rectangle to given rune and style.
func (e *Env) Fill(x, y, width, height int, r rune, sty tcell.Style) {
	e.scr.Fill(x, y, width, height, r, sty)
}

// Print writes given string starting at given cell.
func (e *Env) Print(x, y int, s string, sty tcell.Style) {
	e.scr.Print(x, y, s, sty)
}

// Clear clears the screen.
func (e *Env) Clear() { e.scr.Clear() }

// SetMin defines the minimal expected screen size.  An error is
// displayed and event reporting is suppressed as long as the screen is
// smaller.
func (e *Env) SetMin(width, height int) { e.scr.SetMin(width, height) }

// ToSmall returns true if a set minimal screen size is greater than the
// available screen size.
func (e *Env) ToSmall() bool { return e.scr.ToSmall() }

// ErrScreen returns an overlaying (if activated) error-screen allowing
// to report errors without loosing the screen content at the time the
// error screen is requested
func (e *Env) ErrScreen() *ErrScr { return e.scr.ErrScreen() }

// StopBubbling prevents a reported mouse down event from being reported
// to down listeners which were registered before the current one.
func (e *Env) StopBubbling() { e.stopBubbling = true }

func (e *Env) reset() {
	e.scr = nil
	e.EE = nil
	e.Evn = nil
}
