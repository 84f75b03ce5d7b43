// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lines

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Screen provides features to write to a cell based terminal
// user-interface.
type Screen struct {
	lib    tcell.Screen
	errScr *ErrScr
	minW   int
	minH   int
	dirty  bool
}

// Size returns the width and height of wrapped terminal screen.  Note
// the simulation screen defaults to 80x25.
func (s *Screen) Size() (width, height int) { return s.lib.Size() }

// Fill sets each cell of given rectangle to given rune and style.
// Cells outside the screen are ignored.
func (s *Screen) Fill(x, y, width, height int, r rune, sty tcell.Style) {
	w, h := s.Size()
	for j := max(y, 0); j < min(y+height, h); j++ {
		for i := max(x, 0); i < min(x+width, w); i++ {
			s.lib.SetContent(i, j, r, nil, sty)
		}
	}
	s.dirty = true
}

// Print writes given string starting at given cell.  Runes exceeding
// the screen's width are clipped.
func (s *Screen) Print(x, y int, str string, sty tcell.Style) {
	w, _ := s.Size()
	for _, r := range str {
		if x >= w {
			break
		}
		s.lib.SetContent(x, y, r, nil, sty)
		x += max(runewidth.RuneWidth(r), 1)
	}
	s.dirty = true
}

// Clear clears the screen.
func (s *Screen) Clear() {
	s.lib.Clear()
	s.dirty = true
}

// SetMin defines the minimal expected screen size.  An error is
// displayed and event reporting is suppressed as long as the screen is
// smaller.
func (s *Screen) SetMin(width, height int) {
	s.minW, s.minH = width, height
	if !s.ToSmall() {
		return
	}
	s.minErr()
}

// ToSmall returns true if a set minimal screen size is greater than the
// available screen size.
func (s *Screen) ToSmall() bool {
	w, h := s.Size()
	return w < s.minW || h < s.minH
}

// ErrScreen returns the screen's error-screen which is overlaying the
// screen's content while it is active.
func (s *Screen) ErrScreen() *ErrScr {
	if s.errScr == nil {
		s.errScr = &ErrScr{lib: s.lib}
	}
	return s.errScr
}

func (s *Screen) resize() (ok bool) {
	s.Clear()
	ok = !s.ToSmall()
	if ok {
		if s.errScr != nil && s.errScr.Active {
			s.errScr.Active = false
		}
		return ok
	}
	s.minErr()
	return ok
}

// ErrScreenFmt is the displayed error message for the case that a set
// minimal screen size is greater than the available screen size.
const ErrScreenFmt = "minimum screen size: %dx%d"

func (s *Screen) minErr() {
	if !s.ErrScreen().Active {
		s.ErrScreen().Active = true
	}

	msg := fmt.Sprintf(ErrScreenFmt, s.minW, s.minH)
	if s.ErrScreen().String() != msg {
		s.ErrScreen().Set(msg)
	}
}

func (s *Screen) ensureSynced(show bool) {
	sync := func() {
		if show {
			s.lib.Show()
		} else {
			s.lib.Sync()
		}
	}
	if s.errScr != nil && s.errScr.Active {
		if s.errScr.IsDirty() {
			s.errScr.sync()
			sync()
		}
		return
	}
	if !s.dirty {
		return
	}
	s.dirty = false
	sync()
}

// screenFactory is used to create new tcell-screens for production or
// for simulation.  export_test.go makes it possible to replace this
// screen factory with a screen-factory mocking up tcell's screen
// creation errors so they can be tested.
var screenFactory screenFactoryer = &defaultFactory{}

type defaultFactory struct{}

func (f *defaultFactory) NewScreen() (tcell.Screen, error) {
	return tcell.NewScreen()
}

func (f *defaultFactory) NewSimulationScreen(
	s string,
) tcell.SimulationScreen {
	return tcell.NewSimulationScreen(s)
}

type screenFactoryer interface {
	NewScreen() (tcell.Screen, error)
	NewSimulationScreen(string) tcell.SimulationScreen
}
