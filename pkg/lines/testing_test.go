// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lines

import (
	"fmt"
	"testing"

	"github.com/gdamore/tcell/v2"
	. "github.com/slukits/gounit"
)

type _Testing struct{ Suite }

func (s *_Testing) SetUp(t *T) { t.Parallel() }

func (s *_Testing) Starts_non_blocking_listening_with_listen_call(t *T) {
	ee, _ := Test(t.GoT(), -1)
	t.True(!ee.IsListening())
	ee.Listen()
	t.True(ee.IsListening())
	ee.QuitListening()
}

func (s *_Testing) Starts_listening_if_a_resize_is_fired(t *T) {
	// don't stop after first *reported* event which in this case is the
	// initial resize
	ee, tt := Test(t.GoT(), -1)
	defer ee.QuitListening()
	t.True(!ee.IsListening())
	t.True(tt.FireResize(42, 12).IsListening())
}

func (s *_Testing) Starts_listening_if_a_key_is_fired(t *T) {
	ee, tt := Test(t.GoT(), -1) // listen for ever
	defer ee.QuitListening()
	t.True(!ee.IsListening())
	t.True(tt.FireKey(tcell.KeyBS, 0).IsListening())
}

func (s *_Testing) Starts_listening_a_rune_is_fired(t *T) {
	ee, tt := Test(t.GoT(), -1)
	defer ee.QuitListening()
	t.True(!ee.IsListening())
	t.True(tt.FireRune('r').IsListening())
}

func (s *_Testing) Starts_listening_if_a_mouse_event_is_fired(t *T) {
	ee, tt := Test(t.GoT(), -1)
	defer ee.QuitListening()
	t.True(!ee.IsListening())
	t.True(tt.FireMouse(1, 1, tcell.ButtonNone).IsListening())
}

func (s *_Testing) Provides_last_screen_after_automatic_quit(t *T) {
	exp := "auto termination"
	ee, tt := Test(t.GoT()) // stops after first reported event
	ee.Resize(func(e *Env) { e.Print(0, 0, exp, tcell.StyleDefault) })
	ee.Listen() // triggers resize for which we have registered above
	t.True(!ee.IsListening())
	t.Eq(exp, fmt.Sprint(tt.LastScreen))
}

func (s *_Testing) Provides_last_screen_after_quit_event(t *T) {
	exp := "event terminated"
	ee, tt := Test(t.GoT(), 3)
	ee.Resize(func(e *Env) { e.Print(0, 0, exp, tcell.StyleDefault) })
	tt.FireKey(tcell.KeyCtrlC, tcell.ModNone)
	t.True(!ee.IsListening())
	t.Eq(exp, fmt.Sprint(tt.LastScreen))
}

func (s *_Testing) Provides_last_screen_after_programmatic_quit(t *T) {
	exp := "programmatically terminated"
	ee, tt := Test(t.GoT(), 2)
	ee.Rune('a', func(e *Env) {
		e.Print(0, 0, exp, tcell.StyleDefault)
		ee.QuitListening()
	})
	tt.FireRune('a')
	t.True(!ee.IsListening())
	t.Eq(exp, fmt.Sprint(tt.LastScreen))
}

func (s *_Testing) Fires_initial_resize(t *T) {
	ee, tt := Test(t.GoT())
	ee.Resize(func(e *Env) { e.Print(0, 0, "called", tcell.StyleDefault) })
	ee.Listen()
	t.True(!ee.IsListening())
	t.Eq("called", fmt.Sprint(tt.LastScreen))
}

func (s *_Testing) Fires_requested_resize(t *T) {
	ee, tt := Test(t.GoT(), 2)
	resizes := 0
	ee.Resize(func(e *Env) {
		w, h := e.Size()
		e.Print(0, resizes, fmt.Sprintf("%dx%d", w, h), tcell.StyleDefault)
		resizes++
	})
	tt.FireResize(40, 10)
	t.True(!ee.IsListening())
	t.Eq(2, resizes)
	t.Eq("40x10", fmt.Sprint(tt.LastScreen))
}

func (s *_Testing) Fires_requested_rune_event(t *T) {
	ee, tt := Test(t.GoT())
	ee.Rune('a', func(e *Env) { e.Print(0, 0, "a-rune", tcell.StyleDefault) })
	tt.FireRune('a')
	t.True(!ee.IsListening())
	t.Eq("a-rune", tt.LastScreen)
}

func (s *_Testing) Fires_requested_mouse_event(t *T) {
	ee, tt := Test(t.GoT())
	ee.MouseDown(func(e *Env, m Mouse) {
		e.Print(0, 0, fmt.Sprintf("down %d %d", m.X, m.Y),
			tcell.StyleDefault)
	})
	tt.FireMouse(2, 3, tcell.Button1)
	t.True(!ee.IsListening())
	t.Eq("down 2 3", tt.LastScreen)
}

func (s *_Testing) Provides_the_content_of_a_cell(t *T) {
	ee, tt := Test(t.GoT(), -1)
	defer ee.QuitListening()
	sty := tcell.StyleDefault.Background(tcell.ColorGrey)
	ee.Rune('a', func(e *Env) { e.Fill(3, 2, 1, 1, '|', sty) })
	tt.FireRune('a')
	c := tt.Cell(3, 2)
	t.Eq("|", string(c.Runes))
	t.True(c.Style == sty)
	t.Eq(0, len(tt.Cell(-1, 0).Runes))
}

func TestTesting(t *testing.T) {
	t.Parallel()
	Run(&_Testing{}, t)
}
