// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lines

import (
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
)

// Events allows to listen for user-input event which are then reported
// to registered listeners.  It also manages behind the scenes the
// screen synchronization.
type Events struct {
	scr         *Screen
	mutex       *sync.Mutex
	ll          *Listeners
	resize      Listener
	quit        func(e *Env)
	isListening bool
	reported    func()
	t           *Testing

	// pressed is true while the primary button is held down; it is
	// only accessed by the event loop.
	pressed bool

	// Synced sends a message after a the screen synchronization
	// following a reported event.
	Synced chan bool

	// Features are the keys and runes which are used for "internal"
	// event handling, e.g. the keys/runes for the quit event are q,
	// ctrl-c and ctrl-d.  Features default to a copy of
	// *DefaultFeatures*.
	Features *Features
}

// IsListening returns true if given Events polling from the event loop.
func (ee *Events) IsListening() bool {
	ee.mutex.Lock()
	defer ee.mutex.Unlock()
	return ee.isListening
}

// Listen blocks and starts polling from the event loop reporting
// received events to registered listeners.  Listen returns if either a
// quit-event was received ('q', ctrl-c, ctrl-d input) or QuitListening
// was called.  NOTE in testing Listen is non-blocking, i.e. returns
// after the initial resize was processed.
func (ee *Events) Listen() {
	if ee.t != nil {
		ee.t.listen()
		return
	}
	ee.listen()
}

func (ee *Events) listen() {
	if !ee.startPolling() { // ignore subsequent calls of Listen
		return
	}
	for {
		ev := ee.scr.lib.PollEvent()

		select {
		case <-ee.Synced:
		default:
		}

		switch ev := ev.(type) {
		case nil: // event-loop ended
			return
		case *quitEvent:
			ee.stopPolling()
			if l := ee.quitListener(); l != nil {
				l(ee.env(ev))
			}
			ee.quitListening()
		case *tcell.EventResize:
			if ee.scr.resize() {
				ee.report(ev)
			}
			ee.scr.ensureSynced(false)
			ee.Synced <- true
		default:
			if quit := ee.report(ev); quit {
				ee.stopPolling()
				ee.quitListening()
				return
			}
			ee.scr.ensureSynced(true)
			ee.Synced <- true
		}
	}
}

func (ee *Events) startPolling() bool {
	ee.mutex.Lock()
	defer ee.mutex.Unlock()
	if ee.isListening {
		return false
	}
	ee.isListening = true
	return true
}

func (ee *Events) stopPolling() {
	ee.mutex.Lock()
	defer ee.mutex.Unlock()
	ee.isListening = false
}

// Reported calls back if an event was reported for logging and testing.
func (ee *Events) Reported(listener func()) {
	ee.mutex.Lock()
	defer ee.mutex.Unlock()
	ee.reported = listener
}

// Resize registers given listener for the resize event.  Note starting
// the event-loop by calling *Listen* will trigger a mandatory initial
// resize event.
func (ee *Events) Resize(l Listener) {
	ee.mutex.Lock()
	defer ee.mutex.Unlock()
	ee.resize = l
}

// Quit registers given listener for the quit event which is triggered
// by 'q'-rune, ctrl-c and ctrl-d.
func (ee *Events) Quit(listener func(*Env)) {
	ee.mutex.Lock()
	defer ee.mutex.Unlock()
	ee.quit = listener
}

// Rune registers a given listener for given rune-event.  It fails if
// already a listener is registered for given rune-event.
func (ee *Events) Rune(r rune, l Listener) error {
	return ee.ll.Rune(r, l)
}

// MouseDown registers given listener for pressing the primary mouse
// button.  Down listeners are called most recently registered first
// until a listener calls Env.StopBubbling.  The returned function
// removes the registration.
func (ee *Events) MouseDown(l MouseListener) (release func()) {
	return ee.ll.MouseDown(l)
}

// MouseMove registers given listener for mouse moves.  A move without
// pressed primary button is reported as well.  The returned function
// removes the registration.
func (ee *Events) MouseMove(l MouseListener) (release func()) {
	return ee.ll.MouseMove(l)
}

// MouseUp registers given listener for releasing the primary mouse
// button.  The returned function removes the registration.
func (ee *Events) MouseUp(l MouseListener) (release func()) {
	return ee.ll.MouseUp(l)
}

// QuitListening posts a quit event ending the event-loop, i.e.
// IsPolling will be false.
func (ee *Events) QuitListening() {
	if ee.IsListening() {
		ee.scr.lib.PostEvent(&quitEvent{when: time.Now()})
		if ee.t != nil {
			ee.t.waitForSynced("test: quit listening: sync timed out")
		}
		return
	}
	ee.quitListening()
}

func (ee *Events) quitListening() {
	if ee.t != nil {
		ee.t.beforeFinalize()
	}
	ee.scr.lib.Fini()
	close(ee.Synced)
}

type quitEvent struct {
	when time.Time
}

func (u *quitEvent) When() time.Time { return u.when }

func (ee *Events) report(ev tcell.Event) (quit bool) {
	if ee.scr.ToSmall() {
		return ee.reportToSmall(ev)
	}
	switch ev := ev.(type) {
	case *tcell.EventResize:
		if listener := ee.resizeListener(); listener != nil {
			env := ee.env(ev)
			listener(env)
			ee.reportReported(env)
		}
	case *tcell.EventKey:
		return ee.reportKeyEvent(ev)
	case *tcell.EventMouse:
		ee.reportMouseEvent(ev)
	}
	return false
}

// reportToSmall handles reporting an event in case the view is to
// small, i.e. only reports the quit-event.
func (ee *Events) reportToSmall(ev tcell.Event) bool {
	if ev, ok := ev.(*tcell.EventKey); ok {
		if ee.isQuitEvent(ev) {
			if listener := ee.quitListener(); listener != nil {
				env := ee.env(ev)
				listener(env)
				ee.reportReported(env)
			}
			return true
		}
	}
	return false
}

func (ee *Events) reportKeyEvent(ev *tcell.EventKey) bool {
	if ee.isQuitEvent(ev) {
		if listener := ee.quitListener(); listener != nil {
			env := ee.env(ev)
			listener(env)
			ee.reportReported(env)
		}
		return true
	}
	if ev.Key() != tcell.KeyRune {
		return false
	}
	if l, ok := ee.ll.RuneListenerOf(ev.Rune()); ok {
		env := ee.env(ev)
		l(env)
		ee.reportReported(env)
	}
	return false
}

// reportMouseEvent classifies given mouse event by the state of the
// primary button into a down, move or up event and reports it to the
// respective listeners.
func (ee *Events) reportMouseEvent(ev *tcell.EventMouse) {
	x, y := ev.Position()
	primary := ev.Buttons()&tcell.Button1 != 0
	m := Mouse{X: x, Y: y, Primary: primary, Mod: ev.Modifiers()}

	var ll []MouseListener
	switch {
	case primary && !ee.pressed:
		ee.pressed = true
		ll = ee.ll.DownListeners()
	case !primary && ee.pressed:
		ee.pressed = false
		ll = ee.ll.UpListeners()
	default:
		ll = ee.ll.MoveListeners()
	}
	if len(ll) == 0 {
		return
	}

	env := ee.env(ev)
	for _, l := range ll {
		l(env, m)
		if env.stopBubbling {
			break
		}
	}
	ee.reportReported(env)
}

func (ee *Events) env(ev tcell.Event) *Env {
	return &Env{
		scr: ee.scr,
		EE:  ee,
		Evn: ev,
	}
}

// reportReported is for testing purposes reporting back each time an
// event was reported allowing the Events-fixture-implementation to
// count reported events and end the event-loop automatically after a
// certain amount of reported events.
func (ee *Events) reportReported(env *Env) {
	if env != nil {
		env.reset()
	}
	if l := ee.reportedListener(); l != nil {
		l()
	}
}

func (ee *Events) reportedListener() func() {
	ee.mutex.Lock()
	defer ee.mutex.Unlock()
	return ee.reported
}

func (ee *Events) resizeListener() Listener {
	ee.mutex.Lock()
	defer ee.mutex.Unlock()
	return ee.resize
}

func (ee *Events) isQuitEvent(ev *tcell.EventKey) bool {
	if ev.Key() == tcell.KeyRune {
		return ee.Features.RuneQuits(ev.Rune())
	}
	return ee.Features.KeyQuits(ev.Key())
}

func (ee *Events) quitListener() func(*Env) {
	ee.mutex.Lock()
	defer ee.mutex.Unlock()
	return ee.quit
}
