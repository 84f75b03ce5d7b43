// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lines

import (
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
)

// Testing augments lines.Events instance created by *Test* with useful
// features for testing like firing an event or getting the current
// screen content as string.
// NOTE do not use an Events/Testing-instances concurrently.
// NOTE Events.Listen-method becomes non-blocking and starts event-loop
// polling in its own go-routine.
// NOTE all event triggering methods start event-listening if it is not
// already started.
// NOTE It is guaranteed that all methods of an Events/Testing-instances
// which trigger an event do not return before the event is processed
// and any screen manipulations are printed to the screen, e.g.
//
//	func TestTest(t *testing.T) {
//	    ee, tt := lines.Test(t, 3)
//	    ee.Rune('a', func(e *lines.Env) {
//	        e.Print(0, 0, "42", tcell.StyleDefault)
//	        // QuitListening is also event-triggering
//	        e.EE.QuitListening()
//	    })
//	    // FireRune is event triggering, i.e. starts the event loop
//	    tt.FireRune('a')
//	    // here it is guaranteed that all three events: initial resize,
//	    // rune and quitting are processed with all their screen output
//	    if ee.IsListening() {
//	        t.Error("expect listening to have stopped")
//	    }
//	    if tt.LastScreen != "42" {
//	        t.Errorf("expected 42 on screen; got %s", tt.LastScreen)
//	    }
//	}
type Testing struct {
	ee            *Events
	lib           tcell.SimulationScreen
	autoTerminate bool
	mutex         *sync.Mutex
	waitStack     []string
	waiting       bool
	t             *testing.T

	// Max is the number of reported events after which the
	// event-loop of a register-fixture is terminated.  Max is
	// decremented after each reported event.  I.e. events for which no
	// listener is registered are not counted.
	Max int

	// LastScreen provides the screen content right before quitting
	// listening.  NOTE it is guaranteed that that this snapshot is
	// taken *after* all lines-updates have made it to the screen.
	LastScreen string

	// Timeout defines how long an event-triggering method waits for the
	// event to be processed.  It defaults to 100ms.
	Timeout time.Duration
}

func decrement(ee *Testing) func() {
	return func() {
		ee.Max--
	}
}

// Test creates a new Events-test-fixture with additional features for
// testing.  *max* defaults to 1, i.e. after *Listen* was called the
// event-loop stops automatically after the first reported event.  Is
// *max* not positive listening doesn't stop automatically.  *Max*
// decrements after each reported event.
// Timeout defaults to 200ms; i.e. how long the fixture waits during an
// event generating operation for the event being fully processed.  E.g.
//
//	func TestTest(t *testing.T) {
//	    // stop listening after two reported events
//	    ee, tt := lines.Test(t, 2)
//	    ee.Resize(func(e *lines.Env) {
//	        w, h := e.Size()
//	        e.Print(0, 0, fmt.Sprintf("%dx%d", w, h), tcell.StyleDefault)
//	    })
//	    // the initial resize is the first reported event, the fired
//	    // resize the second, i.e. listening is terminated afterwards.
//	    tt.FireResize(20, 4)
//	    if ee.IsListening() {
//	        t.Error("expected stop listening after 2 reported events")
//	    }
//	    if tt.LastScreen != "20x4" {
//	        t.Errorf("expected screen 20x4; got %s", tt.LastScreen)
//	    }
//	}
//
// Event generating operations on the test-fixture are *FireResize*,
// *FireKey*, *FireRune* and *FireMouse*; on the Events-instance:
// *Listen* and *QuitListening*.
func Test(t *testing.T, max ...int) (*Events, *Testing) {
	t.Helper()
	ee, lib, err := Sim()
	if err != nil {
		t.Fatalf("test: init sim: %v", err)
	}
	ee.t = &Testing{ee: ee, lib: lib, t: t,
		Timeout: 200 * time.Millisecond,
		mutex:   &sync.Mutex{}}
	switch len(max) {
	case 0:
		ee.t.SetMax(1)
	default:
		ee.t.SetMax(max[0])
	}
	return ee, ee.t
}

// SetMax define the maximum number of reported events before listening
// for events is terminated automatically.  If m is 0 (or lower)
// listening doesn't stop automatically.
func (fx *Testing) SetMax(m int) *Events {
	switch {
	case m <= 0:
		if fx.ee.reported != nil {
			fx.ee.reported = nil
		}
		fx.autoTerminate = false
	default:
		fx.ee.reported = decrement(fx)
		fx.autoTerminate = true
	}
	fx.Max = m
	return fx.ee
}

const TestPanic = "test: can't call event triggering operation " +
	"in listener callback"

// waitForSynced waits on associated Events.Synced channel if not
// already waiting.  If already waiting the wait-stack is increased
// by given err and waitForSynced returns; leaving it to the currently
// waiting waitForSynced call to wait for this synchronization as well.
func (fx *Testing) waitForSynced(err string) {
	if fx.pushWaiting(err) { // return if already waiting
		return
	}
	tmr := time.NewTimer(fx.Timeout)
	for err := fx.popWaiting(); err != ""; err = fx.popWaiting() {
		select {
		case <-fx.ee.Synced:
			tmr.Reset(fx.Timeout)
		case <-tmr.C:
			fx.t.Fatal(err)
		}
	}
	tmr.Stop()
}

// pushWaiting adds given string onto the wait-stack and returns true if
// if we are already waiting otherwise false and waiting is started.
func (fx *Testing) pushWaiting(err string) bool {
	fx.mutex.Lock()
	defer fx.mutex.Unlock()
	fx.waitStack = append(fx.waitStack, err)
	if fx.waiting {
		return true
	}
	fx.waiting = true
	return false
}

// popWaiting pops the first entry from the wait-stack and returns its
// error string unless the wait-stack is empty in which case the empty
// string is returned and we stop *waiting*.
func (fx *Testing) popWaiting() string {
	fx.mutex.Lock()
	defer fx.mutex.Unlock()
	if len(fx.waitStack) == 0 {
		fx.waiting = false
		return ""
	}
	err := fx.waitStack[0]
	fx.waitStack = fx.waitStack[1:]
	return err
}

// FireResize posts a resize event for given screen size and returns
// after this event has been processed.  Is associated Events instance
// not listening it is started before the event is fired.
func (fx *Testing) FireResize(width, height int) *Events {
	fx.t.Helper()
	if !fx.ee.IsListening() {
		fx.listen()
	}
	fx.lib.SetSize(width, height)
	err := fx.lib.PostEvent(tcell.NewEventResize(width, height))
	if err != nil {
		fx.t.Fatal(err)
	}
	fx.waitForSynced("test: fire resize: sync timed out")
	fx.checkTermination()
	return fx.ee
}

// FireRune posts given run-key-press event and returns after this
// event has been processed.  Note modifier keys are ignored for
// rune-triggered key-events.  Are wrapped Events not polling it is
// started (ee.Listen()).
func (fx *Testing) FireRune(r rune) *Events {
	if !fx.ee.IsListening() {
		fx.listen()
	}
	fx.lib.InjectKey(tcell.KeyRune, r, tcell.ModNone)
	fx.waitForSynced("test: fire rune: sync timed out")
	fx.checkTermination()
	return fx.ee
}

// FireKey posts given special-key event and returns after this
// event has been processed.  Are wrapped Events not polling it is
// started (ee.Listen()).
func (fx *Testing) FireKey(k tcell.Key, m ...tcell.ModMask) *Events {
	fx.t.Helper()
	if !fx.ee.IsListening() {
		fx.listen()
	}
	if len(m) == 0 {
		fx.lib.InjectKey(k, 0, tcell.ModNone)
	} else {
		fx.lib.InjectKey(k, 0, m[0])
	}
	fx.waitForSynced("test: fire key: sync timed out")
	fx.checkTermination()
	return fx.ee
}

// FireMouse posts a mouse event at given cell with given buttons
// pressed and returns after this event has been processed.  Are
// wrapped Events not polling it is started (ee.Listen()).  E.g. a drag
// from (10, 5) to (14, 5) is fired by
//
//	tt.FireMouse(10, 5, tcell.Button1)
//	tt.FireMouse(14, 5, tcell.Button1)
//	tt.FireMouse(14, 5, tcell.ButtonNone)
func (fx *Testing) FireMouse(
	x, y int, bm tcell.ButtonMask, m ...tcell.ModMask,
) *Events {
	fx.t.Helper()
	if !fx.ee.IsListening() {
		fx.listen()
	}
	if len(m) == 0 {
		fx.lib.InjectMouse(x, y, bm, tcell.ModNone)
	} else {
		fx.lib.InjectMouse(x, y, bm, m[0])
	}
	fx.waitForSynced("test: fire mouse: sync timed out")
	fx.checkTermination()
	return fx.ee
}

// listen posts the initial resize event and starts listening for events
// in a new go-routine.  listen returns after the initial resize has
// completed.
func (fx *Testing) listen() *Events {
	fx.t.Helper()
	err := fx.lib.PostEvent(tcell.NewEventResize(fx.lib.Size()))
	if err != nil {
		fx.t.Fatalf("test: listen: post resize: %v", err)
	}
	go fx.ee.listen()
	fx.waitForSynced("test: listen: sync timed out")
	fx.checkTermination()
	return fx.ee
}

func (fx *Testing) checkTermination() {
	if !fx.autoTerminate {
		return
	}
	if fx.Max <= 0 {
		// the last reported event might was a quit event,
		if fx.ee.IsListening() { // i.e. we stopped already listening
			fx.ee.QuitListening()
			fx.waitForSynced("quit listening: sync timed out")
		}
	}
}

func (fx *Testing) beforeFinalize() {
	fx.LastScreen = fx.String()
}

// String returns the test-screen's content as string with line breaks
// where a new screen line starts.  Empty lines at the end of the screen
// are not returned and empty cells at the end of a line are trimmed.
// I.e.
//
//	+-------------+
//	|             |
//	|   content   |   => "content"
//	|             |
//	+-------------+
func (fx *Testing) String() string {
	b, w, h := fx.lib.GetContents()
	sb := &strings.Builder{}
	for i := 0; i < h; i++ {
		line := ""
		for j := 0; j < w; j++ {
			cell := b[cellIdx(j, i, w)]
			if len(cell.Runes) == 0 {
				continue
			}
			line += string(cell.Runes[0])
		}
		if len(strings.TrimSpace(line)) == 0 {
			sb.WriteString("\n")
			continue
		}
		sb.WriteString(strings.TrimRight(
			line, " \t\r") + "\n")
	}
	return strings.TrimLeft(
		strings.TrimRight(sb.String(), " \t\r\n"), "\n")
}

// Cell returns the content of the screen cell at given coordinates.
func (fx *Testing) Cell(x, y int) tcell.SimCell {
	b, w, h := fx.lib.GetContents()
	if x < 0 || y < 0 || x >= w || y >= h {
		return tcell.SimCell{}
	}
	return b[cellIdx(x, y, w)]
}

func cellIdx(x, y, w int) int {
	if x == 0 {
		return y * w
	}
	if y == 0 {
		return x
	}
	return y*w + x
}
