// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package lines wraps a tcell screen into an event loop which reports
// user input to registered listeners and keeps the screen in sync with
// what listeners draw.
//
//	ee, err := lines.New()
//	if err != nil {
//	    log.Fatalf("can't acquire events: %v", err)
//	}
//	ee.Resize(func(e *lines.Env) {
//	    w, h := e.Size()
//	    e.Print(0, 0, fmt.Sprintf("%dx%d", w, h), tcell.StyleDefault)
//	})
//	ee.Listen()
//
// Listen blocks until a quit-event ('q', ctrl-c, ctrl-d) is received or
// QuitListening is called.
//
// # Mouse
//
// Mouse events are classified by the state of the primary button:
// pressing it reports a down-event to the down listeners, moving the
// mouse reports a move-event to the move listeners and releasing the
// button reports an up-event to the up listeners.  Down listeners are
// called most recently registered first until one of them calls
// Env.StopBubbling.  Move and up listeners are process wide: each of
// them is informed about every move respectively release until it is
// released:
//
//	release := ee.MouseMove(func(e *lines.Env, m lines.Mouse) {
//	    if !m.Primary {
//	        // the button was released outside the screen
//	    }
//	})
//	defer release()
//
// # Runes
//
// A rune listener is informed about the key press of its rune:
//
//	if err := ee.Rune('r', reload); err != nil {
//	    // 'r' is already registered or quits
//	}
//
// Runes of the quit feature can't be registered.  All listeners are
// called from the event loop's go routine.
//
// # Testing
//
// Test provides an Events instance backed by tcell's simulation screen
// along with a Testing instance which fires events and returns after
// they have been processed, see Test.
package lines

import (
	"errors"
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"
)

// ErrScreen is returned by New if no terminal screen can be obtained.
var ErrScreen = errors.New("lines: can't obtain screen")

// ErrInit is returned by New and Sim if an obtained screen fails to
// initialize.
var ErrInit = errors.New("lines: can't initialize screen")

// New returns an Events instance reporting the events of the terminal
// screen.  New fails if the screen can't be obtained or initialized.
func New() (*Events, error) {
	lib, err := screenFactory.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrScreen, err)
	}
	if err := lib.Init(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInit, err)
	}
	return newEvents(lib), nil
}

// Sim returns an Events instance reporting the events of a simulation
// screen which is returned as well.
func Sim() (*Events, tcell.SimulationScreen, error) {
	lib := screenFactory.NewSimulationScreen("")
	if lib == nil {
		return nil, nil, ErrScreen
	}
	if err := lib.Init(); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrInit, err)
	}
	return newEvents(lib), lib, nil
}

func newEvents(lib tcell.Screen) *Events {
	lib.EnableMouse()
	ff := DefaultFeatures.Copy()
	return &Events{
		scr:      &Screen{lib: lib},
		mutex:    &sync.Mutex{},
		ll:       NewListeners(ff),
		Synced:   make(chan bool, 1),
		Features: ff,
	}
}
