// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lines

import (
	"errors"
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"
)

// Listener is the most common type of listener: a callback provided
// with the environment of the reported event.
type Listener = func(*Env)

// Mouse is a classified mouse event: its cell coordinates and whether
// the primary button is pressed.
type Mouse struct {
	X, Y    int
	Primary bool
	Mod     tcell.ModMask
}

// MouseListener is informed about classified mouse events.
type MouseListener = func(*Env, Mouse)

// Listeners resembles a concurrency save set of registered event
// listeners mapped to their events.
type Listeners struct {
	mutex      *sync.Mutex
	isQuitting func(r rune) bool
	rr         map[rune]Listener
	id         int
	down       []mouseListener
	move       []mouseListener
	up         []mouseListener
}

type mouseListener struct {
	id int
	l  MouseListener
}

// IsQuitter provides the information which runes may not be used for
// listener registration since they are used for quitting.
type IsQuitter interface {
	// RuneQuits returns true iff given rune (event) quits event loop
	// listening.
	RuneQuits(rune) bool
}

// NewListeners creates a new listener instance whereas given
// is-quitter defines the runes which are registered for quitting the
// listening to the event-loop.  If IsQuitter is nil DefaultFeatures is
// used.
func NewListeners(ff IsQuitter) *Listeners {
	if ff == nil {
		ff = DefaultFeatures
	}
	return &Listeners{
		isQuitting: ff.RuneQuits,
		mutex:      &sync.Mutex{},
		rr:         map[rune]Listener{},
	}
}

// ErrEvents is the general type for errors at listener registration.
var ErrEvents = errors.New("add event")

// ErrZeroRune for attempting to register for the zero-rune.
var ErrZeroRune = fmt.Errorf("%w: can't register zero-rune", ErrEvents)

// ErrQuit for attempting to register for a rune which is associated
// with the quit-feature.
var ErrQuit = fmt.Errorf("%w: associated with quit event", ErrEvents)

// ErrExists for attempting to register for a rune which is already
// registered.
var ErrExists = fmt.Errorf("%w: already registered", ErrEvents)

// Rune registers provided listener for given rune respectively removes
// the registration for given rune if the listener is nil.  Rune fails
// if already a listener is registered for given rune or if the zero
// rune is given or if given rune is associated with the quit-feature.
// NOTE use *Quit* at an Events-instance to receive the Quit-event.
func (kk *Listeners) Rune(r rune, l Listener) error {
	kk.mutex.Lock()
	defer kk.mutex.Unlock()

	if l == nil {
		delete(kk.rr, r)
		return nil
	}

	if r == rune(0) {
		return ErrZeroRune
	}
	if kk.isQuitting(r) {
		return ErrQuit
	}
	if _, ok := kk.rr[r]; ok {
		return fmt.Errorf("%w: %c", ErrExists, r)
	}

	kk.rr[r] = l
	return nil
}

// RuneListenerOf returns the listener registered for given rune.  The
// second return value is false if no listener is registered for given
// rune.
func (kk *Listeners) RuneListenerOf(r rune) (Listener, bool) {
	kk.mutex.Lock()
	defer kk.mutex.Unlock()

	l, ok := kk.rr[r]
	return l, ok
}

// MouseDown registers given listener for pressing the primary button.
// The returned function removes the registration; calling it more
// than once is a no-op.
func (kk *Listeners) MouseDown(l MouseListener) (release func()) {
	return kk.addMouse(&kk.down, l)
}

// MouseMove registers given listener for mouse moves.  The returned
// function removes the registration; calling it more than once is a
// no-op.
func (kk *Listeners) MouseMove(l MouseListener) (release func()) {
	return kk.addMouse(&kk.move, l)
}

// MouseUp registers given listener for releasing the primary button.
// The returned function removes the registration; calling it more than
// once is a no-op.
func (kk *Listeners) MouseUp(l MouseListener) (release func()) {
	return kk.addMouse(&kk.up, l)
}

func (kk *Listeners) addMouse(
	ll *[]mouseListener, l MouseListener,
) func() {
	if l == nil {
		return func() {}
	}
	kk.mutex.Lock()
	defer kk.mutex.Unlock()

	kk.id++
	id := kk.id
	*ll = append(*ll, mouseListener{id: id, l: l})
	return func() { kk.delMouse(ll, id) }
}

func (kk *Listeners) delMouse(ll *[]mouseListener, id int) {
	kk.mutex.Lock()
	defer kk.mutex.Unlock()

	for i, ml := range *ll {
		if ml.id != id {
			continue
		}
		*ll = append((*ll)[:i:i], (*ll)[i+1:]...)
		return
	}
}

// DownListeners returns the registered mouse down listeners, most
// recently registered first.
func (kk *Listeners) DownListeners() []MouseListener {
	kk.mutex.Lock()
	defer kk.mutex.Unlock()

	ll := make([]MouseListener, len(kk.down))
	for i, ml := range kk.down {
		ll[len(ll)-1-i] = ml.l
	}
	return ll
}

// MoveListeners returns a snapshot of the registered mouse move
// listeners in registration order.
func (kk *Listeners) MoveListeners() []MouseListener {
	return kk.snapshot(&kk.move)
}

// UpListeners returns a snapshot of the registered mouse up listeners
// in registration order.
func (kk *Listeners) UpListeners() []MouseListener {
	return kk.snapshot(&kk.up)
}

func (kk *Listeners) snapshot(ll *[]mouseListener) []MouseListener {
	kk.mutex.Lock()
	defer kk.mutex.Unlock()

	ss := make([]MouseListener, len(*ll))
	for i, ml := range *ll {
		ss[i] = ml.l
	}
	return ss
}
