// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lines

import (
	"sync"

	"github.com/gdamore/tcell/v2"
)

// ErrScr is a single message which is centered on an otherwise empty
// screen while it is active.
type ErrScr struct {
	lib     tcell.Screen
	content string
	isDirty bool
	mutex   sync.Mutex
	Active  bool
	Style   tcell.Style
}

// IsDirty returns true if the message changed since it was last
// written to the screen.
func (e *ErrScr) IsDirty() bool {
	e.mutex.Lock()
	defer e.mutex.Unlock()
	return e.isDirty
}

func (e *ErrScr) String() string {
	e.mutex.Lock()
	defer e.mutex.Unlock()
	return e.content
}

// Set sets the error screen's message.
func (e *ErrScr) Set(s string) {
	e.mutex.Lock()
	defer e.mutex.Unlock()
	if s == e.content {
		return
	}
	if !e.isDirty {
		e.isDirty = true
	}
	e.content = s
}

func (e *ErrScr) sync() {
	e.mutex.Lock()
	defer e.mutex.Unlock()
	e.isDirty = false
	e.lib.Clear()
	w, h := e.lib.Size()
	y := h / 2
	x := w/2 - len(e.content)/2
	if len(e.content) > w {
		x = 0
	}
	for i, r := range e.content {
		e.lib.SetContent(x+i, y, r, nil, e.Style)
	}
}
