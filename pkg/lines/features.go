// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lines

import (
	"sync"

	"github.com/gdamore/tcell/v2"
)

// Feature classifies keys/runes for "internal" event handling.
type Feature uint64

const (
	// NoFeature classifies keys/runes not registered for any "internal"
	// event.
	NoFeature Feature = iota
	// FtQuit classifies keys/runes registered for the quit event.
	FtQuit
)

// Features provides information about keys/runes which are registered
// for features provided by the lines-package.  Note an Events instance
// is always initialized with a copy of DefaultFeatures which holds the
// quit-feature only.
type Features struct {
	mutex sync.RWMutex
	keys  map[tcell.ModMask]map[tcell.Key]Feature
	runes map[rune]Feature
}

// DefaultFeatures are the default runes and keys which are associated
// with internally handled events.
var DefaultFeatures = &Features{
	keys: map[tcell.ModMask]map[tcell.Key]Feature{
		tcell.ModNone: {
			tcell.KeyCtrlC: FtQuit,
			tcell.KeyCtrlD: FtQuit,
		},
	},
	runes: map[rune]Feature{
		'q': FtQuit,
	},
}

// Copy creates a new Features instance initialized with the features of
// receiving Features instance.
func (ff *Features) Copy() *Features {
	ff.mutex.RLock()
	defer ff.mutex.RUnlock()
	cpy := &Features{
		keys:  make(map[tcell.ModMask]map[tcell.Key]Feature),
		runes: map[rune]Feature{},
	}
	for m, kk := range ff.keys {
		cpy.keys[m] = map[tcell.Key]Feature{}
		for k, f := range kk {
			cpy.keys[m][k] = f
		}
	}
	for r, f := range ff.runes {
		cpy.runes[r] = f
	}
	return cpy
}

// KeyEvent maps a key to its internally handled event or to NoFeature
// if not registered.
func (ff *Features) KeyEvent(k tcell.Key, m tcell.ModMask) Feature {
	ff.mutex.RLock()
	defer ff.mutex.RUnlock()
	return ff.keys[m][k]
}

// RuneEvent maps a rune to its internally handled event or to
// NoFeature if not registered.
func (ff *Features) RuneEvent(r rune) Feature {
	ff.mutex.RLock()
	defer ff.mutex.RUnlock()
	return ff.runes[r]
}

// RuneQuits returns true iff given rune is registered for quitting.
func (ff *Features) RuneQuits(r rune) bool {
	return ff.RuneEvent(r) == FtQuit
}

// KeyQuits returns true iff given key without modifier is registered
// for quitting.
func (ff *Features) KeyQuits(k tcell.Key) bool {
	return ff.KeyEvent(k, tcell.ModNone) == FtQuit
}
