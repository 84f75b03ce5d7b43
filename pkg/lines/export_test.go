// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lines

import "github.com/gdamore/tcell/v2"

// SetScreenFactory allows to mock up tcell's screen generation for
// error handling testing.
func SetScreenFactory(f screenFactoryer) { screenFactory = f }

// DefaultScreenFactory returns the production screen factory.
func DefaultScreenFactory() screenFactoryer { return &defaultFactory{} }

// Lib returns the tcell screen of given events.
func Lib(ee *Events) tcell.Screen { return ee.scr.lib }
