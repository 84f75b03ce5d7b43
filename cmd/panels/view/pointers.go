// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package view

import (
	"github.com/slukits/panels"
	"github.com/slukits/panels/pkg/lines"
)

// pointers provides the process wide mouse move and up events of a
// lines.Events instance as pointer events to a group's drag session.
// The view is laid out and redrawn after each reported pointer event.
type pointers struct {
	ee     *lines.Events
	update func(*lines.Env)
}

func (pp *pointers) OnMove(l panels.PointerListener) func() {
	return pp.ee.MouseMove(pp.listener(l))
}

func (pp *pointers) OnUp(l panels.PointerListener) func() {
	return pp.ee.MouseUp(pp.listener(l))
}

func (pp *pointers) listener(l panels.PointerListener) lines.MouseListener {
	return func(e *lines.Env, m lines.Mouse) {
		l(pointer(m))
		pp.update(e)
	}
}

func pointer(m lines.Mouse) panels.Pointer {
	return panels.Pointer{
		X: float64(m.X), Y: float64(m.Y), Primary: m.Primary}
}
