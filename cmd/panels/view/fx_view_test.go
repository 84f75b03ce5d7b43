// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package view

import (
	"fmt"

	"github.com/slukits/gounit"
	"github.com/slukits/panels"
	"github.com/slukits/panels/pkg/lines"
)

const (
	fxMsg    = "fx message"
	fxStatus = "fx status"
	fxWidth  = 40
	fxHeight = 10
)

// fxIniter provides a view with a fixed message and a status which is
// updated with the sizes reported by the root group.
type fxIniter struct {
	root   *Node
	update func(string)
}

func (fx *fxIniter) Message() string { return fxMsg }

func (fx *fxIniter) Status(upd func(string)) string {
	fx.update = upd
	return fxStatus
}

func (fx *fxIniter) Main() *Node { return fx.root }

// onChange reports given sizes to the status bar.
func (fx *fxIniter) onChange(ss []float64) {
	if fx.update == nil {
		return
	}
	fx.update(fmt.Sprintf("sizes: %v", ss))
}

// fxNode creates a root node whose group has the panels of given
// declaration displaying given contents.
func fxNode(
	fx *fxIniter, d panels.Declaration, cc ...string,
) *Node {
	return &Node{
		Group: panels.New(len(cc), d,
			panels.OnChange(fx.onChange), panels.WithHandlePadding(1)),
		Contents: cc,
	}
}

// fxFixedFlexFixed is a flexible panel between two fixed panels.
var fxFixedFlexFixed = panels.Declaration{
	InitialSize: []*float64{panels.Px(10), nil, panels.Px(10)},
	MinSize:     []*float64{panels.Px(5), panels.Px(5), panels.Px(5)},
	MaxSize:     []*float64{panels.Px(15), nil, panels.Px(15)},
	Flex:        []bool{false, true, false},
}

// fx creates a view for given root node created by given function and
// returns it along with the lines fixtures listening on a simulated
// screen of size fxWidth x fxHeight.  NOTE the caller is responsible
// for quitting the event loop.
func fx(
	t *gounit.T, root func(*fxIniter) *Node,
) (*View, *lines.Events, *lines.Testing) {
	ee, tt := lines.Test(t.GoT(), 0)
	i := &fxIniter{}
	i.root = root(i)
	v := New(i, ee)
	tt.FireResize(fxWidth, fxHeight)
	return v, ee, tt
}

// fxCell returns the runes of given cell.
func fxCell(tt *lines.Testing, x, y int) string {
	return string(tt.Cell(x, y).Runes)
}
