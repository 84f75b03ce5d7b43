// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package controller builds the panel groups of a layout, hands them
// to a view and runs the event loop until the user quits.
package controller

import (
	"fmt"
	"log"
	"strings"

	"github.com/google/go-cmp/cmp"
	"github.com/slukits/panels"
	"github.com/slukits/panels/cmd/panels/config"
	"github.com/slukits/panels/cmd/panels/view"
	"github.com/slukits/panels/pkg/lines"
	"github.com/slukits/panels/pkg/logger"
)

// DefaultMessage is the message bar's content for the default layout.
const DefaultMessage = "panels: default layout"

// ReloadRune reads a loaded layout file anew.
const ReloadRune = 'r'

// InitFactories provides the collaborators of a controller.  Zero
// values are replaced by defaults.
type InitFactories struct {

	// Fatal reports errors which prevent the controller from running;
	// it defaults to log.Fatal.
	Fatal func(...interface{})

	// Layout defaults to config.Default.
	Layout *config.Layout

	// Events provides the event loop; it defaults to lines.New.
	Events func() (*lines.Events, error)

	// View creates the view; it defaults to view.New.
	View func(view.Initer, *lines.Events) *view.View
}

func (i *InitFactories) defaults() {
	if i.Fatal == nil {
		i.Fatal = log.Fatal
	}
	if i.Layout == nil {
		i.Layout = config.Default()
	}
	if i.Events == nil {
		i.Events = lines.New
	}
	if i.View == nil {
		i.View = view.New
	}
}

type controller struct {
	layout *config.Layout
	root   *view.Node
	view   *view.View
	status func(string)
}

// New starts the application with given collaborators and blocks until
// a quit event occurs.
func New(i InitFactories) {
	i.defaults()
	ee, err := i.Events()
	if err != nil {
		i.Fatal(err)
		return
	}
	c := &controller{layout: i.Layout}
	c.root = c.node(&i.Layout.Group, true)
	c.view = i.View(&vwIniter{controller: c}, ee)
	if i.Layout.Path != "" {
		if err := ee.Rune(ReloadRune, c.reload); err != nil {
			ee.QuitListening()
			i.Fatal(err)
			return
		}
	}
	ee.Quit(func(*lines.Env) { logger.Info("quit") })
	logger.Info("listening", "layout", c.message())
	ee.Listen()
}

// node creates the view node of given group along with the nodes of
// its nested groups.  Only the root group reports its sizes to the
// status bar.
func (c *controller) node(g *config.Group, root bool) *view.Node {
	dir := g.Declaration().Direction
	oo := append(g.Options(), panels.OnChange(c.onChange(root, dir)))
	n := &view.Node{
		Group:    panels.New(len(g.Panels), g.Declaration(), oo...),
		Contents: make([]string, len(g.Panels)),
		Children: make([]*view.Node, len(g.Panels)),
	}
	for i, p := range g.Panels {
		n.Contents[i] = p.Content
		if p.Group != nil {
			n.Children[i] = c.node(p.Group, false)
		}
	}
	return n
}

// reload reads the layout file anew.  The groups of a layout with
// unchanged shape are reconfigured otherwise they are replaced.  The
// logging settings of the running layout are kept.
func (c *controller) reload(e *lines.Env) {
	l, err := config.Load(c.layout.Path)
	if err != nil {
		logger.Warn("reload failed", "err", err)
		c.view.Reload(e, fmt.Sprintf("panels: reload failed: %v", err),
			c.root)
		return
	}
	l.Logging = c.layout.Logging
	replace := !sameShape(&c.layout.Group, &l.Group)
	if replace {
		c.root = c.node(&l.Group, true)
	} else {
		configure(c.root, &l.Group)
	}
	c.layout = l
	logger.Info("reloaded", "layout", l.Path, "replaced", replace)
	c.view.Reload(e, c.message(), c.root)
}

// sameShape returns true if given groups have the same number of
// panels, the same handle style and groups nested in the same panels.
func sameShape(a, b *config.Group) bool {
	if len(a.Panels) != len(b.Panels) || !cmp.Equal(a.Handle, b.Handle) {
		return false
	}
	for i := range a.Panels {
		na, nb := a.Panels[i].Group, b.Panels[i].Group
		if (na == nil) != (nb == nil) {
			return false
		}
		if na != nil && !sameShape(na, nb) {
			return false
		}
	}
	return true
}

// configure updates given node and its nested nodes with the
// declarations and contents of given group of the same shape.
func configure(n *view.Node, g *config.Group) {
	n.Group.Configure(len(g.Panels), g.Declaration())
	for i, p := range g.Panels {
		n.Contents[i] = p.Content
		if p.Group != nil {
			configure(n.Children[i], p.Group)
		}
	}
}

func (c *controller) onChange(
	root bool, dir panels.Direction,
) func([]float64) {
	return func(ss []float64) {
		logger.Debug("sizes changed",
			"root", root, "direction", dir.String(), "sizes", ss)
		if !root || c.status == nil {
			return
		}
		c.status(Status(ss))
	}
}

func (c *controller) message() string {
	if c.layout.Path == "" {
		return DefaultMessage
	}
	return fmt.Sprintf("panels: %s", c.layout.Path)
}

// Status returns the status bar's content for given sizes of the root
// group's panels.
func Status(ss []float64) string {
	sb := &strings.Builder{}
	sb.WriteString("sizes:")
	for _, s := range ss {
		fmt.Fprintf(sb, " %g", s)
	}
	return sb.String()
}

// vwIniter implements view.Initer, i.e. provides the initial data to a
// new view and collects the provided view modifiers.
type vwIniter struct{ controller *controller }

func (i *vwIniter) Message() string { return i.controller.message() }

func (i *vwIniter) Status(upd func(string)) string {
	i.controller.status = upd
	return "sizes:"
}

func (i *vwIniter) Main() *view.Node { return i.controller.root }
