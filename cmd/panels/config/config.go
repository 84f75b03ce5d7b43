// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package config loads the layout a panels demo is started with.  A
// layout is a tree of panel groups described by a YAML file, e.g.
//
//	group:
//	  direction: horizontal
//	  handle:
//	    padding: 1
//	    color: "#cbd0d5"
//	  panels:
//	    - initialSize: 20
//	      minSize: 10
//	      maxSize: 30
//	      flex: false
//	      content: sidebar
//	    - content: canvas
//	    - group:
//	        direction: vertical
//	        panels:
//	          - content: top
//	          - content: bottom
//	logging:
//	  level: debug
//	  file: panels.log
//
// A relative log file is relative to the layout file's directory.
// Sizes are given in terminal cells.  A panel is flexible and
// resizable unless stated otherwise.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/slukits/panels"
	"github.com/slukits/panels/pkg/logger"
	"gopkg.in/yaml.v3"
)

// ErrConfig is returned by Load if a layout file can't be read or
// parsed.
var ErrConfig = errors.New("config: can't load layout")

// ErrDirection is returned by Load if a group has an unknown
// direction.
var ErrDirection = errors.New("config: unknown direction")

// ErrPanelCount is returned by Load if a group has no panels.
var ErrPanelCount = errors.New("config: group without panels")

// Layout is the root of a loaded layout file.
type Layout struct {
	Group   Group         `yaml:"group"`
	Logging logger.Config `yaml:"logging,omitempty"`

	// Path is the file a layout was loaded from; it is empty for the
	// default layout.
	Path string `yaml:"-"`
}

// Group describes a panel group and its panels.
type Group struct {
	Direction string  `yaml:"direction,omitempty"`
	Handle    Handle  `yaml:"handle,omitempty"`
	Panels    []Panel `yaml:"panels"`
}

// Handle describes the boundary handles of a group.
type Handle struct {
	Padding *int   `yaml:"padding,omitempty"`
	Color   string `yaml:"color,omitempty"`
}

// Panel describes a single panel of a group.  A panel either displays
// its content or a nested group.
type Panel struct {
	InitialSize *float64 `yaml:"initialSize,omitempty"`
	MinSize     *float64 `yaml:"minSize,omitempty"`
	MaxSize     *float64 `yaml:"maxSize,omitempty"`
	Flex        *bool    `yaml:"flex,omitempty"`
	Resizable   *bool    `yaml:"resizable,omitempty"`
	Content     string   `yaml:"content,omitempty"`
	Group       *Group   `yaml:"group,omitempty"`
}

// Load reads the layout file at given path.
func Load(path string) (*Layout, error) {
	bb, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrConfig, path, err)
	}
	l := &Layout{}
	if err := yaml.Unmarshal(bb, l); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrConfig, path, err)
	}
	l.Path = path
	if l.Logging.File != "" && !filepath.IsAbs(l.Logging.File) {
		l.Logging.File = filepath.Join(filepath.Dir(path), l.Logging.File)
	}
	if err := l.Group.validate("group"); err != nil {
		return nil, fmt.Errorf("%w: %s", err, path)
	}
	return l, nil
}

func (g *Group) validate(at string) error {
	if _, err := g.direction(); err != nil {
		return fmt.Errorf("%w: %s: %q", err, at, g.Direction)
	}
	if len(g.Panels) == 0 {
		return fmt.Errorf("%w: %s", ErrPanelCount, at)
	}
	for i, p := range g.Panels {
		if p.Group == nil {
			continue
		}
		if err := p.Group.validate(
			fmt.Sprintf("%s.panels[%d].group", at, i)); err != nil {
			return err
		}
	}
	return nil
}

func (g *Group) direction() (panels.Direction, error) {
	switch g.Direction {
	case "", "horizontal", "row":
		return panels.Horizontal, nil
	case "vertical", "column":
		return panels.Vertical, nil
	}
	return panels.Horizontal, ErrDirection
}

// Declaration returns the engine declaration of a group's panels.
func (g *Group) Declaration() panels.Declaration {
	dir, _ := g.direction()
	d := panels.Declaration{
		Direction:   dir,
		InitialSize: make([]*float64, len(g.Panels)),
		MinSize:     make([]*float64, len(g.Panels)),
		MaxSize:     make([]*float64, len(g.Panels)),
		Flex:        make([]bool, len(g.Panels)),
		Resizable:   make([]bool, len(g.Panels)),
	}
	for i, p := range g.Panels {
		d.InitialSize[i] = p.InitialSize
		d.MinSize[i] = p.MinSize
		d.MaxSize[i] = p.MaxSize
		d.Flex[i] = p.Flex == nil || *p.Flex
		d.Resizable[i] = p.Resizable == nil || *p.Resizable
	}
	return d
}

// Options returns the engine options of a group's handle settings.
func (g *Group) Options() []panels.Option {
	oo := []panels.Option{}
	if g.Handle.Padding != nil {
		oo = append(oo, panels.WithHandlePadding(*g.Handle.Padding))
	}
	if g.Handle.Color != "" {
		oo = append(oo, panels.WithHandleColor(g.Handle.Color))
	}
	return oo
}
