// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package config

import "github.com/slukits/panels"

// DefaultHandleColor is the handle color of the default layout.
const DefaultHandleColor = "#cbd0d5"

// Lorem is the content of the default layout's panels.
const Lorem = "Lorem ipsum dolor sit amet, consectetur adipisicing " +
	"elit, sed do eiusmod tempor incididunt ut labore et dolore magna " +
	"aliqua. Ut enim ad minim veniam, quis nostrud exercitation " +
	"ullamco laboris nisi ut aliquip ex ea commodo consequat."

// Default returns the layout which is used if no layout file is given:
// a canvas between two sidebars whereas the left sidebar has a fixed
// bottom panel and the right sidebar three equally sized panels.
func Default() *Layout {
	padding := 1
	handle := Handle{Padding: &padding, Color: DefaultHandleColor}
	fixed := false
	return &Layout{Group: Group{
		Direction: "horizontal",
		Handle:    handle,
		Panels: []Panel{
			{
				InitialSize: panels.Px(20),
				MinSize:     panels.Px(10),
				MaxSize:     panels.Px(30),
				Flex:        &fixed,
				Group: &Group{
					Direction: "vertical",
					Handle:    handle,
					Panels: []Panel{
						{Content: Lorem},
						{
							InitialSize: panels.Px(8),
							MinSize:     panels.Px(4),
							MaxSize:     panels.Px(16),
							Flex:        &fixed,
							Content:     Lorem,
						},
					},
				},
			},
			{MinSize: panels.Px(10), Content: Lorem},
			{
				InitialSize: panels.Px(20),
				MinSize:     panels.Px(10),
				MaxSize:     panels.Px(30),
				Flex:        &fixed,
				Group: &Group{
					Direction: "vertical",
					Handle:    handle,
					Panels: []Panel{
						{Content: Lorem}, {Content: Lorem}, {Content: Lorem},
					},
				},
			},
		},
	}}
}
