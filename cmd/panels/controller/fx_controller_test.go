// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package controller

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/slukits/gounit"
	"github.com/slukits/panels/cmd/panels/config"
	"github.com/slukits/panels/pkg/lines"
)

// fx starts a controller with given factories whose event loop runs on
// a simulation screen and returns the lines fixtures.  Unexpected
// fatal errors fail the test.  NOTE fx doesn't return before the
// controller is listening and the caller is responsible for quitting.
func fx(t *gounit.T, i InitFactories) (*lines.Events, *lines.Testing) {
	var (
		ee *lines.Events
		tt *lines.Testing
	)
	if i.Fatal == nil {
		i.Fatal = func(ii ...interface{}) {
			t.Fatalf("unexpected error: %s", fmt.Sprint(ii...))
		}
	}
	i.Events = func() (*lines.Events, error) {
		ee, tt = lines.Test(t.GoT(), 0)
		return ee, nil
	}
	New(i)
	return ee, tt
}

// fxSidebar is a layout of a fixed sidebar next to a flexible canvas.
const fxSidebar = `
group:
  panels:
    - initialSize: %d
      flex: false
      content: sidebar
    - content: canvas
`

// fxNestedSidebar nests a vertical group in fxSidebar's canvas.
const fxNestedSidebar = `
group:
  panels:
    - initialSize: %d
      flex: false
      content: sidebar
    - group:
        direction: vertical
        panels:
          - content: top
          - content: bottom
`

// fxLayout writes given layout content to a layout file in a temporary
// directory and returns the loaded layout.
func fxLayout(t *gounit.T, content string) *config.Layout {
	fl := filepath.Join(t.GoT().TempDir(), "layout.yaml")
	fxWrite(t, fl, content)
	l, err := config.Load(fl)
	t.FatalOn(err)
	return l
}

// fxWrite replaces the content of given layout file.
func fxWrite(t *gounit.T, path, content string) {
	t.FatalOn(os.WriteFile(path, []byte(content), 0644))
}
