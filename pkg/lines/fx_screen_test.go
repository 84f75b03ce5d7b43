// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lines

import (
	"errors"

	"github.com/gdamore/tcell/v2"
)

var errMockScreen = errors.New("mock: screen: can't create screen")

var errMockInit = errors.New("mock: screen: failing initialization")

// mockFactory creates simulation screens which fail on demand.
type mockFactory struct{ Fail, FailInit bool }

func (f *mockFactory) NewScreen() (tcell.Screen, error) {
	if f.Fail {
		return nil, errMockScreen
	}
	return f.NewSimulationScreen(""), nil
}

func (f *mockFactory) NewSimulationScreen(s string) tcell.SimulationScreen {
	return &mockScreen{
		SimulationScreen: tcell.NewSimulationScreen(s),
		fail:             f.FailInit,
	}
}

type mockScreen struct {
	tcell.SimulationScreen
	fail bool
}

func (s *mockScreen) Init() error {
	if s.fail {
		return errMockInit
	}
	return s.SimulationScreen.Init()
}
