// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lines

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	. "github.com/slukits/gounit"
)

type features struct{ Suite }

func (s *features) SetUp(t *T) { t.Parallel() }

func (s *features) Quit_by_default_on_q_ctrl_c_and_ctrl_d(t *T) {
	t.True(DefaultFeatures.RuneQuits('q'))
	t.True(DefaultFeatures.KeyQuits(tcell.KeyCtrlC))
	t.True(DefaultFeatures.KeyQuits(tcell.KeyCtrlD))
	t.True(!DefaultFeatures.RuneQuits('r'))
}

func (s *features) Copy_has_the_features_of_the_copied(t *T) {
	ff := DefaultFeatures.Copy()
	t.True(ff != DefaultFeatures)
	t.Eq(FtQuit, ff.RuneEvent('q'))
	t.Eq(FtQuit, ff.KeyEvent(tcell.KeyCtrlC, tcell.ModNone))
	t.Eq(FtQuit, ff.KeyEvent(tcell.KeyCtrlD, tcell.ModNone))
}

func (s *features) Map_unregistered_keys_to_no_feature(t *T) {
	ff := DefaultFeatures.Copy()
	t.Eq(NoFeature, ff.RuneEvent('x'))
	t.Eq(NoFeature, ff.KeyEvent(tcell.KeyCtrlC, tcell.ModShift))
	t.True(!ff.KeyQuits(tcell.KeyEsc))
}

func TestFeatures(t *testing.T) {
	t.Parallel()
	Run(&features{}, t)
}
