// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package panels

import (
	"math"
	"testing"

	. "github.com/slukits/gounit"
	"github.com/slukits/ints"
)

type resolve struct{ Suite }

func (s *resolve) SetUp(t *T) { t.Parallel() }

func (s *resolve) Returns_no_panels_for_a_non_positive_count(t *T) {
	t.Eq(0, len(Resolve(0, Declaration{})))
	t.Eq(0, len(Resolve(-1, Declaration{})))
}

func (s *resolve) Defaults_to_flexible_resizable_unbounded_panels(t *T) {
	for _, p := range Resolve(3, Declaration{}) {
		t.True(p.Flex)
		t.True(p.Resizable)
		t.True(p.InitialSize == nil)
		t.True(p.MinSize == nil)
		t.True(p.MaxSize == nil)
		t.True(!p.Size.IsResolved())
	}
}

func (s *resolve) Applies_declared_values_per_index(t *T) {
	pp := Resolve(3, Declaration{
		InitialSize: []*float64{Px(200), nil, Px(100)},
		MinSize:     []*float64{nil, Px(50)},
		MaxSize:     []*float64{Px(300)},
		Flex:        []bool{false, true, false},
		Resizable:   []bool{true, false},
	})
	t.Eq(3, len(pp))
	t.True(!pp[0].Flex && pp[1].Flex && !pp[2].Flex)
	t.True(pp[0].Resizable && !pp[1].Resizable && pp[2].Resizable)
	t.Eq(200.0, *pp[0].InitialSize)
	t.True(pp[1].InitialSize == nil)
	t.Eq(100.0, *pp[2].InitialSize)
	t.Eq(50.0, *pp[1].MinSize)
	t.True(pp[2].MinSize == nil)
	t.Eq(300.0, *pp[0].MaxSize)
	t.True(pp[1].MaxSize == nil)
}

func (s *resolve) Ignores_surplus_declarations(t *T) {
	pp := Resolve(1, Declaration{Flex: []bool{false, false, false}})
	t.Eq(1, len(pp))
	t.True(!pp[0].Flex)
}

func (s *resolve) Copies_declared_sizes(t *T) {
	initial := Px(100)
	pp := Resolve(1, Declaration{InitialSize: []*float64{initial}})
	*initial = 42
	t.Eq(100.0, *pp[0].InitialSize)
}

func TestResolve(t *testing.T) {
	t.Parallel()
	Run(&resolve{}, t)
}

type panel struct{ Suite }

func (s *panel) SetUp(t *T) { t.Parallel() }

func (s *panel) Is_unbounded_by_default(t *T) {
	p := Panel{}
	t.Eq(0.0, p.Min())
	t.True(math.IsInf(p.Max(), 1))
	t.Eq(1e9, p.Clamp(1e9))
}

func (s *panel) Treats_a_negative_minimum_as_zero(t *T) {
	p := Panel{MinSize: Px(-10)}
	t.Eq(0.0, p.Min())
	t.Eq(0.0, p.Clamp(-5))
}

func (s *panel) Clamps_an_extent_to_its_bounds(t *T) {
	p := Panel{MinSize: Px(100), MaxSize: Px(300)}
	t.Eq(100.0, p.Clamp(20))
	t.Eq(300.0, p.Clamp(500))
	t.Eq(200.0, p.Clamp(200))
}

func (s *panel) Lets_the_minimum_win_for_contradicting_bounds(t *T) {
	p := Panel{MinSize: Px(300), MaxSize: Px(100)}
	t.Eq(300.0, p.Clamp(200))
}

func TestPanel(t *testing.T) {
	t.Parallel()
	Run(&panel{}, t)
}

type boundaries struct{ Suite }

func (s *boundaries) SetUp(t *T) { t.Parallel() }

func (s *boundaries) Are_between_all_panels_by_default(t *T) {
	exp := (&ints.Set{}).Add(0).Add(1)
	t.True(exp.Eq(Boundaries(Resolve(3, Declaration{}))))
}

func (s *boundaries) Exclude_non_resizable_panels(t *T) {
	exp := (&ints.Set{}).Add(1)
	bb := Boundaries(Resolve(3, Declaration{
		Resizable: []bool{false, true, true}}))
	t.True(exp.Eq(bb))
}

func (s *boundaries) Dont_exist_for_a_single_panel(t *T) {
	t.True((&ints.Set{}).Eq(Boundaries(Resolve(1, Declaration{}))))
}

func TestBoundaries(t *testing.T) {
	t.Parallel()
	Run(&boundaries{}, t)
}

type direction struct{ Suite }

func (s *direction) SetUp(t *T) { t.Parallel() }

func (s *direction) Selects_the_pointer_axis(t *T) {
	p := Pointer{X: 3, Y: 7}
	t.Eq(3.0, Horizontal.Axis(p))
	t.Eq(7.0, Vertical.Axis(p))
}

func (s *direction) Has_a_name(t *T) {
	t.Eq("horizontal", Horizontal.String())
	t.Eq("vertical", Vertical.String())
}

func TestDirection(t *testing.T) {
	t.Parallel()
	Run(&direction{}, t)
}

type size struct{ Suite }

func (s *size) SetUp(t *T) { t.Parallel() }

func (s *size) Is_unresolved_by_default(t *T) {
	var sz Size
	t.True(!sz.IsResolved())
	t.Eq(Unresolved, sz.Kind())
	t.Eq("unresolved", sz.String())
}

func (s *size) Can_t_mistake_a_ratio_for_pixels(t *T) {
	r, ok := Ratio(1.5).Ratio()
	t.True(ok)
	t.Eq(1.5, r)
	_, ok = Ratio(1.5).Pixels()
	t.True(!ok)
	t.Eq("ratio(1.5)", Ratio(1.5).String())
}

func (s *size) Can_t_mistake_pixels_for_a_ratio(t *T) {
	px, ok := Pixels(120).Pixels()
	t.True(ok)
	t.Eq(120.0, px)
	_, ok = Pixels(120).Ratio()
	t.True(!ok)
	t.Eq("120px", Pixels(120).String())
}

func TestSize(t *testing.T) {
	t.Parallel()
	Run(&size{}, t)
}
