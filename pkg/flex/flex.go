// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package flex distributes the extent of a container along a single
// axis to a sequence of items.  An item either has a fixed extent or
// it is filling, i.e. it grows from a zero basis by its share of the
// space which is left by the fixed items:
//
//	+------+-------------------+-------------+------+
//	|  10  |    grow 1 (15)    | grow 2 (30) |  15  |
//	+------+-------------------+-------------+------+
//
// Minimum and maximum extents are respected for both kinds of items.
// A filling item clamped to its bounds is frozen and the remaining
// space is distributed anew among the other filling items.  Items
// don't shrink, i.e. fixed items exceeding the container overflow it.
package flex

import (
	"math"

	"golang.org/x/exp/slices"
)

// Item is a laid out unit of a container.
type Item struct {
	// Grow is the share of a filling item; an item is fixed if Grow is
	// not positive.
	Grow float64

	// Extent is the extent of a fixed item.
	Extent float64

	// Min is the lower bound of the item's extent.
	Min float64

	// Max is the upper bound of the item's extent; it is unbounded if
	// not positive.
	Max float64
}

// IsFilling returns true if an item grows into the free space.
func (i Item) IsFilling() bool { return i.Grow > 0 }

func (i Item) upper() float64 {
	if i.Max <= 0 {
		return math.Inf(1)
	}
	return i.Max
}

// clamp bounds v to the item's bounds whereas the lower bound wins.
func (i Item) clamp(v float64) float64 {
	return math.Max(math.Min(v, i.upper()), math.Max(i.Min, 0))
}

// Distribute calculates the extents of given items in a container with
// given extent.
func Distribute(container float64, ii ...Item) []float64 {
	ee := make([]float64, len(ii))
	frozen := make([]bool, len(ii))

	free := container
	for j, i := range ii {
		if i.IsFilling() {
			continue
		}
		ee[j], frozen[j] = i.clamp(i.Extent), true
		free -= ee[j]
	}

	for !all(frozen) {
		grow := 0.0
		for j, i := range ii {
			if !frozen[j] {
				grow += i.Grow
			}
		}
		violation := 0.0
		for j, i := range ii {
			if frozen[j] {
				continue
			}
			target := math.Max(free, 0) * i.Grow / grow
			ee[j] = i.clamp(target)
			violation += ee[j] - target
		}
		if violation == 0 {
			break
		}
		for j, i := range ii {
			if frozen[j] {
				continue
			}
			target := math.Max(free, 0) * i.Grow / grow
			if violation > 0 && ee[j] > target ||
				violation < 0 && ee[j] < target {
				frozen[j] = true
			}
		}
		free = container
		for j := range ii {
			if frozen[j] {
				free -= ee[j]
			}
		}
	}
	return ee
}

func all(bb []bool) bool {
	return slices.Index(bb, false) == -1
}

// Line is the cell based layout of a container's items.
type Line struct {
	// Extents are the extents of the items in cells.
	Extents []int

	// Offsets are the starting positions of the items in cells.
	Offsets []int
}

// Layout distributes given container extent to given items in cells
// starting at given origin.  The rounded extents add up to the rounded
// sum of the distributed extents.
func Layout(origin, container int, ii ...Item) *Line {
	ee := Distribute(float64(container), ii...)
	l := &Line{
		Extents: make([]int, len(ee)),
		Offsets: make([]int, len(ee)),
	}
	acc, at := 0.0, 0
	for j, e := range ee {
		acc += e
		next := int(math.Round(acc))
		l.Offsets[j], l.Extents[j] = origin+at, next-at
		at = next
	}
	return l
}
