// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package panels

import (
	"golang.org/x/exp/constraints"
)

// MinRatio is the smallest flex-grow share a flexible panel is
// resolved to.  A panel dragged to a zero extent keeps this share
// instead of collapsing to a zero ratio.
const MinRatio = 1e-6

// Ratios converts given extents into flex-grow shares whose sum is the
// number of given extents, i.e. r_j = k*e_j/sum(e).  Hence equal
// extents always have a ratio of 1.  Is the sum of given extents not
// positive (nothing measured yet) all ratios are 1.
func Ratios(ee ...float64) []float64 {
	rr := make([]float64, len(ee))
	total := 0.0
	for _, e := range ee {
		total += e
	}
	if total <= 0 {
		for i := range rr {
			rr[i] = 1
		}
		return rr
	}
	k := float64(len(ee))
	for i, e := range ee {
		rr[i] = clamp(k*e/total, MinRatio, k)
	}
	return rr
}

// scaledRatios returns the ratios of given extents scaled so their sum
// equals given share.  It is used to re-derive a pair of ratios without
// changing the pair's portion of the flex-pool.
func scaledRatios(share float64, ee ...float64) []float64 {
	rr := Ratios(ee...)
	if share <= 0 {
		return rr
	}
	f := share / float64(len(ee))
	for i := range rr {
		rr[i] = max(rr[i]*f, MinRatio)
	}
	return rr
}

// clamp bounds v to [lo, hi] whereas hi wins if lo > hi.
func clamp[T constraints.Ordered](v, lo, hi T) T {
	if v < lo {
		v = lo
	}
	if v > hi {
		v = hi
	}
	return v
}
