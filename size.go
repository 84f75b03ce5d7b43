// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package panels

import "fmt"

// SizeKind discriminates the variants of a resolved panel [Size].
type SizeKind uint8

const (
	// Unresolved is the kind of a panel size which wasn't resolved yet.
	Unresolved SizeKind = iota
	// RatioKind is the kind of a flex-grow share.
	RatioKind
	// PixelsKind is the kind of an explicit extent along a group's axis.
	PixelsKind
)

// Size is a resolved panel size which is either a flex-grow share of a
// flexible panel or the extent of a fixed panel.  The zero value is
// unresolved.  Use the accessors Ratio and Pixels to get to the value
// so a share can't be mistaken for an extent and vice versa.
type Size struct {
	kind SizeKind
	v    float64
}

// Ratio returns a flex-grow share size.
func Ratio(r float64) Size { return Size{kind: RatioKind, v: r} }

// Pixels returns an explicit extent size.
func Pixels(px float64) Size { return Size{kind: PixelsKind, v: px} }

// Kind returns the variant of receiving size.
func (s Size) Kind() SizeKind { return s.kind }

// IsResolved returns true iff receiving size is a ratio or a pixel
// size.
func (s Size) IsResolved() bool { return s.kind != Unresolved }

// Ratio returns the flex-grow share of receiving size and true iff it
// is a ratio size.
func (s Size) Ratio() (float64, bool) {
	if s.kind != RatioKind {
		return 0, false
	}
	return s.v, true
}

// Pixels returns the extent of receiving size and true iff it is a
// pixel size.
func (s Size) Pixels() (float64, bool) {
	if s.kind != PixelsKind {
		return 0, false
	}
	return s.v, true
}

func (s Size) String() string {
	switch s.kind {
	case RatioKind:
		return fmt.Sprintf("ratio(%g)", s.v)
	case PixelsKind:
		return fmt.Sprintf("%gpx", s.v)
	default:
		return "unresolved"
	}
}
