// seehuhn.de/go/swf - a library for reading and writing SWF files
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package filter implements the graphical filters which can be applied to
// display objects.
//
// [Filter] is a closed union of eight filter kinds.  In the interchange form
// the kind is given by the "type" key, using kebab-case names such as
// "drop-shadow" or "gradient-glow".
package filter

import (
	"cmp"

	"seehuhn.de/go/swf"
	"seehuhn.de/go/swf/fixed"
	"seehuhn.de/go/swf/gradient"
	"seehuhn.de/go/swf/internal/float"
)

// Filter is one of [*Bevel], [*Blur], [*ColorMatrix], [*Convolution],
// [*DropShadow], [*Glow], [*GradientBevel] and [*GradientGlow].
type Filter interface {
	isFilter()
}

func init() {
	swf.RegisterUnion[Filter](swf.UnionSpec{Key: "type", Style: swf.KebabCase},
		(*Bevel)(nil),
		(*Blur)(nil),
		(*ColorMatrix)(nil),
		(*Convolution)(nil),
		(*DropShadow)(nil),
		(*Glow)(nil),
		(*GradientBevel)(nil),
		(*GradientGlow)(nil),
	)
}

var (
	_ Filter = (*Bevel)(nil)
	_ Filter = (*Blur)(nil)
	_ Filter = (*ColorMatrix)(nil)
	_ Filter = (*Convolution)(nil)
	_ Filter = (*DropShadow)(nil)
	_ Filter = (*Glow)(nil)
	_ Filter = (*GradientBevel)(nil)
	_ Filter = (*GradientGlow)(nil)
)

// Bevel adds a highlight and a shadow along the edges of an object.
type Bevel struct {
	ShadowColor     swf.StraightSRgba8
	HighlightColor  swf.StraightSRgba8
	BlurX           fixed.Sfixed16P16
	BlurY           fixed.Sfixed16P16
	Angle           fixed.Sfixed16P16
	Distance        fixed.Sfixed16P16
	Strength        fixed.Sfixed8P8
	Inner           bool
	Knockout        bool
	CompositeSource bool
	OnTop           bool
	Passes          uint8
}

// Blur applies a box blur.
type Blur struct {
	BlurX  fixed.Ufixed16P16
	BlurY  fixed.Ufixed16P16
	Passes uint8
}

// ColorMatrix transforms the colors of an object with a 4x5 matrix, given in
// row-major order.
type ColorMatrix struct {
	Matrix [20]float32
}

// Equal reports whether m and other hold identical matrices.
// NaN entries are equal to each other.
func (m *ColorMatrix) Equal(other *ColorMatrix) bool {
	if m == nil || other == nil {
		return m == other
	}
	return m.Compare(other) == 0
}

// Compare orders color matrices lexicographically by their entries.
// NaN sorts before all other values.
func (m *ColorMatrix) Compare(other *ColorMatrix) int {
	return float.CompareSlices(m.Matrix[:], other.Matrix[:])
}

// Convolution applies a convolution matrix to the pixels of an object.
// Matrix holds MatrixWidth*MatrixHeight entries in row-major order.
type Convolution struct {
	MatrixWidth   uint8
	MatrixHeight  uint8
	Divisor       float32
	Bias          float32
	Matrix        []float32
	DefaultColor  swf.StraightSRgba8
	Clamp         bool
	PreserveAlpha bool
}

// Equal reports whether c and other are identical.
// NaN values are equal to each other.
func (c *Convolution) Equal(other *Convolution) bool {
	if c == nil || other == nil {
		return c == other
	}
	return c.Compare(other) == 0
}

// Compare orders convolution filters field by field, in declaration order.
// NaN sorts before all other values and false sorts before true.
func (c *Convolution) Compare(other *Convolution) int {
	if r := cmp.Compare(c.MatrixWidth, other.MatrixWidth); r != 0 {
		return r
	}
	if r := cmp.Compare(c.MatrixHeight, other.MatrixHeight); r != 0 {
		return r
	}
	if r := float.Compare(c.Divisor, other.Divisor); r != 0 {
		return r
	}
	if r := float.Compare(c.Bias, other.Bias); r != 0 {
		return r
	}
	if r := float.CompareSlices(c.Matrix, other.Matrix); r != 0 {
		return r
	}
	if r := compareColor(c.DefaultColor, other.DefaultColor); r != 0 {
		return r
	}
	if r := compareBool(c.Clamp, other.Clamp); r != 0 {
		return r
	}
	return compareBool(c.PreserveAlpha, other.PreserveAlpha)
}

// DropShadow draws a shadow below an object.
type DropShadow struct {
	Color           swf.StraightSRgba8
	BlurX           fixed.Sfixed16P16
	BlurY           fixed.Sfixed16P16
	Angle           fixed.Sfixed16P16
	Distance        fixed.Sfixed16P16
	Strength        fixed.Sfixed8P8
	Inner           bool
	Knockout        bool
	CompositeSource bool
	Passes          uint8
}

// Glow draws a glow around an object.
type Glow struct {
	Color           swf.StraightSRgba8
	BlurX           fixed.Sfixed16P16
	BlurY           fixed.Sfixed16P16
	Strength        fixed.Sfixed8P8
	Inner           bool
	Knockout        bool
	CompositeSource bool
	Passes          uint8
}

// GradientBevel is a bevel whose colors are taken from a gradient.
type GradientBevel struct {
	Gradient        []gradient.ColorStop
	BlurX           fixed.Sfixed16P16
	BlurY           fixed.Sfixed16P16
	Angle           fixed.Sfixed16P16
	Distance        fixed.Sfixed16P16
	Strength        fixed.Sfixed8P8
	Inner           bool
	Knockout        bool
	CompositeSource bool
	OnTop           bool
	Passes          uint8
}

// GradientGlow is a glow whose colors are taken from a gradient.
type GradientGlow struct {
	Gradient        []gradient.ColorStop
	BlurX           fixed.Sfixed16P16
	BlurY           fixed.Sfixed16P16
	Angle           fixed.Sfixed16P16
	Distance        fixed.Sfixed16P16
	Strength        fixed.Sfixed8P8
	Inner           bool
	Knockout        bool
	CompositeSource bool
	OnTop           bool
	Passes          uint8
}

func (*Bevel) isFilter()         {}
func (*Blur) isFilter()          {}
func (*ColorMatrix) isFilter()   {}
func (*Convolution) isFilter()   {}
func (*DropShadow) isFilter()    {}
func (*Glow) isFilter()          {}
func (*GradientBevel) isFilter() {}
func (*GradientGlow) isFilter()  {}

func compareColor(a, b swf.StraightSRgba8) int {
	if r := cmp.Compare(a.R, b.R); r != 0 {
		return r
	}
	if r := cmp.Compare(a.G, b.G); r != 0 {
		return r
	}
	if r := cmp.Compare(a.B, b.B); r != 0 {
		return r
	}
	return cmp.Compare(a.A, b.A)
}

func compareBool(a, b bool) int {
	switch {
	case a == b:
		return 0
	case b:
		return -1
	default:
		return 1
	}
}
