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

package shape

import (
	"seehuhn.de/go/swf"
	"seehuhn.de/go/swf/fixed"
	"seehuhn.de/go/swf/gradient"
)

// FillStyle is one of [*BitmapFill], [*FocalGradientFill],
// [*LinearGradientFill], [*RadialGradientFill] and [*SolidFill].
type FillStyle interface {
	isFillStyle()
}

// SolidFill fills an area with a single color.
type SolidFill struct {
	Color swf.StraightSRgba8
}

// BitmapFill fills an area with a bitmap image.
// BitmapID refers to a DefineBitmap tag.
type BitmapFill struct {
	BitmapID  uint16
	Matrix    swf.Matrix
	Repeating bool
	Smoothed  bool
}

// LinearGradientFill fills an area with a linear gradient.  The gradient
// runs from -16384 to 16384 along the x-axis of the gradient square, which
// is mapped into the shape by Matrix.
type LinearGradientFill struct {
	Matrix   swf.Matrix
	Gradient gradient.Gradient
}

// RadialGradientFill fills an area with a radial gradient centered in the
// gradient square.
type RadialGradientFill struct {
	Matrix   swf.Matrix
	Gradient gradient.Gradient
}

// FocalGradientFill is a radial gradient with the focal point moved along
// the x-axis.  FocalPoint ranges from -1 to 1.
type FocalGradientFill struct {
	Matrix     swf.Matrix
	Gradient   gradient.Gradient
	FocalPoint fixed.Sfixed8P8
}

func (*SolidFill) isFillStyle()          {}
func (*BitmapFill) isFillStyle()         {}
func (*LinearGradientFill) isFillStyle() {}
func (*RadialGradientFill) isFillStyle() {}
func (*FocalGradientFill) isFillStyle()  {}

var (
	_ FillStyle = (*SolidFill)(nil)
	_ FillStyle = (*BitmapFill)(nil)
	_ FillStyle = (*LinearGradientFill)(nil)
	_ FillStyle = (*RadialGradientFill)(nil)
	_ FillStyle = (*FocalGradientFill)(nil)
)

// LineStyle describes how the edges of a shape are stroked.
// Width is given in twips.
type LineStyle struct {
	Width        uint16
	StartCap     CapStyle
	EndCap       CapStyle
	Join         JoinStyle
	NoHScale     bool
	NoVScale     bool
	NoClose      bool
	PixelHinting bool
	Fill         FillStyle
}

// JoinStyle is one of [*BevelJoin], [*RoundJoin] and [*MiterJoin].
type JoinStyle interface {
	isJoinStyle()
}

// BevelJoin cuts off the corner where two lines meet.
type BevelJoin struct{}

// RoundJoin rounds the corner where two lines meet.
type RoundJoin struct{}

// MiterJoin extends the outer edges of two lines until they meet.  Limit is
// the maximal ratio of miter length to line width, beyond which a bevel join
// is used.
type MiterJoin struct {
	Limit fixed.Ufixed8P8
}

func (*BevelJoin) isJoinStyle() {}
func (*RoundJoin) isJoinStyle() {}
func (*MiterJoin) isJoinStyle() {}

var (
	_ JoinStyle = (*BevelJoin)(nil)
	_ JoinStyle = (*RoundJoin)(nil)
	_ JoinStyle = (*MiterJoin)(nil)
)
