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

package swf

import (
	"golang.org/x/image/math/f64"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/swf/fixed"
)

// TwipsPerPixel is the number of twips (the SWF length unit) in one pixel.
const TwipsPerPixel = 20

// Matrix is an affine transformation.  Translations are given in twips.
//
// A point (x, y) is mapped to
//
//	(ScaleX*x + RotateSkew1*y + TranslateX, RotateSkew0*x + ScaleY*y + TranslateY)
type Matrix struct {
	ScaleX      fixed.Sfixed16P16
	ScaleY      fixed.Sfixed16P16
	RotateSkew0 fixed.Sfixed16P16
	RotateSkew1 fixed.Sfixed16P16
	TranslateX  int32
	TranslateY  int32
}

// IdentityMatrix is the identity transformation.
var IdentityMatrix = Matrix{
	ScaleX: fixed.Sfixed16P16FromEpsilons(1 << 16),
	ScaleY: fixed.Sfixed16P16FromEpsilons(1 << 16),
}

// Matrix returns m in the coefficient order used by seehuhn.de/go/geom.
func (m Matrix) Matrix() matrix.Matrix {
	return matrix.Matrix{
		m.ScaleX.Float64(), m.RotateSkew0.Float64(),
		m.RotateSkew1.Float64(), m.ScaleY.Float64(),
		float64(m.TranslateX), float64(m.TranslateY),
	}
}

// Aff3 returns m in the row-major form used by golang.org/x/image.
func (m Matrix) Aff3() f64.Aff3 {
	return f64.Aff3{
		m.ScaleX.Float64(), m.RotateSkew1.Float64(), float64(m.TranslateX),
		m.RotateSkew0.Float64(), m.ScaleY.Float64(), float64(m.TranslateY),
	}
}

// Rect is an axis-aligned rectangle with coordinates in twips.
type Rect struct {
	XMin int32
	XMax int32
	YMin int32
	YMax int32
}

// Width returns the width of the rectangle in twips.
func (r Rect) Width() int64 {
	return int64(r.XMax) - int64(r.XMin)
}

// Height returns the height of the rectangle in twips.
func (r Rect) Height() int64 {
	return int64(r.YMax) - int64(r.YMin)
}

// Rect converts r to a seehuhn.de/go/geom rectangle.
// The coordinates stay in twips.
func (r Rect) Rect() rect.Rect {
	return rect.Rect{
		LLx: float64(r.XMin),
		LLy: float64(r.YMin),
		URx: float64(r.XMax),
		URy: float64(r.YMax),
	}
}

// Vector2D is a displacement in twips.
type Vector2D struct {
	X int32
	Y int32
}

// Vec2 converts v to a seehuhn.de/go/geom vector.
func (v Vector2D) Vec2() vec.Vec2 {
	return vec.Vec2{X: float64(v.X), Y: float64(v.Y)}
}

// ColorTransform modifies the red, green and blue channels of a color.
// Each channel c is mapped to c*Mult + Add.
type ColorTransform struct {
	RedMult   fixed.Sfixed8P8
	GreenMult fixed.Sfixed8P8
	BlueMult  fixed.Sfixed8P8
	RedAdd    int16
	GreenAdd  int16
	BlueAdd   int16
}

// ColorTransformWithAlpha is a [ColorTransform] which also modifies the
// alpha channel.
type ColorTransformWithAlpha struct {
	RedMult   fixed.Sfixed8P8
	GreenMult fixed.Sfixed8P8
	BlueMult  fixed.Sfixed8P8
	AlphaMult fixed.Sfixed8P8
	RedAdd    int16
	GreenAdd  int16
	BlueAdd   int16
	AlphaAdd  int16
}

// NamedID associates a display name with a character ID.
//
// The ID is unique only within the character table of the containing
// document.  NamedID does not enforce any uniqueness.
type NamedID struct {
	ID   uint16
	Name string
}
