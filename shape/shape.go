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

// Package shape implements vector shapes, glyph outlines and morph shapes.
//
// A shape is a list of records.  [Edge] records draw straight or curved
// segments relative to the current pen position, and [StyleChange] records
// move the pen or select different fill and line styles.  Style indices are
// 1-based indices into the current style lists, 0 means "no style".
package shape

import (
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/swf"
	"seehuhn.de/go/swf/optional"
)

// Shape is a vector shape together with its initial styles.
type Shape struct {
	InitialStyles ShapeStyles
	Records       []Record
}

// ShapeStyles holds the fill and line styles which can be selected by
// shape records.
type ShapeStyles struct {
	Fill []FillStyle
	Line []LineStyle
}

// Glyph is the outline of a font glyph.  Glyphs use no line styles and at
// most one fill style.
type Glyph struct {
	Records []Record
}

// Record is one of [*Edge] and [*StyleChange].
type Record interface {
	isShapeRecord()
}

// Edge draws a straight line or a quadratic Bézier curve.
// If ControlDelta is present, the edge is a curve with the control point at
// ControlDelta relative to the start point, and the end point at Delta
// relative to the control point.  Otherwise the edge is a straight line to
// Delta relative to the start point.
type Edge struct {
	Delta        swf.Vector2D
	ControlDelta optional.Value[swf.Vector2D]
}

// IsCurve reports whether e is a quadratic Bézier curve.
func (e *Edge) IsCurve() bool {
	return e.ControlDelta.IsSet()
}

// End returns the end point of the edge, relative to its start point.
func (e *Edge) End() vec.Vec2 {
	end := e.Delta.Vec2()
	if c, ok := e.ControlDelta.Get(); ok {
		end = end.Add(c.Vec2())
	}
	return end
}

// StyleChange moves the pen or changes the current styles.
// Absent fields leave the corresponding state unchanged.
type StyleChange struct {
	MoveTo    optional.Value[swf.Vector2D]
	LeftFill  optional.Value[uint32]
	RightFill optional.Value[uint32]
	LineStyle optional.Value[uint32]
	NewStyles optional.Value[ShapeStyles]
}

func (*Edge) isShapeRecord()        {}
func (*StyleChange) isShapeRecord() {}

// CapStyle describes the end of an open line.
type CapStyle uint8

// These are the supported cap styles.
const (
	CapRound CapStyle = iota
	CapNone
	CapSquare
)

var capNames = swf.NewEnumNames[CapStyle]("CapStyle", swf.SnakeCase,
	"Round", "None", "Square")

func (c CapStyle) String() string {
	return capNames.String(c)
}

// MarshalText implements the [encoding.TextMarshaler] interface.
func (c CapStyle) MarshalText() ([]byte, error) {
	return capNames.MarshalText(c)
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (c *CapStyle) UnmarshalText(text []byte) error {
	v, err := capNames.UnmarshalText(text)
	if err != nil {
		return err
	}
	*c = v
	return nil
}

func init() {
	swf.RegisterUnion[Record](swf.UnionSpec{Key: "type", Style: swf.SnakeCase},
		(*Edge)(nil),
		(*StyleChange)(nil),
	)
	swf.RegisterUnion[FillStyle](swf.UnionSpec{Key: "type", Style: swf.SnakeCase, TrimSuffix: "Fill"},
		(*BitmapFill)(nil),
		(*FocalGradientFill)(nil),
		(*LinearGradientFill)(nil),
		(*RadialGradientFill)(nil),
		(*SolidFill)(nil),
	)
	swf.RegisterUnion[JoinStyle](swf.UnionSpec{Key: "type", Style: swf.SnakeCase, TrimSuffix: "Join"},
		(*BevelJoin)(nil),
		(*RoundJoin)(nil),
		(*MiterJoin)(nil),
	)
	swf.RegisterUnion[MorphRecord](swf.UnionSpec{Key: "type", Style: swf.SnakeCase},
		(*MorphEdge)(nil),
		(*MorphStyleChange)(nil),
	)
	swf.RegisterUnion[MorphFillStyle](swf.UnionSpec{Key: "type", Style: swf.SnakeCase, TrimSuffix: "Fill"},
		(*MorphBitmapFill)(nil),
		(*MorphFocalGradientFill)(nil),
		(*MorphLinearGradientFill)(nil),
		(*MorphRadialGradientFill)(nil),
		(*MorphSolidFill)(nil),
	)
}

var (
	_ Record = (*Edge)(nil)
	_ Record = (*StyleChange)(nil)
)
