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
	"seehuhn.de/go/swf/optional"
)

// MorphShape is a shape which is interpolated between a start and an end
// state.  Each record holds both states.
type MorphShape struct {
	InitialStyles MorphShapeStyles
	Records       []MorphRecord
}

// MorphShapeStyles holds the styles of a morph shape.
type MorphShapeStyles struct {
	Fill []MorphFillStyle
	Line []MorphLineStyle
}

// MorphRecord is one of [*MorphEdge] and [*MorphStyleChange].
type MorphRecord interface {
	isMorphShapeRecord()
}

// MorphEdge is an [Edge] with separate geometry for the start and the end
// of the morph.
type MorphEdge struct {
	Delta             swf.Vector2D
	MorphDelta        swf.Vector2D
	ControlDelta      optional.Value[swf.Vector2D]
	MorphControlDelta optional.Value[swf.Vector2D]
}

// MorphStyleChange is a [StyleChange] for morph shapes.
type MorphStyleChange struct {
	MoveTo      optional.Value[swf.Vector2D]
	MorphMoveTo optional.Value[swf.Vector2D]
	LeftFill    optional.Value[uint32]
	RightFill   optional.Value[uint32]
	LineStyle   optional.Value[uint32]
	NewStyles   optional.Value[MorphShapeStyles]
}

func (*MorphEdge) isMorphShapeRecord()        {}
func (*MorphStyleChange) isMorphShapeRecord() {}

var (
	_ MorphRecord = (*MorphEdge)(nil)
	_ MorphRecord = (*MorphStyleChange)(nil)
)

// MorphFillStyle is one of [*MorphBitmapFill], [*MorphFocalGradientFill],
// [*MorphLinearGradientFill], [*MorphRadialGradientFill] and
// [*MorphSolidFill].
type MorphFillStyle interface {
	isMorphFillStyle()
}

// MorphSolidFill interpolates between two colors.
type MorphSolidFill struct {
	Color      swf.StraightSRgba8
	MorphColor swf.StraightSRgba8
}

// MorphBitmapFill interpolates the placement of a bitmap fill.
type MorphBitmapFill struct {
	BitmapID    uint16
	Matrix      swf.Matrix
	MorphMatrix swf.Matrix
	Repeating   bool
	Smoothed    bool
}

// MorphLinearGradientFill interpolates a linear gradient fill.
type MorphLinearGradientFill struct {
	Matrix      swf.Matrix
	MorphMatrix swf.Matrix
	Gradient    gradient.MorphGradient
}

// MorphRadialGradientFill interpolates a radial gradient fill.
type MorphRadialGradientFill struct {
	Matrix      swf.Matrix
	MorphMatrix swf.Matrix
	Gradient    gradient.MorphGradient
}

// MorphFocalGradientFill interpolates a focal gradient fill.
type MorphFocalGradientFill struct {
	Matrix          swf.Matrix
	MorphMatrix     swf.Matrix
	Gradient        gradient.MorphGradient
	FocalPoint      fixed.Sfixed8P8
	MorphFocalPoint fixed.Sfixed8P8
}

func (*MorphSolidFill) isMorphFillStyle()          {}
func (*MorphBitmapFill) isMorphFillStyle()         {}
func (*MorphLinearGradientFill) isMorphFillStyle() {}
func (*MorphRadialGradientFill) isMorphFillStyle() {}
func (*MorphFocalGradientFill) isMorphFillStyle()  {}

var (
	_ MorphFillStyle = (*MorphSolidFill)(nil)
	_ MorphFillStyle = (*MorphBitmapFill)(nil)
	_ MorphFillStyle = (*MorphLinearGradientFill)(nil)
	_ MorphFillStyle = (*MorphRadialGradientFill)(nil)
	_ MorphFillStyle = (*MorphFocalGradientFill)(nil)
)

// MorphLineStyle is a [LineStyle] for morph shapes.
type MorphLineStyle struct {
	Width        uint16
	MorphWidth   uint16
	StartCap     CapStyle
	EndCap       CapStyle
	Join         JoinStyle
	NoHScale     bool
	NoVScale     bool
	NoClose      bool
	PixelHinting bool
	Fill         MorphFillStyle
}

// startFill returns the fill style at the start of the morph.
func startFill(f MorphFillStyle) FillStyle {
	switch f := f.(type) {
	case *MorphSolidFill:
		return &SolidFill{Color: f.Color}
	case *MorphBitmapFill:
		return &BitmapFill{BitmapID: f.BitmapID, Matrix: f.Matrix, Repeating: f.Repeating, Smoothed: f.Smoothed}
	case *MorphLinearGradientFill:
		return &LinearGradientFill{Matrix: f.Matrix, Gradient: *f.Gradient.Start()}
	case *MorphRadialGradientFill:
		return &RadialGradientFill{Matrix: f.Matrix, Gradient: *f.Gradient.Start()}
	case *MorphFocalGradientFill:
		return &FocalGradientFill{Matrix: f.Matrix, Gradient: *f.Gradient.Start(), FocalPoint: f.FocalPoint}
	default:
		return nil
	}
}

func endFill(f MorphFillStyle) FillStyle {
	switch f := f.(type) {
	case *MorphSolidFill:
		return &SolidFill{Color: f.MorphColor}
	case *MorphBitmapFill:
		return &BitmapFill{BitmapID: f.BitmapID, Matrix: f.MorphMatrix, Repeating: f.Repeating, Smoothed: f.Smoothed}
	case *MorphLinearGradientFill:
		return &LinearGradientFill{Matrix: f.MorphMatrix, Gradient: *f.Gradient.End()}
	case *MorphRadialGradientFill:
		return &RadialGradientFill{Matrix: f.MorphMatrix, Gradient: *f.Gradient.End()}
	case *MorphFocalGradientFill:
		return &FocalGradientFill{Matrix: f.MorphMatrix, Gradient: *f.Gradient.End(), FocalPoint: f.MorphFocalPoint}
	default:
		return nil
	}
}

func (s *MorphShapeStyles) state(end bool) ShapeStyles {
	fill := startFill
	if end {
		fill = endFill
	}
	var res ShapeStyles
	for _, f := range s.Fill {
		res.Fill = append(res.Fill, fill(f))
	}
	for _, l := range s.Line {
		width := l.Width
		if end {
			width = l.MorphWidth
		}
		res.Line = append(res.Line, LineStyle{
			Width:        width,
			StartCap:     l.StartCap,
			EndCap:       l.EndCap,
			Join:         l.Join,
			NoHScale:     l.NoHScale,
			NoVScale:     l.NoVScale,
			NoClose:      l.NoClose,
			PixelHinting: l.PixelHinting,
			Fill:         fill(l.Fill),
		})
	}
	return res
}

// Start returns the shape at the start of the morph.
func (m *MorphShape) Start() *Shape {
	return m.state(false)
}

// End returns the shape at the end of the morph.
func (m *MorphShape) End() *Shape {
	return m.state(true)
}

func (m *MorphShape) state(end bool) *Shape {
	res := &Shape{InitialStyles: m.InitialStyles.state(end)}
	for _, r := range m.Records {
		switch r := r.(type) {
		case *MorphEdge:
			e := &Edge{Delta: r.Delta, ControlDelta: r.ControlDelta}
			if end {
				e = &Edge{Delta: r.MorphDelta, ControlDelta: r.MorphControlDelta}
			}
			res.Records = append(res.Records, e)
		case *MorphStyleChange:
			sc := &StyleChange{
				MoveTo:    r.MoveTo,
				LeftFill:  r.LeftFill,
				RightFill: r.RightFill,
				LineStyle: r.LineStyle,
			}
			if end {
				sc.MoveTo = r.MorphMoveTo
			}
			if styles, ok := r.NewStyles.Get(); ok {
				sc.NewStyles = optional.New(styles.state(end))
			}
			res.Records = append(res.Records, sc)
		}
	}
	return res
}
