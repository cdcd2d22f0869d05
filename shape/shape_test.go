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
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/swf"
	"seehuhn.de/go/swf/fixed"
	"seehuhn.de/go/swf/gradient"
	"seehuhn.de/go/swf/optional"
)

var (
	red   = swf.StraightSRgba8{R: 255, A: 255}
	blue  = swf.StraightSRgba8{B: 255, A: 255}
	grad1 = gradient.Gradient{
		Spread: gradient.SpreadPad,
		Colors: []gradient.ColorStop{{Ratio: 0, Color: red}, {Ratio: 255, Color: blue}},
	}
)

var testShapes = []*Shape{
	{},
	{
		InitialStyles: ShapeStyles{
			Fill: []FillStyle{
				&SolidFill{Color: red},
				&BitmapFill{BitmapID: 3, Matrix: swf.IdentityMatrix, Smoothed: true},
				&LinearGradientFill{Matrix: swf.IdentityMatrix, Gradient: grad1},
				&RadialGradientFill{Gradient: grad1},
				&FocalGradientFill{Gradient: grad1, FocalPoint: fixed.Sfixed8P8FromEpsilons(-128)},
			},
			Line: []LineStyle{
				{Width: 20, Join: &RoundJoin{}, Fill: &SolidFill{Color: blue}},
				{Width: 40, StartCap: CapSquare, EndCap: CapNone, Join: &MiterJoin{Limit: fixed.Ufixed8P8FromEpsilons(3 << 8)}, NoHScale: true, Fill: &SolidFill{}},
				{Join: &BevelJoin{}, PixelHinting: true, NoClose: true, Fill: &SolidFill{}},
			},
		},
		Records: []Record{
			&StyleChange{MoveTo: optional.New(swf.Vector2D{X: 100, Y: 100}), RightFill: optional.New[uint32](1), LineStyle: optional.New[uint32](2)},
			&Edge{Delta: swf.Vector2D{X: 200}},
			&Edge{Delta: swf.Vector2D{Y: 200}, ControlDelta: optional.New(swf.Vector2D{X: 100, Y: 100})},
			&StyleChange{NewStyles: optional.New(ShapeStyles{Fill: []FillStyle{&SolidFill{Color: blue}}})},
			&StyleChange{},
		},
	},
}

var testMorphShape = &MorphShape{
	InitialStyles: MorphShapeStyles{
		Fill: []MorphFillStyle{
			&MorphSolidFill{Color: red, MorphColor: blue},
			&MorphBitmapFill{BitmapID: 1, Matrix: swf.IdentityMatrix, Repeating: true},
			&MorphLinearGradientFill{Gradient: gradient.MorphGradient{
				Colors: []gradient.MorphColorStop{{Ratio: 0, Color: red, MorphRatio: 40, MorphColor: blue}},
			}},
			&MorphRadialGradientFill{MorphMatrix: swf.IdentityMatrix},
			&MorphFocalGradientFill{FocalPoint: fixed.Sfixed8P8FromEpsilons(10), MorphFocalPoint: fixed.Sfixed8P8FromEpsilons(20)},
		},
		Line: []MorphLineStyle{
			{Width: 10, MorphWidth: 30, Join: &BevelJoin{}, Fill: &MorphSolidFill{Color: red, MorphColor: red}},
		},
	},
	Records: []MorphRecord{
		&MorphStyleChange{
			MoveTo:      optional.New(swf.Vector2D{X: 1, Y: 2}),
			MorphMoveTo: optional.New(swf.Vector2D{X: 3, Y: 4}),
			LeftFill:    optional.New[uint32](1),
		},
		&MorphEdge{Delta: swf.Vector2D{X: 10}, MorphDelta: swf.Vector2D{X: 20}},
		&MorphEdge{
			Delta:             swf.Vector2D{X: 10},
			MorphDelta:        swf.Vector2D{X: 20},
			ControlDelta:      optional.New(swf.Vector2D{Y: 5}),
			MorphControlDelta: optional.New(swf.Vector2D{Y: -5}),
		},
		&MorphStyleChange{NewStyles: optional.New(MorphShapeStyles{})},
	},
}

func roundTripTest[T any](t *testing.T, v1 *T) {
	t.Helper()

	data, err := swf.MarshalJSON(v1)
	if err != nil {
		t.Fatal(err)
	}
	v2 := new(T)
	err = swf.UnmarshalJSON(data, v2)
	if err != nil {
		t.Fatalf("%s: %v", data, err)
	}
	if d := cmp.Diff(v1, v2, swf.EqualOptions); d != "" {
		t.Errorf("round trip failed (-want +got):\n%s", d)
	}
}

func TestRoundTrip(t *testing.T) {
	for _, s := range testShapes {
		roundTripTest(t, s)
		roundTripTest(t, &Glyph{Records: s.Records})
	}
	roundTripTest(t, testMorphShape)
	roundTripTest(t, &ClipAction{})
	roundTripTest(t, &ClipAction{
		Events:  ClipEventFlags{KeyPress: true, Construct: true, Unload: true},
		KeyCode: optional.New[uint8](13),
		Actions: []byte{0x96, 0x02, 0x00, 0x08, 0x00},
	})
}

func TestEncoding(t *testing.T) {
	data, err := swf.MarshalJSON(testShapes[1])
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{
		`{"type":"style_change","move_to":{"x":100,"y":100},"right_fill":1,"line_style":2}`,
		`{"type":"edge","delta":{"x":200,"y":0}}`,
		`"join":{"type":"miter","limit":3}`,
		`"join":{"type":"round"}`,
		`{"type":"focal_gradient","matrix":`,
		`"start_cap":"square","end_cap":"none"`,
		`"no_h_scale":true`,
	} {
		if !strings.Contains(string(data), want) {
			t.Errorf("%s not found in %s", want, data)
		}
	}

	data, err = swf.MarshalJSON(testMorphShape)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{`"type":"morph_solid"`, `"type":"morph_edge"`, `"morph_move_to":{"x":3,"y":4}`} {
		if !strings.Contains(string(data), want) {
			t.Errorf("%s not found in %s", want, data)
		}
	}
}

func TestVariantNames(t *testing.T) {
	want := []string{"bitmap", "focal_gradient", "linear_gradient", "radial_gradient", "solid"}
	if d := cmp.Diff(want, swf.VariantNames[FillStyle]()); d != "" {
		t.Errorf("fill styles (-want +got):\n%s", d)
	}
	want = []string{"bevel", "round", "miter"}
	if d := cmp.Diff(want, swf.VariantNames[JoinStyle]()); d != "" {
		t.Errorf("join styles (-want +got):\n%s", d)
	}
}

func TestBadJoin(t *testing.T) {
	in := `{"width":1,"start_cap":"round","end_cap":"round","join":{"type":"sharp"},` +
		`"no_h_scale":false,"no_v_scale":false,"no_close":false,"pixel_hinting":false,` +
		`"fill":{"type":"solid","color":{"r":0,"g":0,"b":0,"a":0}}}`
	var l LineStyle
	err := swf.UnmarshalJSON([]byte(in), &l)
	var fe *swf.FormatError
	if !errors.As(err, &fe) || fe.Path != "/join/type" || !errors.Is(err, swf.ErrUnknownVariant) {
		t.Errorf("wrong error %v", err)
	}

	ok := strings.Replace(in, "sharp", "bevel", 1)
	err = swf.UnmarshalJSON([]byte(ok), &l)
	if err != nil {
		t.Fatal(err)
	}
	if _, isBevel := l.Join.(*BevelJoin); !isBevel {
		t.Errorf("wrong join %T", l.Join)
	}
}

func TestEdgeEnd(t *testing.T) {
	e := &Edge{Delta: swf.Vector2D{X: 1, Y: 2}, ControlDelta: optional.New(swf.Vector2D{X: 10, Y: -20})}
	if !e.IsCurve() {
		t.Error("curve not recognised")
	}
	if got := e.End(); got != (vec.Vec2{X: 11, Y: -18}) {
		t.Errorf("wrong end point %v", got)
	}
}

func TestMorphStartEnd(t *testing.T) {
	start := testMorphShape.Start()
	end := testMorphShape.End()

	if len(start.Records) != 4 || len(end.Records) != 4 {
		t.Fatalf("wrong number of records: %d, %d", len(start.Records), len(end.Records))
	}
	mv, _ := end.Records[0].(*StyleChange).MoveTo.Get()
	if mv != (swf.Vector2D{X: 3, Y: 4}) {
		t.Errorf("wrong end move %v", mv)
	}
	if fill := end.InitialStyles.Fill[0].(*SolidFill); fill.Color != blue {
		t.Errorf("wrong end color %v", fill.Color)
	}
	if w := end.InitialStyles.Line[0].Width; w != 30 {
		t.Errorf("wrong end width %d", w)
	}
	if c, _ := start.Records[2].(*Edge).ControlDelta.Get(); c.Y != 5 {
		t.Errorf("wrong start control point %v", c)
	}

	// both states are valid shapes
	roundTripTest(t, start)
	roundTripTest(t, end)
}

func TestClipEventFlags(t *testing.T) {
	if !(ClipEventFlags{}).IsEmpty() {
		t.Error("zero flags not empty")
	}
	if (ClipEventFlags{DragOut: true}).IsEmpty() {
		t.Error("DragOut flags empty")
	}
}
