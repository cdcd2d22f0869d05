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
	"bytes"
	"encoding/hex"
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/swf/fixed"
	"seehuhn.de/go/swf/optional"
)

// testFigure is a small closed union used to exercise the codec.
type testFigure interface {
	isTestFigure()
}

type testCircle struct {
	Center Vector2D
	Radius uint16
}

type testPolygonFigure struct {
	Points []Vector2D
	Fill   optional.Value[SRgb8]
}

type testEmptyFigure struct{}

func (*testCircle) isTestFigure()        {}
func (*testPolygonFigure) isTestFigure() {}
func (*testEmptyFigure) isTestFigure()   {}

func init() {
	RegisterUnion[testFigure](UnionSpec{Key: "type", Style: SnakeCase, TrimPrefix: "test", TrimSuffix: "Figure"},
		(*testCircle)(nil), (*testPolygonFigure)(nil), (*testEmptyFigure)(nil))
}

type testRecord struct {
	ID        uint16
	Name      string
	Bounds    Rect
	Transform Matrix
	Color     optional.Value[StraightSRgba8]
	Language  LanguageCode
	Blend     optional.Value[BlendMode]
	Data      []byte
	Extra     optional.Value[[]byte]
	Weights   []float32
	Figures   []testFigure
	Main      optional.Value[testFigure]
	Renamed   int8 `swf:"old_name"`
	Skipped   int  `swf:"-"`
}

var testCases = []testRecord{
	{},
	{
		ID:     7,
		Name:   "hello <world> & \"friends\"",
		Bounds: Rect{XMin: -20, XMax: 100, YMin: 0, YMax: 200},
		Transform: Matrix{
			ScaleX:      fixed.Sfixed16P16FromEpsilons(1 << 16),
			ScaleY:      fixed.Sfixed16P16FromEpsilons(-3 << 15),
			RotateSkew0: fixed.Sfixed16P16FromEpsilons(1),
			TranslateX:  math.MinInt32,
			TranslateY:  math.MaxInt32,
		},
		Color:    optional.New(StraightSRgba8{R: 1, G: 2, B: 3, A: 4}),
		Language: LanguageTraditionalChinese,
		Blend:    optional.New(BlendHardlight),
		Data:     []byte{0x00, 0xFF, 0x10},
		Extra:    optional.New([]byte{}),
		Weights:  []float32{0, -0.5, 1e-30, float32(math.NaN()), float32(math.Inf(1)), float32(math.Inf(-1))},
		Figures: []testFigure{
			&testCircle{Center: Vector2D{X: 1, Y: -1}, Radius: 10},
			&testPolygonFigure{Points: []Vector2D{{1, 2}, {3, 4}}},
			&testPolygonFigure{Fill: optional.New(SRgb8{R: 255})},
			&testEmptyFigure{},
		},
		Main:    optional.New[testFigure](&testCircle{Radius: 1}),
		Renamed: -1,
	},
}

func roundTripTest(t *testing.T, r1 testRecord) {
	t.Helper()

	data, err := MarshalJSON(r1)
	if err != nil {
		t.Fatal(err)
	}
	var r2 testRecord
	err = UnmarshalJSON(data, &r2)
	if err != nil {
		t.Fatalf("%s: %v", data, err)
	}
	if d := cmp.Diff(r1, r2, EqualOptions); d != "" {
		t.Errorf("round trip failed (-want +got):\n%s", d)
	}
}

func TestRoundTrip(t *testing.T) {
	for _, r := range testCases {
		roundTripTest(t, r)
	}
}

func TestRectExample(t *testing.T) {
	r := Rect{XMin: 0, XMax: 100, YMin: 0, YMax: 200}
	data, err := MarshalJSON(r)
	if err != nil {
		t.Fatal(err)
	}
	want := `{"x_min":0,"x_max":100,"y_min":0,"y_max":200}`
	if string(data) != want {
		t.Errorf("got %s, want %s", data, want)
	}

	var r2 Rect
	err = UnmarshalJSON([]byte(want), &r2)
	if err != nil {
		t.Fatal(err)
	}
	if r2 != r {
		t.Errorf("got %v, want %v", r2, r)
	}
}

func TestOmitAbsent(t *testing.T) {
	data, err := MarshalJSON(testRecord{})
	if err != nil {
		t.Fatal(err)
	}
	for _, key := range []string{"color", "blend", "extra", "main", "skipped"} {
		if bytes.Contains(data, []byte(`"`+key+`"`)) {
			t.Errorf("absent field %q present in %s", key, data)
		}
	}
	if bytes.Contains(data, []byte("null")) {
		t.Errorf("null in %s", data)
	}
	for _, key := range []string{`"weights":[]`, `"figures":[]`, `"data":""`, `"old_name":0`} {
		if !bytes.Contains(data, []byte(key)) {
			t.Errorf("%s missing in %s", key, data)
		}
	}
}

func TestVariantEncoding(t *testing.T) {
	data, err := MarshalJSON(&testPolygonFigure{Points: []Vector2D{{X: 1, Y: 2}}})
	if err != nil {
		t.Fatal(err)
	}
	want := `{"type":"polygon","points":[{"x":1,"y":2}]}`
	if string(data) != want {
		t.Errorf("got %s, want %s", data, want)
	}

	data, err = MarshalJSON(&testEmptyFigure{})
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `{"type":"empty"}` {
		t.Errorf("got %s", data)
	}
}

func TestVariantDecoding(t *testing.T) {
	in := &testCircle{Center: Vector2D{X: -3, Y: 4}, Radius: 5}
	data, err := MarshalJSON(in)
	if err != nil {
		t.Fatal(err)
	}

	out := &testCircle{}
	err = UnmarshalJSON(data, out)
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(in, out); d != "" {
		t.Errorf("round trip failed (-want +got):\n%s", d)
	}

	cases := []struct {
		in      string
		wantErr error
	}{
		{`{"center":{"x":0,"y":0},"radius":1}`, errMissingField},
		{`{"type":"hexagon","center":{"x":0,"y":0},"radius":1}`, ErrUnknownVariant},
		{`{"type":"empty"}`, nil},
	}
	for _, c := range cases {
		err := UnmarshalJSON([]byte(c.in), &testCircle{})
		var fe *FormatError
		if !errors.As(err, &fe) || fe.Path != "/type" {
			t.Errorf("%s: got %v", c.in, err)
			continue
		}
		if c.wantErr != nil && !errors.Is(err, c.wantErr) {
			t.Errorf("%s: got %v, want %v", c.in, err, c.wantErr)
		}
	}
}

func TestFloatEncoding(t *testing.T) {
	r := testRecord{Weights: []float32{0.1, float32(math.NaN()), float32(math.Inf(-1))}}
	data, err := MarshalJSON(r)
	if err != nil {
		t.Fatal(err)
	}
	want := []byte(`"weights":[0.1,"NaN","-Infinity"]`)
	if !bytes.Contains(data, want) {
		t.Errorf("%s does not contain %s", data, want)
	}
}

func TestHexExample(t *testing.T) {
	in := []byte{0x00, 0xFF, 0x10}
	data, err := MarshalJSON(in)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `"00ff10"` {
		t.Errorf("got %s", data)
	}
	var out []byte
	err = UnmarshalJSON(data, &out)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(in, out) {
		t.Errorf("got %x, want %x", out, in)
	}
}

func TestDecodeErrors(t *testing.T) {
	base := `"id":1,"name":"","bounds":{"x_min":0,"x_max":0,"y_min":0,"y_max":0},` +
		`"transform":{"scale_x":1,"scale_y":1,"rotate_skew0":0,"rotate_skew1":0,"translate_x":0,"translate_y":0},` +
		`"language":"auto","weights":[],"old_name":0`
	cases := []struct {
		in       string
		wantPath string
		wantErr  error
	}{
		{`{` + base + `,"data":"abc","figures":[]}`, "/data", hex.ErrLength},
		{`{` + base + `,"data":"zz","figures":[]}`, "/data", hex.InvalidByteError('z')},
		{`{` + base + `,"figures":[]}`, "/data", errMissingField},
		{`{` + base + `,"data":"","figures":[],"bogus":1}`, "/bogus", errUnknownField},
		{`{` + base + `,"data":"","figures":[{"type":"hexagon"}]}`, "/figures/0/type", ErrUnknownVariant},
		{`{` + base + `,"data":"","figures":[{"radius":1}]}`, "/figures/0/type", errMissingField},
		{`{` + base + `,"data":"","figures":[{"type":"circle","radius":1}]}`, "/figures/0/center", errMissingField},
		{`{` + base + `,"data":"","figures":[],"blend":"fancy"}`, "/blend", ErrUnknownVariant},
		{`{` + base + `,"data":"","data":"00","figures":[]}`, "/data", errDuplicateField},
		{`{` + base + `,"data":"","figures":[{"type":"circle","type":"circle","center":{"x":0,"y":0},"radius":1}]}`,
			"/figures/0/type", errDuplicateField},
	}
	for _, c := range cases {
		var r testRecord
		err := UnmarshalJSON([]byte(c.in), &r)
		var fe *FormatError
		if !errors.As(err, &fe) {
			t.Errorf("%s: expected FormatError, got %v", c.in, err)
			continue
		}
		if fe.Path != c.wantPath {
			t.Errorf("%s: wrong path %q, want %q", c.in, fe.Path, c.wantPath)
		}
		if !errors.Is(err, c.wantErr) {
			t.Errorf("%s: got %v, want %v", c.in, err, c.wantErr)
		}
	}
}

func TestDecodeRange(t *testing.T) {
	var x struct{ A uint8 }
	err := UnmarshalJSON([]byte(`{"a":256}`), &x)
	if err == nil {
		t.Error("out of range value accepted")
	}
	err = UnmarshalJSON([]byte(`{"a":-1}`), &x)
	if err == nil {
		t.Error("negative value accepted")
	}
	err = UnmarshalJSON([]byte(`{"a":255}`), &x)
	if err != nil || x.A != 255 {
		t.Errorf("got %d, %v", x.A, err)
	}
}

func TestNullOptional(t *testing.T) {
	var x struct {
		A optional.Value[uint16]
	}
	err := UnmarshalJSON([]byte(`{"a":null}`), &x)
	if err != nil {
		t.Fatal(err)
	}
	if x.A.IsSet() {
		t.Error("null decoded as present value")
	}
}

func TestUnmarshalNeedsPointer(t *testing.T) {
	var r Rect
	if err := UnmarshalJSON([]byte(`{}`), r); err == nil {
		t.Error("non-pointer accepted")
	}
	if err := UnmarshalJSON([]byte(`{`), &r); err == nil {
		t.Error("malformed JSON accepted")
	}
}

func FuzzHexRoundTrip(f *testing.F) {
	f.Add([]byte{})
	f.Add([]byte{0x00, 0xFF, 0x10})
	f.Add([]byte("hello"))
	f.Fuzz(func(t *testing.T, in []byte) {
		data, err := MarshalJSON(in)
		if err != nil {
			t.Fatal(err)
		}
		var out []byte
		err = UnmarshalJSON(data, &out)
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(in, out) {
			t.Errorf("got %x, want %x", out, in)
		}
	})
}

func FuzzHexDecode(f *testing.F) {
	f.Add("")
	f.Add("00ff10")
	f.Add("abc")
	f.Add("0g")
	f.Fuzz(func(t *testing.T, s string) {
		data, err := MarshalJSON(s)
		if err != nil {
			t.Fatal(err)
		}
		var out []byte
		err = UnmarshalJSON(data, &out)
		want, wantErr := hex.DecodeString(s)
		if (err != nil) != (wantErr != nil) {
			t.Fatalf("%q: got error %v, want %v", s, err, wantErr)
		}
		if err == nil && !bytes.Equal(out, want) {
			t.Errorf("%q: got %x, want %x", s, out, want)
		}
	})
}

func FuzzRoundTrip(f *testing.F) {
	for _, r := range testCases {
		data, err := MarshalJSON(r)
		if err != nil {
			f.Fatal(err)
		}
		f.Add(data)
	}
	f.Fuzz(func(t *testing.T, data []byte) {
		var r1 testRecord
		err := UnmarshalJSON(data, &r1)
		if err != nil {
			t.Skip("invalid input")
		}
		roundTripTest(t, r1)
	})
}
