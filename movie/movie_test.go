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

package movie

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/swf"
	"seehuhn.de/go/swf/fixed"
	"seehuhn.de/go/swf/optional"
	"seehuhn.de/go/swf/tag"
)

var testMovie = &Movie{
	Header: Header{
		SwfVersion: 10,
		FrameSize:  swf.Rect{XMax: 11000, YMax: 8000},
		FrameRate:  fixed.Ufixed8P8FromEpsilons(24 << 8),
		FrameCount: 2,
	},
	Tags: []tag.Tag{
		&tag.FileAttributes{UseAS3: true},
		&tag.SetBackgroundColor{Color: swf.SRgb8{R: 255, G: 255, B: 255}},
		&tag.DefineSprite{ID: 1, FrameCount: 1, Tags: []tag.Tag{&tag.ShowFrame{}}},
		&tag.PlaceObject{Depth: 1, CharacterID: optional.New[uint16](1)},
		&tag.ShowFrame{},
		&tag.RemoveObject{Depth: 1},
		&tag.ShowFrame{},
	},
}

func TestRoundTrip(t *testing.T) {
	buf := &bytes.Buffer{}
	err := testMovie.Write(buf)
	if err != nil {
		t.Fatal(err)
	}
	m, err := Read(buf)
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(testMovie, m, swf.EqualOptions); d != "" {
		t.Errorf("round trip failed (-want +got):\n%s", d)
	}
}

func TestEncodingJSON(t *testing.T) {
	data, err := json.Marshal(testMovie)
	if err != nil {
		t.Fatal(err)
	}
	want, err := swf.MarshalJSON(testMovie)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(data, want) {
		t.Errorf("got %s, want %s", data, want)
	}

	m := &Movie{}
	err = json.Unmarshal(data, m)
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(testMovie, m, swf.EqualOptions); d != "" {
		t.Errorf("round trip failed (-want +got):\n%s", d)
	}
}

func TestEncoding(t *testing.T) {
	m := &Movie{Header: Header{FrameRate: fixed.Ufixed8P8FromEpsilons(0x1880)}}
	data, err := swf.MarshalJSON(m)
	if err != nil {
		t.Fatal(err)
	}
	want := `{"header":{"swf_version":0,"frame_size":{"x_min":0,"x_max":0,"y_min":0,"y_max":0},` +
		`"frame_rate":24.5,"frame_count":0},"tags":[]}`
	if string(data) != want {
		t.Errorf("got %s, want %s", data, want)
	}
}

func TestReadErrors(t *testing.T) {
	cases := []struct {
		in   string
		path string
	}{
		{`{"header":{"swf_version":1,"frame_size":{"x_min":0,"x_max":0,"y_min":0,"y_max":0},"frame_rate":1},"tags":[]}`,
			"/header/frame_count"},
		{`{"header":{"swf_version":256,"frame_size":{"x_min":0,"x_max":0,"y_min":0,"y_max":0},"frame_rate":1,"frame_count":0},"tags":[]}`,
			"/header/swf_version"},
		{`{"header":{"swf_version":1,"frame_size":{"x_min":0,"x_max":0,"y_min":0,"y_max":0},"frame_rate":1,"frame_count":0},"tags":[{"type":"show_frame"},{"type":"bogus"}]}`,
			"/tags/1/type"},
	}
	for _, c := range cases {
		_, err := Read(strings.NewReader(c.in))
		var fe *swf.FormatError
		if !errors.As(err, &fe) {
			t.Errorf("%s: expected a FormatError, got %v", c.path, err)
			continue
		}
		if fe.Path != c.path {
			t.Errorf("got path %q, want %q", fe.Path, c.path)
		}
	}
}

func TestSignature(t *testing.T) {
	sig := SwfSignature{CompressionMethod: CompressionLzma, SwfVersion: 13, UncompressedFileLength: 1234}
	data, err := swf.MarshalJSON(&sig)
	if err != nil {
		t.Fatal(err)
	}
	want := `{"compression_method":"lzma","swf_version":13,"uncompressed_file_length":1234}`
	if string(data) != want {
		t.Errorf("got %s, want %s", data, want)
	}

	for c, magic := range map[CompressionMethod]string{
		CompressionNone:    "FWS",
		CompressionDeflate: "CWS",
		CompressionLzma:    "ZWS",
		3:                  "",
	} {
		if got := c.Magic(); got != magic {
			t.Errorf("%d: got %q, want %q", c, got, magic)
		}
	}
}

func TestDuration(t *testing.T) {
	h := &Header{FrameRate: fixed.Ufixed8P8FromEpsilons(12 << 8), FrameCount: 30}
	if d := h.Duration(); d != 2500*time.Millisecond {
		t.Errorf("got %v", d)
	}
	h.FrameRate = 0
	if d := h.Duration(); d != 0 {
		t.Errorf("got %v", d)
	}
}
