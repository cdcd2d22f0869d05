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

package button

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/swf"
	"seehuhn.de/go/swf/filter"
	"seehuhn.de/go/swf/fixed"
	"seehuhn.de/go/swf/optional"
	"seehuhn.de/go/swf/sound"
)

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
	roundTripTest(t, &Record{})
	roundTripTest(t, &Record{
		StateUp:      true,
		StateHitTest: true,
		CharacterID:  12,
		Depth:        1,
		Matrix:       swf.IdentityMatrix,
		ColorTransform: swf.ColorTransformWithAlpha{
			RedMult:   fixed.Sfixed8P8FromEpsilons(256),
			AlphaMult: fixed.Sfixed8P8FromEpsilons(128),
			BlueAdd:   -255,
		},
		Filters:   []filter.Filter{&filter.Blur{Passes: 1}, &filter.ColorMatrix{}},
		BlendMode: swf.BlendScreen,
	})
	roundTripTest(t, &CondAction{})
	roundTripTest(t, &CondAction{
		Conditions: optional.New(Cond{OverDownToIdle: true, KeyPress: optional.New[uint32](13)}),
		Actions:    []byte{0x07, 0x00},
	})
	roundTripTest(t, &Sound{SoundID: 4, SoundInfo: sound.Info{LoopCount: optional.New[uint16](2)}})
}

func TestEncoding(t *testing.T) {
	r := &Record{Filters: []filter.Filter{&filter.Glow{}}, BlendMode: swf.BlendHardlight}
	data, err := swf.MarshalJSON(r)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{
		`"state_hit_test":false`,
		`"character_id":0`,
		`"filters":[{"type":"glow",`,
		`"blend_mode":"hardlight"`,
	} {
		if !strings.Contains(string(data), want) {
			t.Errorf("%s not found in %s", want, data)
		}
	}
}
