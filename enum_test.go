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
	"errors"
	"testing"

	"golang.org/x/text/language"
)

func TestLanguageCodeNames(t *testing.T) {
	want := []string{"auto", "latin", "japanese", "korean", "simplified-chinese", "traditional-chinese"}
	if languageNames.Len() != len(want) {
		t.Fatalf("got %d languages, want %d", languageNames.Len(), len(want))
	}
	for i, name := range want {
		c := LanguageCode(i)
		if got := c.String(); got != name {
			t.Errorf("%d: got %q, want %q", i, got, name)
		}
		var c2 LanguageCode
		err := c2.UnmarshalText([]byte(name))
		if err != nil {
			t.Error(err)
		} else if c2 != c {
			t.Errorf("%q: got %d, want %d", name, c2, c)
		}
	}
}

func TestBlendModeNames(t *testing.T) {
	cases := map[BlendMode]string{
		BlendNormal:     "normal",
		BlendDifference: "difference",
		BlendHardlight:  "hardlight",
	}
	for m, name := range cases {
		text, err := m.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		if string(text) != name {
			t.Errorf("got %q, want %q", text, name)
		}
	}
}

func TestEnumRejectsUnknown(t *testing.T) {
	var m BlendMode
	for _, name := range []string{"", "Normal", "hard-light", "normal "} {
		err := m.UnmarshalText([]byte(name))
		if !errors.Is(err, ErrUnknownVariant) {
			t.Errorf("%q: got %v", name, err)
		}
	}

	_, err := BlendMode(200).MarshalText()
	if !errors.Is(err, ErrUnknownVariant) {
		t.Errorf("invalid value encoded: %v", err)
	}
	if s := BlendMode(200).String(); s != "BlendMode(200)" {
		t.Errorf("got %q", s)
	}
}

func TestEnumDuplicatePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("duplicate names accepted")
		}
	}()
	NewEnumNames[uint8]("Test", SnakeCase, "FooBar", "foo_bar")
}

func TestLanguageTag(t *testing.T) {
	cases := map[LanguageCode]language.Tag{
		LanguageAuto:              language.Und,
		LanguageJapanese:          language.Japanese,
		LanguageSimplifiedChinese: language.SimplifiedChinese,
	}
	for c, want := range cases {
		if got := c.Tag(); got != want {
			t.Errorf("%s: got %s, want %s", c, got, want)
		}
	}

	script, _ := LanguageLatin.Tag().Script()
	if script.String() != "Latn" {
		t.Errorf("wrong script %s", script)
	}
}
