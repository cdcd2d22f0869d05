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

package optional

import (
	"reflect"
	"testing"
)

func TestZeroValue(t *testing.T) {
	var v Value[uint16]
	_, ok := v.Get()
	if ok {
		t.Error("zero value should not be set")
	}
	if !v.IsZero() {
		t.Error("zero value should report IsZero")
	}
	if v.Interface() != nil {
		t.Error("absent value should have nil interface")
	}
}

func TestSetZero(t *testing.T) {
	// A present zero must stay distinguishable from an absent value.
	v := New[uint16](0)
	x, ok := v.Get()
	if !ok {
		t.Error("should be set")
	}
	if x != 0 {
		t.Errorf("got %d, want 0", x)
	}
	if v.IsZero() {
		t.Error("present zero should not report IsZero")
	}
}

func TestClear(t *testing.T) {
	v := New("name")
	v.Clear()
	if v.IsSet() {
		t.Error("should not be set after clear")
	}
	if got := v.GetOr("default"); got != "default" {
		t.Errorf("got %q, want %q", got, "default")
	}
}

func TestEqual(t *testing.T) {
	var unset1, unset2 Value[bool]
	true1 := New(true)
	true2 := New(true)
	false1 := New(false)

	if !Equal(unset1, unset2) {
		t.Error("two unset values should be equal")
	}
	if !Equal(true1, true2) {
		t.Error("two true values should be equal")
	}
	if Equal(unset1, false1) {
		t.Error("unset and false should not be equal")
	}
	if Equal(true1, false1) {
		t.Error("true and false should not be equal")
	}
}

func TestReflectionHooks(t *testing.T) {
	var v Value[[]byte]
	if v.ElemType() != reflect.TypeFor[[]byte]() {
		t.Errorf("wrong element type %v", v.ElemType())
	}
	v.SetInterface([]byte{1, 2})
	x, ok := v.Get()
	if !ok || len(x) != 2 {
		t.Errorf("got %v, %t", x, ok)
	}
}
