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

// Package optional provides a wrapper for record fields which may be absent.
//
// Absence is recorded explicitly and never by a sentinel value, so that
// every value of the underlying type remains available when the field is
// present.
package optional

import "reflect"

// Value represents an optional value of type T.
// The zero Value is absent.
type Value[T any] struct {
	val   T
	isSet bool
}

// New returns a Value which is present and holds v.
func New[T any](v T) Value[T] {
	var o Value[T]
	o.Set(v)
	return o
}

// Get returns the value and whether it is set.
func (o Value[T]) Get() (T, bool) {
	return o.val, o.isSet
}

// GetOr returns the value if it is set, and def otherwise.
func (o Value[T]) GetOr(def T) T {
	if !o.isSet {
		return def
	}
	return o.val
}

// Set sets the value.
func (o *Value[T]) Set(v T) {
	o.isSet = true
	o.val = v
}

// Clear clears the value.
func (o *Value[T]) Clear() {
	var zero T
	o.isSet = false
	o.val = zero
}

// IsSet reports whether the value is present.
func (o Value[T]) IsSet() bool {
	return o.isSet
}

// IsZero reports whether the value is absent.
// This makes the `omitzero` option of encoding/json drop absent values.
func (o Value[T]) IsZero() bool {
	return !o.isSet
}

// Interface returns the value as an interface, or nil if it is absent.
// This is used by reflection-based encoders.
func (o Value[T]) Interface() any {
	if !o.isSet {
		return nil
	}
	return o.val
}

// ElemType returns the type T.
func (o Value[T]) ElemType() reflect.Type {
	return reflect.TypeFor[T]()
}

// SetInterface sets the value from an interface holding a T.
// It panics if v has a different type.
func (o *Value[T]) SetInterface(v any) {
	o.Set(v.(T))
}

// Equal reports whether a and b are both absent or both present with equal
// values.
func Equal[T comparable](a, b Value[T]) bool {
	return a.isSet == b.isSet && a.val == b.val
}
