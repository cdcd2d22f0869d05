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
	"fmt"
	"strconv"

	"golang.org/x/exp/constraints"
)

// EnumNames maps the values of a closed enumeration to their interchange
// names.  The values of the enumeration must be 0, 1, ..., n-1.
//
// Enumeration types use EnumNames to implement [fmt.Stringer],
// [encoding.TextMarshaler] and [encoding.TextUnmarshaler].
type EnumNames[T constraints.Unsigned] struct {
	typeName string
	names    []string
	index    map[string]T
}

// NewEnumNames creates the name table for an enumeration.  The Go names of
// the variants are given in value order and are converted using style.
func NewEnumNames[T constraints.Unsigned](typeName string, style CaseStyle, goNames ...string) *EnumNames[T] {
	e := &EnumNames[T]{
		typeName: typeName,
		names:    make([]string, len(goNames)),
		index:    make(map[string]T, len(goNames)),
	}
	for i, goName := range goNames {
		name := style.Convert(goName)
		if _, dup := e.index[name]; dup {
			panic(fmt.Sprintf("duplicate name %q in enum %s", name, typeName))
		}
		e.names[i] = name
		e.index[name] = T(i)
	}
	return e
}

// Len returns the number of variants.
func (e *EnumNames[T]) Len() int {
	return len(e.names)
}

// IsValid reports whether v is a member of the enumeration.
func (e *EnumNames[T]) IsValid(v T) bool {
	return uint64(v) < uint64(len(e.names))
}

// String returns the interchange name of v, or a description of the
// invalid value.
func (e *EnumNames[T]) String(v T) string {
	if !e.IsValid(v) {
		return e.typeName + "(" + strconv.FormatUint(uint64(v), 10) + ")"
	}
	return e.names[v]
}

// MarshalText returns the interchange name of v.
func (e *EnumNames[T]) MarshalText(v T) ([]byte, error) {
	if !e.IsValid(v) {
		return nil, fmt.Errorf("%w of %s: %d", ErrUnknownVariant, e.typeName, uint64(v))
	}
	return []byte(e.names[v]), nil
}

// UnmarshalText returns the value with the given interchange name.
func (e *EnumNames[T]) UnmarshalText(text []byte) (T, error) {
	v, ok := e.index[string(text)]
	if !ok {
		return 0, fmt.Errorf("%w of %s: %q", ErrUnknownVariant, e.typeName, text)
	}
	return v, nil
}
