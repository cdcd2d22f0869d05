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
	"reflect"
	"strings"
	"sync"
)

// UnionSpec describes how the variants of a closed union are told apart in
// the interchange form.
type UnionSpec struct {
	// Key is the name of the discriminant field, for example "type".
	Key string

	// Style is applied to the Go type names of the variants,
	// after TrimPrefix and TrimSuffix have been removed.
	Style CaseStyle

	TrimPrefix string
	TrimSuffix string
}

type union struct {
	key     string
	byName  map[string]reflect.Type
	byType  map[reflect.Type]string
	ordered []string
}

var (
	unionMutex sync.RWMutex
	unions     = map[reflect.Type]*union{}
	members    = map[reflect.Type]*union{}
)

// RegisterUnion declares the closed set of variants of the interface type U.
// Each variant is given as a value (typically a nil pointer) of its concrete
// type.  The interchange codec uses this information to write and read the
// discriminant of values stored in fields of type U.
//
// RegisterUnion is meant to be called from init functions.  It panics if U
// is not an interface type, if U has been registered before, or if two
// variants map to the same name.
func RegisterUnion[U any](spec UnionSpec, variants ...U) {
	ut := reflect.TypeFor[U]()
	if ut.Kind() != reflect.Interface {
		panic(fmt.Sprintf("union type %s is not an interface", ut))
	}

	u := &union{
		key:    spec.Key,
		byName: make(map[string]reflect.Type, len(variants)),
		byType: make(map[reflect.Type]string, len(variants)),
	}
	for _, v := range variants {
		vt := reflect.TypeOf(v)
		base := vt
		if base.Kind() == reflect.Pointer {
			base = base.Elem()
		}
		goName := strings.TrimSuffix(strings.TrimPrefix(base.Name(), spec.TrimPrefix), spec.TrimSuffix)
		name := spec.Style.Convert(goName)
		if _, dup := u.byName[name]; dup {
			panic(fmt.Sprintf("conflicting variants %q in union %s", name, ut))
		}
		u.byName[name] = vt
		u.byType[vt] = name
		u.ordered = append(u.ordered, name)
	}

	unionMutex.Lock()
	defer unionMutex.Unlock()
	if _, alreadyPresent := unions[ut]; alreadyPresent {
		panic(fmt.Sprintf("union %s registered twice", ut))
	}
	unions[ut] = u
	for vt := range u.byType {
		members[vt] = u
	}
}

func lookupUnion(ut reflect.Type) *union {
	unionMutex.RLock()
	defer unionMutex.RUnlock()
	return unions[ut]
}

// lookupVariant returns the union which v is a variant of.
func lookupVariant(v reflect.Value) *union {
	if !v.IsValid() {
		return nil
	}
	unionMutex.RLock()
	defer unionMutex.RUnlock()
	return members[v.Type()]
}

// VariantName returns the interchange discriminant of v, which must be a
// variant of the registered union U.
func VariantName[U any](v U) (string, bool) {
	u := lookupUnion(reflect.TypeFor[U]())
	if u == nil {
		return "", false
	}
	name, ok := u.byType[reflect.TypeOf(v)]
	return name, ok
}

// VariantNames lists the discriminants of the registered union U in
// registration order.
func VariantNames[U any]() []string {
	u := lookupUnion(reflect.TypeFor[U]())
	if u == nil {
		return nil
	}
	return append([]string(nil), u.ordered...)
}
