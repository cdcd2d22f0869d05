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
	"reflect"
	"strings"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// EqualOptions are the go-cmp options which implement the equality used by
// [Equal].  They are exported so that tests can use them with [cmp.Diff].
var EqualOptions = cmp.Options{
	cmpopts.EquateNaNs(),
	cmpopts.EquateEmpty(),
	cmp.Exporter(func(t reflect.Type) bool {
		return strings.HasPrefix(t.PkgPath(), "seehuhn.de/go/swf/optional")
	}),
}

// Equal reports whether a and b are equal record values.
//
// Unlike the == operator, Equal is total: NaN floats compare equal to each
// other, nil and empty slices compare equal, and absent optional fields are
// only equal to absent optional fields.  Types with an Equal method are
// compared using that method.
func Equal(a, b any) bool {
	return cmp.Equal(a, b, EqualOptions)
}
