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
)

var (
	// ErrUnknownVariant is returned (wrapped in a [*FormatError]) when a
	// textual discriminant does not name a member of a closed enum or union.
	ErrUnknownVariant = errors.New("unknown variant")

	errMissingField   = errors.New("missing field")
	errUnknownField   = errors.New("unknown field")
	errDuplicateField = errors.New("duplicate field")
	errNilValue       = errors.New("nil value")
)

// FormatError indicates that a value could not be converted to or from the
// textual interchange form.
//
// Path locates the offending value in JSON pointer notation, for example
// "/tags/3/filters/0/type".
type FormatError struct {
	Path string
	Err  error
}

func (err *FormatError) Error() string {
	path := err.Path
	if path == "" {
		path = "/"
	}
	middle := ""
	if err.Err != nil {
		middle = ": " + err.Err.Error()
	}
	return "swf: invalid value at " + path + middle
}

func (err *FormatError) Unwrap() error {
	return err.Err
}

// wrapError attaches path to err, unless err already carries a location.
func wrapError(path string, err error) error {
	if err == nil {
		return nil
	}
	var fe *FormatError
	if errors.As(err, &fe) {
		return err
	}
	return &FormatError{Path: path, Err: err}
}
