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

// Package swf provides the document model of SWF files, together with a
// textual interchange form based on JSON.
//
// The record types in this package and its sub-packages describe the
// parsed structure of an SWF file: a [movie.Movie] holds a header and a
// sequence of tags, and tags own shapes, text records, filters, gradients
// and sound parameters.  All records are plain values.  They carry no
// behaviour beyond conversion to and from the interchange form, and they do
// not check cross-record consistency.  Decoding the binary SWF format is
// left to other packages.
//
// The interchange form is produced by [MarshalJSON] and read by
// [UnmarshalJSON]:
//
//	data, err := swf.MarshalJSON(swf.Rect{XMax: 100, YMax: 200})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	// data is {"x_min":0,"x_max":100,"y_min":0,"y_max":200}
//
// The following conventions apply:
//
//   - Struct field names are converted to snake_case.  A field tag
//     `swf:"name"` overrides the generated name.
//   - Fields of type [optional.Value] are omitted when absent.
//   - Byte slices are written as lower case hex strings.
//   - Enumerations are written as strings.  Most enumerations use
//     snake_case names, [LanguageCode] and [BlendMode] use kebab-case.
//   - Values of closed unions such as tag.Tag are written as objects whose
//     first key is the discriminant, see [RegisterUnion].
//   - Fixed-point numbers are written as exact decimal numbers.
//   - Non-finite floats are written as the strings "NaN", "Infinity" and
//     "-Infinity".
//
// Records are compared using [Equal], which treats NaN values as equal.
//
// [movie.Movie]: https://pkg.go.dev/seehuhn.de/go/swf/movie#Movie
// [optional.Value]: https://pkg.go.dev/seehuhn.de/go/swf/optional#Value
package swf
