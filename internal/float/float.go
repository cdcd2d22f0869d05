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

// Package float implements NaN-safe comparisons and an exact text form for
// the single precision floats stored in SWF records.
package float

import (
	"cmp"
	"errors"
	"math"
	"strconv"
)

// Text forms of the values which have no JSON number representation.
const (
	NaN    = "NaN"
	PosInf = "Infinity"
	NegInf = "-Infinity"
)

var errNotFloat = errors.New("not a float")

// Compare orders x and y.  NaN sorts before all other values and is equal
// to itself, so that the order is total.
func Compare(x, y float32) int {
	return cmp.Compare(x, y)
}

// Equal reports whether x and y are identical under [Compare].
func Equal(x, y float32) bool {
	return Compare(x, y) == 0
}

// CompareSlices orders two float slices lexicographically using [Compare].
func CompareSlices(x, y []float32) int {
	for i := 0; i < len(x) && i < len(y); i++ {
		if c := Compare(x[i], y[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(x), len(y))
}

// IsFinite reports whether x is neither NaN nor infinite.
func IsFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// Format returns the shortest decimal string which parses back to x with
// the given bit size.  Non-finite values use the names [NaN], [PosInf] and
// [NegInf].
func Format(x float64, bitSize int) string {
	switch {
	case math.IsNaN(x):
		return NaN
	case math.IsInf(x, 1):
		return PosInf
	case math.IsInf(x, -1):
		return NegInf
	}
	return strconv.FormatFloat(x, 'g', -1, bitSize)
}

// ParseName converts one of the names [NaN], [PosInf] and [NegInf] back
// into a float.
func ParseName(s string) (float64, error) {
	switch s {
	case NaN:
		return math.NaN(), nil
	case PosInf:
		return math.Inf(1), nil
	case NegInf:
		return math.Inf(-1), nil
	}
	return 0, errNotFloat
}
