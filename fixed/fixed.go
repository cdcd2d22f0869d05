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

// Package fixed implements the fixed-point number formats used in SWF files.
//
// All types store the raw bit pattern of the number.  The value of a number
// is its raw integer divided by 2^8 (for the 8.8 formats) or 2^16 (for the
// 16.16 formats).  Conversions to float64 are always exact, and conversions
// from float64 fail unless the value is exactly representable.
package fixed

import (
	"bytes"
	"encoding/json"
	"errors"
	"math"
	"math/big"
	"strconv"
)

var (
	errNotExact   = errors.New("value is not a multiple of the fixed-point epsilon")
	errOutOfRange = errors.New("value out of range")
	errNotNumber  = errors.New("expected a number")
)

// Sfixed8P8 is a signed 8.8 fixed-point number.
type Sfixed8P8 int16

// Ufixed8P8 is an unsigned 8.8 fixed-point number.
type Ufixed8P8 uint16

// Sfixed16P16 is a signed 16.16 fixed-point number.
type Sfixed16P16 int32

// Ufixed16P16 is an unsigned 16.16 fixed-point number.
type Ufixed16P16 uint32

// Sfixed8P8FromEpsilons returns the number with the given raw bit pattern.
func Sfixed8P8FromEpsilons(e int16) Sfixed8P8 { return Sfixed8P8(e) }

// Ufixed8P8FromEpsilons returns the number with the given raw bit pattern.
func Ufixed8P8FromEpsilons(e uint16) Ufixed8P8 { return Ufixed8P8(e) }

// Sfixed16P16FromEpsilons returns the number with the given raw bit pattern.
func Sfixed16P16FromEpsilons(e int32) Sfixed16P16 { return Sfixed16P16(e) }

// Ufixed16P16FromEpsilons returns the number with the given raw bit pattern.
func Ufixed16P16FromEpsilons(e uint32) Ufixed16P16 { return Ufixed16P16(e) }

// Sfixed8P8FromFloat64 converts x to a signed 8.8 number.
// An error is returned if x cannot be represented exactly.
func Sfixed8P8FromFloat64(x float64) (Sfixed8P8, error) {
	e, err := toEpsilons(x, 8, math.MinInt16, math.MaxInt16)
	return Sfixed8P8(e), err
}

// Ufixed8P8FromFloat64 converts x to an unsigned 8.8 number.
// An error is returned if x cannot be represented exactly.
func Ufixed8P8FromFloat64(x float64) (Ufixed8P8, error) {
	e, err := toEpsilons(x, 8, 0, math.MaxUint16)
	return Ufixed8P8(e), err
}

// Sfixed16P16FromFloat64 converts x to a signed 16.16 number.
// An error is returned if x cannot be represented exactly.
func Sfixed16P16FromFloat64(x float64) (Sfixed16P16, error) {
	e, err := toEpsilons(x, 16, math.MinInt32, math.MaxInt32)
	return Sfixed16P16(e), err
}

// Ufixed16P16FromFloat64 converts x to an unsigned 16.16 number.
// An error is returned if x cannot be represented exactly.
func Ufixed16P16FromFloat64(x float64) (Ufixed16P16, error) {
	e, err := toEpsilons(x, 16, 0, math.MaxUint32)
	return Ufixed16P16(e), err
}

// Epsilons returns the raw bit pattern.
func (x Sfixed8P8) Epsilons() int16 { return int16(x) }

// Epsilons returns the raw bit pattern.
func (x Ufixed8P8) Epsilons() uint16 { return uint16(x) }

// Epsilons returns the raw bit pattern.
func (x Sfixed16P16) Epsilons() int32 { return int32(x) }

// Epsilons returns the raw bit pattern.
func (x Ufixed16P16) Epsilons() uint32 { return uint32(x) }

// Float64 returns the exact value of x.
func (x Sfixed8P8) Float64() float64 { return float64(x) / (1 << 8) }

// Float64 returns the exact value of x.
func (x Ufixed8P8) Float64() float64 { return float64(x) / (1 << 8) }

// Float64 returns the exact value of x.
func (x Sfixed16P16) Float64() float64 { return float64(x) / (1 << 16) }

// Float64 returns the exact value of x.
func (x Ufixed16P16) Float64() float64 { return float64(x) / (1 << 16) }

func (x Sfixed8P8) String() string   { return format(x.Float64()) }
func (x Ufixed8P8) String() string   { return format(x.Float64()) }
func (x Sfixed16P16) String() string { return format(x.Float64()) }
func (x Ufixed16P16) String() string { return format(x.Float64()) }

// MarshalJSON encodes x as a JSON number holding its exact value.
func (x Sfixed8P8) MarshalJSON() ([]byte, error) { return []byte(x.String()), nil }

// MarshalJSON encodes x as a JSON number holding its exact value.
func (x Ufixed8P8) MarshalJSON() ([]byte, error) { return []byte(x.String()), nil }

// MarshalJSON encodes x as a JSON number holding its exact value.
func (x Sfixed16P16) MarshalJSON() ([]byte, error) { return []byte(x.String()), nil }

// MarshalJSON encodes x as a JSON number holding its exact value.
func (x Ufixed16P16) MarshalJSON() ([]byte, error) { return []byte(x.String()), nil }

// UnmarshalJSON decodes a JSON number.  The number must be an exact
// multiple of the epsilon.
func (x *Sfixed8P8) UnmarshalJSON(data []byte) error {
	e, err := parseEpsilons(data, 8, math.MinInt16, math.MaxInt16)
	if err != nil {
		return err
	}
	*x = Sfixed8P8(e)
	return nil
}

// UnmarshalJSON decodes a JSON number.  The number must be an exact
// multiple of the epsilon.
func (x *Ufixed8P8) UnmarshalJSON(data []byte) error {
	e, err := parseEpsilons(data, 8, 0, math.MaxUint16)
	if err != nil {
		return err
	}
	*x = Ufixed8P8(e)
	return nil
}

// UnmarshalJSON decodes a JSON number.  The number must be an exact
// multiple of the epsilon.
func (x *Sfixed16P16) UnmarshalJSON(data []byte) error {
	e, err := parseEpsilons(data, 16, math.MinInt32, math.MaxInt32)
	if err != nil {
		return err
	}
	*x = Sfixed16P16(e)
	return nil
}

// UnmarshalJSON decodes a JSON number.  The number must be an exact
// multiple of the epsilon.
func (x *Ufixed16P16) UnmarshalJSON(data []byte) error {
	e, err := parseEpsilons(data, 16, 0, math.MaxUint32)
	if err != nil {
		return err
	}
	*x = Ufixed16P16(e)
	return nil
}

// toEpsilons converts x into a multiple of 2^-fracBits.
// Since all formats fit into 32 bits, the scaled value is exact in a float64.
func toEpsilons(x float64, fracBits int, lo, hi int64) (int64, error) {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0, errOutOfRange
	}
	scaled := math.Ldexp(x, fracBits)
	if scaled != math.Trunc(scaled) {
		return 0, errNotExact
	}
	if scaled < float64(lo) || scaled > float64(hi) {
		return 0, errOutOfRange
	}
	return int64(scaled), nil
}

func format(x float64) string {
	return strconv.FormatFloat(x, 'g', -1, 64)
}

// parseEpsilons converts the decimal JSON number in data into a multiple
// of 2^-fracBits.  The decimal is evaluated exactly, so that digits beyond
// float64 precision cannot be rounded away.
func parseEpsilons(data []byte, fracBits uint, lo, hi int64) (int64, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || !(data[0] == '-' || data[0] >= '0' && data[0] <= '9') || !json.Valid(data) {
		return 0, errNotNumber
	}
	r, ok := new(big.Rat).SetString(string(data))
	if !ok {
		return 0, errNotNumber
	}
	r.Mul(r, new(big.Rat).SetInt(new(big.Int).Lsh(big.NewInt(1), fracBits)))
	if !r.IsInt() {
		return 0, errNotExact
	}
	n := r.Num()
	if !n.IsInt64() || n.Int64() < lo || n.Int64() > hi {
		return 0, errOutOfRange
	}
	return n.Int64(), nil
}
