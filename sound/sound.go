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

// Package sound implements the audio format descriptions and playback
// parameters of SWF files.  The audio data itself is not decoded.
package sound

import (
	"seehuhn.de/go/swf"
	"seehuhn.de/go/swf/optional"
)

// AudioCodingFormat is the encoding of sound data.
type AudioCodingFormat uint8

// These are the audio coding formats of the SWF format.
const (
	UncompressedNativeEndian AudioCodingFormat = iota
	Adpcm
	Mp3
	UncompressedLittleEndian
	Nellymoser16
	Nellymoser8
	Nellymoser
	Speex
)

var formatNames = swf.NewEnumNames[AudioCodingFormat]("AudioCodingFormat", swf.SnakeCase,
	"UncompressedNativeEndian", "Adpcm", "Mp3", "UncompressedLittleEndian",
	"Nellymoser16", "Nellymoser8", "Nellymoser", "Speex")

func (f AudioCodingFormat) String() string {
	return formatNames.String(f)
}

// MarshalText implements the [encoding.TextMarshaler] interface.
func (f AudioCodingFormat) MarshalText() ([]byte, error) {
	return formatNames.MarshalText(f)
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (f *AudioCodingFormat) UnmarshalText(text []byte) error {
	v, err := formatNames.UnmarshalText(text)
	if err != nil {
		return err
	}
	*f = v
	return nil
}

// Rate is the sampling rate of a sound.
type Rate uint8

// These are the sampling rates supported by the SWF format.
const (
	Rate5500 Rate = iota
	Rate11000
	Rate22000
	Rate44000
)

var rateNames = swf.NewEnumNames[Rate]("SoundRate", swf.SnakeCase,
	"Rate5500", "Rate11000", "Rate22000", "Rate44000")

func (r Rate) String() string {
	return rateNames.String(r)
}

// MarshalText implements the [encoding.TextMarshaler] interface.
func (r Rate) MarshalText() ([]byte, error) {
	return rateNames.MarshalText(r)
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (r *Rate) UnmarshalText(text []byte) error {
	v, err := rateNames.UnmarshalText(text)
	if err != nil {
		return err
	}
	*r = v
	return nil
}

// Hz returns the nominal sampling rate in samples per second.
// The rates are the nominal values used by players, for example 5512 for
// [Rate5500].
func (r Rate) Hz() int {
	switch r {
	case Rate5500:
		return 5512
	case Rate11000:
		return 11025
	case Rate22000:
		return 22050
	case Rate44000:
		return 44100
	default:
		return 0
	}
}

// Size is the size of one uncompressed sample.
type Size uint8

// These are the sample sizes supported by the SWF format.
const (
	Size8 Size = iota
	Size16
)

var sizeNames = swf.NewEnumNames[Size]("SoundSize", swf.SnakeCase,
	"Size8", "Size16")

func (s Size) String() string {
	return sizeNames.String(s)
}

// MarshalText implements the [encoding.TextMarshaler] interface.
func (s Size) MarshalText() ([]byte, error) {
	return sizeNames.MarshalText(s)
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (s *Size) UnmarshalText(text []byte) error {
	v, err := sizeNames.UnmarshalText(text)
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// Bits returns the number of bits per sample.
func (s Size) Bits() int {
	if s == Size16 {
		return 16
	}
	return 8
}

// Type gives the number of channels of a sound.
type Type uint8

// These are the channel layouts supported by the SWF format.
const (
	Mono Type = iota
	Stereo
)

var typeNames = swf.NewEnumNames[Type]("SoundType", swf.SnakeCase,
	"Mono", "Stereo")

func (t Type) String() string {
	return typeNames.String(t)
}

// MarshalText implements the [encoding.TextMarshaler] interface.
func (t Type) MarshalText() ([]byte, error) {
	return typeNames.MarshalText(t)
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (t *Type) UnmarshalText(text []byte) error {
	v, err := typeNames.UnmarshalText(text)
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// Channels returns the number of audio channels.
func (t Type) Channels() int {
	if t == Stereo {
		return 2
	}
	return 1
}

// Info controls the playback of an event sound.
//
// InPoint and OutPoint are sample positions at 44kHz.
type Info struct {
	SyncStop       bool
	SyncNoMultiple bool
	InPoint        optional.Value[uint32]
	OutPoint       optional.Value[uint32]
	LoopCount      optional.Value[uint16]
	Envelope       optional.Value[[]Envelope]
}

// Envelope is one point of a volume envelope.
// Pos44 is the sample position at 44kHz, and the levels range from 0 to
// 32768.
type Envelope struct {
	Pos44      uint32
	LeftLevel  uint16
	RightLevel uint16
}
