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

// Package movie implements complete SWF documents.
//
// A [Movie] consists of a [Header] and the list of tags of the main
// timeline.  Movies can be read from and written to the JSON interchange
// form using [Read] and [Movie.Write].
package movie

import (
	"io"
	"time"

	"seehuhn.de/go/swf"
	"seehuhn.de/go/swf/fixed"
	"seehuhn.de/go/swf/tag"
)

// CompressionMethod is the compression applied to the body of an SWF file.
type CompressionMethod uint8

// These are the compression methods indicated by the file signature.
const (
	CompressionNone CompressionMethod = iota
	CompressionDeflate
	CompressionLzma
)

var compressionNames = swf.NewEnumNames[CompressionMethod]("CompressionMethod", swf.SnakeCase,
	"None", "Deflate", "Lzma")

func (c CompressionMethod) String() string {
	return compressionNames.String(c)
}

// MarshalText implements the [encoding.TextMarshaler] interface.
func (c CompressionMethod) MarshalText() ([]byte, error) {
	return compressionNames.MarshalText(c)
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (c *CompressionMethod) UnmarshalText(text []byte) error {
	v, err := compressionNames.UnmarshalText(text)
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// Magic returns the three byte signature which starts an SWF file
// using compression method c.
func (c CompressionMethod) Magic() string {
	switch c {
	case CompressionNone:
		return "FWS"
	case CompressionDeflate:
		return "CWS"
	case CompressionLzma:
		return "ZWS"
	default:
		return ""
	}
}

// SwfSignature is the uncompressed start of an SWF file.
type SwfSignature struct {
	CompressionMethod CompressionMethod
	SwfVersion        uint8

	// UncompressedFileLength is the length of the whole file after
	// decompression, including the signature.
	UncompressedFileLength uint32
}

// Header holds the global properties of a movie.
type Header struct {
	SwfVersion uint8

	// FrameSize is the size of the display area, in twips.
	FrameSize swf.Rect

	// FrameRate is the number of frames per second.
	FrameRate fixed.Ufixed8P8

	FrameCount uint16
}

// Duration returns the play time of the main timeline.
// The result is zero if the frame rate is zero.
func (h *Header) Duration() time.Duration {
	rate := h.FrameRate.Float64()
	if rate == 0 {
		return 0
	}
	return time.Duration(float64(h.FrameCount) / rate * float64(time.Second))
}

// Movie is a complete SWF document.
type Movie struct {
	Header Header
	Tags   []tag.Tag
}

// plainMovie has the fields of Movie but none of its methods.
type plainMovie Movie

// MarshalJSON implements the [json.Marshaler] interface.
func (m Movie) MarshalJSON() ([]byte, error) {
	return swf.MarshalJSON((*plainMovie)(&m))
}

// UnmarshalJSON implements the [json.Unmarshaler] interface.
func (m *Movie) UnmarshalJSON(data []byte) error {
	return swf.UnmarshalJSON(data, (*plainMovie)(m))
}

// Read decodes a movie in the JSON interchange form from r.
// Decoding errors are reported as [*swf.FormatError] values.
func Read(r io.Reader) (*Movie, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	m := &Movie{}
	err = swf.UnmarshalJSON(data, (*plainMovie)(m))
	if err != nil {
		return nil, err
	}
	return m, nil
}

// Write writes the movie in the indented JSON interchange form to w.
func (m *Movie) Write(w io.Writer) error {
	data, err := swf.MarshalJSONIndent((*plainMovie)(m), "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}
