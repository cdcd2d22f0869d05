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

package tag

import (
	"bytes"
	"strings"

	"seehuhn.de/go/sfnt"
	"seehuhn.de/go/xmp"
)

// Metadata holds an XMP packet describing the movie.
type Metadata struct {
	Metadata string
}

// NewMetadata serializes an XMP packet into a Metadata tag.
func NewMetadata(packet *xmp.Packet) (*Metadata, error) {
	buf := &strings.Builder{}
	err := packet.Write(buf, &xmp.PacketOptions{Pretty: true})
	if err != nil {
		return nil, err
	}
	return &Metadata{Metadata: buf.String()}, nil
}

// Packet parses the XMP data.
func (m *Metadata) Packet() (*xmp.Packet, error) {
	return xmp.Read(strings.NewReader(m.Metadata))
}

// Font parses the embedded font file.
func (f *DefineCffFont) Font() (*sfnt.Font, error) {
	return sfnt.Read(bytes.NewReader(f.Data))
}
