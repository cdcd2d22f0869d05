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

// BlendMode selects how a display object is composited with the content
// below it.
type BlendMode uint8

// These are the blend modes defined by the SWF format.
const (
	BlendNormal BlendMode = iota
	BlendLayer
	BlendMultiply
	BlendScreen
	BlendLighten
	BlendDarken
	BlendDifference
	BlendAdd
	BlendSubtract
	BlendInvert
	BlendAlpha
	BlendErase
	BlendOverlay
	BlendHardlight
)

var blendNames = NewEnumNames[BlendMode]("BlendMode", KebabCase,
	"Normal", "Layer", "Multiply", "Screen", "Lighten", "Darken", "Difference",
	"Add", "Subtract", "Invert", "Alpha", "Erase", "Overlay", "Hardlight")

func (m BlendMode) String() string {
	return blendNames.String(m)
}

// MarshalText implements the [encoding.TextMarshaler] interface.
func (m BlendMode) MarshalText() ([]byte, error) {
	return blendNames.MarshalText(m)
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (m *BlendMode) UnmarshalText(text []byte) error {
	v, err := blendNames.UnmarshalText(text)
	if err != nil {
		return err
	}
	*m = v
	return nil
}
