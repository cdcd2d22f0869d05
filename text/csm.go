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

package text

import (
	"seehuhn.de/go/swf"
	"seehuhn.de/go/swf/internal/float"
)

// FontAlignmentZone gives the alignment zones of one glyph, used by the
// advanced anti-aliasing renderer.
type FontAlignmentZone struct {
	Data []FontAlignmentZoneData
	HasX bool
	HasY bool
}

// FontAlignmentZoneData is a one-dimensional zone.
type FontAlignmentZoneData struct {
	Origin float32
	Size   float32
}

// Equal reports whether z and other are identical.
// NaN values are equal to each other.
func (z FontAlignmentZoneData) Equal(other FontAlignmentZoneData) bool {
	return z.Compare(other) == 0
}

// Compare orders zones by origin, then by size.
// NaN sorts before all other values.
func (z FontAlignmentZoneData) Compare(other FontAlignmentZoneData) int {
	if r := float.Compare(z.Origin, other.Origin); r != 0 {
		return r
	}
	return float.Compare(z.Size, other.Size)
}

// CsmTableHint selects the stroke width assumed by the advanced
// anti-aliasing renderer.
type CsmTableHint uint8

// These are the supported table hints.
const (
	CsmThin CsmTableHint = iota
	CsmMedium
	CsmThick
)

var csmNames = swf.NewEnumNames[CsmTableHint]("CsmTableHint", swf.SnakeCase,
	"Thin", "Medium", "Thick")

func (h CsmTableHint) String() string {
	return csmNames.String(h)
}

// MarshalText implements the [encoding.TextMarshaler] interface.
func (h CsmTableHint) MarshalText() ([]byte, error) {
	return csmNames.MarshalText(h)
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (h *CsmTableHint) UnmarshalText(text []byte) error {
	v, err := csmNames.UnmarshalText(text)
	if err != nil {
		return err
	}
	*h = v
	return nil
}

// GridFitting selects how glyphs are aligned to the pixel grid.
type GridFitting uint8

// These are the supported grid fitting modes.
const (
	GridFittingNone GridFitting = iota
	GridFittingPixel
	GridFittingSubPixel
)

var gridFittingNames = swf.NewEnumNames[GridFitting]("GridFitting", swf.SnakeCase,
	"None", "Pixel", "SubPixel")

func (g GridFitting) String() string {
	return gridFittingNames.String(g)
}

// MarshalText implements the [encoding.TextMarshaler] interface.
func (g GridFitting) MarshalText() ([]byte, error) {
	return gridFittingNames.MarshalText(g)
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (g *GridFitting) UnmarshalText(text []byte) error {
	v, err := gridFittingNames.UnmarshalText(text)
	if err != nil {
		return err
	}
	*g = v
	return nil
}

// TextAlignment is the paragraph alignment of a dynamic text field.
type TextAlignment uint8

// These are the supported alignments.
const (
	AlignLeft TextAlignment = iota
	AlignRight
	AlignCenter
	AlignJustify
)

var alignmentNames = swf.NewEnumNames[TextAlignment]("TextAlignment", swf.SnakeCase,
	"Left", "Right", "Center", "Justify")

func (a TextAlignment) String() string {
	return alignmentNames.String(a)
}

// MarshalText implements the [encoding.TextMarshaler] interface.
func (a TextAlignment) MarshalText() ([]byte, error) {
	return alignmentNames.MarshalText(a)
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (a *TextAlignment) UnmarshalText(text []byte) error {
	v, err := alignmentNames.UnmarshalText(text)
	if err != nil {
		return err
	}
	*a = v
	return nil
}

// TextRenderer selects the anti-aliasing method for text.
type TextRenderer uint8

// These are the supported renderers.
const (
	RendererNormal TextRenderer = iota
	RendererAdvanced
)

var rendererNames = swf.NewEnumNames[TextRenderer]("TextRenderer", swf.SnakeCase,
	"Normal", "Advanced")

func (r TextRenderer) String() string {
	return rendererNames.String(r)
}

// MarshalText implements the [encoding.TextMarshaler] interface.
func (r TextRenderer) MarshalText() ([]byte, error) {
	return rendererNames.MarshalText(r)
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (r *TextRenderer) UnmarshalText(text []byte) error {
	v, err := rendererNames.UnmarshalText(text)
	if err != nil {
		return err
	}
	*r = v
	return nil
}
