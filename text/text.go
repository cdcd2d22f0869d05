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

// Package text implements text records, font layout information and the
// settings of the advanced text renderer.
package text

import (
	"seehuhn.de/go/swf"
	"seehuhn.de/go/swf/optional"
)

// TextRecord is a run of glyphs which share font, size and color.
// Absent fields are inherited from the previous record.
type TextRecord struct {
	FontID   optional.Value[uint16]
	Color    optional.Value[swf.StraightSRgba8]
	OffsetX  int16
	OffsetY  int16
	FontSize optional.Value[uint16]
	Entries  []GlyphEntry
}

// GlyphEntry places one glyph.  Index refers to the glyph table of the
// current font, and Advance is the horizontal distance to the next glyph in
// twips.
type GlyphEntry struct {
	Index   uint32
	Advance int32
}

// Width returns the sum of the advances of all glyphs in the record.
func (r *TextRecord) Width() int64 {
	var w int64
	for _, e := range r.Entries {
		w += int64(e.Advance)
	}
	return w
}

// FontLayout holds the metrics of a font.
// Advances and Bounds have one entry per glyph.
type FontLayout struct {
	Ascent   uint16
	Descent  uint16
	Leading  int16
	Advances []int16
	Bounds   []swf.Rect
	Kerning  []KerningRecord
}

// KerningRecord adjusts the advance between two code units.
type KerningRecord struct {
	Left       uint16
	Right      uint16
	Adjustment int16
}

// Kern returns the kerning adjustment for the pair (left, right),
// or 0 if no adjustment is defined.
func (l *FontLayout) Kern(left, right uint16) int16 {
	for _, k := range l.Kerning {
		if k.Left == left && k.Right == right {
			return k.Adjustment
		}
	}
	return 0
}
