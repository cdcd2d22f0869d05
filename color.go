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

import "image/color"

// SRgb8 is a color in the sRGB color space with 8 bits per channel.
type SRgb8 struct {
	R uint8
	G uint8
	B uint8
}

// RGBA implements the [color.Color] interface.
func (c SRgb8) RGBA() (r, g, b, a uint32) {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xFF}.RGBA()
}

// StraightSRgba8 is a color in the sRGB color space with 8 bits per channel
// and a straight (not premultiplied) alpha channel.
type StraightSRgba8 struct {
	R uint8
	G uint8
	B uint8
	A uint8
}

// NRGBA returns c as a non-premultiplied Go color.
func (c StraightSRgba8) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// RGBA implements the [color.Color] interface.
// The returned values are premultiplied, as required by that interface.
func (c StraightSRgba8) RGBA() (r, g, b, a uint32) {
	return c.NRGBA().RGBA()
}
