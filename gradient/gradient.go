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

// Package gradient implements the color gradients used by gradient fills
// and gradient filters.
package gradient

import "seehuhn.de/go/swf"

// Spread selects how a gradient is continued outside of its defined range.
type Spread uint8

// These are the supported spread modes.
const (
	SpreadPad Spread = iota
	SpreadReflect
	SpreadRepeat
)

var spreadNames = swf.NewEnumNames[Spread]("GradientSpread", swf.SnakeCase,
	"Pad", "Reflect", "Repeat")

func (s Spread) String() string {
	return spreadNames.String(s)
}

// MarshalText implements the [encoding.TextMarshaler] interface.
func (s Spread) MarshalText() ([]byte, error) {
	return spreadNames.MarshalText(s)
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (s *Spread) UnmarshalText(text []byte) error {
	v, err := spreadNames.UnmarshalText(text)
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// ColorSpace is the color space in which colors are interpolated.
type ColorSpace uint8

// These are the supported interpolation color spaces.
const (
	SRgb ColorSpace = iota
	LinearRgb
)

var colorSpaceNames = swf.NewEnumNames[ColorSpace]("ColorSpace", swf.SnakeCase,
	"SRgb", "LinearRgb")

func (c ColorSpace) String() string {
	return colorSpaceNames.String(c)
}

// MarshalText implements the [encoding.TextMarshaler] interface.
func (c ColorSpace) MarshalText() ([]byte, error) {
	return colorSpaceNames.MarshalText(c)
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (c *ColorSpace) UnmarshalText(text []byte) error {
	v, err := colorSpaceNames.UnmarshalText(text)
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// ColorStop fixes the color at one position of a gradient.
// Ratio runs from 0 (start of the gradient) to 255 (end of the gradient).
type ColorStop struct {
	Ratio uint8
	Color swf.StraightSRgba8
}

// Gradient is a sequence of color stops.
// Stops are expected in increasing order of Ratio, but this is not checked.
type Gradient struct {
	Spread     Spread
	ColorSpace ColorSpace
	Colors     []ColorStop
}

// MorphColorStop is a color stop of a morph shape, given at the start and
// at the end of the morph.
type MorphColorStop struct {
	Ratio      uint8
	Color      swf.StraightSRgba8
	MorphRatio uint8
	MorphColor swf.StraightSRgba8
}

// MorphGradient is the gradient of a morph shape.
type MorphGradient struct {
	Spread     Spread
	ColorSpace ColorSpace
	Colors     []MorphColorStop
}

// Start returns the gradient at the start of the morph.
func (g *MorphGradient) Start() *Gradient {
	res := &Gradient{Spread: g.Spread, ColorSpace: g.ColorSpace}
	for _, c := range g.Colors {
		res.Colors = append(res.Colors, ColorStop{Ratio: c.Ratio, Color: c.Color})
	}
	return res
}

// End returns the gradient at the end of the morph.
func (g *MorphGradient) End() *Gradient {
	res := &Gradient{Spread: g.Spread, ColorSpace: g.ColorSpace}
	for _, c := range g.Colors {
		res.Colors = append(res.Colors, ColorStop{Ratio: c.MorphRatio, Color: c.MorphColor})
	}
	return res
}
