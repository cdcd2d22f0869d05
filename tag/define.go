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
	"seehuhn.de/go/swf"
	"seehuhn.de/go/swf/button"
	"seehuhn.de/go/swf/optional"
	"seehuhn.de/go/swf/shape"
	"seehuhn.de/go/swf/sound"
	"seehuhn.de/go/swf/text"
)

// DefineBinaryData defines a character holding arbitrary data.
type DefineBinaryData struct {
	ID   uint16
	Data []byte
}

// DefineBitmap defines a bitmap image.  Data holds the image in the format
// given by MediaType.
type DefineBitmap struct {
	ID        uint16
	Width     uint16
	Height    uint16
	MediaType ImageType
	Data      []byte
}

// DefineButton defines a button character.
type DefineButton struct {
	ID          uint16
	TrackAsMenu bool
	Characters  []button.Record
	Actions     []button.CondAction
}

// DefineButtonSound attaches sounds to the state transitions of a button.
type DefineButtonSound struct {
	ButtonID         uint16
	OverUpToIdle     optional.Value[button.Sound]
	IdleToOverUp     optional.Value[button.Sound]
	OverUpToOverDown optional.Value[button.Sound]
	OverDownToOverUp optional.Value[button.Sound]
}

// DefineCffFont defines a font by embedding an OpenType font file with CFF
// outlines.
type DefineCffFont struct {
	ID       uint16
	FontName string
	IsItalic bool
	IsBold   bool
	Data     []byte
}

// DefineDynamicText defines an editable or script controlled text field.
type DefineDynamicText struct {
	ID           uint16
	Bounds       swf.Rect
	WordWrap     bool
	Multiline    bool
	Password     bool
	ReadOnly     bool `swf:"readonly"`
	AutoSize     bool
	NoSelect     bool
	Border       bool
	WasStatic    bool
	HTML         bool
	UseGlyphFont bool
	FontID       optional.Value[uint16]
	FontClass    optional.Value[string]
	FontSize     optional.Value[uint16]
	Color        optional.Value[swf.StraightSRgba8]
	MaxLength    optional.Value[uint32]
	Align        optional.Value[text.TextAlignment]
	MarginLeft   uint16
	MarginRight  uint16
	Indent       uint16
	Leading      int16
	VariableName optional.Value[string]
	Text         optional.Value[string]
}

// DefineFont defines a font with embedded glyph outlines.
//
// Glyphs, CodeUnits and Layout are independently optional, since different
// versions of the tag carry different subsets of this information.
type DefineFont struct {
	ID         uint16
	FontName   string
	IsBold     bool
	IsItalic   bool
	IsAnsi     bool
	IsSmall    bool
	IsShiftJIS bool
	Language   swf.LanguageCode
	Glyphs     optional.Value[[]shape.Glyph]
	CodeUnits  optional.Value[[]uint16]
	Layout     optional.Value[text.FontLayout]
}

// DefineFontAlignZones gives alignment zones for the glyphs of a font.
type DefineFontAlignZones struct {
	FontID       uint16
	CsmTableHint text.CsmTableHint
	Zones        []text.FontAlignmentZone
}

// DefineFontInfo maps the glyphs of a font to code units.
type DefineFontInfo struct {
	FontID     uint16
	FontName   string
	IsSmall    bool
	IsShiftJIS bool
	IsAnsi     bool
	IsItalic   bool
	IsBold     bool
	Language   optional.Value[swf.LanguageCode]
	CodeUnits  []uint16
}

// DefineFontName gives the full name and the copyright notice of a font.
type DefineFontName struct {
	FontID    uint16
	Name      string
	Copyright string
}

// DefineJpegTables holds the JPEG encoding tables shared by the bitmaps
// which omit them.
type DefineJpegTables struct {
	Data []byte
}

// DefineMorphShape defines a shape which morphs between two states.
type DefineMorphShape struct {
	ID                   uint16
	Bounds               swf.Rect
	MorphBounds          swf.Rect
	EdgeBounds           optional.Value[swf.Rect]
	MorphEdgeBounds      optional.Value[swf.Rect]
	HasNonScalingStrokes bool
	HasScalingStrokes    bool
	Shape                shape.MorphShape
}

// DefinePartialFont defines a font with glyph outlines only.
type DefinePartialFont struct {
	ID     uint16
	Glyphs []shape.Glyph
}

// DefineSceneAndFrameLabelData lists the scenes and frame labels of the
// main timeline.
type DefineSceneAndFrameLabelData struct {
	Scenes []Scene
	Labels []Label
}

// Scene starts a scene at frame Offset.
type Scene struct {
	Offset uint32
	Name   string
}

// Label names a frame.
type Label struct {
	Frame uint32
	Name  string
}

// DefineShape defines a vector shape.
type DefineShape struct {
	ID                   uint16
	Bounds               swf.Rect
	EdgeBounds           optional.Value[swf.Rect]
	HasFillWinding       bool
	HasNonScalingStrokes bool
	HasScalingStrokes    bool
	Shape                shape.Shape
}

// DefineSound defines an event sound.
type DefineSound struct {
	ID          uint16
	Format      sound.AudioCodingFormat
	SoundRate   sound.Rate
	SoundSize   sound.Size
	SoundType   sound.Type
	SampleCount uint32
	Data        []byte
}

// DefineSprite defines a sprite with its own timeline.
type DefineSprite struct {
	ID         uint16
	FrameCount uint16
	Tags       []Tag
}

// DefineText defines a static text.
type DefineText struct {
	ID      uint16
	Bounds  swf.Rect
	Matrix  swf.Matrix
	Records []text.TextRecord
}

func (t *DefineBinaryData) CharacterID() uint16  { return t.ID }
func (t *DefineBitmap) CharacterID() uint16      { return t.ID }
func (t *DefineButton) CharacterID() uint16      { return t.ID }
func (t *DefineCffFont) CharacterID() uint16     { return t.ID }
func (t *DefineDynamicText) CharacterID() uint16 { return t.ID }
func (t *DefineFont) CharacterID() uint16        { return t.ID }
func (t *DefineMorphShape) CharacterID() uint16  { return t.ID }
func (t *DefinePartialFont) CharacterID() uint16 { return t.ID }
func (t *DefineShape) CharacterID() uint16       { return t.ID }
func (t *DefineSound) CharacterID() uint16       { return t.ID }
func (t *DefineSprite) CharacterID() uint16      { return t.ID }
func (t *DefineText) CharacterID() uint16        { return t.ID }
func (t *DefineVideoStream) CharacterID() uint16 { return t.ID }

var (
	_ Character = (*DefineBinaryData)(nil)
	_ Character = (*DefineBitmap)(nil)
	_ Character = (*DefineButton)(nil)
	_ Character = (*DefineCffFont)(nil)
	_ Character = (*DefineDynamicText)(nil)
	_ Character = (*DefineFont)(nil)
	_ Character = (*DefineMorphShape)(nil)
	_ Character = (*DefinePartialFont)(nil)
	_ Character = (*DefineShape)(nil)
	_ Character = (*DefineSound)(nil)
	_ Character = (*DefineSprite)(nil)
	_ Character = (*DefineText)(nil)
	_ Character = (*DefineVideoStream)(nil)
)
