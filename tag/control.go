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
	"cmp"

	"seehuhn.de/go/swf"
	"seehuhn.de/go/swf/filter"
	"seehuhn.de/go/swf/internal/float"
	"seehuhn.de/go/swf/optional"
	"seehuhn.de/go/swf/shape"
	"seehuhn.de/go/swf/sound"
	"seehuhn.de/go/swf/text"
)

// CsmTextSettings sets the parameters of the advanced text renderer for a
// text character.
type CsmTextSettings struct {
	TextID    uint16
	Renderer  text.TextRenderer
	Fitting   text.GridFitting
	Thickness float32
	Sharpness float32
}

// Equal reports whether s and other are identical.
// NaN values are equal to each other.
func (s *CsmTextSettings) Equal(other *CsmTextSettings) bool {
	if s == nil || other == nil {
		return s == other
	}
	return s.Compare(other) == 0
}

// Compare orders the settings field by field, in declaration order.
// NaN sorts before all other values.
func (s *CsmTextSettings) Compare(other *CsmTextSettings) int {
	if r := cmp.Compare(s.TextID, other.TextID); r != 0 {
		return r
	}
	if r := cmp.Compare(s.Renderer, other.Renderer); r != 0 {
		return r
	}
	if r := cmp.Compare(s.Fitting, other.Fitting); r != 0 {
		return r
	}
	if r := float.Compare(s.Thickness, other.Thickness); r != 0 {
		return r
	}
	return float.Compare(s.Sharpness, other.Sharpness)
}

// DoAbc holds ActionScript 3 bytecode.
type DoAbc struct {
	Flags uint32
	Name  string
	Data  []byte
}

// DoAction holds ActionScript bytecode which runs when the frame is shown.
type DoAction struct {
	Actions []byte
}

// DoInitAction holds bytecode which runs once, before the first use of
// the given sprite.
type DoInitAction struct {
	SpriteID uint16
	Actions  []byte
}

// EnableDebugger allows debugging of the movie.  Password is a hash of the
// debugging password.
type EnableDebugger struct {
	Password string
}

// ExportAssets makes characters available to other movies.
type ExportAssets struct {
	Assets []swf.NamedID
}

// FileAttributes describes the properties of a movie.
type FileAttributes struct {
	UseDirectBlit        bool
	UseGPU               bool
	HasMetadata          bool
	UseAS3               bool
	NoCrossDomainCaching bool
	UseRelativeURLs      bool `swf:"use_relative_urls"`
	UseNetwork           bool
}

// FrameLabel names the current frame.
type FrameLabel struct {
	Name     string
	IsAnchor bool
}

// ImportAssets imports characters from the movie at URL.
type ImportAssets struct {
	URL    string
	Assets []swf.NamedID
}

// PlaceObject adds a character to the display list, or modifies the
// character at Depth if IsUpdate is set.
type PlaceObject struct {
	IsUpdate        bool
	Depth           uint16
	CharacterID     optional.Value[uint16]
	ClassName       optional.Value[string]
	Matrix          optional.Value[swf.Matrix]
	ColorTransform  optional.Value[swf.ColorTransformWithAlpha]
	Ratio           optional.Value[uint16]
	Name            optional.Value[string]
	ClipDepth       optional.Value[uint16]
	Filters         optional.Value[[]filter.Filter]
	BlendMode       optional.Value[swf.BlendMode]
	BitmapCache     optional.Value[bool]
	Visible         optional.Value[bool]
	BackgroundColor optional.Value[swf.StraightSRgba8]
	ClipActions     optional.Value[[]shape.ClipAction]
}

// Protect marks the movie as protected against import into authoring
// tools.  Password is a hash of the password, if any.
type Protect struct {
	Password optional.Value[string]
}

// RemoveObject removes the character at the given depth from the display
// list.
type RemoveObject struct {
	CharacterID optional.Value[uint16]
	Depth       uint16
}

// ScriptLimits overrides the default limits of the script interpreter.
// ScriptTimeout is given in seconds.
type ScriptLimits struct {
	MaxRecursionDepth uint16
	ScriptTimeout     uint16
}

// SetBackgroundColor sets the background color of the display.
type SetBackgroundColor struct {
	Color swf.SRgb8
}

// SetTabIndex sets the tab order index of the object at the given depth.
type SetTabIndex struct {
	Depth    uint16
	TabIndex uint16
}

// ShowFrame ends the current frame.
type ShowFrame struct{}

// SoundStreamBlock holds the sound data of a streaming sound for one frame.
type SoundStreamBlock struct {
	Data []byte
}

// SoundStreamHead describes the streaming sound of a timeline.
type SoundStreamHead struct {
	PlaybackSoundRate      sound.Rate
	PlaybackSoundSize      sound.Size
	PlaybackSoundType      sound.Type
	StreamSoundCompression sound.AudioCodingFormat
	StreamSoundRate        sound.Rate
	StreamSoundSize        sound.Size
	StreamSoundType        sound.Type
	StreamSoundSampleCount uint16
	LatencySeek            optional.Value[int16]
}

// StartSound starts or stops an event sound.
type StartSound struct {
	SoundID   uint16
	SoundInfo sound.Info
}

// SymbolClass links characters to ActionScript 3 classes.
type SymbolClass struct {
	Symbols []swf.NamedID
}

// Telemetry enables the collection of profiling data.
type Telemetry struct {
	Password optional.Value[[]byte]
}

// Unknown preserves a tag with an unrecognized code.
// Data holds the body of the tag, without the tag header.
type Unknown struct {
	Code uint16
	Data []byte
}

func (*CsmTextSettings) isTag()              {}
func (*DefineBinaryData) isTag()             {}
func (*DefineBitmap) isTag()                 {}
func (*DefineButton) isTag()                 {}
func (*DefineButtonSound) isTag()            {}
func (*DefineCffFont) isTag()                {}
func (*DefineDynamicText) isTag()            {}
func (*DefineFont) isTag()                   {}
func (*DefineFontAlignZones) isTag()         {}
func (*DefineFontInfo) isTag()               {}
func (*DefineFontName) isTag()               {}
func (*DefineJpegTables) isTag()             {}
func (*DefineMorphShape) isTag()             {}
func (*DefinePartialFont) isTag()            {}
func (*DefineSceneAndFrameLabelData) isTag() {}
func (*DefineShape) isTag()                  {}
func (*DefineSound) isTag()                  {}
func (*DefineSprite) isTag()                 {}
func (*DefineText) isTag()                   {}
func (*DefineVideoStream) isTag()            {}
func (*DoAbc) isTag()                        {}
func (*DoAction) isTag()                     {}
func (*DoInitAction) isTag()                 {}
func (*EnableDebugger) isTag()               {}
func (*ExportAssets) isTag()                 {}
func (*FileAttributes) isTag()               {}
func (*FrameLabel) isTag()                   {}
func (*ImportAssets) isTag()                 {}
func (*Metadata) isTag()                     {}
func (*PlaceObject) isTag()                  {}
func (*Protect) isTag()                      {}
func (*RemoveObject) isTag()                 {}
func (*ScriptLimits) isTag()                 {}
func (*SetBackgroundColor) isTag()           {}
func (*SetTabIndex) isTag()                  {}
func (*ShowFrame) isTag()                    {}
func (*SoundStreamBlock) isTag()             {}
func (*SoundStreamHead) isTag()              {}
func (*StartSound) isTag()                   {}
func (*SymbolClass) isTag()                  {}
func (*Telemetry) isTag()                    {}
func (*Unknown) isTag()                      {}
func (*VideoFrame) isTag()                   {}
