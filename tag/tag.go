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

// Package tag implements the tags which make up the timeline of an SWF
// movie or sprite.
//
// [Tag] is a closed union.  In the interchange form, the variant is given
// by the "type" key, which holds the snake_case name of the Go type, for
// example "define_shape" or "place_object".  Tags with unrecognized codes
// are preserved as [*Unknown] values.
//
// The tags in this package are plain records.  In particular, character IDs
// are not checked against the characters defined earlier in the timeline.
package tag

import (
	"errors"

	"seehuhn.de/go/swf"
)

// Tag is one record of a timeline.
// The concrete types in this package are the only implementations.
type Tag interface {
	isTag()
}

// Character is implemented by the tags which define a character.
type Character interface {
	Tag

	// CharacterID returns the ID under which the character is defined.
	CharacterID() uint16
}

func init() {
	swf.RegisterUnion[Tag](swf.UnionSpec{Key: "type", Style: swf.SnakeCase},
		(*CsmTextSettings)(nil),
		(*DefineBinaryData)(nil),
		(*DefineBitmap)(nil),
		(*DefineButton)(nil),
		(*DefineButtonSound)(nil),
		(*DefineCffFont)(nil),
		(*DefineDynamicText)(nil),
		(*DefineFont)(nil),
		(*DefineFontAlignZones)(nil),
		(*DefineFontInfo)(nil),
		(*DefineFontName)(nil),
		(*DefineJpegTables)(nil),
		(*DefineMorphShape)(nil),
		(*DefinePartialFont)(nil),
		(*DefineSceneAndFrameLabelData)(nil),
		(*DefineShape)(nil),
		(*DefineSound)(nil),
		(*DefineSprite)(nil),
		(*DefineText)(nil),
		(*DefineVideoStream)(nil),
		(*DoAbc)(nil),
		(*DoAction)(nil),
		(*DoInitAction)(nil),
		(*EnableDebugger)(nil),
		(*ExportAssets)(nil),
		(*FileAttributes)(nil),
		(*FrameLabel)(nil),
		(*ImportAssets)(nil),
		(*Metadata)(nil),
		(*PlaceObject)(nil),
		(*Protect)(nil),
		(*RemoveObject)(nil),
		(*ScriptLimits)(nil),
		(*SetBackgroundColor)(nil),
		(*SetTabIndex)(nil),
		(*ShowFrame)(nil),
		(*SoundStreamBlock)(nil),
		(*SoundStreamHead)(nil),
		(*StartSound)(nil),
		(*SymbolClass)(nil),
		(*Telemetry)(nil),
		(*Unknown)(nil),
		(*VideoFrame)(nil),
	)
}

// Name returns the interchange name of the type of t,
// for example "define_shape".
func Name(t Tag) string {
	name, ok := swf.VariantName(t)
	if !ok {
		return "invalid"
	}
	return name
}

// CharacterID returns the character ID defined by t.
// The second return value is false if t does not define a character.
func CharacterID(t Tag) (uint16, bool) {
	c, ok := t.(Character)
	if !ok {
		return 0, false
	}
	return c.CharacterID(), true
}

// SkipSprite can be returned by the callback of [Walk] to skip the tags
// inside a sprite.
var SkipSprite = errors.New("skip sprite")

// Walk calls fn for every tag in tags, in depth first order.  After fn
// returns for a [*DefineSprite], Walk visits the tags of the sprite.
// The depth argument is 0 for the tags in the given list, 1 for tags
// inside a sprite, and so on.
//
// If fn returns [SkipSprite] for a sprite, the tags of this sprite are not
// visited.  Any other error stops the walk and is returned by Walk.
func Walk(tags []Tag, fn func(t Tag, depth int) error) error {
	return walk(tags, fn, 0)
}

func walk(tags []Tag, fn func(t Tag, depth int) error, depth int) error {
	for _, t := range tags {
		err := fn(t, depth)
		if err == SkipSprite {
			continue
		} else if err != nil {
			return err
		}
		if sprite, ok := t.(*DefineSprite); ok {
			err = walk(sprite.Tags, fn, depth+1)
			if err != nil {
				return err
			}
		}
	}
	return nil
}
