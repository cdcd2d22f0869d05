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

// Package button implements the records which make up a button character.
package button

import (
	"seehuhn.de/go/swf"
	"seehuhn.de/go/swf/filter"
	"seehuhn.de/go/swf/optional"
	"seehuhn.de/go/swf/sound"
)

// Record places a character in one or more of the states of a button.
type Record struct {
	StateUp        bool
	StateOver      bool
	StateDown      bool
	StateHitTest   bool
	CharacterID    uint16
	Depth          uint16
	Matrix         swf.Matrix
	ColorTransform swf.ColorTransformWithAlpha
	Filters        []filter.Filter
	BlendMode      swf.BlendMode
}

// CondAction is an action which runs when a button changes state.
// If Conditions is absent, the action runs on release.
type CondAction struct {
	Conditions optional.Value[Cond]
	Actions    []byte
}

// Cond lists the state transitions which trigger a [CondAction].
type Cond struct {
	IdleToOverUp      bool
	OverUpToIdle      bool
	OverUpToOverDown  bool
	OverDownToOverUp  bool
	OverDownToOutDown bool
	OutDownToOverDown bool
	OutDownToIdle     bool
	IdleToOverDown    bool
	OverDownToIdle    bool
	KeyPress          optional.Value[uint32]
}

// Sound is a sound played on a button state transition.
// SoundID refers to a DefineSound tag.
type Sound struct {
	SoundID   uint16
	SoundInfo sound.Info
}
