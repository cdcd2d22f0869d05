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

package shape

import "seehuhn.de/go/swf/optional"

// ClipAction is an event handler attached to a placed sprite.
// Actions holds the bytecode of the handler, which is not interpreted here.
type ClipAction struct {
	Events  ClipEventFlags
	KeyCode optional.Value[uint8]
	Actions []byte
}

// ClipEventFlags selects the events which trigger a [ClipAction].
type ClipEventFlags struct {
	Construct      bool
	Data           bool
	DragOut        bool
	DragOver       bool
	EnterFrame     bool
	Initialize     bool
	KeyUp          bool
	KeyDown        bool
	KeyPress       bool
	Load           bool
	MouseDown      bool
	MouseMove      bool
	MouseUp        bool
	Press          bool
	Release        bool
	ReleaseOutside bool
	RollOut        bool
	RollOver       bool
	Unload         bool
}

// IsEmpty reports whether no event is selected.
func (f ClipEventFlags) IsEmpty() bool {
	return f == ClipEventFlags{}
}
