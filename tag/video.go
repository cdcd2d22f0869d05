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

import "seehuhn.de/go/swf"

// DefineVideoStream defines a video character.
// The frames of the video are given by [VideoFrame] tags.
type DefineVideoStream struct {
	ID           uint16
	FrameCount   uint16
	Width        uint16
	Height       uint16
	Deblocking   VideoDeblocking
	UseSmoothing bool
	Codec        VideoCodec
}

// VideoFrame holds the data of one frame of a video stream.
type VideoFrame struct {
	StreamID uint16
	Frame    uint16
	Packet   []byte
}

// VideoCodec is the compression format of a video stream.
type VideoCodec uint8

// These are the video codecs used in SWF files.
const (
	CodecSorensonH263 VideoCodec = iota
	CodecScreen
	CodecVp6
	CodecVp6Alpha
	CodecScreen2
	CodecAvc
)

var codecNames = swf.NewEnumNames[VideoCodec]("VideoCodec", swf.SnakeCase,
	"SorensonH263", "Screen", "Vp6", "Vp6Alpha", "Screen2", "Avc")

func (c VideoCodec) String() string {
	return codecNames.String(c)
}

// MarshalText implements the [encoding.TextMarshaler] interface.
func (c VideoCodec) MarshalText() ([]byte, error) {
	return codecNames.MarshalText(c)
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (c *VideoCodec) UnmarshalText(text []byte) error {
	v, err := codecNames.UnmarshalText(text)
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// VideoDeblocking selects the deblocking filter of a video stream.
type VideoDeblocking uint8

// These are the supported deblocking modes.
const (
	DeblockingPacketValue VideoDeblocking = iota
	DeblockingOff
	DeblockingLevel1
	DeblockingLevel2
	DeblockingLevel3
	DeblockingLevel4
)

var deblockingNames = swf.NewEnumNames[VideoDeblocking]("VideoDeblocking", swf.SnakeCase,
	"PacketValue", "Off", "Level1", "Level2", "Level3", "Level4")

func (d VideoDeblocking) String() string {
	return deblockingNames.String(d)
}

// MarshalText implements the [encoding.TextMarshaler] interface.
func (d VideoDeblocking) MarshalText() ([]byte, error) {
	return deblockingNames.MarshalText(d)
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (d *VideoDeblocking) UnmarshalText(text []byte) error {
	v, err := deblockingNames.UnmarshalText(text)
	if err != nil {
		return err
	}
	*d = v
	return nil
}
