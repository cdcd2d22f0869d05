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

// ImageType is the format of the data in a [DefineBitmap] tag.
type ImageType uint8

// These are the image formats used by bitmap tags.
const (
	ImageJpeg ImageType = iota
	ImagePng
	ImageGif
	ImageSwfJpeg3
	ImageSwfJpeg4
	ImageSwfLossless1
	ImageSwfLossless2
	ImageSwfPartialJpeg
)

var imageNames = swf.NewEnumNames[ImageType]("ImageType", swf.SnakeCase,
	"Jpeg", "Png", "Gif", "SwfJpeg3", "SwfJpeg4",
	"SwfLossless1", "SwfLossless2", "SwfPartialJpeg")

var imageMediaTypes = []string{
	ImageJpeg:           "image/jpeg",
	ImagePng:            "image/png",
	ImageGif:            "image/gif",
	ImageSwfJpeg3:       "image/x-swf-jpeg3",
	ImageSwfJpeg4:       "image/x-swf-jpeg4",
	ImageSwfLossless1:   "image/x-swf-lossless1",
	ImageSwfLossless2:   "image/x-swf-lossless2",
	ImageSwfPartialJpeg: "image/x-swf-partial-jpeg",
}

func (t ImageType) String() string {
	return imageNames.String(t)
}

// MarshalText implements the [encoding.TextMarshaler] interface.
func (t ImageType) MarshalText() ([]byte, error) {
	return imageNames.MarshalText(t)
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (t *ImageType) UnmarshalText(text []byte) error {
	v, err := imageNames.UnmarshalText(text)
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// MediaType returns the MIME type of the image data.
// The SWF specific formats use "image/x-swf-..." types.
func (t ImageType) MediaType() string {
	if !imageNames.IsValid(t) {
		return "application/octet-stream"
	}
	return imageMediaTypes[t]
}
