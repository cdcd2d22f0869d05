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

import "golang.org/x/text/language"

// LanguageCode identifies the spoken language of text in a font or text
// field.
type LanguageCode uint8

// These are the language codes defined by the SWF format.
const (
	LanguageAuto LanguageCode = iota
	LanguageLatin
	LanguageJapanese
	LanguageKorean
	LanguageSimplifiedChinese
	LanguageTraditionalChinese
)

var languageNames = NewEnumNames[LanguageCode]("LanguageCode", KebabCase,
	"Auto", "Latin", "Japanese", "Korean", "SimplifiedChinese", "TraditionalChinese")

func (c LanguageCode) String() string {
	return languageNames.String(c)
}

// MarshalText implements the [encoding.TextMarshaler] interface.
func (c LanguageCode) MarshalText() ([]byte, error) {
	return languageNames.MarshalText(c)
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (c *LanguageCode) UnmarshalText(text []byte) error {
	v, err := languageNames.UnmarshalText(text)
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// Tag returns the BCP 47 language tag corresponding to c.
// [LanguageAuto] maps to [language.Und], and [LanguageLatin] to the
// undetermined language in Latin script.
func (c LanguageCode) Tag() language.Tag {
	switch c {
	case LanguageLatin:
		return language.MustParse("und-Latn")
	case LanguageJapanese:
		return language.Japanese
	case LanguageKorean:
		return language.Korean
	case LanguageSimplifiedChinese:
		return language.SimplifiedChinese
	case LanguageTraditionalChinese:
		return language.TraditionalChinese
	default:
		return language.Und
	}
}
