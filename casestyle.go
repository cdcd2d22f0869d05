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

import (
	"strconv"
	"strings"
	"unicode"
)

// CaseStyle selects how Go identifiers are spelled in the interchange form.
type CaseStyle uint8

// These are the supported case styles.
const (
	// SnakeCase joins lower case words with underscores: "define_shape".
	SnakeCase CaseStyle = iota

	// KebabCase joins lower case words with hyphens: "simplified-chinese".
	KebabCase
)

func (s CaseStyle) String() string {
	switch s {
	case SnakeCase:
		return "snake_case"
	case KebabCase:
		return "kebab-case"
	default:
		return "CaseStyle(" + strconv.Itoa(int(s)) + ")"
	}
}

// Convert spells the Go identifier name in style s.
//
// Word boundaries are placed before an upper case letter which follows a
// lower case letter or a digit, and before the last letter of a run of
// upper case letters if a lower case letter follows.  Digits stay attached
// to the preceding word.  For example "RotateSkew0" becomes "rotate_skew0",
// "IsShiftJIS" becomes "is_shift_jis" and "UseAS3" becomes "use_as3".
func (s CaseStyle) Convert(name string) string {
	sep := "_"
	if s == KebabCase {
		sep = "-"
	}
	words := splitWords(name)
	for i, w := range words {
		words[i] = strings.ToLower(w)
	}
	return strings.Join(words, sep)
}

func splitWords(name string) []string {
	runes := []rune(name)
	var words []string
	start := 0
	for i := 1; i < len(runes); i++ {
		r := runes[i]
		if !unicode.IsUpper(r) {
			continue
		}
		prev := runes[i-1]
		nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
		if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && nextLower) {
			words = append(words, string(runes[start:i]))
			start = i
		}
	}
	if start < len(runes) {
		words = append(words, string(runes[start:]))
	}
	return words
}
