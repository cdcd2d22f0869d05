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

package main

import (
	"encoding/json"
	"io"

	"gopkg.in/yaml.v3"

	"seehuhn.de/go/swf"
	"seehuhn.de/go/swf/movie"
)

// yamlToJSON converts a YAML document to JSON, so that it can be decoded
// by the interchange codec.
func yamlToJSON(data []byte) ([]byte, error) {
	var v any
	err := yaml.Unmarshal(data, &v)
	if err != nil {
		return nil, err
	}
	return json.Marshal(v)
}

// writeYAML writes the movie as a block style YAML document.  The keys
// appear in the same order as in the JSON form.
func writeYAML(w io.Writer, m *movie.Movie) error {
	data, err := swf.MarshalJSON(m)
	if err != nil {
		return err
	}

	// JSON is valid YAML in flow style
	var doc yaml.Node
	err = yaml.Unmarshal(data, &doc)
	if err != nil {
		return err
	}
	toBlockStyle(&doc)

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	err = enc.Encode(&doc)
	if err != nil {
		return err
	}
	return enc.Close()
}

// toBlockStyle clears the flow style of all collections and the quoting of
// mapping keys.  String values keep their quotes, so that hex data and
// the non-finite float names stay strings.
func toBlockStyle(n *yaml.Node) {
	switch n.Kind {
	case yaml.MappingNode:
		n.Style = 0
		for i, c := range n.Content {
			if i%2 == 0 {
				c.Style = 0
			} else {
				toBlockStyle(c)
			}
		}
	case yaml.SequenceNode:
		n.Style = 0
		for _, c := range n.Content {
			toBlockStyle(c)
		}
	case yaml.DocumentNode:
		for _, c := range n.Content {
			toBlockStyle(c)
		}
	}
}
