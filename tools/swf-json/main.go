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
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/ohler55/ojg/jp"
	"github.com/ohler55/ojg/oj"
	"seehuhn.de/go/xmp"

	"seehuhn.de/go/swf"
	"seehuhn.de/go/swf/movie"
	"seehuhn.de/go/swf/tag"
	"seehuhn.de/go/swf/tools/internal/buildinfo"
	"seehuhn.de/go/swf/tools/internal/profile"
)

var (
	outArg     = flag.String("o", "", "write output to `file` instead of stdout")
	yamlArg    = flag.Bool("yaml", false, "write YAML instead of JSON")
	summaryArg = flag.Bool("summary", false, "print the header and the number of tags of each type")
	queryArg   = flag.String("q", "", "print the values selected by the JSONPath `expr`")
	xmpArg     = flag.Bool("xmp", false, "print the XMP metadata of the movie")
	fontsArg   = flag.Bool("fonts", false, "list the fonts defined in the movie")
	cpuprofile = flag.String("cpuprofile", "", "write cpu profile to `file`")
	memprofile = flag.String("memprofile", "", "write memory profile to `file`")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "swf-json \u2014 check, convert and query SWF interchange documents\n")
		fmt.Fprintf(os.Stderr, "%s\n\n", buildinfo.Short("swf-json"))
		fmt.Fprintf(os.Stderr, "Usage:\n")
		fmt.Fprintf(os.Stderr, "  swf-json [options] <file.json|file.yaml>...\n\n")
		fmt.Fprintf(os.Stderr, "Arguments:\n")
		fmt.Fprintf(os.Stderr, "  file   one or more movies in JSON or YAML form\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  swf-json movie.json\n")
		fmt.Fprintf(os.Stderr, "  swf-json -yaml -o movie.yaml movie.json\n")
		fmt.Fprintf(os.Stderr, "  swf-json -q '$.tags[?(@.type==\"define_shape\")].id' movie.json\n")
	}
	flag.Parse()

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(1)
	}

	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	stop, err := profile.Start(*cpuprofile, *memprofile)
	if err != nil {
		return err
	}
	defer stop()

	modes := 0
	for _, set := range []bool{*yamlArg, *summaryArg, *queryArg != "", *xmpArg, *fontsArg} {
		if set {
			modes++
		}
	}
	if modes > 1 {
		return errors.New("options -yaml, -summary, -q, -xmp and -fonts are mutually exclusive")
	}

	var query jp.Expr
	if *queryArg != "" {
		query, err = jp.ParseString(*queryArg)
		if err != nil {
			return fmt.Errorf("invalid JSONPath %q: %w", *queryArg, err)
		}
	}

	var w io.Writer = os.Stdout
	if *outArg != "" {
		fd, err := os.Create(*outArg)
		if err != nil {
			return err
		}
		defer fd.Close()
		w = fd
	}

	for _, fname := range flag.Args() {
		m, err := readMovie(fname)
		if err != nil {
			return err
		}

		switch {
		case *yamlArg:
			err = writeYAML(w, m)
		case *summaryArg:
			err = summary(w, fname, m)
		case query != nil:
			err = runQuery(w, m, query)
		case *xmpArg:
			err = showMetadata(w, m)
		case *fontsArg:
			err = listFonts(w, m)
		default:
			err = m.Write(w)
		}
		if err != nil {
			return fmt.Errorf("%s: %w", fname, err)
		}
	}
	return nil
}

// readMovie reads a movie from a JSON or YAML file.  The format is chosen
// by the file name extension.
func readMovie(fname string) (*movie.Movie, error) {
	data, err := os.ReadFile(fname)
	if err != nil {
		return nil, err
	}

	switch strings.ToLower(filepath.Ext(fname)) {
	case ".yaml", ".yml":
		data, err = yamlToJSON(data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", fname, err)
		}
	}

	m, err := movie.Read(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fname, err)
	}
	return m, nil
}

func summary(w io.Writer, fname string, m *movie.Movie) error {
	h := &m.Header
	_, err := fmt.Fprintf(w, "%s: SWF version %d, %gx%g pixels, %s fps, %d frames (%s)\n",
		fname, h.SwfVersion,
		float64(h.FrameSize.Width())/swf.TwipsPerPixel,
		float64(h.FrameSize.Height())/swf.TwipsPerPixel,
		h.FrameRate, h.FrameCount, h.Duration())
	if err != nil {
		return err
	}

	counts := make(map[string]int)
	err = tag.Walk(m.Tags, func(t tag.Tag, _ int) error {
		counts[tag.Name(t)]++
		return nil
	})
	if err != nil {
		return err
	}

	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	slices.Sort(names)
	for _, name := range names {
		_, err := fmt.Fprintf(w, "  %-34s %6d\n", name, counts[name])
		if err != nil {
			return err
		}
	}
	return nil
}

// runQuery evaluates a JSONPath expression on the canonical JSON form of
// the movie and prints each result on a separate line.
func runQuery(w io.Writer, m *movie.Movie, x jp.Expr) error {
	data, err := swf.MarshalJSON(m)
	if err != nil {
		return err
	}
	root, err := oj.Parse(data)
	if err != nil {
		return err
	}
	for _, res := range x.Get(root) {
		_, err := fmt.Fprintln(w, oj.JSON(res))
		if err != nil {
			return err
		}
	}
	return nil
}

func showMetadata(w io.Writer, m *movie.Movie) error {
	return tag.Walk(m.Tags, func(t tag.Tag, _ int) error {
		md, ok := t.(*tag.Metadata)
		if !ok {
			return tag.SkipSprite
		}
		packet, err := md.Packet()
		if err != nil {
			return err
		}
		return packet.Write(w, &xmp.PacketOptions{Pretty: true})
	})
}

func listFonts(w io.Writer, m *movie.Movie) error {
	return tag.Walk(m.Tags, func(t tag.Tag, _ int) error {
		var err error
		switch f := t.(type) {
		case *tag.DefineCffFont:
			font, fontErr := f.Font()
			if fontErr != nil {
				_, err = fmt.Fprintf(w, "%5d  %-24q  invalid font data: %v\n", f.ID, f.FontName, fontErr)
				break
			}
			outlines := "CFF"
			if font.IsGlyf() {
				outlines = "glyf"
			}
			_, err = fmt.Fprintf(w, "%5d  %-24q  %s, %d glyphs, %s outlines\n",
				f.ID, f.FontName, font.PostScriptName(), font.NumGlyphs(), outlines)
		case *tag.DefineFont:
			glyphs, _ := f.Glyphs.Get()
			_, err = fmt.Fprintf(w, "%5d  %-24q  %d glyphs, language %s\n",
				f.ID, f.FontName, len(glyphs), f.Language)
		case *tag.DefinePartialFont:
			_, err = fmt.Fprintf(w, "%5d  %-24s  %d glyphs\n", f.ID, "(partial)", len(f.Glyphs))
		}
		return err
	})
}
