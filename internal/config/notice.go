// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"go.astrophena.name/copynotice/internal/dirscan"
	"go.astrophena.name/copynotice/internal/txtar"
)

// ErrNoticeAlreadySet reports that more than one source supplied the notice
// text: -note, -notef and a config archive's notice file are mutually
// exclusive.
var ErrNoticeAlreadySet = errors.New("notice text already supplied")

// ReadNotice reads the notice text from the named file. Notice files written
// by Windows tools are often UTF-16 or carry a UTF-8 byte order mark; the
// contents are transcoded to plain UTF-8. This is the only encoding
// conversion copynotice performs: source file bodies are copied verbatim.
func ReadNotice(name string) ([]byte, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	dec := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	b, err := io.ReadAll(transform.NewReader(f, dec))
	if err != nil {
		return nil, fmt.Errorf("reading notice file %q: %w", name, err)
	}
	return b, nil
}

// archiveOptions is the options.json document of a config archive.
type archiveOptions struct {
	Dirs []struct {
		Src string `json:"src"`
		Dst string `json:"dst"`
	} `json:"dirs"`
	Ext     []string `json:"ext"`
	Recurse bool     `json:"recurse"`
	Replace bool     `json:"replace"`
	Syntax  string   `json:"syntax"`
}

// LoadArchive merges options from a txtar config archive into cfg. The
// archive may contain an options.json document and a notice file:
//
//	-- options.json --
//	{"dirs": [{"src": "code", "dst": "out"}], "ext": ["h", "c"], "recurse": true}
//	-- notice --
//	Written by John Doe.
//
// Directory pairs and extensions from the archive are appended after the
// ones given on the command line; boolean options are combined with or.
func LoadArchive(name string, cfg *Config) error {
	ar, err := txtar.ParseFile(name)
	if err != nil {
		return err
	}
	for _, f := range ar.Files {
		switch f.Name {
		case "options.json":
			var opts archiveOptions
			if err := json.Unmarshal(f.Data, &opts); err != nil {
				return fmt.Errorf("%s: parsing options.json: %w", name, err)
			}
			for _, d := range opts.Dirs {
				cfg.Dirs = append(cfg.Dirs, dirscan.Mapping{Src: d.Src, Dst: d.Dst})
			}
			cfg.Exts = append(cfg.Exts, opts.Ext...)
			cfg.Recurse = cfg.Recurse || opts.Recurse
			cfg.Replace = cfg.Replace || opts.Replace
			if opts.Syntax != "" {
				cfg.Prefix = []byte(opts.Syntax)
			}
		case "notice":
			if cfg.Notice != nil {
				return ErrNoticeAlreadySet
			}
			// txtar guarantees a trailing newline on every file;
			// it is part of the archive format, not of the notice.
			data := bytes.TrimSuffix(f.Data, []byte("\n"))
			data = bytes.TrimSuffix(data, []byte("\r"))
			cfg.Notice = data
		}
	}
	return nil
}
