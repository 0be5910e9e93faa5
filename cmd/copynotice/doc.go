// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

/*
Copynotice copies source trees, stamping a notice comment on every file.

For each configured SRC:DST directory pair, it finds the files in SRC
matching the target extensions and writes a copy of each into DST with the
notice text inserted at the top as a comment block, one prefixed line per
CRLF-terminated notice line. With -replace, a comment block already leading
the source file is stripped before the notice is inserted, so running the
tool over its own output is idempotent.

Usage:

	copynotice -dir SRC:DST [-dir ...] -ext EXT [-ext ...] -note TEXT [flags...]

The notice text comes from at most one of three sources: the -note flag, a
file named with -notef (UTF-8 or UTF-16; a byte order mark is honored and
the text is transcoded to UTF-8), or a config archive. When none is given,
each output file gets a single empty comment line as its notice.

The -config flag names a txtar archive whose options supplement the command
line:

	-- options.json --
	{"dirs": [{"src": "code", "dst": "out"}], "ext": ["h", "c"], "recurse": true}
	-- notice --
	Written by John Doe.

Directory pairs and extensions from the archive are appended after the ones
given on the command line.

If a destination file already exists, copynotice asks before overwriting;
answering yes applies to all remaining conflicts in the run.
*/
package main

import (
	_ "embed"

	"go.astrophena.name/copynotice/internal/cli"
)

//go:embed doc.go
var doc []byte

func init() { cli.SetDocComment(doc) }
