// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package config holds the validated configuration of a copynotice run.
package config

import (
	"errors"
	"fmt"
	"strings"

	"go.astrophena.name/copynotice/internal/dirscan"
)

// DefaultPrefix is the comment prefix used when none is configured.
const DefaultPrefix = "// "

const (
	maxExtensionLen = 15
	maxPrefixLen    = 15
)

// Characters that may not appear in configured paths and extensions.
// Extensions additionally forbid separators and the dot.
const (
	illegalPathChars = `<>:"|?*`
	illegalExtChars  = `<>:"/\|?*.`
)

// Config is the validated configuration consumed by the pipeline. Once
// Validate has succeeded, the pipeline treats every field as read-only.
type Config struct {
	// Dirs are the configured source/destination root pairs.
	Dirs []dirscan.Mapping
	// Exts are the target file extensions, processed in order.
	Exts []string
	// Notice is the text inserted at the top of every output file,
	// split into lines on CRLF boundaries.
	Notice []byte
	// Prefix is the comment prefix, e.g. "// ".
	Prefix []byte
	// Recurse enables subdirectory discovery.
	Recurse bool
	// Replace strips a pre-existing leading comment block.
	Replace bool
	// Verbose enables extended progress logging. It has no effect on
	// file output.
	Verbose bool
}

// Validate checks the configuration against the documented constraints.
// It returns the first violation found.
func (c *Config) Validate() error {
	if len(c.Dirs) == 0 {
		return errors.New("at least one directory pair must be specified")
	}
	for _, m := range c.Dirs {
		if hasTrailingSeparator(m.Src) {
			return fmt.Errorf("source directory %q: do not use a trailing slash", m.Src)
		}
		if m.Dst == "" {
			return errors.New("destination directory cannot be empty")
		}
		if hasTrailingSeparator(m.Dst) {
			return fmt.Errorf("destination directory %q: do not use a trailing slash", m.Dst)
		}
		if strings.ContainsAny(m.Src, illegalPathChars) {
			return fmt.Errorf("source directory %q contains an illegal character", m.Src)
		}
		if strings.ContainsAny(m.Dst, illegalPathChars) {
			return fmt.Errorf("destination directory %q contains an illegal character", m.Dst)
		}
	}
	for _, ext := range c.Exts {
		if ext == "" {
			return errors.New("extension cannot be blank")
		}
		if len(ext) > maxExtensionLen {
			return fmt.Errorf("extension %q is too long (at most %d characters)", ext, maxExtensionLen)
		}
		if strings.ContainsAny(ext, illegalExtChars) {
			return fmt.Errorf("extension %q contains an illegal character", ext)
		}
	}
	if len(c.Prefix) == 0 {
		return errors.New("comment prefix cannot be blank")
	}
	if len(c.Prefix) > maxPrefixLen {
		return fmt.Errorf("comment prefix cannot exceed %d bytes", maxPrefixLen)
	}
	return nil
}

func hasTrailingSeparator(path string) bool {
	return strings.HasSuffix(path, "/") || strings.HasSuffix(path, `\`)
}

// DirList collects repeatable -dir flags of the form SRC:DST. The colon
// separator is unambiguous: it is an illegal character inside configured
// paths. An empty SRC means the current directory.
type DirList []dirscan.Mapping

// String implements [flag.Value].
func (l *DirList) String() string {
	var pairs []string
	for _, m := range *l {
		pairs = append(pairs, m.Src+":"+m.Dst)
	}
	return strings.Join(pairs, ", ")
}

// Set implements [flag.Value].
func (l *DirList) Set(s string) error {
	src, dst, ok := strings.Cut(s, ":")
	if !ok {
		return fmt.Errorf("%q: expected a SRC:DST pair", s)
	}
	*l = append(*l, dirscan.Mapping{Src: src, Dst: dst})
	return nil
}

// ExtList collects repeatable -ext flags.
type ExtList []string

// String implements [flag.Value].
func (l *ExtList) String() string { return strings.Join(*l, ", ") }

// Set implements [flag.Value].
func (l *ExtList) Set(s string) error {
	*l = append(*l, s)
	return nil
}
