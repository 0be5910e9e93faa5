// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package notice

import (
	"bufio"
	"bytes"
	"io"
)

// Options configure a single rewrite.
type Options struct {
	// Notice is the text inserted at the top of the destination, split into
	// lines on CRLF boundaries. The final fragment counts as a line even
	// without a terminating CRLF, and an empty Notice still produces a
	// single prefixed line.
	Notice []byte
	// Prefix is the comment prefix written before each notice line and used
	// to recognize existing comment lines, e.g. "// ".
	Prefix []byte
	// Replace strips a comment block already present at the beginning of
	// the source before the notice is inserted.
	Replace bool
}

// Rewrite streams src to dst with the notice inserted at the top.
//
// The first source line is held back while the prefixed notice lines are
// written, then emitted, then the rest of src is copied through verbatim
// with no interpretation of line boundaries or encoding. In replace mode a
// leading run of prefix-matching lines is discarded first; if the source
// ends while that run is still being consumed, the last line read is kept
// and written back as the first code line.
//
// An empty src writes nothing and returns empty == true; the caller has
// already created dst, so the destination exists as a zero-length file.
func Rewrite(dst io.Writer, src io.Reader, opts Options) (empty bool, err error) {
	s := NewScanner(src)
	if !s.Scan() {
		if err := s.Err(); err != nil {
			return false, err
		}
		return true, nil
	}
	first := s.Bytes()

	if opts.Replace && bytes.HasPrefix(first, opts.Prefix) {
		for s.Scan() {
			if !bytes.HasPrefix(s.Bytes(), opts.Prefix) {
				break
			}
		}
		if err := s.Err(); err != nil {
			return false, err
		}
		first = s.Bytes()
	}

	w := bufio.NewWriter(dst)
	for line := range bytes.SplitSeq(opts.Notice, crlf) {
		w.Write(opts.Prefix)
		w.Write(line)
		w.Write(crlf)
	}
	w.Write(first)
	w.Write(crlf)
	if _, err := io.Copy(w, s.Remainder()); err != nil {
		return false, err
	}
	return false, w.Flush()
}
