// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package notice implements the rewrite applied to each source file: a
// notice comment block is written to the top of the destination, optionally
// replacing a comment block already present in the source, and the rest of
// the source bytes are copied through verbatim.
package notice

import (
	"bytes"
	"io"
)

// scanChunkSize is the size of the scanner's underlying reads. Lines are
// reassembled in a growable buffer, so their length is not bounded by it.
const scanChunkSize = 64

// crlf terminates every line the scanner recognizes and the rewriter emits.
var crlf = []byte("\r\n")

// A Scanner reads CRLF-terminated lines from r. A final fragment without a
// terminating CRLF still counts as a line. The sequence of lines is lazy,
// single-pass and non-restartable.
//
// Unlike [bufio.Scanner], a lone '\n' or '\r' does not terminate a line, and
// after Scan has returned false, Bytes still returns the last line
// successfully read. The rewriter depends on both properties.
type Scanner struct {
	r    io.Reader
	buf  []byte // read ahead of the current line, not yet consumed
	line []byte // most recently scanned line, without its CRLF
	err  error  // sticky; io.EOF is the normal end of input
}

// NewScanner returns a Scanner reading lines from r.
func NewScanner(r io.Reader) *Scanner {
	return &Scanner{r: r}
}

// Scan advances to the next line, which is then available through Bytes.
// It returns false when the input is exhausted or reading fails; in that
// case the line buffer is left untouched.
func (s *Scanner) Scan() bool {
	var acc []byte
	for {
		if i := bytes.Index(s.buf, crlf); i >= 0 {
			acc = append(acc, s.buf[:i]...)
			s.buf = s.buf[i+2:]
			s.line = acc
			return true
		}

		if s.err != nil {
			acc = append(acc, s.buf...)
			s.buf = nil
			if len(acc) == 0 {
				return false
			}
			s.line = acc
			return true
		}

		// Consume everything except a trailing '\r', whose '\n' may
		// arrive with the next chunk.
		keep := len(s.buf)
		if keep > 0 && s.buf[keep-1] == '\r' {
			keep--
		}
		acc = append(acc, s.buf[:keep]...)
		s.buf = s.buf[keep:]

		chunk := make([]byte, scanChunkSize)
		n, err := s.r.Read(chunk)
		s.buf = append(s.buf, chunk[:n]...)
		if err != nil {
			s.err = err
		}
	}
}

// Bytes returns the most recently scanned line. The returned slice remains
// valid after further calls to Scan. When Scan has returned false, Bytes
// returns the last line read before the input ran out.
func (s *Scanner) Bytes() []byte { return s.line }

// Err returns the first non-EOF error encountered while reading.
func (s *Scanner) Err() error {
	if s.err == io.EOF {
		return nil
	}
	return s.err
}

// Remainder returns a reader over all input bytes not yet consumed by Scan:
// first the scanner's read-ahead buffer, then the rest of the underlying
// reader. The scanner must not be used afterwards.
func (s *Scanner) Remainder() io.Reader {
	return io.MultiReader(bytes.NewReader(s.buf), s.r)
}
