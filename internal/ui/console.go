// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package ui implements console presentation: a text sink with
// interchangeable plain and styled renderings, and the blocking yes/no
// prompt. Nothing in the processing pipeline depends on whether styling is
// enabled.
package ui

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Underline(true).Foreground(lipgloss.Color("2"))
	errorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))
	successStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
	noteStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	pathStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
)

// A Console writes user-facing text to an output stream and reads prompt
// answers from an input stream.
type Console struct {
	out    io.Writer
	in     *bufio.Scanner
	styled bool
}

// New returns a Console. When styled is false every rendering method
// degrades to plain text, so output redirected to a file or pipe carries no
// escape sequences.
func New(out io.Writer, in io.Reader, styled bool) *Console {
	return &Console{
		out:    out,
		in:     bufio.NewScanner(in),
		styled: styled,
	}
}

func (c *Console) render(st lipgloss.Style, s string) string {
	if !c.styled {
		return s
	}
	return st.Render(s)
}

// Printf writes unstyled text.
func (c *Console) Printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}

// Titlef writes a heading line.
func (c *Console) Titlef(format string, args ...any) {
	fmt.Fprintln(c.out, c.render(titleStyle, fmt.Sprintf(format, args...)))
}

// Errorf writes an error line.
func (c *Console) Errorf(format string, args ...any) {
	fmt.Fprintln(c.out, c.render(errorStyle, fmt.Sprintf(format, args...)))
}

// Successf writes a success line.
func (c *Console) Successf(format string, args ...any) {
	fmt.Fprintln(c.out, c.render(successStyle, fmt.Sprintf(format, args...)))
}

// Notef writes a secondary progress line.
func (c *Console) Notef(format string, args ...any) {
	fmt.Fprintln(c.out, c.render(noteStyle, fmt.Sprintf(format, args...)))
}

// Path renders a file system path for interpolation into messages.
func (c *Console) Path(p string) string {
	return c.render(pathStyle, fmt.Sprintf("%q", p))
}

// AskYesNo prints question and blocks until the user answers y/yes or n/no.
// Any other input re-prompts. It returns an error if the input stream ends
// or fails before an answer is given.
func (c *Console) AskYesNo(question string) (bool, error) {
	c.Printf("%s (y/n)\n", question)
	for {
		c.Printf("> ")
		if !c.in.Scan() {
			if err := c.in.Err(); err != nil {
				return false, err
			}
			return false, io.ErrUnexpectedEOF
		}
		switch strings.TrimSpace(c.in.Text()) {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		c.Printf("Invalid input. Enter yes or no.\n")
	}
}
