// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package pipeline

import (
	"errors"
	"io/fs"
	"os"
)

// Decision is the run-scoped overwrite decision.
type Decision uint8

const (
	// Undecided means no overwrite has been confirmed yet; every conflict
	// prompts the user.
	Undecided Decision = iota
	// AlwaysOverwrite means the user confirmed an overwrite once; every
	// later conflict is overwritten without prompting.
	AlwaysOverwrite
)

// Policy decides whether an existing destination file may be overwritten.
//
// Answering yes to a conflict latches the policy to AlwaysOverwrite for the
// remainder of the run; answering no skips only the file that prompted the
// question and leaves the policy undecided, so the next conflict asks again.
type Policy struct {
	decision Decision
	ask      func(dst string) (bool, error)
}

// NewPolicy returns an undecided Policy that consults ask on each conflict.
func NewPolicy(ask func(dst string) (bool, error)) *Policy {
	return &Policy{ask: ask}
}

// Decision returns the current state of the policy.
func (p *Policy) Decision() Decision { return p.decision }

// ShouldWrite reports whether dst may be written. It performs no I/O once
// the policy is latched.
func (p *Policy) ShouldWrite(dst string) (bool, error) {
	if p.decision == AlwaysOverwrite {
		return true, nil
	}
	if _, err := os.Stat(dst); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return true, nil
		}
		return false, err
	}
	ok, err := p.ask(dst)
	if err != nil {
		return false, err
	}
	if ok {
		p.decision = AlwaysOverwrite
	}
	return ok, nil
}
