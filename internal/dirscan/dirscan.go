// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package dirscan resolves the set of directories a run processes and
// enumerates the target files within them.
package dirscan

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"go.astrophena.name/copynotice/internal/logger"
)

// A Mapping pairs a source directory with the destination directory that
// mirrors it. Both paths are stored without a trailing separator. An empty
// Src means the current directory.
type Mapping struct {
	Src string
	Dst string
}

// Discover walks the subdirectories of m.Src and returns a mapping for each,
// mirroring the directory structure under m.Dst. The root mapping itself is
// reported but not returned. Traversal is depth-first in pre-order, driven
// by an explicit worklist so that deep trees cannot exhaust the call stack.
//
// Entries that are not directories or are hidden (dot-prefixed) are skipped.
// A failure to list any visited directory aborts discovery.
func Discover(ctx context.Context, m Mapping, recurse bool) ([]Mapping, error) {
	if !recurse {
		logger.Info(ctx, "targeting directory", slog.String("src", m.Src), slog.String("dst", m.Dst))
		return nil, nil
	}

	var (
		found []Mapping
		work  = []Mapping{m}
	)
	for len(work) > 0 {
		cur := work[len(work)-1]
		work = work[:len(work)-1]

		logger.Info(ctx, "targeting directory", slog.String("src", cur.Src), slog.String("dst", cur.Dst))
		if cur != m {
			found = append(found, cur)
		}

		entries, err := os.ReadDir(cmp.Or(cur.Src, "."))
		if err != nil {
			return nil, fmt.Errorf("listing directory %q: %w", cur.Src, err)
		}

		// Children are pushed in reverse so the worklist pops them in
		// directory order, keeping the traversal pre-order.
		var children []Mapping
		for _, e := range entries {
			if !e.IsDir() || hidden(e.Name()) {
				continue
			}
			children = append(children, Mapping{
				Src: filepath.Join(cur.Src, e.Name()),
				Dst: filepath.Join(cur.Dst, e.Name()),
			})
		}
		for _, c := range slices.Backward(children) {
			work = append(work, c)
		}
	}
	return found, nil
}

// Merge appends each discovered mapping to working, unless its source
// directory is already present in working (configured or merged earlier),
// in which case the duplicate is dropped with a warning. The returned set
// has pairwise-distinct source paths among the appended mappings.
func Merge(ctx context.Context, working, discovered []Mapping) []Mapping {
	for _, d := range discovered {
		dup := slices.ContainsFunc(working, func(m Mapping) bool {
			return m.Src == d.Src
		})
		if dup {
			logger.Warn(ctx, "directory is already targeted", slog.String("src", d.Src))
			continue
		}
		working = append(working, d)
	}
	return working
}

// EnsureDest creates the destination directory of m if it does not already
// exist. Intermediate directories are not created and must already exist.
func EnsureDest(ctx context.Context, m Mapping) error {
	if err := os.Mkdir(m.Dst, 0o755); err != nil {
		if errors.Is(err, fs.ErrExist) {
			return nil
		}
		return fmt.Errorf("creating output directory (intermediate directories must already exist): %w", err)
	}
	logger.Info(ctx, "created output directory", slog.String("dst", m.Dst))
	return nil
}

// hidden reports whether a directory entry name is hidden by convention.
// This also covers the "." and ".." pseudo-entries.
func hidden(name string) bool {
	return strings.HasPrefix(name, ".")
}
