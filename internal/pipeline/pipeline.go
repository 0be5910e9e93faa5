// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package pipeline drives a copynotice run: every resolved directory is
// crossed with every target extension, and each matching file is rewritten
// into the destination tree with the notice inserted at the top.
//
// The pipeline is fully synchronous. Any filesystem failure other than the
// documented recoverable conditions aborts the run; a partially written
// destination file is left as-is.
package pipeline

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"slices"

	"go.astrophena.name/copynotice/internal/config"
	"go.astrophena.name/copynotice/internal/dirscan"
	"go.astrophena.name/copynotice/internal/logger"
	"go.astrophena.name/copynotice/internal/notice"
	"go.astrophena.name/copynotice/internal/ui"
)

// Run executes cfg and returns the number of destination files created.
// On error the count covers the files created before the failure.
func Run(ctx context.Context, cfg *config.Config, cons *ui.Console) (created int, err error) {
	// Resolve the working set of directories first: configured roots, then
	// everything discovered beneath them, deduplicated by source path.
	var discovered []dirscan.Mapping
	for _, m := range cfg.Dirs {
		found, err := dirscan.Discover(ctx, m, cfg.Recurse)
		if err != nil {
			return 0, err
		}
		discovered = append(discovered, found...)
	}
	working := dirscan.Merge(ctx, slices.Clone(cfg.Dirs), discovered)

	for _, m := range working {
		if err := dirscan.EnsureDest(ctx, m); err != nil {
			return 0, err
		}
	}

	policy := NewPolicy(func(dst string) (bool, error) {
		cons.Notef("File %s already exists.", cons.Path(dst))
		return cons.AskYesNo("Do you want to overwrite this file and future files?")
	})

	for _, m := range working {
		for _, ext := range cfg.Exts {
			n, err := processTarget(ctx, m, ext, cfg, policy, cons)
			created += n
			if err != nil {
				return created, err
			}
		}
	}
	return created, nil
}

// processTarget rewrites every file in m.Src matching *.<ext>.
func processTarget(ctx context.Context, m dirscan.Mapping, ext string, cfg *config.Config, policy *Policy, cons *ui.Console) (created int, err error) {
	pattern := dirscan.Pattern(m, ext)
	logger.Debug(ctx, "executing for target", slog.String("pattern", pattern))

	names, found, err := dirscan.Match(m, ext)
	if err != nil {
		return 0, err
	}
	// Suffix matches that were all filtered out (hidden files, directories)
	// still finish the target with a zero count instead of this note.
	if !found {
		cons.Notef("Could not find a target file for target %s.", cons.Path(pattern))
		return 0, nil
	}

	for _, name := range names {
		ok, err := rewriteFile(ctx, m, name, cfg, policy, cons)
		if err != nil {
			return created, err
		}
		if ok {
			created++
		}
	}

	cons.Notef("Finished target %s: created %d file(s).", cons.Path(pattern), created)
	return created, nil
}

// rewriteFile rewrites a single source file into the destination directory,
// consulting the overwrite policy first. It reports whether a destination
// file was produced.
func rewriteFile(ctx context.Context, m dirscan.Mapping, name string, cfg *config.Config, policy *Policy, cons *ui.Console) (bool, error) {
	srcPath := filepath.Join(m.Src, name)
	dstPath := filepath.Join(m.Dst, name)

	logger.Debug(ctx, "opening source file", slog.String("path", srcPath))
	src, err := os.Open(srcPath)
	if err != nil {
		return false, err
	}
	defer src.Close()

	ok, err := policy.ShouldWrite(dstPath)
	if err != nil || !ok {
		return false, err
	}

	logger.Debug(ctx, "creating destination file", slog.String("path", dstPath))
	dst, err := os.Create(dstPath)
	if err != nil {
		return false, err
	}

	empty, err := notice.Rewrite(dst, src, notice.Options{
		Notice:  cfg.Notice,
		Prefix:  cfg.Prefix,
		Replace: cfg.Replace,
	})
	if cerr := dst.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return false, err
	}
	if empty {
		cons.Errorf("Source file %s is empty.", name)
	}
	return true, nil
}
