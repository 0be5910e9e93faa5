// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"go.astrophena.name/copynotice/internal/cli"
	"go.astrophena.name/copynotice/internal/config"
	"go.astrophena.name/copynotice/internal/logger"
	"go.astrophena.name/copynotice/internal/pipeline"
	"go.astrophena.name/copynotice/internal/ui"
	"go.astrophena.name/copynotice/internal/version"

	"golang.org/x/term"
)

func main() { cli.Main(new(app)) }

type app struct {
	dirs    config.DirList
	exts    config.ExtList
	note    string
	noteSet bool
	notef   string
	archive string
	syntax  string
	recurse bool
	replace bool
	verbose bool
}

func (a *app) Flags(fs *flag.FlagSet) {
	fs.Var(&a.dirs, "dir", "Source and destination directory `pair` in the form SRC:DST. Can be repeated.")
	fs.Var(&a.exts, "ext", "Target file `extension`, without the leading dot. Can be repeated.")
	fs.Func("note", "Notice `text` to insert at the top of every output file.", func(s string) error {
		a.note = s
		a.noteSet = true
		return nil
	})
	fs.StringVar(&a.notef, "notef", "", "Read the notice text from `file`.")
	fs.StringVar(&a.archive, "config", "", "Load options and the notice text from a txtar `archive`.")
	fs.StringVar(&a.syntax, "syntax", "", "Comment `prefix` put before each notice line. Defaults to \"// \".")
	fs.BoolVar(&a.recurse, "recurse", false, "Process subdirectories of each source directory.")
	fs.BoolVar(&a.replace, "replace", false, "Replace an existing leading comment block instead of inserting above it.")
	fs.BoolVar(&a.verbose, "verbose", false, "Enable verbose progress logging.")
}

func (a *app) Run(ctx context.Context) error {
	env := cli.GetEnv(ctx)

	l := logger.New(nil)
	if a.verbose {
		l.Level.Set(slog.LevelDebug)
	}
	l.Attach(logger.NewHandler(env.Stderr, l.Level, isTerminal(env.Stderr)))
	ctx = logger.Put(ctx, l)

	cfg, err := a.config()
	if err != nil {
		return err
	}

	cons := ui.New(env.Stdout, env.Stdin, isTerminal(env.Stdout))
	cons.Titlef("%s", strings.TrimSpace(version.Version()))

	created, err := pipeline.Run(ctx, cfg, cons)
	if err != nil {
		return err
	}
	cons.Successf("Done. Created %d file(s).", created)
	return nil
}

// config assembles and validates the run configuration from the parsed
// flags. Validation failures wrap [cli.ErrInvalidArgs] so that usage is
// printed alongside them.
func (a *app) config() (*config.Config, error) {
	cfg := &config.Config{
		Dirs:    a.dirs,
		Exts:    a.exts,
		Recurse: a.recurse,
		Replace: a.replace,
		Verbose: a.verbose,
	}

	if a.noteSet {
		cfg.Notice = []byte(a.note)
	}
	if a.notef != "" {
		if cfg.Notice != nil {
			return nil, fmt.Errorf("%w: -note and -notef are mutually exclusive", cli.ErrInvalidArgs)
		}
		b, err := config.ReadNotice(a.notef)
		if err != nil {
			return nil, err
		}
		cfg.Notice = b
	}
	if a.syntax != "" {
		cfg.Prefix = []byte(a.syntax)
	}
	if a.archive != "" {
		if err := config.LoadArchive(a.archive, cfg); err != nil {
			if errors.Is(err, config.ErrNoticeAlreadySet) {
				return nil, fmt.Errorf("%w: %v", cli.ErrInvalidArgs, err)
			}
			return nil, err
		}
	}
	// The notice is optional: with no -note, -notef or archive notice, each
	// output file gets a single empty comment line.
	if cfg.Prefix == nil {
		cfg.Prefix = []byte(config.DefaultPrefix)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", cli.ErrInvalidArgs, err)
	}
	return cfg, nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
