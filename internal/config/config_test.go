// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.astrophena.name/copynotice/internal/dirscan"
	"go.astrophena.name/copynotice/internal/testutil"
	"go.astrophena.name/copynotice/internal/unwrap"
)

func validConfig() *Config {
	return &Config{
		Dirs:   []dirscan.Mapping{{Src: "code", Dst: "out"}},
		Exts:   []string{"go"},
		Notice: []byte("Notice."),
		Prefix: []byte(DefaultPrefix),
	}
}

func TestValidate(t *testing.T) {
	cases := map[string]struct {
		mutate  func(*Config)
		wantErr string // substring; empty means valid
	}{
		"valid": {
			mutate: func(c *Config) {},
		},
		"empty source is the current directory": {
			mutate: func(c *Config) { c.Dirs[0].Src = "" },
		},
		"no directories": {
			mutate:  func(c *Config) { c.Dirs = nil },
			wantErr: "at least one directory pair",
		},
		"source with trailing slash": {
			mutate:  func(c *Config) { c.Dirs[0].Src = "code/" },
			wantErr: "trailing slash",
		},
		"source with trailing backslash": {
			mutate:  func(c *Config) { c.Dirs[0].Src = `code\` },
			wantErr: "trailing slash",
		},
		"empty destination": {
			mutate:  func(c *Config) { c.Dirs[0].Dst = "" },
			wantErr: "cannot be empty",
		},
		"destination with trailing slash": {
			mutate:  func(c *Config) { c.Dirs[0].Dst = "out/" },
			wantErr: "trailing slash",
		},
		"source with illegal character": {
			mutate:  func(c *Config) { c.Dirs[0].Src = "co|de" },
			wantErr: "illegal character",
		},
		"destination with illegal character": {
			mutate:  func(c *Config) { c.Dirs[0].Dst = "out?" },
			wantErr: "illegal character",
		},
		"blank extension": {
			mutate:  func(c *Config) { c.Exts = []string{""} },
			wantErr: "extension cannot be blank",
		},
		"extension too long": {
			mutate:  func(c *Config) { c.Exts = []string{strings.Repeat("x", 16)} },
			wantErr: "too long",
		},
		"extension of maximum length": {
			mutate: func(c *Config) { c.Exts = []string{strings.Repeat("x", 15)} },
		},
		"extension with dot": {
			mutate:  func(c *Config) { c.Exts = []string{"tar.gz"} },
			wantErr: "illegal character",
		},
		"extension with separator": {
			mutate:  func(c *Config) { c.Exts = []string{"a/b"} },
			wantErr: "illegal character",
		},
		"blank prefix": {
			mutate:  func(c *Config) { c.Prefix = nil },
			wantErr: "prefix cannot be blank",
		},
		"prefix too long": {
			mutate:  func(c *Config) { c.Prefix = []byte(strings.Repeat("-", 16)) },
			wantErr: "cannot exceed",
		},
		"prefix of maximum length": {
			mutate: func(c *Config) { c.Prefix = []byte(strings.Repeat("-", 15)) },
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := validConfig()
			tc.mutate(cfg)
			err := cfg.Validate()
			if tc.wantErr == "" {
				if err != nil {
					t.Fatalf("Validate: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Fatalf("want error containing %q, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestDirList(t *testing.T) {
	var l DirList
	if err := l.Set("code:out"); err != nil {
		t.Fatal(err)
	}
	if err := l.Set(":out2"); err != nil {
		t.Fatal(err)
	}
	testutil.AssertEqual(t, []dirscan.Mapping(l), []dirscan.Mapping{
		{Src: "code", Dst: "out"},
		{Src: "", Dst: "out2"},
	})
	testutil.AssertEqual(t, l.String(), "code:out, :out2")

	if err := l.Set("no-separator"); err == nil {
		t.Fatal("want an error for a value without a separator")
	}
}

func TestReadNotice(t *testing.T) {
	dir := t.TempDir()

	cases := map[string]struct {
		raw  []byte
		want string
	}{
		"plain utf-8": {
			raw:  []byte("Written by John Doe.\r\nSecond line."),
			want: "Written by John Doe.\r\nSecond line.",
		},
		"utf-8 with BOM": {
			raw:  []byte{0xEF, 0xBB, 0xBF, 'H', 'i'},
			want: "Hi",
		},
		"utf-16 little endian": {
			raw:  []byte{0xFF, 0xFE, 'H', 0, 'i', 0, 0x0D, 0, 0x0A, 0, '!', 0},
			want: "Hi\r\n!",
		},
		"utf-16 big endian": {
			raw:  []byte{0xFE, 0xFF, 0, 'H', 0, 'i'},
			want: "Hi",
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, strings.ReplaceAll(name, " ", "-"))
			if err := os.WriteFile(path, tc.raw, 0o644); err != nil {
				t.Fatal(err)
			}
			got := unwrap.Value(ReadNotice(path))
			testutil.AssertEqual(t, string(got), tc.want)
		})
	}
}

func TestReadNoticeMissingFile(t *testing.T) {
	if _, err := ReadNotice(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Fatal("want an error for a missing notice file")
	}
}

func TestLoadArchive(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "copynotice.txtar")
	archive := `-- options.json --
{
  "dirs": [{"src": "code", "dst": "out"}],
  "ext": ["h", "c"],
  "recurse": true,
  "syntax": "# "
}
-- notice --
Written by John Doe.
`
	if err := os.WriteFile(path, []byte(archive), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := &Config{Prefix: []byte(DefaultPrefix)}
	if err := LoadArchive(path, cfg); err != nil {
		t.Fatalf("LoadArchive: %v", err)
	}

	testutil.AssertEqual(t, cfg.Dirs, []dirscan.Mapping{{Src: "code", Dst: "out"}})
	testutil.AssertEqual(t, cfg.Exts, []string{"h", "c"})
	testutil.AssertEqual(t, cfg.Recurse, true)
	testutil.AssertEqual(t, cfg.Replace, false)
	testutil.AssertEqual(t, string(cfg.Prefix), "# ")
	testutil.AssertEqual(t, string(cfg.Notice), "Written by John Doe.")
}

func TestLoadArchiveNoticeConflict(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "copynotice.txtar")
	if err := os.WriteFile(path, []byte("-- notice --\nFrom the archive.\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := &Config{Notice: []byte("From the command line.")}
	err := LoadArchive(path, cfg)
	if err == nil {
		t.Fatal("want an error when the notice is supplied twice")
	}
}

func TestLoadArchiveBadJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "copynotice.txtar")
	if err := os.WriteFile(path, []byte("-- options.json --\n{not json\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := LoadArchive(path, &Config{}); err == nil {
		t.Fatal("want an error for malformed options.json")
	}
}
