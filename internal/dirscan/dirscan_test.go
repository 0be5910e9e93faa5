// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package dirscan

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"go.astrophena.name/copynotice/internal/testutil"
	"go.astrophena.name/copynotice/internal/unwrap"
)

func mkdirs(t *testing.T, root string, dirs ...string) {
	t.Helper()
	for _, d := range dirs {
		if err := os.MkdirAll(filepath.Join(root, d), 0o755); err != nil {
			t.Fatal(err)
		}
	}
}

func touch(t *testing.T, root string, files ...string) {
	t.Helper()
	for _, f := range files {
		if err := os.WriteFile(filepath.Join(root, f), nil, 0o644); err != nil {
			t.Fatal(err)
		}
	}
}

func TestDiscover(t *testing.T) {
	ctx := context.Background()
	src := t.TempDir()
	mkdirs(t, src, "a/c/d", "b", ".hidden/sub")
	touch(t, src, "file.txt", "a/nested.txt")

	m := Mapping{Src: src, Dst: "out"}
	got := unwrap.Value(Discover(ctx, m, true))

	want := []Mapping{
		{Src: filepath.Join(src, "a"), Dst: filepath.Join("out", "a")},
		{Src: filepath.Join(src, "a", "c"), Dst: filepath.Join("out", "a", "c")},
		{Src: filepath.Join(src, "a", "c", "d"), Dst: filepath.Join("out", "a", "c", "d")},
		{Src: filepath.Join(src, "b"), Dst: filepath.Join("out", "b")},
	}
	testutil.AssertEqual(t, got, want)
}

func TestDiscoverNoRecurse(t *testing.T) {
	ctx := context.Background()
	// Without recursion the source is not even listed, so a directory that
	// does not exist is fine here.
	got := unwrap.Value(Discover(ctx, Mapping{Src: "does-not-exist", Dst: "out"}, false))
	testutil.AssertEqual(t, got, []Mapping(nil))
}

func TestDiscoverListError(t *testing.T) {
	ctx := context.Background()
	_, err := Discover(ctx, Mapping{Src: "does-not-exist", Dst: "out"}, true)
	if err == nil {
		t.Fatal("want an error for an unlistable source directory")
	}
}

func TestMerge(t *testing.T) {
	ctx := context.Background()
	working := []Mapping{
		{Src: "a", Dst: "out/a"},
		{Src: "b", Dst: "out/b"},
	}
	discovered := []Mapping{
		{Src: "b", Dst: "elsewhere/b"}, // dropped: src already targeted
		{Src: "c", Dst: "out/c"},
		{Src: "c", Dst: "out2/c"}, // dropped: duplicates a merged mapping
	}

	got := Merge(ctx, working, discovered)
	want := []Mapping{
		{Src: "a", Dst: "out/a"},
		{Src: "b", Dst: "out/b"},
		{Src: "c", Dst: "out/c"},
	}
	testutil.AssertEqual(t, got, want)

	// The surviving set has pairwise-distinct sources.
	seen := make(map[string]bool)
	for _, m := range got {
		if seen[m.Src] {
			t.Errorf("duplicate source %q in merged set", m.Src)
		}
		seen[m.Src] = true
	}
}

func TestEnsureDest(t *testing.T) {
	ctx := context.Background()
	root := t.TempDir()

	m := Mapping{Src: "src", Dst: filepath.Join(root, "out")}
	if err := EnsureDest(ctx, m); err != nil {
		t.Fatalf("EnsureDest: %v", err)
	}
	fi := unwrap.Value(os.Stat(m.Dst))
	testutil.AssertEqual(t, fi.IsDir(), true)

	// Already existing is not an error.
	if err := EnsureDest(ctx, m); err != nil {
		t.Fatalf("EnsureDest on existing directory: %v", err)
	}

	// Missing intermediate directories are an error: creation is
	// deliberately non-recursive.
	deep := Mapping{Src: "src", Dst: filepath.Join(root, "missing", "out")}
	if err := EnsureDest(ctx, deep); err == nil {
		t.Fatal("want an error when intermediate directories are missing")
	}
}

func TestMatch(t *testing.T) {
	src := t.TempDir()
	mkdirs(t, src, "sub.go") // a directory whose name carries the suffix
	touch(t, src, "a.go", "b.go", ".hidden.go", "c.txt", "d.go.bak")

	got, found, err := Match(Mapping{Src: src, Dst: "out"}, "go")
	if err != nil {
		t.Fatalf("Match: %v", err)
	}
	testutil.AssertEqual(t, got, []string{"a.go", "b.go"})
	testutil.AssertEqual(t, found, true)
}

func TestMatchNoFiles(t *testing.T) {
	src := t.TempDir()
	touch(t, src, "a.txt")

	got, found, err := Match(Mapping{Src: src, Dst: "out"}, "go")
	if err != nil {
		t.Fatalf("Match: %v", err)
	}
	testutil.AssertEqual(t, len(got), 0)
	testutil.AssertEqual(t, found, false)
}

func TestMatchLiteralSuffix(t *testing.T) {
	// An extension may contain pattern metacharacters like '['; they must
	// match literally instead of failing as a malformed pattern.
	src := t.TempDir()
	touch(t, src, "x.c[", "y.c")

	got, found, err := Match(Mapping{Src: src, Dst: "out"}, "c[")
	if err != nil {
		t.Fatalf("Match: %v", err)
	}
	testutil.AssertEqual(t, got, []string{"x.c["})
	testutil.AssertEqual(t, found, true)
}

func TestMatchOnlyFilteredEntries(t *testing.T) {
	// Hidden files and directories carrying the suffix yield no names, but
	// the suffix still counts as found.
	src := t.TempDir()
	mkdirs(t, src, "sub.go")
	touch(t, src, ".hidden.go")

	got, found, err := Match(Mapping{Src: src, Dst: "out"}, "go")
	if err != nil {
		t.Fatalf("Match: %v", err)
	}
	testutil.AssertEqual(t, len(got), 0)
	testutil.AssertEqual(t, found, true)
}

func TestMatchListError(t *testing.T) {
	if _, _, err := Match(Mapping{Src: "does-not-exist", Dst: "out"}, "go"); err == nil {
		t.Fatal("want an error for an unlistable source directory")
	}
}

func TestPattern(t *testing.T) {
	testutil.AssertEqual(t, Pattern(Mapping{Src: "src"}, "go"), filepath.FromSlash("src/*.go"))
	testutil.AssertEqual(t, Pattern(Mapping{}, "go"), "*.go")
}
