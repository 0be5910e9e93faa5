// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package dirscan

import (
	"cmp"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Match returns the names of regular, non-hidden files in m.Src whose name
// ends in ".<ext>". The extension is matched as a literal suffix, never as a
// pattern, so metacharacters like '[' in an extension carry no meaning.
//
// found reports whether any directory entry carried the suffix before the
// regular/non-hidden filtering: a directory whose only suffix matches are
// hidden files or subdirectories yields no names but still counts as found.
// A failure to list the directory is an error.
func Match(m Mapping, ext string) (names []string, found bool, err error) {
	entries, err := os.ReadDir(cmp.Or(m.Src, "."))
	if err != nil {
		return nil, false, fmt.Errorf("listing directory %q: %w", m.Src, err)
	}

	suffix := "." + ext
	for _, e := range entries {
		if !strings.HasSuffix(e.Name(), suffix) {
			continue
		}
		found = true
		if e.IsDir() || hidden(e.Name()) {
			continue
		}
		names = append(names, e.Name())
	}
	return names, found, nil
}

// Pattern returns the pattern Match is equivalent to for m and ext. It is
// used for reporting only.
func Pattern(m Mapping, ext string) string {
	if m.Src == "" {
		return "*." + ext
	}
	return m.Src + string(filepath.Separator) + "*." + ext
}
