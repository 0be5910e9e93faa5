// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package version provides information about the currently running binary.
package version

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime/debug"
	"strings"

	"go.astrophena.name/copynotice/internal/syncx"
)

// CmdName returns the base name of the currently running binary.
func CmdName() string {
	exe, err := os.Executable()
	if err != nil {
		return filepath.Base(os.Args[0])
	}
	return strings.TrimSuffix(filepath.Base(exe), ".exe")
}

var info syncx.Lazy[string]

// Version returns a human-readable report of the binary version, derived
// from the build info embedded by the Go toolchain.
func Version() string {
	return info.Get(func() string {
		var sb strings.Builder
		fmt.Fprintf(&sb, "%s %s\n", CmdName(), buildVersion())
		return sb.String()
	})
}

func buildVersion() string {
	bi, ok := debug.ReadBuildInfo()
	if !ok || bi.Main.Version == "" || bi.Main.Version == "(devel)" {
		var rev, modified string
		if ok {
			for _, s := range bi.Settings {
				switch s.Key {
				case "vcs.revision":
					rev = s.Value
				case "vcs.modified":
					if s.Value == "true" {
						modified = " (modified)"
					}
				}
			}
		}
		if rev != "" {
			return "git-" + rev[:min(len(rev), 12)] + modified
		}
		return "(devel)"
	}
	return bi.Main.Version
}
