// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package clitest provides utilities for testing command-line applications
// built with the [cli] package.
package clitest

import (
	"bytes"
	"context"
	"errors"
	"io"
	"reflect"
	"strings"
	"testing"

	"go.astrophena.name/copynotice/internal/cli"
)

// Case describes a single test case for a command-line application: the
// arguments and environment it runs with and the expectations on its outcome.
type Case[App cli.App] struct {
	// Args are the command-line arguments passed to the application.
	Args []string
	// Env is the set of environment variables visible to the application.
	Env map[string]string
	// Stdin is the application's standard input. Defaults to an empty reader.
	Stdin io.Reader
	// WantErr, if non-nil, requires the run to fail with an error matching it
	// via errors.Is.
	WantErr error
	// WantErrType, if non-nil, requires the run to fail with an error whose
	// type matches it via errors.As.
	WantErrType error
	// WantNothingPrinted requires both stdout and stderr to be empty.
	WantNothingPrinted bool
	// WantInStdout is a substring that must appear in stdout.
	WantInStdout string
	// WantInStderr is a substring that must appear in stderr.
	WantInStderr string
	// CheckFunc runs after the application with the App returned by setup,
	// for custom assertions.
	CheckFunc func(*testing.T, App)
}

// Run runs each case as a subtest. The setup function constructs a fresh App
// for every case.
func Run[App cli.App](t *testing.T, setup func(*testing.T) App, cases map[string]Case[App]) {
	t.Helper()
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			app := setup(t)

			var stdout, stderr bytes.Buffer
			stdin := tc.Stdin
			if stdin == nil {
				stdin = strings.NewReader("")
			}
			env := &cli.Env{
				Args:   tc.Args,
				Stdin:  stdin,
				Stdout: &stdout,
				Stderr: &stderr,
				Getenv: func(key string) string { return tc.Env[key] },
			}

			err := cli.Run(cli.WithEnv(context.Background(), env), app)

			switch {
			case tc.WantErr != nil:
				if !errors.Is(err, tc.WantErr) {
					t.Fatalf("want error %v, got %v", tc.WantErr, err)
				}
			case tc.WantErrType != nil:
				target := reflect.New(reflect.TypeOf(tc.WantErrType))
				if !errors.As(err, target.Interface()) {
					t.Fatalf("want error of type %T, got %v (%T)", tc.WantErrType, err, err)
				}
			case err != nil:
				t.Fatalf("unexpected error: %v", err)
			}

			if tc.WantNothingPrinted {
				if stdout.Len() > 0 {
					t.Errorf("stdout is not empty: %q", stdout.String())
				}
				if stderr.Len() > 0 {
					t.Errorf("stderr is not empty: %q", stderr.String())
				}
			}

			if tc.WantInStdout != "" && !strings.Contains(stdout.String(), tc.WantInStdout) {
				t.Errorf("stdout does not contain %q:\n%s", tc.WantInStdout, stdout.String())
			}
			if tc.WantInStderr != "" && !strings.Contains(stderr.String(), tc.WantInStderr) {
				t.Errorf("stderr does not contain %q:\n%s", tc.WantInStderr, stderr.String())
			}

			if tc.CheckFunc != nil {
				tc.CheckFunc(t, app)
			}
		})
	}
}
