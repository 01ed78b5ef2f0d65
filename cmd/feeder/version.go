// Copyright 2026 The Feeder Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"runtime"
	"runtime/debug"

	"golang.org/x/mod/semver"
)

// version executes the command:
//
//	feeder version
func version(args []string) error {
	fs := newFlagSet("version")
	err := fs.Parse(args)
	if err != nil {
		return err
	}
	v := ""
	if info, ok := debug.ReadBuildInfo(); ok {
		v = info.Main.Version
	}
	_, err = fmt.Fprintf(stdout, "Feeder version %s\n", moduleVersion(v))
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(stdout, "Go version used to build Feeder: %s %s/%s\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)
	return err
}

// moduleVersion returns the canonical form of the module version v. If v is
// not a semantic version, as when Feeder is built from a working copy, it
// returns "(devel)".
func moduleVersion(v string) string {
	if !semver.IsValid(v) {
		return "(devel)"
	}
	c := semver.Canonical(v)
	if semver.Prerelease(c) != "" {
		return c + " (pre-release)"
	}
	return c
}
