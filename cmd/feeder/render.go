// Copyright 2026 The Feeder Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"io"
	"os"
	"strings"

	"github.com/natefinch/atomic"
)

// render executes the command:
//
//	feeder render [-p file] [-const name=value] [-i char] [-max-depth n] [-o file] [template]
func render(args []string) error {

	fs := newFlagSet("render")
	var ff feedFlags
	ff.register(fs)
	out := fs.String("o", "", "output file")
	err := fs.Parse(args)
	if err != nil {
		return err
	}
	if fs.NArg() > 1 {
		fs.Usage()
		return errors.New("too many arguments")
	}

	f, err := ff.newFeeder()
	if err != nil {
		return err
	}
	params, err := ff.params()
	if err != nil {
		return err
	}

	var src []byte
	if name := fs.Arg(0); name == "" || name == "-" {
		src, err = io.ReadAll(stdin)
	} else {
		src, err = os.ReadFile(name)
	}
	if err != nil {
		return err
	}

	text, err := f.Feed(params, string(src))
	if err != nil {
		return err
	}

	if *out == "" {
		_, err = io.WriteString(stdout, text)
		return err
	}
	return atomic.WriteFile(*out, strings.NewReader(text))
}
