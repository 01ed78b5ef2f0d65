// Copyright 2026 The Feeder Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"flag"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/open2b/feeder"
	"github.com/open2b/feeder/internal/paramfile"
)

// constFlag is the value of the repeatable -const flag.
type constFlag []string

func (c *constFlag) String() string {
	return strings.Join(*c, " ")
}

func (c *constFlag) Set(s string) error {
	*c = append(*c, s)
	return nil
}

// feedFlags are the flags shared by the commands that feed templates.
type feedFlags struct {
	file      string
	consts    constFlag
	indicator string
	maxDepth  int
}

func (ff *feedFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&ff.file, "p", "", "parameter file")
	fs.Var(&ff.consts, "const", "parameters in the form name=value")
	fs.StringVar(&ff.indicator, "i", "$", "indicator character")
	fs.IntVar(&ff.maxDepth, "max-depth", 0, "maximum recursion depth")
}

// params returns the parameters of the parameter file followed by the
// constants.
func (ff *feedFlags) params() ([]feeder.Parameter, error) {
	var params []feeder.Parameter
	if ff.file != "" {
		var err error
		params, err = paramfile.Load(ff.file)
		if err != nil {
			return nil, err
		}
	}
	for _, c := range ff.consts {
		consts, err := paramfile.ParseConstants(c)
		if err != nil {
			return nil, fmt.Errorf("invalid -const flag: %s", err)
		}
		params = append(params, consts...)
	}
	return params, nil
}

// newFeeder returns a feeder with the indicator and the maximum depth of the
// flags.
func (ff *feedFlags) newFeeder() (*feeder.Feeder, error) {
	if ff.maxDepth < 0 {
		return nil, fmt.Errorf("invalid -max-depth flag: %d", ff.maxDepth)
	}
	if utf8.RuneCountInString(ff.indicator) != 1 {
		return nil, fmt.Errorf("invalid -i flag %q: indicator must be a single character", ff.indicator)
	}
	r, _ := utf8.DecodeRuneInString(ff.indicator)
	return feeder.New(&feeder.Options{Indicator: r, MaxDepth: ff.maxDepth})
}
