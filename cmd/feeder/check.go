// Copyright 2026 The Feeder Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/open2b/feeder"
	"github.com/open2b/feeder/converters"
)

// check executes the command:
//
//	feeder check [-p file] [-const name=value]
func check(args []string) error {

	fs := newFlagSet("check")
	var ff feedFlags
	ff.register(fs)
	verbose := fs.Bool("v", false, "log debug messages")
	err := fs.Parse(args)
	if err != nil {
		return err
	}
	if fs.NArg() > 0 {
		fs.Usage()
		return errors.New("too many arguments")
	}

	params, err := ff.params()
	if err != nil {
		return err
	}
	logger := newLogger(*verbose)
	logger.Debug("parameters loaded", "file", ff.file, "count", len(params))

	for _, w := range shadowed(params) {
		logger.Warn(w)
	}

	tw := tabwriter.NewWriter(stdout, 0, 8, 2, ' ', 0)
	for _, p := range params {
		var value string
		switch p.Value.Kind() {
		case feeder.String:
			value = strconv.Quote(p.Value.String())
		case feeder.Function:
			value = "-"
		default:
			value = p.Value.String()
		}
		_, err = fmt.Fprintf(tw, "%s\t%s\t%s\n", p.Name, p.Value.Kind(), value)
		if err != nil {
			return err
		}
	}
	return tw.Flush()
}

// shadowed returns a message for every parameter that is never fed because
// of a parameter that precedes it. A parameter is shadowed by a previous
// parameter with the same name or with a name that is a prefix of its name.
func shadowed(params []feeder.Parameter) []string {
	var msgs []string
	for j, p := range params {
		for _, prev := range params[:j] {
			if prev.Name == p.Name {
				msgs = append(msgs, fmt.Sprintf("parameter %q is duplicated, only the first one is fed", p.Name))
				break
			}
			if strings.HasPrefix(p.Name, prev.Name) {
				msgs = append(msgs, fmt.Sprintf("parameter %q is shadowed by %q that precedes it", p.Name, prev.Name))
				break
			}
		}
	}
	return msgs
}

// listConverters executes the command:
//
//	feeder converters
func listConverters(args []string) error {
	fs := newFlagSet("converters")
	err := fs.Parse(args)
	if err != nil {
		return err
	}
	for _, name := range converters.Names() {
		_, err = fmt.Fprintln(stdout, name)
		if err != nil {
			return err
		}
	}
	return nil
}
