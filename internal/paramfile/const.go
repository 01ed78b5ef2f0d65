// Copyright 2026 The Feeder Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package paramfile

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/open2b/feeder"
)

// ParseConstants parses constants in the form
//
//	name1=value1 name2=value2 ...
//
// and returns them as parameters. A value can be true or false, an integer,
// a floating-point number, a double-quoted string with Go escapes or a
// back-quoted raw string. Floating-point numbers are strings with the same
// text.
func ParseConstants(s string) ([]feeder.Parameter, error) {
	var params []feeder.Parameter
	for {
		s = strings.TrimLeft(s, " \t")
		if s == "" {
			return params, nil
		}
		eq := strings.IndexByte(s, '=')
		if eq == -1 {
			return nil, fmt.Errorf("missing '=' after %q", s)
		}
		name := strings.TrimRight(s[:eq], " \t")
		err := feeder.ValidateName(name)
		if err != nil {
			return nil, err
		}
		s = strings.TrimLeft(s[eq+1:], " \t")
		var value feeder.Value
		value, s, err = parseConstValue(s)
		if err != nil {
			return nil, fmt.Errorf("constant %s: %s", name, err)
		}
		if s != "" && s[0] != ' ' && s[0] != '\t' {
			return nil, fmt.Errorf("constant %s: unexpected %q after value", name, s)
		}
		params = append(params, feeder.Parameter{Name: name, Value: value})
	}
}

// parseConstValue parses the value at the start of s and returns it with
// the rest of s.
func parseConstValue(s string) (feeder.Value, string, error) {
	if s == "" {
		return feeder.Value{}, "", errors.New("missing value")
	}
	switch s[0] {
	case '"':
		i := 1
		for ; i < len(s) && s[i] != '"'; i++ {
			if s[i] == '\\' {
				i++
			}
		}
		if i >= len(s) {
			return feeder.Value{}, "", errors.New("string not terminated")
		}
		v, err := strconv.Unquote(s[:i+1])
		if err != nil {
			return feeder.Value{}, "", fmt.Errorf("invalid string %s", s[:i+1])
		}
		return feeder.StringValue(v), s[i+1:], nil
	case '`':
		i := strings.IndexByte(s[1:], '`')
		if i == -1 {
			return feeder.Value{}, "", errors.New("raw string not terminated")
		}
		return feeder.StringValue(s[1 : i+1]), s[i+2:], nil
	}
	end := strings.IndexAny(s, " \t")
	if end == -1 {
		end = len(s)
	}
	lit := s[:end]
	switch lit {
	case "true":
		return feeder.BoolValue(true), s[end:], nil
	case "false":
		return feeder.BoolValue(false), s[end:], nil
	}
	if n, err := strconv.Atoi(lit); err == nil {
		return feeder.IntValue(n), s[end:], nil
	}
	if _, err := strconv.ParseFloat(lit, 64); err == nil {
		return feeder.StringValue(lit), s[end:], nil
	}
	return feeder.Value{}, "", fmt.Errorf("invalid value %s", lit)
}
