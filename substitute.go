// Copyright 2026 The Feeder Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package feeder

import "strings"

// substitute replaces the placeholders of the parameter p in text.
//
// The name of p is matched as a prefix of the text following the indicator,
// except where the indicator starts a conditional construct. How the
// placeholder is replaced depends on the kind of the value:
//
//   - string and integer: the name is replaced by the textual form of the
//     value, a following parenthesized text is left as it is.
//   - boolean: if the name is followed by two branches, the placeholder and
//     the branches are replaced by the chosen branch fed, otherwise the name
//     is replaced by "true" or "false".
//   - converter: the placeholder and the argument that must follow it are
//     replaced by the result of the converter. The argument is fed before
//     it is passed to the converter, and the result is literal text. Without
//     an argument the placeholder is left as it is.
//
// A placeholder inside parenthesized text whose name is followed by nested
// parentheses is left to the feeding of the parenthesized text.
func (l *level) substitute(text string, p Parameter) (string, error) {
	return l.scan(text, func(s string, i int) (string, int, bool, error) {
		if !strings.HasPrefix(s[i+1:], p.Name) || l.isConstruct(s, i) {
			return "", 0, false, nil
		}
		j := i + 1 + len(p.Name)
		if l.nested(s, j) {
			return "", 0, false, nil
		}
		hasArgs := j < len(s) && s[j] == '('
		switch p.Value.Kind() {
		case Boolean:
			if hasArgs {
				if args, next, ok := parseArguments(s, j+1, 2); ok {
					branch := args[1]
					if p.Value.Bool() {
						branch = args[0]
					}
					repl, err := l.feedBranch(branch)
					return repl, next, true, err
				}
			}
		case Function:
			if !hasArgs {
				return "", 0, false, nil
			}
			args, next, ok := parseArguments(s, j+1, 1)
			if !ok {
				return "", 0, false, nil
			}
			repl, err := l.convert(p, args[0])
			return repl, next, true, err
		}
		return p.Value.String(), j, true, nil
	})
}

// convert feeds arg and calls the converter of p with the result, with the
// escapes restored. The characters of the converter's result that have a
// meaning in a template are masked as if they were escaped.
func (l *level) convert(p Parameter, arg string) (string, error) {
	arg, err := l.feedBranch(arg)
	if err != nil {
		return "", err
	}
	arg = l.escapes.unmask(arg)
	out, err := p.Value.Converter()(arg)
	if err != nil {
		return "", &ConversionError{Name: p.Name, Arg: arg, Err: err}
	}
	return l.escapes.literal(out), nil
}
