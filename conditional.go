// Copyright 2026 The Feeder Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package feeder

import "strings"

// A condition is a conditional construct.
type condition struct {
	keyword string
	holds   func(params []Parameter, name string) bool
}

// conditions are resolved in this order, each one over the whole text.
var conditions = []condition{
	{"ifSet", isSet},
	{"ifNotSet", isNotSet},
	{"if", isTrue},
}

// isSet reports whether a parameter with the given name exists.
func isSet(params []Parameter, name string) bool {
	for _, p := range params {
		if p.Name == name {
			return true
		}
	}
	return false
}

func isNotSet(params []Parameter, name string) bool {
	return !isSet(params, name)
}

// isTrue reports whether the first parameter with the given name exists and
// is the boolean true.
func isTrue(params []Parameter, name string) bool {
	for _, p := range params {
		if p.Name == name {
			return p.Value.Bool()
		}
	}
	return false
}

// resolveConditionals replaces every occurrence of the construct c in text
// with its chosen branch, fed. Malformed constructs are left as they are.
func (l *level) resolveConditionals(text string, c condition) (string, error) {
	return l.scan(text, func(s string, i int) (string, int, bool, error) {
		j := i + 1 + len(c.keyword)
		if j >= len(s) || s[j] != '(' || !strings.HasPrefix(s[i+1:], c.keyword) {
			return "", 0, false, nil
		}
		name, then, els, next, ok := parseCondition(s, j+1)
		if !ok {
			return "", 0, false, nil
		}
		branch := els
		if c.holds(l.params, name) {
			branch = then
		}
		repl, err := l.feedBranch(branch)
		return repl, next, true, err
	})
}

// isConstruct reports whether the indicator at s[i] starts a conditional
// construct, well-formed or not, at this level or nested in parenthesized
// text.
func (l *level) isConstruct(s string, i int) bool {
	for _, c := range conditions {
		j := i + 1 + len(c.keyword)
		if j < len(s) && strings.HasPrefix(s[i+1:], c.keyword) && (s[j] == '(' || l.nested(s, j)) {
			return true
		}
	}
	return false
}

// nested reports whether s[j] starts a masked nested parenthesis.
func (l *level) nested(s string, j int) bool {
	return strings.HasPrefix(s[j:], l.nesting.tokens['('])
}
