// Copyright 2026 The Feeder Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package feeder

import "strings"

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f' || c == '\v'
}

// skipSpaces returns the index of the first byte of s, starting from i, that
// is not a white space.
func skipSpaces(s string, i int) int {
	for i < len(s) && isSpace(s[i]) {
		i++
	}
	return i
}

// parseBranch parses a branch that starts at s[i] and is terminated by the
// byte end. A branch is optionally enclosed in double quotes, surrounding
// white space is not part of it. An unquoted branch cannot contain double
// quotes or parentheses, and it can contain semicolons only if semicolons is
// true.
//
// It returns the branch, without the enclosing quotes, and the index of the
// byte after end. ok is false if there is no valid branch at s[i].
func parseBranch(s string, i int, end byte, semicolons bool) (branch string, next int, ok bool) {
	i = skipSpaces(s, i)
	if i < len(s) && s[i] == '"' {
		j := strings.IndexByte(s[i+1:], '"')
		if j == -1 {
			return "", 0, false
		}
		branch = s[i+1 : i+1+j]
		k := skipSpaces(s, i+j+2)
		if k == len(s) || s[k] != end {
			return "", 0, false
		}
		return branch, k + 1, true
	}
	j := i
	for ; j < len(s) && s[j] != end; j++ {
		switch s[j] {
		case '"', '(', ')':
			return "", 0, false
		case ';':
			if !semicolons {
				return "", 0, false
			}
		}
	}
	if j == len(s) {
		return "", 0, false
	}
	k := j
	for k > i && isSpace(s[k-1]) {
		k--
	}
	return s[i:k], j + 1, true
}

// parseArguments parses n branches separated by semicolons and terminated
// by a closing parenthesis. s[i] is the byte after the opening parenthesis.
// It returns the branches and the index after the closing parenthesis.
//
// A single unquoted argument can contain semicolons.
func parseArguments(s string, i, n int) (args []string, next int, ok bool) {
	args = make([]string, n)
	for k := 0; k < n; k++ {
		end := byte(';')
		if k == n-1 {
			end = ')'
		}
		args[k], i, ok = parseBranch(s, i, end, n == 1)
		if !ok {
			return nil, 0, false
		}
	}
	return args, i, true
}

// parseCondition parses the arguments of a conditional construct, a
// parameter name followed by two branches. s[i] is the byte after the
// opening parenthesis.
func parseCondition(s string, i int) (name, then, els string, next int, ok bool) {
	i = skipSpaces(s, i)
	j := i
	for j < len(s) && isNameChar(s[j]) {
		j++
	}
	if j == i {
		return "", "", "", 0, false
	}
	name = s[i:j]
	j = skipSpaces(s, j)
	if j == len(s) || s[j] != ';' {
		return "", "", "", 0, false
	}
	args, next, ok := parseArguments(s, j+1, 2)
	if !ok {
		return "", "", "", 0, false
	}
	return name, args[0], args[1], next, true
}

// closingParen returns the index of the parenthesis that closes the one at
// s[i], or -1 if it is not closed. Nested parentheses are masked, so it is
// the first closing parenthesis that follows.
func closingParen(s string, i int) int {
	j := strings.IndexByte(s[i+1:], ')')
	if j == -1 {
		return -1
	}
	return i + 1 + j
}
