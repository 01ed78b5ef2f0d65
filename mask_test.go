// Copyright 2026 The Feeder Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package feeder

import (
	"strings"
	"testing"
)

// expand replaces the markers in s with the tokens of m: '{' and '}' stand
// for the open and close parenthesis, 'I' for the indicator, 'Q' for the
// double quote, 'S' for the semicolon and 'B' for the backslash.
func expand(m *mask, s string, indicator byte) string {
	return strings.NewReplacer(
		"{", m.tokens['('],
		"}", m.tokens[')'],
		"I", m.tokens[indicator],
		"Q", m.tokens['"'],
		"S", m.tokens[';'],
		"B", m.tokens['\\'],
	).Replace(s)
}

var guardTests = []struct {
	src      string
	expected string
}{
	{``, ``},
	{`abc`, `abc`},
	{`(a)`, `(a)`},
	{`$a("b";"c")`, `$a("b";"c")`},
	{`((a))`, `({a})`},
	{`test string ($some(internal(parantheses)are)there) test (other(paranthesis(that(should)be)escaped)correctly) test`,
		`test string ($some{internal{parantheses}are}there) test (other{paranthesis{that{should}be}escaped}correctly) test`},
	{`$b("$c("yes";"no")";"x")`, `$b("$c{QyesQSQnoQ}";"x")`},
	{`$b("$c("$d(1;2)";"no")";"x")`, `$b("$c{QId{1S2}QSQnoQ}";"x")`},
	{`(a(b)c)d)e(f(g)h)`, `(a{b}c)d)e(f{g}h)`},
	{`((`, `({`},
	{`))(`, `))(`},
}

func TestGuard(t *testing.T) {
	for _, test := range guardTests {
		m := newMask(test.src, nestingChars('$'))
		expected := expand(m, test.expected, '$')
		got := m.guard(test.src, '$')
		if got != expected {
			t.Errorf("src: %q: expecting %q, got %q", test.src, expected, got)
		}
		if unmasked := m.unmask(got); unmasked != test.src {
			t.Errorf("src: %q: unmask returned %q", test.src, unmasked)
		}
	}
}

func TestGuardIndicator(t *testing.T) {
	src := `%a("%b(%c)";"x") $d(($e))`
	m := newMask(src, nestingChars('%'))
	expected := strings.NewReplacer("{", m.tokens['('], "}", m.tokens[')'], "I", m.tokens['%']).Replace(
		`%a("%b{Ic}";"x") $d({$e})`)
	got := m.guard(src, '%')
	if got != expected {
		t.Fatalf("expecting %q, got %q", expected, got)
	}
}

var escapeTests = []struct {
	src      string
	expected string
}{
	{``, ``},
	{`a`, `a`},
	{`\$`, `I`},
	{`\$a. $a`, `Ia. $a`},
	{`\(\)\;\"`, `{}SQ`},
	{`\\`, `B`},
	{`\\(`, `B(`},
	{`\\\(`, `B{`},
	{`\a`, `\a`},
	{`\#`, `\#`},
	{`a\`, `a\`},
	{`\%`, `\%`},
}

func TestEscape(t *testing.T) {
	for _, test := range escapeTests {
		m := newMask(test.src, escapeChars('$'))
		expected := expand(m, test.expected, '$')
		got := m.escape(test.src)
		if got != expected {
			t.Errorf("src: %q: expecting %q, got %q", test.src, expected, got)
		}
	}
}

func TestNewMaskUniqueTokens(t *testing.T) {
	m := newMask("", escapeChars('$'))
	seen := map[string]bool{}
	for _, c := range []byte(escapeChars('$')) {
		token := m.tokens[c]
		if token == "" {
			t.Fatalf("missing token for %q", c)
		}
		if strings.ContainsAny(token, `\()";$#`) {
			t.Fatalf("token %q contains a template character", token)
		}
		if seen[token] {
			t.Fatalf("duplicated token %q", token)
		}
		seen[token] = true
	}
	other := newMask("", escapeChars('$'))
	if other.tokens['('] == m.tokens['('] {
		t.Fatal("expecting fresh tokens for every mask")
	}
}

func TestLiteral(t *testing.T) {
	m := newMask("", escapeChars('$'))
	src := `a $b (c) "d"; \e`
	got := m.literal(src)
	if strings.ContainsAny(got, `$()";\`) {
		t.Fatalf("expecting no template characters, got %q", got)
	}
	if s := m.unmask(got); s != src {
		t.Fatalf("expecting %q, got %q", src, s)
	}
}
