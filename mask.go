// Copyright 2026 The Feeder Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package feeder

import (
	"strings"

	"github.com/google/uuid"
)

// A mask hides characters behind tokens that do not occur in the text they
// are generated for. Tokens are made of private use characters and a random
// UUID, so they contain no character with a meaning in a template.
type mask struct {
	tokens  [256]string
	hide    *strings.Replacer
	restore *strings.Replacer
}

// Delimiters of a token, two characters of the Unicode private use area.
const (
	tokenStart = "\ue000"
	tokenEnd   = "\ue001"
)

// newMask returns a new mask for the characters in chars with tokens that do
// not occur in text.
func newMask(text string, chars string) *mask {
	m := &mask{}
	pairs := make([]string, 0, 2*len(chars))
	hide := make([]string, 0, 2*len(chars))
	for i := 0; i < len(chars); i++ {
		token := newToken(text, pairs)
		m.tokens[chars[i]] = token
		pairs = append(pairs, token, chars[i:i+1])
		hide = append(hide, chars[i:i+1], token)
	}
	m.hide = strings.NewReplacer(hide...)
	m.restore = strings.NewReplacer(pairs...)
	return m
}

// newToken returns a token that does not occur in text and is not one of
// the tokens in pairs.
func newToken(text string, pairs []string) string {
	for {
		token := tokenStart + uuid.NewString() + tokenEnd
		if strings.Contains(text, token) {
			continue
		}
		unique := true
		for i := 0; i < len(pairs); i += 2 {
			if pairs[i] == token {
				unique = false
				break
			}
		}
		if unique {
			return token
		}
	}
}

// unmask replaces every token in text with its character.
func (m *mask) unmask(text string) string {
	if strings.Index(text, tokenStart) == -1 {
		return text
	}
	return m.restore.Replace(text)
}

// literal replaces every character of text masked by m with its token, so
// that no part of text is parsed until it is unmasked.
func (m *mask) literal(text string) string {
	return m.hide.Replace(text)
}

// escapeChars returns the characters that can be escaped with a backslash
// when the indicator is indicator. The comment character is handled when
// the comments are stripped.
func escapeChars(indicator byte) string {
	return `\()";` + string(indicator)
}

// nestingChars returns the characters that are hidden by the nesting guard.
func nestingChars(indicator byte) string {
	return `()";` + string(indicator)
}

// escape replaces every character of text escaped with a backslash, and
// masked by m, with its token. Escapes are read from left to right, so an
// escaped backslash never escapes the character that follows it.
func (m *mask) escape(text string) string {
	if strings.IndexByte(text, '\\') == -1 {
		return text
	}
	var b strings.Builder
	b.Grow(len(text))
	last := 0
	for i := 0; i < len(text)-1; i++ {
		if text[i] != '\\' {
			continue
		}
		token := m.tokens[text[i+1]]
		if token == "" {
			continue
		}
		b.WriteString(text[last:i])
		b.WriteString(token)
		i++
		last = i + 1
	}
	b.WriteString(text[last:])
	return b.String()
}

// guard replaces the parentheses, and the indicator, double quote and
// semicolon characters, that are nested at depth two or more with their
// tokens. Only the outer parentheses of a construct, and the characters
// between them, remain visible to the parsing of text.
func (m *mask) guard(text string, indicator byte) string {
	var b strings.Builder
	b.Grow(len(text))
	depth := 0
	last := 0
	for i := 0; i < len(text); i++ {
		c := text[i]
		switch c {
		case '(':
			depth++
			if depth < 2 {
				continue
			}
		case ')':
			if depth < 2 {
				if depth > 0 {
					depth--
				}
				continue
			}
			depth--
		case indicator, '"', ';':
			if depth < 2 {
				continue
			}
		default:
			continue
		}
		b.WriteString(text[last:i])
		b.WriteString(m.tokens[c])
		last = i + 1
	}
	if last == 0 {
		return text
	}
	b.WriteString(text[last:])
	return b.String()
}
