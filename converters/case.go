// Copyright 2026 The Feeder Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package converters

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Upper returns s with all Unicode letters mapped to their upper case.
func Upper(s string) (string, error) {
	return cases.Upper(language.Und).String(s), nil
}

// Lower returns s with all Unicode letters mapped to their lower case.
func Lower(s string) (string, error) {
	return cases.Lower(language.Und).String(s), nil
}

// Title returns s with the first letter of each word in title case and the
// other letters in lower case.
func Title(s string) (string, error) {
	return cases.Title(language.Und).String(s), nil
}

// Capitalize returns s with the first non-separator in upper case. The rest
// of s is left as it is.
func Capitalize(s string) (string, error) {
	for i, r := range s {
		if isSeparator(r) {
			continue
		}
		if unicode.IsUpper(r) {
			return s, nil
		}
		u := unicode.ToUpper(r)
		var b strings.Builder
		b.Grow(len(s))
		b.WriteString(s[:i])
		b.WriteRune(u)
		b.WriteString(s[i+utf8.RuneLen(r):])
		return b.String(), nil
	}
	return s, nil
}

// Kebab returns s in kebab case form.
func Kebab(s string) (string, error) {
	var b strings.Builder
	b.Grow(len(s) + 2)
	noDash := false // the last written rune is not a dash
	runes := []rune(s)
	n := len(runes)
	for i := 0; i < n; i++ {
		r := runes[i]
		switch {
		case unicode.IsLower(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			noDash = true
		case unicode.IsUpper(r):
			if noDash && (unicode.IsLower(runes[i-1]) || i+1 < n && unicode.IsLower(runes[i+1])) {
				b.WriteByte('-')
			}
			b.WriteRune(unicode.ToLower(r))
			noDash = true
		default:
			if noDash && i+1 < n {
				b.WriteByte('-')
				noDash = false
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-"), nil
}

// isSeparator reports whether r could mark a word boundary.
func isSeparator(r rune) bool {
	if r <= 0x7F {
		switch {
		case '0' <= r && r <= '9':
			return false
		case 'a' <= r && r <= 'z':
			return false
		case 'A' <= r && r <= 'Z':
			return false
		case r == '_':
			return false
		}
		return true
	}
	if unicode.IsLetter(r) || unicode.IsDigit(r) {
		return false
	}
	return unicode.IsSpace(r)
}
