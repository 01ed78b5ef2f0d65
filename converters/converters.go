// Copyright 2026 The Feeder Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package converters provides converters that can be used as values of
// converter parameters.
//
// For example, to convert the argument of an "upper" placeholder to upper
// case
//
//	params := []feeder.Parameter{
//	    {Name: "upper", Value: feeder.ConverterValue(converters.Upper)},
//	}
//	out, err := f.Feed(params, `Hello $upper("$name")`)
//
// or, using the converter name
//
//	p, err := converters.Parameter("upper")
//
// The converters, by name, are
//
//	base64      Base64
//	capitalize  Capitalize
//	hex         Hex
//	html        HTMLEscape
//	kebab       Kebab
//	lower       Lower
//	markdown    Markdown
//	md5         Md5
//	query       QueryEscape
//	sha256      Sha256
//	title       Title
//	trim        Trim
//	unbase64    Unbase64
//	upper       Upper
package converters

import (
	"crypto/md5"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"html"
	"sort"
	"strings"

	"github.com/open2b/feeder"
)

var converters = map[string]feeder.Converter{
	"base64":     Base64,
	"capitalize": Capitalize,
	"hex":        Hex,
	"html":       HTMLEscape,
	"kebab":      Kebab,
	"lower":      Lower,
	"markdown":   Markdown,
	"md5":        Md5,
	"query":      QueryEscape,
	"sha256":     Sha256,
	"title":      Title,
	"trim":       Trim,
	"unbase64":   Unbase64,
	"upper":      Upper,
}

// Lookup returns the converter with the given name.
func Lookup(name string) (feeder.Converter, bool) {
	conv, ok := converters[name]
	return conv, ok
}

// Names returns the names of the converters, sorted.
func Names() []string {
	names := make([]string, 0, len(converters))
	for name := range converters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Parameter returns a parameter with the given name and as value the
// converter with the same name. It returns an error if there is no converter
// with this name.
func Parameter(name string) (feeder.Parameter, error) {
	conv, ok := converters[name]
	if !ok {
		return feeder.Parameter{}, fmt.Errorf("converters: unknown converter %q", name)
	}
	return feeder.Parameter{Name: name, Value: feeder.ConverterValue(conv)}, nil
}

// Base64 returns the base64 encoding of s.
func Base64(s string) (string, error) {
	if s == "" {
		return s, nil
	}
	return base64.StdEncoding.EncodeToString([]byte(s)), nil
}

// Unbase64 decodes the base64 encoded string s. It returns an error if s is
// not valid base64.
func Unbase64(s string) (string, error) {
	b, err := base64.StdEncoding.DecodeString(strings.TrimSpace(s))
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Hex returns the hexadecimal encoding of s.
func Hex(s string) (string, error) {
	if s == "" {
		return s, nil
	}
	return hex.EncodeToString([]byte(s)), nil
}

// HTMLEscape escapes s, replacing the characters <, >, &, " and '.
func HTMLEscape(s string) (string, error) {
	return html.EscapeString(s), nil
}

// Md5 returns the MD5 checksum of s as an hexadecimal encoded string.
func Md5(s string) (string, error) {
	h := md5.Sum([]byte(s))
	return hex.EncodeToString(h[:]), nil
}

// Sha256 returns the SHA256 checksum of s as an hexadecimal encoded string.
func Sha256(s string) (string, error) {
	h := sha256.Sum256([]byte(s))
	return hex.EncodeToString(h[:]), nil
}

// QueryEscape escapes s so it can be safely placed inside a URL query.
func QueryEscape(s string) (string, error) {
	const hexchars = "0123456789abcdef"
	last := 0
	numHex := 0
	for i := 0; i < len(s); i++ {
		if isUnreserved(s[i]) {
			continue
		}
		last = i + 1
		numHex++
	}
	if numHex == 0 {
		return s, nil
	}
	j := 0
	b := make([]byte, len(s)+2*numHex)
	for i := 0; i < last; i++ {
		c := s[i]
		if isUnreserved(c) {
			b[j] = c
		} else {
			b[j] = '%'
			j++
			b[j] = hexchars[c>>4]
			j++
			b[j] = hexchars[c&0xF]
		}
		j++
	}
	if j != len(b) {
		copy(b[j:], s[last:])
	}
	return string(b), nil
}

func isUnreserved(c byte) bool {
	return '0' <= c && c <= '9' || 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' ||
		c == '-' || c == '.' || c == '_'
}

// Trim returns s without leading and trailing white space.
func Trim(s string) (string, error) {
	return strings.TrimSpace(s), nil
}
