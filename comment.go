// Copyright 2026 The Feeder Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package feeder

import "strings"

// stripComments removes the comments from text. A comment starts with an
// unescaped '#' and ends at the end of the line, the line terminator is
// kept. An escaped '#' is replaced with '#' while an escaped backslash is
// left escaped.
func stripComments(text string) string {
	if strings.IndexByte(text, '#') == -1 {
		return text
	}
	var b strings.Builder
	b.Grow(len(text))
	for i := 0; i < len(text); i++ {
		c := text[i]
		switch c {
		case '\\':
			if i+1 < len(text) {
				switch text[i+1] {
				case '#':
					b.WriteByte('#')
					i++
					continue
				case '\\':
					b.WriteString(`\\`)
					i++
					continue
				}
			}
		case '#':
			n := strings.IndexByte(text[i:], '\n')
			if n == -1 {
				return b.String()
			}
			i += n
			if n > 0 && text[i-1] == '\r' {
				b.WriteByte('\r')
			}
			b.WriteByte('\n')
			continue
		}
		b.WriteByte(c)
	}
	return b.String()
}
