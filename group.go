// Copyright 2026 The Feeder Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package feeder

import "strings"

// resolveGroups feeds the content of every parenthesized text that is left
// in text. The parentheses are kept.
func (l *level) resolveGroups(text string) (string, error) {
	var b strings.Builder
	replaced := false
	last := 0
	for i := 0; i < len(text); i++ {
		if text[i] != '(' {
			continue
		}
		j := closingParen(text, i)
		if j == -1 {
			break
		}
		content, err := l.feedBranch(text[i+1 : j])
		if err != nil {
			return "", err
		}
		if !replaced {
			b.Grow(len(text))
			replaced = true
		}
		b.WriteString(text[last : i+1])
		b.WriteString(content)
		last = j
		i = j
	}
	if !replaced {
		return text, nil
	}
	b.WriteString(text[last:])
	return b.String(), nil
}
