// Copyright 2026 The Feeder Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package feeder

import (
	"strings"
)

// DefaultMaxDepth is the maximum recursion depth used when Options.MaxDepth
// is zero.
const DefaultMaxDepth = 64

// Indicators contains the characters that can be used as indicator.
const Indicators = "$%@&~^!*"

// Options contains the options of a Feeder.
type Options struct {

	// Indicator is the character that starts a placeholder. If zero, it is
	// '$'. It must be one of the characters in Indicators.
	Indicator rune

	// MaxDepth is the maximum depth of nested branches, converter arguments
	// and parenthesized text. When it is exceeded Feed returns a
	// *RecursionLimitError. If zero, DefaultMaxDepth is used.
	//
	// A parameter whose value contains, in parentheses, a placeholder that
	// refers to the parameter itself is expanded until the limit is reached.
	MaxDepth int
}

// Feeder feeds parameters into templates. A Feeder has no state other than
// its options and can be used concurrently by multiple goroutines.
type Feeder struct {
	indicator byte
	maxDepth  int
}

// New returns a new Feeder with the given options. options can be nil.
//
// If the indicator is not allowed, it returns an *IndicatorError.
func New(options *Options) (*Feeder, error) {
	f := &Feeder{indicator: '$', maxDepth: DefaultMaxDepth}
	if options != nil {
		if r := options.Indicator; r != 0 {
			if r >= 0x80 || strings.IndexRune(Indicators, r) == -1 {
				return nil, &IndicatorError{Indicator: r}
			}
			f.indicator = byte(r)
		}
		if options.MaxDepth > 0 {
			f.maxDepth = options.MaxDepth
		}
	}
	return f, nil
}

// Indicator returns the indicator character of f.
func (f *Feeder) Indicator() rune {
	return rune(f.indicator)
}

// MaxDepth returns the maximum recursion depth of f.
func (f *Feeder) MaxDepth() int {
	return f.maxDepth
}

// Feed feeds params into template and returns the resulting text.
//
// Before anything else is done the parameter names are validated, if a name
// is not valid Feed returns a *ForbiddenCharacterError or a
// *ForbiddenKeyError. If a converter fails it returns a *ConversionError and
// if the recursion depth is exceeded a *RecursionLimitError. Only these
// errors are returned, and when an error is returned no text is.
func (f *Feeder) Feed(params []Parameter, template string) (string, error) {
	text := stripComments(template)
	err := validateParameters(params)
	if err != nil {
		return "", err
	}
	fd := &feeding{
		indicator: f.indicator,
		maxDepth:  f.maxDepth,
		params:    params,
		escapes:   newMask(text, escapeChars(f.indicator)),
	}
	text = fd.escapes.escape(text)
	text, err = fd.feed(text, 0)
	if err != nil {
		return "", err
	}
	return fd.escapes.unmask(text), nil
}

// feeding holds the state of a single Feed call.
type feeding struct {
	indicator byte
	maxDepth  int
	params    []Parameter
	escapes   *mask // escapes of the template, restored at the end
}

// feed feeds the parameters into text at the given recursion depth.
//
// text has no comments and its escapes are masked. Each call hides the
// nested parentheses of its own text with its own tokens, and restores them
// before returning or before passing part of the text to a nested call.
func (fd *feeding) feed(text string, depth int) (string, error) {
	if strings.IndexByte(text, fd.indicator) == -1 {
		return text, nil
	}
	if depth > fd.maxDepth {
		return "", &RecursionLimitError{Depth: fd.maxDepth}
	}
	l := &level{
		feeding: fd,
		depth:   depth,
		nesting: newMask(text, nestingChars(fd.indicator)),
	}
	text = l.nesting.guard(text, fd.indicator)
	var err error
	for _, c := range conditions {
		text, err = l.resolveConditionals(text, c)
		if err != nil {
			return "", err
		}
	}
	for _, p := range fd.params {
		text, err = l.substitute(text, p)
		if err != nil {
			return "", err
		}
	}
	text, err = l.resolveGroups(text)
	if err != nil {
		return "", err
	}
	return l.nesting.unmask(text), nil
}

// level is a recursion level of a feeding.
type level struct {
	*feeding
	depth   int
	nesting *mask
}

// feedBranch feeds a branch, an argument or a parenthesized text of the
// level in a nested level.
func (l *level) feedBranch(text string) (string, error) {
	return l.feed(l.nesting.unmask(text), l.depth+1)
}

// replacer is called by scan for every placeholder. It returns the text
// that replaces the placeholder starting at s[i] and the index of the byte
// that follows the replaced text. ok is false if s[i] does not start a
// placeholder to replace.
type replacer func(s string, i int) (repl string, next int, ok bool, err error)

// scan scans text and calls replace for every indicator, also those in
// parenthesized text. Nested parentheses are masked, so only the indicators
// of the first level of parenthesized text are visible.
func (l *level) scan(text string, replace replacer) (string, error) {
	var b strings.Builder
	replaced := false
	last := 0
	for i := 0; i < len(text); {
		if text[i] != l.indicator {
			i++
			continue
		}
		repl, next, ok, err := replace(text, i)
		if err != nil {
			return "", err
		}
		if !ok {
			i++
			continue
		}
		if !replaced {
			b.Grow(len(text))
			replaced = true
		}
		b.WriteString(text[last:i])
		b.WriteString(repl)
		i, last = next, next
	}
	if !replaced {
		return text, nil
	}
	b.WriteString(text[last:])
	return b.String(), nil
}
