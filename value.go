// Copyright 2026 The Feeder Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package feeder

import "strconv"

// A Kind represents the kind of a parameter value.
type Kind int

const (
	String Kind = iota
	Integer
	Boolean
	Function
)

var kindNames = [...]string{"string", "integer", "boolean", "converter"}

// String returns the name of the kind.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
	return kindNames[k]
}

// Converter is a function that converts the argument of a placeholder. It
// receives the argument already fed and with escapes resolved.
type Converter func(arg string) (string, error)

// Value is the value of a parameter. The zero Value is the empty string.
type Value struct {
	kind Kind
	s    string
	n    int
	b    bool
	conv Converter
}

// StringValue returns a string value.
func StringValue(s string) Value {
	return Value{kind: String, s: s}
}

// IntValue returns an integer value.
func IntValue(n int) Value {
	return Value{kind: Integer, n: n}
}

// BoolValue returns a boolean value.
func BoolValue(b bool) Value {
	return Value{kind: Boolean, b: b}
}

// ConverterValue returns a converter value. It panics if conv is nil.
func ConverterValue(conv Converter) Value {
	if conv == nil {
		panic("feeder: nil converter")
	}
	return Value{kind: Function, conv: conv}
}

// Kind returns the kind of v.
func (v Value) Kind() Kind {
	return v.kind
}

// Bool reports whether v is the boolean true.
func (v Value) Bool() bool {
	return v.kind == Boolean && v.b
}

// Converter returns the converter of v, or nil if v is not a converter.
func (v Value) Converter() Converter {
	return v.conv
}

// String returns the textual form of v as it is written by a bare
// placeholder. It returns the empty string for a converter.
func (v Value) String() string {
	switch v.kind {
	case Integer:
		return strconv.Itoa(v.n)
	case Boolean:
		return strconv.FormatBool(v.b)
	case Function:
		return ""
	}
	return v.s
}

// Parameter is a named value. Names may repeat in a parameter list.
type Parameter struct {
	Name  string
	Value Value
}
