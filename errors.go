// Copyright 2026 The Feeder Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package feeder

import (
	"strconv"
)

// ForbiddenCharacterError is returned by Feed when a parameter name contains
// a character other than an ASCII letter, a digit, '_' and '-'.
type ForbiddenCharacterError struct {
	Name string
}

// Error returns a string representation of the error.
func (err *ForbiddenCharacterError) Error() string {
	return "feeder: parameter name " + strconv.Quote(err.Name) + " contains a forbidden character"
}

// ForbiddenKeyError is returned by Feed when a parameter name is a reserved
// keyword.
type ForbiddenKeyError struct {
	Name string
}

// Error returns a string representation of the error.
func (err *ForbiddenKeyError) Error() string {
	return "feeder: parameter name " + strconv.Quote(err.Name) + " is a reserved keyword"
}

// ConversionError is returned by Feed when a converter fails.
type ConversionError struct {
	Name string // name of the converter parameter
	Arg  string // argument passed to the converter
	Err  error  // error returned by the converter
}

// Error returns a string representation of the error.
func (err *ConversionError) Error() string {
	return "feeder: conversion " + strconv.Quote(err.Name) + " failed: " + err.Err.Error()
}

// Unwrap returns the error returned by the converter.
func (err *ConversionError) Unwrap() error {
	return err.Err
}

// RecursionLimitError is returned by Feed when the nesting of branches,
// arguments and parenthesized text exceeds the maximum depth.
type RecursionLimitError struct {
	Depth int
}

// Error returns a string representation of the error.
func (err *RecursionLimitError) Error() string {
	return "feeder: maximum recursion depth " + strconv.Itoa(err.Depth) + " exceeded"
}

// IndicatorError is returned by New when the indicator is not allowed.
type IndicatorError struct {
	Indicator rune
}

// Error returns a string representation of the error.
func (err *IndicatorError) Error() string {
	return "feeder: indicator " + strconv.QuoteRune(err.Indicator) + " is not allowed, use one of " + strconv.Quote(Indicators)
}
