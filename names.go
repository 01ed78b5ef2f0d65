// Copyright 2026 The Feeder Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package feeder

// Keywords are the names of the conditional constructs. They cannot be used
// as parameter names.
var Keywords = []string{"ifSet", "ifNotSet", "if"}

// IsReserved reports whether name is a reserved keyword.
func IsReserved(name string) bool {
	for _, k := range Keywords {
		if name == k {
			return true
		}
	}
	return false
}

// ValidateName checks that name can be used as a parameter name. It returns
// a *ForbiddenCharacterError if name is empty or contains a character other
// than an ASCII letter, a digit, '_' and '-', and a *ForbiddenKeyError if
// name is a reserved keyword.
func ValidateName(name string) error {
	if name == "" {
		return &ForbiddenCharacterError{Name: name}
	}
	for i := 0; i < len(name); i++ {
		if !isNameChar(name[i]) {
			return &ForbiddenCharacterError{Name: name}
		}
	}
	if IsReserved(name) {
		return &ForbiddenKeyError{Name: name}
	}
	return nil
}

// validateParameters validates the names of all the parameters, in order.
func validateParameters(params []Parameter) error {
	for _, p := range params {
		if err := ValidateName(p.Name); err != nil {
			return err
		}
	}
	return nil
}

func isNameChar(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || '0' <= c && c <= '9' || c == '_' || c == '-'
}
