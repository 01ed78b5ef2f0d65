// Copyright 2026 The Feeder Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package paramfile reads feeder parameters from YAML files and from
// constants passed on the command line.
//
// A parameter file is a YAML mapping from parameter names to scalar values.
// The tag of a value determines the kind of the parameter:
//
//	name: World          # string
//	count: 3             # integer
//	debug: true          # boolean
//	price: 9.90          # string, floats keep their text
//	upper: !convert upper
//
// The tag !convert makes the parameter a converter, the value is the name
// of a converter of the package converters.
//
// The parameters are returned in the order in which they appear in the
// file, which is the order in which they are fed.
package paramfile

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/open2b/feeder"
	"github.com/open2b/feeder/converters"

	"gopkg.in/yaml.v3"
)

// convertTag is the tag of converter values.
const convertTag = "!convert"

// SyntaxError is returned when a parameter file is not well formed.
type SyntaxError struct {
	Line   int
	Column int
	Msg    string
}

func (err *SyntaxError) Error() string {
	return fmt.Sprintf("line %d, column %d: %s", err.Line, err.Column, err.Msg)
}

func syntaxError(node *yaml.Node, format string, a ...interface{}) *SyntaxError {
	return &SyntaxError{Line: node.Line, Column: node.Column, Msg: fmt.Sprintf(format, a...)}
}

// Load reads the parameter file with the given name.
func Load(name string) ([]feeder.Parameter, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	params, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return params, nil
}

// Decode decodes the parameters of the YAML document read from r. An empty
// document has no parameters.
func Decode(r io.Reader) ([]feeder.Parameter, error) {
	var doc yaml.Node
	err := yaml.NewDecoder(r).Decode(&doc)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, err
	}
	if len(doc.Content) == 0 {
		return nil, nil
	}
	root := doc.Content[0]
	if root.Kind == yaml.ScalarNode && root.ShortTag() == "!!null" {
		return nil, nil
	}
	if root.Kind != yaml.MappingNode {
		return nil, syntaxError(root, "parameters must be a mapping")
	}
	params := make([]feeder.Parameter, 0, len(root.Content)/2)
	for i := 0; i+1 < len(root.Content); i += 2 {
		key, node := root.Content[i], root.Content[i+1]
		if key.Kind != yaml.ScalarNode {
			return nil, syntaxError(key, "parameter name must be a scalar")
		}
		err = feeder.ValidateName(key.Value)
		if err != nil {
			return nil, syntaxError(key, "%s", err)
		}
		value, err := decodeValue(node)
		if err != nil {
			return nil, err
		}
		params = append(params, feeder.Parameter{Name: key.Value, Value: value})
	}
	return params, nil
}

// decodeValue decodes the value of a parameter.
func decodeValue(node *yaml.Node) (feeder.Value, error) {
	if node.Kind == yaml.AliasNode {
		node = node.Alias
	}
	if node.Kind != yaml.ScalarNode {
		return feeder.Value{}, syntaxError(node, "parameter value must be a scalar")
	}
	switch node.ShortTag() {
	case "!!bool":
		var b bool
		if err := node.Decode(&b); err != nil {
			return feeder.Value{}, syntaxError(node, "%s", err)
		}
		return feeder.BoolValue(b), nil
	case "!!int":
		var n int
		if err := node.Decode(&n); err != nil {
			return feeder.Value{}, syntaxError(node, "integer %s out of range", node.Value)
		}
		return feeder.IntValue(n), nil
	case "!!null":
		return feeder.StringValue(""), nil
	case convertTag:
		conv, ok := converters.Lookup(node.Value)
		if !ok {
			return feeder.Value{}, syntaxError(node, "unknown converter %q", node.Value)
		}
		return feeder.ConverterValue(conv), nil
	}
	return feeder.StringValue(node.Value), nil
}
