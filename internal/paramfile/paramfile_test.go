// Copyright 2026 The Feeder Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package paramfile

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/open2b/feeder"
)

// param is a parameter in a comparable form.
type param struct {
	name  string
	kind  feeder.Kind
	value string
}

func toParams(params []feeder.Parameter) []param {
	ps := make([]param, len(params))
	for i, p := range params {
		ps[i] = param{name: p.Name, kind: p.Value.Kind(), value: p.Value.String()}
		if p.Value.Kind() == feeder.Boolean {
			ps[i].value = "false"
			if p.Value.Bool() {
				ps[i].value = "true"
			}
		}
	}
	return ps
}

func equalParams(t *testing.T, expected []param, got []feeder.Parameter) {
	t.Helper()
	ps := toParams(got)
	if len(ps) != len(expected) {
		t.Fatalf("expecting %d parameters, got %d: %v", len(expected), len(ps), ps)
	}
	for i, p := range ps {
		if p != expected[i] {
			t.Fatalf("parameter %d: expecting %v, got %v", i, expected[i], p)
		}
	}
}

var decodeTests = []struct {
	src      string
	expected []param
}{
	{"", nil},
	{"# no parameters\n", nil},
	{"name: World", []param{{"name", feeder.String, "World"}}},
	{"b: 1\na: 2\n", []param{{"b", feeder.Integer, "1"}, {"a", feeder.Integer, "2"}}},
	{"name: World\ncount: 3\ndebug: true\noff: false\nprice: 9.90\nempty:\nupper: !convert upper\n", []param{
		{"name", feeder.String, "World"},
		{"count", feeder.Integer, "3"},
		{"debug", feeder.Boolean, "true"},
		{"off", feeder.Boolean, "false"},
		{"price", feeder.String, "9.90"},
		{"empty", feeder.String, ""},
		{"upper", feeder.Function, ""},
	}},
	{"quoted: \"3\"", []param{{"quoted", feeder.String, "3"}}},
	{"text: |\n  a\n  b\n", []param{{"text", feeder.String, "a\nb\n"}}},
	{"first-name: Ada\nlast_name: Lovelace", []param{
		{"first-name", feeder.String, "Ada"},
		{"last_name", feeder.String, "Lovelace"},
	}},
	{"a: &x hello\nb: *x\n", []param{{"a", feeder.String, "hello"}, {"b", feeder.String, "hello"}}},
}

func TestDecode(t *testing.T) {
	for _, test := range decodeTests {
		params, err := Decode(strings.NewReader(test.src))
		if err != nil {
			t.Fatalf("source %q: unexpected error: %s", test.src, err)
		}
		equalParams(t, test.expected, params)
	}
}

var decodeErrorTests = []struct {
	src    string
	line   int
	column int
}{
	{"- a\n- b\n", 1, 1},
	{"list: [1, 2]", 1, 7},
	{"a: 1\nmap:\n  b: 2\n", 3, 3},
	{"name: !convert nope", 1, 7},
	{"a b: 1", 1, 1},
}

func TestDecodeErrors(t *testing.T) {
	for _, test := range decodeErrorTests {
		_, err := Decode(strings.NewReader(test.src))
		var e *SyntaxError
		if !errors.As(err, &e) {
			t.Fatalf("source %q: expecting *SyntaxError, got %#v", test.src, err)
		}
		if e.Line != test.line || e.Column != test.column {
			t.Fatalf("source %q: expecting position %d:%d, got %d:%d", test.src, test.line, test.column, e.Line, e.Column)
		}
	}
}

func TestDecodeReservedName(t *testing.T) {
	_, err := Decode(strings.NewReader("ifSet: 1"))
	if err == nil {
		t.Fatal("expecting error, got nil")
	}
	if !strings.Contains(err.Error(), "reserved keyword") {
		t.Fatalf("unexpected error %q", err)
	}
}

func TestDecodeInvalidYAML(t *testing.T) {
	_, err := Decode(strings.NewReader("a: [1"))
	if err == nil {
		t.Fatal("expecting error, got nil")
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "params.yaml")
	err := os.WriteFile(name, []byte("name: World\nshow: true\n"), 0644)
	if err != nil {
		t.Fatal(err)
	}
	params, err := Load(name)
	if err != nil {
		t.Fatal(err)
	}
	equalParams(t, []param{{"name", feeder.String, "World"}, {"show", feeder.Boolean, "true"}}, params)

	bad := filepath.Join(dir, "bad.yaml")
	err = os.WriteFile(bad, []byte("list: [1]\n"), 0644)
	if err != nil {
		t.Fatal(err)
	}
	_, err = Load(bad)
	if err == nil {
		t.Fatal("expecting error, got nil")
	}
	if expected := bad + ": line 1, column 7: parameter value must be a scalar"; err.Error() != expected {
		t.Fatalf("expecting error %q, got %q", expected, err)
	}

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expecting not exist error, got %v", err)
	}
}
