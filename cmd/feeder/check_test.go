// Copyright 2026 The Feeder Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/open2b/feeder"
	"github.com/open2b/feeder/converters"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheck(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"params.yaml": "name: Ada Lovelace\ncount: 3\nok: true\nupper: !convert upper\n",
	})
	b := captureStdout(t)

	err := check([]string{"-p", filepath.Join(dir, "params.yaml"), "-const", "extra=false"})
	require.NoError(t, err)

	var got [][]string
	for _, line := range strings.Split(strings.TrimSuffix(b.String(), "\n"), "\n") {
		got = append(got, strings.Fields(line))
	}
	expected := [][]string{
		{"name", "string", `"Ada`, `Lovelace"`},
		{"count", "integer", "3"},
		{"ok", "boolean", "true"},
		{"upper", "converter", "-"},
		{"extra", "boolean", "false"},
	}
	assert.Equal(t, expected, got)

	assert.Error(t, check([]string{"arg"}))
	assert.Error(t, check([]string{"-p", filepath.Join(dir, "missing.yaml")}))
}

func TestShadowed(t *testing.T) {
	params := []feeder.Parameter{
		{Name: "a", Value: feeder.StringValue("1")},
		{Name: "abc", Value: feeder.StringValue("2")},
		{Name: "b", Value: feeder.StringValue("3")},
		{Name: "a", Value: feeder.StringValue("4")},
	}
	expected := []string{
		`parameter "abc" is shadowed by "a" that precedes it`,
		`parameter "a" is duplicated, only the first one is fed`,
	}
	assert.Equal(t, expected, shadowed(params))
	assert.Empty(t, shadowed(params[1:3]))
}

func TestListConverters(t *testing.T) {
	b := captureStdout(t)
	require.NoError(t, listConverters(nil))
	assert.Equal(t, strings.Join(converters.Names(), "\n")+"\n", b.String())
}
