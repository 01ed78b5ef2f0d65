// Copyright 2026 The Feeder Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/open2b/feeder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"page.txt":    "$title: $upper($name) has $count items.$if(premium;\" Premium.\";\"\")\n",
		"params.yaml": "title: Cart\nname: ada\nupper: !convert upper\n",
	})
	out := filepath.Join(dir, "out", "page.txt")
	require.NoError(t, os.Mkdir(filepath.Dir(out), 0755))

	err := render([]string{
		"-p", filepath.Join(dir, "params.yaml"),
		"-const", "count=3 premium=true",
		"-o", out,
		filepath.Join(dir, "page.txt"),
	})
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "Cart: ADA has 3 items. Premium.\n", string(data))
}

func TestRenderStdin(t *testing.T) {
	setStdin(t, `Hello %name, you owe $%price. \%name`)
	b := captureStdout(t)

	err := render([]string{"-i", "%", "-const", `name="Ada Lovelace"`, "-const", "price=12"})
	require.NoError(t, err)
	assert.Equal(t, `Hello Ada Lovelace, you owe $12. %name`, b.String())
}

func TestRenderRecursionLimit(t *testing.T) {
	setStdin(t, `$loop`)
	captureStdout(t)

	err := render([]string{"-max-depth", "3", "-const", `loop="($loop)"`, "-"})
	var e *feeder.RecursionLimitError
	require.True(t, errors.As(err, &e), "expecting *feeder.RecursionLimitError, got %#v", err)
	assert.Equal(t, 3, e.Depth)
}

func TestRenderErrors(t *testing.T) {
	setStdin(t, "")
	captureStdout(t)
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{"bad.yaml": "list: [1, 2]\n"})

	tests := [][]string{
		{"-i", "ab"},
		{"-i", "x"},
		{"-i", ""},
		{"-max-depth", "-1"},
		{"-const", "a"},
		{"-const", "if=1"},
		{"-p", filepath.Join(dir, "missing.yaml")},
		{"-p", filepath.Join(dir, "bad.yaml")},
		{filepath.Join(dir, "missing.txt")},
		{"a.txt", "b.txt"},
		{"-unknown"},
	}
	for _, args := range tests {
		assert.Error(t, render(args), "args %q", args)
	}

	assert.ErrorIs(t, render([]string{"-h"}), flag.ErrHelp)
}
