// Copyright 2026 The Feeder Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bmatcuk/doublestar/v4"
)

// defaultTemplates is the default pattern of the files that are fed. The
// other files are copied or served as they are.
const defaultTemplates = "**/*.{html,md,txt}"

// templateMatcher reports whether a file is a template.
type templateMatcher string

// newTemplateMatcher returns a matcher for the given doublestar pattern.
func newTemplateMatcher(pattern string) (templateMatcher, error) {
	if !doublestar.ValidatePattern(pattern) {
		return "", fmt.Errorf("invalid -t flag: bad pattern %q", pattern)
	}
	return templateMatcher(pattern), nil
}

// match reports whether the file with the given slash separated path,
// relative to the root directory, is a template.
func (m templateMatcher) match(name string) bool {
	ok, _ := doublestar.Match(string(m), name)
	return ok
}

// build executes the command:
//
//	feeder build [-p file] [-const name=value] [-i char] [-o dir] [dir]
func build(args []string) (err error) {

	flags := newFlagSet("build")
	var ff feedFlags
	ff.register(flags)
	o := flags.String("o", "public", "output directory")
	pattern := flags.String("t", defaultTemplates, "pattern of the template files")
	verbose := flags.Bool("v", false, "log the built files")
	err = flags.Parse(args)
	if err != nil {
		return err
	}
	if flags.NArg() > 1 {
		flags.Usage()
		return errors.New("too many arguments")
	}

	templates, err := newTemplateMatcher(*pattern)
	if err != nil {
		return err
	}
	f, err := ff.newFeeder()
	if err != nil {
		return err
	}
	params, err := ff.params()
	if err != nil {
		return err
	}
	logger := newLogger(*verbose)

	start := time.Now()

	srcDir := flags.Arg(0)
	if srcDir == "" {
		srcDir = "."
	}
	srcDir, err = filepath.Abs(srcDir)
	if err != nil {
		return err
	}
	publicDir, err := filepath.Abs(*o)
	if err != nil {
		return err
	}
	err = checkOutDirectory(publicDir)
	if err != nil {
		return err
	}

	dstDir, err := os.MkdirTemp(filepath.Dir(publicDir), "public-temp-*")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			if err2 := os.RemoveAll(dstDir); err2 != nil {
				logger.Error("cannot remove temporary directory", "dir", dstDir, "err", err2)
			}
		}
	}()

	files := 0
	err = filepath.WalkDir(srcDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path == srcDir {
			return nil
		}
		name := d.Name()
		if d.IsDir() {
			// Skip the output directories.
			if path == publicDir || path == dstDir {
				return fs.SkipDir
			}
			if strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_") {
				return fs.SkipDir
			}
		} else if strings.HasPrefix(name, ".") {
			return nil
		}
		rel, err := filepath.Rel(srcDir, path)
		if err != nil {
			return err
		}
		dst := filepath.Join(dstDir, rel)
		if d.IsDir() {
			return os.MkdirAll(dst, dirPerm)
		}
		if !d.Type().IsRegular() {
			return nil
		}
		src, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		if templates.match(filepath.ToSlash(rel)) {
			text, err := f.Feed(params, string(src))
			if err != nil {
				return fmt.Errorf("%s: %w", rel, err)
			}
			src = []byte(text)
		}
		logger.Debug("build", "file", filepath.ToSlash(rel))
		files++
		return os.WriteFile(dst, src, filePerm)
	})
	if err != nil {
		return err
	}

	err = os.Rename(dstDir, publicDir)
	if err != nil {
		return err
	}

	logger.Info("build completed", "files", files, "dir", publicDir, "duration", time.Since(start))

	return nil
}

// checkOutDirectory checks that the output directory does not already
// exist.
func checkOutDirectory(path string) error {
	st, err := os.Stat(path)
	if err != nil && errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("stat %q: %s", path, err)
	}
	if st.IsDir() {
		return fmt.Errorf("output directory %q already exists", path)
	}
	return fmt.Errorf("path %q exists and is not a directory", path)
}
