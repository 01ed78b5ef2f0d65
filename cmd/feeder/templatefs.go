// Copyright 2026 The Feeder Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// templateFS implements a file system that reads the files in a directory
// and reports the changes of the files read.
type templateFS struct {
	root    string
	fsys    fs.FS
	watcher *fsnotify.Watcher
	changed chan string
	Errors  chan error
	done    chan struct{}
	stopped chan struct{}

	sync.Mutex
	watched map[string]bool
}

// newTemplateFS returns a file system for the directory root.
func newTemplateFS(root string) (*templateFS, error) {
	root, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	dir := &templateFS{
		root:    root,
		fsys:    os.DirFS(root),
		watcher: watcher,
		watched: map[string]bool{},
		changed: make(chan string),
		Errors:  make(chan error),
		done:    make(chan struct{}),
		stopped: make(chan struct{}),
	}
	go func() {
		defer close(dir.stopped)
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
					continue
				}
				name := dir.name(event.Name)
				if event.Op&(fsnotify.Remove|fsnotify.Rename) != 0 {
					dir.Lock()
					delete(dir.watched, name)
					dir.Unlock()
				}
				select {
				case dir.changed <- name:
				case <-dir.done:
					return
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				select {
				case dir.Errors <- err:
				case <-dir.done:
					return
				}
			case <-dir.done:
				return
			}
		}
	}()
	return dir, nil
}

// Changed returns the channel on which the names of the changed files are
// sent. Names of files in the root directory are relative to it and slash
// separated, other names are absolute.
func (t *templateFS) Changed() chan string {
	return t.changed
}

// Close stops watching the files. Changes not yet received from the Changed
// channel are discarded.
func (t *templateFS) Close() error {
	close(t.done)
	err := t.watcher.Close()
	<-t.stopped
	return err
}

func (t *templateFS) Open(name string) (fs.File, error) {
	err := t.watch(name)
	if err != nil {
		return nil, err
	}
	return t.fsys.Open(name)
}

func (t *templateFS) ReadFile(name string) ([]byte, error) {
	err := t.watch(name)
	if err != nil {
		return nil, err
	}
	return fs.ReadFile(t.fsys, name)
}

// WatchFile watches the file with the given path, that can also be outside
// of the root directory. It returns the name with which its changes are
// reported. A file that is removed or renamed is no longer watched, and it
// must be watched again.
func (t *templateFS) WatchFile(path string) (string, error) {
	path, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	name := t.name(path)
	return name, t.add(name, path)
}

// watch watches the file with the given name.
func (t *templateFS) watch(name string) error {
	if !fs.ValidPath(name) {
		return &fs.PathError{Op: "open", Path: name, Err: fs.ErrInvalid}
	}
	return t.add(name, filepath.Join(t.root, filepath.FromSlash(name)))
}

func (t *templateFS) add(name, path string) error {
	t.Lock()
	defer t.Unlock()
	if t.watched[name] {
		return nil
	}
	err := t.watcher.Add(path)
	if err != nil {
		return err
	}
	t.watched[name] = true
	return nil
}

// name returns the name of the file with the given path as reported by the
// Changed channel.
func (t *templateFS) name(path string) string {
	rel, err := filepath.Rel(t.root, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return path
	}
	return filepath.ToSlash(rel)
}
