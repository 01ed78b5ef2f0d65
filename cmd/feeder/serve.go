// Copyright 2026 The Feeder Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"net/http"
	"path"
	"strings"
	"sync"
	"time"

	"github.com/open2b/feeder"
)

// serve executes the command:
//
//	feeder serve [-p file] [-const name=value] [-i char] [-http addr] [-v] [dir]
func serve(args []string) error {

	flags := newFlagSet("serve")
	var ff feedFlags
	ff.register(flags)
	httpAddr := flags.String("http", defaultHost+":"+defaultPort, "address to listen on")
	pattern := flags.String("t", defaultTemplates, "pattern of the template files")
	verbose := flags.Bool("v", false, "log every request")
	err := flags.Parse(args)
	if err != nil {
		return err
	}
	if flags.NArg() > 1 {
		flags.Usage()
		return errors.New("too many arguments")
	}
	addr, err := parseAddr(*httpAddr)
	if err != nil {
		return fmt.Errorf("invalid -http flag: %s", err)
	}

	templates, err := newTemplateMatcher(*pattern)
	if err != nil {
		return err
	}
	f, err := ff.newFeeder()
	if err != nil {
		return err
	}
	dir := flags.Arg(0)
	if dir == "" {
		dir = "."
	}
	srv, err := newServer(dir, f, &ff, templates, newLogger(*verbose))
	if err != nil {
		return err
	}
	defer srv.Close()

	s := &http.Server{
		Addr:           addr,
		Handler:        srv,
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   10 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	srv.logger.Info("web server is available, press Ctrl+C to stop", "url", "http://"+addr+"/")

	return s.ListenAndServe()
}

// server serves the files of a directory, feeding the templates.
type server struct {
	fsys       *templateFS
	static     http.Handler
	feeder     *feeder.Feeder
	flags      *feedFlags
	templates  templateMatcher
	logger     *slog.Logger
	paramsName string
	done       chan struct{}

	sync.Mutex
	sources   map[string]string
	params    []feeder.Parameter
	paramsErr error
}

// newServer returns a server for the directory dir. The parameters are read
// with the flags ff and are read again when the parameter file changes. Only
// the files matched by templates are fed.
func newServer(dir string, f *feeder.Feeder, ff *feedFlags, templates templateMatcher, logger *slog.Logger) (*server, error) {
	fsys, err := newTemplateFS(dir)
	if err != nil {
		return nil, err
	}
	srv := &server{
		fsys:      fsys,
		static:    http.FileServer(http.Dir(fsys.root)),
		feeder:    f,
		flags:     ff,
		templates: templates,
		logger:    logger,
		done:      make(chan struct{}),
		sources:   map[string]string{},
	}
	if ff.file != "" {
		srv.paramsName, err = fsys.WatchFile(ff.file)
		if err != nil {
			_ = fsys.Close()
			return nil, err
		}
	}
	srv.params, err = ff.params()
	if err != nil {
		_ = fsys.Close()
		return nil, err
	}
	go srv.watch()
	return srv, nil
}

// Close stops the server from watching the files.
func (srv *server) Close() error {
	close(srv.done)
	return srv.fsys.Close()
}

// paramsRetryDelay is the delay after which a missing parameter file is
// read again.
const paramsRetryDelay = 100 * time.Millisecond

// watch forgets the changed templates and reloads the parameters when the
// parameter file changes.
//
// Editors can save a file by renaming a new file over it, or by removing it
// and then creating it. So the parameter file is watched again at every
// change and, while it does not exist, it is read again after a delay.
func (srv *server) watch() {
	var retry <-chan time.Time
	for {
		select {
		case name := <-srv.fsys.Changed():
			if srv.paramsName != "" && name == srv.paramsName {
				retry = srv.reloadParams(retry != nil)
				continue
			}
			srv.Lock()
			delete(srv.sources, name)
			srv.Unlock()
			srv.logger.Debug("template changed", "name", name)
		case <-retry:
			retry = srv.reloadParams(true)
		case err := <-srv.fsys.Errors:
			srv.logger.Error("cannot watch files", "err", err)
		case <-srv.done:
			return
		}
	}
}

// reloadParams watches the parameter file again and reads the parameters.
// If the file does not exist, it returns a channel that delivers the time
// when it must be called again. retrying reports whether the file was
// already missing.
func (srv *server) reloadParams(retrying bool) <-chan time.Time {
	var params []feeder.Parameter
	_, err := srv.fsys.WatchFile(srv.flags.file)
	if err == nil {
		params, err = srv.flags.params()
	} else {
		err = fmt.Errorf("%s: %w", srv.flags.file, err)
	}
	missing := errors.Is(err, fs.ErrNotExist)
	srv.Lock()
	if err == nil {
		srv.params = params
	}
	srv.paramsErr = err
	srv.Unlock()
	if err != nil {
		if !missing || !retrying {
			srv.logger.Error("cannot read parameters", "file", srv.flags.file, "err", err)
		}
		if missing {
			return time.After(paramsRetryDelay)
		}
		return nil
	}
	srv.logger.Info("parameters reloaded", "file", srv.flags.file, "count", len(params))
	return nil
}

func (srv *server) ServeHTTP(w http.ResponseWriter, r *http.Request) {

	start := time.Now()

	name := strings.TrimPrefix(path.Clean("/"+r.URL.Path), "/")
	if name == "" || strings.HasSuffix(r.URL.Path, "/") {
		name = path.Join(name, "index.html")
	}

	if !srv.templates.match(name) {
		srv.static.ServeHTTP(w, r)
		return
	}

	src, err := srv.source(name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			http.NotFound(w, r)
			srv.logger.Debug("request", "path", r.URL.Path, "status", http.StatusNotFound)
			return
		}
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		srv.logger.Error("cannot read template", "name", name, "err", err)
		return
	}

	srv.Lock()
	params, paramsErr := srv.params, srv.paramsErr
	srv.Unlock()

	text := src
	if paramsErr == nil {
		text, err = srv.feeder.Feed(params, src)
	} else {
		err = paramsErr
	}
	if err != nil {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = fmt.Fprintf(w, "%s", err)
		srv.logger.Warn("cannot feed template", "name", name, "err", err)
		return
	}

	contentType := "text/plain; charset=utf-8"
	if path.Ext(name) == ".html" {
		contentType = "text/html; charset=utf-8"
	}
	w.Header().Set("Content-Type", contentType)
	_, err = io.WriteString(w, text)
	if err != nil {
		srv.logger.Error("cannot write response", "name", name, "err", err)
		return
	}

	srv.logger.Debug("request", "path", r.URL.Path, "status", http.StatusOK, "duration", time.Since(start))
}

// source returns the source of the named template.
func (srv *server) source(name string) (string, error) {
	srv.Lock()
	src, ok := srv.sources[name]
	srv.Unlock()
	if ok {
		return src, nil
	}
	data, err := srv.fsys.ReadFile(name)
	if err != nil {
		return "", err
	}
	src = string(data)
	srv.Lock()
	srv.sources[name] = src
	srv.Unlock()
	return src, nil
}
