// Copyright 2026 The Feeder Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"net"
	"strconv"
	"strings"
)

const (
	dirPerm  = 0755 // default new directory permission.
	filePerm = 0644 // default new file permission.
)

const (
	defaultHost = "localhost"
	defaultPort = "8080"
)

// parseAddr parses the value of the -http flag. The host and the port can
// be omitted, but not both, and default to localhost and 8080.
func parseAddr(addr string) (string, error) {
	if addr == "" {
		return "", errors.New("missing address")
	}
	host, port := addr, defaultPort
	if strings.Contains(addr, ":") {
		var err error
		host, port, err = net.SplitHostPort(addr)
		if err != nil {
			return "", err
		}
	}
	if host == "" {
		host = defaultHost
	}
	n, err := strconv.Atoi(port)
	if err != nil || n < 1 || n > 65535 {
		return "", fmt.Errorf("invalid port %q", port)
	}
	return net.JoinHostPort(host, port), nil
}
