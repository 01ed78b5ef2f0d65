// Copyright 2026 The Feeder Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Feeder is a tool for feeding parameters into templates.
//
// Usage:
//
//	feeder <command> [arguments]
//
// Run 'feeder help' for the list of commands.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
)

func main() {
	os.Exit(execute(os.Args...))
}

// Readers and writers used by the commands. Tests replace them.
var (
	stdin     io.Reader = os.Stdin
	stdout    io.Writer = os.Stdout
	logOutput io.Writer = os.Stderr
)

// stderr prints lines on stderr.
func stderr(lines ...string) {
	for _, l := range lines {
		fmt.Fprint(os.Stderr, l+"\n")
	}
}

// printError prints msg on stderr with a bold red color.
func printError(format string, a ...interface{}) {
	msg := fmt.Errorf(format, a...)
	stderr("\033[1;31m"+msg.Error()+"\033[0m", `exit status 1`)
}

// execute runs command 'feeder' with given args and returns the exit
// status. First argument must be executable name.
func execute(args ...string) int {

	// No command provided.
	if len(args) == 1 {
		commandsHelp["feeder"]()
		return 0
	}

	cmdArg := args[1]

	cmd, ok := commands[cmdArg]
	if !ok {
		stderr(
			fmt.Sprintf("feeder %s: unknown command", cmdArg),
			`Run 'feeder help' for usage.`,
		)
		return 1
	}
	err := cmd(args[2:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		printError("feeder %s: %s", cmdArg, err)
		return 1
	}
	return 0
}

// newFlagSet returns a flag set for the named command. Its usage prints the
// help of the command.
func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet("feeder "+name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = commandsHelp[name]
	return fs
}

// commandsHelp maps a command name to a function that prints help for that
// command.
var commandsHelp = map[string]func(){
	"feeder": func() {
		stderr(helpFeeder)
	},
	"build": func() {
		stderr(helpBuild)
	},
	"check": func() {
		stderr(helpCheck)
	},
	"converters": func() {
		stderr(helpConverters)
	},
	"params": func() {
		stderr(helpParams)
	},
	"render": func() {
		stderr(helpRender)
	},
	"serve": func() {
		stderr(helpServe)
	},
	"syntax": func() {
		stderr(helpSyntax)
	},
	"version": func() {
		stderr(`usage: feeder version`)
	},
}

// commands maps a command name to a function that executes that command.
// Commands are called by command-line using:
//
//	feeder command [arguments]
var commands = map[string]func(args []string) error{
	"build":      build,
	"check":      check,
	"converters": listConverters,
	"render":     render,
	"serve":      serve,
	"version":    version,
	"help": func(args []string) error {
		if len(args) == 0 {
			commandsHelp["feeder"]()
			return nil
		}
		topic := args[0]
		help, ok := commandsHelp[topic]
		if !ok {
			return fmt.Errorf("unknown help topic %q. Run 'feeder help'", topic)
		}
		help()
		return nil
	},
}
