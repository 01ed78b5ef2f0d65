// Copyright 2026 The Feeder Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

const helpFeeder = `Feeder is a tool for feeding parameters into templates.

Usage:

	feeder <command> [arguments]

The commands are:

	build       feed all the templates in a directory
	check       check and list the parameters
	converters  list the built-in converters
	render      feed a template
	serve       run a web server to preview templates
	version     print Feeder version

Use "feeder help <command>" for more information about a command.

Additional help topics:

	params      parameter files and constants
	syntax      template syntax
`

const helpRender = `usage: feeder render [-p file] [-const name=value] [-i char] [-max-depth n] [-o file] [template]

Render feeds the parameters into a template and prints the result to the
standard output. If no template file is given, or if it is "-", the template
is read from the standard input.

The -p flag reads the parameters from a YAML file, see 'feeder help params'.

The -const flag adds parameters in the form name=value, it can be repeated
and every flag can contain more constants separated by spaces:

	feeder render -const 'name="Ada Lovelace" admin=true' page.txt

Constants are fed after the parameters of the file.

The -i flag sets the indicator character, by default '$'. It can be one of
the characters $ % @ & ~ ^ ! *.

The -max-depth flag sets the maximum depth of nested branches, arguments and
parenthesized text. By default it is 64.

The -o flag writes the result to the named file instead of the standard
output. The file is replaced atomically.
`

const helpBuild = `usage: feeder build [-p file] [-const name=value] [-i char] [-o dir] [dir]

Build feeds the parameters into all the files of a directory, by default the
current directory, and writes the results with the same path in the output
directory, by default 'public'.

Files and directories whose name starts with a dot and directories whose name
starts with an underscore are skipped.

The output directory must not exist, it is created when the build completes
successfully.

The -p, -const and -i flags are the same as for the render command, see
'feeder help render'.
`

const helpCheck = `usage: feeder check [-p file] [-const name=value]

Check reads the parameters, as the render command does, validates them and
prints them in the order in which they are fed, one per line with their kind
and value.

A parameter whose name is a prefix of the name of a parameter that follows
is reported as a warning, as its placeholders are replaced first.
`

const helpConverters = `usage: feeder converters

Converters prints the names of the built-in converters. A converter can be
used as a parameter value in a parameter file with the !convert tag.
`

const helpServe = `usage: feeder serve [-p file] [-const name=value] [-i char] [-http addr] [-v] [dir]

Serve runs a web server that serves the files of a directory, by default the
current directory. Files with extension .html, .md and .txt are fed with the
parameters before they are served, the other files are served as they are.

Templates and the parameter file are read again when they change.

The -http flag sets the address to listen on, by default localhost:8080.

The -v flag logs every request.

The -p, -const and -i flags are the same as for the render command, see
'feeder help render'.
`

const helpParams = `A parameter file is a YAML document with a mapping from parameter names to
values. For example:

	name: Ada
	messages: 3
	premium: true
	price: 9.90
	upper: !convert upper

Names can contain ASCII letters, digits, '_' and '-' and cannot be ifSet,
ifNotSet or if.

The kind of the parameter depends on the value: booleans are boolean
parameters, integers are integer parameters and all the other scalars are
strings. A value with the !convert tag is the name of a built-in converter,
see 'feeder converters'.

The order of the parameters in the file is the order in which they are fed.
`

const helpSyntax = `A template is text with placeholders. A placeholder starts with the indicator
character, by default '$', followed by a parameter name:

	Hello $name

Boolean parameters can choose between two branches:

	$premium("Thanks for your support";"Upgrade now")

Converters transform their argument:

	$upper("hello $name")

The conditional constructs choose a branch depending on the parameters:

	$ifSet(name; "Hello $name"; "Hello")
	$ifNotSet(name; "Sign in"; "Sign out")
	$if(premium; "Gold"; "Silver")

Branches can be enclosed in double quotes. Text after '#' up to the end of
the line is a comment. The characters \ ( ) ; " # and the indicator can be
escaped with a backslash.
`
