// Copyright 2026 The Feeder Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package feeder implements a recursive string templating engine.
//
// A template is plain text with placeholders. A placeholder is the indicator
// character, '$' by default, followed by a parameter name:
//
//	Hello $name, you have $count new messages.
//
// Parameters are typed. A string or integer parameter is replaced by its
// textual form. A boolean parameter is replaced by "true" or "false" or, when
// followed by two branches, by the chosen branch:
//
//	$admin("You are an administrator";"You are a user")
//
// A converter parameter must be followed by a single argument. The argument
// is fed first and then passed to the converter function. Its result is
// literal text, placeholders in it are not replaced:
//
//	$upper("$name")
//
// The conditional constructs ifSet, ifNotSet and if select one of two
// branches depending on a parameter:
//
//	$ifSet(name;"Hello $name";"Hello stranger")
//	$ifNotSet(name;"Who are you?";"")
//	$if(admin;"root";"user")
//
// Branches may be enclosed in double quotes and may contain any other
// placeholder or construct, they are fed recursively. Text in parentheses not
// belonging to a construct is fed recursively as well, the parentheses are
// kept.
//
// A '#' starts a comment that runs to the end of the line. The characters
// '\', '(', ')', ';', '"', '#' and the indicator are written literally by
// escaping them with a backslash.
//
// Placeholders with no corresponding parameter and malformed constructs are
// left in the output as they are.
//
// Parameter names are matched as prefixes of the text following the
// indicator and parameters are applied in order, each one to the output of
// the previous one. So "$ab" is replaced by a parameter named "a" if it comes
// before a parameter named "ab", and the value of a parameter can introduce
// placeholders that parameters later in the list replace, also in
// parenthesized text that follows. When two
// parameters have the same name the first one wins.
package feeder
