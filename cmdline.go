// This file is part of cmdline.
//
// Copyright (C) 2026  The cmdline Authors
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

/*
Package cmdline - command line argument parsing engine.

It operates on any given slice of strings (normally os.Args[1:]) against a
declared Schema and returns a typed Result or a structured error.

Usage

The following is a basic example:

	schema := cmdline.New()

	// Positional arguments are declared with a position
	path := schema.String("path", "", schema.Position(0), schema.Required())

	// Named arguments can have aliases and validators
	lines := schema.Int("max-lines", 0,
		schema.Alias("lines"),
		schema.IntRange(1, math.MaxInt))

	// Switches are boolean presence flags
	verbose := schema.Bool("verbose", false)

	result, err := schema.Parse(os.Args[1:])
	if err != nil {
		// err is a *cmdline.ParseError, also matchable with errors.Is
		// against the sentinel for its kind, e.g. cmdline.ErrUnknownArgument.
	}
	if result.Cancelled() {
		// parsing stopped early, result.Remaining() holds the unconsumed
		// tokens and result.HelpRequested() tells whether help was asked for.
	}

Features

* Long (`--name`) and short (`-n`) argument names with aliases.

* Positional arguments, including a trailing multi-value positional.

* Single, switch, multi-value and dictionary (key=value) arities.

* Inline values with `=` or `:` (`--name=value`, `--name:value`) in addition
to whitespace separated values.

* Unique prefix resolution: `--max-l` resolves to `--max-lines` when no other
declared name shares the prefix.

* Combined short switches in long/short mode: `-abc` means `-a -b -c`.

* Staged validation: raw string validators, typed value validators and whole
parse validators such as Requires/Prohibits.

* Locale aware numeric conversion through an explicit culture setting,
invariant by default.

Panic

The library panics when it finds that the programmer declared the same name
or alias twice, or declared a repeat argument with a broken min/max. Those
are definition errors that have to be fixed in code, not handled at runtime.
*/
package cmdline

import (
	"io"
	"log"
	"os"
)

// Logger instance set to `io.Discard` by default.
// Enable debug logging by setting: `Logger.SetOutput(os.Stderr)`.
var Logger = log.New(io.Discard, "DEBUG: ", log.Ldate|log.Ltime|log.Lshortfile)

// Writer - io.Writer to write warnings to. Defaults to os.Stderr.
// Used by the warn-and-replace duplicate policy and the unknown argument
// warn mode.
var Writer io.Writer = os.Stderr
