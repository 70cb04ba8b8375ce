// This file is part of cmdline.
//
// Copyright (C) 2026  The cmdline Authors
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package cmdline

import "golang.org/x/text/language"

// DuplicatePolicy - Action taken when a non multi-value argument is supplied
// more than once.
type DuplicatePolicy int

// Duplicate argument policies
const (
	// DuplicateError makes the parse fail with ErrDuplicateArgument.
	DuplicateError DuplicatePolicy = iota

	// DuplicateWarnReplace prints a warning to Writer and keeps the latest value.
	DuplicateWarnReplace

	// DuplicateReplace silently keeps the latest value.
	DuplicateReplace
)

// UnknownMode - Action taken when an unknown argument is encountered.
type UnknownMode int

// Unknown argument modes
const (
	// UnknownFail makes the parse fail with ErrUnknownArgument.
	UnknownFail UnknownMode = iota

	// UnknownWarn prints a warning to Writer and leaves the token in the
	// remaining slice.
	UnknownWarn

	// UnknownPass silently leaves the token in the remaining slice.
	// This allows layering another parser on top of this one.
	UnknownPass
)

// Settings - parsing configuration.
//
// The zero value is not usable, start from defaultSettings via New and use
// the Set methods on Schema. Settings are read only during a parse so a
// schema can serve concurrent Parse calls.
type Settings struct {
	// LongPrefixes mark a token as a long name token in long/short mode.
	LongPrefixes []string

	// ShortPrefixes mark a token as a short name token in long/short mode.
	// When LongShortMode is off this is the single prefix set that applies
	// to all names.
	ShortPrefixes []string

	// NameValueSeparators split a name token into name and inline value.
	// The first separator occurring after the prefix wins and is not part
	// of the name.
	NameValueSeparators string

	// AllowWhitespaceSeparator accepts `-name value` (two tokens) in
	// addition to `-name:value`.
	AllowWhitespaceSeparator bool

	// CaseSensitiveNames applies to long names and long aliases.
	// Short names are always case sensitive.
	CaseSensitiveNames bool

	// AutoPrefixAliases resolves a unique prefix of a declared name without
	// an explicit alias declaration.
	AutoPrefixAliases bool

	// DuplicatePolicy for non multi-value arguments supplied more than once.
	DuplicatePolicy DuplicatePolicy

	// Unknown sets the action taken for name tokens that do not resolve.
	Unknown UnknownMode

	// Culture for numeric conversions. language.Und is locale invariant and
	// is the default, parsing stays deterministic across machines.
	Culture language.Tag

	// LongShortMode enables the dual prefix behaviour: long names only match
	// long prefix tokens, short names only match short prefix tokens, and
	// multiple short switches combine into a single token (`-abc`).
	LongShortMode bool

	// PrefixTermination enables the terminator token. Once it is seen every
	// following token is treated as a plain value, name prefixes included.
	PrefixTermination bool

	// TerminatorToken is the token that stops name parsing when
	// PrefixTermination is enabled.
	TerminatorToken string
}

func defaultSettings() Settings {
	return Settings{
		LongPrefixes:             []string{"--"},
		ShortPrefixes:            []string{"-"},
		NameValueSeparators:      ":=",
		AllowWhitespaceSeparator: true,
		CaseSensitiveNames:       true,
		AutoPrefixAliases:        true,
		DuplicatePolicy:          DuplicateError,
		Unknown:                  UnknownFail,
		Culture:                  language.Und,
		LongShortMode:            false,
		PrefixTermination:        false,
		TerminatorToken:          "--",
	}
}

// namePrefixes - every prefix that marks a name token. Long prefixes come
// first so that `--` wins over `-` when one is a prefix of the other.
// In single mode the two sets collapse into one set that applies to all names.
func (s Settings) namePrefixes() []string {
	return append(append([]string{}, s.LongPrefixes...), s.ShortPrefixes...)
}
