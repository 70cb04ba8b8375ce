// This file is part of cmdline.
//
// Copyright (C) 2026  The cmdline Authors
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package cmdline

import (
	"sort"
	"strings"

	"github.com/clibind/cmdline/internal/argument"
)

// tokenScope - which name pool a token can resolve against.
type tokenScope int

const (
	scopeAll   tokenScope = iota // single mode: every name
	scopeLong                    // long/short mode, long prefix token
	scopeShort                   // long/short mode, short prefix token
)

// nameToken - a raw token split into its name part and optional inline value.
type nameToken struct {
	Raw       string // the token as typed, used in error messages
	Body      string // candidate name, prefix stripped
	Inline    string // inline value, only meaningful when HasInline
	HasInline bool   // an inline separator was present, even for an empty value
	Scope     tokenScope
}

/*
splitNameToken - Check if the given token is a name token (begins with a
configured prefix) and split it into candidate name and inline value using
the first name/value separator that appears after the prefix. The separator
is not part of the name.

In long/short mode the long prefixes are tried before the short ones so that
`--` wins over `-` when one is a prefix of the other; the matched set decides
which name pool the token resolves against.

This is a pure function of (token, settings), it never looks at parse state.
*/
func splitNameToken(s string, set Settings) (nameToken, bool) {
	prefix, scope, ok := matchPrefix(s, set)
	if !ok {
		return nameToken{}, false
	}
	body := s[len(prefix):]
	if body == "" {
		// A bare prefix ("-", "--") is a plain value. The terminator is
		// handled by the caller before tokens are split.
		return nameToken{}, false
	}
	tok := nameToken{Raw: s, Body: body, Scope: scope}
	if idx := strings.IndexAny(body, set.NameValueSeparators); idx >= 0 {
		if idx == 0 {
			// Separator directly after the prefix leaves no name.
			return nameToken{}, false
		}
		tok.Body = body[:idx]
		tok.Inline = body[idx+1:]
		tok.HasInline = true
	}
	return tok, true
}

// matchPrefix - finds the longest configured prefix the token starts with.
func matchPrefix(s string, set Settings) (string, tokenScope, bool) {
	if set.LongShortMode {
		if p, ok := longestPrefix(s, set.LongPrefixes); ok {
			return p, scopeLong, true
		}
		if p, ok := longestPrefix(s, set.ShortPrefixes); ok {
			return p, scopeShort, true
		}
		return "", scopeAll, false
	}
	if p, ok := longestPrefix(s, set.namePrefixes()); ok {
		return p, scopeAll, true
	}
	return "", scopeAll, false
}

func longestPrefix(s string, prefixes []string) (string, bool) {
	sorted := append([]string{}, prefixes...)
	sort.Slice(sorted, func(i, j int) bool { return len(sorted[i]) > len(sorted[j]) })
	for _, p := range sorted {
		if p != "" && strings.HasPrefix(s, p) {
			return p, true
		}
	}
	return "", false
}

// expandSwitches - Switch combination, long/short mode only.
//
// A short prefix token whose multi character body did not resolve as a whole
// expands into individual switches when every character resolves to a
// distinct switch-type short name. Any character failing to resolve rejects
// the whole token, nothing is partially applied.
func expandSwitches(schema *Schema, body string) ([]*argument.Argument, bool) {
	seen := map[*argument.Argument]bool{}
	list := []*argument.Argument{}
	for _, r := range body {
		arg, ok := schema.shortNames[string(r)]
		if !ok || !arg.IsSwitch() || seen[arg] {
			return nil, false
		}
		seen[arg] = true
		list = append(list, arg)
	}
	return list, true
}
