// This file is part of cmdline.
//
// Copyright (C) 2026  The cmdline Authors
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package cmdline

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/language"

	"github.com/clibind/cmdline/internal/argument"
)

// Schema - the declared, immutable description of every accepted argument
// plus the parsing settings.
//
// Declare arguments with the typed methods (Bool, String, Int, ...), tune
// entries with ModifyFn options (Alias, Position, Required, ...) and call
// Parse. After the first Parse the schema must not be modified. A schema may
// be shared by concurrent Parse calls as long as each call binds through its
// own Result rather than shared Var pointers.
type Schema struct {
	settings Settings

	args       []*argument.Argument
	longNames  map[string]*argument.Argument // long names and long aliases
	shortNames map[string]*argument.Argument // short names and short aliases

	// postParse validators run against the full assignment set.
	postParse []func(st *parseState) *ParseError

	// referenced collects argument names used by cross-argument validators
	// so Validate can reject dangling references.
	referenced []string
}

// New returns an empty Schema with default settings.
// This is the starting point when using cmdline.
// For example:
//
//	schema := cmdline.New()
func New() *Schema {
	return &Schema{
		settings:   defaultSettings(),
		longNames:  map[string]*argument.Argument{},
		shortNames: map[string]*argument.Argument{},
	}
}

// Settings setters. They are chainable and must be called before Parse.

// SetLongShortMode - Enables the dual prefix behaviour: long names only
// match long prefix tokens (`--name`), short names only match short prefix
// tokens (`-n`), and multiple short switches combine (`-abc` ≡ `-a -b -c`).
func (s *Schema) SetLongShortMode(on bool) *Schema {
	s.settings.LongShortMode = on
	return s
}

// SetPrefixTermination - Enables the terminator token (`--` by default).
// Every token after the terminator is treated as a plain value.
func (s *Schema) SetPrefixTermination(on bool) *Schema {
	s.settings.PrefixTermination = on
	return s
}

// SetTerminatorToken - Overrides the terminator token used when prefix
// termination is enabled.
func (s *Schema) SetTerminatorToken(token string) *Schema {
	s.settings.TerminatorToken = token
	return s
}

// SetDuplicatePolicy - Sets the action taken when a non multi-value argument
// is supplied more than once.
func (s *Schema) SetDuplicatePolicy(policy DuplicatePolicy) *Schema {
	s.settings.DuplicatePolicy = policy
	return s
}

// SetUnknownMode - Determines how to behave when encountering an unknown
// argument.
//
// • UnknownFail (default) will make Parse return an error with the unknown
// argument information.
//
// • UnknownWarn will print a user warning and leave the token in the
// remaining slice.
//
// • UnknownPass will silently leave the token in the remaining slice.
// This allows layering another parser on top of this one.
func (s *Schema) SetUnknownMode(mode UnknownMode) *Schema {
	s.settings.Unknown = mode
	return s
}

// SetCulture - Sets the locale used by numeric conversions.
// The default is language.Und which is locale invariant, so parsing results
// do not depend on the host machine's locale.
func (s *Schema) SetCulture(tag language.Tag) *Schema {
	s.settings.Culture = tag
	return s
}

// SetCaseInsensitiveNames - Long names and long aliases resolve ignoring
// case. Short names stay case sensitive.
func (s *Schema) SetCaseInsensitiveNames() *Schema {
	s.settings.CaseSensitiveNames = false
	return s
}

// SetAutoPrefixAliases - Enables or disables unique prefix resolution.
// Enabled by default.
func (s *Schema) SetAutoPrefixAliases(on bool) *Schema {
	s.settings.AutoPrefixAliases = on
	return s
}

// SetAllowWhitespaceSeparator - Enables or disables `-name value` (two
// tokens). When disabled a value can only be supplied inline, `-name:value`.
// Enabled by default.
func (s *Schema) SetAllowWhitespaceSeparator(on bool) *Schema {
	s.settings.AllowWhitespaceSeparator = on
	return s
}

// SetPrefixes - Overrides the name token prefixes.
// In long/short mode the two sets are independent, otherwise their union is
// the single prefix set that applies to all names.
func (s *Schema) SetPrefixes(long []string, short []string) *Schema {
	s.settings.LongPrefixes = long
	s.settings.ShortPrefixes = short
	return s
}

// SetNameValueSeparators - Overrides the characters that split a name token
// into name and inline value. Defaults to ":=".
func (s *Schema) SetNameValueSeparators(seps string) *Schema {
	s.settings.NameValueSeparators = seps
	return s
}

// register - adds a resolvable long spelling for the argument.
// failIfDefined: declaring the same name or alias twice is a programmer
// error, not something the end user can trigger, so it panics.
func (s *Schema) register(name string, arg *argument.Argument) {
	Logger.Printf("registering name %s\n", name)
	if name == "" {
		panic("argument/alias name can't be empty")
	}
	if v, ok := s.longNames[name]; ok {
		panic(fmt.Sprintf("argument/alias '%s' is already defined in argument '%s'", name, v.Name))
	}
	s.longNames[name] = arg
}

// registerShort - adds a resolvable short spelling for the argument.
func (s *Schema) registerShort(short string, arg *argument.Argument) {
	Logger.Printf("registering short name %s\n", short)
	if len([]rune(short)) != 1 {
		panic(fmt.Sprintf("short name '%s' for argument '%s' must be a single character", short, arg.Name))
	}
	if v, ok := s.shortNames[short]; ok {
		panic(fmt.Sprintf("short name '%s' is already defined in argument '%s'", short, v.Name))
	}
	s.shortNames[short] = arg
}

// positionalArgs - positional entries in effective order: sparse declared
// positions are normalized by sorting, ties break by declaration order.
func (s *Schema) positionalArgs() []*argument.Argument {
	list := []*argument.Argument{}
	for _, arg := range s.args {
		if arg.Positional() {
			list = append(list, arg)
		}
	}
	argument.SortPositional(list)
	return list
}

// Validate - checks the structural invariants of the schema.
//
// Validation is a pure function of the declarations: calling it any number
// of times yields the same outcome. Parse runs it before reading any token.
func (s *Schema) Validate() error {
	positionals := s.positionalArgs()
	seenOptional := ""
	for i, arg := range positionals {
		if arg.IsSwitch() {
			return fmt.Errorf("switch argument '%s' can't be positional%w", arg.Name, ErrInvalidSchema)
		}
		if arg.Required && seenOptional != "" {
			return fmt.Errorf("required positional argument '%s' declared after optional positional argument '%s'%w",
				arg.Name, seenOptional, ErrInvalidSchema)
		}
		if !arg.Required && seenOptional == "" {
			seenOptional = arg.Name
		}
		if arg.IsMulti() && i != len(positionals)-1 {
			return fmt.Errorf("multi-value positional argument '%s' must be the last positional argument%w",
				arg.Name, ErrInvalidSchema)
		}
	}
	for _, arg := range s.args {
		if arg.IsMulti() {
			if err := arg.ValidateMinMaxValues(); err != nil {
				return fmt.Errorf("argument '%s' definition error: %s%w", arg.Name, err, ErrInvalidSchema)
			}
		}
	}
	for _, name := range s.referenced {
		if _, ok := s.longNames[name]; !ok {
			return fmt.Errorf("validator references undeclared argument '%s'%w", name, ErrInvalidSchema)
		}
	}
	return nil
}

// equalName - long name comparison honoring the case sensitivity setting.
func (s *Schema) equalName(a, b string) bool {
	if s.settings.CaseSensitiveNames {
		return a == b
	}
	return strings.EqualFold(a, b)
}

func (s *Schema) hasNamePrefix(name, prefix string) bool {
	if s.settings.CaseSensitiveNames {
		return strings.HasPrefix(name, prefix)
	}
	if len(name) < len(prefix) {
		return false
	}
	return strings.EqualFold(name[:len(prefix)], prefix)
}

// resolution - outcome of resolving one candidate name.
type resolution struct {
	arg        *argument.Argument
	usedName   string   // the spelling that matched, recorded as CalledAs
	candidates []string // set on ambiguity
	ambiguous  bool
	found      bool
}

// sortedLongNames - the declared long spellings in lexical order.
// Resolution walks this list instead of the map so the outcome never
// depends on map iteration order.
func (s *Schema) sortedLongNames() []string {
	names := make([]string, 0, len(s.longNames))
	for name := range s.longNames {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// resolveName - resolves a candidate name against the declared arguments.
//
// Resolution order: exact long/short match first, then, when auto prefix
// aliases are enabled, a unique prefix of a declared long spelling.
// Resolution is a pure function of (candidate, schema, case policy), it
// never mutates parse state. With case insensitive names, a candidate whose
// folded form matches spellings of more than one argument is ambiguous.
func (s *Schema) resolveName(body string, scope tokenScope) resolution {
	// Exact matches take priority over prefix aliases.
	if scope == scopeLong || scope == scopeAll {
		if s.settings.CaseSensitiveNames {
			if arg, ok := s.longNames[body]; ok {
				return resolution{arg: arg, usedName: body, found: true}
			}
		} else {
			matchedArgs := map[*argument.Argument]bool{}
			candidates := []string{}
			for _, name := range s.sortedLongNames() {
				if !s.equalName(name, body) {
					continue
				}
				arg := s.longNames[name]
				if !matchedArgs[arg] {
					matchedArgs[arg] = true
					candidates = append(candidates, name)
				}
			}
			if len(matchedArgs) == 1 {
				return resolution{arg: s.longNames[candidates[0]], usedName: candidates[0], found: true}
			}
			if len(matchedArgs) > 1 {
				return resolution{ambiguous: true, candidates: candidates}
			}
		}
	}
	if scope == scopeShort || scope == scopeAll {
		// Short names are always case sensitive.
		if arg, ok := s.shortNames[body]; ok {
			return resolution{arg: arg, usedName: body, found: true}
		}
	}
	if !s.settings.AutoPrefixAliases || scope == scopeShort {
		return resolution{}
	}

	// Unique prefix resolution over long spellings.
	matchedArgs := map[*argument.Argument]bool{}
	candidates := []string{}
	for _, name := range s.sortedLongNames() {
		if s.hasNamePrefix(name, body) {
			arg := s.longNames[name]
			if !matchedArgs[arg] {
				matchedArgs[arg] = true
				candidates = append(candidates, name)
			}
		}
	}
	if len(matchedArgs) == 1 {
		return resolution{arg: s.longNames[candidates[0]], usedName: body, found: true}
	}
	if len(matchedArgs) > 1 {
		return resolution{ambiguous: true, candidates: candidates}
	}
	return resolution{}
}
