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
	"os"
	"strings"

	"github.com/clibind/cmdline/internal/argument"
	"github.com/clibind/cmdline/internal/sliceiterator"
	"github.com/clibind/cmdline/text"
)

// Parse - Call the parse method when done declaring arguments.
// It operates on any given slice of strings, normally os.Args[1:].
//
// The schema is validated first; a structurally invalid schema fails before
// any token is read. The returned error, when not a schema error, is always
// a *ParseError wrapping one of the sentinel kinds.
//
// Cancellation is not an error: when a cancelling argument was supplied the
// returned Result reports Cancelled() true with a nil error and holds the
// unconsumed tokens.
func (s *Schema) Parse(args []string) (*Result, error) {
	Logger.Printf("parse args: %v(%d)\n", args, len(args))
	if err := s.Validate(); err != nil {
		return nil, err
	}
	// Ensure consistent behaviour for empty and nil slices.
	if args == nil {
		args = []string{}
	}
	st := newParseState(s, args)
	if perr := st.run(); perr != nil {
		return nil, perr
	}
	if st.cancelled {
		return newResult(st), nil
	}
	if perr := st.finish(); perr != nil {
		return nil, perr
	}
	return newResult(st), nil
}

// parseState - mutable state for a single parse invocation.
//
// Created fresh per Parse call and discarded once the Result is assembled.
// The schema itself is never mutated, which is what makes a schema reusable
// across invocations.
type parseState struct {
	schema *Schema
	set    Settings
	args   []string
	iter   *sliceiterator.Iterator

	counts        map[*argument.Argument]int    // supplies per entry
	elementCounts map[*argument.Argument]int    // accumulated elements per entry
	calledAs      map[*argument.Argument]string // spelling used on the CLI
	seenKeys      map[*argument.Argument]map[string]bool

	positionals    []*argument.Argument
	nextPositional int

	remaining   []string
	terminated  bool
	cancelled   bool
	cancelledBy *argument.Argument
	showHelp    bool
}

func newParseState(schema *Schema, args []string) *parseState {
	return &parseState{
		schema:        schema,
		set:           schema.settings,
		args:          args,
		iter:          sliceiterator.New(args),
		counts:        map[*argument.Argument]int{},
		elementCounts: map[*argument.Argument]int{},
		calledAs:      map[*argument.Argument]string{},
		seenKeys:      map[*argument.Argument]map[string]bool{},
		positionals:   schema.positionalArgs(),
	}
}

// run - the single left to right pass.
//
// Assignment order is strictly token order. The only lookahead is the "does
// the next token look like a name" decision used by whitespace separated
// values and multi-value run absorption.
func (st *parseState) run() *ParseError {
	for st.iter.Next() {
		tok := st.iter.Value()
		Logger.Printf("parse input arg: %s\n", tok)

		if st.terminated {
			if perr := st.bindPositional(tok); perr != nil {
				return perr
			}
			if st.cancelled {
				break
			}
			continue
		}
		if st.set.PrefixTermination && tok == st.set.TerminatorToken {
			Logger.Printf("terminator %s found\n", tok)
			st.terminated = true
			continue
		}

		name, isName := splitNameToken(tok, st.set)
		if !isName {
			if perr := st.bindPositional(tok); perr != nil {
				return perr
			}
			if st.cancelled {
				break
			}
			continue
		}
		if perr := st.bindNamed(name); perr != nil {
			return perr
		}
		if st.cancelled {
			break
		}
	}
	return nil
}

// bindNamed - resolve a name token and assign its value(s).
func (st *parseState) bindNamed(tok nameToken) *ParseError {
	start := st.iter.Index()
	res := st.schema.resolveName(tok.Body, tok.Scope)
	if res.ambiguous {
		return ambiguousPrefixError(tok.Raw, res.candidates)
	}
	if !res.found {
		// Switch combination: only in long/short mode, only for short prefix
		// tokens without an inline value that did not resolve as a whole.
		if st.set.LongShortMode && tok.Scope == scopeShort && !tok.HasInline && len([]rune(tok.Body)) > 1 {
			if switches, ok := expandSwitches(st.schema, tok.Body); ok {
				for _, sw := range switches {
					if perr := st.assignSwitch(sw, sw.Short, nameToken{}); perr != nil {
						return perr
					}
					if sw.CancelsParsing {
						st.cancel(sw, start)
						return nil
					}
				}
				return nil
			}
		}
		return st.handleUnknown(tok)
	}

	arg := res.arg
	Logger.Printf("resolved %s to argument %s\n", tok.Raw, arg.Name)
	var perr *ParseError
	if arg.IsSwitch() {
		perr = st.assignSwitch(arg, res.usedName, tok)
	} else {
		perr = st.assignNamed(arg, res.usedName, tok)
	}
	if perr != nil {
		return perr
	}
	if arg.CancelsParsing {
		st.cancel(arg, start)
	}
	return nil
}

// cancel - record the terminal cancellation state.
// The preserved remainder starts at the cancelling token's own position.
func (st *parseState) cancel(arg *argument.Argument, startIdx int) {
	st.cancelled = true
	st.cancelledBy = arg
	st.showHelp = arg.ShowHelp
	if startIdx >= 0 && startIdx < len(st.args) {
		st.remaining = append(st.remaining, st.args[startIdx:]...)
	}
}

// assignSwitch - a switch is set by presence alone. An inline value is
// allowed and must convert to bool; a whitespace separated value is never
// consumed by a switch.
func (st *parseState) assignSwitch(arg *argument.Argument, usedName string, tok nameToken) *ParseError {
	if perr := st.noteSupply(arg, usedName); perr != nil {
		return perr
	}
	if tok.HasInline {
		return st.applyElement(arg, tok.Inline)
	}
	arg.SetBool(true)
	return nil
}

// assignNamed - gather the raw value(s) for a non-switch named argument and
// apply them.
func (st *parseState) assignNamed(arg *argument.Argument, usedName string, tok nameToken) *ParseError {
	raws := []string{}
	consumed := 0
	if tok.HasInline {
		// An inline value satisfies the first slot.
		raws = append(raws, tok.Inline)
		consumed = 1
	}
	// Whole-token consumption only applies when the whitespace separator is
	// enabled; with it off an argument's values are inline only.
	if st.set.AllowWhitespaceSeparator {
		// Consume whole tokens until the minimum is met. The first value
		// token is consumed whole no matter what it looks like; later ones
		// stop at name tokens.
		for ; consumed < arg.MinValues; consumed++ {
			value, ok := st.iter.Peek()
			if !ok {
				return missingValueError(arg.Name)
			}
			if consumed > 0 {
				if _, is := splitNameToken(value, st.set); is {
					return missingValueError(arg.Name)
				}
			}
			st.iter.Next()
			raws = append(raws, value)
		}
		// Absorb additional values up to the maximum, stopping at the next
		// token that looks like a name.
		for ; consumed < arg.MaxValues; consumed++ {
			value, ok := st.iter.Peek()
			if !ok {
				break
			}
			if _, is := splitNameToken(value, st.set); is {
				break
			}
			st.iter.Next()
			raws = append(raws, value)
		}
	}
	if consumed < arg.MinValues {
		return missingValueError(arg.Name)
	}
	return st.assignValues(arg, usedName, raws)
}

// bindPositional - assign a plain value to the positional entry at the
// cursor, skipping entries already satisfied by name. A multi-value
// positional entry is always last and absorbs every remaining plain value.
func (st *parseState) bindPositional(tok string) *ParseError {
	for st.nextPositional < len(st.positionals) {
		p := st.positionals[st.nextPositional]
		if p.IsMulti() {
			break
		}
		if st.counts[p] > 0 {
			st.nextPositional++
			continue
		}
		break
	}
	if st.nextPositional >= len(st.positionals) {
		return tooManyPositionalError(tok)
	}
	p := st.positionals[st.nextPositional]
	if !p.IsMulti() {
		st.nextPositional++
	}
	if perr := st.assignValues(p, p.Name, []string{tok}); perr != nil {
		return perr
	}
	if p.CancelsParsing {
		st.cancel(p, st.iter.Index())
	}
	return nil
}

// noteSupply - duplicate handling and call bookkeeping for one supply.
func (st *parseState) noteSupply(arg *argument.Argument, usedName string) *ParseError {
	if !arg.IsMulti() && st.counts[arg] > 0 {
		switch st.set.DuplicatePolicy {
		case DuplicateError:
			return duplicateArgumentError(arg.Name)
		case DuplicateWarnReplace:
			fmt.Fprintf(Writer, text.WarningDuplicateArgument+"\n", arg.Name)
		}
	}
	st.counts[arg]++
	st.calledAs[arg] = usedName
	return nil
}

// assignValues - split raw values into elements and run each through the
// validation/conversion pipeline.
func (st *parseState) assignValues(arg *argument.Argument, usedName string, raws []string) *ParseError {
	if perr := st.noteSupply(arg, usedName); perr != nil {
		return perr
	}
	elements := []string{}
	for _, raw := range raws {
		if arg.ElementSep != "" {
			// Plain split, no escaping. Documented limitation.
			elements = append(elements, strings.Split(raw, arg.ElementSep)...)
		} else {
			elements = append(elements, raw)
		}
	}
	for _, e := range elements {
		if perr := st.applyElement(arg, e); perr != nil {
			return perr
		}
	}
	return nil
}

// applyElement - the per element pipeline, stages in fixed order:
// pre-conversion validators on the raw string, conversion, null check,
// post-conversion validators on the typed value, store.
// The first failure wins and fails the whole parse.
func (st *parseState) applyElement(arg *argument.Argument, raw string) *ParseError {
	for _, v := range arg.PreValidators {
		if err := v(raw); err != nil {
			return validationError(arg.Name, raw, err)
		}
	}
	if arg.Arity == argument.Dictionary {
		return st.applyDictionaryElement(arg, raw)
	}
	value, err := arg.Converter(raw, st.set.Culture)
	if err != nil {
		return conversionError(arg.Name, raw, arg.TypeHint)
	}
	if value == nil {
		if !arg.AllowsNull {
			return nullValueError(arg.Name)
		}
		st.elementCounts[arg]++
		return nil
	}
	for _, v := range arg.PostValidators {
		if err := v(value); err != nil {
			return validationError(arg.Name, raw, err)
		}
	}
	if err := arg.Store(value); err != nil {
		return newParseError(ErrInvalidValueConversion, arg.Name, raw, err.Error())
	}
	st.elementCounts[arg]++
	return nil
}

// applyDictionaryElement - split the element into exactly two parts on the
// key/value separator and store the pair.
func (st *parseState) applyDictionaryElement(arg *argument.Argument, raw string) *ParseError {
	kv := strings.SplitN(raw, arg.KeyValueSep, 2)
	if len(kv) < 2 {
		return newParseError(ErrValidationFailed, arg.Name, raw,
			fmt.Sprintf(text.ErrorArgumentIsNotKeyValue, arg.Name, arg.KeyValueSep))
	}
	key, rawValue := kv[0], kv[1]
	if st.seenKeys[arg] == nil {
		st.seenKeys[arg] = map[string]bool{}
	}
	if st.seenKeys[arg][key] && !arg.AllowDuplicateKeys {
		return newParseError(ErrValidationFailed, arg.Name, raw,
			fmt.Sprintf(text.ErrorDuplicateKey, key, arg.Name))
	}
	value, err := arg.Converter(rawValue, st.set.Culture)
	if err != nil {
		return conversionError(arg.Name, rawValue, arg.TypeHint)
	}
	if value == nil {
		if !arg.AllowsNull {
			return nullValueError(arg.Name)
		}
		return nil
	}
	for _, v := range arg.PostValidators {
		if err := v(value); err != nil {
			return validationError(arg.Name, raw, err)
		}
	}
	s, ok := value.(string)
	if !ok {
		return newParseError(ErrInvalidValueConversion, arg.Name, rawValue,
			fmt.Sprintf("converter for dictionary argument '%s' returned %T, expected string", arg.Name, value))
	}
	if err := arg.StoreKeyValue(key, s); err != nil {
		return newParseError(ErrInvalidValueConversion, arg.Name, raw, err.Error())
	}
	st.seenKeys[arg][key] = true
	st.elementCounts[arg]++
	return nil
}

// handleUnknown - a name token that did not resolve.
func (st *parseState) handleUnknown(tok nameToken) *ParseError {
	switch st.set.Unknown {
	case UnknownFail:
		return unknownArgumentError(tok.Raw)
	case UnknownWarn:
		fmt.Fprintf(Writer, text.WarningUnknownArgument+"\n", tok.Raw)
	}
	st.remaining = append(st.remaining, tok.Raw)
	return nil
}

// finish - checks that run after the pass: env var fallback, required
// arguments, post-parse validators.
func (st *parseState) finish() *ParseError {
	// Env var fallback, precedence CLI > env > default. Only switches and
	// single value entries support it.
	for _, arg := range st.schema.args {
		if arg.EnvVar == "" || st.counts[arg] > 0 {
			continue
		}
		value := os.Getenv(arg.EnvVar)
		if value == "" {
			continue
		}
		switch arg.Arity {
		case argument.Switch:
			v := strings.ToLower(value)
			if v == "true" || v == "false" {
				arg.SetBool(v == "true")
				st.counts[arg]++
				st.calledAs[arg] = arg.EnvVar
			}
		case argument.Single:
			if perr := st.applyElement(arg, value); perr != nil {
				return perr
			}
			st.counts[arg]++
			st.calledAs[arg] = arg.EnvVar
		}
	}

	// Positional required entries are checked in position order so the
	// earliest missing one is reported first.
	for _, p := range st.positionals {
		if p.Required && st.counts[p] == 0 {
			return missingRequiredError(p.Name, p.RequiredErr)
		}
	}
	for _, arg := range st.schema.args {
		if arg.Positional() {
			continue
		}
		if arg.Required && st.counts[arg] == 0 {
			return missingRequiredError(arg.Name, arg.RequiredErr)
		}
	}

	for _, validate := range st.schema.postParse {
		if perr := validate(st); perr != nil {
			return perr
		}
	}
	return nil
}

// supplied - tells if the argument with the given declared name received at
// least one value. Used by cross-argument validators.
func (st *parseState) supplied(name string) bool {
	arg, ok := st.schema.longNames[name]
	if !ok {
		return false
	}
	return st.counts[arg] > 0
}
