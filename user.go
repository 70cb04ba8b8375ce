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
	"time"

	"github.com/clibind/cmdline/internal/argument"
)

// ModifyFn - Function signature for functions that modify an argument at
// declaration time.
type ModifyFn func(schema *Schema, arg *argument.Argument)

// addVar - shared declaration plumbing: create the entry, register its name,
// apply the modifiers and resolve its converter.
func (s *Schema) addVar(data interface{}, name string, t argument.Type, fns ...ModifyFn) *argument.Argument {
	arg := argument.New(name, t, data)
	arg.DeclOrder = len(s.args)
	s.register(name, arg)
	s.args = append(s.args, arg)
	for _, fn := range fns {
		fn(s, arg)
	}
	arg.Converter = resolveConverter(arg, data)
	if arg.Converter == nil {
		panic(fmt.Sprintf("argument '%s' has no converter: provide one with Converter or bind a target implementing encoding.TextUnmarshaler", name))
	}
	return arg
}

func validateMinMax(name string, arg *argument.Argument) {
	if err := arg.ValidateMinMaxValues(); err != nil {
		panic(fmt.Sprintf("%s definition error: %s", name, err))
	}
}

// Bool - define a switch argument and return a pointer to its value.
// A switch is set to true by presence alone; an inline value
// (`--verbose:false`) must convert to bool.
func (s *Schema) Bool(name string, def bool, fns ...ModifyFn) *bool {
	s.BoolVar(&def, name, def, fns...)
	return &def
}

// BoolVar - define a switch argument.
// The result will be available through the variable marked by the given pointer.
func (s *Schema) BoolVar(p *bool, name string, def bool, fns ...ModifyFn) {
	*p = def
	s.addVar(p, name, argument.BoolType, fns...)
}

// String - define a string argument and return a pointer to its value.
// If not supplied, the value remains the given default.
func (s *Schema) String(name, def string, fns ...ModifyFn) *string {
	s.StringVar(&def, name, def, fns...)
	return &def
}

// StringVar - define a string argument.
// The result will be available through the variable marked by the given pointer.
func (s *Schema) StringVar(p *string, name, def string, fns ...ModifyFn) {
	*p = def
	s.addVar(p, name, argument.StringType, fns...)
}

// Int - define an int argument and return a pointer to its value.
func (s *Schema) Int(name string, def int, fns ...ModifyFn) *int {
	s.IntVar(&def, name, def, fns...)
	return &def
}

// IntVar - define an int argument.
// The result will be available through the variable marked by the given pointer.
func (s *Schema) IntVar(p *int, name string, def int, fns ...ModifyFn) {
	*p = def
	s.addVar(p, name, argument.IntType, fns...)
}

// Int64 - define an int64 argument and return a pointer to its value.
func (s *Schema) Int64(name string, def int64, fns ...ModifyFn) *int64 {
	s.Int64Var(&def, name, def, fns...)
	return &def
}

// Int64Var - define an int64 argument.
// The result will be available through the variable marked by the given pointer.
func (s *Schema) Int64Var(p *int64, name string, def int64, fns ...ModifyFn) {
	*p = def
	s.addVar(p, name, argument.Int64Type, fns...)
}

// Float64 - define a float64 argument and return a pointer to its value.
func (s *Schema) Float64(name string, def float64, fns ...ModifyFn) *float64 {
	s.Float64Var(&def, name, def, fns...)
	return &def
}

// Float64Var - define a float64 argument.
// The result will be available through the variable marked by the given pointer.
func (s *Schema) Float64Var(p *float64, name string, def float64, fns ...ModifyFn) {
	*p = def
	s.addVar(p, name, argument.Float64Type, fns...)
}

// Duration - define a time.Duration argument and return a pointer to its
// value. Values use Go duration syntax, for example `1h30m`.
func (s *Schema) Duration(name string, def time.Duration, fns ...ModifyFn) *time.Duration {
	s.DurationVar(&def, name, def, fns...)
	return &def
}

// DurationVar - define a time.Duration argument.
func (s *Schema) DurationVar(p *time.Duration, name string, def time.Duration, fns ...ModifyFn) {
	*p = def
	s.addVar(p, name, argument.DurationType, fns...)
}

// Time - define a time.Time argument and return a pointer to its value.
// Values are RFC 3339 timestamps regardless of culture.
func (s *Schema) Time(name string, def time.Time, fns ...ModifyFn) *time.Time {
	s.TimeVar(&def, name, def, fns...)
	return &def
}

// TimeVar - define a time.Time argument.
func (s *Schema) TimeVar(p *time.Time, name string, def time.Time, fns ...ModifyFn) {
	*p = def
	s.addVar(p, name, argument.TimeType, fns...)
}

// StringSlice - define a multi-value string argument.
//
// It accepts multiple supplies of the same argument and appends them:
// `--item a --item b` yields []string{"a", "b"}.
//
// min and max bound how many values one supply consumes. With max 3,
// `--item a b c` consumes all three in one whitespace separated run.
// When min is bigger than 1, each supply must provide at least min values.
func (s *Schema) StringSlice(name string, min, max int, fns ...ModifyFn) *[]string {
	v := []string{}
	s.StringSliceVar(&v, name, min, max, fns...)
	return &v
}

// StringSliceVar - define a multi-value string argument bound to the given
// slice pointer.
func (s *Schema) StringSliceVar(p *[]string, name string, min, max int, fns ...ModifyFn) {
	arg := s.addVar(p, name, argument.StringSliceType, fns...)
	arg.MinValues = min
	arg.MaxValues = max
	validateMinMax(name, arg)
}

// IntSlice - define a multi-value int argument.
// See StringSlice for the min/max semantics.
func (s *Schema) IntSlice(name string, min, max int, fns ...ModifyFn) *[]int {
	v := []int{}
	s.IntSliceVar(&v, name, min, max, fns...)
	return &v
}

// IntSliceVar - define a multi-value int argument bound to the given slice
// pointer.
func (s *Schema) IntSliceVar(p *[]int, name string, min, max int, fns ...ModifyFn) {
	arg := s.addVar(p, name, argument.IntSliceType, fns...)
	arg.MinValues = min
	arg.MaxValues = max
	validateMinMax(name, arg)
}

// Float64Slice - define a multi-value float64 argument.
// See StringSlice for the min/max semantics.
func (s *Schema) Float64Slice(name string, min, max int, fns ...ModifyFn) *[]float64 {
	v := []float64{}
	s.Float64SliceVar(&v, name, min, max, fns...)
	return &v
}

// Float64SliceVar - define a multi-value float64 argument bound to the given
// slice pointer.
func (s *Schema) Float64SliceVar(p *[]float64, name string, min, max int, fns ...ModifyFn) {
	arg := s.addVar(p, name, argument.Float64SliceType, fns...)
	arg.MinValues = min
	arg.MaxValues = max
	validateMinMax(name, arg)
}

// StringMap - define a dictionary argument.
//
// It accepts multiple supplies of `key=value` type and adds them to the map:
// `--def k=v --def k2=v2` yields map[string]string{"k": "v", "k2": "v2"}.
// Supplying the same key twice is an error unless AllowDuplicateKeys is set,
// in which case the last value wins.
func (s *Schema) StringMap(name string, min, max int, fns ...ModifyFn) map[string]string {
	m := map[string]string{}
	s.StringMapVar(&m, name, min, max, fns...)
	return m
}

// StringMapVar - define a dictionary argument bound to the given map pointer.
func (s *Schema) StringMapVar(p *map[string]string, name string, min, max int, fns ...ModifyFn) {
	if *p == nil {
		*p = map[string]string{}
	}
	arg := s.addVar(p, name, argument.StringMapType, fns...)
	arg.MinValues = min
	arg.MaxValues = max
	validateMinMax(name, arg)
}

// Var - define a single-value argument with a custom target.
// The target must implement encoding.TextUnmarshaler or the declaration must
// provide a Converter, otherwise Var panics.
func (s *Schema) Var(data interface{}, name string, fns ...ModifyFn) {
	s.addVar(data, name, argument.VarType, fns...)
}

// Argument modifiers.

// Alias - Adds long aliases to an argument.
func (s *Schema) Alias(aliases ...string) ModifyFn {
	return func(schema *Schema, arg *argument.Argument) {
		arg.SetAlias(aliases...)
		for _, a := range aliases {
			schema.register(a, arg)
		}
	}
}

// Short - Sets the single character short name of an argument.
// Only meaningful in long/short mode; in single mode a short name is just
// another spelling.
func (s *Schema) Short(short rune) ModifyFn {
	return func(schema *Schema, arg *argument.Argument) {
		schema.registerShort(string(short), arg)
		arg.SetShort(string(short))
	}
}

// ShortAlias - Adds single character aliases to an argument.
func (s *Schema) ShortAlias(aliases ...rune) ModifyFn {
	return func(schema *Schema, arg *argument.Argument) {
		for _, a := range aliases {
			schema.registerShort(string(a), arg)
			arg.SetShortAlias(string(a))
		}
	}
}

// Position - Makes the argument positional: a plain value token can bind to
// it by position in addition to its name. Sparse position values are allowed
// and are normalized at schema validation.
func (s *Schema) Position(pos int) ModifyFn {
	if pos < 0 {
		panic("position can't be negative")
	}
	return func(schema *Schema, arg *argument.Argument) {
		arg.Position = pos
	}
}

// Required - Makes Parse return an error when the argument is not supplied.
// Optionally provide a custom error message, a default error message will be
// used otherwise.
func (s *Schema) Required(msg ...string) ModifyFn {
	var errTxt string
	if len(msg) >= 1 {
		errTxt = msg[0]
	}
	return func(schema *Schema, arg *argument.Argument) {
		arg.SetRequired(errTxt)
	}
}

// GetEnv - Reads the given environment variable when the argument was not
// supplied on the command line. Precedence higher to lower: CLI value,
// environment variable, declared default.
//
// Only switches and single value arguments are supported; other types
// behave as a no-op. A value read from the env var satisfies Required and
// sets CalledAs to the env var name.
//
// For switches only the words "true" and "false" are valid, in any casing.
func (s *Schema) GetEnv(name string) ModifyFn {
	return func(schema *Schema, arg *argument.Argument) {
		arg.SetEnvVar(name)
	}
}

// AllowNull - Accepts a null conversion result for this argument: a custom
// converter returning (nil, nil) leaves the current value untouched instead
// of failing the parse.
func (s *Schema) AllowNull() ModifyFn {
	return func(schema *Schema, arg *argument.Argument) {
		arg.AllowsNull = true
	}
}

// CancelParsing - Successfully supplying this argument stops the parse.
// The remaining tokens are preserved in the Result.
func (s *Schema) CancelParsing() ModifyFn {
	return func(schema *Schema, arg *argument.Argument) {
		arg.CancelsParsing = true
	}
}

// CancelParsingWithHelp - Like CancelParsing and additionally flags the
// Result with HelpRequested. Typical for a `--help` switch; rendering the
// help is the caller's concern.
func (s *Schema) CancelParsingWithHelp() ModifyFn {
	return func(schema *Schema, arg *argument.Argument) {
		arg.CancelsParsing = true
		arg.ShowHelp = true
	}
}

// Separator - Splits every raw value for this argument on the given
// separator, `--list a,b,c` style. The split is plain, escaping the
// separator inside an element is not supported.
func (s *Schema) Separator(sep string) ModifyFn {
	return func(schema *Schema, arg *argument.Argument) {
		arg.ElementSep = sep
	}
}

// KeyValueSeparator - Overrides the dictionary key/value separator.
// Defaults to "=".
func (s *Schema) KeyValueSeparator(sep string) ModifyFn {
	return func(schema *Schema, arg *argument.Argument) {
		arg.KeyValueSep = sep
	}
}

// AllowDuplicateKeys - Accepts supplying the same dictionary key more than
// once, the last value wins.
func (s *Schema) AllowDuplicateKeys() ModifyFn {
	return func(schema *Schema, arg *argument.Argument) {
		arg.AllowDuplicateKeys = true
	}
}

// Converter - Overrides the converter for this argument. The custom
// converter takes priority over the built-in one for the argument's type.
func (s *Schema) Converter(fn ConverterFunc) ModifyFn {
	return func(schema *Schema, arg *argument.Argument) {
		arg.Converter = fn
	}
}
