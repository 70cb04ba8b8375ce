// This file is part of cmdline.
//
// Copyright (C) 2026  The cmdline Authors
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package cmdline

import (
	"encoding"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/language"

	"github.com/clibind/cmdline/internal/argument"
)

// ConverterFunc - Signature for element converters.
// The raw string element is converted under the given culture, language.Und
// being locale invariant. Returning (nil, nil) represents a null result,
// accepted only for arguments declared with AllowNull.
type ConverterFunc = argument.ConverterFunc

// resolveConverter - Capability lookup for the converter of an argument.
// The fallback order is fixed: custom override, built-in converter for the
// argument's value type, encoding.TextUnmarshaler for custom targets.
// Returns nil when no resolver can serve the argument.
func resolveConverter(arg *argument.Argument, target interface{}) ConverterFunc {
	for _, resolve := range converterResolvers {
		if c := resolve(arg, target); c != nil {
			return c
		}
	}
	return nil
}

var converterResolvers = []func(*argument.Argument, interface{}) ConverterFunc{
	func(arg *argument.Argument, _ interface{}) ConverterFunc {
		return arg.Converter
	},
	func(arg *argument.Argument, _ interface{}) ConverterFunc {
		return builtinConverter(arg.ArgType)
	},
	func(_ *argument.Argument, target interface{}) ConverterFunc {
		if u, ok := target.(encoding.TextUnmarshaler); ok {
			return textUnmarshalerConverter(u)
		}
		return nil
	},
}

// builtinConverter - built-in converters keyed by value type.
func builtinConverter(t argument.Type) ConverterFunc {
	switch t {
	case argument.BoolType:
		return convertBool
	case argument.StringType, argument.StringSliceType, argument.StringMapType:
		return convertString
	case argument.IntType, argument.IntSliceType:
		return convertInt
	case argument.Int64Type:
		return convertInt64
	case argument.Float64Type, argument.Float64SliceType:
		return convertFloat64
	case argument.DurationType:
		return convertDuration
	case argument.TimeType:
		return convertTime
	}
	return nil
}

func convertString(raw string, _ language.Tag) (interface{}, error) {
	return raw, nil
}

func convertBool(raw string, _ language.Tag) (interface{}, error) {
	b, err := strconv.ParseBool(strings.ToLower(raw))
	if err != nil {
		return nil, err
	}
	return b, nil
}

func convertInt(raw string, culture language.Tag) (interface{}, error) {
	i, err := strconv.Atoi(normalizeInteger(raw, culture))
	if err != nil {
		return nil, err
	}
	return i, nil
}

func convertInt64(raw string, culture language.Tag) (interface{}, error) {
	i, err := strconv.ParseInt(normalizeInteger(raw, culture), 10, 64)
	if err != nil {
		return nil, err
	}
	return i, nil
}

func convertFloat64(raw string, culture language.Tag) (interface{}, error) {
	f, err := strconv.ParseFloat(normalizeDecimal(raw, culture), 64)
	if err != nil {
		return nil, err
	}
	return f, nil
}

func convertDuration(raw string, _ language.Tag) (interface{}, error) {
	d, err := time.ParseDuration(raw)
	if err != nil {
		return nil, err
	}
	return d, nil
}

// convertTime - timestamps are always RFC 3339, independent of culture, to
// keep parsing deterministic across machines.
func convertTime(raw string, _ language.Tag) (interface{}, error) {
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, err
	}
	return t, nil
}

func textUnmarshalerConverter(u encoding.TextUnmarshaler) ConverterFunc {
	return func(raw string, _ language.Tag) (interface{}, error) {
		if err := u.UnmarshalText([]byte(raw)); err != nil {
			return nil, err
		}
		return u, nil
	}
}

// decimalCommaBases - base languages that write decimal commas and use the
// dot (or space) to group digits. Only the separator convention is modeled,
// digits themselves are always ASCII.
var decimalCommaBases = map[string]bool{
	"cs": true, "da": true, "de": true, "es": true, "fi": true,
	"fr": true, "hu": true, "it": true, "nb": true, "nl": true,
	"pl": true, "pt": true, "ru": true, "sv": true, "tr": true,
}

func decimalComma(culture language.Tag) bool {
	if culture == language.Und {
		return false
	}
	base, _ := culture.Base()
	return decimalCommaBases[base.String()]
}

// normalizeDecimal - rewrites a decimal-comma spelling to the invariant
// spelling understood by strconv. Under language.Und the raw value passes
// through untouched.
func normalizeDecimal(raw string, culture language.Tag) string {
	if !decimalComma(culture) {
		return raw
	}
	raw = strings.ReplaceAll(raw, ".", "")
	return strings.ReplaceAll(raw, ",", ".")
}

// normalizeInteger - strips the grouping separator of decimal-comma locales.
func normalizeInteger(raw string, culture language.Tag) string {
	if !decimalComma(culture) {
		return raw
	}
	return strings.ReplaceAll(raw, ".", "")
}
