// This file is part of cmdline.
//
// Copyright (C) 2026  The cmdline Authors
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package text - User facing messages used on errors and warnings.
//
// The messages are exposed as variables so a caller that wants different
// wording can overwrite them before parsing.
package text

// ErrorUnknownArgument holds the text for the unknown argument error.
// It has a string placeholder '%s' for the name used on the command line.
var ErrorUnknownArgument = "unknown argument '%s'"

// ErrorAmbiguousArgument holds the text for the ambiguous prefix error.
// It has a string placeholder '%s' for the name used on the command line and
// a '%s' for the comma separated list of candidates.
var ErrorAmbiguousArgument = "ambiguous argument '%s', could be any of: %s"

// ErrorMissingValue holds the text for the missing value error.
// It has a string placeholder '%s' for the name of the argument missing the value.
var ErrorMissingValue = "missing value for argument '%s'"

// ErrorConvertValue holds the text for the conversion error.
// Placeholders: value, argument name, expected type hint.
var ErrorConvertValue = "invalid value '%s' for argument '%s', expected %s"

// ErrorValidation holds the text for a failed validator.
// Placeholders: argument name, validator message.
var ErrorValidation = "invalid value for argument '%s': %s"

// ErrorDuplicateArgument holds the text for the duplicate argument error.
// It has a string placeholder '%s' for the name of the argument.
var ErrorDuplicateArgument = "argument '%s' was supplied more than once"

// ErrorMissingRequiredArgument holds the text for the missing required
// argument error.
// It has a string placeholder '%s' for the name of the argument.
var ErrorMissingRequiredArgument = "missing required argument '%s'"

// ErrorTooManyPositionalArguments holds the text for the error shown when a
// value is left without a positional slot to receive it.
// It has a string placeholder '%s' for the value.
var ErrorTooManyPositionalArguments = "unexpected argument '%s'"

// ErrorNullArgumentValue holds the text for the error shown when a converter
// produced no value for an argument that does not accept one.
// It has a string placeholder '%s' for the name of the argument.
var ErrorNullArgumentValue = "argument '%s' does not accept an empty value"

// ErrorArgumentIsNotKeyValue holds the text shown when a dictionary argument
// receives a value without the key/value separator.
// Placeholders: argument name, separator.
var ErrorArgumentIsNotKeyValue = "argument '%s' should be of type 'key%svalue'"

// ErrorDuplicateKey holds the text shown when a dictionary argument receives
// the same key twice and duplicates are not allowed.
// Placeholders: key, argument name.
var ErrorDuplicateKey = "duplicate key '%s' for argument '%s'"

// WarningDuplicateArgument is printed when the duplicate policy is set to
// warn and replace.
// It has a string placeholder '%s' for the name of the argument.
var WarningDuplicateArgument = "WARNING: argument '%s' was supplied more than once, using the latest value"

// WarningUnknownArgument is printed when the unknown argument mode is set to warn.
// It has a string placeholder '%s' for the name used on the command line.
var WarningUnknownArgument = "WARNING: unknown argument '%s'"
