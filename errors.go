// This file is part of cmdline.
//
// Copyright (C) 2026  The cmdline Authors
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package cmdline

import (
	"errors"
	"fmt"
	"strings"

	"github.com/clibind/cmdline/text"
)

// Sentinel errors, one per error kind.
// They carry no text of their own, the message lives in the wrapping
// *ParseError. Use them with errors.Is to branch on the kind:
//
//	if errors.Is(err, cmdline.ErrMissingRequiredArgument) { ... }
var (
	// ErrUnknownArgument - a name token did not resolve to a declared argument.
	ErrUnknownArgument = errors.New("")

	// ErrAmbiguousPrefixAlias - a prefix matched more than one declared name.
	ErrAmbiguousPrefixAlias = errors.New("")

	// ErrMissingValue - a non-switch named argument had no following token
	// and no inline value.
	ErrMissingValue = errors.New("")

	// ErrInvalidValueConversion - the raw value could not be converted to the
	// target type.
	ErrInvalidValueConversion = errors.New("")

	// ErrValidationFailed - a validator rejected a value or the assignment set.
	ErrValidationFailed = errors.New("")

	// ErrDuplicateArgument - a non multi-value argument was supplied more
	// than once and the duplicate policy is DuplicateError.
	ErrDuplicateArgument = errors.New("")

	// ErrMissingRequiredArgument - a required argument never received a value.
	ErrMissingRequiredArgument = errors.New("")

	// ErrTooManyPositionalArguments - a value was left without a positional
	// slot to receive it.
	ErrTooManyPositionalArguments = errors.New("")

	// ErrNullArgumentValue - conversion produced no value for an argument
	// that does not accept one.
	ErrNullArgumentValue = errors.New("")

	// ErrInvalidSchema - the schema declarations violate a structural
	// invariant. Reported before any token is read.
	ErrInvalidSchema = errors.New("")
)

// ParseError - structured parse failure.
//
// Every error returned by Parse wraps one of the sentinel kinds above, and
// can also be inspected with errors.As to recover the offending argument
// name and the raw value involved without re-deriving parser state.
type ParseError struct {
	// Argument is the declared name of the offending argument.
	// Empty when the failure is not tied to a declared argument, for example
	// an unknown name token.
	Argument string

	// Value is the raw input involved in the failure, when there is one.
	Value string

	// Candidates lists the declared names an ambiguous prefix matched.
	// Only set for the ambiguous prefix kind.
	Candidates []string

	kind    error
	message string
}

func (e *ParseError) Error() string {
	return e.message
}

func (e *ParseError) Unwrap() error {
	return e.kind
}

func newParseError(kind error, argument, value, message string) *ParseError {
	return &ParseError{
		Argument: argument,
		Value:    value,
		kind:     kind,
		message:  message,
	}
}

func unknownArgumentError(used string) *ParseError {
	return newParseError(ErrUnknownArgument, "", used, fmt.Sprintf(text.ErrorUnknownArgument, used))
}

func ambiguousPrefixError(used string, candidates []string) *ParseError {
	e := newParseError(ErrAmbiguousPrefixAlias, "", used,
		fmt.Sprintf(text.ErrorAmbiguousArgument, used, strings.Join(candidates, ", ")))
	e.Candidates = candidates
	return e
}

func missingValueError(name string) *ParseError {
	return newParseError(ErrMissingValue, name, "", fmt.Sprintf(text.ErrorMissingValue, name))
}

func conversionError(name, value, typeHint string) *ParseError {
	return newParseError(ErrInvalidValueConversion, name, value,
		fmt.Sprintf(text.ErrorConvertValue, value, name, typeHint))
}

func validationError(name, value string, cause error) *ParseError {
	return newParseError(ErrValidationFailed, name, value,
		fmt.Sprintf(text.ErrorValidation, name, cause))
}

func duplicateArgumentError(name string) *ParseError {
	return newParseError(ErrDuplicateArgument, name, "", fmt.Sprintf(text.ErrorDuplicateArgument, name))
}

func missingRequiredError(name, custom string) *ParseError {
	if custom != "" {
		return newParseError(ErrMissingRequiredArgument, name, "", custom)
	}
	return newParseError(ErrMissingRequiredArgument, name, "", fmt.Sprintf(text.ErrorMissingRequiredArgument, name))
}

func tooManyPositionalError(value string) *ParseError {
	return newParseError(ErrTooManyPositionalArguments, "", value,
		fmt.Sprintf(text.ErrorTooManyPositionalArguments, value))
}

func nullValueError(name string) *ParseError {
	return newParseError(ErrNullArgumentValue, name, "", fmt.Sprintf(text.ErrorNullArgumentValue, name))
}
