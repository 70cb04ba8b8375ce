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
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/clibind/cmdline/internal/argument"
)

// Validators come in three flavours, matching the three pipeline stages:
//
//   - Pre-conversion validators see the raw string before conversion.
//   - Post-conversion validators see the typed value before it is stored.
//   - Post-parse validators see the whole assignment set once the pass is
//     done. Cross-argument validators live here.
//
// Any failure is reported as a validation error carrying the argument name,
// the offending value and the validator's message.

// ValidateRaw - Runs the given check on the raw string value before
// conversion. Multiple validators run in the order they were declared.
func (s *Schema) ValidateRaw(fn func(value string) error) ModifyFn {
	return func(schema *Schema, arg *argument.Argument) {
		arg.PreValidators = append(arg.PreValidators, fn)
	}
}

// ValidateValue - Runs the given check on the converted value before it is
// stored. The value carries the argument's Go type, for example int for Int
// arguments.
func (s *Schema) ValidateValue(fn func(value interface{}) error) ModifyFn {
	return func(schema *Schema, arg *argument.Argument) {
		arg.PostValidators = append(arg.PostValidators, fn)
	}
}

// OneOf - Restricts the raw values this argument accepts.
// The comparison happens before conversion and is always case sensitive.
func (s *Schema) OneOf(values ...string) ModifyFn {
	return s.ValidateRaw(func(value string) error {
		for _, v := range values {
			if value == v {
				return nil
			}
		}
		return fmt.Errorf("valid values are %s", strings.Join(values, ", "))
	})
}

// NonEmpty - Rejects the empty string as a value.
func (s *Schema) NonEmpty() ModifyFn {
	return s.ValidateRaw(func(value string) error {
		if value == "" {
			return fmt.Errorf("value can't be empty")
		}
		return nil
	})
}

// Pattern - Requires raw values to match the given regular expression.
// The expression is compiled at declaration time and a bad expression
// panics, same as any other declaration error.
func (s *Schema) Pattern(expr string) ModifyFn {
	re := regexp.MustCompile(expr)
	return s.ValidateRaw(func(value string) error {
		if !re.MatchString(value) {
			return fmt.Errorf("value must match %s", expr)
		}
		return nil
	})
}

// LengthBetween - Bounds the raw value's length in characters, inclusive on
// both ends.
func (s *Schema) LengthBetween(min, max int) ModifyFn {
	return s.ValidateRaw(func(value string) error {
		n := utf8.RuneCountInString(value)
		if n < min || n > max {
			return fmt.Errorf("value length must be between %d and %d characters", min, max)
		}
		return nil
	})
}

// IntRange - Bounds a converted int value, inclusive on both ends.
func (s *Schema) IntRange(min, max int) ModifyFn {
	return s.ValidateValue(func(value interface{}) error {
		n, ok := value.(int)
		if !ok {
			return fmt.Errorf("expected an int value, got %T", value)
		}
		if n < min || n > max {
			return fmt.Errorf("value must be between %d and %d", min, max)
		}
		return nil
	})
}

// Float64Range - Bounds a converted float64 value, inclusive on both ends.
func (s *Schema) Float64Range(min, max float64) ModifyFn {
	return s.ValidateValue(func(value interface{}) error {
		n, ok := value.(float64)
		if !ok {
			return fmt.Errorf("expected a float64 value, got %T", value)
		}
		if n < min || n > max {
			return fmt.Errorf("value must be between %v and %v", min, max)
		}
		return nil
	})
}

// CountBetween - Bounds how many elements a multi-value or dictionary
// argument accumulated over the whole command line, inclusive on both ends.
// The check only applies when the argument was supplied at all; use Required
// to force at least one supply.
func (s *Schema) CountBetween(min, max int) ModifyFn {
	return func(schema *Schema, arg *argument.Argument) {
		schema.postParse = append(schema.postParse, func(st *parseState) *ParseError {
			if st.counts[arg] == 0 {
				return nil
			}
			n := st.elementCounts[arg]
			if n < min || n > max {
				return validationError(arg.Name, "",
					fmt.Errorf("expected between %d and %d values, got %d", min, max, n))
			}
			return nil
		})
	}
}

// Requires - When this argument is supplied, the named argument must be
// supplied too. The referenced name must be a declared long name; a dangling
// reference fails schema validation.
func (s *Schema) Requires(other string) ModifyFn {
	return func(schema *Schema, arg *argument.Argument) {
		schema.referenced = append(schema.referenced, other)
		schema.postParse = append(schema.postParse, func(st *parseState) *ParseError {
			if st.counts[arg] > 0 && !st.supplied(other) {
				return validationError(arg.Name, "",
					fmt.Errorf("requires argument '%s'", other))
			}
			return nil
		})
	}
}

// Prohibits - When this argument is supplied, the named argument must not
// be supplied. The referenced name must be a declared long name; a dangling
// reference fails schema validation.
func (s *Schema) Prohibits(other string) ModifyFn {
	return func(schema *Schema, arg *argument.Argument) {
		schema.referenced = append(schema.referenced, other)
		schema.postParse = append(schema.postParse, func(st *parseState) *ParseError {
			if st.counts[arg] > 0 && st.supplied(other) {
				return validationError(arg.Name, "",
					fmt.Errorf("can't be combined with argument '%s'", other))
			}
			return nil
		})
	}
}

// RequiresAny - When this argument is supplied, at least one of the named
// arguments must be supplied too. The referenced names must be declared long
// names; a dangling reference fails schema validation.
func (s *Schema) RequiresAny(others ...string) ModifyFn {
	return func(schema *Schema, arg *argument.Argument) {
		schema.referenced = append(schema.referenced, others...)
		schema.postParse = append(schema.postParse, func(st *parseState) *ParseError {
			if st.counts[arg] == 0 {
				return nil
			}
			for _, other := range others {
				if st.supplied(other) {
					return nil
				}
			}
			return validationError(arg.Name, "",
				fmt.Errorf("requires one of the arguments: %s", strings.Join(others, ", ")))
		})
	}
}
