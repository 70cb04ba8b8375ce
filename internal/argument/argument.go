// This file is part of cmdline.
//
// Copyright (C) 2026  The cmdline Authors
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package argument - internal argument schema entry and methods.
package argument

import (
	"fmt"
	"io"
	"log"
	"sort"
	"time"

	"golang.org/x/text/language"
)

// Logger instance set to `io.Discard` by default.
// Enable debug logging by setting: `Logger.SetOutput(os.Stderr)`.
var Logger = log.New(io.Discard, "DEBUG: ", log.Ldate|log.Ltime|log.Lshortfile)

// Arity - how many values an argument accepts and how they aggregate.
type Arity int

// Arities
const (
	Single     Arity = iota // one value
	Switch                  // boolean presence flag, no value required
	MultiValue              // ordered sequence of values
	Dictionary              // key=value pairs accumulated into a map
)

// Type - Indicates the value type of an argument.
type Type int

// Argument value types
const (
	BoolType Type = iota

	StringType
	IntType
	Int64Type
	Float64Type
	DurationType
	TimeType

	StringSliceType
	IntSliceType
	Float64SliceType

	StringMapType

	VarType // custom target bound through a converter
)

// ConverterFunc - Signature for element converters.
// The culture selects locale sensitive behaviour, language.Und is invariant.
// Returning a nil value with a nil error represents a null result.
type ConverterFunc func(raw string, culture language.Tag) (interface{}, error)

// RawValidator - validates the raw string element before conversion.
type RawValidator func(raw string) error

// ValueValidator - validates the converted typed element.
type ValueValidator func(value interface{}) error

// Argument - one schema entry.
//
// An Argument is immutable once the schema has been validated. All per parse
// bookkeeping (assignment counts, pending values, used alias) lives in the
// parser state, never here, so a schema can serve concurrent parses.
type Argument struct {
	Name         string
	Short        string   // single character short name, empty when not set
	Aliases      []string // long aliases, Name included
	ShortAliases []string // single character aliases, Short included
	Position     int      // -1 when the argument is named only
	DeclOrder    int      // declaration order, breaks positional ties

	Arity    Arity
	ArgType  Type
	TypeHint string // type description used in conversion error messages

	Required    bool
	RequiredErr string // custom error message for the required check
	EnvVar      string // environment variable fallback, empty when not set

	AllowsNull     bool
	CancelsParsing bool
	ShowHelp       bool // only meaningful when CancelsParsing is set

	MinValues int // minimum values consumed per supply
	MaxValues int // maximum values consumed per supply

	ElementSep         string // when set, each raw value is split on it
	KeyValueSep        string // dictionary key/value separator
	AllowDuplicateKeys bool   // dictionary entries, last value wins when set

	Converter      ConverterFunc
	PreValidators  []RawValidator
	PostValidators []ValueValidator

	// Pointer receivers:
	pBool     *bool              // receiver for bool pointer
	pString   *string            // receiver for string pointer
	pInt      *int               // receiver for int pointer
	pInt64    *int64             // receiver for int64 pointer
	pFloat64  *float64           // receiver for float64 pointer
	pDuration *time.Duration     // receiver for duration pointer
	pTime     *time.Time         // receiver for time pointer
	pStringS  *[]string          // receiver for string slice pointer
	pIntS     *[]int             // receiver for int slice pointer
	pFloat64S *[]float64         // receiver for float64 slice pointer
	pStringM  *map[string]string // receiver for string map pointer
	pVar      interface{}        // receiver for custom targets
}

// New - Returns a new argument bound to the given receiver.
func New(name string, argType Type, data interface{}) *Argument {
	arg := &Argument{
		Name:        name,
		ArgType:     argType,
		Aliases:     []string{name},
		Position:    -1,
		KeyValueSep: "=",
	}
	switch argType {
	case StringType:
		arg.TypeHint = "string"
		arg.pString = data.(*string)
		arg.Arity = Single
		arg.MinValues = 1
		arg.MaxValues = 1
	case IntType:
		arg.TypeHint = "int"
		arg.pInt = data.(*int)
		arg.Arity = Single
		arg.MinValues = 1
		arg.MaxValues = 1
	case Int64Type:
		arg.TypeHint = "int64"
		arg.pInt64 = data.(*int64)
		arg.Arity = Single
		arg.MinValues = 1
		arg.MaxValues = 1
	case Float64Type:
		arg.TypeHint = "float64"
		arg.pFloat64 = data.(*float64)
		arg.Arity = Single
		arg.MinValues = 1
		arg.MaxValues = 1
	case DurationType:
		arg.TypeHint = "duration"
		arg.pDuration = data.(*time.Duration)
		arg.Arity = Single
		arg.MinValues = 1
		arg.MaxValues = 1
	case TimeType:
		arg.TypeHint = "RFC 3339 timestamp"
		arg.pTime = data.(*time.Time)
		arg.Arity = Single
		arg.MinValues = 1
		arg.MaxValues = 1
	case StringSliceType:
		arg.TypeHint = "string"
		arg.pStringS = data.(*[]string)
		arg.Arity = MultiValue
		arg.MinValues = 1
		arg.MaxValues = 1 // By default we only take one value at a time
	case IntSliceType:
		arg.TypeHint = "int"
		arg.pIntS = data.(*[]int)
		arg.Arity = MultiValue
		arg.MinValues = 1
		arg.MaxValues = 1
	case Float64SliceType:
		arg.TypeHint = "float64"
		arg.pFloat64S = data.(*[]float64)
		arg.Arity = MultiValue
		arg.MinValues = 1
		arg.MaxValues = 1
	case StringMapType:
		arg.TypeHint = "key=value"
		arg.pStringM = data.(*map[string]string)
		arg.Arity = Dictionary
		arg.MinValues = 1
		arg.MaxValues = 1
	case VarType:
		arg.TypeHint = "value"
		arg.pVar = data
		arg.Arity = Single
		arg.MinValues = 1
		arg.MaxValues = 1
	case BoolType:
		arg.TypeHint = "bool"
		arg.pBool = data.(*bool)
		arg.Arity = Switch
		arg.MinValues = 0
		arg.MaxValues = 0
	}
	return arg
}

// IsSwitch - Tells if the argument is a boolean presence flag.
func (arg *Argument) IsSwitch() bool {
	return arg.Arity == Switch
}

// IsMulti - Tells if the argument accumulates values.
func (arg *Argument) IsMulti() bool {
	return arg.Arity == MultiValue || arg.Arity == Dictionary
}

// Positional - Tells if the argument can be assigned by position.
func (arg *Argument) Positional() bool {
	return arg.Position >= 0
}

// ValidateMinMaxValues - validates that the min and max make sense.
//
// NOTE: This should only be called on MultiValue and Dictionary entries.
func (arg *Argument) ValidateMinMaxValues() error {
	if arg.MinValues <= 0 {
		return fmt.Errorf("min should be > 0")
	}
	if arg.MaxValues <= 0 || arg.MaxValues < arg.MinValues {
		return fmt.Errorf("max should be > 0 and >= min")
	}
	return nil
}

// SetAlias - Adds long aliases to an argument.
func (arg *Argument) SetAlias(alias ...string) *Argument {
	arg.Aliases = append(arg.Aliases, alias...)
	return arg
}

// SetShort - Sets the single character short name.
func (arg *Argument) SetShort(short string) *Argument {
	arg.Short = short
	arg.ShortAliases = append(arg.ShortAliases, short)
	return arg
}

// SetShortAlias - Adds single character aliases to an argument.
func (arg *Argument) SetShortAlias(alias ...string) *Argument {
	arg.ShortAliases = append(arg.ShortAliases, alias...)
	return arg
}

// SetRequired - Marks the argument as required.
func (arg *Argument) SetRequired(msg string) *Argument {
	arg.Required = true
	arg.RequiredErr = msg
	return arg
}

// SetEnvVar - Sets the name of the env var that sets the argument's value.
func (arg *Argument) SetEnvVar(name string) *Argument {
	arg.EnvVar = name
	return arg
}

// Value - Get the untyped current value of the bound receiver.
func (arg *Argument) Value() interface{} {
	switch arg.ArgType {
	case StringType:
		return *arg.pString
	case IntType:
		return *arg.pInt
	case Int64Type:
		return *arg.pInt64
	case Float64Type:
		return *arg.pFloat64
	case DurationType:
		return *arg.pDuration
	case TimeType:
		return *arg.pTime
	case StringSliceType:
		return *arg.pStringS
	case IntSliceType:
		return *arg.pIntS
	case Float64SliceType:
		return *arg.pFloat64S
	case StringMapType:
		return *arg.pStringM
	case VarType:
		return arg.pVar
	default: // BoolType:
		return *arg.pBool
	}
}

// SetBool - Set the argument's data.
func (arg *Argument) SetBool(b bool) {
	*arg.pBool = b
}

// Store - Saves one converted element into the bound receiver.
// MultiValue receivers append, Dictionary receivers must use StoreKeyValue.
func (arg *Argument) Store(value interface{}) error {
	Logger.Printf("store name: %s, argType: %d, value: %v\n", arg.Name, arg.ArgType, value)
	switch arg.ArgType {
	case BoolType:
		b, ok := value.(bool)
		if !ok {
			return storeTypeError(arg, "bool", value)
		}
		*arg.pBool = b
	case StringType:
		s, ok := value.(string)
		if !ok {
			return storeTypeError(arg, "string", value)
		}
		*arg.pString = s
	case IntType:
		i, ok := value.(int)
		if !ok {
			return storeTypeError(arg, "int", value)
		}
		*arg.pInt = i
	case Int64Type:
		i, ok := value.(int64)
		if !ok {
			return storeTypeError(arg, "int64", value)
		}
		*arg.pInt64 = i
	case Float64Type:
		f, ok := value.(float64)
		if !ok {
			return storeTypeError(arg, "float64", value)
		}
		*arg.pFloat64 = f
	case DurationType:
		d, ok := value.(time.Duration)
		if !ok {
			return storeTypeError(arg, "time.Duration", value)
		}
		*arg.pDuration = d
	case TimeType:
		t, ok := value.(time.Time)
		if !ok {
			return storeTypeError(arg, "time.Time", value)
		}
		*arg.pTime = t
	case StringSliceType:
		s, ok := value.(string)
		if !ok {
			return storeTypeError(arg, "string", value)
		}
		*arg.pStringS = append(*arg.pStringS, s)
	case IntSliceType:
		i, ok := value.(int)
		if !ok {
			return storeTypeError(arg, "int", value)
		}
		*arg.pIntS = append(*arg.pIntS, i)
	case Float64SliceType:
		f, ok := value.(float64)
		if !ok {
			return storeTypeError(arg, "float64", value)
		}
		*arg.pFloat64S = append(*arg.pFloat64S, f)
	case VarType:
		// The converter writes through the receiver itself, nothing to copy.
	default:
		return fmt.Errorf("argument '%s' cannot store a plain value", arg.Name)
	}
	return nil
}

// StoreKeyValue - Saves one key/value pair into a dictionary receiver.
func (arg *Argument) StoreKeyValue(key, value string) error {
	if arg.ArgType != StringMapType {
		return fmt.Errorf("argument '%s' is not a dictionary", arg.Name)
	}
	if *arg.pStringM == nil {
		*arg.pStringM = map[string]string{}
	}
	(*arg.pStringM)[key] = value
	return nil
}

func storeTypeError(arg *Argument, want string, value interface{}) error {
	return fmt.Errorf("converter for argument '%s' returned %T, expected %s", arg.Name, value, want)
}

// SortPositional - Orders a list of arguments by declared position,
// normalizing sparse position values. Ties break by declaration order.
func SortPositional(list []*Argument) {
	sort.SliceStable(list, func(i, j int) bool {
		if list[i].Position != list[j].Position {
			return list[i].Position < list[j].Position
		}
		return list[i].DeclOrder < list[j].DeclOrder
	})
}
