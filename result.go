// This file is part of cmdline.
//
// Copyright (C) 2026  The cmdline Authors
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package cmdline

// Result - the outcome of a successful or cancelled parse.
//
// On failure Parse returns a nil Result and the contents of any bound Var
// pointers are undefined. The order in which values were populated is
// unspecified and must not be relied upon.
type Result struct {
	values   map[string]interface{}
	counts   map[string]int
	calledAs map[string]string

	remaining   []string
	cancelled   bool
	cancelledBy string
	showHelp    bool
}

// newResult - the result assembler. It snapshots the assignment state so the
// Result stays valid after the parse state is discarded.
func newResult(st *parseState) *Result {
	r := &Result{
		values:    map[string]interface{}{},
		counts:    map[string]int{},
		calledAs:  map[string]string{},
		remaining: st.remaining,
		cancelled: st.cancelled,
		showHelp:  st.showHelp,
	}
	for _, arg := range st.schema.args {
		r.values[arg.Name] = arg.Value()
		r.counts[arg.Name] = st.counts[arg]
		r.calledAs[arg.Name] = st.calledAs[arg]
	}
	if st.cancelledBy != nil {
		r.cancelledBy = st.cancelledBy.Name
	}
	return r
}

// Value - Returns the value of the given argument.
//
// Type assertions are required in cases where the compiler can't determine
// the type by context. For example: `result.Value("verbose").(bool)`.
// Returns nil for undeclared names.
func (r *Result) Value(name string) interface{} {
	return r.values[name]
}

// Called - Indicates if the argument received a value on the command line
// (or through its env var fallback).
// If the `name` was never declared it returns false.
func (r *Result) Called(name string) bool {
	return r.counts[name] > 0
}

// CalledAs - Returns the name, alias, prefix alias or env var actually used
// to supply the argument. Empty string when the argument was not supplied.
//
// For arguments supplied multiple times, the last spelling used is returned.
func (r *Result) CalledAs(name string) string {
	return r.calledAs[name]
}

// Count - Returns how many times the argument was supplied.
func (r *Result) Count(name string) int {
	return r.counts[name]
}

// Remaining - The tokens that were not consumed by the parse: everything
// from the cancelling argument on when parsing was cancelled, plus any
// unknown tokens passed through by UnknownWarn/UnknownPass.
func (r *Result) Remaining() []string {
	if r.remaining == nil {
		return []string{}
	}
	return r.remaining
}

// Cancelled - Tells if parsing stopped early because a cancelling argument
// was supplied. Cancellation is a terminal outcome distinct from both
// success and failure.
func (r *Result) Cancelled() bool {
	return r.cancelled
}

// CancelledBy - The name of the argument that cancelled parsing.
// Empty string when parsing was not cancelled.
func (r *Result) CancelledBy() string {
	return r.cancelledBy
}

// HelpRequested - Tells if the cancelling argument asked for help to be
// shown. Rendering help is the caller's concern.
func (r *Result) HelpRequested() bool {
	return r.showHelp
}
