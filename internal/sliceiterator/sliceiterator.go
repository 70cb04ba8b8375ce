// This file is part of cmdline.
//
// Copyright (C) 2026  The cmdline Authors
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package sliceiterator - single pass cursor over the raw token slice with
// peeking for the next value.
package sliceiterator

// Iterator - iterator data
type Iterator struct {
	data []string
	idx  int
}

// New - builds a string Iterator positioned before the first element.
func New(s []string) *Iterator {
	return &Iterator{data: s, idx: -1}
}

// Index - return current index.
func (a *Iterator) Index() int {
	return a.idx
}

// Next - moves the index forward and returns a bool to indicate if there is
// another value.
func (a *Iterator) Next() bool {
	if a.idx < len(a.data) {
		a.idx++
	}
	return a.idx < len(a.data)
}

// ExistsNext - tells if there is more data to be read.
func (a *Iterator) ExistsNext() bool {
	return a.idx+1 < len(a.data)
}

// Value - returns the value at the current index, or an empty string once
// the input has been fully read.
func (a *Iterator) Value() string {
	if a.idx < 0 || a.idx >= len(a.data) {
		return ""
	}
	return a.data[a.idx]
}

// Peek - Returns the next value without advancing and indicates whether it
// is valid.
func (a *Iterator) Peek() (string, bool) {
	if a.idx+1 >= len(a.data) {
		return "", false
	}
	return a.data[a.idx+1], true
}

// Remaining - Get all remaining values, current index inclusive.
// Used to expose the unconsumed suffix on cancellation.
func (a *Iterator) Remaining() []string {
	if a.idx < 0 {
		return a.data
	}
	if a.idx >= len(a.data) {
		return []string{}
	}
	return a.data[a.idx:]
}

// RemainingAfter - Get all remaining values after the current index.
func (a *Iterator) RemainingAfter() []string {
	if a.idx+1 >= len(a.data) {
		return []string{}
	}
	return a.data[a.idx+1:]
}
