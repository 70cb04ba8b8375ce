// This file is part of cmdline.
//
// Copyright (C) 2026  The cmdline Authors
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package cmdline

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/clibind/cmdline/internal/argument"
)

// setupTestLogging - capture debug logging and dump it only when the test
// fails.
func setupTestLogging(t *testing.T) {
	t.Helper()
	buf := bytes.NewBufferString("")
	Logger.SetOutput(buf)
	argument.Logger.SetOutput(buf)
	t.Cleanup(func() {
		if t.Failed() {
			t.Log(buf.String())
		}
		Logger.SetOutput(io.Discard)
		argument.Logger.SetOutput(io.Discard)
	})
}

// setupTestWriter - capture warning output for the duration of the test.
func setupTestWriter(t *testing.T) *bytes.Buffer {
	t.Helper()
	buf := bytes.NewBufferString("")
	saved := Writer
	Writer = buf
	t.Cleanup(func() { Writer = saved })
	return buf
}

// checkError - got must wrap want (nil matches nil).
func checkError(t *testing.T, got, want error) {
	t.Helper()
	if want == nil {
		if got != nil {
			t.Fatalf("unexpected error: %s", got)
		}
		return
	}
	if got == nil {
		t.Fatalf("expected error, got none")
	}
	if !errors.Is(got, want) {
		t.Fatalf("wrong error kind: %q", got)
	}
}

// expectPanic - fn must panic. Used for declaration error checks.
func expectPanic(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("expected panic, got none")
		}
	}()
	fn()
}
