// This file is part of cmdline.
//
// Copyright (C) 2026  The cmdline Authors
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package cmdline

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSchemaValidate(t *testing.T) {
	setupTestLogging(t)

	t.Run("empty schema is valid", func(t *testing.T) {
		checkError(t, New().Validate(), nil)
	})

	t.Run("switch can't be positional", func(t *testing.T) {
		schema := New()
		schema.Bool("verbose", false, schema.Position(0))
		checkError(t, schema.Validate(), ErrInvalidSchema)
	})

	t.Run("required positional after optional positional", func(t *testing.T) {
		schema := New()
		schema.String("src", "", schema.Position(0))
		schema.String("dst", "", schema.Position(1), schema.Required())
		checkError(t, schema.Validate(), ErrInvalidSchema)
	})

	t.Run("required positional before optional positional is fine", func(t *testing.T) {
		schema := New()
		schema.String("src", "", schema.Position(0), schema.Required())
		schema.String("dst", "", schema.Position(1))
		checkError(t, schema.Validate(), nil)
	})

	t.Run("multi-value positional must be last", func(t *testing.T) {
		schema := New()
		schema.StringSlice("files", 1, 1, schema.Position(0))
		schema.String("dst", "", schema.Position(1))
		checkError(t, schema.Validate(), ErrInvalidSchema)
	})

	t.Run("multi-value positional last is fine", func(t *testing.T) {
		schema := New()
		schema.String("dst", "", schema.Position(0))
		schema.StringSlice("files", 1, 1, schema.Position(1))
		checkError(t, schema.Validate(), nil)
	})

	t.Run("sparse positions normalize by sorting", func(t *testing.T) {
		schema := New()
		schema.String("c", "", schema.Position(20))
		schema.String("a", "", schema.Position(3))
		schema.String("b", "", schema.Position(7))
		names := []string{}
		for _, arg := range schema.positionalArgs() {
			names = append(names, arg.Name)
		}
		if diff := cmp.Diff([]string{"a", "b", "c"}, names); diff != "" {
			t.Errorf("wrong order (-want +got):\n%s", diff)
		}
	})

	t.Run("equal positions break ties by declaration order", func(t *testing.T) {
		schema := New()
		schema.String("b", "", schema.Position(1))
		schema.String("a", "", schema.Position(1))
		names := []string{}
		for _, arg := range schema.positionalArgs() {
			names = append(names, arg.Name)
		}
		if diff := cmp.Diff([]string{"b", "a"}, names); diff != "" {
			t.Errorf("wrong order (-want +got):\n%s", diff)
		}
	})

	t.Run("validator referencing undeclared argument", func(t *testing.T) {
		schema := New()
		schema.String("user", "", schema.Requires("password"))
		checkError(t, schema.Validate(), ErrInvalidSchema)
	})

	t.Run("validation is idempotent", func(t *testing.T) {
		schema := New()
		schema.String("src", "", schema.Position(0))
		schema.String("dst", "", schema.Position(1), schema.Required())
		checkError(t, schema.Validate(), ErrInvalidSchema)
		checkError(t, schema.Validate(), ErrInvalidSchema)
	})
}

func TestSchemaDeclarationPanics(t *testing.T) {
	setupTestLogging(t)

	t.Run("duplicate name", func(t *testing.T) {
		expectPanic(t, func() {
			schema := New()
			schema.String("file", "")
			schema.Int("file", 0)
		})
	})
	t.Run("alias collides with a name", func(t *testing.T) {
		expectPanic(t, func() {
			schema := New()
			schema.String("file", "")
			schema.Int("count", 0, schema.Alias("file"))
		})
	})
	t.Run("duplicate short name", func(t *testing.T) {
		expectPanic(t, func() {
			schema := New()
			schema.String("file", "", schema.Short('f'))
			schema.Int("force", 0, schema.Short('f'))
		})
	})
	t.Run("empty name", func(t *testing.T) {
		expectPanic(t, func() {
			New().String("", "")
		})
	})
	t.Run("negative position", func(t *testing.T) {
		expectPanic(t, func() {
			schema := New()
			schema.String("file", "", schema.Position(-1))
		})
	})
	t.Run("slice min zero", func(t *testing.T) {
		expectPanic(t, func() {
			New().StringSlice("list", 0, 1)
		})
	})
	t.Run("slice max below min", func(t *testing.T) {
		expectPanic(t, func() {
			New().StringSlice("list", 2, 1)
		})
	})
	t.Run("bad pattern", func(t *testing.T) {
		expectPanic(t, func() {
			schema := New()
			schema.String("file", "", schema.Pattern("["))
		})
	})
	t.Run("custom target without converter", func(t *testing.T) {
		expectPanic(t, func() {
			var v struct{ x int }
			New().Var(&v, "value")
		})
	})
}

func TestResolveName(t *testing.T) {
	setupTestLogging(t)
	schema := New()
	schema.String("file-name", "")
	schema.String("file-number", "")
	schema.Bool("verbose", false, schema.Short('v'))

	t.Run("exact match", func(t *testing.T) {
		res := schema.resolveName("file-name", scopeAll)
		if !res.found || res.arg.Name != "file-name" {
			t.Errorf("unexpected resolution: %+v", res)
		}
	})
	t.Run("exact short match", func(t *testing.T) {
		res := schema.resolveName("v", scopeAll)
		if !res.found || res.arg.Name != "verbose" {
			t.Errorf("unexpected resolution: %+v", res)
		}
	})
	t.Run("unique prefix", func(t *testing.T) {
		res := schema.resolveName("file-na", scopeAll)
		if !res.found || res.arg.Name != "file-name" {
			t.Errorf("unexpected resolution: %+v", res)
		}
	})
	t.Run("ambiguous prefix", func(t *testing.T) {
		res := schema.resolveName("file-n", scopeAll)
		if !res.ambiguous {
			t.Fatalf("expected ambiguity: %+v", res)
		}
		if diff := cmp.Diff([]string{"file-name", "file-number"}, res.candidates); diff != "" {
			t.Errorf("wrong candidates (-want +got):\n%s", diff)
		}
	})
	t.Run("exact match wins over being a prefix of another name", func(t *testing.T) {
		s := New()
		s.String("file", "")
		s.String("filename", "")
		res := s.resolveName("file", scopeAll)
		if !res.found || res.arg.Name != "file" || res.ambiguous {
			t.Errorf("unexpected resolution: %+v", res)
		}
	})
	t.Run("no match", func(t *testing.T) {
		res := schema.resolveName("nothing", scopeAll)
		if res.found || res.ambiguous {
			t.Errorf("unexpected resolution: %+v", res)
		}
	})
	t.Run("prefix resolution disabled", func(t *testing.T) {
		s := New().SetAutoPrefixAliases(false)
		s.String("verbose", "")
		res := s.resolveName("verb", scopeAll)
		if res.found {
			t.Errorf("unexpected resolution: %+v", res)
		}
	})
	t.Run("case insensitive long names", func(t *testing.T) {
		s := New().SetCaseInsensitiveNames()
		s.String("File", "")
		res := s.resolveName("fIlE", scopeAll)
		if !res.found || res.arg.Name != "File" {
			t.Errorf("unexpected resolution: %+v", res)
		}
	})
	t.Run("case folded collision is ambiguous", func(t *testing.T) {
		s := New().SetCaseInsensitiveNames()
		s.String("File", "")
		s.String("FILE", "")
		res := s.resolveName("file", scopeAll)
		if !res.ambiguous {
			t.Fatalf("expected ambiguity: %+v", res)
		}
		if diff := cmp.Diff([]string{"FILE", "File"}, res.candidates); diff != "" {
			t.Errorf("wrong candidates (-want +got):\n%s", diff)
		}
		_, err := s.Parse([]string{"--file", "x"})
		checkError(t, err, ErrAmbiguousPrefixAlias)
	})
	t.Run("case folded spellings of one argument still resolve", func(t *testing.T) {
		s := New().SetCaseInsensitiveNames()
		s.String("file", "", s.Alias("FILE"))
		res := s.resolveName("File", scopeAll)
		if !res.found || res.arg.Name != "file" || res.ambiguous {
			t.Errorf("unexpected resolution: %+v", res)
		}
	})
	t.Run("short names stay case sensitive", func(t *testing.T) {
		s := New().SetCaseInsensitiveNames()
		s.Bool("verbose", false, s.Short('v'))
		res := s.resolveName("V", scopeShort)
		if res.found {
			t.Errorf("unexpected resolution: %+v", res)
		}
	})
}
