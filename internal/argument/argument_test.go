// This file is part of cmdline.
//
// Copyright (C) 2026  The cmdline Authors
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package argument

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestNewDefaults(t *testing.T) {
	t.Run("switch", func(t *testing.T) {
		b := false
		arg := New("verbose", BoolType, &b)
		if arg.Arity != Switch || !arg.IsSwitch() || arg.IsMulti() {
			t.Errorf("bad arity: %+v", arg)
		}
		if arg.Positional() {
			t.Errorf("expected named only")
		}
		if diff := cmp.Diff([]string{"verbose"}, arg.Aliases); diff != "" {
			t.Errorf("aliases mismatch (-want +got):\n%s", diff)
		}
	})
	t.Run("single", func(t *testing.T) {
		s := ""
		arg := New("file", StringType, &s)
		if arg.Arity != Single || arg.MinValues != 1 || arg.MaxValues != 1 {
			t.Errorf("bad defaults: %+v", arg)
		}
		if arg.TypeHint != "string" {
			t.Errorf("hint: %q", arg.TypeHint)
		}
	})
	t.Run("multi value", func(t *testing.T) {
		v := []string{}
		arg := New("item", StringSliceType, &v)
		if arg.Arity != MultiValue || !arg.IsMulti() {
			t.Errorf("bad arity: %+v", arg)
		}
	})
	t.Run("dictionary", func(t *testing.T) {
		m := map[string]string{}
		arg := New("def", StringMapType, &m)
		if arg.Arity != Dictionary || !arg.IsMulti() || arg.KeyValueSep != "=" {
			t.Errorf("bad defaults: %+v", arg)
		}
	})
}

func TestStore(t *testing.T) {
	t.Run("scalar types", func(t *testing.T) {
		s := ""
		i := 0
		f := 0.0
		d := time.Duration(0)
		for _, test := range []struct {
			arg   *Argument
			value interface{}
		}{
			{New("s", StringType, &s), "x"},
			{New("i", IntType, &i), 42},
			{New("f", Float64Type, &f), 0.5},
			{New("d", DurationType, &d), time.Second},
		} {
			if err := test.arg.Store(test.value); err != nil {
				t.Fatalf("unexpected error: %s", err)
			}
			if test.arg.Value() != test.value {
				t.Errorf("got %v, want %v", test.arg.Value(), test.value)
			}
		}
	})
	t.Run("slices append", func(t *testing.T) {
		v := []int{}
		arg := New("item", IntSliceType, &v)
		_ = arg.Store(1)
		_ = arg.Store(2)
		if diff := cmp.Diff([]int{1, 2}, v); diff != "" {
			t.Errorf("slice mismatch (-want +got):\n%s", diff)
		}
	})
	t.Run("type mismatch", func(t *testing.T) {
		i := 0
		arg := New("i", IntType, &i)
		if err := arg.Store("not an int"); err == nil {
			t.Errorf("expected error")
		}
	})
	t.Run("dictionary needs StoreKeyValue", func(t *testing.T) {
		m := map[string]string{}
		arg := New("def", StringMapType, &m)
		if err := arg.Store("x"); err == nil {
			t.Errorf("expected error")
		}
		if err := arg.StoreKeyValue("k", "v"); err != nil {
			t.Fatalf("unexpected error: %s", err)
		}
		if m["k"] != "v" {
			t.Errorf("got %q", m["k"])
		}
	})
	t.Run("key value on non dictionary", func(t *testing.T) {
		s := ""
		arg := New("s", StringType, &s)
		if err := arg.StoreKeyValue("k", "v"); err == nil {
			t.Errorf("expected error")
		}
	})
}

func TestValidateMinMaxValues(t *testing.T) {
	v := []string{}
	tests := []struct {
		name    string
		min     int
		max     int
		wantErr bool
	}{
		{"defaults", 1, 1, false},
		{"range", 1, 3, false},
		{"zero min", 0, 1, true},
		{"negative min", -1, 1, true},
		{"zero max", 1, 0, true},
		{"max below min", 3, 2, true},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			arg := New("item", StringSliceType, &v)
			arg.MinValues = test.min
			arg.MaxValues = test.max
			err := arg.ValidateMinMaxValues()
			if test.wantErr && err == nil {
				t.Errorf("expected error")
			}
			if !test.wantErr && err != nil {
				t.Errorf("unexpected error: %s", err)
			}
		})
	}
}

func TestSortPositional(t *testing.T) {
	s := ""
	mk := func(name string, pos, decl int) *Argument {
		arg := New(name, StringType, &s)
		arg.Position = pos
		arg.DeclOrder = decl
		return arg
	}
	list := []*Argument{
		mk("c", 20, 0),
		mk("a", 3, 1),
		mk("tie2", 7, 3),
		mk("tie1", 7, 2),
	}
	SortPositional(list)
	names := []string{}
	for _, arg := range list {
		names = append(names, arg.Name)
	}
	if diff := cmp.Diff([]string{"a", "tie1", "tie2", "c"}, names); diff != "" {
		t.Errorf("order mismatch (-want +got):\n%s", diff)
	}
}
