// This file is part of cmdline.
//
// Copyright (C) 2026  The cmdline Authors
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package cmdline

import (
	"strconv"
	"testing"
	"time"

	"golang.org/x/text/language"
)

func TestBuiltinConverters(t *testing.T) {
	setupTestLogging(t)

	tests := []struct {
		name    string
		fn      ConverterFunc
		raw     string
		culture language.Tag
		want    interface{}
		wantErr bool
	}{
		{"string", convertString, "anything", language.Und, "anything", false},
		{"bool true", convertBool, "true", language.Und, true, false},
		{"bool false", convertBool, "false", language.Und, false, false},
		{"bool mixed case", convertBool, "TRUE", language.Und, true, false},
		{"bool garbage", convertBool, "yep", language.Und, nil, true},
		{"int", convertInt, "42", language.Und, 42, false},
		{"int negative", convertInt, "-3", language.Und, -3, false},
		{"int garbage", convertInt, "4x2", language.Und, nil, true},
		{"int64", convertInt64, "9000000000", language.Und, int64(9000000000), false},
		{"int64 garbage", convertInt64, "big", language.Und, nil, true},
		{"float invariant", convertFloat64, "3.14", language.Und, 3.14, false},
		{"float comma rejected under invariant", convertFloat64, "3,14", language.Und, nil, true},
		{"float german comma", convertFloat64, "3,14", language.German, 3.14, false},
		{"float german grouping", convertFloat64, "1.234,5", language.German, 1234.5, false},
		{"int german grouping", convertInt, "1.234", language.German, 1234, false},
		{"float french comma", convertFloat64, "2,5", language.French, 2.5, false},
		{"duration", convertDuration, "1h30m", language.Und, 90 * time.Minute, false},
		{"duration garbage", convertDuration, "soon", language.Und, nil, true},
		{"time rfc3339", convertTime, "2026-08-30T12:00:00Z", language.Und,
			time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC), false},
		{"time not rfc3339", convertTime, "30/08/2026", language.Und, nil, true},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, err := test.fn(test.raw, test.culture)
			if test.wantErr {
				if err == nil {
					t.Fatalf("expected error, got value %v", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %s", err)
			}
			switch want := test.want.(type) {
			case time.Time:
				if !want.Equal(got.(time.Time)) {
					t.Errorf("got %v, want %v", got, want)
				}
			default:
				if got != test.want {
					t.Errorf("got %v (%T), want %v (%T)", got, got, test.want, test.want)
				}
			}
		})
	}
}

func TestConvertRoundTrip(t *testing.T) {
	setupTestLogging(t)
	// Canonical string forms parse back to an equal typed value.
	stamp := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		name  string
		fn    ConverterFunc
		raw   string
		value interface{}
	}{
		{"bool", convertBool, strconv.FormatBool(true), true},
		{"int", convertInt, strconv.Itoa(-42), -42},
		{"float", convertFloat64, strconv.FormatFloat(0.25, 'g', -1, 64), 0.25},
		{"duration", convertDuration, (90 * time.Minute).String(), 90 * time.Minute},
		{"time", convertTime, stamp.Format(time.RFC3339), stamp},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, err := test.fn(test.raw, language.Und)
			if err != nil {
				t.Fatalf("unexpected error: %s", err)
			}
			if ts, ok := test.value.(time.Time); ok {
				if !ts.Equal(got.(time.Time)) {
					t.Errorf("got %v, want %v", got, ts)
				}
				return
			}
			if got != test.value {
				t.Errorf("got %v, want %v", got, test.value)
			}
		})
	}
}

func TestCultureOnlyAffectsNumbers(t *testing.T) {
	setupTestLogging(t)
	// Timestamps stay RFC 3339 under every culture.
	got, err := convertTime("2026-08-30T12:00:00Z", language.German)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	want := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	if !want.Equal(got.(time.Time)) {
		t.Errorf("got %v, want %v", got, want)
	}
}

type upperValue struct {
	value string
}

func (u *upperValue) UnmarshalText(text []byte) error {
	u.value = string(text) + "!"
	return nil
}

func TestConverterResolution(t *testing.T) {
	setupTestLogging(t)

	t.Run("custom converter wins over built-in", func(t *testing.T) {
		schema := New()
		n := schema.Int("num", 0, schema.Converter(
			func(raw string, _ language.Tag) (interface{}, error) {
				return len(raw), nil
			}))
		_, err := schema.Parse([]string{"--num", "abcd"})
		checkError(t, err, nil)
		if *n != 4 {
			t.Errorf("got %d, want 4", *n)
		}
	})

	t.Run("text unmarshaler target", func(t *testing.T) {
		schema := New()
		v := &upperValue{}
		schema.Var(v, "value")
		_, err := schema.Parse([]string{"--value", "hello"})
		checkError(t, err, nil)
		if v.value != "hello!" {
			t.Errorf("got %q, want %q", v.value, "hello!")
		}
	})
}
