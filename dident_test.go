/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package dident

import (
	"errors"
	"strings"
	"testing"
)

func TestIsValid(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want bool
	}{
		{"canonical uuid", "2fac9cb4-0b4f-4b94-9c84-3ef8eaf4b2c5", true},
		{"uppercase uuid", "2FAC9CB4-0B4F-4B94-9C84-3EF8EAF4B2C5", true},
		{"nil uuid", "00000000-0000-0000-0000-000000000000", true},
		{"misplaced hyphen", "2fac9cb4-0b4f-4b94-9c843-ef8eaf4b2c5", false},
		{"non-hex digit", "2fac9cb4-0b4f-4b94-9c84-3ef8eaf4b2cg", false},
		{"36 chars no hyphens", "2fac9cb40b4f4b949c843ef8eaf4b2c5ffff", false},
		{"single char", "x", true},
		{"short arbitrary", "helloworld", true},
		{"31 chars", strings.Repeat("a", 31), true},
		{"32 chars non-hex", strings.Repeat("z", 32), true},
		{"32 chars hex", "2fac9cb40b4f4b949c843ef8eaf4b2c5", true},
		{"empty", "", false},
		{"33 chars", strings.Repeat("a", 33), false},
		{"35 chars", strings.Repeat("a", 35), false},
		{"37 chars", strings.Repeat("a", 37), false},
		{"40 chars", strings.Repeat("a", 40), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValid(tt.in); got != tt.want {
				t.Fatalf("IsValid(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestDetectShape(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Shape
	}{
		{"uuid", "2fac9cb4-0b4f-4b94-9c84-3ef8eaf4b2c5", ShapeUUID},
		{"keystone", "2fac9cb40b4f4b949c843ef8eaf4b2c5", ShapeKeystone},
		{"keystone non-hex", strings.Repeat("z", 32), ShapeKeystone},
		{"short", "net-1", ShapeShort},
		{"empty", "", ShapeInvalid},
		{"bad uuid", strings.Repeat("a", 36), ShapeInvalid},
		{"too long", strings.Repeat("a", 37), ShapeInvalid},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectShape(tt.in); got != tt.want {
				t.Fatalf("DetectShape(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestValidate_Sentinels(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want error
	}{
		{"empty", "", ErrEmpty},
		{"length 34", strings.Repeat("a", 34), ErrLength},
		{"length 40", strings.Repeat("a", 40), ErrLength},
		{"bad uuid", "2fac9cb4-0b4f-4b94-9c843-ef8eaf4b2c5", ErrMalformedUUID},
		{"good uuid", "2fac9cb4-0b4f-4b94-9c84-3ef8eaf4b2c5", nil},
		{"keystone", strings.Repeat("f", 32), nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.in)
			if !errors.Is(err, tt.want) {
				t.Fatalf("Validate(%q) = %v, want %v", tt.in, err, tt.want)
			}
		})
	}
}

func TestParse_PreservesInput(t *testing.T) {
	// Parse must never normalize: the identifier is content-opaque.
	in := "  MiXeD case and spaces  "
	id, err := Parse(in)
	if err != nil {
		t.Fatalf("Parse(%q) unexpected error: %v", in, err)
	}
	if id.String() != in {
		t.Fatalf("Parse(%q) = %q, input was rewritten", in, id)
	}
}

func TestParse_Invalid(t *testing.T) {
	if _, err := Parse(""); err == nil {
		t.Fatal("Parse(\"\") must fail")
	}
	if _, err := Parse(strings.Repeat("a", 36)); err == nil {
		t.Fatal("Parse of a non-uuid 36-char string must fail")
	}
}

func TestMustParse_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("MustParse on invalid input must panic")
		}
	}()
	MustParse(strings.Repeat("a", 33))
}

func TestIdentifier_Shape(t *testing.T) {
	if got := MustParse("tenant-7").Shape(); got != ShapeShort {
		t.Fatalf("Shape() = %v, want %v", got, ShapeShort)
	}
	if got := MustParse("2fac9cb4-0b4f-4b94-9c84-3ef8eaf4b2c5").Shape(); got != ShapeUUID {
		t.Fatalf("Shape() = %v, want %v", got, ShapeUUID)
	}
}

func TestIdentifier_TextMarshaling(t *testing.T) {
	var id Identifier
	if err := id.UnmarshalText([]byte("2fac9cb40b4f4b949c843ef8eaf4b2c5")); err != nil {
		t.Fatalf("UnmarshalText: %v", err)
	}
	if id.Shape() != ShapeKeystone {
		t.Fatalf("Shape() = %v after unmarshal, want %v", id.Shape(), ShapeKeystone)
	}

	b, err := id.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText: %v", err)
	}
	if string(b) != id.String() {
		t.Fatalf("MarshalText = %q, want %q", b, id)
	}

	// The zero value must refuse to marshal.
	var zero Identifier
	if _, err := zero.MarshalText(); err == nil {
		t.Fatal("MarshalText of zero identifier must fail")
	}

	// Unlike the status kinds, surrounding whitespace is content, not noise.
	var ws Identifier
	if err := ws.UnmarshalText([]byte(" padded ")); err != nil {
		t.Fatalf("UnmarshalText: %v", err)
	}
	if ws.String() != " padded " {
		t.Fatalf("UnmarshalText trimmed the value: %q", ws)
	}
}

func TestShape_String(t *testing.T) {
	tests := []struct {
		in   Shape
		want string
	}{
		{ShapeUUID, "uuid"},
		{ShapeKeystone, "keystone"},
		{ShapeShort, "short"},
		{ShapeInvalid, "invalid"},
		{Shape(99), "invalid"},
	}
	for _, tt := range tests {
		if got := tt.in.String(); got != tt.want {
			t.Fatalf("Shape(%d).String() = %q, want %q", tt.in, got, tt.want)
		}
	}
}
