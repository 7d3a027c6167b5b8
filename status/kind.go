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

package status

import (
	"bytes"
	"encoding"
	"errors"
	"regexp"
	"strings"
)

// Kind is the canonical, validated representation of a status kind.
//
// It is defined as a separate type (not just string) so that other packages
// can explicitly declare which values they expect and to avoid accidental
// mixing of raw user input with normalized values.
//
// IMPORTANT: Empty kinds ("") are NOT allowed. Every status MUST have a
// non-empty kind.
type Kind string

// MinLength and MaxLength define the allowed length range for a canonical
// status kind.
const (
	// MinLength is the minimum length for a valid kind.
	// We require at least 4 characters so that ultra-short and ambiguous
	// identifiers like "ok" or "x1" are not accepted ("gone" is the
	// shortest canonical kind).
	MinLength = 4

	// MaxLength is the maximum length for a valid kind.
	// 64 characters is enough for descriptive kinds like
	// "service_unavailable" while still preventing unbounded or accidental
	// long strings.
	MaxLength = 64
)

const (
	// kindFmt is the canonical regular expression used to validate status
	// kinds.
	//
	// Pattern breakdown:
	//
	//	^ - start of string;
	//	[a-z] - first character must be a lowercase ASCII letter;
	//	[a-z0-9_]{3,63} - the remaining characters may be lowercase letters,
	//	                  digits or underscore; the quantifier {3,63} makes
	//	                  the total length 4..64 characters (1 + 3..63);
	//	$ - end of string;
	//
	// IMPORTANT: the numeric range {3,63} is tied to MinLength / MaxLength
	// above. If you change MinLength / MaxLength, adjust this pattern too.
	kindFmt = `^[a-z][a-z0-9_]{3,63}$`
)

var (
	// kindRe is the compiled regular expression used at runtime to validate
	// that a string is a canonical status kind.
	//
	// Examples of valid kinds:
	//   - "success"
	//   - "bad_request"
	//   - "not_acceptable"
	//   - "internal_error"
	//
	// Examples of invalid kinds:
	//   - "BadRequest"   (uppercase)
	//   - "bad-request"  (dash instead of underscore)
	//   - "ok"           (too short)
	//   - "1timeout"     (does not start with a letter)
	kindRe = regexp.MustCompile(kindFmt)
)

var (
	// ErrKindInvalid is returned when a value cannot be parsed or validated
	// as a status kind.
	ErrKindInvalid = errors.New("dident: invalid status kind")
)

// Ensure Kind implements encoding.TextMarshaler / encoding.TextUnmarshaler
// so it can be embedded into larger config or API structs.
var (
	_ encoding.TextMarshaler   = (*Kind)(nil)
	_ encoding.TextUnmarshaler = (*Kind)(nil)
)

// Parse takes a user-provided string, normalizes it and validates it.
// On success it returns a canonical Kind value.
func Parse(s string) (Kind, error) {
	s = Normalize(s)
	if err := validate(s); err != nil {
		return "", err
	}
	return Kind(s), nil
}

// MustParse is the panic-on-error variant of Parse. It is useful for
// declaring package-level constants in init() or var blocks.
func MustParse(s string) Kind {
	k, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return k
}

// Normalize takes an arbitrary string and tries to bring it closer to the
// canonical kind form.
//
// This function is intentionally conservative: it only performs obvious,
// non-lossy transformations:
//
//   - trims surrounding spaces;
//   - lowercases the value;
//   - replaces '-' with '_'.
//
// It does NOT guarantee that the result is valid — callers should still call
// Validate/Parse after normalization.
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, "-", "_")
	return s
}

// Validate checks whether the provided Kind is valid.
// The empty kind ("") is considered invalid.
func Validate(k Kind) error {
	return validate(string(k))
}

// Successful reports whether the kind represents a successful outcome.
// Only Success and Created qualify; everything else is a failure kind.
func Successful(k Kind) bool {
	return k == Success || k == Created
}

// String returns the canonical string representation of the kind.
func (k Kind) String() string {
	return string(k)
}

// MarshalText implements encoding.TextMarshaler.
//
// It always returns the canonical string representation.
func (k Kind) MarshalText() ([]byte, error) {
	if err := Validate(k); err != nil {
		return nil, err
	}
	return []byte(k), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
//
// It normalizes and validates the provided text before assigning.
func (k *Kind) UnmarshalText(text []byte) error {
	s := string(bytes.TrimSpace(text))
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// validate is a helper that checks whether the provided string is a valid kind.
func validate(s string) error {
	if !kindRe.MatchString(s) {
		return ErrKindInvalid
	}
	return nil
}
