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
	"encoding"
	"errors"
	"strings"

	"github.com/google/uuid"
)

// Lengths of the recognized identifier shapes.
const (
	// UUIDLength is the length of a canonical hyphen-grouped UUID string.
	UUIDLength = 36

	// KeystoneIDLength is the maximum length of a keystone-style identifier
	// and the exact length of its condensed-hex form.
	KeystoneIDLength = 32
)

// Identifier is a validated object identifier.
//
// It is defined as a separate type (not just string) so that other packages
// can explicitly declare that they expect an already-validated value and to
// avoid accidental mixing of raw caller input with checked identifiers.
//
// Unlike most validated string types in dirpx, Identifier is never
// normalized: keystone-style identifiers are content-opaque and must be
// preserved byte for byte.
type Identifier string

// Shape classifies an identifier string into one of the recognized forms.
//
// The shape decides which storage-key derivation strategy applies, so the
// dispatch in dident/storekey switches on it rather than re-inspecting the
// raw string.
type Shape int

const (
	// ShapeInvalid marks a string that is not an acceptable identifier:
	// empty, length 33–35, length 37+, or a 36-character string that does
	// not render a genuine UUID.
	ShapeInvalid Shape = iota

	// ShapeUUID marks a canonical 36-character UUID string.
	ShapeUUID

	// ShapeKeystone marks a string of exactly 32 characters. Content is not
	// inspected at this stage; key derivation later requires the condensed
	// form to decode into a genuine UUID.
	ShapeKeystone

	// ShapeShort marks a string of 1 to 31 characters. Short identifiers
	// already fit the storage key budget and pass through key derivation
	// unchanged.
	ShapeShort
)

// String returns a stable, lowercase name for the shape.
func (s Shape) String() string {
	switch s {
	case ShapeUUID:
		return "uuid"
	case ShapeKeystone:
		return "keystone"
	case ShapeShort:
		return "short"
	default:
		return "invalid"
	}
}

var (
	// ErrEmpty is returned when the identifier is the empty string.
	// The empty string takes the "absent value" role for callers that feed
	// optional fields straight into validation.
	ErrEmpty = errors.New("dident: empty identifier")

	// ErrLength is returned when the identifier length matches none of the
	// recognized shapes (33–35, or 37 and above).
	ErrLength = errors.New("dident: identifier length out of range")

	// ErrMalformedUUID is returned when a 36-character identifier is not a
	// canonical UUID rendering.
	ErrMalformedUUID = errors.New("dident: malformed uuid identifier")
)

// Ensure Identifier implements encoding.TextMarshaler / encoding.TextUnmarshaler
// so it can be embedded into larger config or API structs.
var (
	_ encoding.TextMarshaler   = (*Identifier)(nil)
	_ encoding.TextUnmarshaler = (*Identifier)(nil)
)

// DetectShape classifies a raw string into an identifier shape.
//
// A 36-character string must parse as a UUID and survive a case-insensitive
// round trip through re-serialization, otherwise it is ShapeInvalid. The
// round trip rejects 36-character strings that a lenient parser would accept
// but that are not the canonical hyphen-grouped rendering.
func DetectShape(s string) Shape {
	switch l := len(s); {
	case l == UUIDLength:
		if isCanonicalUUID(s) {
			return ShapeUUID
		}
		return ShapeInvalid
	case l == KeystoneIDLength:
		return ShapeKeystone
	case l > 0 && l < KeystoneIDLength:
		return ShapeShort
	default:
		return ShapeInvalid
	}
}

// IsValid reports whether the raw string is an acceptable identifier under
// one of the recognized shapes.
//
// Note that a 32-character identifier is valid purely by length; key
// derivation may still refuse it later when its condensed form does not
// decode into a genuine UUID. See dident/storekey.
func IsValid(s string) bool {
	return DetectShape(s) != ShapeInvalid
}

// Validate checks the raw string and reports why it is not an acceptable
// identifier. It returns nil for valid input and one of the sentinel errors
// (ErrEmpty, ErrLength, ErrMalformedUUID) otherwise.
func Validate(s string) error {
	switch l := len(s); {
	case l == 0:
		return ErrEmpty
	case l == UUIDLength:
		if !isCanonicalUUID(s) {
			return ErrMalformedUUID
		}
		return nil
	case l <= KeystoneIDLength:
		return nil
	default:
		return ErrLength
	}
}

// Parse validates a raw string and returns it as an Identifier.
//
// Unlike the Parse functions of the status kinds, no normalization happens:
// the returned Identifier is byte-identical to the input.
func Parse(s string) (Identifier, error) {
	if err := Validate(s); err != nil {
		return "", err
	}
	return Identifier(s), nil
}

// MustParse is the panic-on-error variant of Parse. It is useful for
// declaring fixtures and package-level values in var blocks.
func MustParse(s string) Identifier {
	id, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return id
}

// String returns the identifier as supplied by the caller.
func (id Identifier) String() string {
	return string(id)
}

// Shape returns the shape of the identifier.
func (id Identifier) Shape() Shape {
	return DetectShape(string(id))
}

// MarshalText implements encoding.TextMarshaler.
//
// It re-validates before marshaling so that zero values and hand-constructed
// invalid identifiers do not leak into encoded output.
func (id Identifier) MarshalText() ([]byte, error) {
	if err := Validate(string(id)); err != nil {
		return nil, err
	}
	return []byte(id), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
//
// The text is validated but NOT trimmed or otherwise normalized; surrounding
// whitespace counts against the identifier's length and content like any
// other byte.
func (id *Identifier) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// isCanonicalUUID reports whether s is a canonical 36-character UUID string.
//
// Success requires both a clean parse and a case-insensitive match between
// the input and the re-serialized form, so renderings the parser tolerates
// but would print differently are rejected.
func isCanonicalUUID(s string) bool {
	u, err := uuid.Parse(s)
	if err != nil {
		return false
	}
	return strings.EqualFold(u.String(), s)
}
