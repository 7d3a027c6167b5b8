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

package storekey

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"dirpx.dev/dident"
	"dirpx.dev/dident/status"
)

// Hex-character lengths of the canonical UUID field groups (RFC 4122).
const (
	timeLow          = 8
	timeMid          = 4
	timeHiAndVersion = 4
	clockSeq         = 4
	node             = 12

	// timeLen is the combined length of the three time fields.
	timeLen = timeLow + timeMid + timeHiAndVersion

	// versionPos is the offset of the UUID version nibble in the
	// hyphen-stripped 32-character form: the first hex digit of
	// time_hi_and_version.
	versionPos = timeLow + timeMid

	// condensedLength is the length of a UUID with all hyphens stripped.
	condensedLength = timeLen + clockSeq + node
)

// KeyLength is the length of a store key derived from a UUID-shaped
// identifier: the 32 hex digits minus the version nibble.
const KeyLength = condensedLength - 1

var (
	// ErrInvalidIdentifier is returned when the input is not an acceptable
	// identifier under any recognized shape. Callers must treat this as
	// "reject the request", never as a retryable condition.
	ErrInvalidIdentifier = errors.New("storekey: invalid identifier")

	// ErrNotUUIDDerived is returned when a 32-character identifier passed
	// length validation but its re-hyphenated form does not decode into a
	// genuine UUID. Such identifiers are valid to dident.IsValid yet still
	// yield no key; the asymmetry is part of the contract.
	ErrNotUUIDDerived = errors.New("storekey: identifier does not condense to a uuid")
)

// Converter derives store keys from identifiers.
//
// A Converter is immutable after New and safe for concurrent use; the only
// state it carries is the diagnostic logger.
type Converter struct {
	log *slog.Logger
}

// New constructs a Converter, applying the provided options.
// Without options the converter logs through slog.Default().
func New(opts ...Option) *Converter {
	c := &Converter{log: slog.Default()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// defaultConverter backs the package-level Convert for callers that do not
// need logger injection.
var defaultConverter = New()

// Convert derives a store key from an identifier using the default
// converter. See (*Converter).Convert.
func Convert(id string) (string, error) {
	return defaultConverter.Convert(id)
}

// Convert validates the identifier and derives the store key appropriate
// for its shape:
//
//   - 36 characters (canonical UUID): hyphens stripped, version nibble
//     dropped — a 31-character key;
//   - 32 characters (keystone-style): re-hyphenated, checked to be a genuine
//     condensed UUID, then re-encoded the same way;
//   - 1 to 31 characters: returned unchanged, it already fits the key budget.
//
// The input is never mutated; the returned key is always a new value.
// Failures are terminal for the call: an invalid identifier yields
// ErrInvalidIdentifier, an unconvertible 32-character identifier yields
// ErrNotUUIDDerived, and nothing is retried.
func (c *Converter) Convert(id string) (string, error) {
	c.log.Debug("converting identifier", "id", id, "len", len(id))

	shape := dident.DetectShape(id)
	switch shape {
	case dident.ShapeUUID:
		return c.fromUUID(id)
	case dident.ShapeKeystone:
		return c.fromKeystoneID(id)
	case dident.ShapeShort:
		return id, nil
	default:
		c.log.Debug("identifier rejected", "id", id, "len", len(id))
		return "", fmt.Errorf("%w: %q", ErrInvalidIdentifier, id)
	}
}

// fromUUID re-encodes a canonical 36-character UUID string into the store
// key alphabet.
//
// The key must stay below 32 characters, so the UUID is shortened from 36 to
// 31: every hyphen is removed and the version nibble (RFC 4122) is deleted,
// keeping the remaining digits in their original relative order.
func (c *Converter) fromUUID(id string) (string, error) {
	condensed := strings.ReplaceAll(id, "-", "")
	// With a validated UUID this cannot trip; it guards direct callers that
	// bypassed shape detection.
	if len(condensed) != condensedLength {
		c.log.Error("invalid uuid identifier", "id", id)
		return "", fmt.Errorf("%w: %q", ErrInvalidIdentifier, id)
	}
	key := condensed[:versionPos] + condensed[versionPos+1:]
	c.log.Debug("derived store key", "id", id, "key", key)
	return key, nil
}

// fromKeystoneID re-encodes a 32-character keystone-style identifier.
//
// A tenant identifier issued by keystone does not follow the hyphen-grouped
// UUID syntax, so the 32 characters are first re-assembled into a candidate
// UUID string (8-4-4-4-12) for validation, and the candidate is then
// re-encoded through the UUID path.
func (c *Converter) fromKeystoneID(id string) (string, error) {
	if len(id) != dident.KeystoneIDLength {
		c.log.Error("invalid keystone identifier", "id", id, "len", len(id))
		return "", fmt.Errorf("%w: %q", ErrInvalidIdentifier, id)
	}

	candidate := strings.Join([]string{
		id[:timeLow],
		id[timeLow : timeLow+timeMid],
		id[timeLow+timeMid : timeLen],
		id[timeLen : timeLen+clockSeq],
		id[timeLen+clockSeq : timeLen+clockSeq+node],
	}, "-")

	u, err := uuid.Parse(candidate)
	if err != nil {
		c.log.Error("keystone identifier does not decode into a uuid", "id", id)
		return "", fmt.Errorf("%w: %q", ErrNotUUIDDerived, id)
	}
	if !strings.EqualFold(u.String(), candidate) {
		c.log.Error("keystone identifier is not canonical uuid hex", "id", id)
		return "", fmt.Errorf("%w: %q", ErrNotUUIDDerived, id)
	}
	return c.fromUUID(candidate)
}

// Reject converts a key-derivation failure into the rich failure value the
// transport adapters consume.
//
// Both sentinel failures classify as bad_request: the caller supplied an
// identifier no key can be derived from. Anything else is an internal error.
func Reject(err error) *status.Error {
	switch {
	case errors.Is(err, ErrInvalidIdentifier), errors.Is(err, ErrNotUUIDDerived):
		return status.E(status.BadRequest, "invalid object identifier",
			status.WithCauseOption(err),
		)
	default:
		return status.E(status.InternalError, "store key derivation failed",
			status.WithCauseOption(err),
		)
	}
}
