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

package translate

import (
	"fmt"
	"log/slog"

	"google.golang.org/grpc/codes"

	"dirpx.dev/dident/apis"
	"dirpx.dev/dident/status"
)

// New constructs an immutable apis.Translator snapshot.
//
// The resulting apis.Translator is fully thread-safe and designed for
// long-lived reuse. Each build creates a self-contained translator instance —
// no shared references to global state or user-provided structures remain.
//
// Build process overview:
//
//  1. Seed the builder with library defaults (HTTP & gRPC).
//  2. Apply user-provided options (defaults, overrides).
//  3. Validate every configured kind (canonical form, failure kinds only).
//  4. Freeze all maps into immutable copies (fresh allocations).
//
// Errors returned from this function indicate non-canonical or successful
// kinds in the configuration.
func New(opts ...Option) (apis.Translator, error) {
	// (0) Start with an empty builder. We do not assume any pre-seeded state.
	b := newBuilder()

	// (1) Seed the builder with package-level defaults.
	// Copy into builder-owned maps to prevent external mutation.
	for k, v := range defaultHTTP {
		b.httpDefaults[k] = v
	}
	for k, v := range defaultGRPC {
		// Keep values as int for internal uniformity;
		// convert to codes.Code when freezing the final snapshot.
		b.grpcDefaults[k] = int(v)
	}

	// (2) Apply user-supplied options (defaults, overrides).
	for _, opt := range opts {
		opt(b)
	}

	// (3) Every configured kind must be canonical and must be a failure kind:
	// a rule for "success" can never fire and indicates a misconfiguration.
	for _, m := range []map[status.Kind]int{
		b.httpDefaults, b.grpcDefaults, b.httpOverride, b.grpcOverride,
	} {
		for k := range m {
			if err := status.Validate(k); err != nil {
				return nil, fmt.Errorf("translate: invalid kind %q: %w", k, err)
			}
			if status.Successful(k) {
				return nil, fmt.Errorf("translate: rule for successful kind %q", k)
			}
		}
	}

	// (4) Freeze everything into a read-only snapshot.
	// Each map is freshly allocated.
	t := &translator{
		httpDefault:  freezeHTTP(b.httpDefaults),
		grpcDefault:  freezeGRPC(b.grpcDefaults),
		httpOverride: freezeHTTP(b.httpOverride),
		grpcOverride: freezeGRPC(b.grpcOverride),

		fallbackHTTP: b.fallbackHTTP,
		fallbackGRPC: b.fallbackGRPC,
	}

	return t, nil
}

// Default returns the shared translator built from the library defaults
// alone. It is what ForFailure uses when handed a nil translator.
func Default() apis.Translator {
	return defaultTranslator
}

var defaultTranslator = func() apis.Translator {
	t, err := New()
	if err != nil {
		// The built-in tables are canonical; failing here is a library bug.
		panic(err)
	}
	return t
}()

// ForFailure resolves the transport statuses for a failed operation.
//
// The caller guarantees that st represents a failure; handing a successful
// status to the translator is a programming-contract violation, and
// ForFailure panics instead of inventing an error code for a success.
//
// A nil translator resolves through Default().
func ForFailure(t apis.Translator, st status.Status) apis.Status {
	if st.Success() {
		panic(fmt.Sprintf("translate: status %q is not a failure", st))
	}
	if t == nil {
		t = Default()
	}
	resolved := t.Status(st.Kind)
	slog.Debug("translated failure status",
		"kind", st.Kind, "description", st.Description,
		"http", resolved.HTTP, "grpc", resolved.GRPC.String(),
	)
	return resolved
}

// translator is an immutable implementation that combines per-kind defaults
// and per-kind exact overrides. Lookups are O(1) map reads and safe for
// concurrent use once constructed.
type translator struct {
	// httpDefault holds the base HTTP status for a given failure kind.
	httpDefault map[status.Kind]int

	// grpcDefault holds the base gRPC status for a given failure kind.
	grpcDefault map[status.Kind]codes.Code

	// httpOverride holds explicit HTTP statuses for specific kinds.
	// These take precedence over defaults.
	httpOverride map[status.Kind]int

	// grpcOverride holds explicit gRPC statuses for specific kinds.
	grpcOverride map[status.Kind]codes.Code

	// fallbackHTTP is used when there is no rule at all for a kind.
	// Typically http.StatusInternalServerError.
	fallbackHTTP int

	// fallbackGRPC is used when there is no rule at all for a kind.
	// Typically codes.Internal.
	fallbackGRPC codes.Code
}

// HTTPStatus resolves an HTTP status for the given failure kind.
//
// Resolution order (highest to lowest):
//  1. exact per-kind override (explicitly registered);
//  2. per-kind default (library or user replaced);
//  3. hardcoded ultimate fallback (500).
func (t *translator) HTTPStatus(k status.Kind) int {
	if v, ok := t.httpOverride[k]; ok {
		return v
	}
	if v, ok := t.httpDefault[k]; ok {
		return v
	}
	return t.fallbackHTTP
}

// GRPCStatus resolves a gRPC status for the given failure kind.
// Uses the same precedence as HTTPStatus, but returns gRPC codes.
func (t *translator) GRPCStatus(k status.Kind) codes.Code {
	if v, ok := t.grpcOverride[k]; ok {
		return v
	}
	if v, ok := t.grpcDefault[k]; ok {
		return v
	}
	return t.fallbackGRPC
}

// Status resolves both transports in one call.
func (t *translator) Status(k status.Kind) apis.Status {
	return apis.Status{
		HTTP: t.HTTPStatus(k),
		GRPC: t.GRPCStatus(k),
	}
}

// Explain reports which rule produced the resolution for the given kind.
// Intended for debugging and tests, not for client-facing output.
func (t *translator) Explain(k status.Kind) string {
	httpRule := "fallback"
	if _, ok := t.httpOverride[k]; ok {
		httpRule = "override"
	} else if _, ok := t.httpDefault[k]; ok {
		httpRule = "default"
	}
	grpcRule := "fallback"
	if _, ok := t.grpcOverride[k]; ok {
		grpcRule = "override"
	} else if _, ok := t.grpcDefault[k]; ok {
		grpcRule = "default"
	}
	st := t.Status(k)
	return fmt.Sprintf("%s: http %d (%s), grpc %s (%s)", k, st.HTTP, httpRule, st.GRPC, grpcRule)
}

// freezeHTTP copies a builder-owned HTTP map into a fresh read-only map.
func freezeHTTP(in map[status.Kind]int) map[status.Kind]int {
	out := make(map[status.Kind]int, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

// freezeGRPC copies a builder-owned gRPC map, converting values to codes.Code.
func freezeGRPC(in map[status.Kind]int) map[status.Kind]codes.Code {
	out := make(map[status.Kind]codes.Code, len(in))
	for k, v := range in {
		out[k] = codes.Code(v)
	}
	return out
}
