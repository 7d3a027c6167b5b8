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

package apis

import (
	"google.golang.org/grpc/codes"

	"dirpx.dev/dident/status"
)

// Translator is an immutable, concurrency-safe view of the translation rules.
// It resolves an internal failure kind into transport statuses for HTTP and
// gRPC.
//
// Translator methods are total functions: unmapped kinds resolve to the
// generic internal error, never to an error return. The precondition that
// the kind actually represents a failure is enforced one level up (see
// translate.ForFailure), keeping the table lookups pure.
type Translator interface {
	// HTTPStatus returns the HTTP status code for the given failure kind.
	// Kinds without a rule must fall back to 500.
	HTTPStatus(k status.Kind) int

	// GRPCStatus returns the gRPC status code for the given failure kind.
	// Kinds without a rule must fall back to codes.Internal.
	GRPCStatus(k status.Kind) codes.Code

	// Status resolves both HTTP and gRPC in a single call, using the same
	// matching logic.
	Status(k status.Kind) Status

	// Explain returns a human-readable description of which rule matched.
	// Implementations may return an empty string in production builds.
	Explain(k status.Kind) string
}

// Status represents a resolved pair of transport statuses for a single
// failure. It is the final output of the translator and can be written
// directly to HTTP/gRPC.
type Status struct {
	HTTP int        // Resolved HTTP status code (net/http compatible).
	GRPC codes.Code // Resolved gRPC status code.
}
