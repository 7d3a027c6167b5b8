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

// RejectionDescriptor is a flat, transport-friendly description of a
// translated failure.
//
// This type intentionally uses strings and ints (not the internal Kind /
// Status value types) so that it can live in the public "apis" layer and be
// used by adapters (HTTP, gRPC) and by structured logging.
type RejectionDescriptor struct {
	// Kind is the canonical failure kind, e.g. "bad_request", "not_found".
	//
	// Implementations SHOULD store only normalized, validated kinds here.
	Kind string `json:"kind"`

	// HTTPStatus is the HTTP status resolved for this failure.
	// A value of 0 means "not resolved".
	HTTPStatus int `json:"http_status,omitempty"`

	// GRPCCode is the gRPC status code (as integer) resolved for this
	// failure. A value of 0 means "not resolved" (0 is codes.OK, which a
	// failure never maps to).
	GRPCCode int `json:"grpc_code,omitempty"`

	// Message is an optional human-friendly description of the failure.
	Message string `json:"message,omitempty"`
}

// RejectionView is the client-facing representation of a failure, suitable
// for serialization into an HTTP response body or a gRPC status detail.
//
// Unlike RejectionDescriptor it never carries transport codes (those travel
// in the status line / trailers) but it may carry structured details.
type RejectionView struct {
	// Kind is the canonical failure kind.
	Kind string `json:"kind"`

	// Message is the human-readable explanation.
	Message string `json:"message,omitempty"`

	// Details is an optional shallow map of structured rejection data
	// (identifiers, lengths, shapes, limits). Values should be chosen so
	// that they survive a JSON round-trip.
	Details map[string]any `json:"details,omitempty"`
}
