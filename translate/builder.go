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
	"net/http"

	"google.golang.org/grpc/codes"

	"dirpx.dev/dident/status"
)

type builder struct {
	// user-provided adjustments (applied on top of library defaults)

	// httpDefaults holds per-kind HTTP rules that replace library defaults.
	httpDefaults map[status.Kind]int
	// grpcDefaults holds per-kind gRPC rules as ints; converted to codes.Code in New().
	grpcDefaults map[status.Kind]int

	// httpOverride holds exact per-kind HTTP overrides (higher than defaults).
	httpOverride map[status.Kind]int
	// grpcOverride holds exact per-kind gRPC overrides as ints; converted in New().
	grpcOverride map[status.Kind]int

	// global fallbacks used when a kind has no rule at all.
	fallbackHTTP int
	fallbackGRPC codes.Code
}

// newBuilder creates an empty builder with maps pre-sized
// to hold typical numbers of entries.
func newBuilder() *builder {
	return &builder{
		// we size the maps roughly to the number of built-in rules
		httpDefaults: make(map[status.Kind]int, len(defaultHTTP)),
		grpcDefaults: make(map[status.Kind]int, len(defaultGRPC)),

		// overrides are usually few
		httpOverride: make(map[status.Kind]int),
		grpcOverride: make(map[status.Kind]int),

		// hard fallbacks if the kind was never seen
		fallbackHTTP: http.StatusInternalServerError,
		fallbackGRPC: codes.Internal,
	}
}
