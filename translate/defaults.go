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

// defaultHTTP defines the library's built-in HTTP rules for failure kinds.
//
// The set is intentionally exactly the four kinds the external API layer
// distinguishes. Every other failure kind — timeout, unsupported,
// not_implemented, undefined and the rest — deliberately has no entry and
// resolves to the internal-error fallback, so that transient or internal
// conditions never leak a misleading client-side status.
var defaultHTTP = map[status.Kind]int{
	status.BadRequest:    http.StatusBadRequest,    // Malformed identifier or payload; the caller must fix the request.
	status.Conflict:      http.StatusConflict,      // Duplicate creation or concurrent modification.
	status.NotAcceptable: http.StatusNotAcceptable, // The manager cannot produce an acceptable result.
	status.NotFound:      http.StatusNotFound,      // The target object does not exist.
}

// defaultGRPC defines the library's built-in gRPC rules for failure kinds.
// These values follow the canonical gRPC equivalences of the HTTP rules
// above; unlisted kinds fall back to codes.Internal.
var defaultGRPC = map[status.Kind]codes.Code{
	status.BadRequest:    codes.InvalidArgument, // Bad input shape or validation failure.
	status.Conflict:      codes.Aborted,         // General conflict (concurrent updates, duplicates).
	status.NotAcceptable: codes.InvalidArgument, // gRPC has no 406; the request content itself is at fault.
	status.NotFound:      codes.NotFound,        // Object does not exist (or is not visible).
}
