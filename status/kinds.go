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

// Success kinds
//
// These kinds describe completed operations. They never reach the
// translator: handing a successful status to dident/translate is a caller
// bug, not a runtime condition.
const (
	// Success indicates that the operation completed as requested.
	Success Kind = "success"

	// Created indicates that the operation completed and a new object was
	// materialized as a result.
	Created Kind = "created"
)

// Client-side failure kinds
//
// These kinds describe requests the manager refuses to act on because of
// something the caller did.
const (
	// BadRequest indicates that the request payload, parameters or
	// identifiers violate a structural or semantic invariant.
	// Use this for malformed identifiers, failed validation, or contract
	// violations in the request body.
	//
	// The default translator maps this to HTTP 400.
	BadRequest Kind = "bad_request"

	// Unauthorized indicates that the caller has not established a valid
	// authentication context.
	//
	// Not mapped by the default translator; falls back to HTTP 500 unless a
	// deployment installs an override.
	Unauthorized Kind = "unauthorized"

	// Forbidden indicates that the caller is authenticated but not allowed
	// to perform the operation.
	//
	// Not mapped by the default translator; falls back to HTTP 500 unless a
	// deployment installs an override.
	Forbidden Kind = "forbidden"

	// NotFound indicates that the target object does not exist in the
	// current scope or storage.
	// Use this for lookups by identifier or derived storage key.
	//
	// The default translator maps this to HTTP 404.
	NotFound Kind = "not_found"

	// NotAllowed indicates that the operation itself is recognized but not
	// permitted on the target object in its current state.
	//
	// Not mapped by the default translator; falls back to HTTP 500 unless a
	// deployment installs an override.
	NotAllowed Kind = "not_allowed"

	// NotAcceptable indicates that the manager cannot produce a result
	// acceptable to the caller (unsupported representation, incompatible
	// options).
	//
	// The default translator maps this to HTTP 406.
	NotAcceptable Kind = "not_acceptable"

	// Conflict indicates a state conflict: concurrent modification,
	// duplicate creation, or an update that clashes with existing data.
	//
	// The default translator maps this to HTTP 409.
	Conflict Kind = "conflict"

	// Gone indicates that the object existed before but is no longer
	// available.
	//
	// Not mapped by the default translator; falls back to HTTP 500 unless a
	// deployment installs an override.
	Gone Kind = "gone"
)

// Server-side and operational failure kinds
const (
	// Timeout indicates that the operation could not complete within its
	// time budget.
	Timeout Kind = "timeout"

	// Unsupported indicates that the requested operation or option is not
	// supported by this manager.
	Unsupported Kind = "unsupported"

	// InternalError indicates an internal, non-classified failure.
	// Use this as the fallback when no more specific kind applies.
	InternalError Kind = "internal_error"

	// NotImplemented indicates that the operation is recognized but has no
	// implementation in this build.
	NotImplemented Kind = "not_implemented"

	// ServiceUnavailable indicates that a required downstream component is
	// temporarily unreachable.
	ServiceUnavailable Kind = "service_unavailable"

	// Undefined is the zero-ish kind used by managers that could not
	// classify the outcome at all. It is still a valid failure kind and
	// translates to the generic internal error.
	Undefined Kind = "undefined"
)
