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

// Package translate resolves internal failure-status kinds into external,
// transport-level error codes.
//
// A translator is built once from options and then frozen: lookups are plain
// map reads, safe for concurrent use and free of allocation. The built-in
// rules map the four kinds the API layer distinguishes —
//
//	bad_request    -> 400
//	conflict       -> 409
//	not_acceptable -> 406
//	not_found      -> 404
//
// — and resolve every other failure kind to the generic internal error
// (HTTP 500 / gRPC Internal). Deployments that need a different policy
// install overrides at build time; the defaults are deliberately narrow.
//
// The translator only ever sees failure statuses. Handing it a successful
// status is a caller bug: ForFailure asserts this and panics rather than
// inventing an error code for a success.
package translate
