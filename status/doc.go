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

// Package status provides parsing, normalization and validation for
// operation-status kinds, plus the Status value that internal managers
// return when an operation completes.
//
// A "kind" is the machine-readable classification of an operation outcome,
// such as "bad_request", "conflict", "not_found" or "internal_error". Kinds
// are meant to be:
//
//   - short and stable;
//   - lowercased;
//   - underscore-separated (not dash-separated);
//   - suitable for use in JSON payloads and for lookup in translation tables.
//
// IMPORTANT: Empty kinds ("") are NOT allowed. Every status MUST carry a
// non-empty kind.
//
// The package also defines Error, the rich failure value that storage and
// API layers hand to the transport adapters (httpx, grpcx) together with a
// translator from dident/translate.
package status
