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

import "dirpx.dev/dident/status"

// StatusCarrier represents an error that exposes the failure status of the
// operation that produced it.
//
// Transport adapters use this to pick domain failures out of an error chain
// without depending on the concrete error implementation: anything carrying
// a Status can be translated and written to the wire.
//
// Implementations MUST return a status whose Kind is a failure kind; a
// StatusCarrier for a successful operation is a contradiction in terms and
// adapters are allowed to treat it as an internal error.
type StatusCarrier interface {
	error

	// FailureStatus returns the failure status to translate.
	FailureStatus() status.Status
}

// DetailedError represents an error that exposes zero or more structured
// details. This is especially useful for validation scenarios where the
// caller needs to show what exactly about an identifier was rejected.
//
// Implementations SHOULD return a map that is safe to read and that will not
// be modified by the callee. Returning nil is allowed and simply means
// "no extra details".
type DetailedError interface {
	error

	// ErrorDetails returns structured details of the error. May return nil.
	ErrorDetails() map[string]any
}
