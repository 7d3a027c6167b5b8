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

import "fmt"

// Status is the outcome an internal manager reports for a single operation.
//
// It pairs a machine-readable Kind with an optional free-form description.
// Status values are small, immutable and safe to copy; managers return them
// by value and callers inspect Success() before deciding how to proceed.
type Status struct {
	// Kind is the classification of the outcome. Must be a canonical kind
	// from this package.
	Kind Kind

	// Description is a human-oriented elaboration of the outcome. It may be
	// empty when the Kind is descriptive enough.
	Description string
}

// New constructs a Status from a kind and a description.
func New(k Kind, description string) Status {
	return Status{Kind: k, Description: description}
}

// Success reports whether the status represents a successful outcome.
func (s Status) Success() bool {
	return Successful(s.Kind)
}

// String renders the status for logs:
//
//	<kind>
//
// or, when a description is present:
//
//	<kind>: <description>
func (s Status) String() string {
	if s.Description == "" {
		return string(s.Kind)
	}
	return fmt.Sprintf("%s: %s", s.Kind, s.Description)
}
