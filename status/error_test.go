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

import (
	"errors"
	"strings"
	"testing"
)

func TestError_Basics(t *testing.T) {
	e := E(BadRequest, "identifier is malformed",
		WithDetailOption("id", "net-1"),
	)

	if e.Kind != BadRequest {
		t.Fatal("kind mismatch")
	}
	if e.Details["id"] != "net-1" {
		t.Fatal("detail missing")
	}

	s := e.Error()
	wantSubs := []string{"bad_request", "identifier is malformed"}
	for _, sub := range wantSubs {
		if !strings.Contains(s, sub) {
			t.Fatalf("Error() missing %q in %q", sub, s)
		}
	}
}

func TestError_Immutability_CopyOnWrite(t *testing.T) {
	e1 := E(BadRequest, "bad").WithDetail("k1", 1)
	e2 := e1.WithDetail("k2", 2)

	if len(e1.Details) != 1 || len(e2.Details) != 2 {
		t.Fatal("details size mismatch")
	}
	if _, ok := e1.Details["k2"]; ok {
		t.Fatal("original mutated")
	}
}

func TestError_WithCause_Unwrap(t *testing.T) {
	root := errors.New("root")
	e := E(InternalError, "x").WithCause(root)
	if !errors.Is(e, root) {
		t.Fatal("errors.Is failed")
	}
	if errors.Unwrap(e) != root {
		t.Fatal("Unwrap failed")
	}
}

func TestError_WithDetails_Merge(t *testing.T) {
	e := E(BadRequest, "x").WithDetails(map[string]any{"a": 1})
	e2 := e.WithDetails(map[string]any{"b": 2, "a": 3})
	if e.Details["a"] != 1 {
		t.Fatal("original mutated")
	}
	if e2.Details["a"] != 3 || e2.Details["b"] != 2 {
		t.Fatal("merge failed")
	}
}

func TestError_FailureStatus(t *testing.T) {
	e := E(NotFound, "no such network")
	st := e.FailureStatus()
	if st.Kind != NotFound || st.Description != "no such network" {
		t.Fatalf("FailureStatus() = %+v", st)
	}
	if st.Success() {
		t.Fatal("failure status must not be successful")
	}
}
