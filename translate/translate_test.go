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
	"strings"
	"testing"

	"google.golang.org/grpc/codes"

	"dirpx.dev/dident/status"
)

func TestDefaults_HTTP(t *testing.T) {
	tr, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	tests := []struct {
		name string
		kind status.Kind
		want int
	}{
		{"bad request", status.BadRequest, http.StatusBadRequest},
		{"conflict", status.Conflict, http.StatusConflict},
		{"not acceptable", status.NotAcceptable, http.StatusNotAcceptable},
		{"not found", status.NotFound, http.StatusNotFound},

		// Everything else resolves to the generic internal error.
		{"timeout", status.Timeout, http.StatusInternalServerError},
		{"unauthorized", status.Unauthorized, http.StatusInternalServerError},
		{"forbidden", status.Forbidden, http.StatusInternalServerError},
		{"gone", status.Gone, http.StatusInternalServerError},
		{"unsupported", status.Unsupported, http.StatusInternalServerError},
		{"undefined", status.Undefined, http.StatusInternalServerError},
		{"internal", status.InternalError, http.StatusInternalServerError},
		{"unknown kind", status.Kind("quux_failure"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tr.HTTPStatus(tt.kind); got != tt.want {
				t.Fatalf("HTTPStatus(%q) = %d, want %d", tt.kind, got, tt.want)
			}
		})
	}
}

func TestDefaults_GRPC(t *testing.T) {
	tr, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	tests := []struct {
		name string
		kind status.Kind
		want codes.Code
	}{
		{"bad request", status.BadRequest, codes.InvalidArgument},
		{"conflict", status.Conflict, codes.Aborted},
		{"not acceptable", status.NotAcceptable, codes.InvalidArgument},
		{"not found", status.NotFound, codes.NotFound},
		{"timeout", status.Timeout, codes.Internal},
		{"unknown kind", status.Kind("quux_failure"), codes.Internal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tr.GRPCStatus(tt.kind); got != tt.want {
				t.Fatalf("GRPCStatus(%q) = %v, want %v", tt.kind, got, tt.want)
			}
		})
	}
}

func TestStatus_ResolvesBothTransports(t *testing.T) {
	tr, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	st := tr.Status(status.NotFound)
	if st.HTTP != http.StatusNotFound || st.GRPC != codes.NotFound {
		t.Fatalf("Status(not_found) = %+v", st)
	}
}

func TestOverrides(t *testing.T) {
	tr, err := New(
		WithHTTPOverride(status.Timeout, http.StatusGatewayTimeout),
		WithGRPCOverride(status.Timeout, int(codes.DeadlineExceeded)),
		WithHTTPDefault(status.Gone, http.StatusGone),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if got := tr.HTTPStatus(status.Timeout); got != http.StatusGatewayTimeout {
		t.Fatalf("HTTPStatus(timeout) = %d, want %d", got, http.StatusGatewayTimeout)
	}
	if got := tr.GRPCStatus(status.Timeout); got != codes.DeadlineExceeded {
		t.Fatalf("GRPCStatus(timeout) = %v, want %v", got, codes.DeadlineExceeded)
	}
	if got := tr.HTTPStatus(status.Gone); got != http.StatusGone {
		t.Fatalf("HTTPStatus(gone) = %d, want %d", got, http.StatusGone)
	}

	// Built-in rules stay intact.
	if got := tr.HTTPStatus(status.NotFound); got != http.StatusNotFound {
		t.Fatalf("HTTPStatus(not_found) = %d, want %d", got, http.StatusNotFound)
	}
}

func TestNew_RejectsBadConfiguration(t *testing.T) {
	if _, err := New(WithHTTPOverride(status.Kind("Bad"), 400)); err == nil {
		t.Fatal("New must reject a non-canonical kind")
	}
	if _, err := New(WithHTTPOverride(status.Success, 200)); err == nil {
		t.Fatal("New must reject a rule for a successful kind")
	}
}

func TestForFailure(t *testing.T) {
	// A nil translator resolves through Default().
	st := ForFailure(nil, status.New(status.NotFound, "no such port"))
	if st.HTTP != http.StatusNotFound || st.GRPC != codes.NotFound {
		t.Fatalf("ForFailure = %+v", st)
	}
}

func TestForFailure_PanicsOnSuccess(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("ForFailure on a successful status must panic")
		}
		if msg, ok := r.(string); !ok || !strings.Contains(msg, "not a failure") {
			t.Fatalf("unexpected panic value: %v", r)
		}
	}()
	ForFailure(Default(), status.New(status.Success, "all good"))
}

func TestExplain(t *testing.T) {
	tr, err := New(WithHTTPOverride(status.Timeout, http.StatusGatewayTimeout))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	tests := []struct {
		name string
		kind status.Kind
		subs []string
	}{
		{"default rule", status.NotFound, []string{"not_found", "404", "default"}},
		{"override rule", status.Timeout, []string{"timeout", "504", "override"}},
		{"fallback rule", status.Undefined, []string{"undefined", "500", "fallback"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tr.Explain(tt.kind)
			for _, sub := range tt.subs {
				if !strings.Contains(got, sub) {
					t.Fatalf("Explain(%q) = %q, missing %q", tt.kind, got, sub)
				}
			}
		})
	}
}
