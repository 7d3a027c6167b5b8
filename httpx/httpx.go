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

package httpx

import (
	"net/http"
	"strconv"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"dirpx.dev/dident/adapter"
	"dirpx.dev/dident/apis"
	"dirpx.dev/dident/status"
)

// Meta carries extra context that the HTTP layer can add on top of a failure.
// All fields are optional and typically come from request context, headers,
// or router-level logic.
type Meta struct {
	Correlation       string
	TraceID           string
	SpanID            string
	RetryAfterSeconds int32
}

// Writer is a thin adapter that knows how to turn a *status.Error into an
// HTTP response using the provided translator.
type Writer struct {
	Translator apis.Translator
}

// Write serializes the rejection view as JSON and writes it to the response
// writer. The HTTP status is resolved via the Translator.
//
// No automatic redaction or filtering is performed here: whatever is present
// in the error and Meta is exposed as-is. Higher-level handlers should apply
// policies if needed.
func (w Writer) Write(rw http.ResponseWriter, err *status.Error, meta Meta) {
	if err == nil {
		return
	}

	st := w.Translator.Status(err.Kind)
	view := adapter.ToView(err, st)

	fields := map[string]any{
		"kind": view.Kind,
	}
	if view.Message != "" {
		fields["message"] = view.Message
	}
	if len(view.Details) > 0 {
		fields["details"] = view.Details
	}
	if meta.Correlation != "" {
		fields["correlation"] = meta.Correlation
	}
	if meta.TraceID != "" {
		fields["trace_id"] = meta.TraceID
	}
	if meta.SpanID != "" {
		fields["span_id"] = meta.SpanID
	}
	if meta.RetryAfterSeconds > 0 {
		fields["retry_after_seconds"] = int(meta.RetryAfterSeconds)
	}

	pb, perr := structpb.NewStruct(fields)
	if perr != nil {
		// Details carried a value structpb cannot represent; drop them and
		// keep the rejection itself intact.
		delete(fields, "details")
		pb, _ = structpb.NewStruct(fields)
	}

	rw.Header().Set("Content-Type", "application/json")
	if meta.RetryAfterSeconds > 0 {
		rw.Header().Set("Retry-After", strconv.Itoa(int(meta.RetryAfterSeconds)))
	}
	rw.WriteHeader(st.HTTP)

	// IMPORTANT: the body goes through protojson so that nested structures
	// and well-known types serialize identically to the gRPC detail payload.
	b, _ := protojson.Marshal(pb)
	_, _ = rw.Write(b)
}
