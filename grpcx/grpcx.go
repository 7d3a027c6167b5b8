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

package grpcx

import (
	"context"

	"google.golang.org/grpc"
	gcodes "google.golang.org/grpc/codes"
	gstatus "google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/anypb"
	"google.golang.org/protobuf/types/known/structpb"

	"dirpx.dev/dident/adapter"
	"dirpx.dev/dident/apis"
	"dirpx.dev/dident/status"
)

// Extras holds optional metadata that can be embedded into the rejection
// detail attached to a gRPC status. All fields are optional.
type Extras struct {
	// CorrelationID is a client/server correlation token (request ID, idempotency key).
	CorrelationID string

	// TraceID is the distributed trace identifier (W3C traceparent / OpenTelemetry).
	TraceID string

	// SpanID is the span identifier within the trace.
	SpanID string
}

// MetaFn extracts Extras from context and the domain failure.
// It can return an empty Extras if nothing is available.
type MetaFn func(ctx context.Context, e *status.Error) Extras

// UnaryServerInterceptor returns a gRPC UnaryServerInterceptor that maps
// *status.Error into gRPC errors with a structured rejection detail.
//
// The provided apis.Translator is used to map failure kinds into transport
// status codes.
//
// The optional MetaFn can be used to extract additional metadata from context
// and the domain failure to populate the detail. If nil, no extra metadata
// will be added.
func UnaryServerInterceptor(t apis.Translator, metaFn MetaFn) grpc.UnaryServerInterceptor {
	if metaFn == nil {
		metaFn = func(context.Context, *status.Error) Extras { return Extras{} }
	}

	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		resp, err := handler(ctx, req)
		if err == nil {
			return resp, nil
		}

		de, ok := err.(*status.Error)
		if !ok {
			// Not ours — return as-is.
			return nil, err
		}

		st := t.Status(de.Kind)
		ex := metaFn(ctx, de)
		desc := adapter.ToDescriptor(de, st)

		fields := map[string]any{
			// Core identity.
			"kind": desc.Kind,

			// Transport projections.
			"http_status": desc.HTTPStatus,
			"grpc_code":   desc.GRPCCode,
		}
		if desc.Message != "" {
			fields["message"] = desc.Message
		}
		// Correlation / tracing.
		if ex.CorrelationID != "" {
			fields["correlation_id"] = ex.CorrelationID
		}
		if ex.TraceID != "" {
			fields["trace_id"] = ex.TraceID
		}
		if ex.SpanID != "" {
			fields["span_id"] = ex.SpanID
		}

		base := gstatus.New(gcodes.Code(st.GRPC), de.Message)

		// Try to attach the detail. If it fails — return base.
		if pb, err := structpb.NewStruct(fields); err == nil {
			if anyDesc, err := anypb.New(pb); err == nil {
				if with, err := base.WithDetails(anyDesc); err == nil {
					return nil, with.Err()
				}
			}
		}

		return nil, base.Err()
	}
}

// ExtractDetail pulls the structured rejection detail out of a gRPC error,
// if present. Useful in tests and client code.
func ExtractDetail(err error) (*structpb.Struct, bool) {
	if err == nil {
		return nil, false
	}
	st, ok := gstatus.FromError(err)
	if !ok {
		return nil, false
	}
	for _, d := range st.Details() {
		if pb, ok := d.(*structpb.Struct); ok {
			return pb, true
		}
	}
	return nil, false
}
