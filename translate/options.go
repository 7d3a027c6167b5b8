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
	"dirpx.dev/dident/status"
)

// Option configures the Translator at build time.
// All options are applied to an internal builder and then frozen into
// an immutable Translator.
type Option func(*builder)

// WithHTTPDefault sets or replaces the library-level default HTTP status
// for the given failure kind.
func WithHTTPDefault(k status.Kind, http int) Option {
	return func(b *builder) { b.httpDefaults[k] = http }
}

// WithGRPCDefault sets or replaces the library-level default gRPC status
// for the given failure kind.
func WithGRPCDefault(k status.Kind, grpc int) Option {
	return func(b *builder) { b.grpcDefaults[k] = grpc }
}

// WithHTTPOverride registers an exact HTTP override for the given kind.
// Overrides take precedence over defaults.
func WithHTTPOverride(k status.Kind, http int) Option {
	return func(b *builder) { b.httpOverride[k] = http }
}

// WithGRPCOverride registers an exact gRPC override for the given kind.
// Overrides take precedence over defaults.
func WithGRPCOverride(k status.Kind, grpc int) Option {
	return func(b *builder) { b.grpcOverride[k] = grpc }
}
