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

package storekey

import "log/slog"

// Option configures a Converter at construction time.
type Option func(*Converter)

// WithLogger injects the diagnostic logging sink. The converter only emits
// trace-level diagnostics through it; there is no contract on delivery and
// a nil logger is ignored.
func WithLogger(log *slog.Logger) Option {
	return func(c *Converter) {
		if log != nil {
			c.log = log
		}
	}
}
