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

// Package storekey derives key-value store keys from validated identifiers.
//
// The store's key syntax caps keys below the 36 characters of a full UUID
// string, so UUID-shaped identifiers are re-encoded: all hyphens are
// stripped and the version nibble is dropped, producing a 31-character key.
// A 32-character keystone-style identifier is first re-hyphenated into the
// canonical 8-4-4-4-12 grouping and must decode into a genuine UUID before
// the same re-encoding applies. Identifiers of 31 characters or fewer
// already fit the budget and pass through unchanged.
//
// The re-encoding is one-way: no decode path back to the original UUID is
// provided, and consumers of the store are expected to tolerate that.
package storekey
