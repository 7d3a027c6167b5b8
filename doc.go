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

// Package dident validates object identifiers exchanged between an external
// API layer and an internal key-value store.
//
// Two identifier shapes are recognized:
//
//   - a canonical UUID string: exactly 36 characters in the standard
//     8-4-4-4-12 hyphen-grouped hexadecimal rendering;
//   - a keystone-style identifier: 1 to 32 characters, content-opaque,
//     historically issued by an external identity service.
//
// Anything else (the empty string, lengths 33–35, lengths 37 and above, or a
// 36-character string that is not a proper UUID rendering) is invalid.
//
// Identifiers are never normalized or otherwise rewritten: a keystone-style
// identifier has no required internal structure, so lowercasing or trimming
// it would change its meaning. This is a deliberate departure from the
// validated string types elsewhere in dirpx, which canonicalize on parse.
//
// Storage-key derivation for validated identifiers lives in dident/storekey;
// failure-status translation for the surrounding API layer lives in
// dident/status and dident/translate.
package dident
