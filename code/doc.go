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

// Package code provides the identity tokens for dresult error categories.
//
// A "code" names the category of an error, such as "NotFoundError" or
// "ValidationError". Codes are meant to be:
//
//   - one singleton *Code per category per process;
//   - created once (MustNew in a var block) and registered under a wire tag;
//   - compared by reference: c1 == c2 iff they denote the same category;
//   - suitable for use as the $type discriminator in JSON payloads and for
//     lookup in the wire registry.
//
// IMPORTANT: there is no valid zero Code and no way to build one by hand.
// Every error category MUST declare its code through New/MustNew, and every
// decode path MUST resolve codes through Lookup (the wire package does this)
// so that equality checks against in-memory declarations keep working across
// process boundaries.
//
// This package defines the canonical representation, its validation rules and
// the process-wide registry that backs singleton resolution.
package code
