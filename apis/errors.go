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

package apis

import "dirpx.dev/dresult/code"

// CodedError represents an error that is classified into a well-defined
// error *category*.
//
// A category usually denotes a broad class of failure, such as:
//   - "ValidationError"   — input violated a structural or semantic rule,
//   - "NotFoundError"     — a referenced object does not exist,
//   - "ConflictError"     — concurrent modification or version mismatch,
//   - "UnhandledExceptionError" — unexpected failure.
//
// Categories are intended to be stable and enumerable. They are the primary
// value that higher-level adapters (HTTP, gRPC) will use to decide which
// status code to return to the client.
//
// Implementations are expected to return the *canonical singleton* for their
// category — the process-wide value declared through the dresult/code package.
// Adapters may compare the returned pointer directly against known codes.
type CodedError interface {
	error

	// ErrorCode returns the category of the error.
	//
	// The returned value MUST be non-nil and MUST be the canonical singleton
	// for the category. Callers should not try to "fix" or "guess" the value
	// here — if it's missing, it should be handled as an internal error at
	// the boundary.
	ErrorCode() *code.Code
}

// DescribedError represents an error that carries a human-readable
// description of what went wrong.
//
// While the code answers the question "what kind of error is this?", the
// description answers "what exactly happened?" in words meant for logs and
// API responses.
//
// Implementations MUST return a non-empty, non-whitespace description; the
// dresult/errs constructors enforce that at construction time.
type DescribedError interface {
	error

	// ErrorDescription returns the human-readable detail of the error.
	ErrorDescription() string
}
