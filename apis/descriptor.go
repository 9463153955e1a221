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

// ErrorDescriptor is a flat, transport-friendly description of a resolved
// error: its identity on the wire plus the statuses it maps to.
//
// This type intentionally uses plain strings and ints (not the internal Code
// value type) so that it can live in the public "apis" layer and be consumed
// by structured-logging, tracing or message-bus code without pulling in the
// rest of the library.
//
// Implementations may choose to carry a richer shape internally, but this is
// what the rest of the system can rely on.
type ErrorDescriptor struct {
	// Type is the wire discriminator of the concrete error variant, e.g.
	// "NotFoundError". It MAY be empty when the variant is not registered
	// with the wire codec.
	Type string `json:"type,omitempty"`

	// Code is the canonical category name, e.g. "NotFoundError".
	//
	// Implementations SHOULD store only names of registered categories here.
	Code string `json:"code"`

	// HTTPStatus is an optional HTTP status that should be used when this
	// error is exposed over HTTP. A value of 0 means "not specified".
	HTTPStatus int `json:"http_status,omitempty"`

	// GRPCCode is an optional gRPC status code (as integer) that should be
	// used when this error is exposed over gRPC. A value of 0 means
	// "not specified".
	GRPCCode int `json:"grpc_code,omitempty"`

	// Message is an optional human-friendly message, typically the error's
	// own description.
	Message string `json:"message,omitempty"`
}
