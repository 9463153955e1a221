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

package mapper

import (
	"net/http"

	"dirpx.dev/dresult/code"
	"dirpx.dev/dresult/errs"
	"google.golang.org/grpc/codes"
)

// defaultHTTP defines the library's built-in HTTP mappings for the built-in
// error codes. These are only defaults: callers are expected to adjust or
// override them at the boundary where HTTP is actually produced (REST
// gateway, HTTP handler, etc.). Consumer-declared codes have no entry here
// and resolve to the fallback until registered via options.
var defaultHTTP = map[*code.Code]int{
	// 4xx — the caller sent something the service cannot act on.
	errs.NotFoundCode:     http.StatusNotFound,     // Target resource does not exist (or is not visible to the caller).
	errs.ValidationCode:   http.StatusBadRequest,   // Malformed input, contract violation.
	errs.UnauthorizedCode: http.StatusUnauthorized, // No/invalid credentials — caller must authenticate.

	// Conflicts and domain rules.
	errs.ConflictCode:              http.StatusConflict,            // Conflicting update/action (duplicate key, version clash).
	errs.BusinessRuleViolationCode: http.StatusUnprocessableEntity, // Input is well-formed but a domain rule forbids the action.

	// 5xx — the service or its surroundings failed.
	errs.ConfigurationCode:      http.StatusInternalServerError, // Broken deployment config; nothing the caller can fix.
	errs.UnhandledExceptionCode: http.StatusInternalServerError, // Generic unexpected failure; do not expose internal details.
	errs.APICode:                http.StatusBadGateway,          // An upstream API failed in a way visible to the client.

	// Cancellation.
	// Note: 499 is a non-standard but widely used code (nginx) for "client
	// closed request". We stay on the standard 408 by default; integrators
	// may switch via WithHTTPDefault.
	errs.CanceledCode: http.StatusRequestTimeout,
}

// defaultGRPC defines the library's built-in gRPC mappings for the built-in
// error codes. Values are chosen to align with canonical gRPC status
// semantics. As with HTTP, callers may override these at the transport edge
// if a different policy is required.
var defaultGRPC = map[*code.Code]codes.Code{
	// Input / resource state.
	errs.NotFoundCode:   codes.NotFound,        // Resource does not exist (or not visible).
	errs.ValidationCode: codes.InvalidArgument, // Bad input shape or validation errors.

	// Conflicts / domain rules.
	errs.ConflictCode:              codes.Aborted,            // Concurrency conflict; safe to retry the whole transaction.
	errs.BusinessRuleViolationCode: codes.FailedPrecondition, // System state forbids the action; retry won't help unchanged.

	// AuthN.
	errs.UnauthorizedCode: codes.Unauthenticated,

	// Server side.
	errs.ConfigurationCode:      codes.Internal,    // Misconfiguration is an internal defect from the caller's view.
	errs.UnhandledExceptionCode: codes.Internal,    // Unexpected failure.
	errs.APICode:                codes.Unavailable, // Upstream dependency failed; retrying later may succeed.

	// Cancellation.
	errs.CanceledCode: codes.Canceled, // Caller canceled or the context expired upstream.
}
