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

package errs

import "dirpx.dev/dresult/code"

// Category codes for the built-in variants.
//
// Each variant owns exactly one process-wide singleton, created here at
// package init and registered under its wire tag. Consumer-defined variants
// declare their own codes the same way, in their own packages.
var (
	// NotFoundCode identifies NotFoundError: a referenced object does not
	// exist or is not visible to the caller.
	NotFoundCode = code.MustNew("NotFoundErrorCode", "NotFoundError")

	// ValidationCode identifies ValidationError: an input value violates a
	// structural or semantic rule (format, range, cross-field consistency).
	ValidationCode = code.MustNew("ValidationErrorCode", "ValidationError")

	// ConflictCode identifies ConflictError: the operation clashes with the
	// current state of the resource (concurrent update, duplicate create).
	ConflictCode = code.MustNew("ConflictErrorCode", "ConflictError")

	// UnauthorizedCode identifies UnauthorizedError: the caller is not
	// allowed to perform the operation (missing or insufficient credentials).
	UnauthorizedCode = code.MustNew("UnauthorizedErrorCode", "UnauthorizedError")

	// ConfigurationCode identifies ConfigurationError: the process or one of
	// its components is configured in a way that makes the operation
	// impossible (missing setting, unusable value).
	ConfigurationCode = code.MustNew("ConfigurationErrorCode", "ConfigurationError")

	// BusinessRuleViolationCode identifies BusinessRuleViolationError: the
	// input was well-formed but a domain rule rejected the operation.
	BusinessRuleViolationCode = code.MustNew("BusinessRuleViolationErrorCode", "BusinessRuleViolationError")

	// APICode identifies APIError: an upstream API call failed in a way
	// visible to this operation.
	APICode = code.MustNew("ApiErrorCode", "ApiError")

	// UnhandledExceptionCode identifies UnhandledExceptionError: an
	// unexpected, non-classified failure. The fallback category when no more
	// specific variant applies.
	UnhandledExceptionCode = code.MustNew("UnhandledExceptionErrorCode", "UnhandledExceptionError")

	// CanceledCode identifies CanceledError: the operation was cut short by
	// caller cancellation or an expired deadline.
	CanceledCode = code.MustNew("CanceledErrorCode", "CanceledError")
)

// NotFoundError reports that a referenced object does not exist.
//
// Use it when a lookup by identifier comes back empty, or when the object
// exists but must be presented as missing to the caller.
type NotFoundError struct {
	Base
}

// NotFound creates a NotFoundError with the given description.
// It panics when the description is empty or whitespace-only.
func NotFound(description string) *NotFoundError {
	return &NotFoundError{MustBase(NotFoundCode, description)}
}

// ValidationError reports that an input value, entity or payload violates a
// structural or semantic invariant: wrong format, range, charset, pattern, or
// cross-field consistency.
//
// One failure per operation: this model deliberately carries a single
// validation error, not an aggregated list.
type ValidationError struct {
	Base
}

// Validation creates a ValidationError with the given description.
// It panics when the description is empty or whitespace-only.
func Validation(description string) *ValidationError {
	return &ValidationError{MustBase(ValidationCode, description)}
}

// ConflictError reports that the operation clashes with the current state of
// a resource: a concurrent modification, a stale version, or a create on
// something that already exists.
type ConflictError struct {
	Base
}

// Conflict creates a ConflictError with the given description.
// It panics when the description is empty or whitespace-only.
func Conflict(description string) *ConflictError {
	return &ConflictError{MustBase(ConflictCode, description)}
}

// UnauthorizedError reports that the caller may not perform the operation:
// no credentials, bad credentials, or insufficient rights.
type UnauthorizedError struct {
	Base
}

// Unauthorized creates an UnauthorizedError with the given description.
// It panics when the description is empty or whitespace-only.
func Unauthorized(description string) *UnauthorizedError {
	return &UnauthorizedError{MustBase(UnauthorizedCode, description)}
}

// ConfigurationError reports that the process is configured in a way that
// makes the operation impossible: a missing setting, an unusable value, a
// disabled capability.
type ConfigurationError struct {
	Base
}

// Configuration creates a ConfigurationError with the given description.
// It panics when the description is empty or whitespace-only.
func Configuration(description string) *ConfigurationError {
	return &ConfigurationError{MustBase(ConfigurationCode, description)}
}

// BusinessRuleViolationError reports that a well-formed request was rejected
// by a domain rule: an account limit, an order window, an allowed-state
// transition.
type BusinessRuleViolationError struct {
	Base
}

// BusinessRuleViolation creates a BusinessRuleViolationError with the given
// description. It panics when the description is empty or whitespace-only.
func BusinessRuleViolation(description string) *BusinessRuleViolationError {
	return &BusinessRuleViolationError{MustBase(BusinessRuleViolationCode, description)}
}

// APIError reports that a call to an upstream API failed: a bad response, an
// unexpected status, a broken contract. The description should say which API
// and what came back.
type APIError struct {
	Base
}

// API creates an APIError with the given description.
// It panics when the description is empty or whitespace-only.
func API(description string) *APIError {
	return &APIError{MustBase(APICode, description)}
}

// UnhandledExceptionError reports an unexpected, non-classified failure. It
// is the catch-all for plain Go errors coerced through From and for anything
// that has no better category.
type UnhandledExceptionError struct {
	Base
}

// UnhandledException creates an UnhandledExceptionError with the given
// description. It panics when the description is empty or whitespace-only.
func UnhandledException(description string) *UnhandledExceptionError {
	return &UnhandledExceptionError{MustBase(UnhandledExceptionCode, description)}
}

// CanceledError reports that the operation was cut short: the caller
// canceled, or a deadline expired. The context-aware combinators in the root
// package produce this variant when they find the context already done.
type CanceledError struct {
	Base
}

// Canceled creates a CanceledError with the given description.
// It panics when the description is empty or whitespace-only.
func Canceled(description string) *CanceledError {
	return &CanceledError{MustBase(CanceledCode, description)}
}

// Ensure every built-in variant satisfies the Error contract.
var (
	_ Error = (*NotFoundError)(nil)
	_ Error = (*ValidationError)(nil)
	_ Error = (*ConflictError)(nil)
	_ Error = (*UnauthorizedError)(nil)
	_ Error = (*ConfigurationError)(nil)
	_ Error = (*BusinessRuleViolationError)(nil)
	_ Error = (*APIError)(nil)
	_ Error = (*UnhandledExceptionError)(nil)
	_ Error = (*CanceledError)(nil)
)
