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

// Package errs defines the open error hierarchy carried by Results.
//
// Every error is a variant: a thin struct embedding Base, which pairs a
// category code (a dresult/code singleton) with a human-readable description.
// Nine variants are built in (NotFoundError, ValidationError, ConflictError,
// UnauthorizedError, ConfigurationError, BusinessRuleViolationError,
// APIError, UnhandledExceptionError, CanceledError); consumers declare
// further variants in their own packages without touching this one:
//
//	var TooManySeatsCode = code.MustNew("TooManySeatsErrorCode", "TooManySeatsError")
//
//	type TooManySeatsError struct {
//		errs.Base
//		Requested int `json:"requested"`
//	}
//
//	func TooManySeats(requested int) *TooManySeatsError {
//		return &TooManySeatsError{
//			Base:      errs.MustBase(TooManySeatsCode, "seat limit exceeded"),
//			Requested: requested,
//		}
//	}
//
// Construction is fail-fast: a nil code or an empty description panics in the
// Must paths and returns an error wrapping ErrConstruction in NewBase. Decode
// paths validate with ValidateDescription first so bad payloads stay
// recoverable.
//
// To survive a process boundary a variant is registered with the wire
// package, which serializes it under a $type discriminator and decodes it
// back to the exact concrete type.
package errs
