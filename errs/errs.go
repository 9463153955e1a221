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

import (
	"errors"
	"fmt"
	"strings"

	"dirpx.dev/dresult/code"
)

// Error is the contract every failure variant satisfies, built-in or
// consumer-defined.
//
// An Error pairs a category code with a human-readable description. Variants
// are thin structs embedding Base; they may add arbitrary extra public fields
// (an order ID, a customer ID, a limit that was hit). The hierarchy is open:
// this package never needs modification when a new variant is declared
// elsewhere.
type Error interface {
	error

	// ErrorCode returns the canonical singleton code of the category.
	// Never nil for errors built through this package's constructors.
	ErrorCode() *code.Code

	// ErrorDescription returns the human-readable detail.
	// Never empty for errors built through this package's constructors.
	ErrorDescription() string
}

// None is the canonical "absence of error" sentinel: the nil Error.
//
// It belongs to the outcome model, not to the error hierarchy — a successful
// Result carries None in its error slot, and None is never a "real" error.
// On the wire it is encoded as absence of the error field, never as an object.
var None Error

var (
	// ErrConstruction is returned (or carried by the panic) when an Error is
	// constructed with a nil code or an empty / whitespace-only description.
	//
	// Construction problems are programming errors and fail at the
	// construction call, never deferred to use-time.
	ErrConstruction = errors.New("errs: invalid error construction")
)

// Base carries the two fields every variant shares. Variants embed it by
// value:
//
//	type TooManySeatsError struct {
//		errs.Base
//		Requested int `json:"requested"`
//	}
//
// The fields are exported so that the wire codec (and plain encoding/json)
// can see them, and they are treated as immutable after construction: build
// a Base through NewBase or MustBase and never reassign the fields.
type Base struct {
	// Code is the canonical singleton of the error category.
	Code *code.Code `json:"code"`

	// Description is the human-readable detail. What should end up in logs
	// or in an API error body.
	Description string `json:"description"`
}

// NewBase validates and builds the shared part of a variant.
//
// The code must be non-nil and the description non-empty after trimming
// whitespace. Violations return an error wrapping ErrConstruction. Decode
// paths that deal with untrusted payloads should prefer this over MustBase.
func NewBase(c *code.Code, description string) (Base, error) {
	if c == nil {
		return Base{}, fmt.Errorf("%w: nil code", ErrConstruction)
	}
	if err := ValidateDescription(description); err != nil {
		return Base{}, err
	}
	return Base{Code: c, Description: description}, nil
}

// MustBase is the panic-on-error variant of NewBase. Variant factories use it
// so that a bad construction fails at the failure site, loudly.
func MustBase(c *code.Code, description string) Base {
	b, err := NewBase(c, description)
	if err != nil {
		panic(err)
	}
	return b
}

// ValidateDescription checks the description rule on its own: non-empty and
// not whitespace-only. Exported for decode paths that must turn a bad payload
// into a recoverable error instead of a panic.
func ValidateDescription(description string) error {
	if strings.TrimSpace(description) == "" {
		return fmt.Errorf("%w: empty or whitespace-only description", ErrConstruction)
	}
	return nil
}

// Error implements the built-in error interface.
//
// The format is:
//
//	<category name>: <description>
//
// e.g. "NotFoundError: user 7 not found". This makes the error both human-
// and machine-scannable in logs.
func (b Base) Error() string {
	if b.Code == nil {
		return b.Description
	}
	return fmt.Sprintf("%s: %s", b.Code.Name(), b.Description)
}

// ErrorCode returns the category singleton.
func (b Base) ErrorCode() *code.Code {
	return b.Code
}

// ErrorDescription returns the human-readable detail.
func (b Base) ErrorDescription() string {
	return b.Description
}

// IsType reports whether err's chain contains an error of variant V.
//
// V may be a concrete variant pointer or an interface:
//
//	errs.IsType[*errs.NotFoundError](err)  // exact variant (or wrapping it)
//	errs.IsType[errs.Error](err)           // any error of the open hierarchy
//
// A nil err never matches.
func IsType[V error](err error) bool {
	var target V
	return errors.As(err, &target)
}

// From coerces a plain Go error into the hierarchy.
//
// nil maps to None. An Error anywhere in the chain is returned as-is, so a
// failure that traveled through fmt.Errorf wrapping keeps its variant and
// code. Anything else becomes an UnhandledExceptionError carrying the
// original message.
func From(err error) Error {
	if err == nil {
		return None
	}
	var e Error
	if errors.As(err, &e) {
		return e
	}
	description := strings.TrimSpace(err.Error())
	if description == "" {
		description = "unknown error"
	}
	return UnhandledException(description)
}
