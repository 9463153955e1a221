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

package dresult

import (
	"fmt"

	"dirpx.dev/dresult/errs"
)

// Result is the canonical outcome of a fallible operation: either a success
// carrying a value of type T, or a failure carrying an errs.Error. Exactly
// one side is ever populated; the factories enforce this, so a Result can be
// passed around and inspected without nil checks.
//
// The zero Result[T] is a success carrying T's zero value.
//
// Results are immutable after construction and safe to share across
// goroutines. Prefer chaining with Map/Bind/Match over branching on
// IsSuccess at every step.
type Result[T any] struct {
	value T
	err   errs.Error
}

// Unit is the value type for operations that succeed without producing data
// (deletes, notifications, fire-and-forget commands). Result[Unit] plays the
// role of a plain success/failure outcome.
type Unit struct{}

// Success returns a successful Result carrying value.
func Success[T any](value T) Result[T] {
	return Result[T]{value: value}
}

// Failure returns a failed Result carrying err.
//
// IMPORTANT: a failure without an error is a programming bug, so Failure
// panics when err is errs.None. Construction is the only place the
// success-xor-failure invariant can be violated; failing fast here keeps
// every downstream consumer free of defensive checks.
func Failure[T any](err errs.Error) Result[T] {
	if err == errs.None {
		panic("dresult: Failure requires a non-None error")
	}
	return Result[T]{err: err}
}

// From bridges conventional (T, error) returns into a Result.
//
// Usage:
//
//	res := dresult.From(repo.Load(id))
//
// A nil error yields Success(value). A non-nil error is coerced through
// errs.From: errors already in the hierarchy pass through unchanged
// (unwrapping if needed), anything else becomes an UnhandledExceptionError.
// The value is dropped on failure.
func From[T any](value T, err error) Result[T] {
	if e := errs.From(err); e != errs.None {
		return Failure[T](e)
	}
	return Success(value)
}

// IsSuccess reports whether r carries a value.
func (r Result[T]) IsSuccess() bool { return r.err == errs.None }

// IsFailure reports whether r carries an error.
func (r Result[T]) IsFailure() bool { return r.err != errs.None }

// Value returns the carried value.
//
// IMPORTANT: on failure Value returns the zero value of T rather than
// panicking. Callers that cannot tolerate a silent zero must check
// IsSuccess first, fold with Match, or use MustValue.
func (r Result[T]) Value() T { return r.value }

// MustValue returns the carried value and panics on failure.
//
// Use it in tests and at call sites where a failure is an invariant
// violation rather than an expected outcome.
func (r Result[T]) MustValue() T {
	if r.err != errs.None {
		panic(fmt.Errorf("dresult: MustValue on failure: %w", r.err))
	}
	return r.value
}

// ValueOr returns the carried value on success and fallback on failure.
func (r Result[T]) ValueOr(fallback T) T {
	if r.err != errs.None {
		return fallback
	}
	return r.value
}

// Err returns the carried error. It is errs.None exactly when r is a
// success, so `if res.Err() != errs.None` mirrors the familiar
// `if err != nil` shape.
func (r Result[T]) Err() errs.Error { return r.err }
