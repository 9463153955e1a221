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

import "dirpx.dev/dresult/errs"

// Map, Bind and Match are package functions rather than methods because Go
// methods cannot introduce new type parameters; the output type U would be
// unreachable from a method on Result[T].

// Map transforms the value of a successful Result with f and re-wraps the
// outcome as a success. A failure propagates untouched and f is never
// invoked for it.
//
// f must not signal failure through this channel; a step that can fail
// belongs in Bind.
func Map[T, U any](r Result[T], f func(T) U) Result[U] {
	if r.err != errs.None {
		return Failure[U](r.err)
	}
	return Success(f(r.value))
}

// Bind sequences a fallible step after r. On success it applies f and
// returns whatever Result f produces; on failure it propagates the error
// without invoking f, so the first failure in a chain short-circuits
// everything downstream.
//
// Usage:
//
//	res := dresult.Bind(findUser(id), checkActive)
//	res2 := dresult.Bind(res, loadProfile)
func Bind[T, U any](r Result[T], f func(T) Result[U]) Result[U] {
	if r.err != errs.None {
		return Failure[U](r.err)
	}
	return f(r.value)
}

// Match folds a Result into a single value: onSuccess receives the carried
// value, onFailure the carried error. Exactly one branch runs; there is no
// default case and no way to fall through.
func Match[T, R any](r Result[T], onSuccess func(T) R, onFailure func(errs.Error) R) R {
	if r.err != errs.None {
		return onFailure(r.err)
	}
	return onSuccess(r.value)
}

// Tap runs action on the carried value when r is a success and returns r
// unchanged either way. Use it for side effects (logging, metrics, cache
// warm-up) in the middle of a chain.
func (r Result[T]) Tap(action func(T)) Result[T] {
	if r.err == errs.None {
		action(r.value)
	}
	return r
}
