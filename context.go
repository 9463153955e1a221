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
	"context"

	"dirpx.dev/dresult/errs"
)

// The context-aware combinators are for steps that block: RPCs, queries,
// queue waits. Each step runs synchronously on the calling goroutine, so a
// chain of MapContext/BindContext calls executes strictly in call order and
// never overlaps its own steps.
//
// Before invoking a step on the success path, the combinator checks whether
// ctx is already done and, if so, short-circuits to a failure carrying a
// CanceledError. Cancellation therefore travels down the chain as an
// ordinary failure instead of being half-applied or silently swallowed.

// MapContext is Map for suspending transforms. If r succeeded but ctx is
// done, f is not invoked and the Result fails with errs.Canceled; a failed
// r propagates untouched as in Map.
func MapContext[T, U any](ctx context.Context, r Result[T], f func(context.Context, T) U) Result[U] {
	if r.err != errs.None {
		return Failure[U](r.err)
	}
	if err := ctx.Err(); err != nil {
		return Failure[U](errs.Canceled(err.Error()))
	}
	return Success(f(ctx, r.value))
}

// BindContext is Bind for suspending fallible steps: the same ctx gate as
// MapContext, with f reporting its own failures through the Result it
// returns.
func BindContext[T, U any](ctx context.Context, r Result[T], f func(context.Context, T) Result[U]) Result[U] {
	if r.err != errs.None {
		return Failure[U](r.err)
	}
	if err := ctx.Err(); err != nil {
		return Failure[U](errs.Canceled(err.Error()))
	}
	return f(ctx, r.value)
}

// MatchContext folds a Result with branches that receive ctx. Unlike the
// other context-aware combinators it does not gate on ctx: folding is how a
// chain terminates, so exactly one branch always runs even when ctx is
// already done. The branches observe cancellation through the ctx they are
// handed.
func MatchContext[T, R any](ctx context.Context, r Result[T], onSuccess func(context.Context, T) R, onFailure func(context.Context, errs.Error) R) R {
	if r.err != errs.None {
		return onFailure(ctx, r.err)
	}
	return onSuccess(ctx, r.value)
}

// TapContext runs action on the carried value when r is a success and ctx
// is still live, and returns r unchanged in every case. A done ctx only
// skips the side effect; surfacing the cancellation as a failure is left to
// the next MapContext/BindContext in the chain.
func (r Result[T]) TapContext(ctx context.Context, action func(context.Context, T)) Result[T] {
	if r.err == errs.None && ctx.Err() == nil {
		action(ctx, r.value)
	}
	return r
}
