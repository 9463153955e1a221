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
	"strconv"
	"testing"

	"dirpx.dev/dresult/errs"
)

func TestMap_TransformsSuccess(t *testing.T) {
	r := Map(Success(21), func(v int) int { return v * 2 })
	if !r.IsSuccess() || r.Value() != 42 {
		t.Fatalf("Map = %+v", r)
	}

	s := Map(Success(42), strconv.Itoa)
	if s.Value() != "42" {
		t.Fatalf("Map across types = %q", s.Value())
	}
}

func TestMap_FailurePropagatesUntouched(t *testing.T) {
	e := errs.NotFound("user 7 not found")
	called := false
	r := Map(Failure[int](e), func(v int) int {
		called = true
		return v
	})
	if called {
		t.Fatal("transform must not run on failure")
	}
	if r.Err() != errs.Error(e) {
		t.Fatalf("Err() = %v, want the original error", r.Err())
	}
}

func TestBind_SequencesSuccess(t *testing.T) {
	half := func(v int) Result[int] {
		if v%2 != 0 {
			return Failure[int](errs.Validation("odd input"))
		}
		return Success(v / 2)
	}

	if r := Bind(Success(42), half); !r.IsSuccess() || r.Value() != 21 {
		t.Fatalf("Bind = %+v", r)
	}
	if r := Bind(Success(7), half); !errs.IsType[*errs.ValidationError](r.Err()) {
		t.Fatalf("Err() = %v, want ValidationError", r.Err())
	}
}

func TestBind_ShortCircuits(t *testing.T) {
	e := errs.Conflict("version mismatch")
	var calls []string

	step := func(name string) func(int) Result[int] {
		return func(v int) Result[int] {
			calls = append(calls, name)
			return Success(v + 1)
		}
	}

	r := Bind(Bind(Failure[int](e), step("first")), step("second"))
	if len(calls) != 0 {
		t.Fatalf("steps ran on failure: %v", calls)
	}
	if r.Err() != errs.Error(e) {
		t.Fatal("original error must survive the chain")
	}
}

func TestMatch_ExactlyOneBranch(t *testing.T) {
	got := Match(Success(42),
		func(v int) string { return "value " + strconv.Itoa(v) },
		func(e errs.Error) string { return "error " + e.ErrorDescription() },
	)
	if got != "value 42" {
		t.Fatalf("success fold = %q", got)
	}

	got = Match(Failure[int](errs.NotFound("missing")),
		func(v int) string { return "value " + strconv.Itoa(v) },
		func(e errs.Error) string { return "error " + e.ErrorDescription() },
	)
	if got != "error missing" {
		t.Fatalf("failure fold = %q", got)
	}
}

func TestTap(t *testing.T) {
	var seen []int
	r := Success(42).Tap(func(v int) { seen = append(seen, v) })
	if !r.IsSuccess() || r.Value() != 42 {
		t.Fatal("Tap must return the receiver unchanged")
	}
	if len(seen) != 1 || seen[0] != 42 {
		t.Fatalf("action saw %v", seen)
	}

	e := errs.NotFound("missing")
	f := Failure[int](e).Tap(func(v int) { seen = append(seen, v) })
	if len(seen) != 1 {
		t.Fatal("action must not run on failure")
	}
	if f.Err() != errs.Error(e) {
		t.Fatal("failure must pass through Tap")
	}
}

func TestChain_FailureRunsNoSteps(t *testing.T) {
	e := errs.Unauthorized("token expired")
	ran := 0
	count := func() { ran++ }

	r := Map(
		Bind(
			Map(Failure[int](e), func(v int) int { count(); return v * 2 }),
			func(v int) Result[int] { count(); return Success(v + 1) },
		),
		func(v int) string { count(); return strconv.Itoa(v) },
	).Tap(func(string) { count() })

	if ran != 0 {
		t.Fatalf("%d steps ran over a failure", ran)
	}
	if r.Err() != errs.Error(e) {
		t.Fatal("chain must yield the original error")
	}
	if r.Value() != "" {
		t.Fatalf("chain value = %q, want zero", r.Value())
	}
}

func TestChain_HappyPath(t *testing.T) {
	parse := func(s string) Result[int] { return From(strconv.Atoi(s)) }
	positive := func(v int) Result[int] {
		if v <= 0 {
			return Failure[int](errs.Validation("must be positive"))
		}
		return Success(v)
	}

	r := Map(Bind(parse("21"), positive), func(v int) int { return v * 2 })
	if r.MustValue() != 42 {
		t.Fatalf("chain = %d", r.MustValue())
	}

	bad := Map(Bind(parse("-3"), positive), func(v int) int { return v * 2 })
	if !errs.IsType[*errs.ValidationError](bad.Err()) {
		t.Fatalf("Err() = %v", bad.Err())
	}

	garbled := Map(Bind(parse("x"), positive), func(v int) int { return v * 2 })
	if !errs.IsType[*errs.UnhandledExceptionError](garbled.Err()) {
		t.Fatalf("Err() = %v", garbled.Err())
	}
}
