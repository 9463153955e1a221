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
	"testing"

	"dirpx.dev/dresult/code"
)

// seatLimitError is a consumer-style variant declared outside the built-in
// set: extra field, own code, own factory.
type seatLimitError struct {
	Base
	Requested int `json:"requested"`
}

var seatLimitCode = code.MustNew("SeatLimitErrorCode", "SeatLimitError")

func newSeatLimit(requested int) *seatLimitError {
	return &seatLimitError{
		Base:      MustBase(seatLimitCode, "seat limit exceeded"),
		Requested: requested,
	}
}

func mustPanic(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic")
		}
	}()
	fn()
}

func TestFactories_BindCategoryCodes(t *testing.T) {
	tests := []struct {
		name     string
		build    func(string) Error
		wantCode *code.Code
	}{
		{"not found", func(d string) Error { return NotFound(d) }, NotFoundCode},
		{"validation", func(d string) Error { return Validation(d) }, ValidationCode},
		{"conflict", func(d string) Error { return Conflict(d) }, ConflictCode},
		{"unauthorized", func(d string) Error { return Unauthorized(d) }, UnauthorizedCode},
		{"configuration", func(d string) Error { return Configuration(d) }, ConfigurationCode},
		{"business rule", func(d string) Error { return BusinessRuleViolation(d) }, BusinessRuleViolationCode},
		{"api", func(d string) Error { return API(d) }, APICode},
		{"unhandled", func(d string) Error { return UnhandledException(d) }, UnhandledExceptionCode},
		{"canceled", func(d string) Error { return Canceled(d) }, CanceledCode},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := tt.build("something went wrong")
			if e.ErrorCode() != tt.wantCode {
				t.Fatalf("ErrorCode() = %v, want the %q singleton", e.ErrorCode(), tt.wantCode.Name())
			}
			if e.ErrorDescription() != "something went wrong" {
				t.Fatalf("ErrorDescription() = %q", e.ErrorDescription())
			}
		})
	}
}

func TestError_Format(t *testing.T) {
	e := NotFound("user 7 not found")
	want := "NotFoundError: user 7 not found"
	if e.Error() != want {
		t.Fatalf("Error() = %q, want %q", e.Error(), want)
	}
}

func TestFactories_FailFastOnBadDescription(t *testing.T) {
	builders := []struct {
		name  string
		build func(string)
	}{
		{"not found", func(d string) { NotFound(d) }},
		{"validation", func(d string) { Validation(d) }},
		{"conflict", func(d string) { Conflict(d) }},
		{"unauthorized", func(d string) { Unauthorized(d) }},
		{"configuration", func(d string) { Configuration(d) }},
		{"business rule", func(d string) { BusinessRuleViolation(d) }},
		{"api", func(d string) { API(d) }},
		{"unhandled", func(d string) { UnhandledException(d) }},
		{"canceled", func(d string) { Canceled(d) }},
	}
	for _, tt := range builders {
		t.Run(tt.name+" empty", func(t *testing.T) {
			mustPanic(t, func() { tt.build("") })
		})
		t.Run(tt.name+" whitespace", func(t *testing.T) {
			mustPanic(t, func() { tt.build("   \t\n") })
		})
	}
}

func TestNewBase_Validation(t *testing.T) {
	if _, err := NewBase(nil, "detail"); !errors.Is(err, ErrConstruction) {
		t.Fatalf("nil code: error = %v, want ErrConstruction", err)
	}
	if _, err := NewBase(NotFoundCode, ""); !errors.Is(err, ErrConstruction) {
		t.Fatalf("empty description: error = %v, want ErrConstruction", err)
	}
	if _, err := NewBase(NotFoundCode, " \t "); !errors.Is(err, ErrConstruction) {
		t.Fatalf("whitespace description: error = %v, want ErrConstruction", err)
	}

	b, err := NewBase(NotFoundCode, "user 7 not found")
	if err != nil {
		t.Fatalf("NewBase unexpected error: %v", err)
	}
	if b.Code != NotFoundCode || b.Description != "user 7 not found" {
		t.Fatalf("NewBase = %+v", b)
	}
}

func TestMustBase_PanicsOnNilCode(t *testing.T) {
	mustPanic(t, func() { MustBase(nil, "detail") })
}

func TestValidateDescription(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		wantErr bool
	}{
		{"plain", "user 7 not found", false},
		{"leading space ok", "  padded detail", false},
		{"empty", "", true},
		{"spaces", "   ", true},
		{"tabs and newlines", "\t\n", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDescription(tt.in)
			if tt.wantErr && !errors.Is(err, ErrConstruction) {
				t.Fatalf("ValidateDescription(%q) = %v, want ErrConstruction", tt.in, err)
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("ValidateDescription(%q) unexpected error: %v", tt.in, err)
			}
		})
	}
}

func TestIsType(t *testing.T) {
	notFound := NotFound("user 7 not found")
	wrapped := fmt.Errorf("loading profile: %w", notFound)
	custom := newSeatLimit(12)

	tests := []struct {
		name string
		got  bool
		want bool
	}{
		{"exact variant", IsType[*NotFoundError](notFound), true},
		{"different variant", IsType[*ValidationError](notFound), false},
		{"open base interface", IsType[Error](notFound), true},
		{"through wrapping", IsType[*NotFoundError](wrapped), true},
		{"wrapped base interface", IsType[Error](wrapped), true},
		{"consumer variant exact", IsType[*seatLimitError](custom), true},
		{"consumer variant base", IsType[Error](custom), true},
		{"plain error", IsType[Error](errors.New("plain")), false},
		{"nil", IsType[*NotFoundError](nil), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Fatalf("got %v, want %v", tt.got, tt.want)
			}
		})
	}
}

func TestFrom(t *testing.T) {
	t.Run("nil is None", func(t *testing.T) {
		if From(nil) != None {
			t.Fatalf("From(nil) must be None")
		}
	})

	t.Run("hierarchy error passes through", func(t *testing.T) {
		e := Conflict("version mismatch")
		if got := From(e); got != Error(e) {
			t.Fatalf("From must return the same error, got %v", got)
		}
	})

	t.Run("wrapped hierarchy error is recovered", func(t *testing.T) {
		e := Conflict("version mismatch")
		wrapped := fmt.Errorf("saving order: %w", e)
		got := From(wrapped)
		if got != Error(e) {
			t.Fatalf("From must unwrap to the original error, got %v", got)
		}
	})

	t.Run("plain error becomes unhandled", func(t *testing.T) {
		got := From(errors.New("connection reset"))
		if !IsType[*UnhandledExceptionError](got) {
			t.Fatalf("From(plain) = %T, want *UnhandledExceptionError", got)
		}
		if got.ErrorDescription() != "connection reset" {
			t.Fatalf("description = %q", got.ErrorDescription())
		}
	})

	t.Run("blank message gets a placeholder", func(t *testing.T) {
		got := From(errors.New("  "))
		if got.ErrorDescription() != "unknown error" {
			t.Fatalf("description = %q, want placeholder", got.ErrorDescription())
		}
	})
}
