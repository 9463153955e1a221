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

package logx

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"

	"dirpx.dev/dresult"
	"dirpx.dev/dresult/code"
	"dirpx.dev/dresult/errs"
)

// capture runs fn against a logger writing to a buffer and returns the
// decoded log line.
func capture(t *testing.T, fn func(log zerolog.Logger)) map[string]any {
	t.Helper()

	var buf bytes.Buffer
	fn(zerolog.New(&buf))

	var line map[string]any
	if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
		t.Fatalf("log line is not valid JSON: %v\n%s", err, buf.String())
	}
	return line
}

func field(t *testing.T, line map[string]any, path ...string) any {
	t.Helper()

	var cur any = line
	for _, p := range path {
		obj, ok := cur.(map[string]any)
		if !ok {
			t.Fatalf("field %v: %v is not an object", path, cur)
		}
		cur, ok = obj[p]
		if !ok {
			t.Fatalf("field %v: missing key %q in %v", path, p, obj)
		}
	}
	return cur
}

func TestError_Fields(t *testing.T) {
	line := capture(t, func(log zerolog.Logger) {
		log.Error().Object("error", Error(errs.NotFound("user 7 not found"))).Msg("lookup failed")
	})

	if got := field(t, line, "error", "error_code"); got != "NotFoundError" {
		t.Errorf("error_code = %v, want NotFoundError", got)
	}
	if got := field(t, line, "error", "error_type"); got != "NotFoundError" {
		t.Errorf("error_type = %v, want NotFoundError", got)
	}
	if got := field(t, line, "error", "error_message"); got != "user 7 not found" {
		t.Errorf("error_message = %v, want %q", got, "user 7 not found")
	}
}

func TestError_NoneMarshalsNothing(t *testing.T) {
	line := capture(t, func(log zerolog.Logger) {
		log.Info().Object("error", Error(errs.None)).Msg("ok")
	})

	obj, ok := field(t, line, "error").(map[string]any)
	if !ok {
		t.Fatalf("error field is not an object: %v", line["error"])
	}
	if len(obj) != 0 {
		t.Errorf("error object = %v, want empty", obj)
	}
}

func TestError_UnregisteredVariantOmitsType(t *testing.T) {
	probeCode := code.MustNew("LogProbeErrorCode", "LogProbeError")
	probe := struct{ errs.Base }{Base: errs.MustBase(probeCode, "probe detail")}

	line := capture(t, func(log zerolog.Logger) {
		log.Error().Object("error", Error(probe)).Msg("probe")
	})

	obj := field(t, line, "error").(map[string]any)
	if _, present := obj["error_type"]; present {
		t.Errorf("error_type present for unregistered variant: %v", obj)
	}
	if got := obj["error_code"]; got != "LogProbeError" {
		t.Errorf("error_code = %v, want LogProbeError", got)
	}
}

func TestOutcome_Success(t *testing.T) {
	line := capture(t, func(log zerolog.Logger) {
		log.Info().Object("outcome", Outcome(dresult.Success(42))).Msg("reserve")
	})

	if got := field(t, line, "outcome", "success"); got != true {
		t.Errorf("success = %v, want true", got)
	}
	obj := field(t, line, "outcome").(map[string]any)
	if _, present := obj["error"]; present {
		t.Errorf("error present on success outcome: %v", obj)
	}
	if _, present := obj["value"]; present {
		t.Errorf("value leaked into log line: %v", obj)
	}
}

func TestOutcome_Failure(t *testing.T) {
	line := capture(t, func(log zerolog.Logger) {
		res := dresult.Failure[int](errs.Validation("row out of range"))
		log.Warn().Object("outcome", Outcome(res)).Msg("reserve")
	})

	if got := field(t, line, "outcome", "success"); got != false {
		t.Errorf("success = %v, want false", got)
	}
	if got := field(t, line, "outcome", "error", "error_code"); got != "ValidationError" {
		t.Errorf("error_code = %v, want ValidationError", got)
	}
	if got := field(t, line, "outcome", "error", "error_message"); got != "row out of range" {
		t.Errorf("error_message = %v, want %q", got, "row out of range")
	}
}
