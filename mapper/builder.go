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
	"fmt"
	"net/http"

	"dirpx.dev/dresult/code"
	"google.golang.org/grpc/codes"
)

type builder struct {
	// user-provided adjustments (applied on top of library defaults)

	// httpDefaults holds per-code HTTP defaults that override library defaults.
	httpDefaults map[*code.Code]int
	// grpcDefaults holds per-code gRPC defaults as ints; converted to codes.Code in New().
	grpcDefaults map[*code.Code]int

	// httpOverride holds exact per-code HTTP overrides (higher than defaults).
	httpOverride map[*code.Code]int
	// grpcOverride holds exact per-code gRPC overrides as ints; converted in New().
	grpcOverride map[*code.Code]int

	// global fallbacks used when a code has no mapping at all.
	fallbackHTTP int
	fallbackGRPC codes.Code
}

// newBuilder creates an empty builder with maps pre-sized
// to hold typical numbers of entries.
func newBuilder() *builder {
	return &builder{
		// we size the maps roughly to the number of built-in defaults
		httpDefaults: make(map[*code.Code]int, len(defaultHTTP)),
		grpcDefaults: make(map[*code.Code]int, len(defaultGRPC)),

		// overrides are usually few
		httpOverride: make(map[*code.Code]int),
		grpcOverride: make(map[*code.Code]int),

		// hard fallbacks if the code was never seen
		fallbackHTTP: http.StatusInternalServerError,
		fallbackGRPC: codes.Internal,
	}
}

// validate rejects configurations that could only come from programming
// errors: nil code keys, HTTP statuses outside the registered range, gRPC
// values with no canonical code behind them.
func (b *builder) validate() error {
	for name, m := range map[string]map[*code.Code]int{
		"HTTP default":  b.httpDefaults,
		"HTTP override": b.httpOverride,
	} {
		for c, v := range m {
			if c == nil {
				return fmt.Errorf("mapper: %s registered for a nil code", name)
			}
			if err := validHTTPStatus(v); err != nil {
				return fmt.Errorf("mapper: %s for code %q: %w", name, c, err)
			}
		}
	}
	for name, m := range map[string]map[*code.Code]int{
		"gRPC default":  b.grpcDefaults,
		"gRPC override": b.grpcOverride,
	} {
		for c, v := range m {
			if c == nil {
				return fmt.Errorf("mapper: %s registered for a nil code", name)
			}
			if err := validGRPCCode(v); err != nil {
				return fmt.Errorf("mapper: %s for code %q: %w", name, c, err)
			}
		}
	}
	if err := validHTTPStatus(b.fallbackHTTP); err != nil {
		return fmt.Errorf("mapper: HTTP fallback: %w", err)
	}
	if err := validGRPCCode(int(b.fallbackGRPC)); err != nil {
		return fmt.Errorf("mapper: gRPC fallback: %w", err)
	}
	return nil
}

// validHTTPStatus accepts the full registered status range. Anything outside
// it cannot be written to a response line.
func validHTTPStatus(v int) error {
	if v < 100 || v > 599 {
		return fmt.Errorf("HTTP status %d out of range [100,599]", v)
	}
	return nil
}

// validGRPCCode accepts the canonical gRPC code range, OK(0) through
// Unauthenticated(16).
func validGRPCCode(v int) error {
	if v < int(codes.OK) || v > int(codes.Unauthenticated) {
		return fmt.Errorf("gRPC code %d out of range [%d,%d]", v, codes.OK, codes.Unauthenticated)
	}
	return nil
}
