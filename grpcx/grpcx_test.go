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

package grpcx

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc"
	gcodes "google.golang.org/grpc/codes"
	gstatus "google.golang.org/grpc/status"

	"dirpx.dev/dresult/apis"
	"dirpx.dev/dresult/code"
	"dirpx.dev/dresult/errs"
	"dirpx.dev/dresult/mapper"
)

var grpcProbeCode = code.MustNew("GrpcProbeErrorCode", "GrpcProbeError")

type grpcProbeError struct {
	errs.Base
}

func newTestMapper(t *testing.T) apis.Mapper {
	t.Helper()
	m, err := mapper.New()
	if err != nil {
		t.Fatalf("mapper.New() error = %v", err)
	}
	return m
}

func TestError_MapsStatusAndAttachesErrorInfo(t *testing.T) {
	m := newTestMapper(t)

	err := Error(errs.NotFound("user 7 not found"), m)

	st, ok := gstatus.FromError(err)
	if !ok {
		t.Fatalf("Error() did not produce a gRPC status: %v", err)
	}
	if st.Code() != gcodes.NotFound {
		t.Errorf("status code = %v, want %v", st.Code(), gcodes.NotFound)
	}
	if st.Message() != "user 7 not found" {
		t.Errorf("status message = %q, want %q", st.Message(), "user 7 not found")
	}

	info, ok := ExtractErrorInfo(err)
	if !ok {
		t.Fatal("ExtractErrorInfo() found no ErrorInfo detail")
	}
	if info.GetReason() != "NotFoundError" {
		t.Errorf("Reason = %q, want NotFoundError", info.GetReason())
	}
	if info.GetDomain() != ErrorDomain {
		t.Errorf("Domain = %q, want %q", info.GetDomain(), ErrorDomain)
	}
	if got := info.GetMetadata()["code"]; got != "NotFoundError" {
		t.Errorf(`Metadata["code"] = %q, want NotFoundError`, got)
	}
}

func TestError_None(t *testing.T) {
	if err := Error(errs.None, newTestMapper(t)); err != nil {
		t.Fatalf("Error(None) = %v, want nil", err)
	}
}

func TestError_UnregisteredVariantReasonFallsBack(t *testing.T) {
	m := newTestMapper(t)
	probe := &grpcProbeError{Base: errs.MustBase(grpcProbeCode, "probe detail")}

	err := Error(probe, m)

	st, _ := gstatus.FromError(err)
	if st.Code() != gcodes.Internal {
		t.Errorf("status code = %v, want fallback %v", st.Code(), gcodes.Internal)
	}
	info, ok := ExtractErrorInfo(err)
	if !ok {
		t.Fatal("ExtractErrorInfo() found no ErrorInfo detail")
	}
	if info.GetReason() != "GrpcProbeError" {
		t.Errorf("Reason = %q, want the code name GrpcProbeError", info.GetReason())
	}
}

func TestUnaryServerInterceptor_DomainError(t *testing.T) {
	ic := UnaryServerInterceptor(newTestMapper(t), nil)
	info := &grpc.UnaryServerInfo{FullMethod: "/seats.v1.Seats/Reserve"}

	handler := func(context.Context, any) (any, error) {
		// Wrapping must not hide the domain error from the interceptor.
		return nil, fmt.Errorf("reserve: %w", errs.Conflict("seat already taken"))
	}

	resp, err := ic(context.Background(), struct{}{}, info, handler)
	if resp != nil {
		t.Errorf("resp = %v, want nil on failure", resp)
	}

	st, ok := gstatus.FromError(err)
	if !ok {
		t.Fatalf("interceptor did not produce a gRPC status: %v", err)
	}
	if st.Code() != gcodes.Aborted {
		t.Errorf("status code = %v, want %v", st.Code(), gcodes.Aborted)
	}
	if st.Message() != "seat already taken" {
		t.Errorf("status message = %q, want %q", st.Message(), "seat already taken")
	}
}

func TestUnaryServerInterceptor_PlainErrorPassthrough(t *testing.T) {
	ic := UnaryServerInterceptor(newTestMapper(t), nil)
	info := &grpc.UnaryServerInfo{FullMethod: "/seats.v1.Seats/Reserve"}

	plain := errors.New("socket closed")
	handler := func(context.Context, any) (any, error) { return nil, plain }

	_, err := ic(context.Background(), struct{}{}, info, handler)
	if !errors.Is(err, plain) {
		t.Fatalf("err = %v, want the handler's error untouched", err)
	}
	if _, ok := ExtractErrorInfo(err); ok {
		t.Fatal("ExtractErrorInfo() found ErrorInfo on a passthrough error")
	}
}

func TestUnaryServerInterceptor_Success(t *testing.T) {
	ic := UnaryServerInterceptor(newTestMapper(t), nil)
	info := &grpc.UnaryServerInfo{FullMethod: "/seats.v1.Seats/Reserve"}

	handler := func(context.Context, any) (any, error) { return "ticket-41", nil }

	resp, err := ic(context.Background(), struct{}{}, info, handler)
	if err != nil {
		t.Fatalf("err = %v, want nil", err)
	}
	if resp != "ticket-41" {
		t.Fatalf("resp = %v, want ticket-41", resp)
	}
}

func TestUnaryServerInterceptor_MetaFn(t *testing.T) {
	metaFn := func(ctx context.Context, e errs.Error) map[string]string {
		return map[string]string{"request_id": "req-7"}
	}
	ic := UnaryServerInterceptor(newTestMapper(t), metaFn)
	info := &grpc.UnaryServerInfo{FullMethod: "/seats.v1.Seats/Reserve"}

	handler := func(context.Context, any) (any, error) {
		return nil, errs.Validation("row out of range")
	}

	_, err := ic(context.Background(), struct{}{}, info, handler)

	ei, ok := ExtractErrorInfo(err)
	if !ok {
		t.Fatal("ExtractErrorInfo() found no ErrorInfo detail")
	}
	if got := ei.GetMetadata()["request_id"]; got != "req-7" {
		t.Errorf(`Metadata["request_id"] = %q, want req-7`, got)
	}
	if got := ei.GetMetadata()["code"]; got != "ValidationError" {
		t.Errorf(`Metadata["code"] = %q, want ValidationError`, got)
	}
}

func TestExtractErrorInfo_ForeignDomainSkipped(t *testing.T) {
	base := gstatus.New(gcodes.Internal, "boom")
	st, err := base.WithDetails(&errdetails.ErrorInfo{Reason: "X", Domain: "other.example"})
	if err != nil {
		t.Fatalf("WithDetails() error = %v", err)
	}

	if _, ok := ExtractErrorInfo(st.Err()); ok {
		t.Fatal("ExtractErrorInfo() returned a foreign-domain detail")
	}
}

func TestExtractErrorInfo_NilAndPlain(t *testing.T) {
	if _, ok := ExtractErrorInfo(nil); ok {
		t.Fatal("ExtractErrorInfo(nil) = true, want false")
	}
	if _, ok := ExtractErrorInfo(errors.New("plain")); ok {
		t.Fatal("ExtractErrorInfo(plain) = true, want false")
	}
}
