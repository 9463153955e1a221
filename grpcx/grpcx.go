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

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc"
	gcodes "google.golang.org/grpc/codes"
	gstatus "google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/anypb"

	"dirpx.dev/dresult/adapter"
	"dirpx.dev/dresult/apis"
	"dirpx.dev/dresult/errs"
)

// ErrorDomain is the value stamped into ErrorInfo.Domain for every error
// this package produces. Clients use it to tell dirpx error details apart
// from details attached by intermediaries.
const ErrorDomain = "dirpx.dev"

// MetaFn extracts extra ErrorInfo metadata from the context and the domain
// error: request IDs, trace IDs, tenant markers. It may return nil if
// nothing is available. Keys must be stable; clients match on them.
type MetaFn func(ctx context.Context, e errs.Error) map[string]string

// UnaryServerInterceptor returns a gRPC UnaryServerInterceptor that maps
// hierarchy errors into gRPC status errors with a google.rpc.ErrorInfo
// detail attached.
//
// The provided apis.Mapper resolves domain error codes into transport
// status codes.
//
// The optional MetaFn can be used to extract additional metadata from the
// context and the domain error to populate ErrorInfo.Metadata. If nil, no
// extra metadata will be added.
func UnaryServerInterceptor(m apis.Mapper, metaFn MetaFn) grpc.UnaryServerInterceptor {
	if metaFn == nil {
		metaFn = func(context.Context, errs.Error) map[string]string { return nil }
	}

	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		resp, err := handler(ctx, req)
		if err == nil {
			return resp, nil
		}

		var de errs.Error
		if !errors.As(err, &de) {
			// Not ours — return as-is.
			return nil, err
		}

		return nil, statusError(de, m, metaFn(ctx, de))
	}
}

// Error converts a hierarchy error into a gRPC status error using the given
// mapper. The status message is the error description; the attached
// ErrorInfo carries the variant's wire tag as its reason, ErrorDomain as
// its domain, and the code name under the "code" metadata key.
//
// It returns nil for errs.None: no failure, no status.
func Error(e errs.Error, m apis.Mapper) error {
	if e == errs.None {
		return nil
	}
	return statusError(e, m, nil)
}

func statusError(e errs.Error, m apis.Mapper, meta map[string]string) error {
	st := m.Status(e.ErrorCode())
	d := adapter.ToDescriptor(e, st)

	// The wire tag is the cross-process identifier for the variant; fall
	// back to the code name for variants living outside the Default registry.
	reason := d.Type
	if reason == "" {
		reason = d.Code
	}

	md := make(map[string]string, len(meta)+1)
	md["code"] = d.Code
	for k, v := range meta {
		md[k] = v
	}

	desc := &errdetails.ErrorInfo{
		Reason:   reason,
		Domain:   ErrorDomain,
		Metadata: md,
	}

	base := gstatus.New(gcodes.Code(st.GRPC), d.Message)

	// Try to attach the descriptor as a detail. If it fails — return base.
	if anyDesc, err := anypb.New(desc); err == nil {
		statusProto := base.Proto()
		statusProto.Details = append(statusProto.Details, anyDesc)
		return gstatus.FromProto(statusProto).Err()
	}

	return base.Err()
}

// ExtractErrorInfo pulls the dirpx ErrorInfo out of a gRPC error, if
// present. Useful in tests and client code. Details attached by other
// parties (different domains) are skipped.
func ExtractErrorInfo(err error) (*errdetails.ErrorInfo, bool) {
	if err == nil {
		return nil, false
	}
	st, ok := gstatus.FromError(err)
	if !ok {
		return nil, false
	}
	for _, d := range st.Details() {
		if info, ok := d.(*errdetails.ErrorInfo); ok && info.GetDomain() == ErrorDomain {
			return info, true
		}
	}
	return nil, false
}
