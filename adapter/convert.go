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

package adapter

import (
	"dirpx.dev/dresult/apis"
	"dirpx.dev/dresult/errs"
	"dirpx.dev/dresult/wire"
)

// ToDescriptor converts a domain-level error together with its resolved
// transport status into a portable ErrorDescriptor.
//
// The descriptor is intended for structured logging, tracing, or message bus
// propagation. It carries the wire tag of the concrete variant, the logical
// code name, and the concrete transport statuses (HTTP and gRPC). The tag is
// resolved through the Default wire registry; variants registered elsewhere
// produce a descriptor with an empty Type.
func ToDescriptor(e errs.Error, st apis.Status) apis.ErrorDescriptor {
	if e == errs.None {
		return apis.ErrorDescriptor{}
	}
	tag, _ := wire.TagOf(e)
	name := ""
	if c := e.ErrorCode(); c != nil {
		name = c.Name()
	}
	return apis.ErrorDescriptor{
		Type:       tag,
		Code:       name,
		HTTPStatus: st.HTTP,
		GRPCCode:   int(st.GRPC),
		Message:    e.ErrorDescription(),
	}
}
