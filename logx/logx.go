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
	"github.com/rs/zerolog"

	"dirpx.dev/dresult"
	"dirpx.dev/dresult/errs"
	"dirpx.dev/dresult/wire"
)

// Error adapts a hierarchy error for structured logging:
//
//	log.Error().Object("error", logx.Error(e)).Msg("reservation rejected")
//
// emits error_code, error_type and error_message fields. error_type is the
// wire discriminator of the concrete variant (resolved against the default
// registry) so a log line can be correlated with the JSON bodies a service
// actually sent; it is omitted for unregistered variants. A None error
// marshals no fields.
func Error(e errs.Error) zerolog.LogObjectMarshaler {
	return errorMarshaler{e: e}
}

type errorMarshaler struct {
	e errs.Error
}

func (m errorMarshaler) MarshalZerologObject(ev *zerolog.Event) {
	if m.e == errs.None {
		return
	}
	if c := m.e.ErrorCode(); c != nil {
		ev.Str("error_code", c.Name())
	}
	if tag, ok := wire.TagOf(m.e); ok {
		ev.Str("error_type", tag)
	}
	ev.Str("error_message", m.e.ErrorDescription())
}

// Outcome adapts a whole Result for structured logging: a success field,
// plus the carried error's fields nested under "error" when the operation
// failed. The success value itself is never logged; values routinely hold
// payloads that do not belong in logs.
//
// Outcome is a package function because Go methods cannot introduce type
// parameters.
func Outcome[T any](r dresult.Result[T]) zerolog.LogObjectMarshaler {
	return outcomeMarshaler{success: r.IsSuccess(), err: r.Err()}
}

type outcomeMarshaler struct {
	success bool
	err     errs.Error
}

func (m outcomeMarshaler) MarshalZerologObject(ev *zerolog.Event) {
	ev.Bool("success", m.success)
	if m.success {
		return
	}
	ev.Object("error", Error(m.err))
}
