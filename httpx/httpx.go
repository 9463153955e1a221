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

package httpx

import (
	"net/http"

	"dirpx.dev/dresult"
	"dirpx.dev/dresult/apis"
	"dirpx.dev/dresult/errs"
	"dirpx.dev/dresult/wire"
)

// Writer is a thin adapter that knows how to turn hierarchy errors and
// results into HTTP responses using the provided status mapper.
//
// Registry selects the wire registry used for encoding; leave it nil to use
// wire.Default(). Services with privately registered variants pass their own.
type Writer struct {
	Mapper   apis.Mapper
	Registry *wire.Registry
}

func (w Writer) registry() *wire.Registry {
	if w.Registry != nil {
		return w.Registry
	}
	return wire.Default()
}

// WriteError resolves the HTTP status for the error's code and writes the
// error in its wire form ("$type"-discriminated JSON object) as the body.
//
// No automatic redaction or filtering is performed here: the description is
// exposed as-is. Higher-level handlers should apply policies if needed.
//
// An error that cannot be encoded (a variant missing from the registry)
// degrades to an UnhandledExceptionError body with its mapped status, so the
// response is always well-formed JSON.
func (w Writer) WriteError(rw http.ResponseWriter, e errs.Error) {
	if e == errs.None {
		return
	}

	st := w.Mapper.Status(e.ErrorCode())
	body, err := w.registry().MarshalError(e)
	if err != nil {
		st = w.Mapper.Status(errs.UnhandledExceptionCode)
		body, _ = wire.MarshalError(errs.UnhandledException("error serialization failed"))
	}

	rw.Header().Set("Content-Type", "application/json")
	rw.WriteHeader(st.HTTP)
	_, _ = rw.Write(body)
}

// WriteResult writes a Result in its envelope form. A success is written
// with successStatus; a failure resolves its status through the mapper from
// the carried error's code. The same handler therefore returns, say, 200
// with a success envelope and 404 with a failure envelope without branching.
//
// WriteResult is a package function because Go methods cannot introduce type
// parameters.
func WriteResult[T any](w Writer, rw http.ResponseWriter, successStatus int, res dresult.Result[T]) {
	body, err := wire.MarshalResultWith(w.registry(), res)
	if err != nil {
		w.WriteError(rw, errs.UnhandledException("result serialization failed"))
		return
	}

	status := successStatus
	if res.IsFailure() {
		status = w.Mapper.HTTPStatus(res.Err().ErrorCode())
	}

	rw.Header().Set("Content-Type", "application/json")
	rw.WriteHeader(status)
	_, _ = rw.Write(body)
}
