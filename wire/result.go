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

package wire

import (
	"bytes"
	"encoding/json"
	"fmt"

	"dirpx.dev/dresult"
)

// envelope is the wire shape of a Result. Field order fixes the key order:
// isSuccess, then error, then value. Exactly one of Error/Value is present;
// the json.RawMessage + omitempty combination drops the absent side.
type envelope struct {
	IsSuccess bool            `json:"isSuccess"`
	Error     json.RawMessage `json:"error,omitempty"`
	Value     json.RawMessage `json:"value,omitempty"`
}

// MarshalResultWith encodes a Result as its envelope, resolving the error
// side through the given registry. A success carries only isSuccess and
// value; a failure carries only isSuccess and error. None is never written:
// the success envelope has no error key at all.
func MarshalResultWith[T any](r *Registry, res dresult.Result[T]) ([]byte, error) {
	env := envelope{IsSuccess: res.IsSuccess()}

	if res.IsFailure() {
		raw, err := r.MarshalError(res.Err())
		if err != nil {
			return nil, err
		}
		env.Error = raw
	} else {
		raw, err := json.Marshal(res.Value())
		if err != nil {
			return nil, fmt.Errorf("%w: value: %v", ErrInvalidPayload, err)
		}
		env.Value = raw
	}
	return json.Marshal(env)
}

// UnmarshalResultWith decodes an envelope back into a Result, resolving the
// error side through the given registry.
//
// The envelope invariants are enforced, not repaired: a success carrying an
// error object and a failure missing its error are both ErrInvalidPayload.
// Two asymmetries are tolerated by design. An explicit JSON null counts as
// absent, because many serializers write null for empty optionals. And a
// stray value on a failure is surplus and ignored, since the failure side
// never promises a value. A success without a value decodes to T's zero.
func UnmarshalResultWith[T any](r *Registry, data []byte) (dresult.Result[T], error) {
	var zero dresult.Result[T]

	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return zero, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}

	if env.IsSuccess {
		if present(env.Error) {
			return zero, fmt.Errorf("%w: success envelope carries an error", ErrInvalidPayload)
		}
		if !present(env.Value) {
			var v T
			return dresult.Success(v), nil
		}
		var v T
		if err := json.Unmarshal(env.Value, &v); err != nil {
			return zero, fmt.Errorf("%w: value: %v", ErrInvalidPayload, err)
		}
		return dresult.Success(v), nil
	}

	if !present(env.Error) {
		return zero, fmt.Errorf("%w: failure envelope without an error", ErrInvalidPayload)
	}
	e, err := r.UnmarshalError(env.Error)
	if err != nil {
		return zero, err
	}
	return dresult.Failure[T](e), nil
}

// MarshalResult encodes res using the Default registry.
func MarshalResult[T any](res dresult.Result[T]) ([]byte, error) {
	return MarshalResultWith(Default(), res)
}

// UnmarshalResult decodes data using the Default registry.
func UnmarshalResult[T any](data []byte) (dresult.Result[T], error) {
	return UnmarshalResultWith[T](Default(), data)
}

// present reports whether a raw field was on the wire with a real value.
// A missing field and an explicit JSON null are both absent.
func present(raw json.RawMessage) bool {
	if len(raw) == 0 {
		return false
	}
	return !bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}
