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
	"strings"

	"dirpx.dev/dresult/errs"
)

// MarshalError encodes e as a JSON object whose first key is the "$type"
// discriminator, followed by the variant's exported fields as encoding/json
// renders them. A field tagged `json:"-"` stays off the wire.
//
// e must have a registered concrete type and must marshal to a JSON object;
// errs.None has no wire form and is rejected (inside a Result envelope the
// success side simply omits the error field).
func (r *Registry) MarshalError(e errs.Error) ([]byte, error) {
	if e == errs.None {
		return nil, fmt.Errorf("%w: None has no wire form", ErrInvalidPayload)
	}
	tag, ok := r.TagOf(e)
	if !ok {
		return nil, fmt.Errorf("%w: %T", ErrUnregisteredType, e)
	}

	payload, err := json.Marshal(e)
	if err != nil {
		return nil, fmt.Errorf("%w: marshal %q: %v", ErrInvalidPayload, tag, err)
	}
	if len(payload) == 0 || payload[0] != '{' {
		return nil, fmt.Errorf("%w: %q must encode to a JSON object", ErrInvalidPayload, tag)
	}
	return spliceType(tag, payload)
}

// UnmarshalError decodes a "$type"-discriminated JSON object back into the
// registered variant.
//
// Failure modes, in the order they are detected: bytes that are not a JSON
// object yield ErrInvalidPayload; an absent or blank "$type" yields
// ErrMissingType; a tag without a registered decoder yields ErrUnknownType.
// Errors from the decode closure are returned with the tag attached.
func (r *Registry) UnmarshalError(data []byte) (errs.Error, error) {
	tag, err := typeTag(data)
	if err != nil {
		return nil, err
	}

	dec, ok := r.decoderFor(tag)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownType, tag)
	}

	e, err := dec(data)
	if err != nil {
		return nil, fmt.Errorf("%w: $type %q", err, tag)
	}
	if e == errs.None {
		return nil, fmt.Errorf("%w: decoder for %q produced no error", ErrInvalidPayload, tag)
	}
	return e, nil
}

// MarshalError encodes e using the Default registry.
func MarshalError(e errs.Error) ([]byte, error) {
	return Default().MarshalError(e)
}

// UnmarshalError decodes data using the Default registry.
func UnmarshalError(data []byte) (errs.Error, error) {
	return Default().UnmarshalError(data)
}

// TagOf reports the Default-registry wire tag for e.
func TagOf(e errs.Error) (string, bool) {
	return Default().TagOf(e)
}

// spliceType prepends the "$type" key to an already-marshaled JSON object.
//
// Working on the raw bytes avoids a decode into map[string]any and back,
// which would scramble field order and push large int64 values through
// float64. The object produced by encoding/json is compact, so obj[0] is
// '{' and obj[1:] is the remainder of the object.
func spliceType(tag string, obj []byte) ([]byte, error) {
	key, err := json.Marshal(tag)
	if err != nil {
		return nil, fmt.Errorf("%w: tag %q: %v", ErrInvalidPayload, tag, err)
	}

	var buf bytes.Buffer
	buf.Grow(len(obj) + len(key) + len(`{"$type":,`))
	buf.WriteString(`{"$type":`)
	buf.Write(key)
	if len(obj) > 2 {
		// Non-empty object: separate the discriminator from the first field.
		buf.WriteByte(',')
	}
	buf.Write(obj[1:])
	return buf.Bytes(), nil
}

// typeTag extracts the "$type" discriminator from a JSON object.
func typeTag(data []byte) (string, error) {
	var head struct {
		Type string `json:"$type"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	if strings.TrimSpace(head.Type) == "" {
		return "", ErrMissingType
	}
	return head.Type, nil
}
