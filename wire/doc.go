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

// Package wire serializes errors, codes and results to JSON and back without
// losing their concrete types.
//
// Every serialized error and code carries a "$type" discriminator as its
// first key. On decode the discriminator is resolved through an explicit
// registry of decode closures, in the same spirit as gob.Register: consumers
// declare their variants once, up front, and the codec stays free of
// constructor probing or struct scanning at decode time. An unknown
// discriminator is a hard ErrUnknownType failure, never a silent downgrade
// to a base type.
//
// Codes are special. They are process-wide singletons, so their codec does
// not build anything: UnmarshalCode resolves the tag through the code
// package's own table and returns the canonical pointer. Round-tripping a
// code preserves identity, not just field values.
//
// Results ride in a fixed envelope:
//
//	{"isSuccess":true,"value":42}
//	{"isSuccess":false,"error":{"$type":"NotFoundError","code":{...},"description":"..."}}
//
// with exactly one of error/value present.
//
// A consumer variant joins the family with one registration, typically in
// package init:
//
//	wire.MustRegister[*TooManySeatsError]("TooManySeatsError",
//	    func(data []byte) (errs.Error, error) {
//	        var p struct {
//	            Description string `json:"description"`
//	            Requested   int    `json:"requested"`
//	        }
//	        if err := json.Unmarshal(data, &p); err != nil {
//	            return nil, fmt.Errorf("%w: %v", wire.ErrInvalidPayload, err)
//	        }
//	        return NewTooManySeats(p.Description, p.Requested), nil
//	    })
//
// Variants that carry nothing beyond a description can use
// DescriptionDecoder instead of writing the closure by hand.
package wire
