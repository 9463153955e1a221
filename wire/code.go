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
	"encoding/json"
	"fmt"

	"dirpx.dev/dresult/code"
)

// MarshalCode encodes a code as {"$type":<tag>,"$name":<name>}. The codec is
// a package function rather than a Registry method: codes keep their own
// process-wide singleton table in the code package, so there is no
// per-registry state to consult.
func MarshalCode(c *code.Code) ([]byte, error) {
	if c == nil {
		return nil, fmt.Errorf("%w: nil code", ErrInvalidPayload)
	}
	return json.Marshal(c)
}

// UnmarshalCode resolves a serialized code back to its canonical singleton.
//
// Only the "$type" tag matters: it is looked up through code.Lookup and the
// registered pointer is returned, so the decoded code compares equal (==)
// to the package-level declaration. The "$name" field is display metadata
// on the wire and is ignored on decode. An unknown tag is ErrUnknownType;
// a missing one is ErrMissingType.
func UnmarshalCode(data []byte) (*code.Code, error) {
	tag, err := typeTag(data)
	if err != nil {
		return nil, err
	}

	c, ok := code.Lookup(tag)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownType, tag)
	}
	return c, nil
}
