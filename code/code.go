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

package code

import (
	"encoding"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"sync"
)

// Code is the canonical identity token for an error category.
//
// Every category owns exactly one *Code for the lifetime of the process: it is
// created once (typically in a package-level var block via MustNew), registered
// under its wire tag, never mutated and never removed. All references to "the
// NotFoundError code", however obtained — directly from the declaring package,
// through an error instance, or from the wire codec after a decode — point to
// the same canonical value.
//
// Equality is therefore reference identity: two codes denote the same category
// iff they are the same pointer. The wire codec preserves this by re-resolving
// every decoded code to the registered singleton instead of allocating a copy.
//
// IMPORTANT: the zero Code is unusable. Codes must be obtained from New/MustNew
// (or Lookup); there is no valid way to construct one by hand.
type Code struct {
	// tag is the canonical wire discriminator for this code,
	// e.g. "NotFoundErrorCode". Unique per process.
	tag string

	// name is the stable, human-readable category name, e.g. "NotFoundError".
	// This is the identifier that shows up in logs, metrics and the $name
	// field of the wire form. Unique per process.
	name string
}

// MinLength and MaxLength define the allowed length range for code tags and
// names.
//
// We keep these values as separate constants so they can be referenced in
// validation errors, tests, or in other packages that want to mirror the same
// constraints.
const (
	// MinLength is the minimum length for a valid tag or name.
	// We require at least 3 characters so that ultra-short and ambiguous
	// identifiers like "E" or "X1" are not accepted.
	MinLength = 3

	// MaxLength is the maximum length for a valid tag or name.
	// 64 characters is enough for descriptive identifiers like
	// "BusinessRuleViolationErrorCode" while still preventing unbounded or
	// accidental long strings.
	MaxLength = 64
)

const (
	// codeFmt is the canonical regular expression used to validate code tags
	// and names.
	//
	// Pattern breakdown:
	//
	//	^ - start of string;
	//	[A-Za-z] - first character must be an ASCII letter;
	//	[A-Za-z0-9]{2,63} - the remaining characters may be letters or digits;
	//	                    the quantifier {2,63} makes the total length
	//	                    3..64 characters (1 + 2..63);
	//	$ - end of string;
	//
	// IMPORTANT: the numeric range {2,63} is tied to MinLength / MaxLength above.
	// If you change MinLength / MaxLength, make sure to adjust this pattern as well.
	codeFmt = `^[A-Za-z][A-Za-z0-9]{2,63}$`
)

var (
	// codeRe is the compiled regular expression used at runtime to validate
	// tags and names.
	//
	// We precompile it so that repeated validations (e.g. on decode paths)
	// do not pay the compilation cost over and over again.
	//
	// Examples of valid identifiers:
	//   - "NotFoundError"
	//   - "NotFoundErrorCode"
	//   - "ValidationError"
	//
	// Examples of invalid identifiers:
	//   - "not-found"    (dash)
	//   - "x"            (too short)
	//   - "1NotValid"    (does not start with a letter)
	//   - " NotFound"    (surrounding space; Normalize trims it first)
	codeRe = regexp.MustCompile(codeFmt)
)

var (
	// ErrInvalid is returned when a value cannot be validated as a code tag
	// or name.
	//
	// Having a dedicated sentinel error makes it easier for callers and tests
	// to detect "this is about identifier format" vs "this is some other error".
	ErrInvalid = errors.New("code: invalid identifier")

	// ErrDuplicate is returned by New when the tag or the name is already
	// registered. Categories are singletons; declaring the same one twice is
	// a programming error, not something to merge silently.
	ErrDuplicate = errors.New("code: duplicate registration")

	// ErrDirectUnmarshal is returned by UnmarshalJSON. Decoding a Code in
	// place cannot yield the canonical singleton (json.Unmarshal fills the
	// caller's allocation), so it must fail loudly instead of fabricating an
	// equal-looking duplicate. Decode codes through the wire package.
	ErrDirectUnmarshal = errors.New("code: cannot unmarshal directly, decode through the wire codec")
)

// Ensure Code implements the marshaling interfaces other packages rely on.
// There is deliberately no TextUnmarshaler / working JSON Unmarshaler: decoding
// must go through the registry so that singleton identity is preserved.
var (
	_ encoding.TextMarshaler = (*Code)(nil)
	_ json.Marshaler         = (*Code)(nil)
	_ json.Unmarshaler       = (*Code)(nil)
)

// registry is the process-wide tag -> singleton table.
//
// It is written once per category (at package init for the built-ins, at
// first declaration for consumer-defined ones) and read-only afterwards,
// so an RWMutex is all the locking discipline this needs.
var registry = struct {
	mu     sync.RWMutex
	byTag  map[string]*Code
	byName map[string]*Code
}{
	byTag:  make(map[string]*Code),
	byName: make(map[string]*Code),
}

// New creates and registers the canonical Code for a category.
//
// tag is the wire discriminator (e.g. "NotFoundErrorCode"), name the
// human-readable category name (e.g. "NotFoundError"). Both are normalized,
// validated against the canonical format and required to be unique across the
// process. Call New exactly once per category; the returned pointer is the
// singleton every later reference must use.
func New(tag, name string) (*Code, error) {
	tag = Normalize(tag)
	name = Normalize(name)
	if err := Validate(tag); err != nil {
		return nil, fmt.Errorf("%w: tag %q", err, tag)
	}
	if err := Validate(name); err != nil {
		return nil, fmt.Errorf("%w: name %q", err, name)
	}

	registry.mu.Lock()
	defer registry.mu.Unlock()

	if _, ok := registry.byTag[tag]; ok {
		return nil, fmt.Errorf("%w: tag %q", ErrDuplicate, tag)
	}
	if _, ok := registry.byName[name]; ok {
		return nil, fmt.Errorf("%w: name %q", ErrDuplicate, name)
	}

	c := &Code{tag: tag, name: name}
	registry.byTag[tag] = c
	registry.byName[name] = c
	return c, nil
}

// MustNew is the panic-on-error variant of New. It is the intended way to
// declare codes in package-level var blocks, where a bad identifier is a
// programming error that should fail at process start.
func MustNew(tag, name string) *Code {
	c, err := New(tag, name)
	if err != nil {
		panic(err)
	}
	return c
}

// Lookup returns the canonical singleton registered under the given wire tag.
// The second return value reports whether the tag is known. This is the decode
// side of the registry: resolving through Lookup is what guarantees a decoded
// code compares equal (==) to the in-memory declaration.
func Lookup(tag string) (*Code, bool) {
	tag = Normalize(tag)

	registry.mu.RLock()
	defer registry.mu.RUnlock()

	c, ok := registry.byTag[tag]
	return c, ok
}

// Normalize takes an arbitrary string and tries to bring it closer to the
// canonical identifier form.
//
// This function is intentionally conservative: identifiers are CamelCase, so
// the only obvious, non-lossy transformation is trimming surrounding space.
// It does NOT guarantee that the result is valid — callers should still call
// Validate afterwards.
func Normalize(s string) string {
	return strings.TrimSpace(s)
}

// Validate checks whether the provided string is a valid code tag or name.
// The empty string is considered invalid.
func Validate(s string) error {
	if !codeRe.MatchString(s) {
		return ErrInvalid
	}
	return nil
}

// Tag returns the canonical wire discriminator of the code.
func (c *Code) Tag() string {
	return c.tag
}

// Name returns the stable, human-readable category name.
func (c *Code) Name() string {
	return c.name
}

// String returns the category name. The name is the only stable cross-process
// identifier for the category and is what belongs in logs and metrics.
func (c *Code) String() string {
	return c.name
}

// MarshalText implements encoding.TextMarshaler.
//
// It returns the category name, so a Code embedded in a larger struct renders
// the same way it does in logs.
func (c *Code) MarshalText() ([]byte, error) {
	if err := Validate(c.name); err != nil {
		return nil, err
	}
	return []byte(c.name), nil
}

// MarshalJSON implements json.Marshaler.
//
// The wire form is a self-describing tagged object:
//
//	{"$type":"NotFoundErrorCode","$name":"NotFoundError"}
//
// Key order is fixed by the struct below, which keeps the output byte-stable
// for golden tests and cross-process diffing.
func (c *Code) MarshalJSON() ([]byte, error) {
	if err := Validate(c.tag); err != nil {
		return nil, fmt.Errorf("%w: tag %q", err, c.tag)
	}
	return json.Marshal(struct {
		Type string `json:"$type"`
		Name string `json:"$name"`
	}{Type: c.tag, Name: c.name})
}

// UnmarshalJSON implements json.Unmarshaler and always fails.
//
// json.Unmarshal decodes into memory the caller allocated, which could only
// ever produce a duplicate of the singleton — and a duplicate would break the
// reference-identity contract in a way that surfaces far from the decode site.
// Failing here keeps the breakage at the boundary. Use the wire package, whose
// decode resolves the tag back to the canonical singleton.
func (c *Code) UnmarshalJSON([]byte) error {
	return ErrDirectUnmarshal
}
