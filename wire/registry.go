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
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"dirpx.dev/dresult/errs"
)

var (
	// ErrMissingType marks a payload without a usable "$type" discriminator.
	// Every error and code on the wire must carry one; there is no implicit
	// default variant to fall back to.
	ErrMissingType = errors.New("wire: missing $type discriminator")

	// ErrUnknownType marks a "$type" discriminator with no registered
	// decoder. Decoding fails hard on it: silently downgrading an unknown
	// variant to some base shape would lose the very information the
	// discriminator exists to preserve.
	ErrUnknownType = errors.New("wire: unknown $type")

	// ErrUnregisteredType marks an encode attempt for an error type that was
	// never registered, so no stable tag exists for it.
	ErrUnregisteredType = errors.New("wire: unregistered error type")

	// ErrInvalidPayload marks bytes that are structurally unusable: not JSON,
	// not an object where an object is required, fields that violate the
	// envelope invariants, or field values a variant rejects.
	ErrInvalidPayload = errors.New("wire: invalid payload")

	// ErrRegistration marks a rejected Register call: blank tag, nil type or
	// decoder, or a tag/type that is already taken.
	ErrRegistration = errors.New("wire: invalid registration")
)

// DecodeFunc turns the raw JSON object of one error variant (including its
// "$type" key) back into the variant. Implementations must return errors for
// malformed payloads instead of panicking; decode problems are recoverable
// by contract.
type DecodeFunc func(data []byte) (errs.Error, error)

// Registry is a bidirectional table for one family of error variants: tag to
// decode closure for the decode side, concrete reflect.Type to tag for the
// encode side. Registration keeps both sides consistent, so an error that
// encodes under a tag always decodes through that tag's closure.
//
// A Registry is safe for concurrent use. The expected pattern is the one gob
// established: register every variant up front (package init or main), then
// share the registry read-only.
type Registry struct {
	mu       sync.RWMutex
	decoders map[string]DecodeFunc
	tags     map[reflect.Type]string
}

// NewRegistry returns an empty registry with no variants, not even the
// built-in ones. Use it for isolated variant families or in tests; regular
// code wants Default.
func NewRegistry() *Registry {
	return &Registry{
		decoders: make(map[string]DecodeFunc),
		tags:     make(map[reflect.Type]string),
	}
}

// Register binds a wire tag to a concrete error type and its decode closure.
//
// typ must be the concrete dynamic type the encoder will see, which for the
// pointer-based variants means the pointer type. One tag decodes to one
// type and one type encodes to one tag; a duplicate on either side is a
// registration error, there is no overwrite.
func (r *Registry) Register(tag string, typ reflect.Type, dec DecodeFunc) error {
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return fmt.Errorf("%w: blank tag", ErrRegistration)
	}
	if typ == nil {
		return fmt.Errorf("%w: nil type for tag %q", ErrRegistration, tag)
	}
	if dec == nil {
		return fmt.Errorf("%w: nil decoder for tag %q", ErrRegistration, tag)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.decoders == nil {
		r.decoders = make(map[string]DecodeFunc)
		r.tags = make(map[reflect.Type]string)
	}
	if _, ok := r.decoders[tag]; ok {
		return fmt.Errorf("%w: tag %q is already registered", ErrRegistration, tag)
	}
	if prev, ok := r.tags[typ]; ok {
		return fmt.Errorf("%w: type %v is already registered under %q", ErrRegistration, typ, prev)
	}

	r.decoders[tag] = dec
	r.tags[typ] = tag
	return nil
}

// TagOf reports the wire tag the registry would encode e under. The second
// return value is false for errs.None and for unregistered types.
func (r *Registry) TagOf(e errs.Error) (string, bool) {
	if e == errs.None {
		return "", false
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	tag, ok := r.tags[reflect.TypeOf(e)]
	return tag, ok
}

func (r *Registry) decoderFor(tag string) (DecodeFunc, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	dec, ok := r.decoders[tag]
	return dec, ok
}

// RegisterWith is the typed form of Registry.Register: the tag is bound to
// the type parameter E, which must be the concrete (for the built-in
// variants: pointer) type, never the errs.Error interface itself.
//
// Usage:
//
//	err := wire.RegisterWith[*TooManySeatsError](reg, "TooManySeatsError",
//	    func(data []byte) (errs.Error, error) { ... })
func RegisterWith[E errs.Error](r *Registry, tag string, dec DecodeFunc) error {
	return r.Register(tag, reflect.TypeFor[E](), dec)
}

// Register binds a variant on the Default registry. This is the one-liner
// consumers call from package init when declaring their own variants.
func Register[E errs.Error](tag string, dec DecodeFunc) error {
	return RegisterWith[E](Default(), tag, dec)
}

// MustRegister is the panic-on-error variant of Register, for package-level
// init paths where a rejected registration is a programming error.
func MustRegister[E errs.Error](tag string, dec DecodeFunc) {
	if err := Register[E](tag, dec); err != nil {
		panic(err)
	}
}

// DescriptionDecoder builds the DecodeFunc for description-only variants:
// it reads the "description" field, validates it, and hands it to factory.
//
// The factory carries the canonical code singleton, so the decoded error's
// code is identical (==) to the in-memory declaration. The "$type" tag is
// authoritative on decode: a "code" object embedded in the payload is
// informational and ignored.
func DescriptionDecoder[E errs.Error](factory func(string) E) DecodeFunc {
	return func(data []byte) (errs.Error, error) {
		var payload struct {
			Description string `json:"description"`
		}
		if err := json.Unmarshal(data, &payload); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
		}
		if err := errs.ValidateDescription(payload.Description); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
		}
		return factory(payload.Description), nil
	}
}

var defaultRegistry = sync.OnceValue(newDefaultRegistry)

// Default returns the process-wide registry, built once on first use with
// all built-in variants pre-registered under their category names.
func Default() *Registry {
	return defaultRegistry()
}

func newDefaultRegistry() *Registry {
	r := NewRegistry()
	seed := func(err error) {
		if err != nil {
			panic(err)
		}
	}

	seed(RegisterWith[*errs.NotFoundError](r, errs.NotFoundCode.Name(), DescriptionDecoder(errs.NotFound)))
	seed(RegisterWith[*errs.ValidationError](r, errs.ValidationCode.Name(), DescriptionDecoder(errs.Validation)))
	seed(RegisterWith[*errs.ConflictError](r, errs.ConflictCode.Name(), DescriptionDecoder(errs.Conflict)))
	seed(RegisterWith[*errs.UnauthorizedError](r, errs.UnauthorizedCode.Name(), DescriptionDecoder(errs.Unauthorized)))
	seed(RegisterWith[*errs.ConfigurationError](r, errs.ConfigurationCode.Name(), DescriptionDecoder(errs.Configuration)))
	seed(RegisterWith[*errs.BusinessRuleViolationError](r, errs.BusinessRuleViolationCode.Name(), DescriptionDecoder(errs.BusinessRuleViolation)))
	seed(RegisterWith[*errs.APIError](r, errs.APICode.Name(), DescriptionDecoder(errs.API)))
	seed(RegisterWith[*errs.UnhandledExceptionError](r, errs.UnhandledExceptionCode.Name(), DescriptionDecoder(errs.UnhandledException)))
	seed(RegisterWith[*errs.CanceledError](r, errs.CanceledCode.Name(), DescriptionDecoder(errs.Canceled)))

	return r
}
