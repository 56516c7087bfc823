// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package sumcodec

import "reflect"

// Case is one registered rule of a discriminated codec: a condition on
// the tag plus a prism between the union type A and a case-local payload
// type. The payload type is fixed inside the implementation and does not
// appear in Case's type parameters, so cases with different payload types
// live in one ordered list.
//
// Cases are created with [NewCase], [TypedCase] or [SingletonCase].
type Case[A any, B comparable] interface {
	// Condition returns the tag condition of this case.
	Condition() Condition[B]

	// encodeWith reports ok=false when a does not belong to this case.
	// Otherwise it writes the representative tag with by, then the payload.
	encodeWith(a A, by Codec[B]) (bits Bits, ok bool, err error)

	// decodePayload decodes the payload and injects it into A.
	decodePayload(b Bits) (A, Bits, error)
}

// prismCase is the single Case implementation; every constructor
// normalizes to it.
type prismCase[A, R any, B comparable] struct {
	cond    Condition[B]
	extract func(A) (R, bool)
	inject  func(R) A
	payload Codec[R]
}

// NewCase creates a case from an extractor, an injector and a payload codec.
// extract returns (r, true) when a belongs to this case; inject rebuilds
// the union value from a decoded payload.
func NewCase[A, R any, B comparable](cond Condition[B], extract func(A) (R, bool), inject func(R) A, payload Codec[R]) Case[A, B] {
	if extract == nil || inject == nil {
		invariant("case %v requires both extract and inject", cond)
	}
	if payload == nil {
		invariant("case %v has nil payload codec", cond)
	}
	return &prismCase[A, R, B]{cond: cond, extract: extract, inject: inject, payload: payload}
}

// TypedCase creates a case for a variant type R of the union type A,
// typically a concrete type implementing a sealed interface A.
// A value belongs to the case when its dynamic type is R; injection is
// the identity conversion. Panics if R is not assignable to A.
func TypedCase[A, R any, B comparable](cond Condition[B], payload Codec[R]) Case[A, B] {
	if !reflect.TypeFor[R]().AssignableTo(reflect.TypeFor[A]()) {
		invariant("case %v: %v is not assignable to %v", cond, reflect.TypeFor[R](), reflect.TypeFor[A]())
	}
	return NewCase(cond, narrow[A, R], widen[A, R], payload)
}

// SingletonCase creates a case matching exactly one value of A and
// carrying no payload bits. Decoding the tag alone yields value.
func SingletonCase[A comparable, B comparable](cond Condition[B], value A) Case[A, B] {
	return NewCase[A, struct{}, B](cond,
		func(a A) (struct{}, bool) { return struct{}{}, a == value },
		func(struct{}) A { return value },
		unitCodec{},
	)
}

func (c *prismCase[A, R, B]) Condition() Condition[B] { return c.cond }

func (c *prismCase[A, R, B]) encodeWith(a A, by Codec[B]) (Bits, bool, error) {
	r, ok := c.extract(a)
	if !ok {
		return Bits{}, false, nil
	}
	tag, err := by.Encode(c.cond.Representative())
	if err != nil {
		return Bits{}, true, err
	}
	payload, err := c.payload.Encode(r)
	if err != nil {
		return Bits{}, true, err
	}
	return tag.Append(payload), true, nil
}

func (c *prismCase[A, R, B]) decodePayload(b Bits) (A, Bits, error) {
	r, rest, err := c.payload.Decode(b)
	if err != nil {
		var zero A
		return zero, Bits{}, err
	}
	return c.inject(r), rest, nil
}

// narrow is the checked downcast used by TypedCase.
func narrow[A, R any](a A) (R, bool) {
	r, ok := any(a).(R)
	return r, ok
}

// widen is the identity injection used by TypedCase. A nil interface
// payload widens to the zero A.
func widen[A, R any](r R) A {
	a, _ := any(r).(A)
	return a
}
