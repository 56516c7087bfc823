// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package sumcodec

import "sync"

// Discriminated is a codec for a tagged union A. Each value is written as
// the tag of its case, encoded with the tag codec, immediately followed by
// the case payload. No length prefix or separator is added.
//
// A Discriminated value is immutable. [Discriminated.With] returns a new
// codec and leaves its receiver untouched, so a partially built codec can
// be shared and extended independently. Encode, Decode and Resolve are safe
// for concurrent use.
//
// *Discriminated[A, B] implements Codec[A] and can be used as the payload
// codec of another case.
//
// The zero value is not usable: create codecs with [DiscriminatedBy].
// With, Decode, Resolve and Strategy on a zero value panic with an error
// wrapping ErrInvariant.
type Discriminated[A any, B comparable] struct {
	by      Codec[B]
	cases   []Case[A, B]
	matcher func() *matcher[A, B]
}

// DiscriminatedBy creates a discriminated codec with no cases, reading and
// writing tags with by.
//
// Example:
//
//	shapes := sumcodec.DiscriminatedBy[Shape](codecs.Uint8()).
//		With(sumcodec.TypedCase[Shape, Circle](sumcodec.Exact[uint8](0), circleCodec)).
//		With(sumcodec.TypedCase[Shape, Square](sumcodec.Exact[uint8](1), squareCodec))
func DiscriminatedBy[A any, B comparable](by Codec[B]) *Discriminated[A, B] {
	if by == nil {
		invariant("discriminated codec with nil tag codec")
	}
	return newDiscriminated[A](by, nil)
}

func newDiscriminated[A any, B comparable](by Codec[B], cases []Case[A, B]) *Discriminated[A, B] {
	return &Discriminated[A, B]{
		by:    by,
		cases: cases,
		matcher: sync.OnceValue(func() *matcher[A, B] {
			return compileMatcher(cases)
		}),
	}
}

// With returns a new codec whose cases are the receiver's followed by c.
// Registration order decides which case encodes a value accepted by several
// extractors, and which case owns a tag matched by several conditions.
//
// Panics with an error wrapping ErrInvariant if c has a predicate condition
// whose representative does not satisfy the predicate.
func (d *Discriminated[A, B]) With(c Case[A, B]) *Discriminated[A, B] {
	d.mustInit()
	if c == nil {
		invariant("nil case")
	}
	if cond := c.Condition(); !cond.consistent() {
		invariant("representative of %v does not satisfy its own predicate", cond)
	}
	cases := make([]Case[A, B], len(d.cases), len(d.cases)+1)
	copy(cases, d.cases)
	return newDiscriminated(d.by, append(cases, c))
}

// WithCases registers each of cs in order, as repeated calls to With.
func (d *Discriminated[A, B]) WithCases(cs ...Case[A, B]) *Discriminated[A, B] {
	out := d
	for _, c := range cs {
		out = out.With(c)
	}
	return out
}

// Encode writes the tag and payload of the first case, in registration
// order, whose extractor accepts a. Later cases are not consulted.
// If the tag codec fails, the payload codec is not invoked.
func (d *Discriminated[A, B]) Encode(a A) (Bits, error) {
	for _, c := range d.cases {
		bits, ok, err := c.encodeWith(a, d.by)
		if !ok {
			continue
		}
		if err != nil {
			return Bits{}, err
		}
		return bits, nil
	}
	return Bits{}, &NoMatchingCaseError{Value: a}
}

// Decode reads a tag, resolves it to a case and decodes that case's
// payload from the bits that follow. A failure at any step aborts the
// decode; no other case is tried once the tag has resolved.
func (d *Discriminated[A, B]) Decode(b Bits) (A, Bits, error) {
	var zero A
	m := d.compiled()
	tag, rest, err := d.by.Decode(b)
	if err != nil {
		return zero, Bits{}, err
	}
	c, err := m.resolve(tag)
	if err != nil {
		return zero, Bits{}, err
	}
	return c.decodePayload(rest)
}

// Resolve returns the case owning tag, or an *UnknownTagError.
func (d *Discriminated[A, B]) Resolve(tag B) (Case[A, B], error) {
	return d.compiled().resolve(tag)
}

// Strategy reports how the compiled matcher resolves tags.
func (d *Discriminated[A, B]) Strategy() Strategy {
	return d.compiled().strategy
}

// Cases returns a copy of the registered cases in registration order.
func (d *Discriminated[A, B]) Cases() []Case[A, B] {
	out := make([]Case[A, B], len(d.cases))
	copy(out, d.cases)
	return out
}

// Len returns the number of registered cases.
func (d *Discriminated[A, B]) Len() int { return len(d.cases) }

// TagCodec returns the codec used for tags.
func (d *Discriminated[A, B]) TagCodec() Codec[B] { return d.by }

func (d *Discriminated[A, B]) compiled() *matcher[A, B] {
	d.mustInit()
	return d.matcher()
}

func (d *Discriminated[A, B]) mustInit() {
	if d.by == nil || d.matcher == nil {
		invariant("zero Discriminated value; create codecs with DiscriminatedBy")
	}
}
