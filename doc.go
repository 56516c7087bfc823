// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package sumcodec builds binary codecs for tagged unions.
//
// A value of a union type A is written as tag ++ payload: the tag is a
// value of a discriminator type B encoded with a tag codec, and it selects
// which case-specific codec reads or writes the payload that immediately
// follows. No length prefix or separator is added.
//
// # Codecs and Bits
//
//   - [Bits]: immutable bit sequence, MSB-first
//   - [Codec]: Encode(T) (Bits, error) and Decode(Bits) (T, Bits, error)
//   - [CodecOf]: Codec from a pair of functions
//   - [DecodeValue]: Decode that rejects trailing bits
//
// Concrete tag and payload codecs live in package codecs.
//
// # Cases
//
// A [Case] pairs a [Condition] on the tag with a prism between A and a
// case-local payload type R: an extractor A → (R, bool), an injector R → A
// and a Codec[R]. The payload type stays inside the case, so cases with
// different payload types share one ordered list.
//
//   - [Exact]: the case owns one tag
//   - [Predicate]: the case owns every tag a test accepts and writes a
//     representative tag when encoding
//   - [NewCase]: case from extract/inject functions
//   - [TypedCase]: case for a variant type of a sealed interface
//   - [SingletonCase]: case for one specific value, no payload bits
//
// # Discriminated Codecs
//
// [DiscriminatedBy] starts an empty codec; [Discriminated.With] returns a
// new codec with one more case. Codec values are immutable and safe for
// concurrent use.
//
// Encoding scans cases in registration order and stops at the first
// extractor that accepts the value. Decoding reads the tag and resolves it
// through a matcher compiled once per codec value:
//
//   - every condition exact: hash table lookup; on duplicate tags the
//     earliest registration wins
//   - any predicate: linear scan in registration order, first match wins
//
// Errors:
//
//   - [ErrUnknownTag]: decoded tag owned by no case ([UnknownTagError])
//   - [ErrNoMatchingCase]: value accepted by no extractor ([NoMatchingCaseError])
//   - tag and payload codec errors are returned unchanged
//
// Assembling a codec incorrectly, such as registering a predicate whose
// representative fails its own test, panics with an error wrapping
// [ErrInvariant].
//
// # Either
//
// [Either] is the canonical two-case sum and [EitherCodec] its codec.
//
// # Example
//
//	type Shape interface{ shape() }
//	type Circle struct{ R uint16 }
//	type Square struct{ Side uint16 }
//
//	shapes := sumcodec.DiscriminatedBy[Shape](codecs.Uint8()).
//		With(sumcodec.TypedCase[Shape, Circle](sumcodec.Exact[uint8](0), circleCodec)).
//		With(sumcodec.TypedCase[Shape, Square](sumcodec.Exact[uint8](1), squareCodec))
//
//	bits, err := shapes.Encode(Circle{R: 3})   // 0x00 followed by circleCodec bits
//	shape, rest, err := shapes.Decode(bits)    // Circle{R: 3}, empty remainder
package sumcodec
