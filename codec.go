// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package sumcodec

// Codec encodes values of type T to bits and decodes them back.
//
// Decode consumes a prefix of its input and returns the decoded value
// together with the unread remainder. On error the value is the zero
// value and the remainder is empty.
type Codec[T any] interface {
	Encode(v T) (Bits, error)
	Decode(b Bits) (T, Bits, error)
}

// FuncCodec is a Codec backed by a pair of functions.
type FuncCodec[T any] struct {
	encode func(T) (Bits, error)
	decode func(Bits) (T, Bits, error)
}

// CodecOf creates a codec from an encode and a decode function.
func CodecOf[T any](encode func(T) (Bits, error), decode func(Bits) (T, Bits, error)) FuncCodec[T] {
	if encode == nil || decode == nil {
		invariant("CodecOf requires both encode and decode")
	}
	return FuncCodec[T]{encode: encode, decode: decode}
}

// Encode implements Codec.
func (c FuncCodec[T]) Encode(v T) (Bits, error) { return c.encode(v) }

// Decode implements Codec.
func (c FuncCodec[T]) Decode(b Bits) (T, Bits, error) { return c.decode(b) }

// DecodeValue decodes b with c and requires the whole input to be consumed.
// Leftover bits are reported with ErrTrailingBits.
func DecodeValue[T any](c Codec[T], b Bits) (T, error) {
	v, rest, err := c.Decode(b)
	if err != nil {
		return v, err
	}
	if !rest.IsEmpty() {
		var zero T
		return zero, &TrailingBitsError{Remainder: rest}
	}
	return v, nil
}

// unitCodec writes and reads no bits.
type unitCodec struct{}

func (unitCodec) Encode(struct{}) (Bits, error)         { return Bits{}, nil }
func (unitCodec) Decode(b Bits) (struct{}, Bits, error) { return struct{}{}, b, nil }
