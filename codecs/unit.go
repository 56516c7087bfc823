// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package codecs

import (
	"fmt"

	"code.hybscloud.com/sumcodec"
)

// EmptyCodec writes and reads nothing.
type EmptyCodec struct{}

// Empty returns the zero-width codec.
func Empty() EmptyCodec { return EmptyCodec{} }

// Encode implements sumcodec.Codec.
func (EmptyCodec) Encode(struct{}) (sumcodec.Bits, error) { return sumcodec.Bits{}, nil }

// Decode implements sumcodec.Codec.
func (EmptyCodec) Decode(b sumcodec.Bits) (struct{}, sumcodec.Bits, error) {
	return struct{}{}, b, nil
}

// ConstantCodec writes a fixed bit pattern and requires it when decoding.
type ConstantCodec struct {
	bits sumcodec.Bits
}

// Constant returns a codec for the fixed pattern bits.
func Constant(bits sumcodec.Bits) ConstantCodec { return ConstantCodec{bits: bits} }

// Encode implements sumcodec.Codec.
func (c ConstantCodec) Encode(struct{}) (sumcodec.Bits, error) { return c.bits, nil }

// Decode implements sumcodec.Codec.
func (c ConstantCodec) Decode(b sumcodec.Bits) (struct{}, sumcodec.Bits, error) {
	n := c.bits.Len()
	if b.Len() < n {
		return struct{}{}, sumcodec.Bits{}, insufficient(n, b.Len())
	}
	if got := b.Take(n); !got.Equal(c.bits) {
		return struct{}{}, sumcodec.Bits{}, fmt.Errorf("%w: got %v, want %v", ErrConstantMismatch, got, c.bits)
	}
	return struct{}{}, b.Drop(n), nil
}
