// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package codecs

import (
	"fmt"
	"math/bits"

	"code.hybscloud.com/sumcodec"
)

// Unsigned is the set of unsigned integer types a UintCodec can carry.
type Unsigned interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint
}

// Signed is the set of signed integer types an IntCodec can carry.
type Signed interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~int
}

// UintCodec is a fixed-width big-endian unsigned integer codec.
type UintCodec[T Unsigned] struct {
	width int
}

// UintOf creates a width-bit codec for T. Panics if width is not in
// [1, bit size of T].
func UintOf[T Unsigned](width int) UintCodec[T] {
	if width < 1 || width > bits.Len64(uint64(^T(0))) {
		panic(fmt.Sprintf("codecs: unsigned width %d out of range", width))
	}
	return UintCodec[T]{width: width}
}

// Uint creates a width-bit codec for uint64, 1 <= width <= 64.
func Uint(width int) UintCodec[uint64] { return UintOf[uint64](width) }

// Uint8 is the 8-bit unsigned codec.
func Uint8() UintCodec[uint8] { return UintOf[uint8](8) }

// Uint16 is the 16-bit big-endian unsigned codec.
func Uint16() UintCodec[uint16] { return UintOf[uint16](16) }

// Uint32 is the 32-bit big-endian unsigned codec.
func Uint32() UintCodec[uint32] { return UintOf[uint32](32) }

// Uint64 is the 64-bit big-endian unsigned codec.
func Uint64() UintCodec[uint64] { return UintOf[uint64](64) }

// Width returns the number of bits written per value.
func (c UintCodec[T]) Width() int { return c.width }

// Encode implements sumcodec.Codec.
func (c UintCodec[T]) Encode(v T) (sumcodec.Bits, error) {
	if c.width < 64 && uint64(v)>>c.width != 0 {
		return sumcodec.Bits{}, fmt.Errorf("%w: %d does not fit in %d bits", ErrOutOfRange, v, c.width)
	}
	return sumcodec.FromUint(uint64(v), c.width), nil
}

// Decode implements sumcodec.Codec.
func (c UintCodec[T]) Decode(b sumcodec.Bits) (T, sumcodec.Bits, error) {
	if b.Len() < c.width {
		return 0, sumcodec.Bits{}, insufficient(c.width, b.Len())
	}
	return T(b.Uint(c.width)), b.Drop(c.width), nil
}

// IntCodec is a fixed-width big-endian two's complement integer codec.
type IntCodec[T Signed] struct {
	width int
}

// IntOf creates a width-bit codec for T. Panics if width is not in
// [1, bit size of T].
func IntOf[T Signed](width int) IntCodec[T] {
	var probe T = 1
	size := 0
	for probe != 0 {
		probe <<= 1
		size++
	}
	if width < 1 || width > size {
		panic(fmt.Sprintf("codecs: signed width %d out of range", width))
	}
	return IntCodec[T]{width: width}
}

// Int creates a width-bit codec for int64, 1 <= width <= 64.
func Int(width int) IntCodec[int64] { return IntOf[int64](width) }

// Int8 is the 8-bit signed codec.
func Int8() IntCodec[int8] { return IntOf[int8](8) }

// Int16 is the 16-bit signed codec.
func Int16() IntCodec[int16] { return IntOf[int16](16) }

// Int32 is the 32-bit signed codec.
func Int32() IntCodec[int32] { return IntOf[int32](32) }

// Int64 is the 64-bit signed codec.
func Int64() IntCodec[int64] { return IntOf[int64](64) }

// Width returns the number of bits written per value.
func (c IntCodec[T]) Width() int { return c.width }

// Encode implements sumcodec.Codec.
func (c IntCodec[T]) Encode(v T) (sumcodec.Bits, error) {
	x := int64(v)
	if c.width < 64 {
		lo, hi := int64(-1)<<(c.width-1), int64(1)<<(c.width-1)-1
		if x < lo || x > hi {
			return sumcodec.Bits{}, fmt.Errorf("%w: %d does not fit in %d signed bits", ErrOutOfRange, x, c.width)
		}
	}
	return sumcodec.FromUint(uint64(x)&mask(c.width), c.width), nil
}

// Decode implements sumcodec.Codec.
func (c IntCodec[T]) Decode(b sumcodec.Bits) (T, sumcodec.Bits, error) {
	if b.Len() < c.width {
		return 0, sumcodec.Bits{}, insufficient(c.width, b.Len())
	}
	u := b.Uint(c.width)
	if c.width < 64 && u&(1<<(c.width-1)) != 0 {
		u |= ^uint64(0) << c.width
	}
	return T(int64(u)), b.Drop(c.width), nil
}

// BoolCodec writes a single bit.
type BoolCodec struct{}

// Bool is the one-bit boolean codec.
func Bool() BoolCodec { return BoolCodec{} }

// Encode implements sumcodec.Codec.
func (BoolCodec) Encode(v bool) (sumcodec.Bits, error) {
	if v {
		return sumcodec.FromUint(1, 1), nil
	}
	return sumcodec.FromUint(0, 1), nil
}

// Decode implements sumcodec.Codec.
func (BoolCodec) Decode(b sumcodec.Bits) (bool, sumcodec.Bits, error) {
	if b.Len() < 1 {
		return false, sumcodec.Bits{}, insufficient(1, 0)
	}
	return b.Bit(0), b.Drop(1), nil
}

func mask(width int) uint64 {
	if width >= 64 {
		return ^uint64(0)
	}
	return 1<<width - 1
}
