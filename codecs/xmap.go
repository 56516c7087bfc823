// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package codecs

import "code.hybscloud.com/sumcodec"

// XmapCodec adapts a codec for T into a codec for U.
type XmapCodec[T, U any] struct {
	inner sumcodec.Codec[T]
	to    func(T) (U, error)
	from  func(U) (T, error)
}

// Xmap converts with total functions: to after decoding, from before encoding.
func Xmap[T, U any](c sumcodec.Codec[T], to func(T) U, from func(U) T) XmapCodec[T, U] {
	return XmapCodec[T, U]{
		inner: c,
		to:    func(t T) (U, error) { return to(t), nil },
		from:  func(u U) (T, error) { return from(u), nil },
	}
}

// Exmap converts with fallible functions. A conversion error fails the
// encode or decode it happens in.
func Exmap[T, U any](c sumcodec.Codec[T], to func(T) (U, error), from func(U) (T, error)) XmapCodec[T, U] {
	return XmapCodec[T, U]{inner: c, to: to, from: from}
}

// Encode implements sumcodec.Codec.
func (c XmapCodec[T, U]) Encode(u U) (sumcodec.Bits, error) {
	t, err := c.from(u)
	if err != nil {
		return sumcodec.Bits{}, err
	}
	return c.inner.Encode(t)
}

// Decode implements sumcodec.Codec.
func (c XmapCodec[T, U]) Decode(b sumcodec.Bits) (U, sumcodec.Bits, error) {
	var zero U
	t, rest, err := c.inner.Decode(b)
	if err != nil {
		return zero, sumcodec.Bits{}, err
	}
	u, err := c.to(t)
	if err != nil {
		return zero, sumcodec.Bits{}, err
	}
	return u, rest, nil
}
