// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package codecs

import (
	"fmt"
	"unicode/utf8"

	"google.golang.org/protobuf/encoding/protowire"

	"code.hybscloud.com/sumcodec"
)

// BytesCodec writes a uvarint byte count followed by the bytes, the
// protobuf length-delimited layout.
type BytesCodec struct{}

// Bytes returns the length-prefixed byte slice codec.
func Bytes() BytesCodec { return BytesCodec{} }

// Encode implements sumcodec.Codec.
func (BytesCodec) Encode(p []byte) (sumcodec.Bits, error) {
	return sumcodec.FromBytes(protowire.AppendBytes(nil, p)), nil
}

// Decode implements sumcodec.Codec.
func (BytesCodec) Decode(b sumcodec.Bits) ([]byte, sumcodec.Bits, error) {
	n, rest, err := UvarintCodec{}.Decode(b)
	if err != nil {
		return nil, sumcodec.Bits{}, err
	}
	if n > uint64(rest.Len()/8) {
		return nil, sumcodec.Bits{}, fmt.Errorf("%w: need %d bytes, have %d bits", ErrInsufficientBits, n, rest.Len())
	}
	size := int(n) * 8
	return rest.Take(size).Bytes(), rest.Drop(size), nil
}

// String returns the length-prefixed UTF-8 string codec. Invalid UTF-8 is
// rejected in both directions with ErrInvalidUTF8.
func String() XmapCodec[[]byte, string] {
	return Exmap(Bytes(),
		func(p []byte) (string, error) {
			if !utf8.Valid(p) {
				return "", ErrInvalidUTF8
			}
			return string(p), nil
		},
		func(s string) ([]byte, error) {
			if !utf8.ValidString(s) {
				return nil, ErrInvalidUTF8
			}
			return []byte(s), nil
		},
	)
}

// FixedBytesCodec writes exactly n bytes with no prefix.
type FixedBytesCodec struct {
	n int
}

// FixedBytes returns a codec for byte slices of length n.
func FixedBytes(n int) FixedBytesCodec {
	if n < 0 {
		panic("codecs: negative fixed length")
	}
	return FixedBytesCodec{n: n}
}

// Encode implements sumcodec.Codec.
func (c FixedBytesCodec) Encode(p []byte) (sumcodec.Bits, error) {
	if len(p) != c.n {
		return sumcodec.Bits{}, fmt.Errorf("%w: got %d bytes, want %d", ErrOutOfRange, len(p), c.n)
	}
	return sumcodec.FromBytes(p), nil
}

// Decode implements sumcodec.Codec.
func (c FixedBytesCodec) Decode(b sumcodec.Bits) ([]byte, sumcodec.Bits, error) {
	size := c.n * 8
	if b.Len() < size {
		return nil, sumcodec.Bits{}, insufficient(size, b.Len())
	}
	return b.Take(size).Bytes(), b.Drop(size), nil
}
