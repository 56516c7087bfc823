// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package codecs

import (
	"errors"
	"fmt"
	"io"

	"google.golang.org/protobuf/encoding/protowire"

	"code.hybscloud.com/sumcodec"
)

// maxVarintLen is the longest varint encoding of a uint64.
const maxVarintLen = 10

// UvarintCodec is the protobuf base-128 varint codec for uint64.
type UvarintCodec struct{}

// Uvarint returns the unsigned varint codec.
func Uvarint() UvarintCodec { return UvarintCodec{} }

// Encode implements sumcodec.Codec.
func (UvarintCodec) Encode(v uint64) (sumcodec.Bits, error) {
	return sumcodec.FromBytes(protowire.AppendVarint(nil, v)), nil
}

// Decode implements sumcodec.Codec.
func (UvarintCodec) Decode(b sumcodec.Bits) (uint64, sumcodec.Bits, error) {
	p := wholeBytes(b, maxVarintLen)
	v, n := protowire.ConsumeVarint(p)
	if n < 0 {
		err := protowire.ParseError(n)
		if errors.Is(err, io.ErrUnexpectedEOF) {
			return 0, sumcodec.Bits{}, insufficient((len(p)+1)*8, b.Len())
		}
		return 0, sumcodec.Bits{}, fmt.Errorf("codecs: uvarint: %w", err)
	}
	return v, b.Drop(n * 8), nil
}

// VarintCodec is the zigzag varint codec for int64, as used by protobuf
// sint64 fields.
type VarintCodec struct{}

// Varint returns the signed zigzag varint codec.
func Varint() VarintCodec { return VarintCodec{} }

// Encode implements sumcodec.Codec.
func (VarintCodec) Encode(v int64) (sumcodec.Bits, error) {
	return UvarintCodec{}.Encode(protowire.EncodeZigZag(v))
}

// Decode implements sumcodec.Codec.
func (VarintCodec) Decode(b sumcodec.Bits) (int64, sumcodec.Bits, error) {
	u, rest, err := UvarintCodec{}.Decode(b)
	if err != nil {
		return 0, sumcodec.Bits{}, err
	}
	return protowire.DecodeZigZag(u), rest, nil
}
