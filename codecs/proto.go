// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package codecs

import (
	"fmt"

	"google.golang.org/protobuf/proto"

	"code.hybscloud.com/sumcodec"
)

// ProtoCodec writes a protobuf message as a length-delimited byte string.
// Marshaling is deterministic.
type ProtoCodec[M proto.Message] struct {
	newMessage func() M
	marshal    proto.MarshalOptions
	unmarshal  proto.UnmarshalOptions
}

// Proto returns a codec for messages of type M. newMessage allocates the
// message each decode fills in.
func Proto[M proto.Message](newMessage func() M) ProtoCodec[M] {
	if newMessage == nil {
		panic("codecs: Proto requires a message constructor")
	}
	return ProtoCodec[M]{
		newMessage: newMessage,
		marshal:    proto.MarshalOptions{Deterministic: true},
	}
}

// Encode implements sumcodec.Codec.
func (c ProtoCodec[M]) Encode(m M) (sumcodec.Bits, error) {
	p, err := c.marshal.Marshal(m)
	if err != nil {
		return sumcodec.Bits{}, fmt.Errorf("codecs: protobuf: %w", err)
	}
	return BytesCodec{}.Encode(p)
}

// Decode implements sumcodec.Codec.
func (c ProtoCodec[M]) Decode(b sumcodec.Bits) (M, sumcodec.Bits, error) {
	var zero M
	p, rest, err := BytesCodec{}.Decode(b)
	if err != nil {
		return zero, sumcodec.Bits{}, err
	}
	m := c.newMessage()
	if err := c.unmarshal.Unmarshal(p, m); err != nil {
		return zero, sumcodec.Bits{}, fmt.Errorf("codecs: protobuf: %w", err)
	}
	return m, rest, nil
}
