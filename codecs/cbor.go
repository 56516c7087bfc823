// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package codecs

import (
	"errors"
	"fmt"
	"io"
	"reflect"

	"github.com/fxamacker/cbor/v2"

	"code.hybscloud.com/sumcodec"
)

// cborEncMode uses Core Deterministic Encoding: the same value always
// produces the same bits.
var cborEncMode cbor.EncMode

// cborDecMode decodes untyped maps as map[string]any.
var cborDecMode cbor.DecMode

func init() {
	var err error
	cborEncMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("codecs: CBOR encoder initialization failed: " + err.Error())
	}
	cborDecMode, err = cbor.DecOptions{
		DefaultMapType: reflect.TypeOf(map[string]any(nil)),
	}.DecMode()
	if err != nil {
		panic("codecs: CBOR decoder initialization failed: " + err.Error())
	}
}

// CBORCodec encodes T as a single CBOR data item. CBOR items are
// self-delimiting, so no length prefix is written.
type CBORCodec[T any] struct{}

// CBOR returns the deterministic CBOR codec for T.
func CBOR[T any]() CBORCodec[T] { return CBORCodec[T]{} }

// Encode implements sumcodec.Codec.
func (CBORCodec[T]) Encode(v T) (sumcodec.Bits, error) {
	p, err := cborEncMode.Marshal(v)
	if err != nil {
		return sumcodec.Bits{}, fmt.Errorf("codecs: cbor: %w", err)
	}
	return sumcodec.FromBytes(p), nil
}

// Decode implements sumcodec.Codec. Only the first data item is read;
// the bits after it are returned as the remainder.
func (CBORCodec[T]) Decode(b sumcodec.Bits) (T, sumcodec.Bits, error) {
	var v T
	p := wholeBytes(b, 0)
	rest, err := cborDecMode.UnmarshalFirst(p, &v)
	if err != nil {
		var zero T
		if errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, io.EOF) {
			return zero, sumcodec.Bits{}, fmt.Errorf("codecs: cbor: %w", ErrInsufficientBits)
		}
		return zero, sumcodec.Bits{}, fmt.Errorf("codecs: cbor: %w", err)
	}
	return v, b.Drop((len(p) - len(rest)) * 8), nil
}
