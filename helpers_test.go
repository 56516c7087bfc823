// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package sumcodec_test

import (
	"errors"
	"sync/atomic"

	"code.hybscloud.com/sumcodec"
	"code.hybscloud.com/sumcodec/codecs"
)

// Msg is a sealed union used across the tests.
type Msg interface{ msg() }

type Ping struct{}

type Reading struct{ Value int32 }

type Note struct{ Text string }

func (Ping) msg()    {}
func (Reading) msg() {}
func (Note) msg()    {}

func readingCodec() sumcodec.Codec[Reading] {
	return codecs.Xmap(codecs.Int32(),
		func(v int32) Reading { return Reading{Value: v} },
		func(r Reading) int32 { return r.Value },
	)
}

func noteCodec() sumcodec.Codec[Note] {
	return codecs.Xmap(codecs.String(),
		func(s string) Note { return Note{Text: s} },
		func(n Note) string { return n.Text },
	)
}

func pingCodec() sumcodec.Codec[Ping] {
	return codecs.Xmap(codecs.Empty(),
		func(struct{}) Ping { return Ping{} },
		func(Ping) struct{} { return struct{}{} },
	)
}

// msgCodec registers Ping, Reading and Note under exact tags 0, 1 and 2.
func msgCodec() *sumcodec.Discriminated[Msg, uint8] {
	return sumcodec.DiscriminatedBy[Msg](codecs.Uint8()).
		With(sumcodec.TypedCase[Msg, Ping](sumcodec.Exact[uint8](0), pingCodec())).
		With(sumcodec.TypedCase[Msg, Reading](sumcodec.Exact[uint8](1), readingCodec())).
		With(sumcodec.TypedCase[Msg, Note](sumcodec.Exact[uint8](2), noteCodec()))
}

// spyCodec counts calls into an inner codec.
type spyCodec[T any] struct {
	inner   sumcodec.Codec[T]
	encodes *atomic.Int32
	decodes *atomic.Int32
}

func spy[T any](inner sumcodec.Codec[T]) spyCodec[T] {
	return spyCodec[T]{inner: inner, encodes: new(atomic.Int32), decodes: new(atomic.Int32)}
}

func (s spyCodec[T]) Encode(v T) (sumcodec.Bits, error) {
	s.encodes.Add(1)
	return s.inner.Encode(v)
}

func (s spyCodec[T]) Decode(b sumcodec.Bits) (T, sumcodec.Bits, error) {
	s.decodes.Add(1)
	return s.inner.Decode(b)
}

var errBroken = errors.New("broken codec")

// brokenCodec fails every call.
type brokenCodec[T any] struct{}

func (brokenCodec[T]) Encode(T) (sumcodec.Bits, error) { return sumcodec.Bits{}, errBroken }

func (brokenCodec[T]) Decode(sumcodec.Bits) (T, sumcodec.Bits, error) {
	var zero T
	return zero, sumcodec.Bits{}, errBroken
}

// mustPanicWith runs f and returns the recovered error, failing when f does
// not panic with an error.
func mustPanicWith(f func()) (err error) {
	defer func() {
		r := recover()
		if e, ok := r.(error); ok {
			err = e
		}
	}()
	f()
	return nil
}

func mustHex(s string) sumcodec.Bits {
	b, err := sumcodec.FromHex(s)
	if err != nil {
		panic(err)
	}
	return b
}
