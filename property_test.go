// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package sumcodec_test

import (
	"errors"
	"math/rand/v2"
	"testing"

	"code.hybscloud.com/sumcodec"
	"code.hybscloud.com/sumcodec/codecs"
)

const propertyN = 1000

// randInt32 returns a random int32 in [-1<<20, 1<<20].
func randInt32(rng *rand.Rand) int32 {
	return int32(rng.IntN(1<<21+1) - 1<<20)
}

// randString returns a random ASCII string of length [0, 8].
func randString(rng *rand.Rand) string {
	n := rng.IntN(9)
	b := make([]byte, n)
	for i := range b {
		b[i] = byte(rng.IntN(95) + 32) // printable ASCII
	}
	return string(b)
}

func randMsg(rng *rand.Rand) Msg {
	switch rng.IntN(3) {
	case 0:
		return Ping{}
	case 1:
		return Reading{Value: randInt32(rng)}
	default:
		return Note{Text: randString(rng)}
	}
}

// --- Group 1: Round trip ---

// TestPropertyRoundTrip: Decode(Encode(inject(r))) ≡ (inject(r), empty)
func TestPropertyRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	c := msgCodec()
	for range propertyN {
		m := randMsg(rng)
		bits, err := c.Encode(m)
		if err != nil {
			t.Fatalf("Encode(%#v): %v", m, err)
		}
		got, rest, err := c.Decode(bits)
		if err != nil {
			t.Fatalf("Decode(%#v): %v", m, err)
		}
		if got != m || !rest.IsEmpty() {
			t.Fatalf("round trip: got %#v rest %s, want %#v", got, rest, m)
		}
	}
}

// TestPropertyStreamRoundTrip: back-to-back frames decode in order, at any
// starting bit offset.
func TestPropertyStreamRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	c := sumcodec.DiscriminatedBy[Msg](codecs.Uint(3)).
		With(sumcodec.TypedCase[Msg, Ping](sumcodec.Exact[uint64](0), pingCodec())).
		With(sumcodec.TypedCase[Msg, Reading](sumcodec.Exact[uint64](5), readingCodec())).
		With(sumcodec.TypedCase[Msg, Note](sumcodec.Exact[uint64](6), noteCodec()))
	for range propertyN / 10 {
		want := make([]Msg, rng.IntN(10))
		var stream sumcodec.Bits
		for i := range want {
			want[i] = randMsg(rng)
			bits, err := c.Encode(want[i])
			if err != nil {
				t.Fatalf("Encode: %v", err)
			}
			stream = stream.Append(bits)
		}
		for i := range want {
			got, rest, err := c.Decode(stream)
			if err != nil {
				t.Fatalf("Decode frame %d: %v", i, err)
			}
			if got != want[i] {
				t.Fatalf("frame %d: got %#v, want %#v", i, got, want[i])
			}
			stream = rest
		}
		if !stream.IsEmpty() {
			t.Fatalf("leftover %s", stream)
		}
	}
}

// --- Group 2: Resolution ---

// TestPropertyExactAndScanAgree: for exact-only cases, the table and the
// scan resolve every tag to the same case.
func TestPropertyExactAndScanAgree(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	never := sumcodec.SingletonCase(sumcodec.Predicate[uint8](0, func(b uint8) bool { return b == 0 }), -1)
	for range propertyN / 10 {
		exact := sumcodec.DiscriminatedBy[int](codecs.Uint8())
		for i := range rng.IntN(12) + 1 {
			exact = exact.With(sumcodec.SingletonCase(sumcodec.Exact(uint8(rng.IntN(8)+1)), i))
		}
		// Appending a predicate that only matches tag 0 switches to scanning
		// without changing the answer for tags 1..255.
		scan := exact.With(never)
		if exact.Strategy() != sumcodec.MatchExact || scan.Strategy() != sumcodec.MatchScan {
			t.Fatalf("strategies %v, %v", exact.Strategy(), scan.Strategy())
		}
		for tag := 1; tag <= 9; tag++ {
			a, errA := sumcodec.DecodeValue[int](exact, sumcodec.FromUint(uint64(tag), 8))
			b, errB := sumcodec.DecodeValue[int](scan, sumcodec.FromUint(uint64(tag), 8))
			if a != b || errors.Is(errA, sumcodec.ErrUnknownTag) != errors.Is(errB, sumcodec.ErrUnknownTag) {
				t.Fatalf("tag %d: exact (%d, %v), scan (%d, %v)", tag, a, errA, b, errB)
			}
		}
	}
}

// TestPropertyFirstRegistrationWins: the case index resolved for a tag is
// the smallest index registered with that tag.
func TestPropertyFirstRegistrationWins(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN / 10 {
		n := rng.IntN(16) + 1
		tags := make([]uint8, n)
		c := sumcodec.DiscriminatedBy[int](codecs.Uint8())
		for i := range n {
			tags[i] = uint8(rng.IntN(4))
			c = c.With(sumcodec.SingletonCase(sumcodec.Exact(tags[i]), i))
		}
		for tag := range uint8(4) {
			want := -1
			for i, tg := range tags {
				if tg == tag {
					want = i
					break
				}
			}
			got, err := sumcodec.DecodeValue[int](c, sumcodec.FromUint(uint64(tag), 8))
			if want < 0 {
				if !errors.Is(err, sumcodec.ErrUnknownTag) {
					t.Fatalf("tag %d: got %d, %v; want unknown", tag, got, err)
				}
				continue
			}
			if err != nil || got != want {
				t.Fatalf("tag %d: got %d, %v; want %d", tag, got, err, want)
			}
		}
	}
}

// TestPropertyEitherRoundTrip: Either values survive EitherCodec.
func TestPropertyEitherRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	c := sumcodec.EitherCodec(codecs.Bool(), false, true, codecs.Varint(), codecs.String())
	for range propertyN {
		var e sumcodec.Either[int64, string]
		if rng.IntN(2) == 0 {
			e = sumcodec.Left[int64, string](rng.Int64() - rng.Int64())
		} else {
			e = sumcodec.Right[int64](randString(rng))
		}
		bits, err := c.Encode(e)
		if err != nil {
			t.Fatalf("Encode(%v): %v", e, err)
		}
		got, err := sumcodec.DecodeValue[sumcodec.Either[int64, string]](c, bits)
		if err != nil {
			t.Fatalf("Decode(%v): %v", e, err)
		}
		if got != e {
			t.Fatalf("got %v, want %v", got, e)
		}
	}
}
