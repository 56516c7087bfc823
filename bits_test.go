// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package sumcodec_test

import (
	"bytes"
	"math/rand/v2"
	"testing"

	"code.hybscloud.com/sumcodec"
)

func TestBitsZeroValue(t *testing.T) {
	var b sumcodec.Bits
	if !b.IsEmpty() || b.Len() != 0 {
		t.Fatalf("zero Bits: len %d, want 0", b.Len())
	}
	if !b.Equal(sumcodec.FromBytes(nil)) {
		t.Fatal("zero Bits not equal to FromBytes(nil)")
	}
	if got := b.String(); got != "0x" {
		t.Fatalf("got %q, want %q", got, "0x")
	}
}

func TestBitsFromUint(t *testing.T) {
	tests := []struct {
		v     uint64
		width int
		want  string
	}{
		{0, 1, "0b0"},
		{1, 1, "0b1"},
		{5, 3, "0b101"},
		{5, 8, "0x05"},
		{0xabc, 12, "0b101010111100"},
		{0xdeadbeef, 32, "0xdeadbeef"},
		{^uint64(0), 64, "0xffffffffffffffff"},
	}
	for _, tt := range tests {
		b := sumcodec.FromUint(tt.v, tt.width)
		if got := b.String(); got != tt.want {
			t.Errorf("FromUint(%d, %d) = %s, want %s", tt.v, tt.width, got, tt.want)
		}
		if got := b.Uint(tt.width); got != tt.v {
			t.Errorf("FromUint(%d, %d).Uint = %d", tt.v, tt.width, got)
		}
	}
}

func TestBitsFromUintTruncatesHighBits(t *testing.T) {
	b := sumcodec.FromUint(0x1ff, 8)
	if got := b.Uint(8); got != 0xff {
		t.Fatalf("got %#x, want 0xff", got)
	}
}

func TestBitsFromHex(t *testing.T) {
	b, err := sumcodec.FromHex("0x de ad\nbe ef")
	if err != nil {
		t.Fatalf("FromHex: %v", err)
	}
	if !bytes.Equal(b.Bytes(), []byte{0xde, 0xad, 0xbe, 0xef}) {
		t.Fatalf("got %x", b.Bytes())
	}
	if _, err := sumcodec.FromHex("abc"); err == nil {
		t.Fatal("expected error for odd-length hex")
	}
	if _, err := sumcodec.FromHex("zz"); err == nil {
		t.Fatal("expected error for invalid hex")
	}
}

func TestBitsAppendUnaligned(t *testing.T) {
	a := sumcodec.FromUint(0b101, 3)
	b := sumcodec.FromUint(0b11001, 5)
	got := a.Append(b)
	if got.String() != "0xb9" {
		t.Fatalf("got %s, want 0xb9", got)
	}

	c := sumcodec.FromUint(0b1, 1).Append(sumcodec.FromBytes([]byte{0xff, 0x00}))
	if c.Len() != 17 || c.String() != "0b11111111100000000" {
		t.Fatalf("got %s (len %d)", c, c.Len())
	}
}

func TestBitsAppendDoesNotAlias(t *testing.T) {
	base := sumcodec.FromUint(0b1, 1)
	x := base.Append(sumcodec.FromUint(0b0, 1))
	y := base.Append(sumcodec.FromUint(0b1, 1))
	if x.String() != "0b10" || y.String() != "0b11" {
		t.Fatalf("got %s and %s", x, y)
	}
	if base.String() != "0b1" {
		t.Fatalf("receiver changed: %s", base)
	}
}

func TestBitsTakeDrop(t *testing.T) {
	b := sumcodec.FromBytes([]byte{0xa5, 0x3c})
	if got := b.Take(4).String(); got != "0b1010" {
		t.Fatalf("Take(4) = %s", got)
	}
	if got := b.Drop(4).String(); got != "0b010100111100" {
		t.Fatalf("Drop(4) = %s", got)
	}
	if got := b.Drop(8).String(); got != "0x3c" {
		t.Fatalf("Drop(8) = %s", got)
	}
	if got := b.Take(8).String(); got != "0xa5" {
		t.Fatalf("Take(8) = %s", got)
	}
	if !b.Drop(16).IsEmpty() || !b.Take(0).IsEmpty() {
		t.Fatal("expected empty results")
	}
	if !b.Take(16).Equal(b) || !b.Drop(0).Equal(b) {
		t.Fatal("expected identity results")
	}
}

func TestBitsTakeClearsPadding(t *testing.T) {
	b := sumcodec.FromBytes([]byte{0xff})
	taken := b.Take(3)
	if !taken.Equal(sumcodec.FromUint(0b111, 3)) {
		t.Fatalf("got %x, want e0 padding cleared", taken.Bytes())
	}
	if taken.Bytes()[0] != 0xe0 {
		t.Fatalf("got %#x, want 0xe0", taken.Bytes()[0])
	}
}

func TestBitsOutOfRangePanics(t *testing.T) {
	b := sumcodec.FromUint(0, 4)
	cases := map[string]func(){
		"Take":     func() { b.Take(5) },
		"Drop":     func() { b.Drop(-1) },
		"Bit":      func() { b.Bit(4) },
		"Uint":     func() { b.Uint(5) },
		"FromUint": func() { sumcodec.FromUint(0, 65) },
	}
	for name, f := range cases {
		t.Run(name, func(t *testing.T) {
			defer func() {
				if r := recover(); r == nil {
					t.Fatal("expected panic")
				}
			}()
			f()
		})
	}
}

func TestBitsEqual(t *testing.T) {
	if sumcodec.FromUint(1, 3).Equal(sumcodec.FromUint(1, 4)) {
		t.Fatal("different lengths compared equal")
	}
	if !sumcodec.FromUint(6, 3).Equal(sumcodec.FromBytes([]byte{0xc0}).Take(3)) {
		t.Fatal("same bits compared unequal")
	}
}

func TestBitsConcat(t *testing.T) {
	got := sumcodec.Concat(sumcodec.FromUint(1, 1), sumcodec.Bits{}, sumcodec.FromUint(0, 3), sumcodec.FromUint(0xf, 4))
	if got.String() != "0x8f" {
		t.Fatalf("got %s, want 0x8f", got)
	}
}

// TestPropertyBitsSplit: Take(k) ++ Drop(k) ≡ b
func TestPropertyBitsSplit(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		b := randBits(rng, 70)
		k := rng.IntN(b.Len() + 1)
		if got := b.Take(k).Append(b.Drop(k)); !got.Equal(b) {
			t.Fatalf("split at %d: %s != %s", k, got, b)
		}
	}
}

// TestPropertyBitsAppendAssociative: (a ++ b) ++ c ≡ a ++ (b ++ c)
func TestPropertyBitsAppendAssociative(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		a, b, c := randBits(rng, 20), randBits(rng, 20), randBits(rng, 20)
		left := a.Append(b).Append(c)
		right := a.Append(b.Append(c))
		if !left.Equal(right) {
			t.Fatalf("associativity: %s != %s", left, right)
		}
		if left.Len() != a.Len()+b.Len()+c.Len() {
			t.Fatalf("length %d, want %d", left.Len(), a.Len()+b.Len()+c.Len())
		}
	}
}

// randBits returns a random sequence of [0, maxLen] bits.
func randBits(rng *rand.Rand, maxLen int) sumcodec.Bits {
	n := rng.IntN(maxLen + 1)
	var b sumcodec.Bits
	for n > 0 {
		w := min(n, 64)
		b = b.Append(sumcodec.FromUint(rng.Uint64(), w))
		n -= w
	}
	return b
}
