// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package sumcodec

import (
	"encoding/hex"
	"strings"
)

// Bits is an immutable sequence of bits, packed MSB-first into bytes.
//
// Padding bits past Len in the last byte are always zero, so two Bits
// with equal length and equal packed bytes are equal. Operations never
// write into a backing array once it is owned by a Bits value; slicing
// operations may share storage with their source.
//
// The zero value is the empty sequence.
type Bits struct {
	data []byte
	n    int
}

// FromBytes returns the bits of p, eight per byte. p is copied.
func FromBytes(p []byte) Bits {
	if len(p) == 0 {
		return Bits{}
	}
	data := make([]byte, len(p))
	copy(data, p)
	return Bits{data: data, n: len(p) * 8}
}

// FromHex parses a hexadecimal string into byte-aligned bits.
// Whitespace and an optional 0x prefix are ignored.
func FromHex(s string) (Bits, error) {
	s = strings.Join(strings.Fields(s), "")
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	p, err := hex.DecodeString(s)
	if err != nil {
		return Bits{}, err
	}
	return Bits{data: p, n: len(p) * 8}.normalize(), nil
}

// FromUint returns the low width bits of v, most significant first.
// Panics if width is outside [0, 64].
func FromUint(v uint64, width int) Bits {
	if width < 0 || width > 64 {
		panic("sumcodec: bit width out of range")
	}
	if width == 0 {
		return Bits{}
	}
	data := make([]byte, (width+7)/8)
	for i := range width {
		if v>>(width-1-i)&1 == 1 {
			data[i/8] |= 0x80 >> (i % 8)
		}
	}
	return Bits{data: data, n: width}
}

// Len returns the number of bits.
func (b Bits) Len() int { return b.n }

// IsEmpty reports whether b holds no bits.
func (b Bits) IsEmpty() bool { return b.n == 0 }

// ByteAligned reports whether Len is a multiple of eight.
func (b Bits) ByteAligned() bool { return b.n%8 == 0 }

// Bit returns bit i, counting from the most significant bit of the first byte.
func (b Bits) Bit(i int) bool {
	if i < 0 || i >= b.n {
		panic("sumcodec: bit index out of range")
	}
	return b.data[i/8]&(0x80>>(i%8)) != 0
}

// Uint reads the first width bits as a big-endian unsigned integer.
// Panics if width is outside [0, 64] or exceeds Len.
func (b Bits) Uint(width int) uint64 {
	if width < 0 || width > 64 || width > b.n {
		panic("sumcodec: bit width out of range")
	}
	var v uint64
	if width%8 == 0 {
		for _, x := range b.data[:width/8] {
			v = v<<8 | uint64(x)
		}
		return v
	}
	for i := range width {
		v <<= 1
		if b.data[i/8]&(0x80>>(i%8)) != 0 {
			v |= 1
		}
	}
	return v
}

// Bytes returns a copy of the packed bytes. When Len is not a multiple
// of eight the last byte is zero-padded on the right.
func (b Bits) Bytes() []byte {
	p := make([]byte, len(b.data))
	copy(p, b.data)
	return p
}

// Take returns the first k bits. Panics if k is outside [0, Len].
func (b Bits) Take(k int) Bits {
	checkLength(k, b.n)
	switch {
	case k == b.n:
		return b
	case k == 0:
		return Bits{}
	}
	size := (k + 7) / 8
	if k%8 == 0 {
		return Bits{data: b.data[:size:size], n: k}
	}
	data := make([]byte, size)
	copy(data, b.data[:size])
	data[size-1] &= 0xff << (8 - k%8)
	return Bits{data: data, n: k}
}

// Drop returns b without its first k bits. Panics if k is outside [0, Len].
func (b Bits) Drop(k int) Bits {
	checkLength(k, b.n)
	switch {
	case k == 0:
		return b
	case k == b.n:
		return Bits{}
	case k%8 == 0:
		return Bits{data: b.data[k/8:], n: b.n - k}
	}
	n := b.n - k
	shift := k % 8
	src := b.data[k/8:]
	data := make([]byte, (n+7)/8)
	for i := range data {
		v := src[i] << shift
		if i+1 < len(src) {
			v |= src[i+1] >> (8 - shift)
		}
		data[i] = v
	}
	return Bits{data: data, n: n}
}

// Append returns b followed by o. The result never shares storage with
// the tail of b, so b stays valid for further appends.
func (b Bits) Append(o Bits) Bits {
	switch {
	case o.n == 0:
		return b
	case b.n == 0:
		return o
	}
	n := b.n + o.n
	data := make([]byte, (n+7)/8)
	copy(data, b.data)
	shift := b.n % 8
	if shift == 0 {
		copy(data[len(b.data):], o.data)
		return Bits{data: data, n: n}
	}
	i := b.n / 8
	for _, x := range o.data {
		data[i] |= x >> shift
		if i+1 < len(data) {
			data[i+1] = x << (8 - shift)
		}
		i++
	}
	return Bits{data: data, n: n}
}

// Concat joins parts in order.
func Concat(parts ...Bits) Bits {
	var out Bits
	for _, p := range parts {
		out = out.Append(p)
	}
	return out
}

// Equal reports whether b and o hold the same bits.
func (b Bits) Equal(o Bits) bool {
	if b.n != o.n {
		return false
	}
	for i := range b.data {
		if b.data[i] != o.data[i] {
			return false
		}
	}
	return true
}

// Hex returns the packed bytes as lowercase hexadecimal.
func (b Bits) Hex() string {
	return hex.EncodeToString(b.data)
}

// String renders byte-aligned bits as 0x-prefixed hex and anything else
// as 0b-prefixed binary digits.
func (b Bits) String() string {
	if b.n%8 == 0 {
		return "0x" + b.Hex()
	}
	var sb strings.Builder
	sb.Grow(b.n + 2)
	sb.WriteString("0b")
	for i := range b.n {
		if b.data[i/8]&(0x80>>(i%8)) != 0 {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

func (b Bits) normalize() Bits {
	if len(b.data) == 0 {
		return Bits{}
	}
	return b
}

func checkLength(k, n int) {
	if k < 0 || k > n {
		panic("sumcodec: bit length out of range")
	}
}
