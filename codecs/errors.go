// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package codecs

import (
	"errors"
	"fmt"

	"code.hybscloud.com/sumcodec"
)

var (
	// ErrInsufficientBits reports input shorter than the value being decoded.
	ErrInsufficientBits = errors.New("codecs: insufficient bits")

	// ErrOutOfRange reports a value that cannot be represented by a codec.
	ErrOutOfRange = errors.New("codecs: value out of range")

	// ErrConstantMismatch reports input that does not start with the
	// expected constant.
	ErrConstantMismatch = errors.New("codecs: constant mismatch")

	// ErrInvalidUTF8 reports a string payload that is not valid UTF-8.
	ErrInvalidUTF8 = errors.New("codecs: invalid UTF-8")
)

func insufficient(need, have int) error {
	return fmt.Errorf("%w: need %d, have %d", ErrInsufficientBits, need, have)
}

// wholeBytes returns the complete leading bytes of b, at most limit of them
// when limit is positive.
func wholeBytes(b sumcodec.Bits, limit int) []byte {
	n := b.Len() / 8
	if limit > 0 && n > limit {
		n = limit
	}
	return b.Take(n * 8).Bytes()
}
