// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package sumcodec

import "fmt"

// Either is the canonical two-case sum: a value is either Left or Right.
type Either[L, R any] struct {
	isRight bool
	left    L
	right   R
}

// Left creates a Left value.
func Left[L, R any](l L) Either[L, R] {
	return Either[L, R]{left: l}
}

// Right creates a Right value.
func Right[L, R any](r R) Either[L, R] {
	return Either[L, R]{isRight: true, right: r}
}

// IsRight returns true if this is a Right value.
func (e Either[L, R]) IsRight() bool {
	return e.isRight
}

// IsLeft returns true if this is a Left value.
func (e Either[L, R]) IsLeft() bool {
	return !e.isRight
}

// GetLeft returns the Left value and true, or zero and false.
func (e Either[L, R]) GetLeft() (L, bool) {
	if !e.isRight {
		return e.left, true
	}
	var zero L
	return zero, false
}

// GetRight returns the Right value and true, or zero and false.
func (e Either[L, R]) GetRight() (R, bool) {
	if e.isRight {
		return e.right, true
	}
	var zero R
	return zero, false
}

func (e Either[L, R]) String() string {
	if e.isRight {
		return fmt.Sprintf("Right(%v)", e.right)
	}
	return fmt.Sprintf("Left(%v)", e.left)
}

// EitherCodec builds a discriminated codec for Either with one exact tag
// per side. Left is registered first, so leftTag wins if both tags are equal.
func EitherCodec[L, R any, B comparable](by Codec[B], leftTag, rightTag B, left Codec[L], right Codec[R]) *Discriminated[Either[L, R], B] {
	return DiscriminatedBy[Either[L, R]](by).
		With(NewCase(Exact(leftTag), Either[L, R].GetLeft, Left[L, R], left)).
		With(NewCase(Exact(rightTag), Either[L, R].GetRight, Right[L, R], right))
}
