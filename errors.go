// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package sumcodec

import (
	"errors"
	"fmt"
)

var (
	// ErrInvariant is wrapped by the panics raised while a codec is being
	// assembled incorrectly. It never comes back as a returned error.
	ErrInvariant = errors.New("sumcodec: invariant violation")

	// ErrUnknownTag reports a decoded tag that resolves to no case.
	ErrUnknownTag = errors.New("sumcodec: unknown discrimination tag")

	// ErrNoMatchingCase reports a value that no case extractor accepts.
	ErrNoMatchingCase = errors.New("sumcodec: no matching case")

	// ErrTrailingBits reports input left over after a complete value.
	ErrTrailingBits = errors.New("sumcodec: trailing bits")
)

// UnknownTagError carries the tag value that failed to resolve.
// It matches ErrUnknownTag under errors.Is.
type UnknownTagError struct {
	Tag any
}

func (e *UnknownTagError) Error() string {
	return fmt.Sprintf("sumcodec: unknown discrimination tag %v", e.Tag)
}

func (e *UnknownTagError) Is(target error) bool { return target == ErrUnknownTag }

// NoMatchingCaseError carries the value rejected by every case.
// It matches ErrNoMatchingCase under errors.Is.
type NoMatchingCaseError struct {
	Value any
}

func (e *NoMatchingCaseError) Error() string {
	return fmt.Sprintf("sumcodec: could not find matching case for %v", e.Value)
}

func (e *NoMatchingCaseError) Is(target error) bool { return target == ErrNoMatchingCase }

// TrailingBitsError carries the unread remainder. It matches
// ErrTrailingBits under errors.Is.
type TrailingBitsError struct {
	Remainder Bits
}

func (e *TrailingBitsError) Error() string {
	return fmt.Sprintf("sumcodec: %d trailing bits after value: %v", e.Remainder.Len(), e.Remainder)
}

func (e *TrailingBitsError) Is(target error) bool { return target == ErrTrailingBits }

// invariant panics with an error wrapping ErrInvariant.
// Kept out of line so that the checked constructors stay small.
//
//go:noinline
func invariant(format string, args ...any) {
	panic(fmt.Errorf("%w: %s", ErrInvariant, fmt.Sprintf(format, args...)))
}
