// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package codecs provides concrete tag and payload codecs for
// [code.hybscloud.com/sumcodec].
//
// Fixed-width integers work at any bit offset and any width up to 64.
// Variable-length integers and length prefixes use the protobuf varint
// encoding from [google.golang.org/protobuf/encoding/protowire]. Their
// encoded form is always whole bytes, but decoding accepts input that
// starts at any bit offset.
//
// Structured payloads:
//
//   - [CBOR]: deterministic CBOR (RFC 8949 §4.2.1), self-delimiting
//   - [Proto]: length-delimited protobuf messages
//
// Combinators:
//
//   - [Xmap], [Exmap]: transform a codec's value type
//   - [Optional]: presence flag followed by an optional value, built on
//     [code.hybscloud.com/sumcodec.Discriminated]
//
// Truncated input is reported with [ErrInsufficientBits]; values that do
// not fit a codec's width with [ErrOutOfRange].
package codecs
