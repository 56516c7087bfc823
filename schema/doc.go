// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package schema describes discriminated codecs in YAML and compiles them
// into [sumcodec.Discriminated] values over dynamic [Value]s.
//
// A schema names a tag codec and an ordered list of cases. Each case owns
// either one exact tag or an inclusive tag range, and names the kind of
// payload that follows the tag:
//
//	name: sensor-frames
//	tag: uint8
//	cases:
//	  - name: ping
//	    tag: 0
//	    payload: empty
//	  - name: vendor
//	    range: {min: 128, max: 255}
//	    representative: 200
//	    payload: bytes
//
// Ranges compile to predicate conditions, so a schema with any range is
// decoded by scanning cases in order.
package schema
