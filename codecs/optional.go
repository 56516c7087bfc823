// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package codecs

import "code.hybscloud.com/sumcodec"

// Optional encodes a nil pointer as the presence flag false, and a non-nil
// pointer as true followed by the pointed-to value encoded with c.
// The flag is written with present, usually [Bool].
func Optional[T any](present sumcodec.Codec[bool], c sumcodec.Codec[T]) *sumcodec.Discriminated[*T, bool] {
	return sumcodec.DiscriminatedBy[*T](present).
		With(sumcodec.SingletonCase[*T](sumcodec.Exact(false), nil)).
		With(sumcodec.NewCase(sumcodec.Exact(true), deref[T], ref[T], c))
}

func deref[T any](p *T) (T, bool) {
	if p == nil {
		var zero T
		return zero, false
	}
	return *p, true
}

func ref[T any](v T) *T { return &v }
