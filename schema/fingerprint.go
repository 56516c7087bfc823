// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package schema

import (
	"encoding/hex"
	"fmt"

	"github.com/zeebo/blake3"
)

// Fingerprint is the BLAKE3-256 digest of a schema's canonical form.
type Fingerprint [32]byte

// String returns the digest as lowercase hex.
func (f Fingerprint) String() string { return hex.EncodeToString(f[:]) }

// Short returns the first 8 bytes of the digest as hex.
func (f Fingerprint) Short() string { return hex.EncodeToString(f[:8]) }

// Fingerprint digests the wire-relevant parts of s: the tag kind and, in
// order, each case's name, condition and payload kind. The schema name
// and representative defaults spelled out or omitted do not change it.
func (s *Schema) Fingerprint() Fingerprint {
	h := blake3.New()
	fmt.Fprintf(h, "tag %s\n", s.Tag)
	for _, c := range s.Cases {
		if c.Tag != nil {
			fmt.Fprintf(h, "case %q exact %d %s\n", c.Name, *c.Tag, c.Payload)
			continue
		}
		if c.Range == nil {
			fmt.Fprintf(h, "case %q unset %s\n", c.Name, c.Payload)
			continue
		}
		rep := c.Range.Min
		if c.Representative != nil {
			rep = *c.Representative
		}
		fmt.Fprintf(h, "case %q range %d %d %d %s\n", c.Name, c.Range.Min, c.Range.Max, rep, c.Payload)
	}
	var f Fingerprint
	copy(f[:], h.Sum(nil))
	return f
}
