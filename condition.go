// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package sumcodec

import "fmt"

// Condition decides which decoded tags resolve to a case, and which tag
// the case writes when encoding.
//
// An exact condition matches one tag by equality. A predicate condition
// matches every tag its test accepts and encodes its representative.
type Condition[B comparable] struct {
	tag  B
	test func(B) bool
}

// Exact matches tag by equality.
func Exact[B comparable](tag B) Condition[B] {
	return Condition[B]{tag: tag}
}

// Predicate matches any tag for which test returns true. Encoding writes
// representative, which must itself satisfy test; this is checked when the
// case is registered.
func Predicate[B comparable](representative B, test func(B) bool) Condition[B] {
	if test == nil {
		invariant("predicate condition with nil test")
	}
	return Condition[B]{tag: representative, test: test}
}

// Representative returns the tag written when encoding.
func (c Condition[B]) Representative() B { return c.tag }

// IsExact reports whether c matches by equality only.
func (c Condition[B]) IsExact() bool { return c.test == nil }

// Matches reports whether tag satisfies c.
func (c Condition[B]) Matches(tag B) bool {
	if c.test == nil {
		return tag == c.tag
	}
	return c.test(tag)
}

func (c Condition[B]) String() string {
	if c.test == nil {
		return fmt.Sprintf("exact(%v)", c.tag)
	}
	return fmt.Sprintf("predicate(%v)", c.tag)
}

// consistent reports whether the representative satisfies the condition.
func (c Condition[B]) consistent() bool {
	return c.test == nil || c.test(c.tag)
}
