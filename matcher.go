// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package sumcodec

// Strategy identifies how a compiled matcher resolves tags.
type Strategy uint8

const (
	// MatchExact resolves through a hash table. Used when every
	// condition is exact.
	MatchExact Strategy = iota

	// MatchScan resolves by scanning cases in registration order.
	// Used as soon as one condition is a predicate.
	MatchScan
)

func (s Strategy) String() string {
	switch s {
	case MatchExact:
		return "exact"
	case MatchScan:
		return "scan"
	default:
		return "unknown"
	}
}

// matcher resolves a decoded tag to its case. It is compiled once per
// codec value and read-only afterwards.
type matcher[A any, B comparable] struct {
	strategy Strategy
	table    map[B]Case[A, B]
	cases    []Case[A, B]
}

// compileMatcher picks the table strategy when all conditions are exact.
//
// The table is filled from the last case to the first, so when two exact
// cases share a tag the earlier registration overwrites the later one and
// owns the entry. This gives the same first-registration-wins result as
// the scan strategy.
func compileMatcher[A any, B comparable](cases []Case[A, B]) *matcher[A, B] {
	for _, c := range cases {
		if !c.Condition().IsExact() {
			return &matcher[A, B]{strategy: MatchScan, cases: cases}
		}
	}
	table := make(map[B]Case[A, B], len(cases))
	for i := len(cases) - 1; i >= 0; i-- {
		table[cases[i].Condition().Representative()] = cases[i]
	}
	return &matcher[A, B]{strategy: MatchExact, table: table}
}

func (m *matcher[A, B]) resolve(tag B) (Case[A, B], error) {
	if m.strategy == MatchExact {
		if c, ok := m.table[tag]; ok {
			return c, nil
		}
		return nil, &UnknownTagError{Tag: tag}
	}
	for _, c := range m.cases {
		if c.Condition().Matches(tag) {
			return c, nil
		}
	}
	return nil, &UnknownTagError{Tag: tag}
}
