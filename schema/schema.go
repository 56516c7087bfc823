// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package schema

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"code.hybscloud.com/sumcodec"
	"code.hybscloud.com/sumcodec/codecs"
)

// ErrInvalidSchema is wrapped by every validation error.
var ErrInvalidSchema = errors.New("schema: invalid")

// Schema is a parsed schema document.
type Schema struct {
	Name  string `yaml:"name"`
	Tag   string `yaml:"tag"`
	Cases []Case `yaml:"cases"`
}

// Case is one entry of the cases list. Exactly one of Tag and Range is set.
type Case struct {
	Name           string  `yaml:"name"`
	Tag            *uint64 `yaml:"tag,omitempty"`
	Range          *Range  `yaml:"range,omitempty"`
	Representative *uint64 `yaml:"representative,omitempty"`
	Payload        Kind    `yaml:"payload"`
}

// Range is an inclusive tag interval.
type Range struct {
	Min uint64 `yaml:"min"`
	Max uint64 `yaml:"max"`
}

// Contains reports whether min <= tag <= max.
func (r Range) Contains(tag uint64) bool { return r.Min <= tag && tag <= r.Max }

// Value is a decoded frame: the name of the case that owns the tag and
// the payload decoded by that case's kind.
type Value struct {
	Case    string
	Payload any
}

// Parse decodes and validates a schema document. Unknown fields are
// rejected.
func Parse(data []byte) (*Schema, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	var s Schema
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("schema: parse: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Load reads and parses the schema file at path.
func Load(path string) (*Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("schema: %w", err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Validate checks the schema and returns every problem found, joined.
func (s *Schema) Validate() error {
	var errs []error
	invalid := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: %s", ErrInvalidSchema, fmt.Sprintf(format, args...)))
	}

	width, tagErr := tagWidth(s.Tag)
	if tagErr != nil {
		invalid("%v", tagErr)
	}
	if len(s.Cases) == 0 {
		invalid("no cases")
	}
	limit := maxTag(width)

	seen := make(map[string]bool, len(s.Cases))
	for i, c := range s.Cases {
		label := c.Name
		if label == "" {
			label = "#" + strconv.Itoa(i)
			invalid("case %s: empty name", label)
		} else if seen[c.Name] {
			invalid("case %q: duplicate name", c.Name)
		}
		seen[c.Name] = true

		if !c.Payload.valid() {
			invalid("case %s: unknown payload kind %q", label, c.Payload)
		}
		switch {
		case c.Tag != nil && c.Range != nil:
			invalid("case %s: both tag and range set", label)
		case c.Tag == nil && c.Range == nil:
			invalid("case %s: neither tag nor range set", label)
		case c.Tag != nil:
			if c.Representative != nil {
				invalid("case %s: representative requires a range", label)
			}
			if tagErr == nil && *c.Tag > limit {
				invalid("case %s: tag %d does not fit %s", label, *c.Tag, s.Tag)
			}
		default:
			r := *c.Range
			if r.Min > r.Max {
				invalid("case %s: range min %d > max %d", label, r.Min, r.Max)
				continue
			}
			if tagErr == nil && r.Max > limit {
				invalid("case %s: range max %d does not fit %s", label, r.Max, s.Tag)
			}
			if c.Representative != nil && !r.Contains(*c.Representative) {
				invalid("case %s: representative %d outside [%d, %d]", label, *c.Representative, r.Min, r.Max)
			}
		}
	}
	return errors.Join(errs...)
}

// Lookup returns the case named name.
func (s *Schema) Lookup(name string) (Case, bool) {
	for _, c := range s.Cases {
		if c.Name == name {
			return c, true
		}
	}
	return Case{}, false
}

// Condition returns the tag condition of c: exact for a single tag, a
// range predicate otherwise. It fails unless exactly one of Tag and Range
// is set.
func (c Case) Condition() (sumcodec.Condition[uint64], error) {
	switch {
	case c.Tag != nil && c.Range != nil:
		return sumcodec.Condition[uint64]{}, fmt.Errorf("%w: case %q: both tag and range set", ErrInvalidSchema, c.Name)
	case c.Tag != nil:
		return sumcodec.Exact(*c.Tag), nil
	case c.Range == nil:
		return sumcodec.Condition[uint64]{}, fmt.Errorf("%w: case %q: neither tag nor range set", ErrInvalidSchema, c.Name)
	}
	r := *c.Range
	rep := r.Min
	if c.Representative != nil {
		rep = *c.Representative
	}
	return sumcodec.Predicate(rep, r.Contains), nil
}

// Compile builds the discriminated codec for s. Cases are registered in
// document order.
func (s *Schema) Compile() (*sumcodec.Discriminated[Value, uint64], error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	tag, err := s.tagCodec()
	if err != nil {
		return nil, err
	}
	d := sumcodec.DiscriminatedBy[Value](tag)
	for _, c := range s.Cases {
		sc, err := c.compile()
		if err != nil {
			return nil, err
		}
		d = d.With(sc)
	}
	return d, nil
}

func (c Case) compile() (sumcodec.Case[Value, uint64], error) {
	cond, err := c.Condition()
	if err != nil {
		return nil, err
	}
	name := c.Name
	return sumcodec.NewCase(cond,
		func(v Value) (any, bool) { return v.Payload, v.Case == name },
		func(p any) Value { return Value{Case: name, Payload: p} },
		c.Payload.codec(),
	), nil
}

func (s *Schema) tagCodec() (sumcodec.Codec[uint64], error) {
	if s.Tag == "uvarint" {
		return codecs.Uvarint(), nil
	}
	width, err := tagWidth(s.Tag)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSchema, err)
	}
	return codecs.Uint(width), nil
}

// tagWidth returns the bit width of a fixed-width tag kind, or 64 for
// uvarint.
func tagWidth(kind string) (int, error) {
	switch kind {
	case "uint8":
		return 8, nil
	case "uint16":
		return 16, nil
	case "uint32":
		return 32, nil
	case "uint64", "uvarint":
		return 64, nil
	}
	if n, ok := strings.CutPrefix(kind, "bits:"); ok {
		w, err := strconv.Atoi(n)
		if err != nil || w < 1 || w > 64 {
			return 0, fmt.Errorf("tag width %q not in [1, 64]", n)
		}
		return w, nil
	}
	return 0, fmt.Errorf("unknown tag kind %q", kind)
}

func maxTag(width int) uint64 {
	if width <= 0 || width >= 64 {
		return ^uint64(0)
	}
	return 1<<width - 1
}
