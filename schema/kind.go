// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package schema

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"code.hybscloud.com/sumcodec"
	"code.hybscloud.com/sumcodec/codecs"
)

// Kind names the payload codec of a case.
type Kind string

const (
	KindEmpty   Kind = "empty"
	KindBool    Kind = "bool"
	KindUint8   Kind = "uint8"
	KindUint16  Kind = "uint16"
	KindUint32  Kind = "uint32"
	KindUint64  Kind = "uint64"
	KindInt8    Kind = "int8"
	KindInt16   Kind = "int16"
	KindInt32   Kind = "int32"
	KindInt64   Kind = "int64"
	KindUvarint Kind = "uvarint"
	KindVarint  Kind = "varint"
	KindString  Kind = "string"
	KindBytes   Kind = "bytes"
	KindCBOR    Kind = "cbor"
)

// ErrPayloadType reports a Value whose payload does not have the Go type
// of its case's kind.
var ErrPayloadType = errors.New("schema: payload type mismatch")

// ErrBadLiteral reports a payload literal that does not parse as the
// case's kind.
var ErrBadLiteral = errors.New("schema: bad payload literal")

// Kinds lists every payload kind.
func Kinds() []Kind {
	return []Kind{
		KindEmpty, KindBool,
		KindUint8, KindUint16, KindUint32, KindUint64,
		KindInt8, KindInt16, KindInt32, KindInt64,
		KindUvarint, KindVarint,
		KindString, KindBytes, KindCBOR,
	}
}

func (k Kind) valid() bool {
	for _, known := range Kinds() {
		if k == known {
			return true
		}
	}
	return false
}

// codec returns the payload codec for k. Payloads carry these Go types:
//
//	empty   nil
//	bool    bool
//	uintN   uintN, intN intN
//	uvarint uint64, varint int64
//	string  string, bytes []byte
//	cbor    any, as decoded by CBOR (maps are map[string]any)
func (k Kind) codec() sumcodec.Codec[any] {
	switch k {
	case KindEmpty:
		return codecs.Exmap(codecs.Empty(),
			func(struct{}) (any, error) { return nil, nil },
			func(p any) (struct{}, error) {
				if p != nil {
					return struct{}{}, fmt.Errorf("%w: empty payload got %T", ErrPayloadType, p)
				}
				return struct{}{}, nil
			})
	case KindBool:
		return erase[bool](k, codecs.Bool())
	case KindUint8:
		return erase[uint8](k, codecs.Uint8())
	case KindUint16:
		return erase[uint16](k, codecs.Uint16())
	case KindUint32:
		return erase[uint32](k, codecs.Uint32())
	case KindUint64:
		return erase[uint64](k, codecs.Uint64())
	case KindInt8:
		return erase[int8](k, codecs.Int8())
	case KindInt16:
		return erase[int16](k, codecs.Int16())
	case KindInt32:
		return erase[int32](k, codecs.Int32())
	case KindInt64:
		return erase[int64](k, codecs.Int64())
	case KindUvarint:
		return erase[uint64](k, codecs.Uvarint())
	case KindVarint:
		return erase[int64](k, codecs.Varint())
	case KindString:
		return erase[string](k, codecs.String())
	case KindBytes:
		return erase[[]byte](k, codecs.Bytes())
	case KindCBOR:
		return codecs.CBOR[any]()
	}
	panic("schema: unknown payload kind " + strconv.Quote(string(k)))
}

// erase widens a Codec[T] to Codec[any]. Encoding rejects payloads that
// are not a T.
func erase[T any](k Kind, c sumcodec.Codec[T]) sumcodec.Codec[any] {
	return codecs.Exmap(c,
		func(t T) (any, error) { return t, nil },
		func(p any) (T, error) {
			t, ok := p.(T)
			if !ok {
				var zero T
				return zero, fmt.Errorf("%w: %s payload got %T", ErrPayloadType, k, p)
			}
			return t, nil
		})
}

// Parse converts a command line literal into a payload of kind k.
// Integers accept Go prefixes (0x, 0o, 0b), bytes are hex, and cbor
// literals are YAML or JSON documents.
func (k Kind) Parse(text string) (any, error) {
	bad := func(err error) error {
		return fmt.Errorf("%w: %s %q: %v", ErrBadLiteral, k, text, err)
	}
	switch k {
	case KindEmpty:
		if strings.TrimSpace(text) != "" {
			return nil, bad(errors.New("empty payload takes no value"))
		}
		return nil, nil
	case KindBool:
		v, err := strconv.ParseBool(text)
		if err != nil {
			return nil, bad(err)
		}
		return v, nil
	case KindUint8, KindUint16, KindUint32, KindUint64, KindUvarint:
		v, err := strconv.ParseUint(text, 0, k.bitSize())
		if err != nil {
			return nil, bad(err)
		}
		switch k {
		case KindUint8:
			return uint8(v), nil
		case KindUint16:
			return uint16(v), nil
		case KindUint32:
			return uint32(v), nil
		}
		return v, nil
	case KindInt8, KindInt16, KindInt32, KindInt64, KindVarint:
		v, err := strconv.ParseInt(text, 0, k.bitSize())
		if err != nil {
			return nil, bad(err)
		}
		switch k {
		case KindInt8:
			return int8(v), nil
		case KindInt16:
			return int16(v), nil
		case KindInt32:
			return int32(v), nil
		}
		return v, nil
	case KindString:
		return text, nil
	case KindBytes:
		b, err := sumcodec.FromHex(text)
		if err != nil {
			return nil, bad(err)
		}
		return b.Bytes(), nil
	case KindCBOR:
		var v any
		if err := yaml.Unmarshal([]byte(text), &v); err != nil {
			return nil, bad(err)
		}
		if err := stringKeys(v); err != nil {
			return nil, bad(err)
		}
		return v, nil
	}
	return nil, fmt.Errorf("%w: unknown kind %q", ErrBadLiteral, k)
}

// stringKeys rejects maps keyed by anything but strings. CBOR payloads
// decode maps as map[string]any, so such a value would not round-trip.
func stringKeys(v any) error {
	switch v := v.(type) {
	case map[string]any:
		for _, e := range v {
			if err := stringKeys(e); err != nil {
				return err
			}
		}
	case map[any]any:
		for k := range v {
			if _, ok := k.(string); !ok {
				return fmt.Errorf("map key %v is not a string", k)
			}
		}
		return errors.New("map keys must be strings")
	case []any:
		for _, e := range v {
			if err := stringKeys(e); err != nil {
				return err
			}
		}
	}
	return nil
}

func (k Kind) bitSize() int {
	switch k {
	case KindUint8, KindInt8:
		return 8
	case KindUint16, KindInt16:
		return 16
	case KindUint32, KindInt32:
		return 32
	}
	return 64
}

// ParseValue builds the Value of case name from a payload literal.
func (s *Schema) ParseValue(name, text string) (Value, error) {
	c, ok := s.Lookup(name)
	if !ok {
		return Value{}, fmt.Errorf("schema: no case named %q", name)
	}
	p, err := c.Payload.Parse(text)
	if err != nil {
		return Value{}, err
	}
	return Value{Case: name, Payload: p}, nil
}

// FormatValue renders v as its case name followed by the payload, if any.
// Bytes print as hex and strings quoted.
func FormatValue(v Value) string {
	switch p := v.Payload.(type) {
	case nil:
		return v.Case
	case []byte:
		return v.Case + " " + sumcodec.FromBytes(p).Hex()
	case string:
		return v.Case + " " + strconv.Quote(p)
	default:
		return fmt.Sprintf("%s %v", v.Case, p)
	}
}
