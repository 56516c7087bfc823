// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"go.uber.org/zap"

	"code.hybscloud.com/sumcodec"
	"code.hybscloud.com/sumcodec/schema"
)

func describe(e *env, args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("describe: unexpected argument %q", args[0])
	}
	codec, err := e.schema.Compile()
	if err != nil {
		return err
	}
	s := e.schema
	fmt.Fprintf(e.stdout, "schema:      %s\n", s.Name)
	fmt.Fprintf(e.stdout, "fingerprint: %s\n", s.Fingerprint())
	fmt.Fprintf(e.stdout, "tag:         %s\n", s.Tag)
	fmt.Fprintf(e.stdout, "matcher:     %s\n\n", codec.Strategy())

	tw := tabwriter.NewWriter(e.stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "CASE\tCONDITION\tPAYLOAD")
	for _, c := range s.Cases {
		cond, err := c.Condition()
		if err != nil {
			return err
		}
		text := cond.String()
		if c.Range != nil {
			text = fmt.Sprintf("%s [%d, %d]", text, c.Range.Min, c.Range.Max)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", c.Name, text, c.Payload)
	}
	return tw.Flush()
}

func encode(e *env, args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("encode: unexpected argument %q", args[0])
	}
	name, _ := e.flags.GetString("case")
	if name == "" {
		return fmt.Errorf("encode: --case is required")
	}
	text, _ := e.flags.GetString("value")

	codec, err := e.schema.Compile()
	if err != nil {
		return err
	}
	v, err := e.schema.ParseValue(name, text)
	if err != nil {
		return err
	}
	bits, err := codec.Encode(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", name, err)
	}
	e.logger.Debug("encoded", zap.String("case", name), zap.Int("bits", bits.Len()))
	_, err = fmt.Fprintln(e.stdout, bits.Hex())
	return err
}

func decode(e *env, args []string) error {
	if asJSON, _ := e.flags.GetBool("json"); asJSON {
		e.cfg.Output.Format = "json"
	}
	codec, err := e.schema.Compile()
	if err != nil {
		return err
	}

	inputs := args
	if len(inputs) == 0 {
		data, err := io.ReadAll(e.stdin)
		if err != nil {
			return fmt.Errorf("decode: read stdin: %w", err)
		}
		inputs = []string{string(data)}
	}

	out := frameWriter(e.stdout, e.cfg.Output.Format)
	for i, in := range inputs {
		if strings.TrimSpace(in) == "" {
			continue
		}
		bits, err := sumcodec.FromHex(in)
		if err != nil {
			return fmt.Errorf("decode: input %d: %w", i, err)
		}
		n, err := decodeFrames(codec, bits, out)
		if err != nil {
			e.logger.Warn("decode failed",
				zap.Int("input", i),
				zap.Int("frame", n),
				zap.Error(err),
			)
			return fmt.Errorf("decode: input %d frame %d: %w", i, n, err)
		}
		e.logger.Debug("input decoded", zap.Int("input", i), zap.Int("frames", n))
	}
	return nil
}

// decodeFrames decodes back-to-back frames until fewer than eight zero
// bits remain, and returns how many it wrote.
func decodeFrames(codec sumcodec.Codec[schema.Value], bits sumcodec.Bits, out func(schema.Value, int) error) (int, error) {
	n := 0
	for !isPadding(bits) {
		start := bits.Len()
		v, rest, err := codec.Decode(bits)
		if err != nil {
			return n, err
		}
		if err := out(v, start-rest.Len()); err != nil {
			return n, err
		}
		bits = rest
		n++
	}
	return n, nil
}

func isPadding(b sumcodec.Bits) bool {
	return b.Len() < 8 && b.Equal(sumcodec.FromUint(0, b.Len()))
}

type jsonFrame struct {
	Case    string `json:"case"`
	Payload any    `json:"payload,omitempty"`
	Bits    int    `json:"bits"`
}

func frameWriter(w io.Writer, format string) func(schema.Value, int) error {
	if format == "json" {
		enc := json.NewEncoder(w)
		return func(v schema.Value, size int) error {
			p := v.Payload
			if raw, ok := p.([]byte); ok {
				p = sumcodec.FromBytes(raw).Hex()
			}
			return enc.Encode(jsonFrame{Case: v.Case, Payload: p, Bits: size})
		}
	}
	return func(v schema.Value, _ int) error {
		_, err := fmt.Fprintln(w, schema.FormatValue(v))
		return err
	}
}
