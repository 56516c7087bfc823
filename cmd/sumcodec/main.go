// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// sumcodec describes tagged-union schemas and encodes or decodes frames
// with them.
//
//	sumcodec describe --schema FILE
//	sumcodec decode   --schema FILE [--json] [HEX...]
//	sumcodec encode   --schema FILE --case NAME [--value LITERAL]
//
// decode reads hex from its arguments, one input per argument, or from
// stdin when there are none, and prints one line per frame. encode prints
// the frame as lowercase hex.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"code.hybscloud.com/sumcodec/internal/config"
	"code.hybscloud.com/sumcodec/internal/logging"
	"code.hybscloud.com/sumcodec/schema"
)

// version is set at link time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// command is one subcommand. flags registers its own flags; exec runs it
// once configuration, logging and the schema are ready.
type command struct {
	summary string
	flags   func(fs *pflag.FlagSet)
	exec    func(e *env, args []string) error
}

var commands = map[string]command{
	"describe": {
		summary: "print the cases of a schema",
		exec:    describe,
	},
	"decode": {
		summary: "decode hex frames",
		flags: func(fs *pflag.FlagSet) {
			fs.Bool("json", false, "print frames as JSON lines (same as --output json)")
			fs.String("output", "text", "frame output format: text or json")
		},
		exec: decode,
	},
	"encode": {
		summary: "encode one value",
		flags: func(fs *pflag.FlagSet) {
			fs.String("case", "", "case name (required)")
			fs.String("value", "", "payload literal for the case's kind")
		},
		exec: encode,
	},
}

// env is what a subcommand runs against.
type env struct {
	flags  *pflag.FlagSet
	cfg    *config.Config
	logger *zap.Logger
	schema *schema.Schema
	stdin  io.Reader
	stdout io.Writer
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	if len(args) == 0 {
		printUsage(stderr)
		return fmt.Errorf("missing command")
	}
	switch args[0] {
	case "--version", "version":
		fmt.Fprintf(stdout, "sumcodec %s\n", version)
		return nil
	case "-h", "--help", "help":
		printUsage(stdout)
		return nil
	}

	name := args[0]
	cmd, ok := commands[name]
	if !ok {
		printUsage(stderr)
		return fmt.Errorf("unknown command %q", name)
	}

	fs := pflag.NewFlagSet("sumcodec "+name, pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	configPath := fs.String("config", "", "configuration file (default: ./sumcodec.yaml)")
	fs.String("schema", "", "schema file")
	fs.String("log-level", "warn", "log level: debug, info, warn, error")
	fs.String("log-format", "console", "log format: console or json")
	fs.BoolP("help", "h", false, "show help")
	if cmd.flags != nil {
		cmd.flags(fs)
	}

	if err := fs.Parse(args[1:]); err != nil {
		if err == pflag.ErrHelp {
			printCommandHelp(stdout, name, cmd, fs)
			return nil
		}
		return err
	}
	if help, _ := fs.GetBool("help"); help {
		printCommandHelp(stdout, name, cmd, fs)
		return nil
	}

	cfg, err := config.Load(*configPath, fs)
	if err != nil {
		return err
	}
	logger, closeLog, err := logging.Setup(cfg.Log)
	if err != nil {
		return err
	}
	defer closeLog()

	if cfg.Schema == "" {
		return fmt.Errorf("no schema: pass --schema or set schema in the configuration")
	}
	s, err := schema.Load(cfg.Schema)
	if err != nil {
		return err
	}
	logger.Debug("schema loaded",
		zap.String("path", cfg.Schema),
		zap.String("name", s.Name),
		zap.Stringer("fingerprint", s.Fingerprint()),
		zap.Int("cases", len(s.Cases)),
	)

	return cmd.exec(&env{
		flags:  fs,
		cfg:    cfg,
		logger: logger.Named(name),
		schema: s,
		stdin:  stdin,
		stdout: stdout,
	}, fs.Args())
}

func printUsage(w io.Writer) {
	fmt.Fprintf(w, `sumcodec encodes and decodes tagged-union frames described by a YAML schema.

Usage:
  sumcodec <command> --schema FILE [flags] [args]

Commands:
  describe   %s
  decode     %s
  encode     %s

Run "sumcodec <command> --help" for the flags of a command.
Environment variables SUMCODEC_* override the configuration file.
`, commands["describe"].summary, commands["decode"].summary, commands["encode"].summary)
}

func printCommandHelp(w io.Writer, name string, cmd command, fs *pflag.FlagSet) {
	fmt.Fprintf(w, "sumcodec %s: %s\n\nFlags:\n%s", name, cmd.summary, fs.FlagUsages())
}
