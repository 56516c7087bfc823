// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package logging builds the command line logger.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"code.hybscloud.com/sumcodec/internal/config"
)

// Setup builds a zap.Logger from c. stdout and stderr name the process
// streams; any other output is a file path, rotated when c.Rotation is
// enabled. The returned close function syncs the logger and releases files.
func Setup(c config.LogConfig) (*zap.Logger, func(), error) {
	return setup(c, os.Stdout, os.Stderr)
}

func setup(c config.LogConfig, stdout, stderr io.Writer) (*zap.Logger, func(), error) {
	level, err := zapcore.ParseLevel(c.Level)
	if err != nil {
		return nil, nil, fmt.Errorf("logging: %w", err)
	}

	encCfg := encoderConfig(c.Development)
	var encoder zapcore.Encoder
	if strings.EqualFold(c.Format, "json") {
		encoder = zapcore.NewJSONEncoder(encCfg)
	} else {
		encoder = zapcore.NewConsoleEncoder(encCfg)
	}

	var (
		cores   []zapcore.Core
		closers []io.Closer
	)
	closeAll := func() {
		for _, cl := range closers {
			_ = cl.Close()
		}
	}
	for _, out := range c.Outputs {
		var ws zapcore.WriteSyncer
		switch strings.ToLower(out) {
		case "stdout":
			ws = zapcore.AddSync(stdout)
		case "stderr":
			ws = zapcore.AddSync(stderr)
		default:
			if dir := filepath.Dir(out); dir != "." {
				if err := os.MkdirAll(dir, 0o755); err != nil {
					closeAll()
					return nil, nil, fmt.Errorf("logging: %w", err)
				}
			}
			if c.Rotation.Enable {
				lj := &lumberjack.Logger{
					Filename:   out,
					MaxSize:    max(c.Rotation.MaxSizeMB, 1),
					MaxBackups: c.Rotation.MaxBackups,
					MaxAge:     c.Rotation.MaxAgeDays,
					Compress:   c.Rotation.Compress,
				}
				closers = append(closers, lj)
				ws = zapcore.AddSync(lj)
			} else {
				f, err := os.OpenFile(out, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
				if err != nil {
					closeAll()
					return nil, nil, fmt.Errorf("logging: %w", err)
				}
				closers = append(closers, f)
				ws = zapcore.AddSync(f)
			}
		}
		cores = append(cores, zapcore.NewCore(encoder, ws, level))
	}

	opts := []zap.Option{
		zap.AddCaller(),
		zap.AddStacktrace(zap.ErrorLevel),
	}
	if c.Development {
		opts = append(opts, zap.Development())
	}
	logger := zap.New(zapcore.NewTee(cores...), opts...)
	return logger, func() {
		_ = logger.Sync()
		closeAll()
	}, nil
}

func encoderConfig(dev bool) zapcore.EncoderConfig {
	if dev {
		cfg := zap.NewDevelopmentEncoderConfig()
		cfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		return cfg
	}
	return zap.NewProductionEncoderConfig()
}
