// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package logging_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"

	"code.hybscloud.com/sumcodec/internal/config"
	"code.hybscloud.com/sumcodec/internal/logging"
)

func TestJSONToStderr(t *testing.T) {
	var stdout, stderr bytes.Buffer
	logger, done, err := logging.SetupWriters(config.LogConfig{
		Level:   "info",
		Format:  "json",
		Outputs: []string{"stderr"},
	}, &stdout, &stderr)
	if err != nil {
		t.Fatalf("setup: %v", err)
	}
	logger.Debug("hidden")
	logger.Info("frame decoded", zap.String("case", "ping"))
	done()

	if stdout.Len() != 0 {
		t.Fatalf("stdout got %q", stdout.String())
	}
	lines := strings.Split(strings.TrimSpace(stderr.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("got %d lines: %q", len(lines), stderr.String())
	}
	var entry map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("not json: %v", err)
	}
	if entry["msg"] != "frame decoded" || entry["case"] != "ping" || entry["level"] != "info" {
		t.Fatalf("got %v", entry)
	}
}

func TestConsoleFormat(t *testing.T) {
	var stdout bytes.Buffer
	logger, done, err := logging.SetupWriters(config.LogConfig{
		Level:   "warn",
		Format:  "console",
		Outputs: []string{"stdout"},
	}, &stdout, nil)
	if err != nil {
		t.Fatalf("setup: %v", err)
	}
	logger.Info("dropped")
	logger.Warn("kept")
	done()
	out := stdout.String()
	if strings.Contains(out, "dropped") || !strings.Contains(out, "kept") {
		t.Fatalf("got %q", out)
	}
}

func TestFileOutput(t *testing.T) {
	for _, rotate := range []bool{false, true} {
		path := filepath.Join(t.TempDir(), "nested", "sumcodec.log")
		logger, done, err := logging.Setup(config.LogConfig{
			Level:    "debug",
			Format:   "json",
			Outputs:  []string{path},
			Rotation: config.RotationConfig{Enable: rotate, MaxSizeMB: 1},
		})
		if err != nil {
			t.Fatalf("rotate=%v: %v", rotate, err)
		}
		logger.Debug("to file")
		done()

		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("rotate=%v: %v", rotate, err)
		}
		if !strings.Contains(string(data), "to file") {
			t.Fatalf("rotate=%v: got %q", rotate, data)
		}
	}
}

func TestInvalidLevel(t *testing.T) {
	if _, _, err := logging.Setup(config.LogConfig{Level: "loud"}); err == nil {
		t.Fatal("expected error")
	}
}
