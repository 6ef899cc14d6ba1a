package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, "warn", "json")
	logger.Info("skipped")
	logger.Warn("kept", "tiles", 3)
	out := buf.String()
	if strings.Contains(out, "skipped") {
		t.Errorf("Info record should be filtered by warn level: %s", out)
	}
	if !strings.Contains(out, `"msg":"kept"`) || !strings.Contains(out, `"tiles":3`) {
		t.Errorf("Warn record should be written as JSON: %s", out)
	}

	buf.Reset()
	newLogger(&buf, "info", "text").Info("layer processed")
	if !strings.Contains(buf.String(), "msg=\"layer processed\"") {
		t.Errorf("Record should be written as text: %s", buf.String())
	}
}
