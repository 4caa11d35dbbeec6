package direct

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestZerologLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := NewZerologLogger(zerolog.New(&buf).Level(zerolog.DebugLevel))

	logger.Errorf("request failed: %s", "boom")
	logger.Warnf("retrying in %ds", 2)
	logger.Debugf("GET %s", "https://api.example.com")

	out := buf.String()

	if !strings.Contains(out, `"level":"error"`) || !strings.Contains(out, "request failed: boom") {
		t.Errorf("expected error entry, got: %s", out)
	}

	if !strings.Contains(out, `"level":"warn"`) || !strings.Contains(out, "retrying in 2s") {
		t.Errorf("expected warn entry, got: %s", out)
	}

	if !strings.Contains(out, `"level":"debug"`) || !strings.Contains(out, "GET https://api.example.com") {
		t.Errorf("expected debug entry, got: %s", out)
	}
}
