package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"starwars-server/confs"
)

func TestNewWritesJSONWithComponent(t *testing.T) {
	var buf bytes.Buffer
	l := Component(NewWithWriter(confs.LoggingConfig{Level: "debug", Format: "json"}, &buf), "catalog")

	l.Info().Str("operation", "create_user").Msg("user created")

	var line map[string]any
	if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
		t.Fatalf("log line is not JSON: %v (%q)", err, buf.String())
	}
	if line["component"] != "catalog" || line["operation"] != "create_user" {
		t.Fatalf("unexpected fields %v", line)
	}
	if _, ok := line["time"]; !ok {
		t.Fatalf("expected timestamp field")
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(confs.LoggingConfig{Level: "warn", Format: "json"}, &buf)

	l.Info().Msg("dropped")
	if buf.Len() != 0 {
		t.Fatalf("info should be filtered at warn level, got %q", buf.String())
	}
	l.Warn().Msg("kept")
	if buf.Len() == 0 {
		t.Fatalf("warn should be written")
	}
}

func TestParseLevelDefaultsToInfo(t *testing.T) {
	if parseLevel("verbose") != parseLevel("info") {
		t.Fatalf("unknown levels should fall back to info")
	}
}
