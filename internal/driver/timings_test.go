package driver

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"lust/internal/observ"
)

func TestWriteTimings(t *testing.T) {
	timer := observ.NewTimer()
	timer.Add("parse file", 2*time.Millisecond)
	payload := NewTimingPayload("", "a.lust", timer)
	if payload.Kind != "pipeline" {
		t.Fatalf("Kind = %q", payload.Kind)
	}

	var buf bytes.Buffer
	if err := WriteTimings(&buf, payload, timer, true); err != nil {
		t.Fatal(err)
	}
	var decoded TimingPayload
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("invalid json %q: %v", buf.String(), err)
	}
	if len(decoded.Phases) != 1 || decoded.Phases[0].Name != "parse file" {
		t.Fatalf("phases = %+v", decoded.Phases)
	}

	buf.Reset()
	if err := WriteTimings(&buf, payload, timer, false); err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(buf.String(), "timings (pipeline): a.lust\n") {
		t.Fatalf("text = %q", buf.String())
	}
}
