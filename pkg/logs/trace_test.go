package logs

import (
	"bufio"
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/Alijeyrad/anqa_gateway/pkg/reqctx"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var lines []map[string]any
	sc := bufio.NewScanner(buf)
	for sc.Scan() {
		var m map[string]any
		if err := json.Unmarshal(sc.Bytes(), &m); err != nil {
			t.Fatalf("log line is not JSON: %v: %s", err, sc.Text())
		}
		lines = append(lines, m)
	}
	return lines
}

func TestWithTrace(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(slog.NewJSONHandler(&buf, nil))

	trace := &reqctx.TraceInfo{
		TraceID:   "105445aa7843bc8bf206b12000100000",
		SpanID:    "7",
		RequestID: "req-1",
		Sampled:   true,
	}

	WithTrace(base, "my-project", trace).Info("hello")

	lines := decodeLines(t, &buf)
	if len(lines) != 1 {
		t.Fatalf("got %d log lines, want 1", len(lines))
	}
	entry := lines[0]

	if got, want := entry[TraceField], "projects/my-project/traces/105445aa7843bc8bf206b12000100000"; got != want {
		t.Errorf("%s = %v, want %v", TraceField, got, want)
	}
	if got, want := entry[SpanIDField], "7"; got != want {
		t.Errorf("%s = %v, want %v", SpanIDField, got, want)
	}
	if got, want := entry[TraceSampledField], true; got != want {
		t.Errorf("%s = %v, want %v", TraceSampledField, got, want)
	}
	if got, want := entry[RequestIDField], "req-1"; got != want {
		t.Errorf("%s = %v, want %v", RequestIDField, got, want)
	}
}

func TestWithTrace_IndependentViews(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(slog.NewJSONHandler(&buf, nil))

	viewA := WithTrace(base, "p", &reqctx.TraceInfo{TraceID: "aaaa", SpanID: "1", RequestID: "req-a"})
	viewB := WithTrace(base, "p", &reqctx.TraceInfo{TraceID: "bbbb", SpanID: "2", RequestID: "req-b"})

	viewA.Info("from a")
	viewB.Info("from b")
	base.Info("from base")

	lines := decodeLines(t, &buf)
	if len(lines) != 3 {
		t.Fatalf("got %d log lines, want 3", len(lines))
	}

	if got := lines[0][RequestIDField]; got != "req-a" {
		t.Errorf("view A logged request_id %v, want req-a", got)
	}
	if got := lines[1][RequestIDField]; got != "req-b" {
		t.Errorf("view B logged request_id %v, want req-b", got)
	}
	// Decoration never leaks into the shared base logger.
	if _, present := lines[2][RequestIDField]; present {
		t.Errorf("base logger carries %s after decoration: %v", RequestIDField, lines[2])
	}
}
