// Package cloudtrace parses and generates the identifiers that correlate
// logs with Google Cloud Trace: the X-Cloud-Trace-Context header, request
// IDs, and the projects/{project}/traces/{trace} field value Cloud Logging
// expects.
package cloudtrace

import (
	"crypto/rand"
	"encoding/hex"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"github.com/Alijeyrad/anqa_gateway/pkg/reqctx"
)

const (
	// Header is the inbound trace header set by Google's HTTP load
	// balancers. Value format: TRACE_ID/SPAN_ID;o=FLAG.
	Header = "X-Cloud-Trace-Context"

	// RequestIDHeader carries the per-request correlation ID, echoed on
	// every response.
	RequestIDHeader = "X-Request-Id"

	// UnknownProject is the sentinel used when no project ID can be
	// resolved. Log correlation becomes best-effort but requests proceed.
	UnknownProject = "unknown-project"
)

// projectEnvVars is the fallback order Google runtimes use to expose the
// active project ID.
var projectEnvVars = []string{
	"GOOGLE_CLOUD_PROJECT",
	"GCLOUD_PROJECT",
	"GCP_PROJECT",
}

// headerRe matches the full header grammar: 32 hex chars, a slash, decimal
// span digits, and an optional ";o=" sampling flag.
var headerRe = regexp.MustCompile(`^([0-9a-fA-F]{32})/(\d+)(?:;o=([01]))?$`)

// hexPrefixRe recovers a trace ID from malformed headers whose first 32
// characters are still valid hex.
var hexPrefixRe = regexp.MustCompile(`^[0-9a-fA-F]{32}`)

// ParseHeader parses an X-Cloud-Trace-Context value into a trace identity.
//
// Malformed input is never an error, only a signal to generate fresh
// identifiers: the second return is false when raw is empty or carries no
// recoverable trace ID. When only the suffix is broken the 32-hex prefix
// is kept, with span "0" and sampling off. RequestID is left empty; the
// caller owns request-ID resolution.
func ParseHeader(raw string) (*reqctx.TraceInfo, bool) {
	if raw == "" {
		return nil, false
	}

	if m := headerRe.FindStringSubmatch(raw); m != nil {
		return &reqctx.TraceInfo{
			TraceID: strings.ToLower(m[1]),
			SpanID:  m[2],
			Sampled: m[3] == "1",
		}, true
	}

	// Tolerate malformed or partial suffixes without discarding a
	// recoverable trace ID.
	if prefix := hexPrefixRe.FindString(raw); prefix != "" {
		return &reqctx.TraceInfo{
			TraceID: strings.ToLower(prefix),
			SpanID:  "0",
			Sampled: false,
		}, true
	}

	return nil, false
}

// FormatTraceField composes the field value Cloud Logging uses to link a
// log entry to its trace. No validation of projectID is performed; the
// caller resolves it.
func FormatTraceField(projectID, traceID string) string {
	return "projects/" + projectID + "/traces/" + traceID
}

// NewTraceID creates a new random 128-bit trace ID as a 32-char lowercase
// hex string.
func NewTraceID() string {
	b := make([]byte, 16)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

// NewRequestID creates a fresh UUID v4 request ID.
func NewRequestID() string {
	return uuid.NewString()
}

// ResolveProjectID resolves the project ID used for log-trace correlation.
// Precedence: the explicit configured value, then the Google runtime
// environment variables in their conventional order, then UnknownProject.
// lookup is injected (normally os.LookupEnv) so callers can resolve
// without touching process state.
func ResolveProjectID(explicit string, lookup func(string) (string, bool)) string {
	if explicit != "" {
		return explicit
	}
	for _, name := range projectEnvVars {
		if v, ok := lookup(name); ok && v != "" {
			return v
		}
	}
	return UnknownProject
}
