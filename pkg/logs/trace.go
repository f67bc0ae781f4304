package logs

import (
	"log/slog"

	"github.com/Alijeyrad/anqa_gateway/pkg/cloudtrace"
	"github.com/Alijeyrad/anqa_gateway/pkg/reqctx"
)

// Field names Cloud Logging uses to correlate entries with Cloud Trace.
// request_id is our own correlation field, independent of the trace.
const (
	TraceField        = "logging.googleapis.com/trace"
	SpanIDField       = "logging.googleapis.com/spanId"
	TraceSampledField = "logging.googleapis.com/trace_sampled"
	RequestIDField    = "request_id"
)

// WithTrace returns a logger view carrying the correlation fields for
// trace. The base logger is never mutated: concurrent requests decorate
// the same base and each gets an independent view.
func WithTrace(base *slog.Logger, projectID string, trace *reqctx.TraceInfo) *slog.Logger {
	return base.With(
		slog.String(TraceField, cloudtrace.FormatTraceField(projectID, trace.TraceID)),
		slog.String(SpanIDField, trace.SpanID),
		slog.Bool(TraceSampledField, trace.Sampled),
		slog.String(RequestIDField, trace.RequestID),
	)
}
