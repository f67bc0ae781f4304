package middleware

import (
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v3"

	"github.com/Alijeyrad/anqa_gateway/pkg/cloudtrace"
	"github.com/Alijeyrad/anqa_gateway/pkg/logs"
	"github.com/Alijeyrad/anqa_gateway/pkg/reqctx"
)

// Locals keys exposing the trace identity to framework-level code that
// does not use reqctx directly.
const (
	LocalRequestID = "request_id"
	LocalTraceID   = "trace_id"
)

// Tracing resolves the request's trace identity from the Cloud Trace
// header, derives a trace-correlated logger view from base, and binds both
// into the request context for the full extent of the downstream chain.
//
// Per request it:
//   - parses X-Cloud-Trace-Context, generating a fresh trace ID when the
//     header is absent or unrecoverable (span defaults to "0", unsampled);
//   - prefers an inbound X-Request-Id and generates a UUID v4 otherwise,
//     always echoing the result on the response;
//   - publishes request_id and trace_id in Locals for other middleware;
//   - never recovers downstream errors, so the pipeline's own error layer
//     sees them unchanged while error-path logging inside handlers still
//     carries the trace identity.
func Tracing(projectID string, base *slog.Logger) fiber.Handler {
	return func(c fiber.Ctx) error {
		trace, ok := cloudtrace.ParseHeader(c.Get(cloudtrace.Header))
		if !ok {
			trace = &reqctx.TraceInfo{TraceID: cloudtrace.NewTraceID(), SpanID: "0"}
		}

		// prefer incoming, else generate
		rid := c.Get(cloudtrace.RequestIDHeader)
		if rid == "" {
			rid = cloudtrace.NewRequestID()
		}
		trace.RequestID = rid

		logger := logs.WithTrace(base, projectID, trace)

		c.Locals(LocalRequestID, rid)
		c.Locals(LocalTraceID, trace.TraceID)
		c.Set(cloudtrace.RequestIDHeader, rid) // send back to client
		// set it on the request headers so adaptor/http handlers can read it
		c.Request().Header.Set(cloudtrace.RequestIDHeader, rid)

		meta := &reqctx.RequestMeta{
			RequestID:   rid,
			ClientIP:    c.IP(),
			UserAgent:   c.Get("User-Agent"),
			RequestedAt: time.Now(),
		}

		ctx := reqctx.WithRequestMeta(c.Context(), meta)
		ctx = reqctx.WithStore(ctx, &reqctx.Store{Trace: trace, Logger: logger})
		c.SetContext(ctx)

		return c.Next()
	}
}

// RequestIDFromFiber retrieves the request ID from Fiber locals.
func RequestIDFromFiber(c fiber.Ctx) (string, bool) {
	v := c.Locals(LocalRequestID)
	s, ok := v.(string)
	return s, ok && s != ""
}

// TraceIDFromFiber retrieves the trace ID from Fiber locals.
func TraceIDFromFiber(c fiber.Ctx) (string, bool) {
	v := c.Locals(LocalTraceID)
	s, ok := v.(string)
	return s, ok && s != ""
}
