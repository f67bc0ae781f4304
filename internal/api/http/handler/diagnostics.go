package handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/Alijeyrad/anqa_gateway/pkg/reqctx"
)

// DiagnosticsHandler exposes the request-scoped trace identity for
// debugging and smoke tests.
type DiagnosticsHandler struct{}

func NewDiagnosticsHandler() *DiagnosticsHandler {
	return &DiagnosticsHandler{}
}

// ActiveTrace reports the trace identity bound for the current request.
func (h *DiagnosticsHandler) ActiveTrace(c fiber.Ctx) error {
	trace, found := reqctx.TraceFromContext(c.Context())
	if !found {
		return notFound(c, "no active trace")
	}
	return ok(c, fiber.Map{
		"trace_id":   trace.TraceID,
		"span_id":    trace.SpanID,
		"request_id": trace.RequestID,
		"sampled":    trace.Sampled,
	})
}

// Echo logs through the request-scoped logger and echoes the request body,
// demonstrating trace-correlated logging end to end.
func (h *DiagnosticsHandler) Echo(c fiber.Ctx) error {
	logger := reqctx.LoggerFromContext(c.Context())
	logger.Info("echo request", "bytes", len(c.Body()))

	return ok(c, fiber.Map{
		"echo":       string(c.Body()),
		"request_id": reqctx.RequestIDFromContext(c.Context()),
	})
}
