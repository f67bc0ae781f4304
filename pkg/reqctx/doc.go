// Package reqctx provides centralized request context management.
//
// This package is the single source of truth for all request-scoped data:
// the resolved trace identity, the trace-correlated logger, and request
// metadata captured by HTTP middleware.
//
// # Context Keys
//
// All context keys are private unexported types to prevent collisions.
// Access is provided through type-safe getter and setter functions.
//
// # Usage
//
// Binding values (done by the tracing middleware):
//
//	ctx = reqctx.WithStore(ctx, &reqctx.Store{
//	    Trace:  trace,
//	    Logger: logger,
//	})
//
// Reading values (in handlers, services, background helpers):
//
//	logger := reqctx.LoggerFromContext(ctx)
//	trace, ok := reqctx.TraceFromContext(ctx)
//
// # Contracts
//
// The following contracts are guaranteed:
//
//   - Store and RequestMeta are set by the tracing middleware for all
//     HTTP requests; both are absent outside a request scope.
//   - A Store is created once per inbound request and never mutated or
//     reused afterwards.
//   - Reading from an unscoped context is not an error: the From
//     functions report absence, and LoggerFromContext falls back to
//     slog.Default().
//   - Stores bound for different requests are invisible to each other;
//     every goroutine sharing one request's context observes the same
//     Store.
package reqctx
