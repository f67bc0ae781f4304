package reqctx

import (
	"context"
	"log/slog"
)

// Store is the per-request bundle bound into the context by the tracing
// middleware: the resolved trace identity plus a logger already decorated
// with the correlation fields for that identity.
//
// A Store is created once per inbound request, owned by that request's
// execution, and becomes unreachable when the request context does.
type Store struct {
	Trace  *TraceInfo
	Logger *slog.Logger
}

// WithStore binds store into the context. The returned context and every
// context derived from it observe store; the parent context is unchanged,
// so an inner binding shadows an outer one only for its own subtree.
func WithStore(ctx context.Context, store *Store) context.Context {
	return context.WithValue(ctx, keyStore, store)
}

// StoreFromContext retrieves the innermost bound Store.
// Returns nil, false if the context carries none.
func StoreFromContext(ctx context.Context) (*Store, bool) {
	v := ctx.Value(keyStore)
	if v == nil {
		return nil, false
	}
	store, ok := v.(*Store)
	return store, ok
}

// Run executes fn with store bound for fn's dynamic extent and returns
// whatever fn returns. Everything fn reaches through its context argument,
// including goroutines it starts with that context, observes store.
func Run(ctx context.Context, store *Store, fn func(context.Context) error) error {
	return fn(WithStore(ctx, store))
}

// LoggerFromContext returns the request-scoped logger, or slog.Default()
// when called outside a request scope. Callers never need to nil-check:
// unscoped code (startup, background jobs) gets the process logger.
func LoggerFromContext(ctx context.Context) *slog.Logger {
	if store, ok := StoreFromContext(ctx); ok && store.Logger != nil {
		return store.Logger
	}
	return slog.Default()
}

// TraceFromContext retrieves the trace identity bound for this request.
// Returns nil, false outside a request scope.
func TraceFromContext(ctx context.Context) (*TraceInfo, bool) {
	store, ok := StoreFromContext(ctx)
	if !ok || store.Trace == nil {
		return nil, false
	}
	return store.Trace, true
}

// TraceIDFromContext returns the trace ID, or empty string if not set.
func TraceIDFromContext(ctx context.Context) string {
	trace, ok := TraceFromContext(ctx)
	if !ok {
		return ""
	}
	return trace.TraceID
}
