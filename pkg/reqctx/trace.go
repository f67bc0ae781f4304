package reqctx

// TraceInfo holds the Cloud Trace identity resolved for one request.
//
// It is built once by the tracing middleware when a request arrives and is
// never mutated afterwards; a new value is created for every request.
type TraceInfo struct {
	// TraceID is a 32-character lowercase hex string (128-bit).
	// Identifies the entire trace the request belongs to.
	TraceID string

	// SpanID is the span identifier as sent on the wire: a string of
	// decimal digits. Kept as text because the header may carry values
	// that do not fit in 64 bits. "0" means "no span supplied".
	SpanID string

	// RequestID is a per-request correlation ID, conventionally UUID v4.
	// Independent of TraceID; it is present even when the client sent no
	// trace header.
	RequestID string

	// Sampled indicates whether the tracing backend should record this
	// trace.
	Sampled bool
}
