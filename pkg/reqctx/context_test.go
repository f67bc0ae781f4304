package reqctx

import (
	"context"
	"testing"
	"time"
)

func TestRequestMetaRoundTrip(t *testing.T) {
	meta := &RequestMeta{
		RequestID:   "req-1",
		ClientIP:    "192.0.2.10",
		UserAgent:   "curl/8.0",
		RequestedAt: time.Now(),
	}

	ctx := WithRequestMeta(context.Background(), meta)

	got, ok := RequestMetaFromContext(ctx)
	if !ok || got != meta {
		t.Fatalf("RequestMetaFromContext = %v, %v; want the stored meta", got, ok)
	}
}

func TestRequestMetaFromContext_Absent(t *testing.T) {
	if meta, ok := RequestMetaFromContext(context.Background()); ok || meta != nil {
		t.Errorf("RequestMetaFromContext(background) = %v, %v; want nil, false", meta, ok)
	}
}

func TestRequestIDFromContext(t *testing.T) {
	tests := []struct {
		name     string
		setupCtx func() context.Context
		want     string
	}{
		{
			name: "prefers the trace identity",
			setupCtx: func() context.Context {
				ctx := WithRequestMeta(context.Background(), &RequestMeta{RequestID: "from-meta"})
				return WithStore(ctx, &Store{Trace: &TraceInfo{RequestID: "from-trace"}})
			},
			want: "from-trace",
		},
		{
			name: "falls back to request meta",
			setupCtx: func() context.Context {
				return WithRequestMeta(context.Background(), &RequestMeta{RequestID: "from-meta"})
			},
			want: "from-meta",
		},
		{
			name: "unscoped context yields empty",
			setupCtx: func() context.Context {
				return context.Background()
			},
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RequestIDFromContext(tt.setupCtx()); got != tt.want {
				t.Errorf("RequestIDFromContext() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMustRequestMeta_PanicsWhenAbsent(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustRequestMeta did not panic on an unscoped context")
		}
	}()
	MustRequestMeta(context.Background())
}
