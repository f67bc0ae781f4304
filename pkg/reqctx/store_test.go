package reqctx

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"
)

func testStore(traceID string) *Store {
	return &Store{
		Trace:  &TraceInfo{TraceID: traceID, SpanID: "0", RequestID: "req-" + traceID},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func TestStoreFromContext_Absent(t *testing.T) {
	if store, ok := StoreFromContext(context.Background()); ok || store != nil {
		t.Errorf("StoreFromContext(background) = %v, %v; want nil, false", store, ok)
	}
	if trace, ok := TraceFromContext(context.Background()); ok || trace != nil {
		t.Errorf("TraceFromContext(background) = %v, %v; want nil, false", trace, ok)
	}
	if id := TraceIDFromContext(context.Background()); id != "" {
		t.Errorf("TraceIDFromContext(background) = %q, want empty", id)
	}
}

func TestWithStore_Shadowing(t *testing.T) {
	outer := testStore("outer")
	inner := testStore("inner")

	outerCtx := WithStore(context.Background(), outer)
	innerCtx := WithStore(outerCtx, inner)

	if got := TraceIDFromContext(innerCtx); got != "inner" {
		t.Errorf("inner scope sees trace %q, want %q", got, "inner")
	}
	// The outer context is untouched; shadowing is scoped to the derived
	// context only.
	if got := TraceIDFromContext(outerCtx); got != "outer" {
		t.Errorf("outer scope sees trace %q, want %q", got, "outer")
	}
}

func TestRun(t *testing.T) {
	store := testStore("abc")

	t.Run("binds store for the callback", func(t *testing.T) {
		err := Run(context.Background(), store, func(ctx context.Context) error {
			got, ok := StoreFromContext(ctx)
			if !ok || got != store {
				t.Errorf("StoreFromContext inside Run = %v, %v; want the bound store", got, ok)
			}
			return nil
		})
		if err != nil {
			t.Fatalf("Run() error = %v", err)
		}
	})

	t.Run("propagates the callback error unchanged", func(t *testing.T) {
		sentinel := errors.New("downstream failure")
		err := Run(context.Background(), store, func(ctx context.Context) error {
			return sentinel
		})
		if !errors.Is(err, sentinel) {
			t.Errorf("Run() error = %v, want %v", err, sentinel)
		}
	})
}

func TestLoggerFromContext(t *testing.T) {
	t.Run("unscoped falls back to default", func(t *testing.T) {
		if got := LoggerFromContext(context.Background()); got != slog.Default() {
			t.Errorf("LoggerFromContext(background) = %p, want slog.Default()", got)
		}
	})

	t.Run("scoped returns the store logger", func(t *testing.T) {
		store := testStore("abc")
		ctx := WithStore(context.Background(), store)
		if got := LoggerFromContext(ctx); got != store.Logger {
			t.Errorf("LoggerFromContext = %p, want the store logger %p", got, store.Logger)
		}
	})
}

func TestConcurrentScopesAreIsolated(t *testing.T) {
	ids := []string{"aaaa", "bbbb", "cccc", "dddd"}

	var wg sync.WaitGroup
	for _, id := range ids {
		wg.Add(1)
		go func(id string) {
			defer wg.Done()
			ctx := WithStore(context.Background(), testStore(id))

			before := TraceIDFromContext(ctx)
			time.Sleep(10 * time.Millisecond) // let the other scopes interleave
			after := TraceIDFromContext(ctx)

			if before != id || after != id {
				t.Errorf("scope %q observed before=%q after=%q", id, before, after)
			}
		}(id)
	}
	wg.Wait()
}

func TestFanOutObservesOneStore(t *testing.T) {
	store := testStore("shared")
	ctx := WithStore(context.Background(), store)

	results := make(chan string, 5)
	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			time.Sleep(5 * time.Millisecond)
			results <- TraceIDFromContext(ctx)
		}()
	}
	wg.Wait()
	close(results)

	for got := range results {
		if got != "shared" {
			t.Errorf("fan-out branch observed trace %q, want %q", got, "shared")
		}
	}
}
