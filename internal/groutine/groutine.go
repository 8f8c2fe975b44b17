// Package groutine starts goroutines carrying a name in their context and in
// their pprof labels, so stack dumps of concurrent stub callers stay readable.
package groutine

import (
	"context"
	"fmt"
	"runtime/pprof"
	"sync"
)

type ctxKey string

const goroutineNameKey ctxKey = "goroutine_name"

// Go starts fn on a named goroutine.
// If parentCtx is nil, context.Background() is used.
func Go(parentCtx context.Context, name string, fn func(ctx context.Context)) {
	if parentCtx == nil {
		parentCtx = context.Background()
	}

	labels := pprof.Labels("goroutine_name", name)

	go pprof.Do(parentCtx, labels, func(ctx context.Context) {
		ctx = context.WithValue(ctx, goroutineNameKey, name)
		fn(ctx)
	})
}

// Fan runs fn on n goroutines named "<prefix>-<i>" and blocks until all of
// them return. Workers see the same ctx; cancelling it is up to fn to honor.
// A non-positive n runs nothing.
func Fan(ctx context.Context, prefix string, n int, fn func(ctx context.Context, worker int)) {
	if n <= 0 {
		return
	}
	var wg sync.WaitGroup
	wg.Add(n)
	for worker := range n {
		Go(ctx, fmt.Sprintf("%s-%d", prefix, worker), func(ctx context.Context) {
			defer wg.Done()
			fn(ctx, worker)
		})
	}
	wg.Wait()
}

// GetName retrieves the goroutine name from the context.
func GetName(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if v := ctx.Value(goroutineNameKey); v != nil {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
