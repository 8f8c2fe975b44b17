package calltest

import (
	"context"

	"github.com/srg/btmock/internal/groutine"
)

// CallConcurrently runs fn on workers goroutines and waits for all of them.
// Each goroutine is labelled "stub-caller-<worker>" for profiles and dumps.
func CallConcurrently(workers int, fn func(worker int)) {
	groutine.Fan(context.Background(), "stub-caller", workers, func(_ context.Context, worker int) {
		fn(worker)
	})
}
