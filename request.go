package gpuprobe

import (
	"context"
	"fmt"

	"github.com/gogpu/gputypes"
)

// requestResult carries one callback outcome from the implementation
// to the waiting caller.
type requestResult struct {
	status  RequestStatus
	adapter Adapter
	message string
}

// RequestAdapter requests an adapter from the instance and blocks until
// the request resolves or ctx expires.
//
// The underlying implementation may invoke the completion callback
// synchronously before its request call returns, or later from another
// goroutine. RequestAdapter handles both through a buffered one-shot
// channel, so the callback never blocks regardless of which goroutine
// delivers it.
//
// On failure the status and any implementation-provided message are
// logged and the returned error wraps ErrNoAdapter. Passing a context
// without a deadline preserves wait-forever semantics: a request that
// never resolves blocks indefinitely.
//
// If ctx expires before the callback fires, RequestAdapter returns
// ctx.Err() and the request is abandoned; an adapter delivered after
// that point is released to avoid leaking the handle.
func RequestAdapter(ctx context.Context, inst Instance, opts *gputypes.RequestAdapterOptions) (Adapter, error) {
	if opts == nil {
		opts = &gputypes.RequestAdapterOptions{}
	}

	// Buffered so the exactly-once callback can complete without a
	// paired receive, even after the caller has given up.
	done := make(chan requestResult, 1)

	inst.RequestAdapter(opts, func(status RequestStatus, adapter Adapter, message string) {
		done <- requestResult{status: status, adapter: adapter, message: message}
	})

	select {
	case r := <-done:
		if r.status != StatusSuccess {
			Logger().Warn("gpuprobe: adapter request failed",
				"status", r.status.String(), "message", r.message)
			return nil, fmt.Errorf("%w: %s: %s", ErrNoAdapter, r.status, r.message)
		}
		if r.adapter == nil {
			return nil, fmt.Errorf("%w: success status with nil adapter", ErrNoAdapter)
		}
		return r.adapter, nil
	case <-ctx.Done():
		// Drain the late callback, if any, and release its adapter.
		go func() {
			if r := <-done; r.adapter != nil {
				r.adapter.Release()
			}
		}()
		return nil, ctx.Err()
	}
}
