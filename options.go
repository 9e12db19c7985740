package gpuprobe

import (
	"io"
	"os"
	"time"

	"github.com/gogpu/gputypes"
)

// Option configures a probe run.
//
// Example:
//
//	// Default backend, report to stdout
//	err := gpuprobe.Run()
//
//	// Forced backend with a bounded request
//	err := gpuprobe.Run(
//	    gpuprobe.WithBackend(gpuprobe.BackendNative),
//	    gpuprobe.WithTimeout(5*time.Second),
//	)
type Option func(*runOptions)

// runOptions holds optional configuration for Run.
type runOptions struct {
	w       io.Writer
	backend string
	opts    *gputypes.RequestAdapterOptions
	timeout time.Duration
}

// defaultRunOptions returns the default run options.
func defaultRunOptions() runOptions {
	return runOptions{
		w:       os.Stdout,
		backend: "", // registry priority decides
		opts:    &gputypes.RequestAdapterOptions{},
		timeout: 0, // wait forever, as the underlying API does
	}
}

// WithWriter sets the destination for the adapter report.
// Defaults to os.Stdout.
func WithWriter(w io.Writer) Option {
	return func(o *runOptions) {
		if w != nil {
			o.w = w
		}
	}
}

// WithBackend forces a specific registered backend by name instead of
// the registry priority order.
func WithBackend(name string) Option {
	return func(o *runOptions) {
		o.backend = name
	}
}

// WithAdapterOptions sets the adapter selection options passed to the
// request (power preference, etc.). Defaults to an empty descriptor,
// letting the implementation choose.
func WithAdapterOptions(opts *gputypes.RequestAdapterOptions) Option {
	return func(o *runOptions) {
		if opts != nil {
			o.opts = opts
		}
	}
}

// WithTimeout bounds the adapter request. Zero (the default) preserves
// wait-forever semantics.
func WithTimeout(d time.Duration) Option {
	return func(o *runOptions) {
		o.timeout = d
	}
}
