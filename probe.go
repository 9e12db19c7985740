package gpuprobe

import (
	"context"
	"fmt"
)

// Run executes the full probe sequence: create an instance, request an
// adapter, release the instance, inspect the adapter, release the adapter.
//
// The instance is released unconditionally once the request has resolved;
// its sole purpose is to produce the adapter. If the adapter request
// fails, the failure is reported and Run still returns nil: the probe ran,
// it just found nothing to inspect. Only instance creation failure is
// fatal and returns an error (the command maps it to exit status 1).
func Run(options ...Option) error {
	cfg := defaultRunOptions()
	for _, opt := range options {
		opt(&cfg)
	}

	var b ProbeBackend
	if cfg.backend != "" {
		b = Get(cfg.backend)
	} else {
		b = Default()
	}
	if b == nil {
		return ErrBackendNotAvailable
	}

	inst, err := b.CreateInstance()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrNoInstance, err)
	}
	if inst == nil {
		return ErrNoInstance
	}
	Logger().Info("gpuprobe: instance created", "backend", b.Name())

	ctx := context.Background()
	if cfg.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.timeout)
		defer cancel()
	}

	Logger().Info("gpuprobe: requesting adapter")
	adapter, err := RequestAdapter(ctx, inst, cfg.opts)

	// The instance exists only to produce the adapter; release it
	// whether or not the request succeeded.
	inst.Release()

	if err != nil {
		fmt.Fprintf(cfg.w, "Could not get WebGPU adapter: %v\n", err)
		return nil
	}

	Logger().Info("gpuprobe: got adapter", "name", adapter.Info().Device)
	Inspect(cfg.w, adapter)
	adapter.Release()

	return nil
}
