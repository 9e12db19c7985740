package native

import "errors"

// Package errors for the Pure Go WebGPU backend.
var (
	// ErrNoInstance is returned when wgpu/core cannot create an instance.
	ErrNoInstance = errors.New("native: could not create wgpu instance")
)
