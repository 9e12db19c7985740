package gpuprobe

import "errors"

// Package errors.
var (
	// ErrBackendNotAvailable is returned when no probe backend is registered.
	ErrBackendNotAvailable = errors.New("gpuprobe: no backend available")

	// ErrNoInstance is returned when the WebGPU instance cannot be created.
	ErrNoInstance = errors.New("gpuprobe: could not initialize WebGPU instance")

	// ErrNoAdapter is returned when the adapter request fails.
	ErrNoAdapter = errors.New("gpuprobe: adapter request failed")
)
