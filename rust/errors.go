//go:build rust

package rust

import "errors"

// Package errors for the wgpu-native backend.
var (
	// ErrLibraryNotFound is returned when wgpu-native cannot be loaded.
	ErrLibraryNotFound = errors.New("rust: wgpu-native library not found")

	// ErrNoInstance is returned when instance creation fails.
	ErrNoInstance = errors.New("rust: could not create wgpu instance")
)
