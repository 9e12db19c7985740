// Package gpuprobe inspects the GPU adapters visible through WebGPU.
//
// # Overview
//
// gpuprobe creates a WebGPU instance, requests a hardware adapter, and
// reports its limits, supported features, and identification. It is the
// WebGPU analog of tools like vulkaninfo or clinfo, built for the GoGPU
// ecosystem.
//
// # Quick Start
//
//	import (
//	    "os"
//
//	    "github.com/gogpu/gpuprobe"
//	    _ "github.com/gogpu/gpuprobe/native" // pure Go WebGPU backend
//	)
//
//	func main() {
//	    if err := gpuprobe.Run(gpuprobe.WithWriter(os.Stdout)); err != nil {
//	        os.Exit(1)
//	    }
//	}
//
// # Backends
//
// Probing goes through the ProbeBackend interface so the same report
// works against multiple WebGPU implementations:
//   - native: Pure Go WebGPU via gogpu/wgpu (default)
//   - rust: wgpu-native FFI via go-webgpu/webgpu (build tag "rust")
//   - software: built-in CPU reference adapter, always available
//
// Backends self-register on import; selection follows the registry
// priority (rust > native > software) unless a name is forced with
// WithBackend.
//
// # Asynchronous adapter requests
//
// WebGPU delivers adapters through a one-shot callback that may fire
// before the request call returns or later from another goroutine.
// RequestAdapter hides that behind a blocking call synchronized with a
// buffered channel, so callers never observe the callback mechanics.
package gpuprobe
