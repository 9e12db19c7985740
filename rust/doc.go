// Package rust provides the wgpu-native FFI probe backend using
// go-webgpu/webgpu.
//
// The backend requires the wgpu-native shared library and is only
// compiled with the "rust" build tag:
//
//	go build -tags rust ./...
//
// Import this package to register the backend:
//
//	import _ "github.com/gogpu/gpuprobe/rust"
//
// Without the tag, a nil-returning factory is registered so that
// gpuprobe.Get(gpuprobe.BackendRust) degrades gracefully.
package rust
