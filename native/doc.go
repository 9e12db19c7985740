// Package native provides the Pure Go WebGPU probe backend using
// gogpu/wgpu.
//
// Import this package to register the backend:
//
//	import _ "github.com/gogpu/gpuprobe/native"
//
// The backend talks to wgpu/core directly, with no cgo and no external
// library. Adapter requests resolve synchronously: the completion
// callback runs before the request call returns.
package native
