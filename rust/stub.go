//go:build !rust

package rust

import "github.com/gogpu/gpuprobe"

// init registers a nil-returning factory when the rust tag is not set.
// This allows code to compile without wgpu-native while still allowing
// gpuprobe.Get(gpuprobe.BackendRust) to return nil gracefully.
func init() {
	gpuprobe.Register(gpuprobe.BackendRust, func() gpuprobe.ProbeBackend {
		return nil
	})
}
